package domain

import "slices"

type DeliverySlot struct {
	ID     string
	Label  string
	Window string
}

type PaymentMethod struct {
	ID    string
	Label string
	Icon  string
}

type Address struct {
	ID    string
	Label string
	Line  string
}

type Options struct {
	Slots          []DeliverySlot
	PaymentMethods []PaymentMethod
	Addresses      []Address
}

// DefaultOptions are the choices offered on the delivery and payment step.
func DefaultOptions() Options {
	return Options{
		Slots: []DeliverySlot{
			{ID: "morning", Label: "Morning", Window: "8:00 AM - 12:00 PM"},
			{ID: "afternoon", Label: "Afternoon", Window: "12:00 PM - 4:00 PM"},
			{ID: "evening", Label: "Evening", Window: "4:00 PM - 8:00 PM"},
			{ID: "night", Label: "Night", Window: "8:00 PM - 10:00 PM"},
		},
		PaymentMethods: []PaymentMethod{
			{ID: "card", Label: "Credit/Debit Card", Icon: "card-outline"},
			{ID: "upi", Label: "UPI", Icon: "phone-portrait-outline"},
			{ID: "cod", Label: "Cash on Delivery", Icon: "cash-outline"},
			{ID: "wallet", Label: "Digital Wallet", Icon: "wallet-outline"},
		},
		Addresses: []Address{
			{ID: "home", Label: "Home", Line: "123 Main Street, City, State 12345"},
			{ID: "office", Label: "Office", Line: "456 Business Ave, City, State 12345"},
		},
	}
}

func (o Options) Slot(id string) (DeliverySlot, bool) {
	i := slices.IndexFunc(o.Slots, func(s DeliverySlot) bool { return s.ID == id })
	if i < 0 {
		return DeliverySlot{}, false
	}
	return o.Slots[i], true
}

func (o Options) PaymentMethod(id string) (PaymentMethod, bool) {
	i := slices.IndexFunc(o.PaymentMethods, func(p PaymentMethod) bool { return p.ID == id })
	if i < 0 {
		return PaymentMethod{}, false
	}
	return o.PaymentMethods[i], true
}

func (o Options) Address(id string) (Address, bool) {
	i := slices.IndexFunc(o.Addresses, func(a Address) bool { return a.ID == id })
	if i < 0 {
		return Address{}, false
	}
	return o.Addresses[i], true
}
