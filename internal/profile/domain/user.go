package domain

import "strings"

type User struct {
	Name      string
	Email     string
	Avatar    string
	Orders    int
	Addresses int
	Language  string
}

// DefaultUser is the profile a fresh session starts with.
func DefaultUser() User {
	return User{
		Name:      "Sarah Johnson",
		Email:     "sarah.j@email.com",
		Avatar:    "https://via.placeholder.com/80x80/4A90E2/FFFFFF?text=SJ",
		Orders:    5,
		Addresses: 2,
		Language:  "en",
	}
}

// UserPatch carries the fields to overwrite; nil fields are left alone.
type UserPatch struct {
	Name      *string
	Email     *string
	Avatar    *string
	Orders    *int
	Addresses *int
	Language  *string
}

func (p UserPatch) Empty() bool {
	return p.Name == nil && p.Email == nil && p.Avatar == nil &&
		p.Orders == nil && p.Addresses == nil && p.Language == nil
}

// Apply returns u with the non-nil fields of p merged in.
func (u User) Apply(p UserPatch) User {
	if p.Name != nil {
		u.Name = strings.TrimSpace(*p.Name)
	}
	if p.Email != nil {
		u.Email = strings.TrimSpace(*p.Email)
	}
	if p.Avatar != nil {
		u.Avatar = *p.Avatar
	}
	if p.Orders != nil {
		u.Orders = *p.Orders
	}
	if p.Addresses != nil {
		u.Addresses = *p.Addresses
	}
	if p.Language != nil {
		u.Language = *p.Language
	}
	return u
}
