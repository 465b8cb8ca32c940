package grpc

import (
	"context"
	"errors"

	checkoutv1 "github.com/dwikikusuma/freshcart/api/checkout/v1"
	commonv1 "github.com/dwikikusuma/freshcart/api/common/v1"
	"github.com/dwikikusuma/freshcart/internal/checkout/app"
	"github.com/dwikikusuma/freshcart/internal/checkout/domain"
	ordergrpc "github.com/dwikikusuma/freshcart/internal/order/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Server struct {
	checkoutv1.UnimplementedCheckoutServiceServer
	svc *app.Service
}

func NewServer(svc *app.Service) *Server {
	return &Server{svc: svc}
}

func (s *Server) GetOptions(_ context.Context, _ *checkoutv1.GetOptionsRequest) (*checkoutv1.GetOptionsResponse, error) {
	opts := s.svc.Options()

	resp := &checkoutv1.GetOptionsResponse{
		Slots:          make([]*checkoutv1.DeliverySlot, 0, len(opts.Slots)),
		PaymentMethods: make([]*checkoutv1.PaymentMethod, 0, len(opts.PaymentMethods)),
		Addresses:      make([]*checkoutv1.Address, 0, len(opts.Addresses)),
	}
	for _, sl := range opts.Slots {
		resp.Slots = append(resp.Slots, &checkoutv1.DeliverySlot{Id: sl.ID, Label: sl.Label, Window: sl.Window})
	}
	for _, pm := range opts.PaymentMethods {
		resp.PaymentMethods = append(resp.PaymentMethods, &checkoutv1.PaymentMethod{Id: pm.ID, Label: pm.Label, Icon: pm.Icon})
	}
	for _, a := range opts.Addresses {
		resp.Addresses = append(resp.Addresses, &checkoutv1.Address{Id: a.ID, Label: a.Label, Line: a.Line})
	}
	return resp, nil
}

func (s *Server) Quote(ctx context.Context, _ *checkoutv1.QuoteRequest) (*checkoutv1.QuoteResponse, error) {
	q, err := s.svc.Quote(ctx)
	if err != nil {
		return nil, mapErr(err)
	}
	return toProto(q), nil
}

func (s *Server) PlaceOrder(ctx context.Context, req *checkoutv1.PlaceOrderRequest) (*checkoutv1.PlaceOrderResponse, error) {
	order, err := s.svc.PlaceOrder(ctx, app.PlaceOrderRequest{
		SlotID:          req.SlotId,
		PaymentMethodID: req.PaymentMethodId,
		AddressID:       req.AddressId,
	})
	if err != nil {
		return nil, mapErr(err)
	}
	return &checkoutv1.PlaceOrderResponse{Order: ordergrpc.ToProto(order)}, nil
}

func toProto(q domain.Quote) *checkoutv1.QuoteResponse {
	lines := make([]*checkoutv1.QuoteLine, 0, len(q.Lines))
	for _, ln := range q.Lines {
		lines = append(lines, &checkoutv1.QuoteLine{
			ProductId: ln.ProductID,
			Name:      ln.Name,
			Quantity:  int32(ln.Quantity),
			UnitPrice: commonv1.NewMoney(ln.UnitPrice),
			LineTotal: commonv1.NewMoney(ln.LineTotal),
		})
	}

	return &checkoutv1.QuoteResponse{
		Lines:                lines,
		ItemCount:            int32(q.ItemCount),
		Subtotal:             commonv1.NewMoney(q.Subtotal),
		DeliveryFee:          commonv1.NewMoney(q.DeliveryFee),
		Total:                commonv1.NewMoney(q.Total),
		AmountToFreeDelivery: commonv1.NewMoney(q.AmountToFreeDelivery),
	}
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, app.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, app.ErrEmptyCart), errors.Is(err, app.ErrOutOfStock):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
