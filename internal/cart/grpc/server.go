package grpc

import (
	"context"
	"errors"

	cartv1 "github.com/dwikikusuma/freshcart/api/cart/v1"
	commonv1 "github.com/dwikikusuma/freshcart/api/common/v1"
	"github.com/dwikikusuma/freshcart/internal/cart/app"
	"github.com/dwikikusuma/freshcart/internal/cart/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Server struct {
	cartv1.UnimplementedCartServiceServer
	svc *app.Service
}

func NewServer(svc *app.Service) *Server {
	return &Server{svc: svc}
}

func (s *Server) GetCart(ctx context.Context, _ *cartv1.GetCartRequest) (*cartv1.Cart, error) {
	return toProto(s.svc.GetCart(ctx)), nil
}

func (s *Server) AddItem(ctx context.Context, req *cartv1.AddItemRequest) (*cartv1.Cart, error) {
	cart, err := s.svc.AddItem(ctx, req.ProductId)
	if err != nil {
		return nil, mapErr(err)
	}
	return toProto(cart), nil
}

func (s *Server) SetItemQuantity(ctx context.Context, req *cartv1.SetItemQuantityRequest) (*cartv1.Cart, error) {
	cart, err := s.svc.SetItemQuantity(ctx, req.ProductId, int(req.Quantity))
	if err != nil {
		return nil, mapErr(err)
	}
	return toProto(cart), nil
}

func (s *Server) RemoveItem(ctx context.Context, req *cartv1.RemoveItemRequest) (*cartv1.Cart, error) {
	cart, err := s.svc.RemoveItem(ctx, req.ProductId)
	if err != nil {
		return nil, mapErr(err)
	}
	return toProto(cart), nil
}

func (s *Server) ClearCart(ctx context.Context, _ *cartv1.ClearCartRequest) (*cartv1.Cart, error) {
	return toProto(s.svc.ClearCart(ctx)), nil
}

func toProto(cart domain.Cart) *cartv1.Cart {
	lines := make([]*cartv1.CartLine, 0, len(cart.Lines))
	for _, l := range cart.Lines {
		lines = append(lines, &cartv1.CartLine{
			ProductId: l.ID,
			Title:     l.Title,
			Image:     l.Image,
			Category:  l.Category,
			UnitPrice: commonv1.NewMoney(l.Price),
			Quantity:  int32(l.Quantity),
			LineTotal: commonv1.NewMoney(l.Total()),
		})
	}

	t := cart.Totals
	return &cartv1.Cart{
		Lines: lines,
		Totals: &cartv1.Totals{
			ItemCount:            int32(t.ItemCount),
			Subtotal:             commonv1.NewMoney(t.Subtotal),
			DeliveryFee:          commonv1.NewMoney(t.DeliveryFee),
			Total:                commonv1.NewMoney(t.FinalTotal),
			AmountToFreeDelivery: commonv1.NewMoney(t.AmountToFreeDelivery),
			FreeDelivery:         t.DeliveryFee.IsZero(),
		},
	}
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, app.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, app.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, app.ErrOutOfStock):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
