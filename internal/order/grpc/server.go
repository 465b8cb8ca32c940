package grpc

import (
	"context"
	"errors"
	"fmt"
	"time"

	commonv1 "github.com/dwikikusuma/freshcart/api/common/v1"
	orderv1 "github.com/dwikikusuma/freshcart/api/order/v1"
	"github.com/dwikikusuma/freshcart/internal/order/app"
	"github.com/dwikikusuma/freshcart/internal/order/domain"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Server struct {
	orderv1.UnimplementedOrderServiceServer
	svc *app.Service
}

func NewServer(svc *app.Service) *Server {
	return &Server{svc: svc}
}

func (s *Server) CreateOrder(ctx context.Context, req *orderv1.CreateOrderRequest) (*orderv1.Order, error) {
	if len(req.Items) == 0 {
		return nil, status.Error(codes.InvalidArgument, "items must not be empty")
	}

	orderRequest, err := mapProtoToCreateOrderReq(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	order, err := s.svc.CreateOrder(ctx, orderRequest)
	if err != nil {
		return nil, mapErr(err)
	}
	return ToProto(order), nil
}

func (s *Server) GetOrder(ctx context.Context, req *orderv1.GetOrderRequest) (*orderv1.Order, error) {
	order, err := s.svc.GetOrder(ctx, req.Id)
	if err != nil {
		return nil, mapErr(err)
	}
	return ToProto(order), nil
}

func (s *Server) TrackOrder(ctx context.Context, req *orderv1.TrackOrderRequest) (*orderv1.Tracking, error) {
	order, steps, err := s.svc.Track(ctx, req.Id)
	if err != nil {
		return nil, mapErr(err)
	}

	out := make([]*orderv1.TrackingStep, 0, len(steps))
	for _, st := range steps {
		out = append(out, &orderv1.TrackingStep{
			Status: string(st.Status),
			Label:  st.Label,
			Done:   st.Done,
			AtUnix: unix(st.At),
		})
	}

	return &orderv1.Tracking{
		OrderId:          order.ID,
		Reference:        order.Reference,
		Status:           string(order.Status),
		Steps:            out,
		DeliveryFromUnix: unix(order.DeliveryFrom),
		DeliveryToUnix:   unix(order.DeliveryTo),
	}, nil
}

func (s *Server) AdvanceOrder(ctx context.Context, req *orderv1.AdvanceOrderRequest) (*orderv1.Order, error) {
	order, err := s.svc.Advance(ctx, req.Id)
	if err != nil {
		return nil, mapErr(err)
	}
	return ToProto(order), nil
}

func mapProtoToCreateOrderReq(req *orderv1.CreateOrderRequest) (domain.CreateOrderRequest, error) {
	shipping := decimal.Zero
	if req.Shipping != nil {
		d, err := req.Shipping.Decimal()
		if err != nil {
			return domain.CreateOrderRequest{}, fmt.Errorf("shipping: %w", err)
		}
		shipping = d
	}

	items := make([]domain.OrderItemRequest, 0, len(req.Items))
	for i, item := range req.Items {
		unit, err := item.UnitPrice.Decimal()
		if err != nil {
			return domain.CreateOrderRequest{}, fmt.Errorf("item %d unit price: %w", i, err)
		}
		items = append(items, domain.OrderItemRequest{
			ProductID:  item.ProductId,
			Name:       item.Name,
			UnitAmount: unit,
			Quantity:   item.Quantity,
		})
	}

	return domain.CreateOrderRequest{
		Currency:       req.Currency,
		ShippingAmount: shipping,
		Items:          items,
		DeliverySlot:   req.DeliverySlot,
		PaymentMethod:  req.PaymentMethod,
		Address:        req.Address,
	}, nil
}

// ToProto converts an order to its wire form.
func ToProto(o domain.Order) *orderv1.Order {
	items := make([]*orderv1.OrderItem, 0, len(o.OrderItems))
	for _, item := range o.OrderItems {
		items = append(items, &orderv1.OrderItem{
			ProductId: item.ProductID,
			Name:      item.Name,
			UnitPrice: commonv1.NewMoney(item.UnitAmount),
			Quantity:  item.Quantity,
			LineTotal: commonv1.NewMoney(item.LineTotalAmount),
		})
	}

	timeline := make([]*orderv1.StatusChange, 0, len(o.Timeline))
	for _, ch := range o.Timeline {
		timeline = append(timeline, &orderv1.StatusChange{Status: string(ch.Status), AtUnix: ch.At.Unix()})
	}

	return &orderv1.Order{
		Id:               o.ID,
		Reference:        o.Reference,
		Status:           string(o.Status),
		Items:            items,
		Subtotal:         commonv1.NewMoney(o.SubTotalAmount),
		Shipping:         commonv1.NewMoney(o.ShippingAmount),
		Total:            commonv1.NewMoney(o.TotalAmount),
		DeliverySlot:     o.DeliverySlot,
		PaymentMethod:    o.PaymentMethod,
		Address:          o.Address,
		Timeline:         timeline,
		DeliveryFromUnix: unix(o.DeliveryFrom),
		DeliveryToUnix:   unix(o.DeliveryTo),
		CreatedAtUnix:    unix(o.CreatedAt),
		UpdatedAtUnix:    unix(o.UpdatedAt),
	}
}

func unix(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, app.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, app.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, app.ErrFinalStatus):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
