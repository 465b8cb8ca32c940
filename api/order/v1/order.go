// Package orderv1 is the wire contract of freshcart.order.v1.OrderService.
package orderv1

import (
	"context"

	commonv1 "github.com/dwikikusuma/freshcart/api/common/v1"
	"github.com/dwikikusuma/freshcart/pkg/rpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "freshcart.order.v1.OrderService"

type OrderItem struct {
	ProductId string          `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice *commonv1.Money `json:"unit_price"`
	Quantity  int32           `json:"quantity"`
	LineTotal *commonv1.Money `json:"line_total,omitempty"`
}

type StatusChange struct {
	Status string `json:"status"`
	AtUnix int64  `json:"at_unix"`
}

type Order struct {
	Id               string          `json:"id"`
	Reference        string          `json:"reference"`
	Status           string          `json:"status"`
	Items            []*OrderItem    `json:"items"`
	Subtotal         *commonv1.Money `json:"subtotal"`
	Shipping         *commonv1.Money `json:"shipping"`
	Total            *commonv1.Money `json:"total"`
	DeliverySlot     string          `json:"delivery_slot"`
	PaymentMethod    string          `json:"payment_method"`
	Address          string          `json:"address"`
	Timeline         []*StatusChange `json:"timeline"`
	DeliveryFromUnix int64           `json:"delivery_from_unix"`
	DeliveryToUnix   int64           `json:"delivery_to_unix"`
	CreatedAtUnix    int64           `json:"created_at_unix"`
	UpdatedAtUnix    int64           `json:"updated_at_unix"`
}

type CreateOrderRequest struct {
	Currency      string          `json:"currency"`
	Items         []*OrderItem    `json:"items"`
	Shipping      *commonv1.Money `json:"shipping"`
	DeliverySlot  string          `json:"delivery_slot"`
	PaymentMethod string          `json:"payment_method"`
	Address       string          `json:"address"`
}

type GetOrderRequest struct {
	Id string `json:"id"`
}

type TrackOrderRequest struct {
	Id string `json:"id"`
}

type TrackingStep struct {
	Status string `json:"status"`
	Label  string `json:"label"`
	Done   bool   `json:"done"`
	AtUnix int64  `json:"at_unix,omitempty"`
}

type Tracking struct {
	OrderId          string          `json:"order_id"`
	Reference        string          `json:"reference"`
	Status           string          `json:"status"`
	Steps            []*TrackingStep `json:"steps"`
	DeliveryFromUnix int64           `json:"delivery_from_unix"`
	DeliveryToUnix   int64           `json:"delivery_to_unix"`
}

type AdvanceOrderRequest struct {
	Id string `json:"id"`
}

type OrderServiceServer interface {
	CreateOrder(context.Context, *CreateOrderRequest) (*Order, error)
	GetOrder(context.Context, *GetOrderRequest) (*Order, error)
	TrackOrder(context.Context, *TrackOrderRequest) (*Tracking, error)
	AdvanceOrder(context.Context, *AdvanceOrderRequest) (*Order, error)
}

// UnimplementedOrderServiceServer can be embedded to stay forward compatible.
type UnimplementedOrderServiceServer struct{}

func (UnimplementedOrderServiceServer) CreateOrder(context.Context, *CreateOrderRequest) (*Order, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateOrder not implemented")
}

func (UnimplementedOrderServiceServer) GetOrder(context.Context, *GetOrderRequest) (*Order, error) {
	return nil, status.Error(codes.Unimplemented, "method GetOrder not implemented")
}

func (UnimplementedOrderServiceServer) TrackOrder(context.Context, *TrackOrderRequest) (*Tracking, error) {
	return nil, status.Error(codes.Unimplemented, "method TrackOrder not implemented")
}

func (UnimplementedOrderServiceServer) AdvanceOrder(context.Context, *AdvanceOrderRequest) (*Order, error) {
	return nil, status.Error(codes.Unimplemented, "method AdvanceOrder not implemented")
}

var OrderService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*OrderServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		rpc.Unary(ServiceName, "CreateOrder", OrderServiceServer.CreateOrder),
		rpc.Unary(ServiceName, "GetOrder", OrderServiceServer.GetOrder),
		rpc.Unary(ServiceName, "TrackOrder", OrderServiceServer.TrackOrder),
		rpc.Unary(ServiceName, "AdvanceOrder", OrderServiceServer.AdvanceOrder),
	},
}

func RegisterOrderServiceServer(s grpc.ServiceRegistrar, srv OrderServiceServer) {
	s.RegisterService(&OrderService_ServiceDesc, srv)
}

type OrderServiceClient interface {
	CreateOrder(ctx context.Context, in *CreateOrderRequest, opts ...grpc.CallOption) (*Order, error)
	GetOrder(ctx context.Context, in *GetOrderRequest, opts ...grpc.CallOption) (*Order, error)
	TrackOrder(ctx context.Context, in *TrackOrderRequest, opts ...grpc.CallOption) (*Tracking, error)
	AdvanceOrder(ctx context.Context, in *AdvanceOrderRequest, opts ...grpc.CallOption) (*Order, error)
}

type orderServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewOrderServiceClient(cc grpc.ClientConnInterface) OrderServiceClient {
	return &orderServiceClient{cc: cc}
}

func (c *orderServiceClient) CreateOrder(ctx context.Context, in *CreateOrderRequest, opts ...grpc.CallOption) (*Order, error) {
	return rpc.Invoke[Order](ctx, c.cc, ServiceName, "CreateOrder", in, opts...)
}

func (c *orderServiceClient) GetOrder(ctx context.Context, in *GetOrderRequest, opts ...grpc.CallOption) (*Order, error) {
	return rpc.Invoke[Order](ctx, c.cc, ServiceName, "GetOrder", in, opts...)
}

func (c *orderServiceClient) TrackOrder(ctx context.Context, in *TrackOrderRequest, opts ...grpc.CallOption) (*Tracking, error) {
	return rpc.Invoke[Tracking](ctx, c.cc, ServiceName, "TrackOrder", in, opts...)
}

func (c *orderServiceClient) AdvanceOrder(ctx context.Context, in *AdvanceOrderRequest, opts ...grpc.CallOption) (*Order, error) {
	return rpc.Invoke[Order](ctx, c.cc, ServiceName, "AdvanceOrder", in, opts...)
}
