// Package cartv1 is the wire contract of freshcart.cart.v1.CartService.
package cartv1

import (
	"context"

	commonv1 "github.com/dwikikusuma/freshcart/api/common/v1"
	"github.com/dwikikusuma/freshcart/pkg/rpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "freshcart.cart.v1.CartService"

type CartLine struct {
	ProductId string          `json:"product_id"`
	Title     string          `json:"title"`
	Image     string          `json:"image"`
	Category  string          `json:"category"`
	UnitPrice *commonv1.Money `json:"unit_price"`
	Quantity  int32           `json:"quantity"`
	LineTotal *commonv1.Money `json:"line_total"`
}

type Totals struct {
	ItemCount            int32           `json:"item_count"`
	Subtotal             *commonv1.Money `json:"subtotal"`
	DeliveryFee          *commonv1.Money `json:"delivery_fee"`
	Total                *commonv1.Money `json:"total"`
	AmountToFreeDelivery *commonv1.Money `json:"amount_to_free_delivery"`
	FreeDelivery         bool            `json:"free_delivery"`
}

type Cart struct {
	Lines  []*CartLine `json:"lines"`
	Totals *Totals     `json:"totals"`
}

type GetCartRequest struct{}

type AddItemRequest struct {
	ProductId string `json:"product_id"`
}

type SetItemQuantityRequest struct {
	ProductId string `json:"product_id"`
	Quantity  int32  `json:"quantity"`
}

type RemoveItemRequest struct {
	ProductId string `json:"product_id"`
}

type ClearCartRequest struct{}

type CartServiceServer interface {
	GetCart(context.Context, *GetCartRequest) (*Cart, error)
	AddItem(context.Context, *AddItemRequest) (*Cart, error)
	SetItemQuantity(context.Context, *SetItemQuantityRequest) (*Cart, error)
	RemoveItem(context.Context, *RemoveItemRequest) (*Cart, error)
	ClearCart(context.Context, *ClearCartRequest) (*Cart, error)
}

// UnimplementedCartServiceServer can be embedded to stay forward compatible.
type UnimplementedCartServiceServer struct{}

func (UnimplementedCartServiceServer) GetCart(context.Context, *GetCartRequest) (*Cart, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCart not implemented")
}

func (UnimplementedCartServiceServer) AddItem(context.Context, *AddItemRequest) (*Cart, error) {
	return nil, status.Error(codes.Unimplemented, "method AddItem not implemented")
}

func (UnimplementedCartServiceServer) SetItemQuantity(context.Context, *SetItemQuantityRequest) (*Cart, error) {
	return nil, status.Error(codes.Unimplemented, "method SetItemQuantity not implemented")
}

func (UnimplementedCartServiceServer) RemoveItem(context.Context, *RemoveItemRequest) (*Cart, error) {
	return nil, status.Error(codes.Unimplemented, "method RemoveItem not implemented")
}

func (UnimplementedCartServiceServer) ClearCart(context.Context, *ClearCartRequest) (*Cart, error) {
	return nil, status.Error(codes.Unimplemented, "method ClearCart not implemented")
}

var CartService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CartServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		rpc.Unary(ServiceName, "GetCart", CartServiceServer.GetCart),
		rpc.Unary(ServiceName, "AddItem", CartServiceServer.AddItem),
		rpc.Unary(ServiceName, "SetItemQuantity", CartServiceServer.SetItemQuantity),
		rpc.Unary(ServiceName, "RemoveItem", CartServiceServer.RemoveItem),
		rpc.Unary(ServiceName, "ClearCart", CartServiceServer.ClearCart),
	},
}

func RegisterCartServiceServer(s grpc.ServiceRegistrar, srv CartServiceServer) {
	s.RegisterService(&CartService_ServiceDesc, srv)
}

type CartServiceClient interface {
	GetCart(ctx context.Context, in *GetCartRequest, opts ...grpc.CallOption) (*Cart, error)
	AddItem(ctx context.Context, in *AddItemRequest, opts ...grpc.CallOption) (*Cart, error)
	SetItemQuantity(ctx context.Context, in *SetItemQuantityRequest, opts ...grpc.CallOption) (*Cart, error)
	RemoveItem(ctx context.Context, in *RemoveItemRequest, opts ...grpc.CallOption) (*Cart, error)
	ClearCart(ctx context.Context, in *ClearCartRequest, opts ...grpc.CallOption) (*Cart, error)
}

type cartServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCartServiceClient(cc grpc.ClientConnInterface) CartServiceClient {
	return &cartServiceClient{cc: cc}
}

func (c *cartServiceClient) GetCart(ctx context.Context, in *GetCartRequest, opts ...grpc.CallOption) (*Cart, error) {
	return rpc.Invoke[Cart](ctx, c.cc, ServiceName, "GetCart", in, opts...)
}

func (c *cartServiceClient) AddItem(ctx context.Context, in *AddItemRequest, opts ...grpc.CallOption) (*Cart, error) {
	return rpc.Invoke[Cart](ctx, c.cc, ServiceName, "AddItem", in, opts...)
}

func (c *cartServiceClient) SetItemQuantity(ctx context.Context, in *SetItemQuantityRequest, opts ...grpc.CallOption) (*Cart, error) {
	return rpc.Invoke[Cart](ctx, c.cc, ServiceName, "SetItemQuantity", in, opts...)
}

func (c *cartServiceClient) RemoveItem(ctx context.Context, in *RemoveItemRequest, opts ...grpc.CallOption) (*Cart, error) {
	return rpc.Invoke[Cart](ctx, c.cc, ServiceName, "RemoveItem", in, opts...)
}

func (c *cartServiceClient) ClearCart(ctx context.Context, in *ClearCartRequest, opts ...grpc.CallOption) (*Cart, error) {
	return rpc.Invoke[Cart](ctx, c.cc, ServiceName, "ClearCart", in, opts...)
}
