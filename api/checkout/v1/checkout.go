// Package checkoutv1 is the wire contract of freshcart.checkout.v1.CheckoutService.
package checkoutv1

import (
	"context"

	commonv1 "github.com/dwikikusuma/freshcart/api/common/v1"
	orderv1 "github.com/dwikikusuma/freshcart/api/order/v1"
	"github.com/dwikikusuma/freshcart/pkg/rpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "freshcart.checkout.v1.CheckoutService"

type DeliverySlot struct {
	Id     string `json:"id"`
	Label  string `json:"label"`
	Window string `json:"window"`
}

type PaymentMethod struct {
	Id    string `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

type Address struct {
	Id    string `json:"id"`
	Label string `json:"label"`
	Line  string `json:"line"`
}

type GetOptionsRequest struct{}

type GetOptionsResponse struct {
	Slots          []*DeliverySlot  `json:"slots"`
	PaymentMethods []*PaymentMethod `json:"payment_methods"`
	Addresses      []*Address       `json:"addresses"`
}

type QuoteRequest struct{}

type QuoteLine struct {
	ProductId string          `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int32           `json:"quantity"`
	UnitPrice *commonv1.Money `json:"unit_price"`
	LineTotal *commonv1.Money `json:"line_total"`
}

type QuoteResponse struct {
	Lines                []*QuoteLine    `json:"lines"`
	ItemCount            int32           `json:"item_count"`
	Subtotal             *commonv1.Money `json:"subtotal"`
	DeliveryFee          *commonv1.Money `json:"delivery_fee"`
	Total                *commonv1.Money `json:"total"`
	AmountToFreeDelivery *commonv1.Money `json:"amount_to_free_delivery"`
}

type PlaceOrderRequest struct {
	SlotId          string `json:"slot_id"`
	PaymentMethodId string `json:"payment_method_id"`
	AddressId       string `json:"address_id"`
}

type PlaceOrderResponse struct {
	Order *orderv1.Order `json:"order"`
}

type CheckoutServiceServer interface {
	GetOptions(context.Context, *GetOptionsRequest) (*GetOptionsResponse, error)
	Quote(context.Context, *QuoteRequest) (*QuoteResponse, error)
	PlaceOrder(context.Context, *PlaceOrderRequest) (*PlaceOrderResponse, error)
}

// UnimplementedCheckoutServiceServer can be embedded to stay forward compatible.
type UnimplementedCheckoutServiceServer struct{}

func (UnimplementedCheckoutServiceServer) GetOptions(context.Context, *GetOptionsRequest) (*GetOptionsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetOptions not implemented")
}

func (UnimplementedCheckoutServiceServer) Quote(context.Context, *QuoteRequest) (*QuoteResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Quote not implemented")
}

func (UnimplementedCheckoutServiceServer) PlaceOrder(context.Context, *PlaceOrderRequest) (*PlaceOrderResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method PlaceOrder not implemented")
}

var CheckoutService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CheckoutServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		rpc.Unary(ServiceName, "GetOptions", CheckoutServiceServer.GetOptions),
		rpc.Unary(ServiceName, "Quote", CheckoutServiceServer.Quote),
		rpc.Unary(ServiceName, "PlaceOrder", CheckoutServiceServer.PlaceOrder),
	},
}

func RegisterCheckoutServiceServer(s grpc.ServiceRegistrar, srv CheckoutServiceServer) {
	s.RegisterService(&CheckoutService_ServiceDesc, srv)
}

type CheckoutServiceClient interface {
	GetOptions(ctx context.Context, in *GetOptionsRequest, opts ...grpc.CallOption) (*GetOptionsResponse, error)
	Quote(ctx context.Context, in *QuoteRequest, opts ...grpc.CallOption) (*QuoteResponse, error)
	PlaceOrder(ctx context.Context, in *PlaceOrderRequest, opts ...grpc.CallOption) (*PlaceOrderResponse, error)
}

type checkoutServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCheckoutServiceClient(cc grpc.ClientConnInterface) CheckoutServiceClient {
	return &checkoutServiceClient{cc: cc}
}

func (c *checkoutServiceClient) GetOptions(ctx context.Context, in *GetOptionsRequest, opts ...grpc.CallOption) (*GetOptionsResponse, error) {
	return rpc.Invoke[GetOptionsResponse](ctx, c.cc, ServiceName, "GetOptions", in, opts...)
}

func (c *checkoutServiceClient) Quote(ctx context.Context, in *QuoteRequest, opts ...grpc.CallOption) (*QuoteResponse, error) {
	return rpc.Invoke[QuoteResponse](ctx, c.cc, ServiceName, "Quote", in, opts...)
}

func (c *checkoutServiceClient) PlaceOrder(ctx context.Context, in *PlaceOrderRequest, opts ...grpc.CallOption) (*PlaceOrderResponse, error) {
	return rpc.Invoke[PlaceOrderResponse](ctx, c.cc, ServiceName, "PlaceOrder", in, opts...)
}
