// Package catalogv1 is the wire contract of freshcart.catalog.v1.CatalogService.
package catalogv1

import (
	"context"

	commonv1 "github.com/dwikikusuma/freshcart/api/common/v1"
	"github.com/dwikikusuma/freshcart/pkg/rpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "freshcart.catalog.v1.CatalogService"

type Product struct {
	Id              string          `json:"id"`
	Title           string          `json:"title"`
	Price           *commonv1.Money `json:"price"`
	OriginalPrice   *commonv1.Money `json:"original_price"`
	DiscountPercent int32           `json:"discount_percent"`
	Image           string          `json:"image"`
	Category        string          `json:"category"`
	Description     string          `json:"description"`
	InStock         bool            `json:"in_stock"`
	Rating          float64         `json:"rating"`
	Reviews         int32           `json:"reviews"`
}

type Category struct {
	Id    string `json:"id"`
	Title string `json:"title"`
	Image string `json:"image"`
}

type GetProductRequest struct {
	Id string `json:"id"`
}

type GetProductResponse struct {
	Product *Product `json:"product"`
}

type ListProductsRequest struct {
	Category    string `json:"category,omitempty"`
	Search      string `json:"search,omitempty"`
	InStockOnly bool   `json:"in_stock_only,omitempty"`
	Sort        string `json:"sort,omitempty"`
	Limit       int32  `json:"limit,omitempty"`
	Cursor      string `json:"cursor,omitempty"`
}

type ListProductsResponse struct {
	Products   []*Product `json:"products"`
	NextCursor string     `json:"next_cursor,omitempty"`
}

type ListCategoriesRequest struct{}

type ListCategoriesResponse struct {
	Categories []*Category `json:"categories"`
}

type CatalogServiceServer interface {
	GetProduct(context.Context, *GetProductRequest) (*GetProductResponse, error)
	ListProducts(context.Context, *ListProductsRequest) (*ListProductsResponse, error)
	ListCategories(context.Context, *ListCategoriesRequest) (*ListCategoriesResponse, error)
}

// UnimplementedCatalogServiceServer can be embedded to stay forward compatible.
type UnimplementedCatalogServiceServer struct{}

func (UnimplementedCatalogServiceServer) GetProduct(context.Context, *GetProductRequest) (*GetProductResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetProduct not implemented")
}

func (UnimplementedCatalogServiceServer) ListProducts(context.Context, *ListProductsRequest) (*ListProductsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListProducts not implemented")
}

func (UnimplementedCatalogServiceServer) ListCategories(context.Context, *ListCategoriesRequest) (*ListCategoriesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListCategories not implemented")
}

var CatalogService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CatalogServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		rpc.Unary(ServiceName, "GetProduct", CatalogServiceServer.GetProduct),
		rpc.Unary(ServiceName, "ListProducts", CatalogServiceServer.ListProducts),
		rpc.Unary(ServiceName, "ListCategories", CatalogServiceServer.ListCategories),
	},
}

func RegisterCatalogServiceServer(s grpc.ServiceRegistrar, srv CatalogServiceServer) {
	s.RegisterService(&CatalogService_ServiceDesc, srv)
}

type CatalogServiceClient interface {
	GetProduct(ctx context.Context, in *GetProductRequest, opts ...grpc.CallOption) (*GetProductResponse, error)
	ListProducts(ctx context.Context, in *ListProductsRequest, opts ...grpc.CallOption) (*ListProductsResponse, error)
	ListCategories(ctx context.Context, in *ListCategoriesRequest, opts ...grpc.CallOption) (*ListCategoriesResponse, error)
}

type catalogServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCatalogServiceClient(cc grpc.ClientConnInterface) CatalogServiceClient {
	return &catalogServiceClient{cc: cc}
}

func (c *catalogServiceClient) GetProduct(ctx context.Context, in *GetProductRequest, opts ...grpc.CallOption) (*GetProductResponse, error) {
	return rpc.Invoke[GetProductResponse](ctx, c.cc, ServiceName, "GetProduct", in, opts...)
}

func (c *catalogServiceClient) ListProducts(ctx context.Context, in *ListProductsRequest, opts ...grpc.CallOption) (*ListProductsResponse, error) {
	return rpc.Invoke[ListProductsResponse](ctx, c.cc, ServiceName, "ListProducts", in, opts...)
}

func (c *catalogServiceClient) ListCategories(ctx context.Context, in *ListCategoriesRequest, opts ...grpc.CallOption) (*ListCategoriesResponse, error) {
	return rpc.Invoke[ListCategoriesResponse](ctx, c.cc, ServiceName, "ListCategories", in, opts...)
}
