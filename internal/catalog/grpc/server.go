package grpc

import (
	"context"
	"errors"

	catalogv1 "github.com/dwikikusuma/freshcart/api/catalog/v1"
	commonv1 "github.com/dwikikusuma/freshcart/api/common/v1"
	"github.com/dwikikusuma/freshcart/internal/catalog/app"
	"github.com/dwikikusuma/freshcart/internal/catalog/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Server struct {
	catalogv1.UnimplementedCatalogServiceServer
	svc *app.Service
}

func NewServer(svc *app.Service) *Server {
	return &Server{svc: svc}
}

func (s *Server) GetProduct(ctx context.Context, req *catalogv1.GetProductRequest) (*catalogv1.GetProductResponse, error) {
	p, err := s.svc.GetProduct(ctx, req.Id)
	if err != nil {
		return nil, mapErr(err)
	}
	return &catalogv1.GetProductResponse{Product: toProto(p)}, nil
}

func (s *Server) ListProducts(ctx context.Context, req *catalogv1.ListProductsRequest) (*catalogv1.ListProductsResponse, error) {
	products, next, err := s.svc.ListProducts(ctx, domain.ListQuery{
		Category:    req.Category,
		Search:      req.Search,
		InStockOnly: req.InStockOnly,
		Sort:        domain.SortOrder(req.Sort),
		Limit:       int(req.Limit),
		Cursor:      req.Cursor,
	})
	if err != nil {
		return nil, mapErr(err)
	}

	out := make([]*catalogv1.Product, 0, len(products))
	for _, p := range products {
		out = append(out, toProto(p))
	}

	return &catalogv1.ListProductsResponse{Products: out, NextCursor: next}, nil
}

func (s *Server) ListCategories(ctx context.Context, _ *catalogv1.ListCategoriesRequest) (*catalogv1.ListCategoriesResponse, error) {
	categories, err := s.svc.ListCategories(ctx)
	if err != nil {
		return nil, mapErr(err)
	}

	out := make([]*catalogv1.Category, 0, len(categories))
	for _, c := range categories {
		out = append(out, &catalogv1.Category{Id: c.ID, Title: c.Title, Image: c.Image})
	}
	return &catalogv1.ListCategoriesResponse{Categories: out}, nil
}

func toProto(p domain.Product) *catalogv1.Product {
	return &catalogv1.Product{
		Id:              p.ID,
		Title:           p.Title,
		Price:           commonv1.NewMoney(p.Price),
		OriginalPrice:   commonv1.NewMoney(p.OriginalPrice),
		DiscountPercent: int32(p.DiscountPercent()),
		Image:           p.Image,
		Category:        p.Category,
		Description:     p.Description,
		InStock:         p.InStock,
		Rating:          p.Rating,
		Reviews:         int32(p.Reviews),
	}
}

func mapErr(err error) error {
	if errors.Is(err, app.ErrInvalidInput) {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	if errors.Is(err, app.ErrNotFound) {
		return status.Error(codes.NotFound, err.Error())
	}
	return status.Error(codes.Internal, "internal error")
}
