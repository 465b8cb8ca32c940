package grpc

import (
	"context"
	"errors"

	profilev1 "github.com/dwikikusuma/freshcart/api/profile/v1"
	"github.com/dwikikusuma/freshcart/internal/profile/app"
	"github.com/dwikikusuma/freshcart/internal/profile/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Server struct {
	profilev1.UnimplementedProfileServiceServer
	svc *app.Service
}

func NewServer(svc *app.Service) *Server {
	return &Server{svc: svc}
}

func (s *Server) GetUser(ctx context.Context, _ *profilev1.GetUserRequest) (*profilev1.User, error) {
	return toProto(s.svc.GetUser(ctx)), nil
}

func (s *Server) UpdateUser(ctx context.Context, req *profilev1.UpdateUserRequest) (*profilev1.User, error) {
	patch := domain.UserPatch{
		Name:   req.Name,
		Email:  req.Email,
		Avatar: req.Avatar,
	}
	if req.Orders != nil {
		n := int(*req.Orders)
		patch.Orders = &n
	}
	if req.Addresses != nil {
		n := int(*req.Addresses)
		patch.Addresses = &n
	}

	u, err := s.svc.UpdateUser(ctx, patch)
	if err != nil {
		return nil, mapErr(err)
	}
	return toProto(u), nil
}

func (s *Server) SetLanguage(ctx context.Context, req *profilev1.SetLanguageRequest) (*profilev1.User, error) {
	u, err := s.svc.SetLanguage(ctx, req.Language)
	if err != nil {
		return nil, mapErr(err)
	}
	return toProto(u), nil
}

func (s *Server) Translate(ctx context.Context, req *profilev1.TranslateRequest) (*profilev1.TranslateResponse, error) {
	text, lang, err := s.svc.Translate(ctx, req.Key, req.Language)
	if err != nil {
		return nil, mapErr(err)
	}
	return &profilev1.TranslateResponse{Key: req.Key, Text: text, Language: lang}, nil
}

func toProto(u domain.User) *profilev1.User {
	return &profilev1.User{
		Name:      u.Name,
		Email:     u.Email,
		Avatar:    u.Avatar,
		Orders:    int32(u.Orders),
		Addresses: int32(u.Addresses),
		Language:  u.Language,
	}
}

func mapErr(err error) error {
	if errors.Is(err, app.ErrInvalidInput) {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	return status.Error(codes.Internal, "internal error")
}
