// Package grpc exposes the UI status flags of the session store.
package grpc

import (
	"context"

	sessionv1 "github.com/dwikikusuma/freshcart/api/session/v1"
	"github.com/dwikikusuma/freshcart/internal/state"
)

type Server struct {
	sessionv1.UnimplementedSessionServiceServer
}

func NewServer() *Server {
	return &Server{}
}

func (s *Server) GetStatus(ctx context.Context, _ *sessionv1.GetStatusRequest) (*sessionv1.Status, error) {
	return toProto(state.Use(ctx).Status()), nil
}

func (s *Server) SetLoading(ctx context.Context, req *sessionv1.SetLoadingRequest) (*sessionv1.Status, error) {
	store := state.Use(ctx)
	store.SetLoading(req.Loading)
	return toProto(store.Status()), nil
}

func (s *Server) SetError(ctx context.Context, req *sessionv1.SetErrorRequest) (*sessionv1.Status, error) {
	store := state.Use(ctx)
	store.SetError(req.Message)
	return toProto(store.Status()), nil
}

func (s *Server) ClearError(ctx context.Context, _ *sessionv1.ClearErrorRequest) (*sessionv1.Status, error) {
	store := state.Use(ctx)
	store.ClearError()
	return toProto(store.Status()), nil
}

func toProto(st state.Status) *sessionv1.Status {
	return &sessionv1.Status{Loading: st.Loading, Error: st.Error}
}
