// Package sessionv1 is the wire contract of freshcart.session.v1.SessionService,
// the UI status flags of the running session.
package sessionv1

import (
	"context"

	"github.com/dwikikusuma/freshcart/pkg/rpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "freshcart.session.v1.SessionService"

type Status struct {
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
}

type GetStatusRequest struct{}

type SetLoadingRequest struct {
	Loading bool `json:"loading"`
}

type SetErrorRequest struct {
	Message string `json:"message"`
}

type ClearErrorRequest struct{}

type SessionServiceServer interface {
	GetStatus(context.Context, *GetStatusRequest) (*Status, error)
	SetLoading(context.Context, *SetLoadingRequest) (*Status, error)
	SetError(context.Context, *SetErrorRequest) (*Status, error)
	ClearError(context.Context, *ClearErrorRequest) (*Status, error)
}

// UnimplementedSessionServiceServer can be embedded to stay forward compatible.
type UnimplementedSessionServiceServer struct{}

func (UnimplementedSessionServiceServer) GetStatus(context.Context, *GetStatusRequest) (*Status, error) {
	return nil, status.Error(codes.Unimplemented, "method GetStatus not implemented")
}

func (UnimplementedSessionServiceServer) SetLoading(context.Context, *SetLoadingRequest) (*Status, error) {
	return nil, status.Error(codes.Unimplemented, "method SetLoading not implemented")
}

func (UnimplementedSessionServiceServer) SetError(context.Context, *SetErrorRequest) (*Status, error) {
	return nil, status.Error(codes.Unimplemented, "method SetError not implemented")
}

func (UnimplementedSessionServiceServer) ClearError(context.Context, *ClearErrorRequest) (*Status, error) {
	return nil, status.Error(codes.Unimplemented, "method ClearError not implemented")
}

var SessionService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*SessionServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		rpc.Unary(ServiceName, "GetStatus", SessionServiceServer.GetStatus),
		rpc.Unary(ServiceName, "SetLoading", SessionServiceServer.SetLoading),
		rpc.Unary(ServiceName, "SetError", SessionServiceServer.SetError),
		rpc.Unary(ServiceName, "ClearError", SessionServiceServer.ClearError),
	},
}

func RegisterSessionServiceServer(s grpc.ServiceRegistrar, srv SessionServiceServer) {
	s.RegisterService(&SessionService_ServiceDesc, srv)
}

type SessionServiceClient interface {
	GetStatus(ctx context.Context, in *GetStatusRequest, opts ...grpc.CallOption) (*Status, error)
	SetLoading(ctx context.Context, in *SetLoadingRequest, opts ...grpc.CallOption) (*Status, error)
	SetError(ctx context.Context, in *SetErrorRequest, opts ...grpc.CallOption) (*Status, error)
	ClearError(ctx context.Context, in *ClearErrorRequest, opts ...grpc.CallOption) (*Status, error)
}

type sessionServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewSessionServiceClient(cc grpc.ClientConnInterface) SessionServiceClient {
	return &sessionServiceClient{cc: cc}
}

func (c *sessionServiceClient) GetStatus(ctx context.Context, in *GetStatusRequest, opts ...grpc.CallOption) (*Status, error) {
	return rpc.Invoke[Status](ctx, c.cc, ServiceName, "GetStatus", in, opts...)
}

func (c *sessionServiceClient) SetLoading(ctx context.Context, in *SetLoadingRequest, opts ...grpc.CallOption) (*Status, error) {
	return rpc.Invoke[Status](ctx, c.cc, ServiceName, "SetLoading", in, opts...)
}

func (c *sessionServiceClient) SetError(ctx context.Context, in *SetErrorRequest, opts ...grpc.CallOption) (*Status, error) {
	return rpc.Invoke[Status](ctx, c.cc, ServiceName, "SetError", in, opts...)
}

func (c *sessionServiceClient) ClearError(ctx context.Context, in *ClearErrorRequest, opts ...grpc.CallOption) (*Status, error) {
	return rpc.Invoke[Status](ctx, c.cc, ServiceName, "ClearError", in, opts...)
}
