// Package profilev1 is the wire contract of freshcart.profile.v1.ProfileService.
package profilev1

import (
	"context"

	"github.com/dwikikusuma/freshcart/pkg/rpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "freshcart.profile.v1.ProfileService"

type User struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Avatar    string `json:"avatar"`
	Orders    int32  `json:"orders"`
	Addresses int32  `json:"addresses"`
	Language  string `json:"language"`
}

type GetUserRequest struct{}

// UpdateUserRequest is a partial update: absent fields are left unchanged.
type UpdateUserRequest struct {
	Name      *string `json:"name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Avatar    *string `json:"avatar,omitempty"`
	Orders    *int32  `json:"orders,omitempty"`
	Addresses *int32  `json:"addresses,omitempty"`
}

type SetLanguageRequest struct {
	Language string `json:"language"`
}

type TranslateRequest struct {
	Key string `json:"key"`
	// Language overrides the user's preference when set.
	Language string `json:"language,omitempty"`
}

type TranslateResponse struct {
	Key      string `json:"key"`
	Text     string `json:"text"`
	Language string `json:"language"`
}

type ProfileServiceServer interface {
	GetUser(context.Context, *GetUserRequest) (*User, error)
	UpdateUser(context.Context, *UpdateUserRequest) (*User, error)
	SetLanguage(context.Context, *SetLanguageRequest) (*User, error)
	Translate(context.Context, *TranslateRequest) (*TranslateResponse, error)
}

// UnimplementedProfileServiceServer can be embedded to stay forward compatible.
type UnimplementedProfileServiceServer struct{}

func (UnimplementedProfileServiceServer) GetUser(context.Context, *GetUserRequest) (*User, error) {
	return nil, status.Error(codes.Unimplemented, "method GetUser not implemented")
}

func (UnimplementedProfileServiceServer) UpdateUser(context.Context, *UpdateUserRequest) (*User, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateUser not implemented")
}

func (UnimplementedProfileServiceServer) SetLanguage(context.Context, *SetLanguageRequest) (*User, error) {
	return nil, status.Error(codes.Unimplemented, "method SetLanguage not implemented")
}

func (UnimplementedProfileServiceServer) Translate(context.Context, *TranslateRequest) (*TranslateResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Translate not implemented")
}

var ProfileService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ProfileServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		rpc.Unary(ServiceName, "GetUser", ProfileServiceServer.GetUser),
		rpc.Unary(ServiceName, "UpdateUser", ProfileServiceServer.UpdateUser),
		rpc.Unary(ServiceName, "SetLanguage", ProfileServiceServer.SetLanguage),
		rpc.Unary(ServiceName, "Translate", ProfileServiceServer.Translate),
	},
}

func RegisterProfileServiceServer(s grpc.ServiceRegistrar, srv ProfileServiceServer) {
	s.RegisterService(&ProfileService_ServiceDesc, srv)
}

type ProfileServiceClient interface {
	GetUser(ctx context.Context, in *GetUserRequest, opts ...grpc.CallOption) (*User, error)
	UpdateUser(ctx context.Context, in *UpdateUserRequest, opts ...grpc.CallOption) (*User, error)
	SetLanguage(ctx context.Context, in *SetLanguageRequest, opts ...grpc.CallOption) (*User, error)
	Translate(ctx context.Context, in *TranslateRequest, opts ...grpc.CallOption) (*TranslateResponse, error)
}

type profileServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewProfileServiceClient(cc grpc.ClientConnInterface) ProfileServiceClient {
	return &profileServiceClient{cc: cc}
}

func (c *profileServiceClient) GetUser(ctx context.Context, in *GetUserRequest, opts ...grpc.CallOption) (*User, error) {
	return rpc.Invoke[User](ctx, c.cc, ServiceName, "GetUser", in, opts...)
}

func (c *profileServiceClient) UpdateUser(ctx context.Context, in *UpdateUserRequest, opts ...grpc.CallOption) (*User, error) {
	return rpc.Invoke[User](ctx, c.cc, ServiceName, "UpdateUser", in, opts...)
}

func (c *profileServiceClient) SetLanguage(ctx context.Context, in *SetLanguageRequest, opts ...grpc.CallOption) (*User, error) {
	return rpc.Invoke[User](ctx, c.cc, ServiceName, "SetLanguage", in, opts...)
}

func (c *profileServiceClient) Translate(ctx context.Context, in *TranslateRequest, opts ...grpc.CallOption) (*TranslateResponse, error) {
	return rpc.Invoke[TranslateResponse](ctx, c.cc, ServiceName, "Translate", in, opts...)
}
