package posv1

import (
	"context"

	"google.golang.org/grpc"
)

// Cart calls act on the session named by the x-session-id metadata key.
const (
	CartService_StartSession_FullMethodName   = "/pos.v1.CartService/StartSession"
	CartService_ViewCart_FullMethodName       = "/pos.v1.CartService/ViewCart"
	CartService_AddToCart_FullMethodName      = "/pos.v1.CartService/AddToCart"
	CartService_RemoveFromCart_FullMethodName = "/pos.v1.CartService/RemoveFromCart"
	CartService_ClearCart_FullMethodName      = "/pos.v1.CartService/ClearCart"
	CartService_OpenCheckout_FullMethodName   = "/pos.v1.CartService/OpenCheckout"
)

type CartServiceServer interface {
	StartSession(context.Context, *Empty) (*CartResponse, error)
	ViewCart(context.Context, *Empty) (*CartResponse, error)
	AddToCart(context.Context, *AddToCartRequest) (*CartResponse, error)
	RemoveFromCart(context.Context, *RemoveFromCartRequest) (*CartResponse, error)
	ClearCart(context.Context, *Empty) (*CartResponse, error)
	OpenCheckout(context.Context, *Empty) (*CartResponse, error)
}

var CartService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "pos.v1.CartService",
	HandlerType: (*CartServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "StartSession", Handler: unary(CartService_StartSession_FullMethodName, CartServiceServer.StartSession)},
		{MethodName: "ViewCart", Handler: unary(CartService_ViewCart_FullMethodName, CartServiceServer.ViewCart)},
		{MethodName: "AddToCart", Handler: unary(CartService_AddToCart_FullMethodName, CartServiceServer.AddToCart)},
		{MethodName: "RemoveFromCart", Handler: unary(CartService_RemoveFromCart_FullMethodName, CartServiceServer.RemoveFromCart)},
		{MethodName: "ClearCart", Handler: unary(CartService_ClearCart_FullMethodName, CartServiceServer.ClearCart)},
		{MethodName: "OpenCheckout", Handler: unary(CartService_OpenCheckout_FullMethodName, CartServiceServer.OpenCheckout)},
	},
	Streams: []grpc.StreamDesc{},
}

func RegisterCartServiceServer(s grpc.ServiceRegistrar, srv CartServiceServer) {
	s.RegisterService(&CartService_ServiceDesc, srv)
}

type CartServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCartServiceClient(cc grpc.ClientConnInterface) *CartServiceClient {
	return &CartServiceClient{cc: cc}
}

func (c *CartServiceClient) StartSession(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*CartResponse, error) {
	return invoke[CartResponse](ctx, c.cc, CartService_StartSession_FullMethodName, in, opts)
}

func (c *CartServiceClient) ViewCart(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*CartResponse, error) {
	return invoke[CartResponse](ctx, c.cc, CartService_ViewCart_FullMethodName, in, opts)
}

func (c *CartServiceClient) AddToCart(ctx context.Context, in *AddToCartRequest, opts ...grpc.CallOption) (*CartResponse, error) {
	return invoke[CartResponse](ctx, c.cc, CartService_AddToCart_FullMethodName, in, opts)
}

func (c *CartServiceClient) RemoveFromCart(ctx context.Context, in *RemoveFromCartRequest, opts ...grpc.CallOption) (*CartResponse, error) {
	return invoke[CartResponse](ctx, c.cc, CartService_RemoveFromCart_FullMethodName, in, opts)
}

func (c *CartServiceClient) ClearCart(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*CartResponse, error) {
	return invoke[CartResponse](ctx, c.cc, CartService_ClearCart_FullMethodName, in, opts)
}

func (c *CartServiceClient) OpenCheckout(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*CartResponse, error) {
	return invoke[CartResponse](ctx, c.cc, CartService_OpenCheckout_FullMethodName, in, opts)
}
