package posv1

import (
	"context"

	"google.golang.org/grpc"
)

const CategoryService_ListCategories_FullMethodName = "/pos.v1.CategoryService/ListCategories"

type CategoryServiceServer interface {
	ListCategories(context.Context, *Empty) (*ListCategoriesResponse, error)
}

var CategoryService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "pos.v1.CategoryService",
	HandlerType: (*CategoryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListCategories", Handler: unary(CategoryService_ListCategories_FullMethodName, CategoryServiceServer.ListCategories)},
	},
	Streams: []grpc.StreamDesc{},
}

func RegisterCategoryServiceServer(s grpc.ServiceRegistrar, srv CategoryServiceServer) {
	s.RegisterService(&CategoryService_ServiceDesc, srv)
}

type CategoryServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCategoryServiceClient(cc grpc.ClientConnInterface) *CategoryServiceClient {
	return &CategoryServiceClient{cc: cc}
}

func (c *CategoryServiceClient) ListCategories(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ListCategoriesResponse, error) {
	return invoke[ListCategoriesResponse](ctx, c.cc, CategoryService_ListCategories_FullMethodName, in, opts)
}
