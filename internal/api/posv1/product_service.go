package posv1

import (
	"context"

	"google.golang.org/grpc"
)

const (
	ProductService_RegisterProduct_FullMethodName = "/pos.v1.ProductService/RegisterProduct"
	ProductService_GetProduct_FullMethodName      = "/pos.v1.ProductService/GetProduct"
	ProductService_SearchProducts_FullMethodName  = "/pos.v1.ProductService/SearchProducts"
	ProductService_DeleteProduct_FullMethodName   = "/pos.v1.ProductService/DeleteProduct"
	ProductService_Restock_FullMethodName         = "/pos.v1.ProductService/Restock"
)

type ProductServiceServer interface {
	RegisterProduct(context.Context, *RegisterProductRequest) (*ProductResponse, error)
	GetProduct(context.Context, *GetProductRequest) (*ProductResponse, error)
	SearchProducts(context.Context, *SearchProductsRequest) (*SearchProductsResponse, error)
	DeleteProduct(context.Context, *DeleteProductRequest) (*Empty, error)
	Restock(context.Context, *RestockRequest) (*ProductResponse, error)
}

var ProductService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "pos.v1.ProductService",
	HandlerType: (*ProductServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "RegisterProduct", Handler: unary(ProductService_RegisterProduct_FullMethodName, ProductServiceServer.RegisterProduct)},
		{MethodName: "GetProduct", Handler: unary(ProductService_GetProduct_FullMethodName, ProductServiceServer.GetProduct)},
		{MethodName: "SearchProducts", Handler: unary(ProductService_SearchProducts_FullMethodName, ProductServiceServer.SearchProducts)},
		{MethodName: "DeleteProduct", Handler: unary(ProductService_DeleteProduct_FullMethodName, ProductServiceServer.DeleteProduct)},
		{MethodName: "Restock", Handler: unary(ProductService_Restock_FullMethodName, ProductServiceServer.Restock)},
	},
	Streams: []grpc.StreamDesc{},
}

func RegisterProductServiceServer(s grpc.ServiceRegistrar, srv ProductServiceServer) {
	s.RegisterService(&ProductService_ServiceDesc, srv)
}

type ProductServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewProductServiceClient(cc grpc.ClientConnInterface) *ProductServiceClient {
	return &ProductServiceClient{cc: cc}
}

func (c *ProductServiceClient) RegisterProduct(ctx context.Context, in *RegisterProductRequest, opts ...grpc.CallOption) (*ProductResponse, error) {
	return invoke[ProductResponse](ctx, c.cc, ProductService_RegisterProduct_FullMethodName, in, opts)
}

func (c *ProductServiceClient) GetProduct(ctx context.Context, in *GetProductRequest, opts ...grpc.CallOption) (*ProductResponse, error) {
	return invoke[ProductResponse](ctx, c.cc, ProductService_GetProduct_FullMethodName, in, opts)
}

func (c *ProductServiceClient) SearchProducts(ctx context.Context, in *SearchProductsRequest, opts ...grpc.CallOption) (*SearchProductsResponse, error) {
	return invoke[SearchProductsResponse](ctx, c.cc, ProductService_SearchProducts_FullMethodName, in, opts)
}

func (c *ProductServiceClient) DeleteProduct(ctx context.Context, in *DeleteProductRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, ProductService_DeleteProduct_FullMethodName, in, opts)
}

func (c *ProductServiceClient) Restock(ctx context.Context, in *RestockRequest, opts ...grpc.CallOption) (*ProductResponse, error) {
	return invoke[ProductResponse](ctx, c.cc, ProductService_Restock_FullMethodName, in, opts)
}
