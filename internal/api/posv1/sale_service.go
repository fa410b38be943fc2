package posv1

import (
	"context"

	"google.golang.org/grpc"
)

const (
	SaleService_FinalizeSale_FullMethodName = "/pos.v1.SaleService/FinalizeSale"
	SaleService_GetSale_FullMethodName      = "/pos.v1.SaleService/GetSale"
	SaleService_GetNotice_FullMethodName    = "/pos.v1.SaleService/GetNotice"
)

type SaleServiceServer interface {
	FinalizeSale(context.Context, *FinalizeSaleRequest) (*SaleResponse, error)
	GetSale(context.Context, *GetSaleRequest) (*SaleResponse, error)
	GetNotice(context.Context, *Empty) (*NoticeResponse, error)
}

var SaleService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "pos.v1.SaleService",
	HandlerType: (*SaleServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "FinalizeSale", Handler: unary(SaleService_FinalizeSale_FullMethodName, SaleServiceServer.FinalizeSale)},
		{MethodName: "GetSale", Handler: unary(SaleService_GetSale_FullMethodName, SaleServiceServer.GetSale)},
		{MethodName: "GetNotice", Handler: unary(SaleService_GetNotice_FullMethodName, SaleServiceServer.GetNotice)},
	},
	Streams: []grpc.StreamDesc{},
}

func RegisterSaleServiceServer(s grpc.ServiceRegistrar, srv SaleServiceServer) {
	s.RegisterService(&SaleService_ServiceDesc, srv)
}

type SaleServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewSaleServiceClient(cc grpc.ClientConnInterface) *SaleServiceClient {
	return &SaleServiceClient{cc: cc}
}

func (c *SaleServiceClient) FinalizeSale(ctx context.Context, in *FinalizeSaleRequest, opts ...grpc.CallOption) (*SaleResponse, error) {
	return invoke[SaleResponse](ctx, c.cc, SaleService_FinalizeSale_FullMethodName, in, opts)
}

func (c *SaleServiceClient) GetSale(ctx context.Context, in *GetSaleRequest, opts ...grpc.CallOption) (*SaleResponse, error) {
	return invoke[SaleResponse](ctx, c.cc, SaleService_GetSale_FullMethodName, in, opts)
}

func (c *SaleServiceClient) GetNotice(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*NoticeResponse, error) {
	return invoke[NoticeResponse](ctx, c.cc, SaleService_GetNotice_FullMethodName, in, opts)
}
