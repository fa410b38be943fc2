package posv1

import (
	"context"

	"google.golang.org/grpc"
)

const (
	ReportService_TopStock_FullMethodName        = "/pos.v1.ReportService/TopStock"
	ReportService_SalesByCategory_FullMethodName = "/pos.v1.ReportService/SalesByCategory"
)

type ReportServiceServer interface {
	TopStock(context.Context, *Empty) (*TopStockResponse, error)
	SalesByCategory(context.Context, *Empty) (*SalesByCategoryResponse, error)
}

var ReportService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "pos.v1.ReportService",
	HandlerType: (*ReportServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "TopStock", Handler: unary(ReportService_TopStock_FullMethodName, ReportServiceServer.TopStock)},
		{MethodName: "SalesByCategory", Handler: unary(ReportService_SalesByCategory_FullMethodName, ReportServiceServer.SalesByCategory)},
	},
	Streams: []grpc.StreamDesc{},
}

func RegisterReportServiceServer(s grpc.ServiceRegistrar, srv ReportServiceServer) {
	s.RegisterService(&ReportService_ServiceDesc, srv)
}

type ReportServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewReportServiceClient(cc grpc.ClientConnInterface) *ReportServiceClient {
	return &ReportServiceClient{cc: cc}
}

func (c *ReportServiceClient) TopStock(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*TopStockResponse, error) {
	return invoke[TopStockResponse](ctx, c.cc, ReportService_TopStock_FullMethodName, in, opts)
}

func (c *ReportServiceClient) SalesByCategory(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*SalesByCategoryResponse, error) {
	return invoke[SalesByCategoryResponse](ctx, c.cc, ReportService_SalesByCategory_FullMethodName, in, opts)
}
