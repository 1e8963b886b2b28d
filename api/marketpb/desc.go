package marketpb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// MarketServiceServer is the server contract of the market API.
type MarketServiceServer interface {
	Deposit(context.Context, *DepositRequest) (*DepositResponse, error)
	Withdraw(context.Context, *WithdrawRequest) (*WithdrawResponse, error)
	Take(context.Context, *TakeRequest) (*TakeResponse, error)
	Borrow(context.Context, *BorrowRequest) (*BorrowResponse, error)
	Repay(context.Context, *RepayRequest) (*RepayResponse, error)
	GetOrder(context.Context, *GetOrderRequest) (*GetOrderResponse, error)
	GetUser(context.Context, *GetUserRequest) (*GetUserResponse, error)
	GetStats(context.Context, *GetStatsRequest) (*GetStatsResponse, error)
}

// UnimplementedMarketServiceServer keeps the API forward compatible:
// embed it and new methods fail with Unimplemented instead of breaking
// the build.
type UnimplementedMarketServiceServer struct{}

func (UnimplementedMarketServiceServer) Deposit(context.Context, *DepositRequest) (*DepositResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Deposit not implemented")
}
func (UnimplementedMarketServiceServer) Withdraw(context.Context, *WithdrawRequest) (*WithdrawResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Withdraw not implemented")
}
func (UnimplementedMarketServiceServer) Take(context.Context, *TakeRequest) (*TakeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Take not implemented")
}
func (UnimplementedMarketServiceServer) Borrow(context.Context, *BorrowRequest) (*BorrowResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Borrow not implemented")
}
func (UnimplementedMarketServiceServer) Repay(context.Context, *RepayRequest) (*RepayResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Repay not implemented")
}
func (UnimplementedMarketServiceServer) GetOrder(context.Context, *GetOrderRequest) (*GetOrderResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetOrder not implemented")
}
func (UnimplementedMarketServiceServer) GetUser(context.Context, *GetUserRequest) (*GetUserResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetUser not implemented")
}
func (UnimplementedMarketServiceServer) GetStats(context.Context, *GetStatsRequest) (*GetStatsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetStats not implemented")
}

// RegisterMarketServiceServer wires an implementation into a gRPC server.
func RegisterMarketServiceServer(s grpc.ServiceRegistrar, srv MarketServiceServer) {
	s.RegisterService(&MarketService_ServiceDesc, srv)
}

func _MarketService_Deposit_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(DepositRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MarketServiceServer).Deposit(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/forseti.MarketService/Deposit"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(MarketServiceServer).Deposit(ctx, req.(*DepositRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MarketService_Withdraw_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(WithdrawRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MarketServiceServer).Withdraw(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/forseti.MarketService/Withdraw"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(MarketServiceServer).Withdraw(ctx, req.(*WithdrawRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MarketService_Take_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(TakeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MarketServiceServer).Take(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/forseti.MarketService/Take"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(MarketServiceServer).Take(ctx, req.(*TakeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MarketService_Borrow_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(BorrowRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MarketServiceServer).Borrow(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/forseti.MarketService/Borrow"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(MarketServiceServer).Borrow(ctx, req.(*BorrowRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MarketService_Repay_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(RepayRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MarketServiceServer).Repay(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/forseti.MarketService/Repay"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(MarketServiceServer).Repay(ctx, req.(*RepayRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MarketService_GetOrder_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetOrderRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MarketServiceServer).GetOrder(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/forseti.MarketService/GetOrder"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(MarketServiceServer).GetOrder(ctx, req.(*GetOrderRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MarketService_GetUser_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetUserRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MarketServiceServer).GetUser(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/forseti.MarketService/GetUser"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(MarketServiceServer).GetUser(ctx, req.(*GetUserRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MarketService_GetStats_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetStatsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MarketServiceServer).GetStats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/forseti.MarketService/GetStats"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(MarketServiceServer).GetStats(ctx, req.(*GetStatsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// MarketService_ServiceDesc is the grpc.ServiceDesc for MarketService.
var MarketService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "forseti.MarketService",
	HandlerType: (*MarketServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Deposit", Handler: _MarketService_Deposit_Handler},
		{MethodName: "Withdraw", Handler: _MarketService_Withdraw_Handler},
		{MethodName: "Take", Handler: _MarketService_Take_Handler},
		{MethodName: "Borrow", Handler: _MarketService_Borrow_Handler},
		{MethodName: "Repay", Handler: _MarketService_Repay_Handler},
		{MethodName: "GetOrder", Handler: _MarketService_GetOrder_Handler},
		{MethodName: "GetUser", Handler: _MarketService_GetUser_Handler},
		{MethodName: "GetStats", Handler: _MarketService_GetStats_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "api/marketpb/messages.go",
}
