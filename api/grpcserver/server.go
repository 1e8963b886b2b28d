package grpcserver

import (
	"context"
	"errors"
	"log"

	pb "forseti/api/marketpb"
	"forseti/domain/market"
	"forseti/infra/sequence"
	"forseti/service"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Server adapts MarketService to gRPC.
type Server struct {
	pb.UnimplementedMarketServiceServer
	svc    *service.MarketService
	seqGen *sequence.Sequencer
}

func NewServer(svc *service.MarketService, seqGen *sequence.Sequencer) *Server {
	return &Server{svc: svc, seqGen: seqGen}
}

// -------------------- Commands --------------------

func (s *Server) Deposit(
	ctx context.Context,
	req *pb.DepositRequest,
) (*pb.DepositResponse, error) {
	id, seq, err := s.svc.Deposit(req.User, req.Quantity, req.Price, req.IsBuy)
	if err != nil {
		return nil, toStatus(err)
	}

	log.Printf(
		"[grpc] Deposit user=%d qty=%d price=%d buy=%v order=%d seq=%d",
		req.User, req.Quantity, req.Price, req.IsBuy, id, seq,
	)

	return &pb.DepositResponse{OrderId: uint64(id), Seq: seq}, nil
}

func (s *Server) Withdraw(
	ctx context.Context,
	req *pb.WithdrawRequest,
) (*pb.WithdrawResponse, error) {
	out, seq, err := s.svc.Withdraw(req.User, market.OrderID(req.OrderId), req.Quantity)
	if err != nil {
		return nil, toStatus(err)
	}

	log.Printf(
		"[grpc] Withdraw user=%d order=%d out=%d seq=%d",
		req.User, req.OrderId, out, seq,
	)

	return &pb.WithdrawResponse{Out: out, Seq: seq}, nil
}

func (s *Server) Take(
	ctx context.Context,
	req *pb.TakeRequest,
) (*pb.TakeResponse, error) {
	out, paid, seq, err := s.svc.Take(req.User, market.OrderID(req.OrderId), req.Quantity)
	if err != nil {
		return nil, toStatus(err)
	}

	log.Printf(
		"[grpc] Take user=%d order=%d out=%d paid=%d seq=%d",
		req.User, req.OrderId, out, paid, seq,
	)

	return &pb.TakeResponse{Out: out, Paid: paid, Seq: seq}, nil
}

func (s *Server) Borrow(
	ctx context.Context,
	req *pb.BorrowRequest,
) (*pb.BorrowResponse, error) {
	out, seq, err := s.svc.Borrow(req.User, market.OrderID(req.OrderId), req.Quantity)
	if err != nil {
		return nil, toStatus(err)
	}

	log.Printf(
		"[grpc] Borrow user=%d order=%d out=%d seq=%d",
		req.User, req.OrderId, out, seq,
	)

	return &pb.BorrowResponse{Out: out, Seq: seq}, nil
}

func (s *Server) Repay(
	ctx context.Context,
	req *pb.RepayRequest,
) (*pb.RepayResponse, error) {
	seq, err := s.svc.Repay(req.User, market.OrderID(req.OrderId), req.Quantity)
	if err != nil {
		return nil, toStatus(err)
	}

	log.Printf(
		"[grpc] Repay user=%d order=%d qty=%d seq=%d",
		req.User, req.OrderId, req.Quantity, seq,
	)

	return &pb.RepayResponse{Seq: seq}, nil
}

// -------------------- Queries --------------------

func (s *Server) GetOrder(
	ctx context.Context,
	req *pb.GetOrderRequest,
) (*pb.GetOrderResponse, error) {
	m := s.svc.Market()

	maker, err := m.Maker(market.OrderID(req.OrderId))
	if err != nil {
		return nil, toStatus(err)
	}

	avail := m.Available(market.OrderID(req.OrderId))
	reqQty := req.Quantity
	if reqQty == 0 {
		reqQty = avail
	}

	return &pb.GetOrderResponse{
		Maker:     maker,
		Available: avail,
		Outable:   m.Outable(market.OrderID(req.OrderId), reqQty),
	}, nil
}

func (s *Server) GetUser(
	ctx context.Context,
	req *pb.GetUserRequest,
) (*pb.GetUserResponse, error) {
	m := s.svc.Market()

	return &pb.GetUserResponse{
		QuoteDeposits:     m.TotalDeposits(req.User, true),
		BaseDeposits:      m.TotalDeposits(req.User, false),
		QuoteBorrowedFrom: m.TotalBorrowedFrom(req.User, true),
		BaseBorrowedFrom:  m.TotalBorrowedFrom(req.User, false),
		QuoteNeeded:       m.NeededCollateral(req.User, true),
		BaseNeeded:        m.NeededCollateral(req.User, false),
		QuoteExcess:       m.ExcessCollateral(req.User, true),
		BaseExcess:        m.ExcessCollateral(req.User, false),
	}, nil
}

func (s *Server) GetStats(
	ctx context.Context,
	req *pb.GetStatsRequest,
) (*pb.GetStatsResponse, error) {
	m := s.svc.Market()

	return &pb.GetStatsResponse{
		LiveOrders:    uint64(m.LiveOrders()),
		LivePositions: uint64(m.LivePositions()),
		LastSeq:       s.seqGen.Current(),
	}, nil
}

// -------------------- Error mapping --------------------

// toStatus translates the ledger failure taxonomy onto gRPC codes.
func toStatus(err error) error {
	var code codes.Code
	switch {
	case errors.Is(err, market.ErrNotFound):
		code = codes.NotFound
	case errors.Is(err, market.ErrInvalidArgument):
		code = codes.InvalidArgument
	case errors.Is(err, market.ErrLimitExceeded):
		code = codes.FailedPrecondition
	case errors.Is(err, market.ErrUnauthorized):
		code = codes.PermissionDenied
	case errors.Is(err, market.ErrCapacityExceeded):
		code = codes.ResourceExhausted
	case errors.Is(err, market.ErrTransferFailed),
		errors.Is(err, market.ErrLiquidationShortfall):
		code = codes.Aborted
	default:
		code = codes.Internal
	}
	return status.Error(code, err.Error())
}
