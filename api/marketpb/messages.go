// Package marketpb is the wire contract of the market API: message types,
// the JSON codec and the hand-maintained service descriptor. Keeping the
// descriptor in plain Go (instead of committing protoc output) keeps the
// transport reviewable in one file; the shape mirrors what protoc-gen-go
// would emit so a generated contract can replace it without touching
// callers.
package marketpb

// -------------------- Commands --------------------

type DepositRequest struct {
	User     uint64 `json:"user"`
	Quantity uint64 `json:"qty"`
	Price    uint64 `json:"price"`
	IsBuy    bool   `json:"is_buy"`
}

type DepositResponse struct {
	OrderId uint64 `json:"order_id"`
	Seq     uint64 `json:"seq"`
}

type WithdrawRequest struct {
	User     uint64 `json:"user"`
	OrderId  uint64 `json:"order_id"`
	Quantity uint64 `json:"qty"`
}

type WithdrawResponse struct {
	Out uint64 `json:"out"`
	Seq uint64 `json:"seq"`
}

type TakeRequest struct {
	User     uint64 `json:"user"`
	OrderId  uint64 `json:"order_id"`
	Quantity uint64 `json:"qty"`
}

type TakeResponse struct {
	Out  uint64 `json:"out"`
	Paid uint64 `json:"paid"`
	Seq  uint64 `json:"seq"`
}

type BorrowRequest struct {
	User     uint64 `json:"user"`
	OrderId  uint64 `json:"order_id"`
	Quantity uint64 `json:"qty"`
}

type BorrowResponse struct {
	Out uint64 `json:"out"`
	Seq uint64 `json:"seq"`
}

type RepayRequest struct {
	User     uint64 `json:"user"`
	OrderId  uint64 `json:"order_id"`
	Quantity uint64 `json:"qty"`
}

type RepayResponse struct {
	Seq uint64 `json:"seq"`
}

// -------------------- Queries --------------------

type GetOrderRequest struct {
	OrderId uint64 `json:"order_id"`
	// Quantity sizes the outable computation; zero asks for the full
	// non-borrowed balance.
	Quantity uint64 `json:"qty,omitempty"`
}

type GetOrderResponse struct {
	Maker     uint64 `json:"maker"`
	Available uint64 `json:"available"`
	Outable   uint64 `json:"outable"`
}

type GetUserRequest struct {
	User uint64 `json:"user"`
}

// Per-asset projections of the collateral accountant, both sides.
type GetUserResponse struct {
	QuoteDeposits     uint64 `json:"quote_deposits"`
	BaseDeposits      uint64 `json:"base_deposits"`
	QuoteBorrowedFrom uint64 `json:"quote_borrowed_from"`
	BaseBorrowedFrom  uint64 `json:"base_borrowed_from"`
	QuoteNeeded       uint64 `json:"quote_needed"`
	BaseNeeded        uint64 `json:"base_needed"`
	QuoteExcess       uint64 `json:"quote_excess"`
	BaseExcess        uint64 `json:"base_excess"`
}

type GetStatsRequest struct{}

type GetStatsResponse struct {
	LiveOrders    uint64 `json:"live_orders"`
	LivePositions uint64 `json:"live_positions"`
	LastSeq       uint64 `json:"last_seq"`
}
