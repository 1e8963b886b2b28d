package market

import "errors"

// Failure taxonomy. Every public operation rejects atomically with exactly
// one of these classes; callers match with errors.Is.
var (
	// ErrNotFound: referenced order has zero quantity, or referenced
	// position has zero borrowed assets.
	ErrNotFound = errors.New("market: not found")

	// ErrInvalidArgument: a quantity or price argument is not positive.
	ErrInvalidArgument = errors.New("market: invalid argument")

	// ErrLimitExceeded: requested quantity exceeds a computed ceiling
	// (order balance, borrowed amount, available collateral).
	ErrLimitExceeded = errors.New("market: limit exceeded")

	// ErrUnauthorized: caller is not the order's maker.
	ErrUnauthorized = errors.New("market: unauthorized")

	// ErrCapacityExceeded: a fixed-capacity slot table has no free slot.
	ErrCapacityExceeded = errors.New("market: capacity exceeded")

	// ErrTransferFailed: the external token capability reported failure.
	ErrTransferFailed = errors.New("market: transfer failed")

	// ErrLiquidationShortfall: collateral seizure could not fully cover a
	// position's debt. Fatal to the enclosing take.
	ErrLiquidationShortfall = errors.New("market: liquidation shortfall")
)
