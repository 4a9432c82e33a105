package contract

import "incomefund/sdk"

// -----------------------------------------------------------------------------
// Supported Assets
// -----------------------------------------------------------------------------

// validAssets lists the supported asset types for funding and payouts.
var validAssets = []string{
	sdk.AssetHbd.String(),
	sdk.AssetHive.String(),
	sdk.AssetHbdSavings.String(),
}

// -----------------------------------------------------------------------------
// Time
// -----------------------------------------------------------------------------

// All schedule math runs on a fixed 30-day month, not calendar months.
const (
	SecondsInDay   int64 = 86_400
	SecondsInWeek  int64 = 7 * SecondsInDay
	SecondsInMonth int64 = 30 * SecondsInDay
)

// -----------------------------------------------------------------------------
// Commission Tier Schedule
// -----------------------------------------------------------------------------

const (
	// lowerAmountForCommissionReduction is the whole-unit deposit size up to
	// which the base divisor applies.
	lowerAmountForCommissionReduction int64 = 100
	// amountPerCommissionReduction is the whole-unit step that bumps the
	// divisor by one.
	amountPerCommissionReduction int64 = 400
	lowerDivisor                 int64 = 10
	upperDivisor                 int64 = 60
)

// -----------------------------------------------------------------------------
// Default/Fallback Values
// -----------------------------------------------------------------------------

// FallbackTokenDecimals matches the hive asset scale (0.001 steps).
const FallbackTokenDecimals uint32 = 3

// -----------------------------------------------------------------------------
// Counter Keys
// -----------------------------------------------------------------------------

const (
	// InvestmentsCount holds an integer counter for investments (used for generating position ids).
	InvestmentsCount = "count:inv"
)

// -----------------------------------------------------------------------------
// Storage Keys
// -----------------------------------------------------------------------------

const (
	contractDataKey     = "cfg:data"
	contractPausedKey   = "cfg:paused"
	contractBalancesKey = "balances"
)

const (
	// kInvestment stores serialized Investment records keyed by position id.
	kInvestment byte = 0x01
	// kClaim stores the derived next-claim projection per position.
	kClaim byte = 0x02
)
