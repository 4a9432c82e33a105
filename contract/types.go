package contract

import "incomefund/sdk"

// Amount is a scaled integer token amount (see FallbackTokenDecimals).
type Amount int64

// FundingState captures whether the contract still accepts investments.
// Numeric values are part of the wire format, do not reorder.
type FundingState uint32

const (
	FundingActive       FundingState = 2
	FundingFundsReached FundingState = 3
)

// String prints the funding state as lower-case text for events and logs.
// Example payload: FundingFundsReached.String()
func (s FundingState) String() string {
	switch s {
	case FundingActive:
		return "active"
	case FundingFundsReached:
		return "funds_reached"
	default:
		return "unspecified"
	}
}

// InvestmentStatus is the position lifecycle. Blocked and Claimable are the
// two possible initial states; once CashFlowing neither is ever revisited.
// Numeric values are part of the wire format, do not reorder.
type InvestmentStatus uint32

const (
	StatusBlocked     InvestmentStatus = 1
	StatusClaimable   InvestmentStatus = 2
	StatusCashFlowing InvestmentStatus = 4
	StatusFinished    InvestmentStatus = 5
)

// String prints the position status as lower-case text for events and logs.
// Example payload: StatusCashFlowing.String()
func (s InvestmentStatus) String() string {
	switch s {
	case StatusBlocked:
		return "blocked"
	case StatusClaimable:
		return "claimable"
	case StatusCashFlowing:
		return "cash_flowing"
	case StatusFinished:
		return "finished"
	default:
		return "unspecified"
	}
}

// ReturnType selects the repayment model for every position of the contract.
// Numeric values are part of the wire format, do not reorder.
type ReturnType uint32

const (
	// ReturnTypeReverseLoan amortizes principal and interest evenly across all periods.
	ReturnTypeReverseLoan ReturnType = 1
	// ReturnTypeCoupon pays interest periodically and returns principal in a final bullet.
	ReturnTypeCoupon ReturnType = 2
)

// returnTypeFromNumber maps the raw init parameter onto a known return type.
func returnTypeFromNumber(v uint32) (ReturnType, bool) {
	switch v {
	case 1:
		return ReturnTypeReverseLoan, true
	case 2:
		return ReturnTypeCoupon, true
	default:
		return 0, false
	}
}

// String prints the return type as lower-case text for events and logs.
// Example payload: ReturnTypeCoupon.String()
func (rt ReturnType) String() string {
	switch rt {
	case ReturnTypeReverseLoan:
		return "reverse_loan"
	case ReturnTypeCoupon:
		return "coupon"
	default:
		return "unspecified"
	}
}

// ContractData is the configuration fixed at init time; only State mutates
// afterwards, and only Active -> FundsReached.
type ContractData struct {
	Owner            sdk.Address  `json:"owner"`
	ProjectAddress   sdk.Address  `json:"project_address"`
	Token            sdk.Asset    `json:"token"`
	TokenDecimals    uint32       `json:"token_decimals"`
	InterestRate     uint32       `json:"interest_rate"`
	ClaimBlockDays   uint64       `json:"claim_block_days"`
	Goal             Amount       `json:"goal"`
	ReturnType       ReturnType   `json:"return_type"`
	ReturnMonths     uint32       `json:"return_months"`
	MinPerInvestment Amount       `json:"min_per_investment"`
	State            FundingState `json:"state"`
}

type InitArgs struct {
	ProjectAddress   string `json:"project_address"`
	Token            string `json:"token"`
	TokenDecimals    uint32 `json:"token_decimals,omitempty"`
	InterestRate     uint32 `json:"i_rate"`
	ClaimBlockDays   uint64 `json:"claim_block_days"`
	Goal             int64  `json:"goal"`
	ReturnType       uint32 `json:"return_type"`
	ReturnMonths     uint32 `json:"return_months"`
	MinPerInvestment int64  `json:"min_per_investment"`
}

type InvestArgs struct {
	Amount int64 `json:"amount"`
}

type PositionArgs struct {
	ID uint64 `json:"id"`
}

type AmountArgs struct {
	Amount int64 `json:"amount"`
}

// AddressFromString converts a human string to the platform-specific address wrapper.
// Example payload: AddressFromString("hive:alice")
func AddressFromString(s string) sdk.Address { return sdk.Address(s) }

// AssetFromString wraps a ticker string so type checking keeps us honest.
// Example payload: AssetFromString("hive")
func AssetFromString(s string) sdk.Asset { return sdk.Asset(s) }
