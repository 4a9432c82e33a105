package contract

// ContractError is an enumerable failure kind. Code and Symbol surface to the
// caller through revert so tooling can branch on cause instead of parsing text.
type ContractError struct {
	Code   uint32
	Symbol string
	msg    string
}

func (e *ContractError) Error() string { return e.msg }

func newErr(code uint32, symbol string, msg string) *ContractError {
	return &ContractError{Code: code, Symbol: symbol, msg: msg}
}

// Codes below 40 are the established error table consumed by indexers and
// frontends; do not renumber. Codes from 40 up cover the entry-point layer.
var (
	ErrAddressInsufficientBalance  = newErr(1, "address_insufficient_balance", "address has insufficient token balance")
	ErrContractInsufficientBalance = newErr(2, "contract_insufficient_balance", "contract balance is insufficient")
	ErrAmountLessThanMinimum       = newErr(5, "amount_less_than_minimum", "amount is less than the minimum per investment")
	ErrInterestRateZero            = newErr(6, "interest_rate_zero", "interest rate must be greater than zero")
	ErrGoalZero                    = newErr(7, "goal_zero", "goal must be greater than zero")
	ErrUnsupportedReturnType       = newErr(8, "unsupported_return_type", "return type must be 1 (reverse loan) or 2 (coupon)")
	ErrReturnMonthsZero            = newErr(9, "return_months_zero", "return months must be greater than zero")
	ErrMinPerInvestmentZero        = newErr(10, "min_per_investment_zero", "minimum per investment must be greater than zero")
	ErrAddressHasNotInvested       = newErr(14, "address_has_not_invested", "no investment exists for this position id")
	ErrInvestmentNotClaimableYet   = newErr(15, "investment_not_claimable_yet", "the claimable date has not been reached")
	ErrInvestmentFinished          = newErr(16, "investment_finished", "all payments for this investment have been completed")
	ErrNextTransferNotClaimableYet = newErr(17, "next_transfer_not_claimable_yet", "no full payment period has elapsed since the last transfer")
	ErrProjectBalanceInsufficient  = newErr(24, "project_balance_insufficient", "project balance is insufficient for the requested move")
	ErrRecipientCannotReceive      = newErr(28, "recipient_cannot_receive", "recipient cannot receive the payment")
	ErrInvalidPaymentData          = newErr(29, "invalid_payment_data", "payment transfer data is invalid")
	ErrWouldExceedGoal             = newErr(30, "would_exceed_goal", "investment would exceed the funding goal")
	ErrGoalAlreadyReached          = newErr(31, "goal_already_reached", "the funding goal has already been reached")
	ErrAmountMustBePositive        = newErr(32, "amount_must_be_positive", "amount must be greater than zero")

	ErrNotOwner             = newErr(40, "not_owner", "only the contract owner can call this")
	ErrPaused               = newErr(41, "paused", "contract is paused")
	ErrNotInitialized       = newErr(42, "not_initialized", "contract not initialized")
	ErrAlreadyInitialized   = newErr(43, "already_initialized", "contract already initialized")
	ErrInvalidAddress       = newErr(44, "invalid_address", "address is not valid")
	ErrInvalidAsset         = newErr(45, "invalid_asset", "asset is not supported")
	ErrMissingTransferAllow = newErr(46, "missing_transfer_allow", "no transfer.allow intent covers the amount")
	ErrNotPositionOwner     = newErr(47, "not_position_owner", "caller does not own this position")
)
