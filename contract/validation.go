package contract

// Stateless precondition checks, one error kind per rule. The evaluation
// order inside each function is fixed: when several conditions fail at once,
// callers and tooling rely on which error surfaces first.

// validateConstructorParams gates contract initialization.
func validateConstructorParams(iRate uint32, goal Amount, returnMonths uint32, minPerInvestment Amount) error {
	if iRate == 0 {
		return ErrInterestRateZero
	}
	if goal <= 0 {
		return ErrGoalZero
	}
	if returnMonths == 0 {
		return ErrReturnMonthsZero
	}
	if minPerInvestment <= 0 {
		return ErrMinPerInvestmentZero
	}
	return nil
}

// validateInvestment gates a new deposit before any token movement.
func validateInvestment(amount Amount, cd *ContractData, investorBalance Amount) error {
	if amount < cd.MinPerInvestment {
		return ErrAmountLessThanMinimum
	}
	if cd.State == FundingFundsReached {
		return ErrGoalAlreadyReached
	}
	if investorBalance < amount {
		return ErrAddressInsufficientBalance
	}
	if amount <= 0 {
		return ErrAmountMustBePositive
	}
	return nil
}

// validateInvestmentGoal rejects deposits whose invested part would push the
// running total past the funding goal. Checked after validateInvestment and
// before any transfer.
func validateInvestmentGoal(receivedSoFar, amountToInvest, goal Amount) error {
	if checkedAdd(receivedSoFar, amountToInvest) > goal {
		return ErrWouldExceedGoal
	}
	return nil
}

// validateInvestmentPayment gates the admin-driven single-period payment,
// including the month gate since the last transfer.
func validateInvestmentPayment(inv *Investment, now int64) error {
	if now < inv.ClaimableTs {
		return ErrInvestmentNotClaimableYet
	}
	if inv.Status == StatusFinished {
		return ErrInvestmentFinished
	}
	if inv.LastTransferTs != 0 && now-inv.LastTransferTs < SecondsInMonth {
		return ErrNextTransferNotClaimableYet
	}
	return nil
}

// validateClaim gates the investor self-claim. No month gate here; the
// claimable-period count decides instead.
func validateClaim(inv *Investment, now int64) error {
	if now < inv.ClaimableTs {
		return ErrInvestmentNotClaimableYet
	}
	if inv.Status == StatusFinished {
		return ErrInvestmentFinished
	}
	return nil
}

// validateReserveBalance ensures the reserve covers an outbound payment.
func validateReserveBalance(amountToTransfer Amount, b *ContractBalance) error {
	if amountToTransfer > b.Reserve {
		return ErrContractInsufficientBalance
	}
	return nil
}

// validateWithdrawal allows draining the project bucket down to zero.
func validateWithdrawal(amount Amount, projectBalance Amount) error {
	if projectBalance < amount {
		return ErrContractInsufficientBalance
	}
	return nil
}

// validateCompanyTransfer checks the external payer can fund the contribution.
func validateCompanyTransfer(ownerBalance, amount Amount) error {
	if ownerBalance < amount {
		return ErrAddressInsufficientBalance
	}
	return nil
}

// validateMoveToReserve requires strictly more than the moved amount in the
// project bucket, so an internal move never empties it completely. Withdrawals
// may drain it to zero; the asymmetry is intentional.
func validateMoveToReserve(amount, projectBalance Amount) error {
	if projectBalance <= amount {
		return ErrProjectBalanceInsufficient
	}
	return nil
}
