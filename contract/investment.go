package contract

import "incomefund/sdk"

// Investment is one investor position. Created once at invest time, mutated
// only by payment processing, kept around after it finishes.
type Investment struct {
	ID    uint64      `json:"id"`
	Owner sdk.Address `json:"owner"`
	// Deposited is the principal: reserve plus investable, commission excluded.
	Deposited            Amount           `json:"deposited"`
	Commission           Amount           `json:"commission"`
	AccumulatedInterests Amount           `json:"accumulated_interests"`
	Total                Amount           `json:"total"`
	ClaimableTs          int64            `json:"claimable_ts"`
	LastTransferTs       int64            `json:"last_transfer_ts"`
	Status               InvestmentStatus `json:"status"`
	RegularPayment       Amount           `json:"regular_payment"`
	Paid                 Amount           `json:"paid"`
	PaymentsTransferred  uint32           `json:"payments_transferred"`
}

// newInvestment computes the initial terms for a fresh position.
func newInvestment(cd *ContractData, owner sdk.Address, amount Amount, id uint64, now int64) *Investment {
	split := splitInvestment(amount, cd.InterestRate, cd.TokenDecimals)
	realAmount := split.InvestedAmount()
	// interest rate is in basis points: 500 means 5%
	interest := Amount(checkedMul(int64(realAmount), int64(cd.InterestRate)) / 100 / 100)
	totalGains := checkedAdd(realAmount, interest)

	return &Investment{
		ID:                   id,
		Owner:                owner,
		Deposited:            realAmount,
		Commission:           split.ToCommission,
		AccumulatedInterests: interest,
		Total:                totalGains,
		ClaimableTs:          now + int64(cd.ClaimBlockDays)*SecondsInDay,
		LastTransferTs:       0,
		Status:               initialStatus(cd.ClaimBlockDays),
		RegularPayment:       regularPaymentFor(interest, totalGains, cd.ReturnMonths, cd.ReturnType),
		Paid:                 0,
		PaymentsTransferred:  0,
	}
}

// initialStatus: a claim lock starts the position Blocked, otherwise it is
// Claimable right away. Neither state is ever revisited.
func initialStatus(claimBlockDays uint64) InvestmentStatus {
	if claimBlockDays > 0 {
		return StatusBlocked
	}
	return StatusClaimable
}

// regularPaymentFor fixes the per-period payment at creation time. Coupon pays
// the interest out evenly and returns principal in the terminal bullet, so any
// division remainder is absorbed there. ReverseLoan spreads principal plus
// interest evenly; any remainder from the division is simply never paid out,
// so ReverseLoan totals can come up short by a few base units.
func regularPaymentFor(interest, totalGains Amount, returnMonths uint32, rt ReturnType) Amount {
	if rt == ReturnTypeCoupon {
		return interest / Amount(returnMonths)
	}
	return totalGains / Amount(returnMonths)
}

// processInvestmentPayment applies one payment period and returns the amount
// the caller must transfer out. The caller persists the mutated position.
func (inv *Investment) processInvestmentPayment(cd *ContractData, now int64) Amount {
	if inv.Status != StatusCashFlowing {
		inv.Status = StatusCashFlowing
	}

	inv.Paid = checkedAdd(inv.Paid, inv.RegularPayment)
	inv.LastTransferTs = now
	inv.PaymentsTransferred++
	amountToTransfer := inv.RegularPayment

	if inv.PaymentsTransferred >= cd.ReturnMonths {
		inv.Status = StatusFinished

		if cd.ReturnType == ReturnTypeCoupon {
			inv.Paid = checkedAdd(inv.Paid, inv.Deposited)
			amountToTransfer = checkedAdd(amountToTransfer, inv.Deposited)
		}
	}

	return amountToTransfer
}

// processMultiplePayments applies numPayments periods in one step. Must end up
// exactly where numPayments sequential single payments would, including the
// one-shot terminal principal bullet for Coupon positions.
func (inv *Investment) processMultiplePayments(cd *ContractData, numPayments uint32, now int64) Amount {
	if inv.Status != StatusCashFlowing {
		inv.Status = StatusCashFlowing
	}

	totalAmount := Amount(checkedMul(int64(inv.RegularPayment), int64(numPayments)))
	inv.Paid = checkedAdd(inv.Paid, totalAmount)
	inv.LastTransferTs = now
	inv.PaymentsTransferred += numPayments

	if inv.PaymentsTransferred >= cd.ReturnMonths {
		inv.Status = StatusFinished

		if cd.ReturnType == ReturnTypeCoupon {
			inv.Paid = checkedAdd(inv.Paid, inv.Deposited)
			totalAmount = checkedAdd(totalAmount, inv.Deposited)
		}
	}

	return totalAmount
}
