package contract

// Claim is the derived next-due projection kept per position for the reserve
// forecast. It is recomputable at any time and never the source of truth for
// eligibility; that is always re-derived from the Investment itself.
type Claim struct {
	NextTransferTs int64  `json:"next_transfer_ts"`
	AmountToPay    Amount `json:"amount_to_pay"`
}

// isClaimNext reports whether this claim falls due within the next week.
func (c Claim) isClaimNext(now int64) bool {
	return c.NextTransferTs <= now+SecondsInWeek
}

// nextClaim projects the next due date for a position. Before the first
// payment the projection bootstraps one month from now.
func nextClaim(inv *Investment, now int64) Claim {
	nextTs := now + SecondsInMonth
	if inv.LastTransferTs > 0 {
		nextTs = inv.LastTransferTs + SecondsInMonth
	}
	return Claim{
		NextTransferTs: nextTs,
		AmountToPay:    inv.RegularPayment,
	}
}

// claimablePayments counts how many full payment periods the investor can
// claim right now. The first-ever claim grants one period as soon as the lock
// expires ("+1"); after that a full month must pass per period. The result is
// capped at the remaining periods and never negative.
func claimablePayments(inv *Investment, returnMonths uint32, now int64) uint32 {
	if inv.PaymentsTransferred >= returnMonths {
		return 0
	}
	remaining := returnMonths - inv.PaymentsTransferred

	var eligible uint32
	if inv.LastTransferTs == 0 {
		if now < inv.ClaimableTs {
			return 0
		}
		elapsed := now - inv.ClaimableTs
		eligible = uint32(elapsed/SecondsInMonth) + 1
	} else {
		if now < inv.LastTransferTs {
			return 0
		}
		elapsed := now - inv.LastTransferTs
		eligible = uint32(elapsed / SecondsInMonth)
	}

	if eligible > remaining {
		return remaining
	}
	return eligible
}
