package contract

import (
	"math"

	"github.com/shopspring/decimal"

	"incomefund/sdk"
)

// All fixed-point conversion and truncation for the contract lives in this
// file so rounding behavior is defined exactly once.

var (
	// reserveRate is the fixed 5% cut that funds the payout reserve.
	reserveRate = decimal.New(5, -2)

	maxAmountDecimal = decimal.NewFromInt(math.MaxInt64)
	minAmountDecimal = decimal.NewFromInt(math.MinInt64)
)

// rateDenominator maps a deposit onto the sliding commission divisor. The
// deposit is first reduced to whole token units; up to 100 units the base
// divisor applies, then every further 400 units bump it by one, capped at 60.
// Larger divisor means smaller effective commission rate.
func rateDenominator(amount Amount, decimals uint32) int64 {
	scale := int64(1)
	for i := uint32(0); i < decimals; i++ {
		scale *= 10
	}
	tokenAmount := int64(amount) / scale

	if tokenAmount <= lowerAmountForCommissionReduction {
		return lowerDivisor
	}

	a := (tokenAmount - lowerAmountForCommissionReduction) / amountPerCommissionReduction
	if lowerDivisor+a > upperDivisor {
		return upperDivisor
	}
	return lowerDivisor + a
}

// Split is the three-way partition of one deposit.
type Split struct {
	ToCommission Amount `json:"to_commission"`
	ToReserve    Amount `json:"to_reserve"`
	ToInvest     Amount `json:"to_invest"`
}

// InvestedAmount is the part that counts as principal: everything except commission.
func (s Split) InvestedAmount() Amount {
	return s.ToInvest + s.ToReserve
}

// splitInvestment partitions a deposit into commission, reserve and
// investable amounts. Commission and reserve are computed first and truncated
// toward zero; the investable part is the remainder, so the three always sum
// back to the deposit and repeated splits of the same input are byte-identical.
func splitInvestment(amount Amount, iRate uint32, decimals uint32) Split {
	denominator := rateDenominator(amount, decimals) * 10_000

	amt := decimal.NewFromInt(int64(amount))
	commission := amt.
		Mul(decimal.NewFromInt(int64(iRate))).
		Div(decimal.NewFromInt(denominator)).
		Truncate(0)
	reserve := amt.Mul(reserveRate).Truncate(0)
	invest := amt.Sub(commission).Sub(reserve)

	return Split{
		ToCommission: decimalToAmount(commission),
		ToReserve:    decimalToAmount(reserve),
		ToInvest:     decimalToAmount(invest),
	}
}

// decimalToAmount converts a decimal back to the scaled integer form,
// truncating toward zero. Overflow is fatal, money never wraps.
func decimalToAmount(d decimal.Decimal) Amount {
	t := d.Truncate(0)
	if t.Cmp(maxAmountDecimal) > 0 || t.Cmp(minAmountDecimal) < 0 {
		sdk.Abort("amount overflow")
	}
	return Amount(t.IntPart())
}

// amountFromTokenUnits scales a human token-unit value (like an intent limit
// of "1.000") to the contract's integer representation.
func amountFromTokenUnits(units decimal.Decimal, decimals uint32) Amount {
	return decimalToAmount(units.Mul(decimal.New(1, int32(decimals))))
}
