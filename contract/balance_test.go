package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyInvestment(t *testing.T) {
	b := &ContractBalance{}
	split := splitInvestment(100_000, 500, 3)

	b.applyInvestment(split)

	assert.Equal(t, Amount(500), b.Commission)
	assert.Equal(t, Amount(5_000), b.Reserve)
	assert.Equal(t, Amount(94_500), b.Project)
	assert.Equal(t, Amount(99_500), b.ReceivedSoFar)
	// everything that came in sits in a bucket
	assert.Equal(t, Amount(100_000), b.Sum())
}

func TestLedgerFlowKeepsBucketsConsistent(t *testing.T) {
	b := &ContractBalance{}

	b.applyInvestment(splitInvestment(100_000, 500, 3))
	b.applyCompanyContribution(20_000)
	assert.Equal(t, Amount(25_000), b.Reserve)
	assert.Equal(t, Amount(20_000), b.ReserveContributions)

	b.applyInvestorPayment(8_706)
	assert.Equal(t, Amount(16_294), b.Reserve)
	assert.Equal(t, Amount(8_706), b.Payments)

	b.applyCompanyWithdrawal(50_000)
	assert.Equal(t, Amount(44_500), b.Project)
	assert.Equal(t, Amount(50_000), b.ProjectWithdrawals)

	b.applyProjectToReserve(10_000)
	assert.Equal(t, Amount(34_500), b.Project)
	assert.Equal(t, Amount(26_294), b.Reserve)
	assert.Equal(t, Amount(10_000), b.MovedFromProjectToReserve)

	// inflows minus outflows must equal what the buckets still hold;
	// internal moves cancel out
	inflows := Amount(100_000) + b.ReserveContributions
	outflows := b.Payments + b.ProjectWithdrawals
	assert.Equal(t, inflows-outflows, b.Sum())
}

func TestLedgerAccumulatorsOnlyGrow(t *testing.T) {
	b := &ContractBalance{}
	b.applyInvestment(splitInvestment(100_000, 500, 3))
	b.applyCompanyContribution(5_000)
	b.applyInvestorPayment(1_000)
	b.applyInvestorPayment(1_000)

	assert.Equal(t, Amount(2_000), b.Payments)
	// received tracks principal, untouched by payments
	assert.Equal(t, Amount(99_500), b.ReceivedSoFar)
}
