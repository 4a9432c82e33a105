package contract

// ContractBalance is the contract-wide ledger: three live buckets plus the
// audit accumulators. Every mutator touches a primary bucket and its matching
// accumulator in the same step, so the buckets always sum to exactly what
// entered the contract minus what left it.
type ContractBalance struct {
	Reserve    Amount `json:"reserve"`
	Project    Amount `json:"project"`
	Commission Amount `json:"commission"`
	// ReceivedSoFar counts invested principal only (commission excluded),
	// and is what the funding goal is checked against.
	ReceivedSoFar             Amount `json:"received_so_far"`
	Payments                  Amount `json:"payments"`
	ReserveContributions      Amount `json:"reserve_contributions"`
	ProjectWithdrawals        Amount `json:"project_withdrawals"`
	MovedFromProjectToReserve Amount `json:"moved_from_project_to_reserve"`
}

// Sum is the total the contract currently holds across all three buckets.
func (b *ContractBalance) Sum() Amount {
	return b.Commission + b.Project + b.Reserve
}

// applyInvestment books a fresh deposit split into the buckets.
func (b *ContractBalance) applyInvestment(split Split) {
	b.Commission = checkedAdd(b.Commission, split.ToCommission)
	b.Reserve = checkedAdd(b.Reserve, split.ToReserve)
	b.Project = checkedAdd(b.Project, split.ToInvest)
	b.ReceivedSoFar = checkedAdd(b.ReceivedSoFar, split.InvestedAmount())
}

// applyCompanyContribution books an external top-up of the payout reserve.
func (b *ContractBalance) applyCompanyContribution(amount Amount) {
	b.Reserve = checkedAdd(b.Reserve, amount)
	b.ReserveContributions = checkedAdd(b.ReserveContributions, amount)
}

// applyCompanyWithdrawal books an operational withdrawal from the project bucket.
func (b *ContractBalance) applyCompanyWithdrawal(amount Amount) {
	b.Project -= amount
	b.ProjectWithdrawals = checkedAdd(b.ProjectWithdrawals, amount)
}

// applyInvestorPayment books an outbound payment from the reserve.
func (b *ContractBalance) applyInvestorPayment(amount Amount) {
	b.Reserve -= amount
	b.Payments = checkedAdd(b.Payments, amount)
}

// applyProjectToReserve books an internal project -> reserve move.
func (b *ContractBalance) applyProjectToReserve(amount Amount) {
	b.Project -= amount
	b.Reserve = checkedAdd(b.Reserve, amount)
	b.MovedFromProjectToReserve = checkedAdd(b.MovedFromProjectToReserve, amount)
}
