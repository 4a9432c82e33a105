package contract

import (
	"incomefund/sdk"
)

////////////////////////////////////////////////////////////////////////////////
// Contract State Persistence helpers
////////////////////////////////////////////////////////////////////////////////

// State blobs are written by this contract only, so a decode failure means
// corrupted storage and aborts instead of bubbling up.

func saveContractData(cd *ContractData) {
	getState().Set(contractDataKey, ToJSON(cd, "contract data"))
}

func loadContractData() *ContractData {
	ptr := getState().Get(contractDataKey)
	if ptr == nil || *ptr == "" {
		return nil
	}
	cd, err := FromJSON[ContractData](*ptr, "contract data")
	if err != nil {
		sdk.Abort(err.Error())
	}
	return cd
}

func isInitialized() bool {
	ptr := getState().Get(contractDataKey)
	return ptr != nil && *ptr != ""
}

func saveInvestment(inv *Investment) {
	getState().Set(investmentKey(inv.ID), ToJSON(inv, "investment"))
}

func loadInvestment(id uint64) *Investment {
	ptr := getState().Get(investmentKey(id))
	if ptr == nil || *ptr == "" {
		return nil
	}
	inv, err := FromJSON[Investment](*ptr, "investment")
	if err != nil {
		sdk.Abort(err.Error())
	}
	return inv
}

// updateInvestmentWithClaim persists a position together with its refreshed
// next-claim projection so the reserve forecast never reads stale data.
func updateInvestmentWithClaim(inv *Investment, now int64) {
	saveInvestment(inv)
	claim := nextClaim(inv, now)
	getState().Set(claimKey(inv.ID), ToJSON(&claim, "claim"))
}

func loadClaim(id uint64) *Claim {
	ptr := getState().Get(claimKey(id))
	if ptr == nil || *ptr == "" {
		return nil
	}
	claim, err := FromJSON[Claim](*ptr, "claim")
	if err != nil {
		sdk.Abort(err.Error())
	}
	return claim
}

func saveBalances(b *ContractBalance) {
	getState().Set(contractBalancesKey, ToJSON(b, "contract balances"))
}

// loadBalancesOrNew defaults to the all-zero ledger on first access.
func loadBalancesOrNew() *ContractBalance {
	ptr := getState().Get(contractBalancesKey)
	if ptr == nil || *ptr == "" {
		return &ContractBalance{}
	}
	b, err := FromJSON[ContractBalance](*ptr, "contract balances")
	if err != nil {
		sdk.Abort(err.Error())
	}
	return b
}

// nextInvestmentID hands out sequential position ids.
func nextInvestmentID() uint64 {
	id := getCount(InvestmentsCount)
	setCount(InvestmentsCount, id+1)
	return id
}

// investmentCount returns how many positions were ever created.
func investmentCount() uint64 {
	return getCount(InvestmentsCount)
}

func setPaused(paused bool) {
	val := "0"
	if paused {
		val = "1"
	}
	getState().Set(contractPausedKey, val)
}

func isPaused() bool {
	ptr := getState().Get(contractPausedKey)
	return ptr != nil && *ptr == "1"
}
