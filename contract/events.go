package contract

import (
	"fmt"
)

// Events are fire-and-forget console lines for indexers, emitted after every
// successful mutation. Short pipe-coded prefixes keep them cheap to scan.

// emitInitEvent pings explorers once when the contract comes alive.
func emitInitEvent(owner string, token string, goal Amount) {
	getSDK().Log(fmt.Sprintf(
		"init|by:%s|tk:%s|g:%d",
		owner,
		token,
		goal,
	))
}

// emitBalanceUpdated dumps the whole ledger so auditors can replay bucket math from logs only.
func emitBalanceUpdated(b *ContractBalance) {
	getSDK().Log(fmt.Sprintf(
		"cb|r:%d|p:%d|c:%d|rx:%d|py:%d|rc:%d|pw:%d|mv:%d",
		b.Reserve,
		b.Project,
		b.Commission,
		b.ReceivedSoFar,
		b.Payments,
		b.ReserveContributions,
		b.ProjectWithdrawals,
		b.MovedFromProjectToReserve,
	))
}

// emitStateChanged signals the one-way flip to funds_reached.
func emitStateChanged(s FundingState) {
	getSDK().Log(fmt.Sprintf(
		"st|s:%s",
		s.String(),
	))
}

// emitInvested leaves one line per new position with the full split for indexing bots.
func emitInvested(id uint64, owner string, amount Amount, split Split) {
	getSDK().Log(fmt.Sprintf(
		"iv|id:%d|by:%s|am:%d|cm:%d|rs:%d|pr:%d",
		id,
		owner,
		amount,
		split.ToCommission,
		split.ToReserve,
		split.ToInvest,
	))
}

// emitPayment traces outbound investor payments including how many periods were settled.
func emitPayment(id uint64, to string, amount Amount, periods uint32, status InvestmentStatus) {
	getSDK().Log(fmt.Sprintf(
		"py|id:%d|to:%s|am:%d|n:%d|s:%s",
		id,
		to,
		amount,
		periods,
		status.String(),
	))
}

// emitWithdrawal mirrors the payment log for project withdrawals.
func emitWithdrawal(to string, amount Amount) {
	getSDK().Log(fmt.Sprintf(
		"wd|to:%s|am:%d",
		to,
		amount,
	))
}

// emitContribution tells watchers the reserve got topped up externally.
func emitContribution(from string, amount Amount) {
	getSDK().Log(fmt.Sprintf(
		"cf|by:%s|am:%d",
		from,
		amount,
	))
}

// emitMoved logs internal project -> reserve moves.
func emitMoved(amount Amount) {
	getSDK().Log(fmt.Sprintf(
		"mv|am:%d",
		amount,
	))
}

// emitPausedEvent flags pause flips so frontends can grey out actions.
func emitPausedEvent(paused bool) {
	getSDK().Log(fmt.Sprintf(
		"pa|p:%t",
		paused,
	))
}
