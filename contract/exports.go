//go:build wasm

package contract

import (
	"fmt"

	"incomefund/sdk"
)

// Exported entry points for the wasm build. Each one decodes its payload,
// delegates to the operation and reverts with the enumerable symbol on
// failure. Return values are JSON strings handed back to the caller.

// revertOn stops the transaction with the error's symbol so callers can
// branch on cause. Plain errors (decode failures) revert as input errors.
func revertOn(err error) {
	if err == nil {
		return
	}
	if ce, ok := err.(*ContractError); ok {
		sdk.Revert(ce.Error(), ce.Symbol)
		return
	}
	sdk.Revert(err.Error(), "input_error")
}

//go:wasmexport contract_init
func contractInit(payload *string) *string {
	args, err := decodeInitArgs(payload)
	revertOn(err)
	cd, err := InitContract(args)
	revertOn(err)
	return strptr(ToJSON(cd, "contract data"))
}

//go:wasmexport invest
func invest(payload *string) *string {
	args, err := decodeInvestArgs(payload)
	revertOn(err)
	inv, err := Invest(Amount(args.Amount))
	revertOn(err)
	return strptr(ToJSON(inv, "investment"))
}

//go:wasmexport payment_process
func paymentProcess(payload *string) *string {
	args, err := decodePositionArgs(payload)
	revertOn(err)
	inv, err := ProcessInvestorPayment(args.ID)
	revertOn(err)
	return strptr(ToJSON(inv, "investment"))
}

//go:wasmexport claim
func claim(payload *string) *string {
	args, err := decodePositionArgs(payload)
	revertOn(err)
	inv, err := ClaimPayments(args.ID)
	revertOn(err)
	return strptr(ToJSON(inv, "investment"))
}

//go:wasmexport withdraw_project
func withdrawProject(payload *string) *string {
	args, err := decodeAmountArgs(payload)
	revertOn(err)
	revertOn(WithdrawProject(Amount(args.Amount)))
	return strptr("ok")
}

//go:wasmexport company_transfer
func companyTransfer(payload *string) *string {
	args, err := decodeAmountArgs(payload)
	revertOn(err)
	revertOn(AddCompanyTransfer(Amount(args.Amount)))
	return strptr("ok")
}

//go:wasmexport move_to_reserve
func moveToReserve(payload *string) *string {
	args, err := decodeAmountArgs(payload)
	revertOn(err)
	revertOn(MoveFundsToReserve(Amount(args.Amount)))
	return strptr("ok")
}

//go:wasmexport reserve_check
func reserveCheck(_ *string) *string {
	missing, err := CheckReserveBalance()
	revertOn(err)
	return strptr(fmt.Sprintf("%d", missing))
}

//go:wasmexport balance_get
func balanceGet(_ *string) *string {
	b, err := GetContractBalance()
	revertOn(err)
	return strptr(ToJSON(b, "contract balances"))
}

//go:wasmexport investment_get
func investmentGet(payload *string) *string {
	args, err := decodePositionArgs(payload)
	revertOn(err)
	inv, err := GetInvestment(args.ID)
	revertOn(err)
	return strptr(ToJSON(inv, "investment"))
}

//go:wasmexport pause
func pause(_ *string) *string {
	revertOn(Pause())
	return strptr("ok")
}

//go:wasmexport unpause
func unpause(_ *string) *string {
	revertOn(Unpause())
	return strptr("ok")
}

//go:wasmexport paused
func pausedGet(_ *string) *string {
	p, err := Paused()
	revertOn(err)
	return strptr(fmt.Sprintf("%t", p))
}
