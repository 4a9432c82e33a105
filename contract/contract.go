package contract

import (
	"github.com/shopspring/decimal"

	"incomefund/sdk"
)

// Public operations. Every one of them is validate-first: a rejected call
// returns a *ContractError and leaves state untouched. Mutations (position +
// ledger + claim projection) are only persisted after every check and the
// token movement went through, so callers never observe a half-applied step.

// -----------------------------------------------------------------------------
// Contract Initialization
// -----------------------------------------------------------------------------

// InitContract stores the configuration with the caller as owner.
// Must be called before any other operation.
func InitContract(args *InitArgs) (*ContractData, error) {
	if isInitialized() {
		return nil, ErrAlreadyInitialized
	}

	if err := validateConstructorParams(args.InterestRate, Amount(args.Goal), args.ReturnMonths, Amount(args.MinPerInvestment)); err != nil {
		return nil, err
	}
	returnType, ok := returnTypeFromNumber(args.ReturnType)
	if !ok {
		return nil, ErrUnsupportedReturnType
	}
	projectAddress := AddressFromString(args.ProjectAddress)
	if !projectAddress.IsValid() {
		return nil, ErrInvalidAddress
	}
	if !isValidAsset(args.Token) {
		return nil, ErrInvalidAsset
	}
	decimals := args.TokenDecimals
	if decimals == 0 {
		decimals = FallbackTokenDecimals
	}

	cd := &ContractData{
		Owner:            getSenderAddress(),
		ProjectAddress:   projectAddress,
		Token:            AssetFromString(args.Token),
		TokenDecimals:    decimals,
		InterestRate:     args.InterestRate,
		ClaimBlockDays:   args.ClaimBlockDays,
		Goal:             Amount(args.Goal),
		ReturnType:       returnType,
		ReturnMonths:     args.ReturnMonths,
		MinPerInvestment: Amount(args.MinPerInvestment),
		State:            FundingActive,
	}
	saveContractData(cd)
	setPaused(false)

	emitInitEvent(cd.Owner.String(), cd.Token.String(), cd.Goal)
	return cd, nil
}

// -----------------------------------------------------------------------------
// Invest
// -----------------------------------------------------------------------------

// Invest accepts a new deposit from the sender: validates it, draws the
// tokens, books the split into the ledger and creates the position. Flips the
// contract to funds_reached when the goal is hit.
func Invest(amount Amount) (*Investment, error) {
	cd, err := requireContractData()
	if err != nil {
		return nil, err
	}
	if err := requireNotPaused(); err != nil {
		return nil, err
	}

	sender := getSenderAddress()
	investorBalance := Amount(getSDK().GetBalance(sender, cd.Token))
	if err := validateInvestment(amount, cd, investorBalance); err != nil {
		return nil, err
	}

	split := splitInvestment(amount, cd.InterestRate, cd.TokenDecimals)
	balances := loadBalancesOrNew()
	if err := validateInvestmentGoal(balances.ReceivedSoFar, split.InvestedAmount(), cd.Goal); err != nil {
		return nil, err
	}

	if err := requireTransferAllow(amount, cd); err != nil {
		return nil, err
	}
	getSDK().Draw(amount, cd.Token)

	balances.applyInvestment(split)
	saveBalances(balances)

	now := nowUnix()
	id := nextInvestmentID()
	inv := newInvestment(cd, sender, amount, id, now)
	updateInvestmentWithClaim(inv, now)

	if balances.ReceivedSoFar >= cd.Goal {
		cd.State = FundingFundsReached
		saveContractData(cd)
		emitStateChanged(cd.State)
	}

	emitBalanceUpdated(balances)
	emitInvested(id, sender.String(), amount, split)
	return inv, nil
}

// -----------------------------------------------------------------------------
// Payments
// -----------------------------------------------------------------------------

// ProcessInvestorPayment settles exactly one payment period for a position
// (owner only). The month gate keeps the admin on the schedule.
func ProcessInvestorPayment(id uint64) (*Investment, error) {
	cd, err := requireContractData()
	if err != nil {
		return nil, err
	}
	if err := requireOwner(cd); err != nil {
		return nil, err
	}
	if err := requireNotPaused(); err != nil {
		return nil, err
	}

	inv := loadInvestment(id)
	if inv == nil {
		return nil, ErrAddressHasNotInvested
	}

	now := nowUnix()
	if err := validateInvestmentPayment(inv, now); err != nil {
		return nil, err
	}

	balances := loadBalancesOrNew()
	amountToTransfer := inv.processInvestmentPayment(cd, now)

	if err := validateReserveBalance(amountToTransfer, balances); err != nil {
		return nil, err
	}
	if err := transferOut(inv.Owner, amountToTransfer, cd.Token); err != nil {
		return nil, err
	}

	updateInvestmentWithClaim(inv, now)
	balances.applyInvestorPayment(amountToTransfer)
	saveBalances(balances)

	emitBalanceUpdated(balances)
	emitPayment(id, inv.Owner.String(), amountToTransfer, 1, inv.Status)
	return inv, nil
}

// ClaimPayments lets the position owner collect every period that has become
// due since the last claim in one transfer. Three missed months pay out
// 3 x regular payment.
func ClaimPayments(id uint64) (*Investment, error) {
	cd, err := requireContractData()
	if err != nil {
		return nil, err
	}
	if err := requireNotPaused(); err != nil {
		return nil, err
	}

	inv := loadInvestment(id)
	if inv == nil {
		return nil, ErrAddressHasNotInvested
	}
	if getSenderAddress() != inv.Owner {
		return nil, ErrNotPositionOwner
	}

	now := nowUnix()
	if err := validateClaim(inv, now); err != nil {
		return nil, err
	}

	numPayments := claimablePayments(inv, cd.ReturnMonths, now)
	if numPayments == 0 {
		return nil, ErrNextTransferNotClaimableYet
	}

	balances := loadBalancesOrNew()
	amountToTransfer := inv.processMultiplePayments(cd, numPayments, now)

	if err := validateReserveBalance(amountToTransfer, balances); err != nil {
		return nil, err
	}
	if err := transferOut(inv.Owner, amountToTransfer, cd.Token); err != nil {
		return nil, err
	}

	updateInvestmentWithClaim(inv, now)
	balances.applyInvestorPayment(amountToTransfer)
	saveBalances(balances)

	emitBalanceUpdated(balances)
	emitPayment(id, inv.Owner.String(), amountToTransfer, numPayments, inv.Status)
	return inv, nil
}

// -----------------------------------------------------------------------------
// Treasury Operations
// -----------------------------------------------------------------------------

// WithdrawProject pays out project-bucket funds to the configured project
// address (owner only).
func WithdrawProject(amount Amount) error {
	cd, err := requireContractData()
	if err != nil {
		return err
	}
	if err := requireOwner(cd); err != nil {
		return err
	}
	if err := requireNotPaused(); err != nil {
		return err
	}

	balances := loadBalancesOrNew()
	if err := validateWithdrawal(amount, balances.Project); err != nil {
		return err
	}
	if err := transferOut(cd.ProjectAddress, amount, cd.Token); err != nil {
		return err
	}

	balances.applyCompanyWithdrawal(amount)
	saveBalances(balances)

	emitBalanceUpdated(balances)
	emitWithdrawal(cd.ProjectAddress.String(), amount)
	return nil
}

// AddCompanyTransfer tops up the payout reserve from the owner's own balance
// (owner only). Used to cover upcoming claims when the reserve runs low.
func AddCompanyTransfer(amount Amount) error {
	cd, err := requireContractData()
	if err != nil {
		return err
	}
	if err := requireOwner(cd); err != nil {
		return err
	}

	ownerBalance := Amount(getSDK().GetBalance(cd.Owner, cd.Token))
	if err := validateCompanyTransfer(ownerBalance, amount); err != nil {
		return err
	}
	if err := requireTransferAllow(amount, cd); err != nil {
		return err
	}
	getSDK().Draw(amount, cd.Token)

	balances := loadBalancesOrNew()
	balances.applyCompanyContribution(amount)
	saveBalances(balances)

	emitBalanceUpdated(balances)
	emitContribution(cd.Owner.String(), amount)
	return nil
}

// MoveFundsToReserve shifts funds internally from project to reserve (owner only).
func MoveFundsToReserve(amount Amount) error {
	cd, err := requireContractData()
	if err != nil {
		return err
	}
	if err := requireOwner(cd); err != nil {
		return err
	}

	balances := loadBalancesOrNew()
	if err := validateMoveToReserve(amount, balances.Project); err != nil {
		return err
	}

	balances.applyProjectToReserve(amount)
	saveBalances(balances)

	emitBalanceUpdated(balances)
	emitMoved(amount)
	return nil
}

// CheckReserveBalance sums every claim due within the next week and returns
// how much the reserve is short, or 0 when it is covered (owner only).
func CheckReserveBalance() (Amount, error) {
	cd, err := requireContractData()
	if err != nil {
		return 0, err
	}
	if err := requireOwner(cd); err != nil {
		return 0, err
	}

	now := nowUnix()
	balances := loadBalancesOrNew()

	var minFunds Amount
	count := investmentCount()
	for id := uint64(0); id < count; id++ {
		claim := loadClaim(id)
		if claim == nil {
			continue
		}
		if claim.isClaimNext(now) {
			minFunds = checkedAdd(minFunds, claim.AmountToPay)
		}
	}

	if minFunds > 0 && balances.Reserve < minFunds {
		return minFunds - balances.Reserve, nil
	}
	return 0, nil
}

// -----------------------------------------------------------------------------
// Views
// -----------------------------------------------------------------------------

// GetContractBalance returns the full ledger (owner only).
func GetContractBalance() (*ContractBalance, error) {
	cd, err := requireContractData()
	if err != nil {
		return nil, err
	}
	if err := requireOwner(cd); err != nil {
		return nil, err
	}
	return loadBalancesOrNew(), nil
}

// GetInvestment returns one position by id.
func GetInvestment(id uint64) (*Investment, error) {
	if _, err := requireContractData(); err != nil {
		return nil, err
	}
	inv := loadInvestment(id)
	if inv == nil {
		return nil, ErrAddressHasNotInvested
	}
	return inv, nil
}

// -----------------------------------------------------------------------------
// Pause Gating
// -----------------------------------------------------------------------------

func Pause() error {
	cd, err := requireContractData()
	if err != nil {
		return err
	}
	if err := requireOwner(cd); err != nil {
		return err
	}
	setPaused(true)
	emitPausedEvent(true)
	return nil
}

func Unpause() error {
	cd, err := requireContractData()
	if err != nil {
		return err
	}
	if err := requireOwner(cd); err != nil {
		return err
	}
	setPaused(false)
	emitPausedEvent(false)
	return nil
}

// Paused reports the pause flag (owner only, mirroring the other admin views).
func Paused() (bool, error) {
	cd, err := requireContractData()
	if err != nil {
		return false, err
	}
	if err := requireOwner(cd); err != nil {
		return false, err
	}
	return isPaused(), nil
}

// -----------------------------------------------------------------------------
// Guards
// -----------------------------------------------------------------------------

func requireContractData() (*ContractData, error) {
	cd := loadContractData()
	if cd == nil {
		return nil, ErrNotInitialized
	}
	return cd, nil
}

func requireOwner(cd *ContractData) error {
	if getSenderAddress() != cd.Owner {
		return ErrNotOwner
	}
	return nil
}

func requireNotPaused() error {
	if isPaused() {
		return ErrPaused
	}
	return nil
}

// isValidAsset checks if a given token string is one of the supported assets.
func isValidAsset(token string) bool {
	for _, a := range validAssets {
		if token == a {
			return true
		}
	}
	return false
}

// requireTransferAllow scans the attached intents for a transfer.allow that
// covers the amount in the contract's asset. Intent limits arrive as
// human-unit strings like "1.000" and get scaled before comparing.
func requireTransferAllow(amount Amount, cd *ContractData) error {
	for _, intent := range currentIntents() {
		if intent.Type != "transfer.allow" {
			continue
		}
		if intent.Args["token"] != cd.Token.String() {
			return ErrInvalidAsset
		}
		limit, err := decimal.NewFromString(intent.Args["limit"])
		if err != nil {
			return ErrMissingTransferAllow
		}
		if amountFromTokenUnits(limit, cd.TokenDecimals) < amount {
			return ErrMissingTransferAllow
		}
		return nil
	}
	return ErrMissingTransferAllow
}

// transferOut sends contract-held funds and maps rail failures onto the
// enumerable payment errors.
func transferOut(to sdk.Address, amount Amount, asset sdk.Asset) error {
	if err := getSDK().Transfer(to, amount, asset); err != nil {
		if ce, ok := err.(*ContractError); ok {
			return ce
		}
		return ErrInvalidPaymentData
	}
	return nil
}
