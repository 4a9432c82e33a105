package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"incomefund/sdk"
)

func TestInitContract(t *testing.T) {
	f := newFixture(t)

	// nothing works before init
	_, err := Invest(100_000)
	require.ErrorIs(t, err, ErrNotInitialized)

	f.as(testOwner)
	cd, err := InitContract(defaultInitArgs())
	require.NoError(t, err)

	assert.Equal(t, testOwner, cd.Owner)
	assert.Equal(t, testProject, cd.ProjectAddress)
	assert.Equal(t, sdk.AssetHive, cd.Token)
	// decimals fall back to the hive scale when omitted
	assert.Equal(t, FallbackTokenDecimals, cd.TokenDecimals)
	assert.Equal(t, FundingActive, cd.State)
	assert.False(t, isPaused())

	_, err = InitContract(defaultInitArgs())
	require.ErrorIs(t, err, ErrAlreadyInitialized)
}

func TestInitContractRejectsBadConfig(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*InitArgs)
		want   *ContractError
	}{
		{"zero interest rate", func(a *InitArgs) { a.InterestRate = 0 }, ErrInterestRateZero},
		{"zero goal", func(a *InitArgs) { a.Goal = 0 }, ErrGoalZero},
		{"zero return months", func(a *InitArgs) { a.ReturnMonths = 0 }, ErrReturnMonthsZero},
		{"zero minimum", func(a *InitArgs) { a.MinPerInvestment = 0 }, ErrMinPerInvestmentZero},
		{"unknown return type", func(a *InitArgs) { a.ReturnType = 9 }, ErrUnsupportedReturnType},
		{"bogus project address", func(a *InitArgs) { a.ProjectAddress = "bogus" }, ErrInvalidAddress},
		{"unsupported token", func(a *InitArgs) { a.Token = "doge" }, ErrInvalidAsset},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			f.as(testOwner)
			args := defaultInitArgs()
			tc.mutate(args)
			_, err := InitContract(args)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestInvest(t *testing.T) {
	f := newFixture(t)
	f.initContract(t, defaultInitArgs())

	inv := f.invest(t, testInvestor, 100_000)

	assert.Equal(t, uint64(0), inv.ID)
	assert.Equal(t, testInvestor, inv.Owner)
	assert.Equal(t, Amount(99_500), inv.Deposited)
	assert.Equal(t, Amount(500), inv.Commission)
	assert.Equal(t, StatusClaimable, inv.Status)

	// tokens were drawn from the investor
	require.Len(t, f.sdk.Draws, 1)
	assert.Equal(t, Amount(100_000), f.sdk.Draws[0].Amount)

	// ledger reflects the split
	b := loadBalancesOrNew()
	assert.Equal(t, Amount(5_000), b.Reserve)
	assert.Equal(t, Amount(94_500), b.Project)
	assert.Equal(t, Amount(500), b.Commission)
	assert.Equal(t, Amount(99_500), b.ReceivedSoFar)

	// position, claim projection and counter are persisted
	require.NotNil(t, loadInvestment(0))
	require.NotNil(t, loadClaim(0))
	assert.Equal(t, uint64(1), investmentCount())

	// second investor gets the next id
	inv2 := f.invest(t, testOther, 100_000)
	assert.Equal(t, uint64(1), inv2.ID)
	assert.Equal(t, uint64(2), investmentCount())
}

func TestInvestValidation(t *testing.T) {
	f := newFixture(t)
	f.initContract(t, defaultInitArgs())

	f.as(testInvestor)
	f.sdk.Deposit(testInvestor, 100_000, sdk.AssetHive)

	f.allowTransfer("10000.000", "hive")
	_, err := Invest(500)
	require.ErrorIs(t, err, ErrAmountLessThanMinimum)

	_, err = Invest(200_000)
	require.ErrorIs(t, err, ErrAddressInsufficientBalance)

	// intent checks happen after the deposit checks pass
	f.clearIntents()
	_, err = Invest(100_000)
	require.ErrorIs(t, err, ErrMissingTransferAllow)

	f.allowTransfer("10000.000", "hbd")
	_, err = Invest(100_000)
	require.ErrorIs(t, err, ErrInvalidAsset)

	// limit of 0.050 hive covers 50 base units, not 100_000
	f.allowTransfer("0.050", "hive")
	_, err = Invest(100_000)
	require.ErrorIs(t, err, ErrMissingTransferAllow)

	// nothing was drawn or persisted along the way
	assert.Empty(t, f.sdk.Draws)
	assert.Equal(t, uint64(0), investmentCount())
}

func TestInvestGoalFlip(t *testing.T) {
	f := newFixture(t)
	args := defaultInitArgs()
	// exactly the invested part of one 100_000 deposit
	args.Goal = 99_500
	f.initContract(t, args)

	f.invest(t, testInvestor, 100_000)

	cd := loadContractData()
	assert.Equal(t, FundingFundsReached, cd.State)
	assert.Contains(t, f.sdk.Logs, "st|s:funds_reached")

	// once reached the contract stops accepting deposits
	f.as(testOther)
	f.sdk.Deposit(testOther, 100_000, sdk.AssetHive)
	f.allowTransfer("10000.000", "hive")
	_, err := Invest(100_000)
	require.ErrorIs(t, err, ErrGoalAlreadyReached)
}

func TestInvestWouldExceedGoal(t *testing.T) {
	f := newFixture(t)
	args := defaultInitArgs()
	args.Goal = 150_000
	f.initContract(t, args)

	f.invest(t, testInvestor, 100_000)

	// 99_500 received; another 99_500 would overshoot the 150_000 goal
	f.as(testOther)
	f.sdk.Deposit(testOther, 100_000, sdk.AssetHive)
	f.allowTransfer("10000.000", "hive")
	_, err := Invest(100_000)
	require.ErrorIs(t, err, ErrWouldExceedGoal)
}

func TestProcessInvestorPayment(t *testing.T) {
	f := newFixture(t)
	f.initContract(t, defaultInitArgs())
	f.invest(t, testInvestor, 100_000)
	f.topUpReserve(t, 10_000)

	f.as(testInvestor)
	_, err := ProcessInvestorPayment(0)
	require.ErrorIs(t, err, ErrNotOwner)

	f.as(testOwner)
	_, err = ProcessInvestorPayment(99)
	require.ErrorIs(t, err, ErrAddressHasNotInvested)

	inv, err := ProcessInvestorPayment(0)
	require.NoError(t, err)
	assert.Equal(t, StatusCashFlowing, inv.Status)
	assert.Equal(t, uint32(1), inv.PaymentsTransferred)

	require.Len(t, f.sdk.Transfers, 1)
	assert.Equal(t, testInvestor, f.sdk.Transfers[0].To)
	assert.Equal(t, Amount(414), f.sdk.Transfers[0].Amount)

	b := loadBalancesOrNew()
	assert.Equal(t, Amount(414), b.Payments)
	assert.Equal(t, Amount(15_000-414), b.Reserve)

	// the month gate blocks a second payment right away
	_, err = ProcessInvestorPayment(0)
	require.ErrorIs(t, err, ErrNextTransferNotClaimableYet)

	f.advance(SecondsInMonth)
	inv, err = ProcessInvestorPayment(0)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), inv.PaymentsTransferred)
}

func TestProcessPaymentTransferFailureLeavesStateUntouched(t *testing.T) {
	f := newFixture(t)
	f.initContract(t, defaultInitArgs())
	f.invest(t, testInvestor, 100_000)
	f.topUpReserve(t, 10_000)

	f.as(testOwner)
	f.sdk.FailTransfer = ErrRecipientCannotReceive
	_, err := ProcessInvestorPayment(0)
	require.ErrorIs(t, err, ErrRecipientCannotReceive)

	// nothing persisted: the position and the ledger read as before
	assert.Equal(t, uint32(0), loadInvestment(0).PaymentsTransferred)
	assert.Equal(t, Amount(0), loadBalancesOrNew().Payments)
}

func TestClaimPayments(t *testing.T) {
	f := newFixture(t)
	f.initContract(t, defaultInitArgs())
	f.invest(t, testInvestor, 100_000)
	f.topUpReserve(t, 200_000)

	f.as(testOther)
	_, err := ClaimPayments(0)
	require.ErrorIs(t, err, ErrNotPositionOwner)

	// the lock expired at invest time, so one period is due immediately
	f.as(testInvestor)
	inv, err := ClaimPayments(0)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), inv.PaymentsTransferred)
	assert.Equal(t, Amount(414), f.sdk.Transfers[len(f.sdk.Transfers)-1].Amount)

	_, err = ClaimPayments(0)
	require.ErrorIs(t, err, ErrNextTransferNotClaimableYet)

	// three missed months pay out in one transfer
	f.advance(95 * SecondsInDay)
	inv, err = ClaimPayments(0)
	require.NoError(t, err)
	assert.Equal(t, uint32(4), inv.PaymentsTransferred)
	assert.Equal(t, Amount(3*414), f.sdk.Transfers[len(f.sdk.Transfers)-1].Amount)

	// way past the end of term: the remaining 8 periods plus the principal
	f.advance(12 * SecondsInMonth)
	inv, err = ClaimPayments(0)
	require.NoError(t, err)
	assert.Equal(t, StatusFinished, inv.Status)
	assert.Equal(t, Amount(8*414+99_500), f.sdk.Transfers[len(f.sdk.Transfers)-1].Amount)

	_, err = ClaimPayments(0)
	require.ErrorIs(t, err, ErrInvestmentFinished)
}

func TestClaimBlockedByReserve(t *testing.T) {
	f := newFixture(t)
	args := defaultInitArgs()
	args.ReturnType = uint32(ReturnTypeReverseLoan)
	f.initContract(t, args)
	f.invest(t, testInvestor, 100_000)

	// reverse loan pays 8_706 per period but the reserve only holds the 5%
	// cut of the deposit
	f.as(testInvestor)
	_, err := ClaimPayments(0)
	require.ErrorIs(t, err, ErrContractInsufficientBalance)

	f.topUpReserve(t, 5_000)
	f.as(testInvestor)
	_, err = ClaimPayments(0)
	require.NoError(t, err)
}

func TestCheckReserveBalance(t *testing.T) {
	f := newFixture(t)
	args := defaultInitArgs()
	args.ReturnType = uint32(ReturnTypeReverseLoan)
	f.initContract(t, args)
	f.invest(t, testInvestor, 100_000)

	f.as(testOther)
	_, err := CheckReserveBalance()
	require.ErrorIs(t, err, ErrNotOwner)

	// next claim is a month out, nothing due within the forecast week
	f.as(testOwner)
	missing, err := CheckReserveBalance()
	require.NoError(t, err)
	assert.Equal(t, Amount(0), missing)

	// 25 days in, the 8_706 payment falls inside the week but the reserve
	// only holds 5_000
	f.advance(25 * SecondsInDay)
	missing, err = CheckReserveBalance()
	require.NoError(t, err)
	assert.Equal(t, Amount(3_706), missing)

	f.topUpReserve(t, 4_000)
	f.as(testOwner)
	missing, err = CheckReserveBalance()
	require.NoError(t, err)
	assert.Equal(t, Amount(0), missing)
}

func TestWithdrawAndMoveFlow(t *testing.T) {
	f := newFixture(t)
	f.initContract(t, defaultInitArgs())
	f.invest(t, testInvestor, 100_000)

	f.as(testOther)
	require.ErrorIs(t, WithdrawProject(1_000), ErrNotOwner)
	require.ErrorIs(t, MoveFundsToReserve(1_000), ErrNotOwner)

	f.as(testOwner)
	// moving the whole project bucket is rejected, withdrawing it is not
	require.ErrorIs(t, MoveFundsToReserve(94_500), ErrProjectBalanceInsufficient)
	require.NoError(t, MoveFundsToReserve(50_000))

	b := loadBalancesOrNew()
	assert.Equal(t, Amount(44_500), b.Project)
	assert.Equal(t, Amount(55_000), b.Reserve)
	assert.Equal(t, Amount(50_000), b.MovedFromProjectToReserve)

	require.NoError(t, WithdrawProject(44_500))
	assert.Equal(t, testProject, f.sdk.Transfers[len(f.sdk.Transfers)-1].To)

	b = loadBalancesOrNew()
	assert.Equal(t, Amount(0), b.Project)
	assert.Equal(t, Amount(44_500), b.ProjectWithdrawals)

	require.ErrorIs(t, WithdrawProject(1), ErrContractInsufficientBalance)
}

func TestPauseGating(t *testing.T) {
	f := newFixture(t)
	f.initContract(t, defaultInitArgs())
	f.invest(t, testInvestor, 100_000)

	f.as(testOther)
	require.ErrorIs(t, Pause(), ErrNotOwner)

	f.as(testOwner)
	require.NoError(t, Pause())
	paused, err := Paused()
	require.NoError(t, err)
	assert.True(t, paused)

	_, err = ProcessInvestorPayment(0)
	require.ErrorIs(t, err, ErrPaused)
	require.ErrorIs(t, WithdrawProject(1_000), ErrPaused)

	f.as(testInvestor)
	f.sdk.Deposit(testInvestor, 100_000, sdk.AssetHive)
	f.allowTransfer("10000.000", "hive")
	_, err = Invest(100_000)
	require.ErrorIs(t, err, ErrPaused)

	f.as(testOwner)
	require.NoError(t, Unpause())

	f.as(testInvestor)
	f.allowTransfer("10000.000", "hive")
	_, err = Invest(100_000)
	require.NoError(t, err)
}

func TestGetters(t *testing.T) {
	f := newFixture(t)
	f.initContract(t, defaultInitArgs())
	f.invest(t, testInvestor, 100_000)

	inv, err := GetInvestment(0)
	require.NoError(t, err)
	assert.Equal(t, testInvestor, inv.Owner)

	_, err = GetInvestment(5)
	require.ErrorIs(t, err, ErrAddressHasNotInvested)

	f.as(testOther)
	_, err = GetContractBalance()
	require.ErrorIs(t, err, ErrNotOwner)

	f.as(testOwner)
	b, err := GetContractBalance()
	require.NoError(t, err)
	assert.Equal(t, Amount(99_500), b.ReceivedSoFar)
}

func TestInvestEmitsEvents(t *testing.T) {
	f := newFixture(t)
	f.initContract(t, defaultInitArgs())
	f.invest(t, testInvestor, 100_000)

	var sawInvested, sawBalance bool
	for _, line := range f.sdk.Logs {
		switch {
		case line == "iv|id:0|by:hive:alice|am:100000|cm:500|rs:5000|pr:94500":
			sawInvested = true
		case len(line) > 3 && line[:3] == "cb|":
			sawBalance = true
		}
	}
	assert.True(t, sawInvested, "invested event missing: %v", f.sdk.Logs)
	assert.True(t, sawBalance, "balance event missing")
}
