package contract

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"incomefund/sdk"
)

const (
	testOwner    = sdk.Address("hive:fundadmin")
	testInvestor = sdk.Address("hive:alice")
	testOther    = sdk.Address("hive:bob")
	testProject  = sdk.Address("hive:waterworks")
)

// fixture wires the three mock backends into the package singletons and
// drives sender, clock and intents per call.
type fixture struct {
	state *MockState
	env   *MockENV
	sdk   *MockSDK
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		state: NewMockState(),
		env:   NewMockENV(),
		sdk:   NewMockSDK(),
	}
	state = f.state
	envInterface = f.env
	sdkInterface = f.sdk

	f.env.Sender = testOwner
	f.setNow(1_700_000_000)
	return f
}

func (f *fixture) setNow(ts int64) {
	f.env.Timestamp = strconv.FormatInt(ts, 10)
}

func (f *fixture) now() int64 {
	v, err := strconv.ParseInt(f.env.Timestamp, 10, 64)
	if err != nil {
		panic(err)
	}
	return v
}

func (f *fixture) advance(seconds int64) {
	f.setNow(f.now() + seconds)
}

func (f *fixture) as(addr sdk.Address) {
	f.env.Sender = addr
}

// allowTransfer attaches a transfer.allow intent; limit is in whole token
// units, the way wallets send it.
func (f *fixture) allowTransfer(limit string, token string) {
	f.env.Intents = []sdk.Intent{{
		Type: "transfer.allow",
		Args: map[string]string{"limit": limit, "token": token},
	}}
}

func (f *fixture) clearIntents() {
	f.env.Intents = nil
}

func defaultInitArgs() *InitArgs {
	return &InitArgs{
		ProjectAddress:   testProject.String(),
		Token:            "hive",
		InterestRate:     500,
		ClaimBlockDays:   0,
		Goal:             1_000_000,
		ReturnType:       uint32(ReturnTypeCoupon),
		ReturnMonths:     12,
		MinPerInvestment: 1_000,
	}
}

// initContract initializes the contract as the owner and restores the
// previous sender afterwards.
func (f *fixture) initContract(t *testing.T, args *InitArgs) *ContractData {
	t.Helper()
	prev := f.env.Sender
	f.as(testOwner)
	cd, err := InitContract(args)
	require.NoError(t, err)
	f.env.Sender = prev
	return cd
}

// invest funds the investor's balance, attaches a generous intent and
// deposits as that address.
func (f *fixture) invest(t *testing.T, who sdk.Address, amount Amount) *Investment {
	t.Helper()
	f.as(who)
	f.sdk.Deposit(who, int64(amount), sdk.AssetHive)
	f.allowTransfer("10000.000", "hive")
	inv, err := Invest(amount)
	require.NoError(t, err)
	f.clearIntents()
	return inv
}

// topUpReserve books a company contribution as the owner.
func (f *fixture) topUpReserve(t *testing.T, amount Amount) {
	t.Helper()
	prev := f.env.Sender
	f.as(testOwner)
	f.sdk.Deposit(testOwner, int64(amount), sdk.AssetHive)
	f.allowTransfer("10000.000", "hive")
	require.NoError(t, AddCompanyTransfer(amount))
	f.clearIntents()
	f.env.Sender = prev
}
