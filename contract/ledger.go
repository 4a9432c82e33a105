package contract

import "incomefund/sdk"

// SDK interface: the payment rail plus the host log sink.
type SDKInterface interface {
	Log(msg string)
	GetBalance(addr sdk.Address, asset sdk.Asset) int64
	Draw(amount Amount, asset sdk.Asset)
	Transfer(to sdk.Address, amount Amount, asset sdk.Asset) error
}

// RealSDK implements the SDK interface using the actual host methods.
type RealSDK struct{}

func (r *RealSDK) Log(msg string) {
	sdk.Log(msg)
}

func (r *RealSDK) GetBalance(addr sdk.Address, asset sdk.Asset) int64 {
	return sdk.GetBalance(addr, asset)
}

func (r *RealSDK) Draw(amount Amount, asset sdk.Asset) {
	sdk.HiveDraw(int64(amount), asset)
}

func (r *RealSDK) Transfer(to sdk.Address, amount Amount, asset sdk.Asset) error {
	// the host aborts the whole transaction itself when a transfer cannot
	// be applied, so reaching the next line means it went through
	sdk.HiveTransfer(to, int64(amount), asset)
	return nil
}

// globals
var sdkInterface SDKInterface

func InitSDKMocks(mock bool) {
	if mock {
		sdkInterface = NewMockSDK()
	} else {
		sdkInterface = &RealSDK{}
	}
}

func getSDK() SDKInterface {
	if sdkInterface == nil {
		sdkInterface = &RealSDK{}
	}
	return sdkInterface
}

// MockTransfer records one outbound payment for assertions.
type MockTransfer struct {
	To     sdk.Address
	Amount Amount
	Asset  sdk.Asset
}

// MockSDK keeps balances and transfers in memory and can inject a transfer
// failure for error-path tests.
type MockSDK struct {
	Balances     map[string]int64
	Draws        []MockTransfer
	Transfers    []MockTransfer
	Logs         []string
	FailTransfer error
}

func NewMockSDK() *MockSDK {
	return &MockSDK{
		Balances: map[string]int64{},
	}
}

func balanceKey(addr sdk.Address, asset sdk.Asset) string {
	return addr.String() + "/" + asset.String()
}

func (m *MockSDK) Log(msg string) {
	m.Logs = append(m.Logs, msg)
}

func (m *MockSDK) GetBalance(addr sdk.Address, asset sdk.Asset) int64 {
	return m.Balances[balanceKey(addr, asset)]
}

func (m *MockSDK) Deposit(addr sdk.Address, amount int64, asset sdk.Asset) {
	m.Balances[balanceKey(addr, asset)] += amount
}

func (m *MockSDK) Draw(amount Amount, asset sdk.Asset) {
	m.Draws = append(m.Draws, MockTransfer{Amount: amount, Asset: asset})
}

func (m *MockSDK) Transfer(to sdk.Address, amount Amount, asset sdk.Asset) error {
	if m.FailTransfer != nil {
		err := m.FailTransfer
		m.FailTransfer = nil
		return err
	}
	m.Transfers = append(m.Transfers, MockTransfer{To: to, Amount: amount, Asset: asset})
	m.Balances[balanceKey(to, asset)] += int64(amount)
	return nil
}
