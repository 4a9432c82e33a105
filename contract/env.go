package contract

import (
	"strconv"
	"time"

	"incomefund/sdk"
)

// ENV interface
type ENVInterface interface {
	GetEnv() sdk.Env
	GetEnvKey(key string) *string
}

// RealENV implements the ENV interface using the actual host environment.
type RealENV struct{}

func (r *RealENV) GetEnv() sdk.Env {
	return sdk.GetEnv()
}

func (r *RealENV) GetEnvKey(key string) *string {
	return sdk.GetEnvKey(key)
}

// globals
var envInterface ENVInterface

func InitENVMocks(mock bool) {
	if mock {
		envInterface = NewMockENV()
	} else {
		envInterface = &RealENV{}
	}
}

func getENV() ENVInterface {
	if envInterface == nil {
		envInterface = &RealENV{}
	}
	return envInterface
}

// MockENV is a settable environment for local runs and tests.
type MockENV struct {
	Sender    sdk.Address
	Timestamp string
	TxId      string
	Intents   []sdk.Intent
}

func NewMockENV() *MockENV {
	return &MockENV{
		Sender:    sdk.Address("hive:someone"),
		Timestamp: "2025-01-01T00:00:00",
		TxId:      "0",
	}
}

func (m *MockENV) GetEnv() sdk.Env {
	return sdk.Env{
		TxId:      m.TxId,
		Timestamp: m.Timestamp,
		Intents:   m.Intents,
		Sender: sdk.Sender{
			Address:              m.Sender,
			RequiredAuths:        []sdk.Address{m.Sender},
			RequiredPostingAuths: []sdk.Address{},
		},
	}
}

func (m *MockENV) GetEnvKey(key string) *string {
	switch key {
	case "block.timestamp":
		return &m.Timestamp
	case "tx.id":
		return &m.TxId
	default:
		return nil
	}
}

// getSenderAddress returns the address of the current transaction sender.
func getSenderAddress() sdk.Address {
	return getENV().GetEnv().Sender.Address
}

// currentIntents lists the intents attached to the current transaction.
func currentIntents() []sdk.Intent {
	return getENV().GetEnv().Intents
}

// -----------------------------------------------------------------------------
// Timestamp Helpers
// -----------------------------------------------------------------------------

// nowUnix returns the current Unix timestamp.
// It prefers the chain's block timestamp from the environment if available.
func nowUnix() int64 {
	if tsPtr := getENV().GetEnvKey("block.timestamp"); tsPtr != nil && *tsPtr != "" {
		if v, ok := parseTimestamp(*tsPtr); ok {
			return v
		}
	}
	return time.Now().Unix()
}

// parseTimestamp accepts unix seconds or iso-ish strings since the env flips formats sometimes.
func parseTimestamp(val string) (int64, bool) {
	if v, err := strconv.ParseInt(val, 10, 64); err == nil {
		return v, true
	}
	if t, err := time.Parse(time.RFC3339, val); err == nil {
		return t.Unix(), true
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", val, time.UTC); err == nil {
		return t.Unix(), true
	}
	return 0, false
}
