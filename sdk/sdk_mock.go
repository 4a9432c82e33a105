//go:build !wasm

package sdk

import (
	"fmt"
	"strconv"
)

// Off-chain builds (local runs, go test) get a map-backed stand-in for the
// host api so the contract package links without the wasm toolchain.

var mockDb = map[string]string{}

func Log(s string) {
	fmt.Println("SDK log:", s)
}

func Abort(msg string) {
	panic("abort: " + msg)
}

func Revert(msg string, symbol string) {
	panic("revert [" + symbol + "]: " + msg)
}

func StateSetObject(key string, value string) {
	mockDb[key] = value
}

func StateGetObject(key string) *string {
	val, ok := mockDb[key]
	if !ok {
		return nil
	}
	return &val
}

func StateDeleteObject(key string) {
	delete(mockDb, key)
}

func GetEnv() Env {
	return Env{
		TxId:      "0",
		Timestamp: "2025-01-01T00:00:00",
		Sender: Sender{
			Address:              Address("hive:someone"),
			RequiredAuths:        []Address{},
			RequiredPostingAuths: []Address{},
		},
	}
}

func GetEnvKey(key string) *string {
	env := GetEnv()
	switch key {
	case "block.timestamp":
		return &env.Timestamp
	case "tx.id":
		return &env.TxId
	default:
		return nil
	}
}

func GetBalance(address Address, asset Asset) int64 {
	fmt.Println("GetBalance:", address.String(), asset.String())
	return 1000
}

func HiveDraw(amount int64, asset Asset) {
	fmt.Println("HiveDraw:", strconv.FormatInt(amount, 10), asset.String())
}

func HiveTransfer(to Address, amount int64, asset Asset) {
	fmt.Println("HiveTransfer:", to.String(), strconv.FormatInt(amount, 10), asset.String())
}
