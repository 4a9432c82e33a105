package contract

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"incomefund/sdk"
)

///////////////////////////////////////////////////
// Conversions from/to json strings
///////////////////////////////////////////////////

// ToJSON serializes v, aborting on failure since state blobs must never be lost half-written.
func ToJSON[T any](v T, objectType string) string {
	b, err := json.Marshal(v)
	if err != nil {
		sdk.Abort(fmt.Sprintf("failed to marshal %s\nInput data:%+v\nError: %v", objectType, v, err))
	}
	return string(b)
}

// FromJSON parses a JSON blob into T and reports what failed to decode.
func FromJSON[T any](data string, objectType string) (*T, error) {
	data = strings.TrimSpace(data)
	var v T
	if err := json.Unmarshal([]byte(data), &v); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s: %v", objectType, err)
	}
	return &v, nil
}

// Convenience helper
func strptr(s string) *string { return &s }

// -----------------------------------------------------------------------------
// Counter Operations
// -----------------------------------------------------------------------------

// getCount reads the string counter under the key and defaults to zero, nothing magical here.
func getCount(key string) uint64 {
	ptr := getState().Get(key)
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, _ := strconv.ParseUint(*ptr, 10, 64)
	return n
}

// setCount stores uint64 counters back as decimal strings for the host kv.
func setCount(key string, n uint64) {
	getState().Set(key, strconv.FormatUint(n, 10))
}

// -----------------------------------------------------------------------------
// Checked Arithmetic
// -----------------------------------------------------------------------------

// Monetary math must never wrap silently; any overflow aborts the operation.

func checkedAdd(a, b Amount) Amount {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		sdk.Abort("amount overflow")
	}
	return s
}

func checkedMul(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	p := a * b
	if p/b != a {
		sdk.Abort("amount overflow")
	}
	return p
}
