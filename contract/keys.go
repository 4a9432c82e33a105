package contract

// packU64LEInline sprinkles a uint64 into dst in little-endian order so our keys stay compact.
func packU64LEInline(x uint64, dst []byte) {
	dst[0] = byte(x)
	dst[1] = byte(x >> 8)
	dst[2] = byte(x >> 16)
	dst[3] = byte(x >> 24)
	dst[4] = byte(x >> 32)
	dst[5] = byte(x >> 40)
	dst[6] = byte(x >> 48)
	dst[7] = byte(x >> 56)
}

// investmentKey builds a storage key string for a position by id.
func investmentKey(id uint64) string {
	var buf [9]byte
	buf[0] = kInvestment
	packU64LEInline(id, buf[1:])
	return string(buf[:])
}

// claimKey keeps the derived claim projection next to its position under its own prefix.
func claimKey(id uint64) string {
	var buf [9]byte
	buf[0] = kClaim
	packU64LEInline(id, buf[1:])
	return string(buf[:])
}
