package core

const hexDigits = "0123456789ABCDEF"

// AppendHex appends the uppercase hex encoding of data to dst and
// returns the extended slice. Every input byte becomes exactly two
// digits with no separators, in input order, regardless of length.
func AppendHex(dst, data []byte) []byte {
	for _, b := range data {
		dst = append(dst, hexDigits[b>>4], hexDigits[b&0x0f])
	}
	return dst
}

// HexString returns the uppercase hex encoding of data as a string.
// A zero-length input yields the empty string.
func HexString(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	return string(AppendHex(make([]byte, 0, 2*len(data)), data))
}
