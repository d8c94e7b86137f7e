package logger

// Format verb shorthands for fixed-width uppercase hex values, sized
// to include the 0X prefix: HexByte renders 0XAB, HexShort 0XABCD,
// and so on.
const (
	HexByte  = "%#04X"
	HexShort = "%#06X"
	HexWord  = "%#010X"
	HexLong  = "%#018X"
)
