package domain

import (
	"strconv"
	"strings"
)

// Numbers is the default count of values a caller generates or processes.
const Numbers = 10000

// Sequence is an ordered list of values as they appear line by line in a file.
type Sequence []int32

// ParseToken parses a single line as a signed 32-bit decimal integer.
// Surrounding whitespace is ignored. The second result is false for empty,
// non-numeric or out-of-range input.
func ParseToken(line string) (int32, bool) {
	token := strings.TrimSpace(line)
	if token == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(token, 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}

// FormatValue appends the decimal form of n and a newline to buf.
func FormatValue(buf []byte, n int32) []byte {
	buf = strconv.AppendInt(buf, int64(n), 10)
	return append(buf, '\n')
}

// Add returns a + b, wrapping on overflow.
func Add(a, b int32) int32 {
	return a + b
}

// Subtract returns a - b, wrapping on overflow.
func Subtract(a, b int32) int32 {
	return a - b
}

// Multiply returns a * b, wrapping on overflow.
func Multiply(a, b int32) int32 {
	return a * b
}
