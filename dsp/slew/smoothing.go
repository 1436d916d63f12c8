package slew

import "fmt"

// Smoothing selects the EMA averaging strength as a power-of-two divisor.
// The numeric code is the shift amount, so divisor = 1 << code. Larger
// divisors average over a longer effective window and respond more slowly.
type Smoothing int

const (
	Smoothing1 Smoothing = iota
	Smoothing2
	Smoothing4
	Smoothing8
	Smoothing16
	Smoothing32
	Smoothing64
	Smoothing128
	Smoothing256
	Smoothing512

	smoothingCount // sentinel for validation
)

// Divisor returns the EMA divisor 2^code.
func (s Smoothing) Divisor() int {
	return 1 << uint(s)
}

// Valid reports whether s is one of the ten supported smoothing codes.
// Processing does not validate — this is informational for callers.
func (s Smoothing) Valid() bool {
	return s >= Smoothing1 && s < smoothingCount
}

// String returns the divisor form of the smoothing code, e.g. "1/16".
func (s Smoothing) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Smoothing(%d)", int(s))
	}
	return fmt.Sprintf("1/%d", s.Divisor())
}
