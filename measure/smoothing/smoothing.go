package smoothing

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-slew/dsp/slew"
)

// Errors returned by smoothing analysis.
var (
	ErrShortInput = errors.New("smoothing: input must contain at least two samples")
)

// Config holds spectral smoothing measurement parameters.
type Config struct {
	// FFTSize is the transform length. Zero selects the next power of two
	// that fits the input; other values are rounded up to a power of two.
	FFTSize int

	// SplitBin is the first bin counted as high-frequency content.
	// Zero selects a quarter of the non-negative-frequency bin count.
	SplitBin int
}

// Result holds spectral smoothing measurement results.
//
//nolint:revive
type Result struct {
	FFTSize      int
	SplitBin     int
	InputPower   float64 // total input band power (all bins above DC)
	OutputPower  float64 // total output band power (all bins above DC)
	InputHF      float64 // input power in bins [SplitBin, Nyquist]
	OutputHF     float64 // output power in bins [SplitBin, Nyquist]
	Rejection_dB float64 // 10*log10(InputHF / OutputHF)
}

// Calculator measures how much high-frequency content a limiter
// configuration removes from a signal.
type Calculator struct {
	cfg Config
}

// NewCalculator creates a smoothing calculator.
func NewCalculator(cfg Config) *Calculator {
	return &Calculator{cfg: cfg}
}

// Analyze is a one-shot smoothing analysis.
func Analyze(l *slew.Limiter, input []int, cfg Config) (Result, error) {
	return NewCalculator(cfg).Analyze(l, input)
}

// Analyze runs input through the limiter and compares the power spectra of
// the raw and the limited traces. Both traces are mean-removed and Hann
// windowed before the transform, so step offsets and DC do not leak into
// the band sums.
//
// The limiter is Reset before the run and left seeded afterwards.
func (c *Calculator) Analyze(l *slew.Limiter, input []int) (Result, error) {
	if len(input) < 2 {
		return Result{}, ErrShortInput
	}

	l.Reset()

	raw := make([]float64, len(input))
	limited := make([]float64, len(input))

	for i, v := range input {
		raw[i] = float64(v)
		limited[i] = float64(l.ProcessSample(v))
	}

	fftSize := c.cfg.FFTSize
	if fftSize < len(input) {
		fftSize = len(input)
	}

	fftSize = nextPowerOf2(fftSize)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Result{}, fmt.Errorf("smoothing: failed to create FFT plan: %w", err)
	}

	coeffs := hannWindow(len(input))

	rawPower, err := powerSpectrum(plan, raw, coeffs, fftSize)
	if err != nil {
		return Result{}, err
	}

	limPower, err := powerSpectrum(plan, limited, coeffs, fftSize)
	if err != nil {
		return Result{}, err
	}

	binCount := fftSize/2 + 1

	splitBin := c.cfg.SplitBin
	if splitBin <= 0 {
		splitBin = binCount / 4
	}

	if splitBin < 1 {
		splitBin = 1
	}

	if splitBin > binCount-1 {
		splitBin = binCount - 1
	}

	res := Result{
		FFTSize:     fftSize,
		SplitBin:    splitBin,
		InputPower:  vecmath.Sum(rawPower[1:binCount]),
		OutputPower: vecmath.Sum(limPower[1:binCount]),
		InputHF:     vecmath.Sum(rawPower[splitBin:binCount]),
		OutputHF:    vecmath.Sum(limPower[splitBin:binCount]),
	}

	res.Rejection_dB = powerRatioTodB(res.InputHF, res.OutputHF)

	return res, nil
}

// powerSpectrum mean-removes and windows the signal, zero-pads it to
// fftSize, and returns the power of every transform bin.
func powerSpectrum(plan *algofft.Plan[complex128], signal, coeffs []float64, fftSize int) ([]float64, error) {
	buf := make([]float64, len(signal))
	copy(buf, signal)

	mean := vecmath.Sum(buf) / float64(len(buf))
	for i := range buf {
		buf[i] -= mean
	}

	vecmath.MulBlockInPlace(buf, coeffs)

	padded := make([]complex128, fftSize)
	for i, v := range buf {
		padded[i] = complex(v, 0)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, padded); err != nil {
		return nil, fmt.Errorf("smoothing: forward FFT failed: %w", err)
	}

	re := make([]float64, fftSize)
	im := make([]float64, fftSize)

	for i, c := range out {
		re[i] = real(c)
		im[i] = imag(c)
	}

	power := make([]float64, fftSize)
	vecmath.Power(power, re, im)

	return power, nil
}

// hannWindow returns symmetric Hann coefficients for the given length.
func hannWindow(n int) []float64 {
	coeffs := make([]float64, n)
	if n == 1 {
		coeffs[0] = 1
		return coeffs
	}

	for i := range coeffs {
		coeffs[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
	}

	return coeffs
}

// powerRatioTodB converts a power ratio to decibels: 10 * log10(num/den).
// Returns 0 when both powers are zero and +Inf when only the denominator is.
func powerRatioTodB(num, den float64) float64 {
	if den == 0 {
		if num == 0 {
			return 0
		}

		return math.Inf(1)
	}

	return 10 * math.Log10(num/den)
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
