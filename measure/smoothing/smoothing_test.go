package smoothing

import (
	"testing"

	"github.com/cwbudde/algo-slew/dsp/slew"
)

// TestAnalyzeIdentity verifies that a limiter wide enough to pass every
// sample unchanged reports zero rejection and identical band powers.
func TestAnalyzeIdentity(t *testing.T) {
	input := make([]int, 128)
	for i := range input {
		input[i] = (i%7)*13 - 40
	}

	l := slew.New(slew.WithRateLimit(1<<30), slew.WithHysteresisBand(0))

	res, err := Analyze(l, input, Config{})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if res.Rejection_dB != 0 {
		t.Errorf("Rejection_dB = %f, want 0", res.Rejection_dB)
	}

	if res.InputPower != res.OutputPower {
		t.Errorf("InputPower = %f, OutputPower = %f, want equal", res.InputPower, res.OutputPower)
	}

	if res.InputHF != res.OutputHF {
		t.Errorf("InputHF = %f, OutputHF = %f, want equal", res.InputHF, res.OutputHF)
	}
}

// TestAnalyzeNyquistRejection verifies that tight rate limiting strongly
// attenuates an alternating full-scale input.
func TestAnalyzeNyquistRejection(t *testing.T) {
	input := make([]int, 256)
	for i := range input {
		if i%2 == 0 {
			input[i] = 100
		} else {
			input[i] = -100
		}
	}

	l := slew.New(slew.WithRateLimit(1), slew.WithHysteresisBand(0))

	res, err := Analyze(l, input, Config{})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if res.Rejection_dB < 20 {
		t.Errorf("Rejection_dB = %f, want >= 20", res.Rejection_dB)
	}

	if res.OutputHF >= res.InputHF {
		t.Errorf("OutputHF = %f, want < InputHF %f", res.OutputHF, res.InputHF)
	}
}

// TestAnalyzeConfigNormalization verifies FFT size rounding and split bin
// defaulting and clamping.
func TestAnalyzeConfigNormalization(t *testing.T) {
	input := make([]int, 100)
	for i := range input {
		input[i] = i
	}

	tests := []struct {
		name      string
		cfg       Config
		wantSize  int
		wantSplit int
	}{
		{"defaults", Config{}, 128, (128/2 + 1) / 4},
		{"non-pow2 size", Config{FFTSize: 100}, 128, (128/2 + 1) / 4},
		{"explicit size", Config{FFTSize: 256}, 256, (256/2 + 1) / 4},
		{"explicit split", Config{SplitBin: 10}, 128, 10},
		{"split clamped high", Config{SplitBin: 10000}, 128, 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := slew.New()

			res, err := Analyze(l, input, tt.cfg)
			if err != nil {
				t.Fatalf("Analyze() error = %v", err)
			}

			if res.FFTSize != tt.wantSize {
				t.Errorf("FFTSize = %d, want %d", res.FFTSize, tt.wantSize)
			}

			if res.SplitBin != tt.wantSplit {
				t.Errorf("SplitBin = %d, want %d", res.SplitBin, tt.wantSplit)
			}
		})
	}
}

// TestAnalyzeShortInput verifies the error for inputs too short to analyze.
func TestAnalyzeShortInput(t *testing.T) {
	l := slew.New()

	for _, input := range [][]int{nil, {}, {1}} {
		if _, err := Analyze(l, input, Config{}); err != ErrShortInput {
			t.Errorf("Analyze(len %d) error = %v, want ErrShortInput", len(input), err)
		}
	}
}

// TestHannWindow verifies endpoint and midpoint values of the window.
func TestHannWindow(t *testing.T) {
	coeffs := hannWindow(9)

	if coeffs[0] != 0 || coeffs[8] != 0 {
		t.Errorf("endpoints = %f, %f, want 0, 0", coeffs[0], coeffs[8])
	}

	if coeffs[4] != 1 {
		t.Errorf("midpoint = %f, want 1", coeffs[4])
	}

	single := hannWindow(1)
	if single[0] != 1 {
		t.Errorf("hannWindow(1)[0] = %f, want 1", single[0])
	}
}

// TestNextPowerOf2 verifies rounding behavior.
func TestNextPowerOf2(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 4},
		{100, 128},
		{128, 128},
		{129, 256},
	}

	for _, tt := range tests {
		if got := nextPowerOf2(tt.n); got != tt.want {
			t.Errorf("nextPowerOf2(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}
