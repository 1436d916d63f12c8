package step

import (
	"errors"

	"github.com/cwbudde/algo-slew/dsp/slew"
)

// Errors returned by step-response analysis.
var (
	ErrInvalidBudget = errors.New("step: sample budget must be positive")
)

const defaultMaxSamples = 4096

// Metrics holds step-response characteristics of a limiter configuration.
type Metrics struct {
	Settled       bool  // output reached the target within the budget
	SettleSamples int   // post-seed calls until the output first equals the target
	MaxStep       int   // largest per-sample output change observed
	Monotonic     bool  // distance to target never increased
	FinalValue    int   // last output produced
	Trace         []int // successive outputs, starting with the seeded value
}

// Analyzer characterizes how a limiter responds to an input step.
type Analyzer struct {
	MaxSamples int // post-seed call budget; 0 selects the default of 4096
}

// NewAnalyzer creates a step-response analyzer with the given call budget.
func NewAnalyzer(maxSamples int) *Analyzer {
	return &Analyzer{MaxSamples: maxSamples}
}

// Analyze is a one-shot step-response analysis.
func Analyze(l *slew.Limiter, from, to, maxSamples int) (Metrics, error) {
	return NewAnalyzer(maxSamples).Analyze(l, from, to)
}

// Analyze seeds the limiter with from, then feeds it the constant target to
// until the output settles or the sample budget is exhausted.
//
// The limiter is Reset before the run and left seeded at the final value
// afterwards. Analysis stops early once the output equals the target, since
// constant input can no longer move a settled limiter.
func (a *Analyzer) Analyze(l *slew.Limiter, from, to int) (Metrics, error) {
	budget := a.MaxSamples
	if budget == 0 {
		budget = defaultMaxSamples
	}

	if budget < 0 {
		return Metrics{}, ErrInvalidBudget
	}

	l.Reset()

	m := Metrics{
		Monotonic: true,
		Trace:     make([]int, 0, budget+1),
	}

	prev := l.ProcessSample(from)
	m.Trace = append(m.Trace, prev)
	m.FinalValue = prev

	if prev == to {
		m.Settled = true
		return m, nil
	}

	for i := 1; i <= budget; i++ {
		out := l.ProcessSample(to)
		m.Trace = append(m.Trace, out)
		m.FinalValue = out

		if step := intAbs(out - prev); step > m.MaxStep {
			m.MaxStep = step
		}

		if intAbs(to-out) > intAbs(to-prev) {
			m.Monotonic = false
		}

		prev = out

		if out == to {
			m.Settled = true
			m.SettleSamples = i

			return m, nil
		}
	}

	return m, nil
}

func intAbs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
