package step_test

import (
	"fmt"

	"github.com/cwbudde/algo-slew/dsp/slew"
	"github.com/cwbudde/algo-slew/measure/step"
)

func ExampleAnalyze() {
	l := slew.New(slew.WithRateLimit(5), slew.WithHysteresisBand(0))

	m, err := step.Analyze(l, 100, 200, 0)
	if err != nil {
		panic(err)
	}

	fmt.Printf("settled in %d samples\n", m.SettleSamples)
	fmt.Printf("max step  %d\n", m.MaxStep)
	fmt.Printf("monotonic %v\n", m.Monotonic)

	// Output:
	// settled in 20 samples
	// max step  5
	// monotonic true
}
