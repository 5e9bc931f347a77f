// Command harness runs the concrete scenario table and the numeric
// end-to-end checks from spec.md §8 against the posit core, reporting
// pass/fail per row the way a regression suite would.
package main

import (
	"fmt"
	"log"
	"math"
	"os"

	"github.com/spf13/cobra"
	"github.com/vilunov/goposit/internal/config"
	"github.com/vilunov/goposit/numeric"
	"github.com/vilunov/goposit/posit"
	"github.com/vilunov/goposit/regime"
)

func main() {
	regime.OnSaturate = func(a, b, capped int64) {
		log.Printf("[debug] regime magnitude saturated: %d + %d capped at %d", a, b, capped)
	}

	var configPath string

	rootCmd := &cobra.Command{
		Use:   "harness",
		Short: "Posit arithmetic regression harness",
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: platform config dir)")

	var tolerance float64
	var toleranceSet bool

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Run the concrete scenario table and the dot-product end-to-end check",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if toleranceSet {
				cfg.Harness.Tolerance = tolerance
			}
			return runCheck(cfg)
		},
	}
	checkCmd.Flags().Float64Var(&tolerance, "tolerance", 0, "Override the configured numeric tolerance")
	checkCmd.PreRun = func(cmd *cobra.Command, args []string) {
		toleranceSet = cmd.Flags().Changed("tolerance")
	}

	var probeStep float64
	var probeStepSet bool

	minimizeCmd := &cobra.Command{
		Use:   "minimize",
		Short: "Run the golden-section minimizer end-to-end check",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if probeStepSet {
				cfg.Harness.ProbeStep = probeStep
			}
			return runMinimize(cfg)
		},
	}
	minimizeCmd.Flags().Float64Var(&probeStep, "probe-step", 0, "Override the configured probe step")
	minimizeCmd.PreRun = func(cmd *cobra.Command, args []string) {
		probeStepSet = cmd.Flags().Changed("probe-step")
	}

	rootCmd.AddCommand(checkCmd, minimizeCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFrom(path)
}

// scenario is one row of spec.md §8's concrete scenario table. additive
// scenarios also get the round-trip check `expect - right = left` and
// `expect - left = right`.
type scenario struct {
	name     string
	op       func(a, b posit.Posit) posit.Posit
	left     string
	right    string
	expect   string
	additive bool
}

func bitsOf(s string) posit.Posit {
	bits := make([]byte, len(s))
	for i, c := range s {
		if c == '1' {
			bits[i] = 1
		}
	}
	return posit.FromBits(bits...)
}

var scenarios = []scenario{
	{name: "mul#1", op: posit.Mul, left: "010010", right: "010001", expect: "010011"},
	{name: "mul#2", op: posit.Mul, left: "01011", right: "0101110", expect: "0110101"},
	{name: "div#3", op: posit.Div, left: "01000000000000", right: "010011", expect: "0011101010101"},
	{name: "div#4", op: posit.Div, left: "01011", right: "01010", expect: "01001"},
	{name: "add#5", op: posit.Add, left: "01001", right: "010001", expect: "0100111", additive: true},
	{name: "add#6", op: posit.Add, left: "01001", right: "010011", expect: "0101001", additive: true},
}

func runCheck(cfg *config.Config) error {
	failures := 0

	for _, s := range scenarios {
		left, right := bitsOf(s.left), bitsOf(s.right)
		expect := bitsOf(s.expect)

		got := s.op(left, right)
		ok := got.String() == expect.String()
		report(s.name, ok, got.String(), expect.String())
		if !ok {
			failures++
			if cfg.Harness.StopOnFailure {
				return fmt.Errorf("%s failed, stopping on first failure", s.name)
			}
		}

		if !s.additive {
			continue
		}
		roundTripLeft := posit.Sub(expect, right)
		roundTripRight := posit.Sub(expect, left)
		rtOK := roundTripLeft.String() == left.String() && roundTripRight.String() == right.String()
		report(s.name+" round-trip", rtOK, roundTripLeft.String()+","+roundTripRight.String(), s.left+","+s.right)
		if !rtOK {
			failures++
			if cfg.Harness.StopOnFailure {
				return fmt.Errorf("%s round-trip failed, stopping on first failure", s.name)
			}
		}
	}

	fromDouble := posit.FromDouble(0.625)
	wantFromDouble := bitsOf("0011101")
	ok := fromDouble.String() == wantFromDouble.String()
	report("from_double(0.625)", ok, fromDouble.String(), wantFromDouble.String())
	if !ok {
		failures++
	}

	// spec.md §8 only guarantees 1e-7 for this check; a stricter configured
	// tolerance must not turn a spec-compliant result into a false failure.
	dotTolerance := cfg.Harness.Tolerance
	if dotTolerance < 1e-7 {
		dotTolerance = 1e-7
	}

	for _, b := range []float64{5, 8, 12, 15, 20} {
		a := 5.0
		v1 := []float64{
			math.Pow(10, a), 1223, math.Pow(10, a-1), math.Pow(10, a-2), 3, -math.Pow(10, a-5),
		}
		v2 := []float64{
			math.Pow(10, b), 2, -math.Pow(10, b+1), math.Pow(10, b), 2111, math.Pow(10, b+3),
		}
		got := numeric.DotProductValue(v1, v2)
		ok := math.Abs(got-8779) <= dotTolerance
		report(fmt.Sprintf("dot-product(a=%v,b=%v)", a, b), ok, fmt.Sprintf("%v", got), "8779")
		if !ok {
			failures++
			if cfg.Harness.StopOnFailure {
				return fmt.Errorf("dot-product(a=%v,b=%v) failed, stopping on first failure", a, b)
			}
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d check(s) failed", failures)
	}
	fmt.Println("all checks passed")
	return nil
}

func runMinimize(cfg *config.Config) error {
	const center = 4.0 / 3.0
	f := numeric.Parabola(center)

	got := numeric.Minimize(f, -2, 4.65, cfg.Harness.ProbeStep, cfg.Harness.Tolerance, cfg.Harness.MinimizeBudget)
	diff := math.Abs(got - center)
	ok := diff <= 1e-7

	report("golden-section-minimizer", ok, fmt.Sprintf("%v", got), fmt.Sprintf("%v", center))
	if !ok {
		return fmt.Errorf("minimizer converged to %v, want within 1e-7 of %v (diff %v)", got, center, diff)
	}
	fmt.Println("minimizer check passed")
	return nil
}

func report(name string, ok bool, got, want string) {
	status := "PASS"
	if !ok {
		status = "FAIL"
	}
	if ok {
		fmt.Printf("  [%s] %s\n", status, name)
		return
	}
	fmt.Printf("  [%s] %s: got %s, want %s\n", status, name, got, want)
}
