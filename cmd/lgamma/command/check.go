// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package command

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"

	log "github.com/golang/glog"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ajroetker/go-xprec/xprec"
	"github.com/ajroetker/go-xprec/xprec/contrib/lgamma"
	"github.com/ajroetker/go-xprec/xprec/contrib/workerpool"
)

// Identities checked by the sweep.
const (
	recurrence = "recurrence"
	reflection = "reflection"
)

// ErrToleranceExceeded is returned by check when a residual is above the
// tolerance.
var ErrToleranceExceeded = errors.New("tolerance exceeded")

var logPi = xprec.Log(xprec.Pi)

// residual is the outcome of one identity check.
type residual struct {
	x        float64
	identity string

	// value is the identity's error relative to max(1, |lgamma|), or +Inf
	// when the signs disagree.
	value float64
}

// checkSample evaluates the identity that applies at x: the recurrence
// lgamma(x+1) = lgamma(x) + log(x) for x > 0 and the reflection
// lgamma(x) + lgamma(1-x) = log(π/|sin(πx)|) for negative non-integers.
// ok is false at the poles.
func checkSample(x float64) (r residual, ok bool) {
	d := xprec.FromFloat64(x)
	if x > 0 {
		a, _ := lgamma.LogGammaAbs(d)
		b, _ := lgamma.LogGammaAbs(d.AddFloat64(1))
		diff := b.Sub(a).Sub(xprec.Log(d))
		return residual{x: x, identity: recurrence, value: relative(diff, b)}, true
	}
	if d.IsInt() || x == 0 {
		return residual{}, false
	}

	a, signA := lgamma.LogGammaAbs(d)
	b, signB := lgamma.LogGammaAbs(xprec.One.Sub(d))
	s := xprec.SinPi(d)
	r = residual{x: x, identity: reflection}
	if signB != 1 || signA != s.Sign() {
		r.value = math.Inf(1)
		return r, true
	}
	diff := a.Add(b).Add(xprec.Log(s.Abs())).Sub(logPi)
	r.value = relative(diff, b)
	return r, true
}

func relative(diff, scale xprec.DD) float64 {
	return math.Abs(diff.Float64()) / math.Max(1, math.Abs(scale.Float64()))
}

func newCheckCommand(cfg *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Sweep a range of arguments and check lgamma against exact identities.",
		Long: "Sweep [from, to) in steps and check each argument against the recurrence\n" +
			"lgamma(x+1) = lgamma(x) + log(x) for x > 0, or the reflection formula for\n" +
			"negative non-integers. Prints the worst residuals and fails if any exceeds\n" +
			"the tolerance.",
		Example: "lgamma check --from -10 --to 20 --step 0.001 --workers 8",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, step := cfg.GetFloat64("from"), cfg.GetFloat64("to"), cfg.GetFloat64("step")
			tolerance := cfg.GetFloat64("tolerance")
			worst := cfg.GetInt("worst")
			if !(step > 0) || !(from < to) {
				return fmt.Errorf("check: need from < to and step > 0, got from=%g to=%g step=%g", from, to, step)
			}

			xs := lo.RangeWithSteps(from, to, step)
			pool := workerpool.New(cfg.GetInt("workers"))
			defer pool.Close()
			log.Infof("checking %d samples in [%g, %g) on %d workers", len(xs), from, to, pool.Workers())

			type outcome struct {
				r  residual
				ok bool
			}
			outcomes := workerpool.Map(pool, len(xs), func(i int) outcome {
				r, ok := checkSample(xs[i])
				return outcome{r, ok}
			})
			results := lo.FilterMap(outcomes, func(o outcome, _ int) (residual, bool) {
				return o.r, o.ok
			})

			failed := lo.CountBy(results, func(r residual) bool {
				return !(r.value <= tolerance)
			})
			slices.SortStableFunc(results, func(a, b residual) int {
				return -compareResiduals(a.value, b.value)
			})

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d samples, %d skipped at poles, %d above %g\n",
				len(results), len(xs)-len(results), failed, tolerance)
			table := tablewriter.NewWriter(out)
			table.SetHeader([]string{"X", "Identity", "Residual"})
			for _, r := range results[:max(0, min(worst, len(results)))] {
				table.Append([]string{
					strconv.FormatFloat(r.x, 'g', -1, 64),
					r.identity,
					strconv.FormatFloat(r.value, 'e', 3, 64),
				})
			}
			table.Render()

			if failed > 0 {
				return fmt.Errorf("check: %d of %d samples: %w", failed, len(results), ErrToleranceExceeded)
			}
			return nil
		},
	}
	cmd.Flags().Float64("from", -20, "Start of the sweep, inclusive.")
	cmd.Flags().Float64("to", 60, "End of the sweep, exclusive.")
	cmd.Flags().Float64("step", 0.01, "Distance between samples.")
	cmd.Flags().Int("workers", 0, "Worker goroutines; 0 means GOMAXPROCS.")
	cmd.Flags().Float64("tolerance", 1e-28, "Largest acceptable relative residual.")
	cmd.Flags().Int("worst", 10, "Number of worst residuals to print.")
	return cmd
}

// compareResiduals orders residuals with NaN above every number.
func compareResiduals(a, b float64) int {
	switch {
	case math.IsNaN(a) && math.IsNaN(b):
		return 0
	case math.IsNaN(a):
		return 1
	case math.IsNaN(b):
		return -1
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
