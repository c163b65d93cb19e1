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
	"fmt"
	"math"

	log "github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ajroetker/go-xprec/xprec"
	"github.com/ajroetker/go-xprec/xprec/contrib/lgamma"
)

func newEvalCommand(cfg *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <x> [<x>...]",
		Short: "Print log|Gamma(x)| and the sign of Gamma(x) for each argument.",
		Long: "Print log|Gamma(x)| and the sign of Gamma(x) for each argument.\n\n" +
			"Arguments are parsed as exact decimals and rounded once to double-double,\n" +
			"so `0.1` means the DD nearest 1/10, not the float64 nearest 1/10.",
		Example: "lgamma eval 0.5 1e10\nlgamma eval --digits 20 --compare -- -2.5 7.25",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			digits := cfg.GetInt("digits")
			if digits <= 0 {
				return fmt.Errorf("--digits must be positive, got %d", digits)
			}
			compare := cfg.GetBool("compare")

			out := cmd.OutOrStdout()
			for _, arg := range args {
				x, err := xprec.Parse(arg)
				if err != nil {
					return fmt.Errorf("eval: %w", err)
				}
				y, sign := lgamma.LogGammaAbs(x)
				log.V(2).Infof("lgamma(%v) = %v, %d", x, y, sign)

				fmt.Fprintf(out, "%s\t%s\t%+d", arg, y.Text('g', digits), sign)
				if compare {
					want, _ := math.Lgamma(x.Float64())
					fmt.Fprintf(out, "\t%.17g\t%.3g", want, y.Sub(xprec.FromFloat64(want)).Float64())
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
	cmd.Flags().Int("digits", 32, "Significant digits to print.")
	cmd.Flags().Bool("compare", false, "Also print math.Lgamma of the float64-rounded argument and its difference from the DD result.")
	return cmd
}
