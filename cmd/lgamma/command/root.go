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

// Package command holds the cobra commands of the lgamma CLI.
//
// Every flag can also be set from the environment as LGAMMA_<FLAG>, with
// dashes replaced by underscores; an explicit flag wins over the
// environment.
package command

import (
	"flag"
	"strings"

	log "github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ajroetker/go-xprec/xprec"
)

// EnvPrefix prefixes the environment variables read by the CLI.
const EnvPrefix = "LGAMMA"

// NewRoot returns the lgamma root command with all subcommands attached.
func NewRoot() *cobra.Command {
	cfg := viper.New()
	cfg.SetEnvPrefix(EnvPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	cfg.AutomaticEnv()

	root := &cobra.Command{
		Use:   "lgamma",
		Short: "lgamma evaluates log|Gamma(x)| to double-double precision.",
		Long: "`lgamma` evaluates the natural logarithm of |Gamma(x)| and the sign of Gamma(x)\n" +
			"with about 31 significant digits, prints the approximation segments it uses,\n" +
			"and sweeps ranges of arguments to check the result against exact identities.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			log.V(1).Infof("exact product kernel: %s", xprec.Kernel())
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			log.Flush()
		},
	}
	root.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	root.AddCommand(
		newEvalCommand(cfg),
		newSegmentsCommand(),
		newCheckCommand(cfg),
	)
	return root
}
