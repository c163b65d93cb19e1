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
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-xprec/xprec/contrib/lgamma"
)

func newSegmentsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "segments",
		Short: "Print the tiling of (0, 13.5) by rational approximations.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Interval", "Table", "Argument"})
			for _, row := range segmentRows(lgamma.Segments()) {
				table.Append(row)
			}
			table.Render()
			return nil
		},
	}
}

// segmentRows formats each segment as an interval with its bounds'
// inclusivity, the table name and the argument the table is evaluated at.
func segmentRows(segs []lgamma.SegmentInfo) [][]string {
	rows := make([][]string, 0, len(segs))
	loInclusive := false
	for _, s := range segs {
		var interval string
		if s.Lo == s.Hi {
			interval = "{" + formatBound(s.Lo) + "}"
		} else {
			open, closing := "(", ")"
			if loInclusive {
				open = "["
			}
			if s.HiInclusive {
				closing = "]"
			}
			interval = open + formatBound(s.Lo) + ", " + formatBound(s.Hi) + closing
		}
		arg := "x"
		if s.Shifted {
			arg = "x+1"
		}
		rows = append(rows, []string{interval, s.Table, arg})
		loInclusive = !s.HiInclusive
	}
	return rows
}

func formatBound(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
