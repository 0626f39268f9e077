// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package axiscmd

import (
	"fmt"

	"finscale/levels"
	"finscale/stockval"
	"finscale/timefmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newFormatCommand(o *options) *cobra.Command {
	var pattern string
	cmd := &cobra.Command{
		Use:   "format TIME...",
		Short: "Format times like axis labels.",
		Long: `Format times with a percent-directive pattern, e.g. "%b %e, %Y".
Without a pattern, the most specific of the default label formats is chosen
for each time: milliseconds, seconds, minutes, hours, days, months or years.
Times without zone are read in the exchange time zone.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			axis, err := o.axisConfig(cmd)
			if err != nil {
				return err
			}
			loc, err := axis.LoadLocation()
			if err != nil {
				return err
			}
			locale := timefmt.EnUS
			if axis.Locale != nil {
				locale = *axis.Locale
			}
			w := cmd.OutOrStdout()
			for _, arg := range args {
				t, err := stockval.ParseTime(arg, o.calendar.Location())
				if err != nil {
					return err
				}
				if loc != nil {
					t = t.In(loc)
				}
				var s string
				if pattern != "" {
					s = locale.Format(pattern, t)
				} else {
					s = locale.MultiFormat(t, timefmt.DefaultMultiFormats)
				}
				if _, err := fmt.Fprintln(w, s); err != nil {
					return err
				}
			}
			return nil
		},
	}
	addAxisFlags(cmd, o)
	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "percent-directive pattern")
	return cmd
}

func newLevelsCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "List the calendar boundary levels.",
		Long: `List the calendar boundaries a candle may start, most significant first,
with the label pattern of each. Levels with an empty pattern are skipped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			axis, err := o.axisConfig(cmd)
			if err != nil {
				return err
			}
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header([]string{"Level", "Boundary", "Format", "Pattern"})
			var rows [][]string
			for _, r := range levels.Ladder() {
				rows = append(rows, []string{
					fmt.Sprint(r.Level),
					r.Name,
					r.Format.String(),
					axis.Formatters.Pattern(r.Format),
				})
			}
			if err := table.Bulk(rows); err != nil {
				return err
			}
			return table.Render()
		},
	}
}
