// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package axiscmd

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

const sessionTimeFormat = "Mon 2006-01-02 15:04 MST"

func newSessionsCommand(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "List the trading sessions of a time range.",
		Long: `List the candle start times of the US exchanges within a time range.
Weekends, bank holidays and the hours outside of the trading session are skipped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			times, c, err := o.sessions(cmd)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			table := tablewriter.NewWriter(w)
			table.Header([]string{"#", "Start", "State"})
			var data [][]string
			for i, t := range times {
				state := ""
				if c.Resolution.IsIntraday() {
					state = o.calendar.TradingState(t)
					if state == "" {
						state = "Open"
					}
				}
				data = append(data, []string{strconv.Itoa(i), t.Format(sessionTimeFormat), state})
			}
			if err := table.Bulk(data); err != nil {
				return err
			}
			if err := table.Render(); err != nil {
				return err
			}
			from, to, _ := o.timeRange(c.Resolution)
			for _, h := range o.calendar.Holidays(from, to) {
				name := h.Name
				if h.Observed {
					name += " (observed)"
				}
				if _, err := fmt.Fprintf(w, "Closed %s: %s\n", h.Date.Format(dateFormat), name); err != nil {
					return err
				}
			}
			_, err = fmt.Fprintf(w, "%d sessions of %s\n", len(times), c.Resolution)
			return err
		},
	}
	addDataFlags(cmd, o)
	return cmd
}
