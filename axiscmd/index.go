// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package axiscmd

import (
	"fmt"
	"strconv"

	"finscale/levels"
	"finscale/stockval"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
)

const dateFormat = "2006-01-02"
const displayTimeFormat = "2006-01-02 15:04 MST"

func newIndexCommand(o *options) *cobra.Command {
	var smaPeriods int
	cmd := &cobra.Command{
		Use:   "index",
		Short: "Show the discontinuous index of candles.",
		Long: `Show the position of every candle on the gapless index, together with
the level of the calendar boundary it starts and its axis label.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, data, err := o.build(cmd)
			if err != nil {
				return err
			}
			headers := []string{"Index", "Date", "Level", "Label", "Close"}
			sma := data.Sma(smaPeriods)
			if sma != nil {
				headers = append(headers, "SMA "+strconv.Itoa(smaPeriods))
			}
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header(headers)
			table.Configure(func(cfg *tablewriter.Config) {
				cfg.Row.Alignment.Global = tw.AlignRight
			})
			rows := make([][]string, 0, len(r.Data))
			for i, d := range r.Data {
				row := []string{
					strconv.Itoa(d.Idx.Index),
					r.DisplayXAccessor(data[i]).Format(displayTimeFormat),
					levels.Name(d.Idx.Level),
					d.Idx.Label(),
					formatPrice(d.Record),
				}
				if i < len(sma) {
					row = append(row, strconv.FormatFloat(sma[i], 'f', 2, 64))
				}
				rows = append(rows, row)
			}
			if err := table.Bulk(rows); err != nil {
				return err
			}
			return table.Render()
		},
	}
	addDataFlags(cmd, o)
	addAxisFlags(cmd, o)
	cmd.Flags().IntVar(&smaPeriods, "sma", 0, "add a simple moving average of the close prices over n candles")
	return cmd
}

func newTicksCommand(o *options) *cobra.Command {
	var count, width, last int
	cmd := &cobra.Command{
		Use:   "ticks",
		Short: "Show the axis ticks of candles.",
		Long: `Show the ticks an axis of the given width labels, preferring the most
significant calendar boundaries, e.g. years over months over days.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, data, err := o.build(cmd)
			if err != nil {
				return err
			}
			if len(data) == 0 {
				return fmt.Errorf("no candles in the selected range")
			}
			if !cmd.Flags().Changed("count") {
				axis, err := o.axisConfig(cmd)
				if err != nil {
					return err
				}
				count = axis.TickCount
			}
			index := r.XScale.Index()
			lo, hi := index[0].Index, index[len(index)-1].Index
			visible := data
			if last > 0 && last < len(index) {
				lo = hi - last + 1
				visible = data[len(data)-last:]
			}
			r.XScale.SetDomain(float64(lo), float64(hi)).SetRange(0, float64(width))

			w := cmd.OutOrStdout()
			table := tablewriter.NewWriter(w)
			table.Header([]string{"Index", "X", "Level", "Label", "Date"})
			table.Configure(func(cfg *tablewriter.Config) {
				cfg.Row.Alignment.Global = tw.AlignRight
			})
			labels := r.XScale.Labels(count)
			rows := make([][]string, 0, len(labels))
			for _, l := range labels {
				rows = append(rows, []string{
					strconv.Itoa(l.Index),
					strconv.FormatFloat(l.X, 'f', 1, 64),
					levels.Name(l.Level),
					l.Label,
					l.Date.Format(displayTimeFormat),
				})
			}
			if err := table.Bulk(rows); err != nil {
				return err
			}
			if err := table.Render(); err != nil {
				return err
			}
			_, err = fmt.Fprintf(w, "%d of %d candles visible, %d ticks, %s\n", len(visible), len(data), len(labels), formatChange(visible))
			return err
		},
	}
	addDataFlags(cmd, o)
	addAxisFlags(cmd, o)
	f := cmd.Flags()
	f.IntVarP(&count, "count", "n", 0, "tick count hint (default from the configuration)")
	f.IntVar(&width, "width", 800, "axis width in pixels")
	f.IntVar(&last, "last", 0, "show only the last n candles")
	return cmd
}

func formatPrice(c stockval.CandleData) string {
	if c.ClosePrice == nil {
		return ""
	}
	return stockval.PrepareFormattedPrice(c.ClosePrice).String()
}

// formatChange describes the price change from the first to the last candle.
func formatChange(data stockval.CandleList) string {
	change := data.Change()
	if change == nil {
		return "no change"
	}
	text := fmt.Sprintf("%s%% (%s to %s)", change, formatPrice(data[0]), formatPrice(data[len(data)-1]))
	if stockval.IsGreenQuote(change) {
		return color.New(color.FgGreen).Sprint("+" + text)
	}
	return color.New(color.FgRed).Sprint(text)
}
