// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package axiscmd

import (
	"fmt"
	"math/rand"
	"time"

	"finscale/calendar"
	"finscale/candles"
	"finscale/config"
	"finscale/provider"
	"finscale/stockval"

	"github.com/spf13/cobra"
)

type options struct {
	config     config.Config
	configFile string
	calendar   calendar.BankCalendar
	now        func() time.Time

	// data
	csvFile    string
	from       string
	to         string
	resolution string
	extended   bool
	seed       int64

	// axis
	utc bool
	tz  string
}

// NewRootCommand returns the command tree of the CLI. If c is nil, the
// configuration is read from the file given by --config or from the user
// config dir.
func NewRootCommand(c config.Config) *cobra.Command {
	return newRootCommand(&options{
		config:   c,
		calendar: calendar.NewUSBankCalendar(),
		now:      time.Now,
	})
}

func newRootCommand(o *options) *cobra.Command {
	root := &cobra.Command{
		Use:   "finscale",
		Short: "Inspect discontinuous time axes of financial charts.",
		Long: `finscale places trading sessions on a gapless index, the way financial
charts skip nights, weekends and holidays, and shows which of them an axis labels.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			if o.config == nil {
				o.config = config.NewFileConfig(o.configFile)
			}
			return nil
		},
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}
	root.PersistentFlags().StringVar(&o.configFile, "config", "", "configuration file (default is in the user config dir)")
	root.AddCommand(
		newSessionsCommand(o),
		newIndexCommand(o),
		newTicksCommand(o),
		newFormatCommand(o),
		newLevelsCommand(o),
		newConfigCommand(o),
	)
	return root
}

func addDataFlags(cmd *cobra.Command, o *options) {
	f := cmd.Flags()
	f.StringVar(&o.csvFile, "csv", "", "read candles from a CSV file instead of generating them")
	f.StringVar(&o.from, "from", "", "first day of generated candles (default depends on the resolution)")
	f.StringVar(&o.to, "to", "", "end of generated candles, exclusive (default now)")
	f.StringVarP(&o.resolution, "resolution", "r", "", "candle resolution: 1m, 5m, 15m, 30m, 60m, 1d, 1w or 1M")
	f.BoolVar(&o.extended, "extended", false, "include pre-market and after-hours sessions")
	f.Int64Var(&o.seed, "seed", 1, "random seed of generated candles")
}

func addAxisFlags(cmd *cobra.Command, o *options) {
	f := cmd.Flags()
	f.BoolVar(&o.utc, "utc", false, "read dates in UTC")
	f.StringVar(&o.tz, "tz", "", "read dates in this IANA time zone")
}

// calendarConfig returns the configured calendar settings, overridden by flags.
func (o *options) calendarConfig(cmd *cobra.Command) (config.CalendarConfig, error) {
	appConfig, err := o.config.Copy()
	if err != nil {
		return config.CalendarConfig{}, err
	}
	c := appConfig.Calendar
	if cmd.Flags().Changed("resolution") {
		if c.Resolution, err = candles.ParseResolution(o.resolution); err != nil {
			return c, err
		}
	}
	if cmd.Flags().Changed("extended") {
		c.ExtendedHours = o.extended
	}
	return c, nil
}

// axisConfig returns the configured axis settings, overridden by flags.
func (o *options) axisConfig(cmd *cobra.Command) (config.AxisConfig, error) {
	appConfig, err := o.config.Copy()
	if err != nil {
		return config.AxisConfig{}, err
	}
	a := appConfig.Axis
	if cmd.Flags().Changed("tz") {
		a.Location = o.tz
		a.UTC = false
	}
	if cmd.Flags().Changed("utc") {
		a.UTC = o.utc
	}
	return a, nil
}

func (o *options) timeRange(r candles.CandleResolution) (from, to time.Time, err error) {
	loc := o.calendar.Location()
	to = o.now().In(loc)
	if o.to != "" {
		if to, err = stockval.ParseTime(o.to, loc); err != nil {
			return
		}
	}
	switch r {
	case candles.CandleOneDay:
		from = to.AddDate(-1, 0, 0)
	case candles.CandleOneWeek:
		from = to.AddDate(-3, 0, 0)
	case candles.CandleOneMonth:
		from = to.AddDate(-10, 0, 0)
	default:
		from = to.AddDate(0, 0, -7)
	}
	if o.from != "" {
		if from, err = stockval.ParseTime(o.from, loc); err != nil {
			return
		}
	}
	if !from.Before(to) {
		err = fmt.Errorf("empty time range %s to %s", from.Format(time.DateOnly), to.Format(time.DateOnly))
	}
	return
}

// sessions returns the trading sessions selected by the data flags.
func (o *options) sessions(cmd *cobra.Command) ([]time.Time, config.CalendarConfig, error) {
	c, err := o.calendarConfig(cmd)
	if err != nil {
		return nil, c, err
	}
	from, to, err := o.timeRange(c.Resolution)
	if err != nil {
		return nil, c, err
	}
	return o.calendar.Sessions(from, to, c.Resolution, c.ExtendedHours), c, nil
}

// loadCandles reads the candles from CSV, or generates candles for the
// sessions selected by the data flags.
func (o *options) loadCandles(cmd *cobra.Command) (stockval.CandleList, error) {
	if o.csvFile != "" {
		return stockval.LoadCSV(o.csvFile, o.calendar.Location())
	}
	times, c, err := o.sessions(cmd)
	if err != nil {
		return nil, err
	}
	opt := stockval.DefaultSynthOptions
	switch c.Resolution {
	case candles.CandleOneDay:
		opt.CandlesPerYear = 252
	case candles.CandleOneWeek:
		opt.CandlesPerYear = 52
	case candles.CandleOneMonth:
		opt.CandlesPerYear = 12
	default:
		// 6.5 trading hours per day
		opt.CandlesPerYear = 252 * float64(390*time.Minute) / float64(c.Resolution.GetDuration(time.Time{}))
	}
	return stockval.Synthesize(times, opt, rand.New(rand.NewSource(o.seed))), nil
}

type candleResult = provider.Result[stockval.CandleData, provider.Indexed[stockval.CandleData]]

// build indexes the candles selected by the data flags.
func (o *options) build(cmd *cobra.Command) (candleResult, stockval.CandleList, error) {
	var result candleResult
	data, err := o.loadCandles(cmd)
	if err != nil {
		return result, nil, err
	}
	axis, err := o.axisConfig(cmd)
	if err != nil {
		return result, nil, err
	}
	p, err := provider.FromConfig[stockval.CandleData](axis)
	if err != nil {
		return result, nil, err
	}
	return p.Build(data), data, nil
}
