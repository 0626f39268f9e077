// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package axiscmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"finscale/candles"
	"finscale/config"
	"finscale/levels"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCommand(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change the configuration.",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the configuration.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			appConfig, err := o.config.Copy()
			if err != nil {
				return err
			}
			out, err := yaml.Marshal(&appConfig)
			if err != nil {
				return fmt.Errorf("error generating app configuration: %v", err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Change a setting.",
		Long: `Change a setting and store the configuration. Keys are utc, tz,
initial-index, tick-count, resolution, extended and format.<key> with <key>
one of year, quarter, month, week, day, hour, minute, second, millisecond.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			appConfig, err := o.config.Lock()
			if err != nil {
				return err
			}
			updated := *appConfig
			if err := set(&updated, args[0], args[1]); err != nil {
				// Unchanged, nothing is written.
				_ = o.config.Unlock(appConfig)
				return err
			}
			updated.Sanitize()
			return o.config.Unlock(&updated)
		},
	})
	return cmd
}

func set(a *config.AppConfig, key, value string) error {
	var err error
	switch key {
	case "utc":
		a.Axis.UTC, err = strconv.ParseBool(value)
	case "tz":
		a.Axis.Location = value
		if value != "" {
			_, err = time.LoadLocation(value)
		}
	case "initial-index":
		a.Axis.InitialIndex, err = strconv.Atoi(value)
	case "tick-count":
		a.Axis.TickCount, err = strconv.Atoi(value)
	case "resolution":
		a.Calendar.Resolution, err = candles.ParseResolution(value)
	case "extended":
		a.Calendar.ExtendedHours, err = strconv.ParseBool(value)
	default:
		name, ok := strings.CutPrefix(key, "format.")
		if !ok {
			return fmt.Errorf("unknown setting %q", key)
		}
		var k levels.FormatKey
		if k, err = levels.ParseFormatKey(name); err == nil {
			a.Axis.Formatters = a.Axis.Formatters.With(k, value)
		}
	}
	if err != nil {
		return fmt.Errorf("invalid value for %s: %v", key, err)
	}
	return nil
}
