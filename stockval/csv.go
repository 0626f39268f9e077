// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockval

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/ericlagergren/decimal"
)

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTime parses a timestamp. Timestamps without zone are read in loc.
func ParseTime(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return t, nil
	}
	for _, layout := range timeLayouts[1:] {
		t, err = time.ParseInLocation(layout, s, loc)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
}

func parseDecimal(s string) (*decimal.Big, error) {
	d, ok := new(decimal.Big).SetString(strings.TrimSpace(s))
	if !ok {
		return nil, fmt.Errorf("invalid number %q", s)
	}
	return d, nil
}

// ReadCSV reads candles with the columns time, open, high, low, close and an
// optional volume. A header line is skipped. The result is normalized.
func ReadCSV(r io.Reader, loc *time.Location) (CandleList, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	var data CandleList
	for line := 1; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read candles: %v", err)
		}
		if len(record) < 5 {
			return nil, fmt.Errorf("line %d: expected at least 5 columns, got %d", line, len(record))
		}
		ts, err := ParseTime(record[0], loc)
		if err != nil {
			if line == 1 {
				continue // header
			}
			return nil, fmt.Errorf("line %d: %v", line, err)
		}
		c := CandleData{Timestamp: ts}
		prices := []**decimal.Big{&c.OpenPrice, &c.HighPrice, &c.LowPrice, &c.ClosePrice}
		for i, p := range prices {
			if *p, err = parseDecimal(record[i+1]); err != nil {
				return nil, fmt.Errorf("line %d: %v", line, err)
			}
		}
		if len(record) > 5 && strings.TrimSpace(record[5]) != "" {
			if c.Volume, err = parseDecimal(record[5]); err != nil {
				return nil, fmt.Errorf("line %d: %v", line, err)
			}
		} else {
			c.Volume = new(decimal.Big)
		}
		data = append(data, c)
	}
	return Normalize(data), nil
}

func LoadCSV(fileName string, loc *time.Location) (CandleList, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to open candle file: %v", err)
	}
	defer file.Close()
	return ReadCSV(file, loc)
}

// WriteCSV writes candles in the format read by ReadCSV.
func WriteCSV(w io.Writer, data CandleList) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"time", "open", "high", "low", "close", "volume"}); err != nil {
		return err
	}
	for _, c := range data {
		record := []string{
			c.Timestamp.Format(time.RFC3339),
			formatDecimal(c.OpenPrice),
			formatDecimal(c.HighPrice),
			formatDecimal(c.LowPrice),
			formatDecimal(c.ClosePrice),
			formatDecimal(c.Volume),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func formatDecimal(d *decimal.Big) string {
	if d == nil {
		return ""
	}
	return d.String()
}
