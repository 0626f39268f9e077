// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockval

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/ericlagergren/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(s string) *decimal.Big {
	d, _ := new(decimal.Big).SetString(s)
	return d
}

func TestNormalize(t *testing.T) {
	t0 := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)
	data := CandleList{
		{Timestamp: t0.Add(time.Hour), ClosePrice: price("3")},
		{Timestamp: t0, ClosePrice: price("1")},
		{Timestamp: t0.Add(time.Hour), ClosePrice: price("4")},
		{Timestamp: t0.Add(30 * time.Minute), ClosePrice: price("2")},
	}
	data = Normalize(data)
	require.Len(t, data, 3)
	assert.True(t, data[0].Time().Equal(t0))
	assert.True(t, data[2].Time().Equal(t0.Add(time.Hour)))
	assert.Equal(t, 0, data[2].ClosePrice.Cmp(price("4")))
	assert.Len(t, data.Timestamps(), 3)

	assert.Empty(t, Normalize(nil))
}

func TestChange(t *testing.T) {
	data := CandleList{{ClosePrice: price("100")}, {ClosePrice: price("95")}, {ClosePrice: price("110")}}
	assert.Equal(t, 0, data.Change().Cmp(price("10")))
	assert.True(t, IsGreenQuote(data.Change()))

	data = CandleList{{ClosePrice: price("100")}, {ClosePrice: price("80")}}
	assert.Equal(t, 0, data.Change().Cmp(price("-20")))
	assert.False(t, IsGreenQuote(data.Change()))

	assert.Nil(t, data[:1].Change())
	assert.False(t, IsGreenQuote(nil))
}

func TestRoundTwoDigits(t *testing.T) {
	assert.Equal(t, "12.34", RoundTwoDigits(price("12.3449")).String())
	assert.Equal(t, "2.50", RoundTwoDigits(price("2.5")).String())
	assert.Equal(t, "-7.13", RoundTwoDigits(price("-7.126")).String())
	z := price("1.005")
	assert.Same(t, z, RoundTwoDigits(z))
}

func TestPrepareFormattedPrice(t *testing.T) {
	assert.Equal(t, "12.50", PrepareFormattedPrice(price("12.5")).String())
	assert.Equal(t, "12.345", PrepareFormattedPrice(price("12.345")).String())
	assert.Equal(t, "0.1", ConvertFloatToDecimal(0.1, 64).String())
}

const sampleCSV = `time,open,high,low,close,volume
2026-01-05 10:00,100,101.5,99.75,101,1200
2026-01-05T09:30:00-05:00,99,100.25,98.5,100,
# late correction
2026-01-05 10:00,100,102,99,101.25,1300
`

func TestReadCSV(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	data, err := ReadCSV(strings.NewReader(sampleCSV), ny)
	require.NoError(t, err)
	require.Len(t, data, 2)
	assert.True(t, data[0].Timestamp.Equal(time.Date(2026, 1, 5, 9, 30, 0, 0, ny)))
	assert.Equal(t, 0, data[0].Volume.Sign())
	assert.True(t, data[1].Timestamp.Equal(time.Date(2026, 1, 5, 10, 0, 0, 0, ny)))
	assert.Equal(t, 0, data[1].ClosePrice.Cmp(price("101.25")))
	assert.Equal(t, 0, data[1].Volume.Cmp(price("1300")))
}

func TestReadCSVErrors(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("2026-01-05,1,2,3\n"), time.UTC)
	assert.Error(t, err)
	_, err = ReadCSV(strings.NewReader("2026-01-05,a,2,3,4\n"), time.UTC)
	assert.Error(t, err)
	_, err = ReadCSV(strings.NewReader("2026-01-05,1,2,3,4\nyesterday,1,2,3,4\n"), time.UTC)
	assert.Error(t, err)
	_, err = LoadCSV("does-not-exist.csv", time.UTC)
	assert.Error(t, err)
}

func TestWriteCSV(t *testing.T) {
	data, err := ReadCSV(strings.NewReader(sampleCSV), time.UTC)
	require.NoError(t, err)
	var b bytes.Buffer
	require.NoError(t, WriteCSV(&b, data))
	again, err := ReadCSV(&b, time.UTC)
	require.NoError(t, err)
	require.Len(t, again, len(data))
	for i := range data {
		assert.True(t, data[i].Timestamp.Equal(again[i].Timestamp))
		assert.Equal(t, 0, data[i].HighPrice.Cmp(again[i].HighPrice))
	}
}

func TestParseTime(t *testing.T) {
	ts, err := ParseTime("2026-03-31", time.UTC)
	assert.NoError(t, err)
	assert.True(t, ts.Equal(time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)))
	ts, err = ParseTime(" 2026-03-31T10:00 ", time.UTC)
	assert.NoError(t, err)
	assert.Equal(t, 10, ts.Hour())
	_, err = ParseTime("31.03.2026", time.UTC)
	assert.Error(t, err)
}

func TestSynthesize(t *testing.T) {
	t0 := time.Date(2026, 1, 5, 9, 30, 0, 0, time.UTC)
	times := make([]time.Time, 50)
	for i := range times {
		times[i] = t0.Add(time.Duration(i) * 30 * time.Minute)
	}
	data := Synthesize(times, DefaultSynthOptions, rand.New(rand.NewSource(1)))
	require.Len(t, data, len(times))
	assert.Equal(t, 0, data[0].OpenPrice.Cmp(price("95.5")))
	for i, c := range data {
		assert.True(t, c.Timestamp.Equal(times[i]))
		assert.True(t, c.HighPrice.Cmp(c.OpenPrice) >= 0)
		assert.True(t, c.HighPrice.Cmp(c.ClosePrice) >= 0)
		assert.True(t, c.LowPrice.Cmp(c.OpenPrice) <= 0)
		assert.True(t, c.LowPrice.Cmp(c.ClosePrice) <= 0)
		assert.True(t, c.Volume.Sign() > 0)
	}

	again := Synthesize(times, DefaultSynthOptions, rand.New(rand.NewSource(1)))
	assert.Equal(t, 0, data[49].ClosePrice.Cmp(again[49].ClosePrice))
}

func TestSma(t *testing.T) {
	data := CandleList{{ClosePrice: price("1")}, {ClosePrice: price("2")}, {ClosePrice: price("3")}, {ClosePrice: price("4")}}
	assert.Equal(t, []float64{1, 2, 3, 4}, data.ClosePrices())
	sma := data.Sma(3)
	require.Len(t, sma, len(data))
	assert.InDelta(t, 3.0, sma[3], 1e-9)
	assert.Nil(t, data.Sma(0))
	assert.Nil(t, CandleList{}.Sma(3))
}
