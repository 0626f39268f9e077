// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package mock

import (
	"bufio"
	"log"
	"os"
	"testing"

	"finscale/config"

	"github.com/stretchr/testify/assert"
)

func NewLogger(t *testing.T) (*log.Logger, *bufio.Scanner) {
	r, w, err := os.Pipe()
	if err != nil {
		assert.Fail(t, "failed to create logger mock: %v", err)
	}
	t.Cleanup(func() { r.Close() })
	t.Cleanup(func() { w.Close() })
	return log.New(w, "", log.LstdFlags), bufio.NewScanner(r)
}

// NewAxisConfig returns a test configuration with the given axis settings.
func NewAxisConfig(axis config.AxisConfig) config.Config {
	c := NewTestConfig()
	appConfig, _ := c.Lock()
	appConfig.Axis = axis
	appConfig.Sanitize()
	_ = c.Unlock(appConfig)
	return c
}
