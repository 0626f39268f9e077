// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package mock

import "finscale/config"

type TestConfig struct {
	appConfig config.AppConfig
}

// Test configurations are not stored and not thread safe.
// Intended only for use in unit tests.
func NewTestConfig() config.Config {
	appConfig := config.NewAppConfig()
	appConfig.Sanitize()
	return &TestConfig{
		appConfig: appConfig,
	}
}

func (t *TestConfig) GetAppName() string {
	return "test"
}

func (t *TestConfig) Lock() (*config.AppConfig, error) {
	return &t.appConfig, nil
}

func (t *TestConfig) Unlock(c *config.AppConfig) error {
	t.appConfig = *c
	return nil
}

func (t *TestConfig) Copy() (config.AppConfig, error) {
	return t.appConfig, nil
}
