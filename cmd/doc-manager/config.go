// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/pdiddy/doc-manager/pkg/types"
)

func init() {
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.SetDefault("demo.suffix", types.DefaultSuffix)
	viper.SetDefault("log.development", false)
}

// loadConfig overlays the config file and environment on the defaults. An
// undecodable config falls back to the defaults for the affected keys.
func loadConfig() types.Config {
	cfg := types.Config{Demo: types.DefaultDemoConfig()}
	if err := viper.Unmarshal(&cfg); err != nil {
		logger.Warn("decoding config: " + err.Error())
	}
	if len(cfg.Demo.Documents) == 0 {
		cfg.Demo.Documents = types.DefaultDemoConfig().Documents
	}
	return cfg
}
