package main

import (
	"testing"

	"github.com/gregorjerse/poroznost/config"
)

func TestApplyFlagsOverridesConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Output.BaseName = "from-file"

	if err := rootCmd.Flags().Set("base-name", "from-flag"); err != nil {
		t.Fatal(err)
	}
	if err := rootCmd.Flags().Set("fill", "true"); err != nil {
		t.Fatal(err)
	}
	defer func() {
		// Reset shared flag state for other tests.
		rootCmd.Flags().Set("base-name", "")
		rootCmd.Flags().Set("fill", "false")
	}()

	applyFlags(rootCmd, cfg)

	if cfg.Output.BaseName != "from-flag" {
		t.Errorf("base name = %s, want flag value", cfg.Output.BaseName)
	}
	if !cfg.Fill {
		t.Error("fill flag not applied")
	}
	// Untouched flags leave config values alone.
	if cfg.Output.Dir != "." {
		t.Errorf("output dir = %s, want default", cfg.Output.Dir)
	}
}
