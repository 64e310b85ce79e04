package tui

import (
	"testing"

	"github.com/theirongolddev/bolan/internal/config"
)

func TestSaveSetupIgnoresEnvOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(config.EnvTheme, "light")
	t.Setenv(config.EnvAddr, "10.0.0.1:1")

	if err := saveSetup(SetupValues{Theme: "terminal"}); err != nil {
		t.Fatalf("saveSetup: %v", err)
	}

	saved, err := config.LoadFile()
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if saved.Appearance.Theme != "terminal" {
		t.Errorf("saved theme = %q, want terminal", saved.Appearance.Theme)
	}
	if want := config.DefaultConfig().Server.Addr; saved.Server.Addr != want {
		t.Errorf("saved addr = %q, want %q (env override leaked into file)", saved.Server.Addr, want)
	}
}

func TestSetupValuesApply(t *testing.T) {
	cfg := config.DefaultConfig()
	SetupValues{Theme: "no-such-theme", Addr: "  "}.Apply(&cfg)
	if cfg != config.DefaultConfig() {
		t.Fatalf("invalid answers changed config: %+v", cfg)
	}

	SetupValues{Theme: "light", Addr: "0.0.0.0:9000"}.Apply(&cfg)
	if cfg.Appearance.Theme != "light" || cfg.Server.Addr != "0.0.0.0:9000" {
		t.Fatalf("answers not applied: %+v", cfg)
	}
}

func TestValidateAddr(t *testing.T) {
	for _, ok := range []string{"", "127.0.0.1:8788", ":9000"} {
		if err := validateAddr(ok); err != nil {
			t.Errorf("validateAddr(%q) = %v", ok, err)
		}
	}
	if validateAddr("localhost") == nil {
		t.Error("validateAddr(localhost) accepted an address without port")
	}
}
