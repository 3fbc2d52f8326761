package config

import "testing"

func TestSetAndGetConfig(t *testing.T) {
	old := GetConfig()
	defer SetConfig(old)

	cfg := NewDefaultConfig()
	cfg.Server.ListenAddress = "127.0.0.1:1234"
	SetConfig(cfg)

	got := GetConfig()
	if got == nil || got.Server.ListenAddress != "127.0.0.1:1234" {
		t.Errorf("GetConfig returned %+v, want the instance passed to SetConfig", got)
	}
}

func TestInitializeEmptyPathInstallsDefaults(t *testing.T) {
	old := GetConfig()
	defer SetConfig(old)

	if err := Initialize(""); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	cfg := GetConfig()
	if cfg == nil {
		t.Fatal("Expected installed configuration")
	}
	if cfg.Server.ListenAddress != DefaultListenAddress {
		t.Errorf("Expected default listen address, got %q", cfg.Server.ListenAddress)
	}

	// Later calls are no-ops, even with a bogus path.
	if err := Initialize("does-not-exist.yaml"); err != nil {
		t.Errorf("Expected repeated Initialize to be a no-op, got %v", err)
	}
}

func TestMustGetConfigPanicsWhenUnset(t *testing.T) {
	old := GetConfig()
	defer SetConfig(old)
	SetConfig(nil)

	defer func() {
		if recover() == nil {
			t.Error("MustGetConfig should panic when configuration is not initialized")
		}
	}()
	MustGetConfig()
}
