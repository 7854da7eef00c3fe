package controller

import "testing"

func TestStartOptions(t *testing.T) {
	cfg := &StartConfig{}
	WithListMode()(cfg)
	if cfg.mode != ModeList {
		t.Fatalf("WithListMode() mode = %v, want %v", cfg.mode, ModeList)
	}

	WithRulesMode()(cfg)
	if cfg.mode != ModeRules {
		t.Fatalf("WithRulesMode() mode = %v, want %v", cfg.mode, ModeRules)
	}

	WithPatchMode()(cfg)
	if cfg.mode != ModePatch {
		t.Fatalf("WithPatchMode() mode = %v, want %v", cfg.mode, ModePatch)
	}
}

func TestNewStartConfig_DefaultsToPatch(t *testing.T) {
	if got := newStartConfig(nil).mode; got != ModePatch {
		t.Fatalf("newStartConfig(nil) mode = %v, want %v", got, ModePatch)
	}

	if got := newStartConfig([]StartOption{WithListMode()}).mode; got != ModeList {
		t.Fatalf("newStartConfig(list) mode = %v, want %v", got, ModeList)
	}
}
