package main

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/atomicstack/tmux-tab-picker/internal/app"
	"github.com/atomicstack/tmux-tab-picker/internal/config"
	"github.com/atomicstack/tmux-tab-picker/internal/picker"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			SocketPath:   "socket-path",
			Width:        80,
			Height:       24,
			ShowFooter:   true,
			PollInterval: 2 * time.Second,
			Settings:     map[string]string{"quick_jump": "true"},
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"socket":       "socket-path",
			"width":        "80",
			"height":       "24",
			"footer":       "true",
			"pollInterval": "2s",
			"set":          "quick_jump=true",
		},
		Args: []string{"--socket", "socket-path", "--set", "quick_jump=true"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	want := map[string]interface{}{
		"socket":       "socket-path",
		"width":        "80",
		"height":       "24",
		"footer":       "true",
		"pollInterval": "2s",
		"set":          "quick_jump=true",
		"trace":        true,
		"logFile":      "trace.log",
	}
	if diff := cmp.Diff(want, flagsValue); diff != "" {
		t.Fatalf("unexpected flags (-want +got):\n%s", diff)
	}

	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
	cfgValue, ok := payload["config"].(config.Config)
	if !ok {
		t.Fatalf("expected config in payload")
	}
	if diff := cmp.Diff(cfg.App, cfgValue.App); diff != "" {
		t.Fatalf("unexpected app config (-want +got):\n%s", diff)
	}
}

func TestReportRunErrorExitCodes(t *testing.T) {
	optionErr := fmt.Errorf("picker settings: %w", &picker.OptionError{Key: "quick_jump", Value: "maybe"})
	if code := reportRunError(optionErr); code != 2 {
		t.Fatalf("expected exit code 2 for option error, got %d", code)
	}
	if code := reportRunError(errors.New("no server running")); code != 1 {
		t.Fatalf("expected exit code 1 for runtime error, got %d", code)
	}
}
