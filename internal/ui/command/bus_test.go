package command

import (
	"errors"
	"testing"
)

func TestExecuteRunsRequest(t *testing.T) {
	bus := New()
	ran := false
	id := bus.NextID("activate")
	cmd := bus.Execute(Request{ID: id, Label: "select dev:1", Run: func() error {
		ran = true
		return nil
	}})
	if ran {
		t.Fatalf("request ran before the command was invoked")
	}
	msg, ok := cmd().(ResultMsg)
	if !ok {
		t.Fatalf("expected ResultMsg")
	}
	if !ran || msg.ID != "activate-1" || msg.Err != nil {
		t.Fatalf("unexpected result %#v", msg)
	}
}

func TestExecutePropagatesError(t *testing.T) {
	boom := errors.New("boom")
	cmd := New().Execute(Request{ID: "x", Run: func() error { return boom }})
	msg := cmd().(ResultMsg)
	if !errors.Is(msg.Err, boom) {
		t.Fatalf("expected boom, got %v", msg.Err)
	}
}

func TestExecuteWithoutRunIsSkipped(t *testing.T) {
	if msg := New().Execute(Request{ID: "x"})(); msg != nil {
		t.Fatalf("expected nil message, got %#v", msg)
	}
}

func TestNextIDIncrements(t *testing.T) {
	bus := New()
	if a, b := bus.NextID("a"), bus.NextID("a"); a == b {
		t.Fatalf("expected distinct ids, got %q twice", a)
	}
}
