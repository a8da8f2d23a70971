package tmux

import (
	"os/exec"
	"strings"
	"testing"
	"time"

	testutil "github.com/atomicstack/tmux-tab-picker/internal/testutil"
)

func TestFetchAndSelectTabsIntegration(t *testing.T) {
	socket, cleanup, logDir := testutil.StartTmuxServer(t)
	defer cleanup()
	t.Cleanup(func() {
		testutil.AssertNoServerCrash(t, logDir)
		Shutdown()
	})

	session := testutil.TestSessionName
	for _, name := range []string{"logs", "build"} {
		if err := testutil.TmuxCommand(socket, "new-window", "-d", "-t", session, "-n", name).Run(); err != nil {
			t.Fatalf("failed to create window %s: %v", name, err)
		}
	}
	paneID, err := testutil.TmuxCommand(socket, "display-message", "-p", "-t", session, "#{pane_id}").Output()
	if err != nil {
		t.Fatalf("failed to resolve pane id: %v", err)
	}
	t.Setenv("TMUX_PANE", strings.TrimSpace(string(paneID)))

	var snap TabSnapshot
	deadline := time.Now().Add(2 * time.Second)
	for {
		var err error
		snap, err = FetchTabs(socket)
		if err == nil && len(snap.Tabs) == 3 {
			break
		}
		if time.Now().After(deadline) {
			t.Skipf("skipping: tabs not visible in time (snapshot %#v, err %v)", snap, err)
		}
		time.Sleep(50 * time.Millisecond)
	}
	for i, tab := range snap.Tabs {
		if tab.Position != i {
			t.Fatalf("expected position %d, got %#v", i, tab)
		}
		if !strings.HasPrefix(tab.Target, session+":") {
			t.Fatalf("unexpected target %q", tab.Target)
		}
	}

	if err := SelectTab(socket, snap, 2); err != nil {
		t.Fatalf("SelectTab failed: %v", err)
	}
	out, err := exec.Command("tmux", "-S", socket, "display-message", "-p", "-t", session, "#{window_name}").Output()
	if err != nil {
		t.Fatalf("display-message failed: %v", err)
	}
	if got := strings.TrimSpace(string(out)); got != snap.Tabs[2].Name {
		t.Fatalf("expected active window %q, got %q", snap.Tabs[2].Name, got)
	}
}
