package speech

import (
	"os/exec"
	"syscall"
	"testing"
	"time"
)

func TestStartReapedCollectsExit(t *testing.T) {
	cmd := exec.Command("true")
	if err := startReaped(cmd); err != nil {
		t.Fatalf("start: %v", err)
	}

	// Signal 0 probes the process without touching it; it keeps succeeding
	// while the exited child sits uncollected and fails once it is reaped.
	deadline := time.After(2 * time.Second)
	for {
		if err := cmd.Process.Signal(syscall.Signal(0)); err != nil {
			return
		}
		select {
		case <-deadline:
			t.Fatal("process was never collected")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestStartReapedMissingBinary(t *testing.T) {
	if err := startReaped(exec.Command("nextcall-no-such-binary")); err == nil {
		t.Fatal("expected start error")
	}
}
