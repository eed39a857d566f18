package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/corey/codemap/internal/ports"
)

// settleDelay is how long Watch waits after the last change event before
// regenerating, so one save burst triggers one rebuild.
const settleDelay = 200 * time.Millisecond

// Watch keeps outPath current: whenever the watcher reports a change the map
// is regenerated, with bursts coalesced into a single rebuild. Events for
// outPath itself are ignored so the rewrite does not retrigger the loop.
// Watch blocks until stop is closed.
func (m *Mapper) Watch(w ports.Watcher, outPath string, stop <-chan struct{}) error {
	absOut, err := filepath.Abs(outPath)
	if err != nil {
		absOut = outPath
	}

	pending := make(chan struct{}, 1)
	err = w.Watch(m.Root, func(path string) {
		if abs, err := filepath.Abs(path); err == nil && abs == absOut {
			return
		}
		select {
		case pending <- struct{}{}:
		default:
		}
	})
	if err != nil {
		return err
	}
	defer w.Stop()

	for {
		select {
		case <-pending:
			if !settle(pending, stop) {
				return nil
			}
			if _, err := m.WriteMap(outPath); err != nil {
				fmt.Fprintf(os.Stderr, "codemap: regenerate failed: %v\n", err)
			}
		case <-stop:
			return nil
		}
	}
}

// settle drains change notifications until settleDelay passes without one.
// Returns false when stop closes mid-wait.
func settle(pending <-chan struct{}, stop <-chan struct{}) bool {
	timer := time.NewTimer(settleDelay)
	defer timer.Stop()
	for {
		select {
		case <-pending:
			if !timer.Stop() {
				<-timer.C
			}
			timer.Reset(settleDelay)
		case <-timer.C:
			return true
		case <-stop:
			return false
		}
	}
}
