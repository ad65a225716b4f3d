//go:build windows

package render

import (
	"fmt"
	"os"
)

// Reap terminates orphaned renderer processes with the given
// executable name and returns the PIDs it signalled.
func Reap(executable string) ([]int, error) {
	pids, err := Orphans(executable)
	if err != nil {
		return nil, err
	}

	var killed []int
	for _, pid := range pids {
		proc, err := os.FindProcess(pid)
		if err != nil {
			continue
		}
		if err := proc.Kill(); err != nil {
			return killed, fmt.Errorf("failed to terminate renderer (PID %d): %w", pid, err)
		}
		killed = append(killed, pid)
	}
	return killed, nil
}
