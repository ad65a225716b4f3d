//go:build unix

package render

import (
	"fmt"
	"syscall"
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
		if err := syscall.Kill(pid, syscall.SIGTERM); err != nil {
			return killed, fmt.Errorf("failed to terminate renderer (PID %d): %w", pid, err)
		}
		killed = append(killed, pid)
	}
	return killed, nil
}
