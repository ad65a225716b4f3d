package render

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-ps"
)

// Orphans returns the PIDs of renderer processes that lost their host:
// processes with the given executable name whose parent is init. A
// renderer driven by a live huecard run keeps that run as its parent,
// so it never shows up here.
func Orphans(executable string) ([]int, error) {
	processes, err := ps.Processes()
	if err != nil {
		return nil, fmt.Errorf("failed to get process list: %w", err)
	}

	var pids []int
	for _, p := range processes {
		if p.Executable() != executable {
			continue
		}
		if p.Pid() == os.Getpid() {
			continue
		}
		if p.PPid() != 1 {
			continue
		}
		pids = append(pids, p.Pid())
	}
	return pids, nil
}
