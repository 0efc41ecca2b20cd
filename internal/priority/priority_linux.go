//go:build linux

package priority

import (
	"errors"

	"golang.org/x/sys/unix"
)

func raise() (int, error) {
	cur, err := getNice()
	if err != nil {
		return 0, err
	}

	err = unix.Setpriority(unix.PRIO_PROCESS, 0, targetNice)
	if err == nil {
		return targetNice, nil
	}
	if !errors.Is(err, unix.EPERM) && !errors.Is(err, unix.EACCES) {
		return cur, err
	}

	// Permission denied. If the process already sits at the default
	// priority or better, that is the best an unprivileged process gets.
	if cur <= 0 {
		return cur, nil
	}

	// Otherwise try to climb back to the default.
	if err := unix.Setpriority(unix.PRIO_PROCESS, 0, 0); err == nil {
		return 0, nil
	}

	return cur, ErrInsufficientPrivileges
}

func current() int {
	nice, err := getNice()
	if err != nil {
		return 0
	}
	return nice
}

// getNice reads the nice value of the current process. The raw syscall
// reports 20-nice so it never returns a negative value; undo the shift.
func getNice() (int, error) {
	prio, err := unix.Getpriority(unix.PRIO_PROCESS, 0)
	if err != nil {
		return 0, err
	}
	return 20 - prio, nil
}
