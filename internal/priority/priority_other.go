//go:build !linux

package priority

func raise() (int, error) {
	return 0, ErrNotSupported
}

func current() int {
	return 0
}
