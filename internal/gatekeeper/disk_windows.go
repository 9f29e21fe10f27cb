//go:build windows

package gatekeeper

func freeBytes(string) (int64, error) {
	return 0, ErrDiskCheckUnsupported
}
