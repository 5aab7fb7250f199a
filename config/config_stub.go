//go:build !windows

package config

// DWORD reports every setting as absent: this platform has no
// configuration store.
func DWORD(root Root, path, name string) (uint32, bool) {
	return 0, false
}

// String reports every setting as absent: this platform has no
// configuration store.
func String(root Root, path, name string) (string, bool) {
	return "", false
}
