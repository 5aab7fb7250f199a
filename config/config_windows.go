//go:build windows

package config

import "golang.org/x/sys/windows/registry"

// sysKey maps a Root to its registry hive.
func sysKey(root Root) registry.Key {
	if root == LocalMachine {
		return registry.LOCAL_MACHINE
	}
	return registry.CURRENT_USER
}

// DWORD reads a 32-bit integer value. The second return is false when
// the key or value is missing or the value has a different type.
func DWORD(root Root, path, name string) (uint32, bool) {
	k, err := registry.OpenKey(sysKey(root), path, registry.QUERY_VALUE|registry.WOW64_64KEY)
	if err != nil {
		return 0, false
	}
	defer k.Close()

	v, _, err := k.GetIntegerValue(name)
	if err != nil {
		return 0, false
	}
	return uint32(v), true
}

// String reads a string value. The second return is false when the key
// or value is missing or the value has a different type.
func String(root Root, path, name string) (string, bool) {
	k, err := registry.OpenKey(sysKey(root), path, registry.QUERY_VALUE|registry.WOW64_64KEY)
	if err != nil {
		return "", false
	}
	defer k.Close()

	v, _, err := k.GetStringValue(name)
	if err != nil {
		return "", false
	}
	return v, true
}
