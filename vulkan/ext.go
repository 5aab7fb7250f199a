package vulkan

import "strings"

// SplitExtensions splits a space-separated extension name list, as
// returned by runtime extension queries, into its individual names.
// NUL terminators carried over from C string buffers are stripped.
func SplitExtensions(names string) []string {
	return strings.Fields(strings.ReplaceAll(names, "\x00", " "))
}
