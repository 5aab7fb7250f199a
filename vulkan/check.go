package vulkan

import (
	"path/filepath"
	"runtime"

	vk "github.com/vulkan-go/vulkan"

	"github.com/vrxkit/gfxbridge"
)

// Check converts a non-success vk.Result into a *gfxbridge.NativeCallError
// carrying the call's textual form, the caller's source location, and
// the raw status code. A success result returns nil.
//
//	if err := vulkan.Check(d.CreateImage(dev, &info, &img), "vkCreateImage"); err != nil {
//	    return err
//	}
func Check(result vk.Result, call string) error {
	if result == vk.Success {
		return nil
	}
	_, file, line, _ := runtime.Caller(1)
	return &gfxbridge.NativeCallError{
		Call:   call,
		Status: int64(result),
		File:   filepath.Base(file),
		Line:   line,
	}
}
