package vulkan

import (
	"testing"

	vk "github.com/vulkan-go/vulkan"
)

// fullLoader resolves the entry points the tests care about and
// records every name it was asked for.
func fullLoader(asked *[]string) func(name string) any {
	procs := map[string]any{
		"vkCreateImage": func(device vk.Device, info *vk.ImageCreateInfo, image *vk.Image) vk.Result {
			return vk.Success
		},
		"vkDestroyImage": func(device vk.Device, image vk.Image) {},
		"vkCreateQueryPool": func(device vk.Device, info *vk.QueryPoolCreateInfo, pool *vk.QueryPool) vk.Result {
			return vk.Success
		},
		"vkDestroyQueryPool": func(device vk.Device, pool vk.QueryPool) {},
		"vkCmdResetQueryPool": func(cmd vk.CommandBuffer, pool vk.QueryPool, firstQuery, queryCount uint32) {
		},
		"vkCmdWriteTimestamp": func(cmd vk.CommandBuffer, stage vk.PipelineStageFlagBits, pool vk.QueryPool, query uint32) {
		},
		"vkGetQueryPoolResults": func(device vk.Device, pool vk.QueryPool, firstQuery, queryCount uint32, data []byte, stride vk.DeviceSize, flags vk.QueryResultFlags) vk.Result {
			return vk.Success
		},
	}
	return func(name string) any {
		*asked = append(*asked, name)
		return procs[name]
	}
}

// TestNewDispatchPartial verifies that resolved slots are populated,
// unresolved slots stay nil, and the capability helpers reflect the
// result.
func TestNewDispatchPartial(t *testing.T) {
	var asked []string
	d := NewDispatch(fullLoader(&asked))

	if d.CreateImage == nil {
		t.Error("CreateImage slot is nil, want populated")
	}
	if d.DestroyImage == nil {
		t.Error("DestroyImage slot is nil, want populated")
	}
	if d.AllocateMemory != nil {
		t.Error("AllocateMemory slot populated, want nil for unresolved entry point")
	}
	if d.GetMemoryWin32HandleProperties != nil {
		t.Error("GetMemoryWin32HandleProperties populated, want nil")
	}

	if !d.SupportsTimestamps() {
		t.Error("SupportsTimestamps() = false, want true with all query slots resolved")
	}
	if d.SupportsExternalMemory() {
		t.Error("SupportsExternalMemory() = true, want false")
	}
	if d.SupportsExternalSemaphore() {
		t.Error("SupportsExternalSemaphore() = true, want false")
	}

	if got := d.CreateImage(nil, nil, nil); got != vk.Success {
		t.Errorf("CreateImage through the table = %v, want success", got)
	}
}

// TestNewDispatchAsksEveryName verifies that construction resolves the
// whole table in one pass, including the interop extensions.
func TestNewDispatchAsksEveryName(t *testing.T) {
	var asked []string
	NewDispatch(fullLoader(&asked))

	wantAsked := []string{
		"vkCreateImage",
		"vkQueueSubmit",
		"vkCmdPipelineBarrier",
		"vkGetMemoryWin32HandlePropertiesKHR",
		"vkImportSemaphoreWin32HandleKHR",
	}
	seen := make(map[string]bool, len(asked))
	for _, name := range asked {
		seen[name] = true
	}
	for _, name := range wantAsked {
		if !seen[name] {
			t.Errorf("loader was never asked for %q", name)
		}
	}
}

// TestSupportsTimestampsIncomplete verifies that a table missing any
// query entry point reports the capability as absent.
func TestSupportsTimestampsIncomplete(t *testing.T) {
	var asked []string
	d := NewDispatch(fullLoader(&asked))
	d.GetQueryPoolResults = nil
	if d.SupportsTimestamps() {
		t.Error("SupportsTimestamps() = true with a nil query slot, want false")
	}
}
