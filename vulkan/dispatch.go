// Package vulkan translates Vulkan formats to the canonical runtime
// formats and carries the dispatch table for the interop-relevant subset
// of the Vulkan API: device and queue access, image/memory/semaphore
// creation and cross-process import, command buffer lifecycle, and
// query pools for GPU timestamps.
//
// Entry points are resolved through an injected gfxbridge.ProcLoader
// rather than static linkage, so the package works against whatever
// loader the application's Vulkan binding provides. Types come from
// github.com/vulkan-go/vulkan.
package vulkan

import (
	vk "github.com/vulkan-go/vulkan"

	"github.com/vrxkit/gfxbridge"
)

// Dispatch is the resolved entry point table for one Vulkan device.
//
// A table is populated once by NewDispatch and is read-only afterwards:
// no re-resolution, no runtime patching. Slots are independent; an
// entry point the loader cannot resolve stays nil, which is fatal only
// to operations that need that slot. Callers must check the extension-
// dependent interop slots (or the Supports* helpers) before use.
//
// A populated Dispatch is safe for concurrent reads.
type Dispatch struct {
	GetPhysicalDeviceProperties2      func(gpu vk.PhysicalDevice, props *vk.PhysicalDeviceProperties2)
	GetPhysicalDeviceMemoryProperties func(gpu vk.PhysicalDevice, props *vk.PhysicalDeviceMemoryProperties)
	GetImageMemoryRequirements2       func(device vk.Device, info *vk.ImageMemoryRequirementsInfo2, reqs *vk.MemoryRequirements2)

	GetDeviceQueue func(device vk.Device, queueFamilyIndex, queueIndex uint32, queue *vk.Queue)
	QueueSubmit    func(queue vk.Queue, submitCount uint32, submits []vk.SubmitInfo, fence vk.Fence) vk.Result
	DeviceWaitIdle func(device vk.Device) vk.Result

	CreateImage     func(device vk.Device, info *vk.ImageCreateInfo, image *vk.Image) vk.Result
	DestroyImage    func(device vk.Device, image vk.Image)
	AllocateMemory  func(device vk.Device, info *vk.MemoryAllocateInfo, memory *vk.DeviceMemory) vk.Result
	FreeMemory      func(device vk.Device, memory vk.DeviceMemory)
	BindImageMemory func(device vk.Device, image vk.Image, memory vk.DeviceMemory, offset vk.DeviceSize) vk.Result

	CreateCommandPool      func(device vk.Device, info *vk.CommandPoolCreateInfo, pool *vk.CommandPool) vk.Result
	DestroyCommandPool     func(device vk.Device, pool vk.CommandPool)
	AllocateCommandBuffers func(device vk.Device, info *vk.CommandBufferAllocateInfo, buffers []vk.CommandBuffer) vk.Result
	FreeCommandBuffers     func(device vk.Device, pool vk.CommandPool, count uint32, buffers []vk.CommandBuffer)
	ResetCommandBuffer     func(cmd vk.CommandBuffer, flags vk.CommandBufferResetFlags) vk.Result
	BeginCommandBuffer     func(cmd vk.CommandBuffer, info *vk.CommandBufferBeginInfo) vk.Result
	EndCommandBuffer       func(cmd vk.CommandBuffer) vk.Result
	CmdPipelineBarrier     func(cmd vk.CommandBuffer, srcStage, dstStage vk.PipelineStageFlags, deps vk.DependencyFlags, memCount uint32, mem []vk.MemoryBarrier, bufCount uint32, buf []vk.BufferMemoryBarrier, imgCount uint32, img []vk.ImageMemoryBarrier)

	CreateSemaphore  func(device vk.Device, info *vk.SemaphoreCreateInfo, semaphore *vk.Semaphore) vk.Result
	DestroySemaphore func(device vk.Device, semaphore vk.Semaphore)

	CreateFence   func(device vk.Device, info *vk.FenceCreateInfo, fence *vk.Fence) vk.Result
	DestroyFence  func(device vk.Device, fence vk.Fence)
	ResetFences   func(device vk.Device, count uint32, fences []vk.Fence) vk.Result
	WaitForFences func(device vk.Device, count uint32, fences []vk.Fence, waitAll vk.Bool32, timeout uint64) vk.Result

	CreateQueryPool     func(device vk.Device, info *vk.QueryPoolCreateInfo, pool *vk.QueryPool) vk.Result
	DestroyQueryPool    func(device vk.Device, pool vk.QueryPool)
	CmdResetQueryPool   func(cmd vk.CommandBuffer, pool vk.QueryPool, firstQuery, queryCount uint32)
	CmdWriteTimestamp   func(cmd vk.CommandBuffer, stage vk.PipelineStageFlagBits, pool vk.QueryPool, query uint32)
	GetQueryPoolResults func(device vk.Device, pool vk.QueryPool, firstQuery, queryCount uint32, data []byte, stride vk.DeviceSize, flags vk.QueryResultFlags) vk.Result

	// Cross-process interop. These depend on the external-memory and
	// external-semaphore extensions and commonly resolve to nil.
	GetMemoryWin32HandleProperties func(device vk.Device, handleType uint32, handle uintptr, memoryTypeBits *uint32) vk.Result
	ImportSemaphoreWin32Handle     func(device vk.Device, semaphore vk.Semaphore, handleType uint32, handle uintptr) vk.Result
}

// NewDispatch resolves every slot against load and returns the
// populated table. Partial resolution is expected: missing or
// mis-typed entry points leave their slot nil (mismatches are logged).
func NewDispatch(load gfxbridge.ProcLoader) *Dispatch {
	d := &Dispatch{}

	gfxbridge.BindProc(load, "vkGetPhysicalDeviceProperties2", &d.GetPhysicalDeviceProperties2)
	gfxbridge.BindProc(load, "vkGetPhysicalDeviceMemoryProperties", &d.GetPhysicalDeviceMemoryProperties)
	gfxbridge.BindProc(load, "vkGetImageMemoryRequirements2KHR", &d.GetImageMemoryRequirements2)

	gfxbridge.BindProc(load, "vkGetDeviceQueue", &d.GetDeviceQueue)
	gfxbridge.BindProc(load, "vkQueueSubmit", &d.QueueSubmit)
	gfxbridge.BindProc(load, "vkDeviceWaitIdle", &d.DeviceWaitIdle)

	gfxbridge.BindProc(load, "vkCreateImage", &d.CreateImage)
	gfxbridge.BindProc(load, "vkDestroyImage", &d.DestroyImage)
	gfxbridge.BindProc(load, "vkAllocateMemory", &d.AllocateMemory)
	gfxbridge.BindProc(load, "vkFreeMemory", &d.FreeMemory)
	gfxbridge.BindProc(load, "vkBindImageMemory", &d.BindImageMemory)

	gfxbridge.BindProc(load, "vkCreateCommandPool", &d.CreateCommandPool)
	gfxbridge.BindProc(load, "vkDestroyCommandPool", &d.DestroyCommandPool)
	gfxbridge.BindProc(load, "vkAllocateCommandBuffers", &d.AllocateCommandBuffers)
	gfxbridge.BindProc(load, "vkFreeCommandBuffers", &d.FreeCommandBuffers)
	gfxbridge.BindProc(load, "vkResetCommandBuffer", &d.ResetCommandBuffer)
	gfxbridge.BindProc(load, "vkBeginCommandBuffer", &d.BeginCommandBuffer)
	gfxbridge.BindProc(load, "vkEndCommandBuffer", &d.EndCommandBuffer)
	gfxbridge.BindProc(load, "vkCmdPipelineBarrier", &d.CmdPipelineBarrier)

	gfxbridge.BindProc(load, "vkCreateSemaphore", &d.CreateSemaphore)
	gfxbridge.BindProc(load, "vkDestroySemaphore", &d.DestroySemaphore)

	gfxbridge.BindProc(load, "vkCreateFence", &d.CreateFence)
	gfxbridge.BindProc(load, "vkDestroyFence", &d.DestroyFence)
	gfxbridge.BindProc(load, "vkResetFences", &d.ResetFences)
	gfxbridge.BindProc(load, "vkWaitForFences", &d.WaitForFences)

	gfxbridge.BindProc(load, "vkCreateQueryPool", &d.CreateQueryPool)
	gfxbridge.BindProc(load, "vkDestroyQueryPool", &d.DestroyQueryPool)
	gfxbridge.BindProc(load, "vkCmdResetQueryPool", &d.CmdResetQueryPool)
	gfxbridge.BindProc(load, "vkCmdWriteTimestamp", &d.CmdWriteTimestamp)
	gfxbridge.BindProc(load, "vkGetQueryPoolResults", &d.GetQueryPoolResults)

	gfxbridge.BindProc(load, "vkGetMemoryWin32HandlePropertiesKHR", &d.GetMemoryWin32HandleProperties)
	gfxbridge.BindProc(load, "vkImportSemaphoreWin32HandleKHR", &d.ImportSemaphoreWin32Handle)

	return d
}

// SupportsExternalMemory reports whether the external-memory import
// entry point resolved.
func (d *Dispatch) SupportsExternalMemory() bool {
	return d.GetMemoryWin32HandleProperties != nil
}

// SupportsExternalSemaphore reports whether the external-semaphore
// import entry point resolved.
func (d *Dispatch) SupportsExternalSemaphore() bool {
	return d.ImportSemaphoreWin32Handle != nil
}

// SupportsTimestamps reports whether every entry point the GPU timer
// needs resolved.
func (d *Dispatch) SupportsTimestamps() bool {
	return d.CreateQueryPool != nil &&
		d.DestroyQueryPool != nil &&
		d.CmdResetQueryPool != nil &&
		d.CmdWriteTimestamp != nil &&
		d.GetQueryPoolResults != nil
}
