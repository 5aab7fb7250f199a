package opengl

import "github.com/vrxkit/gfxbridge"

// Dispatch is the resolved entry point table for one OpenGL context
// share group.
//
// A table is populated once by NewDispatch and is read-only afterwards.
// Slots are independent: the EXT_memory_object and EXT_semaphore entry
// points commonly resolve to nil on drivers without the extensions,
// which is fatal only to operations that need those slots.
//
// The WGL context binding surface (current-context query, MakeCurrent)
// and glGetError live in the same table because Go cannot statically
// link them; the context switch guard requires them.
//
// A populated Dispatch is safe for concurrent reads, but the underlying
// API is single-context-per-thread: callers must confine interop calls
// to the thread owning the relevant context.
type Dispatch struct {
	// Context binding and error surface.
	GetCurrentDC      func() uintptr
	GetCurrentContext func() uintptr
	MakeCurrent       func(dc, rc uintptr) bool
	GetError          func() Enum

	GetUnsignedBytev func(pname Enum, data []byte)

	CreateTextures func(target Enum, n int32, textures []uint32)

	// EXT_memory_object / EXT_memory_object_win32.
	CreateMemoryObjects            func(n int32, memoryObjects []uint32)
	DeleteMemoryObjects            func(n int32, memoryObjects []uint32)
	ImportMemoryWin32Handle        func(memory uint32, size uint64, handleType Enum, handle uintptr)
	TextureStorageMem2D            func(texture uint32, levels int32, internalFormat Enum, width, height int32, memory uint32, offset uint64)
	TextureStorageMem2DMultisample func(texture uint32, samples int32, internalFormat Enum, width, height int32, fixedSampleLocations bool, memory uint32, offset uint64)
	TextureStorageMem3D            func(texture uint32, levels int32, internalFormat Enum, width, height, depth int32, memory uint32, offset uint64)
	TextureStorageMem3DMultisample func(texture uint32, samples int32, internalFormat Enum, width, height, depth int32, fixedSampleLocations bool, memory uint32, offset uint64)

	// EXT_semaphore / EXT_semaphore_win32.
	GenSemaphores              func(n int32, semaphores []uint32)
	DeleteSemaphores           func(n int32, semaphores []uint32)
	SemaphoreParameterui64     func(semaphore uint32, pname Enum, params []uint64)
	SignalSemaphore            func(semaphore uint32, numBufferBarriers int32, buffers []uint32, numTextureBarriers int32, textures []uint32, dstLayouts []Enum)
	ImportSemaphoreWin32Handle func(semaphore uint32, handleType Enum, handle uintptr)

	// Timer queries.
	GenQueries         func(n int32, ids []uint32)
	DeleteQueries      func(n int32, ids []uint32)
	QueryCounter       func(id uint32, target Enum)
	GetQueryObjectiv   func(id uint32, pname Enum, params []int32)
	GetQueryObjectui64 func(id uint32, pname Enum, params []uint64)
}

// NewDispatch resolves every slot against load and returns the
// populated table. Partial resolution is expected: missing or
// mis-typed entry points leave their slot nil (mismatches are logged).
func NewDispatch(load gfxbridge.ProcLoader) *Dispatch {
	d := &Dispatch{}

	gfxbridge.BindProc(load, "wglGetCurrentDC", &d.GetCurrentDC)
	gfxbridge.BindProc(load, "wglGetCurrentContext", &d.GetCurrentContext)
	gfxbridge.BindProc(load, "wglMakeCurrent", &d.MakeCurrent)
	gfxbridge.BindProc(load, "glGetError", &d.GetError)

	gfxbridge.BindProc(load, "glGetUnsignedBytevEXT", &d.GetUnsignedBytev)

	gfxbridge.BindProc(load, "glCreateTextures", &d.CreateTextures)

	gfxbridge.BindProc(load, "glCreateMemoryObjectsEXT", &d.CreateMemoryObjects)
	gfxbridge.BindProc(load, "glDeleteMemoryObjectsEXT", &d.DeleteMemoryObjects)
	gfxbridge.BindProc(load, "glImportMemoryWin32HandleEXT", &d.ImportMemoryWin32Handle)
	gfxbridge.BindProc(load, "glTextureStorageMem2DEXT", &d.TextureStorageMem2D)
	gfxbridge.BindProc(load, "glTextureStorageMem2DMultisampleEXT", &d.TextureStorageMem2DMultisample)
	gfxbridge.BindProc(load, "glTextureStorageMem3DEXT", &d.TextureStorageMem3D)
	gfxbridge.BindProc(load, "glTextureStorageMem3DMultisampleEXT", &d.TextureStorageMem3DMultisample)

	gfxbridge.BindProc(load, "glGenSemaphoresEXT", &d.GenSemaphores)
	gfxbridge.BindProc(load, "glDeleteSemaphoresEXT", &d.DeleteSemaphores)
	gfxbridge.BindProc(load, "glSemaphoreParameterui64vEXT", &d.SemaphoreParameterui64)
	gfxbridge.BindProc(load, "glSignalSemaphoreEXT", &d.SignalSemaphore)
	gfxbridge.BindProc(load, "glImportSemaphoreWin32HandleEXT", &d.ImportSemaphoreWin32Handle)

	gfxbridge.BindProc(load, "glGenQueries", &d.GenQueries)
	gfxbridge.BindProc(load, "glDeleteQueries", &d.DeleteQueries)
	gfxbridge.BindProc(load, "glQueryCounter", &d.QueryCounter)
	gfxbridge.BindProc(load, "glGetQueryObjectiv", &d.GetQueryObjectiv)
	gfxbridge.BindProc(load, "glGetQueryObjectui64v", &d.GetQueryObjectui64)

	return d
}

// SupportsMemoryObjects reports whether the EXT_memory_object import
// and storage entry points resolved.
func (d *Dispatch) SupportsMemoryObjects() bool {
	return d.CreateMemoryObjects != nil &&
		d.DeleteMemoryObjects != nil &&
		d.ImportMemoryWin32Handle != nil &&
		d.TextureStorageMem2D != nil
}

// SupportsSemaphores reports whether the EXT_semaphore import and
// signal entry points resolved.
func (d *Dispatch) SupportsSemaphores() bool {
	return d.GenSemaphores != nil &&
		d.DeleteSemaphores != nil &&
		d.ImportSemaphoreWin32Handle != nil &&
		d.SignalSemaphore != nil
}

// SupportsTimerQueries reports whether every entry point the GPU timer
// needs resolved.
func (d *Dispatch) SupportsTimerQueries() bool {
	return d.GenQueries != nil &&
		d.DeleteQueries != nil &&
		d.QueryCounter != nil &&
		d.GetQueryObjectui64 != nil
}

// supportsContextSwitch reports whether the context binding surface
// resolved; the context switch guard requires all four slots.
func (d *Dispatch) supportsContextSwitch() bool {
	return d.GetCurrentDC != nil &&
		d.GetCurrentContext != nil &&
		d.MakeCurrent != nil &&
		d.GetError != nil
}
