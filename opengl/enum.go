// Package opengl translates OpenGL internal formats to the canonical
// runtime formats and carries the dispatch table for the extension-based
// interop subset of the API: external memory objects, memory-backed
// texture storage, external semaphores, and GPU timer queries. It also
// provides the context switch guard that scopes calls on a borrowed
// legacy context.
//
// OpenGL entry points are never statically linked here; everything,
// including the WGL context binding calls, is resolved through an
// injected gfxbridge.ProcLoader.
package opengl

// Enum is a GLenum value.
type Enum uint32

// GL constants used by the interop layer, with their native values.
const (
	NO_ERROR Enum = 0

	// Sized internal formats.
	RGBA8              Enum = 0x8058
	RGBA16F            Enum = 0x881A
	SRGB8_ALPHA8       Enum = 0x8C43
	R11F_G11F_B10F     Enum = 0x8C3A
	DEPTH_COMPONENT16  Enum = 0x81A5
	DEPTH24_STENCIL8   Enum = 0x88F0
	DEPTH_COMPONENT32F Enum = 0x8CAC
	DEPTH32F_STENCIL8  Enum = 0x8CAD

	// Block-compressed formats.
	COMPRESSED_RGBA_S3TC_DXT1_EXT Enum = 0x83F1

	// Texture targets.
	TEXTURE_2D             Enum = 0x0DE1
	TEXTURE_2D_MULTISAMPLE Enum = 0x9100
	TEXTURE_2D_ARRAY       Enum = 0x8C1A

	// Query targets and parameters.
	TIMESTAMP              Enum = 0x8E28
	QUERY_RESULT           Enum = 0x8866
	QUERY_RESULT_AVAILABLE Enum = 0x8867

	// External memory/semaphore handle types (EXT_external_objects_win32).
	HANDLE_TYPE_OPAQUE_WIN32_EXT Enum = 0x9587

	// Semaphore parameters (EXT_semaphore).
	D3D12_FENCE_VALUE_EXT Enum = 0x9595

	// Layouts for semaphore signal/wait barriers (EXT_semaphore).
	LAYOUT_GENERAL_EXT                  Enum = 0x958D
	LAYOUT_COLOR_ATTACHMENT_EXT         Enum = 0x958E
	LAYOUT_DEPTH_STENCIL_ATTACHMENT_EXT Enum = 0x958F
	LAYOUT_SHADER_READ_ONLY_EXT         Enum = 0x9590
	LAYOUT_TRANSFER_SRC_EXT             Enum = 0x9593
	LAYOUT_TRANSFER_DST_EXT             Enum = 0x9594
)
