package gfxbridge

import "reflect"

// ProcLoader resolves a symbolic native entry point name to a callable.
// It is the only input boundary for dispatch table construction: the
// external loader (typically a thin cgo or syscall adapter around
// vkGetInstanceProcAddr / wglGetProcAddress) returns a Go func value
// whose signature matches the table slot, or nil when the entry point
// is absent.
type ProcLoader func(name string) any

// BindProc resolves name through load and stores the result in the slot
// pointed to by slot, which must be a pointer to a func-typed field.
// It reports whether the slot was populated.
//
// A nil result leaves the slot unset: absence of an optional extension
// is not fatal to the table, only to operations that need that slot.
// A result whose type is not assignable to the slot, including a func
// whose signature differs only in named parameter or result types, is
// rejected the same way, with a warning, so a buggy loader cannot
// corrupt a table.
func BindProc(load ProcLoader, name string, slot any) bool {
	v := load(name)
	if v == nil {
		return false
	}

	dst := reflect.ValueOf(slot).Elem()
	src := reflect.ValueOf(v)
	if src.Kind() == reflect.Func && src.IsNil() {
		return false
	}
	if src.Kind() != reflect.Func || !src.Type().AssignableTo(dst.Type()) {
		Logger().Warn("gfxbridge: loader returned mismatched type for entry point",
			"name", name, "got", src.Type().String(), "want", dst.Type().String())
		return false
	}

	dst.Set(src)
	return true
}
