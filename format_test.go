package gfxbridge

import "testing"

// TestFormatIsSRGB verifies the sRGB classification for every sRGB
// format and its linear counterpart.
func TestFormatIsSRGB(t *testing.T) {
	tests := []struct {
		format Format
		want   bool
	}{
		{FormatRGBA8UnormSRGB, true},
		{FormatBGRA8UnormSRGB, true},
		{FormatBGRX8UnormSRGB, true},
		{FormatRGBA8Unorm, false},
		{FormatBGRA8Unorm, false},
		{FormatBGRX8Unorm, false},
		{FormatRGBA16Float, false},
		{FormatD32Float, false},
		{FormatUnknown, false},
	}
	for _, tt := range tests {
		if got := tt.format.IsSRGB(); got != tt.want {
			t.Errorf("%v.IsSRGB() = %v, want %v", tt.format, got, tt.want)
		}
	}
}

// TestFormatDepthStencil verifies the depth and stencil aspect
// classification.
func TestFormatDepthStencil(t *testing.T) {
	tests := []struct {
		format      Format
		wantDepth   bool
		wantStencil bool
	}{
		{FormatD16Unorm, true, false},
		{FormatD24UnormS8Uint, true, true},
		{FormatD32Float, true, false},
		{FormatD32FloatS8X24Uint, true, true},
		{FormatRGBA8Unorm, false, false},
		{FormatUnknown, false, false},
	}
	for _, tt := range tests {
		if got := tt.format.HasDepth(); got != tt.wantDepth {
			t.Errorf("%v.HasDepth() = %v, want %v", tt.format, got, tt.wantDepth)
		}
		if got := tt.format.HasStencil(); got != tt.wantStencil {
			t.Errorf("%v.HasStencil() = %v, want %v", tt.format, got, tt.wantStencil)
		}
	}
}

// TestFormatString verifies that every declared format has a distinct
// name and that unknown values fall back to "Unknown".
func TestFormatString(t *testing.T) {
	formats := []Format{
		FormatRGBA8Unorm, FormatRGBA8UnormSRGB,
		FormatBGRA8Unorm, FormatBGRA8UnormSRGB,
		FormatBGRX8Unorm, FormatBGRX8UnormSRGB,
		FormatRGBA16Float,
		FormatD16Unorm, FormatD24UnormS8Uint,
		FormatD32Float, FormatD32FloatS8X24Uint,
	}
	seen := make(map[string]Format)
	for _, f := range formats {
		name := f.String()
		if name == "Unknown" {
			t.Errorf("Format(%d).String() = %q, want a distinct name", uint32(f), name)
		}
		if prev, ok := seen[name]; ok {
			t.Errorf("Format(%d) and Format(%d) share the name %q", uint32(prev), uint32(f), name)
		}
		seen[name] = f
	}

	if got := FormatUnknown.String(); got != "Unknown" {
		t.Errorf("FormatUnknown.String() = %q, want %q", got, "Unknown")
	}
	if got := Format(0xFFFF).String(); got != "Unknown" {
		t.Errorf("Format(0xFFFF).String() = %q, want %q", got, "Unknown")
	}
}
