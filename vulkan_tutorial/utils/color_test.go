package utils

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/vkngwrapper/core/v3/core1_0"
)

func TestClearValueForFormat(t *testing.T) {
	tests := []struct {
		name   string
		color  mgl32.Vec4
		format core1_0.Format
		want   [4]float32
	}{
		{
			name:   "black is black in any space",
			color:  ClearColor,
			format: PreferredSurfaceFormat,
			want:   [4]float32{0, 0, 0, 1},
		},
		{
			name:   "unorm passes through",
			color:  mgl32.Vec4{0.5, 0.25, 1, 0.5},
			format: core1_0.FormatB8G8R8A8UnsignedNormalized,
			want:   [4]float32{0.5, 0.25, 1, 0.5},
		},
		{
			name:   "srgb decoded, alpha untouched",
			color:  mgl32.Vec4{0.5, 0.02, 1, 0.5},
			format: core1_0.FormatB8G8R8A8SRGB,
			want:   [4]float32{0.21404, 0.02 / 12.92, 1, 0.5},
		},
		{
			name:   "srgb clamped",
			color:  mgl32.Vec4{-1, 2, 0, 3},
			format: core1_0.FormatR8G8B8A8SRGB,
			want:   [4]float32{0, 1, 0, 1},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := ClearValueForFormat(test.color, test.format)
			for i := range got {
				if !mgl32.FloatEqualThreshold(got[i], test.want[i], 1e-4) {
					t.Errorf("ClearValueForFormat() = %v, want %v", got, test.want)
					break
				}
			}
		})
	}
}
