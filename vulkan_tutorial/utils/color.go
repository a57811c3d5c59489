package utils

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/vkngwrapper/core/v3/core1_0"
)

// ClearValueForFormat converts an sRGB-encoded color into the clear value for
// an attachment of the given format. Clear values for sRGB formats are taken
// as linear and encoded by the hardware, so those get decoded first.
func ClearValueForFormat(color mgl32.Vec4, format core1_0.Format) core1_0.ClearValueFloat {
	if !isSRGBFormat(format) {
		return core1_0.ClearValueFloat(color)
	}

	linear := mgl32.Vec4{
		srgbToLinear(color.X()),
		srgbToLinear(color.Y()),
		srgbToLinear(color.Z()),
		mgl32.Clamp(color.W(), 0, 1),
	}
	return core1_0.ClearValueFloat(linear)
}

func isSRGBFormat(format core1_0.Format) bool {
	switch format {
	case core1_0.FormatB8G8R8A8SRGB, core1_0.FormatR8G8B8A8SRGB:
		return true
	}
	return false
}

func srgbToLinear(c float32) float32 {
	c = mgl32.Clamp(c, 0, 1)
	if c <= 0.04045 {
		return c / 12.92
	}
	return float32(math.Pow(float64((c+0.055)/1.055), 2.4))
}
