package utils

import (
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
)

func ChooseSwapSurfaceFormat(availableFormats []khr_surface.SurfaceFormat) khr_surface.SurfaceFormat {
	for _, format := range availableFormats {
		if format.Format == PreferredSurfaceFormat && format.ColorSpace == PreferredColorSpace {
			return format
		}
	}

	return availableFormats[0]
}

func ChooseSwapPresentMode(availablePresentModes []khr_surface.PresentMode) khr_surface.PresentMode {
	for _, presentMode := range availablePresentModes {
		if presentMode == PreferredPresentMode {
			return presentMode
		}
	}

	return FallbackPresentMode
}

// ChooseSwapExtent uses the surface's current extent unless the surface leaves
// it to us, in which case the drawable size is clamped into the allowed range.
func ChooseSwapExtent(capabilities *khr_surface.SurfaceCapabilities, drawableWidth, drawableHeight int) core1_0.Extent2D {
	// The driver widens the uint32 sentinel to int, so compare in uint32
	if uint32(capabilities.CurrentExtent.Width) != UndefinedExtent {
		return capabilities.CurrentExtent
	}

	return core1_0.Extent2D{
		Width:  clamp(drawableWidth, capabilities.MinImageExtent.Width, capabilities.MaxImageExtent.Width),
		Height: clamp(drawableHeight, capabilities.MinImageExtent.Height, capabilities.MaxImageExtent.Height),
	}
}

// ChooseImageCount asks for one image more than the minimum. A MaxImageCount
// of 0 means there is no maximum.
func ChooseImageCount(capabilities *khr_surface.SurfaceCapabilities) int {
	imageCount := capabilities.MinImageCount + 1
	if capabilities.MaxImageCount > 0 && capabilities.MaxImageCount < imageCount {
		imageCount = capabilities.MaxImageCount
	}
	return imageCount
}

func clamp(value, lower, upper int) int {
	if value < lower {
		value = lower
	}
	if value > upper {
		value = upper
	}
	return value
}
