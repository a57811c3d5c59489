package utils

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
	"github.com/vkngwrapper/extensions/v3/khr_swapchain"
)

const (
	WindowTitle  = "Vulkan"
	WindowWidth  = 800
	WindowHeight = 600

	PreferredSurfaceFormat = core1_0.FormatB8G8R8A8SRGB
	PreferredColorSpace    = khr_surface.ColorSpaceSRGBNonlinear
	PreferredPresentMode   = khr_surface.PresentModeMailbox
	// FallbackPresentMode is the one mode every conforming driver must support.
	FallbackPresentMode = khr_surface.PresentModeFIFO

	VertexShaderPath   = "shaders/vert.spv"
	FragmentShaderPath = "shaders/frag.spv"

	// UndefinedExtent is the current-extent width a surface reports when the
	// swapchain extent is left to the application (0xFFFFFFFF).
	UndefinedExtent uint32 = math.MaxUint32
)

var ValidationLayers = []string{"VK_LAYER_KHRONOS_validation"}
var DeviceExtensions = []string{khr_swapchain.ExtensionName}

var ClearColor = mgl32.Vec4{0, 0, 0, 1}
