package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
	"github.com/vkngwrapper/extensions/v3/khr_swapchain"
	"github.com/vkngwrapper/hello-triangle/vulkan_tutorial/utils"
)

func (app *HelloTriangleApplication) querySwapChainSupport(device core1_0.PhysicalDevice) (utils.SwapChainSupportDetails, error) {
	capabilities, _, err := app.surfaceExtension.GetPhysicalDeviceSurfaceCapabilities(app.surface, device)
	if err != nil {
		return utils.SwapChainSupportDetails{}, errors.Wrap(err, "surface capabilities")
	}

	formats, _, err := app.surfaceExtension.GetPhysicalDeviceSurfaceFormats(app.surface, device)
	if err != nil {
		return utils.SwapChainSupportDetails{}, errors.Wrap(err, "surface formats")
	}

	presentModes, _, err := app.surfaceExtension.GetPhysicalDeviceSurfacePresentModes(app.surface, device)
	if err != nil {
		return utils.SwapChainSupportDetails{}, errors.Wrap(err, "surface present modes")
	}

	return utils.SwapChainSupportDetails{
		Capabilities: capabilities,
		Formats:      formats,
		PresentModes: presentModes,
	}, nil
}

func (app *HelloTriangleApplication) createSwapchain() error {
	support := app.physicalDeviceCaps.SwapChainSupport
	caps := support.Capabilities

	pixelWidth, pixelHeight := app.window.VulkanGetDrawableSize()
	format := utils.ChooseSwapSurfaceFormat(support.Formats)
	mode := utils.ChooseSwapPresentMode(support.PresentModes)
	extent := utils.ChooseSwapExtent(caps, int(pixelWidth), int(pixelHeight))

	fmt.Fprintf(app.out, "\nSurface Format: %v, Color Space: %v\n", format.Format, format.ColorSpace)
	fmt.Fprintf(app.out, "Presentation Mode: %v\n", mode)
	fmt.Fprintf(app.out, "Swap Extent Width: %d, Swap Extent Height: %d\n", extent.Width, extent.Height)

	// Images are shared only when drawing and presenting happen on different families
	sharing := core1_0.SharingModeExclusive
	var sharedFamilies []int
	if families := app.queueFamilies.UniqueQueueFamilies(); len(families) > 1 {
		sharing = core1_0.SharingModeConcurrent
		sharedFamilies = families
	}

	app.swapchainExtension = khr_swapchain.CreateExtensionDriverFromCoreDriver(app.deviceDriver)
	swapchain, _, err := app.swapchainExtension.CreateSwapchain(nil, khr_swapchain.SwapchainCreateInfo{
		Surface:            app.surface,
		MinImageCount:      utils.ChooseImageCount(caps),
		ImageFormat:        format.Format,
		ImageColorSpace:    format.ColorSpace,
		ImageExtent:        extent,
		ImageArrayLayers:   1,
		ImageUsage:         core1_0.ImageUsageColorAttachment,
		ImageSharingMode:   sharing,
		QueueFamilyIndices: sharedFamilies,
		PreTransform:       caps.CurrentTransform,
		CompositeAlpha:     khr_surface.CompositeAlphaOpaque,
		PresentMode:        mode,
		Clipped:            true,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create swap chain")
	}
	app.swapchain = swapchain
	app.swapchainImageFormat = format.Format
	app.swapchainExtent = extent

	app.swapchainImages, _, err = app.swapchainExtension.GetSwapchainImages(swapchain)
	if err != nil {
		return errors.Wrap(err, "failed to retrieve swap chain images")
	}
	fmt.Fprintf(app.out, "Number of swap chain images: %d\n", len(app.swapchainImages))

	return nil
}

func (app *HelloTriangleApplication) createImageViews() error {
	colorOnly := core1_0.ImageSubresourceRange{
		AspectMask: core1_0.ImageAspectColor,
		LevelCount: 1,
		LayerCount: 1,
	}

	for imageIdx, image := range app.swapchainImages {
		view, _, err := app.deviceDriver.CreateImageView(nil, core1_0.ImageViewCreateInfo{
			Image:            image,
			ViewType:         core1_0.ImageViewType2D,
			Format:           app.swapchainImageFormat,
			SubresourceRange: colorOnly,
		})
		if err != nil {
			return errors.Wrapf(err, "failed to create image view %d", imageIdx)
		}
		app.swapchainImageViews = append(app.swapchainImageViews, view)
	}

	return nil
}

func (app *HelloTriangleApplication) releaseSwapchain() {
	for _, view := range app.swapchainImageViews {
		app.deviceDriver.DestroyImageView(view, nil)
	}

	if app.swapchain.Initialized() {
		app.swapchainExtension.DestroySwapchain(app.swapchain, nil)
	}
}
