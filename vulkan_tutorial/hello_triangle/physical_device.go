package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/hello-triangle/vulkan_tutorial/utils"
)

// probePhysicalDevice collects what selection needs from one device. A failed
// query is kept on the result rather than returned so the remaining devices
// still get considered.
func (app *HelloTriangleApplication) probePhysicalDevice(deviceIdx int, device core1_0.PhysicalDevice) *utils.PhysicalDeviceCaps {
	caps := &utils.PhysicalDeviceCaps{
		Name:       fmt.Sprintf("device %d", deviceIdx),
		Extensions: make(map[string]struct{}),
	}

	properties, err := app.instanceDriver.GetPhysicalDeviceProperties(device)
	if err != nil {
		caps.QueryErr = errors.Wrap(err, "properties")
		return caps
	}
	caps.Name = properties.DeviceName
	caps.VendorID = properties.VendorID
	caps.DeviceID = properties.DeviceID
	caps.CacheUUID = properties.PipelineCacheUUID

	queueFamilies := app.instanceDriver.GetPhysicalDeviceQueueFamilyProperties(device)
	for queueFamilyIdx, queueFamily := range queueFamilies {
		supported, _, err := app.surfaceExtension.GetPhysicalDeviceSurfaceSupport(app.surface, device, queueFamilyIdx)
		if err != nil {
			caps.QueryErr = errors.Wrapf(err, "surface support for queue family %d", queueFamilyIdx)
			return caps
		}

		caps.QueueFamilies = append(caps.QueueFamilies, utils.QueueFamilySupport{
			Graphics: (queueFamily.QueueFlags & core1_0.QueueGraphics) != 0,
			Present:  supported,
		})
	}

	extensions, _, err := app.instanceDriver.EnumerateDeviceExtensionProperties(device)
	if err != nil {
		caps.QueryErr = errors.Wrap(err, "device extensions")
		return caps
	}
	for name := range extensions {
		caps.Extensions[name] = struct{}{}
	}

	// Surface queries are only valid once the swapchain extension is known to exist
	if len(utils.MissingNames(caps.Extensions, utils.DeviceExtensions)) == 0 {
		caps.SwapChainSupport, err = app.querySwapChainSupport(device)
		if err != nil {
			caps.QueryErr = errors.Wrap(err, "swap chain support")
		}
	}

	return caps
}

func (app *HelloTriangleApplication) pickPhysicalDevice() error {
	physicalDevices, _, err := app.instanceDriver.EnumeratePhysicalDevices()
	if err != nil {
		return errors.Wrap(err, "failed to enumerate physical devices")
	}

	candidates := make([]*utils.PhysicalDeviceCaps, 0, len(physicalDevices))
	for deviceIdx, device := range physicalDevices {
		caps := app.probePhysicalDevice(deviceIdx, device)
		caps.Print(app.out)

		if reason := caps.Suitability(utils.DeviceExtensions); reason != nil {
			fmt.Fprintf(app.out, "\tNot suitable: %v\n", reason)
		}
		candidates = append(candidates, caps)
	}

	deviceIdx, indices, err := utils.PickPhysicalDevice(candidates, utils.DeviceExtensions)
	if err != nil {
		return err
	}

	app.physicalDevice = physicalDevices[deviceIdx]
	app.physicalDeviceCaps = candidates[deviceIdx]
	app.queueFamilies = indices
	fmt.Fprintf(app.out, "\nPhysical device set to: %s\n", app.physicalDeviceCaps.Name)
	fmt.Fprintf(app.out, "Graphics queue family: %d, present queue family: %d\n", *indices.GraphicsFamily, *indices.PresentFamily)

	return utils.CheckRequirements(app.out, "device extensions", app.physicalDeviceCaps.Extensions, utils.DeviceExtensions, utils.ErrMissingExtension)
}
