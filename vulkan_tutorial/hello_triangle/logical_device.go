package main

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_portability_subset"
	"github.com/vkngwrapper/hello-triangle/vulkan_tutorial/utils"
)

// createLogicalDevice opens one queue on each distinct family the picked device
// draws and presents with, and fetches both queue handles.
func (app *HelloTriangleApplication) createLogicalDevice() error {
	families := app.queueFamilies.UniqueQueueFamilies()
	queues := make([]core1_0.DeviceQueueCreateInfo, 0, len(families))
	for _, family := range families {
		queues = append(queues, core1_0.DeviceQueueCreateInfo{
			QueueFamilyIndex: family,
			QueuePriorities:  []float32{1},
		})
	}

	extensions := append([]string(nil), utils.DeviceExtensions...)
	// Portability implementations like MoltenVK must have this enabled when they expose it
	if _, ok := app.physicalDeviceCaps.Extensions[khr_portability_subset.ExtensionName]; ok {
		extensions = append(extensions, khr_portability_subset.ExtensionName)
	}

	device, _, err := app.instanceDriver.CreateDevice(app.physicalDevice, nil, core1_0.DeviceCreateInfo{
		QueueCreateInfos:      queues,
		EnabledFeatures:       &core1_0.PhysicalDeviceFeatures{},
		EnabledExtensionNames: extensions,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create logical device")
	}
	app.deviceDriver = device

	app.graphicsQueue = device.GetQueue(*app.queueFamilies.GraphicsFamily, 0)
	app.presentQueue = device.GetQueue(*app.queueFamilies.PresentFamily, 0)
	return nil
}
