package main

import (
	"log"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
	"github.com/vkngwrapper/extensions/v3/khr_portability_enumeration"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
	"github.com/vkngwrapper/hello-triangle/vulkan_tutorial/utils"
	vkng_sdl2 "github.com/vkngwrapper/integrations/sdl2/v3"
)

// instanceExtensions checks what the window and validation need against what
// the loader offers. The bool reports whether portability enumeration is on.
func (app *HelloTriangleApplication) instanceExtensions() ([]string, bool, error) {
	available, _, err := app.globalDriver.AvailableExtensions()
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to enumerate instance extensions")
	}

	names := app.window.VulkanGetInstanceExtensions()
	if enableValidationLayers {
		names = append(names, ext_debug_utils.ExtensionName)
	}
	if err := utils.CheckRequirements(app.out, "instance extensions", available, names, utils.ErrMissingExtension); err != nil {
		return nil, false, err
	}

	// Portability drivers such as MoltenVK are hidden unless asked for
	if _, ok := available[khr_portability_enumeration.ExtensionName]; ok {
		return append(names, khr_portability_enumeration.ExtensionName), true, nil
	}
	return names, false, nil
}

func (app *HelloTriangleApplication) instanceLayers() ([]string, error) {
	if !enableValidationLayers {
		return nil, nil
	}

	available, _, err := app.globalDriver.AvailableLayers()
	if err != nil {
		return nil, errors.Wrap(err, "failed to enumerate instance layers")
	}
	if err := utils.CheckRequirements(app.out, "validation layers", available, utils.ValidationLayers, utils.ErrMissingLayer); err != nil {
		return nil, errors.WithHint(err, "install the LunarG Vulkan SDK")
	}
	return utils.ValidationLayers, nil
}

func (app *HelloTriangleApplication) createInstance() error {
	extensions, portability, err := app.instanceExtensions()
	if err != nil {
		return err
	}
	layers, err := app.instanceLayers()
	if err != nil {
		return err
	}

	info := core1_0.InstanceCreateInfo{
		ApplicationName:       "Hello Triangle",
		ApplicationVersion:    common.CreateVersion(1, 0, 0),
		EngineName:            "No Engine",
		EngineVersion:         common.CreateVersion(1, 0, 0),
		APIVersion:            common.Vulkan1_2,
		EnabledExtensionNames: extensions,
		EnabledLayerNames:     layers,
	}
	if portability {
		info.Flags |= khr_portability_enumeration.InstanceCreateEnumeratePortability
	}
	if enableValidationLayers {
		// Lets validation report on instance creation and destruction too
		info.Next = app.debugMessengerOptions()
	}

	app.instanceDriver, _, err = app.globalDriver.CreateInstance(nil, info)
	if err != nil {
		return errors.Wrap(err, "failed to create instance")
	}

	return nil
}

func (app *HelloTriangleApplication) debugMessengerOptions() ext_debug_utils.DebugUtilsMessengerCreateInfo {
	return ext_debug_utils.DebugUtilsMessengerCreateInfo{
		MessageSeverity: ext_debug_utils.SeverityError | ext_debug_utils.SeverityWarning,
		MessageType:     ext_debug_utils.TypeGeneral | ext_debug_utils.TypeValidation | ext_debug_utils.TypePerformance,
		UserCallback:    app.logDebug,
	}
}

func (app *HelloTriangleApplication) setupDebugMessenger() error {
	app.debugDriver = ext_debug_utils.CreateExtensionDriverFromCoreDriver(app.instanceDriver)

	messenger, _, err := app.debugDriver.CreateDebugUtilsMessenger(nil, app.debugMessengerOptions())
	if err != nil {
		return errors.Wrap(err, "failed to set up debug messenger")
	}
	app.debugMessenger = messenger

	return nil
}

func (app *HelloTriangleApplication) logDebug(msgType ext_debug_utils.DebugUtilsMessageTypeFlags, severity ext_debug_utils.DebugUtilsMessageSeverityFlags, data *ext_debug_utils.DebugUtilsMessengerCallbackData) bool {
	log.Printf("[%s %s] - %s", severity, msgType, data.Message)
	return false
}

func (app *HelloTriangleApplication) createSurface() error {
	app.surfaceExtension = khr_surface.CreateExtensionDriverFromCoreDriver(app.instanceDriver)

	var err error
	app.surface, err = vkng_sdl2.CreateSurface(app.instanceDriver.Instance(), app.surfaceExtension, app.window)
	return errors.Wrap(err, "failed to create window surface")
}

// releaseInstance destroys the instance-level objects: messenger, surface and
// the instance itself.
func (app *HelloTriangleApplication) releaseInstance() {
	if app.debugMessenger.Initialized() {
		app.debugDriver.DestroyDebugUtilsMessenger(app.debugMessenger, nil)
	}
	if app.surface.Initialized() {
		app.surfaceExtension.DestroySurface(app.surface, nil)
	}
	if app.instanceDriver != nil {
		app.instanceDriver.DestroyInstance(nil)
	}
}
