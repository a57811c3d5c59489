package main

import (
	"io"
	"log"
	"os"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/vkngwrapper/core/v3"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
	"github.com/vkngwrapper/extensions/v3/khr_swapchain"
	"github.com/vkngwrapper/hello-triangle/vulkan_tutorial/utils"
)

type HelloTriangleApplication struct {
	out    io.Writer
	window *sdl.Window

	globalDriver   core1_0.GlobalDriver
	instanceDriver core1_0.CoreInstanceDriver
	deviceDriver   core1_0.CoreDeviceDriver

	debugDriver      ext_debug_utils.ExtensionDriver
	debugMessenger   ext_debug_utils.DebugUtilsMessenger
	surfaceExtension khr_surface.ExtensionDriver
	surface          khr_surface.Surface

	physicalDevice     core1_0.PhysicalDevice
	physicalDeviceCaps *utils.PhysicalDeviceCaps
	queueFamilies      utils.QueueFamilyIndices

	graphicsQueue core1_0.Queue
	presentQueue  core1_0.Queue

	swapchainExtension    khr_swapchain.ExtensionDriver
	swapchain             khr_swapchain.Swapchain
	swapchainImages       []core1_0.Image
	swapchainImageFormat  core1_0.Format
	swapchainExtent       core1_0.Extent2D
	swapchainImageViews   []core1_0.ImageView
	swapchainFramebuffers []core1_0.Framebuffer

	renderPass       core1_0.RenderPass
	pipelineLayout   core1_0.PipelineLayout
	graphicsPipeline core1_0.Pipeline

	commandPool    core1_0.CommandPool
	commandBuffers []core1_0.CommandBuffer

	imageAvailableSemaphore core1_0.Semaphore
	renderFinishedSemaphore core1_0.Semaphore

	minimized bool
}

func (app *HelloTriangleApplication) Run() error {
	defer app.cleanup()

	err := app.initWindow()
	if err != nil {
		return err
	}

	err = app.initVulkan()
	if err != nil {
		return err
	}

	return app.mainLoop()
}

func (app *HelloTriangleApplication) initWindow() error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return err
	}

	window, err := sdl.CreateWindow(utils.WindowTitle, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, utils.WindowWidth, utils.WindowHeight, sdl.WINDOW_SHOWN|sdl.WINDOW_VULKAN)
	if err != nil {
		return err
	}
	app.window = window

	app.globalDriver, err = core.CreateDriverFromProcAddr(sdl.VulkanGetVkGetInstanceProcAddr())
	if err != nil {
		return err
	}

	return nil
}

func (app *HelloTriangleApplication) initVulkan() error {
	return utils.RunSteps(app.out, app.initSteps())
}

func (app *HelloTriangleApplication) initSteps() []utils.Step {
	steps := []utils.Step{
		{Name: "create instance", Banner: "Vulkan instance created.", Run: app.createInstance},
	}
	if enableValidationLayers {
		steps = append(steps, utils.Step{Name: "setup debug messenger", Banner: "Debug messenger setup.", Run: app.setupDebugMessenger})
	}

	return append(steps, []utils.Step{
		{Name: "create surface", Banner: "Surface created.", Run: app.createSurface},
		{Name: "pick physical device", Banner: "Physical device picked.", Run: app.pickPhysicalDevice},
		{Name: "create logical device", Banner: "Logical device created.", Run: app.createLogicalDevice},
		{Name: "create swapchain", Banner: "Swap chain created.", Run: app.createSwapchain},
		{Name: "create image views", Banner: "Image views created.", Run: app.createImageViews},
		{Name: "create render pass", Banner: "Render pass created.", Run: app.createRenderPass},
		{Name: "create graphics pipeline", Banner: "Graphics pipeline created.", Run: app.createGraphicsPipeline},
		{Name: "create framebuffers", Banner: "Framebuffers created.", Run: app.createFramebuffers},
		{Name: "create command pool", Banner: "Command pool created.", Run: app.createCommandPool},
		{Name: "create command buffers", Banner: "Command buffers recorded.", Run: app.createCommandBuffers},
		{Name: "create semaphores", Banner: "Semaphores created.", Run: app.createSemaphores},
	}...)
}

// handleEvent tracks minimize/restore and reports whether the user asked to quit.
func (app *HelloTriangleApplication) handleEvent(event sdl.Event) bool {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return true
	case *sdl.WindowEvent:
		switch e.Event {
		case sdl.WINDOWEVENT_MINIMIZED:
			app.minimized = true
		case sdl.WINDOWEVENT_RESTORED:
			app.minimized = false
		}
	}
	return false
}

func (app *HelloTriangleApplication) mainLoop() error {
appLoop:
	for {
		// Nothing to draw while minimized, so block until the window changes
		if app.minimized {
			if app.handleEvent(sdl.WaitEvent()) {
				break appLoop
			}
		}

		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			if app.handleEvent(event) {
				break appLoop
			}
		}

		if !app.minimized {
			err := app.drawFrame()
			if err != nil {
				return err
			}
		}
	}

	_, err := app.deviceDriver.DeviceWaitIdle()
	return err
}

// cleanup releases everything in the reverse order of initVulkan. Each release
// helper skips objects that were never created, so it is safe after a failed init.
func (app *HelloTriangleApplication) cleanup() {
	app.releaseFrameResources()
	app.releasePipeline()
	app.releaseSwapchain()

	if app.deviceDriver != nil {
		app.deviceDriver.DestroyDevice(nil)
	}
	app.releaseInstance()

	if app.window != nil {
		app.window.Destroy()
	}
	sdl.Quit()
}

func main() {
	runtime.LockOSThread()
	app := &HelloTriangleApplication{
		out: os.Stdout,
	}

	err := app.Run()
	if err != nil {
		log.Fatalf("%+v\n", err)
	}
}
