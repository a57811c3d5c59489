package main

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_swapchain"
)

func (app *HelloTriangleApplication) createSemaphores() error {
	var err error
	app.imageAvailableSemaphore, _, err = app.deviceDriver.CreateSemaphore(nil, core1_0.SemaphoreCreateInfo{})
	if err != nil {
		return errors.Wrap(err, "failed to create image available semaphore")
	}

	app.renderFinishedSemaphore, _, err = app.deviceDriver.CreateSemaphore(nil, core1_0.SemaphoreCreateInfo{})
	if err != nil {
		return errors.Wrap(err, "failed to create render finished semaphore")
	}

	return nil
}

// drawFrame renders one frame and waits for it to be presented before
// returning, so a single pair of semaphores is enough.
func (app *HelloTriangleApplication) drawFrame() error {
	imageIndex, res, err := app.swapchainExtension.AcquireNextImage(app.swapchain, common.NoTimeout, &app.imageAvailableSemaphore, nil)
	if res == khr_swapchain.VKErrorOutOfDate {
		// The window can't be resized, so this only happens while it is hidden
		return nil
	} else if err != nil {
		return errors.Wrap(err, "failed to acquire swap chain image")
	}

	_, err = app.deviceDriver.QueueSubmit(app.graphicsQueue, nil,
		core1_0.SubmitInfo{
			WaitSemaphores:   []core1_0.Semaphore{app.imageAvailableSemaphore},
			WaitDstStageMask: []core1_0.PipelineStageFlags{core1_0.PipelineStageColorAttachmentOutput},
			CommandBuffers:   []core1_0.CommandBuffer{app.commandBuffers[imageIndex]},
			SignalSemaphores: []core1_0.Semaphore{app.renderFinishedSemaphore},
		},
	)
	if err != nil {
		return errors.Wrap(err, "failed to submit draw command buffer")
	}

	res, err = app.swapchainExtension.QueuePresent(app.presentQueue, khr_swapchain.PresentInfo{
		WaitSemaphores: []core1_0.Semaphore{app.renderFinishedSemaphore},
		Swapchains:     []khr_swapchain.Swapchain{app.swapchain},
		ImageIndices:   []int{imageIndex},
	})
	if res != khr_swapchain.VKErrorOutOfDate && res != khr_swapchain.VKSuboptimal && err != nil {
		return errors.Wrap(err, "failed to present swap chain image")
	}

	_, err = app.deviceDriver.QueueWaitIdle(app.presentQueue)
	if err != nil {
		return errors.Wrap(err, "failed to wait for present queue")
	}

	return nil
}

// releaseFrameResources destroys the semaphores, then the command pool along
// with the buffers allocated from it.
func (app *HelloTriangleApplication) releaseFrameResources() {
	for _, semaphore := range []core1_0.Semaphore{app.renderFinishedSemaphore, app.imageAvailableSemaphore} {
		if semaphore.Initialized() {
			app.deviceDriver.DestroySemaphore(semaphore, nil)
		}
	}

	if app.commandPool.Initialized() {
		app.deviceDriver.DestroyCommandPool(app.commandPool, nil)
	}
}
