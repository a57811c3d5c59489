package main

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/hello-triangle/vulkan_tutorial/utils"
)

func (app *HelloTriangleApplication) createCommandPool() error {
	var err error
	app.commandPool, _, err = app.deviceDriver.CreateCommandPool(nil, core1_0.CommandPoolCreateInfo{
		QueueFamilyIndex: *app.queueFamilies.GraphicsFamily,
	})
	return errors.Wrap(err, "failed to create command pool")
}

// createCommandBuffers records one buffer per framebuffer, once. Nothing in
// the scene changes, so they are replayed as-is every frame.
func (app *HelloTriangleApplication) createCommandBuffers() error {
	var err error
	app.commandBuffers, _, err = app.deviceDriver.AllocateCommandBuffers(core1_0.CommandBufferAllocateInfo{
		CommandPool:        app.commandPool,
		Level:              core1_0.CommandBufferLevelPrimary,
		CommandBufferCount: len(app.swapchainFramebuffers),
	})
	if err != nil {
		return errors.Wrap(err, "failed to allocate command buffers")
	}

	clearValue := utils.ClearValueForFormat(utils.ClearColor, app.swapchainImageFormat)
	for i, cmd := range app.commandBuffers {
		if err := app.recordTriangle(cmd, app.swapchainFramebuffers[i], clearValue); err != nil {
			return errors.Wrapf(err, "command buffer %d", i)
		}
	}

	return nil
}

func (app *HelloTriangleApplication) recordTriangle(cmd core1_0.CommandBuffer, target core1_0.Framebuffer, clearValue core1_0.ClearValue) error {
	if _, err := app.deviceDriver.BeginCommandBuffer(cmd, core1_0.CommandBufferBeginInfo{}); err != nil {
		return errors.Wrap(err, "failed to begin recording command buffer")
	}

	err := app.deviceDriver.CmdBeginRenderPass(cmd, core1_0.SubpassContentsInline, core1_0.RenderPassBeginInfo{
		RenderPass:  app.renderPass,
		Framebuffer: target,
		RenderArea:  core1_0.Rect2D{Extent: app.swapchainExtent},
		ClearValues: []core1_0.ClearValue{clearValue},
	})
	if err != nil {
		return errors.Wrap(err, "failed to begin render pass")
	}

	app.deviceDriver.CmdBindPipeline(cmd, core1_0.PipelineBindPointGraphics, app.graphicsPipeline)
	// Three vertices, one instance; positions come from gl_VertexIndex
	app.deviceDriver.CmdDraw(cmd, 3, 1, 0, 0)
	app.deviceDriver.CmdEndRenderPass(cmd)

	_, err = app.deviceDriver.EndCommandBuffer(cmd)
	return errors.Wrap(err, "failed to record command buffer")
}
