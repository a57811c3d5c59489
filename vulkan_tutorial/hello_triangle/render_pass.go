package main

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_swapchain"
)

// createRenderPass describes a single subpass that clears the swapchain image
// and leaves it ready to present.
func (app *HelloTriangleApplication) createRenderPass() error {
	target := core1_0.AttachmentDescription{
		Format:         app.swapchainImageFormat,
		Samples:        core1_0.Samples1,
		LoadOp:         core1_0.AttachmentLoadOpClear,
		StoreOp:        core1_0.AttachmentStoreOpStore,
		StencilLoadOp:  core1_0.AttachmentLoadOpDontCare,
		StencilStoreOp: core1_0.AttachmentStoreOpDontCare,
		InitialLayout:  core1_0.ImageLayoutUndefined,
		FinalLayout:    khr_swapchain.ImageLayoutPresentSrc,
	}

	drawTriangle := core1_0.SubpassDescription{
		PipelineBindPoint: core1_0.PipelineBindPointGraphics,
		ColorAttachments: []core1_0.AttachmentReference{
			{Attachment: 0, Layout: core1_0.ImageLayoutColorAttachmentOptimal},
		},
	}

	// Hold the layout transition until the acquired image is really available
	waitForImage := core1_0.SubpassDependency{
		SrcSubpass:    core1_0.SubpassExternal,
		SrcStageMask:  core1_0.PipelineStageColorAttachmentOutput,
		DstStageMask:  core1_0.PipelineStageColorAttachmentOutput,
		DstAccessMask: core1_0.AccessColorAttachmentWrite,
	}

	renderPass, _, err := app.deviceDriver.CreateRenderPass(nil, core1_0.RenderPassCreateInfo{
		Attachments:         []core1_0.AttachmentDescription{target},
		Subpasses:           []core1_0.SubpassDescription{drawTriangle},
		SubpassDependencies: []core1_0.SubpassDependency{waitForImage},
	})
	if err != nil {
		return errors.Wrap(err, "failed to create render pass")
	}
	app.renderPass = renderPass

	return nil
}

func (app *HelloTriangleApplication) createFramebuffers() error {
	app.swapchainFramebuffers = make([]core1_0.Framebuffer, 0, len(app.swapchainImageViews))

	for viewIdx, view := range app.swapchainImageViews {
		fb, _, err := app.deviceDriver.CreateFramebuffer(nil, core1_0.FramebufferCreateInfo{
			RenderPass:  app.renderPass,
			Attachments: []core1_0.ImageView{view},
			Width:       app.swapchainExtent.Width,
			Height:      app.swapchainExtent.Height,
			Layers:      1,
		})
		if err != nil {
			return errors.Wrapf(err, "failed to create framebuffer %d", viewIdx)
		}
		app.swapchainFramebuffers = append(app.swapchainFramebuffers, fb)
	}

	return nil
}
