package main

//go:generate glslc shaders/shader.vert -o shaders/vert.spv
//go:generate glslc shaders/shader.frag -o shaders/frag.spv

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/hello-triangle/vulkan_tutorial/utils"
)

// shaderStages pairs each pipeline stage with the bytecode that fills it.
var shaderStages = []struct {
	path string
	info core1_0.PipelineShaderStageCreateInfo
}{
	{path: utils.VertexShaderPath, info: core1_0.PipelineShaderStageCreateInfo{Stage: core1_0.StageVertex, Name: "main"}},
	{path: utils.FragmentShaderPath, info: core1_0.PipelineShaderStageCreateInfo{Stage: core1_0.StageFragment, Name: "main"}},
}

func (app *HelloTriangleApplication) loadShader(path string) (core1_0.ShaderModule, error) {
	code, err := utils.LoadShaderFile(path)
	if err != nil {
		return core1_0.ShaderModule{}, err
	}
	fmt.Fprintf(app.out, "\n%s size is %d bytes.\n", path, len(code)*4)

	module, _, err := app.deviceDriver.CreateShaderModule(nil, core1_0.ShaderModuleCreateInfo{Code: code})
	if err != nil {
		return core1_0.ShaderModule{}, errors.Wrapf(err, "failed to create shader module for %s", path)
	}
	return module, nil
}

// fixedViewport covers the whole swapchain image; the window never resizes so
// it is baked into the pipeline rather than set dynamically.
func fixedViewport(extent core1_0.Extent2D) *core1_0.PipelineViewportStateCreateInfo {
	return &core1_0.PipelineViewportStateCreateInfo{
		Viewports: []core1_0.Viewport{{
			Width:    float32(extent.Width),
			Height:   float32(extent.Height),
			MaxDepth: 1,
		}},
		Scissors: []core1_0.Rect2D{{Extent: extent}},
	}
}

func opaqueColorBlend() *core1_0.PipelineColorBlendStateCreateInfo {
	writeAll := core1_0.ColorComponentRed | core1_0.ColorComponentGreen |
		core1_0.ColorComponentBlue | core1_0.ColorComponentAlpha

	return &core1_0.PipelineColorBlendStateCreateInfo{
		LogicOp: core1_0.LogicOpCopy,
		Attachments: []core1_0.PipelineColorBlendAttachmentState{
			{ColorWriteMask: writeAll},
		},
	}
}

func (app *HelloTriangleApplication) createGraphicsPipeline() error {
	var stages []core1_0.PipelineShaderStageCreateInfo
	for _, s := range shaderStages {
		module, err := app.loadShader(s.path)
		if err != nil {
			return err
		}
		// Modules are only needed while the pipeline is built
		defer app.deviceDriver.DestroyShaderModule(module, nil)

		stage := s.info
		stage.Module = module
		stages = append(stages, stage)
	}

	layout, _, err := app.deviceDriver.CreatePipelineLayout(nil, core1_0.PipelineLayoutCreateInfo{})
	if err != nil {
		return errors.Wrap(err, "failed to create pipeline layout")
	}
	app.pipelineLayout = layout

	pipelines, _, err := app.deviceDriver.CreateGraphicsPipelines(nil, nil, core1_0.GraphicsPipelineCreateInfo{
		Stages: stages,
		// The triangle's vertices live in the vertex shader
		VertexInputState: &core1_0.PipelineVertexInputStateCreateInfo{},
		InputAssemblyState: &core1_0.PipelineInputAssemblyStateCreateInfo{
			Topology: core1_0.PrimitiveTopologyTriangleList,
		},
		ViewportState: fixedViewport(app.swapchainExtent),
		RasterizationState: &core1_0.PipelineRasterizationStateCreateInfo{
			PolygonMode: core1_0.PolygonModeFill,
			CullMode:    core1_0.CullModeBack,
			FrontFace:   core1_0.FrontFaceClockwise,
			LineWidth:   1,
		},
		MultisampleState: &core1_0.PipelineMultisampleStateCreateInfo{
			RasterizationSamples: core1_0.Samples1,
			MinSampleShading:     1,
		},
		ColorBlendState:   opaqueColorBlend(),
		Layout:            layout,
		RenderPass:        app.renderPass,
		BasePipelineIndex: -1,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create graphics pipeline")
	}
	app.graphicsPipeline = pipelines[0]

	return nil
}

func (app *HelloTriangleApplication) releasePipeline() {
	for _, fb := range app.swapchainFramebuffers {
		app.deviceDriver.DestroyFramebuffer(fb, nil)
	}

	if app.graphicsPipeline.Initialized() {
		app.deviceDriver.DestroyPipeline(app.graphicsPipeline, nil)
	}
	if app.pipelineLayout.Initialized() {
		app.deviceDriver.DestroyPipelineLayout(app.pipelineLayout, nil)
	}
	if app.renderPass.Initialized() {
		app.deviceDriver.DestroyRenderPass(app.renderPass, nil)
	}
}
