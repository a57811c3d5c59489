package utils

import "github.com/cockroachdb/errors"

var (
	ErrMissingLayer     = errors.New("missing validation layer")
	ErrMissingExtension = errors.New("missing extension")
	ErrNoVulkanDevices  = errors.New("failed to find GPUs with Vulkan support")
	ErrNoSuitableDevice = errors.New("failed to find a suitable GPU")
	ErrShaderNotFound   = errors.New("shader bytecode not found")
	ErrInvalidShader    = errors.New("invalid shader bytecode")
)
