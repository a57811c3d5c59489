package utils

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
)

type QueueFamilyIndices struct {
	GraphicsFamily *int
	PresentFamily  *int
}

func (i *QueueFamilyIndices) IsComplete() bool {
	return i.GraphicsFamily != nil && i.PresentFamily != nil
}

// QueueFamilySupport records what a single queue family can do for our surface.
type QueueFamilySupport struct {
	Graphics bool
	Present  bool
}

// FindQueueFamilies scans families in order, overwriting each index with the
// latest match, and stops as soon as both are set.
func FindQueueFamilies(families []QueueFamilySupport) QueueFamilyIndices {
	indices := QueueFamilyIndices{}

	for queueFamilyIdx, queueFamily := range families {
		if queueFamily.Graphics {
			indices.GraphicsFamily = new(int)
			*indices.GraphicsFamily = queueFamilyIdx
		}

		if queueFamily.Present {
			indices.PresentFamily = new(int)
			*indices.PresentFamily = queueFamilyIdx
		}

		if indices.IsComplete() {
			break
		}
	}

	return indices
}

// UniqueQueueFamilies lists the graphics family and, when it differs, the
// present family. Indices must be complete.
func (i *QueueFamilyIndices) UniqueQueueFamilies() []int {
	families := []int{*i.GraphicsFamily}
	if *i.PresentFamily != *i.GraphicsFamily {
		families = append(families, *i.PresentFamily)
	}
	return families
}

type SwapChainSupportDetails struct {
	Capabilities *khr_surface.SurfaceCapabilities
	Formats      []khr_surface.SurfaceFormat
	PresentModes []khr_surface.PresentMode
}

// PhysicalDeviceCaps is everything selection needs to know about one physical
// device, probed up front so the decision itself never touches the driver.
type PhysicalDeviceCaps struct {
	Name      string
	VendorID  uint32
	DeviceID  uint32
	CacheUUID uuid.UUID

	QueueFamilies []QueueFamilySupport
	Extensions    map[string]struct{}

	// SwapChainSupport is only populated when the swapchain extension is present.
	SwapChainSupport SwapChainSupportDetails

	// QueryErr is set when the driver failed to report some of the above. The
	// device is then never suitable.
	QueryErr error
}

// Suitability returns nil if the device satisfies every requirement, or an
// error describing the first one it fails.
func (c *PhysicalDeviceCaps) Suitability(requiredExtensions []string) error {
	if c.QueryErr != nil {
		return errors.Wrapf(c.QueryErr, "%s: failed to query device", c.Name)
	}

	indices := FindQueueFamilies(c.QueueFamilies)
	if indices.GraphicsFamily == nil {
		return errors.Newf("%s: no queue family supports graphics", c.Name)
	}
	if indices.PresentFamily == nil {
		return errors.Newf("%s: no queue family can present to the surface", c.Name)
	}

	missing := MissingNames(c.Extensions, requiredExtensions)
	if len(missing) > 0 {
		return errors.Wrapf(ErrMissingExtension, "%s: %v", c.Name, missing)
	}

	if len(c.SwapChainSupport.Formats) == 0 {
		return errors.Newf("%s: surface reports no formats", c.Name)
	}
	if len(c.SwapChainSupport.PresentModes) == 0 {
		return errors.Newf("%s: surface reports no present modes", c.Name)
	}

	return nil
}

func (c *PhysicalDeviceCaps) Print(out io.Writer) {
	fmt.Fprintf(out, "\nPhysical device: %s\n", c.Name)
	fmt.Fprintf(out, "\tVendor: 0x%x, device: 0x%x\n", c.VendorID, c.DeviceID)
	fmt.Fprintf(out, "\tPipeline cache UUID: %s\n", c.CacheUUID)
	fmt.Fprintf(out, "\tQueue families: %d\n", len(c.QueueFamilies))
}

// PickPhysicalDevice returns the index of the first suitable candidate along
// with its queue family indices.
func PickPhysicalDevice(candidates []*PhysicalDeviceCaps, requiredExtensions []string) (int, QueueFamilyIndices, error) {
	if len(candidates) == 0 {
		return -1, QueueFamilyIndices{}, ErrNoVulkanDevices
	}

	var reasons []error
	for idx, candidate := range candidates {
		err := candidate.Suitability(requiredExtensions)
		if err == nil {
			return idx, FindQueueFamilies(candidate.QueueFamilies), nil
		}
		reasons = append(reasons, err)
	}

	err := ErrNoSuitableDevice
	for _, reason := range reasons {
		err = errors.WithSecondaryError(err, reason)
	}
	return -1, QueueFamilyIndices{}, err
}
