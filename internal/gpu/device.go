//go:build !nogpu

package gpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	// Import Vulkan backend so it registers via init().
	_ "github.com/gogpu/wgpu/hal/vulkan"

	"github.com/gogpu/rogue/render"
)

// deviceHandle bundles the hal device and queue with ownership
// tracking. When the device came from a shared provider the backend
// must not destroy it on Close.
type deviceHandle struct {
	instance hal.Instance
	device   hal.Device
	queue    hal.Queue
	owned    bool
}

// sharedDevice extracts the hal device and queue from a windowing
// provider. The provider must implement HalDevice() any and
// HalQueue() any returning hal.Device and hal.Queue.
func sharedDevice(provider any) (*deviceHandle, error) {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, fmt.Errorf("gpu: provider does not expose HAL types")
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("gpu: provider HalDevice is not hal.Device")
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("gpu: provider HalQueue is not hal.Queue")
	}
	return &deviceHandle{device: device, queue: queue}, nil
}

// ownDevice opens a device on a fresh Vulkan instance, preferring
// discrete then integrated adapters.
func ownDevice() (*deviceHandle, error) {
	backend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return nil, fmt.Errorf("%w: vulkan backend not available", render.ErrNoAdapter)
	}
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil, fmt.Errorf("%w: create instance: %v", render.ErrNoAdapter, err)
	}
	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return nil, fmt.Errorf("%w: no adapters enumerated", render.ErrNoAdapter)
	}
	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}
	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return nil, fmt.Errorf("%w: open %s: %v", render.ErrDeviceRequest, selected.Info.Name, err)
	}
	slogger().Info("gpu: device opened", "adapter", selected.Info.Name)
	return &deviceHandle{
		instance: instance,
		device:   openDev.Device,
		queue:    openDev.Queue,
		owned:    true,
	}, nil
}

func (h *deviceHandle) destroy() {
	if !h.owned {
		h.device = nil
		h.queue = nil
		return
	}
	if h.device != nil {
		h.device.Destroy()
		h.device = nil
	}
	if h.instance != nil {
		h.instance.Destroy()
		h.instance = nil
	}
	h.queue = nil
}
