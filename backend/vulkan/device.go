package vulkan

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	_ "github.com/gogpu/wgpu/hal/vulkan" // registers the Vulkan HAL backend

	"github.com/gogpu/g3d"
	"github.com/gogpu/g3d/surface"
)

// ErrDeviceUnavailable is returned when no Vulkan device could be opened.
var ErrDeviceUnavailable = errors.New("vulkan: device unavailable")

// Device is an opened HAL device with its queue. Release is called on
// Shutdown and is nil for devices the renderer does not own.
type Device struct {
	Device  hal.Device
	Queue   hal.Queue
	Release func()
}

// Opener opens a device for a renderer.
type Opener func() (*Device, error)

// OpenDefault creates a standalone Vulkan instance and opens the first
// discrete or integrated adapter, falling back to any adapter.
func OpenDefault() (*Device, error) {
	be, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return nil, fmt.Errorf("%w: backend not registered", ErrDeviceUnavailable)
	}
	instance, err := be.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil, fmt.Errorf("%w: create instance: %w", ErrDeviceUnavailable, err)
	}

	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return nil, fmt.Errorf("%w: no adapters", ErrDeviceUnavailable)
	}
	selected := &adapters[0]
	for i := range adapters {
		t := adapters[i].Info.DeviceType
		if t == gputypes.DeviceTypeDiscreteGPU || t == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}

	opened, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return nil, fmt.Errorf("%w: open device: %w", ErrDeviceUnavailable, err)
	}
	g3d.Logger().Info("vulkan: device opened", "adapter", selected.Info.Name)
	return &Device{
		Device: opened.Device,
		Queue:  opened.Queue,
		Release: func() {
			opened.Device.Destroy()
			instance.Destroy()
		},
	}, nil
}

// sharedDevice returns the HAL device exposed by the surface's device
// provider, if any. The renderer does not own it.
func sharedDevice(s surface.Surface) (*Device, bool) {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := surface.ProviderOf(s).(halProvider)
	if !ok {
		return nil, false
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, false
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, false
	}
	return &Device{Device: device, Queue: queue}, true
}
