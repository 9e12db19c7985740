package native

import (
	"math/bits"

	"github.com/gogpu/gpuprobe"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/core"
)

// init registers the native backend on package import.
func init() {
	gpuprobe.Register(gpuprobe.BackendNative, func() gpuprobe.ProbeBackend {
		return &Backend{}
	})
}

// Backend is a probe backend using the Pure Go WebGPU implementation
// (gogpu/wgpu).
type Backend struct{}

// NewBackend creates a new Pure Go probe backend.
func NewBackend() *Backend {
	return &Backend{}
}

// Name returns the backend identifier.
func (b *Backend) Name() string {
	return gpuprobe.BackendNative
}

// CreateInstance creates the wgpu/core instance.
func (b *Backend) CreateInstance() (gpuprobe.Instance, error) {
	desc := &gputypes.InstanceDescriptor{
		Backends: gputypes.BackendsPrimary,
		Flags:    0,
	}
	inst := core.NewInstance(desc)
	if inst == nil {
		return nil, ErrNoInstance
	}
	return &nativeInstance{inst: inst}, nil
}

// nativeInstance wraps a wgpu/core instance.
type nativeInstance struct {
	inst *core.Instance
}

// RequestAdapter issues the adapter request. wgpu/core resolves requests
// synchronously, so the callback runs before RequestAdapter returns
// (the AllowSpontaneous delivery mode of the WebGPU contract).
func (i *nativeInstance) RequestAdapter(opts *gputypes.RequestAdapterOptions, cb gpuprobe.RequestAdapterCallback) {
	id, err := i.inst.RequestAdapter(opts)
	if err != nil {
		cb(gpuprobe.StatusUnavailable, nil, err.Error())
		return
	}
	cb(gpuprobe.StatusSuccess, &nativeAdapter{id: id}, "")
}

// Release drops the instance reference. wgpu/core instances need no
// explicit teardown.
func (i *nativeInstance) Release() {
	i.inst = nil
}

// nativeAdapter wraps a wgpu/core adapter ID.
type nativeAdapter struct {
	id core.AdapterID
}

// Limits queries the adapter limits. Reports false when the query fails
// so the caller can skip the section.
func (a *nativeAdapter) Limits() (gputypes.Limits, bool) {
	limits, err := core.GetAdapterLimits(a.id)
	if err != nil {
		gpuprobe.Logger().Warn("native: adapter limits unavailable", "err", err)
		return gputypes.Limits{}, false
	}
	return limits, true
}

// Features returns the supported features as individual codes.
// wgpu/core reports features as a bitmask; each set bit is one code.
func (a *nativeAdapter) Features() []gputypes.Features {
	mask, err := core.GetAdapterFeatures(a.id)
	if err != nil {
		gpuprobe.Logger().Warn("native: adapter features unavailable", "err", err)
		return nil
	}
	return splitFeatureBits(mask)
}

// Info maps the wgpu/core adapter info onto the probe record.
// wgpu/core does not expose PCI vendor/device IDs, so those stay zero.
func (a *nativeAdapter) Info() gpuprobe.AdapterInfo {
	info, err := core.GetAdapterInfo(a.id)
	if err != nil {
		gpuprobe.Logger().Warn("native: adapter info unavailable", "err", err)
		return gpuprobe.AdapterInfo{
			AdapterType: gpuprobe.AdapterTypeUnknown,
			BackendType: gpuprobe.BackendTypeUndefined,
		}
	}

	return gpuprobe.AdapterInfo{
		Vendor:      info.Vendor,
		Device:      info.Name,
		Description: info.Driver,
		AdapterType: adapterType(info.DeviceType),
		BackendType: backendType(info.Backend),
	}
}

// Release drops the adapter handle.
func (a *nativeAdapter) Release() {
	if err := core.AdapterDrop(a.id); err != nil {
		gpuprobe.Logger().Warn("native: error releasing adapter", "err", err)
	}
}

// splitFeatureBits expands a feature bitmask into one code per set bit.
func splitFeatureBits(mask gputypes.Features) []gputypes.Features {
	m := uint64(mask)
	features := make([]gputypes.Features, 0, bits.OnesCount64(m))
	for m != 0 {
		bit := m & -m
		features = append(features, gputypes.Features(bit))
		m &^= bit
	}
	return features
}

// adapterType converts the wgpu device type to a probe adapter type code.
func adapterType(t gputypes.DeviceType) gpuprobe.AdapterType {
	switch t {
	case gputypes.DeviceTypeDiscreteGPU:
		return gpuprobe.AdapterTypeDiscreteGPU
	case gputypes.DeviceTypeIntegratedGPU:
		return gpuprobe.AdapterTypeIntegratedGPU
	case gputypes.DeviceTypeCPU:
		return gpuprobe.AdapterTypeCPU
	default:
		return gpuprobe.AdapterTypeUnknown
	}
}

// backendType converts the wgpu backend to a probe backend type code.
func backendType(b gputypes.Backend) gpuprobe.BackendType {
	switch b {
	case gputypes.BackendVulkan:
		return gpuprobe.BackendTypeVulkan
	case gputypes.BackendMetal:
		return gpuprobe.BackendTypeMetal
	case gputypes.BackendDX12:
		return gpuprobe.BackendTypeD3D12
	case gputypes.BackendGL:
		return gpuprobe.BackendTypeOpenGL
	default:
		return gpuprobe.BackendTypeUndefined
	}
}
