//go:build rust

package rust

import (
	"fmt"

	"github.com/go-webgpu/webgpu/wgpu"
	"github.com/gogpu/gpuprobe"
	"github.com/gogpu/gputypes"
)

// init registers the rust backend on package import.
func init() {
	gpuprobe.Register(gpuprobe.BackendRust, func() gpuprobe.ProbeBackend {
		return &Backend{}
	})
}

// Backend is a probe backend using wgpu-native via go-webgpu FFI bindings.
type Backend struct{}

// NewBackend creates a new wgpu-native probe backend.
func NewBackend() *Backend {
	return &Backend{}
}

// Name returns the backend identifier.
func (b *Backend) Name() string {
	return gpuprobe.BackendRust
}

// CreateInstance loads wgpu-native and creates an instance.
func (b *Backend) CreateInstance() (gpuprobe.Instance, error) {
	if err := wgpu.Init(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLibraryNotFound, err)
	}

	inst, err := wgpu.CreateInstance(nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoInstance, err)
	}
	return &rustInstance{inst: inst}, nil
}

// rustInstance wraps a go-webgpu instance.
type rustInstance struct {
	inst *wgpu.Instance
}

// RequestAdapter issues the adapter request. The binding resolves the
// request before returning, so the callback runs synchronously.
func (i *rustInstance) RequestAdapter(opts *gputypes.RequestAdapterOptions, cb gpuprobe.RequestAdapterCallback) {
	var pref gputypes.PowerPreference
	if opts != nil {
		pref = opts.PowerPreference
	}
	adapter, err := i.inst.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference: pref,
	})
	if err != nil {
		cb(gpuprobe.StatusUnavailable, nil, err.Error())
		return
	}
	cb(gpuprobe.StatusSuccess, &rustAdapter{adapter: adapter}, "")
}

// Release releases the instance handle.
func (i *rustInstance) Release() {
	if i.inst != nil {
		i.inst.Release()
		i.inst = nil
	}
}

// rustAdapter wraps a go-webgpu adapter.
type rustAdapter struct {
	adapter *wgpu.Adapter
}

// Limits queries the adapter limits. Reports false when the query fails
// so the caller can skip the section.
func (a *rustAdapter) Limits() (gputypes.Limits, bool) {
	supported, err := a.adapter.GetLimits()
	if err != nil {
		gpuprobe.Logger().Warn("rust: adapter limits unavailable", "err", err)
		return gputypes.Limits{}, false
	}
	// SupportedLimits nests the actual values one level down.
	return gputypes.Limits{
		MaxTextureDimension1D: supported.Limits.MaxTextureDimension1D,
		MaxTextureDimension2D: supported.Limits.MaxTextureDimension2D,
		MaxTextureDimension3D: supported.Limits.MaxTextureDimension3D,
		MaxTextureArrayLayers: supported.Limits.MaxTextureArrayLayers,
		MaxBufferSize:         supported.Limits.MaxBufferSize,
	}, true
}

// Features returns the supported feature codes as reported by wgpu-native.
func (a *rustAdapter) Features() []gputypes.Features {
	names := a.adapter.EnumerateFeatures()
	features := make([]gputypes.Features, 0, len(names))
	for _, n := range names {
		features = append(features, gputypes.Features(n))
	}
	return features
}

// Info maps the wgpu-native adapter info onto the probe record.
func (a *rustAdapter) Info() gpuprobe.AdapterInfo {
	info, err := a.adapter.GetInfo()
	if err != nil {
		gpuprobe.Logger().Warn("rust: adapter info unavailable", "err", err)
		return gpuprobe.AdapterInfo{
			AdapterType: gpuprobe.AdapterTypeUnknown,
			BackendType: gpuprobe.BackendTypeUndefined,
		}
	}

	return gpuprobe.AdapterInfo{
		VendorID:     info.VendorID,
		Vendor:       info.Vendor,
		Architecture: info.Architecture,
		DeviceID:     info.DeviceID,
		Device:       info.Device,
		Description:  info.Description,
		AdapterType:  adapterType(info.AdapterType),
		BackendType:  backendType(info.BackendType),
	}
}

// Release releases the adapter handle.
func (a *rustAdapter) Release() {
	if a.adapter != nil {
		a.adapter.Release()
		a.adapter = nil
	}
}

// adapterType converts the binding's adapter type to a probe code.
func adapterType(t wgpu.AdapterType) gpuprobe.AdapterType {
	switch t {
	case wgpu.AdapterTypeDiscreteGPU:
		return gpuprobe.AdapterTypeDiscreteGPU
	case wgpu.AdapterTypeIntegratedGPU:
		return gpuprobe.AdapterTypeIntegratedGPU
	case wgpu.AdapterTypeCPU:
		return gpuprobe.AdapterTypeCPU
	default:
		return gpuprobe.AdapterTypeUnknown
	}
}

// backendType converts the binding's backend type to a probe code.
func backendType(t wgpu.BackendType) gpuprobe.BackendType {
	switch t {
	case wgpu.BackendTypeWebGPU:
		return gpuprobe.BackendTypeWebGPU
	case wgpu.BackendTypeD3D11:
		return gpuprobe.BackendTypeD3D11
	case wgpu.BackendTypeD3D12:
		return gpuprobe.BackendTypeD3D12
	case wgpu.BackendTypeMetal:
		return gpuprobe.BackendTypeMetal
	case wgpu.BackendTypeVulkan:
		return gpuprobe.BackendTypeVulkan
	case wgpu.BackendTypeOpenGL:
		return gpuprobe.BackendTypeOpenGL
	case wgpu.BackendTypeOpenGLES:
		return gpuprobe.BackendTypeOpenGLES
	case wgpu.BackendTypeNull:
		return gpuprobe.BackendTypeNull
	default:
		return gpuprobe.BackendTypeUndefined
	}
}
