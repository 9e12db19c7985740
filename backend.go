package gpuprobe

import (
	"github.com/gogpu/gputypes"
)

// Backend name constants.
const (
	// BackendSoftware is the name of the built-in CPU reference backend.
	BackendSoftware = "software"
	// BackendNative is the name of the Pure Go WebGPU backend (gogpu/wgpu).
	BackendNative = "native"
	// BackendRust is the name of the Rust WebGPU backend (go-webgpu/webgpu FFI).
	BackendRust = "rust"
)

// ProbeBackend is the interface for GPU probe backends.
// It abstracts the underlying WebGPU implementation, allowing the library
// to probe through multiple bindings (pure Go, wgpu-native FFI, software).
//
// Backends must be registered via Register() and are selected via
// Get() or Default().
type ProbeBackend interface {
	// Name returns the backend identifier (e.g., "native", "rust").
	Name() string

	// CreateInstance creates the root WebGPU instance.
	// Returns an error if the backend cannot initialize.
	CreateInstance() (Instance, error)
}

// RequestStatus is the outcome code delivered to a RequestAdapterCallback.
type RequestStatus uint32

// Request status codes, mirroring WGPURequestAdapterStatus.
const (
	StatusSuccess     RequestStatus = 1
	StatusUnavailable RequestStatus = 3
	StatusError       RequestStatus = 4
)

// String returns the status name for diagnostics.
func (s RequestStatus) String() string {
	switch s {
	case StatusSuccess:
		return "Success"
	case StatusUnavailable:
		return "Unavailable"
	case StatusError:
		return "Error"
	default:
		return "Unknown"
	}
}

// RequestAdapterCallback receives the outcome of an adapter request.
// It is invoked exactly once per request. The adapter is non-nil only
// when status is StatusSuccess. The message carries an optional
// implementation-provided diagnostic on failure.
type RequestAdapterCallback func(status RequestStatus, adapter Adapter, message string)

// Instance is the root handle of a WebGPU implementation.
// Its sole purpose here is to produce an adapter.
type Instance interface {
	// RequestAdapter issues one asynchronous adapter request.
	// The callback may run before RequestAdapter returns (synchronous
	// resolution) or later from another goroutine; callers must not
	// assume which. The callback fires exactly once.
	RequestAdapter(opts *gputypes.RequestAdapterOptions, cb RequestAdapterCallback)

	// Release releases the instance. Must be called exactly once,
	// after all use.
	Release()
}

// Adapter represents one concrete GPU backend/device choice.
// All methods are read-only capability queries.
type Adapter interface {
	// Limits returns the adapter's capability ceilings. The second
	// return value is false when the implementation cannot report
	// limits; callers treat that as a degraded (skipped) section,
	// not an error.
	Limits() (gputypes.Limits, bool)

	// Features returns the adapter's supported feature codes.
	// The returned slice is owned by the caller.
	Features() []gputypes.Features

	// Info returns the adapter identification record.
	Info() AdapterInfo

	// Release releases the adapter. Must be called exactly once,
	// after all use.
	Release()
}

// AdapterType classifies an adapter, mirroring WGPUAdapterType.
type AdapterType uint32

// Adapter type codes.
const (
	AdapterTypeDiscreteGPU   AdapterType = 1
	AdapterTypeIntegratedGPU AdapterType = 2
	AdapterTypeCPU           AdapterType = 3
	AdapterTypeUnknown       AdapterType = 4
)

// String returns the adapter type name.
func (t AdapterType) String() string {
	switch t {
	case AdapterTypeDiscreteGPU:
		return "DiscreteGPU"
	case AdapterTypeIntegratedGPU:
		return "IntegratedGPU"
	case AdapterTypeCPU:
		return "CPU"
	default:
		return "Unknown"
	}
}

// BackendType identifies the graphics API behind an adapter,
// mirroring WGPUBackendType.
type BackendType uint32

// Backend type codes.
const (
	BackendTypeUndefined BackendType = 0
	BackendTypeNull      BackendType = 1
	BackendTypeWebGPU    BackendType = 2
	BackendTypeD3D11     BackendType = 3
	BackendTypeD3D12     BackendType = 4
	BackendTypeMetal     BackendType = 5
	BackendTypeVulkan    BackendType = 6
	BackendTypeOpenGL    BackendType = 7
	BackendTypeOpenGLES  BackendType = 8
)

// String returns the backend type name.
func (t BackendType) String() string {
	switch t {
	case BackendTypeNull:
		return "Null"
	case BackendTypeWebGPU:
		return "WebGPU"
	case BackendTypeD3D11:
		return "D3D11"
	case BackendTypeD3D12:
		return "D3D12"
	case BackendTypeMetal:
		return "Metal"
	case BackendTypeVulkan:
		return "Vulkan"
	case BackendTypeOpenGL:
		return "OpenGL"
	case BackendTypeOpenGLES:
		return "OpenGLES"
	default:
		return "Unknown"
	}
}

// AdapterInfo contains identification for a selected adapter.
type AdapterInfo struct {
	// VendorID is the PCI vendor ID, or 0 when the backend does not
	// expose PCI identification.
	VendorID uint32
	// Vendor is the vendor name (e.g., "nvidia").
	Vendor string
	// Architecture is the GPU architecture family (e.g., "ada-lovelace").
	Architecture string
	// DeviceID is the PCI device ID, or 0 when unavailable.
	DeviceID uint32
	// Device is the adapter name (e.g., "NVIDIA GeForce RTX 3080").
	Device string
	// Description is the driver description string.
	Description string
	// AdapterType classifies the adapter (discrete, integrated, CPU).
	AdapterType AdapterType
	// BackendType is the graphics API in use (Vulkan, Metal, DX12).
	BackendType BackendType
}
