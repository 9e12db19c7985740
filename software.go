package gpuprobe

import (
	"github.com/gogpu/gputypes"
)

// SoftwareBackend is a CPU-based reference backend.
// It reports the WebGPU default limits and no optional features, keeping
// the probe usable on machines with no GPU stack at all. It is always
// registered and sits last in the selection priority.
type SoftwareBackend struct{}

// init registers the software backend on package import.
func init() {
	Register(BackendSoftware, func() ProbeBackend {
		return &SoftwareBackend{}
	})
}

// NewSoftwareBackend creates a new software probe backend.
func NewSoftwareBackend() *SoftwareBackend {
	return &SoftwareBackend{}
}

// Name returns the backend identifier.
func (b *SoftwareBackend) Name() string {
	return BackendSoftware
}

// CreateInstance creates the software instance. It never fails.
func (b *SoftwareBackend) CreateInstance() (Instance, error) {
	return &softwareInstance{}, nil
}

// softwareInstance resolves adapter requests in-process.
type softwareInstance struct{}

// RequestAdapter always succeeds with the reference adapter.
// The callback runs synchronously before RequestAdapter returns.
func (i *softwareInstance) RequestAdapter(_ *gputypes.RequestAdapterOptions, cb RequestAdapterCallback) {
	cb(StatusSuccess, &softwareAdapter{}, "")
}

// Release is a no-op; the software instance holds no resources.
func (i *softwareInstance) Release() {}

// softwareAdapter is the CPU reference adapter.
type softwareAdapter struct{}

// Limits reports the WebGPU default limits.
func (a *softwareAdapter) Limits() (gputypes.Limits, bool) {
	return gputypes.DefaultLimits(), true
}

// Features reports no optional features.
func (a *softwareAdapter) Features() []gputypes.Features {
	return nil
}

// Info identifies the reference adapter.
func (a *softwareAdapter) Info() AdapterInfo {
	return AdapterInfo{
		Vendor:      "gogpu",
		Device:      "gpuprobe reference adapter",
		Description: "pure Go CPU reference",
		AdapterType: AdapterTypeCPU,
		BackendType: BackendTypeNull,
	}
}

// Release is a no-op; the software adapter holds no resources.
func (a *softwareAdapter) Release() {}
