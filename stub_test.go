package gpuprobe

import (
	"sync/atomic"
	"time"

	"github.com/gogpu/gputypes"
)

// stubAdapter is a configurable in-memory adapter for tests.
// Release counts atomically so abandoned-request tests can observe
// releases from the drain goroutine.
type stubAdapter struct {
	limits   gputypes.Limits
	limitsOK bool
	features []gputypes.Features
	info     AdapterInfo
	released atomic.Int32
}

func (a *stubAdapter) Limits() (gputypes.Limits, bool) { return a.limits, a.limitsOK }
func (a *stubAdapter) Features() []gputypes.Features   { return a.features }
func (a *stubAdapter) Info() AdapterInfo               { return a.info }
func (a *stubAdapter) Release()                        { a.released.Add(1) }

// stubInstance delivers one scripted callback outcome, either
// synchronously or from another goroutine after a delay.
type stubInstance struct {
	status  RequestStatus
	adapter *stubAdapter
	message string

	async bool
	delay time.Duration
	never bool // never fire the callback

	gotOpts  *gputypes.RequestAdapterOptions
	fired    atomic.Bool
	released atomic.Int32
}

func (i *stubInstance) RequestAdapter(opts *gputypes.RequestAdapterOptions, cb RequestAdapterCallback) {
	i.gotOpts = opts
	if i.never {
		return
	}
	deliver := func() {
		var a Adapter
		if i.status == StatusSuccess && i.adapter != nil {
			a = i.adapter
		}
		i.fired.Store(true)
		cb(i.status, a, i.message)
	}
	if i.async {
		go func() {
			time.Sleep(i.delay)
			deliver()
		}()
		return
	}
	deliver()
}

func (i *stubInstance) Release() { i.released.Add(1) }

// stubBackend hands out a scripted instance.
type stubBackend struct {
	name      string
	inst      *stubInstance
	createErr error
}

func (b *stubBackend) Name() string { return b.name }

func (b *stubBackend) CreateInstance() (Instance, error) {
	if b.createErr != nil {
		return nil, b.createErr
	}
	return b.inst, nil
}

// defaultStubAdapter returns an adapter with recognizable capabilities.
func defaultStubAdapter() *stubAdapter {
	return &stubAdapter{
		limits: gputypes.Limits{
			MaxTextureDimension1D: 8192,
			MaxTextureDimension2D: 8192,
			MaxTextureDimension3D: 2048,
			MaxTextureArrayLayers: 256,
		},
		limitsOK: true,
		features: []gputypes.Features{0x1, 0x2A},
		info: AdapterInfo{
			VendorID:     0x10DE,
			Vendor:       "nvidia",
			Architecture: "ada-lovelace",
			DeviceID:     0x2684,
			Device:       "Stub GPU 9000",
			Description:  "stub driver 1.0",
			AdapterType:  AdapterTypeDiscreteGPU,
			BackendType:  BackendTypeVulkan,
		},
	}
}
