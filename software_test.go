package gpuprobe

import (
	"context"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestSoftwareBackendRegistered(t *testing.T) {
	if !IsRegistered(BackendSoftware) {
		t.Fatal("software backend should be registered on package import")
	}
	b := Get(BackendSoftware)
	if b == nil {
		t.Fatal("Get(BackendSoftware) returned nil")
	}
	if b.Name() != BackendSoftware {
		t.Errorf("Name() = %q, want %q", b.Name(), BackendSoftware)
	}
}

func TestSoftwareAdapterRequest(t *testing.T) {
	b := NewSoftwareBackend()
	inst, err := b.CreateInstance()
	if err != nil {
		t.Fatalf("CreateInstance() error = %v", err)
	}
	defer inst.Release()

	adapter, err := RequestAdapter(context.Background(), inst, nil)
	if err != nil {
		t.Fatalf("RequestAdapter() error = %v", err)
	}
	defer adapter.Release()

	limits, ok := adapter.Limits()
	if !ok {
		t.Fatal("software adapter should report limits")
	}
	want := gputypes.DefaultLimits()
	if limits.MaxTextureDimension2D != want.MaxTextureDimension2D {
		t.Errorf("MaxTextureDimension2D = %d, want default %d",
			limits.MaxTextureDimension2D, want.MaxTextureDimension2D)
	}

	if feats := adapter.Features(); len(feats) != 0 {
		t.Errorf("software adapter reported %d features, want 0", len(feats))
	}

	info := adapter.Info()
	if info.AdapterType != AdapterTypeCPU {
		t.Errorf("AdapterType = %v, want CPU", info.AdapterType)
	}
	if info.BackendType != BackendTypeNull {
		t.Errorf("BackendType = %v, want Null", info.BackendType)
	}
}
