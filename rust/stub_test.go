//go:build !rust

package rust

import (
	"testing"

	"github.com/gogpu/gpuprobe"
)

func TestStubRegistersNilFactory(t *testing.T) {
	// Without the rust tag, the name must still be registered so that
	// lookups degrade gracefully instead of falling through to a
	// different backend name.
	if !gpuprobe.IsRegistered(gpuprobe.BackendRust) {
		t.Error("rust backend name should be registered even without the tag")
	}
	if b := gpuprobe.Get(gpuprobe.BackendRust); b != nil {
		t.Errorf("Get(BackendRust) = %v, want nil without the rust tag", b)
	}
}
