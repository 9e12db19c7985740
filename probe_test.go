package gpuprobe

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func registerStub(t *testing.T, b *stubBackend) {
	t.Helper()
	Register(b.name, func() ProbeBackend { return b })
	t.Cleanup(func() { Unregister(b.name) })
}

func TestRunFullSequence(t *testing.T) {
	adapter := defaultStubAdapter()
	inst := &stubInstance{status: StatusSuccess, adapter: adapter}
	registerStub(t, &stubBackend{name: "stub", inst: inst})

	var buf bytes.Buffer
	err := Run(WithWriter(&buf), WithBackend("stub"))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if got := inst.released.Load(); got != 1 {
		t.Errorf("instance released %d times, want 1", got)
	}
	if got := adapter.released.Load(); got != 1 {
		t.Errorf("adapter released %d times, want 1", got)
	}

	out := buf.String()
	for _, section := range []string{"Adapter limits:", "Adapter features:", "Adapter properties:"} {
		if !strings.Contains(out, section) {
			t.Errorf("report missing section %q", section)
		}
	}
}

func TestRunBackendNotRegistered(t *testing.T) {
	err := Run(WithBackend("does-not-exist"))
	if !errors.Is(err, ErrBackendNotAvailable) {
		t.Errorf("Run() error = %v, want ErrBackendNotAvailable", err)
	}
}

func TestRunInstanceCreationFails(t *testing.T) {
	registerStub(t, &stubBackend{
		name:      "broken",
		createErr: errors.New("boom"),
	})

	err := Run(WithBackend("broken"))
	if !errors.Is(err, ErrNoInstance) {
		t.Errorf("Run() error = %v, want ErrNoInstance", err)
	}
}

func TestRunAdapterRequestFails(t *testing.T) {
	inst := &stubInstance{status: StatusError, message: "backend exploded"}
	registerStub(t, &stubBackend{name: "failing", inst: inst})

	var buf bytes.Buffer
	err := Run(WithWriter(&buf), WithBackend("failing"))
	if err != nil {
		t.Fatalf("Run() error = %v, adapter failure should not be fatal", err)
	}

	// The instance is released even when the request fails.
	if got := inst.released.Load(); got != 1 {
		t.Errorf("instance released %d times, want 1", got)
	}

	out := buf.String()
	if !strings.Contains(out, "Could not get WebGPU adapter") {
		t.Errorf("output should report the failed request, got:\n%s", out)
	}
	if strings.Contains(out, "Adapter properties:") {
		t.Error("inspection must be skipped when no adapter was obtained")
	}
}

func TestRunTimeout(t *testing.T) {
	inst := &stubInstance{never: true}
	registerStub(t, &stubBackend{name: "hanging", inst: inst})

	var buf bytes.Buffer
	err := Run(WithWriter(&buf), WithBackend("hanging"), WithTimeout(10*time.Millisecond))
	if err != nil {
		t.Fatalf("Run() error = %v, timeout should degrade like a failed request", err)
	}
	if got := inst.released.Load(); got != 1 {
		t.Errorf("instance released %d times, want 1", got)
	}
	if !strings.Contains(buf.String(), "Could not get WebGPU adapter") {
		t.Errorf("output should report the timed-out request, got:\n%s", buf.String())
	}
}

func TestRunDefaultFallsBackToSoftware(t *testing.T) {
	// Only the software backend is registered in this test binary,
	// so priority selection must land on it.
	var buf bytes.Buffer
	if err := Run(WithWriter(&buf)); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(buf.String(), "gpuprobe reference adapter") {
		t.Errorf("default run should use the software adapter, got:\n%s", buf.String())
	}
}
