// Command gpuprobe prints the limits, features, and identification of
// the GPU adapter visible through WebGPU.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/gpuprobe"
	"github.com/gogpu/gputypes"

	// Probe backends register themselves on import.
	_ "github.com/gogpu/gpuprobe/native"
	_ "github.com/gogpu/gpuprobe/rust"
)

func main() {
	var (
		backend = flag.String("backend", "", "backend to probe: "+strings.Join(gpuprobe.Available(), ", ")+" (default: best available)")
		timeout = flag.Duration("timeout", 0, "bound the adapter request (0 waits forever)")
		power   = flag.String("power", "", "adapter power preference: high or low")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	gpuprobe.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	adapterOpts := &gputypes.RequestAdapterOptions{}
	switch *power {
	case "":
	case "high":
		adapterOpts.PowerPreference = gputypes.PowerPreferenceHighPerformance
	case "low":
		adapterOpts.PowerPreference = gputypes.PowerPreferenceLowPower
	default:
		log.Fatalf("unknown power preference %q (want high or low)", *power)
	}

	opts := []gpuprobe.Option{
		gpuprobe.WithWriter(os.Stdout),
		gpuprobe.WithAdapterOptions(adapterOpts),
		gpuprobe.WithTimeout(*timeout),
	}
	if *backend != "" {
		opts = append(opts, gpuprobe.WithBackend(*backend))
	}

	if err := gpuprobe.Run(opts...); err != nil {
		log.Fatalf("gpuprobe: %v", err)
	}
}
