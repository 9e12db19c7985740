package gpuprobe

import (
	"fmt"
	"io"
)

// Inspect writes a human-readable capability report for the adapter to w.
//
// The report has three sections: limits, features, and properties.
// When the adapter cannot report limits, that section is omitted and the
// remaining sections are still printed. Feature codes and the adapter
// and backend type codes are printed in hexadecimal to ease comparison
// with webgpu.h literals.
func Inspect(w io.Writer, a Adapter) {
	if limits, ok := a.Limits(); ok {
		fmt.Fprintln(w, "Adapter limits:")
		fmt.Fprintf(w, " - maxTextureDimension1D: %d\n", limits.MaxTextureDimension1D)
		fmt.Fprintf(w, " - maxTextureDimension2D: %d\n", limits.MaxTextureDimension2D)
		fmt.Fprintf(w, " - maxTextureDimension3D: %d\n", limits.MaxTextureDimension3D)
		fmt.Fprintf(w, " - maxTextureArrayLayers: %d\n", limits.MaxTextureArrayLayers)
	}

	fmt.Fprintln(w, "Adapter features:")
	for _, f := range a.Features() {
		fmt.Fprintf(w, " - %#x\n", uint64(f))
	}

	info := a.Info()
	fmt.Fprintln(w, "Adapter properties:")
	fmt.Fprintf(w, " - vendorID: %d\n", info.VendorID)
	fmt.Fprintf(w, " - vendorName: %s\n", info.Vendor)
	fmt.Fprintf(w, " - architecture: %s\n", info.Architecture)
	fmt.Fprintf(w, " - deviceID: %d\n", info.DeviceID)
	fmt.Fprintf(w, " - name: %s\n", info.Device)
	fmt.Fprintf(w, " - driverDescription: %s\n", info.Description)
	fmt.Fprintf(w, " - adapterType: %#x\n", uint32(info.AdapterType))
	fmt.Fprintf(w, " - backendType: %#x\n", uint32(info.BackendType))
}
