//go:build !amd64 && !arm64 && !ppc64le

package proc

import (
	"strings"

	"ferrix-agent/internal/model"
)

// Fallback for architectures without a dedicated key set: only the
// keys shared across /proc/cpuinfo flavors are decoded.
func applyCPUInfoField(cpu *model.CPU, key, val string) {
	switch key {
	case "processor":
		cpu.Processor = uint32Ptr(val)
	case "model name":
		cpu.ModelName = strPtr(val)
	case "flags", "Features":
		cpu.Flags = strings.Fields(val)
	case "bogomips", "BogoMIPS":
		cpu.BogoMIPS = floatPtr(val)
	}
}
