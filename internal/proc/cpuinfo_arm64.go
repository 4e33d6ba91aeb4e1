//go:build arm64

package proc

import (
	"strings"

	"ferrix-agent/internal/model"
)

func applyCPUInfoField(cpu *model.CPU, key, val string) {
	switch key {
	case "processor":
		cpu.Processor = uint32Ptr(val)
	case "BogoMIPS":
		cpu.BogoMIPS = floatPtr(val)
	case "Features":
		cpu.Flags = strings.Fields(val)
	case "CPU implementer":
		cpu.CPUImplementer = strPtr(val)
	case "CPU architecture":
		cpu.CPUArchitecture = uint32Ptr(val)
	case "CPU variant":
		cpu.CPUVariant = strPtr(val)
	case "CPU part":
		cpu.CPUPart = strPtr(val)
	case "CPU revision":
		cpu.CPURevision = uint32Ptr(val)
	}
}
