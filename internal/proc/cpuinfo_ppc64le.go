//go:build ppc64le

package proc

import (
	"strings"

	"ferrix-agent/internal/model"
)

func applyCPUInfoField(cpu *model.CPU, key, val string) {
	switch key {
	case "processor":
		cpu.Processor = uint32Ptr(val)
	case "cpu":
		cpu.CPUName = strPtr(val)
	case "clock":
		// "2061.000000MHz"
		cpu.ClockMHz = floatPtr(strings.TrimSuffix(val, "MHz"))
	case "revision":
		cpu.Revision = strPtr(val)
	case "timebase":
		cpu.Timebase = uint64Ptr(val)
	case "platform":
		cpu.Platform = strPtr(val)
	case "machine":
		cpu.Machine = strPtr(val)
	case "model":
		cpu.ModelPPC = strPtr(val)
	}
}
