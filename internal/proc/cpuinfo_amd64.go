//go:build amd64

package proc

import (
	"strings"

	"ferrix-agent/internal/model"
)

func applyCPUInfoField(cpu *model.CPU, key, val string) {
	switch key {
	case "processor":
		cpu.Processor = uint32Ptr(val)
	case "vendor_id":
		cpu.VendorID = strPtr(val)
	case "cpu family":
		cpu.CPUFamily = uint32Ptr(val)
	case "model":
		cpu.Model = uint32Ptr(val)
	case "model name":
		cpu.ModelName = strPtr(val)
	case "stepping":
		cpu.Stepping = uint32Ptr(val)
	case "microcode":
		cpu.Microcode = strPtr(val)
	case "cpu MHz":
		cpu.CPUMHz = floatPtr(val)
	case "cache size":
		if size := model.ParseSize(val); !size.IsNone() {
			cpu.CacheSize = &size
		}
	case "physical id":
		cpu.PhysicalID = uint32Ptr(val)
	case "siblings":
		cpu.Siblings = uint32Ptr(val)
	case "core id":
		cpu.CoreID = uint32Ptr(val)
	case "cpu cores":
		cpu.CPUCores = uint32Ptr(val)
	case "apicid":
		cpu.APICID = uint32Ptr(val)
	case "initial apicid":
		cpu.InitialAPICID = uint32Ptr(val)
	case "fpu":
		cpu.FPU = boolPtr(cpuinfoBool(val))
	case "fpu_exception":
		cpu.FPUException = boolPtr(cpuinfoBool(val))
	case "cpuid level":
		cpu.CPUIDLevel = uint32Ptr(val)
	case "wp":
		cpu.WP = boolPtr(cpuinfoBool(val))
	case "flags":
		cpu.Flags = strings.Fields(val)
	case "bugs":
		cpu.Bugs = strings.Fields(val)
	case "bogomips":
		cpu.BogoMIPS = floatPtr(val)
	case "clflush size":
		cpu.ClflushSize = uint32Ptr(val)
	case "cache_alignment":
		cpu.CacheAlignment = uint32Ptr(val)
	case "address sizes":
		cpu.AddressSizes = strPtr(val)
	case "power management":
		cpu.PowerManagement = strPtr(val)
	}
}
