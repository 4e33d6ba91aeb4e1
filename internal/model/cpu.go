package model

// Processors holds one entry per core/thread block of /proc/cpuinfo.
type Processors struct {
	Entries []CPU `json:"entries" xml:"entries>cpu"`
}

// CPU mirrors a single /proc/cpuinfo block. Every field is optional:
// the key set differs per architecture and per kernel build, and a
// missing key simply leaves the field nil.
type CPU struct {
	Processor *uint32 `json:"processor,omitempty" xml:"processor,omitempty"`

	// x86 / x86_64
	VendorID        *string  `json:"vendor_id,omitempty" xml:"vendor_id,omitempty"`
	CPUFamily       *uint32  `json:"cpu_family,omitempty" xml:"cpu_family,omitempty"`
	Model           *uint32  `json:"model,omitempty" xml:"model,omitempty"`
	ModelName       *string  `json:"model_name,omitempty" xml:"model_name,omitempty"`
	Stepping        *uint32  `json:"stepping,omitempty" xml:"stepping,omitempty"`
	Microcode       *string  `json:"microcode,omitempty" xml:"microcode,omitempty"`
	CPUMHz          *float64 `json:"cpu_mhz,omitempty" xml:"cpu_mhz,omitempty"`
	CacheSize       *Size    `json:"cache_size,omitempty" xml:"cache_size,omitempty"`
	PhysicalID      *uint32  `json:"physical_id,omitempty" xml:"physical_id,omitempty"`
	Siblings        *uint32  `json:"siblings,omitempty" xml:"siblings,omitempty"`
	CoreID          *uint32  `json:"core_id,omitempty" xml:"core_id,omitempty"`
	CPUCores        *uint32  `json:"cpu_cores,omitempty" xml:"cpu_cores,omitempty"`
	APICID          *uint32  `json:"apicid,omitempty" xml:"apicid,omitempty"`
	InitialAPICID   *uint32  `json:"initial_apicid,omitempty" xml:"initial_apicid,omitempty"`
	FPU             *bool    `json:"fpu,omitempty" xml:"fpu,omitempty"`
	FPUException    *bool    `json:"fpu_exception,omitempty" xml:"fpu_exception,omitempty"`
	CPUIDLevel      *uint32  `json:"cpuid_level,omitempty" xml:"cpuid_level,omitempty"`
	WP              *bool    `json:"wp,omitempty" xml:"wp,omitempty"`
	Flags           []string `json:"flags,omitempty" xml:"flags>flag,omitempty"`
	Bugs            []string `json:"bugs,omitempty" xml:"bugs>bug,omitempty"`
	BogoMIPS        *float64 `json:"bogomips,omitempty" xml:"bogomips,omitempty"`
	ClflushSize     *uint32  `json:"clflush_size,omitempty" xml:"clflush_size,omitempty"`
	CacheAlignment  *uint32  `json:"cache_alignment,omitempty" xml:"cache_alignment,omitempty"`
	AddressSizes    *string  `json:"address_sizes,omitempty" xml:"address_sizes,omitempty"`
	PowerManagement *string  `json:"power_management,omitempty" xml:"power_management,omitempty"`

	// AArch64
	CPUImplementer  *string `json:"cpu_implementer,omitempty" xml:"cpu_implementer,omitempty"`
	CPUArchitecture *uint32 `json:"cpu_architecture,omitempty" xml:"cpu_architecture,omitempty"`
	CPUVariant      *string `json:"cpu_variant,omitempty" xml:"cpu_variant,omitempty"`
	CPUPart         *string `json:"cpu_part,omitempty" xml:"cpu_part,omitempty"`
	CPURevision     *uint32 `json:"cpu_revision,omitempty" xml:"cpu_revision,omitempty"`

	// ppc64le
	CPUName  *string  `json:"cpu,omitempty" xml:"cpu,omitempty"`
	ClockMHz *float64 `json:"clock,omitempty" xml:"clock,omitempty"`
	Revision *string  `json:"revision,omitempty" xml:"revision,omitempty"`
	Timebase *uint64  `json:"timebase,omitempty" xml:"timebase,omitempty"`
	Platform *string  `json:"platform,omitempty" xml:"platform,omitempty"`
	Machine  *string  `json:"machine,omitempty" xml:"machine,omitempty"`
	ModelPPC *string  `json:"model_ppc,omitempty" xml:"model_ppc,omitempty"`
}
