//go:build amd64

package proc

import "testing"

const cpuinfoFixture = `processor	: 0
vendor_id	: GenuineIntel
cpu family	: 6
model		: 142
model name	: Intel(R) Core(TM) i7-8550U CPU @ 1.80GHz
stepping	: 10
microcode	: 0xf4
cpu MHz		: 1992.002
cache size	: 8192 KB
physical id	: 0
siblings	: 8
core id		: 0
cpu cores	: 4
apicid		: 0
initial apicid	: 0
fpu		: yes
fpu_exception	: yes
cpuid level	: 22
wp		: yes
flags		: fpu vme de pse tsc msr
bugs		: spectre_v1 spectre_v2
bogomips	: 3984.00
clflush size	: 64
cache_alignment	: 64
address sizes	: 39 bits physical, 48 bits virtual
power management:

processor	: 1
vendor_id	: GenuineIntel
model name	: Intel(R) Core(TM) i7-8550U CPU @ 1.80GHz
`

func TestParseCPUInfo(t *testing.T) {
	t.Parallel()

	procs := ParseCPUInfo(cpuinfoFixture)
	if len(procs.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(procs.Entries))
	}

	c := procs.Entries[0]
	if c.Processor == nil || *c.Processor != 0 {
		t.Errorf("processor = %v", c.Processor)
	}
	if c.VendorID == nil || *c.VendorID != "GenuineIntel" {
		t.Errorf("vendor_id = %v", c.VendorID)
	}
	if c.CPUFamily == nil || *c.CPUFamily != 6 {
		t.Errorf("cpu family = %v", c.CPUFamily)
	}
	if c.CPUMHz == nil || *c.CPUMHz != 1992.002 {
		t.Errorf("cpu MHz = %v", c.CPUMHz)
	}
	if c.CacheSize == nil || c.CacheSize.String() != "8192.00 KB" {
		t.Errorf("cache size = %v", c.CacheSize)
	}
	if c.FPU == nil || !*c.FPU {
		t.Errorf("fpu = %v", c.FPU)
	}
	if len(c.Flags) != 6 || c.Flags[5] != "msr" {
		t.Errorf("flags = %v", c.Flags)
	}
	if len(c.Bugs) != 2 || c.Bugs[0] != "spectre_v1" {
		t.Errorf("bugs = %v", c.Bugs)
	}
	if c.AddressSizes == nil || *c.AddressSizes != "39 bits physical, 48 bits virtual" {
		t.Errorf("address sizes = %v", c.AddressSizes)
	}

	second := procs.Entries[1]
	if second.Processor == nil || *second.Processor != 1 {
		t.Errorf("second processor = %v", second.Processor)
	}
	if second.CPUFamily != nil {
		t.Errorf("second entry should not inherit cpu family, got %v", *second.CPUFamily)
	}
}
