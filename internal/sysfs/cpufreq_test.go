package sysfs

import (
	"os"
	"path/filepath"
	"testing"
)

func writeAttr(t *testing.T, dir, name, value string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(value+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestReadCPUFreq(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeAttr(t, root, "boost", "1")

	p0 := filepath.Join(root, "policy0")
	if err := os.Mkdir(p0, 0o755); err != nil {
		t.Fatal(err)
	}
	writeAttr(t, p0, "cpuinfo_max_freq", "4000000")
	writeAttr(t, p0, "cpuinfo_min_freq", "400000")
	writeAttr(t, p0, "cpuinfo_transition_latency", "20000")
	writeAttr(t, p0, "scaling_cur_freq", "1992000")
	writeAttr(t, p0, "scaling_driver", "intel_pstate")
	writeAttr(t, p0, "scaling_governor", "powersave")
	writeAttr(t, p0, "scaling_available_governors", "performance powersave")
	writeAttr(t, p0, "scaling_available_frequencies", "4000000 2000000 400000")

	p1 := filepath.Join(root, "policy1")
	if err := os.Mkdir(p1, 0o755); err != nil {
		t.Fatal(err)
	}
	writeAttr(t, p1, "scaling_governor", "performance")

	freq, err := readCPUFreq(root)
	if err != nil {
		t.Fatalf("readCPUFreq: %v", err)
	}
	if freq.Boost == nil || !*freq.Boost {
		t.Errorf("boost = %v", freq.Boost)
	}
	if len(freq.Policies) != 2 {
		t.Fatalf("expected 2 policies, got %d", len(freq.Policies))
	}

	pol := freq.Policies[0]
	if pol.Name != "policy0" {
		t.Errorf("name = %q", pol.Name)
	}
	if pol.CPUInfoMaxFreq == nil || *pol.CPUInfoMaxFreq != 4000000 {
		t.Errorf("cpuinfo_max_freq = %v", pol.CPUInfoMaxFreq)
	}
	if pol.CPUInfoTransitionLatency == nil || *pol.CPUInfoTransitionLatency != 20000 {
		t.Errorf("transition latency = %v", pol.CPUInfoTransitionLatency)
	}
	if pol.ScalingDriver == nil || *pol.ScalingDriver != "intel_pstate" {
		t.Errorf("driver = %v", pol.ScalingDriver)
	}
	if len(pol.ScalingAvailableFrequencies) != 3 || pol.ScalingAvailableFrequencies[2] != 400000 {
		t.Errorf("frequencies = %v", pol.ScalingAvailableFrequencies)
	}
	if len(pol.ScalingAvailableGovernors) != 2 {
		t.Errorf("governors = %v", pol.ScalingAvailableGovernors)
	}

	spare := freq.Policies[1]
	if spare.CPUInfoMaxFreq != nil {
		t.Error("absent attribute should stay nil")
	}
	if spare.ScalingGovernor == nil || *spare.ScalingGovernor != "performance" {
		t.Errorf("policy1 governor = %v", spare.ScalingGovernor)
	}
}

func TestReadCPUFreqMissingRoot(t *testing.T) {
	t.Parallel()

	if _, err := readCPUFreq(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing cpufreq root")
	}
}
