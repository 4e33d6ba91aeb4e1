package sysfs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"ferrix-agent/internal/model"
)

const cpufreqRoot = "/sys/devices/system/cpu/cpufreq"

// ReadCPUFreq reads the cpufreq policy tree. A missing root directory
// is an error since it means the subsystem is absent altogether.
func ReadCPUFreq() (model.CPUFreq, error) {
	return readCPUFreq(cpufreqRoot)
}

func readCPUFreq(root string) (model.CPUFreq, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return model.CPUFreq{}, fmt.Errorf("read %s: %w", root, err)
	}

	var freq model.CPUFreq
	if s, err := readString(filepath.Join(root, "boost")); err == nil {
		b := s == "1"
		freq.Boost = &b
	}
	for _, e := range entries {
		if !e.IsDir() || !strings.HasPrefix(e.Name(), "policy") {
			continue
		}
		freq.Policies = append(freq.Policies, readPolicy(filepath.Join(root, e.Name()), e.Name()))
	}
	sort.Slice(freq.Policies, func(i, j int) bool {
		return freq.Policies[i].Name < freq.Policies[j].Name
	})
	return freq, nil
}

// readPolicy collects the attribute files of one policy directory.
// Attribute availability varies per driver, so every read is optional.
func readPolicy(dir, name string) model.Policy {
	p := model.Policy{
		Name:                     name,
		BIOSLimit:                readUint32(filepath.Join(dir, "bios_limit")),
		CPUInfoMaxFreq:           readUint32(filepath.Join(dir, "cpuinfo_max_freq")),
		CPUInfoMinFreq:           readUint32(filepath.Join(dir, "cpuinfo_min_freq")),
		CPUInfoTransitionLatency: readUint32(filepath.Join(dir, "cpuinfo_transition_latency")),
		ScalingCurFreq:           readUint32(filepath.Join(dir, "scaling_cur_freq")),
		ScalingDriver:            readStringPtr(filepath.Join(dir, "scaling_driver")),
		ScalingGovernor:          readStringPtr(filepath.Join(dir, "scaling_governor")),
		ScalingMaxFreq:           readUint32(filepath.Join(dir, "scaling_max_freq")),
		ScalingMinFreq:           readUint32(filepath.Join(dir, "scaling_min_freq")),
		ScalingSetspeed:          readStringPtr(filepath.Join(dir, "scaling_setspeed")),
	}
	if s, err := readString(filepath.Join(dir, "boost")); err == nil {
		b := s == "1"
		p.Boost = &b
	}
	if s, err := readString(filepath.Join(dir, "cpb")); err == nil {
		b := s == "1"
		p.CPB = &b
	}
	if s, err := readString(filepath.Join(dir, "scaling_available_frequencies")); err == nil {
		for _, f := range strings.Fields(s) {
			if v := parseUint32(f); v != nil {
				p.ScalingAvailableFrequencies = append(p.ScalingAvailableFrequencies, *v)
			}
		}
	}
	if s, err := readString(filepath.Join(dir, "scaling_available_governors")); err == nil {
		p.ScalingAvailableGovernors = strings.Fields(s)
	}
	return p
}
