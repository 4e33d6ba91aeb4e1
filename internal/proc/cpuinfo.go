package proc

import (
	"fmt"
	"os"
	"strings"

	"ferrix-agent/internal/model"
)

const cpuinfoPath = "/proc/cpuinfo"

// ReadCPUInfo reads and parses /proc/cpuinfo.
func ReadCPUInfo() (model.Processors, error) {
	data, err := os.ReadFile(cpuinfoPath)
	if err != nil {
		return model.Processors{}, fmt.Errorf("read %s: %w", cpuinfoPath, err)
	}
	return ParseCPUInfo(string(data)), nil
}

// ParseCPUInfo splits the file into blank-line separated blocks, one
// per core/thread, and decodes "key : value" lines. The recognized
// key set is architecture-specific (see the cpuinfo_* files); unknown
// keys are skipped, so a new kernel never breaks the parse.
func ParseCPUInfo(text string) model.Processors {
	var procs model.Processors
	for _, block := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(block) == "" {
			continue
		}
		var cpu model.CPU
		for _, line := range strings.Split(block, "\n") {
			key, val, ok := strings.Cut(line, ":")
			if !ok {
				continue
			}
			applyCPUInfoField(&cpu, strings.TrimSpace(key), strings.TrimSpace(val))
		}
		procs.Entries = append(procs.Entries, cpu)
	}
	return procs
}

// cpuinfoBool decodes the yes/ok flag style of /proc/cpuinfo.
func cpuinfoBool(s string) bool {
	return s == "yes" || s == "ok"
}
