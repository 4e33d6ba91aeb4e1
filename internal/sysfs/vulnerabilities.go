package sysfs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"ferrix-agent/internal/model"
)

const vulnerabilitiesRoot = "/sys/devices/system/cpu/vulnerabilities"

// ReadVulnerabilities lists the CPU vulnerability mitigation files,
// sorted by name for stable output.
func ReadVulnerabilities() (model.Vulnerabilities, error) {
	return readVulnerabilities(vulnerabilitiesRoot)
}

func readVulnerabilities(root string) (model.Vulnerabilities, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return model.Vulnerabilities{}, fmt.Errorf("read %s: %w", root, err)
	}

	var vulns model.Vulnerabilities
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		status, err := readString(filepath.Join(root, e.Name()))
		if err != nil {
			return model.Vulnerabilities{}, err
		}
		vulns.Entries = append(vulns.Entries, model.Vulnerability{
			Name:   e.Name(),
			Status: status,
		})
	}
	sort.Slice(vulns.Entries, func(i, j int) bool {
		return vulns.Entries[i].Name < vulns.Entries[j].Name
	})
	return vulns, nil
}
