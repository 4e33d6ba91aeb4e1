package proc

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"ferrix-agent/internal/model"
)

const modulesPath = "/proc/modules"

// ReadKernelModules reads and parses /proc/modules.
func ReadKernelModules() (model.KernelModules, error) {
	f, err := os.Open(modulesPath)
	if err != nil {
		return model.KernelModules{}, fmt.Errorf("open %s: %w", modulesPath, err)
	}
	defer f.Close()
	return ParseKernelModules(f)
}

// ParseKernelModules decodes the six-column module rows. The fourth
// column is a comma list of dependent modules, printed as "-" when
// empty.
func ParseKernelModules(r io.Reader) (model.KernelModules, error) {
	var mods model.KernelModules
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 6 {
			return model.KernelModules{}, fmt.Errorf("malformed modules row %q", sc.Text())
		}
		size, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return model.KernelModules{}, fmt.Errorf("module size %q: %w", fields[1], err)
		}
		instances, err := strconv.ParseUint(fields[2], 10, 64)
		if err != nil {
			return model.KernelModules{}, fmt.Errorf("module refcount %q: %w", fields[2], err)
		}
		var deps []string
		if fields[3] != "-" {
			for _, d := range strings.Split(fields[3], ",") {
				if d != "" {
					deps = append(deps, d)
				}
			}
		}
		mods.Modules = append(mods.Modules, model.KernelModule{
			Name:         fields[0],
			Size:         size,
			Instances:    instances,
			Dependencies: deps,
			State:        fields[4],
			Address:      fields[5],
		})
	}
	if err := sc.Err(); err != nil {
		return model.KernelModules{}, fmt.Errorf("scan modules: %w", err)
	}
	return mods, nil
}
