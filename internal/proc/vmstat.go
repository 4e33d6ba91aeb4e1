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

const vmstatPath = "/proc/vmstat"

// ReadVMStat reads and parses /proc/vmstat.
func ReadVMStat() (model.VMStat, error) {
	f, err := os.Open(vmstatPath)
	if err != nil {
		return model.VMStat{}, fmt.Errorf("open %s: %w", vmstatPath, err)
	}
	defer f.Close()
	return ParseVMStat(f)
}

// ParseVMStat decodes the "key value" counter rows. Every counter the
// kernel may print has a slot in model.VMStat; counters the running
// kernel does not export stay nil.
func ParseVMStat(r io.Reader) (model.VMStat, error) {
	var vm model.VMStat
	counters := vm.Counters()

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) != 2 {
			continue
		}
		dst, ok := counters[fields[0]]
		if !ok {
			continue
		}
		v, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			continue
		}
		*dst = &v
	}
	if err := sc.Err(); err != nil {
		return model.VMStat{}, fmt.Errorf("scan vmstat: %w", err)
	}
	return vm, nil
}
