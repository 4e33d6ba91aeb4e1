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

const statPath = "/proc/stat"

// ReadStat reads and parses /proc/stat.
func ReadStat() (model.CPUStat, error) {
	f, err := os.Open(statPath)
	if err != nil {
		return model.CPUStat{}, fmt.Errorf("open %s: %w", statPath, err)
	}
	defer f.Close()
	return ParseStat(f)
}

// ParseStat decodes the /proc/stat format: one aggregate cpu line,
// one cpuN line per core, then single-value counters. The aggregate
// line is mandatory; unknown lines are ignored.
func ParseStat(r io.Reader) (model.CPUStat, error) {
	var (
		stat     model.CPUStat
		sawTotal bool
	)

	s := bufio.NewScanner(r)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		parts := strings.Fields(line)
		key := parts[0]
		switch {
		case key == "cpu":
			times, err := parseCPUTimes(parts[1:])
			if err != nil {
				return model.CPUStat{}, fmt.Errorf("aggregate cpu line %q: %w", line, err)
			}
			stat.Total = times
			sawTotal = true
		case strings.HasPrefix(key, "cpu"):
			times, err := parseCPUTimes(parts[1:])
			if err != nil {
				return model.CPUStat{}, fmt.Errorf("cpu line %q: %w", line, err)
			}
			stat.PerCore = append(stat.PerCore, times)
		case key == "ctxt" && len(parts) > 1:
			stat.ContextSwaps, _ = strconv.ParseUint(parts[1], 10, 64)
		case key == "btime" && len(parts) > 1:
			stat.BootTime, _ = strconv.ParseUint(parts[1], 10, 64)
		case key == "processes" && len(parts) > 1:
			stat.Processes, _ = strconv.ParseUint(parts[1], 10, 64)
		case key == "procs_running" && len(parts) > 1:
			stat.ProcsRunning, _ = strconv.ParseUint(parts[1], 10, 64)
		case key == "procs_blocked" && len(parts) > 1:
			stat.ProcsBlocked, _ = strconv.ParseUint(parts[1], 10, 64)
		}
	}
	if err := s.Err(); err != nil {
		return model.CPUStat{}, fmt.Errorf("scan %s: %w", statPath, err)
	}
	if !sawTotal {
		return model.CPUStat{}, fmt.Errorf("cpu aggregate line not found")
	}
	return stat, nil
}

func parseCPUTimes(fields []string) (model.CPUTimes, error) {
	if len(fields) < 8 {
		return model.CPUTimes{}, fmt.Errorf("want at least 8 counters, got %d", len(fields))
	}
	vals := make([]uint64, 0, 10)
	for _, f := range fields {
		v, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return model.CPUTimes{}, fmt.Errorf("parse counter %q: %w", f, err)
		}
		vals = append(vals, v)
		if len(vals) == 10 {
			break
		}
	}
	t := model.CPUTimes{
		User:    vals[0],
		Nice:    vals[1],
		System:  vals[2],
		Idle:    vals[3],
		IOWait:  vals[4],
		IRQ:     vals[5],
		SoftIRQ: vals[6],
		Steal:   vals[7],
	}
	if len(vals) > 8 {
		t.Guest = vals[8]
	}
	if len(vals) > 9 {
		t.GuestNice = vals[9]
	}
	return t, nil
}
