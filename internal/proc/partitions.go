package proc

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"

	"ferrix-agent/internal/model"
)

const (
	partitionsPath = "/proc/partitions"
	sysBlockRoot   = "/sys/block"
)

// ReadPartitions reads /proc/partitions and enriches each surviving
// row with /sys/block attributes and statfs results.
func ReadPartitions() (model.Partitions, error) {
	f, err := os.Open(partitionsPath)
	if err != nil {
		return model.Partitions{}, fmt.Errorf("open %s: %w", partitionsPath, err)
	}
	defer f.Close()

	parts, err := ParsePartitions(f)
	if err != nil {
		return model.Partitions{}, err
	}
	for i := range parts.Parts {
		p := &parts.Parts[i]
		p.DevInfo = readDeviceInfo(filepath.Join(sysBlockRoot, p.Name))
		if st, ok := statDevice("/dev/" + p.Name); ok {
			p.Statvfs = st
		}
	}
	return parts, nil
}

// ParsePartitions decodes the partition table. The header line is
// skipped, loop and ram devices are filtered out, and a malformed row
// fails the whole parse.
func ParsePartitions(r io.Reader) (model.Partitions, error) {
	var parts model.Partitions
	sc := bufio.NewScanner(r)
	first := true
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if first {
			first = false
			continue
		}
		if line == "" || skipPartition(line) {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return model.Partitions{}, fmt.Errorf("malformed partitions row %q", line)
		}
		major, err := parseUint32(fields[0])
		if err != nil {
			return model.Partitions{}, fmt.Errorf("partition major %q: %w", fields[0], err)
		}
		minor, err := parseUint32(fields[1])
		if err != nil {
			return model.Partitions{}, fmt.Errorf("partition minor %q: %w", fields[1], err)
		}
		blocks, err := strconv.ParseUint(fields[2], 10, 64)
		if err != nil {
			return model.Partitions{}, fmt.Errorf("partition blocks %q: %w", fields[2], err)
		}
		parts.Parts = append(parts.Parts, model.Partition{
			Major:  major,
			Minor:  minor,
			Blocks: blocks,
			Name:   fields[3],
		})
	}
	if err := sc.Err(); err != nil {
		return model.Partitions{}, fmt.Errorf("scan partitions: %w", err)
	}
	return parts, nil
}

// skipPartition drops the "major minor ..." header echo and virtual
// loop/ram devices.
func skipPartition(line string) bool {
	if strings.HasPrefix(line, "m") {
		return true
	}
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return false
	}
	name := fields[3]
	return strings.HasPrefix(name, "loop") || strings.HasPrefix(name, "ram")
}

// readDeviceInfo collects identity attributes for whole disks. The
// directory only exists for top-level devices, so partitions come back
// with the zero value.
func readDeviceInfo(dir string) model.DeviceInfo {
	info := model.DeviceInfo{
		Model:  readTrimmedPtr(filepath.Join(dir, "device", "model")),
		Vendor: readTrimmedPtr(filepath.Join(dir, "device", "vendor")),
		Serial: readTrimmedPtr(filepath.Join(dir, "device", "serial")),
	}
	if s, err := readTrimmed(filepath.Join(dir, "queue", "logical_block_size")); err == nil {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			info.LogicalBlockSize = &v
		}
	}
	return info
}

func statDevice(path string) (*model.FilesystemStats, bool) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return nil, false
	}
	return &model.FilesystemStats{
		BlockSize:       uint64(st.Bsize),
		FragmentSize:    uint64(st.Frsize),
		TotalBlocks:     st.Blocks,
		FreeBlocks:      st.Bfree,
		AvailableBlocks: st.Bavail,
		TotalInodes:     st.Files,
		FreeInodes:      st.Ffree,
	}, true
}
