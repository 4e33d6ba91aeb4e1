package model

// Partitions lists the block devices from /proc/partitions after
// filtering loop and ram devices.
type Partitions struct {
	Parts []Partition `json:"parts" xml:"parts>partition"`
}

// Partition is one /proc/partitions row enriched with /sys/block
// attributes and filesystem statistics for the device node.
type Partition struct {
	Major   uint32           `json:"major" xml:"major"`
	Minor   uint32           `json:"minor" xml:"minor"`
	Blocks  uint64           `json:"blocks" xml:"blocks"`
	Name    string           `json:"name" xml:"name"`
	DevInfo DeviceInfo       `json:"dev_info" xml:"dev_info"`
	Statvfs *FilesystemStats `json:"statvfs,omitempty" xml:"statvfs,omitempty"`
}

// LogicalSize is blocks times the logical block size, when the queue
// directory exposes one.
func (p Partition) LogicalSize() (Size, bool) {
	if p.DevInfo.LogicalBlockSize == nil {
		return Size{}, false
	}
	return SizeBytes(p.Blocks * *p.DevInfo.LogicalBlockSize), true
}

// DeviceInfo is the /sys/block/<dev> identity attributes. Partitions
// of a disk have no such directory, which leaves every field nil.
type DeviceInfo struct {
	Model            *string `json:"model,omitempty" xml:"model,omitempty"`
	Vendor           *string `json:"vendor,omitempty" xml:"vendor,omitempty"`
	Serial           *string `json:"serial,omitempty" xml:"serial,omitempty"`
	LogicalBlockSize *uint64 `json:"logical_block_size,omitempty" xml:"logical_block_size,omitempty"`
}

func (d DeviceInfo) IsZero() bool {
	return d.Model == nil && d.Vendor == nil && d.Serial == nil && d.LogicalBlockSize == nil
}

// FilesystemStats mirrors statfs(2) results for the device path.
type FilesystemStats struct {
	BlockSize       uint64 `json:"block_size" xml:"block_size"`
	FragmentSize    uint64 `json:"fragment_size" xml:"fragment_size"`
	TotalBlocks     uint64 `json:"total_blocks" xml:"total_blocks"`
	FreeBlocks      uint64 `json:"free_blocks" xml:"free_blocks"`
	AvailableBlocks uint64 `json:"available_blocks" xml:"available_blocks"`
	TotalInodes     uint64 `json:"total_inodes" xml:"total_inodes"`
	FreeInodes      uint64 `json:"free_inodes" xml:"free_inodes"`
}

func (f FilesystemStats) TotalBytes() uint64 { return f.TotalBlocks * f.FragmentSize }
func (f FilesystemStats) FreeBytes() uint64  { return f.FreeBlocks * f.FragmentSize }
func (f FilesystemStats) AvailBytes() uint64 { return f.AvailableBlocks * f.FragmentSize }

func (f FilesystemStats) UsedBytes() uint64 {
	total := f.TotalBytes()
	if total == 0 {
		return 0
	}
	return total - f.FreeBytes()
}

func (f FilesystemStats) UsagePercent() float64 {
	total := f.TotalBytes()
	if total == 0 {
		return 0.0
	}
	return float64(f.UsedBytes()) / float64(total) * 100.0
}
