package model

// CPUTimes is one cpu line of /proc/stat, in USER_HZ ticks. Counters
// are cumulative since boot and may wrap on 32-bit kernels; the delta
// math below relies on unsigned wraparound staying correct.
type CPUTimes struct {
	User      uint64 `json:"user" xml:"user"`
	Nice      uint64 `json:"nice" xml:"nice"`
	System    uint64 `json:"system" xml:"system"`
	Idle      uint64 `json:"idle" xml:"idle"`
	IOWait    uint64 `json:"iowait" xml:"iowait"`
	IRQ       uint64 `json:"irq" xml:"irq"`
	SoftIRQ   uint64 `json:"softirq" xml:"softirq"`
	Steal     uint64 `json:"steal" xml:"steal"`
	Guest     uint64 `json:"guest" xml:"guest"`
	GuestNice uint64 `json:"guest_nice" xml:"guest_nice"`
}

// total excludes guest and guest_nice: the kernel already accounts
// guest time inside user and nice.
func (t CPUTimes) total() uint64 {
	return t.User + t.Nice + t.System + t.Idle + t.IOWait + t.IRQ + t.SoftIRQ + t.Steal
}

func (t CPUTimes) active() uint64 {
	return t.total() - t.Idle - t.IOWait
}

// UsagePercent computes busy share between a previous sample and t.
// With no baseline, or when no ticks elapsed, it reports 0 rather
// than guessing.
func (t CPUTimes) UsagePercent(prev *CPUTimes) float64 {
	if prev == nil {
		return 0.0
	}
	totalDelta := t.total() - prev.total()
	if totalDelta == 0 {
		return 0.0
	}
	activeDelta := t.active() - prev.active()
	return float64(activeDelta) / float64(totalDelta) * 100.0
}

// CPUStat is the full /proc/stat snapshot.
type CPUStat struct {
	Total        CPUTimes   `json:"total" xml:"total"`
	PerCore      []CPUTimes `json:"per_core" xml:"per_core>cpu"`
	ContextSwaps uint64     `json:"ctxt" xml:"ctxt"`
	BootTime     uint64     `json:"btime" xml:"btime"`
	Processes    uint64     `json:"processes" xml:"processes"`
	ProcsRunning uint64     `json:"procs_running" xml:"procs_running"`
	ProcsBlocked uint64     `json:"procs_blocked" xml:"procs_blocked"`
}

// Usage computes per-core busy percentages against a previous
// snapshot, plus the aggregate. Cores present in only one snapshot
// (CPU hotplug between samples) report 0 for the missing side.
func (s CPUStat) Usage(prev *CPUStat) CPUUsage {
	u := CPUUsage{PerCore: make([]float64, len(s.PerCore))}
	if prev == nil {
		return u
	}
	u.Total = s.Total.UsagePercent(&prev.Total)
	for i := range s.PerCore {
		if i >= len(prev.PerCore) {
			break
		}
		u.PerCore[i] = s.PerCore[i].UsagePercent(&prev.PerCore[i])
	}
	return u
}

// CPUUsage is the derived busy-share view of two CPUStat snapshots.
type CPUUsage struct {
	Total   float64   `json:"total" xml:"total"`
	PerCore []float64 `json:"per_core" xml:"per_core>usage"`
}
