package proc

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"ferrix-agent/internal/model"
)

const meminfoPath = "/proc/meminfo"

// ReadMemInfo reads and parses /proc/meminfo.
func ReadMemInfo() (model.Memory, error) {
	f, err := os.Open(meminfoPath)
	if err != nil {
		return model.Memory{}, fmt.Errorf("open %s: %w", meminfoPath, err)
	}
	defer f.Close()
	return ParseMemInfo(f)
}

// ParseMemInfo decodes the "Key: value [unit]" rows of /proc/meminfo.
// Quantities keep the unit the kernel prints (KB almost everywhere).
// Unknown keys are ignored so newer kernels parse cleanly.
func ParseMemInfo(r io.Reader) (model.Memory, error) {
	var mem model.Memory
	sizes := map[string]*model.Size{
		"MemTotal":          &mem.Total,
		"MemFree":           &mem.Free,
		"MemAvailable":      &mem.Available,
		"Buffers":           &mem.Buffers,
		"Cached":            &mem.Cached,
		"SwapCached":        &mem.SwapCached,
		"Active":            &mem.Active,
		"Inactive":          &mem.Inactive,
		"Active(anon)":      &mem.ActiveAnon,
		"Inactive(anon)":    &mem.InactiveAnon,
		"Active(file)":      &mem.ActiveFile,
		"Inactive(file)":    &mem.InactiveFile,
		"Unevictable":       &mem.Unevictable,
		"Mlocked":           &mem.Mlocked,
		"SwapTotal":         &mem.SwapTotal,
		"SwapFree":          &mem.SwapFree,
		"Zswap":             &mem.Zswap,
		"Zswapped":          &mem.Zswapped,
		"Dirty":             &mem.Dirty,
		"Writeback":         &mem.Writeback,
		"AnonPages":         &mem.AnonPages,
		"Mapped":            &mem.Mapped,
		"Shmem":             &mem.Shmem,
		"KReclaimable":      &mem.KReclaimable,
		"Slab":              &mem.Slab,
		"SReclaimable":      &mem.SReclaimable,
		"SUnreclaim":        &mem.SUnreclaim,
		"KernelStack":       &mem.KernelStack,
		"PageTables":        &mem.PageTables,
		"SecPageTables":     &mem.SecPageTables,
		"NFS_Unstable":      &mem.NFSUnstable,
		"Bounce":            &mem.Bounce,
		"WritebackTmp":      &mem.WritebackTmp,
		"CommitLimit":       &mem.CommitLimit,
		"Committed_AS":      &mem.CommittedAS,
		"VmallocTotal":      &mem.VmallocTotal,
		"VmallocUsed":       &mem.VmallocUsed,
		"VmallocChunk":      &mem.VmallocChunk,
		"Percpu":            &mem.Percpu,
		"HardwareCorrupted": &mem.HardwareCorrupted,
		"AnonHugePages":     &mem.AnonHugePages,
		"ShmemHugePages":    &mem.ShmemHugePages,
		"ShmemPmdMapped":    &mem.ShmemPmdMapped,
		"FileHugePages":     &mem.FileHugePages,
		"FilePmdMapped":     &mem.FilePmdMapped,
		"Unaccepted":        &mem.Unaccepted,
		"Hugepagesize":      &mem.HugePageSize,
		"Hugetlb":           &mem.HugeTLB,
		"DirectMap4k":       &mem.DirectMap4K,
		"DirectMap2M":       &mem.DirectMap2M,
		"DirectMap1G":       &mem.DirectMap1G,
	}
	counts := map[string]*uint32{
		"HugePages_Total": &mem.HugePagesTotal,
		"HugePages_Free":  &mem.HugePagesFree,
		"HugePages_Rsvd":  &mem.HugePagesRsvd,
		"HugePages_Surp":  &mem.HugePagesSurp,
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		key, val, ok := strings.Cut(sc.Text(), ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		val = strings.TrimSpace(val)
		switch key {
		case "CmaTotal":
			if s := model.ParseSize(val); !s.IsNone() {
				mem.CmaTotal = &s
			}
		case "CmaFree":
			if s := model.ParseSize(val); !s.IsNone() {
				mem.CmaFree = &s
			}
		default:
			if dst, ok := sizes[key]; ok {
				*dst = model.ParseSize(val)
			} else if dst, ok := counts[key]; ok {
				if v, err := parseUint32(val); err == nil {
					*dst = v
				}
			}
		}
	}
	if err := sc.Err(); err != nil {
		return model.Memory{}, fmt.Errorf("scan meminfo: %w", err)
	}
	return mem, nil
}
