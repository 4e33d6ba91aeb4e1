package model

// Memory mirrors /proc/meminfo. Quantities keep the KB unit the kernel
// reports; callers round for display. CmaTotal/CmaFree only exist on
// kernels built with CMA, so they stay pointers.
type Memory struct {
	Total             Size   `json:"total" xml:"total"`
	Free              Size   `json:"free" xml:"free"`
	Available         Size   `json:"available" xml:"available"`
	Buffers           Size   `json:"buffers" xml:"buffers"`
	Cached            Size   `json:"cached" xml:"cached"`
	SwapCached        Size   `json:"swap_cached" xml:"swap_cached"`
	Active            Size   `json:"active" xml:"active"`
	Inactive          Size   `json:"inactive" xml:"inactive"`
	ActiveAnon        Size   `json:"active_anon" xml:"active_anon"`
	InactiveAnon      Size   `json:"inactive_anon" xml:"inactive_anon"`
	ActiveFile        Size   `json:"active_file" xml:"active_file"`
	InactiveFile      Size   `json:"inactive_file" xml:"inactive_file"`
	Unevictable       Size   `json:"unevictable" xml:"unevictable"`
	Mlocked           Size   `json:"mlocked" xml:"mlocked"`
	SwapTotal         Size   `json:"swap_total" xml:"swap_total"`
	SwapFree          Size   `json:"swap_free" xml:"swap_free"`
	Zswap             Size   `json:"zswap" xml:"zswap"`
	Zswapped          Size   `json:"zswapped" xml:"zswapped"`
	Dirty             Size   `json:"dirty" xml:"dirty"`
	Writeback         Size   `json:"writeback" xml:"writeback"`
	AnonPages         Size   `json:"anon_pages" xml:"anon_pages"`
	Mapped            Size   `json:"mapped" xml:"mapped"`
	Shmem             Size   `json:"shmem" xml:"shmem"`
	KReclaimable      Size   `json:"kreclaimable" xml:"kreclaimable"`
	Slab              Size   `json:"slab" xml:"slab"`
	SReclaimable      Size   `json:"sreclaimable" xml:"sreclaimable"`
	SUnreclaim        Size   `json:"sunreclaim" xml:"sunreclaim"`
	KernelStack       Size   `json:"kernel_stack" xml:"kernel_stack"`
	PageTables        Size   `json:"page_tables" xml:"page_tables"`
	SecPageTables     Size   `json:"sec_page_tables" xml:"sec_page_tables"`
	NFSUnstable       Size   `json:"nfs_unstable" xml:"nfs_unstable"`
	Bounce            Size   `json:"bounce" xml:"bounce"`
	WritebackTmp      Size   `json:"writeback_tmp" xml:"writeback_tmp"`
	CommitLimit       Size   `json:"commit_limit" xml:"commit_limit"`
	CommittedAS       Size   `json:"commited_as" xml:"commited_as"`
	VmallocTotal      Size   `json:"vmalloc_total" xml:"vmalloc_total"`
	VmallocUsed       Size   `json:"vmalloc_used" xml:"vmalloc_used"`
	VmallocChunk      Size   `json:"vmalloc_chunk" xml:"vmalloc_chunk"`
	Percpu            Size   `json:"percpu" xml:"percpu"`
	HardwareCorrupted Size   `json:"hardware_corrupted" xml:"hardware_corrupted"`
	AnonHugePages     Size   `json:"anon_huge_pages" xml:"anon_huge_pages"`
	ShmemHugePages    Size   `json:"shmem_huge_pages" xml:"shmem_huge_pages"`
	ShmemPmdMapped    Size   `json:"shmem_pmd_mapped" xml:"shmem_pmd_mapped"`
	CmaTotal          *Size  `json:"cma_total,omitempty" xml:"cma_total,omitempty"`
	CmaFree           *Size  `json:"cma_free,omitempty" xml:"cma_free,omitempty"`
	FileHugePages     Size   `json:"file_huge_pages" xml:"file_huge_pages"`
	FilePmdMapped     Size   `json:"file_pmd_mapped" xml:"file_pmd_mapped"`
	Unaccepted        Size   `json:"unaccepted" xml:"unaccepted"`
	HugePagesTotal    uint32 `json:"huge_pages_total" xml:"huge_pages_total"`
	HugePagesFree     uint32 `json:"huge_pages_free" xml:"huge_pages_free"`
	HugePagesRsvd     uint32 `json:"huge_pages_rsvd" xml:"huge_pages_rsvd"`
	HugePagesSurp     uint32 `json:"huge_pages_surp" xml:"huge_pages_surp"`
	HugePageSize      Size   `json:"huge_page_size" xml:"huge_page_size"`
	HugeTLB           Size   `json:"huge_tlb" xml:"huge_tlb"`
	DirectMap4K       Size   `json:"direct_map_4k" xml:"direct_map_4k"`
	DirectMap2M       Size   `json:"direct_map_2m" xml:"direct_map_2m"`
	DirectMap1G       Size   `json:"direct_map_1g" xml:"direct_map_1g"`
}

// Used estimates occupied RAM as total minus available, in GB under
// the given base. Returns the None size for unsupported bases.
func (m Memory) Used(base int) Size {
	var k float64
	switch base {
	case 2:
		k = 1024
	case 10:
		k = 1000
	default:
		return Size{}
	}
	total, _ := m.Total.Bytes(base)
	avail, _ := m.Available.Bytes(base)
	return SizeGigabytes((float64(total) - float64(avail)) / k / k / k)
}

// Swaps lists the active swap areas from /proc/swaps.
type Swaps struct {
	Swaps []SwapEntry `json:"swaps" xml:"swaps>swap"`
}

// SwapEntry is one row of /proc/swaps. Sizes are in KB as reported.
type SwapEntry struct {
	Filename string `json:"filename" xml:"filename"`
	SwapType string `json:"swap_type" xml:"swap_type"`
	Size     Size   `json:"size" xml:"size"`
	Used     Size   `json:"used" xml:"used"`
	Priority int    `json:"priority" xml:"priority"`
}
