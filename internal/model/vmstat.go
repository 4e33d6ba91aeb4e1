package model

// VMStat mirrors /proc/vmstat. The key set varies with kernel version
// and build options, so every counter is optional; keys the kernel
// emits but this struct does not know are ignored.
type VMStat struct {
	NrFreePages                *uint64 `json:"nr_free_pages,omitempty" xml:"nr_free_pages,omitempty"`
	NrZoneInactiveAnon         *uint64 `json:"nr_zone_inactive_anon,omitempty" xml:"nr_zone_inactive_anon,omitempty"`
	NrZoneActiveAnon           *uint64 `json:"nr_zone_active_anon,omitempty" xml:"nr_zone_active_anon,omitempty"`
	NrZoneInactiveFile         *uint64 `json:"nr_zone_inactive_file,omitempty" xml:"nr_zone_inactive_file,omitempty"`
	NrZoneActiveFile           *uint64 `json:"nr_zone_active_file,omitempty" xml:"nr_zone_active_file,omitempty"`
	NrZoneUnevictable          *uint64 `json:"nr_zone_unevictable,omitempty" xml:"nr_zone_unevictable,omitempty"`
	NrZoneWritePending         *uint64 `json:"nr_zone_write_pending,omitempty" xml:"nr_zone_write_pending,omitempty"`
	NrMlock                    *uint64 `json:"nr_mlock,omitempty" xml:"nr_mlock,omitempty"`
	NrBounce                   *uint64 `json:"nr_bounce,omitempty" xml:"nr_bounce,omitempty"`
	NrZspages                  *uint64 `json:"nr_zspages,omitempty" xml:"nr_zspages,omitempty"`
	NrFreeCma                  *uint64 `json:"nr_free_cma,omitempty" xml:"nr_free_cma,omitempty"`
	NumaHit                    *uint64 `json:"numa_hit,omitempty" xml:"numa_hit,omitempty"`
	NumaMiss                   *uint64 `json:"numa_miss,omitempty" xml:"numa_miss,omitempty"`
	NumaForeign                *uint64 `json:"numa_foreign,omitempty" xml:"numa_foreign,omitempty"`
	NumaInterleave             *uint64 `json:"numa_interleave,omitempty" xml:"numa_interleave,omitempty"`
	NumaLocal                  *uint64 `json:"numa_local,omitempty" xml:"numa_local,omitempty"`
	NumaOther                  *uint64 `json:"numa_other,omitempty" xml:"numa_other,omitempty"`
	NrInactiveAnon             *uint64 `json:"nr_inactive_anon,omitempty" xml:"nr_inactive_anon,omitempty"`
	NrActiveAnon               *uint64 `json:"nr_active_anon,omitempty" xml:"nr_active_anon,omitempty"`
	NrInactiveFile             *uint64 `json:"nr_inactive_file,omitempty" xml:"nr_inactive_file,omitempty"`
	NrActiveFile               *uint64 `json:"nr_active_file,omitempty" xml:"nr_active_file,omitempty"`
	NrUnevictable              *uint64 `json:"nr_unevictable,omitempty" xml:"nr_unevictable,omitempty"`
	NrSlabReclaimable          *uint64 `json:"nr_slab_reclaimable,omitempty" xml:"nr_slab_reclaimable,omitempty"`
	NrSlabUnreclaimable        *uint64 `json:"nr_slab_unreclaimable,omitempty" xml:"nr_slab_unreclaimable,omitempty"`
	NrIsolatedAnon             *uint64 `json:"nr_isolated_anon,omitempty" xml:"nr_isolated_anon,omitempty"`
	NrIsolatedFile             *uint64 `json:"nr_isolated_file,omitempty" xml:"nr_isolated_file,omitempty"`
	WorkingsetNodes            *uint64 `json:"workingset_nodes,omitempty" xml:"workingset_nodes,omitempty"`
	WorkingsetRefaultAnon      *uint64 `json:"workingset_refault_anon,omitempty" xml:"workingset_refault_anon,omitempty"`
	WorkingsetActivateAnon     *uint64 `json:"workingset_activate_anon,omitempty" xml:"workingset_activate_anon,omitempty"`
	WorkingsetActivateFile     *uint64 `json:"workingset_activate_file,omitempty" xml:"workingset_activate_file,omitempty"`
	WorkingsetRestoreAnon      *uint64 `json:"workingset_restore_anon,omitempty" xml:"workingset_restore_anon,omitempty"`
	WorkingsetRestoreFile      *uint64 `json:"workingset_restore_file,omitempty" xml:"workingset_restore_file,omitempty"`
	WorkingsetNodereclaim      *uint64 `json:"workingset_nodereclaim,omitempty" xml:"workingset_nodereclaim,omitempty"`
	NrAnonPages                *uint64 `json:"nr_anon_pages,omitempty" xml:"nr_anon_pages,omitempty"`
	NrMapped                   *uint64 `json:"nr_mapped,omitempty" xml:"nr_mapped,omitempty"`
	NrFilePages                *uint64 `json:"nr_file_pages,omitempty" xml:"nr_file_pages,omitempty"`
	NrDirty                    *uint64 `json:"nr_dirty,omitempty" xml:"nr_dirty,omitempty"`
	NrWriteback                *uint64 `json:"nr_writeback,omitempty" xml:"nr_writeback,omitempty"`
	NrWritebackTemp            *uint64 `json:"nr_writeback_temp,omitempty" xml:"nr_writeback_temp,omitempty"`
	NrShmem                    *uint64 `json:"nr_shmem,omitempty" xml:"nr_shmem,omitempty"`
	NrShmemHugepages           *uint64 `json:"nr_shmem_hugepages,omitempty" xml:"nr_shmem_hugepages,omitempty"`
	NrShmemPmdmapped           *uint64 `json:"nr_shmem_pmdmapped,omitempty" xml:"nr_shmem_pmdmapped,omitempty"`
	NrFileHugepages            *uint64 `json:"nr_file_hugepages,omitempty" xml:"nr_file_hugepages,omitempty"`
	NrFilePmdmapped            *uint64 `json:"nr_file_pmdmapped,omitempty" xml:"nr_file_pmdmapped,omitempty"`
	NrAnonTransparentHugepages *uint64 `json:"nr_anon_transparent_hugepages,omitempty" xml:"nr_anon_transparent_hugepages,omitempty"`
	NrVmscanWrite              *uint64 `json:"nr_vmscan_write,omitempty" xml:"nr_vmscan_write,omitempty"`
	NrVmscanImmediateReclaim   *uint64 `json:"nr_vmscan_immediate_reclaim,omitempty" xml:"nr_vmscan_immediate_reclaim,omitempty"`
	NrDirtied                  *uint64 `json:"nr_dirtied,omitempty" xml:"nr_dirtied,omitempty"`
	NrWritten                  *uint64 `json:"nr_written,omitempty" xml:"nr_written,omitempty"`
	NrThrottledWritten         *uint64 `json:"nr_throttled_written,omitempty" xml:"nr_throttled_written,omitempty"`
	NrKernelMiscReclaimable    *uint64 `json:"nr_kernel_misc_reclaimable,omitempty" xml:"nr_kernel_misc_reclaimable,omitempty"`
	NrFollPinAcquired          *uint64 `json:"nr_foll_pin_acquired,omitempty" xml:"nr_foll_pin_acquired,omitempty"`
	NrFollPinReleased          *uint64 `json:"nr_foll_pin_released,omitempty" xml:"nr_foll_pin_released,omitempty"`
	NrKernelStack              *uint64 `json:"nr_kernel_stack,omitempty" xml:"nr_kernel_stack,omitempty"`
	NrPageTablePages           *uint64 `json:"nr_page_table_pages,omitempty" xml:"nr_page_table_pages,omitempty"`
	NrSecPageTablePages        *uint64 `json:"nr_sec_page_table_pages,omitempty" xml:"nr_sec_page_table_pages,omitempty"`
	NrSwapcached               *uint64 `json:"nr_swapcached,omitempty" xml:"nr_swapcached,omitempty"`
	PgpromoteSuccess           *uint64 `json:"pgpromote_success,omitempty" xml:"pgpromote_success,omitempty"`
	PgpromoteCandidate         *uint64 `json:"pgpromote_candidate,omitempty" xml:"pgpromote_candidate,omitempty"`
	NrDirtyThreshold           *uint64 `json:"nr_dirty_threshold,omitempty" xml:"nr_dirty_threshold,omitempty"`
	NrDirtyBackgroundThreshold *uint64 `json:"nr_dirty_background_threshold,omitempty" xml:"nr_dirty_background_threshold,omitempty"`
	Pgpgin                     *uint64 `json:"pgpgin,omitempty" xml:"pgpgin,omitempty"`
	Pgpgout                    *uint64 `json:"pgpgout,omitempty" xml:"pgpgout,omitempty"`
	Pswpin                     *uint64 `json:"pswpin,omitempty" xml:"pswpin,omitempty"`
	Pswpout                    *uint64 `json:"pswpout,omitempty" xml:"pswpout,omitempty"`
	PgallocDma                 *uint64 `json:"pgalloc_dma,omitempty" xml:"pgalloc_dma,omitempty"`
	PgallocDma32               *uint64 `json:"pgalloc_dma32,omitempty" xml:"pgalloc_dma32,omitempty"`
	PgallocNormal              *uint64 `json:"pgalloc_normal,omitempty" xml:"pgalloc_normal,omitempty"`
	PgallocMovable             *uint64 `json:"pgalloc_movable,omitempty" xml:"pgalloc_movable,omitempty"`
	PgallocDevice              *uint64 `json:"pgalloc_device,omitempty" xml:"pgalloc_device,omitempty"`
	AllocstallDma              *uint64 `json:"allocstall_dma,omitempty" xml:"allocstall_dma,omitempty"`
	AllocstallDma32            *uint64 `json:"allocstall_dma32,omitempty" xml:"allocstall_dma32,omitempty"`
	AllocstallNormal           *uint64 `json:"allocstall_normal,omitempty" xml:"allocstall_normal,omitempty"`
	AllocstallMovable          *uint64 `json:"allocstall_movable,omitempty" xml:"allocstall_movable,omitempty"`
	AllocstallDevice           *uint64 `json:"allocstall_device,omitempty" xml:"allocstall_device,omitempty"`
	PgskipDma                  *uint64 `json:"pgskip_dma,omitempty" xml:"pgskip_dma,omitempty"`
	PgskipDma32                *uint64 `json:"pgskip_dma32,omitempty" xml:"pgskip_dma32,omitempty"`
	PgskipNormal               *uint64 `json:"pgskip_normal,omitempty" xml:"pgskip_normal,omitempty"`
	PgskipMovable              *uint64 `json:"pgskip_movable,omitempty" xml:"pgskip_movable,omitempty"`
	PgskipDevice               *uint64 `json:"pgskip_device,omitempty" xml:"pgskip_device,omitempty"`
	Pgfree                     *uint64 `json:"pgfree,omitempty" xml:"pgfree,omitempty"`
	Pgactivate                 *uint64 `json:"pgactivate,omitempty" xml:"pgactivate,omitempty"`
	Pgdeactivate               *uint64 `json:"pgdeactivate,omitempty" xml:"pgdeactivate,omitempty"`
	Pglazyfree                 *uint64 `json:"pglazyfree,omitempty" xml:"pglazyfree,omitempty"`
	Pgfault                    *uint64 `json:"pgfault,omitempty" xml:"pgfault,omitempty"`
	Pgmajfault                 *uint64 `json:"pgmajfault,omitempty" xml:"pgmajfault,omitempty"`
	Pglazyfreed                *uint64 `json:"pglazyfreed,omitempty" xml:"pglazyfreed,omitempty"`
	Pgrefill                   *uint64 `json:"pgrefill,omitempty" xml:"pgrefill,omitempty"`
	Pgreuse                    *uint64 `json:"pgreuse,omitempty" xml:"pgreuse,omitempty"`
	PgstealKswapd              *uint64 `json:"pgsteal_kswapd,omitempty" xml:"pgsteal_kswapd,omitempty"`
	PgstealDirect              *uint64 `json:"pgsteal_direct,omitempty" xml:"pgsteal_direct,omitempty"`
	PgdemoteKswapd             *uint64 `json:"pgdemote_kswapd,omitempty" xml:"pgdemote_kswapd,omitempty"`
	PgdemoteDirect             *uint64 `json:"pgdemote_direct,omitempty" xml:"pgdemote_direct,omitempty"`
	PgscanKswapd               *uint64 `json:"pgscan_kswapd,omitempty" xml:"pgscan_kswapd,omitempty"`
	PgscanDirect               *uint64 `json:"pgscan_direct,omitempty" xml:"pgscan_direct,omitempty"`
	PgscanDirectThrottle       *uint64 `json:"pgscan_direct_throttle,omitempty" xml:"pgscan_direct_throttle,omitempty"`
	PgscanAnon                 *uint64 `json:"pgscan_anon,omitempty" xml:"pgscan_anon,omitempty"`
	PgscanFile                 *uint64 `json:"pgscan_file,omitempty" xml:"pgscan_file,omitempty"`
	PgstealAnon                *uint64 `json:"pgsteal_anon,omitempty" xml:"pgsteal_anon,omitempty"`
	PgstealFile                *uint64 `json:"pgsteal_file,omitempty" xml:"pgsteal_file,omitempty"`
	ZoneReclaimFailed          *uint64 `json:"zone_reclaim_failed,omitempty" xml:"zone_reclaim_failed,omitempty"`
	Pginodesteal               *uint64 `json:"pginodesteal,omitempty" xml:"pginodesteal,omitempty"`
	SlabsScanned               *uint64 `json:"slabs_scanned,omitempty" xml:"slabs_scanned,omitempty"`
	KswapdInodesteal           *uint64 `json:"kswapd_inodesteal,omitempty" xml:"kswapd_inodesteal,omitempty"`
	KswapdLowWmarkHitQuickly   *uint64 `json:"kswapd_low_wmark_hit_quickly,omitempty" xml:"kswapd_low_wmark_hit_quickly,omitempty"`
	KswapdHighWmarkHitQuickly  *uint64 `json:"kswapd_high_wmark_hit_quickly,omitempty" xml:"kswapd_high_wmark_hit_quickly,omitempty"`
	Pageoutrun                 *uint64 `json:"pageoutrun,omitempty" xml:"pageoutrun,omitempty"`
	Pgrotated                  *uint64 `json:"pgrotated,omitempty" xml:"pgrotated,omitempty"`
	DropPagecache              *uint64 `json:"drop_pagecache,omitempty" xml:"drop_pagecache,omitempty"`
	DropSlab                   *uint64 `json:"drop_slab,omitempty" xml:"drop_slab,omitempty"`
	OomKill                    *uint64 `json:"oom_kill,omitempty" xml:"oom_kill,omitempty"`
	NumaPteUpdates             *uint64 `json:"numa_pte_updates,omitempty" xml:"numa_pte_updates,omitempty"`
	NumaHugePteUpdates         *uint64 `json:"numa_huge_pte_updates,omitempty" xml:"numa_huge_pte_updates,omitempty"`
	NumaHintFaults             *uint64 `json:"numa_hint_faults,omitempty" xml:"numa_hint_faults,omitempty"`
	NumaHintFaultsLocal        *uint64 `json:"numa_hint_faults_local,omitempty" xml:"numa_hint_faults_local,omitempty"`
	NumaPagesMigrated          *uint64 `json:"numa_pages_migrated,omitempty" xml:"numa_pages_migrated,omitempty"`
	PgmigrateSuccess           *uint64 `json:"pgmigrate_success,omitempty" xml:"pgmigrate_success,omitempty"`
	PgmigrateFail              *uint64 `json:"pgmigrate_fail,omitempty" xml:"pgmigrate_fail,omitempty"`
	ThpMigrationSuccess        *uint64 `json:"thp_migration_success,omitempty" xml:"thp_migration_success,omitempty"`
	ThpMigrationFail           *uint64 `json:"thp_migration_fail,omitempty" xml:"thp_migration_fail,omitempty"`
	ThpMigrationSplit          *uint64 `json:"thp_migration_split,omitempty" xml:"thp_migration_split,omitempty"`
	CompactMigrateScanned      *uint64 `json:"compact_migrate_scanned,omitempty" xml:"compact_migrate_scanned,omitempty"`
	CompactFreeScanned         *uint64 `json:"compact_free_scanned,omitempty" xml:"compact_free_scanned,omitempty"`
	CompactIsolated            *uint64 `json:"compact_isolated,omitempty" xml:"compact_isolated,omitempty"`
	CompactStall               *uint64 `json:"compact_stall,omitempty" xml:"compact_stall,omitempty"`
	CompactFail                *uint64 `json:"compact_fail,omitempty" xml:"compact_fail,omitempty"`
	CompactSuccess             *uint64 `json:"compact_success,omitempty" xml:"compact_success,omitempty"`
	CompactDaemonWake          *uint64 `json:"compact_daemon_wake,omitempty" xml:"compact_daemon_wake,omitempty"`
	CompactDaemonMigrate       *uint64 `json:"compact_daemon_migrate_scanned,omitempty" xml:"compact_daemon_migrate_scanned,omitempty"`
	CompactDaemonFree          *uint64 `json:"compact_daemon_free_scanned,omitempty" xml:"compact_daemon_free_scanned,omitempty"`
	HtlbBuddyAllocSuccess      *uint64 `json:"htlb_buddy_alloc_success,omitempty" xml:"htlb_buddy_alloc_success,omitempty"`
	HtlbBuddyAllocFail         *uint64 `json:"htlb_buddy_alloc_fail,omitempty" xml:"htlb_buddy_alloc_fail,omitempty"`
	UnevictablePgsCulled       *uint64 `json:"unevictable_pgs_culled,omitempty" xml:"unevictable_pgs_culled,omitempty"`
	UnevictablePgsScanned      *uint64 `json:"unevictable_pgs_scanned,omitempty" xml:"unevictable_pgs_scanned,omitempty"`
	UnevictablePgsRescued      *uint64 `json:"unevictable_pgs_rescued,omitempty" xml:"unevictable_pgs_rescued,omitempty"`
	UnevictablePgsMlocked      *uint64 `json:"unevictable_pgs_mlocked,omitempty" xml:"unevictable_pgs_mlocked,omitempty"`
	UnevictablePgsMunlocked    *uint64 `json:"unevictable_pgs_munlocked,omitempty" xml:"unevictable_pgs_munlocked,omitempty"`
	UnevictablePgsCleared      *uint64 `json:"unevictable_pgs_cleared,omitempty" xml:"unevictable_pgs_cleared,omitempty"`
	UnevictablePgsStranded     *uint64 `json:"unevictable_pgs_stranded,omitempty" xml:"unevictable_pgs_stranded,omitempty"`
	ThpFaultAlloc              *uint64 `json:"thp_fault_alloc,omitempty" xml:"thp_fault_alloc,omitempty"`
	ThpFaultFallback           *uint64 `json:"thp_fault_fallback,omitempty" xml:"thp_fault_fallback,omitempty"`
	ThpFaultFallbackCharge     *uint64 `json:"thp_fault_fallback_charge,omitempty" xml:"thp_fault_fallback_charge,omitempty"`
	ThpCollapseAlloc           *uint64 `json:"thp_collapse_alloc,omitempty" xml:"thp_collapse_alloc,omitempty"`
	ThpCollapseAllocFailed     *uint64 `json:"thp_collapse_alloc_failed,omitempty" xml:"thp_collapse_alloc_failed,omitempty"`
	ThpFileAlloc               *uint64 `json:"thp_file_alloc,omitempty" xml:"thp_file_alloc,omitempty"`
	ThpFileFallback            *uint64 `json:"thp_file_fallback,omitempty" xml:"thp_file_fallback,omitempty"`
	ThpFileMapped              *uint64 `json:"thp_file_mapped,omitempty" xml:"thp_file_mapped,omitempty"`
	ThpSplitPage               *uint64 `json:"thp_split_page,omitempty" xml:"thp_split_page,omitempty"`
	ThpSplitPageFailed         *uint64 `json:"thp_split_page_failed,omitempty" xml:"thp_split_page_failed,omitempty"`
	ThpDeferredSplitPage       *uint64 `json:"thp_deferred_split_page,omitempty" xml:"thp_deferred_split_page,omitempty"`
	ThpSplitPmd                *uint64 `json:"thp_split_pmd,omitempty" xml:"thp_split_pmd,omitempty"`
	ThpScanExceedNonePte       *uint64 `json:"thp_scan_exceed_none_pte,omitempty" xml:"thp_scan_exceed_none_pte,omitempty"`
	ThpScanExceedSwapPte       *uint64 `json:"thp_scan_exceed_swap_pte,omitempty" xml:"thp_scan_exceed_swap_pte,omitempty"`
	ThpScanExceedSharePte      *uint64 `json:"thp_scan_exceed_share_pte,omitempty" xml:"thp_scan_exceed_share_pte,omitempty"`
	ThpSplitPud                *uint64 `json:"thp_split_pud,omitempty" xml:"thp_split_pud,omitempty"`
	ThpZeroPageAlloc           *uint64 `json:"thp_zero_page_alloc,omitempty" xml:"thp_zero_page_alloc,omitempty"`
	ThpZeroPageAllocFailed     *uint64 `json:"thp_zero_page_alloc_failed,omitempty" xml:"thp_zero_page_alloc_failed,omitempty"`
	ThpSwpout                  *uint64 `json:"thp_swpout,omitempty" xml:"thp_swpout,omitempty"`
	ThpSwpoutFallback          *uint64 `json:"thp_swpout_fallback,omitempty" xml:"thp_swpout_fallback,omitempty"`
	BalloonInflate             *uint64 `json:"balloon_inflate,omitempty" xml:"balloon_inflate,omitempty"`
	BalloonDeflate             *uint64 `json:"balloon_deflate,omitempty" xml:"balloon_deflate,omitempty"`
	BalloonMigrate             *uint64 `json:"balloon_migrate,omitempty" xml:"balloon_migrate,omitempty"`
	SwapRa                     *uint64 `json:"swap_ra,omitempty" xml:"swap_ra,omitempty"`
	SwapRaHit                  *uint64 `json:"swap_ra_hit,omitempty" xml:"swap_ra_hit,omitempty"`
	KsmSwpinCopy               *uint64 `json:"ksm_swpin_copy,omitempty" xml:"ksm_swpin_copy,omitempty"`
	CowKsm                     *uint64 `json:"cow_ksm,omitempty" xml:"cow_ksm,omitempty"`
	Zswpin                     *uint64 `json:"zswpin,omitempty" xml:"zswpin,omitempty"`
	Zswpout                    *uint64 `json:"zswpout,omitempty" xml:"zswpout,omitempty"`
	DirectMapLevel2Splits      *uint64 `json:"direct_map_level2_splits,omitempty" xml:"direct_map_level2_splits,omitempty"`
	DirectMapLevel3Splits      *uint64 `json:"direct_map_level3_splits,omitempty" xml:"direct_map_level3_splits,omitempty"`
	NrUnstable                 *uint64 `json:"nr_unstable,omitempty" xml:"nr_unstable,omitempty"`
}

// Counters maps /proc/vmstat key names to their destination fields so
// the parser stays a single loop instead of a giant switch.
func (v *VMStat) Counters() map[string]**uint64 {
	return map[string]**uint64{
		"nr_free_pages":                  &v.NrFreePages,
		"nr_zone_inactive_anon":          &v.NrZoneInactiveAnon,
		"nr_zone_active_anon":            &v.NrZoneActiveAnon,
		"nr_zone_inactive_file":          &v.NrZoneInactiveFile,
		"nr_zone_active_file":            &v.NrZoneActiveFile,
		"nr_zone_unevictable":            &v.NrZoneUnevictable,
		"nr_zone_write_pending":          &v.NrZoneWritePending,
		"nr_mlock":                       &v.NrMlock,
		"nr_bounce":                      &v.NrBounce,
		"nr_zspages":                     &v.NrZspages,
		"nr_free_cma":                    &v.NrFreeCma,
		"numa_hit":                       &v.NumaHit,
		"numa_miss":                      &v.NumaMiss,
		"numa_foreign":                   &v.NumaForeign,
		"numa_interleave":                &v.NumaInterleave,
		"numa_local":                     &v.NumaLocal,
		"numa_other":                     &v.NumaOther,
		"nr_inactive_anon":               &v.NrInactiveAnon,
		"nr_active_anon":                 &v.NrActiveAnon,
		"nr_inactive_file":               &v.NrInactiveFile,
		"nr_active_file":                 &v.NrActiveFile,
		"nr_unevictable":                 &v.NrUnevictable,
		"nr_slab_reclaimable":            &v.NrSlabReclaimable,
		"nr_slab_unreclaimable":          &v.NrSlabUnreclaimable,
		"nr_isolated_anon":               &v.NrIsolatedAnon,
		"nr_isolated_file":               &v.NrIsolatedFile,
		"workingset_nodes":               &v.WorkingsetNodes,
		"workingset_refault_anon":        &v.WorkingsetRefaultAnon,
		"workingset_activate_anon":       &v.WorkingsetActivateAnon,
		"workingset_activate_file":       &v.WorkingsetActivateFile,
		"workingset_restore_anon":        &v.WorkingsetRestoreAnon,
		"workingset_restore_file":        &v.WorkingsetRestoreFile,
		"workingset_nodereclaim":         &v.WorkingsetNodereclaim,
		"nr_anon_pages":                  &v.NrAnonPages,
		"nr_mapped":                      &v.NrMapped,
		"nr_file_pages":                  &v.NrFilePages,
		"nr_dirty":                       &v.NrDirty,
		"nr_writeback":                   &v.NrWriteback,
		"nr_writeback_temp":              &v.NrWritebackTemp,
		"nr_shmem":                       &v.NrShmem,
		"nr_shmem_hugepages":             &v.NrShmemHugepages,
		"nr_shmem_pmdmapped":             &v.NrShmemPmdmapped,
		"nr_file_hugepages":              &v.NrFileHugepages,
		"nr_file_pmdmapped":              &v.NrFilePmdmapped,
		"nr_anon_transparent_hugepages":  &v.NrAnonTransparentHugepages,
		"nr_vmscan_write":                &v.NrVmscanWrite,
		"nr_vmscan_immediate_reclaim":    &v.NrVmscanImmediateReclaim,
		"nr_dirtied":                     &v.NrDirtied,
		"nr_written":                     &v.NrWritten,
		"nr_throttled_written":           &v.NrThrottledWritten,
		"nr_kernel_misc_reclaimable":     &v.NrKernelMiscReclaimable,
		"nr_foll_pin_acquired":           &v.NrFollPinAcquired,
		"nr_foll_pin_released":           &v.NrFollPinReleased,
		"nr_kernel_stack":                &v.NrKernelStack,
		"nr_page_table_pages":            &v.NrPageTablePages,
		"nr_sec_page_table_pages":        &v.NrSecPageTablePages,
		"nr_swapcached":                  &v.NrSwapcached,
		"pgpromote_success":              &v.PgpromoteSuccess,
		"pgpromote_candidate":            &v.PgpromoteCandidate,
		"nr_dirty_threshold":             &v.NrDirtyThreshold,
		"nr_dirty_background_threshold":  &v.NrDirtyBackgroundThreshold,
		"pgpgin":                         &v.Pgpgin,
		"pgpgout":                        &v.Pgpgout,
		"pswpin":                         &v.Pswpin,
		"pswpout":                        &v.Pswpout,
		"pgalloc_dma":                    &v.PgallocDma,
		"pgalloc_dma32":                  &v.PgallocDma32,
		"pgalloc_normal":                 &v.PgallocNormal,
		"pgalloc_movable":                &v.PgallocMovable,
		"pgalloc_device":                 &v.PgallocDevice,
		"allocstall_dma":                 &v.AllocstallDma,
		"allocstall_dma32":               &v.AllocstallDma32,
		"allocstall_normal":              &v.AllocstallNormal,
		"allocstall_movable":             &v.AllocstallMovable,
		"allocstall_device":              &v.AllocstallDevice,
		"pgskip_dma":                     &v.PgskipDma,
		"pgskip_dma32":                   &v.PgskipDma32,
		"pgskip_normal":                  &v.PgskipNormal,
		"pgskip_movable":                 &v.PgskipMovable,
		"pgskip_device":                  &v.PgskipDevice,
		"pgfree":                         &v.Pgfree,
		"pgactivate":                     &v.Pgactivate,
		"pgdeactivate":                   &v.Pgdeactivate,
		"pglazyfree":                     &v.Pglazyfree,
		"pgfault":                        &v.Pgfault,
		"pgmajfault":                     &v.Pgmajfault,
		"pglazyfreed":                    &v.Pglazyfreed,
		"pgrefill":                       &v.Pgrefill,
		"pgreuse":                        &v.Pgreuse,
		"pgsteal_kswapd":                 &v.PgstealKswapd,
		"pgsteal_direct":                 &v.PgstealDirect,
		"pgdemote_kswapd":                &v.PgdemoteKswapd,
		"pgdemote_direct":                &v.PgdemoteDirect,
		"pgscan_kswapd":                  &v.PgscanKswapd,
		"pgscan_direct":                  &v.PgscanDirect,
		"pgscan_direct_throttle":         &v.PgscanDirectThrottle,
		"pgscan_anon":                    &v.PgscanAnon,
		"pgscan_file":                    &v.PgscanFile,
		"pgsteal_anon":                   &v.PgstealAnon,
		"pgsteal_file":                   &v.PgstealFile,
		"zone_reclaim_failed":            &v.ZoneReclaimFailed,
		"pginodesteal":                   &v.Pginodesteal,
		"slabs_scanned":                  &v.SlabsScanned,
		"kswapd_inodesteal":              &v.KswapdInodesteal,
		"kswapd_low_wmark_hit_quickly":   &v.KswapdLowWmarkHitQuickly,
		"kswapd_high_wmark_hit_quickly":  &v.KswapdHighWmarkHitQuickly,
		"pageoutrun":                     &v.Pageoutrun,
		"pgrotated":                      &v.Pgrotated,
		"drop_pagecache":                 &v.DropPagecache,
		"drop_slab":                      &v.DropSlab,
		"oom_kill":                       &v.OomKill,
		"numa_pte_updates":               &v.NumaPteUpdates,
		"numa_huge_pte_updates":          &v.NumaHugePteUpdates,
		"numa_hint_faults":               &v.NumaHintFaults,
		"numa_hint_faults_local":         &v.NumaHintFaultsLocal,
		"numa_pages_migrated":            &v.NumaPagesMigrated,
		"pgmigrate_success":              &v.PgmigrateSuccess,
		"pgmigrate_fail":                 &v.PgmigrateFail,
		"thp_migration_success":          &v.ThpMigrationSuccess,
		"thp_migration_fail":             &v.ThpMigrationFail,
		"thp_migration_split":            &v.ThpMigrationSplit,
		"compact_migrate_scanned":        &v.CompactMigrateScanned,
		"compact_free_scanned":           &v.CompactFreeScanned,
		"compact_isolated":               &v.CompactIsolated,
		"compact_stall":                  &v.CompactStall,
		"compact_fail":                   &v.CompactFail,
		"compact_success":                &v.CompactSuccess,
		"compact_daemon_wake":            &v.CompactDaemonWake,
		"compact_daemon_migrate_scanned": &v.CompactDaemonMigrate,
		"compact_daemon_free_scanned":    &v.CompactDaemonFree,
		"htlb_buddy_alloc_success":       &v.HtlbBuddyAllocSuccess,
		"htlb_buddy_alloc_fail":          &v.HtlbBuddyAllocFail,
		"unevictable_pgs_culled":         &v.UnevictablePgsCulled,
		"unevictable_pgs_scanned":        &v.UnevictablePgsScanned,
		"unevictable_pgs_rescued":        &v.UnevictablePgsRescued,
		"unevictable_pgs_mlocked":        &v.UnevictablePgsMlocked,
		"unevictable_pgs_munlocked":      &v.UnevictablePgsMunlocked,
		"unevictable_pgs_cleared":        &v.UnevictablePgsCleared,
		"unevictable_pgs_stranded":       &v.UnevictablePgsStranded,
		"thp_fault_alloc":                &v.ThpFaultAlloc,
		"thp_fault_fallback":             &v.ThpFaultFallback,
		"thp_fault_fallback_charge":      &v.ThpFaultFallbackCharge,
		"thp_collapse_alloc":             &v.ThpCollapseAlloc,
		"thp_collapse_alloc_failed":      &v.ThpCollapseAllocFailed,
		"thp_file_alloc":                 &v.ThpFileAlloc,
		"thp_file_fallback":              &v.ThpFileFallback,
		"thp_file_mapped":                &v.ThpFileMapped,
		"thp_split_page":                 &v.ThpSplitPage,
		"thp_split_page_failed":          &v.ThpSplitPageFailed,
		"thp_deferred_split_page":        &v.ThpDeferredSplitPage,
		"thp_split_pmd":                  &v.ThpSplitPmd,
		"thp_scan_exceed_none_pte":       &v.ThpScanExceedNonePte,
		"thp_scan_exceed_swap_pte":       &v.ThpScanExceedSwapPte,
		"thp_scan_exceed_share_pte":      &v.ThpScanExceedSharePte,
		"thp_split_pud":                  &v.ThpSplitPud,
		"thp_zero_page_alloc":            &v.ThpZeroPageAlloc,
		"thp_zero_page_alloc_failed":     &v.ThpZeroPageAllocFailed,
		"thp_swpout":                     &v.ThpSwpout,
		"thp_swpout_fallback":            &v.ThpSwpoutFallback,
		"balloon_inflate":                &v.BalloonInflate,
		"balloon_deflate":                &v.BalloonDeflate,
		"balloon_migrate":                &v.BalloonMigrate,
		"swap_ra":                        &v.SwapRa,
		"swap_ra_hit":                    &v.SwapRaHit,
		"ksm_swpin_copy":                 &v.KsmSwpinCopy,
		"cow_ksm":                        &v.CowKsm,
		"zswpin":                         &v.Zswpin,
		"zswpout":                        &v.Zswpout,
		"direct_map_level2_splits":       &v.DirectMapLevel2Splits,
		"direct_map_level3_splits":       &v.DirectMapLevel3Splits,
		"nr_unstable":                    &v.NrUnstable,
	}
}
