package proc

import (
	"strings"
	"testing"
)

func TestParseVMStat(t *testing.T) {
	t.Parallel()

	fixture := `nr_free_pages 123456
nr_zone_inactive_anon 1000
pgfault 99887766
pgmajfault 4321
oom_kill 0
some_future_counter 7
`
	vm, err := ParseVMStat(strings.NewReader(fixture))
	if err != nil {
		t.Fatalf("ParseVMStat: %v", err)
	}

	if vm.NrFreePages == nil || *vm.NrFreePages != 123456 {
		t.Errorf("nr_free_pages = %v", vm.NrFreePages)
	}
	if vm.Pgfault == nil || *vm.Pgfault != 99887766 {
		t.Errorf("pgfault = %v", vm.Pgfault)
	}
	if vm.OomKill == nil || *vm.OomKill != 0 {
		t.Errorf("oom_kill = %v", vm.OomKill)
	}
	// Counters the kernel never printed stay nil.
	if vm.PgscanDirect != nil {
		t.Errorf("pgscan_direct should be nil, got %d", *vm.PgscanDirect)
	}
}
