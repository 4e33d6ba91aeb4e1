package proc

import (
	"strings"
	"testing"
)

const statFixture = `cpu  10000 200 3000 80000 500 0 100 0 0 0
cpu0 5000 100 1500 40000 250 0 50 0 0 0
cpu1 5000 100 1500 40000 250 0 50 0 0 0
intr 12345 0 1
ctxt 987654
btime 1700000000
processes 4321
procs_running 2
procs_blocked 1
softirq 555 0 1
`

func TestParseStat(t *testing.T) {
	t.Parallel()

	stat, err := ParseStat(strings.NewReader(statFixture))
	if err != nil {
		t.Fatalf("ParseStat: %v", err)
	}

	if stat.Total.User != 10000 || stat.Total.Idle != 80000 {
		t.Errorf("aggregate counters = %+v", stat.Total)
	}
	if len(stat.PerCore) != 2 {
		t.Fatalf("expected 2 cores, got %d", len(stat.PerCore))
	}
	if stat.PerCore[1].System != 1500 {
		t.Errorf("cpu1 system = %d", stat.PerCore[1].System)
	}
	if stat.ContextSwaps != 987654 {
		t.Errorf("ctxt = %d", stat.ContextSwaps)
	}
	if stat.BootTime != 1700000000 {
		t.Errorf("btime = %d", stat.BootTime)
	}
	if stat.Processes != 4321 || stat.ProcsRunning != 2 || stat.ProcsBlocked != 1 {
		t.Errorf("process counters = %d %d %d", stat.Processes, stat.ProcsRunning, stat.ProcsBlocked)
	}
}

func TestParseStatMissingAggregate(t *testing.T) {
	t.Parallel()

	_, err := ParseStat(strings.NewReader("cpu0 1 2 3 4 5 6 7 8\nctxt 5\n"))
	if err == nil {
		t.Fatal("expected error for missing aggregate cpu line")
	}
}

func TestCPUUsageDelta(t *testing.T) {
	t.Parallel()

	prev, err := ParseStat(strings.NewReader(statFixture))
	if err != nil {
		t.Fatalf("ParseStat: %v", err)
	}
	// 1000 more active ticks, 1000 more idle ticks since prev.
	next := prev
	next.Total.User += 1000
	next.Total.Idle += 1000

	usage := next.Usage(&prev)
	if usage.Total < 49.9 || usage.Total > 50.1 {
		t.Errorf("usage = %.2f, expected ~50", usage.Total)
	}

	// Same snapshot twice: no delta, no division by zero.
	again := prev.Usage(&prev)
	if again.Total != 0 {
		t.Errorf("zero-delta usage = %.2f", again.Total)
	}

	// No baseline at all.
	cold := prev.Usage(nil)
	if cold.Total != 0 {
		t.Errorf("baseline-less usage = %.2f", cold.Total)
	}
}
