package proc

import (
	"strings"
	"testing"
)

const partitionsFixture = `major minor  #blocks  name

 259        0  500107608 nvme0n1
 259        1     524288 nvme0n1p1
 259        2  499581952 nvme0n1p2
   7        0      71044 loop0
   7        1     101200 loop1
   1        0      65536 ram0
 252        0    8388608 zram0
   8        0  976762584 sda
   8        1  976761560 sda1
`

func TestParsePartitions(t *testing.T) {
	t.Parallel()

	parts, err := ParsePartitions(strings.NewReader(partitionsFixture))
	if err != nil {
		t.Fatalf("ParsePartitions: %v", err)
	}
	if len(parts.Parts) != 6 {
		t.Fatalf("expected 6 rows after filtering, got %d", len(parts.Parts))
	}
	for _, p := range parts.Parts {
		if strings.HasPrefix(p.Name, "loop") || strings.HasPrefix(p.Name, "ram") {
			t.Errorf("virtual device %q survived the filter", p.Name)
		}
	}

	first := parts.Parts[0]
	if first.Major != 259 || first.Minor != 0 || first.Blocks != 500107608 || first.Name != "nvme0n1" {
		t.Errorf("first row = %+v", first)
	}
	// zram is not in the filtered prefixes.
	if parts.Parts[3].Name != "zram0" {
		t.Errorf("expected zram0 at index 3, got %q", parts.Parts[3].Name)
	}
}

func TestParsePartitionsMalformedRow(t *testing.T) {
	t.Parallel()

	fixture := "major minor  #blocks  name\n\n 259 0 500107608\n"
	if _, err := ParsePartitions(strings.NewReader(fixture)); err == nil {
		t.Fatal("expected error for short row")
	}
}

func TestPartitionLogicalSize(t *testing.T) {
	t.Parallel()

	parts, err := ParsePartitions(strings.NewReader(partitionsFixture))
	if err != nil {
		t.Fatalf("ParsePartitions: %v", err)
	}
	p := parts.Parts[0]
	if _, ok := p.LogicalSize(); ok {
		t.Error("logical size should be unavailable without sysfs attributes")
	}
	lbs := uint64(512)
	p.DevInfo.LogicalBlockSize = &lbs
	size, ok := p.LogicalSize()
	if !ok {
		t.Fatal("logical size unavailable")
	}
	if uint64(size.Value) != p.Blocks*512 {
		t.Errorf("logical size = %v", size)
	}
}
