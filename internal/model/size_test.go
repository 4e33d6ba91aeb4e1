package model

import (
	"encoding/json"
	"testing"
)

func TestParseSize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want Size
	}{
		{"", Size{}},
		{"   ", Size{}},
		{"512 MB", SizeMegabytes(512)},
		{"8192 KB", SizeKilobytes(8192)},
		{"8192 kB", SizeKilobytes(8192)},
		{"1.5 GB", SizeGigabytes(1.5)},
		{"2 TB", SizeTerabytes(2)},
		{"12345", Size{Unit: UnitUnknown, Value: 12345}},
		{"not-a-number", Size{}},
		{"77 parsecs", SizeBytes(77)},
		{"-3 parsecs", SizeBytes(0)},
	}
	for _, c := range cases {
		if got := ParseSize(c.in); got != c.want {
			t.Errorf("ParseSize(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestSizeRound(t *testing.T) {
	t.Parallel()

	s, ok := SizeKilobytes(2048).Round(2)
	if !ok || s.Unit != UnitMegabytes || s.Value != 2 {
		t.Errorf("2048 KB rounded = %v ok=%v", s, ok)
	}

	s, ok = SizeBytes(1500).Round(10)
	if !ok || s.Unit != UnitKilobytes || s.Value != 1.5 {
		t.Errorf("1500 B rounded base 10 = %v ok=%v", s, ok)
	}

	// Promotion hard-stops at terabytes.
	s, ok = SizeTerabytes(5000).Round(2)
	if !ok || s.Unit != UnitTerabytes || s.Value != 5000 {
		t.Errorf("5000 TB rounded = %v ok=%v", s, ok)
	}

	// Unknown units round as bytes.
	s, ok = (Size{Unit: UnitUnknown, Value: 4096}).Round(2)
	if !ok || s.Unit != UnitMegabytes || s.Value != 4 {
		t.Errorf("4096 unknown rounded = %v ok=%v", s, ok)
	}

	if _, ok := (Size{}).Round(2); ok {
		t.Error("none value should not round")
	}
	if _, ok := SizeBytes(1).Round(16); ok {
		t.Error("unsupported base should not round")
	}
}

func TestSizeBytes(t *testing.T) {
	t.Parallel()

	if b, ok := SizeMegabytes(16).Bytes(2); !ok || b != 16*1024*1024 {
		t.Errorf("16 MB = %d ok=%v", b, ok)
	}
	if b, ok := SizeGigabytes(1).Bytes(10); !ok || b != 1_000_000_000 {
		t.Errorf("1 GB base 10 = %d ok=%v", b, ok)
	}
	if _, ok := (Size{Unit: UnitUnknown, Value: 5}).Bytes(2); ok {
		t.Error("unknown units have no byte interpretation")
	}
	if _, ok := (Size{}).Bytes(2); ok {
		t.Error("none has no byte interpretation")
	}
}

func TestSizeString(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   Size
		want string
	}{
		{Size{}, "none"},
		{SizeBytes(42), "42 B"},
		{Size{Unit: UnitUnknown, Value: 7}, "7 ??"},
		{SizeMegabytes(512), "512.00 MB"},
		{SizeGigabytes(1.5), "1.50 GB"},
	}
	for _, c := range cases {
		if got := c.in.String(); got != c.want {
			t.Errorf("String(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestUnitJSONRoundTrip(t *testing.T) {
	t.Parallel()

	out, err := json.Marshal(SizeKilobytes(2097148))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{"unit":"KB","value":2097148}` {
		t.Errorf("json = %s", out)
	}

	var s Size
	if err := json.Unmarshal(out, &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if s.Unit != UnitKilobytes || s.Value != 2097148 {
		t.Errorf("round trip = %v", s)
	}
}
