package proc

import (
	"strings"
	"testing"
)

func TestParseUptime(t *testing.T) {
	t.Parallel()

	up, err := ParseUptime("35435.31 136607.60")
	if err != nil {
		t.Fatalf("ParseUptime: %v", err)
	}
	if up.Up != 35435.31 || up.Idle != 136607.60 {
		t.Errorf("uptime = %+v", up)
	}

	if _, err := ParseUptime("35435.31"); err == nil {
		t.Fatal("expected error for single field")
	}
}

func TestParseLoadAvg(t *testing.T) {
	t.Parallel()

	la, err := ParseLoadAvg("0.52 0.58 0.59 1/1273 8472")
	if err != nil {
		t.Fatalf("ParseLoadAvg: %v", err)
	}
	if la.One != 0.52 || la.Five != 0.58 || la.Fifteen != 0.59 {
		t.Errorf("loadavg = %+v", la)
	}

	if _, err := ParseLoadAvg("0.52 0.58"); err == nil {
		t.Fatal("expected error for two fields")
	}
}

func TestParseShells(t *testing.T) {
	t.Parallel()

	fixture := `# /etc/shells: valid login shells
/bin/sh
/bin/bash

/usr/bin/zsh
`
	shells, err := ParseShells(strings.NewReader(fixture))
	if err != nil {
		t.Fatalf("ParseShells: %v", err)
	}
	want := []string{"/bin/sh", "/bin/bash", "/usr/bin/zsh"}
	if len(shells) != len(want) {
		t.Fatalf("shells = %v", shells)
	}
	for i := range want {
		if shells[i] != want[i] {
			t.Errorf("shells[%d] = %q, want %q", i, shells[i], want[i])
		}
	}
}
