package software

import (
	"testing"

	"ferrix-agent/internal/model"
)

func TestParseRows(t *testing.T) {
	t.Parallel()

	out := []byte("<DEB>\tbash\t5.2.21-2\tamd64\n" +
		"<DEB>\tcoreutils\t9.4-3\tamd64\n" +
		"dpkg-query: warning: something\n" +
		"<DEB>\tbroken-row\t1.0\n" +
		"\n")
	pkgs := parseRows(out, model.PkgDeb)
	if len(pkgs) != 2 {
		t.Fatalf("expected 2 packages, got %d", len(pkgs))
	}
	if pkgs[0].Name != "bash" || pkgs[0].Version != "5.2.21-2" || pkgs[0].Arch != "amd64" {
		t.Errorf("first = %+v", pkgs[0])
	}
	if pkgs[0].PkgType != model.PkgDeb {
		t.Errorf("pkg type = %q", pkgs[0].PkgType)
	}
}

func TestParseRowsRpmQuoting(t *testing.T) {
	t.Parallel()

	out := []byte("<RPM>\t'kernel'\t'6.8.0-101'\t'x86_64'\n")
	pkgs := parseRows(out, model.PkgRpm)
	if len(pkgs) != 1 {
		t.Fatalf("expected 1 package, got %d", len(pkgs))
	}
	if pkgs[0].Name != "kernel" || pkgs[0].Arch != "x86_64" {
		t.Errorf("pkg = %+v", pkgs[0])
	}
}

func TestParseRowsWrongMarker(t *testing.T) {
	t.Parallel()

	out := []byte("<DEB>\tbash\t5.2\tamd64\n")
	if pkgs := parseRows(out, model.PkgRpm); len(pkgs) != 0 {
		t.Errorf("deb rows should not parse as rpm, got %v", pkgs)
	}
}
