// Package software lists installed packages via the native package
// manager. Both dpkg and rpm are queried when a host carries both.
package software

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"ferrix-agent/internal/model"
)

var binaryDirs = []string{
	"/usr/local/sbin",
	"/usr/local/bin",
	"/usr/sbin",
	"/usr/bin",
	"/sbin",
	"/bin",
}

const (
	dpkgFormat = "<DEB>\t${Package}\t${Version}\t${Architecture}\n"
	rpmFormat  = "<RPM>\t%{NAME}\t%{VERSION}-%{RELEASE}\t%{ARCH}\n"
)

// ErrNoPackageManager is returned on hosts with neither dpkg nor rpm.
var ErrNoPackageManager = errors.New("no supported package manager found")

// ListPackages queries every detected package manager and merges the
// results into one list.
func ListPackages(ctx context.Context) (model.InstalledPackages, error) {
	var pkgs model.InstalledPackages
	found := false

	if path, ok := lookupBinary("dpkg-query"); ok {
		found = true
		out, err := runQuery(ctx, path, "-W", "-f", dpkgFormat)
		if err != nil {
			return model.InstalledPackages{}, fmt.Errorf("dpkg-query: %w", err)
		}
		pkgs.Packages = append(pkgs.Packages, parseRows(out, model.PkgDeb)...)
	}
	if path, ok := lookupBinary("rpm"); ok {
		found = true
		out, err := runQuery(ctx, path, "-qa", "--queryformat", rpmFormat)
		if err != nil {
			return model.InstalledPackages{}, fmt.Errorf("rpm: %w", err)
		}
		pkgs.Packages = append(pkgs.Packages, parseRows(out, model.PkgRpm)...)
	}

	if !found {
		return model.InstalledPackages{}, ErrNoPackageManager
	}
	return pkgs, nil
}

// lookupBinary probes the fixed binary directories rather than PATH so
// a stripped-down service environment still finds the tools.
func lookupBinary(name string) (string, bool) {
	for _, dir := range binaryDirs {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

func runQuery(ctx context.Context, path string, args ...string) ([]byte, error) {
	var stdout bytes.Buffer
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		return nil, err
	}
	return stdout.Bytes(), nil
}

// parseRows decodes the tab-separated query output. Rows that do not
// match the expected shape are skipped; package managers emit warnings
// on stdout in some configurations.
func parseRows(out []byte, kind model.PkgType) []model.Package {
	marker := "<DEB>"
	if kind == model.PkgRpm {
		marker = "<RPM>"
	}

	var pkgs []model.Package
	for _, line := range strings.Split(string(out), "\n") {
		fields := strings.Split(strings.TrimRight(line, "\r"), "\t")
		if len(fields) != 4 || fields[0] != marker {
			continue
		}
		name := strings.Trim(fields[1], "'")
		if name == "" {
			continue
		}
		pkgs = append(pkgs, model.Package{
			Name:    name,
			Version: strings.Trim(fields[2], "'"),
			Arch:    strings.Trim(fields[3], "'"),
			PkgType: kind,
		})
	}
	return pkgs
}
