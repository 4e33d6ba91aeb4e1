package proc

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// readTrimmed reads a small pseudo-file and strips surrounding
// whitespace, which every /proc and /etc text file carries.
func readTrimmed(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// readTrimmedPtr is readTrimmed for optional files: absence or read
// failure yields nil instead of an error.
func readTrimmedPtr(path string) *string {
	s, err := readTrimmed(path)
	if err != nil {
		return nil
	}
	return &s
}

func parseUint32(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

func uint32Ptr(s string) *uint32 {
	v, err := parseUint32(s)
	if err != nil {
		return nil
	}
	return &v
}

func uint64Ptr(s string) *uint64 {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

func floatPtr(s string) *float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }
