package sysfs

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// readString reads a sysfs attribute file and strips the trailing
// newline the kernel always appends.
func readString(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return strings.TrimSpace(string(data)), nil
}

func readStringPtr(path string) *string {
	s, err := readString(path)
	if err != nil {
		return nil
	}
	return &s
}

func readUint32(path string) *uint32 {
	s, err := readString(path)
	if err != nil {
		return nil
	}
	return parseUint32(s)
}

func parseUint32(s string) *uint32 {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return nil
	}
	u := uint32(v)
	return &u
}
