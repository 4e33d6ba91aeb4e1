package proc

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"ferrix-agent/internal/model"
)

const swapsPath = "/proc/swaps"

// ReadSwaps reads and parses /proc/swaps.
func ReadSwaps() (model.Swaps, error) {
	f, err := os.Open(swapsPath)
	if err != nil {
		return model.Swaps{}, fmt.Errorf("open %s: %w", swapsPath, err)
	}
	defer f.Close()
	return ParseSwaps(f)
}

// ParseSwaps decodes the swap table. The first line is the column
// header; every other row must carry exactly five fields, a short row
// fails the whole parse since the table layout is fixed.
func ParseSwaps(r io.Reader) (model.Swaps, error) {
	var swaps model.Swaps
	sc := bufio.NewScanner(r)
	first := true
	for sc.Scan() {
		line := sc.Text()
		if first {
			first = false
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 5 {
			return model.Swaps{}, fmt.Errorf("malformed swaps row %q", line)
		}
		size, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return model.Swaps{}, fmt.Errorf("swap size %q: %w", fields[2], err)
		}
		used, err := strconv.ParseFloat(fields[3], 64)
		if err != nil {
			return model.Swaps{}, fmt.Errorf("swap used %q: %w", fields[3], err)
		}
		prio, err := strconv.Atoi(fields[4])
		if err != nil {
			return model.Swaps{}, fmt.Errorf("swap priority %q: %w", fields[4], err)
		}
		swaps.Swaps = append(swaps.Swaps, model.SwapEntry{
			Filename: fields[0],
			SwapType: fields[1],
			Size:     model.SizeKilobytes(size),
			Used:     model.SizeKilobytes(used),
			Priority: prio,
		})
	}
	if err := sc.Err(); err != nil {
		return model.Swaps{}, fmt.Errorf("scan swaps: %w", err)
	}
	return swaps, nil
}
