package sysfs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"ferrix-agent/internal/model"
)

const drmRoot = "/sys/class/drm"

// ReadVideo walks the DRM class directories and reports every
// connector with its EDID when one is exposed. A corrupt EDID only
// fails the read when the connector is enabled; disconnected ports
// routinely expose stale blobs.
func ReadVideo() (model.Video, error) {
	return readVideo(drmRoot)
}

func readVideo(root string) (model.Video, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return model.Video{}, fmt.Errorf("read %s: %w", root, err)
	}

	var video model.Video
	for _, e := range entries {
		name := e.Name()
		if !strings.HasPrefix(name, "card") || !strings.Contains(name, "-") {
			continue
		}
		dir := filepath.Join(root, name)

		enabled := false
		if s, err := readString(filepath.Join(dir, "enabled")); err == nil {
			enabled = s == "enabled"
		}

		display := model.Display{Connector: name, Enabled: enabled}
		if s, err := readString(filepath.Join(dir, "modes")); err == nil && s != "" {
			display.Modes = strings.Split(s, "\n")
		}
		if blob, err := os.ReadFile(filepath.Join(dir, "edid")); err == nil && len(blob) > 0 {
			edid, err := ParseEDID(blob)
			if err != nil {
				if enabled {
					return model.Video{}, fmt.Errorf("connector %s: %w", name, err)
				}
			} else {
				display.EDID = &edid
			}
		}
		video.Devices = append(video.Devices, display)
	}
	sort.Slice(video.Devices, func(i, j int) bool {
		return video.Devices[i].Connector < video.Devices[j].Connector
	})
	return video, nil
}
