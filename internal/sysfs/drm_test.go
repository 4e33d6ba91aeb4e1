package sysfs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadVideo(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	for _, d := range []string{"card0", "card0-eDP-1", "card0-HDMI-A-1", "renderD128", "version"} {
		if err := os.MkdirAll(filepath.Join(root, d), 0o755); err != nil {
			t.Fatal(err)
		}
	}

	edp := filepath.Join(root, "card0-eDP-1")
	writeAttr(t, edp, "enabled", "enabled")
	writeAttr(t, edp, "modes", "1920x1080\n1280x720")
	if err := os.WriteFile(filepath.Join(edp, "edid"), edidFixture(), 0o644); err != nil {
		t.Fatal(err)
	}

	hdmi := filepath.Join(root, "card0-HDMI-A-1")
	writeAttr(t, hdmi, "enabled", "disabled")
	// Stale garbage blob on a disabled connector is swallowed.
	if err := os.WriteFile(filepath.Join(hdmi, "edid"), []byte{0xDE, 0xAD}, 0o644); err != nil {
		t.Fatal(err)
	}

	video, err := readVideo(root)
	if err != nil {
		t.Fatalf("readVideo: %v", err)
	}
	if len(video.Devices) != 2 {
		t.Fatalf("expected 2 connectors, got %d", len(video.Devices))
	}

	first := video.Devices[0]
	if first.Connector != "card0-HDMI-A-1" || first.Enabled {
		t.Errorf("first connector = %+v", first)
	}
	if first.EDID != nil {
		t.Error("garbage edid should be dropped on a disabled connector")
	}

	second := video.Devices[1]
	if second.Connector != "card0-eDP-1" || !second.Enabled {
		t.Errorf("second connector = %+v", second)
	}
	if second.EDID == nil || second.EDID.Manufacturer != "APL" {
		t.Errorf("edid = %+v", second.EDID)
	}
	if len(second.Modes) != 2 || second.Modes[0] != "1920x1080" {
		t.Errorf("modes = %v", second.Modes)
	}
}

func TestReadVideoEnabledBadEDID(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	dir := filepath.Join(root, "card0-DP-1")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	writeAttr(t, dir, "enabled", "enabled")
	if err := os.WriteFile(filepath.Join(dir, "edid"), []byte{0xDE, 0xAD}, 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := readVideo(root); err == nil {
		t.Fatal("expected error for corrupt edid on an enabled connector")
	}
}
