package export

import (
	"errors"
	"strings"
	"testing"
	"time"

	"ferrix-agent/internal/model"
)

func sampleInventory() model.Inventory {
	var inv model.Inventory
	inv.CollectedAt = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	inv.Memory = model.Wrap(model.Memory{
		Total:     model.SizeKilobytes(16256376),
		Available: model.SizeKilobytes(12000000),
	}, nil)
	inv.Swaps = model.Wrap(model.Swaps{}, errors.New("open /proc/swaps: permission denied"))
	inv.Distro = model.Wrap(model.OSRelease{Name: "Ferrix OS"}, nil)
	return inv
}

func TestJSON(t *testing.T) {
	t.Parallel()

	out, err := JSON(sampleInventory())
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	s := string(out)
	if !strings.Contains(s, `"memory_ram":{"data":{`) {
		t.Errorf("memory section missing: %s", s)
	}
	if !strings.Contains(s, `"memory_swaps":{"error":"open /proc/swaps: permission denied"}`) {
		t.Errorf("swap error slot missing: %s", s)
	}
	if !strings.Contains(s, `"name":"Ferrix OS"`) {
		t.Errorf("distro missing: %s", s)
	}
}

func TestJSONIndent(t *testing.T) {
	t.Parallel()

	out, err := JSONIndent(sampleInventory())
	if err != nil {
		t.Fatalf("JSONIndent: %v", err)
	}
	if !strings.Contains(string(out), "\n  \"collected_at\"") {
		t.Errorf("output not indented: %s", out)
	}
}

func TestXML(t *testing.T) {
	t.Parallel()

	out, err := XML(sampleInventory())
	if err != nil {
		t.Fatalf("XML: %v", err)
	}
	s := string(out)
	if !strings.HasPrefix(s, "<?xml") {
		t.Errorf("missing xml header: %s", s[:40])
	}
	if !strings.Contains(s, "<ferrix>") || !strings.Contains(s, "</ferrix>") {
		t.Errorf("missing document element: %s", s)
	}
	if !strings.Contains(s, "<name>Ferrix OS</name>") {
		t.Errorf("distro missing: %s", s)
	}
}
