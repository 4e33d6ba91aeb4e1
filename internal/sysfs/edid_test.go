package sysfs

import "testing"

// edidFixture builds a minimal 128-byte blob with a digital byte-20.
func edidFixture() []byte {
	blob := make([]byte, 128)
	copy(blob, []byte{0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x00})
	blob[8], blob[9] = 0x06, 0x0C // "APL"
	blob[10], blob[11] = 0x34, 0xA0
	blob[12], blob[13], blob[14], blob[15] = 0x78, 0x56, 0x34, 0x12
	blob[16] = 4  // week
	blob[17] = 30 // 2020
	blob[18], blob[19] = 1, 4
	blob[20] = 0xA5 // digital, 8 bit, DisplayPort
	blob[21], blob[22] = 34, 19
	blob[23] = 120
	return blob
}

func TestParseEDIDDigital(t *testing.T) {
	t.Parallel()

	edid, err := ParseEDID(edidFixture())
	if err != nil {
		t.Fatalf("ParseEDID: %v", err)
	}

	if edid.Manufacturer != "APL" {
		t.Errorf("manufacturer = %q", edid.Manufacturer)
	}
	if edid.ProductCode != 0xA034 {
		t.Errorf("product code = %#x", edid.ProductCode)
	}
	if edid.SerialNumber != 0x12345678 {
		t.Errorf("serial = %#x", edid.SerialNumber)
	}
	if edid.Week != 4 || edid.Year != 2020 {
		t.Errorf("week/year = %d/%d", edid.Week, edid.Year)
	}
	if edid.EDIDVersion != 1 || edid.EDIDRevision != 4 {
		t.Errorf("version = %d.%d", edid.EDIDVersion, edid.EDIDRevision)
	}
	if edid.VideoInput.Analog != nil {
		t.Fatal("analog branch set for a digital display")
	}
	dig := edid.VideoInput.Digital
	if dig == nil {
		t.Fatal("digital branch not set")
	}
	if dig.BitDepth.Raw != 2 || dig.BitDepth.Name != "8" {
		t.Errorf("bit depth = %+v", dig.BitDepth)
	}
	if dig.VideoInterface.Raw != 5 || dig.VideoInterface.Name != "DisplayPort" {
		t.Errorf("interface = %+v", dig.VideoInterface)
	}
	if edid.HScreenSize != 34 || edid.VScreenSize != 19 {
		t.Errorf("screen = %dx%d", edid.HScreenSize, edid.VScreenSize)
	}
	if edid.DisplayGamma != 120 {
		t.Errorf("gamma = %d", edid.DisplayGamma)
	}
}

func TestParseEDIDAnalog(t *testing.T) {
	t.Parallel()

	blob := edidFixture()
	blob[20] = 0x6E // analog, white/sync 3, setup 0, all sync bits but the last
	edid, err := ParseEDID(blob)
	if err != nil {
		t.Fatalf("ParseEDID: %v", err)
	}
	if edid.VideoInput.Digital != nil {
		t.Fatal("digital branch set for an analog display")
	}
	ana := edid.VideoInput.Analog
	if ana == nil {
		t.Fatal("analog branch not set")
	}
	if ana.WhiteSyncLevels != 3 || ana.BlankToBlackSetup != 0 {
		t.Errorf("analog = %+v", ana)
	}
	if ana.SeparateSyncSupported != 1 || ana.SyncOnGreenUsed != 0 {
		t.Errorf("analog sync bits = %+v", ana)
	}
}

func TestParseEDIDRejectsGarbage(t *testing.T) {
	t.Parallel()

	if _, err := ParseEDID([]byte{0x00, 0xFF}); err == nil {
		t.Fatal("expected error for short blob")
	}
	blob := edidFixture()
	blob[0] = 0x13
	if _, err := ParseEDID(blob); err == nil {
		t.Fatal("expected error for bad header")
	}
}
