package sysfs

import (
	"encoding/binary"
	"fmt"

	"ferrix-agent/internal/model"
)

var edidHeader = [8]byte{0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x00}

var bitDepthNames = map[uint8]string{
	0: "undefined",
	1: "6",
	2: "8",
	3: "10",
	4: "12",
	5: "14",
	6: "16",
	7: "reserved",
}

var videoInterfaceNames = map[uint8]string{
	0: "undefined",
	1: "DVI",
	2: "HDMIa",
	3: "HDMIb",
	4: "MDDI",
	5: "DisplayPort",
}

// ParseEDID decodes the fixed header block of an EDID v1.x blob.
func ParseEDID(data []byte) (model.EDID, error) {
	if len(data) < 128 {
		return model.EDID{}, fmt.Errorf("edid blob too short: %d bytes", len(data))
	}
	if [8]byte(data[:8]) != edidHeader {
		return model.EDID{}, fmt.Errorf("bad edid header % x", data[:8])
	}

	edid := model.EDID{
		Manufacturer: decodeManufacturer(binary.BigEndian.Uint16(data[8:10])),
		ProductCode:  binary.LittleEndian.Uint16(data[10:12]),
		SerialNumber: binary.LittleEndian.Uint32(data[12:16]),
		Week:         data[16],
		Year:         uint16(data[17]) + 1990,
		EDIDVersion:  data[18],
		EDIDRevision: data[19],
		HScreenSize:  data[21],
		VScreenSize:  data[22],
		DisplayGamma: data[23],
	}

	d := data[20]
	if (d>>7)&1 == 1 {
		depth := (d >> 4) & 7
		iface := d & 7
		edid.VideoInput.Digital = &model.DigitalInput{
			BitDepth:       edidField(depth, bitDepthNames),
			VideoInterface: edidField(iface, videoInterfaceNames),
		}
	} else {
		edid.VideoInput.Analog = &model.AnalogInput{
			WhiteSyncLevels:       (d >> 5) & 3,
			BlankToBlackSetup:     (d >> 4) & 1,
			SeparateSyncSupported: (d >> 3) & 1,
			CompositeSyncSupport:  (d >> 2) & 1,
			SyncOnGreenSupported:  (d >> 1) & 1,
			SyncOnGreenUsed:       d & 1,
		}
	}
	return edid, nil
}

// decodeManufacturer unpacks the three 5-bit letters of the PNP id.
func decodeManufacturer(w uint16) string {
	return string([]byte{
		byte((w>>10)&0x1F) + 64,
		byte((w>>5)&0x1F) + 64,
		byte(w&0x1F) + 64,
	})
}

func edidField(raw uint8, names map[uint8]string) model.EDIDField {
	name, ok := names[raw]
	if !ok {
		name = "unknown"
	}
	return model.EDIDField{Raw: raw, Name: name}
}
