// Package dmi decodes the SMBIOS table into the inventory model. The
// raw structure stream comes from /sys/firmware/dmi/tables or
// /dev/mem, so plain users typically need the privileged helper.
package dmi

import (
	"errors"
	"fmt"

	"github.com/digitalocean/go-smbios/smbios"

	"ferrix-agent/internal/model"
)

// Read streams and decodes the SMBIOS table of the running machine.
func Read() (model.DMITable, error) {
	rc, ep, err := smbios.Stream()
	if err != nil {
		return model.DMITable{}, fmt.Errorf("open smbios stream: %w", err)
	}
	defer rc.Close()

	ss, err := smbios.NewDecoder(rc).Decode()
	if err != nil {
		return model.DMITable{}, fmt.Errorf("decode smbios: %w", err)
	}
	major, minor, rev := ep.Version()
	return Decode(fmt.Sprintf("%d.%d.%d", major, minor, rev), ss)
}

// Decode maps raw SMBIOS structures onto the inventory table. The
// singleton structures (types 0-3) must all be present; their absence
// means the firmware exposes no usable DMI data.
func Decode(version string, ss []*smbios.Structure) (model.DMITable, error) {
	table := model.DMITable{Version: version}
	var sawBIOS, sawSystem, sawBaseboard, sawChassis bool

	for _, s := range ss {
		r := newStructReader(s)
		switch s.Header.Type {
		case 0:
			table.Bios = decodeBIOS(r)
			sawBIOS = true
		case 1:
			table.System = decodeSystem(r)
			sawSystem = true
		case 2:
			table.Baseboard = decodeBaseboard(r)
			sawBaseboard = true
		case 3:
			table.Chassis = decodeChassis(r)
			sawChassis = true
		case 4:
			table.Processors = append(table.Processors, decodeProcessor(r))
		case 7:
			table.Caches = append(table.Caches, decodeCache(r))
		case 8:
			table.Ports = append(table.Ports, decodePort(r))
		case 16:
			table.MemoryArrays = append(table.MemoryArrays, decodeMemoryArray(r))
		case 17:
			table.MemoryDevices = append(table.MemoryDevices, decodeMemoryDevice(r))
		}
	}

	switch {
	case !sawBIOS:
		return model.DMITable{}, errors.New("smbios table has no BIOS structure")
	case !sawSystem:
		return model.DMITable{}, errors.New("smbios table has no system structure")
	case !sawBaseboard:
		return model.DMITable{}, errors.New("smbios table has no baseboard structure")
	case !sawChassis:
		return model.DMITable{}, errors.New("smbios table has no chassis structure")
	}
	return table, nil
}
