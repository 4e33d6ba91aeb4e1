package dmi

import (
	"encoding/binary"
	"fmt"

	"github.com/digitalocean/go-smbios/smbios"

	"ferrix-agent/internal/model"
)

// structReader reads fields out of one SMBIOS structure using the
// offsets of the reference specification. The decoder strips the
// 4-byte header, so spec offset N lives at Formatted[N-4].
type structReader struct {
	f    []byte
	strs []string
}

func newStructReader(s *smbios.Structure) structReader {
	return structReader{f: s.Formatted, strs: s.Strings}
}

func (r structReader) byteAt(off int) (uint8, bool) {
	i := off - 4
	if i < 0 || i >= len(r.f) {
		return 0, false
	}
	return r.f[i], true
}

func (r structReader) wordAt(off int) (uint16, bool) {
	i := off - 4
	if i < 0 || i+2 > len(r.f) {
		return 0, false
	}
	return binary.LittleEndian.Uint16(r.f[i : i+2]), true
}

func (r structReader) dwordAt(off int) (uint32, bool) {
	i := off - 4
	if i < 0 || i+4 > len(r.f) {
		return 0, false
	}
	return binary.LittleEndian.Uint32(r.f[i : i+4]), true
}

func (r structReader) qwordAt(off int) (uint64, bool) {
	i := off - 4
	if i < 0 || i+8 > len(r.f) {
		return 0, false
	}
	return binary.LittleEndian.Uint64(r.f[i : i+8]), true
}

// stringAt resolves the 1-based string index stored at the offset.
// Index zero and dangling indices come back empty.
func (r structReader) stringAt(off int) string {
	idx, ok := r.byteAt(off)
	if !ok || idx == 0 || int(idx) > len(r.strs) {
		return ""
	}
	return r.strs[idx-1]
}

func decodeBIOS(r structReader) model.BIOS {
	seg, _ := r.wordAt(0x06)
	chars, _ := r.qwordAt(0x0A)
	b := model.BIOS{
		Vendor:                 r.stringAt(0x04),
		Version:                r.stringAt(0x05),
		StartingAddressSegment: seg,
		ReleaseDate:            r.stringAt(0x08),
		CharacteristicsRaw:     chars,
		Characteristics:        decodeBIOSCharacteristics(chars),
	}
	if v, ok := r.byteAt(0x09); ok && v != 0xFF {
		size := model.SizeBytes(uint64(v+1) * 64 * 1024)
		b.RomSize = &size
	}
	if v, ok := r.byteAt(0x14); ok && v != 0xFF {
		b.SystemBIOSMajorRelease = &v
	}
	if v, ok := r.byteAt(0x15); ok && v != 0xFF {
		b.SystemBIOSMinorRelease = &v
	}
	if v, ok := r.byteAt(0x16); ok && v != 0xFF {
		b.ECFirmwareMajorRelease = &v
	}
	if v, ok := r.byteAt(0x17); ok && v != 0xFF {
		b.ECFirmwareMinorRelease = &v
	}
	return b
}

func decodeBIOSCharacteristics(raw uint64) []string {
	var flags []string
	for _, f := range biosCharacteristicFlags {
		if raw&f.bit != 0 {
			flags = append(flags, f.name)
		}
	}
	return flags
}

func decodeSystem(r structReader) model.DMISystem {
	wake, _ := r.byteAt(0x18)
	return model.DMISystem{
		Manufacturer: r.stringAt(0x04),
		ProductName:  r.stringAt(0x05),
		Version:      r.stringAt(0x06),
		SerialNumber: r.stringAt(0x07),
		UUID:         decodeUUID(r),
		WakeUpType:   dmiByte(wake, wakeupTypes),
		SKUNumber:    r.stringAt(0x19),
		Family:       r.stringAt(0x1A),
	}
}

// decodeUUID formats the 16 UUID bytes at offset 0x08. The first three
// fields are little-endian per SMBIOS 2.6+.
func decodeUUID(r structReader) string {
	i := 0x08 - 4
	if i+16 > len(r.f) {
		return ""
	}
	u := r.f[i : i+16]
	return fmt.Sprintf("%02x%02x%02x%02x-%02x%02x-%02x%02x-%02x%02x-%02x%02x%02x%02x%02x%02x",
		u[3], u[2], u[1], u[0],
		u[5], u[4],
		u[7], u[6],
		u[8], u[9],
		u[10], u[11], u[12], u[13], u[14], u[15])
}

func decodeBaseboard(r structReader) model.Baseboard {
	features, _ := r.byteAt(0x09)
	handle, _ := r.wordAt(0x0B)
	boardType, _ := r.byteAt(0x0D)
	var flags []string
	for _, f := range baseboardFeatureFlags {
		if features&f.bit != 0 {
			flags = append(flags, f.name)
		}
	}
	return model.Baseboard{
		Manufacturer:      r.stringAt(0x04),
		Product:           r.stringAt(0x05),
		Version:           r.stringAt(0x06),
		SerialNumber:      r.stringAt(0x07),
		AssetTag:          r.stringAt(0x08),
		FeaturesRaw:       features,
		Features:          flags,
		LocationInChassis: r.stringAt(0x0A),
		ChassisHandle:     handle,
		BoardType:         dmiByte(boardType, boardTypes),
	}
}

func decodeChassis(r structReader) model.Chassis {
	kind, _ := r.byteAt(0x05)
	boot, _ := r.byteAt(0x09)
	power, _ := r.byteAt(0x0A)
	thermal, _ := r.byteAt(0x0B)
	security, _ := r.byteAt(0x0C)
	oem, _ := r.dwordAt(0x0D)
	c := model.Chassis{
		Manufacturer:     r.stringAt(0x04),
		ChassisType:      dmiByte(kind&0x7F, chassisTypes),
		HasLock:          kind&0x80 != 0,
		Version:          r.stringAt(0x06),
		SerialNumber:     r.stringAt(0x07),
		AssetTag:         r.stringAt(0x08),
		BootupState:      dmiByte(boot, chassisStates),
		PowerSupplyState: dmiByte(power, chassisStates),
		ThermalState:     dmiByte(thermal, chassisStates),
		SecurityStatus:   dmiByte(security, chassisSecurityStatuses),
		OEMDefined:       oem,
	}
	if v, ok := r.byteAt(0x11); ok && v != 0 {
		c.Height = &v
	}
	if v, ok := r.byteAt(0x12); ok && v != 0 {
		c.PowerCords = &v
	}
	// The SKU string sits after the variable contained-elements block.
	count, okCount := r.byteAt(0x13)
	recLen, okLen := r.byteAt(0x14)
	if okCount && okLen {
		c.SKUNumber = r.stringAt(0x15 + int(count)*int(recLen))
	}
	return c
}

func decodeProcessor(r structReader) model.DMIProcessor {
	procType, _ := r.byteAt(0x05)
	clock, _ := r.wordAt(0x12)
	maxSpeed, _ := r.wordAt(0x14)
	curSpeed, _ := r.wordAt(0x16)
	status, _ := r.byteAt(0x18)
	upgrade, _ := r.byteAt(0x19)
	chars, _ := r.wordAt(0x26)

	family := uint16(0)
	if b, ok := r.byteAt(0x06); ok {
		family = uint16(b)
	}
	if family == 0xFE {
		if w, ok := r.wordAt(0x28); ok {
			family = w
		}
	}

	id, _ := r.qwordAt(0x08)

	p := model.DMIProcessor{
		SocketDesignation:  r.stringAt(0x04),
		ProcessorType:      dmiByte(procType, processorTypes),
		Family:             dmiWord(family, processorFamilies),
		Manufacturer:       r.stringAt(0x07),
		ID:                 fmt.Sprintf("%016X", id),
		Version:            r.stringAt(0x10),
		ExternalClock:      clock,
		MaxSpeed:           maxSpeed,
		CurrentSpeed:       curSpeed,
		Populated:          status&0x40 != 0,
		Status:             dmiByte(status&0x07, processorStatuses),
		Upgrade:            dmiByte(upgrade, processorUpgrades),
		SerialNumber:       r.stringAt(0x20),
		AssetTag:           r.stringAt(0x21),
		PartNumber:         r.stringAt(0x22),
		CharacteristicsRaw: chars,
	}
	for _, f := range processorCharacteristicFlags {
		if chars&f.bit != 0 {
			p.Characteristics = append(p.Characteristics, f.name)
		}
	}
	if h, ok := r.wordAt(0x1A); ok && h != 0xFFFF {
		p.L1CacheHandle = &h
	}
	if h, ok := r.wordAt(0x1C); ok && h != 0xFFFF {
		p.L2CacheHandle = &h
	}
	if h, ok := r.wordAt(0x1E); ok && h != 0xFFFF {
		p.L3CacheHandle = &h
	}
	p.CoreCount = extendedCount(r, 0x23, 0x2A)
	p.CoreEnabled = extendedCount(r, 0x24, 0x2C)
	p.ThreadCount = extendedCount(r, 0x25, 0x2E)
	return p
}

// extendedCount reads a byte-wide count and falls through to the
// SMBIOS 3.0 word field when the byte carries the 0xFF overflow mark.
func extendedCount(r structReader, byteOff, wordOff int) uint16 {
	b, ok := r.byteAt(byteOff)
	if !ok {
		return 0
	}
	if b == 0xFF {
		if w, ok := r.wordAt(wordOff); ok {
			return w
		}
	}
	return uint16(b)
}

func decodeCache(r structReader) model.DMICache {
	config, _ := r.wordAt(0x05)
	speed, _ := r.byteAt(0x0F)
	ecc, _ := r.byteAt(0x10)
	kind, _ := r.byteAt(0x11)
	assoc, _ := r.byteAt(0x12)
	supported, _ := r.wordAt(0x0B)
	current, _ := r.wordAt(0x0D)

	c := model.DMICache{
		SocketDesignation: r.stringAt(0x04),
		Level:             uint8(config&0x07) + 1,
		Socketed:          config&0x08 != 0,
		Location:          dmiByte(uint8((config>>5)&0x03), cacheLocations),
		Enabled:           config&0x80 != 0,
		Mode:              dmiByte(uint8((config>>8)&0x03), cacheModes),
		SupportedSRAM:     decodeSRAMTypes(supported),
		CurrentSRAM:       decodeSRAMTypes(current),
		Speed:             speed,
		ErrorCorrection:   dmiByte(ecc, cacheErrorCorrections),
		CacheType:         dmiByte(kind, cacheTypes),
		Associativity:     dmiByte(assoc, cacheAssociativities),
	}
	if w, ok := r.wordAt(0x07); ok {
		c.MaxSize = cacheSize(w)
	}
	if w, ok := r.wordAt(0x09); ok {
		c.InstalledSize = cacheSize(w)
	}
	return c
}

// cacheSize decodes the type 7 size word: bit 15 selects 64K
// granularity over 1K, zero means no cache at that slot.
func cacheSize(w uint16) *model.Size {
	if w == 0 {
		return nil
	}
	granularity := uint64(1024)
	if w&0x8000 != 0 {
		granularity = 64 * 1024
	}
	s := model.SizeBytes(uint64(w&0x7FFF) * granularity)
	return &s
}

func decodeSRAMTypes(raw uint16) []string {
	var types []string
	for _, f := range sramTypeFlags {
		if raw&f.bit != 0 {
			types = append(types, f.name)
		}
	}
	return types
}

func decodePort(r structReader) model.DMIPort {
	internal, _ := r.byteAt(0x05)
	external, _ := r.byteAt(0x07)
	portType, _ := r.byteAt(0x08)
	return model.DMIPort{
		InternalReference: r.stringAt(0x04),
		InternalConnector: dmiByte(internal, connectorTypes),
		ExternalReference: r.stringAt(0x06),
		ExternalConnector: dmiByte(external, connectorTypes),
		PortType:          dmiByte(portType, portTypes),
	}
}

func decodeMemoryArray(r structReader) model.MemoryArray {
	location, _ := r.byteAt(0x04)
	use, _ := r.byteAt(0x05)
	ecc, _ := r.byteAt(0x06)
	errHandle, _ := r.wordAt(0x0B)
	devices, _ := r.wordAt(0x0D)

	a := model.MemoryArray{
		Location:        dmiByte(location, memoryArrayLocations),
		Use:             dmiByte(use, memoryArrayUses),
		ErrorCorrection: dmiByte(ecc, memoryArrayECCs),
		ErrorHandle:     errHandle,
		Devices:         devices,
	}
	if cap32, ok := r.dwordAt(0x07); ok {
		if cap32 == 0x80000000 {
			if ext, ok := r.qwordAt(0x0F); ok {
				a.MaxCapacity = model.SizeBytes(ext)
			}
		} else {
			a.MaxCapacity = model.SizeKilobytes(float64(cap32))
		}
	}
	return a
}

func decodeMemoryDevice(r structReader) model.MemoryDevice {
	arrayHandle, _ := r.wordAt(0x04)
	errHandle, _ := r.wordAt(0x06)
	formFactor, _ := r.byteAt(0x0E)
	memType, _ := r.byteAt(0x12)
	detail, _ := r.wordAt(0x13)

	d := model.MemoryDevice{
		ArrayHandle:   arrayHandle,
		ErrorHandle:   errHandle,
		FormFactor:    dmiByte(formFactor, memoryFormFactors),
		DeviceLocator: r.stringAt(0x10),
		BankLocator:   r.stringAt(0x11),
		MemoryType:    dmiByte(memType, memoryTypes),
		TypeDetailRaw: detail,
		Manufacturer:  r.stringAt(0x17),
		SerialNumber:  r.stringAt(0x18),
		AssetTag:      r.stringAt(0x19),
		PartNumber:    r.stringAt(0x1A),
	}
	for _, f := range memoryTypeDetailFlags {
		if detail&f.bit != 0 {
			d.TypeDetail = append(d.TypeDetail, f.name)
		}
	}
	if w, ok := r.wordAt(0x08); ok && w != 0xFFFF {
		d.TotalWidth = &w
	}
	if w, ok := r.wordAt(0x0A); ok && w != 0xFFFF {
		d.DataWidth = &w
	}
	d.Size = memoryDeviceSize(r)
	if v, ok := r.byteAt(0x0F); ok && v != 0 && v != 0xFF {
		d.DeviceSet = &v
	}
	if w, ok := r.wordAt(0x15); ok && w != 0 {
		d.SpeedMTs = &w
	}
	if v, ok := r.byteAt(0x1B); ok {
		if rank := v & 0x0F; rank != 0 {
			d.Rank = &rank
		}
	}
	if w, ok := r.wordAt(0x20); ok && w != 0 {
		d.ConfiguredSpeed = &w
	}
	if w, ok := r.wordAt(0x22); ok && w != 0 {
		d.MinVoltage = &w
	}
	if w, ok := r.wordAt(0x24); ok && w != 0 {
		d.MaxVoltage = &w
	}
	if w, ok := r.wordAt(0x26); ok && w != 0 {
		d.ConfiguredVoltage = &w
	}
	return d
}

// memoryDeviceSize decodes the type 17 size word: 0 is an empty slot,
// 0xFFFF unknown, bit 15 switches to KB units, and 0x7FFF redirects to
// the extended dword in MB.
func memoryDeviceSize(r structReader) *model.Size {
	w, ok := r.wordAt(0x0C)
	if !ok || w == 0 || w == 0xFFFF {
		return nil
	}
	var s model.Size
	switch {
	case w == 0x7FFF:
		ext, ok := r.dwordAt(0x1C)
		if !ok {
			return nil
		}
		s = model.SizeMegabytes(float64(ext & 0x7FFFFFFF))
	case w&0x8000 != 0:
		s = model.SizeKilobytes(float64(w & 0x7FFF))
	default:
		s = model.SizeMegabytes(float64(w))
	}
	return &s
}
