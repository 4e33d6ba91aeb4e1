package dmi

import (
	"testing"

	"github.com/digitalocean/go-smbios/smbios"
)

func biosStructure() *smbios.Structure {
	return &smbios.Structure{
		Header: smbios.Header{Type: 0, Length: 0x18, Handle: 0x0000},
		Formatted: []byte{
			1, 2, // vendor, version
			0x00, 0xE8, // starting address segment
			3,    // release date
			0x0F, // rom size: 1 MB
			0x80, 0x08, 0, 0, 0, 0, 0, 0, // characteristics: PCI, upgradeable
			0, 0, // extension bytes
			1, 2, // system bios 1.2
			0xFF, 0xFF, // no EC firmware
		},
		Strings: []string{"FerrixWare", "1.2.3", "04/01/2024"},
	}
}

func systemStructure() *smbios.Structure {
	return &smbios.Structure{
		Header: smbios.Header{Type: 1, Length: 0x1B, Handle: 0x0100},
		Formatted: []byte{
			1, 2, 3, 4,
			0x33, 0x22, 0x11, 0x00, 0x55, 0x44, 0x77, 0x66,
			0x88, 0x99, 0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF,
			0x06, // wake-up: power switch
			5, 6,
		},
		Strings: []string{"Ferrix Systems", "FX-1", "A0", "SN123", "SKU-9", "Granite"},
	}
}

func baseboardStructure() *smbios.Structure {
	return &smbios.Structure{
		Header: smbios.Header{Type: 2, Length: 0x0E, Handle: 0x0200},
		Formatted: []byte{
			1, 2, 3, 4, 5,
			0x09, // hosting board, replaceable
			6,
			0x00, 0x03, // chassis handle
			0x0A, // motherboard
		},
		Strings: []string{"Ferrix Systems", "FX-MB", "rev2", "MB-SN", "MB-AT", "slot 1"},
	}
}

func chassisStructure() *smbios.Structure {
	return &smbios.Structure{
		Header: smbios.Header{Type: 3, Length: 0x16, Handle: 0x0300},
		Formatted: []byte{
			1,
			0x8A, // lock bit + notebook
			2, 3, 4,
			0x03, 0x03, 0x03, // safe states
			0x03,       // security: none
			0, 0, 0, 0, // oem
			0,    // height unspecified
			1,    // one power cord
			0, 0, // no contained elements
			5, // sku
		},
		Strings: []string{"Ferrix Systems", "c1", "CH-SN", "CH-AT", "CH-SKU"},
	}
}

func processorStructure() *smbios.Structure {
	return &smbios.Structure{
		Header: smbios.Header{Type: 4, Length: 0x30, Handle: 0x0400},
		Formatted: []byte{
			1,    // socket
			0x03, // central processor
			0xC6, // core i7
			2,
			0xA9, 0x06, 0x03, 0x00, 0xFF, 0xFB, 0xEB, 0xBF, // id
			3,
			0x8B,       // voltage
			0x64, 0x00, // 100 MHz external clock
			0xA0, 0x0F, // max 4000
			0xD0, 0x07, // current 2000
			0x41, // populated, enabled
			0x01, // upgrade: other
			0x10, 0x00, // l1
			0x11, 0x00, // l2
			0xFF, 0xFF, // no l3
			4, 5, 6,
			0xFF, // core count overflows to word
			8,    // cores enabled
			16,   // thread count
			0x0C, 0x00, // 64-bit, multi-core
			0x00, 0x00, // family2 unused
			0x14, 0x00, // 20 cores
			0x00, 0x00,
			0x00, 0x00,
		},
		Strings: []string{"CPU0", "Ferrix Semi", "Ferrix FX-9 3.0GHz", "CPU-SN", "CPU-AT", "FX9-3000"},
	}
}

func memoryDeviceStructure() *smbios.Structure {
	return &smbios.Structure{
		Header: smbios.Header{Type: 17, Length: 0x28, Handle: 0x1100},
		Formatted: []byte{
			0x00, 0x10, // array handle
			0xFE, 0xFF, // error handle
			72, 0, // total width
			64, 0, // data width
			0x00, 0x40, // 16384 MB
			0x09, // DIMM
			0,    // no device set
			1, 2,
			0x1A,       // DDR4
			0x80, 0x00, // synchronous
			0x80, 0x0C, // 3200 MT/s
			3, 4, 5, 6,
			0x02,                   // rank 2
			0x00, 0x00, 0x00, 0x00, // extended size unused
			0x75, 0x0B, // configured 2933
			0x74, 0x04, // 1140 mV
			0xEC, 0x04, // 1260 mV
			0xB0, 0x04, // 1200 mV
		},
		Strings: []string{"DIMM A1", "BANK 0", "Ferrix Memory", "MEM-SN", "MEM-AT", "FXM-16G"},
	}
}

func fullTable() []*smbios.Structure {
	return []*smbios.Structure{
		biosStructure(),
		systemStructure(),
		baseboardStructure(),
		chassisStructure(),
		processorStructure(),
		memoryDeviceStructure(),
	}
}

func TestDecode(t *testing.T) {
	t.Parallel()

	table, err := Decode("3.2.0", fullTable())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if table.Version != "3.2.0" {
		t.Errorf("version = %q", table.Version)
	}

	bios := table.Bios
	if bios.Vendor != "FerrixWare" || bios.Version != "1.2.3" || bios.ReleaseDate != "04/01/2024" {
		t.Errorf("bios = %+v", bios)
	}
	if bios.StartingAddressSegment != 0xE800 {
		t.Errorf("segment = %#x", bios.StartingAddressSegment)
	}
	if bios.RomSize == nil {
		t.Fatal("rom size missing")
	}
	if b, ok := bios.RomSize.Bytes(2); !ok || b != 1024*1024 {
		t.Errorf("rom size = %v", bios.RomSize)
	}
	if len(bios.Characteristics) != 2 || bios.Characteristics[0] != "PCI" {
		t.Errorf("characteristics = %v", bios.Characteristics)
	}
	if bios.SystemBIOSMajorRelease == nil || *bios.SystemBIOSMajorRelease != 1 {
		t.Errorf("bios major = %v", bios.SystemBIOSMajorRelease)
	}
	if bios.ECFirmwareMajorRelease != nil {
		t.Error("0xFF EC release should be nil")
	}

	sys := table.System
	if sys.Manufacturer != "Ferrix Systems" || sys.ProductName != "FX-1" {
		t.Errorf("system = %+v", sys)
	}
	if sys.UUID != "00112233-4455-6677-8899-aabbccddeeff" {
		t.Errorf("uuid = %q", sys.UUID)
	}
	if sys.WakeUpType.Raw != 0x06 || sys.WakeUpType.Value != "Power Switch" {
		t.Errorf("wakeup = %+v", sys.WakeUpType)
	}

	board := table.Baseboard
	if board.BoardType.Value != "Motherboard" || board.ChassisHandle != 0x0300 {
		t.Errorf("baseboard = %+v", board)
	}
	if len(board.Features) != 2 || board.Features[1] != "Replaceable" {
		t.Errorf("features = %v", board.Features)
	}

	chassis := table.Chassis
	if chassis.ChassisType.Raw != 0x0A || chassis.ChassisType.Value != "Notebook" {
		t.Errorf("chassis type = %+v", chassis.ChassisType)
	}
	if !chassis.HasLock {
		t.Error("lock bit lost")
	}
	if chassis.Height != nil {
		t.Error("zero height should be nil")
	}
	if chassis.PowerCords == nil || *chassis.PowerCords != 1 {
		t.Errorf("power cords = %v", chassis.PowerCords)
	}
	if chassis.SKUNumber != "CH-SKU" {
		t.Errorf("chassis sku = %q", chassis.SKUNumber)
	}

	if len(table.Processors) != 1 {
		t.Fatalf("processors = %d", len(table.Processors))
	}
	proc := table.Processors[0]
	if proc.Family.Raw != 0xC6 || proc.Family.Value != "Intel Core i7" {
		t.Errorf("family = %+v", proc.Family)
	}
	if proc.ID != "BFEBFBFF000306A9" {
		t.Errorf("id = %q", proc.ID)
	}
	if !proc.Populated || proc.Status.Value != "Enabled" {
		t.Errorf("status = %+v", proc.Status)
	}
	if proc.CoreCount != 20 {
		t.Errorf("core count = %d, extended word not honored", proc.CoreCount)
	}
	if proc.CoreEnabled != 8 || proc.ThreadCount != 16 {
		t.Errorf("cores/threads = %d/%d", proc.CoreEnabled, proc.ThreadCount)
	}
	if proc.L3CacheHandle != nil {
		t.Error("0xFFFF l3 handle should be nil")
	}
	if len(proc.Characteristics) != 2 {
		t.Errorf("characteristics = %v", proc.Characteristics)
	}

	if len(table.MemoryDevices) != 1 {
		t.Fatalf("memory devices = %d", len(table.MemoryDevices))
	}
	mem := table.MemoryDevices[0]
	if mem.Size == nil {
		t.Fatal("size missing")
	}
	if b, ok := mem.Size.Bytes(2); !ok || b != 16384*1024*1024 {
		t.Errorf("size = %v", mem.Size)
	}
	if mem.MemoryType.Value != "DDR4" || mem.FormFactor.Value != "DIMM" {
		t.Errorf("type/form = %+v %+v", mem.MemoryType, mem.FormFactor)
	}
	if mem.SpeedMTs == nil || *mem.SpeedMTs != 3200 {
		t.Errorf("speed = %v", mem.SpeedMTs)
	}
	if mem.Rank == nil || *mem.Rank != 2 {
		t.Errorf("rank = %v", mem.Rank)
	}
	if mem.ConfiguredVoltage == nil || *mem.ConfiguredVoltage != 1200 {
		t.Errorf("configured voltage = %v", mem.ConfiguredVoltage)
	}
	if mem.DeviceSet != nil {
		t.Error("zero device set should be nil")
	}
}

func TestDecodeMissingSingleton(t *testing.T) {
	t.Parallel()

	ss := []*smbios.Structure{biosStructure(), systemStructure(), chassisStructure()}
	if _, err := Decode("3.2.0", ss); err == nil {
		t.Fatal("expected error without a baseboard structure")
	}
}

func TestMemoryDeviceEmptySlot(t *testing.T) {
	t.Parallel()

	s := memoryDeviceStructure()
	s.Formatted[8], s.Formatted[9] = 0x00, 0x00
	d := decodeMemoryDevice(newStructReader(s))
	if d.Size != nil {
		t.Errorf("empty slot size = %v", d.Size)
	}

	s.Formatted[8], s.Formatted[9] = 0xFF, 0xFF
	d = decodeMemoryDevice(newStructReader(s))
	if d.Size != nil {
		t.Errorf("unknown size = %v", d.Size)
	}
}
