package dmi

import "ferrix-agent/internal/model"

// Enumeration tables from the SMBIOS reference specification. Raw
// values outside a table decode to "unknown" but stay in the output.

var wakeupTypes = map[uint8]string{
	0x00: "Reserved",
	0x01: "Other",
	0x02: "Unknown",
	0x03: "APM Timer",
	0x04: "Modem Ring",
	0x05: "LAN Remote",
	0x06: "Power Switch",
	0x07: "PCI PME#",
	0x08: "AC Power Restored",
}

var boardTypes = map[uint8]string{
	0x01: "Unknown",
	0x02: "Other",
	0x03: "Server Blade",
	0x04: "Connectivity Switch",
	0x05: "System Management Module",
	0x06: "Processor Module",
	0x07: "I/O Module",
	0x08: "Memory Module",
	0x09: "Daughter Board",
	0x0A: "Motherboard",
	0x0B: "Processor/Memory Module",
	0x0C: "Processor/IO Module",
	0x0D: "Interconnect Board",
}

var chassisTypes = map[uint8]string{
	0x01: "Other",
	0x02: "Unknown",
	0x03: "Desktop",
	0x04: "Low Profile Desktop",
	0x05: "Pizza Box",
	0x06: "Mini Tower",
	0x07: "Tower",
	0x08: "Portable",
	0x09: "Laptop",
	0x0A: "Notebook",
	0x0B: "Hand Held",
	0x0C: "Docking Station",
	0x0D: "All in One",
	0x0E: "Sub Notebook",
	0x0F: "Space-saving",
	0x10: "Lunch Box",
	0x11: "Main Server Chassis",
	0x12: "Expansion Chassis",
	0x13: "SubChassis",
	0x14: "Bus Expansion Chassis",
	0x15: "Peripheral Chassis",
	0x16: "RAID Chassis",
	0x17: "Rack Mount Chassis",
	0x18: "Sealed-case PC",
	0x19: "Multi-system Chassis",
	0x1A: "Compact PCI",
	0x1B: "Advanced TCA",
	0x1C: "Blade",
	0x1D: "Blade Enclosure",
	0x1E: "Tablet",
	0x1F: "Convertible",
	0x20: "Detachable",
	0x21: "IoT Gateway",
	0x22: "Embedded PC",
	0x23: "Mini PC",
	0x24: "Stick PC",
}

var chassisStates = map[uint8]string{
	0x01: "Other",
	0x02: "Unknown",
	0x03: "Safe",
	0x04: "Warning",
	0x05: "Critical",
	0x06: "Non-recoverable",
}

var chassisSecurityStatuses = map[uint8]string{
	0x01: "Other",
	0x02: "Unknown",
	0x03: "None",
	0x04: "External Interface Locked Out",
	0x05: "External Interface Enabled",
}

var processorTypes = map[uint8]string{
	0x01: "Other",
	0x02: "Unknown",
	0x03: "Central Processor",
	0x04: "Math Processor",
	0x05: "DSP Processor",
	0x06: "Video Processor",
}

var processorStatuses = map[uint8]string{
	0x00: "Unknown",
	0x01: "Enabled",
	0x02: "Disabled By User",
	0x03: "Disabled By BIOS",
	0x04: "Idle",
	0x07: "Other",
}

var processorUpgrades = map[uint8]string{
	0x01: "Other",
	0x02: "Unknown",
	0x03: "Daughter Board",
	0x04: "ZIF Socket",
	0x05: "Replaceable Piggy Back",
	0x06: "None",
	0x07: "LIF Socket",
	0x08: "Slot 1",
	0x09: "Slot 2",
	0x0A: "370-pin socket",
	0x0B: "Slot A",
	0x0C: "Slot M",
	0x0D: "Socket 423",
	0x0E: "Socket A (Socket 462)",
	0x0F: "Socket 478",
	0x10: "Socket 754",
	0x11: "Socket 940",
	0x12: "Socket 939",
	0x13: "Socket mPGA604",
	0x14: "Socket LGA771",
	0x15: "Socket LGA775",
	0x16: "Socket S1",
	0x17: "Socket AM2",
	0x18: "Socket F (1207)",
	0x19: "Socket LGA1366",
	0x1A: "Socket G34",
	0x1B: "Socket AM3",
	0x1C: "Socket C32",
	0x1D: "Socket LGA1156",
	0x1E: "Socket LGA1567",
	0x1F: "Socket PGA988A",
	0x20: "Socket BGA1288",
	0x21: "Socket rPGA988B",
	0x22: "Socket BGA1023",
	0x23: "Socket BGA1224",
	0x24: "Socket LGA1155",
	0x25: "Socket LGA1356",
	0x26: "Socket LGA2011",
	0x27: "Socket FS1",
	0x28: "Socket FS2",
	0x29: "Socket FM1",
	0x2A: "Socket FM2",
	0x2B: "Socket LGA2011-3",
	0x2C: "Socket LGA1356-3",
	0x2D: "Socket LGA1150",
	0x2E: "Socket BGA1168",
	0x2F: "Socket BGA1234",
	0x30: "Socket BGA1364",
	0x31: "Socket AM4",
	0x32: "Socket LGA1151",
	0x33: "Socket BGA1356",
	0x34: "Socket BGA1440",
	0x35: "Socket BGA1515",
	0x36: "Socket LGA3647-1",
	0x37: "Socket SP3",
	0x38: "Socket SP3r2",
	0x39: "Socket LGA2066",
	0x3A: "Socket BGA1392",
	0x3B: "Socket BGA1510",
	0x3C: "Socket BGA1528",
	0x3D: "Socket LGA4189",
	0x3E: "Socket LGA1200",
	0x3F: "Socket LGA4677",
	0x40: "Socket LGA1700",
	0x41: "Socket BGA1744",
	0x42: "Socket BGA1781",
	0x43: "Socket BGA1211",
	0x44: "Socket BGA2422",
	0x45: "Socket LGA1211",
	0x46: "Socket LGA2422",
	0x47: "Socket LGA5773",
	0x48: "Socket BGA5773",
	0x49: "Socket AM5",
	0x4A: "Socket SP5",
	0x4B: "Socket SP6",
	0x4C: "Socket BGA883",
	0x4D: "Socket BGA1190",
	0x4E: "Socket BGA4129",
	0x4F: "Socket LGA4710",
	0x50: "Socket LGA7529",
}

// processorFamilies is deliberately the common subset; the raw word is
// always retained alongside.
var processorFamilies = map[uint16]string{
	0x01: "Other",
	0x02: "Unknown",
	0x03: "8086",
	0x04: "80286",
	0x05: "80386",
	0x06: "80486",
	0x0B: "Pentium Pro",
	0x0C: "Pentium II",
	0x0F: "Celeron",
	0x11: "Pentium III",
	0x28: "Intel Core Duo",
	0x2B: "Intel Atom",
	0x2C: "Intel Core M",
	0x38: "AMD Athlon 64",
	0x3D: "AMD Opteron 6100",
	0x46: "AMD A-Series",
	0x47: "AMD E-Series",
	0x48: "AMD A-Series APU",
	0x60: "ARM Family",
	0x61: "ARM610",
	0x65: "ARMv7",
	0x66: "ARMv8",
	0x67: "ARMv9",
	0x6B: "SH-4",
	0xA1: "Quad-Core Intel Xeon 3200",
	0xB3: "Intel Xeon",
	0xBF: "Intel Core 2 Duo",
	0xC6: "Intel Core i7",
	0xC7: "Intel Core i5",
	0xC8: "Intel Core i3",
	0xC9: "Intel Core i9",
	0xE4: "AMD Opteron 4300",
	0xE6: "AMD Ryzen",
	0xE7: "AMD Epyc",
	0xED: "Zhaoxin KaiXian",
	0x100: "ARMv8 (word)",
	0x118: "AMD Ryzen 7",
	0x119: "AMD Ryzen 9",
}

var processorCharacteristicFlags = []struct {
	bit  uint16
	name string
}{
	{1 << 1, "Unknown"},
	{1 << 2, "64-bit Capable"},
	{1 << 3, "Multi-Core"},
	{1 << 4, "Hardware Thread"},
	{1 << 5, "Execute Protection"},
	{1 << 6, "Enhanced Virtualization"},
	{1 << 7, "Power/Performance Control"},
	{1 << 8, "128-bit Capable"},
	{1 << 9, "ARM64 SoC ID"},
}

var biosCharacteristicFlags = []struct {
	bit  uint64
	name string
}{
	{1 << 3, "BIOS Characteristics Not Supported"},
	{1 << 4, "ISA"},
	{1 << 5, "MCA"},
	{1 << 6, "EISA"},
	{1 << 7, "PCI"},
	{1 << 8, "PC Card (PCMCIA)"},
	{1 << 9, "Plug and Play"},
	{1 << 10, "APM"},
	{1 << 11, "BIOS Upgradeable"},
	{1 << 12, "BIOS Shadowing"},
	{1 << 13, "VL-VESA"},
	{1 << 14, "ESCD"},
	{1 << 15, "Boot from CD"},
	{1 << 16, "Selectable Boot"},
	{1 << 17, "BIOS ROM Socketed"},
	{1 << 18, "Boot from PC Card"},
	{1 << 19, "EDD"},
	{1 << 20, "Japanese Floppy NEC 9800 1.2 MB"},
	{1 << 21, "Japanese Floppy Toshiba 1.2 MB"},
	{1 << 22, "5.25\" 360 KB Floppy"},
	{1 << 23, "5.25\" 1.2 MB Floppy"},
	{1 << 24, "3.5\" 720 KB Floppy"},
	{1 << 25, "3.5\" 2.88 MB Floppy"},
	{1 << 26, "Print Screen Service"},
	{1 << 27, "8042 Keyboard Services"},
	{1 << 28, "Serial Services"},
	{1 << 29, "Printer Services"},
	{1 << 30, "CGA/Mono Video Services"},
	{1 << 31, "NEC PC-98"},
}

var baseboardFeatureFlags = []struct {
	bit  uint8
	name string
}{
	{1 << 0, "Hosting Board"},
	{1 << 1, "Requires Daughter Board"},
	{1 << 2, "Removable"},
	{1 << 3, "Replaceable"},
	{1 << 4, "Hot Swappable"},
}

var cacheLocations = map[uint8]string{
	0x00: "Internal",
	0x01: "External",
	0x02: "Reserved",
	0x03: "Unknown",
}

var cacheModes = map[uint8]string{
	0x00: "Write Through",
	0x01: "Write Back",
	0x02: "Varies With Memory Address",
	0x03: "Unknown",
}

var sramTypeFlags = []struct {
	bit  uint16
	name string
}{
	{1 << 0, "Other"},
	{1 << 1, "Unknown"},
	{1 << 2, "Non-Burst"},
	{1 << 3, "Burst"},
	{1 << 4, "Pipeline Burst"},
	{1 << 5, "Synchronous"},
	{1 << 6, "Asynchronous"},
}

var cacheErrorCorrections = map[uint8]string{
	0x01: "Other",
	0x02: "Unknown",
	0x03: "None",
	0x04: "Parity",
	0x05: "Single-bit ECC",
	0x06: "Multi-bit ECC",
}

var cacheTypes = map[uint8]string{
	0x01: "Other",
	0x02: "Unknown",
	0x03: "Instruction",
	0x04: "Data",
	0x05: "Unified",
}

var cacheAssociativities = map[uint8]string{
	0x01: "Other",
	0x02: "Unknown",
	0x03: "Direct Mapped",
	0x04: "2-way Set-associative",
	0x05: "4-way Set-associative",
	0x06: "Fully Associative",
	0x07: "8-way Set-associative",
	0x08: "16-way Set-associative",
	0x09: "12-way Set-associative",
	0x0A: "24-way Set-associative",
	0x0B: "32-way Set-associative",
	0x0C: "48-way Set-associative",
	0x0D: "64-way Set-associative",
	0x0E: "20-way Set-associative",
}

var connectorTypes = map[uint8]string{
	0x00: "None",
	0x01: "Centronics",
	0x02: "Mini Centronics",
	0x03: "Proprietary",
	0x04: "DB-25 male",
	0x05: "DB-25 female",
	0x06: "DB-15 male",
	0x07: "DB-15 female",
	0x08: "DB-9 male",
	0x09: "DB-9 female",
	0x0A: "RJ-11",
	0x0B: "RJ-45",
	0x0C: "50-pin MiniSCSI",
	0x0D: "Mini DIN",
	0x0E: "Micro DIN",
	0x0F: "PS/2",
	0x10: "Infrared",
	0x11: "HP-HIL",
	0x12: "Access Bus (USB)",
	0x13: "SSA SCSI",
	0x14: "Circular DIN-8 male",
	0x15: "Circular DIN-8 female",
	0x16: "On Board IDE",
	0x17: "On Board Floppy",
	0x18: "9-pin Dual Inline",
	0x19: "25-pin Dual Inline",
	0x1A: "50-pin Dual Inline",
	0x1B: "68-pin Dual Inline",
	0x1C: "On Board Sound Input From CD-ROM",
	0x1D: "Mini Centronics Type-14",
	0x1E: "Mini Centronics Type-26",
	0x1F: "Mini Jack (headphones)",
	0x20: "BNC",
	0x21: "IEEE 1394",
	0x22: "SAS/SATA Plug Receptacle",
	0x23: "USB Type-C Receptacle",
	0xFF: "Other",
}

var portTypes = map[uint8]string{
	0x00: "None",
	0x01: "Parallel Port XT/AT Compatible",
	0x02: "Parallel Port PS/2",
	0x03: "Parallel Port ECP",
	0x04: "Parallel Port EPP",
	0x05: "Parallel Port ECP/EPP",
	0x06: "Serial Port XT/AT Compatible",
	0x07: "Serial Port 16450 Compatible",
	0x08: "Serial Port 16550 Compatible",
	0x09: "Serial Port 16550A Compatible",
	0x0A: "SCSI Port",
	0x0B: "MIDI Port",
	0x0C: "Joy Stick Port",
	0x0D: "Keyboard Port",
	0x0E: "Mouse Port",
	0x0F: "SSA SCSI",
	0x10: "USB",
	0x11: "FireWire (IEEE P1394)",
	0x12: "PCMCIA Type I",
	0x13: "PCMCIA Type II",
	0x14: "PCMCIA Type III",
	0x15: "Cardbus",
	0x16: "Access Bus Port",
	0x17: "SCSI II",
	0x18: "SCSI Wide",
	0x19: "PC-98",
	0x1A: "PC-98-Hireso",
	0x1B: "PC-H98",
	0x1C: "Video Port",
	0x1D: "Audio Port",
	0x1E: "Modem Port",
	0x1F: "Network Port",
	0x20: "SATA",
	0x21: "SAS",
	0x22: "MFDP (Multi-Function Display Port)",
	0x23: "Thunderbolt",
	0xA0: "8251 Compatible",
	0xA1: "8251 FIFO Compatible",
	0xFF: "Other",
}

var memoryArrayLocations = map[uint8]string{
	0x01: "Other",
	0x02: "Unknown",
	0x03: "System Board Or Motherboard",
	0x04: "ISA Add-on Card",
	0x05: "EISA Add-on Card",
	0x06: "PCI Add-on Card",
	0x07: "MCA Add-on Card",
	0x08: "PCMCIA Add-on Card",
	0x09: "Proprietary Add-on Card",
	0x0A: "NuBus",
	0xA0: "PC-98/C20 Add-on Card",
	0xA1: "PC-98/C24 Add-on Card",
	0xA2: "PC-98/E Add-on Card",
	0xA3: "PC-98/Local Bus Add-on Card",
	0xA4: "CXL Add-on Card",
}

var memoryArrayUses = map[uint8]string{
	0x01: "Other",
	0x02: "Unknown",
	0x03: "System Memory",
	0x04: "Video Memory",
	0x05: "Flash Memory",
	0x06: "Non-volatile RAM",
	0x07: "Cache Memory",
}

var memoryArrayECCs = map[uint8]string{
	0x01: "Other",
	0x02: "Unknown",
	0x03: "None",
	0x04: "Parity",
	0x05: "Single-bit ECC",
	0x06: "Multi-bit ECC",
	0x07: "CRC",
}

var memoryFormFactors = map[uint8]string{
	0x01: "Other",
	0x02: "Unknown",
	0x03: "SIMM",
	0x04: "SIP",
	0x05: "Chip",
	0x06: "DIP",
	0x07: "ZIP",
	0x08: "Proprietary Card",
	0x09: "DIMM",
	0x0A: "TSOP",
	0x0B: "Row Of Chips",
	0x0C: "RIMM",
	0x0D: "SODIMM",
	0x0E: "SRIMM",
	0x0F: "FB-DIMM",
	0x10: "Die",
	0x11: "CAMM",
}

var memoryTypes = map[uint8]string{
	0x01: "Other",
	0x02: "Unknown",
	0x03: "DRAM",
	0x04: "EDRAM",
	0x05: "VRAM",
	0x06: "SRAM",
	0x07: "RAM",
	0x08: "ROM",
	0x09: "FLASH",
	0x0A: "EEPROM",
	0x0B: "FEPROM",
	0x0C: "EPROM",
	0x0D: "CDRAM",
	0x0E: "3DRAM",
	0x0F: "SDRAM",
	0x10: "SGRAM",
	0x11: "RDRAM",
	0x12: "DDR",
	0x13: "DDR2",
	0x14: "DDR2 FB-DIMM",
	0x18: "DDR3",
	0x19: "FBD2",
	0x1A: "DDR4",
	0x1B: "LPDDR",
	0x1C: "LPDDR2",
	0x1D: "LPDDR3",
	0x1E: "LPDDR4",
	0x1F: "Logical Non-volatile Device",
	0x20: "HBM",
	0x21: "HBM2",
	0x22: "DDR5",
	0x23: "LPDDR5",
	0x24: "HBM3",
}

var memoryTypeDetailFlags = []struct {
	bit  uint16
	name string
}{
	{1 << 1, "Other"},
	{1 << 2, "Unknown"},
	{1 << 3, "Fast-paged"},
	{1 << 4, "Static Column"},
	{1 << 5, "Pseudo-static"},
	{1 << 6, "RAMBUS"},
	{1 << 7, "Synchronous"},
	{1 << 8, "CMOS"},
	{1 << 9, "EDO"},
	{1 << 10, "Window DRAM"},
	{1 << 11, "Cache DRAM"},
	{1 << 12, "Non-volatile"},
	{1 << 13, "Registered (Buffered)"},
	{1 << 14, "Unbuffered (Unregistered)"},
	{1 << 15, "LRDIMM"},
}

func dmiByte(raw uint8, table map[uint8]string) model.DMIByte {
	name, ok := table[raw]
	if !ok {
		name = "unknown"
	}
	return model.DMIByte{Raw: raw, Value: name}
}

func dmiWord(raw uint16, table map[uint16]string) model.DMIWord {
	name, ok := table[raw]
	if !ok {
		name = "unknown"
	}
	return model.DMIWord{Raw: raw, Value: name}
}
