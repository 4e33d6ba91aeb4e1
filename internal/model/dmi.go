package model

// DMIByte keeps an enumerated SMBIOS byte together with its decoded
// meaning. Out-of-table raw values decode to "unknown" but the byte
// itself is never discarded.
type DMIByte struct {
	Raw   uint8  `json:"raw" xml:"raw"`
	Value string `json:"value" xml:"value"`
}

// DMIWord is the 16-bit variant of DMIByte.
type DMIWord struct {
	Raw   uint16 `json:"raw" xml:"raw"`
	Value string `json:"value" xml:"value"`
}

// DMITable is the decoded SMBIOS snapshot: the singleton structures
// (types 0-3) plus the per-instance lists. Missing singleton
// structures make the whole read fail; hosts without SMBIOS (many
// VMs, most ARM boards) report the error instead of an empty table.
type DMITable struct {
	Version       string         `json:"smbios_version" xml:"smbios_version"`
	Bios          BIOS           `json:"bios" xml:"bios"`
	System        DMISystem      `json:"system" xml:"system"`
	Baseboard     Baseboard      `json:"baseboard" xml:"baseboard"`
	Chassis       Chassis        `json:"chassis" xml:"chassis"`
	Processors    []DMIProcessor `json:"processors" xml:"processors>processor"`
	Caches        []DMICache     `json:"caches" xml:"caches>cache"`
	Ports         []DMIPort      `json:"ports" xml:"ports>port"`
	MemoryArrays  []MemoryArray  `json:"mem_arrays" xml:"mem_arrays>array"`
	MemoryDevices []MemoryDevice `json:"mem_devices" xml:"mem_devices>device"`
}

// BIOS is SMBIOS type 0.
type BIOS struct {
	Vendor                 string   `json:"vendor" xml:"vendor"`
	Version                string   `json:"version" xml:"version"`
	StartingAddressSegment uint16   `json:"starting_address_segment" xml:"starting_address_segment"`
	ReleaseDate            string   `json:"release_date" xml:"release_date"`
	RomSize                *Size    `json:"rom_size,omitempty" xml:"rom_size,omitempty"`
	CharacteristicsRaw     uint64   `json:"characteristics_raw" xml:"characteristics_raw"`
	Characteristics        []string `json:"characteristics" xml:"characteristics>flag"`
	SystemBIOSMajorRelease *uint8   `json:"system_bios_major_release,omitempty" xml:"system_bios_major_release,omitempty"`
	SystemBIOSMinorRelease *uint8   `json:"system_bios_minor_release,omitempty" xml:"system_bios_minor_release,omitempty"`
	ECFirmwareMajorRelease *uint8   `json:"ec_firmware_major_release,omitempty" xml:"ec_firmware_major_release,omitempty"`
	ECFirmwareMinorRelease *uint8   `json:"ec_firmware_minor_release,omitempty" xml:"ec_firmware_minor_release,omitempty"`
}

// DMISystem is SMBIOS type 1.
type DMISystem struct {
	Manufacturer string  `json:"manufacturer" xml:"manufacturer"`
	ProductName  string  `json:"product_name" xml:"product_name"`
	Version      string  `json:"version" xml:"version"`
	SerialNumber string  `json:"serial_number" xml:"serial_number"`
	UUID         string  `json:"uuid" xml:"uuid"`
	WakeUpType   DMIByte `json:"wakeup_type" xml:"wakeup_type"`
	SKUNumber    string  `json:"sku_number" xml:"sku_number"`
	Family       string  `json:"family" xml:"family"`
}

// Baseboard is SMBIOS type 2.
type Baseboard struct {
	Manufacturer      string   `json:"manufacturer" xml:"manufacturer"`
	Product           string   `json:"product" xml:"product"`
	Version           string   `json:"version" xml:"version"`
	SerialNumber      string   `json:"serial_number" xml:"serial_number"`
	AssetTag          string   `json:"asset_tag" xml:"asset_tag"`
	FeaturesRaw       uint8    `json:"features_raw" xml:"features_raw"`
	Features          []string `json:"features" xml:"features>flag"`
	LocationInChassis string   `json:"location_in_chassis" xml:"location_in_chassis"`
	ChassisHandle     uint16   `json:"chassis_handle" xml:"chassis_handle"`
	BoardType         DMIByte  `json:"board_type" xml:"board_type"`
}

// Chassis is SMBIOS type 3.
type Chassis struct {
	Manufacturer     string  `json:"manufacturer" xml:"manufacturer"`
	ChassisType      DMIByte `json:"chassis_type" xml:"chassis_type"`
	HasLock          bool    `json:"has_lock" xml:"has_lock"`
	Version          string  `json:"version" xml:"version"`
	SerialNumber     string  `json:"serial_number" xml:"serial_number"`
	AssetTag         string  `json:"asset_tag" xml:"asset_tag"`
	BootupState      DMIByte `json:"bootup_state" xml:"bootup_state"`
	PowerSupplyState DMIByte `json:"power_supply_state" xml:"power_supply_state"`
	ThermalState     DMIByte `json:"thermal_state" xml:"thermal_state"`
	SecurityStatus   DMIByte `json:"security_status" xml:"security_status"`
	OEMDefined       uint32  `json:"oem_defined" xml:"oem_defined"`
	Height           *uint8  `json:"height,omitempty" xml:"height,omitempty"`
	PowerCords       *uint8  `json:"power_cords,omitempty" xml:"power_cords,omitempty"`
	SKUNumber        string  `json:"sku_number" xml:"sku_number"`
}

// DMIProcessor is SMBIOS type 4. Speeds are MHz; core/thread counts
// already include the extended 2.6+ words when present.
type DMIProcessor struct {
	SocketDesignation  string   `json:"socket_designation" xml:"socket_designation"`
	ProcessorType      DMIByte  `json:"processor_type" xml:"processor_type"`
	Family             DMIWord  `json:"family" xml:"family"`
	Manufacturer       string   `json:"manufacturer" xml:"manufacturer"`
	ID                 string   `json:"id" xml:"id"`
	Version            string   `json:"version" xml:"version"`
	ExternalClock      uint16   `json:"external_clock" xml:"external_clock"`
	MaxSpeed           uint16   `json:"max_speed" xml:"max_speed"`
	CurrentSpeed       uint16   `json:"current_speed" xml:"current_speed"`
	Populated          bool     `json:"populated" xml:"populated"`
	Status             DMIByte  `json:"status" xml:"status"`
	Upgrade            DMIByte  `json:"upgrade" xml:"upgrade"`
	L1CacheHandle      *uint16  `json:"l1_cache_handle,omitempty" xml:"l1_cache_handle,omitempty"`
	L2CacheHandle      *uint16  `json:"l2_cache_handle,omitempty" xml:"l2_cache_handle,omitempty"`
	L3CacheHandle      *uint16  `json:"l3_cache_handle,omitempty" xml:"l3_cache_handle,omitempty"`
	SerialNumber       string   `json:"serial_number" xml:"serial_number"`
	AssetTag           string   `json:"asset_tag" xml:"asset_tag"`
	PartNumber         string   `json:"part_number" xml:"part_number"`
	CoreCount          uint16   `json:"core_count" xml:"core_count"`
	CoreEnabled        uint16   `json:"core_enabled" xml:"core_enabled"`
	ThreadCount        uint16   `json:"thread_count" xml:"thread_count"`
	CharacteristicsRaw uint16   `json:"characteristics_raw" xml:"characteristics_raw"`
	Characteristics    []string `json:"characteristics" xml:"characteristics>flag"`
}

// DMICache is SMBIOS type 7.
type DMICache struct {
	SocketDesignation string   `json:"socket_designation" xml:"socket_designation"`
	Level             uint8    `json:"level" xml:"level"`
	Socketed          bool     `json:"socketed" xml:"socketed"`
	Location          DMIByte  `json:"location" xml:"location"`
	Enabled           bool     `json:"enabled" xml:"enabled"`
	Mode              DMIByte  `json:"mode" xml:"mode"`
	MaxSize           *Size    `json:"max_size,omitempty" xml:"max_size,omitempty"`
	InstalledSize     *Size    `json:"installed_size,omitempty" xml:"installed_size,omitempty"`
	SupportedSRAM     []string `json:"supported_sram" xml:"supported_sram>type"`
	CurrentSRAM       []string `json:"current_sram" xml:"current_sram>type"`
	Speed             uint8    `json:"speed" xml:"speed"`
	ErrorCorrection   DMIByte  `json:"error_correction" xml:"error_correction"`
	CacheType         DMIByte  `json:"cache_type" xml:"cache_type"`
	Associativity     DMIByte  `json:"associativity" xml:"associativity"`
}

// DMIPort is SMBIOS type 8.
type DMIPort struct {
	InternalReference string  `json:"internal_reference" xml:"internal_reference"`
	InternalConnector DMIByte `json:"internal_connector" xml:"internal_connector"`
	ExternalReference string  `json:"external_reference" xml:"external_reference"`
	ExternalConnector DMIByte `json:"external_connector" xml:"external_connector"`
	PortType          DMIByte `json:"port_type" xml:"port_type"`
}

// MemoryArray is SMBIOS type 16.
type MemoryArray struct {
	Location        DMIByte `json:"location" xml:"location"`
	Use             DMIByte `json:"use" xml:"use"`
	ErrorCorrection DMIByte `json:"error_correction" xml:"error_correction"`
	MaxCapacity     Size    `json:"max_capacity" xml:"max_capacity"`
	ErrorHandle     uint16  `json:"error_handle" xml:"error_handle"`
	Devices         uint16  `json:"devices" xml:"devices"`
}

// MemoryDevice is SMBIOS type 17. Size is nil for empty slots and for
// devices reporting the unknown sentinel; widths use nil the same way.
type MemoryDevice struct {
	ArrayHandle       uint16   `json:"array_handle" xml:"array_handle"`
	ErrorHandle       uint16   `json:"error_handle" xml:"error_handle"`
	TotalWidth        *uint16  `json:"total_width,omitempty" xml:"total_width,omitempty"`
	DataWidth         *uint16  `json:"data_width,omitempty" xml:"data_width,omitempty"`
	Size              *Size    `json:"size,omitempty" xml:"size,omitempty"`
	FormFactor        DMIByte  `json:"form_factor" xml:"form_factor"`
	DeviceSet         *uint8   `json:"device_set,omitempty" xml:"device_set,omitempty"`
	DeviceLocator     string   `json:"device_locator" xml:"device_locator"`
	BankLocator       string   `json:"bank_locator" xml:"bank_locator"`
	MemoryType        DMIByte  `json:"memory_type" xml:"memory_type"`
	TypeDetailRaw     uint16   `json:"type_detail_raw" xml:"type_detail_raw"`
	TypeDetail        []string `json:"type_detail" xml:"type_detail>flag"`
	SpeedMTs          *uint16  `json:"speed_mts,omitempty" xml:"speed_mts,omitempty"`
	Manufacturer      string   `json:"manufacturer" xml:"manufacturer"`
	SerialNumber      string   `json:"serial_number" xml:"serial_number"`
	AssetTag          string   `json:"asset_tag" xml:"asset_tag"`
	PartNumber        string   `json:"part_number" xml:"part_number"`
	Rank              *uint8   `json:"rank,omitempty" xml:"rank,omitempty"`
	ConfiguredSpeed   *uint16  `json:"configured_speed,omitempty" xml:"configured_speed,omitempty"`
	MinVoltage        *uint16  `json:"min_voltage_mv,omitempty" xml:"min_voltage_mv,omitempty"`
	MaxVoltage        *uint16  `json:"max_voltage_mv,omitempty" xml:"max_voltage_mv,omitempty"`
	ConfiguredVoltage *uint16  `json:"configured_voltage_mv,omitempty" xml:"configured_voltage_mv,omitempty"`
}
