package model

// Video lists the DRM connectors found under /sys/class/drm.
type Video struct {
	Devices []Display `json:"devices" xml:"devices>display"`
}

// Display is one cardN-* connector directory.
type Display struct {
	Connector string   `json:"connector" xml:"connector"`
	Enabled   bool     `json:"enabled" xml:"enabled"`
	EDID      *EDID    `json:"edid,omitempty" xml:"edid,omitempty"`
	Modes     []string `json:"modes" xml:"modes>mode"`
}

// EDID is the fixed 20-odd byte prefix of an EDID v1.3/1.4 blob.
type EDID struct {
	Manufacturer string     `json:"manufacturer" xml:"manufacturer"`
	ProductCode  uint16     `json:"product_code" xml:"product_code"`
	SerialNumber uint32     `json:"serial_number" xml:"serial_number"`
	Week         uint8      `json:"week" xml:"week"`
	Year         uint16     `json:"year" xml:"year"`
	EDIDVersion  uint8      `json:"edid_version" xml:"edid_version"`
	EDIDRevision uint8      `json:"edid_revision" xml:"edid_revision"`
	VideoInput   VideoInput `json:"video_input" xml:"video_input"`
	HScreenSize  uint8      `json:"hscreen_size" xml:"hscreen_size"`
	VScreenSize  uint8      `json:"vscreen_size" xml:"vscreen_size"`
	DisplayGamma uint8      `json:"display_gamma" xml:"display_gamma"`
}

// VideoInput is the byte-20 bitmap. Exactly one branch is set,
// depending on the digital/analog flag bit.
type VideoInput struct {
	Digital *DigitalInput `json:"digital,omitempty" xml:"digital,omitempty"`
	Analog  *AnalogInput  `json:"analog,omitempty" xml:"analog,omitempty"`
}

// DigitalInput holds the digital interpretation of byte 20.
type DigitalInput struct {
	BitDepth       EDIDField `json:"bit_depth" xml:"bit_depth"`
	VideoInterface EDIDField `json:"video_interface" xml:"video_interface"`
}

// AnalogInput holds the analog interpretation of byte 20. The bit
// extraction below whiteSyncLevels is unverified against real analog
// hardware and is kept exactly as captured.
type AnalogInput struct {
	WhiteSyncLevels       uint8 `json:"white_sync_levels" xml:"white_sync_levels"`
	BlankToBlackSetup     uint8 `json:"blank_to_black_setup" xml:"blank_to_black_setup"`
	SeparateSyncSupported uint8 `json:"separate_sync_supported" xml:"separate_sync_supported"`
	CompositeSyncSupport  uint8 `json:"composite_sync_supported" xml:"composite_sync_supported"`
	SyncOnGreenSupported  uint8 `json:"sync_on_green_supported" xml:"sync_on_green_supported"`
	SyncOnGreenUsed       uint8 `json:"sync_on_green_isused" xml:"sync_on_green_isused"`
}

// EDIDField keeps a raw bitfield value next to its decoded name so an
// out-of-table value still round-trips.
type EDIDField struct {
	Raw  uint8  `json:"raw" xml:"raw"`
	Name string `json:"name" xml:"name"`
}
