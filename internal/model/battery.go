package model

// BatteryStatus is the charging status reported by the kernel. Values
// outside the documented set are kept verbatim so nothing is lost on
// exotic drivers.
type BatteryStatus string

const (
	StatusFull        BatteryStatus = "Full"
	StatusDischarging BatteryStatus = "Discharging"
	StatusCharging    BatteryStatus = "Charging"
	StatusNotCharging BatteryStatus = "Not charging"
)

func (s BatteryStatus) Known() bool {
	switch s {
	case StatusFull, StatusDischarging, StatusCharging, StatusNotCharging:
		return true
	}
	return false
}

// CapacityLevel is the coarse charge level from the uevent file.
type CapacityLevel string

const (
	LevelFull     CapacityLevel = "Full"
	LevelNormal   CapacityLevel = "Normal"
	LevelHigh     CapacityLevel = "High"
	LevelLow      CapacityLevel = "Low"
	LevelCritical CapacityLevel = "Critical"
)

func (l CapacityLevel) Known() bool {
	switch l {
	case LevelFull, LevelNormal, LevelHigh, LevelLow, LevelCritical:
		return true
	}
	return false
}

// Batteries holds every power_supply entry of type Battery.
type Batteries struct {
	Batteries []Battery `json:"bats" xml:"bats>battery"`
}

// Battery is the decoded uevent of one battery. Voltages are in V,
// power in W, energies in Wh (the kernel reports µ units); times are
// estimates in hours.
type Battery struct {
	Name             *string        `json:"name,omitempty" xml:"name,omitempty"`
	Status           *BatteryStatus `json:"status,omitempty" xml:"status,omitempty"`
	Technology       *string        `json:"technology,omitempty" xml:"technology,omitempty"`
	CycleCount       *uint64        `json:"cycle_count,omitempty" xml:"cycle_count,omitempty"`
	VoltageMinDesign *float64       `json:"voltage_min_design,omitempty" xml:"voltage_min_design,omitempty"`
	VoltageNow       *float64       `json:"voltage_now,omitempty" xml:"voltage_now,omitempty"`
	PowerNow         *float64       `json:"power_now,omitempty" xml:"power_now,omitempty"`
	EnergyFullDesign *float64       `json:"energy_full_design,omitempty" xml:"energy_full_design,omitempty"`
	EnergyFull       *float64       `json:"energy_full,omitempty" xml:"energy_full,omitempty"`
	EnergyNow        *float64       `json:"energy_now,omitempty" xml:"energy_now,omitempty"`
	Capacity         *uint8         `json:"capacity,omitempty" xml:"capacity,omitempty"`
	CapacityLevel    *CapacityLevel `json:"capacity_level,omitempty" xml:"capacity_level,omitempty"`
	ModelName        *string        `json:"model_name,omitempty" xml:"model_name,omitempty"`
	Manufacturer     *string        `json:"manufacturer,omitempty" xml:"manufacturer,omitempty"`
	SerialNumber     *string        `json:"serial_number,omitempty" xml:"serial_number,omitempty"`
	Health           *float64       `json:"health,omitempty" xml:"health,omitempty"`
	DischargeTime    *float64       `json:"discharge_time,omitempty" xml:"discharge_time,omitempty"`
	ChargeTime       *float64       `json:"charge_time,omitempty" xml:"charge_time,omitempty"`
}
