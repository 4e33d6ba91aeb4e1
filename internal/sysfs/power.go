package sysfs

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"ferrix-agent/internal/model"
)

const powerSupplyRoot = "/sys/class/power_supply"

// ReadBatteries walks the power_supply class and decodes the uevent of
// every entry whose type is Battery. A machine without batteries
// yields an empty list, not an error.
func ReadBatteries() (model.Batteries, error) {
	return readBatteries(powerSupplyRoot)
}

func readBatteries(root string) (model.Batteries, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return model.Batteries{}, fmt.Errorf("read %s: %w", root, err)
	}

	var bats model.Batteries
	for _, e := range entries {
		dir := filepath.Join(root, e.Name())
		kind, err := readString(filepath.Join(dir, "type"))
		if err != nil || kind != "Battery" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, "uevent"))
		if err != nil {
			return model.Batteries{}, fmt.Errorf("read %s uevent: %w", e.Name(), err)
		}
		bat := parseUevent(string(data))
		deriveBatteryEstimates(&bat)
		bats.Batteries = append(bats.Batteries, bat)
	}
	return bats, nil
}

// parseUevent decodes POWER_SUPPLY_* key/value rows. The kernel
// reports voltages, powers and energies in µ units; they are converted
// to V, W and Wh here.
func parseUevent(text string) model.Battery {
	var bat model.Battery
	for _, line := range strings.Split(text, "\n") {
		key, val, ok := strings.Cut(strings.TrimSpace(line), "=")
		if !ok {
			continue
		}
		switch strings.TrimPrefix(key, "POWER_SUPPLY_") {
		case "NAME":
			bat.Name = &val
		case "STATUS":
			s := model.BatteryStatus(val)
			bat.Status = &s
		case "TECHNOLOGY":
			bat.Technology = &val
		case "CYCLE_COUNT":
			if v, err := strconv.ParseUint(val, 10, 64); err == nil {
				bat.CycleCount = &v
			}
		case "VOLTAGE_MIN_DESIGN":
			bat.VoltageMinDesign = microPtr(val)
		case "VOLTAGE_NOW":
			bat.VoltageNow = microPtr(val)
		case "POWER_NOW":
			bat.PowerNow = microPtr(val)
		case "ENERGY_FULL_DESIGN":
			bat.EnergyFullDesign = microPtr(val)
		case "ENERGY_FULL":
			bat.EnergyFull = microPtr(val)
		case "ENERGY_NOW":
			bat.EnergyNow = microPtr(val)
		case "CAPACITY":
			if v, err := strconv.ParseUint(val, 10, 8); err == nil {
				c := uint8(v)
				bat.Capacity = &c
			}
		case "CAPACITY_LEVEL":
			l := model.CapacityLevel(val)
			bat.CapacityLevel = &l
		case "MODEL_NAME":
			bat.ModelName = &val
		case "MANUFACTURER":
			bat.Manufacturer = &val
		case "SERIAL_NUMBER":
			bat.SerialNumber = &val
		}
	}
	return bat
}

// deriveBatteryEstimates fills health and the charge/discharge time
// estimates when the inputs are present. The charge estimate assumes
// an 85% effective charge rate near the top of the curve. Estimates
// are clamped to [0, 999] hours to keep garbage driver values out.
func deriveBatteryEstimates(bat *model.Battery) {
	if bat.EnergyFull != nil && bat.EnergyFullDesign != nil && *bat.EnergyFullDesign > 0 {
		h := *bat.EnergyFull / *bat.EnergyFullDesign * 100.0
		bat.Health = &h
	}
	if bat.PowerNow == nil || *bat.PowerNow <= 0.001 {
		return
	}
	if bat.EnergyNow != nil {
		d := clampHours(*bat.EnergyNow / *bat.PowerNow)
		bat.DischargeTime = &d
	}
	if bat.EnergyNow != nil && bat.EnergyFull != nil && *bat.EnergyFull > *bat.EnergyNow {
		c := clampHours((*bat.EnergyFull - *bat.EnergyNow) / (0.85 * *bat.PowerNow))
		bat.ChargeTime = &c
	}
}

func clampHours(h float64) float64 {
	if h < 0 {
		return 0
	}
	if h > 999 {
		return 999
	}
	return h
}

func microPtr(s string) *float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	v /= 1e6
	return &v
}
