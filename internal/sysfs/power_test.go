package sysfs

import (
	"os"
	"path/filepath"
	"testing"

	"ferrix-agent/internal/model"
)

const ueventFixture = `POWER_SUPPLY_NAME=BAT0
POWER_SUPPLY_STATUS=Discharging
POWER_SUPPLY_TECHNOLOGY=Li-ion
POWER_SUPPLY_CYCLE_COUNT=312
POWER_SUPPLY_VOLTAGE_MIN_DESIGN=11400000
POWER_SUPPLY_VOLTAGE_NOW=12048000
POWER_SUPPLY_POWER_NOW=8600000
POWER_SUPPLY_ENERGY_FULL_DESIGN=57000000
POWER_SUPPLY_ENERGY_FULL=48020000
POWER_SUPPLY_ENERGY_NOW=30100000
POWER_SUPPLY_CAPACITY=62
POWER_SUPPLY_CAPACITY_LEVEL=Normal
POWER_SUPPLY_MODEL_NAME=DELL XYZ123
POWER_SUPPLY_MANUFACTURER=SMP
POWER_SUPPLY_SERIAL_NUMBER=1234
`

func TestParseUevent(t *testing.T) {
	t.Parallel()

	bat := parseUevent(ueventFixture)
	deriveBatteryEstimates(&bat)

	if bat.Name == nil || *bat.Name != "BAT0" {
		t.Errorf("name = %v", bat.Name)
	}
	if bat.Status == nil || *bat.Status != model.StatusDischarging {
		t.Errorf("status = %v", bat.Status)
	}
	if !bat.Status.Known() {
		t.Error("Discharging should be a known status")
	}
	if bat.CycleCount == nil || *bat.CycleCount != 312 {
		t.Errorf("cycle count = %v", bat.CycleCount)
	}
	if bat.VoltageNow == nil || *bat.VoltageNow != 12.048 {
		t.Errorf("voltage now = %v", bat.VoltageNow)
	}
	if bat.EnergyNow == nil || *bat.EnergyNow != 30.1 {
		t.Errorf("energy now = %v", bat.EnergyNow)
	}
	if bat.Capacity == nil || *bat.Capacity != 62 {
		t.Errorf("capacity = %v", bat.Capacity)
	}

	if bat.Health == nil {
		t.Fatal("health not derived")
	}
	want := 48.02 / 57.0 * 100.0
	if *bat.Health < want-0.01 || *bat.Health > want+0.01 {
		t.Errorf("health = %.2f, want %.2f", *bat.Health, want)
	}
	if bat.DischargeTime == nil {
		t.Fatal("discharge time not derived")
	}
	wantDischarge := 30.1 / 8.6
	if *bat.DischargeTime < wantDischarge-0.01 || *bat.DischargeTime > wantDischarge+0.01 {
		t.Errorf("discharge time = %.2f, want %.2f", *bat.DischargeTime, wantDischarge)
	}
	wantCharge := (48.02 - 30.1) / (0.85 * 8.6)
	if *bat.ChargeTime < wantCharge-0.01 || *bat.ChargeTime > wantCharge+0.01 {
		t.Errorf("charge time = %.2f, want %.2f", *bat.ChargeTime, wantCharge)
	}
}

func TestDeriveEstimatesWithoutPower(t *testing.T) {
	t.Parallel()

	bat := parseUevent("POWER_SUPPLY_ENERGY_NOW=30100000\nPOWER_SUPPLY_POWER_NOW=0\n")
	deriveBatteryEstimates(&bat)
	if bat.DischargeTime != nil || bat.ChargeTime != nil {
		t.Error("estimates should be skipped when power draw is zero")
	}
}

func TestDeriveEstimatesFullBattery(t *testing.T) {
	t.Parallel()

	bat := parseUevent("POWER_SUPPLY_ENERGY_FULL=48020000\nPOWER_SUPPLY_ENERGY_NOW=48020000\nPOWER_SUPPLY_POWER_NOW=8600000\n")
	deriveBatteryEstimates(&bat)
	if bat.ChargeTime != nil {
		t.Errorf("full battery should have no charge estimate, got %v h", *bat.ChargeTime)
	}
	if bat.DischargeTime == nil {
		t.Error("discharge estimate should still be derived")
	}
}

func TestReadBatteries(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	bat0 := filepath.Join(root, "BAT0")
	ac := filepath.Join(root, "AC")
	for _, d := range []string{bat0, ac} {
		if err := os.Mkdir(d, 0o755); err != nil {
			t.Fatal(err)
		}
	}
	writeAttr(t, bat0, "type", "Battery")
	writeAttr(t, ac, "type", "Mains")
	if err := os.WriteFile(filepath.Join(bat0, "uevent"), []byte(ueventFixture), 0o644); err != nil {
		t.Fatal(err)
	}
	writeAttr(t, ac, "uevent", "POWER_SUPPLY_NAME=AC\nPOWER_SUPPLY_ONLINE=1")

	bats, err := readBatteries(root)
	if err != nil {
		t.Fatalf("readBatteries: %v", err)
	}
	if len(bats.Batteries) != 1 {
		t.Fatalf("expected 1 battery, got %d", len(bats.Batteries))
	}
	if *bats.Batteries[0].Name != "BAT0" {
		t.Errorf("name = %q", *bats.Batteries[0].Name)
	}
}
