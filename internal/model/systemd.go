package model

import "strings"

// UnitLoadState is the systemd load state of a unit. Values outside
// the closed set are preserved verbatim.
type UnitLoadState string

const (
	LoadLoaded   UnitLoadState = "loaded"
	LoadStub     UnitLoadState = "stub"
	LoadMasked   UnitLoadState = "masked"
	LoadNotFound UnitLoadState = "not-found"
)

func (s UnitLoadState) Known() bool {
	switch s {
	case LoadLoaded, LoadStub, LoadMasked, LoadNotFound:
		return true
	}
	return false
}

// UnitActiveState is the high-level activation state.
type UnitActiveState string

const (
	ActiveActive       UnitActiveState = "active"
	ActiveInactive     UnitActiveState = "inactive"
	ActiveActivating   UnitActiveState = "activating"
	ActiveDeactivating UnitActiveState = "deactivating"
	ActiveFailed       UnitActiveState = "failed"
)

func (s UnitActiveState) Known() bool {
	switch s {
	case ActiveActive, ActiveInactive, ActiveActivating, ActiveDeactivating, ActiveFailed:
		return true
	}
	return false
}

// UnitSubState is the unit-type specific substate. The full value
// space is open-ended, so Known only covers the common ones.
type UnitSubState string

const (
	SubActive    UnitSubState = "active"
	SubRunning   UnitSubState = "running"
	SubExited    UnitSubState = "exited"
	SubDead      UnitSubState = "dead"
	SubMounted   UnitSubState = "mounted"
	SubMounting  UnitSubState = "mounting"
	SubPlugged   UnitSubState = "plugged"
	SubListening UnitSubState = "listening"
	SubWaiting   UnitSubState = "waiting"
	SubFailed    UnitSubState = "failed"
)

func (s UnitSubState) Known() bool {
	switch s {
	case SubActive, SubRunning, SubExited, SubDead, SubMounted,
		SubMounting, SubPlugged, SubListening, SubWaiting, SubFailed:
		return true
	}
	return false
}

// SystemdUnits is the result of one Manager.ListUnits call.
type SystemdUnits struct {
	Units []SystemdUnit `json:"units" xml:"units>unit"`
}

// SystemdUnit is one ListUnits tuple with the \xNN escapes resolved.
type SystemdUnit struct {
	Name        string          `json:"name" xml:"name"`
	Description string          `json:"description" xml:"description"`
	LoadState   UnitLoadState   `json:"load_state" xml:"load_state"`
	ActiveState UnitActiveState `json:"active_state" xml:"active_state"`
	SubState    UnitSubState    `json:"sub_state" xml:"sub_state"`
	Followed    string          `json:"followed,omitempty" xml:"followed,omitempty"`
	Path        string          `json:"path" xml:"path"`
	JobID       uint32          `json:"job_id" xml:"job_id"`
	JobType     string          `json:"job_type,omitempty" xml:"job_type,omitempty"`
	UnitType    string          `json:"unit_type" xml:"unit_type"`
}

// UnitTypeOf extracts the unit type from a unit name suffix, e.g.
// "ssh.service" yields "service". Names without a dot have no type.
func UnitTypeOf(name string) string {
	idx := strings.LastIndexByte(name, '.')
	if idx < 0 || idx == len(name)-1 {
		return ""
	}
	return name[idx+1:]
}
