// Package systemd lists units over the D-Bus Manager interface.
package systemd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/godbus/dbus/v5"

	"ferrix-agent/internal/model"
)

const (
	systemdDest = "org.freedesktop.systemd1"
	systemdPath = "/org/freedesktop/systemd1"
	listUnits   = "org.freedesktop.systemd1.Manager.ListUnits"
)

// Bus selects which message bus to talk to.
type Bus string

const (
	SystemBus  Bus = "system"
	SessionBus Bus = "session"
)

// listUnitsTuple matches the wire signature of one ListUnits element:
// (ssssssouso).
type listUnitsTuple struct {
	Name        string
	Description string
	LoadState   string
	ActiveState string
	SubState    string
	Followed    string
	Path        dbus.ObjectPath
	JobID       uint32
	JobType     string
	JobPath     dbus.ObjectPath
}

// ListUnits queries the systemd manager on the chosen bus and returns
// every currently loaded unit.
func ListUnits(ctx context.Context, bus Bus) (model.SystemdUnits, error) {
	conn, err := connect(bus)
	if err != nil {
		return model.SystemdUnits{}, err
	}
	defer conn.Close()

	var tuples []listUnitsTuple
	obj := conn.Object(systemdDest, systemdPath)
	if err := obj.CallWithContext(ctx, listUnits, 0).Store(&tuples); err != nil {
		return model.SystemdUnits{}, fmt.Errorf("list units: %w", err)
	}

	units := make([]model.SystemdUnit, 0, len(tuples))
	for _, t := range tuples {
		units = append(units, tupleToUnit(t))
	}
	return model.SystemdUnits{Units: units}, nil
}

// tupleToUnit resolves the \xNN escapes in every string field systemd
// escapes: name, description and the followed unit.
func tupleToUnit(t listUnitsTuple) model.SystemdUnit {
	name := UnescapeUnitName(t.Name)
	return model.SystemdUnit{
		Name:        name,
		Description: UnescapeUnitName(t.Description),
		LoadState:   model.UnitLoadState(t.LoadState),
		ActiveState: model.UnitActiveState(t.ActiveState),
		SubState:    model.UnitSubState(t.SubState),
		Followed:    UnescapeUnitName(t.Followed),
		Path:        string(t.Path),
		JobID:       t.JobID,
		JobType:     t.JobType,
		UnitType:    model.UnitTypeOf(name),
	}
}

func connect(bus Bus) (*dbus.Conn, error) {
	switch bus {
	case SessionBus:
		conn, err := dbus.ConnectSessionBus()
		if err != nil {
			return nil, fmt.Errorf("connect session bus: %w", err)
		}
		return conn, nil
	default:
		conn, err := dbus.ConnectSystemBus()
		if err != nil {
			return nil, fmt.Errorf("connect system bus: %w", err)
		}
		return conn, nil
	}
}

// UnescapeUnitName resolves the \xNN escapes systemd applies to unit
// names, e.g. "dev-disk-by\x2duuid.device". Malformed escapes are kept
// as-is rather than dropped.
func UnescapeUnitName(name string) string {
	if !strings.Contains(name, `\x`) {
		return name
	}
	var b strings.Builder
	b.Grow(len(name))
	for i := 0; i < len(name); {
		if name[i] == '\\' && i+3 < len(name) && name[i+1] == 'x' {
			if v, err := strconv.ParseUint(name[i+2:i+4], 16, 8); err == nil {
				b.WriteByte(byte(v))
				i += 4
				continue
			}
		}
		b.WriteByte(name[i])
		i++
	}
	return b.String()
}
