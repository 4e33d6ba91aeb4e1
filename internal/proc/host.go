package proc

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"ferrix-agent/internal/model"
)

const (
	uptimePath    = "/proc/uptime"
	loadavgPath   = "/proc/loadavg"
	shellsPath    = "/etc/shells"
	hostnamePath  = "/etc/hostname"
	machineIDPath = "/etc/machine-id"
	timezonePath  = "/etc/timezone"
)

// ReadHost gathers the small host-identity facts. Uptime and load
// average are required; hostname, machine id and timezone are optional
// files on many distributions.
func ReadHost() (model.Host, error) {
	uptime, err := readUptime()
	if err != nil {
		return model.Host{}, err
	}
	loadavg, err := readLoadAvg()
	if err != nil {
		return model.Host{}, err
	}
	shells, err := ReadShells()
	if err != nil {
		return model.Host{}, err
	}
	return model.Host{
		Hostname:  readTrimmedPtr(hostnamePath),
		MachineID: readTrimmedPtr(machineIDPath),
		Timezone:  readTrimmedPtr(timezonePath),
		Uptime:    uptime,
		LoadAvg:   loadavg,
		Shells:    shells,
		EnvVars:   environVars(),
	}, nil
}

func readUptime() (model.Uptime, error) {
	s, err := readTrimmed(uptimePath)
	if err != nil {
		return model.Uptime{}, err
	}
	return ParseUptime(s)
}

// ParseUptime decodes the two float fields of /proc/uptime.
func ParseUptime(s string) (model.Uptime, error) {
	fields := strings.Fields(s)
	if len(fields) < 2 {
		return model.Uptime{}, fmt.Errorf("malformed uptime %q", s)
	}
	up, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return model.Uptime{}, fmt.Errorf("uptime seconds %q: %w", fields[0], err)
	}
	idle, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return model.Uptime{}, fmt.Errorf("uptime idle %q: %w", fields[1], err)
	}
	return model.Uptime{Up: up, Idle: idle}, nil
}

func readLoadAvg() (model.LoadAvg, error) {
	s, err := readTrimmed(loadavgPath)
	if err != nil {
		return model.LoadAvg{}, err
	}
	return ParseLoadAvg(s)
}

// ParseLoadAvg decodes the first three fields of /proc/loadavg.
func ParseLoadAvg(s string) (model.LoadAvg, error) {
	fields := strings.Fields(s)
	if len(fields) < 3 {
		return model.LoadAvg{}, fmt.Errorf("malformed loadavg %q", s)
	}
	var vals [3]float64
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return model.LoadAvg{}, fmt.Errorf("loadavg field %q: %w", fields[i], err)
		}
		vals[i] = v
	}
	return model.LoadAvg{One: vals[0], Five: vals[1], Fifteen: vals[2]}, nil
}

// ReadShells lists the valid login shells from /etc/shells.
func ReadShells() ([]string, error) {
	f, err := os.Open(shellsPath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", shellsPath, err)
	}
	defer f.Close()
	return ParseShells(f)
}

func ParseShells(r io.Reader) ([]string, error) {
	var shells []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		shells = append(shells, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan shells: %w", err)
	}
	return shells, nil
}

func environVars() []model.EnvVar {
	env := os.Environ()
	vars := make([]model.EnvVar, 0, len(env))
	for _, kv := range env {
		key, val, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		vars = append(vars, model.EnvVar{Key: key, Value: val})
	}
	return vars
}
