package proc

import (
	"fmt"
	"runtime"
	"strconv"

	"ferrix-agent/internal/model"
)

const (
	unamePath         = "/proc/sys/kernel/osrelease"
	cmdlinePath       = "/proc/cmdline"
	versionPath       = "/proc/version"
	buildInfoPath     = "/proc/version_signature"
	pidMaxPath        = "/proc/sys/kernel/pid_max"
	threadsMaxPath    = "/proc/sys/kernel/threads-max"
	userEventsMaxPath = "/proc/sys/kernel/user_events_max"
	entropyAvailPath  = "/proc/sys/kernel/random/entropy_avail"
)

// ReadKernel snapshots kernel identity and scheduler limits. pid_max
// and threads-max must be readable; everything else degrades to nil.
func ReadKernel() (model.Kernel, error) {
	pidMax, err := readSysctlUint32(pidMaxPath)
	if err != nil {
		return model.Kernel{}, err
	}
	threadsMax, err := readSysctlUint32(threadsMaxPath)
	if err != nil {
		return model.Kernel{}, err
	}

	arch := runtime.GOARCH
	k := model.Kernel{
		Uname:      readTrimmedPtr(unamePath),
		Cmdline:    readTrimmedPtr(cmdlinePath),
		Arch:       &arch,
		Version:    readTrimmedPtr(versionPath),
		BuildInfo:  readTrimmedPtr(buildInfoPath),
		PidMax:     pidMax,
		ThreadsMax: threadsMax,
	}
	if s, err := readTrimmed(userEventsMaxPath); err == nil {
		if v, err := parseUint32(s); err == nil {
			k.UserEventsMax = &v
		}
	}
	if s, err := readTrimmed(entropyAvailPath); err == nil {
		if v, err := strconv.ParseUint(s, 10, 16); err == nil {
			e := uint16(v)
			k.EntropyAvail = &e
		}
	}
	return k, nil
}

func readSysctlUint32(path string) (uint32, error) {
	s, err := readTrimmed(path)
	if err != nil {
		return 0, err
	}
	v, err := parseUint32(s)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", path, err)
	}
	return v, nil
}
