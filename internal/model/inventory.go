package model

import "time"

// Section is one error-isolated slot of the inventory: either data or
// the error string of the source that failed to produce it. Keeping
// the error as a string keeps the aggregate serializable as-is.
type Section[T any] struct {
	Data  *T     `json:"data,omitempty" xml:"data,omitempty"`
	Error string `json:"error,omitempty" xml:"error,omitempty"`
}

// Wrap turns a (value, error) pair into a Section.
func Wrap[T any](v T, err error) Section[T] {
	if err != nil {
		return Section[T]{Error: err.Error()}
	}
	return Section[T]{Data: &v}
}

func (s Section[T]) OK() bool { return s.Error == "" && s.Data != nil }

// Inventory is the whole collected snapshot. Every section stands on
// its own: a failing source fills in its error slot and the rest of
// the snapshot is unaffected.
type Inventory struct {
	CollectedAt time.Time `json:"collected_at" xml:"collected_at"`

	Processors      Section[Processors]      `json:"processors" xml:"processors"`
	Stat            Section[CPUStat]         `json:"proc_stat" xml:"proc_stat"`
	Vulnerabilities Section[Vulnerabilities] `json:"cpu_vulnerabilities" xml:"cpu_vulnerabilities"`
	CPUFreq         Section[CPUFreq]         `json:"cpu_freq" xml:"cpu_freq"`

	Memory Section[Memory] `json:"memory_ram" xml:"memory_ram"`
	Swaps  Section[Swaps]  `json:"memory_swaps" xml:"memory_swaps"`
	VMStat Section[VMStat] `json:"vmstat" xml:"vmstat"`

	Partitions Section[Partitions] `json:"storage" xml:"storage"`
	DMI        Section[DMITable]   `json:"dmi" xml:"dmi"`
	Battery    Section[Batteries]  `json:"battery" xml:"battery"`
	Video      Section[Video]      `json:"video" xml:"video"`

	Distro  Section[OSRelease]         `json:"distro" xml:"distro"`
	Kernel  Section[Kernel]            `json:"kernel" xml:"kernel"`
	KMods   Section[KernelModules]     `json:"kmods" xml:"kmods"`
	Users   Section[Users]             `json:"users" xml:"users"`
	Groups  Section[Groups]            `json:"groups" xml:"groups"`
	Systemd Section[SystemdUnits]      `json:"systemd" xml:"systemd"`
	Pkgs    Section[InstalledPackages] `json:"installed_pkgs" xml:"installed_pkgs"`
	Host    Section[Host]              `json:"system" xml:"system"`
}
