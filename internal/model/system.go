package model

// Kernel is a snapshot of kernel identity and a few sysctl limits.
// pid_max and threads-max are present on every supported kernel, so
// their absence is a read error rather than a nil field.
type Kernel struct {
	Uname         *string `json:"uname,omitempty" xml:"uname,omitempty"`
	Cmdline       *string `json:"cmdline,omitempty" xml:"cmdline,omitempty"`
	Arch          *string `json:"arch,omitempty" xml:"arch,omitempty"`
	Version       *string `json:"version,omitempty" xml:"version,omitempty"`
	BuildInfo     *string `json:"build_info,omitempty" xml:"build_info,omitempty"`
	PidMax        uint32  `json:"pid_max" xml:"pid_max"`
	ThreadsMax    uint32  `json:"threads_max" xml:"threads_max"`
	UserEventsMax *uint32 `json:"user_events_max,omitempty" xml:"user_events_max,omitempty"`
	EntropyAvail  *uint16 `json:"enthropy_avail,omitempty" xml:"enthropy_avail,omitempty"`
}

// OSRelease mirrors /etc/os-release per the freedesktop os-release(5)
// field catalogue. Only NAME has a non-optional slot; the file may
// legally omit everything else.
type OSRelease struct {
	Name             string  `json:"name" xml:"name"`
	ID               *string `json:"id,omitempty" xml:"id,omitempty"`
	IDLike           *string `json:"id_like,omitempty" xml:"id_like,omitempty"`
	PrettyName       *string `json:"pretty_name,omitempty" xml:"pretty_name,omitempty"`
	CPEName          *string `json:"cpe_name,omitempty" xml:"cpe_name,omitempty"`
	Variant          *string `json:"variant,omitempty" xml:"variant,omitempty"`
	VariantID        *string `json:"variant_id,omitempty" xml:"variant_id,omitempty"`
	Version          *string `json:"version,omitempty" xml:"version,omitempty"`
	VersionID        *string `json:"version_id,omitempty" xml:"version_id,omitempty"`
	VersionCodename  *string `json:"version_codename,omitempty" xml:"version_codename,omitempty"`
	BuildID          *string `json:"build_id,omitempty" xml:"build_id,omitempty"`
	ImageID          *string `json:"image_id,omitempty" xml:"image_id,omitempty"`
	ImageVersion     *string `json:"image_version,omitempty" xml:"image_version,omitempty"`
	HomeURL          *string `json:"home_url,omitempty" xml:"home_url,omitempty"`
	DocumentationURL *string `json:"documentation_url,omitempty" xml:"documentation_url,omitempty"`
	SupportURL       *string `json:"support_url,omitempty" xml:"support_url,omitempty"`
	BugReportURL     *string `json:"bug_report_url,omitempty" xml:"bug_report_url,omitempty"`
	PrivacyPolicyURL *string `json:"privacy_policy_url,omitempty" xml:"privacy_policy_url,omitempty"`
	Logo             *string `json:"logo,omitempty" xml:"logo,omitempty"`
	DefaultHostname  *string `json:"default_hostname,omitempty" xml:"default_hostname,omitempty"`
	SysextLevel      *string `json:"sysext_level,omitempty" xml:"sysext_level,omitempty"`
}

// Uptime is /proc/uptime: seconds since boot and summed idle seconds
// across cores.
type Uptime struct {
	Up   float64 `json:"up" xml:"up"`
	Idle float64 `json:"idle" xml:"idle"`
}

// LoadAvg is the first three fields of /proc/loadavg.
type LoadAvg struct {
	One     float64 `json:"one" xml:"one"`
	Five    float64 `json:"five" xml:"five"`
	Fifteen float64 `json:"fifteen" xml:"fifteen"`
}

// Users lists the accounts from /etc/passwd.
type Users struct {
	Users []User `json:"users" xml:"users>user"`
}

// User is one well-formed /etc/passwd row. The password field is
// deliberately not captured.
type User struct {
	Name       string  `json:"name" xml:"name"`
	UID        uint32  `json:"uid" xml:"uid"`
	GID        uint32  `json:"gid" xml:"gid"`
	Gecos      *string `json:"gecos,omitempty" xml:"gecos,omitempty"`
	HomeDir    string  `json:"home_dir" xml:"home_dir"`
	LoginShell string  `json:"login_shell" xml:"login_shell"`
}

// Groups lists the entries from /etc/group.
type Groups struct {
	Groups []Group `json:"groups" xml:"groups>group"`
}

// Group is one well-formed /etc/group row.
type Group struct {
	Name  string   `json:"name" xml:"name"`
	GID   uint32   `json:"gid" xml:"gid"`
	Users []string `json:"users" xml:"users>user"`
}

// EnvVar is one environment variable of the collecting process.
type EnvVar struct {
	Key   string `json:"key" xml:"key"`
	Value string `json:"value" xml:"value"`
}

// Host gathers the small host-identity facts that do not warrant a
// section of their own.
type Host struct {
	Hostname  *string  `json:"hostname,omitempty" xml:"hostname,omitempty"`
	MachineID *string  `json:"machine_id,omitempty" xml:"machine_id,omitempty"`
	Timezone  *string  `json:"timezone,omitempty" xml:"timezone,omitempty"`
	Uptime    Uptime   `json:"uptime" xml:"uptime"`
	LoadAvg   LoadAvg  `json:"loadavg" xml:"loadavg"`
	Shells    []string `json:"shells" xml:"shells>shell"`
	EnvVars   []EnvVar `json:"env_vars" xml:"env_vars>var"`
}

// Vulnerability is one file from the CPU vulnerabilities directory.
type Vulnerability struct {
	Name   string `json:"name" xml:"name"`
	Status string `json:"status" xml:"status"`
}

// Vulnerabilities lists the CPU vulnerability mitigations, sorted by
// name for stable output.
type Vulnerabilities struct {
	Entries []Vulnerability `json:"entries" xml:"entries>vulnerability"`
}
