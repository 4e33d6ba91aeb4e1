package model

// CPUFreq is the cpufreq subsystem snapshot: one policy per directory
// plus the machine-wide boost toggle (absent on many drivers).
type CPUFreq struct {
	Policies []Policy `json:"policy" xml:"policy>entry"`
	Boost    *bool    `json:"boost,omitempty" xml:"boost,omitempty"`
}

// Policy mirrors one policyN directory. Attribute files come and go
// per driver, so every field is optional. Frequencies are in kHz.
type Policy struct {
	Name                        string   `json:"name" xml:"name"`
	BIOSLimit                   *uint32  `json:"bios_limit,omitempty" xml:"bios_limit,omitempty"`
	Boost                       *bool    `json:"boost,omitempty" xml:"boost,omitempty"`
	CPB                         *bool    `json:"cpb,omitempty" xml:"cpb,omitempty"`
	CPUInfoMaxFreq              *uint32  `json:"cpuinfo_max_freq,omitempty" xml:"cpuinfo_max_freq,omitempty"`
	CPUInfoMinFreq              *uint32  `json:"cpuinfo_min_freq,omitempty" xml:"cpuinfo_min_freq,omitempty"`
	CPUInfoTransitionLatency    *uint32  `json:"cpuinfo_transition_latency,omitempty" xml:"cpuinfo_transition_latency,omitempty"`
	ScalingAvailableFrequencies []uint32 `json:"scaling_available_frequencies,omitempty" xml:"scaling_available_frequencies>freq,omitempty"`
	ScalingAvailableGovernors   []string `json:"scaling_available_governors,omitempty" xml:"scaling_available_governors>governor,omitempty"`
	ScalingCurFreq              *uint32  `json:"scaling_cur_freq,omitempty" xml:"scaling_cur_freq,omitempty"`
	ScalingDriver               *string  `json:"scaling_driver,omitempty" xml:"scaling_driver,omitempty"`
	ScalingGovernor             *string  `json:"scaling_governor,omitempty" xml:"scaling_governor,omitempty"`
	ScalingMaxFreq              *uint32  `json:"scaling_max_freq,omitempty" xml:"scaling_max_freq,omitempty"`
	ScalingMinFreq              *uint32  `json:"scaling_min_freq,omitempty" xml:"scaling_min_freq,omitempty"`
	ScalingSetspeed             *string  `json:"scaling_setspeed,omitempty" xml:"scaling_setspeed,omitempty"`
}
