package model

// KernelModules lists the loaded modules from /proc/modules.
type KernelModules struct {
	Modules []KernelModule `json:"modules" xml:"modules>module"`
}

// KernelModule is one /proc/modules row: name, memory size in bytes,
// reference count, dependent modules, live state and load address.
type KernelModule struct {
	Name         string   `json:"name" xml:"name"`
	Size         uint64   `json:"size" xml:"size"`
	Instances    uint64   `json:"instances" xml:"instances"`
	Dependencies []string `json:"dependencies" xml:"dependencies>module"`
	State        string   `json:"state" xml:"state"`
	Address      string   `json:"address" xml:"address"`
}
