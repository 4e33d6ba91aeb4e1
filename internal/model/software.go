package model

// PkgType identifies which packaging system a package (or the whole
// host) belongs to.
type PkgType string

const (
	PkgDeb    PkgType = "deb"
	PkgRpm    PkgType = "rpm"
	PkgDebRpm PkgType = "deb+rpm"
	PkgOther  PkgType = "unknown"
)

// InstalledPackages is the merged package list of the host.
type InstalledPackages struct {
	Packages []Package `json:"packages" xml:"packages>package"`
}

// Package is one installed package row.
type Package struct {
	Name    string  `json:"name" xml:"name"`
	Version string  `json:"version" xml:"version"`
	Arch    string  `json:"arch" xml:"arch"`
	PkgType PkgType `json:"pkg_type" xml:"pkg_type"`
}
