package proc

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"ferrix-agent/internal/model"
)

const osReleasePath = "/etc/os-release"

// ReadOSRelease reads and parses /etc/os-release.
func ReadOSRelease() (model.OSRelease, error) {
	f, err := os.Open(osReleasePath)
	if err != nil {
		return model.OSRelease{}, fmt.Errorf("open %s: %w", osReleasePath, err)
	}
	defer f.Close()
	return ParseOSRelease(f)
}

// ParseOSRelease decodes the KEY=value rows of os-release(5). Values
// are unquoted; keys outside the catalogue are ignored.
func ParseOSRelease(r io.Reader) (model.OSRelease, error) {
	var rel model.OSRelease
	fields := map[string]**string{
		"ID":                 &rel.ID,
		"ID_LIKE":            &rel.IDLike,
		"PRETTY_NAME":        &rel.PrettyName,
		"CPE_NAME":           &rel.CPEName,
		"VARIANT":            &rel.Variant,
		"VARIANT_ID":         &rel.VariantID,
		"VERSION":            &rel.Version,
		"VERSION_ID":         &rel.VersionID,
		"VERSION_CODENAME":   &rel.VersionCodename,
		"BUILD_ID":           &rel.BuildID,
		"IMAGE_ID":           &rel.ImageID,
		"IMAGE_VERSION":      &rel.ImageVersion,
		"HOME_URL":           &rel.HomeURL,
		"DOCUMENTATION_URL":  &rel.DocumentationURL,
		"SUPPORT_URL":        &rel.SupportURL,
		"BUG_REPORT_URL":     &rel.BugReportURL,
		"PRIVACY_POLICY_URL": &rel.PrivacyPolicyURL,
		"LOGO":               &rel.Logo,
		"DEFAULT_HOSTNAME":   &rel.DefaultHostname,
		"SYSEXT_LEVEL":       &rel.SysextLevel,
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, val, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		val = sanitizeField(val)
		if key == "NAME" {
			rel.Name = val
			continue
		}
		if dst, ok := fields[key]; ok {
			v := val
			*dst = &v
		}
	}
	if err := sc.Err(); err != nil {
		return model.OSRelease{}, fmt.Errorf("scan os-release: %w", err)
	}
	return rel, nil
}
