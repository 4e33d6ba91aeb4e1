package proc

import (
	"strings"
	"testing"
)

func TestParseOSRelease(t *testing.T) {
	t.Parallel()

	fixture := `NAME="Ferrix OS"
ID=ferrix
ID_LIKE=debian
VERSION_ID="1.2"
VERSION_CODENAME=granite
HOME_URL='https://example.org/'
UNKNOWN_KEY=ignored
`
	rel, err := ParseOSRelease(strings.NewReader(fixture))
	if err != nil {
		t.Fatalf("ParseOSRelease: %v", err)
	}

	if rel.Name != "Ferrix OS" {
		t.Errorf("name = %q", rel.Name)
	}
	if rel.ID == nil || *rel.ID != "ferrix" {
		t.Errorf("id = %v", rel.ID)
	}
	if rel.VersionID == nil || *rel.VersionID != "1.2" {
		t.Errorf("version_id = %v", rel.VersionID)
	}
	if rel.HomeURL == nil || *rel.HomeURL != "https://example.org/" {
		t.Errorf("home_url = %v", rel.HomeURL)
	}
	if rel.PrettyName != nil {
		t.Errorf("pretty_name should be nil, got %q", *rel.PrettyName)
	}
}
