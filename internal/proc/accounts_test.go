package proc

import (
	"strings"
	"testing"
)

func TestParseUsers(t *testing.T) {
	t.Parallel()

	fixture := `root:x:0:0:root:/root:/bin/bash
daemon:x:1:1:daemon:/usr/sbin:/usr/sbin/nologin
nobody:x:65534:65534::/nonexistent:/usr/sbin/nologin
broken:x:not-a-number:0::/:/bin/false
short:x:1:2:/home/short
`
	users, err := ParseUsers(strings.NewReader(fixture))
	if err != nil {
		t.Fatalf("ParseUsers: %v", err)
	}
	if len(users.Users) != 3 {
		t.Fatalf("expected 3 users, got %d", len(users.Users))
	}

	root := users.Users[0]
	if root.Name != "root" || root.UID != 0 || root.GID != 0 {
		t.Errorf("root row = %+v", root)
	}
	if root.Gecos == nil || *root.Gecos != "root" {
		t.Errorf("root gecos = %v", root.Gecos)
	}
	if root.LoginShell != "/bin/bash" {
		t.Errorf("root shell = %q", root.LoginShell)
	}

	nobody := users.Users[2]
	if nobody.Gecos != nil {
		t.Errorf("empty gecos should be nil, got %q", *nobody.Gecos)
	}
	if nobody.UID != 65534 {
		t.Errorf("nobody uid = %d", nobody.UID)
	}
}

func TestParseUsersAllMalformed(t *testing.T) {
	t.Parallel()

	fixture := `no-colons-at-all
only:three:fields
bad:x:uid:0:gecos:/home:/bin/sh:extra
worse:x:1:nan::/:/bin/false
`
	users, err := ParseUsers(strings.NewReader(fixture))
	if err != nil {
		t.Fatalf("ParseUsers: %v", err)
	}
	if len(users.Users) != 0 {
		t.Errorf("expected no users, got %+v", users.Users)
	}
}

func TestParseGroups(t *testing.T) {
	t.Parallel()

	fixture := `root:x:0:
sudo:x:27:alice,bob
docker:x:999:alice
broken:x:nan:alice
`
	groups, err := ParseGroups(strings.NewReader(fixture))
	if err != nil {
		t.Fatalf("ParseGroups: %v", err)
	}
	if len(groups.Groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups.Groups))
	}

	if groups.Groups[0].Name != "root" || len(groups.Groups[0].Users) != 0 {
		t.Errorf("root group = %+v", groups.Groups[0])
	}
	sudo := groups.Groups[1]
	if sudo.GID != 27 || len(sudo.Users) != 2 || sudo.Users[1] != "bob" {
		t.Errorf("sudo group = %+v", sudo)
	}
}

func TestParseGroupsAllMalformed(t *testing.T) {
	t.Parallel()

	fixture := `just-a-name
two:fields
five:x:1:alice:extra
nan:x:gid:alice
`
	groups, err := ParseGroups(strings.NewReader(fixture))
	if err != nil {
		t.Fatalf("ParseGroups: %v", err)
	}
	if len(groups.Groups) != 0 {
		t.Errorf("expected no groups, got %+v", groups.Groups)
	}
}
