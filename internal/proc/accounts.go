package proc

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"ferrix-agent/internal/model"
)

const (
	passwdPath = "/etc/passwd"
	groupPath  = "/etc/group"
)

// ReadUsers reads and parses /etc/passwd.
func ReadUsers() (model.Users, error) {
	f, err := os.Open(passwdPath)
	if err != nil {
		return model.Users{}, fmt.Errorf("open %s: %w", passwdPath, err)
	}
	defer f.Close()
	return ParseUsers(f)
}

// ParseUsers decodes passwd rows. Rows with the wrong field count or
// an unparsable uid/gid are skipped, NSS-managed systems ship such
// lines routinely.
func ParseUsers(r io.Reader) (model.Users, error) {
	var users model.Users
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		chunks := strings.Split(line, ":")
		if len(chunks) != 7 {
			continue
		}
		uid, err := parseUint32(chunks[2])
		if err != nil {
			continue
		}
		gid, err := parseUint32(chunks[3])
		if err != nil {
			continue
		}
		var gecos *string
		if g := sanitizeField(chunks[4]); g != "" {
			gecos = &g
		}
		users.Users = append(users.Users, model.User{
			Name:       sanitizeField(chunks[0]),
			UID:        uid,
			GID:        gid,
			Gecos:      gecos,
			HomeDir:    sanitizeField(chunks[5]),
			LoginShell: sanitizeField(chunks[6]),
		})
	}
	if err := sc.Err(); err != nil {
		return model.Users{}, fmt.Errorf("scan passwd: %w", err)
	}
	return users, nil
}

// ReadGroups reads and parses /etc/group.
func ReadGroups() (model.Groups, error) {
	f, err := os.Open(groupPath)
	if err != nil {
		return model.Groups{}, fmt.Errorf("open %s: %w", groupPath, err)
	}
	defer f.Close()
	return ParseGroups(f)
}

// ParseGroups decodes group rows with the same tolerance as
// ParseUsers.
func ParseGroups(r io.Reader) (model.Groups, error) {
	var groups model.Groups
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		chunks := strings.Split(line, ":")
		if len(chunks) != 4 {
			continue
		}
		gid, err := parseUint32(chunks[2])
		if err != nil {
			continue
		}
		var members []string
		for _, m := range strings.Split(chunks[3], ",") {
			if m = sanitizeField(m); m != "" {
				members = append(members, m)
			}
		}
		groups.Groups = append(groups.Groups, model.Group{
			Name:  sanitizeField(chunks[0]),
			GID:   gid,
			Users: members,
		})
	}
	if err := sc.Err(); err != nil {
		return model.Groups{}, fmt.Errorf("scan group: %w", err)
	}
	return groups, nil
}

// sanitizeField trims whitespace and any stray quoting.
func sanitizeField(s string) string {
	return strings.Trim(strings.TrimSpace(s), `"'`)
}
