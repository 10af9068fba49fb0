package session

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/RJohnPaul/dms/internal/domain/model"
)

//go:embed directory.yaml
var defaultDirectory []byte

// Directory is the static identity source: the user list and the role to
// permission table. It is loaded once at startup and never mutated.
type Directory struct {
	RolePermissions map[model.Role]model.PermissionSet `yaml:"role_permissions"`
	Users           []model.User                       `yaml:"users"`
}

// LoadDirectory reads a directory file, or the built-in demo directory when
// path is empty.
func LoadDirectory(path string) (*Directory, error) {
	if path == "" {
		return ParseDirectory(defaultDirectory)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", path, err)
	}
	return ParseDirectory(data)
}

func ParseDirectory(data []byte) (*Directory, error) {
	var d Directory
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parse directory: %w", err)
	}

	for role := range d.RolePermissions {
		if !role.Valid() {
			return nil, fmt.Errorf("parse directory: unknown role %q in role_permissions", role)
		}
	}
	seen := make(map[string]bool, len(d.Users))
	for i := range d.Users {
		u := &d.Users[i]
		if u.Username == "" {
			return nil, fmt.Errorf("parse directory: user #%d has no username", i+1)
		}
		if seen[u.Username] {
			return nil, fmt.Errorf("parse directory: duplicate username %q", u.Username)
		}
		seen[u.Username] = true
		if !u.Role.Valid() {
			return nil, fmt.Errorf("parse directory: user %q has unknown role %q", u.Username, u.Role)
		}
		if u.Status == "" {
			u.Status = model.UserStatusPending
		}
		// Users without an explicit grant inherit their role's permissions.
		if u.Permissions == nil {
			u.Permissions = append(model.PermissionSet(nil), d.RolePermissions[u.Role]...)
		}
	}
	return &d, nil
}

func (d *Directory) FindUser(username string) (*model.User, bool) {
	for i := range d.Users {
		if d.Users[i].Username == username {
			return &d.Users[i], true
		}
	}
	return nil, false
}

// PermissionsFor returns a copy of the role's default permission set.
func (d *Directory) PermissionsFor(role model.Role) model.PermissionSet {
	return append(model.PermissionSet(nil), d.RolePermissions[role]...)
}
