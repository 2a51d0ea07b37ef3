package domain

import (
	"strings"

	"sitedesk/internal/domain/entities"
)

// Role is the dashboard layout a member works in.
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleOwner       Role = "owner"
	RoleSiteManager Role = "site_manager"
	RoleWorker      Role = "worker"
	RoleLaboratory  Role = "laboratory"
)

var permissions = map[Role][]entities.Kind{
	RoleOwner:       {entities.KindProject, entities.KindTransaction, entities.KindListing},
	RoleSiteManager: {entities.KindProject, entities.KindPersonnel, entities.KindMaterial},
	RoleLaboratory:  {entities.KindLabTest},
}

// rank orders roles when a member holds several of them.
var rank = map[Role]int{
	RoleWorker:      0,
	RoleLaboratory:  1,
	RoleSiteManager: 2,
	RoleOwner:       3,
	RoleAdmin:       4,
}

// ParseRole accepts the canonical names plus the spellings used for guild
// roles ("Site Manager", "site-manager", "lab").
func ParseRole(name string) (Role, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.NewReplacer(" ", "_", "-", "_").Replace(n)
	switch n {
	case "admin", "administrator":
		return RoleAdmin, true
	case "owner", "project_owner":
		return RoleOwner, true
	case "site_manager", "manager":
		return RoleSiteManager, true
	case "worker":
		return RoleWorker, true
	case "laboratory", "lab":
		return RoleLaboratory, true
	}
	return "", false
}

// Outranks reports whether r has more privileges than other.
func (r Role) Outranks(other Role) bool {
	return rank[r] > rank[other]
}

// CanManage reports whether r may create, update or delete records of kind.
// Every role can read.
func (r Role) CanManage(kind entities.Kind) bool {
	if r == RoleAdmin {
		return true
	}
	for _, k := range permissions[r] {
		if k == kind {
			return true
		}
	}
	return false
}
