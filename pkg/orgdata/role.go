package orgdata

import "k8s.io/apimachinery/pkg/util/sets"

// Role is the position an employee holds in the organization
type Role string

const (
	RoleIntern             Role = "INTERN"
	RoleStaffMember        Role = "STAFF_MEMBER"
	RoleSeniorStaff        Role = "SENIOR_STAFF"
	RoleManager            Role = "MANAGER"
	RoleDirector           Role = "DIRECTOR"
	RoleHeadOfOrganization Role = "HEAD_OF_ORGANIZATION"
)

var (
	// SupportedRoles lists every valid role, most junior first
	SupportedRoles = []Role{
		RoleIntern,
		RoleStaffMember,
		RoleSeniorStaff,
		RoleManager,
		RoleDirector,
		RoleHeadOfOrganization,
	}

	validRoles    = sets.New(SupportedRoles...)
	managingRoles = sets.New(RoleSeniorStaff, RoleManager, RoleDirector, RoleHeadOfOrganization)
)

// Exists reports whether r is one of the supported roles
func (r Role) Exists() bool {
	return validRoles.Has(r)
}

// CanManage reports whether an employee holding r may have direct reports
func (r Role) CanManage() bool {
	return managingRoles.Has(r)
}

func (r Role) String() string {
	return string(r)
}

// ParseRole converts user input into a Role. Matching is exact.
func ParseRole(value string) (Role, bool) {
	role := Role(value)
	if !role.Exists() {
		return "", false
	}
	return role, true
}
