package orgdata

import "sort"

// Unit is a named group of employees, independent of the reporting hierarchy.
// Members are kept in ascending ID order.
type Unit struct {
	Name    string
	members []*Employee
}

// NewUnit creates an empty unit
func NewUnit(name string) *Unit {
	return &Unit{Name: name}
}

// AddMember appends the employee and re-sorts the members by ID
func (u *Unit) AddMember(employee *Employee) {
	u.members = append(u.members, employee)
	sort.SliceStable(u.members, func(i, j int) bool {
		return u.members[i].ID < u.members[j].ID
	})
}

// RemoveMember drops the member with the given ID. Removing an absent ID is a no-op.
func (u *Unit) RemoveMember(id int) {
	kept := make([]*Employee, 0, len(u.members))
	for _, member := range u.members {
		if member.ID != id {
			kept = append(kept, member)
		}
	}
	u.members = kept
}

// Len returns the number of members
func (u *Unit) Len() int {
	return len(u.members)
}

// Members returns the members in ascending ID order.
// The slice is a copy; the employees are not.
func (u *Unit) Members() []*Employee {
	return append([]*Employee(nil), u.members...)
}

// DeepCopy returns a unit whose members are copies of u's members
func (u *Unit) DeepCopy() *Unit {
	out := &Unit{Name: u.Name, members: make([]*Employee, 0, len(u.members))}
	for _, member := range u.members {
		out.members = append(out.members, member.DeepCopy())
	}
	return out
}

// Has reports whether an employee with the given ID is a member
func (u *Unit) Has(id int) bool {
	for _, member := range u.members {
		if member.ID == id {
			return true
		}
	}
	return false
}
