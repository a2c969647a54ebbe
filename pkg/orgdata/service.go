package orgdata

import (
	"k8s.io/apimachinery/pkg/util/sets"
	"k8s.io/klog"
)

// Organization owns every employee and unit of a session and enforces the
// invariants between them. It is not safe for concurrent use.
type Organization struct {
	employees map[int]*Employee
	units     map[string]*Unit
	// unit names in creation order
	unitOrder []string
	nextID    int
	headID    *int
}

// NewOrganization creates an empty organization
func NewOrganization() *Organization {
	return &Organization{
		employees: map[int]*Employee{},
		units:     map[string]*Unit{},
	}
}

// AddUnit registers a new, empty unit
func (o *Organization) AddUnit(name string) error {
	if _, exists := o.units[name]; exists {
		return newError(ReasonDuplicateUnit, "Unit %s already exists.", name)
	}
	o.units[name] = NewUnit(name)
	o.unitOrder = append(o.unitOrder, name)
	klog.V(2).Infof("Added unit %s", name)
	return nil
}

// AddEmployee validates and registers a new employee, returning its ID.
// managerID is ignored for the head of the organization and required otherwise.
// IDs are only consumed on success.
func (o *Organization) AddEmployee(name, unitName string, age int, role string, managerID *int) (int, error) {
	unit, exists := o.units[unitName]
	if !exists {
		return 0, unitNotFound(unitName)
	}

	parsed, ok := ParseRole(role)
	if !ok {
		return 0, wrongAddEmployeeFormat(ReasonInvalidRole, "role must be a valid employee role")
	}

	var manager *Employee
	if parsed == RoleHeadOfOrganization {
		if o.headID != nil {
			return 0, newError(ReasonDuplicateHead, "Organization can have only a single %s", RoleHeadOfOrganization)
		}
		managerID = nil
	} else {
		if managerID == nil {
			return 0, wrongAddEmployeeFormat(ReasonMissingManager, "Employee must have a manager, unless they are the HEAD_OF_ORGANIZATION.")
		}
		manager, exists = o.employees[*managerID]
		if !exists {
			return 0, managerNotFound(*managerID)
		}
		if !manager.Role.CanManage() {
			return 0, managerCannotManage(manager.Role)
		}
	}

	id := o.nextID
	o.nextID++

	employee := &Employee{
		ID:       id,
		Name:     name,
		UnitName: unitName,
		Age:      age,
		Role:     parsed,
	}
	if manager != nil {
		managerRef := manager.ID
		employee.ManagerID = &managerRef
	}

	o.employees[id] = employee
	unit.AddMember(employee)

	if parsed == RoleHeadOfOrganization {
		o.headID = &id
	} else {
		manager.addChild(id)
	}

	klog.V(2).Infof("Added employee %d (%s) to unit %s as %s", id, name, unitName, parsed)
	return id, nil
}

// DeleteEmployee removes an employee that has no direct reports.
// The head of the organization can never be deleted.
func (o *Organization) DeleteEmployee(id int) error {
	employee, exists := o.employees[id]
	if !exists {
		return employeeNotFound()
	}
	if employee.Role == RoleHeadOfOrganization {
		return newError(ReasonCannotDeleteHead, "%s can never be deleted!", RoleHeadOfOrganization)
	}
	if len(employee.ChildrenIDs) > 0 {
		return newError(ReasonHasReports, "Employee has reporters - can't delete")
	}

	if unit, exists := o.units[employee.UnitName]; exists {
		unit.RemoveMember(id)
	}
	if employee.HasManager() {
		if manager, exists := o.employees[*employee.ManagerID]; exists {
			manager.removeChild(id)
		}
	}
	delete(o.employees, id)

	klog.V(2).Infof("Deleted employee %d", id)
	return nil
}

// AssignManager moves an employee under a new manager. Assignments that
// would make an employee report to itself, directly or transitively, are rejected.
func (o *Organization) AssignManager(id, managerID int) error {
	employee, exists := o.employees[id]
	if !exists {
		return employeeNotFound()
	}
	manager, exists := o.employees[managerID]
	if !exists {
		return newError(ReasonManagerNotFound, "Manager with this id was not found.")
	}
	if employee.Role == RoleHeadOfOrganization {
		return newError(ReasonHeadHasNoManager, "%s has no managers!", RoleHeadOfOrganization)
	}
	if !manager.Role.CanManage() {
		return managerCannotManage(manager.Role)
	}
	if o.subordinates(id).Has(managerID) {
		return newError(ReasonManagementCycle, "Employee %d reports to employee %d - can't assign as manager.", managerID, id)
	}

	if employee.HasManager() {
		if previous, exists := o.employees[*employee.ManagerID]; exists {
			previous.removeChild(id)
		}
	}
	employee.ManagerID = &managerID
	manager.addChild(id)

	klog.V(2).Infof("Assigned employee %d to manager %d", id, managerID)
	return nil
}

// subordinates returns id together with every transitive report of id
func (o *Organization) subordinates(id int) sets.Set[int] {
	seen := sets.New(id)
	pending := []int{id}
	for len(pending) > 0 {
		current := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		employee, exists := o.employees[current]
		if !exists {
			continue
		}
		for _, child := range employee.ChildrenIDs {
			if seen.Has(child) {
				continue
			}
			seen.Insert(child)
			pending = append(pending, child)
		}
	}
	return seen
}

// MoveToUnit transfers an employee to another existing unit
func (o *Organization) MoveToUnit(id int, unitName string) error {
	employee, exists := o.employees[id]
	if !exists {
		return employeeNotFound()
	}
	target, exists := o.units[unitName]
	if !exists {
		return unitNotFound(unitName)
	}

	if current, exists := o.units[employee.UnitName]; exists {
		current.RemoveMember(id)
	}
	employee.UnitName = unitName
	target.AddMember(employee)

	klog.V(2).Infof("Moved employee %d to unit %s", id, unitName)
	return nil
}

// GetEmployee returns a copy of the employee with the given ID
func (o *Organization) GetEmployee(id int) (*Employee, error) {
	employee, exists := o.employees[id]
	if !exists {
		return nil, employeeNotFound()
	}
	return employee.DeepCopy(), nil
}

// Head returns a copy of the head of the organization, if one was added
func (o *Organization) Head() (*Employee, bool) {
	if o.headID == nil {
		return nil, false
	}
	head, exists := o.employees[*o.headID]
	if !exists {
		return nil, false
	}
	return head.DeepCopy(), true
}

// Units returns a copy of every unit in creation order
func (o *Organization) Units() []*Unit {
	units := make([]*Unit, 0, len(o.unitOrder))
	for _, name := range o.unitOrder {
		units = append(units, o.units[name].DeepCopy())
	}
	return units
}

// Stats returns the current registry counters
func (o *Organization) Stats() Stats {
	return Stats{
		EmployeeCount: len(o.employees),
		UnitCount:     len(o.units),
		NextID:        o.nextID,
		HasHead:       o.headID != nil,
	}
}
