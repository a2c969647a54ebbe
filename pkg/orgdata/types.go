package orgdata

import (
	"fmt"

	"k8s.io/apimachinery/pkg/util/sets"
)

// Employee is a single person registered in the organization.
// ManagerID is nil only for the head of the organization.
type Employee struct {
	ID          int
	Name        string
	UnitName    string
	Age         int
	Role        Role
	ManagerID   *int
	ChildrenIDs []int
}

// HasManager reports whether the employee reports to someone
func (e *Employee) HasManager() bool {
	return e.ManagerID != nil
}

// String renders the single line record used by every report
func (e *Employee) String() string {
	return fmt.Sprintf("|--%s | %s | %d | %s - %d", e.Role, e.UnitName, e.ID, e.Name, e.Age)
}

// DeepCopy returns a copy that shares no memory with e
func (e *Employee) DeepCopy() *Employee {
	out := *e
	if e.ManagerID != nil {
		id := *e.ManagerID
		out.ManagerID = &id
	}
	if e.ChildrenIDs != nil {
		out.ChildrenIDs = append([]int(nil), e.ChildrenIDs...)
	}
	return &out
}

// addChild records id as a direct report, keeping ChildrenIDs sorted and unique
func (e *Employee) addChild(id int) {
	children := sets.New(e.ChildrenIDs...)
	children.Insert(id)
	e.ChildrenIDs = sets.List(children)
}

func (e *Employee) removeChild(id int) {
	kept := e.ChildrenIDs[:0]
	for _, child := range e.ChildrenIDs {
		if child != id {
			kept = append(kept, child)
		}
	}
	e.ChildrenIDs = kept
}

// Stats summarizes the registry contents
type Stats struct {
	EmployeeCount int
	UnitCount     int
	NextID        int
	HasHead       bool
}
