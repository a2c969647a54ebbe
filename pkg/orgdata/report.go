package orgdata

import (
	"fmt"
	"io"
	"strings"

	"k8s.io/apimachinery/pkg/util/sets"
)

const indentUnit = "\t"

type walkFrame struct {
	id    int
	depth int
}

// Walk visits the reporting hierarchy depth first starting at the head.
// Each employee is visited before its reports, and reports are visited in
// ascending ID order. fn receives copies. Walk does nothing if there is no head.
func (o *Organization) Walk(fn func(employee *Employee, depth int)) {
	o.walk(func(employee *Employee, depth int) {
		fn(employee.DeepCopy(), depth)
	})
}

func (o *Organization) walk(fn func(employee *Employee, depth int)) {
	if o.headID == nil {
		return
	}
	visited := sets.New[int]()
	stack := []walkFrame{{id: *o.headID}}
	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		employee, exists := o.employees[frame.id]
		if !exists || visited.Has(frame.id) {
			continue
		}
		visited.Insert(frame.id)
		fn(employee, frame.depth)

		// pushed in reverse so the lowest ID is popped first
		for i := len(employee.ChildrenIDs) - 1; i >= 0; i-- {
			stack = append(stack, walkFrame{id: employee.ChildrenIDs[i], depth: frame.depth + 1})
		}
	}
}

// PrintEmployee writes the record of a single employee
func (o *Organization) PrintEmployee(w io.Writer, id int) error {
	employee, exists := o.employees[id]
	if !exists {
		return employeeNotFound()
	}
	_, err := fmt.Fprintln(w, employee)
	return err
}

// PrintOrg writes the reporting hierarchy, one record per line, indented one
// tab per level below the head
func (o *Organization) PrintOrg(w io.Writer) error {
	var err error
	o.walk(func(employee *Employee, depth int) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, "%s%s\n", strings.Repeat(indentUnit, depth), employee)
	})
	return err
}

// PrintUnits writes every unit in creation order followed by its members
func (o *Organization) PrintUnits(w io.Writer) error {
	for _, name := range o.unitOrder {
		unit := o.units[name]
		if _, err := fmt.Fprintf(w, "%s | number of employees = %d\n", unit.Name, unit.Len()); err != nil {
			return err
		}
		for _, member := range unit.Members() {
			if _, err := fmt.Fprintf(w, "%s%s\n", indentUnit, member); err != nil {
				return err
			}
		}
	}
	return nil
}
