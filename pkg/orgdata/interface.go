package orgdata

import "io"

// Registry defines the operations the console dispatches to. Organization implements it.
// Queries return copies; changes to them never reach the registry.
type Registry interface {

	// Mutations

	AddUnit(name string) error
	AddEmployee(name, unitName string, age int, role string, managerID *int) (int, error)
	DeleteEmployee(id int) error
	AssignManager(id, managerID int) error
	MoveToUnit(id int, unitName string) error

	// Queries

	GetEmployee(id int) (*Employee, error)
	Head() (*Employee, bool)
	Units() []*Unit
	Walk(fn func(employee *Employee, depth int))
	Stats() Stats

	// Reports

	PrintEmployee(w io.Writer, id int) error
	PrintOrg(w io.Writer) error
	PrintUnits(w io.Writer) error
}
