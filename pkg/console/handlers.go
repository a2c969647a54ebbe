package console

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/openshift/org-registry/pkg/console/parser"
	"github.com/openshift/org-registry/pkg/orgdata"
)

const addEmployeeFormatError = "Wrong format for add employee command."

// respond records the outcome of a command and picks the reply
func respond(command string, err error, success string) string {
	if err != nil {
		logrus.WithField("command", command).WithField("reason", orgdata.ReasonForError(err)).Debug("Command rejected")
		recordCommand(command, resultError)
		return err.Error()
	}
	recordCommand(command, resultSuccess)
	return success
}

func usage(command, reply string) string {
	recordCommand(command, resultUsage)
	return reply
}

// intParams parses the named parameters as integers. When one is malformed
// the second return value holds the reply to send instead.
func intParams(command string, properties *parser.Properties, keys ...string) ([]int, string) {
	values := make([]int, 0, len(keys))
	for _, key := range keys {
		value, err := properties.IntParam(key)
		if err != nil {
			label := strings.ReplaceAll(command, "_", " ")
			return nil, usage(command, fmt.Sprintf("Wrong format for %s command.\n\t%s must be an integer", label, key))
		}
		values = append(values, value)
	}
	return values, ""
}

func AddUnit(registry orgdata.Registry, properties *parser.Properties) string {
	const command = "add_unit"
	if !properties.HasParam("unit_name") {
		return usage(command, "Usage: add_unit <unit_name>")
	}
	name := properties.StringParam("unit_name", "")
	return respond(command, registry.AddUnit(name), fmt.Sprintf("Unit %s added successfully", name))
}

func AddEmployee(registry orgdata.Registry, properties *parser.Properties) string {
	const command = "add_employee"
	if !properties.HasParam("name", "unit", "age", "role") {
		return usage(command, addEmployeeFormatError)
	}
	ints, reply := intParams(command, properties, "age")
	if reply != "" {
		return reply
	}
	var managerID *int
	if properties.HasParam("manager_id") {
		ids, reply := intParams(command, properties, "manager_id")
		if reply != "" {
			return reply
		}
		managerID = &ids[0]
	}
	id, err := registry.AddEmployee(
		properties.StringParam("name", ""),
		properties.StringParam("unit", ""),
		ints[0],
		properties.StringParam("role", ""),
		managerID,
	)
	return respond(command, err, fmt.Sprintf("Employee added successfully and was assigned id %d", id))
}

func DeleteEmployee(registry orgdata.Registry, properties *parser.Properties) string {
	const command = "delete_employee"
	if !properties.HasParam("id") {
		return usage(command, "Usage: delete_employee <id>")
	}
	ids, reply := intParams(command, properties, "id")
	if reply != "" {
		return reply
	}
	return respond(command, registry.DeleteEmployee(ids[0]), fmt.Sprintf("Employee with id %d deleted successfully", ids[0]))
}

func PrintEmployee(registry orgdata.Registry, properties *parser.Properties) string {
	const command = "print_employee"
	if !properties.HasParam("id") {
		return usage(command, "Usage: print_employee <id>")
	}
	ids, reply := intParams(command, properties, "id")
	if reply != "" {
		return reply
	}
	var b strings.Builder
	err := registry.PrintEmployee(&b, ids[0])
	return respond(command, err, strings.TrimSuffix(b.String(), "\n"))
}

func AssignManager(registry orgdata.Registry, properties *parser.Properties) string {
	const command = "assign_manager"
	if !properties.HasParam("id", "manager_id") {
		return usage(command, "Usage: assign_manager <id> <manager_id>")
	}
	ids, reply := intParams(command, properties, "id", "manager_id")
	if reply != "" {
		return reply
	}
	return respond(command, registry.AssignManager(ids[0], ids[1]), fmt.Sprintf("Assigned employee %d to manager %d", ids[0], ids[1]))
}

func MoveToUnit(registry orgdata.Registry, properties *parser.Properties) string {
	const command = "move_to_unit"
	if !properties.HasParam("id", "unit_name") {
		return usage(command, "Usage: move_to_unit <id> <unit_name>")
	}
	ids, reply := intParams(command, properties, "id")
	if reply != "" {
		return reply
	}
	unitName := properties.StringParam("unit_name", "")
	return respond(command, registry.MoveToUnit(ids[0], unitName), fmt.Sprintf("Employee %d moved to unit %s.", ids[0], unitName))
}

func PrintOrg(registry orgdata.Registry, _ *parser.Properties) string {
	var b strings.Builder
	err := registry.PrintOrg(&b)
	return respond("print_org", err, strings.TrimSuffix(b.String(), "\n"))
}

func PrintUnits(registry orgdata.Registry, _ *parser.Properties) string {
	var b strings.Builder
	err := registry.PrintUnits(&b)
	return respond("print_units", err, strings.TrimSuffix(b.String(), "\n"))
}
