package console

import (
	"fmt"
	"strings"

	"github.com/openshift/org-registry/pkg/console/parser"
	"github.com/openshift/org-registry/pkg/orgdata"
)

const (
	quitCommand = "quit"
	helpCommand = "help"
)

func roleNames() []string {
	names := make([]string, 0, len(orgdata.SupportedRoles))
	for _, role := range orgdata.SupportedRoles {
		names = append(names, role.String())
	}
	return names
}

// SupportedCommands returns the command table in the order help lists it
func SupportedCommands() []parser.Command {
	return []parser.Command{
		parser.NewCommand("add_unit <unit_name>", &parser.CommandDefinition{
			Description: "Create a new, empty unit. Unit names are unique.",
			Example:     "add_unit Engineering",
			Handler:     AddUnit,
		}),
		parser.NewCommand("add_employee <name> <unit> <age> <role> <manager_id>", &parser.CommandDefinition{
			Description: fmt.Sprintf("Add an employee to an existing unit. Role is one of %s. Every employee except the %s needs a manager whose role can manage.",
				strings.Join(roleNames(), ", "), orgdata.RoleHeadOfOrganization),
			Example: "add_employee Carol Engineering 25 STAFF_MEMBER 0",
			Handler: AddEmployee,
		}),
		parser.NewCommand("delete_employee <id>", &parser.CommandDefinition{
			Description: "Remove an employee that has no direct reports.",
			Example:     "delete_employee 3",
			Handler:     DeleteEmployee,
		}),
		parser.NewCommand("print_employee <id>", &parser.CommandDefinition{
			Description: "Show a single employee.",
			Example:     "print_employee 0",
			Handler:     PrintEmployee,
		}),
		parser.NewCommand("assign_manager <id> <manager_id>", &parser.CommandDefinition{
			Description: "Make an employee report to another manager.",
			Example:     "assign_manager 3 1",
			Handler:     AssignManager,
		}),
		parser.NewCommand("move_to_unit <id> <unit_name>", &parser.CommandDefinition{
			Description: "Move an employee to another unit.",
			Example:     "move_to_unit 3 Sales",
			Handler:     MoveToUnit,
		}),
		parser.NewCommand("print_org", &parser.CommandDefinition{
			Description: "Show the reporting hierarchy starting at the head of the organization.",
			Handler:     PrintOrg,
		}),
		parser.NewCommand("print_units", &parser.CommandDefinition{
			Description: "Show every unit with its members.",
			Handler:     PrintUnits,
		}),
	}
}

// HelpOverview lists every command with its description
func HelpOverview(commands []parser.Command) string {
	var b strings.Builder
	b.WriteString("Available commands:")
	for _, command := range commands {
		fmt.Fprintf(&b, "\n\t%s - %s", command.Usage(), command.Definition().Description)
	}
	fmt.Fprintf(&b, "\n\t%s <command> - Show details about a command.", helpCommand)
	fmt.Fprintf(&b, "\n\t%s - Leave the session.", quitCommand)
	return b.String()
}

// HelpSpecific shows the usage, description and example of a single command
func HelpSpecific(commands []parser.Command, name string) string {
	switch name {
	case helpCommand:
		return fmt.Sprintf("Usage: %s <command>\n\tShow details about a command. Without a command, list every command.", helpCommand)
	case quitCommand:
		return fmt.Sprintf("Usage: %s\n\tLeave the session.", quitCommand)
	}
	for _, command := range commands {
		if command.Name() != name {
			continue
		}
		definition := command.Definition()
		help := fmt.Sprintf("Usage: %s\n\t%s", command.Usage(), definition.Description)
		if definition.Example != "" {
			help += fmt.Sprintf("\n\tExample: %s", definition.Example)
		}
		return help
	}
	return unknownCommand(name)
}

func unknownCommand(name string) string {
	return fmt.Sprintf("The command %s is unknown.", name)
}
