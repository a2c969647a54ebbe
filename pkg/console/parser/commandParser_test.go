package parser

import (
	"errors"
	"testing"

	"github.com/openshift/org-registry/pkg/orgdata"
)

// this is a partial copy of pkg/console/commands.go
var supportedCommands = []Command{
	NewCommand("add_unit <unit_name>", &CommandDefinition{Handler: emptyHandler}),
	NewCommand("add_employee <name> <unit> <age> <role> <manager_id>", &CommandDefinition{Handler: emptyHandler}),
	NewCommand("delete_employee <id>", &CommandDefinition{Handler: emptyHandler}),
	NewCommand("assign_manager <id> <manager_id>", &CommandDefinition{Handler: emptyHandler}),
	NewCommand("print_org", &CommandDefinition{Handler: emptyHandler}),
	NewCommand("print_units", &CommandDefinition{Handler: emptyHandler}),
}

func emptyHandler(registry orgdata.Registry, properties *Properties) string {
	return ""
}

func TestMatch(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		command    string
		match      int // index of item in supportedCommands that the command should match; -1 for no match
		properties map[string]string
	}{{
		command:    "add_unit",
		match:      0,
		properties: map[string]string{},
	}, {
		command:    "add_unit Engineering",
		match:      0,
		properties: map[string]string{"unit_name": "Engineering"},
	}, {
		command:    "  add_unit   Engineering  ",
		match:      0,
		properties: map[string]string{"unit_name": "Engineering"},
	}, {
		command:    "add_unit Engineering Sales",
		match:      0,
		properties: map[string]string{"unit_name": "Engineering"},
	}, {
		command:    "add_units Engineering",
		match:      -1,
		properties: nil,
	}, {
		command:    "ADD_UNIT Engineering",
		match:      -1,
		properties: nil,
	}, {
		command: "add_employee Alice Engineering 40 HEAD_OF_ORGANIZATION",
		match:   1,
		properties: map[string]string{
			"name": "Alice",
			"unit": "Engineering",
			"age":  "40",
			"role": "HEAD_OF_ORGANIZATION",
		},
	}, {
		command: "add_employee Carol Engineering 25 STAFF_MEMBER 0",
		match:   1,
		properties: map[string]string{
			"name":       "Carol",
			"unit":       "Engineering",
			"age":        "25",
			"role":       "STAFF_MEMBER",
			"manager_id": "0",
		},
	}, {
		command: "add_employee Carol Engineering",
		match:   1,
		properties: map[string]string{
			"name": "Carol",
			"unit": "Engineering",
		},
	}, {
		command:    "delete_employee 3",
		match:      2,
		properties: map[string]string{"id": "3"},
	}, {
		command:    "assign_manager 1 99",
		match:      3,
		properties: map[string]string{"id": "1", "manager_id": "99"},
	}, {
		command:    "print_org",
		match:      4,
		properties: map[string]string{},
	}, {
		command:    "print_org now",
		match:      4,
		properties: map[string]string{},
	}, {
		command:    "print_units",
		match:      5,
		properties: map[string]string{},
	}, {
		command:    "print",
		match:      -1,
		properties: nil,
	}}
	for _, tc := range testCases {
		t.Run(tc.command, func(t *testing.T) {
			var properties *Properties
			matchIndex := -1
			for index, parser := range supportedCommands {
				if props, isMatch := parser.Match(tc.command); isMatch {
					if matchIndex != -1 {
						t.Fatal("Multiple matches found")
					}
					matchIndex = index
					properties = props
				}
			}
			if matchIndex != tc.match {
				t.Fatalf("Incorrectly matched to %d instead of %d", matchIndex, tc.match)
			}
			// don't check properties if there is no match
			if tc.match == -1 {
				return
			}
			if len(properties.PropertyMap) != len(tc.properties) {
				t.Fatalf("Actual properties (%+v) do not match expected properties (%+v)", properties.PropertyMap, tc.properties)
			}
			for key, value := range properties.PropertyMap {
				if value != tc.properties[key] {
					t.Errorf("Actual property (`%s` == `%s`) does not match expected property (`%s` == `%s`)", key, value, key, tc.properties[key])
				}
			}
		})
	}
}

func TestName(t *testing.T) {
	t.Parallel()
	expected := []string{"add_unit", "add_employee", "delete_employee", "assign_manager", "print_org", "print_units"}
	for i, command := range supportedCommands {
		if command.Name() != expected[i] {
			t.Errorf("Name() = %q, want %q", command.Name(), expected[i])
		}
	}
}

func TestTokenize(t *testing.T) {
	t.Parallel()
	tokens := NewPattern("move_to_unit <id> <unit_name>").Tokenize()
	if len(tokens) != 3 {
		t.Fatalf("expected 3 tokens, got %d", len(tokens))
	}
	if tokens[0].IsParameter() || tokens[0].Word != "move_to_unit" {
		t.Errorf("unexpected keyword token %+v", tokens[0])
	}
	if !tokens[2].IsParameter() || tokens[2].Word != "unit_name" {
		t.Errorf("unexpected parameter token %+v", tokens[2])
	}
}

func TestIntParam(t *testing.T) {
	t.Parallel()
	properties := NewProperties(map[string]string{"id": "12", "age": "forty"})
	id, err := properties.IntParam("id")
	if err != nil || id != 12 {
		t.Errorf("IntParam(id) = %d, %v", id, err)
	}
	if _, err := properties.IntParam("age"); err == nil {
		t.Error("expected a parse error for age")
	}
	_, err = properties.IntParam("manager_id")
	var missing *MissingParamError
	if !errors.As(err, &missing) || missing.Key != "manager_id" {
		t.Errorf("expected missing parameter error, got %v", err)
	}
	if !properties.HasParam("id", "age") || properties.HasParam("id", "manager_id") {
		t.Error("HasParam reported the wrong keys")
	}
	if properties.StringParam("unit", "none") != "none" {
		t.Error("StringParam did not return the default")
	}
}
