package orgdata

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPrintEmployee(t *testing.T) {
	t.Parallel()
	o := newTestOrganization(t)
	var out bytes.Buffer
	if err := o.PrintEmployee(&out, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff("|--STAFF_MEMBER | Sales | 3 | Dan - 30\n", out.String()); diff != "" {
		t.Errorf("unexpected output (-want +got):\n%s", diff)
	}

	out.Reset()
	if err := o.PrintEmployee(&out, 9); !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected employee not found, got %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestPrintOrg(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		mutate   func(t *testing.T, o *Organization)
		expected string
	}{{
		name: "initial",
		expected: "|--HEAD_OF_ORGANIZATION | Engineering | 0 | Alice - 50\n" +
			"\t|--MANAGER | Engineering | 1 | Bob - 40\n" +
			"\t\t|--STAFF_MEMBER | Sales | 3 | Dan - 30\n" +
			"\t\t|--INTERN | Engineering | 4 | Eve - 21\n" +
			"\t|--DIRECTOR | Sales | 2 | Carol - 45\n",
	}, {
		name: "subtree moved under a later sibling",
		mutate: func(t *testing.T, o *Organization) {
			if err := o.AssignManager(1, 2); err != nil {
				t.Fatal(err)
			}
		},
		expected: "|--HEAD_OF_ORGANIZATION | Engineering | 0 | Alice - 50\n" +
			"\t|--DIRECTOR | Sales | 2 | Carol - 45\n" +
			"\t\t|--MANAGER | Engineering | 1 | Bob - 40\n" +
			"\t\t\t|--STAFF_MEMBER | Sales | 3 | Dan - 30\n" +
			"\t\t\t|--INTERN | Engineering | 4 | Eve - 21\n",
	}, {
		name: "report added out of order",
		mutate: func(t *testing.T, o *Organization) {
			id, err := o.AddEmployee("Finn", "Sales", 29, "SENIOR_STAFF", intPtr(2))
			if err != nil {
				t.Fatal(err)
			}
			if err := o.AssignManager(3, id); err != nil {
				t.Fatal(err)
			}
			if err := o.AssignManager(4, 0); err != nil {
				t.Fatal(err)
			}
		},
		expected: "|--HEAD_OF_ORGANIZATION | Engineering | 0 | Alice - 50\n" +
			"\t|--MANAGER | Engineering | 1 | Bob - 40\n" +
			"\t|--DIRECTOR | Sales | 2 | Carol - 45\n" +
			"\t\t|--SENIOR_STAFF | Sales | 5 | Finn - 29\n" +
			"\t\t\t|--STAFF_MEMBER | Sales | 3 | Dan - 30\n" +
			"\t|--INTERN | Engineering | 4 | Eve - 21\n",
	}}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			o := newTestOrganization(t)
			if tc.mutate != nil {
				tc.mutate(t, o)
			}
			var out bytes.Buffer
			if err := o.PrintOrg(&out); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tc.expected, out.String()); diff != "" {
				t.Errorf("unexpected output (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPrintOrgWithoutHead(t *testing.T) {
	t.Parallel()
	o := NewOrganization()
	var out bytes.Buffer
	if err := o.PrintOrg(&out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("expected no output, got %q", out.String())
	}
}

func TestWalkDepths(t *testing.T) {
	t.Parallel()
	o := newTestOrganization(t)
	type visit struct {
		ID    int
		Depth int
	}
	var visits []visit
	o.Walk(func(employee *Employee, depth int) {
		visits = append(visits, visit{ID: employee.ID, Depth: depth})
	})
	expected := []visit{{0, 0}, {1, 1}, {3, 2}, {4, 2}, {2, 1}}
	if diff := cmp.Diff(expected, visits); diff != "" {
		t.Errorf("unexpected traversal (-want +got):\n%s", diff)
	}
}

func TestWalkDeepHierarchy(t *testing.T) {
	t.Parallel()
	o := NewOrganization()
	if err := o.AddUnit("Chain"); err != nil {
		t.Fatal(err)
	}
	previous, err := o.AddEmployee("root", "Chain", 60, "HEAD_OF_ORGANIZATION", nil)
	if err != nil {
		t.Fatal(err)
	}
	const depth = 2000
	for i := 0; i < depth; i++ {
		previous, err = o.AddEmployee("link", "Chain", 30, "MANAGER", intPtr(previous))
		if err != nil {
			t.Fatal(err)
		}
	}
	deepest := 0
	o.Walk(func(_ *Employee, d int) {
		if d > deepest {
			deepest = d
		}
	})
	if deepest != depth {
		t.Errorf("deepest level %d, want %d", deepest, depth)
	}
}

func TestPrintUnits(t *testing.T) {
	t.Parallel()
	o := newTestOrganization(t)
	if err := o.AddUnit("Archive"); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	if err := o.PrintUnits(&out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := "Engineering | number of employees = 3\n" +
		"\t|--HEAD_OF_ORGANIZATION | Engineering | 0 | Alice - 50\n" +
		"\t|--MANAGER | Engineering | 1 | Bob - 40\n" +
		"\t|--INTERN | Engineering | 4 | Eve - 21\n" +
		"Sales | number of employees = 2\n" +
		"\t|--DIRECTOR | Sales | 2 | Carol - 45\n" +
		"\t|--STAFF_MEMBER | Sales | 3 | Dan - 30\n" +
		"Archive | number of employees = 0\n"
	if diff := cmp.Diff(expected, out.String()); diff != "" {
		t.Errorf("unexpected output (-want +got):\n%s", diff)
	}
}
