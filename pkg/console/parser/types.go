package parser

import (
	"regexp"

	"github.com/openshift/org-registry/pkg/orgdata"
)

// Pattern is a compiled usage string
type Pattern struct {
	tokens      []*Token
	expressions []*regexp.Regexp
}

type Token struct {
	Word string
	Type int
}

// CommandDefinition structure contains definition of a console command
type CommandDefinition struct {
	Description string
	Example     string
	Handler     func(registry orgdata.Registry, properties *Properties) string
}

// Command interface
type Command interface {
	Name() string
	Usage() string
	Definition() *CommandDefinition
	Match(text string) (*Properties, bool)
	Tokenize() []*Token
	Execute(registry orgdata.Registry, properties *Properties) string
}

// command structure contains the command usage, description and handler
type command struct {
	usage      string
	definition *CommandDefinition
	pattern    *Pattern
}
