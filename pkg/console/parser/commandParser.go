package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/openshift/org-registry/pkg/orgdata"
)

const (
	escapeCharacter    = "\\"
	parameterPattern   = "^<\\S+>$"
	spacePattern       = "\\s+"
	inputPattern       = "(\\S+)"
	preCommandPattern  = "^\\s*"
	postCommandPattern = "(?:\\s+.*)?\\s*$"
)

const (
	notParameter = iota
	parameter
)

var (
	regexCharacters = []string{"\\", "(", ")", "{", "}", "[", "]", "?", ".", "+", "*", "|", "^", "$"}
	parameterRegex  = regexp.MustCompile(parameterPattern)
)

func (c *command) Execute(registry orgdata.Registry, properties *Properties) string {
	if c.definition == nil || c.definition.Handler == nil {
		return "Failed to execute the command!"
	}
	return c.definition.Handler(registry, properties)
}

// Match determines whether the text invokes this command
func (c *command) Match(text string) (*Properties, bool) {
	return c.pattern.Match(text)
}

// Tokenize returns Pattern info as tokens
func (p *Pattern) Tokenize() []*Token {
	return p.tokens
}

// Tokenize returns the command format's tokens
func (c *command) Tokenize() []*Token {
	return c.pattern.Tokenize()
}

// NewCommand creates a new console command object
func NewCommand(usage string, definition *CommandDefinition) Command {
	return &command{
		usage:      usage,
		definition: definition,
		pattern:    NewPattern(usage),
	}
}

// Name returns the leading keyword of the usage
func (c *command) Name() string {
	for _, token := range c.pattern.tokens {
		if !token.IsParameter() {
			return token.Word
		}
	}
	return ""
}

// Usage returns the command usage
func (c *command) Usage() string {
	return c.usage
}

// Definition returns the command description and handler
func (c *command) Definition() *CommandDefinition {
	return c.definition
}

// NewPattern compiles a usage string such as "move_to_unit <id> <unit_name>".
// Words in angle brackets are single-token parameters; trailing parameters
// may be omitted and extra trailing tokens are ignored.
func NewPattern(format string) *Pattern {
	tokens := tokenize(format)
	expressions := generate(tokens)
	return &Pattern{tokens: tokens, expressions: expressions}
}

func tokenize(format string) []*Token {
	words := strings.Fields(format)
	tokens := make([]*Token, len(words))
	for i, word := range words {
		if parameterRegex.MatchString(word) {
			tokens[i] = &Token{Word: word[1 : len(word)-1], Type: parameter}
		} else {
			tokens[i] = &Token{Word: word, Type: notParameter}
		}
	}
	return tokens
}

// generate returns one expression per number of supplied parameters, most parameters first
func generate(tokens []*Token) []*regexp.Regexp {
	var regexps []*regexp.Regexp
	if len(tokens) == 0 {
		return regexps
	}

	for index := len(tokens) - 1; index >= -1; index-- {
		regex := compile(create(tokens, index))
		if regex == nil {
			continue
		}
		if len(regexps) > 0 && regexps[len(regexps)-1].String() == regex.String() {
			continue
		}
		regexps = append(regexps, regex)
	}

	return regexps
}

func (t Token) IsParameter() bool {
	return t.Type != notParameter
}

func create(tokens []*Token, boundary int) []*Token {
	var newTokens []*Token
	for i := 0; i < len(tokens); i++ {
		if !tokens[i].IsParameter() || i <= boundary {
			newTokens = append(newTokens, tokens[i])
		}
	}
	return newTokens
}

func compile(tokens []*Token) *regexp.Regexp {
	if len(tokens) == 0 {
		return nil
	}

	pattern := preCommandPattern + getInputPattern(tokens[0])
	for index := 1; index < len(tokens); index++ {
		pattern += spacePattern + getInputPattern(tokens[index])
	}
	pattern += postCommandPattern

	return regexp.MustCompile(pattern)
}

func getInputPattern(token *Token) string {
	if token.IsParameter() {
		return inputPattern
	}
	return escape(token.Word)
}

func escape(text string) string {
	for _, character := range regexCharacters {
		text = strings.ReplaceAll(text, character, escapeCharacter+character)
	}
	return text
}

// Match takes in the text received, attempts to find the pattern and extract the parameters
func (p *Pattern) Match(text string) (*Properties, bool) {
	if len(p.expressions) == 0 {
		return nil, false
	}

	for _, expression := range p.expressions {
		matches := expression.FindStringSubmatch(text)
		if len(matches) == 0 {
			continue
		}

		values := matches[1:]

		valueIndex := 0
		parameters := make(map[string]string)
		for i := 0; i < len(p.tokens) && valueIndex < len(values); i++ {
			token := p.tokens[i]
			if !token.IsParameter() {
				continue
			}

			parameters[token.Word] = values[valueIndex]
			valueIndex++
		}
		return NewProperties(parameters), true
	}
	return nil, false
}

// Properties is a string map decorator
type Properties struct {
	PropertyMap map[string]string
}

// NewProperties creates a new Properties object
func NewProperties(m map[string]string) *Properties {
	return &Properties{PropertyMap: m}
}

// StringParam attempts to look up a string value by key. If not found, return the default string value
func (p *Properties) StringParam(key string, defaultValue string) string {
	value, ok := p.PropertyMap[key]
	if !ok {
		return defaultValue
	}
	return value
}

// HasParam reports whether every key was supplied
func (p *Properties) HasParam(keys ...string) bool {
	for _, key := range keys {
		if _, ok := p.PropertyMap[key]; !ok {
			return false
		}
	}
	return true
}

// IntParam parses the value of key as a base 10 integer
func (p *Properties) IntParam(key string) (int, error) {
	value, ok := p.PropertyMap[key]
	if !ok {
		return 0, &MissingParamError{Key: key}
	}
	return strconv.Atoi(value)
}

// MissingParamError is returned when a required parameter was not supplied
type MissingParamError struct {
	Key string
}

func (e *MissingParamError) Error() string {
	return "missing parameter " + e.Key
}
