package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"k8s.io/klog"

	"github.com/openshift/org-registry/pkg/console/parser"
	"github.com/openshift/org-registry/pkg/orgdata"
)

const promptText = "Please enter a command:"

// Session reads commands line by line and replies to each one. Commands run
// one at a time against a single registry.
type Session struct {
	registry orgdata.Registry
	commands []parser.Command
	in       io.Reader
	out      io.Writer
	prompt   bool
}

// NewSession creates a session serving SupportedCommands. When prompt is set
// the prompt line is written before every read.
func NewSession(registry orgdata.Registry, in io.Reader, out io.Writer, prompt bool) *Session {
	return &Session{
		registry: registry,
		commands: SupportedCommands(),
		in:       in,
		out:      out,
		prompt:   prompt,
	}
}

// Run serves commands until quit, end of input, or ctx is cancelled.
// End of input is not an error.
func (s *Session) Run(ctx context.Context) error {
	// lines of any length are accepted
	reader := bufio.NewReader(s.in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.prompt {
			if err := s.write(promptText); err != nil {
				return err
			}
		}
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to read command: %w", err)
		}
		if err != nil && line == "" {
			logrus.Debug("End of input, leaving session")
			return nil
		}
		response, quit := s.Execute(line)
		if quit {
			return nil
		}
		if response == "" {
			continue
		}
		if err := s.write(response); err != nil {
			return err
		}
	}
}

func (s *Session) write(text string) error {
	if _, err := fmt.Fprintln(s.out, text); err != nil {
		klog.Errorf("Failed to write response: %v", err)
		return fmt.Errorf("failed to write response: %w", err)
	}
	return nil
}

// Execute runs a single line and returns the reply. Blank lines produce no
// reply; quit is true when the line asks to end the session.
func (s *Session) Execute(line string) (response string, quit bool) {
	text := strings.TrimSpace(line)
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return "", false
	}
	name := fields[0]
	logger := logrus.WithField("command", name)
	logger.Debug("Dispatching command")

	switch name {
	case quitCommand:
		return "", true
	case helpCommand:
		if len(fields) == 1 {
			return HelpOverview(s.commands), false
		}
		return HelpSpecific(s.commands, fields[1]), false
	}

	for _, command := range s.commands {
		properties, match := command.Match(text)
		if match {
			return command.Execute(s.registry, properties), false
		}
	}
	logger.Debug("Unrecognized command")
	recordCommand(unrecognizedCommand, resultUnknown)
	return unknownCommand(name), false
}
