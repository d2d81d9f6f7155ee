package cli

import (
	"errors"
	"fmt"

	"github.com/kolah/mcpforge/internal/loader"
	"github.com/kolah/mcpforge/internal/scaffold"
)

type ErrorKind string

const (
	KindInput       ErrorKind = "input"
	KindOutput      ErrorKind = "output"
	KindEnvironment ErrorKind = "environment"
	KindUsage       ErrorKind = "usage"
)

// CLIError carries a user-facing message, a hint on how to fix it and the
// class of problem.
type CLIError struct {
	Kind     ErrorKind
	Message  string
	Hint     string
	Err      error
	ExitCode int
}

func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

func NewCLIError(kind ErrorKind, msg, hint string, err error) *CLIError {
	return &CLIError{
		Kind:     kind,
		Message:  msg,
		Hint:     hint,
		Err:      err,
		ExitCode: 1,
	}
}

// MapError converts known failures into CLIErrors. Everything else is a usage
// problem (bad flags, bad config).
func MapError(err error) error {
	if err == nil {
		return nil
	}

	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return err
	}

	switch {
	case errors.Is(err, loader.ErrRead):
		return NewCLIError(KindInput, "cannot read the OpenAPI file", "Check the --file path", err)
	case errors.Is(err, loader.ErrParse):
		return NewCLIError(KindInput, "the OpenAPI file is not valid", "The file must be well-formed JSON (or YAML for .yaml/.yml)", err)
	case errors.Is(err, scaffold.ErrOutputExists):
		return NewCLIError(KindOutput, "refusing to overwrite", "Choose an --output directory that does not exist yet", err)
	case errors.Is(err, scaffold.ErrOutputCreate), errors.Is(err, scaffold.ErrWrite):
		return NewCLIError(KindOutput, "cannot write the output", "Check permissions and free space at the --output location", err)
	case errors.Is(err, scaffold.ErrTemplatesNotFound):
		return NewCLIError(KindEnvironment, "no project scaffold", "Point --scaffold at an existing directory or drop it to use the embedded one", err)
	case errors.Is(err, scaffold.ErrTemplatesCopy):
		return NewCLIError(KindEnvironment, "cannot copy the project scaffold", "Check that the scaffold directory is readable", err)
	}

	return NewCLIError(KindUsage, "generation failed", "Run 'mcpforge generate --help' for usage", err)
}
