package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/samber/lo"

	"github.com/giantswarm/mcp-azure-devops/internal/server"
	"github.com/giantswarm/mcp-azure-devops/internal/tools"
)

var (
	// ErrInvalidSpec is wrapped by every problem found in a tool table.
	ErrInvalidSpec = errors.New("invalid tool spec")

	// ErrDuplicateTool is returned when two specs share a name.
	ErrDuplicateTool = errors.New("duplicate tool name")
)

var validEncodings = map[Type][]Encoding{
	TypeString:  {EncodeValue},
	TypeNumber:  {EncodeValue},
	TypeBoolean: {EncodeSwitch, EncodeSwitchTrue, EncodeBool},
	TypeArray:   {EncodeList},
	TypeObject:  {EncodePairs},
}

// Check reports every structural problem in s at once.
func (s Spec) Check() error {
	var result *multierror.Error
	invalid := func(format string, args ...any) {
		result = multierror.Append(result, fmt.Errorf("%w: %s: %s", ErrInvalidSpec, s.Name, fmt.Sprintf(format, args...)))
	}

	if s.Name == "" {
		invalid("name is empty")
	}
	if s.Description == "" {
		invalid("description is empty")
	}
	if len(s.Prefix()) == 0 {
		invalid("command is empty")
	}
	if s.Operation != "" && !tools.IsMutatingOperation(s.Operation) {
		invalid("unknown operation %q", s.Operation)
	}

	for _, name := range lo.FindDuplicates(lo.Map(s.Params, func(p Param, _ int) string { return p.Name })) {
		invalid("parameter %q declared twice", name)
	}

	for _, p := range s.Params {
		if p.Name == "" {
			invalid("parameter without a name")
		}
		if !strings.HasPrefix(p.Flag, "--") {
			invalid("parameter %q has flag %q, want --<name>", p.Name, p.Flag)
		}
		encodings, known := validEncodings[p.Type]
		if !known {
			invalid("parameter %q has unsupported type %q", p.Name, p.Type)
		} else if !lo.Contains(encodings, p.Encoding) {
			invalid("parameter %q of type %s cannot use %s encoding", p.Name, p.Type, p.Encoding)
		}
		if len(p.Enum) > 0 && p.Type != TypeString {
			invalid("parameter %q has an enum but is not a string", p.Name)
		}
	}

	for _, name := range s.OneOf {
		p, ok := s.param(name)
		switch {
		case !ok:
			invalid("one-of names unknown parameter %q", name)
		case p.Required:
			invalid("one-of parameter %q must be optional", name)
		}
	}

	return result.ErrorOrNil()
}

// CheckAll checks every spec and rejects duplicate names.
func CheckAll(specs []Spec) error {
	var result *multierror.Error
	for _, spec := range specs {
		if err := spec.Check(); err != nil {
			result = multierror.Append(result, err)
		}
	}
	for _, name := range lo.FindDuplicates(Names(specs)) {
		result = multierror.Append(result, fmt.Errorf("%w: %s", ErrDuplicateTool, name))
	}
	return result.ErrorOrNil()
}

// Names returns the tool names of specs in order.
func Names(specs []Spec) []string {
	return lo.Map(specs, func(s Spec, _ int) string { return s.Name })
}

// Register checks specs and adds one audited tool per spec to s. Nothing is
// registered when any spec is invalid.
func Register(s *mcpserver.MCPServer, sc *server.ServerContext, toolset string, specs []Spec) error {
	if err := CheckAll(specs); err != nil {
		return fmt.Errorf("toolset %s: %w", toolset, err)
	}

	for _, spec := range specs {
		s.AddTool(spec.Tool(), tools.WrapWithAuditLogging(spec.Name, spec.Operation, spec.Handler(), sc))
	}
	sc.RecordRegisteredTools(toolset, Names(specs)...)
	return nil
}
