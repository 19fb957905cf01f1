package command

import (
	"strings"
)

// ProjectDescription is the description shared by every optional project parameter.
const ProjectDescription = "Project name or ID (uses default project if not specified)"

// Type is the JSON schema type of a parameter.
type Type string

const (
	TypeString  Type = "string"
	TypeNumber  Type = "number"
	TypeBoolean Type = "boolean"
	TypeArray   Type = "array"
	TypeObject  Type = "object"
)

// Encoding decides how a present parameter is written to argv.
type Encoding int

const (
	// EncodeValue emits "--flag <value>". Numbers drop trailing zeros.
	EncodeValue Encoding = iota
	// EncodeSwitch emits "--flag" when true and nothing when false.
	EncodeSwitch
	// EncodeSwitchTrue emits "--flag true" when true and nothing when false.
	EncodeSwitchTrue
	// EncodeBool emits "--flag true" or "--flag false" whenever set.
	EncodeBool
	// EncodeList emits "--flag v1 v2 ...".
	EncodeList
	// EncodePairs emits one "--flag k=v" per entry, keys sorted.
	EncodePairs
)

func (e Encoding) String() string {
	switch e {
	case EncodeValue:
		return "value"
	case EncodeSwitch:
		return "switch"
	case EncodeSwitchTrue:
		return "switch-true"
	case EncodeBool:
		return "bool"
	case EncodeList:
		return "list"
	case EncodePairs:
		return "pairs"
	default:
		return "unknown"
	}
}

// Param declares one tool argument and the az flag it maps to.
type Param struct {
	Name        string
	Description string
	Type        Type
	Required    bool
	Enum        []string
	Flag        string
	Encoding    Encoding

	// KeepZero emits an optional number even when it is 0. Optional
	// numbers are dropped at 0 otherwise.
	KeepZero bool
}

// Spec declares one tool.
type Spec struct {
	Name        string
	Description string

	// Command is the space separated az subcommand prefix, e.g.
	// "boards work-item show".
	Command string

	Params []Param

	// Confirm appends --yes so az does not prompt.
	Confirm bool

	// OneOf names optional parameters of which exactly the first present
	// one is emitted. A call with none of them set is rejected.
	OneOf []string

	// Operation is the mutating verb checked by the non-destructive gate,
	// or "" for read-only tools.
	Operation string
}

// Prefix returns the command prefix as argv words.
func (s Spec) Prefix() []string {
	return strings.Fields(s.Command)
}

// ReadOnly reports whether the tool leaves remote state untouched.
func (s Spec) ReadOnly() bool {
	return s.Operation == ""
}

// String declares an optional string parameter emitted as "--flag <value>".
func String(name, flag, description string) Param {
	return Param{Name: name, Type: TypeString, Flag: flag, Description: description, Encoding: EncodeValue}
}

// Number declares an optional number parameter emitted as "--flag <value>"
// when non-zero.
func Number(name, flag, description string) Param {
	return Param{Name: name, Type: TypeNumber, Flag: flag, Description: description, Encoding: EncodeValue}
}

// Switch declares an optional boolean emitted as a bare "--flag" when true.
func Switch(name, flag, description string) Param {
	return Param{Name: name, Type: TypeBoolean, Flag: flag, Description: description, Encoding: EncodeSwitch}
}

// SwitchTrue declares an optional boolean emitted as "--flag true" when true.
func SwitchTrue(name, flag, description string) Param {
	return Param{Name: name, Type: TypeBoolean, Flag: flag, Description: description, Encoding: EncodeSwitchTrue}
}

// Bool declares an optional boolean emitted as "--flag true|false" when set.
func Bool(name, flag, description string) Param {
	return Param{Name: name, Type: TypeBoolean, Flag: flag, Description: description, Encoding: EncodeBool}
}

// List declares an optional string array emitted as "--flag v1 v2 ...".
func List(name, flag, description string) Param {
	return Param{Name: name, Type: TypeArray, Flag: flag, Description: description, Encoding: EncodeList}
}

// Pairs declares an optional string map emitted as repeated "--flag k=v".
func Pairs(name, flag, description string) Param {
	return Param{Name: name, Type: TypeObject, Flag: flag, Description: description, Encoding: EncodePairs}
}

// Project declares the optional project parameter.
func Project() Param {
	return String("project", "--project", ProjectDescription)
}

// AsRequired returns a copy of p marked required.
func (p Param) AsRequired() Param {
	p.Required = true
	return p
}

// WithZero returns a copy of p that is emitted at 0 as well.
func (p Param) WithZero() Param {
	p.KeepZero = true
	return p
}

// WithEnum returns a copy of p restricted to values.
func (p Param) WithEnum(values ...string) Param {
	p.Enum = append([]string(nil), values...)
	return p
}
