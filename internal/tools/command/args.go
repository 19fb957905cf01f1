package command

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// ArgumentError reports a call argument that does not match its parameter.
type ArgumentError struct {
	Param  string
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid parameter %q: %s", e.Param, e.Reason)
}

// Validate checks args against the declared parameters: required ones are
// present, every present value has the declared type and enum values are
// members of their enum. Unknown arguments are ignored. A JSON null counts
// as absent.
func (s Spec) Validate(args map[string]any) error {
	for _, p := range s.Params {
		raw, ok := args[p.Name]
		if !ok || raw == nil {
			if p.Required {
				return &ArgumentError{Param: p.Name, Reason: "is required"}
			}
			continue
		}
		if err := p.check(raw); err != nil {
			return err
		}
	}
	return nil
}

func (p Param) check(raw any) error {
	switch p.Type {
	case TypeString:
		v, ok := raw.(string)
		if !ok {
			return &ArgumentError{Param: p.Name, Reason: "must be a string"}
		}
		if len(p.Enum) > 0 && !(v == "" && !p.Required) && !lo.Contains(p.Enum, v) {
			return &ArgumentError{Param: p.Name, Reason: "must be one of: " + strings.Join(p.Enum, ", ")}
		}
	case TypeNumber:
		if _, ok := toNumber(raw); !ok {
			return &ArgumentError{Param: p.Name, Reason: "must be a number"}
		}
	case TypeBoolean:
		if _, ok := raw.(bool); !ok {
			return &ArgumentError{Param: p.Name, Reason: "must be a boolean"}
		}
	case TypeArray:
		items, ok := toStrings(raw)
		if !ok {
			return &ArgumentError{Param: p.Name, Reason: "must be an array of strings"}
		}
		if p.Required && len(items) == 0 {
			return &ArgumentError{Param: p.Name, Reason: "must not be empty"}
		}
	case TypeObject:
		entries, ok := toStringMap(raw)
		if !ok {
			return &ArgumentError{Param: p.Name, Reason: "must be an object with string values"}
		}
		if p.Required && len(entries) == 0 {
			return &ArgumentError{Param: p.Name, Reason: "must not be empty"}
		}
	default:
		return &ArgumentError{Param: p.Name, Reason: fmt.Sprintf("has unsupported type %q", p.Type)}
	}
	return nil
}

// BuildArgs validates args and assembles the az argv.
func (s Spec) BuildArgs(args map[string]any) ([]string, error) {
	if err := s.Validate(args); err != nil {
		return nil, err
	}

	chosen, err := s.chooseOneOf(args)
	if err != nil {
		return nil, err
	}

	argv := s.Prefix()
	for _, p := range s.Params {
		if p.Required {
			argv = append(argv, p.emit(args[p.Name])...)
		}
	}
	if s.Confirm {
		argv = append(argv, "--yes")
	}
	argv = append(argv, "--output", "json")

	for _, p := range s.Params {
		if p.Required {
			continue
		}
		if len(s.OneOf) > 0 && lo.Contains(s.OneOf, p.Name) && p.Name != chosen {
			continue
		}
		argv = append(argv, p.emit(args[p.Name])...)
	}
	return argv, nil
}

// chooseOneOf returns the first OneOf parameter with a present value.
func (s Spec) chooseOneOf(args map[string]any) (string, error) {
	if len(s.OneOf) == 0 {
		return "", nil
	}
	for _, name := range s.OneOf {
		p, ok := s.param(name)
		if ok && len(p.emit(args[name])) > 0 {
			return name, nil
		}
	}
	return "", fmt.Errorf("Must specify either %s parameter", quoteList(s.OneOf))
}

func (s Spec) param(name string) (Param, bool) {
	return lo.Find(s.Params, func(p Param) bool { return p.Name == name })
}

// emit returns the argv entries for a validated value, or nil when the
// value counts as absent. Required values are never absent once present.
func (p Param) emit(raw any) []string {
	if raw == nil {
		return nil
	}

	switch p.Encoding {
	case EncodeValue:
		switch v := raw.(type) {
		case string:
			if v == "" && !p.Required {
				return nil
			}
			return []string{p.Flag, v}
		default:
			n, ok := toNumber(raw)
			if !ok || (n == 0 && !p.Required && !p.KeepZero) {
				return nil
			}
			return []string{p.Flag, strconv.FormatFloat(n, 'f', -1, 64)}
		}
	case EncodeSwitch:
		if v, _ := raw.(bool); v {
			return []string{p.Flag}
		}
	case EncodeSwitchTrue:
		if v, _ := raw.(bool); v {
			return []string{p.Flag, "true"}
		}
	case EncodeBool:
		if v, ok := raw.(bool); ok {
			return []string{p.Flag, strconv.FormatBool(v)}
		}
	case EncodeList:
		items, _ := toStrings(raw)
		if len(items) > 0 {
			return append([]string{p.Flag}, items...)
		}
	case EncodePairs:
		entries, _ := toStringMap(raw)
		keys := lo.Keys(entries)
		sort.Strings(keys)
		out := make([]string, 0, 2*len(keys))
		for _, k := range keys {
			out = append(out, p.Flag, k+"="+entries[k])
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}

func toNumber(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case int32:
		return float64(v), true
	default:
		return 0, false
	}
}

func toStrings(raw any) ([]string, bool) {
	switch v := raw.(type) {
	case []string:
		return v, true
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}

func toStringMap(raw any) (map[string]string, bool) {
	switch v := raw.(type) {
	case map[string]string:
		return v, true
	case map[string]any:
		out := make(map[string]string, len(v))
		for k, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out[k] = s
		}
		return out, true
	default:
		return nil, false
	}
}

// quoteList renders names as 'a', 'b', or 'c'.
func quoteList(names []string) string {
	quoted := lo.Map(names, func(n string, _ int) string { return "'" + n + "'" })
	switch len(quoted) {
	case 1:
		return quoted[0]
	case 2:
		return quoted[0] + " or " + quoted[1]
	default:
		return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
	}
}
