package command

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/giantswarm/mcp-azure-devops/internal/tools"
)

// Tool returns the MCP tool definition, including the input schema and
// behaviour hints derived from Operation.
func (s Spec) Tool() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription(s.Description),
		mcp.WithReadOnlyHintAnnotation(s.ReadOnly()),
		mcp.WithDestructiveHintAnnotation(s.Operation == tools.OperationDelete),
		mcp.WithIdempotentHintAnnotation(s.ReadOnly()),
		mcp.WithOpenWorldHintAnnotation(true),
	}
	for _, p := range s.Params {
		opts = append(opts, p.toolOption())
	}
	return mcp.NewTool(s.Name, opts...)
}

func (p Param) toolOption() mcp.ToolOption {
	props := []mcp.PropertyOption{mcp.Description(p.Description)}
	if p.Required {
		props = append(props, mcp.Required())
	}

	switch p.Type {
	case TypeNumber:
		return mcp.WithNumber(p.Name, props...)
	case TypeBoolean:
		return mcp.WithBoolean(p.Name, props...)
	case TypeArray:
		props = append(props, mcp.Items(map[string]any{"type": "string"}))
		return mcp.WithArray(p.Name, props...)
	case TypeObject:
		props = append(props, mcp.AdditionalProperties(map[string]any{"type": "string"}))
		return mcp.WithObject(p.Name, props...)
	default:
		if len(p.Enum) > 0 {
			props = append(props, mcp.Enum(p.Enum...))
		}
		return mcp.WithString(p.Name, props...)
	}
}
