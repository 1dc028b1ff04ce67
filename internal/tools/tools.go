// Package tools defines the four operations exposed across the RPC
// boundary, their machine-readable schemas, and the dispatch registry.
package tools

import (
	"context"

	"github.com/confersolutions/mcp-mortgage-server/internal/models"
)

// Property describes one input parameter in a tool schema.
type Property struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Schema is the machine-readable input contract of a tool.
type Schema struct {
	Type       string              `json:"type"`
	Properties map[string]Property `json:"properties"`
	Required   []string            `json:"required"`
}

// Definition is what callers see when discovering tools. Tools that
// download caller-supplied URLs are flagged as requiring explicit
// approval before execution.
type Definition struct {
	Name             string `json:"name"`
	Description      string `json:"description"`
	InputSchema      Schema `json:"input_schema"`
	RequiresApproval bool   `json:"requires_approval"`
}

// Handler executes one tool call against a flat argument mapping.
type Handler func(ctx context.Context, input map[string]any) (any, error)

// Tool pairs a definition with its handler.
type Tool struct {
	Definition
	Handler Handler
}

// Registry dispatches tool calls by name, preserving registration
// order for discovery listings.
type Registry struct {
	order []string
	tools map[string]Tool
}

func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Tool)}
}

func (r *Registry) Register(t Tool) {
	if _, exists := r.tools[t.Name]; !exists {
		r.order = append(r.order, t.Name)
	}
	r.tools[t.Name] = t
}

// Definitions lists all registered tools in registration order.
func (r *Registry) Definitions() []Definition {
	defs := make([]Definition, 0, len(r.order))
	for _, name := range r.order {
		defs = append(defs, r.tools[name].Definition)
	}
	return defs
}

// Call dispatches to the named tool. An unknown name is rejected
// before any engine logic runs.
func (r *Registry) Call(ctx context.Context, name string, input map[string]any) (any, error) {
	t, ok := r.tools[name]
	if !ok {
		return nil, models.NewUnknownOperationError(name)
	}
	if input == nil {
		input = map[string]any{}
	}
	return t.Handler(ctx, input)
}
