// Package tools exposes service operations as model-callable tools.
package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	openai "github.com/sashabaranov/go-openai"
)

var ErrToolNotFound = errors.New("tool not found")

// Handler runs a tool with the raw JSON arguments the model produced and
// returns the sentence to hand back to the model.
type Handler func(ctx context.Context, arguments json.RawMessage) (string, error)

type Tool struct {
	Definition openai.FunctionDefinition
	Handler    Handler
}

// Registry maps tool names to tools. Safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]Tool
}

func NewRegistry(tools ...Tool) *Registry {
	r := &Registry{tools: make(map[string]Tool, len(tools))}
	for _, t := range tools {
		r.Register(t)
	}
	return r
}

// Register adds t, replacing any tool with the same name.
func (r *Registry) Register(t Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tools[t.Definition.Name] = t
}

func (r *Registry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tools[name]
	return t, ok
}

// List returns the registered tool names, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Definitions returns the tool declarations in the shape chat completion
// requests expect, sorted by name.
func (r *Registry) Definitions() []openai.Tool {
	names := r.List()

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]openai.Tool, 0, len(names))
	for _, name := range names {
		def := r.tools[name].Definition
		out = append(out, openai.Tool{Type: openai.ToolTypeFunction, Function: &def})
	}
	return out
}

// Invoke runs the named tool. Empty or null arguments are passed as "{}".
func (r *Registry) Invoke(ctx context.Context, name string, arguments json.RawMessage) (string, error) {
	t, ok := r.Get(name)
	if !ok {
		return "", fmt.Errorf("invoke %q: %w", name, ErrToolNotFound)
	}

	if s := strings.TrimSpace(string(arguments)); s == "" || s == "null" {
		arguments = json.RawMessage("{}")
	}

	return t.Handler(ctx, arguments)
}

// Call executes a model tool call and wraps the outcome in a tool message.
// Failures become a tool message too, so the conversation can carry on.
func (r *Registry) Call(ctx context.Context, call openai.ToolCall) openai.ChatCompletionMessage {
	msg := openai.ChatCompletionMessage{
		Role:       openai.ChatMessageRoleTool,
		Name:       call.Function.Name,
		ToolCallID: call.ID,
	}

	reply, err := r.Invoke(ctx, call.Function.Name, json.RawMessage(call.Function.Arguments))
	if err != nil {
		slog.WarnContext(ctx, "tool call failed", "tool", call.Function.Name, "call_id", call.ID, "err", err)
		msg.Content = toolErrorReply(err)
		return msg
	}

	msg.Content = reply
	return msg
}

func toolErrorReply(err error) string {
	if errors.Is(err, ErrToolNotFound) {
		return "That tool is not available."
	}
	return "Sorry, I couldn't run that tool. Please try again."
}
