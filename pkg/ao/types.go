// Package ao renders the orchestrator prompt: the markdown document that
// teaches an orchestrator agent its role, its command surface, and the
// project-specific overrides it has to honor.
package ao

import (
	"fmt"
	"sort"
	"strings"
)

// ReactionAction is what happens when a reaction fires
type ReactionAction string

const (
	ActionSendToAgent ReactionAction = "send-to-agent"
	ActionNotify      ReactionAction = "notify"
)

// Reaction is a configured automatic response to a lifecycle event
type Reaction struct {
	// Auto enables the reaction; disabled reactions are never rendered
	Auto bool `yaml:"auto"`
	// Action is either ActionSendToAgent or ActionNotify
	Action ReactionAction `yaml:"action"`
	// Retries is how many times the agent is re-prompted (send-to-agent only)
	Retries *int `yaml:"retries,omitempty"`
	// EscalateAfter is how long to wait before escalating to a human (send-to-agent only)
	EscalateAfter string `yaml:"escalateAfter,omitempty"`
	// Priority is the notification priority (notify only)
	Priority string `yaml:"priority,omitempty"`
}

// ProjectConfig describes a single project managed by the orchestrator
type ProjectConfig struct {
	// Name is the human-readable project name
	Name string `yaml:"name"`
	// Repo is the repository in "owner/name" form
	Repo string `yaml:"repo"`
	// Path is where the project lives on disk
	Path string `yaml:"path"`
	// DefaultBranch is the branch new work branches from
	DefaultBranch string `yaml:"defaultBranch"`
	// SessionPrefix names every spawned session "<prefix>-N"
	SessionPrefix string `yaml:"sessionPrefix"`
	// Reactions maps event names to automatic reactions
	Reactions map[string]Reaction `yaml:"reactions,omitempty"`
	// OrchestratorRules is free text appended verbatim to the prompt
	OrchestratorRules string `yaml:"orchestratorRules,omitempty"`
}

// OrchestratorConfig holds process-wide orchestrator settings
type OrchestratorConfig struct {
	// Port is the dashboard port (default: 3000)
	Port int `yaml:"port"`
	// TerminalPort is the dashboard terminal websocket port (default: 14800)
	TerminalPort int `yaml:"terminalPort,omitempty"`
	// DirectTerminalPort is the direct terminal websocket port (default: 14801)
	DirectTerminalPort int `yaml:"directTerminalPort,omitempty"`
	// ConfigPath is the file this configuration was loaded from
	ConfigPath string `yaml:"-"`
	// Projects maps project ids to their descriptors
	Projects map[string]ProjectConfig `yaml:"projects"`
}

// Project returns the descriptor for the given project id
func (c OrchestratorConfig) Project(projectID string) (ProjectConfig, error) {
	project, ok := c.Projects[projectID]
	if !ok {
		return ProjectConfig{}, &ProjectNotFoundError{ProjectID: projectID, Known: c.ProjectIDs()}
	}
	return project, nil
}

// ProjectIDs returns the configured project ids in ascending order
func (c OrchestratorConfig) ProjectIDs() []string {
	ids := make([]string, 0, len(c.Projects))
	for id := range c.Projects {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ConfigError represents an error that occurred while loading configuration
type ConfigError struct {
	// Op is the operation that failed (locate, read, parse, etc.)
	Op string
	// Path is the config file path, if known
	Path string
	// Err is the underlying error
	Err error
}

func (e *ConfigError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("go-ao config %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("go-ao config %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ValidationError represents a configuration shape error
type ValidationError struct {
	// Field is the field that failed validation
	Field string
	// Value is the invalid value
	Value string
	// Message describes the validation error
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for %s '%s': %s", e.Field, e.Value, e.Message)
}

// ProjectNotFoundError is returned when a project id is not configured
type ProjectNotFoundError struct {
	ProjectID string
	Known     []string
}

func (e *ProjectNotFoundError) Error() string {
	if len(e.Known) == 0 {
		return fmt.Sprintf("unknown project %q: no projects configured", e.ProjectID)
	}
	return fmt.Sprintf("unknown project %q (known: %s)", e.ProjectID, strings.Join(e.Known, ", "))
}
