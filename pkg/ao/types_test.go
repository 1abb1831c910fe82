package ao

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReactionActionString(t *testing.T) {
	assert.Equal(t, "send-to-agent", string(ActionSendToAgent))
	assert.Equal(t, "notify", string(ActionNotify))
}

func TestConfigError(t *testing.T) {
	err := &ConfigError{
		Op:   "read",
		Path: "/tmp/agent-orchestrator.yaml",
		Err:  assert.AnError,
	}

	expected := "go-ao config read /tmp/agent-orchestrator.yaml: assert.AnError general error for testing"
	assert.Equal(t, expected, err.Error())
	assert.Equal(t, assert.AnError, err.Unwrap())

	err = &ConfigError{Op: "locate", Err: assert.AnError}
	assert.Equal(t, "go-ao config locate: assert.AnError general error for testing", err.Error())
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{
		Field:   "projects.my-app.name",
		Value:   "",
		Message: "name is required",
	}

	expected := "validation error for projects.my-app.name '': name is required"
	assert.Equal(t, expected, err.Error())
}

func TestProjectNotFoundError(t *testing.T) {
	err := &ProjectNotFoundError{ProjectID: "web", Known: []string{"api", "docs"}}
	assert.Equal(t, `unknown project "web" (known: api, docs)`, err.Error())

	err = &ProjectNotFoundError{ProjectID: "web"}
	assert.Equal(t, `unknown project "web": no projects configured`, err.Error())
}

func TestProjectLookup(t *testing.T) {
	config := OrchestratorConfig{
		Port: 3000,
		Projects: map[string]ProjectConfig{
			"zeta":  {Name: "Zeta"},
			"alpha": {Name: "Alpha"},
		},
	}

	assert.Equal(t, []string{"alpha", "zeta"}, config.ProjectIDs())

	project, err := config.Project("zeta")
	assert.NoError(t, err)
	assert.Equal(t, "Zeta", project.Name)

	_, err = config.Project("beta")
	assert.EqualError(t, err, `unknown project "beta" (known: alpha, zeta)`)
}
