package ao

import "fmt"

// promptTokens are the per-project values every section generator draws from.
// They are derived once per call and never modified afterwards.
type promptTokens struct {
	ProjectID     string
	Name          string
	Repo          string
	DefaultBranch string
	Prefix        string
	Port          int
	Reactions     map[string]Reaction
	Rules         string
}

func newPromptTokens(config OrchestratorConfig, projectID string, project ProjectConfig) promptTokens {
	return promptTokens{
		ProjectID:     projectID,
		Name:          project.Name,
		Repo:          project.Repo,
		DefaultBranch: project.DefaultBranch,
		Prefix:        project.SessionPrefix,
		Port:          config.Port,
		Reactions:     project.Reactions,
		Rules:         project.OrchestratorRules,
	}
}

// session returns the name of the n-th spawned session, e.g. "myapp-2"
func (t promptTokens) session(n int) string {
	return fmt.Sprintf("%s-%d", t.Prefix, n)
}

// dashboardURL is the local dashboard address for the configured port
func (t promptTokens) dashboardURL() string {
	return fmt.Sprintf("http://localhost:%d", t.Port)
}
