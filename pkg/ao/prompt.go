package ao

import (
	"fmt"
	"sort"
	"strings"
)

// sectionSeparator joins sections with one blank line between them
const sectionSeparator = "\n\n"

// promptSection is one part of the orchestrator prompt. Sections without an
// include predicate are always rendered.
type promptSection struct {
	name    string
	include func(promptTokens) bool
	render  func(promptTokens) string
}

// promptSections is the fixed section order. Configuration only decides
// whether a section is present, never where it goes.
var promptSections = []promptSection{
	{name: "identity", render: renderIdentity},
	{name: "project-info", render: renderProjectInfo},
	{name: "quick-start", render: renderQuickStart},
	{name: "commands", render: renderCommandReference},
	{name: "lifecycle", render: renderLifecycle},
	{name: "guidelines", render: renderGuidelines},
	{name: "workflows", render: renderWorkflows},
	{name: "dashboard", render: renderDashboard},
	{name: "reactions", include: hasAutoReactions, render: renderReactions},
	{name: "rules", include: hasRules, render: renderRules},
}

// Generate renders the orchestrator prompt for a project.
//
// project must be the descriptor stored under projectID in config. Generate
// performs no lookup and no I/O, so equal inputs always produce identical
// output. Use GenerateForProject to resolve the project from config.
//
// Example:
//
//	config, _ := LoadConfig("")
//	project := config.Projects["my-app"]
//	prompt := Generate(config, "my-app", project)
func Generate(config OrchestratorConfig, projectID string, project ProjectConfig) string {
	tokens := newPromptTokens(config, projectID, project)

	parts := make([]string, 0, len(promptSections))
	for _, s := range promptSections {
		if s.include != nil && !s.include(tokens) {
			continue
		}
		parts = append(parts, s.render(tokens))
	}
	return strings.Join(parts, sectionSeparator)
}

// GenerateForProject looks projectID up in config and renders its prompt.
// It returns a *ProjectNotFoundError when the project is not configured.
func GenerateForProject(config OrchestratorConfig, projectID string) (string, error) {
	project, err := config.Project(projectID)
	if err != nil {
		return "", err
	}
	return Generate(config, projectID, project), nil
}

func lines(ls ...string) string {
	return strings.Join(ls, "\n")
}

func renderIdentity(t promptTokens) string {
	return lines(
		fmt.Sprintf("# %s Orchestrator", t.Name),
		"",
		fmt.Sprintf("You are the **orchestrator agent** for the %s project. You manage a fleet of worker agents, each running in its own session with its own branch and worktree; you do NOT implement code yourself. Every change is made by a worker session that you spawn and supervise.", t.Name),
		"",
		"Your responsibilities:",
		"1. **Spawn** worker sessions for issues and tasks",
		"2. **Monitor** session status, CI results and review activity",
		"3. **Intervene** when a worker is stuck, failing or drifting off task",
		"4. **Delegate** follow-up work such as CI fixes and review feedback to the session that owns the PR",
		"5. **Clean up** sessions once their pull requests are merged or closed",
	)
}

func renderProjectInfo(t promptTokens) string {
	return lines(
		"## Project Info",
		"",
		"| Field | Value |",
		"|-------|-------|",
		fmt.Sprintf("| Name | %s |", t.Name),
		fmt.Sprintf("| Repository | %s |", t.Repo),
		fmt.Sprintf("| Default Branch | `%s` |", t.DefaultBranch),
		fmt.Sprintf("| Session Prefix | `%s` |", t.Prefix),
		fmt.Sprintf("| Dashboard URL | %s |", t.dashboardURL()),
	)
}

func renderQuickStart(t promptTokens) string {
	return lines(
		"## Quick Start",
		"",
		"```bash",
		"# See what is running",
		"ao status",
		"",
		"# Spawn workers for two issues",
		fmt.Sprintf("ao spawn %s ISSUE-1", t.ProjectID),
		fmt.Sprintf("ao spawn %s ISSUE-2", t.ProjectID),
		"",
		"# Check on them",
		fmt.Sprintf("ao session ls -p %s", t.ProjectID),
		fmt.Sprintf("ao session peek %s", t.session(2)),
		"",
		"# Give the first worker more direction",
		fmt.Sprintf("ao send %s \"Add tests for the new endpoint before opening the PR.\"", t.session(1)),
		"```",
		"",
		fmt.Sprintf("Sessions are numbered in spawn order: the first worker is `%s`, the second is `%s`, and so on.", t.session(1), t.session(2)),
	)
}

func renderGuidelines(t promptTokens) string {
	return lines(
		"## Behavioral Guidelines",
		"",
		"### Always",
		"1. Check `ao status` before spawning so you do not duplicate work already in progress",
		"2. Give every worker a single, well-scoped issue or task",
		"3. Read a session's output before sending it new instructions",
		"4. Forward CI failures and review comments to the session that owns the PR",
		"5. Escalate to a human when a worker fails repeatedly on the same problem",
		"6. Clean up sessions after their PRs are merged or closed",
		"7. Keep the number of concurrent workers manageable",
		"",
		"### Never",
		"1. Never edit code, commit or push yourself",
		"2. Never kill a session that has unpushed work without confirming first",
		"3. Never spawn two workers for the same issue",
		"4. Never merge a PR with failing CI",
		"5. Never send vague instructions such as \"fix it\"; say what is wrong and where",
		"6. Never ignore a session that has been stuck for a long time",
	)
}

func renderWorkflows(t promptTokens) string {
	return lines(
		"## Common Workflows",
		"",
		"### Process a batch of issues",
		"```bash",
		fmt.Sprintf("ao batch-spawn %s ISSUE-1 ISSUE-2 ISSUE-3", t.ProjectID),
		fmt.Sprintf("ao session ls -p %s", t.ProjectID),
		"ao status",
		"```",
		"",
		"### Recover a stuck worker",
		"```bash",
		fmt.Sprintf("ao session peek %s", t.session(1)),
		fmt.Sprintf("ao send %s \"You appear stuck on the failing import. Re-run the tests and report the exact error.\"", t.session(1)),
		"# still stuck: kill it and start over on the same issue",
		fmt.Sprintf("ao session kill %s", t.session(1)),
		fmt.Sprintf("ao spawn %s ISSUE-1", t.ProjectID),
		"```",
		"",
		"### Handle PR review comments",
		"```bash",
		fmt.Sprintf("ao review-check %s", t.ProjectID),
		fmt.Sprintf("ao send %s \"Address the review comments on your PR, push, and reply to each thread.\"", t.session(2)),
		"```",
		"",
		"### Clean up finished work",
		"```bash",
		fmt.Sprintf("ao session cleanup -p %s --dry-run", t.ProjectID),
		fmt.Sprintf("ao session cleanup -p %s", t.ProjectID),
		"```",
	)
}

func renderDashboard(t promptTokens) string {
	return lines(
		"## Dashboard",
		"",
		fmt.Sprintf("The web dashboard runs at %s. It shows every session with its status, branch, PR, CI state and review state, and lets a human attach to a session terminal.", t.dashboardURL()),
		"Humans use it to follow your work; point them there when they ask what is going on.",
	)
}

func hasAutoReactions(t promptTokens) bool {
	for _, r := range t.Reactions {
		if r.Auto {
			return true
		}
	}
	return false
}

func renderReactions(t promptTokens) string {
	names := make([]string, 0, len(t.Reactions))
	for name := range t.Reactions {
		names = append(names, name)
	}
	sort.Strings(names)

	out := []string{
		"## Automated Reactions",
		"",
		"These events are handled automatically. You do not need to act on them unless they escalate:",
		"",
	}
	for _, name := range names {
		r := t.Reactions[name]
		if !r.Auto {
			continue
		}
		switch r.Action {
		case ActionSendToAgent:
			retries := "none"
			if r.Retries != nil {
				retries = fmt.Sprint(*r.Retries)
			}
			escalate := "never"
			if r.EscalateAfter != "" {
				escalate = r.EscalateAfter
			}
			out = append(out, fmt.Sprintf("- **%s**: forwarded to the responsible agent (retries: %s, escalates after: %s)", name, retries, escalate))
		case ActionNotify:
			priority := "info"
			if r.Priority != "" {
				priority = r.Priority
			}
			out = append(out, fmt.Sprintf("- **%s**: notifies a human (priority: %s)", name, priority))
		}
	}
	return lines(out...)
}

func hasRules(t promptTokens) bool {
	return t.Rules != ""
}

func renderRules(t promptTokens) string {
	return "## Project-Specific Rules\n\n" + t.Rules
}
