package ao

import (
	"fmt"
	"strings"
)

// commandDoc documents one operator command. Everything except the
// examples is static text.
type commandDoc struct {
	Command  string
	Summary  string
	Flags    []string
	Examples func(t promptTokens) []string
}

// commandCatalogue lists the documented commands in the order they appear
var commandCatalogue = []commandDoc{
	{
		Command: "status",
		Summary: "Show every session with its branch, PR, CI and review state. Run this first whenever you need to know what is going on.",
		Flags: []string{
			"`-p, --project <id>`: only show sessions for one project",
			"`--json`: machine-readable output",
		},
		Examples: func(t promptTokens) []string {
			return []string{
				"ao status",
				fmt.Sprintf("ao status -p %s", t.ProjectID),
			}
		},
	},
	{
		Command: "spawn",
		Summary: "Create a new worker session for an issue: a fresh worktree and branch, a terminal session, and an agent launched with the issue as context.",
		Flags: []string{
			"`--open`: open the session in a terminal tab after spawning",
		},
		Examples: func(t promptTokens) []string {
			return []string{
				fmt.Sprintf("ao spawn %s ISSUE-123", t.ProjectID),
				fmt.Sprintf("ao spawn %s ISSUE-123 --open", t.ProjectID),
			}
		},
	},
	{
		Command: "batch-spawn",
		Summary: "Spawn one worker per issue. Issues that already have an active session are skipped.",
		Examples: func(t promptTokens) []string {
			return []string{
				fmt.Sprintf("ao batch-spawn %s ISSUE-1 ISSUE-2 ISSUE-3", t.ProjectID),
				fmt.Sprintf("# creates %s, %s and %s", t.session(1), t.session(2), t.session(3)),
			}
		},
	},
	{
		Command: "send",
		Summary: "Send a message to a running session. The message is typed into the agent's input as if a human had written it.",
		Flags: []string{
			"`-f, --file <path>`: send the contents of a file instead of an inline message",
			"`--no-wait`: do not wait for the agent to become idle first",
		},
		Examples: func(t promptTokens) []string {
			return []string{
				fmt.Sprintf("ao send %s \"The login test fails on CI, please fix it\"", t.session(1)),
				fmt.Sprintf("ao send %s -f review-notes.md", t.session(1)),
			}
		},
	},
	{
		Command: "session ls",
		Summary: "List sessions with their age and activity.",
		Flags: []string{
			"`-p, --project <id>`: only list sessions for one project",
		},
		Examples: func(t promptTokens) []string {
			return []string{
				"ao session ls",
				fmt.Sprintf("ao session ls -p %s", t.ProjectID),
			}
		},
	},
	{
		Command: "session peek",
		Summary: "Print the recent terminal output of a session without attaching to it. Read-only: nothing is sent to the agent.",
		Flags: []string{
			"`-n, --lines <count>`: number of lines to capture (default 50)",
		},
		Examples: func(t promptTokens) []string {
			return []string{
				fmt.Sprintf("ao session peek %s", t.session(1)),
				fmt.Sprintf("ao session peek %s -n 200", t.session(2)),
			}
		},
	},
	{
		Command: "session kill",
		Summary: "Kill a session and remove its worktree. Unpushed work in that worktree is lost.",
		Examples: func(t promptTokens) []string {
			return []string{
				fmt.Sprintf("ao session kill %s", t.session(2)),
			}
		},
	},
	{
		Command: "session cleanup",
		Summary: "Kill every session whose PR is merged or closed, or whose issue is done.",
		Flags: []string{
			"`-p, --project <id>`: only clean up one project",
			"`--dry-run`: show what would be cleaned up without doing it",
		},
		Examples: func(t promptTokens) []string {
			return []string{
				fmt.Sprintf("ao session cleanup -p %s --dry-run", t.ProjectID),
				fmt.Sprintf("ao session cleanup -p %s", t.ProjectID),
			}
		},
	},
	{
		Command: "review-check",
		Summary: "Check open PRs for unresolved review comments and forward them to the owning sessions.",
		Flags: []string{
			"`--dry-run`: report pending comments without sending them",
		},
		Examples: func(t promptTokens) []string {
			return []string{
				fmt.Sprintf("ao review-check %s", t.ProjectID),
				fmt.Sprintf("ao review-check %s --dry-run", t.ProjectID),
			}
		},
	},
	{
		Command: "open",
		Summary: "Open sessions in terminal tabs so a human can watch or take over.",
		Flags: []string{
			"`-w, --new-window`: open in a new window",
		},
		Examples: func(t promptTokens) []string {
			return []string{
				fmt.Sprintf("ao open %s", t.session(1)),
				fmt.Sprintf("ao open %s", t.ProjectID),
				"ao open all",
			}
		},
	},
	{
		Command: "dashboard",
		Summary: "Start the web dashboard.",
		Flags: []string{
			"`--port <port>`: port to listen on",
			"`--no-open`: do not open a browser",
		},
		Examples: func(t promptTokens) []string {
			return []string{
				fmt.Sprintf("ao dashboard --port %d", t.Port),
				fmt.Sprintf("# then browse to %s", t.dashboardURL()),
			}
		},
	},
	{
		Command: "start",
		Summary: "Start the orchestrator for a project: the dashboard plus the lifecycle loop that polls CI and reviews and fires reactions.",
		Examples: func(t promptTokens) []string {
			return []string{
				fmt.Sprintf("ao start %s", t.ProjectID),
			}
		},
	},
	{
		Command: "stop",
		Summary: "Stop the orchestrator for a project. Worker sessions keep running.",
		Examples: func(t promptTokens) []string {
			return []string{
				fmt.Sprintf("ao stop %s", t.ProjectID),
			}
		},
	},
}

// BuildCommandReference renders the command reference section on its own,
// with every example instantiated for the given project.
func BuildCommandReference(projectID string, project ProjectConfig, config OrchestratorConfig) string {
	return renderCommandReference(newPromptTokens(config, projectID, project))
}

func renderCommandReference(t promptTokens) string {
	parts := []string{
		lines(
			"## Command Reference",
			"",
			"All commands are run through the `ao` CLI.",
		),
	}
	for _, c := range commandCatalogue {
		parts = append(parts, c.render(t))
	}
	return strings.Join(parts, sectionSeparator)
}

func (c commandDoc) render(t promptTokens) string {
	out := []string{"### ao " + c.Command, "", c.Summary}
	if len(c.Flags) > 0 {
		out = append(out, "", "Flags:")
		for _, f := range c.Flags {
			out = append(out, "- "+f)
		}
	}
	out = append(out, "", "```bash")
	out = append(out, c.Examples(t)...)
	out = append(out, "```")
	return lines(out...)
}
