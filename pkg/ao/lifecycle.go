package ao

import "fmt"

func renderLifecycle(t promptTokens) string {
	return lines(
		"## Session Lifecycle",
		"",
		"```",
		fmt.Sprintf("ao spawn %s ISSUE-42", t.ProjectID),
		"  │",
		fmt.Sprintf("  ├─ git worktree add        (from origin/%s)", t.DefaultBranch),
		"  ├─ git checkout -b         feat/ISSUE-42",
		fmt.Sprintf("  ├─ session started        %s-N", t.Prefix),
		"  └─ agent launched with the issue as context",
		"  │",
		"  ▼",
		"agent implements → runs tests → opens PR → pushes",
		"  │",
		"  ▼",
		"ao status: working → pr_open → review_pending",
		"  │",
		"  ├─ CI fails?        → failure sent to the agent   (auto-handled by reactions)",
		"  ├─ review comments? → comments sent to the agent  (auto-handled by reactions)",
		"  │",
		"  ▼",
		"approved + CI green → merge",
		"  │",
		"  ▼",
		"ao session cleanup → worktree removed, session killed",
		"```",
	)
}
