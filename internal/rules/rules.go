// Package rules maps hook events to feedback directives.
//
// The table is a fixed, ordered set of plain value records split into
// three categories with strict precedence: lifecycle events, tool
// names, then shell commands. The first two categories resolve by
// first match in table order; the shell category collects every match
// and picks the highest priority, with table order breaking ties.
package rules

import "regexp"

// Category groups rules by the text field they match against.
type Category int

const (
	// CategorySystem rules match the lifecycle event name.
	CategorySystem Category = iota
	// CategoryTool rules match the invoked tool name.
	CategoryTool
	// CategoryCommand rules match the shell executor's command.
	CategoryCommand
)

// Shell executor identifiers. Commands are only inspected on the
// pre-execution event of the shell tool.
const (
	ShellTool     = "Bash"
	PreToolEvent  = "PreToolUse"
	catchAllSound = "bash"
)

// Rule is one declarative mapping from a text pattern to a directive.
type Rule struct {
	Pattern  string
	Sound    string
	VoiceKey string
	Priority int
	Category Category
	Note     string

	re *regexp.Regexp
}

// matches reports whether text matches the rule's pattern,
// case-insensitively and anchored at the start of the string.
func (r *Rule) matches(text string) bool {
	return r.re.MatchString(text)
}

// compile prepares a rule's regexp. Patterns are prefix matches, not
// full-string matches and not substring searches.
func (r *Rule) compile() {
	r.re = regexp.MustCompile(`(?i)\A(?:` + r.Pattern + `)`)
}

// table returns the full rule table in declaration order. System and
// tool patterns are plain names; command patterns are regexes over the
// command line. The trailing catch-all guarantees every shell command
// resolves to at least a generic directive.
func table() []Rule {
	return []Rule{
		// Lifecycle events.
		{Pattern: `Notification`, Sound: "ready", VoiceKey: "Notification", Priority: 100, Category: CategorySystem, Note: "assistant ready"},
		{Pattern: `Stop`, Sound: "complete", VoiceKey: "Stop", Priority: 100, Category: CategorySystem, Note: "task completed"},
		{Pattern: `SubagentStop`, Sound: "complete", VoiceKey: "SubagentStop", Priority: 100, Category: CategorySystem, Note: "subtask completed"},
		{Pattern: `UserPromptSubmit`, Sound: "prompt", VoiceKey: "UserPromptSubmit", Priority: 100, Category: CategorySystem, Note: "user prompt"},

		// Tools.
		{Pattern: `Edit`, Sound: "edit", VoiceKey: "Edit", Priority: 90, Category: CategoryTool, Note: "file editing"},
		{Pattern: `MultiEdit`, Sound: "edit", VoiceKey: "MultiEdit", Priority: 90, Category: CategoryTool, Note: "multiple edits"},
		{Pattern: `Write`, Sound: "write", VoiceKey: "Write", Priority: 90, Category: CategoryTool, Note: "file creation"},
		{Pattern: `NotebookEdit`, Sound: "edit", VoiceKey: "NotebookEdit", Priority: 90, Category: CategoryTool, Note: "notebook editing"},
		{Pattern: `TodoWrite`, Sound: "list", VoiceKey: "TodoWrite", Priority: 80, Category: CategoryTool, Note: "todo list update"},
		{Pattern: `Read`, Sound: "read", VoiceKey: "Read", Priority: 70, Category: CategoryTool, Note: "file reading"},
		{Pattern: `Grep`, Sound: "search", VoiceKey: "Grep", Priority: 70, Category: CategoryTool, Note: "text search"},
		{Pattern: `Task`, Sound: "task", VoiceKey: "Task", Priority: 70, Category: CategoryTool, Note: "task execution"},
		{Pattern: `LS`, Sound: "list", VoiceKey: "LS", Priority: 70, Category: CategoryTool, Note: "directory listing"},
		{Pattern: `Glob`, Sound: "search", VoiceKey: "Glob", Priority: 70, Category: CategoryTool, Note: "file pattern search"},
		{Pattern: `exit_plan_mode`, Sound: "complete", VoiceKey: "exit_plan_mode", Priority: 70, Category: CategoryTool, Note: "exit plan mode"},
		{Pattern: `WebFetch`, Sound: "web", VoiceKey: "WebFetch", Priority: 70, Category: CategoryTool, Note: "web fetch"},
		{Pattern: `WebSearch`, Sound: "search", VoiceKey: "WebSearch", Priority: 70, Category: CategoryTool, Note: "web search"},

		// Shell commands, resolved by priority rather than order.
		{Pattern: `git\s+commit`, Sound: "commit", VoiceKey: "git_commit", Priority: 95, Category: CategoryCommand, Note: "git commit"},
		{Pattern: `git\s+push`, Sound: "push", VoiceKey: "git_push", Priority: 95, Category: CategoryCommand, Note: "git push"},
		{Pattern: `git\s+pull`, Sound: "pull", VoiceKey: "git_pull", Priority: 95, Category: CategoryCommand, Note: "git pull"},
		{Pattern: `gh\s+pr`, Sound: "pr", VoiceKey: "gh_pr", Priority: 95, Category: CategoryCommand, Note: "github pr"},
		{Pattern: `npm\s+test|yarn\s+test`, Sound: "test", VoiceKey: "test", Priority: 90, Category: CategoryCommand, Note: "javascript tests"},
		{Pattern: `pytest|python.*test`, Sound: "test", VoiceKey: "test", Priority: 90, Category: CategoryCommand, Note: "python tests"},
		{Pattern: `go\s+test`, Sound: "test", VoiceKey: "test", Priority: 90, Category: CategoryCommand, Note: "go tests"},
		{Pattern: `cargo\s+test`, Sound: "test", VoiceKey: "test", Priority: 90, Category: CategoryCommand, Note: "rust tests"},
		{Pattern: `make`, Sound: "build", VoiceKey: "build", Priority: 85, Category: CategoryCommand, Note: "make build"},
		{Pattern: `docker`, Sound: "docker", VoiceKey: "docker", Priority: 85, Category: CategoryCommand, Note: "docker command"},
		{Pattern: `npm`, Sound: "npm", VoiceKey: "npm", Priority: 85, Category: CategoryCommand, Note: "npm command"},
		{Pattern: `python`, Sound: "python", VoiceKey: "python", Priority: 85, Category: CategoryCommand, Note: "python command"},
		{Pattern: `.*`, Sound: catchAllSound, VoiceKey: "Bash", Priority: 0, Category: CategoryCommand, Note: "generic shell command"},
	}
}
