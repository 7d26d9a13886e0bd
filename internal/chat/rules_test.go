package chat

import (
	"context"
	"testing"

	"github.com/Tarun-surendra/portfolio/internal/content"
)

func defaultScript(t *testing.T) content.ChatScript {
	t.Helper()
	p, err := content.Default()
	if err != nil {
		t.Fatalf("content.Default: %v", err)
	}
	return p.Chat
}

func TestRuleResponderMatch(t *testing.T) {
	r := NewRuleResponder(defaultScript(t))

	tests := []struct {
		question string
		rule     string
	}{
		{"What's your tech stack?", "skills"},
		{"WHAT SKILLS DO YOU HAVE", "skills"},
		{"Are you hireable?", "availability"},
		{"Is he available for hire?", "availability"},
		{"Tell me about his projects", "projects"},
		{"How can I contact him?", "contact"},
		{"Which company is he at?", "experience"},
		{"Did he go to university?", "education"},
		{"Where is he based?", "location"},
		{"hey there", "greeting"},
		{"asdf1234", ""},
		{"", ""},
		// "work" appears in both availability and projects; the earlier rule wins.
		{"show me your work", "availability"},
	}

	for _, tt := range tests {
		t.Run(tt.question, func(t *testing.T) {
			reply, rule := r.Match(tt.question)
			if rule != tt.rule {
				t.Errorf("Match(%q) rule = %q, want %q", tt.question, rule, tt.rule)
			}
			if tt.rule == "" && reply != r.Default {
				t.Errorf("Match(%q) should return the default reply, got %q", tt.question, reply)
			}
			if reply == "" {
				t.Errorf("Match(%q) returned an empty reply", tt.question)
			}
		})
	}
}

func TestRuleResponderRepliesToLatestUserTurn(t *testing.T) {
	r := &RuleResponder{
		Rules: []Rule{
			{Name: "a", Keywords: []string{"alpha"}, Reply: "A"},
			{Name: "b", Keywords: []string{"Beta"}, Reply: "B"},
		},
		Default: "D",
	}

	turns := []Turn{
		{Role: RoleAssistant, Content: "greeting"},
		{Role: RoleUser, Content: "alpha"},
		{Role: RoleAssistant, Content: "A"},
		{Role: RoleUser, Content: "what about BETA?"},
	}
	got, err := r.Reply(context.Background(), turns)
	if err != nil {
		t.Fatalf("Reply: %v", err)
	}
	if got != "B" {
		t.Errorf("Reply() = %q, want %q", got, "B")
	}

	got, _ = r.Reply(context.Background(), []Turn{{Role: RoleAssistant, Content: "greeting"}})
	if got != "D" {
		t.Errorf("Reply() with no user turn = %q, want default", got)
	}
	if r.Mode() != ModeLocal {
		t.Errorf("Mode() = %q", r.Mode())
	}
}
