package chat

import (
	"context"
	"strings"

	"github.com/Tarun-surendra/portfolio/internal/content"
)

// Rule maps any of its keywords to a canned reply.
type Rule struct {
	Name     string
	Keywords []string
	Reply    string
}

// Matches reports whether any keyword occurs in the lowercased question.
func (r Rule) Matches(lowered string) bool {
	for _, k := range r.Keywords {
		if strings.Contains(lowered, strings.ToLower(k)) {
			return true
		}
	}
	return false
}

// RuleResponder answers from an ordered rule table. The first matching rule
// wins; Default is returned when none match.
type RuleResponder struct {
	Rules   []Rule
	Default string
}

// NewRuleResponder builds a RuleResponder from the portfolio's chat script.
func NewRuleResponder(script content.ChatScript) *RuleResponder {
	rules := make([]Rule, 0, len(script.Replies))
	for _, r := range script.Replies {
		rules = append(rules, Rule{Name: r.Name, Keywords: r.Keywords, Reply: r.Reply})
	}
	return &RuleResponder{Rules: rules, Default: script.DefaultReply}
}

// Mode returns ModeLocal.
func (r *RuleResponder) Mode() string {
	return ModeLocal
}

// Match returns the reply for question and the name of the rule that
// produced it, or "" for the default.
func (r *RuleResponder) Match(question string) (reply, rule string) {
	q := strings.ToLower(question)
	for _, rl := range r.Rules {
		if rl.Matches(q) {
			return rl.Reply, rl.Name
		}
	}
	return r.Default, ""
}

// Reply answers the latest user turn. It never fails.
func (r *RuleResponder) Reply(_ context.Context, turns []Turn) (string, error) {
	reply, _ := r.Match(lastUser(turns))
	return reply, nil
}
