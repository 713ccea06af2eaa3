package usecase

import "strings"

// Rule pairs a set of trigger substrings with a fixed reply. Any trigger
// hit satisfies the rule.
type Rule struct {
	Triggers []string
	Reply    string
}

// KnowledgeBase answers profile/FAQ prompts locally from an ordered
// ruleset. The ruleset is fixed at construction and never mutated, so a
// single instance is safe across concurrent requests.
type KnowledgeBase struct {
	rules []Rule
}

func NewKnowledgeBase(rules []Rule) *KnowledgeBase {
	return &KnowledgeBase{rules: rules}
}

// Match returns the reply of the first rule whose any trigger is a
// substring of the lowercased prompt. Rule order is significant: a
// prompt hitting several rules resolves to the earliest one.
func (kb *KnowledgeBase) Match(prompt string) (string, bool) {
	normalized := strings.ToLower(prompt)
	for _, rule := range kb.rules {
		for _, trigger := range rule.Triggers {
			if strings.Contains(normalized, trigger) {
				return rule.Reply, true
			}
		}
	}
	return "", false
}

// DefaultKnowledgeBase is the portfolio FAQ shipped with the gateway.
// The greeting rule stays first so that "hi, tell me about kalu" greets
// instead of jumping to the bio.
func DefaultKnowledgeBase() *KnowledgeBase {
	return NewKnowledgeBase([]Rule{
		{
			Triggers: []string{"hello", "hi", "hey", "good morning", "good afternoon"},
			Reply:    "Hey there! I'm Kalu's portfolio assistant. Ask me about his skills, projects or experience.",
		},
		{
			Triggers: []string{"who are you", "about you", "kalu", "yourself"},
			Reply: "Kalu is a full-stack software engineer who enjoys building web " +
				"applications and developer tooling. This site showcases his work.",
		},
		{
			Triggers: []string{"skill", "stack", "technolog", "language"},
			Reply: "Kalu works mainly with Go, TypeScript and Python, alongside React, " +
				"Node.js, PostgreSQL and a healthy dose of cloud infrastructure.",
		},
		{
			Triggers: []string{"project", "portfolio", "built", "work on"},
			Reply: "Recent projects include this portfolio site, a realtime chat service " +
				"and several open-source CLI tools. The Projects section has the details.",
		},
		{
			Triggers: []string{"experience", "job", "career", "company"},
			Reply: "Kalu has several years of professional experience building backend " +
				"services and web frontends, most recently focused on API platforms.",
		},
		{
			Triggers: []string{"contact", "email", "reach", "hire", "hiring"},
			Reply: "You can reach Kalu through the contact form on this site or via the " +
				"links in the footer. He's always happy to talk about interesting work.",
		},
		{
			Triggers: []string{"resume", "cv"},
			Reply:    "Kalu's resume is available from the Resume link in the site header.",
		},
	})
}
