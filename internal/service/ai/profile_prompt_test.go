package ai

import (
	"strings"
	"testing"

	"github.com/rraja/portfolio/backend/internal/model/profile"
)

func TestBuildSystemPromptIncludesProfileFacts(t *testing.T) {
	owner := profile.Default()
	prompt := BuildSystemPrompt(owner)

	if !strings.Contains(prompt, owner.Name) {
		t.Fatalf("prompt missing owner name: %s", prompt)
	}
	if !strings.Contains(prompt, "first person") {
		t.Fatal("prompt must instruct first-person voice")
	}
	for _, skill := range owner.Expertise {
		if !strings.Contains(prompt, skill) {
			t.Fatalf("prompt missing expertise entry %q", skill)
		}
	}
	for _, rule := range owner.Rules {
		if !strings.Contains(prompt, rule) {
			t.Fatalf("prompt missing rule %q", rule)
		}
	}
}
