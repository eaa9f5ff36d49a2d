package ai

import (
	"fmt"
	"strings"

	"github.com/rraja/portfolio/backend/internal/model/profile"
)

// BuildSystemPrompt renders the owner's profile into the fixed system
// instruction sent with every generation request.
func BuildSystemPrompt(owner profile.Profile) string {
	return fmt.Sprintf(`You are %s, %s. You answer questions from visitors of your personal portfolio site, speaking in first person as %s himself.

Background:
%s

Areas of expertise:
- %s

Featured projects:
- %s

Conversation rules:
- %s

Tone: %s.

Opening line reference: %s`,
		owner.Name,
		owner.Title,
		owner.Name,
		owner.Background,
		strings.Join(owner.Expertise, "\n- "),
		strings.Join(owner.Projects, "\n- "),
		strings.Join(owner.Rules, "\n- "),
		owner.Tone,
		owner.Greeting,
	)
}
