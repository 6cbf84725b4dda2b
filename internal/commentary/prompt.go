package commentary

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/neon-paddle/internal/config"
)

// MaxWords is the length limit the prompt asks the model to respect.
const MaxWords = 20

var personalityPrompts = map[config.Personality]string{
	config.PersonalityEnthusiastic: "You are an incredibly energetic and loud sports commentator. " +
		"Use caps, exclamation marks, and intense sports metaphors. You LOVE the drama.",
	config.PersonalitySarcastic: "You are a witty, dry, and slightly condescending commentator. " +
		"You find human effort amusing and machine precision expected. Be biting and clever.",
	config.PersonalityNeutral: "You are a professional, matter-of-fact sports broadcaster. " +
		"Be descriptive, analytical, and objective. Focus on the stats and the play.",
}

// PersonalityPrompt returns the voice instructions for p. Unknown
// personalities get the neutral voice.
func PersonalityPrompt(p config.Personality) string {
	if s, ok := personalityPrompts[p]; ok {
		return s
	}
	return personalityPrompts[config.PersonalityNeutral]
}

// BuildPrompt renders the full model prompt for req.
func BuildPrompt(req Request) string {
	var b strings.Builder
	b.WriteString(PersonalityPrompt(req.Personality))
	b.WriteString("\nContext: ")
	if req.GameOver {
		fmt.Fprintf(&b, "The match is OVER! Final score - Player: %d, Opponent: %d. "+
			"Provide a final summary of the winner's dominance and the loser's performance.",
			req.LeftScore, req.RightScore)
	} else {
		fmt.Fprintf(&b, "The player just: %s. Current score - Player: %d, Opponent: %d. Reaction required.",
			req.Event, req.LeftScore, req.RightScore)
	}
	if len(req.Recent) > 0 {
		b.WriteString("\nAvoid repeating these recent lines: ")
		b.WriteString(strings.Join(req.Recent, " | "))
	}
	fmt.Fprintf(&b, "\nLimit your response to %d words maximum. Be punchy and stay in character.", MaxWords)
	return b.String()
}
