package synthesis

import (
	"fmt"
	"strings"

	"github.com/civicgrid/yojana/internal/model"
)

const systemPrompt = `You are an assistant that helps citizens understand which government welfare schemes they may be eligible for.
You give advisory guidance only, never legal advice or a binding eligibility determination.
You must ONLY discuss schemes from the provided list. Never invent, recall, or recommend any scheme that is not in it.
If the list is empty, say plainly that no matching scheme was found and suggest re-checking the profile details.`

// BuildNarratePrompt constructs the default prompt for the initial summary.
// The scheme list doubles as a grounding allowlist.
func BuildNarratePrompt(req NarrateRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "User profile:\n%s\n\n", formatProfile(req.Profile))
	fmt.Fprintf(&b, "Schemes the rule engine matched for this profile (the ONLY schemes you may mention):\n%s\n\n",
		formatResults(req.Results, req.Language))
	fmt.Fprintf(&b, "Task: explain in %s, in a warm and simple tone, why each scheme above fits this person and what benefit it offers. ",
		languageName(req.Language))
	b.WriteString("Order your explanation by the scores given. Keep it under 200 words. Do not mention the scores themselves.")

	return b.String()
}

// BuildChatPrompt constructs the prompt for a grounded follow-up reply.
func BuildChatPrompt(req ChatRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Scheme context for this conversation (the ONLY schemes you may mention):\n%s\n\n",
		formatResults(req.Results, req.Language))

	if len(req.Transcript) > 0 {
		b.WriteString("Conversation so far:\n")
		for _, turn := range req.Transcript {
			fmt.Fprintf(&b, "%s: %s\n", turn.Role, turn.Content)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "New question: %s\n\n", req.Message)
	fmt.Fprintf(&b, "Answer in %s, grounded strictly in the scheme context above. If the question is outside that context, say so.",
		languageName(req.Language))

	return b.String()
}

func formatProfile(p model.UserProfile) string {
	disability := "no"
	if p.Disability {
		disability = "yes"
	}
	return fmt.Sprintf("- age: %d\n- annual income: ₹%d\n- occupation: %s\n- state: %s\n- gender: %s\n- category: %s\n- disability: %s",
		p.Age, p.Income, p.Occupation, p.State, p.Gender, p.Category, disability)
}

func formatResults(results []model.RankedResult, lang string) string {
	if len(results) == 0 {
		return "(no matching schemes)"
	}
	var b strings.Builder
	for i, r := range results {
		fmt.Fprintf(&b, "%d. %s (score %.2f) — %s\n", i+1,
			r.Scheme.Name.Get(lang), r.MatchScore, r.Scheme.Description.Get(lang))
		fmt.Fprintf(&b, "   Benefits: %s\n", r.Scheme.Benefits.Get(lang))
	}
	return strings.TrimRight(b.String(), "\n")
}

func languageName(lang string) string {
	switch lang {
	case model.LangHindi:
		return "Hindi"
	default:
		return "English"
	}
}
