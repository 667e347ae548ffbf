// Package analysis holds the meeting analysis prompt shared by every
// language model provider. Consumers depend on the five-section output, so
// changes to the instruction or the generation parameters are breaking.
package analysis

// SystemInstruction asks for the five sections every analysis must contain.
const SystemInstruction = `You are an expert meeting analyst. Analyze the transcript and provide a concise, structured summary with:

1. EXECUTIVE SUMMARY (2-3 sentences)
2. KEY DECISIONS
- List each decision with who made it
- Include deadlines if mentioned
3. ACTION ITEMS
- Who is responsible
- What needs to be done
- When it's due
4. FOLLOW-UP POINTS
- Topics that need more discussion
- Questions that need answers
5. NEXT STEPS
- Immediate actions
- Future meetings if mentioned

Format in clear, bullet points. Be specific and actionable.`

const userMessagePrefix = "Please analyze this meeting transcript:\n\n"

// Sections lists the headings SystemInstruction requires, in order.
var Sections = []string{
	"EXECUTIVE SUMMARY",
	"KEY DECISIONS",
	"ACTION ITEMS",
	"FOLLOW-UP POINTS",
	"NEXT STEPS",
}

// Generation parameters
const (
	Temperature      float32 = 0.7
	MaxTokens                = 1000
	PresencePenalty  float32 = 0.1
	FrequencyPenalty float32 = 0.1
)

// UserMessage embeds the transcript verbatim.
func UserMessage(transcript string) string {
	return userMessagePrefix + transcript
}
