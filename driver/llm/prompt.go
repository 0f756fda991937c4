package llm

import (
	"fmt"
	"strings"

	"newslens/utils/topic_classifier"
)

// maxPromptChars bounds how much article text is sent to a provider.
const maxPromptChars = 5000

const promptTemplate = `You are an expert news analyst for a premium news aggregation platform. Analyze the following article content thoroughly and provide a detailed, informative breakdown.

Article content:
"%s"

Respond with a JSON object following this exact structure:
{
  "summary": "A detailed 4-5 sentence summary. Cover: what happened, who is involved, the broader context, and the immediate impact. Be specific with names, numbers, and facts. Avoid vague generalities.",
  "insights": [
    "Insight 1: A specific takeaway or implication",
    "Insight 2: How this connects to broader trends",
    "Insight 3: What this means for the industry or public",
    "Insight 4: A notable detail or statistic from the article",
    "Insight 5: Potential future implications"
  ],
  "why": "A 2-sentence explanation of why this article matters to someone keeping up with current events. Be concrete about the stakes.",
  "topic": "Classify into exactly ONE: %s"
}

Important: Make the summary substantive and informative — a reader should understand the full story without reading the original article.`

// AnalysisPrompt renders the analysis prompt for the given article text,
// truncated to the provider input limit. The topic list matches the keyword
// classifier's vocabulary so both classification paths agree.
func AnalysisPrompt(text string) string {
	if len(text) > maxPromptChars {
		text = text[:maxPromptChars]
	}
	return fmt.Sprintf(promptTemplate, text, strings.Join(topic_classifier.Topics(), ", "))
}
