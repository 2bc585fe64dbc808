package quizgen

import (
	"fmt"
	"strings"

	"github.com/abhisek/quizforge/internal/question"
)

const systemPrompt = `You are an expert educational content creator generating quiz questions.

Rules:
- Generate a single question for the given topic and difficulty level.
- Respond with ONLY a valid JSON object. No markdown fences, no commentary, no additional text.
- The question must be clear, unambiguous, and test real understanding.
- Match the difficulty level: easy (basic recall), medium (application), hard (advanced analysis).
- When document context is provided, base the question strictly on that context and do not ask about information outside it.`

const choiceRequirements = `REQUIREMENTS:
1. Provide exactly 4 distinct and plausible answer options
2. Ensure only ONE option is definitively correct
3. Make incorrect options (distractors) realistic but clearly wrong

Return ONLY a JSON object with these exact fields:
- "question": a clear, specific question string
- "options": an array of exactly 4 possible answer strings
- "correct_answer": the correct answer string (must match one option exactly)`

const blankRequirements = `REQUIREMENTS:
1. Create a complete, grammatically correct sentence with ONE blank
2. Mark the blank location with exactly 5 underscores: "_____"
3. The sentence must provide enough context to determine the answer
4. The answer should be 1-3 words

Return ONLY a JSON object with these exact fields:
- "question": a complete sentence with "_____" marking the blank position
- "answer": the correct word or short phrase`

// buildUserMessage renders the user prompt for a generation request.
func buildUserMessage(req Request) string {
	var b strings.Builder

	if req.Grounded() {
		b.WriteString("DOCUMENT CONTEXT:\n")
		b.WriteString(req.Context)
		b.WriteString("\n\n")
		fmt.Fprintf(&b, "Generate a %s level %s about: %s\n\n",
			req.Difficulty, kindLabel(req.Kind), req.Query)
		b.WriteString("The answer must be found in the document context above.\n\n")
	} else {
		fmt.Fprintf(&b, "Generate a %s level %s about the topic: %s\n\n",
			req.Difficulty, kindLabel(req.Kind), req.Topic)
	}

	switch req.Kind {
	case question.KindChoice:
		b.WriteString(choiceRequirements)
	case question.KindBlank:
		b.WriteString(blankRequirements)
	}

	b.WriteString("\n\nGenerate the question now. Return ONLY the JSON object, no additional text.")
	return b.String()
}

func kindLabel(k question.Kind) string {
	if k == question.KindBlank {
		return "fill-in-the-blank question"
	}
	return "multiple-choice question"
}
