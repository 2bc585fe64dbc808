package question

// Kind discriminates the two question variants.
type Kind string

const (
	// KindChoice is a multiple-choice question with exactly four options.
	KindChoice Kind = "choice"

	// KindBlank is a fill-in-the-blank question with a single elided span.
	KindBlank Kind = "blank"
)

// BlankMarker is the fixed sentinel marking the elided span in a blank
// question. Exactly five underscores; prompts instruct the model to use it
// and the validator requires exactly one occurrence.
const BlankMarker = "_____"

// Question is a validated quiz question. It is a tagged union: Kind selects
// the variant, and Options is populated only for KindChoice.
//
// A Question is only constructed by Parse; candidates that fail validation
// never escape as Question values.
type Question struct {
	// Kind selects the variant.
	Kind Kind `json:"kind"`

	// Text is the question prompt shown to the learner. For KindBlank it
	// contains exactly one BlankMarker.
	Text string `json:"text"`

	// Options holds exactly 4 trimmed, distinct, non-empty choices.
	// Nil for KindBlank.
	Options []string `json:"options,omitempty"`

	// Answer is the correct answer. For KindChoice it equals one of
	// Options byte-for-byte; for KindBlank it is the text of the blank.
	Answer string `json:"answer"`
}

// choiceCandidate is the raw JSON shape expected from the model for a
// multiple-choice question.
type choiceCandidate struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
}

// blankCandidate is the raw JSON shape expected from the model for a
// fill-in-the-blank question.
type blankCandidate struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
