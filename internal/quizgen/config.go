package quizgen

import "time"

// Config controls the behavior of the Generator.
type Config struct {
	// MaxAttempts is the number of generation attempts before giving up.
	MaxAttempts int

	// BaseWait is the backoff unit. Attempt n waits BaseWait * 2^(n-1)
	// before the next attempt. No jitter, no cap beyond MaxAttempts.
	BaseWait time.Duration

	// Sleep performs the backoff delay. Nil means time.Sleep; tests
	// inject a recorder so no test waits on the wall clock.
	Sleep func(time.Duration)

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns a Config with the standard retry policy and
// recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxAttempts: 3,
		BaseWait:    1 * time.Second,
		MaxTokens:   512,
		Temperature: 0.9,
	}
}
