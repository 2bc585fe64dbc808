package tracker

import (
	"sort"
	"strings"
)

// Stats aggregates a set of attempts. All fields are zero-valued (and the
// distribution map empty) when no attempts match.
type Stats struct {
	TotalAttempts          int
	AverageAccuracy        float64
	BestAccuracy           float64
	WorstAccuracy          float64
	TotalTime              float64
	AverageTimePerAttempt  float64
	Topics                 []string
	DifficultyDistribution map[string]int
	TotalQuestions         int
	TotalCorrect           int
}

// TopicAccuracy pairs a topic with its mean accuracy, for weak/strong
// area rankings.
type TopicAccuracy struct {
	Topic    string
	Accuracy float64
}

// OverallStats aggregates across every recorded attempt.
func (t *Tracker) OverallStats() Stats {
	return aggregate(t.attempts)
}

// TopicStats aggregates attempts whose topic matches case-insensitively.
func (t *Tracker) TopicStats(topic string) Stats {
	var matched []Attempt
	for _, a := range t.attempts {
		if strings.EqualFold(a.Topic, topic) {
			matched = append(matched, a)
		}
	}
	return aggregate(matched)
}

// WeakAreas returns topics whose mean accuracy is below threshold,
// sorted ascending by accuracy (weakest first).
func (t *Tracker) WeakAreas(threshold float64) []TopicAccuracy {
	var out []TopicAccuracy
	for topic, acc := range t.topicMeans() {
		if acc < threshold {
			out = append(out, TopicAccuracy{Topic: topic, Accuracy: acc})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Accuracy < out[j].Accuracy })
	return out
}

// StrongAreas returns topics whose mean accuracy meets threshold,
// sorted descending by accuracy (strongest first).
func (t *Tracker) StrongAreas(threshold float64) []TopicAccuracy {
	var out []TopicAccuracy
	for topic, acc := range t.topicMeans() {
		if acc >= threshold {
			out = append(out, TopicAccuracy{Topic: topic, Accuracy: acc})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Accuracy > out[j].Accuracy })
	return out
}

// Recent returns the most recent attempts by timestamp, newest first,
// truncated to limit.
func (t *Tracker) Recent(limit int) []Attempt {
	recent := make([]Attempt, len(t.attempts))
	copy(recent, t.attempts)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Timestamp.After(recent[j].Timestamp)
	})
	if limit > 0 && len(recent) > limit {
		recent = recent[:limit]
	}
	return recent
}

// topicMeans maps each distinct topic (lowercased key, original spelling
// from the first occurrence) to its mean accuracy.
func (t *Tracker) topicMeans() map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	labels := make(map[string]string)

	for _, a := range t.attempts {
		key := strings.ToLower(a.Topic)
		if _, ok := labels[key]; !ok {
			labels[key] = a.Topic
		}
		sums[key] += a.Accuracy
		counts[key]++
	}

	means := make(map[string]float64, len(sums))
	for key, sum := range sums {
		means[labels[key]] = sum / float64(counts[key])
	}
	return means
}

func aggregate(attempts []Attempt) Stats {
	stats := Stats{DifficultyDistribution: map[string]int{}}
	if len(attempts) == 0 {
		return stats
	}

	stats.TotalAttempts = len(attempts)
	stats.BestAccuracy = attempts[0].Accuracy
	stats.WorstAccuracy = attempts[0].Accuracy

	topicSeen := make(map[string]bool)
	var accuracySum float64

	for _, a := range attempts {
		accuracySum += a.Accuracy
		if a.Accuracy > stats.BestAccuracy {
			stats.BestAccuracy = a.Accuracy
		}
		if a.Accuracy < stats.WorstAccuracy {
			stats.WorstAccuracy = a.Accuracy
		}
		stats.TotalTime += a.TimeTaken
		stats.TotalQuestions += a.TotalQuestions
		stats.TotalCorrect += a.CorrectAnswers
		stats.DifficultyDistribution[a.Difficulty]++

		key := strings.ToLower(a.Topic)
		if !topicSeen[key] {
			topicSeen[key] = true
			stats.Topics = append(stats.Topics, a.Topic)
		}
	}

	stats.AverageAccuracy = accuracySum / float64(len(attempts))
	stats.AverageTimePerAttempt = stats.TotalTime / float64(len(attempts))
	return stats
}
