package types

import (
	"encoding/json"
	"fmt"
)

/////////////////////////////////////////////////////////////////////////////
// READING DIFFICULTY
/////////////////////////////////////////////////////////////////////////////

type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyModerate
	DifficultyHard
)

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyModerate:
		return "moderate"
	case DifficultyHard:
		return "hard"
	default:
		return fmt.Sprintf("Difficulty(%d)", d)
	}
}

// ParseDifficulty is the inverse of Difficulty.String.
func ParseDifficulty(s string) (Difficulty, error) {
	switch s {
	case "easy":
		return DifficultyEasy, nil
	case "moderate":
		return DifficultyModerate, nil
	case "hard":
		return DifficultyHard, nil
	default:
		return 0, fmt.Errorf("unknown difficulty: %s", s)
	}
}

func (d Difficulty) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Difficulty) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := ParseDifficulty(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

/////////////////////////////////////////////////////////////////////////////
// SUMMARY
/////////////////////////////////////////////////////////////////////////////

// Summary aggregates every statistic computed for one text.
// AverageWordLength and VocabularyRichness are rounded to 2 decimals.
type Summary struct {
	WordCount          int             `json:"word_count"`
	SentenceCount      int             `json:"sentence_count"`
	AverageWordLength  float64         `json:"average_word_length"`
	ReadingDifficulty  Difficulty      `json:"reading_difficulty"`
	VocabularyRichness float64         `json:"vocabulary_richness"`
	WordFrequencies    *FrequencyTable `json:"word_frequencies"`
	TopWords           []WordCount     `json:"top_words"`
}
