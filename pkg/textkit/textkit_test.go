package textkit

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestPublicAPIExamples(t *testing.T) {
	if got := AverageWordLength("hi there"); got != 3.5 {
		t.Errorf("AverageWordLength = %v, want 3.5", got)
	}
	if got := SentenceCount("Hello. World! How?"); got != 3 {
		t.Errorf("SentenceCount = %d, want 3", got)
	}
	if got := ReadingDifficulty("The cat sat. The dog ran."); got != DifficultyEasy {
		t.Errorf("ReadingDifficulty = %v, want easy", got)
	}
	if got := ReadingDifficulty(strings.Repeat("extraordinary ", 25) + "."); got != DifficultyHard {
		t.Errorf("ReadingDifficulty = %v, want hard", got)
	}
	if got := CountUniqueWords("the cat sat on the mat"); got != 5 {
		t.Errorf("CountUniqueWords = %d, want 5", got)
	}

	want := []WordCount{{Word: "apple", Count: 3}, {Word: "banana", Count: 2}}
	if got := MostCommonWords("apple banana apple cherry apple banana", 2); !reflect.DeepEqual(got, want) {
		t.Errorf("MostCommonWords = %v, want %v", got, want)
	}
	if got := MostCommonWords("a b c d e f g", DefaultTopN); len(got) != 5 {
		t.Errorf("expected 5 pairs, got %d", len(got))
	}
}

func TestCountWordsOptions(t *testing.T) {
	text := "It's a well-known fact."

	if got := CountWords(text); got != len(Normalize(text)) {
		t.Errorf("CountWords = %d, want %d", got, len(Normalize(text)))
	}
	if got := CountWords(text, WithStripPunctuation()); got != 4 {
		t.Errorf("CountWords with strip = %d, want 4", got)
	}
	if got := CountWords(text, WithIgnoreShort(1)); got != 4 {
		t.Errorf("CountWords ignoring short = %d, want 4", got)
	}
}

func TestSummaryMatchesFunctions(t *testing.T) {
	text := "Tokenizers split text. Counters count words! Do they agree?"
	summary := TextSummary(text)

	if summary.WordCount != CountWords(text) {
		t.Errorf("word count %d != %d", summary.WordCount, CountWords(text))
	}
	if summary.SentenceCount != SentenceCount(text) {
		t.Errorf("sentence count %d != %d", summary.SentenceCount, SentenceCount(text))
	}
	if summary.ReadingDifficulty != ReadingDifficulty(text) {
		t.Errorf("difficulty %v != %v", summary.ReadingDifficulty, ReadingDifficulty(text))
	}
	if !reflect.DeepEqual(summary.WordFrequencies.Map(), WordFrequencies(text).Map()) {
		t.Errorf("frequencies differ")
	}

	tok := NewTokenizer(text)
	if got := tok.GetStats().UniqueTokens; got != CountUniqueWords(text) {
		t.Errorf("tokenizer unique tokens %d != %d", got, CountUniqueWords(text))
	}
}

func TestConvertToUTF8(t *testing.T) {
	got, err := ConvertToUTF8([]byte("caf\x82 cr\x8ame"), "cp437")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "café crème" {
		t.Errorf("expected %q, got %q", "café crème", got)
	}

	if _, err := ConvertToUTF8([]byte("x"), "klingon"); !errors.Is(err, ErrUnsupportedEncoding) {
		t.Errorf("expected ErrUnsupportedEncoding, got %v", err)
	}
}
