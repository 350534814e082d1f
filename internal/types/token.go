package types

/////////////////////////////////////////////////////////////////////////////
// TOKEN
/////////////////////////////////////////////////////////////////////////////

// Token is a normalized word: lowercase, made only of ASCII letters and
// apostrophes.
type Token struct {
	Value string `json:"value"`
	Pos   int    `json:"pos"`
}

func (t Token) String() string {
	return t.Value
}

// Len returns the token length in characters, apostrophes included.
func (t Token) Len() int {
	return len(t.Value)
}

/////////////////////////////////////////////////////////////////////////////
// WORD COUNT
/////////////////////////////////////////////////////////////////////////////

// WordCount is one entry of a frequency ranking.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

/////////////////////////////////////////////////////////////////////////////
// TOKEN STATS
/////////////////////////////////////////////////////////////////////////////

type TokenStats struct {
	TotalTokens     int         `json:"total_tokens"`
	UniqueTokens    int         `json:"unique_tokens"`
	TotalTextLength int         `json:"total_text_length"`
	InputSize       int         `json:"input_size"`
	LongestToken    string      `json:"longest_token,omitempty"`
	TokensByLength  map[int]int `json:"tokens_by_length"`
}
