package types

// Tokenizer turns its input into a word sequence.
type Tokenizer interface {
	Tokenize() []Token
}

// Tokenize with statistics and a frequency table
type TokenizerWithStats interface {
	Tokenizer
	GetStats() TokenStats
	Frequencies() *FrequencyTable
}
