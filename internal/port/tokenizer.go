package port

// SentenceTokenizer splits text into sentences in document order.
type SentenceTokenizer interface {
	Sentences(text string) []string
}

// WordTokenizer splits a sentence into word and punctuation tokens in
// document order.
type WordTokenizer interface {
	Words(sentence string) []string
}
