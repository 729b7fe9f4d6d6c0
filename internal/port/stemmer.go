package port

// Stemmer maps a surface word to its canonical root form.
type Stemmer interface {
	Stem(word string) (string, error)
}

// StopWords is a membership test against a language's stop-word list.
type StopWords interface {
	Contains(word string) bool
}
