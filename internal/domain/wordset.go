package domain

import (
	"fmt"
	"time"
)

// DefinitionNotFound is used for every word the API could not define
const DefinitionNotFound = "Definition not found."

// Definitions maps a word to its short definition
type Definitions map[string]string

// Of returns the definition of word, or DefinitionNotFound
func (d Definitions) Of(word string) string {
	if def, ok := d[word]; ok && def != "" {
		return def
	}
	return DefinitionNotFound
}

// WordSet is a named, saved list of words
type WordSet struct {
	ID        int
	UserID    int64
	Name      string
	Words     []string
	CreatedAt time.Time
}

// DisplayString returns the button label for the set
func (s WordSet) DisplayString() string {
	return fmt.Sprintf("%s (%d)", s.Name, len(s.Words))
}
