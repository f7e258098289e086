package domain

// DefaultAvatar is shown until the user picks one
const DefaultAvatar = "🧑‍🎓"

// Avatars is the fixed avatar catalogue
var Avatars = []string{"🧑‍🎓", "👩‍🚀", "🕵️‍♀️", "🧑‍🎨", "🥷", "🧙‍♂️", "🦸‍♀️", "🤖"}

// IsAvatar reports whether a is part of the catalogue
func IsAvatar(a string) bool {
	for _, known := range Avatars {
		if known == a {
			return true
		}
	}
	return false
}

// View is the screen a user currently sees
type View string

const (
	ViewWordInput View = "word_input"
	ViewGameMenu  View = "game_menu"
	ViewGame      View = "game"
)
