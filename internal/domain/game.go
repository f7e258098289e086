package domain

// GameMode identifies one of the mini-games
type GameMode int

const (
	GameNone GameMode = iota
	GameWordLadder
	GameWordBuilder
	GameDefinitionDuel
	GameWordDetective
	GameMemoryMatch
	GameScramble
	GameHangman
	GameTypingRace
	GameSillySentence
	GameFlashcards
	GameQuiz
	GameListenType
	GameMatchDefinition
	GameReverseDefinition
)

// GameOption is a game menu entry
type GameOption struct {
	Mode  GameMode
	Label string
}

// GameMenu lists the games in the order they are offered
var GameMenu = []GameOption{
	{Mode: GameWordLadder, Label: "🧠 Word Ladder"},
	{Mode: GameWordBuilder, Label: "🧩 Word Builder"},
	{Mode: GameDefinitionDuel, Label: "🎯 Definition Duel"},
	{Mode: GameWordDetective, Label: "🕵️‍♂️ Word Detective"},
	{Mode: GameMemoryMatch, Label: "🃏 Memory Match"},
	{Mode: GameScramble, Label: "🔀 Scramble"},
	{Mode: GameFlashcards, Label: "📚 Flashcards"},
	{Mode: GameTypingRace, Label: "⌨️ Typing Race"},
	{Mode: GameQuiz, Label: "🎓 Spelling Quiz"},
	{Mode: GameHangman, Label: "🤔 Hangman"},
	{Mode: GameListenType, Label: "🔊 Listen & Type"},
	{Mode: GameMatchDefinition, Label: "📖 Match Definition"},
	{Mode: GameReverseDefinition, Label: "✍️ Reverse Definition"},
	{Mode: GameSillySentence, Label: "🤪 Silly Sentence"},
}

// Label returns the menu label of the mode, or "" for unknown modes
func (m GameMode) Label() string {
	for _, opt := range GameMenu {
		if opt.Mode == m {
			return opt.Label
		}
	}
	return ""
}
