package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/arcade.yaml
var defaultArcadeYAML []byte

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultArcadeYAML
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Memory: MemoryConfig{
			Symbols:  []string{"🍉", "🍋", "🍓", "🍇", "🍍", "🥝"},
			FlipBack: 700 * time.Millisecond,
		},
		GuessNumber: GuessNumberConfig{Min: 1, Max: 100},
		ColorMatch:  ColorMatchConfig{NextRound: 500 * time.Millisecond},
		Reaction: ReactionConfig{
			MinWait: time.Second,
			MaxWait: 4 * time.Second,
		},
		Simon: SimonConfig{
			Gap:       300 * time.Millisecond,
			Flash:     400 * time.Millisecond,
			Press:     200 * time.Millisecond,
			NextRound: time.Second,
		},
		WordScramble: WordScrambleConfig{
			Words:    []string{"APPLE", "ORANGE", "BANANA", "GRAPE", "MANGO", "PEACH", "CHERRY", "MELON", "LEMON", "BERRY"},
			NextWord: 500 * time.Millisecond,
			Reveal:   time.Second,
		},
		Dice: DiceConfig{Rolling: 500 * time.Millisecond},
		Whack: WhackConfig{
			Holes:       9,
			MoleEvery:   time.Second,
			MoleVisible: 800 * time.Millisecond,
			HitFlash:    200 * time.Millisecond,
			Round:       30 * time.Second,
		},
		Math: MathConfig{
			MaxOperand:  20,
			NextCorrect: 500 * time.Millisecond,
			NextWrong:   time.Second,
		},
		Snake: SnakeConfig{Size: 12, Tick: 150 * time.Millisecond},
		Typing: TypingConfig{Texts: []string{
			"The quick brown fox jumps over the lazy dog",
			"Programming is the art of telling another human what one wants the computer to do",
			"Practice makes perfect when it comes to typing speed",
			"Go is a small language with a large standard library",
			"Learning to type faster will boost your productivity",
		}},
		Connect: ConnectConfig{Rows: 6, Cols: 7},
		Hangman: HangmanConfig{
			Words: []string{"JAVASCRIPT", "PYTHON", "COMPUTER", "KEYBOARD", "MONITOR", "PROGRAM", "FUNCTION", "VARIABLE", "ALGORITHM", "DATABASE"},
			Lives: 6,
		},
		Quiz: QuizConfig{Questions: []Question{
			{Text: "What is the capital of France?", Options: []string{"London", "Berlin", "Paris", "Madrid"}, Answer: 2},
			{Text: "Which planet is known as the Red Planet?", Options: []string{"Venus", "Mars", "Jupiter", "Saturn"}, Answer: 1},
			{Text: "What is 2 + 2?", Options: []string{"3", "4", "5", "6"}, Answer: 1},
			{Text: "Who painted the Mona Lisa?", Options: []string{"Van Gogh", "Da Vinci", "Picasso", "Monet"}, Answer: 1},
			{Text: "What is the largest ocean?", Options: []string{"Atlantic", "Indian", "Arctic", "Pacific"}, Answer: 3},
			{Text: "How many continents are there?", Options: []string{"5", "6", "7", "8"}, Answer: 2},
			{Text: "What is the smallest prime number?", Options: []string{"0", "1", "2", "3"}, Answer: 2},
			{Text: "Which language has goroutines?", Options: []string{"Python", "Go", "C++", "Java"}, Answer: 1},
		}},
		Pong: PongConfig{
			Width:        40,
			Height:       16,
			PaddleHeight: 4,
			PaddleStep:   1,
			BallSpeedX:   0.4,
			BallSpeedY:   0.25,
			Tick:         16 * time.Millisecond,
		},
		Clicker: ClickerConfig{Round: 10 * time.Second},
		T2048:   T2048Config{Target: 2048, Spawn4Chance: 0.1},
	}
}
