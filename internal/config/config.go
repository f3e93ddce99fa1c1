// Package config provides YAML-based configuration for the arcade: every
// delay, round length, board size and word bank the games use.
package config

import "time"

// Config is the full arcade configuration.
type Config struct {
	Memory       MemoryConfig       `yaml:"memory"`
	GuessNumber  GuessNumberConfig  `yaml:"guess_number"`
	ColorMatch   ColorMatchConfig   `yaml:"color_match"`
	Reaction     ReactionConfig     `yaml:"reaction"`
	Simon        SimonConfig        `yaml:"simon"`
	WordScramble WordScrambleConfig `yaml:"word_scramble"`
	Dice         DiceConfig         `yaml:"dice"`
	Whack        WhackConfig        `yaml:"whack"`
	Math         MathConfig         `yaml:"math"`
	Snake        SnakeConfig        `yaml:"snake"`
	Typing       TypingConfig       `yaml:"typing"`
	Connect      ConnectConfig      `yaml:"connect"`
	Hangman      HangmanConfig      `yaml:"hangman"`
	Quiz         QuizConfig         `yaml:"quiz"`
	Pong         PongConfig         `yaml:"pong"`
	Clicker      ClickerConfig      `yaml:"clicker"`
	T2048        T2048Config        `yaml:"t2048"`
}

// MemoryConfig configures Memory Match.
type MemoryConfig struct {
	Symbols  []string      `yaml:"symbols"`
	FlipBack time.Duration `yaml:"flip_back"`
}

// GuessNumberConfig configures Guess the Number.
type GuessNumberConfig struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// ColorMatchConfig configures Color Match.
type ColorMatchConfig struct {
	NextRound time.Duration `yaml:"next_round"`
}

// ReactionConfig configures Reaction Time.
type ReactionConfig struct {
	MinWait time.Duration `yaml:"min_wait"`
	MaxWait time.Duration `yaml:"max_wait"`
}

// SimonConfig configures Simon Says.
type SimonConfig struct {
	Gap       time.Duration `yaml:"gap"`        // Pause before each pad lights
	Flash     time.Duration `yaml:"flash"`      // How long a pad stays lit during playback
	Press     time.Duration `yaml:"press"`      // Flash on player input
	NextRound time.Duration `yaml:"next_round"` // Delay after a completed sequence
}

// WordScrambleConfig configures Word Scramble.
type WordScrambleConfig struct {
	Words    []string      `yaml:"words"`
	NextWord time.Duration `yaml:"next_word"`
	Reveal   time.Duration `yaml:"reveal"`
}

// DiceConfig configures Dice Roller.
type DiceConfig struct {
	Rolling time.Duration `yaml:"rolling"`
}

// WhackConfig configures Whack-a-Mole.
type WhackConfig struct {
	Holes       int           `yaml:"holes"`
	MoleEvery   time.Duration `yaml:"mole_every"`
	MoleVisible time.Duration `yaml:"mole_visible"`
	HitFlash    time.Duration `yaml:"hit_flash"`
	Round       time.Duration `yaml:"round"`
}

// MathConfig configures Math Quiz.
type MathConfig struct {
	MaxOperand  int           `yaml:"max_operand"`
	NextCorrect time.Duration `yaml:"next_correct"`
	NextWrong   time.Duration `yaml:"next_wrong"`
}

// SnakeConfig configures Snake.
type SnakeConfig struct {
	Size int           `yaml:"size"`
	Tick time.Duration `yaml:"tick"`
}

// TypingConfig configures Typing Speed Test.
type TypingConfig struct {
	Texts []string `yaml:"texts"`
}

// ConnectConfig configures Connect Four.
type ConnectConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// HangmanConfig configures Hangman.
type HangmanConfig struct {
	Words []string `yaml:"words"`
	Lives int      `yaml:"lives"`
}

// Question is one quiz entry. Answer indexes Options.
type Question struct {
	Text    string   `yaml:"q"`
	Options []string `yaml:"options"`
	Answer  int      `yaml:"answer"`
}

// QuizConfig configures Quiz Trivia.
type QuizConfig struct {
	Questions []Question `yaml:"questions"`
}

// PongConfig configures Pong. Sizes and speeds are in terminal cells.
type PongConfig struct {
	Width        int           `yaml:"width"`
	Height       int           `yaml:"height"`
	PaddleHeight int           `yaml:"paddle_height"`
	PaddleStep   int           `yaml:"paddle_step"`
	BallSpeedX   float64       `yaml:"ball_speed_x"`
	BallSpeedY   float64       `yaml:"ball_speed_y"`
	Tick         time.Duration `yaml:"tick"`
}

// ClickerConfig configures Clicker Game.
type ClickerConfig struct {
	Round time.Duration `yaml:"round"`
}

// T2048Config configures 2048.
type T2048Config struct {
	Target       int     `yaml:"target"`
	Spawn4Chance float64 `yaml:"spawn4_chance"`
}
