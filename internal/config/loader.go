package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "arcade.yaml"

// Load loads the arcade configuration.
// Search order: customPath -> ~/.arcade/configs/arcade.yaml -> ./configs/arcade.yaml -> embedded default
//
// Files only need to set the values they change; everything else keeps its
// default.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(fileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", fileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultArcadeYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes a YAML document over the built-in defaults and validates
// the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("cannot parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Validate rejects configurations the games cannot run with.
func (c Config) Validate() error {
	var errs []error
	positive := func(name string, v any) {
		switch n := v.(type) {
		case int:
			if n <= 0 {
				errs = append(errs, fmt.Errorf("%s must be positive", name))
			}
		case float64:
			if n <= 0 {
				errs = append(errs, fmt.Errorf("%s must be positive", name))
			}
		case interface{ Nanoseconds() int64 }:
			if n.Nanoseconds() <= 0 {
				errs = append(errs, fmt.Errorf("%s must be positive", name))
			}
		}
	}
	nonEmpty := func(name string, n int) {
		if n == 0 {
			errs = append(errs, fmt.Errorf("%s must not be empty", name))
		}
	}

	nonEmpty("memory.symbols", len(c.Memory.Symbols))
	positive("memory.flip_back", c.Memory.FlipBack)
	if c.GuessNumber.Min < 1 || c.GuessNumber.Max <= c.GuessNumber.Min {
		errs = append(errs, errors.New("guess_number range must satisfy 1 <= min < max"))
	}
	positive("color_match.next_round", c.ColorMatch.NextRound)
	positive("reaction.min_wait", c.Reaction.MinWait)
	if c.Reaction.MaxWait < c.Reaction.MinWait {
		errs = append(errs, errors.New("reaction.max_wait must not be below min_wait"))
	}
	positive("simon.gap", c.Simon.Gap)
	positive("simon.flash", c.Simon.Flash)
	positive("simon.press", c.Simon.Press)
	positive("simon.next_round", c.Simon.NextRound)
	nonEmpty("word_scramble.words", len(c.WordScramble.Words))
	positive("word_scramble.next_word", c.WordScramble.NextWord)
	positive("word_scramble.reveal", c.WordScramble.Reveal)
	positive("dice.rolling", c.Dice.Rolling)
	positive("whack.holes", c.Whack.Holes)
	positive("whack.mole_every", c.Whack.MoleEvery)
	positive("whack.mole_visible", c.Whack.MoleVisible)
	positive("whack.hit_flash", c.Whack.HitFlash)
	positive("whack.round", c.Whack.Round)
	positive("math.max_operand", c.Math.MaxOperand)
	positive("math.next_correct", c.Math.NextCorrect)
	positive("math.next_wrong", c.Math.NextWrong)
	if c.Snake.Size < 4 {
		errs = append(errs, errors.New("snake.size must be at least 4"))
	}
	positive("snake.tick", c.Snake.Tick)
	nonEmpty("typing.texts", len(c.Typing.Texts))
	if c.Connect.Rows < 4 || c.Connect.Cols < 4 {
		errs = append(errs, errors.New("connect board must be at least 4x4"))
	}
	nonEmpty("hangman.words", len(c.Hangman.Words))
	positive("hangman.lives", c.Hangman.Lives)
	nonEmpty("quiz.questions", len(c.Quiz.Questions))
	for i, q := range c.Quiz.Questions {
		if q.Answer < 0 || q.Answer >= len(q.Options) {
			errs = append(errs, fmt.Errorf("quiz.questions[%d].answer out of range", i))
		}
	}
	positive("pong.width", c.Pong.Width)
	positive("pong.height", c.Pong.Height)
	positive("pong.paddle_step", c.Pong.PaddleStep)
	positive("pong.ball_speed_x", c.Pong.BallSpeedX)
	positive("pong.tick", c.Pong.Tick)
	if c.Pong.PaddleHeight <= 0 || c.Pong.PaddleHeight >= c.Pong.Height {
		errs = append(errs, errors.New("pong.paddle_height must be between 1 and height-1"))
	}
	positive("clicker.round", c.Clicker.Round)
	positive("t2048.target", c.T2048.Target)
	if c.T2048.Spawn4Chance < 0 || c.T2048.Spawn4Chance > 1 {
		errs = append(errs, errors.New("t2048.spawn4_chance must be within [0, 1]"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
