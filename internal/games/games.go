// Package games assembles the arcade's catalog from the individual game
// packages.
package games

import (
	"github.com/vovakirdan/minigame-arcade/internal/config"
	"github.com/vovakirdan/minigame-arcade/internal/games/clicker"
	"github.com/vovakirdan/minigame-arcade/internal/games/colormatch"
	"github.com/vovakirdan/minigame-arcade/internal/games/connect"
	"github.com/vovakirdan/minigame-arcade/internal/games/dice"
	"github.com/vovakirdan/minigame-arcade/internal/games/guessnumber"
	"github.com/vovakirdan/minigame-arcade/internal/games/hangman"
	"github.com/vovakirdan/minigame-arcade/internal/games/mathquiz"
	"github.com/vovakirdan/minigame-arcade/internal/games/memory"
	"github.com/vovakirdan/minigame-arcade/internal/games/pong"
	"github.com/vovakirdan/minigame-arcade/internal/games/quiz"
	"github.com/vovakirdan/minigame-arcade/internal/games/reaction"
	"github.com/vovakirdan/minigame-arcade/internal/games/rps"
	"github.com/vovakirdan/minigame-arcade/internal/games/simon"
	"github.com/vovakirdan/minigame-arcade/internal/games/snake"
	"github.com/vovakirdan/minigame-arcade/internal/games/t2048"
	"github.com/vovakirdan/minigame-arcade/internal/games/tictactoe"
	"github.com/vovakirdan/minigame-arcade/internal/games/typing"
	"github.com/vovakirdan/minigame-arcade/internal/games/whack"
	"github.com/vovakirdan/minigame-arcade/internal/games/wordscramble"
	"github.com/vovakirdan/minigame-arcade/internal/lifecycle"
	"github.com/vovakirdan/minigame-arcade/internal/registry"
)

// Definitions returns every game in menu order.
func Definitions(cfg config.Config) []*lifecycle.Definition {
	return []*lifecycle.Definition{
		tictactoe.Definition(),
		rps.Definition(),
		memory.Definition(cfg.Memory),
		guessnumber.Definition(cfg.GuessNumber),
		colormatch.Definition(cfg.ColorMatch),
		reaction.Definition(cfg.Reaction),
		simon.Definition(cfg.Simon),
		wordscramble.Definition(cfg.WordScramble),
		dice.Definition(cfg.Dice),
		whack.Definition(cfg.Whack),
		mathquiz.Definition(cfg.Math),
		snake.Definition(cfg.Snake),
		typing.Definition(cfg.Typing),
		connect.Definition(cfg.Connect),
		hangman.Definition(cfg.Hangman),
		quiz.Definition(cfg.Quiz),
		pong.Definition(cfg.Pong),
		clicker.Definition(cfg.Clicker),
		t2048.Definition(cfg.T2048),
	}
}

// Catalog registers every game into a new catalog.
func Catalog(cfg config.Config) *registry.Catalog {
	c := registry.New()
	for _, def := range Definitions(cfg) {
		c.Register(def)
	}
	return c
}
