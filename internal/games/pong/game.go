// Package pong implements two-player Pong on one keyboard. The left paddle
// uses w/s, the right paddle the up/down arrows.
package pong

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/minigame-arcade/internal/config"
	"github.com/vovakirdan/minigame-arcade/internal/core"
	"github.com/vovakirdan/minigame-arcade/internal/lifecycle"
)

// Key identifies the game in the catalog.
const Key = "pong"

const (
	roleCourt = "court"
	roleScore = "score"
	roleStart = "start"
)

// Visual characters for rendering
const (
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '│'
)

// Template returns the game's markup for a width×height court.
func Template(width, height int) core.Template {
	return core.Template{
		Name: Key,
		Roles: []core.RoleSpec{
			{Name: lifecycle.RoleStatus, Kind: core.KindText},
			{Name: roleCourt, Kind: core.KindSurface, Width: width, Height: height},
			{Name: roleScore, Label: "Score", Kind: core.KindText},
			{Name: roleStart, Kind: core.KindButton, Text: "Start"},
		},
	}
}

type state struct {
	cfg     config.PongConfig
	rng     *rand.Rand
	running bool

	// Paddles (top row of each)
	paddle1Y int
	paddle2Y int

	// Ball
	ballX  float64
	ballY  float64
	ballVX float64
	ballVY float64

	score1 int
	score2 int
}

// Definition returns the game definition.
func Definition(cfg config.PongConfig) *lifecycle.Definition {
	return &lifecycle.Definition{
		Key:      Key,
		Title:    "Pong",
		Summary:  "Two players, one ball. W/S vs arrows.",
		Template: Template(cfg.Width, cfg.Height),
		NewState: lifecycle.Init(func(rng *rand.Rand) *state {
			s := &state{cfg: cfg, rng: rng, ballVX: cfg.BallSpeedX, ballVY: cfg.BallSpeedY}
			s.paddle1Y = (cfg.Height - cfg.PaddleHeight) / 2
			s.paddle2Y = s.paddle1Y
			s.ballX, s.ballY = s.center()
			return s
		}),
		Bindings: []lifecycle.Binding{
			lifecycle.On(roleStart, core.EventClick, begin),
			lifecycle.OnDocument(core.EventKeyDown, movePaddle),
		},
		Mount: lifecycle.MountWith(func(s *state, ctx *lifecycle.Context) {
			ctx.SetText(roleScore, "0 : 0")
			ctx.SetStatus("Press Start to play!")
			render(s, ctx)
		}),
	}
}

func (s *state) center() (float64, float64) {
	return float64(s.cfg.Width) / 2, float64(s.cfg.Height) / 2
}

// paddle columns
func (s *state) leftX() int  { return 1 }
func (s *state) rightX() int { return s.cfg.Width - 2 }

func begin(s *state, ctx *lifecycle.Context, _ core.Event) {
	if s.running {
		return
	}
	s.running = true
	s.score1, s.score2 = 0, 0
	ctx.SetText(roleScore, "0 : 0")
	s.resetBall()
	ctx.SetStatus("Game started!")
	ctx.Every(s.cfg.Tick, func() { step(s, ctx) })
}

func movePaddle(s *state, ctx *lifecycle.Context, ev core.Event) {
	if !s.running {
		return
	}
	top := s.cfg.Height - s.cfg.PaddleHeight
	switch ev.Key {
	case "w":
		s.paddle1Y = core.Clamp(s.paddle1Y-s.cfg.PaddleStep, 0, top)
	case "s":
		s.paddle1Y = core.Clamp(s.paddle1Y+s.cfg.PaddleStep, 0, top)
	case core.KeyArrowUp:
		s.paddle2Y = core.Clamp(s.paddle2Y-s.cfg.PaddleStep, 0, top)
	case core.KeyArrowDown:
		s.paddle2Y = core.Clamp(s.paddle2Y+s.cfg.PaddleStep, 0, top)
	default:
		return
	}
	render(s, ctx)
}

// resetBall serves from the center toward the player who just conceded.
func (s *state) resetBall() {
	s.ballX, s.ballY = s.center()
	s.ballVX = -s.ballVX
	s.ballVY = (s.rng.Float64()*2 - 1) * s.cfg.BallSpeedY
}

func (s *state) covers(paddleY int) bool {
	y := int(s.ballY)
	return y >= paddleY && y < paddleY+s.cfg.PaddleHeight
}

func step(s *state, ctx *lifecycle.Context) {
	s.ballX += s.ballVX
	s.ballY += s.ballVY

	// Bounce off top/bottom walls
	bottom := float64(s.cfg.Height - 1)
	if s.ballY <= 0 {
		s.ballY = -s.ballY
		s.ballVY = -s.ballVY
	} else if s.ballY >= bottom {
		s.ballY = 2*bottom - s.ballY
		s.ballVY = -s.ballVY
	}

	left, right := float64(s.leftX()+1), float64(s.rightX())
	if s.ballVX < 0 && s.ballX <= left && s.ballX > left-1 && s.covers(s.paddle1Y) {
		s.ballX = left
		s.ballVX = -s.ballVX
	}
	if s.ballVX > 0 && s.ballX >= right && s.ballX < right+1 && s.covers(s.paddle2Y) {
		s.ballX = right - 1
		s.ballVX = -s.ballVX
	}

	switch {
	case s.ballX < 0:
		s.score2++
		s.resetBall()
	case s.ballX >= float64(s.cfg.Width):
		s.score1++
		s.resetBall()
	}
	ctx.SetText(roleScore, fmt.Sprintf("%d : %d", s.score1, s.score2))
	render(s, ctx)
}

func render(s *state, ctx *lifecycle.Context) {
	ctx.El(roleCourt).Draw(func(dst *core.Screen) {
		dst.Clear()
		cx := dst.Width() / 2
		for y := 0; y < dst.Height(); y += 2 {
			dst.Set(cx, y, NetChar, core.ColorGray)
		}
		for i := range s.cfg.PaddleHeight {
			dst.Set(s.leftX(), s.paddle1Y+i, PaddleChar, core.ColorCyan)
			dst.Set(s.rightX(), s.paddle2Y+i, PaddleChar, core.ColorCyan)
		}
		dst.Set(int(s.ballX), int(s.ballY), BallChar, core.ColorRed)
	})
}
