package ecosnake

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/vovakirdan/ecosnake/internal/config"
	"github.com/vovakirdan/ecosnake/internal/core"
)

// Outcome is the lifecycle state of a session. Both terminal outcomes are
// absorbing.
type Outcome int

const (
	OutcomeRunning Outcome = iota
	OutcomeSelfCollision
	OutcomeAborted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRunning:
		return "running"
	case OutcomeSelfCollision:
		return "self_collision"
	case OutcomeAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Terminal reports whether the session has ended.
func (o Outcome) Terminal() bool {
	return o != OutcomeRunning
}

// Command is the per-frame input to a session.
type Command int

const (
	CommandNone Command = iota
	CommandUp
	CommandDown
	CommandLeft
	CommandRight
	CommandAbort
)

// Direction returns the direction a steering command asks for, or the zero
// Direction.
func (c Command) Direction() Direction {
	switch c {
	case CommandUp:
		return DirUp
	case CommandDown:
		return DirDown
	case CommandLeft:
		return DirLeft
	case CommandRight:
		return DirRight
	default:
		return Direction{}
	}
}

// Options configures a new session.
type Options struct {
	Rules      config.Config          // Validated rule profile
	Difficulty config.DifficultyEntry // Chosen preset
	Player     string
	Seed       int64
	TickRate   int            // Rate Step is called at; zero means the profile's frame rate
	Sink       core.ScoreSink // Receives the final score; may be nil
}

// Session drives one game from start to a terminal outcome. It is not safe
// for concurrent use: the platform calls Step once per frame from a single
// goroutine and buffers input between frames.
type Session struct {
	rules      config.Config
	field      Playfield
	collector  *Collector
	spawner    *Spawner
	item       Item
	difficulty config.DifficultyEntry
	player     string
	id         string
	sink       core.ScoreSink

	score       int
	accumulator int
	moveEvery   int
	frame       uint64
	outcome     Outcome
	moved       bool
	consumed    bool
}

// NewSession starts a session with a one-cell collector and a fresh item.
func NewSession(opts Options) (*Session, error) {
	if err := opts.Rules.Validate(); err != nil {
		return nil, err
	}
	speed := opts.Difficulty.Speed
	if speed < 1 || speed > opts.Rules.FrameRate {
		return nil, fmt.Errorf("ecosnake: speed %d must be within [1, %d]", speed, opts.Rules.FrameRate)
	}

	paced := opts.Rules
	if opts.TickRate > 0 {
		paced.FrameRate = opts.TickRate
	}

	field := NewPlayfield(opts.Rules.Grid)
	rng := rand.New(rand.NewSource(opts.Seed))

	s := &Session{
		rules:      opts.Rules,
		field:      field,
		collector:  NewCollector(field),
		spawner:    NewSpawner(field, opts.Rules, rng),
		difficulty: opts.Difficulty,
		player:     opts.Player,
		id:         uuid.NewString(),
		sink:       opts.Sink,
		moveEvery:  paced.MoveEvery(speed),
	}
	s.item = s.spawner.Spawn()
	return s, nil
}

// Step advances the session by one frame.
func (s *Session) Step(cmd Command) Snapshot {
	if s.outcome.Terminal() {
		return s.Snapshot()
	}
	s.frame++
	s.moved = false
	s.consumed = false

	if cmd == CommandAbort {
		s.outcome = OutcomeAborted
		return s.Snapshot()
	}

	s.collector.SetDirection(cmd.Direction())

	var dropped Position
	s.accumulator++
	if s.accumulator >= s.moveEvery {
		s.accumulator = 0
		dropped = s.collector.Move()
		s.moved = true

		if s.collector.CheckSelfCollision(s.rules.Tolerance.Collision, s.rules.Tolerance.Neck) {
			s.outcome = OutcomeSelfCollision
			s.emit()
			return s.Snapshot()
		}
	}

	head := s.collector.Head()
	tol := s.rules.Tolerance.Consumption
	if core.Within(head.X, head.Y, s.item.Position.X, s.item.Position.Y, tol) {
		s.score++
		s.consumed = true
		if s.moved {
			s.collector.Grow(dropped)
		} else {
			s.collector.Grow(s.collector.Tail())
		}
		s.item = s.spawner.Spawn()
	}

	return s.Snapshot()
}

// emit hands the final score to the sink. Called at most once, on the
// transition to SelfCollision.
func (s *Session) emit() {
	if s.sink == nil {
		return
	}
	s.sink.Record(core.ScoreRecord{
		Name:       s.player,
		Score:      s.score,
		Difficulty: s.difficulty.Label,
		SessionID:  s.id,
	})
}

// Outcome returns the current outcome.
func (s *Session) Outcome() Outcome { return s.outcome }

// Score returns the number of items collected.
func (s *Session) Score() int { return s.score }

// ID returns the session identifier attached to the score record.
func (s *Session) ID() string { return s.id }

// Playfield returns the grid the session runs on.
func (s *Session) Playfield() Playfield { return s.field }

// SpawnArea returns the item spawn rectangle in cells.
func (s *Session) SpawnArea() core.Rect { return s.spawner.Area() }
