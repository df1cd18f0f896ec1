package anime

import (
	"fmt"
	"time"

	"okazu/internal/render"
)

// MinInterval is the smallest animation interval callers may configure.
// Enforced by the CLI layer before a plan reaches the sequencer.
const MinInterval = 10 * time.Millisecond

// Target is the terminal a sequence is written to.
type Target interface {
	// Width reports the current terminal width in columns.
	Width() int
	// WriteLine writes one line followed by a newline.
	WriteLine(text string) error
	// ClearScreen clears the terminal and homes the cursor.
	ClearScreen() error
}

// Plan is one fully-validated run: the three ordered lists, the split
// policy, and the animation interval. A zero interval means static mode.
type Plan struct {
	PreCaptions   []string
	SideDishes    []string
	AfterCaptions []string
	Split         render.Policy
	Interval      time.Duration
}

// Sequencer writes plans to a target.
type Sequencer struct {
	target Target
	sleep  func(time.Duration)
}

// New returns a sequencer writing to target.
func New(target Target) *Sequencer {
	return &Sequencer{
		target: target,
		sleep:  time.Sleep,
	}
}

// Run plays a plan to completion. The first write or clear failure aborts
// the run; nothing already on screen is rolled back.
func (s *Sequencer) Run(plan Plan) error {
	animated := plan.Interval > 0
	width := s.target.Width()
	blank := render.Frame("", width, plan.Split)

	if animated {
		if err := s.target.ClearScreen(); err != nil {
			return fmt.Errorf("clear screen: %w", err)
		}
	}

	// True whenever something reached the screen since the last clear.
	// Gates the boundary transitions so an empty leading phase does not
	// cause a redundant clear.
	printed := false

	for i, caption := range plan.PreCaptions {
		if err := s.writeBlock(blank, render.Caption(caption)); err != nil {
			return err
		}
		printed = true
		if animated && i < len(plan.PreCaptions)-1 {
			if err := s.pauseAndClear(plan.Interval, &printed); err != nil {
				return err
			}
		}
	}

	if animated && printed && len(plan.SideDishes) > 0 {
		if err := s.pauseAndClear(plan.Interval, &printed); err != nil {
			return err
		}
	}

	for i, dish := range plan.SideDishes {
		frame := render.Frame(dish, width, plan.Split)
		if err := s.writeBlock(frame, render.BlankCaption()); err != nil {
			return err
		}
		printed = true
		if animated && i < len(plan.SideDishes)-1 {
			if err := s.pauseAndClear(plan.Interval, &printed); err != nil {
				return err
			}
		}
	}

	if animated && printed && len(plan.AfterCaptions) > 0 {
		if err := s.pauseAndClear(plan.Interval, &printed); err != nil {
			return err
		}
	}

	for i, caption := range plan.AfterCaptions {
		if err := s.writeBlock(blank, render.Caption(caption)); err != nil {
			return err
		}
		if animated && i < len(plan.AfterCaptions)-1 {
			if err := s.pauseAndClear(plan.Interval, &printed); err != nil {
				return err
			}
		}
	}

	return nil
}

// Say is the degenerate one-shot entry point: one dragon frame plus an
// optional caption, no phases, no clears.
func (s *Sequencer) Say(dish, caption string, policy render.Policy) error {
	frame := render.Frame(dish, s.target.Width(), policy)
	if caption == "" {
		return s.writeBlock(frame, render.BlankCaption())
	}
	return s.writeBlock(frame, render.Caption(caption))
}

func (s *Sequencer) writeBlock(frame []string, caption string) error {
	for _, line := range frame {
		if err := s.target.WriteLine(line); err != nil {
			return fmt.Errorf("write frame: %w", err)
		}
	}
	if err := s.target.WriteLine(caption); err != nil {
		return fmt.Errorf("write caption: %w", err)
	}
	return nil
}

func (s *Sequencer) pauseAndClear(interval time.Duration, printed *bool) error {
	s.sleep(interval)
	if err := s.target.ClearScreen(); err != nil {
		return fmt.Errorf("clear screen: %w", err)
	}
	*printed = false
	return nil
}
