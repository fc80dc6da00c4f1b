package world

import (
	"fmt"

	"github.com/cory-johannsen/advgame/internal/game/ruleset"
)

// Latch is the closed/locked pair shared by doors and chests.
//
// Invariant: Locked implies Closed.
type Latch struct {
	Closed bool
	Locked bool
}

// Check returns an ErrInvariant error if the latch is locked but open.
func (l *Latch) Check(what string) error {
	if l.Locked && !l.Closed {
		return fmt.Errorf("world: %s is locked but open: %w", what, ruleset.ErrInvariant)
	}
	return nil
}

// Open opens a closed, unlocked latch.
//
// Precondition: Closed && !Locked.
func (l *Latch) Open(what string) error {
	if err := l.Check(what); err != nil {
		return err
	}
	if !l.Closed || l.Locked {
		return fmt.Errorf("world: opening %s (closed=%t locked=%t): %w", what, l.Closed, l.Locked, ruleset.ErrMisuse)
	}
	l.Closed = false
	return nil
}

// Close closes an open latch.
//
// Precondition: !Closed.
func (l *Latch) Close(what string) error {
	if err := l.Check(what); err != nil {
		return err
	}
	if l.Closed {
		return fmt.Errorf("world: closing already closed %s: %w", what, ruleset.ErrMisuse)
	}
	l.Closed = true
	return nil
}

// Lock locks a closed, unlocked latch.
//
// Precondition: Closed && !Locked.
func (l *Latch) Lock(what string) error {
	if err := l.Check(what); err != nil {
		return err
	}
	if !l.Closed || l.Locked {
		return fmt.Errorf("world: locking %s (closed=%t locked=%t): %w", what, l.Closed, l.Locked, ruleset.ErrMisuse)
	}
	l.Locked = true
	return l.Check(what)
}

// Unlock unlocks a locked latch. Unlocking leaves it closed.
//
// Precondition: Locked.
func (l *Latch) Unlock(what string) error {
	if err := l.Check(what); err != nil {
		return err
	}
	if !l.Locked {
		return fmt.Errorf("world: unlocking unlocked %s: %w", what, ruleset.ErrMisuse)
	}
	l.Locked = false
	return l.Check(what)
}
