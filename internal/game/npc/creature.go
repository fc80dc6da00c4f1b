// Package npc holds the creatures that occupy rooms and their conversion into
// corpse remains.
package npc

import (
	"github.com/cory-johannsen/advgame/internal/game/character"
)

// Creature is a hostile occupant of a room.
//
// Invariant: once converted, a Creature is never alive again and never
// converted a second time.
type Creature struct {
	character.Sheet
	ID          string
	Title       string
	Description string

	converted bool
}

// Converted reports whether the creature has already become a corpse.
func (c *Creature) Converted() bool { return c.converted }

// HealthDescription returns a coarse description of remaining hit points.
func (c *Creature) HealthDescription() string {
	if c.MaxHitPoints <= 0 || c.HitPoints <= 0 {
		return "dead"
	}
	pct := float64(c.HitPoints) / float64(c.MaxHitPoints)
	switch {
	case pct >= 1.0:
		return "unharmed"
	case pct >= 0.75:
		return "barely scratched"
	case pct >= 0.50:
		return "lightly wounded"
	case pct >= 0.25:
		return "moderately wounded"
	default:
		return "heavily wounded"
	}
}
