package gameserver

import (
	"github.com/cory-johannsen/advgame/internal/game/command"
	"github.com/cory-johannsen/advgame/internal/game/inventory"
	"github.com/cory-johannsen/advgame/internal/game/outcome"
	"github.com/cory-johannsen/advgame/internal/game/state"
	"github.com/cory-johannsen/advgame/internal/game/world"
)

// LockHandler handles OPEN, CLOSE, LOCK, UNLOCK and PICK LOCK on doors and
// chests.
type LockHandler struct{}

// NewLockHandler creates a LockHandler.
func NewLockHandler() *LockHandler {
	return &LockHandler{}
}

// latchTarget is a door or chest resolved from command arguments.
type latchTarget struct {
	latch    *world.Latch
	target   outcome.Target
	what     string
	key      inventory.KeyType
	closable bool
	lockable bool
}

// resolve finds the door or chest named in a. Anything else the name refers
// to is rejected with its category.
func (h *LockHandler) resolve(g *state.GameState, verb string, a command.Args) (latchTarget, outcome.Outcome, error) {
	sc, err := currentScene(g)
	if err != nil {
		return latchTarget{}, nil, err
	}
	if a.HasDoor {
		ref, rejection, err := resolveDoor(g, sc.room, a.Door)
		if err != nil || rejection != nil {
			return latchTarget{}, rejection, err
		}
		d := ref.Door
		t := latchTarget{
			latch:    &d.Latch,
			target:   outcome.DoorTarget(ref),
			what:     "door " + d.ID(),
			key:      d.Key,
			closable: d.Kind.Closeable(),
			lockable: d.Kind.Lockable(),
		}
		if !t.closable {
			return latchTarget{}, outcome.WrongCategory{Verb: verb, Target: t.target}, nil
		}
		return t, nil, nil
	}

	if c, ok := sc.containerNamed(a.Object); ok {
		t := latchTarget{
			latch:    &c.Latch,
			target:   outcome.ContainerTarget(c),
			what:     c.Kind.String() + " " + c.ID,
			key:      c.Key,
			closable: c.Kind.Closeable(),
			lockable: c.Kind.Lockable(),
		}
		if !t.closable {
			return latchTarget{}, outcome.WrongCategory{Verb: verb, Target: t.target}, nil
		}
		return t, nil, nil
	}
	if cr, ok := sc.creatureNamed(a.Object); ok {
		return latchTarget{}, outcome.WrongCategory{Verb: verb, Target: outcome.Target{Category: outcome.CategoryCreature, Title: cr.Title}}, nil
	}
	for _, items := range []*inventory.Collection{g.Character.Inventory, sc.room.Floor} {
		if m, ok := items.Lookup(a.Object); ok {
			return latchTarget{}, outcome.WrongCategory{Verb: verb, Target: outcome.Target{Category: outcome.CategoryItem, Title: m.Item.Title}}, nil
		}
	}
	return latchTarget{}, outcome.NotFound{Category: outcome.CategoryChest, Name: a.Object, Location: locRoom}, nil
}

func (h *LockHandler) run(g *state.GameState, verb string, a command.Args, act func(latchTarget) (outcome.Outcome, error)) ([]outcome.Outcome, error) {
	if _, err := requireCharacter(g); err != nil {
		return nil, err
	}
	t, rejection, err := h.resolve(g, verb, a)
	if err != nil {
		return nil, err
	}
	if rejection != nil {
		return one(rejection), nil
	}
	o, err := act(t)
	if err != nil {
		return nil, err
	}
	return one(o), nil
}

// Open opens a closed, unlocked door or chest.
func (h *LockHandler) Open(g *state.GameState, a command.Args) ([]outcome.Outcome, error) {
	return h.run(g, command.Open, a, func(t latchTarget) (outcome.Outcome, error) {
		switch {
		case !t.latch.Closed:
			return outcome.AlreadyOpen{Target: t.target}, nil
		case t.latch.Locked:
			return outcome.IsLocked{Target: t.target}, nil
		}
		if err := t.latch.Open(t.what); err != nil {
			return nil, err
		}
		return outcome.Opened{Target: t.target}, nil
	})
}

// Close closes an open door or chest.
func (h *LockHandler) Close(g *state.GameState, a command.Args) ([]outcome.Outcome, error) {
	return h.run(g, command.Close, a, func(t latchTarget) (outcome.Outcome, error) {
		if t.latch.Closed {
			return outcome.AlreadyClosed{Target: t.target}, nil
		}
		if err := t.latch.Close(t.what); err != nil {
			return nil, err
		}
		return outcome.Closed{Target: t.target}, nil
	})
}

// Lock locks a closed door or chest with a matching key.
//
// Precondition: the player carries a key of the target's key type.
// Postcondition: the target is closed and locked.
func (h *LockHandler) Lock(g *state.GameState, a command.Args) ([]outcome.Outcome, error) {
	return h.run(g, command.Lock, a, func(t latchTarget) (outcome.Outcome, error) {
		switch {
		case !t.lockable:
			return outcome.WrongCategory{Verb: command.Lock, Target: t.target}, nil
		case t.latch.Locked:
			return outcome.AlreadyLocked{Target: t.target}, nil
		case !t.latch.Closed:
			return outcome.MustCloseFirst{Target: t.target}, nil
		}
		key, ok := g.Character.Inventory.FindKey(t.key)
		if !ok {
			return outcome.NoKey{Target: t.target, Key: string(t.key)}, nil
		}
		if err := t.latch.Lock(t.what); err != nil {
			return nil, err
		}
		return outcome.Locked{Target: t.target, Key: key.Title}, nil
	})
}

// Unlock unlocks a locked door or chest with a matching key. It stays closed.
func (h *LockHandler) Unlock(g *state.GameState, a command.Args) ([]outcome.Outcome, error) {
	return h.run(g, command.Unlock, a, func(t latchTarget) (outcome.Outcome, error) {
		switch {
		case !t.lockable:
			return outcome.WrongCategory{Verb: command.Unlock, Target: t.target}, nil
		case !t.latch.Locked:
			return outcome.AlreadyUnlocked{Target: t.target}, nil
		}
		key, ok := g.Character.Inventory.FindKey(t.key)
		if !ok {
			return outcome.NoKey{Target: t.target, Key: string(t.key)}, nil
		}
		if err := t.latch.Unlock(t.what); err != nil {
			return nil, err
		}
		return outcome.Unlocked{Target: t.target, Key: key.Title}, nil
	})
}

// PickLock unlocks a locked door or chest without a key.
func (h *LockHandler) PickLock(g *state.GameState, a command.Args) ([]outcome.Outcome, error) {
	return h.run(g, command.PickLock, a, func(t latchTarget) (outcome.Outcome, error) {
		switch {
		case !t.lockable:
			return outcome.WrongCategory{Verb: command.PickLock, Target: t.target}, nil
		case !t.latch.Locked:
			return outcome.AlreadyUnlocked{Target: t.target}, nil
		}
		if err := t.latch.Unlock(t.what); err != nil {
			return nil, err
		}
		return outcome.LockPicked{Target: t.target}, nil
	})
}
