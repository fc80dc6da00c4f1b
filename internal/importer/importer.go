// Package importer loads dungeon content files into a fresh GameState.
package importer

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/cory-johannsen/advgame/internal/game/character"
	"github.com/cory-johannsen/advgame/internal/game/dice"
	"github.com/cory-johannsen/advgame/internal/game/inventory"
	"github.com/cory-johannsen/advgame/internal/game/npc"
	"github.com/cory-johannsen/advgame/internal/game/ruleset"
	"github.com/cory-johannsen/advgame/internal/game/state"
	"github.com/cory-johannsen/advgame/internal/game/world"
)

// ErrInvalidContent wraps every validation failure reported by the Importer.
var ErrInvalidContent = errors.New("invalid content")

var identPattern = regexp.MustCompile(`^[a-z0-9_]+$`)

// Importer validates content and builds GameStates from it.
type Importer struct {
	validate *validator.Validate
	logger   *zap.Logger
}

// New constructs an Importer. A nil logger discards log output.
//
// Postcondition: returns a non-nil Importer.
func New(logger *zap.Logger) *Importer {
	if logger == nil {
		logger = zap.NewNop()
	}
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("ident", func(fl validator.FieldLevel) bool {
		return identPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("dice", func(fl validator.FieldLevel) bool {
		_, err := dice.Parse(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("class", func(fl validator.FieldLevel) bool {
		_, ok := ruleset.ParseClass(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("direction", func(fl validator.FieldLevel) bool {
		_, ok := world.ParseDirection(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("doorkind", func(fl validator.FieldLevel) bool {
		_, ok := world.ParseDoorKind(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("doortitle", func(fl validator.FieldLevel) bool {
		return world.IsDoorTitle(fl.Field().String())
	})
	return &Importer{validate: v, logger: logger}
}

// Load reads, parses and builds the content file at path. The format is
// chosen by the file extension.
//
// Precondition: path names a .yaml, .yml or .toml file.
// Postcondition: returns a GameState in Pregame mode that passes Check, or a
// non-nil error.
func (imp *Importer) Load(path string) (*state.GameState, error) {
	src, err := SourceFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading content file %s: %w", path, err)
	}
	c, err := src.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	g, err := imp.Build(c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	imp.logger.Info("content loaded",
		zap.String("path", path),
		zap.Int("items", g.Items.Len()),
		zap.Int("rooms", g.Rooms.Len()),
		zap.Int("doors", len(g.Doors.All())),
		zap.Int("containers", len(g.Containers.All())),
		zap.Int("creatures", len(g.Creatures.All())),
	)
	return g, nil
}

// Build validates c and assembles a GameState from it. Every problem found
// is reported in a single error wrapping ErrInvalidContent.
//
// Precondition: c is non-nil.
func (imp *Importer) Build(c *Content) (*state.GameState, error) {
	if err := imp.validate.Struct(c); err != nil {
		return nil, fmt.Errorf("content validation failed: %s: %w", strings.Join(fieldProblems(err), "; "), ErrInvalidContent)
	}
	b := &builder{g: state.New()}
	b.items(c.Items)
	b.rooms(c.Rooms)
	b.doors(c.Doors)
	b.containers(c.Containers)
	b.creatures(c.Creatures)
	b.game(c.Game)
	if len(b.problems) > 0 {
		return nil, fmt.Errorf("content validation failed: %s: %w", strings.Join(b.problems, "; "), ErrInvalidContent)
	}
	if err := b.g.Check(); err != nil {
		return nil, fmt.Errorf("content validation failed: %v: %w", err, ErrInvalidContent)
	}
	return b.g, nil
}

// fieldProblems renders validator errors as "path: rule" strings.
func fieldProblems(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(verrs))
	for _, e := range verrs {
		field := strings.TrimPrefix(e.Namespace(), "Content.")
		switch e.Tag() {
		case "required":
			out = append(out, field+" is required")
		case "oneof":
			out = append(out, fmt.Sprintf("%s must be one of [%s], got %q", field, e.Param(), e.Value()))
		case "gte", "min":
			out = append(out, fmt.Sprintf("%s must be at least %s", field, e.Param()))
		case "max":
			out = append(out, fmt.Sprintf("%s must be at most %s", field, e.Param()))
		case "ident":
			out = append(out, fmt.Sprintf("%s %q must be lower-case letters, digits and underscores", field, e.Value()))
		case "dice":
			out = append(out, fmt.Sprintf("%s %q is not a dice expression", field, e.Value()))
		case "class":
			out = append(out, fmt.Sprintf("%s %q is not a class", field, e.Value()))
		case "direction":
			out = append(out, fmt.Sprintf("%s %q is not a direction", field, e.Value()))
		case "doorkind":
			out = append(out, fmt.Sprintf("%s %q is not a door kind", field, e.Value()))
		case "doortitle":
			out = append(out, fmt.Sprintf("%s %q must end in \"door\" or \"doorway\"", field, e.Value()))
		default:
			out = append(out, fmt.Sprintf("%s fails %s", field, e.Tag()))
		}
	}
	return out
}

// builder accumulates cross-reference problems while filling a GameState.
type builder struct {
	g        *state.GameState
	problems []string
	exits    int
}

func (b *builder) problem(format string, args ...any) {
	b.problems = append(b.problems, fmt.Sprintf(format, args...))
}

func (b *builder) item(id, where string) (*inventory.Item, bool) {
	it, ok := b.g.Items.Item(id)
	if !ok {
		b.problem("%s: unknown item %q", where, id)
	}
	return it, ok
}

func (b *builder) stack(dst *inventory.Collection, stacks []Stack, where string) {
	for _, s := range stacks {
		it, ok := b.item(s.Item, where)
		if !ok {
			continue
		}
		if err := dst.Add(it, s.Quantity); err != nil {
			b.problem("%s: %v", where, err)
		}
	}
}

func (b *builder) room(id, where string) (*world.Room, bool) {
	r, ok := b.g.Rooms.Get(id)
	if !ok {
		b.problem("%s: unknown room %q", where, id)
	}
	return r, ok
}

func (b *builder) items(specs []ItemSpec) {
	for _, s := range specs {
		it := &inventory.Item{
			ID:          s.ID,
			Title:       s.Title,
			Plural:      s.Plural,
			Description: s.Description,
			Weight:      s.Weight,
			Value:       s.Value,
			AttackBonus: s.AttackBonus,
			ArmorBonus:  s.ArmorBonus,
		}
		if it.ID == "" {
			it.ID = NameToID(s.Title)
		}
		it.Kind, _ = inventory.ParseKind(s.Kind)
		if s.Damage != "" {
			it.Damage = dice.MustParse(s.Damage)
		}
		if s.Amount != "" {
			it.Amount = dice.MustParse(s.Amount)
		}
		switch s.Restores {
		case "hit_points":
			it.Restores = inventory.RestoresHitPoints
		case "mana_points":
			it.Restores = inventory.RestoresManaPoints
		}
		switch s.Opens {
		case "door":
			it.Opens = inventory.DoorKey
		case "chest":
			it.Opens = inventory.ChestKey
		}
		if len(s.UsableBy) > 0 {
			classes := make([]ruleset.Class, 0, len(s.UsableBy))
			for _, name := range s.UsableBy {
				cl, _ := ruleset.ParseClass(name)
				classes = append(classes, cl)
			}
			it.UsableBy = ruleset.NewClassSet(classes...)
		}
		if err := b.g.Items.Register(it); err != nil {
			b.problem("item %q: %v", it.ID, err)
		}
	}
}

func (b *builder) rooms(specs []RoomSpec) {
	taken := make(map[[2]int]string, len(specs))
	for _, s := range specs {
		pos := [2]int{s.X, s.Y}
		if other, ok := taken[pos]; ok {
			b.problem("room %q: position (%d,%d) already holds room %q", s.ID, s.X, s.Y, other)
			continue
		}
		r := world.NewRoom(s.ID, s.Title, s.Description, s.X, s.Y)
		if err := b.g.Rooms.Add(r); err != nil {
			b.problem("room %q: %v", s.ID, err)
			continue
		}
		taken[pos] = s.ID
		b.stack(r.Floor, s.Floor, "room "+s.ID+" floor")
	}
}

// doors wires each door into both rooms' exits. A door's direction must
// agree with the grid: the neighbour lies one step away in that direction.
func (b *builder) doors(specs []DoorSpec) {
	for i, s := range specs {
		where := fmt.Sprintf("door %d (%s %s)", i, s.From, s.Direction)
		from, ok := b.room(s.From, where)
		if !ok {
			continue
		}
		dir, _ := world.ParseDirection(s.Direction)
		if _, taken := from.Exits[dir]; taken {
			b.problem("%s: room %q already has an exit %s", where, from.ID, dir)
			continue
		}
		var to *world.Room
		if s.To == world.ExitRoomID {
			b.exits++
		} else {
			if to, ok = b.room(s.To, where); !ok {
				continue
			}
			if dx, dy := dir.Offset(); to.X-from.X != dx || to.Y-from.Y != dy {
				b.problem("%s: room %q at (%d,%d) is not %s of %q at (%d,%d)", where, to.ID, to.X, to.Y, dir, from.ID, from.X, from.Y)
				continue
			}
			if _, taken := to.Exits[dir.Opposite()]; taken {
				b.problem("%s: room %q already has an exit %s", where, to.ID, dir.Opposite())
				continue
			}
		}

		kind, _ := world.ParseDoorKind(s.Kind)
		d := world.NewDoor(kind, from.ID, s.To)
		if s.Title != "" {
			d.Title = s.Title
		}
		d.Description = s.Description
		d.Closed, d.Locked = s.Closed, s.Locked
		if err := b.g.Doors.Add(d); err != nil {
			b.problem("%s: %v", where, err)
			continue
		}
		from.Exits[dir] = s.To
		if to != nil {
			to.Exits[dir.Opposite()] = from.ID
		}
	}
	if b.exits != 1 {
		b.problem("dungeon must have exactly one exit door, found %d", b.exits)
	}
}

func (b *builder) containers(specs []ContainerSpec) {
	for _, s := range specs {
		id := s.ID
		if id == "" {
			id = NameToID(s.Title)
		}
		where := "container " + id
		r, ok := b.room(s.Room, where)
		if !ok {
			continue
		}
		if r.ContainerID != "" {
			b.problem("%s: room %q already holds container %q", where, r.ID, r.ContainerID)
			continue
		}
		c := world.NewChest(id, s.Title)
		c.Description = s.Description
		c.Closed, c.Locked = s.Closed, s.Locked
		b.stack(c.Contents, s.Contents, where)
		if err := b.g.Containers.Add(c); err != nil {
			b.problem("%s: %v", where, err)
			continue
		}
		r.ContainerID = c.ID
	}
}

func (b *builder) creatures(specs []CreatureSpec) {
	for _, s := range specs {
		id := s.ID
		if id == "" {
			id = NameToID(s.Title)
		}
		where := "creature " + id
		r, ok := b.room(s.Room, where)
		if !ok {
			continue
		}
		switch {
		case r.CreatureID != "":
			b.problem("%s: room %q already holds creature %q", where, r.ID, r.CreatureID)
			continue
		case r.ContainerID != "":
			b.problem("%s: room %q holds both a creature and container %q", where, r.ID, r.ContainerID)
			continue
		}
		class, _ := ruleset.ParseClass(s.Class)
		cr := &npc.Creature{
			Sheet:       character.NewSheet(class, s.Abilities.scores(), s.HitPoints),
			ID:          id,
			Title:       s.Title,
			Description: s.Description,
		}
		b.stack(cr.Inventory, s.Inventory, where)
		for _, itemID := range s.Equipped {
			it, ok := b.item(itemID, where+" equipped")
			if !ok {
				continue
			}
			switch {
			case cr.Inventory.Quantity(it.ID) == 0:
				b.problem("%s: equips %q without carrying it", where, it.ID)
				continue
			case !it.Kind.Equippable():
				b.problem("%s: %s %q cannot be equipped", where, it.Kind, it.ID)
				continue
			case !it.UsableByClass(class):
				b.problem("%s: a %s cannot use %q", where, class, it.ID)
				continue
			}
			if _, err := cr.Equipment.Equip(it); err != nil {
				b.problem("%s: %v", where, err)
			}
		}
		if err := b.g.Creatures.Add(cr); err != nil {
			b.problem("%s: %v", where, err)
			continue
		}
		r.CreatureID = cr.ID
	}
}

func (b *builder) game(s GameSpec) {
	if _, ok := b.room(s.StartRoom, "game start_room"); ok {
		b.g.StartRoom = s.StartRoom
	}
	for name, ids := range s.StartingGear {
		class, _ := ruleset.ParseClass(name)
		where := "game starting_gear " + class.String()
		gear := make([]string, 0, len(ids))
		for _, id := range ids {
			if _, ok := b.item(id, where); ok {
				gear = append(gear, id)
			}
		}
		b.g.StartingGear[class] = gear
	}
}

// scores fills omitted abilities with 10.
func (a AbilitySpec) scores() character.AbilityScores {
	var s character.AbilityScores
	for i, v := range []int{a.Strength, a.Dexterity, a.Constitution, a.Intelligence, a.Wisdom, a.Charisma} {
		if v == 0 {
			v = 10
		}
		s[ruleset.AllAbilities()[i]] = v
	}
	return s
}
