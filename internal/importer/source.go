package importer

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Content is the parsed form of a dungeon content file. Its tags match the
// YAML and TOML schemas exactly; validation happens in the Importer.
type Content struct {
	Items      []ItemSpec      `yaml:"items" toml:"items" validate:"required,dive"`
	Rooms      []RoomSpec      `yaml:"rooms" toml:"rooms" validate:"required,dive"`
	Doors      []DoorSpec      `yaml:"doors" toml:"doors" validate:"required,dive"`
	Containers []ContainerSpec `yaml:"containers" toml:"containers" validate:"dive"`
	Creatures  []CreatureSpec  `yaml:"creatures" toml:"creatures" validate:"dive"`
	Game       GameSpec        `yaml:"game" toml:"game"`
}

// ItemSpec declares one item template. ID defaults to NameToID(Title).
type ItemSpec struct {
	ID          string   `yaml:"id" toml:"id" validate:"omitempty,ident"`
	Title       string   `yaml:"title" toml:"title" validate:"required"`
	Plural      string   `yaml:"plural" toml:"plural"`
	Description string   `yaml:"description" toml:"description"`
	Kind        string   `yaml:"kind" toml:"kind" validate:"required,oneof=weapon armor shield wand potion coin key"`
	Weight      float64  `yaml:"weight" toml:"weight" validate:"gte=0"`
	Value       int      `yaml:"value" toml:"value" validate:"gte=0"`
	Damage      string   `yaml:"damage" toml:"damage" validate:"omitempty,dice"`
	AttackBonus int      `yaml:"attack_bonus" toml:"attack_bonus"`
	ArmorBonus  int      `yaml:"armor_bonus" toml:"armor_bonus" validate:"gte=0"`
	UsableBy    []string `yaml:"usable_by" toml:"usable_by" validate:"dive,class"`
	Restores    string   `yaml:"restores" toml:"restores" validate:"omitempty,oneof=hit_points mana_points"`
	Amount      string   `yaml:"amount" toml:"amount" validate:"omitempty,dice"`
	Opens       string   `yaml:"opens" toml:"opens" validate:"omitempty,oneof=door chest"`
}

// Stack places a quantity of an item somewhere.
type Stack struct {
	Item     string `yaml:"item" toml:"item" validate:"required"`
	Quantity int    `yaml:"quantity" toml:"quantity" validate:"gte=1"`
}

// RoomSpec declares a room on the grid. Exits come from the doors.
type RoomSpec struct {
	ID          string  `yaml:"id" toml:"id" validate:"required,ident,ne=exit"`
	Title       string  `yaml:"title" toml:"title" validate:"required"`
	Description string  `yaml:"description" toml:"description"`
	X           int     `yaml:"x" toml:"x"`
	Y           int     `yaml:"y" toml:"y"`
	Floor       []Stack `yaml:"floor" toml:"floor" validate:"dive"`
}

// DoorSpec declares the door leaving From in Direction towards To. A To of
// "exit" marks the dungeon's exit door. A Title, when given, must end in
// "door" or "doorway" so players can name the door.
type DoorSpec struct {
	From        string `yaml:"from" toml:"from" validate:"required"`
	Direction   string `yaml:"direction" toml:"direction" validate:"required,direction"`
	To          string `yaml:"to" toml:"to" validate:"required,nefield=From"`
	Kind        string `yaml:"kind" toml:"kind" validate:"required,doorkind"`
	Title       string `yaml:"title" toml:"title" validate:"omitempty,doortitle"`
	Description string `yaml:"description" toml:"description"`
	Closed      bool   `yaml:"closed" toml:"closed"`
	Locked      bool   `yaml:"locked" toml:"locked"`
}

// ContainerSpec declares a chest. Corpses only arise from combat.
type ContainerSpec struct {
	ID          string  `yaml:"id" toml:"id" validate:"omitempty,ident"`
	Title       string  `yaml:"title" toml:"title" validate:"required"`
	Description string  `yaml:"description" toml:"description"`
	Room        string  `yaml:"room" toml:"room" validate:"required"`
	Closed      bool    `yaml:"closed" toml:"closed"`
	Locked      bool    `yaml:"locked" toml:"locked"`
	Contents    []Stack `yaml:"contents" toml:"contents" validate:"dive"`
}

// AbilitySpec holds the six ability scores. Omitted scores default to 10.
type AbilitySpec struct {
	Strength     int `yaml:"strength" toml:"strength" validate:"omitempty,min=1,max=18"`
	Dexterity    int `yaml:"dexterity" toml:"dexterity" validate:"omitempty,min=1,max=18"`
	Constitution int `yaml:"constitution" toml:"constitution" validate:"omitempty,min=1,max=18"`
	Intelligence int `yaml:"intelligence" toml:"intelligence" validate:"omitempty,min=1,max=18"`
	Wisdom       int `yaml:"wisdom" toml:"wisdom" validate:"omitempty,min=1,max=18"`
	Charisma     int `yaml:"charisma" toml:"charisma" validate:"omitempty,min=1,max=18"`
}

// CreatureSpec declares a creature standing in a room.
type CreatureSpec struct {
	ID          string      `yaml:"id" toml:"id" validate:"omitempty,ident"`
	Title       string      `yaml:"title" toml:"title" validate:"required"`
	Description string      `yaml:"description" toml:"description"`
	Room        string      `yaml:"room" toml:"room" validate:"required"`
	Class       string      `yaml:"class" toml:"class" validate:"required,class"`
	HitPoints   int         `yaml:"hit_points" toml:"hit_points" validate:"gte=1"`
	Abilities   AbilitySpec `yaml:"abilities" toml:"abilities"`
	Inventory   []Stack     `yaml:"inventory" toml:"inventory" validate:"dive"`
	Equipped    []string    `yaml:"equipped" toml:"equipped"`
}

// GameSpec holds dungeon-wide settings.
type GameSpec struct {
	StartRoom string `yaml:"start_room" toml:"start_room" validate:"required"`
	// StartingGear maps a class title to the item IDs it begins with.
	StartingGear map[string][]string `yaml:"starting_gear" toml:"starting_gear" validate:"dive,keys,class,endkeys"`
}

// Source decodes content in one file format.
//
// Postcondition: Parse returns a non-nil Content or a non-nil error.
type Source interface {
	Parse(data []byte) (*Content, error)
}

// YAMLSource decodes .yaml and .yml content files.
type YAMLSource struct{}

// Parse decodes data as YAML, rejecting unknown fields.
func (YAMLSource) Parse(data []byte) (*Content, error) {
	var c Content
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("parsing YAML content: %w", err)
	}
	return &c, nil
}

// TOMLSource decodes .toml content files.
type TOMLSource struct{}

// Parse decodes data as TOML, rejecting unknown keys.
func (TOMLSource) Parse(data []byte) (*Content, error) {
	var c Content
	md, err := toml.Decode(string(data), &c)
	if err != nil {
		return nil, fmt.Errorf("parsing TOML content: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("parsing TOML content: unknown key %q", undecoded[0].String())
	}
	return &c, nil
}

// SourceFor picks a Source from the extension of path.
func SourceFor(path string) (Source, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAMLSource{}, nil
	case ".toml":
		return TOMLSource{}, nil
	}
	return nil, fmt.Errorf("unsupported content file extension %q (want .yaml, .yml or .toml)", filepath.Ext(path))
}
