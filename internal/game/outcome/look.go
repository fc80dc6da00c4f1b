package outcome

const (
	KindLookItem      Kind = "look.item"
	KindLookDoor      Kind = "look.door"
	KindLookContainer Kind = "look.container"
	KindLookCreature  Kind = "look.creature"
)

// LookItem describes an item where it was found.
type LookItem struct {
	sealedOutcome
	Item        ItemRef
	Description string
	Quantity    int
	Location    string
	Weight      float64
	Value       int
}

func (LookItem) Kind() Kind { return KindLookItem }

// LookDoor describes a door.
type LookDoor struct {
	sealedOutcome
	Target      Target
	Description string
	Closed      bool
	Locked      bool
	Exit        bool
}

func (LookDoor) Kind() Kind { return KindLookDoor }

// LookContainer describes a chest or corpse. Contents is nil when closed.
type LookContainer struct {
	sealedOutcome
	Target      Target
	Description string
	Closed      bool
	Locked      bool
	Contents    []ItemCount
}

func (LookContainer) Kind() Kind { return KindLookContainer }

// LookCreature describes a creature.
type LookCreature struct {
	sealedOutcome
	Title       string
	Description string
	Health      string
	Wielding    *ItemRef
}

func (LookCreature) Kind() Kind { return KindLookCreature }
