package outcome

import "github.com/cory-johannsen/advgame/internal/game/inventory"

const (
	KindDropped           Kind = "item.dropped"
	KindPickedUp          Kind = "item.picked_up"
	KindPutIn             Kind = "item.put"
	KindTookFrom          Kind = "item.took"
	KindMoreThanPresent   Kind = "item.more_than_present"
	KindContainerClosed   Kind = "item.container_closed"
	KindDrank             Kind = "item.drank"
	KindNotDrinkable      Kind = "item.not_drinkable"
	KindCannotUseManaItem Kind = "item.cannot_use_mana"
)

// Dropped reports a transfer from inventory to the floor.
type Dropped struct {
	sealedOutcome
	Item    ItemRef
	Amount  int
	OnFloor int
	Left    int
}

func (Dropped) Kind() Kind { return KindDropped }

// PickedUp reports a transfer from the floor to inventory.
type PickedUp struct {
	sealedOutcome
	Item        ItemRef
	Amount      int
	InInventory int
	LeftOnFloor int
}

func (PickedUp) Kind() Kind { return KindPickedUp }

// PutIn reports a transfer from inventory into a container.
type PutIn struct {
	sealedOutcome
	Item        ItemRef
	Amount      int
	Container   Target
	InContainer int
	Left        int
}

func (PutIn) Kind() Kind { return KindPutIn }

// TookFrom reports a transfer from a container to inventory.
type TookFrom struct {
	sealedOutcome
	Item            ItemRef
	Amount          int
	Container       Target
	InInventory     int
	LeftInContainer int
}

func (TookFrom) Kind() Kind { return KindTookFrom }

// MoreThanPresent rejects a transfer larger than the source holds.
type MoreThanPresent struct {
	sealedOutcome
	Verb      string
	Item      ItemRef
	Requested int
	Present   int
	Location  string
}

func (MoreThanPresent) Kind() Kind { return KindMoreThanPresent }

// ContainerClosed rejects reaching into a closed chest.
type ContainerClosed struct {
	sealedOutcome
	Container Target
}

func (ContainerClosed) Kind() Kind { return KindContainerClosed }

// Drank reports potions consumed and the pool they refilled.
type Drank struct {
	sealedOutcome
	Item     ItemRef
	Amount   int
	Restores inventory.Restores
	Restored int
	Now      int
	Max      int
	Left     int
}

func (Drank) Kind() Kind { return KindDrank }

// NotDrinkable rejects drinking something that is not a potion.
type NotDrinkable struct {
	sealedOutcome
	Item ItemRef
}

func (NotDrinkable) Kind() Kind { return KindNotDrinkable }

// CannotUseManaItem rejects a mana potion for a class without mana.
type CannotUseManaItem struct {
	sealedOutcome
	Item ItemRef
}

func (CannotUseManaItem) Kind() Kind { return KindCannotUseManaItem }
