package outcome

const (
	KindOpened          Kind = "lock.opened"
	KindClosed          Kind = "lock.closed"
	KindLocked          Kind = "lock.locked"
	KindUnlocked        Kind = "lock.unlocked"
	KindLockPicked      Kind = "lock.picked"
	KindAlreadyOpen     Kind = "lock.already_open"
	KindAlreadyClosed   Kind = "lock.already_closed"
	KindAlreadyLocked   Kind = "lock.already_locked"
	KindAlreadyUnlocked Kind = "lock.already_unlocked"
	KindIsLocked        Kind = "lock.is_locked"
	KindMustCloseFirst  Kind = "lock.must_close_first"
	KindNoKey           Kind = "lock.no_key"
)

// Opened confirms a door or chest was opened.
type Opened struct {
	sealedOutcome
	Target Target
}

func (Opened) Kind() Kind { return KindOpened }

// Closed confirms a door or chest was closed.
type Closed struct {
	sealedOutcome
	Target Target
}

func (Closed) Kind() Kind { return KindClosed }

// Locked confirms a lock with the key used.
type Locked struct {
	sealedOutcome
	Target Target
	Key    string
}

func (Locked) Kind() Kind { return KindLocked }

// Unlocked confirms an unlock with the key used.
type Unlocked struct {
	sealedOutcome
	Target Target
	Key    string
}

func (Unlocked) Kind() Kind { return KindUnlocked }

// LockPicked confirms a thief picked a lock.
type LockPicked struct {
	sealedOutcome
	Target Target
}

func (LockPicked) Kind() Kind { return KindLockPicked }

// AlreadyOpen is the no-op of opening an open target.
type AlreadyOpen struct {
	sealedOutcome
	Target Target
}

func (AlreadyOpen) Kind() Kind { return KindAlreadyOpen }

// AlreadyClosed is the no-op of closing a closed target.
type AlreadyClosed struct {
	sealedOutcome
	Target Target
}

func (AlreadyClosed) Kind() Kind { return KindAlreadyClosed }

// AlreadyLocked is the no-op of locking a locked target.
type AlreadyLocked struct {
	sealedOutcome
	Target Target
}

func (AlreadyLocked) Kind() Kind { return KindAlreadyLocked }

// AlreadyUnlocked is the no-op of unlocking an unlocked target.
type AlreadyUnlocked struct {
	sealedOutcome
	Target Target
}

func (AlreadyUnlocked) Kind() Kind { return KindAlreadyUnlocked }

// IsLocked rejects opening a locked target.
type IsLocked struct {
	sealedOutcome
	Target Target
}

func (IsLocked) Kind() Kind { return KindIsLocked }

// MustCloseFirst rejects locking an open target.
type MustCloseFirst struct {
	sealedOutcome
	Target Target
}

func (MustCloseFirst) Kind() Kind { return KindMustCloseFirst }

// NoKey rejects LOCK or UNLOCK without the required key.
type NoKey struct {
	sealedOutcome
	Target Target
	Key    string
}

func (NoKey) Kind() Kind { return KindNoKey }
