package outcome

// AllKinds returns every outcome kind in family order.
func AllKinds() []Kind {
	return []Kind{
		KindBadSyntax, KindNotRecognized, KindNotAllowedNow, KindClassRestricted,
		KindGameHasEnded, KindQuantityAmbiguous, KindAmbiguousDoor, KindNotFound,
		KindWrongCategory,

		KindNameSet, KindInvalidNamePart, KindClassSet, KindInvalidClass,
		KindAbilitiesRolled, KindRerollNeedsBoth, KindCannotBeginYet, KindGameBegun,
		KindStatus, KindInventoryListing,

		KindDropped, KindPickedUp, KindPutIn, KindTookFrom, KindMoreThanPresent,
		KindContainerClosed, KindDrank, KindNotDrinkable, KindCannotUseManaItem,

		KindEquipped, KindUnequipped, KindAlreadyEquipped, KindNotEquipped,
		KindNotEquippable, KindClassCannotUse, KindAttackingWith,

		KindNoAttackItem, KindAttackHit, KindAttackMissed, KindCreatureDied,
		KindAttackedBy, KindCreatureMissed, KindCharacterDied, KindCreatureAlready,

		KindInsufficientMana, KindSpellDamaged, KindSpellHealed,

		KindOpened, KindClosed, KindLocked, KindUnlocked, KindLockPicked,
		KindAlreadyOpen, KindAlreadyClosed, KindAlreadyLocked, KindAlreadyUnlocked,
		KindIsLocked, KindMustCloseFirst, KindNoKey,

		KindLeftRoom, KindEnteredRoom, KindWonTheGame, KindDoorLocked, KindDoorClosed,

		KindLookItem, KindLookDoor, KindLookContainer, KindLookCreature,

		KindHelp, KindHelpCommand, KindQuit,
	}
}
