package handlers

import (
	"fmt"
	"strings"

	"github.com/dekarrin/rosed"

	"github.com/cory-johannsen/advgame/internal/frontend/console"
	"github.com/cory-johannsen/advgame/internal/game/outcome"
)

// renderPlay handles the in-game families. ok is false for kinds it does
// not know.
func (r *TextRenderer) renderPlay(o outcome.Outcome) (string, bool) {
	for _, fn := range []func(outcome.Outcome) string{
		r.renderItem, r.renderEquip, r.renderCombat, r.renderLock, r.renderNavigation, r.renderLook,
	} {
		if s := fn(o); s != "" {
			return s, true
		}
	}
	return "", false
}

func (r *TextRenderer) renderItem(o outcome.Outcome) string {
	switch o := o.(type) {
	case outcome.Dropped:
		return fmt.Sprintf("You drop %s. %s left in your inventory.", itemPhrase(o.Item, o.Amount), capitalize(countPhrase(o.Item, o.Left)))
	case outcome.PickedUp:
		return fmt.Sprintf("You pick up %s. You now carry %s.", itemPhrase(o.Item, o.Amount), countPhrase(o.Item, o.InInventory))
	case outcome.PutIn:
		prep := "in"
		if o.Container.Category == outcome.CategoryCorpse {
			prep = "on"
		}
		return fmt.Sprintf("You put %s %s %s. You have %s left.",
			itemPhrase(o.Item, o.Amount), prep, r.targetPhrase(o.Container), countPhrase(o.Item, o.Left))
	case outcome.TookFrom:
		return fmt.Sprintf("You take %s from %s. You now carry %s.",
			itemPhrase(o.Item, o.Amount), r.targetPhrase(o.Container), countPhrase(o.Item, o.InInventory))
	case outcome.MoreThanPresent:
		return r.pal.Colorf(console.Yellow, "You can't %s %d %s; there are only %d %s.",
			strings.ToLower(o.Verb), o.Requested, o.Item.Plural, o.Present, locationPhrase(o.Location))
	case outcome.ContainerClosed:
		return r.pal.Colorf(console.Yellow, "%s is closed.", capitalize(r.targetPhrase(o.Container)))
	case outcome.Drank:
		return fmt.Sprintf("You drink %s and recover %s (now %d/%d).",
			itemPhrase(o.Item, o.Amount), r.pal.Colorf(console.Green, "%d %s", o.Restored, o.Restores), o.Now, o.Max)
	case outcome.NotDrinkable:
		return r.pal.Colorf(console.Yellow, "You can't drink %s.", itemPhrase(o.Item, 1))
	case outcome.CannotUseManaItem:
		return r.pal.Colorf(console.Yellow, "You have no mana; %s would do nothing for you.", itemPhrase(o.Item, 1))
	}
	return ""
}

func (r *TextRenderer) renderEquip(o outcome.Outcome) string {
	switch o := o.(type) {
	case outcome.Equipped:
		return fmt.Sprintf("You equip the %s as your %s.", o.Item.Title, o.Slot)
	case outcome.Unequipped:
		return fmt.Sprintf("You remove the %s from your %s slot.", o.Item.Title, o.Slot)
	case outcome.AlreadyEquipped:
		return fmt.Sprintf("The %s is already equipped.", o.Item.Title)
	case outcome.NotEquipped:
		if o.Worn != nil {
			return r.pal.Colorf(console.Yellow, "The %s is not equipped; you are using the %s.", o.Item.Title, o.Worn.Title)
		}
		return r.pal.Colorf(console.Yellow, "The %s is not equipped.", o.Item.Title)
	case outcome.NotEquippable:
		return r.pal.Colorf(console.Yellow, "You can't equip %s.", itemPhrase(o.Item, 1))
	case outcome.ClassCannotUse:
		if len(o.Classes) == 0 {
			return r.pal.Colorf(console.Yellow, "A %s cannot use the %s.", o.Class, o.Item.Title)
		}
		return r.pal.Colorf(console.Yellow, "A %s cannot use the %s; it is for %s.", o.Class, o.Item.Title, classList(o.Classes))
	case outcome.AttackingWith:
		if o.Item == nil {
			return "You now have nothing to attack with."
		}
		return fmt.Sprintf("You will attack with the %s.", o.Item.Title)
	}
	return ""
}

func (r *TextRenderer) renderCombat(o outcome.Outcome) string {
	switch o := o.(type) {
	case outcome.NoAttackItem:
		return r.pal.Colorf(console.Yellow, "You have nothing equipped that a %s can attack with.", o.Class)
	case outcome.AttackHit:
		return fmt.Sprintf("You strike the %s with your %s (roll %d vs AC %d) for %s. It has %d hit points left.",
			o.Creature, o.Item.Title, o.Roll, o.ArmorClass, r.pal.Colorf(console.BrightRed, "%d damage", o.Damage), o.CreatureHP)
	case outcome.AttackMissed:
		return fmt.Sprintf("You swing your %s at the %s and miss (roll %d vs AC %d).", o.Item.Title, o.Creature, o.Roll, o.ArmorClass)
	case outcome.CreatureDied:
		return r.pal.Colorf(console.BrightGreen, "The %s dies, leaving a %s.", o.Creature, o.Corpse)
	case outcome.AttackedBy:
		return fmt.Sprintf("The %s hits you with its %s (roll %d) for %s. You have %d/%d hit points.",
			o.Creature, o.Item.Title, o.Roll, r.pal.Colorf(console.Red, "%d damage", o.Damage), o.HitPoints, o.Max)
	case outcome.CreatureMissed:
		return fmt.Sprintf("The %s swings its %s at you and misses (roll %d).", o.Creature, o.Item.Title, o.Roll)
	case outcome.CharacterDied:
		return r.pal.Colorf(console.BrightRed, "The %s has killed you. Your adventure is over.", o.Creature)
	case outcome.CreatureAlreadyDead:
		return r.pal.Colorf(console.Yellow, "There is only a %s here; it is already dead.", o.Corpse)
	case outcome.InsufficientMana:
		return r.pal.Colorf(console.Yellow, "You need %d mana points but have only %d.", o.Need, o.Have)
	case outcome.SpellDamaged:
		return fmt.Sprintf("Your spell sears the %s for %s. It has %d hit points left; you have %d mana points.",
			o.Creature, r.pal.Colorf(console.BrightRed, "%d damage", o.Damage), o.CreatureHP, o.ManaPoints)
	case outcome.SpellHealed:
		return fmt.Sprintf("Your prayer heals %s. You have %d/%d hit points and %d mana points.",
			r.pal.Colorf(console.Green, "%d hit points", o.Healed), o.HitPoints, o.MaxHitPoints, o.ManaPoints)
	}
	return ""
}

func (r *TextRenderer) renderLock(o outcome.Outcome) string {
	warn := func(t outcome.Target, format string) string {
		return r.pal.Colorf(console.Yellow, format, capitalize(r.targetPhrase(t)))
	}
	switch o := o.(type) {
	case outcome.Opened:
		return fmt.Sprintf("You open %s.", r.targetPhrase(o.Target))
	case outcome.Closed:
		return fmt.Sprintf("You close %s.", r.targetPhrase(o.Target))
	case outcome.Locked:
		return fmt.Sprintf("You lock %s with your %s.", r.targetPhrase(o.Target), o.Key)
	case outcome.Unlocked:
		return fmt.Sprintf("You unlock %s with your %s.", r.targetPhrase(o.Target), o.Key)
	case outcome.LockPicked:
		return r.pal.Colorf(console.Green, "You pick the lock on %s.", r.targetPhrase(o.Target))
	case outcome.AlreadyOpen:
		return warn(o.Target, "%s is already open.")
	case outcome.AlreadyClosed:
		return warn(o.Target, "%s is already closed.")
	case outcome.AlreadyLocked:
		return warn(o.Target, "%s is already locked.")
	case outcome.AlreadyUnlocked:
		return warn(o.Target, "%s is not locked.")
	case outcome.IsLocked:
		return warn(o.Target, "%s is locked.")
	case outcome.MustCloseFirst:
		return warn(o.Target, "%s must be closed before it can be locked.")
	case outcome.NoKey:
		return r.pal.Colorf(console.Yellow, "You need %s %s for %s.", article(o.Key), o.Key, r.targetPhrase(o.Target))
	}
	return ""
}

func (r *TextRenderer) renderNavigation(o outcome.Outcome) string {
	switch o := o.(type) {
	case outcome.LeftRoom:
		return fmt.Sprintf("You go %s through the %s.", o.Direction, o.Door)
	case outcome.EnteredRoom:
		return r.renderRoom(o)
	case outcome.WonTheGame:
		return r.pal.Colorize(console.BrightGreen, "You step out of the dungeon into daylight. You have won!")
	case outcome.DoorLocked:
		return r.pal.Colorf(console.Yellow, "%s is locked.", capitalize(r.targetPhrase(o.Target)))
	case outcome.DoorClosed:
		return r.pal.Colorf(console.Yellow, "%s is closed.", capitalize(r.targetPhrase(o.Target)))
	}
	return ""
}

func (r *TextRenderer) renderRoom(o outcome.EnteredRoom) string {
	var b strings.Builder
	b.WriteString(r.pal.Colorize(console.BrightYellow, r.title.String(o.Title)))
	b.WriteString("\n")
	if o.Description != "" {
		b.WriteString(rosed.Edit(o.Description).Wrap(tableWidth).String())
		b.WriteString("\n")
	}
	if o.Creature != "" {
		b.WriteString(r.pal.Colorf(console.BrightRed, "%s %s stands here.", capitalize(article(o.Creature)), o.Creature))
		b.WriteString("\n")
	}
	if o.Container != "" {
		fmt.Fprintf(&b, "There is %s %s here.\n", article(o.Container), o.Container)
	}
	if len(o.Floor) > 0 {
		items := make([]string, len(o.Floor))
		for i, c := range o.Floor {
			items[i] = itemPhrase(c.Item, c.Quantity)
		}
		fmt.Fprintf(&b, "On the floor: %s.\n", andList(items))
	}
	b.WriteString(r.pal.Colorize(console.Cyan, "Exits:"))
	if len(o.Doors) == 0 {
		b.WriteString(" none")
	}
	for _, d := range o.Doors {
		state := ""
		switch {
		case d.Doorway:
		case d.Closed:
			state = " (closed)"
		default:
			state = " (open)"
		}
		fmt.Fprintf(&b, "\n  %s %s%s", r.pal.Colorf(console.BrightCyan, "%-5s", d.Direction), d.Title, state)
	}
	return b.String()
}

func (r *TextRenderer) renderLook(o outcome.Outcome) string {
	switch o := o.(type) {
	case outcome.LookItem:
		desc := o.Description
		if desc == "" {
			desc = fmt.Sprintf("It is %s.", itemPhrase(o.Item, 1))
		}
		return fmt.Sprintf("%s\n%s %s. Weight %s, worth %d.",
			desc, capitalize(countPhrase(o.Item, o.Quantity)), locationPhrase(o.Location), weight(o.Weight), o.Value)
	case outcome.LookDoor:
		var state []string
		if o.Target.Category == outcome.CategoryDoorway {
			state = append(state, "an open doorway")
		} else if o.Closed {
			state = append(state, "closed")
		} else {
			state = append(state, "open")
		}
		if o.Locked {
			state = append(state, "locked")
		}
		out := fmt.Sprintf("%s is %s.", capitalize(r.targetPhrase(o.Target)), andList(state))
		if o.Exit {
			out += " Daylight shows beyond it."
		}
		return withDescription(o.Description, out)
	case outcome.LookContainer:
		var out string
		switch {
		case o.Locked:
			out = fmt.Sprintf("%s is closed and locked.", capitalize(r.targetPhrase(o.Target)))
		case o.Closed:
			out = fmt.Sprintf("%s is closed.", capitalize(r.targetPhrase(o.Target)))
		case len(o.Contents) == 0:
			out = fmt.Sprintf("%s is empty.", capitalize(r.targetPhrase(o.Target)))
		default:
			items := make([]string, len(o.Contents))
			for i, c := range o.Contents {
				items[i] = itemPhrase(c.Item, c.Quantity)
			}
			out = fmt.Sprintf("%s holds %s.", capitalize(r.targetPhrase(o.Target)), andList(items))
		}
		return withDescription(o.Description, out)
	case outcome.LookCreature:
		out := fmt.Sprintf("The %s is %s.", o.Title, o.Health)
		if o.Wielding != nil {
			out += fmt.Sprintf(" It wields %s.", itemPhrase(*o.Wielding, 1))
		}
		return withDescription(o.Description, out)
	}
	return ""
}

func withDescription(desc, text string) string {
	if desc == "" {
		return text
	}
	return rosed.Edit(desc).Wrap(tableWidth).String() + "\n" + text
}

// countPhrase is like itemPhrase but counts in digits: "1 gold coin",
// "no daggers".
func countPhrase(it outcome.ItemRef, n int) string {
	switch n {
	case 0:
		return "no " + it.Plural
	case 1:
		return "1 " + it.Title
	}
	return fmt.Sprintf("%d %s", n, it.Plural)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
