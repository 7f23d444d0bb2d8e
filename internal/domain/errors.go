package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Validation errors
	ErrMsgInvalidRarity = "invalid rarity"
	ErrMsgInvalidSlot   = "invalid slot"
	ErrMsgInvalidAction = "invalid action"
	ErrMsgInvalidAmount = "invalid amount"
	ErrMsgInvalidSkill  = "invalid skill"
	ErrMsgInvalidInput  = "invalid input"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"

	// Concurrency errors
	ErrMsgUserBusy = "user is busy with another action"

	// Character errors
	ErrMsgCharacterNotFound   = "character not found"
	ErrMsgCorruptCharacter    = "character record is corrupt"
	ErrMsgItemNotFound        = "item not found"
	ErrMsgLevelTooLow         = "level too low to equip item"
	ErrMsgNoChests            = "no chests of that type"
	ErrMsgNotMaxLevel         = "character is not at max level"
	ErrMsgSkillCooldown       = "skill reset is on cooldown"
	ErrMsgLoadoutNotFound     = "loadout not found"
	ErrMsgNotEnoughSkillPoint = "not enough skill points"
	ErrMsgCannotTradeSelf     = "cannot trade with yourself"
	ErrMsgAbilityCooldown     = "class ability is on cooldown"
	ErrMsgWrongClass          = "hero class cannot do that"
	ErrMsgPetNotFound         = "pet not found"
	ErrMsgPetRequirements     = "pet requirements not met"

	// Session errors
	ErrMsgSessionNotFound      = "no adventure in progress"
	ErrMsgSessionActive        = "an adventure is already in progress"
	ErrMsgSessionNotOpen       = "adventure is no longer accepting participants"
	ErrMsgAlreadyInAdventure   = "participant is already in another adventure"
	ErrMsgMonsterNotFound      = "monster not found"
	ErrMsgContentNotLoaded     = "content tables not loaded"
	ErrMsgNoEligibleMonsters   = "no monsters available"
	ErrMsgParticipantNotJoined = "participant has not joined"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrInvalidRarity = errors.New(ErrMsgInvalidRarity)
	ErrInvalidSlot   = errors.New(ErrMsgInvalidSlot)
	ErrInvalidAction = errors.New(ErrMsgInvalidAction)
	ErrInvalidAmount = errors.New(ErrMsgInvalidAmount)
	ErrInvalidSkill  = errors.New(ErrMsgInvalidSkill)
	ErrInvalidInput  = errors.New(ErrMsgInvalidInput)

	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	ErrUserBusy = errors.New(ErrMsgUserBusy)

	ErrCharacterNotFound     = errors.New(ErrMsgCharacterNotFound)
	ErrCorruptCharacter      = errors.New(ErrMsgCorruptCharacter)
	ErrItemNotFound          = errors.New(ErrMsgItemNotFound)
	ErrLevelTooLow           = errors.New(ErrMsgLevelTooLow)
	ErrNoChests              = errors.New(ErrMsgNoChests)
	ErrNotMaxLevel           = errors.New(ErrMsgNotMaxLevel)
	ErrSkillCooldown         = errors.New(ErrMsgSkillCooldown)
	ErrLoadoutNotFound       = errors.New(ErrMsgLoadoutNotFound)
	ErrNotEnoughSkillPoints  = errors.New(ErrMsgNotEnoughSkillPoint)
	ErrCannotTradeWithSelf   = errors.New(ErrMsgCannotTradeSelf)
	ErrAbilityCooldown       = errors.New(ErrMsgAbilityCooldown)
	ErrWrongClass            = errors.New(ErrMsgWrongClass)
	ErrPetNotFound           = errors.New(ErrMsgPetNotFound)
	ErrPetRequirements       = errors.New(ErrMsgPetRequirements)
	ErrSessionNotFound       = errors.New(ErrMsgSessionNotFound)
	ErrSessionActive         = errors.New(ErrMsgSessionActive)
	ErrSessionNotOpen        = errors.New(ErrMsgSessionNotOpen)
	ErrAlreadyInAdventure    = errors.New(ErrMsgAlreadyInAdventure)
	ErrMonsterNotFound       = errors.New(ErrMsgMonsterNotFound)
	ErrContentNotLoaded      = errors.New(ErrMsgContentNotLoaded)
	ErrNoEligibleMonsters    = errors.New(ErrMsgNoEligibleMonsters)
	ErrParticipantNotJoined  = errors.New(ErrMsgParticipantNotJoined)
)

// SessionActiveError is returned when a group already has a live adventure.
// It carries the existing session so callers can point the user at it.
type SessionActiveError struct {
	GroupID   string
	SessionID uuid.UUID
}

func (e *SessionActiveError) Error() string {
	return fmt.Sprintf("%s (group %s, session %s)", ErrMsgSessionActive, e.GroupID, e.SessionID)
}

// Is allows errors.Is(err, ErrSessionActive)
func (e *SessionActiveError) Is(target error) bool {
	return target == ErrSessionActive
}
