package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/Adventure_Go/internal/domain"
	"github.com/osse101/Adventure_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

const (
	encodeBufferSize    = 512
	maxPooledBufferSize = 64 << 10
)

// encodeBuffers holds scratch space for response bodies
var encodeBuffers = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, encodeBufferSize))
	},
}

// respondJSON encodes payload first so an encoding failure can still
// surface as a 500 instead of a truncated body
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := encodeBuffers.Get().(*bytes.Buffer)
	defer func() {
		// a full backpack listing can grow the buffer well past the usual size
		if buf.Cap() <= maxPooledBufferSize {
			buf.Reset()
			encodeBuffers.Put(buf)
		}
	}()

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeResponseFailed, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteResponseFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and writes the mapped status
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName, "error", err)
	} else {
		log.Warn(opName, "error", err)
	}
	respondError(w, status, msg)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgUserBusyError          = "You are busy with another action. Try again in a moment"
	ErrMsgCharacterNotFoundError = "Character not found"
	ErrMsgCorruptCharacterError  = "Character data is unreadable"
	ErrMsgItemNotFoundError      = "You don't have that item"
	ErrMsgNotEnoughMoneyError    = "Not enough money"
	ErrMsgInvalidAmountError     = "Amount must be positive"
	ErrMsgTradeSelfError         = "You cannot trade with yourself"

	ErrMsgLevelTooLowError      = "Your level is too low for that item"
	ErrMsgNoChestsError         = "You don't have enough chests"
	ErrMsgNotMaxLevelError      = "You must reach the level cap to rebirth"
	ErrMsgSkillCooldownError    = "Skills were reset recently. Try again later"
	ErrMsgLoadoutNotFoundError  = "Loadout not found"
	ErrMsgNoSkillPointsError    = "Not enough skill points"
	ErrMsgAbilityCooldownError  = "Your ability is still recharging"
	ErrMsgWrongClassError       = "Your class cannot do that"
	ErrMsgPetNotFoundError      = "Pet not found"
	ErrMsgPetRequirementsError  = "You do not meet that pet's requirements"
	ErrMsgSessionNotFoundError  = "No adventure is running here"
	ErrMsgSessionActiveError    = "An adventure is already running here"
	ErrMsgSessionNotOpenError   = "That adventure is no longer open"
	ErrMsgAlreadyInAdventureErr = "You are already in an adventure"
	ErrMsgNotJoinedError        = "You have not joined this adventure"
	ErrMsgMonsterNotFoundError  = "Monster not found"
	ErrMsgNoEligibleMonstersErr = "No monster is available for this group"
	ErrMsgContentNotLoadedError = "Game content is not loaded"
	ErrMsgInvalidInputError     = "Invalid input"
)

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and
// messages users can act upon.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrUserBusy):
		return http.StatusConflict, ErrMsgUserBusyError
	case errors.Is(err, domain.ErrCharacterNotFound):
		return http.StatusNotFound, ErrMsgCharacterNotFoundError
	case errors.Is(err, domain.ErrCorruptCharacter):
		return http.StatusInternalServerError, ErrMsgCorruptCharacterError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughMoneyError
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest, ErrMsgInvalidAmountError
	case errors.Is(err, domain.ErrCannotTradeWithSelf):
		return http.StatusBadRequest, ErrMsgTradeSelfError
	case errors.Is(err, domain.ErrLevelTooLow):
		return http.StatusBadRequest, ErrMsgLevelTooLowError
	case errors.Is(err, domain.ErrNoChests):
		return http.StatusBadRequest, ErrMsgNoChestsError
	case errors.Is(err, domain.ErrNotMaxLevel):
		return http.StatusBadRequest, ErrMsgNotMaxLevelError
	case errors.Is(err, domain.ErrSkillCooldown):
		return http.StatusTooManyRequests, ErrMsgSkillCooldownError
	case errors.Is(err, domain.ErrAbilityCooldown):
		return http.StatusTooManyRequests, ErrMsgAbilityCooldownError
	case errors.Is(err, domain.ErrLoadoutNotFound):
		return http.StatusNotFound, ErrMsgLoadoutNotFoundError
	case errors.Is(err, domain.ErrNotEnoughSkillPoints):
		return http.StatusBadRequest, ErrMsgNoSkillPointsError
	case errors.Is(err, domain.ErrWrongClass):
		return http.StatusBadRequest, ErrMsgWrongClassError
	case errors.Is(err, domain.ErrPetNotFound):
		return http.StatusNotFound, ErrMsgPetNotFoundError
	case errors.Is(err, domain.ErrPetRequirements):
		return http.StatusBadRequest, ErrMsgPetRequirementsError
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound, ErrMsgSessionNotFoundError
	case errors.Is(err, domain.ErrSessionActive):
		return http.StatusConflict, ErrMsgSessionActiveError
	case errors.Is(err, domain.ErrSessionNotOpen):
		return http.StatusConflict, ErrMsgSessionNotOpenError
	case errors.Is(err, domain.ErrAlreadyInAdventure):
		return http.StatusConflict, ErrMsgAlreadyInAdventureErr
	case errors.Is(err, domain.ErrParticipantNotJoined):
		return http.StatusBadRequest, ErrMsgNotJoinedError
	case errors.Is(err, domain.ErrMonsterNotFound):
		return http.StatusNotFound, ErrMsgMonsterNotFoundError
	case errors.Is(err, domain.ErrNoEligibleMonsters):
		return http.StatusConflict, ErrMsgNoEligibleMonstersErr
	case errors.Is(err, domain.ErrContentNotLoaded):
		return http.StatusServiceUnavailable, ErrMsgContentNotLoadedError
	case errors.Is(err, domain.ErrInvalidAction),
		errors.Is(err, domain.ErrInvalidSlot),
		errors.Is(err, domain.ErrInvalidRarity),
		errors.Is(err, domain.ErrInvalidSkill),
		errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
