package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/Adventure_Go/internal/character"
	"github.com/osse101/Adventure_Go/internal/domain"
	"github.com/osse101/Adventure_Go/internal/logger"
)

// ParamLoadout names the loadout path parameter
const ParamLoadout = "loadout"

// HandleGetCharacter returns a character profile, creating a fresh character on first sight
// @Summary Get character
// @Tags character
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} character.Profile
// @Failure 409 {object} ErrorResponse
// @Router /characters/{userID} [get]
func HandleGetCharacter(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := svc.Get(r.Context(), chi.URLParam(r, ParamUserID))
		if err != nil {
			respondServiceError(w, r, ErrMsgGetCharacterFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, profile)
	}
}

// HandleGetBackpack lists a backpack in display order
// @Summary Get backpack
// @Tags character
// @Produce json
// @Param userID path string true "User ID"
// @Param slot query string false "Slot filter"
// @Param rarity query string false "Rarity filter"
// @Param min_stat query int false "Minimum main stat"
// @Success 200 {array} domain.Item
// @Failure 400 {object} ErrorResponse
// @Router /characters/{userID}/backpack [get]
func HandleGetBackpack(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var filter character.BackpackFilter

		if raw := GetOptionalQueryParam(r, "slot", ""); raw != "" {
			slot, err := domain.ParseSlot(raw)
			if err != nil {
				respondServiceError(w, r, ErrMsgGetBackpackFailed, err)
				return
			}
			filter.Slot = slot
		}
		if raw := GetOptionalQueryParam(r, "rarity", ""); raw != "" {
			rarity, err := domain.ParseRarity(raw)
			if err != nil {
				respondServiceError(w, r, ErrMsgGetBackpackFailed, err)
				return
			}
			filter.Rarity = rarity
		}
		minStat, ok := GetIntQueryParam(r, w, "min_stat", 0)
		if !ok {
			return
		}
		filter.MinStat = minStat

		items, err := svc.Backpack(r.Context(), chi.URLParam(r, ParamUserID), filter)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetBackpackFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, items)
	}
}

type EquipRequest struct {
	ItemName string `json:"item" validate:"required,max=200"`
}

// HandleEquip equips a backpack item
// @Summary Equip item
// @Tags character
// @Accept json
// @Produce json
// @Param userID path string true "User ID"
// @Param request body EquipRequest true "Item"
// @Success 200 {object} character.Profile
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /characters/{userID}/equip [post]
func HandleEquip(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, ParamUserID)
		handleAction(w, r, ErrMsgEquipFailed, func(ctx context.Context, req EquipRequest) (*character.Profile, error) {
			return svc.Equip(ctx, userID, req.ItemName)
		})
	}
}

type UnequipRequest struct {
	Slot string `json:"slot" validate:"required,slot"`
}

// HandleUnequip moves the item in a slot back to the backpack
// @Summary Unequip slot
// @Tags character
// @Accept json
// @Produce json
// @Param userID path string true "User ID"
// @Param request body UnequipRequest true "Slot"
// @Success 200 {object} character.Profile
// @Failure 400 {object} ErrorResponse
// @Router /characters/{userID}/unequip [post]
func HandleUnequip(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, ParamUserID)
		handleAction(w, r, ErrMsgUnequipFailed, func(ctx context.Context, req UnequipRequest) (*character.Profile, error) {
			slot, err := domain.ParseSlot(req.Slot)
			if err != nil {
				return nil, err
			}
			return svc.Unequip(ctx, userID, slot)
		})
	}
}

type SaveLoadoutRequest struct {
	Name string `json:"name" validate:"required,max=50,excludesall=\x00\n\r\t/"`
}

// HandleSaveLoadout snapshots the equipped items under a name
// @Summary Save loadout
// @Tags loadout
// @Accept json
// @Produce json
// @Param userID path string true "User ID"
// @Param request body SaveLoadoutRequest true "Loadout name"
// @Success 200 {object} domain.Loadout
// @Router /characters/{userID}/loadouts [post]
func HandleSaveLoadout(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, ParamUserID)
		handleAction(w, r, ErrMsgSaveLoadoutFailed, func(ctx context.Context, req SaveLoadoutRequest) (domain.Loadout, error) {
			return svc.SaveLoadout(ctx, userID, req.Name)
		})
	}
}

// EquipLoadoutResponse lists loadout items that could not be equipped
type EquipLoadoutResponse struct {
	Skipped []string `json:"skipped"`
}

// HandleEquipLoadout equips a saved loadout
// @Summary Equip loadout
// @Tags loadout
// @Produce json
// @Param userID path string true "User ID"
// @Param loadout path string true "Loadout name"
// @Success 200 {object} EquipLoadoutResponse
// @Failure 404 {object} ErrorResponse
// @Router /characters/{userID}/loadouts/{loadout}/equip [post]
func HandleEquipLoadout(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skipped, err := svc.EquipLoadout(r.Context(), chi.URLParam(r, ParamUserID), chi.URLParam(r, ParamLoadout))
		if err != nil {
			respondServiceError(w, r, ErrMsgEquipLoadoutFailed, err)
			return
		}
		if skipped == nil {
			skipped = []string{}
		}
		respondJSON(w, http.StatusOK, EquipLoadoutResponse{Skipped: skipped})
	}
}

// HandleDeleteLoadout removes a saved loadout
// @Summary Delete loadout
// @Tags loadout
// @Produce json
// @Param userID path string true "User ID"
// @Param loadout path string true "Loadout name"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /characters/{userID}/loadouts/{loadout} [delete]
func HandleDeleteLoadout(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.DeleteLoadout(r.Context(), chi.URLParam(r, ParamUserID), chi.URLParam(r, ParamLoadout)); err != nil {
			respondServiceError(w, r, ErrMsgDeleteLoadoutFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgLoadoutDeleted})
	}
}

type AllocateSkillRequest struct {
	Skill  string `json:"skill" validate:"required,skill"`
	Points int    `json:"points" validate:"min=1,max=1000"`
}

// HandleAllocateSkill spends skill points
// @Summary Allocate skill points
// @Tags skills
// @Accept json
// @Produce json
// @Param userID path string true "User ID"
// @Param request body AllocateSkillRequest true "Skill and points"
// @Success 200 {object} domain.Skills
// @Failure 400 {object} ErrorResponse
// @Router /characters/{userID}/skills [post]
func HandleAllocateSkill(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, ParamUserID)
		handleAction(w, r, ErrMsgAllocateSkillFailed, func(ctx context.Context, req AllocateSkillRequest) (domain.Skills, error) {
			kind, err := domain.ParseSkill(req.Skill)
			if err != nil {
				return domain.Skills{}, err
			}
			return svc.AllocateSkill(ctx, userID, kind, req.Points)
		})
	}
}

// HandleResetSkills refunds every allocated point
// @Summary Reset skills
// @Tags skills
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} domain.Skills
// @Failure 429 {object} ErrorResponse
// @Router /characters/{userID}/skills/reset [post]
func HandleResetSkills(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skills, err := svc.ResetSkills(r.Context(), chi.URLParam(r, ParamUserID))
		if err != nil {
			respondServiceError(w, r, ErrMsgResetSkillsFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, skills)
	}
}

type SetClassRequest struct {
	Class string `json:"class" validate:"required,class"`
}

// HandleSetClass picks a hero class
// @Summary Set class
// @Tags class
// @Accept json
// @Produce json
// @Param userID path string true "User ID"
// @Param request body SetClassRequest true "Class"
// @Success 200 {object} character.Profile
// @Router /characters/{userID}/class [post]
func HandleSetClass(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, ParamUserID)
		handleAction(w, r, ErrMsgSetClassFailed, func(ctx context.Context, req SetClassRequest) (*character.Profile, error) {
			class, err := domain.ParseClass(req.Class)
			if err != nil {
				return nil, err
			}
			return svc.SetClass(ctx, userID, class)
		})
	}
}

// HandleUseAbility arms the class ability for the next adventure
// @Summary Use class ability
// @Tags class
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} character.Profile
// @Failure 429 {object} ErrorResponse
// @Router /characters/{userID}/ability [post]
func HandleUseAbility(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := svc.UseAbility(r.Context(), chi.URLParam(r, ParamUserID))
		if err != nil {
			respondServiceError(w, r, ErrMsgUseAbilityFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, profile)
	}
}

type AdoptPetRequest struct {
	Pet string `json:"pet" validate:"required,max=100"`
}

// HandleAdoptPet gives a Ranger a companion
// @Summary Adopt pet
// @Tags class
// @Accept json
// @Produce json
// @Param userID path string true "User ID"
// @Param request body AdoptPetRequest true "Pet"
// @Success 200 {object} character.Profile
// @Failure 400 {object} ErrorResponse
// @Router /characters/{userID}/pet [post]
func HandleAdoptPet(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, ParamUserID)
		handleAction(w, r, ErrMsgAdoptPetFailed, func(ctx context.Context, req AdoptPetRequest) (*character.Profile, error) {
			return svc.AdoptPet(ctx, userID, req.Pet)
		})
	}
}

// HandleRebirth resets a max-level character for permanent bonuses
// @Summary Rebirth
// @Tags character
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} character.RebirthResult
// @Failure 400 {object} ErrorResponse
// @Router /characters/{userID}/rebirth [post]
func HandleRebirth(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		userID := chi.URLParam(r, ParamUserID)

		res, err := svc.Rebirth(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, ErrMsgRebirthFailed, err)
			return
		}

		log.Info("Character reborn", "userID", userID, "rebirths", res.Rebirths)
		respondJSON(w, http.StatusOK, res)
	}
}

type OpenChestsRequest struct {
	Chest string `json:"chest" validate:"required,chest"`
	Count int    `json:"count" validate:"min=1,max=100"`
}

// HandleOpenChests opens treasure chests into the backpack
// @Summary Open chests
// @Tags character
// @Accept json
// @Produce json
// @Param userID path string true "User ID"
// @Param request body OpenChestsRequest true "Chest type and count"
// @Success 200 {array} domain.Item
// @Failure 400 {object} ErrorResponse
// @Router /characters/{userID}/chests/open [post]
func HandleOpenChests(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, ParamUserID)
		handleAction(w, r, ErrMsgOpenChestsFailed, func(ctx context.Context, req OpenChestsRequest) ([]*domain.Item, error) {
			chest, err := domain.ParseChestType(req.Chest)
			if err != nil {
				return nil, err
			}
			return svc.OpenChests(ctx, userID, chest, req.Count)
		})
	}
}

type SellItemRequest struct {
	ItemName string `json:"item" validate:"required,max=200"`
	Quantity int    `json:"quantity" validate:"min=1,max=1000"`
}

// SellItemResponse reports the currency earned by a sale
type SellItemResponse struct {
	Earned int64 `json:"earned"`
}

// HandleSellItem sells backpack items for currency
// @Summary Sell item
// @Tags character
// @Accept json
// @Produce json
// @Param userID path string true "User ID"
// @Param request body SellItemRequest true "Item and quantity"
// @Success 200 {object} SellItemResponse
// @Failure 404 {object} ErrorResponse
// @Router /characters/{userID}/sell [post]
func HandleSellItem(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, ParamUserID)
		handleAction(w, r, ErrMsgSellItemFailed, func(ctx context.Context, req SellItemRequest) (SellItemResponse, error) {
			earned, err := svc.Sell(ctx, userID, req.ItemName, req.Quantity)
			if err != nil {
				return SellItemResponse{}, err
			}
			return SellItemResponse{Earned: earned}, nil
		})
	}
}
