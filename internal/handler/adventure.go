package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/osse101/Adventure_Go/internal/combat"
	"github.com/osse101/Adventure_Go/internal/domain"
	"github.com/osse101/Adventure_Go/internal/logger"
	"github.com/osse101/Adventure_Go/internal/session"
)

// URL parameter names
const (
	ParamGroupID = "groupID"
	ParamUserID  = "userID"
)

// SessionResponse is the public view of a live adventure
type SessionResponse struct {
	ID        uuid.UUID                  `json:"id"`
	GroupID   string                     `json:"group_id"`
	StarterID string                     `json:"starter_id"`
	State     domain.SessionState        `json:"state"`
	Monster   string                     `json:"monster"`
	Attribute domain.Attribute           `json:"attribute"`
	Boss      bool                       `json:"boss"`
	Miniboss  bool                       `json:"miniboss"`
	HP        int                        `json:"hp"`
	Dipl      int                        `json:"dipl"`
	Deadline  time.Time                  `json:"deadline"`
	Rosters   map[domain.Action][]string `json:"rosters"`
}

func newSessionResponse(s *domain.Session) SessionResponse {
	return SessionResponse{
		ID:        s.ID,
		GroupID:   s.GroupID,
		StarterID: s.StarterID,
		State:     s.State,
		Monster:   s.Monster.DisplayName(),
		Attribute: s.Monster.Attribute,
		Boss:      s.Boss,
		Miniboss:  s.Miniboss,
		HP:        int(s.Monster.EffectiveHP()),
		Dipl:      int(s.Monster.EffectiveDipl()),
		Deadline:  s.Deadline(),
		Rosters:   s.Rosters,
	}
}

type StartAdventureRequest struct {
	StarterID string `json:"starter_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Monster   string `json:"monster" validate:"max=100"`
}

// HandleStartAdventure opens an adventure for a group
// @Summary Start adventure
// @Description Open a new adventure in a group. Monster names a template; empty draws one for the group.
// @Tags adventure
// @Accept json
// @Produce json
// @Param groupID path string true "Group ID"
// @Param request body StartAdventureRequest true "Starter details"
// @Success 201 {object} SessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /adventures/{groupID} [post]
func HandleStartAdventure(svc session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		groupID := chi.URLParam(r, ParamGroupID)

		var req StartAdventureRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Start adventure"); err != nil {
			return
		}

		s, err := svc.Start(r.Context(), groupID, req.StarterID, req.Monster)
		if err != nil {
			respondServiceError(w, r, ErrMsgStartAdventureFailed, err)
			return
		}

		log.Info("Adventure started", "groupID", groupID, "sessionID", s.ID, "monster", s.Monster.DisplayName())
		respondJSON(w, http.StatusCreated, newSessionResponse(s))
	}
}

// HandleGetAdventure returns the live adventure of a group
// @Summary Get adventure
// @Tags adventure
// @Produce json
// @Param groupID path string true "Group ID"
// @Success 200 {object} SessionResponse
// @Failure 404 {object} ErrorResponse
// @Router /adventures/{groupID} [get]
func HandleGetAdventure(svc session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := svc.Get(r.Context(), chi.URLParam(r, ParamGroupID))
		if err != nil {
			respondServiceError(w, r, ErrMsgGetAdventureFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, newSessionResponse(s))
	}
}

// HandleListAdventures lists every live adventure
// @Summary List adventures
// @Tags adventure
// @Produce json
// @Success 200 {array} SessionResponse
// @Router /adventures [get]
func HandleListAdventures(svc session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		active := svc.Active(r.Context())
		out := make([]SessionResponse, 0, len(active))
		for _, s := range active {
			out = append(out, newSessionResponse(s))
		}
		respondJSON(w, http.StatusOK, out)
	}
}

type JoinAdventureRequest struct {
	UserID string `json:"user_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Action string `json:"action" validate:"required,action"`
}

// HandleJoinAdventure commits a participant to a roster
// @Summary Join adventure
// @Description Join or switch roster. Actions are fight, magic, talk, pray and run.
// @Tags adventure
// @Accept json
// @Produce json
// @Param groupID path string true "Group ID"
// @Param request body JoinAdventureRequest true "Participant and action"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /adventures/{groupID}/join [post]
func HandleJoinAdventure(svc session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groupID := chi.URLParam(r, ParamGroupID)
		handleAction(w, r, ErrMsgJoinAdventureFailed, func(ctx context.Context, req JoinAdventureRequest) (SessionResponse, error) {
			action, err := domain.ParseAction(req.Action)
			if err != nil {
				return SessionResponse{}, err
			}
			s, err := svc.Join(ctx, groupID, req.UserID, action)
			if err != nil {
				return SessionResponse{}, err
			}
			return newSessionResponse(s), nil
		})
	}
}

type LeaveAdventureRequest struct {
	UserID string `json:"user_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
}

// HandleLeaveAdventure removes a participant from every roster
// @Summary Leave adventure
// @Tags adventure
// @Accept json
// @Produce json
// @Param groupID path string true "Group ID"
// @Param request body LeaveAdventureRequest true "Participant"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /adventures/{groupID}/leave [post]
func HandleLeaveAdventure(svc session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groupID := chi.URLParam(r, ParamGroupID)
		handleAction(w, r, ErrMsgLeaveAdventureFailed, func(ctx context.Context, req LeaveAdventureRequest) (SessionResponse, error) {
			s, err := svc.Leave(ctx, groupID, req.UserID)
			if err != nil {
				return SessionResponse{}, err
			}
			return newSessionResponse(s), nil
		})
	}
}

type ReactRequest struct {
	Marker string `json:"marker" validate:"required,max=32"`
}

// HandleReact records a reaction marker used by miniboss gates
// @Summary React to adventure
// @Tags adventure
// @Accept json
// @Produce json
// @Param groupID path string true "Group ID"
// @Param request body ReactRequest true "Reaction marker"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /adventures/{groupID}/react [post]
func HandleReact(svc session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groupID := chi.URLParam(r, ParamGroupID)
		handleAction(w, r, ErrMsgReactFailed, func(ctx context.Context, req ReactRequest) (SuccessResponse, error) {
			if _, err := svc.React(ctx, groupID, req.Marker); err != nil {
				return SuccessResponse{}, err
			}
			return SuccessResponse{Message: MsgReactionStored}, nil
		})
	}
}

type ResolveAdventureRequest struct {
	SessionID string `json:"session_id" validate:"required,uuid"`
}

// ParticipantResult is one participant's share of a resolution
type ParticipantResult struct {
	UserID     string          `json:"user_id"`
	Action     domain.Action   `json:"action"`
	Fumbled    bool            `json:"fumbled,omitempty"`
	Crit       bool            `json:"crit,omitempty"`
	XP         int64           `json:"xp"`
	Currency   int64           `json:"currency"`
	Penalty    int64           `json:"penalty,omitempty"`
	Chests     domain.Treasure `json:"chests"`
	NewLevel   int             `json:"new_level,omitempty"`
	CanRebirth bool            `json:"can_rebirth,omitempty"`
}

// ResolveAdventureResponse is the full outcome of a resolution
type ResolveAdventureResponse struct {
	SessionID    uuid.UUID           `json:"session_id"`
	Monster      string              `json:"monster"`
	Outcome      combat.Outcome      `json:"outcome"`
	Participants []ParticipantResult `json:"participants"`
}

// HandleResolveAdventure resolves a session before its countdown ends
// @Summary Resolve adventure
// @Description Run combat for a session now. A session resolves at most once.
// @Tags adventure
// @Accept json
// @Produce json
// @Param groupID path string true "Group ID"
// @Param request body ResolveAdventureRequest true "Session to resolve"
// @Success 200 {object} ResolveAdventureResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /adventures/{groupID}/resolve [post]
func HandleResolveAdventure(svc session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groupID := chi.URLParam(r, ParamGroupID)
		handleAction(w, r, ErrMsgResolveAdventureFailed, func(ctx context.Context, req ResolveAdventureRequest) (ResolveAdventureResponse, error) {
			id, err := uuid.Parse(req.SessionID)
			if err != nil {
				return ResolveAdventureResponse{}, domain.ErrInvalidInput
			}
			res, err := svc.Resolve(ctx, groupID, id)
			if err != nil {
				return ResolveAdventureResponse{}, err
			}
			return newResolveResponse(res), nil
		})
	}
}

func newResolveResponse(res *session.Result) ResolveAdventureResponse {
	out := ResolveAdventureResponse{
		SessionID:    res.Session.ID,
		Monster:      res.Session.Monster.DisplayName(),
		Outcome:      res.Outcome,
		Participants: make([]ParticipantResult, 0, len(res.Grants)),
	}
	for _, g := range res.Grants {
		p := ParticipantResult{
			UserID:     g.UserID,
			Action:     g.Action,
			Fumbled:    g.Fumbled,
			Crit:       g.Crit,
			XP:         g.XP,
			Currency:   g.Currency,
			Penalty:    g.Penalty,
			Chests:     g.Chests,
			CanRebirth: g.CanRebirth,
		}
		if g.Level.LeveledUp() {
			p.NewLevel = g.Level.NewLevel
		}
		out.Participants = append(out.Participants, p)
	}
	return out
}
