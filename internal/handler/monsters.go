package handler

import (
	"net/http"

	"github.com/osse101/Adventure_Go/internal/content"
	"github.com/osse101/Adventure_Go/internal/domain"
)

// MonsterResponse is a monster template as listed to players
type MonsterResponse struct {
	Name     string               `json:"name"`
	HP       int                  `json:"hp"`
	Dipl     int                  `json:"dipl"`
	Boss     bool                 `json:"boss"`
	Miniboss *domain.MinibossGate `json:"miniboss,omitempty"`
}

// HandleListMonsters lists the monster templates by name
// @Summary List monsters
// @Tags content
// @Produce json
// @Success 200 {array} MonsterResponse
// @Router /monsters [get]
func HandleListMonsters(catalog *content.Catalog) http.HandlerFunc {
	list := catalog.MonsterList()
	out := make([]MonsterResponse, 0, len(list))
	for _, m := range list {
		out = append(out, MonsterResponse{
			Name:     m.Name,
			HP:       m.HP,
			Dipl:     m.Dipl,
			Boss:     m.Boss,
			Miniboss: m.Miniboss,
		})
	}

	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, out)
	}
}
