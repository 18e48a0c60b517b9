package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/wordrush/wordrush/internal/api/apierr"
	"github.com/wordrush/wordrush/internal/api/middleware"
	"github.com/wordrush/wordrush/internal/api/request"
	"github.com/wordrush/wordrush/internal/api/response"
	"github.com/wordrush/wordrush/internal/language"
	"github.com/wordrush/wordrush/internal/model"
	"github.com/wordrush/wordrush/internal/services/round"
)

// RoundHandler handles round endpoints
type RoundHandler struct {
	roundController *round.Controller
}

// NewRoundHandler creates a new round handler
func NewRoundHandler(roundController *round.Controller) *RoundHandler {
	return &RoundHandler{
		roundController: roundController,
	}
}

// Create handles POST /api/v1/rounds
func (h *RoundHandler) Create(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	var req request.CreateRoundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid JSON body"))
		return
	}
	if req.Rows <= 0 || req.Cols <= 0 {
		apierr.WriteError(w, model.ErrInvalidDimensions)
		return
	}

	players := []model.PlayerID{player.ID}
	for _, id := range req.PlayerIDs {
		pid := model.PlayerID(id)
		if pid != player.ID {
			players = append(players, pid)
		}
	}

	rnd, err := h.roundController.CreateRound(r.Context(), language.Language(req.Language), req.Rows, req.Cols, players)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.RoundFromModel(rnd))
}

// Get handles GET /api/v1/rounds/{id}. Auth is optional: spectators get
// the shared round state, a participant additionally sees the words they
// have found so far.
func (h *RoundHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.RoundID(mux.Vars(r)["id"])

	rnd, err := h.roundController.GetRound(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	resp := response.RoundFromModel(rnd)
	if session := middleware.GetSession(r.Context()); session != nil {
		resp.FoundWords = rnd.Accepted[session.PlayerID]
	}
	response.JSON(w, http.StatusOK, resp)
}

// Submit handles POST /api/v1/rounds/{id}/submit
func (h *RoundHandler) Submit(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	id := model.RoundID(mux.Vars(r)["id"])

	var req request.SubmitWordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid JSON body"))
		return
	}

	// Words arriving through the API are validated by the engine itself,
	// so they count as auto-validated for combo purposes
	result, err := h.roundController.SubmitWord(r.Context(), id, player.ID, req.Word, true)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SubmissionFromModel(result))
}

// Finish handles POST /api/v1/rounds/{id}/finish
func (h *RoundHandler) Finish(w http.ResponseWriter, r *http.Request) {
	id := model.RoundID(mux.Vars(r)["id"])

	rnd, err := h.roundController.FinishRound(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RoundFromModel(rnd))
}
