package handler

import (
	"net/http"

	"github.com/osse101/DuelArena_Go/internal/duel"
	"github.com/osse101/DuelArena_Go/internal/stats"
	"github.com/osse101/DuelArena_Go/internal/user"
)

// DuelHandler handles duel-related HTTP requests
type DuelHandler struct {
	service  duel.Service
	statsSvc stats.Service
}

// NewDuelHandler creates a new duel handler
func NewDuelHandler(service duel.Service, statsSvc stats.Service) *DuelHandler {
	return &DuelHandler{
		service:  service,
		statsSvc: statsSvc,
	}
}

// ChallengeRequest represents a duel challenge request
type ChallengeRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Target   string `json:"target" validate:"required,max=100"`
	Stake    string `json:"stake"`
}

// HandleChallenge issues a duel challenge on behalf of a user
func (h *DuelHandler) HandleChallenge(w http.ResponseWriter, r *http.Request) {
	var req ChallengeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Challenge duel"); err != nil {
		return
	}

	if err := h.service.Initiate(r.Context(), req.Username, req.Target, req.Stake); err != nil {
		respondServiceError(w, r, ErrMsgChallengeFailed, err)
		return
	}

	respondJSON(w, http.StatusCreated, SuccessResponse{Message: MsgChallengeSent})
}

// ParticipantRequest identifies the user acting on a pending challenge
type ParticipantRequest struct {
	Username string `json:"username" validate:"required,max=100"`
}

// AcceptResponse represents a resolved duel
type AcceptResponse struct {
	Message string      `json:"message"`
	Result  interface{} `json:"result"`
}

// HandleAccept accepts the caller's incoming challenge and resolves the duel
func (h *DuelHandler) HandleAccept(w http.ResponseWriter, r *http.Request) {
	var req ParticipantRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Accept duel"); err != nil {
		return
	}

	result, err := h.service.Accept(r.Context(), req.Username)
	if err != nil {
		respondServiceError(w, r, ErrMsgAcceptFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, AcceptResponse{
		Message: MsgDuelResolved,
		Result:  result,
	})
}

// HandleDecline rejects the caller's incoming challenge
func (h *DuelHandler) HandleDecline(w http.ResponseWriter, r *http.Request) {
	var req ParticipantRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Decline duel"); err != nil {
		return
	}

	if err := h.service.Decline(r.Context(), req.Username); err != nil {
		respondServiceError(w, r, ErrMsgDeclineFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgDuelDeclined})
}

// HandleCancel withdraws the caller's outgoing challenge
func (h *DuelHandler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	var req ParticipantRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Cancel duel"); err != nil {
		return
	}

	if err := h.service.Cancel(r.Context(), req.Username); err != nil {
		respondServiceError(w, r, ErrMsgCancelFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgDuelCancelled})
}

// HandleStatus reports a user's pending challenges
func (h *DuelHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	username, ok := GetQueryParam(r, w, "username")
	if !ok {
		return
	}

	status, err := h.service.Status(r.Context(), username)
	if err != nil {
		respondServiceError(w, r, ErrMsgStatusFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, status)
}

// HandleStats reports a user's lifetime duel statistics
func (h *DuelHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	username, ok := GetQueryParam(r, w, "username")
	if !ok {
		return
	}

	duelStats, err := h.statsSvc.GetDuelStats(r.Context(), user.Canonicalize(username))
	if err != nil {
		respondServiceError(w, r, ErrMsgStatsFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, duelStats)
}
