package handler

import (
	"net/http"

	"github.com/osse101/DuelArena_Go/internal/logger"
	"github.com/osse101/DuelArena_Go/internal/subalert"
)

// SubscriptionHandler handles subscription webhook events
type SubscriptionHandler struct {
	service subalert.Service
}

// NewSubscriptionHandler creates a new subscription handler
func NewSubscriptionHandler(service subalert.Service) *SubscriptionHandler {
	return &SubscriptionHandler{service: service}
}

// SubscriptionEventRequest represents a subscription event from the platform.
// GiftedBy names the gifter for gift subs; the gifter receives the points.
type SubscriptionEventRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Tier     int    `json:"tier" validate:"required,min=1,max=3"`
	Months   int    `json:"months" validate:"gte=0"`
	GiftedBy string `json:"gifted_by" validate:"omitempty,max=100"`
}

// HandleSubscriptionEvent processes an incoming subscription event: the
// subscriber is credited points scaled by tier and streak length.
func (h *SubscriptionHandler) HandleSubscriptionEvent(w http.ResponseWriter, r *http.Request) {
	var req SubscriptionEventRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Subscription event"); err != nil {
		return
	}

	log := logger.FromContext(r.Context())

	if err := h.service.HandleSubscription(r.Context(), req.Username, req.Tier, req.Months, req.GiftedBy); err != nil {
		respondServiceError(w, r, ErrMsgHandleSubscriptionFailed, err)
		return
	}

	log.Info("Subscription event processed",
		"username", req.Username,
		"tier", req.Tier,
		"months", req.Months,
		"gifted_by", req.GiftedBy)

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgSubscriptionProcessed})
}
