package handler

import (
	"net/http"

	"github.com/osse101/DuelArena_Go/internal/donations"
	"github.com/osse101/DuelArena_Go/internal/logger"
)

// DonationHandler handles donation webhook events
type DonationHandler struct {
	service donations.Service
}

// NewDonationHandler creates a new donation handler
func NewDonationHandler(service donations.Service) *DonationHandler {
	return &DonationHandler{service: service}
}

// DonationEventRequest represents a donation event from the payment provider
type DonationEventRequest struct {
	Username  string  `json:"username" validate:"required,max=100"`
	AmountUSD float64 `json:"amount_usd" validate:"required,gt=0"`
}

// HandleDonationEvent processes an incoming donation event, crediting the
// donor points at the configured conversion rate.
func (h *DonationHandler) HandleDonationEvent(w http.ResponseWriter, r *http.Request) {
	var req DonationEventRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Donation event"); err != nil {
		return
	}

	log := logger.FromContext(r.Context())

	if err := h.service.HandleDonation(r.Context(), req.Username, req.AmountUSD); err != nil {
		respondServiceError(w, r, ErrMsgHandleDonationFailed, err)
		return
	}

	log.Info("Donation event processed",
		"username", req.Username,
		"amount_usd", req.AmountUSD)

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgDonationProcessed})
}
