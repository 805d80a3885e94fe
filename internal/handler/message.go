package handler

import (
	"net/http"

	"github.com/osse101/DuelArena_Go/internal/logger"
	"github.com/osse101/DuelArena_Go/internal/user"
)

// HandleMessageRequest represents an incoming chat message.
type HandleMessageRequest struct {
	Platform    string `json:"platform" validate:"required,platform"`
	Username    string `json:"username" validate:"required,max=100,excludesall=\x00\n\r\t"`
	DisplayName string `json:"display_name" validate:"max=100"`
	Message     string `json:"message" validate:"required,max=500"`
}

// HandleMessageResponse reports whether the message was a recognized command.
type HandleMessageResponse struct {
	Handled bool `json:"handled"`
}

// HandleMessageHandler processes an incoming chat message: it registers the
// sender, marks them active, and dispatches any chat command in the message.
func HandleMessageHandler(userService user.Service, tracker *user.ActiveChatterTracker, router *CommandRouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		if r.Method != http.MethodPost {
			log.Warn(ErrMsgMethodNotAllowed, "method", r.Method)
			http.Error(w, ErrMsgMethodNotAllowed, http.StatusMethodNotAllowed)
			return
		}

		var req HandleMessageRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Handle message"); err != nil {
			return
		}

		displayName := req.DisplayName
		if displayName == "" {
			displayName = req.Username
		}

		if _, err := userService.Register(r.Context(), req.Username, displayName, req.Platform); err != nil {
			log.Error(ErrMsgHandleMessageFailed,
				"error", err,
				"platform", req.Platform,
				"username", req.Username)
			http.Error(w, ErrMsgHandleMessageFailed, http.StatusInternalServerError)
			return
		}

		tracker.Track(req.Platform, req.Username)

		handled, err := router.Dispatch(r.Context(), req.Username, req.Message)
		if err != nil {
			respondServiceError(w, r, LogMsgCommandFailed, err)
			return
		}

		log.Info(LogMsgMessageProcessed, "username", req.Username, "handled", handled)

		respondJSON(w, http.StatusOK, HandleMessageResponse{Handled: handled})
	}
}
