package authhandlers

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"

	authservice "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/auth/application"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/httputil"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/observability/attr"
)

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required, validation.Length(1, 64)),
		validation.Field(&r.Password, validation.Required, validation.Length(1, 128)),
	)
}

// HandleLogin exchanges admin credentials for a bearer token.
func (h *AuthHandlers) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "AuthHandlers.HandleLogin")
	defer span.End()

	var req LoginRequest
	if err := httputil.ReadJSON(w, r, &req); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.service.Login(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, authservice.ErrInvalidCredentials) {
			httputil.WriteError(w, http.StatusUnauthorized, err.Error())
			return
		}
		h.logger.ErrorContext(ctx, "Login failed", attr.ExtractCorrelationID(ctx), attr.Error(err))
		httputil.WriteError(w, http.StatusInternalServerError, "login failed")
		return
	}

	_ = httputil.WriteJSON(w, http.StatusOK, resp)
}
