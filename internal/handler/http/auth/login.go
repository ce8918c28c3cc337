package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/handler/http/bind"
	"newsdesk/internal/handler/http/respond"
	"newsdesk/internal/observability/logging"
	authservice "newsdesk/internal/service/auth"
	adminUC "newsdesk/internal/usecase/admin"
)

type loginRequest struct {
	Username string `json:"username" example:"sigitsetiadi"`
	Password string `json:"password" example:"your_password"`
}

// AdminDTO is the public view of an admin account. It never carries the password.
type AdminDTO struct {
	ID       string `json:"id" example:"a7e5c1d2-3b4f-4a6e-8c9d-0e1f2a3b4c5d"`
	Username string `json:"username" example:"sigitsetiadi"`
	Role     string `json:"role" example:"superadmin"`
}

type loginResponse struct {
	Success   bool       `json:"success" example:"true"`
	Admin     AdminDTO   `json:"admin"`
	Token     string     `json:"token,omitempty" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// LoginHandler authenticates an admin. When token signing is configured the
// response also carries a bearer token for the /api/admin routes.
//
// @Summary      Admin login
// @Description  Checks the username and password. Unknown users and wrong passwords get the same 401.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request body loginRequest true "Credentials"
// @Success      200 {object} loginResponse
// @Failure      400 {object} respond.ErrorBody "username or password missing"
// @Failure      401 {object} respond.ErrorBody "Invalid credentials"
// @Failure      429 {object} respond.ErrorBody "Too many requests - rate limit exceeded"
// @Header       429 {integer} Retry-After "Seconds until the client should retry"
// @Failure      500 {object} respond.ErrorBody
// @Router       /api/admin/login [post]
func LoginHandler(authService *authservice.AuthService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		logger := logging.FromContext(r.Context())

		var req loginRequest
		if err := bind.JSON(r, &req); err != nil {
			RecordAuthDuration("rejected", time.Since(start).Seconds())
			respond.DomainError(w, err)
			return
		}

		sess, err := authService.Login(r.Context(), req.Username, req.Password)
		switch {
		case err == nil:
		case errors.Is(err, entity.ErrValidationFailed):
			RecordAuthDuration("rejected", time.Since(start).Seconds())
			respond.JSON(w, http.StatusBadRequest, respond.ErrorBody{
				Message: "Username and password are required",
				Errors:  fieldErrors(err),
			})
			return
		case errors.Is(err, adminUC.ErrInvalidCredentials):
			RecordAuthDuration("invalid", time.Since(start).Seconds())
			respond.SafeErrorV2(w, http.StatusUnauthorized,
				respond.NewAppError(http.StatusUnauthorized, "Invalid credentials", nil))
			return
		default:
			RecordAuthDuration("error", time.Since(start).Seconds())
			logger.Error("admin login failed", slog.Any("error", respond.SanitizeError(err)))
			respond.SafeError(w, http.StatusInternalServerError, err)
			return
		}

		RecordAuthDuration("success", time.Since(start).Seconds())
		out := loginResponse{
			Success: true,
			Admin: AdminDTO{
				ID:       sess.Admin.ID,
				Username: sess.Admin.Username,
				Role:     sess.Admin.Role,
			},
			Token: sess.Token,
		}
		if sess.Token != "" {
			out.ExpiresAt = &sess.ExpiresAt
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

func fieldErrors(err error) []respond.FieldError {
	fields := entity.Fields(err)
	out := make([]respond.FieldError, 0, len(fields))
	for _, f := range fields {
		out = append(out, respond.FieldError{Field: f.Field, Message: f.Message})
	}
	return out
}
