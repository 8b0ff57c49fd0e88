package httpapi

import (
	"net/http"
	"strings"
)

type adminVerificationDTO struct {
	Valid bool `json:"valid"`
}

// VerifyAdminToken reports whether the path token unlocks the admin panel. A
// mismatch is a verification result, not an error: the response still carries
// a data body, just with a 401 status.
func (h *Handler) VerifyAdminToken(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.VerifyAdminToken")
	defer span.End()

	token := strings.TrimSpace(r.PathValue("token"))
	valid, err := h.adminService.VerifyToken(ctx, token)
	if err != nil {
		h.logger.ErrorContext(ctx, "verify admin token failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	status := http.StatusOK
	if !valid {
		status = http.StatusUnauthorized
	}

	writeSuccess(ctx, w, status, adminVerificationDTO{Valid: valid})
}
