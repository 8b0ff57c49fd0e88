package httpapi

import (
	"fmt"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/bergomi/bergomi-store/internal/domain/contactlink"
	"github.com/bergomi/bergomi-store/internal/usecase"
)

type contactLinkRequest struct {
	Link string `json:"link" validate:"required,url"`
}

type contactLinkDTO struct {
	ID        string    `json:"id"`
	Link      string    `json:"link"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func contactLinkToDTO(item contactlink.Link) contactLinkDTO {
	return contactLinkDTO{
		ID:        item.ID,
		Link:      item.URL,
		IsActive:  item.IsActive,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

func (h *Handler) GetContactLink(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetContactLink")
	defer span.End()

	item, exists, err := h.contactLinkService.GetActive(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get contact link failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	if !exists {
		// No configured link yet: the storefront treats an empty link as
		// "hide the contact button".
		writeSuccess(ctx, w, http.StatusOK, map[string]string{"link": ""})
		return
	}

	writeSuccess(ctx, w, http.StatusOK, contactLinkToDTO(item))
}

func (h *Handler) SetContactLink(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetContactLink")
	defer span.End()

	var req contactLinkRequest
	decoder := jsoniter.ConfigCompatibleWithStandardLibrary.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.contactLinkService.SetActive(ctx, req.Link)
	if err != nil {
		h.logger.WarnContext(ctx, "set contact link failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, contactLinkToDTO(item))
}
