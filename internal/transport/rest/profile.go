package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/saudaghar/marketplace-backend/internal/domain"
	"github.com/saudaghar/marketplace-backend/internal/service/profile"
)

type profileService interface {
	Me(ctx context.Context) (*domain.Profile, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.PublicProfile, error)
	Update(ctx context.Context, input profile.UpdateProfileInput) (*domain.Profile, error)
}

// ProfileHandler serves /me and public profile reads.
type ProfileHandler struct {
	svc profileService
	log *slog.Logger
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(svc profileService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{svc: svc, log: logger.With("handler", "profile")}
}

type updateProfileRequest struct {
	FullName           *string `json:"full_name"`
	BusinessName       *string `json:"business_name"`
	BusinessType       *string `json:"business_type"`
	BusinessAddress    *string `json:"business_address"`
	Phone              *string `json:"phone"`
	NTNNumber          *string `json:"ntn_number"`
	CNICPhotoURL       *string `json:"cnic_photo_url"`
	BusinessLicenseURL *string `json:"business_license_url"`
}

// Me handles GET /me.
func (h *ProfileHandler) Me(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Me(r.Context())
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(p))
}

// UpdateMe handles PATCH /me.
func (h *ProfileHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.svc.Update(r.Context(), profile.UpdateProfileInput{
		FullName:           req.FullName,
		BusinessName:       req.BusinessName,
		BusinessType:       req.BusinessType,
		BusinessAddress:    req.BusinessAddress,
		Phone:              req.Phone,
		NTNNumber:          req.NTNNumber,
		CNICPhotoURL:       req.CNICPhotoURL,
		BusinessLicenseURL: req.BusinessLicenseURL,
	})
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(p))
}

// Get handles GET /profiles/{id}.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPublicProfileResponse(*p))
}
