package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/deepthansh-m/WhisperNet/api/entitlements"
	"github.com/deepthansh-m/WhisperNet/api/location"
	"github.com/deepthansh-m/WhisperNet/api/models"

	"github.com/google/uuid"
)

// writeError maps the shared error taxonomy onto status codes. The
// original error is logged; the client gets the generic message.
func writeError(w http.ResponseWriter, err error, msg string) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, models.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, models.ErrUnauthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, models.ErrPremiumRequired):
		status = http.StatusPaymentRequired
	case errors.Is(err, models.ErrSelfReaction):
		status = http.StatusForbidden
	case errors.Is(err, models.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, location.ErrNoFix):
		status = http.StatusConflict
	case errors.Is(err, models.ErrStorageUnavailable):
		status = http.StatusServiceUnavailable
	}
	log.Println(msg+":", err)
	http.Error(w, msg, status)
}

// premiumFor looks up the caller's tier. A missing user means the token
// outlived the account, so the request is unauthenticated.
func premiumFor(provider entitlements.Provider, userID uuid.UUID) (bool, error) {
	premium, err := provider.IsPremium(userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return false, models.ErrUnauthenticated
		}
		return false, err
	}
	return premium, nil
}
