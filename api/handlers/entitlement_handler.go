package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/deepthansh-m/WhisperNet/api/auth"
	"github.com/deepthansh-m/WhisperNet/api/dtos"
	"github.com/deepthansh-m/WhisperNet/api/entitlements"
	"github.com/deepthansh-m/WhisperNet/api/repositories"
)

// POST /entitlements/activate
//
// Called when a purchase completes. The payment flow itself happens
// elsewhere; this only flips the persisted flag.
func PostEntitlementsActivateHandler(userRepo repositories.UserRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := auth.UserIDFromContext(r.Context())

		if err := userRepo.SetPremium(userID); err != nil {
			writeError(w, err, "unable to activate premium")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// GET /entitlements
func GetEntitlementsHandler(provider entitlements.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := auth.UserIDFromContext(r.Context())

		premium, err := premiumFor(provider, userID)
		if err != nil {
			writeError(w, err, "unable to fetch entitlements")
			return
		}

		minKm, maxKm := entitlements.RadiusBounds(premium)
		resp := dtos.EntitlementsResponse{
			IsPremium:   premium,
			MinRadiusKm: minKm,
			MaxRadiusKm: maxKm,
		}
		for _, t := range entitlements.AllowedThemes(premium) {
			resp.Themes = append(resp.Themes, string(t))
		}
		for _, k := range entitlements.AllowedReactionKinds(premium) {
			resp.ReactionKinds = append(resp.ReactionKinds, string(k))
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}
}
