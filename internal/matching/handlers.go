package matching

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/orbitcampus/orbit-backend/internal/common/utils"
)

type Handler struct {
	service     Service
	adminSecret string
}

func NewHandler(service Service, adminSecret string) *Handler {
	return &Handler{service: service, adminSecret: adminSecret}
}

// GenerateMatches triggers a full matching run. Guarded by the shared admin
// secret rather than user auth; only the operations side calls this.
func (h *Handler) GenerateMatches(w http.ResponseWriter, r *http.Request) {
	var dto GenerateMatchesDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := utils.ValidateStruct(&dto); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if subtle.ConstantTimeCompare([]byte(dto.AdminSecret), []byte(h.adminSecret)) != 1 {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	summary, err := h.service.RunMatching(r.Context())
	if err != nil {
		if err == ErrRunInProgress {
			utils.RespondWithError(w, http.StatusConflict, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Matching run failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message":         "Matching complete",
		"run_id":          summary.RunID,
		"matches_created": summary.MatchesCreated,
		"users_matched":   summary.UsersMatched,
	})
}

// GetMyMatch returns the current user's valentine match view.
func (h *Handler) GetMyMatch(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int64)

	view, err := h.service.GetMatchForUser(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to get match")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, view)
}
