package http

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/users-proxy/internal/utils"
	"github.com/go-chi/chi/v5"
)

const idsQueryParam = "ids"

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		h.handleListingError(w, r, err)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := userIDFromPath(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	profile, err := h.services.UserService.GetUserProfile(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) getUserContact(w http.ResponseWriter, r *http.Request) {
	id, err := userIDFromPath(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	contact, err := h.services.UserService.GetUserContact(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	utils.WriteJSON(w, contact, http.StatusOK)
}

func (h *Handler) getUserAddress(w http.ResponseWriter, r *http.Request) {
	id, err := userIDFromPath(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	address, err := h.services.UserService.GetUserAddress(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	utils.WriteJSON(w, address, http.StatusOK)
}

func (h *Handler) getUsersBatch(w http.ResponseWriter, r *http.Request) {
	ids, err := userIDsFromQuery(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	profiles, err := h.services.UserService.GetUserProfiles(r.Context(), ids)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	utils.WriteJSON(w, profiles, http.StatusOK)
}

func userIDFromPath(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: got %q", ErrInvalidUserID, raw)
	}
	return id, nil
}

// userIDsFromQuery parses ?ids=1,2,3. Repeated parameters (?ids=1&ids=2) are
// accepted too. Blank entries are ignored, but at least one id is required.
func userIDsFromQuery(r *http.Request) ([]int64, error) {
	var ids []int64
	for _, value := range r.URL.Query()[idsQueryParam] {
		for _, raw := range strings.Split(value, ",") {
			raw = strings.TrimSpace(raw)
			if raw == "" {
				continue
			}

			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: got %q", ErrInvalidUserIDs, raw)
			}
			ids = append(ids, id)
		}
	}

	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: no ids given", ErrInvalidUserIDs)
	}

	return ids, nil
}
