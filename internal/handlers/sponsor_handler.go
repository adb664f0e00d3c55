package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"synapseBack/internal/models"
	"synapseBack/internal/services"
)

type SponsorHandler struct {
	Service *services.SponsorService
}

func (h *SponsorHandler) CreateSponsor(w http.ResponseWriter, r *http.Request) {
	var sponsor models.Sponsor
	if err := json.NewDecoder(r.Body).Decode(&sponsor); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if sponsor.Name == "" {
		http.Error(w, "Missing sponsor name", http.StatusBadRequest)
		return
	}

	createdSponsor, err := h.Service.CreateSponsor(r.Context(), sponsor)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(createdSponsor)
}

func (h *SponsorHandler) GetSponsors(w http.ResponseWriter, r *http.Request) {
	sponsors, err := h.Service.GetSponsors(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(sponsors); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

func (h *SponsorHandler) UpdateSponsor(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get(":id")
	if idStr == "" {
		http.Error(w, "Missing sponsor ID", http.StatusBadRequest)
		return
	}

	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid sponsor ID", http.StatusBadRequest)
		return
	}

	var sponsor models.Sponsor
	if err := json.NewDecoder(r.Body).Decode(&sponsor); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	sponsor.ID = id

	updatedSponsor, err := h.Service.UpdateSponsor(r.Context(), sponsor)
	if err != nil {
		if errors.Is(err, models.ErrSponsorNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(updatedSponsor)
}

func (h *SponsorHandler) DeleteSponsor(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get(":id")
	if idStr == "" {
		http.Error(w, "Missing sponsor ID", http.StatusBadRequest)
		return
	}

	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid sponsor ID", http.StatusBadRequest)
		return
	}

	err = h.Service.DeleteSponsor(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrSponsorNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
