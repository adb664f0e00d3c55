package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"synapseBack/internal/models"
	"synapseBack/internal/services"
)

type AccommodationHandler struct {
	Service *services.AccommodationService
}

func (h *AccommodationHandler) CreateAccommodation(w http.ResponseWriter, r *http.Request) {
	var acc models.Accommodation
	if err := json.NewDecoder(r.Body).Decode(&acc); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if acc.Name == "" {
		http.Error(w, "Missing accommodation name", http.StatusBadRequest)
		return
	}

	createdAcc, err := h.Service.CreateAccommodation(r.Context(), acc)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(createdAcc)
}

func (h *AccommodationHandler) GetAccommodationByID(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get(":id")
	if idStr == "" {
		http.Error(w, "Missing accommodation ID", http.StatusBadRequest)
		return
	}

	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid accommodation ID", http.StatusBadRequest)
		return
	}

	acc, err := h.Service.GetAccommodationByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrAccommodationNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(acc)
}

func (h *AccommodationHandler) GetAccommodations(w http.ResponseWriter, r *http.Request) {
	accs, err := h.Service.GetAccommodations(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(accs); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

func (h *AccommodationHandler) UpdateAccommodation(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get(":id")
	if idStr == "" {
		http.Error(w, "Missing accommodation ID", http.StatusBadRequest)
		return
	}

	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid accommodation ID", http.StatusBadRequest)
		return
	}

	var acc models.Accommodation
	if err := json.NewDecoder(r.Body).Decode(&acc); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	acc.ID = id

	updatedAcc, err := h.Service.UpdateAccommodation(r.Context(), acc)
	if err != nil {
		if errors.Is(err, models.ErrAccommodationNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(updatedAcc)
}

func (h *AccommodationHandler) DeleteAccommodation(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get(":id")
	if idStr == "" {
		http.Error(w, "Missing accommodation ID", http.StatusBadRequest)
		return
	}

	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid accommodation ID", http.StatusBadRequest)
		return
	}

	err = h.Service.DeleteAccommodation(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrAccommodationNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
