package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"synapseBack/internal/models"
	"synapseBack/internal/services"
)

type ConcertHandler struct {
	Service *services.ConcertService
}

func (h *ConcertHandler) CreateConcert(w http.ResponseWriter, r *http.Request) {
	var concert models.Concert
	if err := json.NewDecoder(r.Body).Decode(&concert); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if concert.Name == "" || concert.ArtistID == 0 {
		http.Error(w, "Missing concert name or artist", http.StatusBadRequest)
		return
	}

	createdConcert, err := h.Service.CreateConcert(r.Context(), concert)
	if err != nil {
		if isForeignKeyConstraintError(err) {
			http.Error(w, "Referenced artist does not exist", http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(createdConcert)
}

func (h *ConcertHandler) GetConcertByID(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get(":id")
	if idStr == "" {
		http.Error(w, "Missing concert ID", http.StatusBadRequest)
		return
	}

	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid concert ID", http.StatusBadRequest)
		return
	}

	concert, err := h.Service.GetConcertByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrConcertNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(concert)
}

func (h *ConcertHandler) GetConcerts(w http.ResponseWriter, r *http.Request) {
	concerts, err := h.Service.GetConcerts(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(concerts); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

func (h *ConcertHandler) UpdateConcert(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get(":id")
	if idStr == "" {
		http.Error(w, "Missing concert ID", http.StatusBadRequest)
		return
	}

	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid concert ID", http.StatusBadRequest)
		return
	}

	var concert models.Concert
	if err := json.NewDecoder(r.Body).Decode(&concert); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	concert.ID = id

	updatedConcert, err := h.Service.UpdateConcert(r.Context(), concert)
	if err != nil {
		if errors.Is(err, models.ErrConcertNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		if isForeignKeyConstraintError(err) {
			http.Error(w, "Referenced artist does not exist", http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(updatedConcert)
}

func (h *ConcertHandler) DeleteConcert(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get(":id")
	if idStr == "" {
		http.Error(w, "Missing concert ID", http.StatusBadRequest)
		return
	}

	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid concert ID", http.StatusBadRequest)
		return
	}

	err = h.Service.DeleteConcert(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrConcertNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
