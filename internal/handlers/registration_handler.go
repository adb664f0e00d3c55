package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"synapseBack/internal/models"
	"synapseBack/internal/services"
)

type RegistrationHandler struct {
	Service *services.RegistrationService
}

func (h *RegistrationHandler) CreateRegistration(w http.ResponseWriter, r *http.Request) {
	var reg models.Registration
	if err := json.NewDecoder(r.Body).Decode(&reg); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if reg.UserID == 0 || reg.EventID == 0 {
		http.Error(w, "Missing user or event ID", http.StatusBadRequest)
		return
	}

	createdReg, err := h.Service.CreateRegistration(r.Context(), reg)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrEventNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, models.ErrDuplicateRegistration),
			errors.Is(err, models.ErrRegistrationClosed):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			if isForeignKeyConstraintError(err) {
				http.Error(w, "Referenced user or event does not exist", http.StatusBadRequest)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(createdReg)
}

func (h *RegistrationHandler) GetRegistrations(w http.ResponseWriter, r *http.Request) {
	regs, err := h.Service.GetRegistrations(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(regs); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

func (h *RegistrationHandler) GetRegistrationsByEvent(w http.ResponseWriter, r *http.Request) {
	eventIDStr := r.URL.Query().Get(":event_id")
	eventID, err := strconv.Atoi(eventIDStr)
	if err != nil {
		http.Error(w, "Invalid event ID", http.StatusBadRequest)
		return
	}

	regs, err := h.Service.GetRegistrationsByEvent(r.Context(), eventID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(regs)
}

func (h *RegistrationHandler) GetRegistrationsByUser(w http.ResponseWriter, r *http.Request) {
	userIDStr := r.URL.Query().Get(":user_id")
	userID, err := strconv.Atoi(userIDStr)
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	regs, err := h.Service.GetRegistrationsByUser(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(regs)
}

func (h *RegistrationHandler) UpdateRegistrationStatus(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get(":id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid registration ID", http.StatusBadRequest)
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	switch req.Status {
	case "pending", "confirmed", "cancelled":
	default:
		http.Error(w, "Invalid status", http.StatusBadRequest)
		return
	}

	if err := h.Service.UpdateRegistrationStatus(r.Context(), id, req.Status); err != nil {
		if errors.Is(err, models.ErrRegistrationNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": req.Status})
}

func (h *RegistrationHandler) DeleteRegistration(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get(":id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid registration ID", http.StatusBadRequest)
		return
	}

	if err := h.Service.DeleteRegistration(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrRegistrationNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
