package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"cropcycle/models"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// handleStartWizard creates a fresh registration wizard session at step 1.
func (a *App) handleStartWizard(w http.ResponseWriter, r *http.Request) {
	s := NewWizardSession(uuid.NewString(), time.Now())

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	if _, err := a.sessions.InsertOne(ctx, s); err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(s)
}

func (a *App) loadWizard(ctx context.Context, id string) (*models.WizardSession, error) {
	var s models.WizardSession
	if err := a.sessions.FindOne(ctx, bson.M{"_id": id}).Decode(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (a *App) storeWizard(ctx context.Context, s *models.WizardSession) error {
	s.UpdatedAt = time.Now()
	_, err := a.sessions.ReplaceOne(ctx, bson.M{"_id": s.ID}, s)
	return err
}

// handleGetWizard returns the session as stored.
func (a *App) handleGetWizard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	s, err := a.loadWizard(ctx, chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}
	_ = json.NewEncoder(w).Encode(s)
}

// handleWizardFields writes the given fields onto the shared record, one
// field at a time; untouched fields keep their values.
func (a *App) handleWizardFields(w http.ResponseWriter, r *http.Request) {
	var req wizardFieldsReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	s, err := a.loadWizard(ctx, chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}
	for name, value := range req.Fields {
		if err := WizardSetField(s, name, value); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	if err := a.storeWizard(ctx, s); err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(s)
}

func (a *App) transitionWizard(w http.ResponseWriter, r *http.Request, move func(*models.WizardSession) bool) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	s, err := a.loadWizard(ctx, chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}
	// Out-of-range transitions are no-ops, not errors.
	if move(s) {
		if err := a.storeWizard(ctx, s); err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}
	}
	_ = json.NewEncoder(w).Encode(s)
}

func (a *App) handleWizardNext(w http.ResponseWriter, r *http.Request) {
	a.transitionWizard(w, r, WizardNext)
}

func (a *App) handleWizardPrevious(w http.ResponseWriter, r *http.Request) {
	a.transitionWizard(w, r, WizardPrevious)
}

// handleWizardSubmit completes the wizard from the final step: build the
// registration record, forward it upstream with the caller's token, and on
// success persist user_role and user_data on the session. On failure the
// session stays on the final step so the user can retry.
func (a *App) handleWizardSubmit(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 20*time.Second)
	defer cancel()

	s, err := a.loadWizard(ctx, chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}
	if s.CurrentStep != s.TotalSteps {
		http.Error(w, "submit is only available on the final step", http.StatusConflict)
		return
	}

	rec, err := BuildRegistrationRecord(s)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := a.registry.CompleteRegistration(ctx, bearerToken(r), rec)
	if err != nil {
		var re *RegistrationError
		if errors.As(err, &re) {
			a.log.Warn("registration rejected upstream", zap.String("message", re.Message), zap.Int("status", re.Status))
			http.Error(w, re.Error(), http.StatusBadGateway)
			return
		}
		a.log.Warn("registration failed", zap.Error(err))
		http.Error(w, "registration failed", http.StatusBadGateway)
		return
	}

	s.UserRole = user.Role
	s.UserData = user
	if err := a.storeWizard(ctx, s); err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	_ = json.NewEncoder(w).Encode(wizardSubmitResp{
		User:     user,
		Redirect: "/dashboard/" + user.Role,
	})
}
