package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cropcycle/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRegistryClientSuccess(t *testing.T) {
	var gotAuth string
	var gotBody models.RegistrationRecord
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/register/complete", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"data":{"user":{"email":"asha@example.com","name":"Asha","role":"farmer","isVerified":false}}}`))
	}))
	defer srv.Close()

	c := NewRegistryClient(srv.URL, zap.NewNop())
	rec := models.RegistrationRecord{Email: "asha@example.com", Name: "Asha", Role: models.RoleFarmer}
	user, err := c.CompleteRegistration(context.Background(), "tok123", rec)
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok123", gotAuth)
	assert.Equal(t, "asha@example.com", gotBody.Email)
	assert.Equal(t, models.RoleFarmer, user.Role)
}

func TestRegistryClientErrorMessageExtracted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"email already in use"}`))
	}))
	defer srv.Close()

	c := NewRegistryClient(srv.URL, zap.NewNop())
	_, err := c.CompleteRegistration(context.Background(), "", models.RegistrationRecord{})
	require.Error(t, err)

	var re *RegistrationError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "email already in use", re.Message)
	assert.Equal(t, http.StatusConflict, re.Status)
	assert.Equal(t, "email already in use", re.Error())
}

func TestRegistryClientErrorWithoutMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "plain text", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewRegistryClient(srv.URL, zap.NewNop())
	_, err := c.CompleteRegistration(context.Background(), "", models.RegistrationRecord{})

	var re *RegistrationError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "registration failed", re.Error())
}
