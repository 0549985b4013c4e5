package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"ticktock/config"
	"ticktock/middleware"
	"ticktock/repository"
	"ticktock/validation"
)

type AuthHandler struct {
	config *config.Config
	users  repository.Users
	auth   *middleware.Auth
}

func NewAuthHandler(cfg *config.Config, users repository.Users, auth *middleware.Auth) *AuthHandler {
	return &AuthHandler{
		config: cfg,
		users:  users,
		auth:   auth,
	}
}

type loginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

func readLogin(r *http.Request) (loginRequest, error) {
	var req loginRequest
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		err := json.NewDecoder(r.Body).Decode(&req)
		return req, err
	}
	if err := r.ParseForm(); err != nil {
		return req, err
	}
	req.Email = r.FormValue("email")
	req.Password = r.FormValue("password")
	switch r.FormValue("rememberMe") {
	case "on", "true", "1":
		req.RememberMe = true
	}
	return req, nil
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	req, err := readLogin(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := validation.ValidateLogin(validation.LoginValues{
		Email:      req.Email,
		Password:   req.Password,
		RememberMe: req.RememberMe,
	}); len(errs) > 0 {
		writeFieldErrors(w, errs)
		return
	}

	user, err := h.users.UserByEmail(r.Context(), strings.TrimSpace(req.Email))
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			writeServiceError(w, err)
			return
		}
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	// Without remember-me the cookie lives for the browser session only.
	expiration := h.config.JWTExpiration
	var cookieAge time.Duration
	if req.RememberMe {
		expiration = h.config.RememberMeExpiration
		cookieAge = expiration
	}

	token, err := h.auth.GenerateToken(user, expiration)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}
	middleware.SetSessionCookie(w, token, cookieAge)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"user":  user,
		"token": token,
	})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	middleware.ClearSessionCookie(w)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	writeJSON(w, http.StatusOK, map[string]interface{}{"user": user})
}
