package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/jullianMozo/BlogPostAPI/app/services"
)

// AuthController handles registration and login
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register handles creating a new user account
func (ac *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendMessage(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	user, err := ac.authService.Register(req.Username, req.Password)
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusCreated, user.Projection())
}

// Login handles verifying credentials and issuing an access token
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendMessage(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	token, err := ac.authService.Login(req.Username, req.Password)
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, map[string]string{"token": token})
}
