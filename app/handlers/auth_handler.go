package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/andikanugraha/go-multistore/app/helpers"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.render.JSON(w, http.StatusBadRequest, errorResponse{Error: "invalid login payload"})
		return
	}

	user, err := h.userRepo.FindByEmail(r.Context(), req.Email)
	if err != nil {
		log.Printf("Login: error finding user by email: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
		return
	}
	if user == nil || user.Password == "" || !helpers.PasswordCompare(user.Password, []byte(req.Password)) {
		h.render.JSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid email or password"})
		return
	}

	if err := h.sessionStore.SetUserID(w, r, user.ID); err != nil {
		log.Printf("Login: error saving session for user %s: %v", user.ID, err)
		h.render.JSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to create session"})
		return
	}

	h.render.JSON(w, http.StatusOK, user)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionStore.ClearSession(w, r); err != nil {
		log.Printf("Logout: error clearing session: %v", err)
	}
	h.render.JSON(w, http.StatusOK, map[string]string{"message": "signed out"})
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user := h.currentUser(r)
	if user == nil {
		h.render.JSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthenticated: sign in to continue"})
		return
	}
	h.render.JSON(w, http.StatusOK, user)
}
