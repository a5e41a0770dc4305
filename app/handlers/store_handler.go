package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/andikanugraha/go-multistore/app/services"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

func (h *Handler) UpsertStore(w http.ResponseWriter, r *http.Request) {
	var input services.StoreInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.render.JSON(w, http.StatusBadRequest, errorResponse{Error: "invalid store payload"})
		return
	}
	if input.ID == "" {
		input.ID = uuid.New().String()
	}

	store, err := h.storeSvc.Upsert(r.Context(), h.currentUser(r), &input)
	if err != nil {
		h.renderServiceError(w, err)
		return
	}
	h.render.JSON(w, http.StatusOK, store)
}

func (h *Handler) GetStores(w http.ResponseWriter, r *http.Request) {
	stores, err := h.storeRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("GetStores: failed to list stores: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to list stores"})
		return
	}
	h.render.JSON(w, http.StatusOK, stores)
}

func (h *Handler) GetStoreBySlug(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	store, err := h.storeRepo.GetBySlug(r.Context(), slug)
	if err != nil {
		log.Printf("GetStoreBySlug: failed to get store %s: %v", slug, err)
		h.render.JSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to get store"})
		return
	}
	if store == nil {
		h.render.JSON(w, http.StatusNotFound, errorResponse{Error: "store not found"})
		return
	}
	h.render.JSON(w, http.StatusOK, store)
}

func (h *Handler) GetMyStores(w http.ResponseWriter, r *http.Request) {
	user := h.currentUser(r)
	if user == nil {
		h.render.JSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthenticated: sign in to continue"})
		return
	}

	stores, err := h.storeRepo.GetByUserID(r.Context(), user.ID)
	if err != nil {
		log.Printf("GetMyStores: failed to list stores for user %s: %v", user.ID, err)
		h.render.JSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to list stores"})
		return
	}
	h.render.JSON(w, http.StatusOK, stores)
}

func (h *Handler) DeleteStore(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.storeSvc.Delete(r.Context(), h.currentUser(r), id); err != nil {
		h.renderServiceError(w, err)
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]string{"message": "store deleted"})
}
