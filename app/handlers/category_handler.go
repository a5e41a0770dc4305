package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/andikanugraha/go-multistore/app/services"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

func (h *Handler) UpsertCategory(w http.ResponseWriter, r *http.Request) {
	var input services.CategoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.render.JSON(w, http.StatusBadRequest, errorResponse{Error: "invalid category payload"})
		return
	}
	if input.ID == "" {
		input.ID = uuid.New().String()
	}

	category, err := h.categorySvc.Upsert(r.Context(), h.currentUser(r), &input)
	if err != nil {
		h.renderServiceError(w, err)
		return
	}
	h.render.JSON(w, http.StatusOK, category)
}

func (h *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryRepo.GetCategoriesWithSubCategories(r.Context())
	if err != nil {
		log.Printf("GetCategories: failed to list categories: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to list categories"})
		return
	}
	h.render.JSON(w, http.StatusOK, categories)
}

func (h *Handler) GetCategoryBySlug(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	category, err := h.categoryRepo.GetBySlug(r.Context(), slug)
	if err != nil {
		log.Printf("GetCategoryBySlug: failed to get category %s: %v", slug, err)
		h.render.JSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to get category"})
		return
	}
	if category == nil {
		h.render.JSON(w, http.StatusNotFound, errorResponse{Error: "category not found"})
		return
	}
	h.render.JSON(w, http.StatusOK, category)
}

func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.categorySvc.Delete(r.Context(), h.currentUser(r), id); err != nil {
		h.renderServiceError(w, err)
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]string{"message": "category deleted"})
}
