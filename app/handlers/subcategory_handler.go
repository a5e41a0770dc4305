package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/andikanugraha/go-multistore/app/services"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

func (h *Handler) UpsertSubCategory(w http.ResponseWriter, r *http.Request) {
	var input services.SubCategoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.render.JSON(w, http.StatusBadRequest, errorResponse{Error: "invalid subcategory payload"})
		return
	}
	if input.ID == "" {
		input.ID = uuid.New().String()
	}

	subCategory, err := h.subCategorySvc.Upsert(r.Context(), h.currentUser(r), &input)
	if err != nil {
		h.renderServiceError(w, err)
		return
	}
	h.render.JSON(w, http.StatusOK, subCategory)
}

func (h *Handler) GetSubCategories(w http.ResponseWriter, r *http.Request) {
	if categoryID := r.URL.Query().Get("category_id"); categoryID != "" {
		subCategories, err := h.subCategoryRepo.GetByCategoryID(r.Context(), categoryID)
		if err != nil {
			log.Printf("GetSubCategories: failed to list subcategories for category %s: %v", categoryID, err)
			h.render.JSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to list subcategories"})
			return
		}
		h.render.JSON(w, http.StatusOK, subCategories)
		return
	}

	subCategories, err := h.subCategoryRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("GetSubCategories: failed to list subcategories: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to list subcategories"})
		return
	}
	h.render.JSON(w, http.StatusOK, subCategories)
}

func (h *Handler) DeleteSubCategory(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.subCategorySvc.Delete(r.Context(), h.currentUser(r), id); err != nil {
		h.renderServiceError(w, err)
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]string{"message": "subcategory deleted"})
}
