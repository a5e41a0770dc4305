package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/andikanugraha/go-multistore/app/models"
	"github.com/andikanugraha/go-multistore/app/services"
	"github.com/andikanugraha/go-multistore/app/utils/format"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

func (h *Handler) UpsertProduct(w http.ResponseWriter, r *http.Request) {
	var input services.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.render.JSON(w, http.StatusBadRequest, errorResponse{Error: "invalid product payload"})
		return
	}
	if input.ID == "" {
		input.ID = uuid.New().String()
	}

	product, err := h.productSvc.Upsert(r.Context(), h.currentUser(r), &input)
	if err != nil {
		h.renderServiceError(w, err)
		return
	}
	h.render.JSON(w, http.StatusOK, product)
}

type productListResponse struct {
	Products []productSummary `json:"products"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PerPage  int              `json:"per_page"`
}

type productSummary struct {
	models.Product
	DisplayPrice string `json:"display_price,omitempty"`
}

func (h *Handler) GetProducts(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	offset := (page - 1) * perPage

	var (
		products []models.Product
		total    int64
		err      error
	)
	if keyword := r.URL.Query().Get("q"); keyword != "" {
		products, total, err = h.productRepo.SearchPaginated(r.Context(), keyword, perPage, offset)
	} else {
		products, total, err = h.productRepo.GetPaginated(r.Context(), perPage, offset)
	}
	if err != nil {
		log.Printf("GetProducts: failed to list products: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to list products"})
		return
	}

	summaries := make([]productSummary, 0, len(products))
	for _, product := range products {
		summary := productSummary{Product: product}
		if len(product.Variants) > 0 {
			summary.DisplayPrice = format.FormatPrice(product.Variants[0].Price)
		}
		summaries = append(summaries, summary)
	}

	h.render.JSON(w, http.StatusOK, productListResponse{
		Products: summaries,
		Total:    total,
		Page:     page,
		PerPage:  perPage,
	})
}

func (h *Handler) GetProductBySlug(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	product, err := h.productRepo.GetBySlug(r.Context(), slug)
	if err != nil {
		log.Printf("GetProductBySlug: failed to get product %s: %v", slug, err)
		h.render.JSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to get product"})
		return
	}
	if product == nil {
		h.render.JSON(w, http.StatusNotFound, errorResponse{Error: "product not found"})
		return
	}
	h.render.JSON(w, http.StatusOK, product)
}

func (h *Handler) GetStoreProducts(w http.ResponseWriter, r *http.Request) {
	storeID := mux.Vars(r)["id"]

	products, err := h.productRepo.GetByStoreID(r.Context(), storeID)
	if err != nil {
		log.Printf("GetStoreProducts: failed to list products for store %s: %v", storeID, err)
		h.render.JSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to list products"})
		return
	}
	h.render.JSON(w, http.StatusOK, products)
}

func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.productSvc.Delete(r.Context(), h.currentUser(r), id); err != nil {
		h.renderServiceError(w, err)
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]string{"message": "product deleted"})
}
