package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/shopmind/go-storefront/app/apperrors"
	"github.com/shopmind/go-storefront/app/helpers"
	"github.com/shopmind/go-storefront/app/models"
	"github.com/shopmind/go-storefront/app/repositories"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
)

type ProductHandler struct {
	render      *render.Render
	productRepo repositories.ProductRepositoryImpl
	validate    *validator.Validate
}

func NewProductHandler(
	rnd *render.Render,
	productRepo repositories.ProductRepositoryImpl,
	validate *validator.Validate,
) *ProductHandler {
	return &ProductHandler{
		render:      rnd,
		productRepo: productRepo,
		validate:    validate,
	}
}

type ProductForm struct {
	Code        string  `json:"code" validate:"required,max=50"`
	Title       string  `json:"title" validate:"required,max=255"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
	Qty         int     `json:"qty" validate:"gte=0"`
	ImagePath   string  `json:"image_path" validate:"omitempty,max=255"`
}

// List returns the catalog, optionally filtered by a description
// substring via ?query=.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	var (
		products []models.Product
		err      error
	)
	if query != "" {
		products, err = h.productRepo.SearchByDescription(r.Context(), query)
	} else {
		products, err = h.productRepo.GetProducts(r.Context(), 0)
	}
	if err != nil {
		helpers.RespondError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"products": products,
	})
}

func (h *ProductHandler) Detail(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["product_id"]

	product, err := h.productRepo.GetByID(r.Context(), productID)
	if err != nil {
		helpers.RespondError(h.render, w, err)
		return
	}
	if product == nil {
		helpers.RespondError(h.render, w, apperrors.NotFound("Product not found."))
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"product":       product,
		"display_price": helpers.FormatPrice(product.Price),
	})
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	form, err := h.decodeForm(r)
	if err != nil {
		helpers.RespondError(h.render, w, err)
		return
	}

	product := &models.Product{
		Code:        form.Code,
		Title:       form.Title,
		Description: form.Description,
		Price:       decimal.NewFromFloat(form.Price),
		Qty:         form.Qty,
		ImagePath:   form.ImagePath,
	}

	if err := h.productRepo.Create(r.Context(), product); err != nil {
		helpers.RespondError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusCreated, map[string]interface{}{
		"success": "Product added successfully!",
		"product": product,
	})
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["product_id"]

	product, err := h.productRepo.GetByID(r.Context(), productID)
	if err != nil {
		helpers.RespondError(h.render, w, err)
		return
	}
	if product == nil {
		helpers.RespondError(h.render, w, apperrors.NotFound("Product not found."))
		return
	}

	form, err := h.decodeForm(r)
	if err != nil {
		helpers.RespondError(h.render, w, err)
		return
	}

	product.Code = form.Code
	product.Title = form.Title
	product.Description = form.Description
	product.Price = decimal.NewFromFloat(form.Price)
	product.Qty = form.Qty
	product.ImagePath = form.ImagePath

	if err := h.productRepo.Update(r.Context(), product); err != nil {
		helpers.RespondError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"success": "Product updated successfully!",
		"product": product,
	})
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["product_id"]

	product, err := h.productRepo.GetByID(r.Context(), productID)
	if err != nil {
		helpers.RespondError(h.render, w, err)
		return
	}
	if product == nil {
		helpers.RespondError(h.render, w, apperrors.NotFound("Product not found."))
		return
	}

	if err := h.productRepo.Delete(r.Context(), productID); err != nil {
		helpers.RespondError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"success": "Product deleted successfully!",
	})
}

func (h *ProductHandler) decodeForm(r *http.Request) (*ProductForm, error) {
	var form ProductForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		return nil, apperrors.BadRequest("Invalid JSON format.")
	}
	if err := h.validate.Struct(&form); err != nil {
		return nil, apperrors.Validation("Please correct the form errors.")
	}
	return &form, nil
}
