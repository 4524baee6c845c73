package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/shopmind/go-storefront/app/apperrors"
	"github.com/shopmind/go-storefront/app/helpers"
	"github.com/shopmind/go-storefront/app/repositories"
	"github.com/shopmind/go-storefront/app/services"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
)

type CartHandler struct {
	render       *render.Render
	cartSvc      *services.CartService
	customerRepo repositories.CustomerRepositoryImpl
	recommender  services.RecommendationProvider
	validate     *validator.Validate
}

func NewCartHandler(
	rnd *render.Render,
	cartSvc *services.CartService,
	customerRepo repositories.CustomerRepositoryImpl,
	recommender services.RecommendationProvider,
	validate *validator.Validate,
) *CartHandler {
	return &CartHandler{
		render:       rnd,
		cartSvc:      cartSvc,
		customerRepo: customerRepo,
		recommender:  recommender,
		validate:     validate,
	}
}

type UpdateCartItemForm struct {
	Qty      *int     `json:"qty" validate:"omitempty"`
	Discount *float64 `json:"discount" validate:"omitempty"`
}

// GetCart returns the customer's cart together with recommended
// products. Recommendations are optional content; an empty list is
// normal.
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	customer, err := resolveCustomer(r.Context(), h.customerRepo)
	if err != nil {
		helpers.RespondError(h.render, w, err)
		return
	}

	cart, err := h.cartSvc.GetCart(r.Context(), customer.ID)
	if err != nil {
		helpers.RespondError(h.render, w, err)
		return
	}

	recommended := h.recommender.Recommend(r.Context(), customer.ID)

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"cart":                 cart,
		"recommended_products": recommended,
	})
}

// ItemCount backs the cart badge.
func (h *CartHandler) ItemCount(w http.ResponseWriter, r *http.Request) {
	customer, err := resolveCustomer(r.Context(), h.customerRepo)
	if err != nil {
		helpers.RespondError(h.render, w, err)
		return
	}

	count, err := h.cartSvc.ItemCount(r.Context(), customer.ID)
	if err != nil {
		helpers.RespondError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"count": count,
	})
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	customer, err := resolveCustomer(r.Context(), h.customerRepo)
	if err != nil {
		helpers.RespondError(h.render, w, err)
		return
	}

	productID := mux.Vars(r)["product_id"]

	cart, err := h.cartSvc.AddItem(r.Context(), customer.ID, productID)
	if err != nil {
		helpers.RespondError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"total":    cart.Total,
		"discount": cart.Discount,
	})
}

func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	customer, err := resolveCustomer(r.Context(), h.customerRepo)
	if err != nil {
		helpers.RespondError(h.render, w, err)
		return
	}

	cartItemID := mux.Vars(r)["cart_item_id"]

	var form UpdateCartItemForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		helpers.RespondError(h.render, w, apperrors.BadRequest("Invalid JSON format."))
		return
	}
	if form.Qty == nil && form.Discount == nil {
		helpers.RespondError(h.render, w, apperrors.Validation("Provide a quantity or a discount to update."))
		return
	}

	var newDiscount *decimal.Decimal
	if form.Discount != nil {
		d := decimal.NewFromFloat(*form.Discount)
		newDiscount = &d
	}

	item, cart, err := h.cartSvc.UpdateItem(r.Context(), customer.ID, cartItemID, form.Qty, newDiscount)
	if err != nil {
		helpers.RespondError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"new_total":  item.LineTotal,
		"cart_total": cart.Total,
	})
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	customer, err := resolveCustomer(r.Context(), h.customerRepo)
	if err != nil {
		helpers.RespondError(h.render, w, err)
		return
	}

	cartItemID := mux.Vars(r)["cart_item_id"]

	cart, err := h.cartSvc.RemoveItem(r.Context(), customer.ID, cartItemID)
	if err != nil {
		helpers.RespondError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"cart_total": cart.Total,
	})
}
