package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shopmind/go-storefront/app/helpers"
	"github.com/shopmind/go-storefront/app/repositories"
	"github.com/shopmind/go-storefront/app/services"
	"github.com/unrolled/render"
)

type CheckoutHandler struct {
	render       *render.Render
	checkoutSvc  *services.CheckoutService
	customerRepo repositories.CustomerRepositoryImpl
}

func NewCheckoutHandler(
	rnd *render.Render,
	checkoutSvc *services.CheckoutService,
	customerRepo repositories.CustomerRepositoryImpl,
) *CheckoutHandler {
	return &CheckoutHandler{
		render:       rnd,
		checkoutSvc:  checkoutSvc,
		customerRepo: customerRepo,
	}
}

// Checkout finalizes the cart into a purchase. Success redirects to the
// purchase history; any failure leaves all state untouched.
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	customer, err := resolveCustomer(r.Context(), h.customerRepo)
	if err != nil {
		helpers.RespondError(h.render, w, err)
		return
	}

	if _, err := h.checkoutSvc.Checkout(r.Context(), customer.ID); err != nil {
		helpers.RespondError(h.render, w, err)
		return
	}

	http.Redirect(w, r, "/purchase-history", http.StatusSeeOther)
}

func (h *CheckoutHandler) PurchaseHistory(w http.ResponseWriter, r *http.Request) {
	customer, err := resolveCustomer(r.Context(), h.customerRepo)
	if err != nil {
		helpers.RespondError(h.render, w, err)
		return
	}

	headers, err := h.checkoutSvc.History(r.Context(), customer.ID)
	if err != nil {
		helpers.RespondError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"purchase_headers": headers,
	})
}

func (h *CheckoutHandler) PurchaseDetails(w http.ResponseWriter, r *http.Request) {
	customer, err := resolveCustomer(r.Context(), h.customerRepo)
	if err != nil {
		helpers.RespondError(h.render, w, err)
		return
	}

	purchaseID := mux.Vars(r)["purchase_id"]

	header, err := h.checkoutSvc.PurchaseDetails(r.Context(), customer.ID, purchaseID)
	if err != nil {
		helpers.RespondError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"purchase_header":  header,
		"purchase_details": header.Details,
		"display_total":    helpers.FormatPrice(header.Total),
	})
}
