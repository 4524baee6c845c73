package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/shopmind/go-storefront/app/apperrors"
	"github.com/shopmind/go-storefront/app/helpers"
	"github.com/shopmind/go-storefront/app/repositories"
	"github.com/unrolled/render"
)

type CustomerHandler struct {
	render       *render.Render
	customerRepo repositories.CustomerRepositoryImpl
	userRepo     repositories.UserRepositoryImpl
	validate     *validator.Validate
}

func NewCustomerHandler(
	rnd *render.Render,
	customerRepo repositories.CustomerRepositoryImpl,
	userRepo repositories.UserRepositoryImpl,
	validate *validator.Validate,
) *CustomerHandler {
	return &CustomerHandler{
		render:       rnd,
		customerRepo: customerRepo,
		userRepo:     userRepo,
		validate:     validate,
	}
}

type UpdateCustomerForm struct {
	Contact string `json:"contact" validate:"required,max=50"`
	Address string `json:"address" validate:"required,max=255"`
}

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customerRepo.GetAll(r.Context())
	if err != nil {
		helpers.RespondError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"customers": customers,
	})
}

// UpdateContact lets a customer change their own contact and address.
// Superusers may edit any customer.
func (h *CustomerHandler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	userID := helpers.UserIDFromContext(r.Context())
	customerID := mux.Vars(r)["customer_id"]

	customer, err := h.customerRepo.FindByID(r.Context(), customerID)
	if err != nil {
		helpers.RespondError(h.render, w, err)
		return
	}
	if customer == nil {
		helpers.RespondError(h.render, w, apperrors.NotFound("Customer not found."))
		return
	}

	if customer.UserID != userID {
		user, err := h.userRepo.FindByID(r.Context(), userID)
		if err != nil {
			helpers.RespondError(h.render, w, err)
			return
		}
		if user == nil || !user.Superuser {
			helpers.RespondError(h.render, w, apperrors.Unauthorized("You may only update your own profile."))
			return
		}
	}

	var form UpdateCustomerForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		helpers.RespondError(h.render, w, apperrors.BadRequest("Invalid JSON format."))
		return
	}
	if err := h.validate.Struct(&form); err != nil {
		helpers.RespondError(h.render, w, apperrors.Validation("Contact and address are required."))
		return
	}

	if err := h.customerRepo.UpdateContactAndAddress(r.Context(), customerID, form.Contact, form.Address); err != nil {
		helpers.RespondError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"success": "Profile updated successfully!",
	})
}
