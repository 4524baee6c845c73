package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/shopmind/go-storefront/app/apperrors"
	"github.com/shopmind/go-storefront/app/helpers"
	"github.com/shopmind/go-storefront/app/repositories"
	"github.com/shopmind/go-storefront/app/services"
	"github.com/unrolled/render"
)

type FeedbackHandler struct {
	render       *render.Render
	feedbackSvc  *services.FeedbackService
	customerRepo repositories.CustomerRepositoryImpl
	validate     *validator.Validate
}

func NewFeedbackHandler(
	rnd *render.Render,
	feedbackSvc *services.FeedbackService,
	customerRepo repositories.CustomerRepositoryImpl,
	validate *validator.Validate,
) *FeedbackHandler {
	return &FeedbackHandler{
		render:       rnd,
		feedbackSvc:  feedbackSvc,
		customerRepo: customerRepo,
		validate:     validate,
	}
}

type FeedbackForm struct {
	Comments string `json:"comments" validate:"required"`
}

// Submit stores a customer's one-per-product feedback. A duplicate
// submission gets the previous comments and sentiment echoed back so a
// client can offer an update path instead.
func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	customer, err := resolveCustomer(r.Context(), h.customerRepo)
	if err != nil {
		helpers.RespondError(h.render, w, err)
		return
	}

	productID := mux.Vars(r)["product_id"]

	var form FeedbackForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		helpers.RespondError(h.render, w, apperrors.BadRequest("Invalid JSON format."))
		return
	}
	if err := h.validate.Struct(&form); err != nil {
		helpers.RespondError(h.render, w, apperrors.Validation("Please provide valid feedback."))
		return
	}

	feedback, err := h.feedbackSvc.Submit(r.Context(), customer.ID, productID, form.Comments)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Code == apperrors.CodeConflict && feedback != nil {
			_ = h.render.JSON(w, appErr.StatusCode, map[string]interface{}{
				"error": appErr.Message,
				"existing_feedback": map[string]interface{}{
					"comments":  feedback.Comments,
					"sentiment": feedback.Sentiment,
				},
			})
			return
		}
		helpers.RespondError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"success": "Thank you for your feedback!",
	})
}

func (h *FeedbackHandler) ListForProduct(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["product_id"]

	feedbacks, err := h.feedbackSvc.ListForProduct(r.Context(), productID)
	if err != nil {
		helpers.RespondError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"feedbacks": feedbacks,
	})
}
