package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/shopmind/go-storefront/app/repositories"
	"github.com/shopmind/go-storefront/app/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unrolled/render"
	"gorm.io/gorm"
)

func newFeedbackHandler(db *gorm.DB) *FeedbackHandler {
	feedbackSvc := services.NewFeedbackService(
		repositories.NewFeedbackRepository(db),
		repositories.NewProductRepository(db),
		services.NewVaderClassifier(),
	)
	return NewFeedbackHandler(
		render.New(),
		feedbackSvc,
		repositories.NewCustomerRepository(db),
		validator.New(),
	)
}

func postFeedback(h *FeedbackHandler, userID, productID, comments string) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(map[string]string{"comments": comments})
	req := asUser(httptest.NewRequest(http.MethodPost, "/products/"+productID+"/feedback", bytes.NewReader(payload)), userID)
	req = mux.SetURLVars(req, map[string]string{"product_id": productID})
	rec := httptest.NewRecorder()
	h.Submit(rec, req)
	return rec
}

func TestSubmitFeedbackEndpoint(t *testing.T) {
	db := setupTestDB(t)
	h := newFeedbackHandler(db)

	user, _ := seedCustomer(t, db)
	product := seedProduct(t, db, "Coffee Beans", "10.00", 5)

	rec := postFeedback(h, user.ID, product.ID, "Fantastic coffee, highly recommended!")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Thank you for your feedback!", body["success"])
}

func TestSubmitFeedbackDuplicateEndpoint(t *testing.T) {
	db := setupTestDB(t)
	h := newFeedbackHandler(db)

	user, _ := seedCustomer(t, db)
	product := seedProduct(t, db, "Coffee Beans", "10.00", 5)

	rec := postFeedback(h, user.ID, product.ID, "Fantastic coffee, highly recommended!")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = postFeedback(h, user.ID, product.ID, "Second attempt.")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	assert.Contains(t, body["error"], "already submitted feedback")

	existing, ok := body["existing_feedback"].(map[string]interface{})
	require.True(t, ok, "the previous review must be echoed back")
	assert.Equal(t, "Fantastic coffee, highly recommended!", existing["comments"])
	assert.Equal(t, "Positive", existing["sentiment"])
}

func TestSubmitFeedbackMissingComments(t *testing.T) {
	db := setupTestDB(t)
	h := newFeedbackHandler(db)

	user, _ := seedCustomer(t, db)
	product := seedProduct(t, db, "Coffee Beans", "10.00", 5)

	rec := postFeedback(h, user.ID, product.ID, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListFeedbackEndpoint(t *testing.T) {
	db := setupTestDB(t)
	h := newFeedbackHandler(db)

	user, _ := seedCustomer(t, db)
	product := seedProduct(t, db, "Coffee Beans", "10.00", 5)

	rec := postFeedback(h, user.ID, product.ID, "Great stuff!")
	require.Equal(t, http.StatusOK, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/products/"+product.ID+"/feedback", nil)
	req = mux.SetURLVars(req, map[string]string{"product_id": product.ID})
	listRec := httptest.NewRecorder()
	h.ListForProduct(listRec, req)

	require.Equal(t, http.StatusOK, listRec.Code)
	body := decodeBody(t, listRec)
	feedbacks, ok := body["feedbacks"].([]interface{})
	require.True(t, ok)
	assert.Len(t, feedbacks, 1)
}
