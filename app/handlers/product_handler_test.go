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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unrolled/render"
	"gorm.io/gorm"
)

func newProductHandler(db *gorm.DB) *ProductHandler {
	return NewProductHandler(render.New(), repositories.NewProductRepository(db), validator.New())
}

func TestListProducts(t *testing.T) {
	db := setupTestDB(t)
	h := newProductHandler(db)

	seedProduct(t, db, "Coffee Beans", "10.00", 5)
	seedProduct(t, db, "Green Tea", "4.00", 5)

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/products", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	products, ok := body["products"].([]interface{})
	require.True(t, ok)
	assert.Len(t, products, 2)
}

func TestListProductsWithQuery(t *testing.T) {
	db := setupTestDB(t)
	h := newProductHandler(db)

	seedProduct(t, db, "Coffee Beans", "10.00", 5)
	seedProduct(t, db, "Green Tea", "4.00", 5)

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/products?query=coffee", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	products, ok := body["products"].([]interface{})
	require.True(t, ok)
	require.Len(t, products, 1, "search must be case-insensitive")
}

func TestProductDetail(t *testing.T) {
	db := setupTestDB(t)
	h := newProductHandler(db)

	product := seedProduct(t, db, "Coffee Beans", "10.00", 5)

	req := httptest.NewRequest(http.MethodGet, "/products/"+product.ID, nil)
	req = mux.SetURLVars(req, map[string]string{"product_id": product.ID})
	rec := httptest.NewRecorder()
	h.Detail(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "$10.00", body["display_price"])

	req = httptest.NewRequest(http.MethodGet, "/products/nope", nil)
	req = mux.SetURLVars(req, map[string]string{"product_id": "nope"})
	rec = httptest.NewRecorder()
	h.Detail(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateProduct(t *testing.T) {
	db := setupTestDB(t)
	h := newProductHandler(db)

	payload, _ := json.Marshal(map[string]interface{}{
		"code":        "coffee-001",
		"title":       "Coffee Beans",
		"description": "Single-origin arabica.",
		"price":       12.50,
		"qty":         20,
	})
	rec := httptest.NewRecorder()
	h.Create(rec, httptest.NewRequest(http.MethodPost, "/admin/products", bytes.NewReader(payload)))

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Product added successfully!", body["success"])
}

func TestCreateProductValidation(t *testing.T) {
	db := setupTestDB(t)
	h := newProductHandler(db)

	payload, _ := json.Marshal(map[string]interface{}{"title": "No code"})
	rec := httptest.NewRecorder()
	h.Create(rec, httptest.NewRequest(http.MethodPost, "/admin/products", bytes.NewReader(payload)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateAndDeleteProduct(t *testing.T) {
	db := setupTestDB(t)
	h := newProductHandler(db)

	product := seedProduct(t, db, "Coffee Beans", "10.00", 5)

	payload, _ := json.Marshal(map[string]interface{}{
		"code":        product.Code,
		"title":       "Premium Coffee Beans",
		"description": "Updated description.",
		"price":       15.00,
		"qty":         3,
	})
	req := httptest.NewRequest(http.MethodPut, "/admin/products/"+product.ID, bytes.NewReader(payload))
	req = mux.SetURLVars(req, map[string]string{"product_id": product.ID})
	rec := httptest.NewRecorder()
	h.Update(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodDelete, "/admin/products/"+product.ID, nil)
	req = mux.SetURLVars(req, map[string]string{"product_id": product.ID})
	rec = httptest.NewRecorder()
	h.Delete(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/products/"+product.ID, nil)
	req = mux.SetURLVars(req, map[string]string{"product_id": product.ID})
	rec = httptest.NewRecorder()
	h.Detail(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
