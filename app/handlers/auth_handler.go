package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/shopmind/go-storefront/app/apperrors"
	"github.com/shopmind/go-storefront/app/helpers"
	"github.com/shopmind/go-storefront/app/models"
	"github.com/shopmind/go-storefront/app/repositories"
	"github.com/shopmind/go-storefront/app/utils/sessions"
	"github.com/unrolled/render"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthHandler struct {
	render       *render.Render
	db           *gorm.DB
	userRepo     repositories.UserRepositoryImpl
	customerRepo repositories.CustomerRepositoryImpl
	sessionStore sessions.SessionStore
	validate     *validator.Validate
}

func NewAuthHandler(
	rnd *render.Render,
	db *gorm.DB,
	userRepo repositories.UserRepositoryImpl,
	customerRepo repositories.CustomerRepositoryImpl,
	sessionStore sessions.SessionStore,
	validate *validator.Validate,
) *AuthHandler {
	return &AuthHandler{
		render:       rnd,
		db:           db,
		userRepo:     userRepo,
		customerRepo: customerRepo,
		sessionStore: sessionStore,
		validate:     validate,
	}
}

type RegisterForm struct {
	Username        string `json:"username" validate:"required,min=3,max=150"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

type LoginForm struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Register creates the login user and its customer profile together,
// then starts the session.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var form RegisterForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		helpers.RespondError(h.render, w, apperrors.BadRequest("Invalid JSON format."))
		return
	}
	if err := h.validate.Struct(&form); err != nil {
		helpers.RespondError(h.render, w, apperrors.Validation("Please correct the form errors."))
		return
	}

	existing, err := h.userRepo.FindByUsername(r.Context(), form.Username)
	if err != nil {
		helpers.RespondError(h.render, w, err)
		return
	}
	if existing != nil {
		helpers.RespondError(h.render, w, apperrors.Conflict("Username is already taken."))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		helpers.RespondError(h.render, w, err)
		return
	}

	user := &models.User{
		Username: form.Username,
		Email:    form.Email,
		Password: string(hashed),
	}

	err = h.db.WithContext(r.Context()).Transaction(func(tx *gorm.DB) error {
		if err := h.userRepo.Create(r.Context(), tx, user); err != nil {
			return err
		}
		customer := &models.Customer{
			UserID: user.ID,
			Name:   user.Username,
			Email:  user.Email,
		}
		return h.customerRepo.Create(r.Context(), tx, customer)
	})
	if err != nil {
		helpers.RespondError(h.render, w, err)
		return
	}

	if err := h.sessionStore.SetUserID(w, r, user.ID); err != nil {
		log.Printf("Register: failed to start session for user %s: %v", user.ID, err)
	}

	_ = h.render.JSON(w, http.StatusCreated, map[string]interface{}{
		"success": "Welcome, " + user.Username + "!",
		"user":    user,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var form LoginForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		helpers.RespondError(h.render, w, apperrors.BadRequest("Invalid JSON format."))
		return
	}
	if err := h.validate.Struct(&form); err != nil {
		helpers.RespondError(h.render, w, apperrors.Validation("Username and password are required."))
		return
	}

	user, err := h.userRepo.FindByUsername(r.Context(), form.Username)
	if err != nil {
		helpers.RespondError(h.render, w, err)
		return
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(form.Password)) != nil {
		helpers.RespondError(h.render, w, apperrors.New(apperrors.CodeUnauthorized, "Invalid username or password.", http.StatusUnauthorized))
		return
	}

	if err := h.sessionStore.SetUserID(w, r, user.ID); err != nil {
		helpers.RespondError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"success": "Welcome, " + user.Username + "!",
	})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionStore.ClearSession(w, r); err != nil {
		log.Printf("Logout: failed to clear session: %v", err)
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"success": "You have been logged out.",
	})
}

func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID := helpers.UserIDFromContext(r.Context())

	user, err := h.userRepo.FindByID(r.Context(), userID)
	if err != nil {
		helpers.RespondError(h.render, w, err)
		return
	}
	if user == nil {
		helpers.RespondError(h.render, w, apperrors.NotFound("User not found."))
		return
	}

	customer, err := h.customerRepo.FindByUserID(r.Context(), userID)
	if err != nil {
		helpers.RespondError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"user":     user,
		"customer": customer,
	})
}

// resolveCustomer maps the authenticated user to its customer profile.
// Shared by the cart, checkout, purchase and feedback handlers.
func resolveCustomer(ctx context.Context, customerRepo repositories.CustomerRepositoryImpl) (*models.Customer, error) {
	userID := helpers.UserIDFromContext(ctx)
	if userID == "" {
		return nil, apperrors.New(apperrors.CodeUnauthorized, "Login required.", http.StatusUnauthorized)
	}

	customer, err := customerRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperrors.NoProfile("No customer profile found. Please register first.")
	}
	return customer, nil
}
