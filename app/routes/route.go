package routes

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/shopmind/go-storefront/app/configs"
	"github.com/shopmind/go-storefront/app/handlers"
	"github.com/shopmind/go-storefront/app/middlewares"
	"github.com/shopmind/go-storefront/app/repositories"
	"github.com/shopmind/go-storefront/app/services"
	"github.com/shopmind/go-storefront/app/utils/sessions"
	"github.com/tmc/langchaingo/llms"
	"github.com/unrolled/render"
	"gorm.io/gorm"
)

// NewRouter wires the full HTTP surface. Two sibling subrouters hang off
// the root: one behind CSRF protection, one exempt from it (the chat,
// generation and feedback endpoints, which are called by script clients
// without a token).
func NewRouter(db *gorm.DB, sessionKeys *configs.SessionKeys) *mux.Router {
	rnd := render.New()
	validate := validator.New()

	sessionStore := sessions.NewCookieSessionStore(sessionKeys.AuthKey, sessionKeys.EncKey)

	userRepo := repositories.NewUserRepository(db)
	customerRepo := repositories.NewCustomerRepository(db)
	productRepo := repositories.NewProductRepository(db)
	cartRepo := repositories.NewCartRepository(db)
	cartItemRepo := repositories.NewCartItemRepository(db)
	purchaseRepo := repositories.NewPurchaseRepository(db)
	feedbackRepo := repositories.NewFeedbackRepository(db)

	cartSvc := services.NewCartService(db, cartRepo, cartItemRepo, productRepo)
	checkoutSvc := services.NewCheckoutService(db, cartRepo, cartItemRepo, purchaseRepo)
	feedbackSvc := services.NewFeedbackService(feedbackRepo, productRepo, services.NewVaderClassifier())
	recommender := services.NewCatalogRecommendationService(productRepo)
	assistantSvc := services.NewAssistantService(services.LLMClients{
		Chat: func() (llms.Model, error) {
			llm, err := configs.GetChatLLM()
			if err != nil {
				return nil, err
			}
			return llm, nil
		},
		Generate: func() (llms.Model, error) {
			llm, err := configs.GetGenerateLLM()
			if err != nil {
				return nil, err
			}
			return llm, nil
		},
	})

	authHandler := handlers.NewAuthHandler(rnd, db, userRepo, customerRepo, sessionStore, validate)
	productHandler := handlers.NewProductHandler(rnd, productRepo, validate)
	customerHandler := handlers.NewCustomerHandler(rnd, customerRepo, userRepo, validate)
	cartHandler := handlers.NewCartHandler(rnd, cartSvc, customerRepo, recommender, validate)
	checkoutHandler := handlers.NewCheckoutHandler(rnd, checkoutSvc, customerRepo)
	feedbackHandler := handlers.NewFeedbackHandler(rnd, feedbackSvc, customerRepo, validate)
	assistantHandler := handlers.NewAssistantHandler(rnd, assistantSvc)

	loginRequired := middlewares.LoginRequired(rnd)
	superuserRequired := middlewares.SuperuserRequired(rnd, userRepo)

	root := mux.NewRouter()
	root.Use(middlewares.SessionUserMiddleware(sessionStore))

	csrfMiddleware := csrf.Protect(
		sessionKeys.AuthKey,
		csrf.Secure(configs.LoadENV.APP_ENV == "production"),
	)

	protected := root.NewRoute().Subrouter()
	protected.Use(csrfMiddleware)

	exempt := root.NewRoute().Subrouter()

	protected.HandleFunc("/csrf-token", func(w http.ResponseWriter, r *http.Request) {
		_ = rnd.JSON(w, http.StatusOK, map[string]interface{}{
			"csrf_token": csrf.Token(r),
		})
	}).Methods("GET")

	protected.HandleFunc("/register", authHandler.Register).Methods("POST")
	protected.HandleFunc("/login", authHandler.Login).Methods("POST")
	protected.HandleFunc("/logout", authHandler.Logout).Methods("POST")

	protected.HandleFunc("/products", productHandler.List).Methods("GET")
	protected.HandleFunc("/products/{product_id}", productHandler.Detail).Methods("GET")
	exempt.HandleFunc("/products/{product_id}/feedback", feedbackHandler.ListForProduct).Methods("GET")

	profile := protected.NewRoute().Subrouter()
	profile.Use(loginRequired)
	profile.HandleFunc("/profile", authHandler.Profile).Methods("GET")
	profile.HandleFunc("/customers/{customer_id}", customerHandler.UpdateContact).Methods("PUT")

	cart := protected.NewRoute().Subrouter()
	cart.Use(loginRequired)
	cart.HandleFunc("/cart", cartHandler.GetCart).Methods("GET")
	cart.HandleFunc("/cart/count", cartHandler.ItemCount).Methods("GET")
	cart.HandleFunc("/cart/add/{product_id}", cartHandler.AddItem).Methods("POST")
	cart.HandleFunc("/cart/update/{cart_item_id}", cartHandler.UpdateItem).Methods("POST")
	cart.HandleFunc("/cart/remove/{cart_item_id}", cartHandler.RemoveItem).Methods("POST")
	cart.HandleFunc("/checkout", checkoutHandler.Checkout).Methods("POST")
	cart.HandleFunc("/purchase-history", checkoutHandler.PurchaseHistory).Methods("GET")
	cart.HandleFunc("/purchase-details/{purchase_id}", checkoutHandler.PurchaseDetails).Methods("GET")

	feedback := exempt.NewRoute().Subrouter()
	feedback.Use(loginRequired)
	feedback.HandleFunc("/products/{product_id}/feedback", feedbackHandler.Submit).Methods("POST")

	exempt.HandleFunc("/chatbot", assistantHandler.Chatbot).Methods("POST")
	exempt.HandleFunc("/generate-description", assistantHandler.GenerateDescription).Methods("POST")

	admin := protected.NewRoute().Subrouter()
	admin.Use(superuserRequired)
	admin.HandleFunc("/admin/products", productHandler.Create).Methods("POST")
	admin.HandleFunc("/admin/products/{product_id}", productHandler.Update).Methods("PUT")
	admin.HandleFunc("/admin/products/{product_id}", productHandler.Delete).Methods("DELETE")
	admin.HandleFunc("/admin/customers", customerHandler.List).Methods("GET")

	return root
}
