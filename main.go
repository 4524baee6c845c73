package main

import (
	"log"
	"net/http"
	"os"

	"github.com/shopmind/go-storefront/app/cmd"
	"github.com/shopmind/go-storefront/app/configs"
	"github.com/shopmind/go-storefront/app/routes"
)

func main() {

	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	sessionKeys, err := configs.LoadSessionKeysFromEnv()
	if err != nil {
		log.Fatalf("Session keys not configured: %v. Run 'generate-keys' first.", err)
	}

	db, err := configs.OpenConnection()
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	log.Println("✅ Database connected.")

	router := routes.NewRouter(db, sessionKeys)

	port := configs.LoadENV.Port
	if port == "" {
		port = ":8080"
	}

	server := http.Server{
		Addr:    port,
		Handler: router,
	}

	log.Printf("🚀 Server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Server stopped:", err)
	}
}
