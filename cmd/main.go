package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/rosterhq/api-agency/internal/auth"
	"github.com/rosterhq/api-agency/internal/client"
	"github.com/rosterhq/api-agency/internal/config"
	"github.com/rosterhq/api-agency/internal/deliverable"
	"github.com/rosterhq/api-agency/internal/quote"
	"github.com/rosterhq/api-agency/internal/rate"
	"github.com/rosterhq/api-agency/internal/storage"
	"github.com/rosterhq/api-agency/internal/talent"
	"github.com/rosterhq/api-agency/internal/user"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("could not load config:", err)
	}

	db, err := storage.Connect(cfg)
	if err != nil {
		log.Fatal("could not connect to database:", err)
	}

	if err := db.AutoMigrate(
		&user.User{},
		&talent.Talent{},
		&client.Client{},
		&deliverable.Deliverable{},
		&deliverable.AddonRule{},
		&rate.Rate{},
		&quote.Quote{},
		&quote.LineItem{},
		&quote.Revision{},
	); err != nil {
		log.Fatal("migration failed:", err)
	}

	// Repositories
	userRepo := user.NewRepository(db)
	talentRepo := talent.NewRepository(db)
	clientRepo := client.NewRepository(db)
	deliverableRepo := deliverable.NewRepository(db)
	rateRepo := rate.NewRepository(db)
	quoteRepo := quote.NewRepository(db)

	// Handlers
	secret := []byte(cfg.JWTSecret)
	authHandler := auth.NewHandler(userRepo, secret)
	userHandler := user.NewHandler(userRepo)
	talentHandler := talent.NewHandler(talentRepo)
	clientHandler := client.NewHandler(clientRepo)
	deliverableHandler := deliverable.NewHandler(deliverableRepo)
	rateHandler := rate.NewHandler(rateRepo)
	quoteHandler := quote.NewHandler(quoteRepo, rateRepo, deliverableRepo, talentRepo)

	// Router
	r := mux.NewRouter()

	// Public routes
	r.HandleFunc("/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("GET")

	// Everything below requires a bearer token
	api := r.NewRoute().Subrouter()
	api.Use(auth.Middleware(secret))

	// User routes
	api.Handle("/users", auth.RequireAdmin(http.HandlerFunc(userHandler.Create))).Methods("POST")
	api.HandleFunc("/users", userHandler.List).Methods("GET")
	api.HandleFunc("/users/{id}", userHandler.Get).Methods("GET")

	// Talent routes
	api.HandleFunc("/talents", talentHandler.Create).Methods("POST")
	api.HandleFunc("/talents", talentHandler.List).Methods("GET")
	api.HandleFunc("/talents/{id}", talentHandler.Get).Methods("GET")
	api.HandleFunc("/talents/{id}", talentHandler.Update).Methods("PUT")
	api.HandleFunc("/talents/{id}", talentHandler.Delete).Methods("DELETE")

	// Rate-card routes
	api.HandleFunc("/talents/{id}/rates", rateHandler.ListByTalent).Methods("GET")
	api.HandleFunc("/talents/{id}/rates/{deliverableID}", rateHandler.Upsert).Methods("PUT")
	api.HandleFunc("/talents/{id}/rates/{deliverableID}", rateHandler.Delete).Methods("DELETE")

	// Client routes
	api.HandleFunc("/clients", clientHandler.Create).Methods("POST")
	api.HandleFunc("/clients", clientHandler.List).Methods("GET")
	api.HandleFunc("/clients/{id}", clientHandler.Get).Methods("GET")
	api.HandleFunc("/clients/{id}", clientHandler.Update).Methods("PUT")
	api.HandleFunc("/clients/{id}", clientHandler.Delete).Methods("DELETE")

	// Deliverable routes
	api.HandleFunc("/deliverables", deliverableHandler.Create).Methods("POST")
	api.HandleFunc("/deliverables", deliverableHandler.List).Methods("GET")
	api.HandleFunc("/deliverables/{id}", deliverableHandler.Get).Methods("GET")
	api.HandleFunc("/deliverables/{id}", deliverableHandler.Update).Methods("PUT")
	api.HandleFunc("/deliverables/{id}", deliverableHandler.Delete).Methods("DELETE")

	// Addon-rule routes
	api.HandleFunc("/addon-rules", deliverableHandler.CreateRule).Methods("POST")
	api.HandleFunc("/addon-rules", deliverableHandler.ListRules).Methods("GET")
	api.HandleFunc("/addon-rules/{id}", deliverableHandler.UpdateRule).Methods("PUT")
	api.HandleFunc("/addon-rules/{id}", deliverableHandler.DeleteRule).Methods("DELETE")

	// Quote routes
	api.HandleFunc("/quotes/preview", quoteHandler.Preview).Methods("POST")
	api.HandleFunc("/quotes", quoteHandler.Create).Methods("POST")
	api.HandleFunc("/quotes", quoteHandler.List).Methods("GET")
	api.HandleFunc("/quotes/{id}", quoteHandler.Get).Methods("GET")
	api.HandleFunc("/quotes/{id}/status", quoteHandler.UpdateStatus).Methods("PATCH")
	api.HandleFunc("/quotes/{id}", quoteHandler.Delete).Methods("DELETE")
	api.HandleFunc("/quotes/{id}/revisions", quoteHandler.CreateRevision).Methods("POST")
	api.HandleFunc("/quotes/{id}/revisions", quoteHandler.ListRevisions).Methods("GET")

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(r)

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Printf("server listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
