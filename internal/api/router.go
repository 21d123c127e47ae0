package api

import (
	"fmt"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "github.com/xero1ghost/arcania-backend/docs"

	"github.com/rs/cors"
	"github.com/xero1ghost/arcania-backend/internal/api/handlers"
	"github.com/xero1ghost/arcania-backend/internal/api/middleware"
	"github.com/xero1ghost/arcania-backend/internal/config"
	"github.com/xero1ghost/arcania-backend/internal/repositories"
	"gorm.io/gorm"
)

// NewRouter wires the endpoint handlers, CORS, and the cross-cutting
// middleware chain. The recover middleware guarantees every failure path
// still produces a JSON error body.
func NewRouter(cfg config.Config, db *gorm.DB) http.Handler {
	users := repositories.NewUserRepository(db)
	h := handlers.New(users)

	mainMux := http.NewServeMux()

	mainMux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	})

	mainMux.HandleFunc("/docs/", httpSwagger.WrapHandler)

	apiMux := http.NewServeMux()
	apiMux.HandleFunc("/signup", h.Signup)
	apiMux.HandleFunc("/get-salts/{email}", h.GetSalts)
	apiMux.HandleFunc("/login", h.Login)
	apiMux.HandleFunc("/get-unlock-data/{email}", h.GetUnlockData)
	apiMux.HandleFunc("/get-vault/{email}", h.GetVault)
	apiMux.HandleFunc("/save-vault/{email}", h.SaveVault)
	apiMux.HandleFunc("/delete-account", h.DeleteAccount)
	apiMux.HandleFunc("/", handlers.NotFound)

	mainMux.Handle("/api/", http.StripPrefix("/api", apiMux))
	mainMux.HandleFunc("/", handlers.NotFound)

	c := cors.New(cfg.CORS)
	handler := c.Handler(mainMux)
	handler = middleware.Recover(handler)
	handler = middleware.Logger(handler)
	return handler
}
