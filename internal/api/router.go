package api

import (
	"fmt"
	"log"
	"net/http"

	_ "github.com/studyhub-dev/studyhub/docs"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/rs/cors"
	"github.com/studyhub-dev/studyhub/internal/api/handlers"
	"github.com/studyhub-dev/studyhub/internal/api/middleware"
)

func SetupRouter(h *handlers.Handler, uploadDir string, corsOpts cors.Options) http.Handler {
	mux := http.NewServeMux()
	c := cors.New(corsOpts)

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	})

	mux.HandleFunc("/docs/", httpSwagger.WrapHandler)

	mux.HandleFunc("POST /login", h.Login)

	mux.HandleFunc("POST /users", h.RegisterUser)
	mux.HandleFunc("GET /users", h.ListUsers)
	mux.HandleFunc("PUT /users/{id}", h.UpdateUser)
	mux.HandleFunc("DELETE /users/{id}", h.DeleteUser)

	mux.HandleFunc("POST /upload-material", h.UploadMaterial)
	mux.HandleFunc("GET /materials", h.ListMaterials)

	// Stored uploads are retrievable read-only by their generated name.
	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir))))

	log.Println("Router initialized")
	handler := c.Handler(mux)
	handler = middleware.Logger(handler)
	return handler
}
