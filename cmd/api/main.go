package main

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"bookcurator/internal/book"
	"bookcurator/internal/httpx"
	"bookcurator/internal/platform/googlebooks"
	"bookcurator/internal/platform/openaiclient"
	"bookcurator/internal/recommend"
	"bookcurator/web"

	"github.com/joho/godotenv"
)

const maxRequestBodyBytes = 1 << 20 // 1 MiB

func main() {
	_ = godotenv.Load(".env.local")

	serverAddress := getEnv("APP_ADDR", ":8080")
	booksEndpoint := getEnv("GOOGLE_BOOKS_ENDPOINT", googlebooks.DefaultBaseURL)
	booksAPIKey := os.Getenv("GOOGLE_BOOKS_API_KEY")
	openaiAPIKey := os.Getenv("OPENAI_API_KEY")

	if openaiAPIKey == "" {
		// Not fatal: search and detail still work, /api/chat reports a
		// configuration error per request.
		log.Println("OPENAI_API_KEY not set; /api/chat will return a configuration error")
	}

	booksClient := googlebooks.NewClient(booksEndpoint, booksAPIKey, 5, 2)
	bookService := book.NewService(booksClient)
	completionClient := openaiclient.New(openaiAPIKey)
	recommendService := recommend.NewService(bookService, completionClient)

	bookHandler := book.NewHTTPHandler(bookService)
	chatHandler := recommend.NewHTTPHandler(recommendService, openaiAPIKey)

	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.HandleFunc("GET /api/books/search", bookHandler.Search)
	router.HandleFunc("GET /api/books/{id}", bookHandler.Get)
	router.HandleFunc("POST /api/chat", chatHandler.Chat)

	router.Handle("/", web.Handler())

	allowedOrigins := strings.Split(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:8080"), ",")

	var handler http.Handler = router
	handler = httpx.RequestSizeLimitMiddleware(maxRequestBodyBytes)(handler)
	handler = httpx.SecurityHeadersMiddleware(handler)
	handler = httpx.CORSMiddleware(allowedOrigins)(handler)
	handler = httpx.RecoveryMiddleware(handler)
	handler = httpx.AccessLogMiddleware(handler)
	handler = httpx.RequestIDMiddleware(handler)

	httpServer := &http.Server{
		Addr:         serverAddress,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("Starting server on %s", serverAddress)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
