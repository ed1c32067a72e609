package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

const PORT = 3000

func main() {
	http.HandleFunc("/api/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		path := strings.TrimPrefix(r.URL.Path, "/api/")
		log.Printf("➡️  %s /api/%s", r.Method, path)

		query := r.URL.Query()
		if token := query.Get("access_token"); token != "" {
			log.Printf("🔑 Access token: %s", token)
		}
		if filter := query.Get("filter"); filter != "" {
			log.Printf("🔎 Filter: %s", filter)
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Printf("❌ Failed to read body")
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Failed to read body"})
			return
		}
		if len(body) > 0 {
			log.Printf("📦 Body (%s): %s", r.Header.Get("Content-Type"), body)
		}

		segments := strings.Split(path, "/")

		// Path segments named "slow" or "fail" trigger the client's timeout
		// and error handling.
		for _, segment := range segments {
			switch segment {
			case "slow":
				log.Printf("🐢 Delaying response by 3s")
				time.Sleep(3 * time.Second)
			case "fail":
				log.Printf("🔄 Simulated server error")
				writeJSON(w, http.StatusInternalServerError, map[string]any{
					"error": map[string]any{"statusCode": 500, "message": "Simulated server error"},
				})
				return
			}
		}

		switch {
		case r.Method == http.MethodDelete && segments[0] == "Posts":
			w.WriteHeader(http.StatusNoContent)
		case r.Method == http.MethodPost && path == "Profiles/login":
			writeJSON(w, http.StatusOK, map[string]any{
				"id":      "playground-token",
				"ttl":     1209600,
				"created": time.Now().UTC().Format(time.RFC3339),
				"userId":  1,
			})
		case r.Method == http.MethodPost && path == "Profiles/logout":
			w.WriteHeader(http.StatusNoContent)
		default:
			writeJSON(w, http.StatusOK, map[string]any{
				"method": r.Method,
				"path":   path,
				"query":  query,
			})
		}
	})

	log.Printf("🚀 Profile service running at http://localhost:%d", PORT)
	log.Printf("📍 Endpoint: http://localhost:%d/", PORT)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", PORT), nil))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
