// Package main implements a standalone seed script that populates a running
// storefront with categories and products through the admin API. It is meant
// for demo and local development environments; the server also self-seeds
// its local catalog, so running this is optional.
//
// Run: ADMIN_PASSWORD=... go run ./scripts/seed
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func httpPost(url, token string, body any) (json.RawMessage, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal body: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("X-Admin-Token", token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(respBody))
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	return env.Data, nil
}

func login(baseURL, password string) (string, error) {
	data, err := httpPost(baseURL+"/api/v1/admin/login", "", map[string]string{
		"password": password,
	})
	if err != nil {
		return "", err
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", fmt.Errorf("unmarshal login response: %w", err)
	}
	return resp.Token, nil
}

type category struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

type product struct {
	Name          string   `json:"name"`
	Price         int64    `json:"price"`
	OriginalPrice int64    `json:"original_price"`
	Category      string   `json:"category"`
	Image         string   `json:"image"`
	Description   string   `json:"description"`
	Sizes         []string `json:"sizes,omitempty"`
	Bestseller    bool     `json:"bestseller"`
	NewArrival    bool     `json:"new_arrival"`
}

var categories = []category{
	{Name: "Casual", Image: "https://images.unsplash.com/photo-1515372039744-b8f02a3ae446?w=400"},
	{Name: "Ethnic", Image: "https://images.unsplash.com/photo-1610030469983-98e550d6193c?w=400"},
	{Name: "Party Wear", Image: "https://images.unsplash.com/photo-1566174053879-31528523f8ae?w=400"},
	{Name: "Summer", Image: "https://images.unsplash.com/photo-1572804013309-59a88b7e92f1?w=400"},
	{Name: "Formal", Image: "https://images.unsplash.com/photo-1580489944761-15a19d654956?w=400"},
}

var products = []product{
	{
		Name:          "Floral Summer Dress",
		Price:         899,
		OriginalPrice: 1299,
		Category:      "Summer",
		Image:         "https://images.unsplash.com/photo-1572804013309-59a88b7e92f1?w=400",
		Description:   "Light floral print dress, perfect for warm days.",
		Bestseller:    true,
	},
	{
		Name:          "Elegant Black Gown",
		Price:         2499,
		OriginalPrice: 3499,
		Category:      "Party Wear",
		Image:         "https://images.unsplash.com/photo-1566174053879-31528523f8ae?w=400",
		Description:   "Floor-length gown with a fitted bodice.",
	},
	{
		Name:          "Embroidered Anarkali Suit",
		Price:         1899,
		OriginalPrice: 2799,
		Category:      "Ethnic",
		Image:         "https://images.unsplash.com/photo-1610030469983-98e550d6193c?w=400",
		Description:   "Hand-embroidered anarkali with dupatta.",
		Bestseller:    true,
	},
	{
		Name:          "Denim Jacket Dress",
		Price:         1299,
		OriginalPrice: 1799,
		Category:      "Casual",
		Image:         "https://images.unsplash.com/photo-1515372039744-b8f02a3ae446?w=400",
		Description:   "Relaxed denim shirt dress with patch pockets.",
		NewArrival:    true,
	},
	{
		Name:          "Tailored Blazer Set",
		Price:         2199,
		OriginalPrice: 2999,
		Category:      "Formal",
		Image:         "https://images.unsplash.com/photo-1580489944761-15a19d654956?w=400",
		Description:   "Two-piece blazer and trouser set.",
	},
	{
		Name:          "Banarasi Silk Saree",
		Price:         3299,
		OriginalPrice: 4999,
		Category:      "Ethnic",
		Image:         "https://images.unsplash.com/photo-1583391733956-6c78276477e2?w=400",
		Description:   "Traditional banarasi weave with zari border.",
		Sizes:         []string{"Free Size"},
	},
}

func main() {
	baseURL := getEnv("API_URL", "http://localhost:8080")
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		log.Fatal("ADMIN_PASSWORD is required")
	}

	token, err := login(baseURL, password)
	if err != nil {
		log.Fatalf("admin login: %v", err)
	}
	log.Println("logged in")

	for _, c := range categories {
		if _, err := httpPost(baseURL+"/api/v1/admin/categories", token, c); err != nil {
			log.Printf("create category %q: %v", c.Name, err)
			continue
		}
		log.Printf("created category %q", c.Name)
	}

	for _, p := range products {
		if _, err := httpPost(baseURL+"/api/v1/admin/products", token, p); err != nil {
			log.Printf("create product %q: %v", p.Name, err)
			continue
		}
		log.Printf("created product %q", p.Name)
	}

	log.Println("seeding complete")
}
