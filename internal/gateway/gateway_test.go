package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCreateOrder(t *testing.T) {
	var gotAuthUser, gotAuthPass string
	var gotBody createOrderRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/orders" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		gotAuthUser, gotAuthPass, _ = r.BasicAuth()
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(Order{
			ID:          "order_test_1",
			AmountMinor: gotBody.Amount,
			Currency:    gotBody.Currency,
			Receipt:     gotBody.Receipt,
			Status:      "created",
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "key_id", "key_secret", srv.Client())
	order, err := client.CreateOrder(context.Background(), 5000, "USD", "DON-1")
	if err != nil {
		t.Fatalf("CreateOrder returned error: %v", err)
	}

	if gotAuthUser != "key_id" || gotAuthPass != "key_secret" {
		t.Fatalf("basic auth mismatch: %q/%q", gotAuthUser, gotAuthPass)
	}
	if gotBody.Amount != 5000 || gotBody.Currency != "USD" || gotBody.Receipt != "DON-1" {
		t.Fatalf("request body mismatch: %+v", gotBody)
	}
	if order.ID != "order_test_1" || order.Status != "created" {
		t.Fatalf("order mismatch: %+v", order)
	}
}

func TestCreateOrderErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"bad key"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "key_id", "wrong", srv.Client())
	if _, err := client.CreateOrder(context.Background(), 100, "USD", "DON-2"); err == nil {
		t.Fatal("expected error for 401 response")
	}
}

func TestVerifySignature(t *testing.T) {
	sig := SignPayment("order_1", "pay_1", "secret")
	if !VerifySignature("order_1", "pay_1", sig, "secret") {
		t.Fatal("expected signature to verify")
	}
	if VerifySignature("order_1", "pay_1", sig, "other-secret") {
		t.Fatal("expected verification to fail with wrong secret")
	}
	if VerifySignature("order_2", "pay_1", sig, "secret") {
		t.Fatal("expected verification to fail with wrong order id")
	}
}
