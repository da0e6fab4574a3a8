package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"raffle/internal/services"
	"raffle/internal/testutil"

	"github.com/gin-gonic/gin"
)

func newTestRouter(service *services.RaffleService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHTTPHandler(service).RegisterRoutes(router)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	payload := map[string]interface{}{}
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("Expected a JSON body, but got %q", w.Body.String())
	}
	return w, payload
}

func TestHTTPHandler_FullRound(t *testing.T) {
	picker := testutil.NewSequencePicker(
		[]int{1, 2, 3, 4, 5}, // Alice's ticket
		[]int{3, 4, 5, 6, 7}, // winning numbers
	)
	router := newTestRouter(services.NewRaffleServiceWithPicker(picker))

	t.Run("status before the draw starts", func(t *testing.T) {
		w, payload := doRequest(t, router, http.MethodGet, "/status", "")
		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, but got %d", w.Code)
		}
		if payload["active"] != false {
			t.Errorf("Expected active=false, but got %v", payload["active"])
		}
		if payload["status"] != "Status: Draw has not started" {
			t.Errorf("Unexpected status: %v", payload["status"])
		}
	})

	t.Run("entries are rejected before the draw starts", func(t *testing.T) {
		w, payload := doRequest(t, router, http.MethodPost, "/entries", `{"entry":"Alice, 1"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("Expected 409, but got %d", w.Code)
		}
		if payload["error"] != "draw has not started" {
			t.Errorf("Unexpected error: %v", payload["error"])
		}
	})

	t.Run("starting the draw", func(t *testing.T) {
		w, payload := doRequest(t, router, http.MethodPost, "/draws", "")
		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, but got %d", w.Code)
		}
		if payload["pot_size"] != "100" {
			t.Errorf("Expected pot_size \"100\", but got %v", payload["pot_size"])
		}
		if payload["round_id"] == "" {
			t.Error("Expected a round_id")
		}
	})

	t.Run("starting again conflicts", func(t *testing.T) {
		w, payload := doRequest(t, router, http.MethodPost, "/draws", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("Expected 409, but got %d", w.Code)
		}
		if payload["error"] != "draw is already active" {
			t.Errorf("Unexpected error: %v", payload["error"])
		}
	})

	t.Run("malformed entry pairs are bad requests", func(t *testing.T) {
		w, _ := doRequest(t, router, http.MethodPost, "/entries", `{"entry":"Alice"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("Expected 400, but got %d", w.Code)
		}
		w, _ = doRequest(t, router, http.MethodPost, "/entries", `{"wrong":"field"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("Expected 400, but got %d", w.Code)
		}
	})

	t.Run("registering an entry", func(t *testing.T) {
		w, payload := doRequest(t, router, http.MethodPost, "/entries", `{"entry":"Alice, 1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, but got %d", w.Code)
		}
		if payload["issued"] != float64(1) {
			t.Errorf("Expected 1 ticket issued, but got %v", payload["issued"])
		}
		if payload["pot_size"] != "105" {
			t.Errorf("Expected pot_size \"105\", but got %v", payload["pot_size"])
		}
	})

	t.Run("running the raffle settles and finalizes", func(t *testing.T) {
		w, payload := doRequest(t, router, http.MethodPost, "/draws/run", "")
		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, but got %d", w.Code)
		}
		if payload["total_payout"] != "15.75" {
			t.Errorf("Expected total_payout \"15.75\", but got %v", payload["total_payout"])
		}
		if payload["pot_size"] != "89.25" {
			t.Errorf("Expected pot_size \"89.25\", but got %v", payload["pot_size"])
		}

		results, ok := payload["results"].([]interface{})
		if !ok || len(results) != 4 {
			t.Fatalf("Expected 4 result groups, but got %v", payload["results"])
		}

		w, payload = doRequest(t, router, http.MethodGet, "/status", "")
		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, but got %d", w.Code)
		}
		if payload["active"] != false {
			t.Errorf("Expected active=false after the run, but got %v", payload["active"])
		}
	})

	t.Run("running again conflicts", func(t *testing.T) {
		w, payload := doRequest(t, router, http.MethodPost, "/draws/run", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("Expected 409, but got %d", w.Code)
		}
		if payload["error"] != "draw has not started" {
			t.Errorf("Unexpected error: %v", payload["error"])
		}
	})
}
