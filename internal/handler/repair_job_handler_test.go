package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/Bakal12/backend/internal/entity"
	"github.com/Bakal12/backend/internal/testutil"
)

func createJob(t *testing.T, env *testutil.TestEnv, token string, fichaNumber int, placed map[string]int) uint {
	t.Helper()
	w := testutil.DoRequest(env.Router, http.MethodPost, "/jobs", map[string]interface{}{
		"ficha_number":       fichaNumber,
		"client":             "Garcia",
		"serial":             "SN-001",
		"model":              "XR-12",
		"battery_id":         "BAT-9",
		"charger_id":         "CHG-4",
		"diagnosis":          "no enciende",
		"type":               "bateria",
		"notes":              "cliente apurado",
		"repair_description": "cambio de celdas",
		"cycle_count":        "120",
		"status":             "en curso",
		"placed_parts":       placed,
		"missing_parts":      map[string]int{},
	}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("create job: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	return uint(data["id"].(float64))
}

func TestJobCreateAndListRoundTrip(t *testing.T) {
	env := setupAPITest(t)
	token := testutil.DefaultTestToken()

	createJob(t, env, token, 42, map[string]int{"P1": 5})

	w := testutil.DoRequest(env.Router, http.MethodGet, "/jobs", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	items := resp["data"].([]interface{})
	if len(items) != 1 {
		t.Fatalf("expected 1 job, got %d", len(items))
	}
	job := items[0].(map[string]interface{})
	if job["ficha_number"].(float64) != 42 {
		t.Fatalf("expected ficha_number 42, got %v", job["ficha_number"])
	}
	placed := job["placed_parts"].(map[string]interface{})
	if placed["P1"].(float64) != 5 {
		t.Fatalf("placed_parts did not round-trip: %v", placed)
	}
}

func TestJobCreateRequiresFichaNumber(t *testing.T) {
	env := setupAPITest(t)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(env.Router, http.MethodPost, "/jobs", map[string]interface{}{
		"client": "Garcia",
	}, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without ficha_number, got %d", w.Code)
	}
}

func TestJobUpdate(t *testing.T) {
	env := setupAPITest(t)
	token := testutil.DefaultTestToken()

	id := createJob(t, env, token, 7, map[string]int{"P1": 5})

	// Plain field plus a part map in one update.
	w := testutil.DoRequest(env.Router, http.MethodPut, fmt.Sprintf("/jobs/%d", id), map[string]interface{}{
		"status":       "terminado",
		"placed_parts": map[string]int{"P1": 2, "P9": 1},
	}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var job entity.RepairJob
	if err := env.DB.First(&job, id).Error; err != nil {
		t.Fatalf("failed to load job: %v", err)
	}
	if job.Status != "terminado" {
		t.Fatalf("expected status updated, got %q", job.Status)
	}
	if job.PlacedParts["P1"] != 2 || job.PlacedParts["P9"] != 1 {
		t.Fatalf("placed_parts not persisted: %v", job.PlacedParts)
	}

	// Empty update set is rejected before the store is touched.
	w = testutil.DoRequest(env.Router, http.MethodPut, fmt.Sprintf("/jobs/%d", id), map[string]interface{}{}, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty update, got %d", w.Code)
	}

	// Malformed part map is a client error.
	w = testutil.DoRequest(env.Router, http.MethodPut, fmt.Sprintf("/jobs/%d", id), map[string]interface{}{
		"placed_parts": map[string]interface{}{"P1": "many"},
	}, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad part map, got %d", w.Code)
	}

	w = testutil.DoRequest(env.Router, http.MethodPut, "/jobs/999999", map[string]interface{}{
		"status": "x",
	}, token)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for missing job, got %d", w.Code)
	}
}

func TestJobDeleteTwice(t *testing.T) {
	env := setupAPITest(t)
	token := testutil.DefaultTestToken()

	id := createJob(t, env, token, 9, nil)

	w := testutil.DoRequest(env.Router, http.MethodDelete, fmt.Sprintf("/jobs/%d", id), nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 on first delete, got %d: %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(env.Router, http.MethodDelete, fmt.Sprintf("/jobs/%d", id), nil, token)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", w.Code)
	}
}

func TestJobSearch(t *testing.T) {
	env := setupAPITest(t)
	token := testutil.DefaultTestToken()

	createJob(t, env, token, 51, nil)

	w := testutil.DoRequest(env.Router, http.MethodGet, "/jobs/search?term=Garcia", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	if len(resp["data"].([]interface{})) != 1 {
		t.Fatalf("expected 1 match, got %v", resp["data"])
	}

	// The numeric ficha_number column is searchable as text.
	w = testutil.DoRequest(env.Router, http.MethodGet, "/jobs/search?term=51", nil, token)
	resp = testutil.ParseResponse(w)
	if len(resp["data"].([]interface{})) != 1 {
		t.Fatalf("expected numeric column match, got %v", resp["data"])
	}

	w = testutil.DoRequest(env.Router, http.MethodGet, "/jobs/search?term=nobody", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for empty result, got %d", w.Code)
	}
	resp = testutil.ParseResponse(w)
	if len(resp["data"].([]interface{})) != 0 {
		t.Fatalf("expected empty result, got %v", resp["data"])
	}
}
