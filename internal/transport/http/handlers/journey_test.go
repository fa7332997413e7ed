package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"morisco/internal/app/server"
	"morisco/internal/platform/config"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   any             `json:"error"`
}

func newTestApp(t *testing.T) (*server.App, *httptest.Server, config.Config) {
	t.Helper()

	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	cfg := config.Config{
		DatabaseURL:        dbURL,
		JWTSecret:          "test-secret",
		FrontendDir:        "frontend/dist",
		MigrationsDir:      "../../../../migrations",
		Environment:        "test",
		SeedAdminEmail:     "admin@test.local",
		SeedAdminPassword:  "ChangeMe123!",
		SeedAdminName:      "Test Admin",
		AllowedOrigins:     []string{"*"},
		RunMigrations:      true,
		RunSeed:            true,
		MaxBodyBytes:       1048576,
		RateLimitPerMinute: 1000,
		SessionTTL:         time.Hour,
	}

	app, err := server.New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("failed to start app: %v", err)
	}
	t.Cleanup(app.Close)

	ts := httptest.NewServer(app.Router)
	t.Cleanup(ts.Close)

	return app, ts, cfg
}

func TestCafeAdminJourney(t *testing.T) {
	_, ts, cfg := newTestApp(t)
	client := ts.Client()

	token := login(t, client, ts.URL, cfg.SeedAdminEmail, cfg.SeedAdminPassword)

	employeeName := fmt.Sprintf("Journey Employee %d", time.Now().UnixNano())
	employeeID := createEmployee(t, client, ts.URL, token, employeeName)

	// Re-marking the same day must leave a single row with the latest status.
	day := time.Now().UTC().Format("2006-01-02")
	markAttendance(t, client, ts.URL, token, employeeID, day, "present")
	record := markAttendance(t, client, ts.URL, token, employeeID, day, "late")
	if record["status"] != "late" {
		t.Fatalf("expected re-marked status late, got %v", record["status"])
	}
	if record["timeIn"] == nil {
		t.Fatal("expected timeIn to be set for a late mark")
	}
	if record["timeOut"] != nil {
		t.Fatal("expected timeOut to stay cleared")
	}

	listed := listAttendance(t, client, ts.URL, token, day)
	count := 0
	for _, entry := range listed {
		if entry["employeeId"] == employeeID {
			count++
			if entry["status"] != "late" {
				t.Fatalf("expected listed status late, got %v", entry["status"])
			}
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one attendance row for the employee, got %d", count)
	}

	createWithdrawal(t, client, ts.URL, token, employeeID, 100)
	createWithdrawal(t, client, ts.URL, token, employeeID, 200)

	report := generateReport(t, client, ts.URL, token, employeeID, day, day)
	if got := report["workDays"].(float64); got != 0 {
		t.Fatalf("expected 0 work days for a late-only range, got %v", got)
	}
	if got := report["totalWithdrawals"].(string); got != "300" {
		t.Fatalf("expected total withdrawals 300, got %v", got)
	}

	markAttendance(t, client, ts.URL, token, employeeID, day, "present")
	report = generateReport(t, client, ts.URL, token, employeeID, day, day)
	if got := report["workDays"].(float64); got != 1 {
		t.Fatalf("expected 1 work day after present mark, got %v", got)
	}

	customerID := createCustomer(t, client, ts.URL, token, "Fatima Ahmed Ali")
	debtID := createDebt(t, client, ts.URL, token, customerID, 100)

	debt := applyPayment(t, client, ts.URL, token, debtID, 40)
	if debt["status"] != "partial" {
		t.Fatalf("expected partial status after first payment, got %v", debt["status"])
	}

	debt = applyPayment(t, client, ts.URL, token, debtID, 60)
	if debt["status"] != "paid" {
		t.Fatalf("expected paid status after covering payment, got %v", debt["status"])
	}

	summaries := listCustomers(t, client, ts.URL, token, "fatima")
	if len(summaries) == 0 {
		t.Fatal("expected case-insensitive search to find the customer")
	}
	found := false
	for _, summary := range summaries {
		if summary["id"] == customerID {
			found = true
			if got := summary["outstanding"].(string); got != "0" {
				t.Fatalf("expected outstanding 0 after full payment, got %v", got)
			}
		}
	}
	if !found {
		t.Fatal("expected created customer in search results")
	}
}

func TestReportRejectsInvertedRange(t *testing.T) {
	_, ts, cfg := newTestApp(t)
	client := ts.Client()

	token := login(t, client, ts.URL, cfg.SeedAdminEmail, cfg.SeedAdminPassword)
	employeeID := createEmployee(t, client, ts.URL, token, "Range Check")

	url := fmt.Sprintf("%s/api/v1/reports/employee/%s?start=2025-02-10&end=2025-02-01", ts.URL, employeeID)
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected inverted range to be rejected, got %d", resp.StatusCode)
	}
}

func TestExpenseCategoryValidation(t *testing.T) {
	_, ts, cfg := newTestApp(t)
	client := ts.Client()

	token := login(t, client, ts.URL, cfg.SeedAdminEmail, cfg.SeedAdminPassword)

	status, _ := postJSON(t, client, ts.URL+"/api/v1/expenses", token, map[string]any{
		"description": "new grinder",
		"amount":      250,
		"category":    "unknown-category",
		"date":        "2025-02-01",
	})
	if status != http.StatusBadRequest {
		t.Fatalf("expected unknown category to be rejected, got %d", status)
	}

	status, _ = postJSON(t, client, ts.URL+"/api/v1/expenses", token, map[string]any{
		"description": "new grinder",
		"amount":      250,
		"category":    "Maintenance",
		"date":        "2025-02-01",
	})
	if status != http.StatusBadRequest {
		t.Fatalf("expected mixed-case category to be rejected, got %d", status)
	}

	status, _ = postJSON(t, client, ts.URL+"/api/v1/expenses", token, map[string]any{
		"description": "new grinder",
		"amount":      250,
		"category":    "maintenance",
		"date":        "2025-02-01",
	})
	if status != http.StatusCreated {
		t.Fatalf("expected valid expense to be created, got %d", status)
	}
}

func TestExpenseMonthTotal(t *testing.T) {
	_, ts, cfg := newTestApp(t)
	client := ts.Client()

	token := login(t, client, ts.URL, cfg.SeedAdminEmail, cfg.SeedAdminPassword)

	before := monthTotal(t, client, ts.URL, token, 2031, 7)

	status, _ := postJSON(t, client, ts.URL+"/api/v1/expenses", token, map[string]any{
		"description": "beans restock",
		"amount":      320,
		"category":    "purchases",
		"date":        "2031-07-15",
	})
	if status != http.StatusCreated {
		t.Fatalf("expected expense to be created, got %d", status)
	}

	after := monthTotal(t, client, ts.URL, token, 2031, 7)
	if !after.Sub(before).Equal(decimal.NewFromInt(320)) {
		t.Fatalf("expected month total to grow by 320, got %s -> %s", before, after)
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	_, ts, cfg := newTestApp(t)
	client := ts.Client()

	token := login(t, client, ts.URL, cfg.SeedAdminEmail, cfg.SeedAdminPassword)

	meReq, _ := http.NewRequest(http.MethodGet, ts.URL+"/api/v1/auth/me", nil)
	meReq.Header.Set("Authorization", "Bearer "+token)
	resp, err := client.Do(meReq)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected live token to authorize, got %d", resp.StatusCode)
	}

	status, _ := postJSON(t, client, ts.URL+"/api/v1/auth/logout", token, map[string]any{})
	if status != http.StatusOK {
		t.Fatalf("logout failed with status %d", status)
	}

	meReq, _ = http.NewRequest(http.MethodGet, ts.URL+"/api/v1/auth/me", nil)
	meReq.Header.Set("Authorization", "Bearer "+token)
	resp, err = client.Do(meReq)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected revoked token to be rejected, got %d", resp.StatusCode)
	}

	empReq, _ := http.NewRequest(http.MethodGet, ts.URL+"/api/v1/employees", nil)
	empReq.Header.Set("Authorization", "Bearer "+token)
	resp, err = client.Do(empReq)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected revoked token to be rejected on protected routes, got %d", resp.StatusCode)
	}
}

func monthTotal(t *testing.T, client *http.Client, baseURL, token string, year, month int) decimal.Decimal {
	t.Helper()

	data := getJSON(t, client, fmt.Sprintf("%s/api/v1/expenses/total?year=%d&month=%d", baseURL, year, month), token)
	var payload struct {
		Total decimal.Decimal `json:"total"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		t.Fatalf("decode month total: %v", err)
	}
	return payload.Total
}

func login(t *testing.T, client *http.Client, baseURL, email, password string) string {
	t.Helper()

	status, data := postJSON(t, client, baseURL+"/api/v1/auth/login", "", map[string]any{
		"email":    email,
		"password": password,
	})
	if status != http.StatusOK {
		t.Fatalf("login failed with status %d", status)
	}

	var payload struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if payload.Token == "" {
		t.Fatal("expected login token")
	}
	return payload.Token
}

func createEmployee(t *testing.T, client *http.Client, baseURL, token, name string) string {
	t.Helper()

	status, data := postJSON(t, client, baseURL+"/api/v1/employees", token, map[string]any{
		"name":      name,
		"phone":     "0551234567",
		"dailyWage": 200,
		"hireDate":  "2025-01-01",
	})
	if status != http.StatusCreated {
		t.Fatalf("create employee failed with status %d", status)
	}
	return idFrom(t, data)
}

func markAttendance(t *testing.T, client *http.Client, baseURL, token, employeeID, date, status string) map[string]any {
	t.Helper()

	code, data := postJSON(t, client, baseURL+"/api/v1/attendance/mark", token, map[string]any{
		"employeeId": employeeID,
		"date":       date,
		"status":     status,
	})
	if code != http.StatusOK {
		t.Fatalf("mark attendance failed with status %d", code)
	}
	return objectFrom(t, data)
}

func listAttendance(t *testing.T, client *http.Client, baseURL, token, date string) []map[string]any {
	t.Helper()

	data := getJSON(t, client, fmt.Sprintf("%s/api/v1/attendance?date=%s", baseURL, date), token)
	var payload struct {
		Records []map[string]any `json:"records"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		t.Fatalf("decode attendance list: %v", err)
	}
	return payload.Records
}

func createWithdrawal(t *testing.T, client *http.Client, baseURL, token, employeeID string, amount int) {
	t.Helper()

	status, _ := postJSON(t, client, fmt.Sprintf("%s/api/v1/employees/%s/withdrawals", baseURL, employeeID), token, map[string]any{
		"amount": amount,
		"date":   time.Now().UTC().Format("2006-01-02"),
	})
	if status != http.StatusCreated {
		t.Fatalf("create withdrawal failed with status %d", status)
	}
}

func generateReport(t *testing.T, client *http.Client, baseURL, token, employeeID, start, end string) map[string]any {
	t.Helper()

	data := getJSON(t, client, fmt.Sprintf("%s/api/v1/reports/employee/%s?start=%s&end=%s", baseURL, employeeID, start, end), token)
	return objectFrom(t, data)
}

func createCustomer(t *testing.T, client *http.Client, baseURL, token, name string) string {
	t.Helper()

	status, data := postJSON(t, client, baseURL+"/api/v1/customers", token, map[string]any{
		"name":  name,
		"phone": "0559876543",
		"email": "fatima@example.com",
	})
	if status != http.StatusCreated {
		t.Fatalf("create customer failed with status %d", status)
	}
	return idFrom(t, data)
}

func createDebt(t *testing.T, client *http.Client, baseURL, token, customerID string, amount int) string {
	t.Helper()

	status, data := postJSON(t, client, baseURL+"/api/v1/debts", token, map[string]any{
		"customerId": customerID,
		"amount":     amount,
		"date":       time.Now().UTC().Format("2006-01-02"),
	})
	if status != http.StatusCreated {
		t.Fatalf("create debt failed with status %d", status)
	}
	return idFrom(t, data)
}

func applyPayment(t *testing.T, client *http.Client, baseURL, token, debtID string, amount int) map[string]any {
	t.Helper()

	status, data := postJSON(t, client, fmt.Sprintf("%s/api/v1/debts/%s/payments", baseURL, debtID), token, map[string]any{
		"amount": amount,
	})
	if status != http.StatusOK {
		t.Fatalf("apply payment failed with status %d", status)
	}
	return objectFrom(t, data)
}

func listCustomers(t *testing.T, client *http.Client, baseURL, token, query string) []map[string]any {
	t.Helper()

	data := getJSON(t, client, baseURL+"/api/v1/customers?q="+query, token)
	var payload []map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		t.Fatalf("decode customer list: %v", err)
	}
	return payload
}

func postJSON(t *testing.T, client *http.Client, url, token string, body map[string]any) (int, json.RawMessage) {
	t.Helper()

	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request body: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}

	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return resp.StatusCode, env.Data
}

func getJSON(t *testing.T, client *http.Client, url, token string) json.RawMessage {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET %s failed with status %d", url, resp.StatusCode)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}

	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return env.Data
}

func idFrom(t *testing.T, data json.RawMessage) string {
	t.Helper()

	obj := objectFrom(t, data)
	id, _ := obj["id"].(string)
	if id == "" {
		t.Fatal("expected id in response")
	}
	return id
}

func objectFrom(t *testing.T, data json.RawMessage) map[string]any {
	t.Helper()

	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		t.Fatalf("decode object: %v", err)
	}
	return obj
}
