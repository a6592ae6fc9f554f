package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"demobank/advisor"
	"demobank/bank"
	"demobank/models"
)

// newTestServer wires the handler globals to a fresh manager with no
// transfer delay and the simulator disabled, then serves the API tree.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	Sessions = bank.NewManager(0, 0)
	Advice = advisor.New("")
	t.Cleanup(Sessions.Close)

	ts := httptest.NewServer(Router())
	t.Cleanup(ts.Close)
	return ts
}

// doJSON performs one request, checks the status code, and decodes the
// data half of the response envelope into out when given.
func doJSON(t *testing.T, method, url, token string, body any, wantCode int, out any) string {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	var envelope struct {
		Data  json.RawMessage `json:"data"`
		Error string          `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("%s %s: decode: %v", method, url, err)
	}
	if resp.StatusCode != wantCode {
		t.Fatalf("%s %s: code = %d (error %q), want %d", method, url, resp.StatusCode, envelope.Error, wantCode)
	}
	if out != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			t.Fatalf("%s %s: decode data: %v", method, url, err)
		}
	}
	return envelope.Error
}

func login(t *testing.T, ts *httptest.Server) string {
	t.Helper()
	var data struct {
		Token string `json:"token"`
	}
	doJSON(t, "POST", ts.URL+"/login", "", map[string]any{
		"name": "Test Customer", "email": "test@example.com", "password": "hunter2hunter2",
	}, 200, &data)
	if data.Token == "" {
		t.Fatal("empty token")
	}
	return data.Token
}

func TestLoginValidation(t *testing.T) {
	ts := newTestServer(t)

	msg := doJSON(t, "POST", ts.URL+"/login", "", map[string]any{
		"email": "not-an-email", "password": "hunter2hunter2",
	}, 400, nil)
	if msg != "please enter a valid email address" {
		t.Fatalf("error = %q", msg)
	}

	msg = doJSON(t, "POST", ts.URL+"/login", "", map[string]any{
		"email": "test@example.com", "password": "short",
	}, 400, nil)
	if msg != "password must be at least 8 characters long" {
		t.Fatalf("error = %q", msg)
	}
}

func TestRequiresBearerToken(t *testing.T) {
	ts := newTestServer(t)
	doJSON(t, "GET", ts.URL+"/accounts", "", nil, 401, nil)
	doJSON(t, "GET", ts.URL+"/accounts", "bogus-token", nil, 401, nil)
}

func TestTransferFlow(t *testing.T) {
	ts := newTestServer(t)
	token := login(t, ts)

	var accounts []models.Account
	doJSON(t, "GET", ts.URL+"/accounts", token, nil, 200, &accounts)
	if len(accounts) != 7 {
		t.Fatalf("accounts = %d, want 7", len(accounts))
	}

	internal := map[string]any{"kind": "internal", "amount": "5000"}

	var preview models.TransferPreview
	doJSON(t, "POST", ts.URL+"/transfers/preview", token, internal, 200, &preview)
	if preview.Arrival != "Instant" {
		t.Fatalf("arrival = %q", preview.Arrival)
	}

	var result models.TransferResult
	doJSON(t, "POST", ts.URL+"/transfers", token, internal, 201, &result)
	if result.Transaction == nil {
		t.Fatal("expected a transaction")
	}

	var dash struct {
		CheckingBalance string `json:"checking_balance"`
		SavingsBalance  string `json:"savings_balance"`
	}
	doJSON(t, "GET", ts.URL+"/dashboard", token, nil, 200, &dash)
	if dash.CheckingBalance != "2340890.5" {
		t.Fatalf("checking = %q", dash.CheckingBalance)
	}
	if dash.SavingsBalance != "129500" {
		t.Fatalf("savings = %q", dash.SavingsBalance)
	}

	// Over the per-transaction limit is a 422, not a 400.
	msg := doJSON(t, "POST", ts.URL+"/transfers", token,
		map[string]any{"kind": "internal", "amount": "5000.01"}, 422, nil)
	if msg != bank.ErrPerTransactionLimit.Error() {
		t.Fatalf("error = %q", msg)
	}

	// Unknown variant is a 400 from input validation.
	doJSON(t, "POST", ts.URL+"/transfers", token,
		map[string]any{"kind": "wire", "amount": "10"}, 400, nil)
}

func TestRecurringFlow(t *testing.T) {
	ts := newTestServer(t)
	token := login(t, ts)

	var result models.TransferResult
	doJSON(t, "POST", ts.URL+"/transfers", token, map[string]any{
		"kind": "bill", "amount": "19.99", "recipient": "City Utilities",
		"recurring": true, "frequency": "Monthly", "start_date": "2026-09-15",
	}, 201, &result)
	if result.Scheduled == nil || result.Transaction != nil {
		t.Fatalf("result = %+v, want schedule entry only", result)
	}

	var payments []models.RecurringPayment
	doJSON(t, "GET", ts.URL+"/recurring", token, nil, 200, &payments)
	if len(payments) != 3 {
		t.Fatalf("payments = %d, want 3", len(payments))
	}

	doJSON(t, "DELETE", ts.URL+"/recurring/"+result.Scheduled.ID, token, nil, 200, nil)
	doJSON(t, "DELETE", ts.URL+"/recurring/"+result.Scheduled.ID, token, nil, 404, nil)

	doJSON(t, "GET", ts.URL+"/recurring", token, nil, 200, &payments)
	if len(payments) != 2 {
		t.Fatalf("payments = %d, want 2", len(payments))
	}
}

func TestDepositAndLimits(t *testing.T) {
	ts := newTestServer(t)
	token := login(t, ts)

	var txn models.Transaction
	doJSON(t, "POST", ts.URL+"/deposits", token, map[string]any{
		"amount": "1234.56", "check_number": "1042",
		"front_captured": true, "back_captured": true,
	}, 201, &txn)
	if txn.Description != "Mobile Deposit (Check #1042)" {
		t.Fatalf("description = %q", txn.Description)
	}

	// Capture gate belongs to the submission.
	doJSON(t, "POST", ts.URL+"/deposits", token, map[string]any{
		"amount": "10", "front_captured": true, "back_captured": false,
	}, 400, nil)

	var limits models.Limits
	doJSON(t, "GET", ts.URL+"/limits", token, nil, 200, &limits)
	if limits.PerTransaction.String() != "5000" {
		t.Fatalf("per-transaction = %s", limits.PerTransaction)
	}

	doJSON(t, "PUT", ts.URL+"/limits", token, map[string]any{
		"per_transaction": "2000", "daily": "6000",
	}, 200, &limits)
	if limits.Daily.String() != "6000" {
		t.Fatalf("daily = %s", limits.Daily)
	}

	msg := doJSON(t, "PUT", ts.URL+"/limits", token, map[string]any{
		"per_transaction": "7000", "daily": "6000",
	}, 400, nil)
	if msg != bank.ErrLimitConfig.Error() {
		t.Fatalf("error = %q", msg)
	}
}

func TestCardLockAndAdviceFallback(t *testing.T) {
	ts := newTestServer(t)
	token := login(t, ts)

	var card models.Card
	doJSON(t, "POST", ts.URL+"/cards/card-1/lock", token, nil, 200, &card)
	if card.Status != models.CardFrozen {
		t.Fatalf("status = %s", card.Status)
	}
	doJSON(t, "POST", ts.URL+"/cards/card-99/lock", token, nil, 404, nil)

	// No API key configured: the fixed fallback comes back as a normal 200.
	var advice struct {
		Reply string `json:"reply"`
	}
	doJSON(t, "POST", ts.URL+"/advice", token, map[string]any{"query": "How am I doing?"}, 200, &advice)
	if advice.Reply != "AI service is currently unavailable. Please check your API configuration." {
		t.Fatalf("reply = %q", advice.Reply)
	}
}

func TestLogoutInvalidatesToken(t *testing.T) {
	ts := newTestServer(t)
	token := login(t, ts)

	doJSON(t, "POST", ts.URL+"/logout", token, nil, 200, nil)
	doJSON(t, "GET", ts.URL+"/accounts", token, nil, 401, nil)
}
