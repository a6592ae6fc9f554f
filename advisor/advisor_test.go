package advisor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"demobank/models"
)

func fakeGemini(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return &Client{APIKey: "test-key", BaseURL: ts.URL, HTTPClient: ts.Client()}
}

func TestAdviseWithoutKey(t *testing.T) {
	c := New("")
	reply := c.Advise(context.Background(), "How am I doing?", nil, decimal.Zero)
	if reply != replyUnavailable {
		t.Fatalf("reply = %q", reply)
	}
}

func TestAdviseReturnsModelText(t *testing.T) {
	var gotPrompt string
	c := fakeGemini(t, func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		gotPrompt = req.Contents[0].Parts[0].Text
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": "  You are doing fine. "}}}},
			},
		})
	})

	txns := []models.Transaction{
		{Date: "2026-08-29", Description: "Whole Foods Market", Amount: decimal.RequireFromString("245.89"), Type: models.TransactionDebit},
	}
	reply := c.Advise(context.Background(), "How am I doing?", txns, decimal.RequireFromString("2345890.50"))
	if reply != "You are doing fine." {
		t.Fatalf("reply = %q", reply)
	}

	// The prompt carries the question, the balance, and the recent activity.
	for _, want := range []string{"How am I doing?", "2345890.50", "Whole Foods Market", "max 100 words"} {
		if !strings.Contains(gotPrompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, gotPrompt)
		}
	}
}

func TestAdviseUpstreamFailure(t *testing.T) {
	c := fakeGemini(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})
	reply := c.Advise(context.Background(), "q", nil, decimal.Zero)
	if reply != replyTrouble {
		t.Fatalf("reply = %q", reply)
	}
}

func TestAdviseEmptyCandidates(t *testing.T) {
	c := fakeGemini(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates": []}`))
	})
	reply := c.Advise(context.Background(), "q", nil, decimal.Zero)
	if reply != replyEmpty {
		t.Fatalf("reply = %q", reply)
	}
}

func TestPromptCapsTransactionCount(t *testing.T) {
	txns := make([]models.Transaction, 15)
	for i := range txns {
		txns[i] = models.Transaction{Date: "2026-08-01", Description: "Entry", Amount: decimal.New(int64(i+1), 0), Type: models.TransactionDebit}
	}
	prompt := buildPrompt("q", txns, decimal.Zero)
	if got := strings.Count(prompt, "Entry"); got != 10 {
		t.Fatalf("prompt has %d transactions, want 10", got)
	}
}
