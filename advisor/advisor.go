// Package advisor is a thin client for the Gemini text-generation API. It
// is the only outbound call the server makes, it is optional, and it never
// fails the request: any problem collapses into a fixed fallback string.
package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"demobank/models"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	model          = "gemini-2.5-flash"

	// Fallbacks shown instead of an error.
	replyUnavailable = "AI service is currently unavailable. Please check your API configuration."
	replyTrouble     = "I am having trouble connecting to the financial analysis server right now."
	replyEmpty       = "I apologize, I couldn't generate a response at this moment."
)

// Client calls the generateContent endpoint. A zero APIKey disables it.
type Client struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// New returns a client with a sane request timeout.
func New(apiKey string) *Client {
	return &Client{
		APIKey:     apiKey,
		BaseURL:    defaultBaseURL,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Advise answers a free-text question with the customer's recent activity
// as context. It always returns something presentable.
func (c *Client) Advise(ctx context.Context, query string, txns []models.Transaction, balance decimal.Decimal) string {
	if c.APIKey == "" {
		slog.Warn("API_KEY not set, advisor disabled")
		return replyUnavailable
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: buildPrompt(query, txns, balance)}}}},
	})
	if err != nil {
		return replyTrouble
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.BaseURL, model, c.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return replyTrouble
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		slog.Error("advisor request failed", "error", err)
		return replyTrouble
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		slog.Error("advisor request rejected", "status", resp.StatusCode)
		return replyTrouble
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return replyTrouble
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return replyEmpty
	}
	reply := strings.TrimSpace(out.Candidates[0].Content.Parts[0].Text)
	if reply == "" {
		return replyEmpty
	}
	return reply
}

// buildPrompt frames the model as the bank's assistant and attaches the
// last ten transactions plus the current balance.
func buildPrompt(query string, txns []models.Transaction, balance decimal.Decimal) string {
	var b strings.Builder
	b.WriteString("You are a sophisticated financial assistant for a high-net-worth online banking client.\n")
	fmt.Fprintf(&b, "Current Balance: $%s\n\nRecent Transactions:\n", balance.StringFixed(2))
	for i, t := range txns {
		if i >= 10 {
			break
		}
		fmt.Fprintf(&b, "- %s: %s ($%s) [%s]\n", t.Date, t.Description, t.Amount.StringFixed(2), t.Type)
	}
	fmt.Fprintf(&b, "\nUser Query: %q\n\n", query)
	b.WriteString("Provide a concise, professional, and helpful response (max 100 words).\n")
	b.WriteString("If the user asks about the large recent deposit, acknowledge it as the \"Vroon offshore settlement\".\n")
	b.WriteString("Be polite but direct.\n")
	return b.String()
}
