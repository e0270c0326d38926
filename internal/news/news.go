// Package news wraps the generative text provider behind fixed fallbacks:
// with no API key, or on any failure, callers get canned copy instead of
// an error.
package news

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"

	"github.com/alioayf27-debug/trackstock/internal/model"
)

const defaultModel = "gemini-2.0-flash"

// Client calls the generative text API. A Client with an empty APIKey is
// valid and always answers with fallback text.
type Client struct {
	APIKey  string
	BaseURL string
	Model   string
	HTTP    *http.Client
}

// NewClient creates a client for the given API key. An empty key disables
// remote calls entirely.
func NewClient(apiKey string) *Client {
	return &Client{
		APIKey:  apiKey,
		BaseURL: "https://generativelanguage.googleapis.com/v1beta",
		Model:   defaultModel,
		HTTP:    &http.Client{Timeout: 20 * time.Second},
	}
}

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string          `json:"responseMimeType,omitempty"`
	ResponseSchema   json.RawMessage `json:"responseSchema,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (client *Client) generate(ctx context.Context, prompt string, config *generationConfig) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents:         []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: config,
	})

	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf(
		"%s/models/%s:generateContent?key=%s",
		client.BaseURL,
		client.Model,
		client.APIKey,
	)

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))

	if err != nil {
		return "", err
	}

	request.Header.Set("Content-Type", "application/json")

	response, err := client.HTTP.Do(request)

	if err != nil {
		return "", err
	}

	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return "", fmt.Errorf("text provider status %d", response.StatusCode)
	}

	payload, err := io.ReadAll(response.Body)

	if err != nil {
		return "", err
	}

	var parsed generateResponse

	if err := json.Unmarshal(payload, &parsed); err != nil {
		return "", err
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("text provider returned no candidates")
	}

	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

// StockSummary returns a short AI take on a security, or a generic line
// when the provider is unavailable.
func (client *Client) StockSummary(ctx context.Context, ticker, companyName string) string {
	fallback := fmt.Sprintf(
		"%s (%s) is showing significant volatility today. Analysts are watching key resistance levels as global market sentiment shifts.",
		companyName,
		ticker,
	)

	if client.APIKey == "" {
		return fallback
	}

	prompt := fmt.Sprintf(
		"Provide a very short, punchy 2-sentence financial summary for %s (%s). Why is it interesting right now? Focus on momentum, recent news, or technicals. Be professional but exciting.",
		companyName,
		ticker,
	)

	text, err := client.generate(ctx, prompt, nil)

	if err != nil {
		log.Debug().Err(err).Str("ticker", ticker).Msg("stock summary fell back")

		return "AI analysis unavailable at this moment. Showing technical fallback."
	}

	return text
}

// HeadlineImpact returns a short market-impact summary for a headline.
func (client *Client) HeadlineImpact(ctx context.Context, headline, source string) string {
	fallback := "This story is developing. Analysts are monitoring the impact on related sectors. Click 'Read Full Story' for more details."

	if client.APIKey == "" {
		return fallback
	}

	prompt := fmt.Sprintf(
		"You are a financial news analyst. Write a 2-sentence summary explaining the potential market impact of this headline from %s: %q. Keep it factual and concise.",
		source,
		headline,
	)

	text, err := client.generate(ctx, prompt, nil)

	if err != nil {
		return "Unable to generate AI summary at this time."
	}

	return text
}

var newsSchema = json.RawMessage(`{
	"type": "ARRAY",
	"items": {
		"type": "OBJECT",
		"properties": {
			"source": {"type": "STRING"},
			"headline": {"type": "STRING"},
			"time": {"type": "STRING"},
			"url": {"type": "STRING"}
		},
		"required": ["source", "headline", "time"]
	}
}`)

// MarketNews returns generated headlines, or the canned list when the
// provider is unavailable.
func (client *Client) MarketNews(ctx context.Context) []model.NewsItem {
	if client.APIKey == "" {
		return MockNews()
	}

	text, err := client.generate(
		ctx,
		"Generate 6 diverse, realistic, and current-sounding financial news headlines. Mix of US Tech, Global Markets, Energy, and Crypto. Timestamps should be relative (e.g. 'Just now', '12m ago'). Sources should be reputable financial outlets.",
		&generationConfig{ResponseMimeType: "application/json", ResponseSchema: newsSchema},
	)

	if err != nil {
		log.Debug().Err(err).Msg("market news fell back")

		return MockNews()
	}

	var items []model.NewsItem

	if err := json.Unmarshal([]byte(text), &items); err != nil {
		return MockNews()
	}

	for i := range items {
		if items[i].URL == "" {
			items[i].URL = "#"
		}
	}

	return items
}

// MockNews returns the canned headline list shown when no generative text
// provider is configured.
func MockNews() []model.NewsItem {
	return []model.NewsItem{
		{Source: "Bloomberg", Time: "2m ago", Headline: "AI infrastructure spending expected to top $200B this quarter, analysts say.", URL: "#"},
		{Source: "Reuters", Time: "15m ago", Headline: "Oil prices fluctuate as geopolitical tensions rise in the Middle East.", URL: "#"},
		{Source: "TechCrunch", Time: "1h ago", Headline: "New tech IPOs are gaining traction despite market volatility.", URL: "#"},
		{Source: "WSJ", Time: "2h ago", Headline: "Fed officials signal potential rate cut in coming months.", URL: "#"},
		{Source: "FT", Time: "3h ago", Headline: "European luxury sector faces headwinds from slowing demand in China.", URL: "#"},
	}
}
