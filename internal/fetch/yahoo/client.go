package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// QuoteInfo is an instantaneous quote. Pointer fields are nil when the
// provider omits them.
type QuoteInfo struct {
	Symbol    string
	ShortName string
	Price     *float64
	ChangePct *float64
	Volume    *int64
}

// Client is a thin JSON client for the Yahoo Finance chart and quote
// endpoints. No SDK exists for these; requests mirror what the website
// itself issues.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *RateLimiter
	headers    map[string]string
}

func NewClient(timeout time.Duration) *Client {
	return &Client{
		baseURL: "https://query1.finance.yahoo.com",
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter: NewRateLimiter(8, 125*time.Millisecond),
		headers: map[string]string{
			"User-Agent": "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
			"Accept":     "application/json",
		},
	}
}

type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error any `json:"error"`
	} `json:"chart"`
}

type quoteResponse struct {
	QuoteResponse struct {
		Result []struct {
			Symbol                     string   `json:"symbol"`
			ShortName                  *string  `json:"shortName"`
			RegularMarketPrice         *float64 `json:"regularMarketPrice"`
			RegularMarketChangePercent *float64 `json:"regularMarketChangePercent"`
			RegularMarketVolume        *int64   `json:"regularMarketVolume"`
		} `json:"result"`
		Error any `json:"error"`
	} `json:"quoteResponse"`
}

// History returns the close prices of the last two trading periods for
// symbol, oldest first. Null closes in the series are dropped.
// includePrePost extends the window into pre/post-market sessions.
func (c *Client) History(ctx context.Context, symbol string, includePrePost bool) ([]float64, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?range=2d&interval=1d&includePrePost=%t",
		c.baseURL, url.PathEscape(symbol), includePrePost)

	data, err := c.makeRequest(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("chart %s: %w", symbol, err)
	}

	var parsed chartResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("chart %s: %w", symbol, err)
	}
	if len(parsed.Chart.Result) == 0 || len(parsed.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, fmt.Errorf("chart %s: empty result", symbol)
	}

	raw := parsed.Chart.Result[0].Indicators.Quote[0].Close
	closes := make([]float64, 0, len(raw))
	for _, v := range raw {
		if v != nil {
			closes = append(closes, *v)
		}
	}
	return closes, nil
}

// Quote returns the instantaneous quote for a single symbol.
func (c *Client) Quote(ctx context.Context, symbol string) (QuoteInfo, error) {
	u := fmt.Sprintf("%s/v7/finance/quote?symbols=%s", c.baseURL, url.QueryEscape(symbol))

	data, err := c.makeRequest(ctx, u)
	if err != nil {
		return QuoteInfo{}, fmt.Errorf("quote %s: %w", symbol, err)
	}

	var parsed quoteResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return QuoteInfo{}, fmt.Errorf("quote %s: %w", symbol, err)
	}
	for _, r := range parsed.QuoteResponse.Result {
		if !strings.EqualFold(r.Symbol, symbol) {
			continue
		}
		info := QuoteInfo{
			Symbol:    r.Symbol,
			Price:     r.RegularMarketPrice,
			ChangePct: r.RegularMarketChangePercent,
			Volume:    r.RegularMarketVolume,
		}
		if r.ShortName != nil {
			info.ShortName = *r.ShortName
		}
		return info, nil
	}
	return QuoteInfo{}, fmt.Errorf("quote %s: no result", symbol)
}

func (c *Client) makeRequest(ctx context.Context, url string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	for key, value := range c.headers {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
