package types

import "time"

// PricePoint is a priced instrument with its 1-day percentage change,
// computed over the two most recent closes. Instruments with fewer than
// two observations never produce a PricePoint.
type PricePoint struct {
	Symbol    string  `json:"symbol"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ChangePct float64 `json:"change"`
}

// Future carries instantaneous quote fields. Price and ChangePct are nil
// when the provider omits them; the "N/A" fallback is applied only at
// display time and never enters arithmetic or sorting.
type Future struct {
	Symbol    string   `json:"symbol"`
	Name      string   `json:"name"`
	Price     *float64 `json:"price,omitempty"`
	ChangePct *float64 `json:"change,omitempty"`
}

// SectorChange is a sector ETF's 1-day percentage change.
type SectorChange struct {
	Symbol    string  `json:"symbol"`
	Name      string  `json:"name"`
	ChangePct float64 `json:"change"`
}

// Mover is an equity ranked by magnitude of change. Volume is nil when
// the instantaneous lookup omits it.
type Mover struct {
	Symbol    string  `json:"symbol"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ChangePct float64 `json:"change"`
	Volume    *int64  `json:"volume,omitempty"`
}

// MarketSnapshot is the full set of instrument data fetched for one run.
// Slices preserve the fixed instrument-definition order; instruments that
// could not be priced are simply absent, never zeroed.
type MarketSnapshot struct {
	Indices     []PricePoint   `json:"indices"`
	Futures     []Future       `json:"futures"`
	Commodities []PricePoint   `json:"commodities"`
	Sectors     []SectorChange `json:"sector_performance"`
	Movers      []Mover        `json:"premarket_movers"`
	Treasury    *PricePoint    `json:"treasury,omitempty"`
}

// NewsItem is a single market headline.
type NewsItem struct {
	Headline    string    `json:"headline"`
	Source      string    `json:"source"`
	Summary     string    `json:"summary,omitempty"`
	URL         string    `json:"url,omitempty"`
	PublishedAt time.Time `json:"published_at,omitempty"`
}

// ForexRates holds the rates returned for one base currency.
type ForexRates struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

// CryptoQuote is an instantaneous crypto quote.
type CryptoQuote struct {
	Current       float64 `json:"current"`
	Change        float64 `json:"change"`
	PercentChange float64 `json:"percent_change"`
	PrevClose     float64 `json:"prev_close"`
}

// MarketStatus reports whether the domestic exchange is open.
type MarketStatus struct {
	Exchange string `json:"exchange"`
	Session  string `json:"session"`
	Timezone string `json:"timezone"`
	Holiday  string `json:"holiday,omitempty"`
	IsOpen   bool   `json:"is_open"`
}

// QuoteNews aggregates everything fetched from the quote/news provider.
// Categories degrade independently: a failed request leaves its slot at
// the empty default and never fails the fetch as a whole.
type QuoteNews struct {
	News   []NewsItem             `json:"news"`
	Forex  map[string]ForexRates  `json:"forex"`
	Crypto map[string]CryptoQuote `json:"crypto"`
	Status *MarketStatus          `json:"market_status,omitempty"`
}

// RawData is the unreduced fetcher output kept alongside a successful report.
type RawData struct {
	QuoteNews QuoteNews      `json:"quote_news"`
	Snapshot  MarketSnapshot `json:"snapshot"`
}

// ReportResult is the terminal output of one pipeline run.
type ReportResult struct {
	Success bool     `json:"success"`
	Content string   `json:"content,omitempty"`
	Err     string   `json:"error,omitempty"`
	Date    string   `json:"date"`
	Raw     *RawData `json:"raw_data,omitempty"`
}
