package finnhub

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"

	"premarket-report/internal/logger"
	"premarket-report/internal/store"
	"premarket-report/internal/trace"
	"premarket-report/internal/types"
)

const maxNewsItems = 10

// Fixed instrument lists for the run.
var (
	forexPairs    = []string{"EUR/USD", "USD/JPY", "GBP/USD"}
	cryptoSymbols = []string{"BINANCE:BTCUSDT", "BINANCE:ETHUSDT"}
)

// Client fetches news, forex rates, crypto quotes, and market status
// from Finnhub. Every request is independent and failure-isolated: a
// failed category stays at its empty default and Fetch never errors.
type Client struct {
	api      *finnhub.DefaultApiService
	exchange string
}

func New(cfg *store.Config) *Client {
	apiCfg := finnhub.NewConfiguration()
	apiCfg.AddDefaultHeader("X-Finnhub-Token", cfg.FinnhubAPIKey)
	apiCfg.HTTPClient = &http.Client{
		Timeout: time.Duration(cfg.HTTP.TimeoutSeconds) * time.Second,
	}
	return &Client{
		api:      finnhub.NewAPIClient(apiCfg).DefaultApi,
		exchange: cfg.Exchange,
	}
}

// Fetch issues one request per category/instrument concurrently and
// collects the successful responses. Each task writes only its own slot;
// the maps are guarded for the concurrent inserts.
func (c *Client) Fetch(ctx context.Context) types.QuoteNews {
	ctx, span := trace.StartSpan(ctx, "finnhub.Fetch")
	defer span.End()

	out := types.QuoteNews{
		News:   []types.NewsItem{},
		Forex:  map[string]types.ForexRates{},
		Crypto: map[string]types.CryptoQuote{},
	}

	var wg sync.WaitGroup
	var mu sync.Mutex

	wg.Add(1)
	go func() {
		defer wg.Done()
		news, _, err := c.api.MarketNews(ctx).Category("general").Execute()
		if err != nil {
			logger.Warn(ctx, "market news fetch failed", "error", err)
			return
		}
		if len(news) > maxNewsItems {
			news = news[:maxNewsItems]
		}
		items := make([]types.NewsItem, 0, len(news))
		for _, n := range news {
			items = append(items, newsItem(n))
		}
		mu.Lock()
		out.News = items
		mu.Unlock()
	}()

	for _, pair := range forexPairs {
		wg.Add(1)
		go func(pair string) {
			defer wg.Done()
			base := strings.SplitN(pair, "/", 2)[0]
			rates, _, err := c.api.ForexRates(ctx).Base(base).Execute()
			if err != nil {
				logger.Warn(ctx, "forex rates fetch failed", "pair", pair, "error", err)
				return
			}
			mu.Lock()
			out.Forex[pair] = forexRates(base, rates)
			mu.Unlock()
		}(pair)
	}

	for _, symbol := range cryptoSymbols {
		wg.Add(1)
		go func(symbol string) {
			defer wg.Done()
			quote, _, err := c.api.Quote(ctx).Symbol(symbol).Execute()
			if err != nil {
				logger.Warn(ctx, "crypto quote fetch failed", "symbol", symbol, "error", err)
				return
			}
			mu.Lock()
			out.Crypto[symbol] = cryptoQuote(quote)
			mu.Unlock()
		}(symbol)
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		status, _, err := c.api.MarketStatus(ctx).Exchange(c.exchange).Execute()
		if err != nil {
			logger.Warn(ctx, "market status fetch failed", "exchange", c.exchange, "error", err)
			return
		}
		mu.Lock()
		out.Status = marketStatus(status)
		mu.Unlock()
	}()

	wg.Wait()
	logger.Info(ctx, "finnhub fetch complete",
		"news", len(out.News),
		"forex", len(out.Forex),
		"crypto", len(out.Crypto),
		"status", out.Status != nil,
	)
	return out
}
