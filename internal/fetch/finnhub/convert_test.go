package finnhub

import (
	"testing"
	"time"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
)

func TestNewsItemMapsAllFields(t *testing.T) {
	var n finnhub.MarketNews
	n.SetHeadline("Fed holds rates steady")
	n.SetSource("Reuters")
	n.SetSummary("The Federal Reserve left rates unchanged.")
	n.SetUrl("https://example.com/fed")
	n.SetDatetime(1700000000)

	item := newsItem(n)

	if item.Headline != "Fed holds rates steady" {
		t.Errorf("headline = %q", item.Headline)
	}
	if item.Source != "Reuters" {
		t.Errorf("source = %q", item.Source)
	}
	if item.Summary != "The Federal Reserve left rates unchanged." {
		t.Errorf("summary = %q", item.Summary)
	}
	if item.URL != "https://example.com/fed" {
		t.Errorf("url = %q", item.URL)
	}
	if !item.PublishedAt.Equal(time.Unix(1700000000, 0)) {
		t.Errorf("published_at = %v", item.PublishedAt)
	}
}

func TestNewsItemToleratesMissingFields(t *testing.T) {
	item := newsItem(finnhub.MarketNews{})

	if item.Headline != "" || item.Source != "" {
		t.Errorf("expected empty fields, got %+v", item)
	}
	if !item.PublishedAt.IsZero() {
		t.Errorf("expected zero time, got %v", item.PublishedAt)
	}
}

func TestCryptoQuoteConversion(t *testing.T) {
	var q finnhub.Quote
	q.SetC(52000.5)
	q.SetD(1200.25)
	q.SetDp(2.25)
	q.SetPc(50800.25)

	got := cryptoQuote(q)

	if got.Current != 52000.5 {
		t.Errorf("current = %v", got.Current)
	}
	if got.Change != 1200.25 {
		t.Errorf("change = %v", got.Change)
	}
	if got.PercentChange != 2.25 {
		t.Errorf("percent_change = %v", got.PercentChange)
	}
	if got.PrevClose != 50800.25 {
		t.Errorf("prev_close = %v", got.PrevClose)
	}
}

func TestForexRatesKeepsNumericEntriesOnly(t *testing.T) {
	var fx finnhub.Forexrates
	fx.SetBase("EUR")
	fx.SetQuote(map[string]interface{}{
		"USD": 1.0825,
		"JPY": 162.4,
		"bad": "not-a-rate",
	})

	got := forexRates("EUR", fx)

	if got.Base != "EUR" {
		t.Errorf("base = %q", got.Base)
	}
	if len(got.Rates) != 2 {
		t.Fatalf("expected 2 rates, got %d: %+v", len(got.Rates), got.Rates)
	}
	if got.Rates["USD"] != 1.0825 {
		t.Errorf("USD rate = %v", got.Rates["USD"])
	}
}

func TestMarketStatusConversion(t *testing.T) {
	var st finnhub.MarketStatus
	st.SetExchange("US")
	st.SetSession("pre-market")
	st.SetTimezone("America/New_York")
	st.SetIsOpen(false)

	got := marketStatus(st)

	if got.Exchange != "US" || got.Session != "pre-market" || got.Timezone != "America/New_York" {
		t.Errorf("status = %+v", got)
	}
	if got.IsOpen {
		t.Error("expected closed market")
	}
}
