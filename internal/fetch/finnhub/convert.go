package finnhub

import (
	"time"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"

	"premarket-report/internal/types"
)

// newsItem maps a provider news record onto a NewsItem, leaving fields
// empty when the provider omits them.
func newsItem(n finnhub.MarketNews) types.NewsItem {
	var item types.NewsItem
	if n.Headline != nil {
		item.Headline = *n.Headline
	}
	if n.Source != nil {
		item.Source = *n.Source
	}
	if n.Summary != nil {
		item.Summary = *n.Summary
	}
	if n.Url != nil {
		item.URL = *n.Url
	}
	if n.Datetime != nil {
		item.PublishedAt = time.Unix(*n.Datetime, 0)
	}
	return item
}

func cryptoQuote(q finnhub.Quote) types.CryptoQuote {
	return types.CryptoQuote{
		Current:       float64(q.GetC()),
		Change:        float64(q.GetD()),
		PercentChange: float64(q.GetDp()),
		PrevClose:     float64(q.GetPc()),
	}
}

// forexRates keeps only the numeric rate entries from the provider payload.
func forexRates(base string, fx finnhub.Forexrates) types.ForexRates {
	out := types.ForexRates{Base: base, Rates: map[string]float64{}}
	if fx.Base != nil {
		out.Base = *fx.Base
	}
	for code, v := range fx.GetQuote() {
		if rate, ok := v.(float64); ok {
			out.Rates[code] = rate
		}
	}
	return out
}

func marketStatus(st finnhub.MarketStatus) *types.MarketStatus {
	return &types.MarketStatus{
		Exchange: st.GetExchange(),
		Session:  st.GetSession(),
		Timezone: st.GetTimezone(),
		Holiday:  st.GetHoliday(),
		IsOpen:   st.GetIsOpen(),
	}
}
