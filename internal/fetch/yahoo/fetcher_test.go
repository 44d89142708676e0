package yahoo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// newFixtureServer serves chart and quote fixtures keyed by symbol.
// Symbols without a fixture get a 404, exercising the omission paths.
func newFixtureServer(charts map[string][]any, quotes map[string]map[string]any) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasPrefix(r.URL.Path, "/v8/finance/chart/"):
			symbol := strings.TrimPrefix(r.URL.Path, "/v8/finance/chart/")
			closes, ok := charts[symbol]
			if !ok {
				http.Error(w, "not found", http.StatusNotFound)
				return
			}
			json.NewEncoder(w).Encode(chartPayload(closes))
		case r.URL.Path == "/v7/finance/quote":
			symbol := r.URL.Query().Get("symbols")
			result := []map[string]any{}
			if q, ok := quotes[symbol]; ok {
				result = append(result, q)
			}
			json.NewEncoder(w).Encode(map[string]any{
				"quoteResponse": map[string]any{"result": result, "error": nil},
			})
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	}))
}

func testFetcher(srv *httptest.Server) *Fetcher {
	return &Fetcher{client: testClient(srv)}
}

func TestSnapshotChangeComputation(t *testing.T) {
	srv := newFixtureServer(map[string][]any{
		"^GSPC": {100.0, 110.0},
		"^DJI":  {100.0, 90.0},
	}, nil)
	defer srv.Close()

	snap := testFetcher(srv).Snapshot(context.Background())

	if len(snap.Indices) != 2 {
		t.Fatalf("expected 2 indices, got %d", len(snap.Indices))
	}
	sp := snap.Indices[0]
	if sp.Name != "S&P 500" || sp.Price != 110.0 || sp.ChangePct != 10.00 {
		t.Errorf("S&P 500 = %+v, want price 110.00 change +10.00", sp)
	}
	dow := snap.Indices[1]
	if dow.Name != "Dow Jones" || dow.Price != 90.0 || dow.ChangePct != -10.00 {
		t.Errorf("Dow Jones = %+v, want price 90.00 change -10.00", dow)
	}
}

func TestSnapshotOmitsShortHistory(t *testing.T) {
	srv := newFixtureServer(map[string][]any{
		"^IXIC": {14100.0},
		"GC=F":  {2050.0, 2060.0},
	}, nil)
	defer srv.Close()

	snap := testFetcher(srv).Snapshot(context.Background())

	for _, p := range snap.Indices {
		if p.Symbol == "^IXIC" {
			t.Error("index with a single observation must be absent, not zeroed")
		}
	}
	if len(snap.Commodities) != 1 || snap.Commodities[0].Name != "Gold" {
		t.Fatalf("expected only Gold in commodities, got %+v", snap.Commodities)
	}
}

func TestSnapshotPreservesDefinitionOrder(t *testing.T) {
	srv := newFixtureServer(map[string][]any{
		"^AXJO": {7000.0, 7050.0},
		"^GSPC": {4500.0, 4510.0},
		"^N225": {33000.0, 32900.0},
	}, nil)
	defer srv.Close()

	snap := testFetcher(srv).Snapshot(context.Background())

	want := []string{"^GSPC", "^N225", "^AXJO"}
	if len(snap.Indices) != len(want) {
		t.Fatalf("expected %d indices, got %d", len(want), len(snap.Indices))
	}
	for i, sym := range want {
		if snap.Indices[i].Symbol != sym {
			t.Errorf("index %d = %s, want %s", i, snap.Indices[i].Symbol, sym)
		}
	}
}

func TestMoverZeroPreviousClose(t *testing.T) {
	srv := newFixtureServer(map[string][]any{
		"AAPL": {0.0, 50.0},
	}, nil)
	defer srv.Close()

	snap := testFetcher(srv).Snapshot(context.Background())

	if len(snap.Movers) != 1 {
		t.Fatalf("expected 1 mover, got %d", len(snap.Movers))
	}
	m := snap.Movers[0]
	if m.ChangePct != 0 {
		t.Errorf("zero previous close must yield zero change, got %v", m.ChangePct)
	}
	if m.Price != 50.0 {
		t.Errorf("mover price = %v, want 50.00", m.Price)
	}
}

func TestMoverSingleObservation(t *testing.T) {
	srv := newFixtureServer(map[string][]any{
		"MSFT": {250.0},
	}, nil)
	defer srv.Close()

	snap := testFetcher(srv).Snapshot(context.Background())

	if len(snap.Movers) != 1 {
		t.Fatalf("expected 1 mover, got %d", len(snap.Movers))
	}
	if snap.Movers[0].ChangePct != 0 {
		t.Errorf("single observation must yield zero change, got %v", snap.Movers[0].ChangePct)
	}
}

func TestMoversRankedByAbsoluteChangeStableOnTies(t *testing.T) {
	// AAPL +5%, MSFT -5% (equal magnitude, AAPL enumerated first), NVDA +8%
	srv := newFixtureServer(map[string][]any{
		"AAPL": {100.0, 105.0},
		"MSFT": {100.0, 95.0},
		"NVDA": {100.0, 108.0},
	}, nil)
	defer srv.Close()

	snap := testFetcher(srv).Snapshot(context.Background())

	if len(snap.Movers) != 3 {
		t.Fatalf("expected 3 movers, got %d", len(snap.Movers))
	}
	want := []string{"NVDA", "AAPL", "MSFT"}
	for i, sym := range want {
		if snap.Movers[i].Symbol != sym {
			t.Errorf("mover %d = %s, want %s", i, snap.Movers[i].Symbol, sym)
		}
	}
}

func TestMoversCappedAtTen(t *testing.T) {
	charts := map[string][]any{}
	for _, sym := range moverSymbols {
		charts[sym] = []any{100.0, 101.0}
	}
	srv := newFixtureServer(charts, nil)
	defer srv.Close()

	snap := testFetcher(srv).Snapshot(context.Background())
	if len(snap.Movers) > maxMovers {
		t.Errorf("mover list length %d exceeds %d", len(snap.Movers), maxMovers)
	}
}

func TestMoverQuoteEnrichment(t *testing.T) {
	srv := newFixtureServer(
		map[string][]any{
			"AAPL": {180.0, 189.5},
			"TSLA": {250.0, 242.0},
		},
		map[string]map[string]any{
			"AAPL": {
				"symbol":              "AAPL",
				"shortName":           "Apple Inc.",
				"regularMarketVolume": 54000000,
			},
			// TSLA has no quote fixture: name falls back to the symbol.
		},
	)
	defer srv.Close()

	snap := testFetcher(srv).Snapshot(context.Background())

	movers := map[string]int{}
	for i, m := range snap.Movers {
		movers[m.Symbol] = i
	}
	aapl := snap.Movers[movers["AAPL"]]
	if aapl.Name != "Apple Inc." {
		t.Errorf("AAPL name = %q, want Apple Inc.", aapl.Name)
	}
	if aapl.Volume == nil || *aapl.Volume != 54000000 {
		t.Errorf("AAPL volume = %v, want 54000000", aapl.Volume)
	}
	tsla := snap.Movers[movers["TSLA"]]
	if tsla.Name != "TSLA" {
		t.Errorf("TSLA name = %q, want symbol fallback", tsla.Name)
	}
	if tsla.Volume != nil {
		t.Errorf("TSLA volume = %v, want nil", tsla.Volume)
	}
}

func TestFuturesOptionalFields(t *testing.T) {
	srv := newFixtureServer(nil, map[string]map[string]any{
		"ES=F": {
			"symbol":                     "ES=F",
			"regularMarketPrice":         4520.746,
			"regularMarketChangePercent": 0.352,
		},
		"NQ=F": {
			"symbol": "NQ=F",
		},
	})
	defer srv.Close()

	snap := testFetcher(srv).Snapshot(context.Background())

	if len(snap.Futures) != 2 {
		t.Fatalf("expected 2 futures, got %d", len(snap.Futures))
	}
	es := snap.Futures[0]
	if es.Symbol != "ES=F" || es.Price == nil || *es.Price != 4520.75 || es.ChangePct == nil || *es.ChangePct != 0.35 {
		t.Errorf("ES=F = %+v, want rounded price 4520.75 change 0.35", es)
	}
	nq := snap.Futures[1]
	if nq.Symbol != "NQ=F" || nq.Price != nil || nq.ChangePct != nil {
		t.Errorf("NQ=F = %+v, want nil price and change", nq)
	}
}

func TestTreasuryProxy(t *testing.T) {
	srv := newFixtureServer(map[string][]any{
		"TLT": {100.0, 101.0},
	}, nil)
	defer srv.Close()

	snap := testFetcher(srv).Snapshot(context.Background())

	if snap.Treasury == nil {
		t.Fatal("expected treasury proxy to be present")
	}
	if snap.Treasury.Price != 101.0 || snap.Treasury.ChangePct != 1.00 {
		t.Errorf("treasury = %+v, want price 101.00 change +1.00", snap.Treasury)
	}
}
