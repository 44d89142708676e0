package yahoo

import (
	"context"
	"math"
	"sort"
	"sync"
	"time"

	"premarket-report/internal/logger"
	"premarket-report/internal/store"
	"premarket-report/internal/trace"
	"premarket-report/internal/types"
)

const maxMovers = 10

// Fetcher reduces per-instrument price series into a MarketSnapshot.
// Instruments are fetched concurrently; each task writes only its own
// slot, so the join needs no locking. Per-instrument failures are logged
// and leave the instrument absent — Snapshot itself never fails.
type Fetcher struct {
	client *Client
}

func NewFetcher(cfg *store.Config) *Fetcher {
	return &Fetcher{
		client: NewClient(time.Duration(cfg.HTTP.TimeoutSeconds) * time.Second),
	}
}

func (f *Fetcher) Snapshot(ctx context.Context) types.MarketSnapshot {
	ctx, span := trace.StartSpan(ctx, "yahoo.Snapshot")
	defer span.End()

	var wg sync.WaitGroup

	indices := f.scatterPricePoints(ctx, &wg, indexInstruments)
	commodities := f.scatterPricePoints(ctx, &wg, commodityInstruments)
	sectors := f.scatterPricePoints(ctx, &wg, sectorInstruments)
	futures := make([]*types.Future, len(futureInstruments))
	movers := make([]*types.Mover, len(moverSymbols))

	for i, inst := range futureInstruments {
		wg.Add(1)
		go func(i int, inst Instrument) {
			defer wg.Done()
			futures[i] = f.future(ctx, inst)
		}(i, inst)
	}

	for i, symbol := range moverSymbols {
		wg.Add(1)
		go func(i int, symbol string) {
			defer wg.Done()
			movers[i] = f.mover(ctx, symbol)
		}(i, symbol)
	}

	var treasury *types.PricePoint
	wg.Add(1)
	go func() {
		defer wg.Done()
		treasury = f.pricePoint(ctx, treasuryProxy)
	}()

	wg.Wait()

	snap := types.MarketSnapshot{
		Indices:     collectPricePoints(indices),
		Futures:     collectFutures(futures),
		Commodities: collectPricePoints(commodities),
		Sectors:     collectSectors(collectPricePoints(sectors)),
		Movers:      rankMovers(collectMovers(movers)),
		Treasury:    treasury,
	}
	logger.Info(ctx, "market snapshot complete",
		"indices", len(snap.Indices),
		"futures", len(snap.Futures),
		"commodities", len(snap.Commodities),
		"sectors", len(snap.Sectors),
		"movers", len(snap.Movers),
		"treasury", snap.Treasury != nil,
	)
	return snap
}

// scatterPricePoints launches one history fetch per instrument, writing
// into a slot-per-instrument slice so original order is preserved.
func (f *Fetcher) scatterPricePoints(ctx context.Context, wg *sync.WaitGroup, instruments []Instrument) []*types.PricePoint {
	points := make([]*types.PricePoint, len(instruments))
	for i, inst := range instruments {
		wg.Add(1)
		go func(i int, inst Instrument) {
			defer wg.Done()
			points[i] = f.pricePoint(ctx, inst)
		}(i, inst)
	}
	return points
}

// pricePoint computes the 1-day change from the last two closes. Fewer
// than two observations, or a zero previous close, leaves the instrument
// absent rather than priced at a fabricated value.
func (f *Fetcher) pricePoint(ctx context.Context, inst Instrument) *types.PricePoint {
	closes, err := f.client.History(ctx, inst.Symbol, false)
	if err != nil {
		logger.Warn(ctx, "history fetch failed", "symbol", inst.Symbol, "error", err)
		return nil
	}
	if len(closes) < 2 {
		logger.Debug(ctx, "insufficient history", "symbol", inst.Symbol, "observations", len(closes))
		return nil
	}
	current := closes[len(closes)-1]
	previous := closes[len(closes)-2]
	if previous == 0 {
		logger.Debug(ctx, "zero previous close", "symbol", inst.Symbol)
		return nil
	}
	return &types.PricePoint{
		Symbol:    inst.Symbol,
		Name:      inst.Name,
		Price:     round2(current),
		ChangePct: round2((current - previous) / previous * 100),
	}
}

// future reads the instantaneous quote. Missing price/change fields stay
// nil; only a failed request omits the future itself.
func (f *Fetcher) future(ctx context.Context, inst Instrument) *types.Future {
	info, err := f.client.Quote(ctx, inst.Symbol)
	if err != nil {
		logger.Warn(ctx, "futures quote failed", "symbol", inst.Symbol, "error", err)
		return nil
	}
	fut := &types.Future{Symbol: inst.Symbol, Name: inst.Name}
	if info.Price != nil {
		p := round2(*info.Price)
		fut.Price = &p
	}
	if info.ChangePct != nil {
		ch := round2(*info.ChangePct)
		fut.ChangePct = &ch
	}
	return fut
}

// mover computes change from the extended-hours history. With a single
// observation the previous close falls back to the latest one, and a zero
// previous close yields a zero change instead of failing — a deliberately
// different policy from pricePoint.
func (f *Fetcher) mover(ctx context.Context, symbol string) *types.Mover {
	closes, err := f.client.History(ctx, symbol, true)
	if err != nil {
		logger.Warn(ctx, "mover history failed", "symbol", symbol, "error", err)
		return nil
	}
	if len(closes) < 1 {
		logger.Debug(ctx, "no mover history", "symbol", symbol)
		return nil
	}
	current := closes[len(closes)-1]
	previous := current
	if len(closes) >= 2 {
		previous = closes[len(closes)-2]
	}
	change := 0.0
	if previous != 0 {
		change = (current - previous) / previous * 100
	}

	m := &types.Mover{
		Symbol:    symbol,
		Name:      symbol,
		Price:     round2(current),
		ChangePct: round2(change),
	}
	info, err := f.client.Quote(ctx, symbol)
	if err != nil {
		logger.Warn(ctx, "mover quote failed", "symbol", symbol, "error", err)
		return m
	}
	if info.ShortName != "" {
		m.Name = info.ShortName
	}
	m.Volume = info.Volume
	return m
}

// rankMovers sorts by descending absolute change, stable on ties, and
// keeps the top entries.
func rankMovers(movers []types.Mover) []types.Mover {
	sort.SliceStable(movers, func(i, j int) bool {
		return math.Abs(movers[i].ChangePct) > math.Abs(movers[j].ChangePct)
	})
	if len(movers) > maxMovers {
		movers = movers[:maxMovers]
	}
	return movers
}

func collectPricePoints(points []*types.PricePoint) []types.PricePoint {
	out := make([]types.PricePoint, 0, len(points))
	for _, p := range points {
		if p != nil {
			out = append(out, *p)
		}
	}
	return out
}

func collectFutures(futures []*types.Future) []types.Future {
	out := make([]types.Future, 0, len(futures))
	for _, f := range futures {
		if f != nil {
			out = append(out, *f)
		}
	}
	return out
}

func collectSectors(points []types.PricePoint) []types.SectorChange {
	out := make([]types.SectorChange, 0, len(points))
	for _, p := range points {
		out = append(out, types.SectorChange{Symbol: p.Symbol, Name: p.Name, ChangePct: p.ChangePct})
	}
	return out
}

func collectMovers(movers []*types.Mover) []types.Mover {
	out := make([]types.Mover, 0, len(movers))
	for _, m := range movers {
		if m != nil {
			out = append(out, *m)
		}
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
