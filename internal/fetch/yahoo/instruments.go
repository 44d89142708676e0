package yahoo

// Instrument pairs a provider symbol with its display name.
type Instrument struct {
	Symbol string
	Name   string
}

// Fixed instrument groups. Order here is the order they appear in the
// snapshot and the digest.
var (
	indexInstruments = []Instrument{
		{"^GSPC", "S&P 500"},
		{"^DJI", "Dow Jones"},
		{"^IXIC", "NASDAQ"},
		{"^VIX", "VIX"},
		{"^FTSE", "FTSE 100"},
		{"^GDAXI", "DAX"},
		{"^FCHI", "CAC 40"},
		{"^N225", "Nikkei 225"},
		{"^HSI", "Hang Seng"},
		{"000001.SS", "Shanghai Composite"},
		{"^AXJO", "ASX 200"},
	}

	futureInstruments = []Instrument{
		{"ES=F", "S&P 500 Futures"},
		{"NQ=F", "NASDAQ Futures"},
		{"YM=F", "Dow Futures"},
		{"RTY=F", "Russell 2000 Futures"},
	}

	commodityInstruments = []Instrument{
		{"CL=F", "Crude Oil (WTI)"},
		{"BZ=F", "Brent Crude"},
		{"GC=F", "Gold"},
		{"SI=F", "Silver"},
		{"HG=F", "Copper"},
		{"DX-Y.NYB", "US Dollar Index"},
	}

	sectorInstruments = []Instrument{
		{"XLK", "Technology"},
		{"XLF", "Financials"},
		{"XLE", "Energy"},
		{"XLV", "Healthcare"},
		{"XLI", "Industrials"},
		{"XLP", "Consumer Staples"},
		{"XLY", "Consumer Discretionary"},
		{"XLB", "Materials"},
		{"XLRE", "Real Estate"},
		{"XLU", "Utilities"},
		{"XLC", "Communication Services"},
	}

	moverSymbols = []string{
		"AAPL", "MSFT", "GOOGL", "AMZN", "NVDA",
		"TSLA", "META", "AMD", "NFLX", "DIS",
	}
)

// treasuryProxy is the bond ETF used as a yield signal.
var treasuryProxy = Instrument{"TLT", "TLT"}
