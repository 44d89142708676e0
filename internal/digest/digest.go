// Package digest reduces a market snapshot and news list into the fixed
// textual summary consumed by the report prompt. Build is a pure
// function: identical inputs always produce byte-identical output.
package digest

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"premarket-report/internal/types"
)

const (
	topSectors = 5
	topMovers  = 5
	topNews    = 5

	// Display fallback for instantaneous fields the provider omitted.
	// Never enters arithmetic or sorting.
	notAvailable = "N/A"
)

// Build formats the snapshot and news into the digest text. Sections
// appear in a fixed order regardless of input; an empty category yields
// its header with no body lines.
func Build(qn types.QuoteNews, snap types.MarketSnapshot) string {
	var lines []string

	lines = append(lines, "CURRENT MARKET DATA:")

	lines = append(lines, "\nMAJOR INDICES:")
	for _, p := range snap.Indices {
		lines = append(lines, fmt.Sprintf("- %s: %s (%+.2f%%)", p.Name, formatPrice(p.Price), p.ChangePct))
	}

	lines = append(lines, "\nFUTURES:")
	for _, f := range snap.Futures {
		lines = append(lines, futureLine(f))
	}

	lines = append(lines, "\nCOMMODITIES:")
	for _, p := range snap.Commodities {
		lines = append(lines, fmt.Sprintf("- %s: $%s (%+.2f%%)", p.Name, formatPrice(p.Price), p.ChangePct))
	}

	lines = append(lines, "\nSECTOR PERFORMANCE (Top 5):")
	for _, s := range topSectorChanges(snap.Sectors) {
		lines = append(lines, fmt.Sprintf("- %s: %+.2f%%", s.Name, s.ChangePct))
	}

	lines = append(lines, "\nTOP PREMARKET MOVERS:")
	for i, m := range snap.Movers {
		if i >= topMovers {
			break
		}
		lines = append(lines, fmt.Sprintf("- %s (%s): $%s (%+.2f%%)", m.Symbol, m.Name, formatPrice(m.Price), m.ChangePct))
	}

	lines = append(lines, "\nRECENT MARKET NEWS:")
	for i, n := range qn.News {
		if i >= topNews {
			break
		}
		lines = append(lines, newsLine(n))
	}

	return strings.Join(lines, "\n")
}

// topSectorChanges returns the best-performing sectors by change
// descending, ties keeping original order.
func topSectorChanges(sectors []types.SectorChange) []types.SectorChange {
	sorted := make([]types.SectorChange, len(sectors))
	copy(sorted, sectors)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ChangePct > sorted[j].ChangePct
	})
	if len(sorted) > topSectors {
		sorted = sorted[:topSectors]
	}
	return sorted
}

func futureLine(f types.Future) string {
	price := notAvailable
	if f.Price != nil {
		price = formatPrice(*f.Price)
	}
	change := notAvailable + "%"
	if f.ChangePct != nil {
		change = fmt.Sprintf("%+.2f%%", *f.ChangePct)
	}
	return fmt.Sprintf("- %s: %s (%s)", f.Name, price, change)
}

func newsLine(n types.NewsItem) string {
	headline := n.Headline
	if headline == "" {
		headline = notAvailable
	}
	source := n.Source
	if source == "" {
		source = "Unknown"
	}
	return fmt.Sprintf("- %s (Source: %s)", headline, source)
}

// formatPrice renders a 2-decimal-rounded price with trailing zeros
// trimmed but at least one decimal digit kept, so 4500.00 reads 4500.0
// and 4500.25 stays 4500.25.
func formatPrice(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	if strings.HasSuffix(s, "0") {
		s = s[:len(s)-1]
	}
	return s
}
