package report

// analystSystemPrompt is the fixed system role for the completion call.
const analystSystemPrompt = "You are a professional market analyst with expertise in pre-market analysis, " +
	"technical analysis, and global markets. Provide detailed, data-driven analysis using the real-time " +
	"market data provided. Always cite specific numbers and percentages from the data."

// reportPromptTemplate is a static asset. The two placeholders take the
// report date and the market data digest.
const reportPromptTemplate = `Using the following REAL-TIME MARKET DATA, generate a comprehensive pre-market analyst report for %s suitable for professional trading decisions.

%s

Structure the report as follows:

1. EXECUTIVE SUMMARY
* Brief overview of overnight market sentiment and key themes based on the data above
* Top 3 market-moving events or concerns

2. GLOBAL MARKETS OVERVIEW
* Asian markets performance (use the data provided for Nikkei, Hang Seng, Shanghai Composite, ASX)
* European markets performance (use the data provided for FTSE, DAX, CAC)
* Key indices movements with percentage changes
* Notable cross-market correlations or divergences

3. OVERNIGHT NEWS & CATALYSTS
* Analyze the news headlines provided
* Major economic data releases (domestic and international)
* Central bank announcements or commentary
* Geopolitical developments affecting markets
* Significant corporate earnings or guidance

4. PRE-MARKET MOVERS
* Analyze the top movers data provided above
* Specific catalysts for each (earnings, news, upgrades/downgrades)
* Volume analysis where relevant
* Notable options activity or unusual volume

5. SECTOR ANALYSIS
* Use the sector performance data provided
* Sector rotation patterns observed overnight
* Best and worst performing sectors with rationale
* Sector-specific news or catalysts

6. FUTURES & COMMODITIES
* Analyze the futures and commodities data provided (S&P 500, Nasdaq, Dow futures, Oil, Gold, Silver, Copper, DXY)
* Include the specific levels and percentage changes from the data
* Bitcoin and major cryptocurrencies (use crypto data if provided)

7. FIXED INCOME & CURRENCIES
* 10-year Treasury yield movements (infer from TLT data)
* Major currency pair movements (use forex data if available)
* Credit spread changes if notable

8. TECHNICAL LEVELS
* Key support/resistance levels for major indices based on current prices
* Notable technical breakouts or breakdowns
* VIX level and implied volatility assessment (use VIX data provided)

9. ECONOMIC CALENDAR
* Today's scheduled data releases with consensus expectations
* Fed speakers or central bank events
* Potential market-moving events

10. TRADING CONSIDERATIONS
* Risk-on vs risk-off sentiment assessment based on the data
* Potential intraday catalysts or volatility triggers
* Sectors/stocks to watch (use the data provided)
* Key price levels that could drive momentum

Use professional trading terminology, include the specific numbers and percentages from the data provided, and maintain an objective, analytical tone. Present information in a scannable format with clear headers and bullet points where appropriate.`
