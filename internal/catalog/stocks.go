package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/alioayf27-debug/trackstock/internal/model"
)

func d(value float64) decimal.Decimal {
	return decimal.NewFromFloat(value)
}

// GlobalStocks returns the demo stock universe with reference prices and
// AI ratings. Reference prices seed the simulation fallback, so the data is
// deliberately plausible rather than current.
func GlobalStocks() []model.Stock {
	return []model.Stock{
		// US tech
		{Ticker: "AAPL", Name: "Apple Inc.", Price: d(226.00), Change: d(1.25), ChangePercent: d(0.55), Exchange: "NASDAQ", MarketCap: "3.4T", Currency: "USD", PERatio: d(33.5), Sector: "Technology", Logo: "https://logo.clearbit.com/apple.com", Volume: "45.2M", Region: "US", AIScore: 8.8, AIVerdict: "Buy", TradingViewSymbol: "NASDAQ:AAPL", Beta: d(1.24), Dividend: "0.44%"},
		{Ticker: "NVDA", Name: "NVIDIA Corp.", Price: d(138.50), Change: d(2.40), ChangePercent: d(1.76), Exchange: "NASDAQ", MarketCap: "3.2T", Currency: "USD", PERatio: d(74.2), Sector: "Technology", Logo: "https://logo.clearbit.com/nvidia.com", Volume: "320M", Region: "US", AIScore: 9.5, AIVerdict: "Strong Buy", TradingViewSymbol: "NASDAQ:NVDA", Beta: d(1.68), Dividend: "0.03%"},
		{Ticker: "MSFT", Name: "Microsoft Corp.", Price: d(448.20), Change: d(-1.10), ChangePercent: d(-0.24), Exchange: "NASDAQ", MarketCap: "3.1T", Currency: "USD", PERatio: d(36.1), Sector: "Technology", Logo: "https://logo.clearbit.com/microsoft.com", Volume: "22.1M", Region: "US", AIScore: 9.0, AIVerdict: "Buy", TradingViewSymbol: "NASDAQ:MSFT", Beta: d(0.89), Dividend: "0.68%"},
		{Ticker: "GOOGL", Name: "Alphabet Inc.", Price: d(178.60), Change: d(0.80), ChangePercent: d(0.45), Exchange: "NASDAQ", MarketCap: "2.2T", Currency: "USD", PERatio: d(26.5), Sector: "Technology", Logo: "https://logo.clearbit.com/google.com", Volume: "18.5M", Region: "US", AIScore: 8.2, AIVerdict: "Buy", TradingViewSymbol: "NASDAQ:GOOGL", Beta: d(1.05), Dividend: "0.20%"},
		{Ticker: "AMZN", Name: "Amazon.com", Price: d(195.20), Change: d(3.20), ChangePercent: d(1.66), Exchange: "NASDAQ", MarketCap: "2.0T", Currency: "USD", PERatio: d(42.2), Sector: "Consumer", Logo: "https://logo.clearbit.com/amazon.com", Volume: "35.2M", Region: "US", AIScore: 8.5, AIVerdict: "Buy", TradingViewSymbol: "NASDAQ:AMZN", Beta: d(1.15), Dividend: "N/A"},
		{Ticker: "TSLA", Name: "Tesla Inc.", Price: d(218.50), Change: d(-5.50), ChangePercent: d(-2.45), Exchange: "NASDAQ", MarketCap: "720B", Currency: "USD", PERatio: d(58.1), Sector: "Automotive", Logo: "https://logo.clearbit.com/tesla.com", Volume: "89.1M", Region: "US", AIScore: 4.5, AIVerdict: "Sell", TradingViewSymbol: "NASDAQ:TSLA", Beta: d(2.30), Dividend: "N/A"},
		{Ticker: "AMD", Name: "Advanced Micro Devices", Price: d(165.00), Change: d(4.20), ChangePercent: d(2.61), Exchange: "NASDAQ", MarketCap: "260B", Currency: "USD", PERatio: d(45.5), Sector: "Technology", Logo: "https://logo.clearbit.com/amd.com", Volume: "65.4M", Region: "US", AIScore: 7.8, AIVerdict: "Hold", TradingViewSymbol: "NASDAQ:AMD", Beta: d(1.65), Dividend: "N/A"},

		// US finance and other
		{Ticker: "JPM", Name: "JPMorgan Chase", Price: d(212.00), Change: d(1.50), ChangePercent: d(0.71), Exchange: "NYSE", MarketCap: "605B", Currency: "USD", PERatio: d(12.2), Sector: "Finance", Logo: "https://logo.clearbit.com/jpmorganchase.com", Volume: "8.2M", Region: "US", AIScore: 7.5, AIVerdict: "Hold", TradingViewSymbol: "NYSE:JPM", Beta: d(1.10), Dividend: "2.35%"},
		{Ticker: "V", Name: "Visa Inc.", Price: d(288.80), Change: d(0.40), ChangePercent: d(0.14), Exchange: "NYSE", MarketCap: "580B", Currency: "USD", PERatio: d(28.1), Sector: "Finance", Logo: "https://logo.clearbit.com/visa.com", Volume: "5.1M", Region: "US", AIScore: 8.0, AIVerdict: "Buy", TradingViewSymbol: "NYSE:V", Beta: d(0.95), Dividend: "0.75%"},

		// Saudi Arabia (Tadawul)
		{Ticker: "2222.SR", Name: "Saudi Aramco", Price: d(27.25), Change: d(0.10), ChangePercent: d(0.37), Exchange: "Tadawul", MarketCap: "6.8T", Currency: "SAR", PERatio: d(15.6), Sector: "Energy", Logo: "https://logo.clearbit.com/aramco.com", Volume: "10.5M", Region: "MiddleEast", AIScore: 7.2, AIVerdict: "Hold", TradingViewSymbol: "AMEX:KSA", Beta: d(0.60), Dividend: "6.15%"},
		{Ticker: "1120.SR", Name: "Al Rajhi Bank", Price: d(87.50), Change: d(0.80), ChangePercent: d(0.92), Exchange: "Tadawul", MarketCap: "96B", Currency: "SAR", PERatio: d(19.5), Sector: "Finance", Logo: "https://logo.clearbit.com/alrajhibank.com.sa", Volume: "3.8M", Region: "MiddleEast", AIScore: 8.1, AIVerdict: "Buy", TradingViewSymbol: "AMEX:KSA", Beta: d(1.05), Dividend: "2.85%"},
		{Ticker: "2010.SR", Name: "SABIC", Price: d(73.10), Change: d(-0.40), ChangePercent: d(-0.54), Exchange: "Tadawul", MarketCap: "68B", Currency: "SAR", PERatio: d(23.2), Sector: "Materials", Logo: "https://logo.clearbit.com/sabic.com", Volume: "1.9M", Region: "MiddleEast", AIScore: 5.9, AIVerdict: "Hold", TradingViewSymbol: "AMEX:KSA", Beta: d(1.20), Dividend: "3.55%"},

		// UK (LSE)
		{Ticker: "VOD.L", Name: "Vodafone Group", Price: d(71.20), Change: d(0.50), ChangePercent: d(0.71), Exchange: "LSE", MarketCap: "19.2B", Currency: "GBP", PERatio: d(15.8), Sector: "Telecom", Logo: "https://logo.clearbit.com/vodafone.com", Volume: "14.5M", Region: "Europe", AIScore: 4.8, AIVerdict: "Hold", TradingViewSymbol: "LSE:VOD", Beta: d(0.75), Dividend: "9.50%"},
		{Ticker: "SHEL.L", Name: "Shell PLC", Price: d(2510.50), Change: d(-12.00), ChangePercent: d(-0.48), Exchange: "LSE", MarketCap: "175B", Currency: "GBP", PERatio: d(8.0), Sector: "Energy", Logo: "https://logo.clearbit.com/shell.com", Volume: "8.8M", Region: "Europe", AIScore: 7.8, AIVerdict: "Buy", TradingViewSymbol: "LSE:SHEL", Beta: d(0.68), Dividend: "3.95%"},
		{Ticker: "AZN.L", Name: "AstraZeneca", Price: d(10320.00), Change: d(85.00), ChangePercent: d(0.83), Exchange: "LSE", MarketCap: "182B", Currency: "GBP", PERatio: d(36.2), Sector: "Healthcare", Logo: "https://logo.clearbit.com/astrazeneca.com", Volume: "1.4M", Region: "Europe", AIScore: 8.5, AIVerdict: "Buy", TradingViewSymbol: "LSE:AZN", Beta: d(0.55), Dividend: "2.15%"},

		// Europe (Euronext/Xetra)
		{Ticker: "MC.PA", Name: "LVMH", Price: d(592.00), Change: d(-5.50), ChangePercent: d(-0.92), Exchange: "Euronext", MarketCap: "298B", Currency: "EUR", PERatio: d(21.2), Sector: "Consumer", Logo: "https://logo.clearbit.com/lvmh.com", Volume: "550K", Region: "Europe", AIScore: 6.1, AIVerdict: "Hold", TradingViewSymbol: "EURONEXT:MC", Beta: d(1.15), Dividend: "2.10%"},
		{Ticker: "SAP.DE", Name: "SAP SE", Price: d(218.40), Change: d(4.20), ChangePercent: d(1.96), Exchange: "XETRA", MarketCap: "240B", Currency: "EUR", PERatio: d(49.5), Sector: "Technology", Logo: "https://logo.clearbit.com/sap.com", Volume: "2.2M", Region: "Europe", AIScore: 9.1, AIVerdict: "Strong Buy", TradingViewSymbol: "XETR:SAP", Beta: d(1.08), Dividend: "1.35%"},

		// Asia
		{Ticker: "BABA", Name: "Alibaba Group", Price: d(88.50), Change: d(1.80), ChangePercent: d(2.08), Exchange: "NYSE", MarketCap: "228B", Currency: "USD", PERatio: d(17.8), Sector: "Consumer", Logo: "https://logo.clearbit.com/alibaba.com", Volume: "17.2M", Region: "Asia", AIScore: 7.0, AIVerdict: "Buy", TradingViewSymbol: "NYSE:BABA", Beta: d(0.65), Dividend: "1.10%"},
		{Ticker: "0700.HK", Name: "Tencent", Price: d(412.00), Change: d(5.60), ChangePercent: d(1.38), Exchange: "HKEX", MarketCap: "475B", Currency: "HKD", PERatio: d(24.8), Sector: "Technology", Logo: "https://logo.clearbit.com/tencent.com", Volume: "20.5M", Region: "Asia", AIScore: 8.2, AIVerdict: "Buy", TradingViewSymbol: "HKEX:700", Beta: d(0.98), Dividend: "1.15%"},
		{Ticker: "7203.T", Name: "Toyota Motor", Price: d(2710.0), Change: d(15.0), ChangePercent: d(0.56), Exchange: "TSE", MarketCap: "235B", Currency: "JPY", PERatio: d(10.1), Sector: "Automotive", Logo: "https://logo.clearbit.com/global.toyota", Volume: "18.5M", Region: "Asia", AIScore: 6.8, AIVerdict: "Hold", TradingViewSymbol: "TSE:7203", Beta: d(0.58), Dividend: "2.85%"},
	}
}
