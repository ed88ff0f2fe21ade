package reference

// Sector names (GICS, 11 sectors) in display order
var sectorOrder = []string{
	"Technology",
	"Financials",
	"Healthcare",
	"Consumer Discretionary",
	"Consumer Staples",
	"Energy",
	"Industrials",
	"Communication Services",
	"Utilities",
	"Materials",
	"Real Estate",
}

// allowedIndices 지원 지수 (^ 접두사)
var allowedIndices = []string{"^GSPC", "^DJI", "^IXIC", "^NDX", "^RUT", "^VIX"}

// builtinConstituents S&P 500 구성 종목 (섹터별)
// 클래스 주식(BRK.B, BF.B 등)은 티커 형식상 제외
var builtinConstituents = map[string][]string{
	"Technology": {
		"AAPL", "MSFT", "NVDA", "AVGO", "ORCL", "AMD", "QCOM", "TXN", "CRM", "ADBE",
		"CSCO", "ACN", "IBM", "INTU", "NOW", "AMAT", "MU", "LRCX", "ADI", "KLAC",
		"PANW", "SNPS", "CDNS", "ANET", "APH", "MSI", "ROP", "NXPI", "FTNT", "ADSK",
		"MCHP", "TEL", "IT", "CTSH", "MPWR", "ON", "GLW", "HPQ", "HPE", "KEYS",
		"CDW", "FICO", "TYL", "NTAP", "WDC", "STX", "ZBRA", "TER", "PTC", "FSLR",
		"SWKS", "AKAM", "JNPR", "ENPH", "GDDY", "TRMB", "JBL", "FFIV", "EPAM", "GEN",
		"SMCI", "PLTR", "CRWD", "DELL", "INTC",
	},
	"Financials": {
		"JPM", "BAC", "WFC", "GS", "MS", "V", "MA", "C", "AXP", "SCHW",
		"BLK", "SPGI", "CB", "MMC", "PGR", "ICE", "CME", "AON", "USB", "PNC",
		"TFC", "COF", "MCO", "AJG", "MET", "AIG", "TRV", "AFL", "ALL", "PRU",
		"BK", "MSCI", "AMP", "FI", "FIS", "PYPL", "GPN", "DFS", "HIG", "STT",
		"MTB", "FITB", "RJF", "TROW", "WTW", "NDAQ", "HBAN", "RF", "CFG", "KEY",
		"NTRS", "SYF", "BRO", "CINF", "PFG", "L", "EG", "WRB", "CBOE", "FDS",
		"JKHY", "GL", "AIZ", "BEN", "IVZ", "KKR", "BX", "APO", "ACGL", "ERIE",
		"COIN", "CPAY", "MKTX",
	},
	"Healthcare": {
		"UNH", "JNJ", "LLY", "MRK", "ABBV", "PFE", "TMO", "ABT", "DHR", "AMGN",
		"ISRG", "BMY", "GILD", "VRTX", "MDT", "SYK", "ELV", "CI", "REGN", "BSX",
		"ZTS", "BDX", "HCA", "MCK", "CVS", "COR", "EW", "IDXX", "A", "IQV",
		"DXCM", "GEHC", "HUM", "CNC", "RMD", "MTD", "BIIB", "CAH", "WST", "ZBH",
		"STE", "LH", "DGX", "BAX", "HOLX", "COO", "WAT", "ALGN", "MOH", "PODD",
		"TECH", "CRL", "HSIC", "INCY", "VTRS", "RVTY", "UHS", "DVA", "SOLV", "MRNA",
		"CTLT",
	},
	"Consumer Discretionary": {
		"AMZN", "TSLA", "HD", "MCD", "NKE", "LOW", "SBUX", "TJX", "BKNG", "CMG",
		"ORLY", "AZO", "MAR", "HLT", "GM", "F", "ROST", "YUM", "DHI", "LEN",
		"ABNB", "RCL", "LULU", "EBAY", "TSCO", "GPC", "DRI", "NVR", "PHM", "ULTA",
		"DECK", "GRMN", "CCL", "EXPE", "LVS", "BBY", "POOL", "APTV", "KMX", "LKQ",
		"TPR", "MGM", "WYNN", "CZR", "HAS", "RL", "NCLH", "MHK", "BWA", "DPZ",
	},
	"Consumer Staples": {
		"PG", "KO", "PEP", "COST", "WMT", "PM", "MO", "MDLZ", "CL", "TGT",
		"KMB", "GIS", "STZ", "KDP", "SYY", "KR", "KHC", "MNST", "HSY", "ADM",
		"EL", "CHD", "CLX", "MKC", "K", "DG", "DLTR", "TSN", "HRL", "SJM",
		"CAG", "CPB", "LW", "TAP", "BG", "KVUE", "WBA",
	},
	"Energy": {
		"XOM", "CVX", "COP", "EOG", "SLB", "MPC", "PSX", "VLO", "OXY", "WMB",
		"KMI", "OKE", "HES", "BKR", "HAL", "DVN", "FANG", "TRGP", "CTRA", "EQT",
		"MRO", "APA", "TPL",
	},
	"Industrials": {
		"CAT", "DE", "GE", "UNP", "HON", "BA", "RTX", "LMT", "UPS", "ADP",
		"ETN", "ITW", "NOC", "GD", "WM", "CSX", "NSC", "EMR", "PH", "FDX",
		"TT", "CTAS", "MMM", "CARR", "PCAR", "JCI", "TDG", "CPRT", "RSG", "OTIS",
		"PAYX", "ODFL", "GWW", "FAST", "AME", "URI", "CMI", "ROK", "VRSK", "IR",
		"PWR", "XYL", "EFX", "DOV", "WAB", "HWM", "BR", "LHX", "AXON", "VLTO",
		"BLDR", "HUBB", "LDOS", "J", "EXPD", "TXT", "SNA", "MAS", "IEX", "PNR",
		"NDSN", "SWK", "ALLE", "CHRW", "JBHT", "DAL", "UAL", "LUV", "AOS", "GNRC",
		"ROL", "HII", "PAYC", "DAY", "LII", "GEV",
	},
	"Communication Services": {
		"GOOGL", "GOOG", "META", "NFLX", "DIS", "VZ", "T", "CMCSA", "TMUS", "CHTR",
		"EA", "TTWO", "WBD", "OMC", "IPG", "LYV", "MTCH", "FOXA", "FOX", "NWSA",
		"NWS", "PARA",
	},
	"Utilities": {
		"NEE", "DUK", "SO", "D", "SRE", "AEP", "EXC", "XEL", "PEG", "ED",
		"WEC", "EIX", "ETR", "DTE", "AWK", "PPL", "FE", "AEE", "ES", "CMS",
		"CNP", "ATO", "NRG", "LNT", "EVRG", "NI", "PNW", "AES", "PCG", "CEG",
		"VST",
	},
	"Materials": {
		"LIN", "APD", "SHW", "FCX", "NEM", "NUE", "ECL", "DD", "DOW", "CTVA",
		"PPG", "VMC", "MLM", "IFF", "LYB", "STLD", "BALL", "AVY", "PKG", "IP",
		"CF", "MOS", "ALB", "CE", "EMN", "AMCR",
	},
	"Real Estate": {
		"PLD", "AMT", "EQIX", "CCI", "PSA", "O", "SPG", "WELL", "DLR", "VICI",
		"CBRE", "AVB", "EXR", "EQR", "IRM", "VTR", "SBAC", "ARE", "MAA", "INVH",
		"ESS", "WY", "KIM", "UDR", "HST", "CPT", "REG", "BXP", "FRT", "DOC",
	},
}

// representativeBySector 스크리닝용 고정 표본 (섹터별 순서 유지)
var representativeBySector = map[string][]string{
	"Technology":             {"AAPL", "MSFT", "NVDA", "AVGO", "ORCL", "AMD", "QCOM", "TXN"},
	"Financials":             {"JPM", "BAC", "WFC", "GS", "MS", "V", "MA", "C"},
	"Healthcare":             {"UNH", "JNJ", "LLY", "MRK", "ABBV", "PFE", "TMO", "ABT"},
	"Consumer Discretionary": {"AMZN", "TSLA", "HD", "MCD", "NKE", "LOW"},
	"Consumer Staples":       {"PG", "KO", "PEP", "COST", "WMT", "PM"},
	"Energy":                 {"XOM", "CVX", "COP", "EOG", "SLB", "MPC"},
	"Industrials":            {"CAT", "DE", "GE", "UNP", "HON", "BA"},
	"Communication Services": {"GOOGL", "META", "NFLX", "DIS", "VZ", "T"},
	"Utilities":              {"NEE", "DUK", "SO", "D", "SRE", "AEP"},
	"Materials":              {"LIN", "APD", "SHW", "FCX", "NEM", "NUE"},
	"Real Estate":            {"PLD", "AMT", "EQIX", "CCI", "PSA", "O"},
}
