package i18n

var dictionaries = map[Locale]map[string]string{
	LocaleEN: {
		"site.title":          "PolyDelta",
		"site.tagline":        "Polymarket prices vs sportsbook odds",
		"nav.dashboard":       "Dashboard",
		"nav.language":        "Language",
		"stats.total":         "Opportunities",
		"stats.high_ev":       "High EV",
		"stats.daily_matches": "Daily matches",
		"stats.last_updated":  "Last updated",
		"table.team":          "Team",
		"table.polymarket":    "Polymarket",
		"table.sportsbook":    "Sportsbook",
		"table.ev":            "EV",
		"table.match":         "Match",
		"table.tipoff":        "Tip-off",
		"table.home":          "Home",
		"table.away":          "Away",
		"empty.championships": "No odds recorded yet.",
		"empty.matches":       "No matches scheduled.",
		"match.placeholder":   "No live odds recorded for this team yet.",
		"match.history":       "Price history (7 days)",
		"report.strategy":     "Strategy",
		"report.news":         "News & tiers",
		"report.portfolio":    "Portfolio summary",
		"verdict.Accumulate":  "Accumulate",
		"verdict.Hold":        "Hold",
		"verdict.Sell":        "Sell",
		"auth.sign_in":        "Sign in",
		"auth.sign_out":       "Sign out",
		"footer.disclaimer":   "Informational only. Not financial advice.",
		"error.not_found":     "Not found",
		"error.internal":      "Something went wrong",
	},
	LocaleZH: {
		"site.title":          "PolyDelta",
		"site.tagline":        "Polymarket 价格与博彩公司赔率对比",
		"nav.dashboard":       "仪表盘",
		"nav.language":        "语言",
		"stats.total":         "机会总数",
		"stats.high_ev":       "高 EV",
		"stats.daily_matches": "今日比赛",
		"stats.last_updated":  "最后更新",
		"table.team":          "球队",
		"table.polymarket":    "Polymarket",
		"table.sportsbook":    "博彩公司",
		"table.ev":            "EV",
		"table.match":         "比赛",
		"table.tipoff":        "开赛时间",
		"table.home":          "主队",
		"table.away":          "客队",
		"empty.championships": "暂无赔率记录。",
		"empty.matches":       "暂无比赛安排。",
		"match.placeholder":   "该球队暂无实时赔率。",
		"match.history":       "价格走势（7 天）",
		"report.strategy":     "策略",
		"report.news":         "新闻与分级",
		"report.portfolio":    "组合总结",
		"verdict.Accumulate":  "增持",
		"verdict.Hold":        "持有",
		"verdict.Sell":        "卖出",
		"auth.sign_in":        "登录",
		"auth.sign_out":       "退出",
		"footer.disclaimer":   "仅供参考，不构成投资建议。",
		"error.not_found":     "未找到",
	},
}
