package config

// DefaultCategory is assigned when no category rule matches.
const DefaultCategory = "Product Management"

// DefaultRoutes returns the built-in static route table.
func DefaultRoutes() []StaticRoute {
	return []StaticRoute{
		{Path: "/", ChangeFreq: "weekly", Priority: 1.0},
		{Path: "/product", ChangeFreq: "monthly", Priority: 0.9},
		{Path: "/pricing", ChangeFreq: "monthly", Priority: 0.9},
		{Path: "/blog", ChangeFreq: "monthly", Priority: 0.9},
		{Path: "/about", ChangeFreq: "monthly", Priority: 0.8},
		{Path: "/contact", ChangeFreq: "monthly", Priority: 0.8},
	}
}

// DefaultCategories returns the built-in category rule list. Rule order is
// load-bearing: downstream content depends on stable categorization, so new
// rules go at the end.
func DefaultCategories() []CategoryRule {
	return []CategoryRule{
		{Name: "AI Tools", Keywords: []string{"ai-", "-ai", "artificial-intelligence", "machine-learning"}},
		{Name: "Strategic Intelligence", Keywords: []string{"intelligence", "analytics", "forecast"}},
		{Name: "Resource Management", Keywords: []string{"resource", "capacity", "workload", "utilization"}},
		{Name: "Platform Demo", Keywords: []string{"demo", "walkthrough", "tour"}},
		{Name: "Strategic Insights", Keywords: []string{"strategy", "strategic", "planning"}},
	}
}

func defaultSiteInfo() SiteInfo {
	return SiteInfo{
		Title:        "PageForge",
		BaseURL:      "https://www.example.com",
		Author:       "PageForge Team",
		SocialHandle: "@pageforge",
		DefaultImage: "/og-image.png",
	}
}
