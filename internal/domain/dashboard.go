package domain

// TrafficMetrics agrega os números de tráfego de todos os artigos do criador
type TrafficMetrics struct {
	PageViews       int64   `json:"page_views"`
	UniqueVisitors  int64   `json:"unique_visitors"`
	AvgTimeOnPage   float64 `json:"avg_time_on_page_seconds"`
	AvgBounceRate   float64 `json:"avg_bounce_rate"`
	PageViewsGrowth float64 `json:"page_views_growth"`
	VisitorsGrowth  float64 `json:"visitors_growth"`
}

// RevenueBreakdown decompõe a receita total por fonte de monetização
type RevenueBreakdown struct {
	AdRevenueCents           int64   `json:"ad_revenue_cents"`
	SubscriptionRevenueCents int64   `json:"subscription_revenue_cents"`
	AffiliateRevenueCents    int64   `json:"affiliate_revenue_cents"`
	TotalCents               int64   `json:"total_cents"`
	AdPercentage             float64 `json:"ad_percentage"`
	SubscriptionPercentage   float64 `json:"subscription_percentage"`
	AffiliatePercentage      float64 `json:"affiliate_percentage"`
	Growth                   float64 `json:"growth"`
}

// EngagementMetrics relaciona ações de engajamento com o número de visitantes
type EngagementMetrics struct {
	SocialShares      int64   `json:"social_shares"`
	NewsletterSignups int64   `json:"newsletter_signups"`
	AffiliateClicks   int64   `json:"affiliate_clicks"`
	ActionsPerVisitor float64 `json:"actions_per_visitor"`
}

// ContentPerformance agrega a performance editorial da janela
type ContentPerformance struct {
	Tags    []*TagPerformance  `json:"tags"`
	Cadence *PublishingCadence `json:"cadence"`
}

// DashboardReport é a visão unificada retornada pelo agregador
type DashboardReport struct {
	CreatorID     int                  `json:"creator_id"`
	Timeframe     *Timeframe           `json:"timeframe"`
	Traffic       *TrafficMetrics      `json:"traffic"`
	Revenue       *RevenueBreakdown    `json:"revenue"`
	Engagement    *EngagementMetrics   `json:"engagement"`
	Content       *ContentPerformance  `json:"content"`
	Subscriptions *SubscriptionMetrics `json:"subscriptions"`
}
