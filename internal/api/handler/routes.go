package handler

import (
	"net/http"

	"github.com/vfg2006/creator-platform-api/internal/api/handler/router"
	"github.com/vfg2006/creator-platform-api/internal/config"
	"github.com/vfg2006/creator-platform-api/internal/usecases/affiliating"
	"github.com/vfg2006/creator-platform-api/internal/usecases/analyzing"
	"github.com/vfg2006/creator-platform-api/internal/usecases/authenticating"
	"github.com/vfg2006/creator-platform-api/internal/usecases/campaigning"
	"github.com/vfg2006/creator-platform-api/internal/usecases/dashboarding"
	"github.com/vfg2006/creator-platform-api/internal/usecases/revenue"
	"github.com/vfg2006/creator-platform-api/internal/usecases/subscribing"
	"github.com/vfg2006/creator-platform-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Revenue(service revenue.RevenueManager) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/revenue",
			Method:      http.MethodPost,
			Handler:     RecordRevenue(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/revenue/report",
			Method:      http.MethodGet,
			Handler:     GetRevenueReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/revenue/monthly",
			Method:      http.MethodGet,
			Handler:     GetMonthlyRevenue(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/revenue/top-days",
			Method:      http.MethodGet,
			Handler:     GetTopRevenueDays(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/revenue/sources/compare",
			Method:      http.MethodGet,
			Handler:     CompareRevenueSources(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func AffiliateLinks(service affiliating.AffiliateManager) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/affiliate-links",
			Method:      http.MethodPost,
			Handler:     CreateAffiliateLink(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/affiliate-links",
			Method:      http.MethodGet,
			Handler:     ListAffiliateLinks(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/affiliate-suggestions",
			Method:      http.MethodGet,
			Handler:     GetAffiliateSuggestions(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/affiliate-links/:id",
			Method:      http.MethodGet,
			Handler:     GetAffiliateLink(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/affiliate-links/:id",
			Method:      http.MethodPut,
			Handler:     UpdateAffiliateLink(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/affiliate-links/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteAffiliateLink(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/affiliate-links/:id/conversion",
			Method:      http.MethodPost,
			Handler:     RecordAffiliateConversion(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/affiliate-links/:id/performance",
			Method:      http.MethodGet,
			Handler:     GetAffiliatePerformance(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/affiliate-links/:id/clicks-by-article",
			Method:      http.MethodGet,
			Handler:     GetAffiliateClicksByArticle(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			// Rota pública de redirecionamento usada nos artigos
			Path:    "/r/:code",
			Method:  http.MethodGet,
			Handler: RedirectAffiliateLink(service),
		},
	}
}

func Articles(service analyzing.AnalyticsManager) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/articles",
			Method:      http.MethodPost,
			Handler:     CreateArticle(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/articles",
			Method:      http.MethodGet,
			Handler:     ListArticles(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/articles/:id/publish",
			Method:      http.MethodPost,
			Handler:     PublishArticle(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/articles/:id/events",
			Method:      http.MethodPost,
			Handler:     TrackArticleEvent(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/articles/:id/time-on-page",
			Method:      http.MethodPost,
			Handler:     AddArticleTimeOnPage(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/articles/:id/ad-revenue",
			Method:      http.MethodPost,
			Handler:     AddArticleAdRevenue(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/articles/:id/bounce-rate",
			Method:      http.MethodPut,
			Handler:     SetArticleBounceRate(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/articles/:id/summary",
			Method:      http.MethodGet,
			Handler:     GetArticleSummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/analytics/tags",
			Method:      http.MethodGet,
			Handler:     GetTagPerformance(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Campaigns(service campaigning.CampaignManager, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/campaigns",
			Method:      http.MethodPost,
			Handler:     CreateCampaign(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns",
			Method:      http.MethodGet,
			Handler:     ListCampaigns(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:id",
			Method:      http.MethodGet,
			Handler:     GetCampaign(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:id",
			Method:      http.MethodPut,
			Handler:     UpdateCampaign(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteCampaign(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:id/schedule",
			Method:      http.MethodPost,
			Handler:     ScheduleCampaign(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:id/send",
			Method:      http.MethodPost,
			Handler:     SendCampaign(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:id/report",
			Method:      http.MethodGet,
			Handler:     GetCampaignReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/subscribers",
			Method:      http.MethodPost,
			Handler:     AddSubscriber(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/subscribers/:id/unsubscribe",
			Method:      http.MethodPost,
			Handler:     UnsubscribeSubscriber(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			// Webhook público do provedor de email
			Path:    "/v1/webhooks/mailer",
			Method:  http.MethodPost,
			Handler: MailerWebhook(service, cfg),
		},
	}
}

func Subscriptions(service subscribing.SubscriptionManager, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/plans",
			Method:      http.MethodPost,
			Handler:     CreatePlan(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/plans",
			Method:      http.MethodGet,
			Handler:     ListPlans(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/plans/:id",
			Method:      http.MethodDelete,
			Handler:     DeactivatePlan(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/subscriptions/checkout",
			Method:      http.MethodPost,
			Handler:     StartCheckout(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/subscriptions/portal",
			Method:      http.MethodPost,
			Handler:     OpenBillingPortal(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/subscriptions/cancel/:id",
			Method:      http.MethodPost,
			Handler:     CancelSubscription(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/subscriptions/metrics",
			Method:      http.MethodGet,
			Handler:     GetSubscriptionMetrics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			// Webhook público do processador de pagamento
			Path:    "/v1/webhooks/payment",
			Method:  http.MethodPost,
			Handler: PaymentWebhook(service, cfg),
		},
	}
}

func Dashboard(service dashboarding.DashboardManager) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboard(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
