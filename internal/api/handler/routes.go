package handler

import (
	"net/http"

	"github.com/vfg2006/marketing-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/charting"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/insighting"
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

// Audiences retorna as rotas de performance de segmentos de audiência
func Audiences(insightService insighting.Insighter, chartService charting.SeriesBuilder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/audiences",
			Method:  http.MethodGet,
			Handler: GetAudiencePerformance(insightService),
		},
		{
			Path:    "/v1/audiences/series",
			Method:  http.MethodGet,
			Handler: GetAudienceSeries(insightService, chartService),
		},
		{
			Path:    "/v1/audiences/quadrant",
			Method:  http.MethodGet,
			Handler: GetAudienceQuadrant(insightService, chartService),
		},
	}
}

// Channels retorna as rotas de performance de canais de marketing
func Channels(insightService insighting.Insighter, chartService charting.SeriesBuilder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/channels",
			Method:  http.MethodGet,
			Handler: GetChannelPerformance(insightService),
		},
		{
			Path:    "/v1/channels/series",
			Method:  http.MethodGet,
			Handler: GetChannelSeries(insightService, chartService),
		},
		{
			Path:    "/v1/channels/quadrant",
			Method:  http.MethodGet,
			Handler: GetChannelQuadrant(insightService, chartService),
		},
	}
}

func Campaigns(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/campaigns",
			Method:  http.MethodGet,
			Handler: GetCampaigns(service),
		},
	}
}

func Clusters(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/clusters",
			Method:  http.MethodGet,
			Handler: GetClusters(service),
		},
	}
}

func Periods(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/insights/periods",
			Method:  http.MethodGet,
			Handler: GetAvailablePeriods(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
