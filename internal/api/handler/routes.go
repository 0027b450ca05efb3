package handler

import (
	"net/http"

	"github.com/vfg2006/lead-manager-api/internal/api/handler/router"
	"github.com/vfg2006/lead-manager-api/internal/scheduler"
	"github.com/vfg2006/lead-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/lead-manager-api/internal/usecases/interacting"
	"github.com/vfg2006/lead-manager-api/internal/usecases/lead"
	"github.com/vfg2006/lead-manager-api/internal/usecases/scheduling"
	"github.com/vfg2006/lead-manager-api/internal/usecases/scoring"
	"github.com/vfg2006/lead-manager-api/pkg/middleware"
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

func Leads(service lead.Manager) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/leads",
			Method:      http.MethodPost,
			Handler:     CreateLead(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/leads/:id",
			Method:      http.MethodGet,
			Handler:     GetLead(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/leads/:id",
			Method:      http.MethodPut,
			Handler:     UpdateLead(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/leads/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteLead(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/leads/:id/status",
			Method:      http.MethodPatch,
			Handler:     UpdateLeadStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// KamViews agrupa as consultas da rotina diária do KAM: carteira, leads com
// ligação vencida, agenda do dia e follow-ups
func KamViews(
	leadService lead.Manager,
	callScheduler scheduling.CallScheduler,
	interactor interacting.Interactor,
) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/kams/:id/leads",
			Method:      http.MethodGet,
			Handler:     ListLeads(leadService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/kams/:id/leads/due-today",
			Method:      http.MethodGet,
			Handler:     LeadsDueToday(leadService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/kams/:id/leads/summary",
			Method:      http.MethodGet,
			Handler:     LeadSummary(leadService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/kams/:id/calls/today",
			Method:      http.MethodGet,
			Handler:     CallsForToday(callScheduler),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/kams/:id/calls/overdue",
			Method:      http.MethodGet,
			Handler:     OverdueCalls(callScheduler),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/kams/:id/follow-ups",
			Method:      http.MethodGet,
			Handler:     FollowUpsForToday(interactor),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/kams/:id/interactions",
			Method:      http.MethodGet,
			Handler:     InteractionsForKam(interactor),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/kams/:id/activity",
			Method:      http.MethodGet,
			Handler:     KamActivity(interactor),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CallSchedules(service scheduling.CallScheduler) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/call-schedules",
			Method:      http.MethodPost,
			Handler:     CreateCallSchedule(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/call-schedules/:id",
			Method:      http.MethodGet,
			Handler:     GetCallSchedule(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/call-schedules/:id",
			Method:      http.MethodPut,
			Handler:     EditCallSchedule(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/call-schedules/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteCallSchedule(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/call-schedules/:id/complete",
			Method:      http.MethodPost,
			Handler:     CompleteCall(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/call-schedules/:id/miss",
			Method:      http.MethodPost,
			Handler:     MissCall(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/call-schedules/:id/busy",
			Method:      http.MethodPost,
			Handler:     MarkBusy(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/call-schedules/:id/reschedule",
			Method:      http.MethodPost,
			Handler:     RescheduleCall(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/call-schedules/:id/cancel",
			Method:      http.MethodPost,
			Handler:     CancelCall(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Interactions(service interacting.Interactor) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/interactions",
			Method:      http.MethodPost,
			Handler:     RegisterInteraction(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/interactions/:id",
			Method:      http.MethodGet,
			Handler:     GetInteraction(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/interactions/:id",
			Method:      http.MethodPut,
			Handler:     UpdateInteraction(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/interactions/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteInteraction(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/leads/:id/interactions",
			Method:      http.MethodGet,
			Handler:     InteractionsForLead(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/leads/:id/activity",
			Method:      http.MethodGet,
			Handler:     RecentActivity(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Performance(service scoring.Scorer, callScheduler scheduling.CallScheduler) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/leads/:id/score/recompute",
			Method:      http.MethodPost,
			Handler:     RecomputeLeadScore(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/leads/:id/score/history",
			Method:      http.MethodGet,
			Handler:     ScoreHistory(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/leads/:id/performance",
			Method:      http.MethodGet,
			Handler:     LeadPerformance(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/leads/:id/calls",
			Method:      http.MethodGet,
			Handler:     UpcomingCallsForLead(callScheduler),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/kams/:id/performance",
			Method:      http.MethodGet,
			Handler:     KamPerformance(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func Snapshots(service *scheduler.ScoreSnapshotService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/score-snapshot/run",
			Method:      http.MethodPost,
			Handler:     RunScoreSnapshot(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/cron/score-snapshot/status",
			Method:      http.MethodGet,
			Handler:     GetScoreSnapshotStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
