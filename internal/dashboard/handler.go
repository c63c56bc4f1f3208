package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/peaklift/backend/internal/analytics"
	"github.com/peaklift/backend/internal/auth"
	"github.com/peaklift/backend/internal/telemetry/tracing"
	"github.com/peaklift/backend/internal/workouts"
	"github.com/peaklift/backend/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=dashboard_mocks_test.go -package=dashboard_test

const defaultRecentWorkoutsLimit = 5

type statsSource interface {
	SummaryAggregates(ctx context.Context, userID string, since *time.Time) (*analytics.Aggregates, error)
}

type workoutsSource interface {
	Recent(ctx context.Context, userID string, limit int) ([]workouts.Workout, error)
}

// Stats is the condensed training overview shown on the landing screen.
type Stats struct {
	TotalWorkouts int `json:"totalWorkouts"`
	TotalSets     int `json:"totalSets"`
	TotalVolume   int `json:"totalVolume"`
	ActiveDays    int `json:"activeDays"`
}

type Handler struct {
	stats    statsSource
	workouts workoutsSource
}

func NewHandler(stats statsSource, workouts workoutsSource) *Handler {
	return &Handler{
		stats:    stats,
		workouts: workouts,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/stats", handler.HandleStats).Methods("GET")
	router.HandleFunc("/recent-workouts", handler.HandleRecentWorkouts).Methods("GET")
}

func (handler *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.stats")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	days := 0
	if daysStr := r.URL.Query().Get("days"); daysStr != "" {
		var err error
		days, err = strconv.Atoi(daysStr)
		if err != nil {
			http.Error(w, "parse form error, parameter <days>", http.StatusBadRequest)
			return
		}
		if days < 0 {
			http.Error(w, "invalid days (has to be non-negative)", http.StatusBadRequest)
			return
		}
	}

	var since *time.Time
	if days > 0 {
		s := time.Now().UTC().AddDate(0, 0, -days)
		since = &s
	}

	agg, err := handler.stats.SummaryAggregates(ctx, userID, since)
	if err != nil {
		log.Errorf("failed to get dashboard stats: %s", err)
		http.Error(w, "failed to get dashboard stats", http.StatusInternalServerError)
		return
	}

	statsJson, err := json.Marshal(Stats{
		TotalWorkouts: agg.TotalWorkouts,
		TotalSets:     agg.TotalSets,
		TotalVolume:   agg.TotalVolume,
		ActiveDays:    agg.ActiveDays,
	})
	if err != nil {
		log.Errorf("failed to marshal dashboard stats: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, statsJson, http.StatusOK)
}

func (handler *Handler) HandleRecentWorkouts(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.recent")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	limit := defaultRecentWorkoutsLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		var err error
		limit, err = strconv.Atoi(limitStr)
		if err != nil {
			http.Error(w, "parse form error, parameter <limit>", http.StatusBadRequest)
			return
		}
		if limit < 1 {
			http.Error(w, "invalid limit (has to be non-zero value)", http.StatusBadRequest)
			return
		}
	}

	recent, err := handler.workouts.Recent(ctx, userID, limit)
	if err != nil {
		log.Errorf("failed to get recent workouts: %s", err)
		http.Error(w, "failed to get recent workouts", http.StatusInternalServerError)
		return
	}

	recentJson, err := json.Marshal(recent)
	if err != nil {
		log.Errorf("failed to marshal recent workouts: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, recentJson, http.StatusOK)
}
