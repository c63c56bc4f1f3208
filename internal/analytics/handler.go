package analytics

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/peaklift/backend/internal/auth"
	"github.com/peaklift/backend/internal/telemetry/tracing"
	"github.com/peaklift/backend/pkg"
)

type Handler struct {
	analyzer *Analyzer
}

func NewHandler(repo analyticsRepo) *Handler {
	return &Handler{
		analyzer: NewAnalyzer(repo),
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/summary", handler.HandleSummary).Methods("GET")
	router.HandleFunc("/sets-per-day", handler.HandleSetsPerDay).Methods("GET")
	router.HandleFunc("/body-part-distribution", handler.HandleBodyPartDistribution).Methods("GET")
	router.HandleFunc("/workout-frequency", handler.HandleWorkoutFrequency).Methods("GET")
}

func (handler *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.summary")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	days, err := daysFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	summary, err := handler.analyzer.Summary(ctx, userID, days)
	if err != nil {
		log.Errorf("failed to get training summary: %s", err)
		http.Error(w, "failed to get summary", http.StatusInternalServerError)
		return
	}

	summaryJson, err := json.Marshal(summary)
	if err != nil {
		log.Errorf("failed to marshal training summary: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, summaryJson, http.StatusOK)
}

func (handler *Handler) HandleSetsPerDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.setsperday")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	days, err := daysFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	entries, err := handler.analyzer.SetsPerDay(ctx, userID, days)
	if err != nil {
		log.Errorf("failed to get sets per day: %s", err)
		http.Error(w, "failed to get sets per day", http.StatusInternalServerError)
		return
	}

	entriesJson, err := json.Marshal(entries)
	if err != nil {
		log.Errorf("failed to marshal sets per day: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, entriesJson, http.StatusOK)
}

func (handler *Handler) HandleBodyPartDistribution(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.bodyparts")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	days, err := daysFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	counts, err := handler.analyzer.BodyPartDistribution(ctx, userID, days)
	if err != nil {
		log.Errorf("failed to get body part distribution: %s", err)
		http.Error(w, "failed to get body part distribution", http.StatusInternalServerError)
		return
	}

	countsJson, err := json.Marshal(counts)
	if err != nil {
		log.Errorf("failed to marshal body part distribution: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, countsJson, http.StatusOK)
}

func (handler *Handler) HandleWorkoutFrequency(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.frequency")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	days, err := daysFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	counts, err := handler.analyzer.WorkoutFrequency(ctx, userID, days)
	if err != nil {
		log.Errorf("failed to get workout frequency: %s", err)
		http.Error(w, "failed to get workout frequency", http.StatusInternalServerError)
		return
	}

	countsJson, err := json.Marshal(counts)
	if err != nil {
		log.Errorf("failed to marshal workout frequency: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, countsJson, http.StatusOK)
}

// daysFromRequest reads the optional days query param. Absent or zero
// means all time.
func daysFromRequest(r *http.Request) (int, error) {
	daysStr := r.URL.Query().Get("days")
	if daysStr == "" {
		return 0, nil
	}
	days, err := strconv.Atoi(daysStr)
	if err != nil {
		return 0, errors.New("parse form error, parameter <days>")
	}
	if days < 0 {
		return 0, errors.New("invalid days (has to be non-negative)")
	}
	return days, nil
}
