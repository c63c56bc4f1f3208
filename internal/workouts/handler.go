package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/peaklift/backend/internal/auth"
	"github.com/peaklift/backend/internal/telemetry/metrics"
	"github.com/peaklift/backend/internal/telemetry/tracing"
	"github.com/peaklift/backend/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=workouts_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	List(ctx context.Context, userID string, page, size int) (_ []Workout, total int, err error)
	Get(ctx context.Context, userID string, id int) (*Workout, error)
	GetDetails(ctx context.Context, userID string, id int) (*WorkoutDetails, error)
	FilterByDays(ctx context.Context, userID string, days int) ([]Workout, error)
	Add(ctx context.Context, workout Workout) (*Workout, error)
	Update(ctx context.Context, userID string, id int, title string, date time.Time) error
	Delete(ctx context.Context, userID string, id int) error
	AddExercise(ctx context.Context, userID string, workoutID, exerciseID int) (*WorkoutExercise, error)
	Reorder(ctx context.Context, userID string, workoutID int, items []ReorderItem) error
	DeleteExercise(ctx context.Context, userID string, workoutExerciseID int) error
	AddSet(ctx context.Context, userID string, workoutExerciseID int, set WorkoutSet) (*WorkoutSet, error)
	UpdateSet(ctx context.Context, userID string, setID, reps int, weight *float64) error
	DeleteSet(ctx context.Context, userID string, setID int) error
}

type ListResponse struct {
	Page     int       `json:"page"`
	PageSize int       `json:"pageSize"`
	Total    int       `json:"total"`
	Data     []Workout `json:"data"`
}

type AddWorkoutRequest struct {
	Title string    `json:"title"`
	Date  time.Time `json:"date"`
}

type UpdateWorkoutRequest struct {
	Title string    `json:"title"`
	Date  time.Time `json:"date"`
}

type AddExerciseRequest struct {
	ExerciseID int `json:"exerciseId"`
}

type ReorderRequest struct {
	Items []ReorderItem `json:"items"`
}

type AddSetRequest struct {
	SetNumber       int      `json:"setNumber"`
	Reps            int      `json:"reps"`
	Weight          *float64 `json:"weight"`
	DurationSeconds *int     `json:"durationSeconds"`
}

type UpdateSetRequest struct {
	Reps   int      `json:"reps"`
	Weight *float64 `json:"weight"`
}

type Handler struct {
	repo    workoutsRepo
	metrics *metrics.Manager
}

func NewHandler(repo workoutsRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:    repo,
		metrics: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("", handler.HandleList).Methods("GET").Queries("page", "{page}", "pageSize", "{pageSize}")
	router.HandleFunc("", handler.HandleAdd).Methods("POST", "OPTIONS")
	router.HandleFunc("/filter", handler.HandleFilter).Methods("GET")
	router.HandleFunc("/{id}", handler.HandleGetDetails).Methods("GET")
	router.HandleFunc("/{id}", handler.HandleUpdate).Methods("PUT", "OPTIONS")
	router.HandleFunc("/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS")
	router.HandleFunc("/{id}/exercises", handler.HandleAddExercise).Methods("POST", "OPTIONS")
	router.HandleFunc("/{id}/reorder", handler.HandleReorder).Methods("PUT", "OPTIONS")
	router.HandleFunc("/exercises/{id}", handler.HandleDeleteExercise).Methods("DELETE", "OPTIONS")
	router.HandleFunc("/exercises/{id}/sets", handler.HandleAddSet).Methods("POST", "OPTIONS")
	router.HandleFunc("/sets/{id}", handler.HandleUpdateSet).Methods("PUT", "OPTIONS")
	router.HandleFunc("/sets/{id}", handler.HandleDeleteSet).Methods("DELETE", "OPTIONS")
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	page, err := strconv.Atoi(vars["page"])
	if err != nil {
		log.Tracef("handle list workouts, from <page> param: %s", err)
		http.Error(w, "parse form error, parameter <page>", http.StatusBadRequest)
		return
	}
	pageSize, err := strconv.Atoi(vars["pageSize"])
	if err != nil {
		log.Tracef("handle list workouts, from <pageSize> param: %s", err)
		http.Error(w, "parse form error, parameter <pageSize>", http.StatusBadRequest)
		return
	}

	if page < 1 {
		http.Error(w, "invalid page (has to be non-zero value)", http.StatusBadRequest)
		return
	}
	if pageSize < 1 {
		http.Error(w, "invalid pageSize (has to be non-zero value)", http.StatusBadRequest)
		return
	}

	workouts, total, err := handler.repo.List(ctx, userID, page, pageSize)
	if err != nil {
		log.Errorf("list workouts error: %s", err)
		http.Error(w, "failed to get workouts", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(ListResponse{
		Page:     page,
		PageSize: pageSize,
		Total:    total,
		Data:     workouts,
	})
	if err != nil {
		log.Errorf("marshal workouts error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleFilter(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.filter")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	days, err := strconv.Atoi(r.URL.Query().Get("days"))
	if err != nil {
		log.Tracef("handle filter workouts, from <days> param: %s", err)
		http.Error(w, "parse form error, parameter <days>", http.StatusBadRequest)
		return
	}
	if days < 1 {
		http.Error(w, "invalid days (has to be non-zero value)", http.StatusBadRequest)
		return
	}

	workouts, err := handler.repo.FilterByDays(ctx, userID, days)
	if err != nil {
		log.Errorf("filter workouts error: %s", err)
		http.Error(w, "failed to get workouts", http.StatusInternalServerError)
		return
	}

	workoutsJson, err := json.Marshal(workouts)
	if err != nil {
		log.Errorf("marshal workouts error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, workoutsJson, http.StatusOK)
}

func (handler *Handler) HandleGetDetails(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, err := workoutIDFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	details, err := handler.repo.GetDetails(ctx, userID, id)
	if errors.Is(err, ErrWorkoutNotFound) {
		http.Error(w, "workout not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to get workout %d: %s", id, err)
		http.Error(w, "failed to get workout", http.StatusInternalServerError)
		return
	}

	detailsJson, err := json.Marshal(details)
	if err != nil {
		log.Errorf("failed to marshal workout details: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, detailsJson, http.StatusOK)
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.new")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req AddWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("new workout, unmarshal json params: %s", err)
		http.Error(w, "add workout failed", http.StatusBadRequest)
		return
	}

	if req.Title == "" {
		http.Error(w, "error, workout title empty", http.StatusBadRequest)
		return
	}
	if req.Date.IsZero() {
		req.Date = time.Now()
	}

	addedWorkout, err := handler.repo.Add(ctx, Workout{
		UserID: userID,
		Title:  req.Title,
		Date:   req.Date,
	})
	if err != nil {
		log.Errorf("failed to add new workout [%s]: %s", req.Title, err)
		http.Error(w, "error, failed to add new workout", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterWorkoutsCreated.Inc()

	workoutJson, err := json.Marshal(addedWorkout)
	if err != nil {
		log.Errorf("failed to marshal new workout: %s", err)
		http.Error(w, "error, failed to add new workout", http.StatusInternalServerError)
		return
	}

	log.Debugf("new workout added: %s", workoutJson)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, workoutJson, http.StatusCreated)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.update")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, err := workoutIDFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req UpdateWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("update workout, unmarshal json params: %s", err)
		http.Error(w, "update workout failed", http.StatusBadRequest)
		return
	}

	if req.Title == "" {
		http.Error(w, "error, workout title empty", http.StatusBadRequest)
		return
	}
	if req.Date.IsZero() {
		http.Error(w, "error, workout date empty", http.StatusBadRequest)
		return
	}

	err = handler.repo.Update(ctx, userID, id, req.Title, req.Date)
	if errors.Is(err, ErrWorkoutNotFound) {
		http.Error(w, "workout not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to update workout %d: %s", id, err)
		http.Error(w, "error, failed to update workout", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, err := workoutIDFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err = handler.repo.Delete(ctx, userID, id)
	if errors.Is(err, ErrWorkoutNotFound) {
		http.Error(w, "workout not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to delete workout %d: %s", id, err)
		http.Error(w, "workout not deleted", http.StatusInternalServerError)
		return
	}

	log.Debugf("workout %d deleted", id)
	w.WriteHeader(http.StatusNoContent)
}

func (handler *Handler) HandleAddExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.addexercise")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	workoutID, err := workoutIDFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req AddExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("add workout exercise, unmarshal json params: %s", err)
		http.Error(w, "add workout exercise failed", http.StatusBadRequest)
		return
	}
	if req.ExerciseID < 1 {
		http.Error(w, "error, exercise id empty", http.StatusBadRequest)
		return
	}

	addedExercise, err := handler.repo.AddExercise(ctx, userID, workoutID, req.ExerciseID)
	if errors.Is(err, ErrWorkoutNotFound) {
		http.Error(w, "workout not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to add exercise %d to workout %d: %s", req.ExerciseID, workoutID, err)
		http.Error(w, "error, failed to add workout exercise", http.StatusInternalServerError)
		return
	}

	exerciseJson, err := json.Marshal(addedExercise)
	if err != nil {
		log.Errorf("failed to marshal workout exercise: %s", err)
		http.Error(w, "error, failed to add workout exercise", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, exerciseJson, http.StatusCreated)
}

func (handler *Handler) HandleReorder(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.reorder")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	workoutID, err := workoutIDFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req ReorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("reorder workout exercises, unmarshal json params: %s", err)
		http.Error(w, "reorder failed", http.StatusBadRequest)
		return
	}
	if len(req.Items) == 0 {
		http.Error(w, "error, no reorder items", http.StatusBadRequest)
		return
	}

	err = handler.repo.Reorder(ctx, userID, workoutID, req.Items)
	if errors.Is(err, ErrWorkoutNotFound) {
		http.Error(w, "workout not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to reorder exercises of workout %d: %s", workoutID, err)
		http.Error(w, "error, failed to reorder exercises", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (handler *Handler) HandleDeleteExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.deleteexercise")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, err := workoutIDFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err = handler.repo.DeleteExercise(ctx, userID, id)
	if errors.Is(err, ErrWorkoutExerciseNotFound) {
		http.Error(w, "workout exercise not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to delete workout exercise %d: %s", id, err)
		http.Error(w, "workout exercise not deleted", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (handler *Handler) HandleAddSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.addset")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	workoutExerciseID, err := workoutIDFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req AddSetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("add workout set, unmarshal json params: %s", err)
		http.Error(w, "add set failed", http.StatusBadRequest)
		return
	}
	if req.SetNumber < 1 {
		http.Error(w, "error, invalid set number", http.StatusBadRequest)
		return
	}
	if req.Reps < 1 {
		http.Error(w, "error, invalid reps", http.StatusBadRequest)
		return
	}
	if req.Weight != nil && *req.Weight < 0 {
		http.Error(w, "error, invalid weight", http.StatusBadRequest)
		return
	}

	addedSet, err := handler.repo.AddSet(ctx, userID, workoutExerciseID, WorkoutSet{
		SetNumber:       req.SetNumber,
		Reps:            req.Reps,
		Weight:          req.Weight,
		DurationSeconds: req.DurationSeconds,
	})
	if errors.Is(err, ErrWorkoutExerciseNotFound) {
		http.Error(w, "workout exercise not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to add set to workout exercise %d: %s", workoutExerciseID, err)
		http.Error(w, "error, failed to add set", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterSetsAdded.Inc()

	setJson, err := json.Marshal(addedSet)
	if err != nil {
		log.Errorf("failed to marshal workout set: %s", err)
		http.Error(w, "error, failed to add set", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, setJson, http.StatusCreated)
}

func (handler *Handler) HandleUpdateSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.updateset")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, err := workoutIDFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req UpdateSetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("update workout set, unmarshal json params: %s", err)
		http.Error(w, "update set failed", http.StatusBadRequest)
		return
	}
	if req.Reps < 1 {
		http.Error(w, "error, invalid reps", http.StatusBadRequest)
		return
	}
	if req.Weight != nil && *req.Weight < 0 {
		http.Error(w, "error, invalid weight", http.StatusBadRequest)
		return
	}

	err = handler.repo.UpdateSet(ctx, userID, id, req.Reps, req.Weight)
	if errors.Is(err, ErrSetNotFound) {
		http.Error(w, "set not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to update set %d: %s", id, err)
		http.Error(w, "error, failed to update set", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (handler *Handler) HandleDeleteSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.deleteset")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, err := workoutIDFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err = handler.repo.DeleteSet(ctx, userID, id)
	if errors.Is(err, ErrSetNotFound) {
		http.Error(w, "set not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to delete set %d: %s", id, err)
		http.Error(w, "set not deleted", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func workoutIDFromRequest(r *http.Request) (int, error) {
	idStr := mux.Vars(r)["id"]
	if idStr == "" {
		return 0, errors.New("error, id empty")
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return 0, errors.New("error, id NaN")
	}
	return id, nil
}
