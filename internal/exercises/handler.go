package exercises

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/peaklift/backend/internal/auth"
	"github.com/peaklift/backend/internal/telemetry/tracing"
	"github.com/peaklift/backend/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=exercises_mocks_test.go -package=exercises_test

// queries shorter than this return an empty result instead of scanning
// the whole catalog
const minSearchQueryLen = 2

type exercisesRepo interface {
	ListAll(ctx context.Context) ([]Exercise, error)
	Get(ctx context.Context, id int) (*Exercise, error)
	ByBodyPart(ctx context.Context, bodyPart string) ([]Exercise, error)
	Search(ctx context.Context, query string) ([]Exercise, error)
	BodyGroups(ctx context.Context) ([]BodyGroup, error)
	BodyGroupSetsCount(ctx context.Context, userID string, bodyGroupID int) (int, error)
}

type imageResolver interface {
	URL(publicID string) string
}

type Handler struct {
	repo   exercisesRepo
	images imageResolver
}

func NewHandler(repo exercisesRepo, images imageResolver) *Handler {
	return &Handler{
		repo:   repo,
		images: images,
	}
}

func (handler *Handler) SetupRoutes(exercisesRouter, bodyPartsRouter *mux.Router) {
	exercisesRouter.HandleFunc("", handler.HandleListAll).Methods("GET")
	exercisesRouter.HandleFunc("/search", handler.HandleSearch).Methods("GET")
	exercisesRouter.HandleFunc("/by-body-part/{name}", handler.HandleByBodyPart).Methods("GET")
	exercisesRouter.HandleFunc("/{id}", handler.HandleGet).Methods("GET")
	bodyPartsRouter.HandleFunc("", handler.HandleBodyParts).Methods("GET")
	bodyPartsRouter.HandleFunc("/{id}/stats", handler.HandleBodyPartStats).Methods("GET")
}

func (handler *Handler) HandleListAll(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.listall")
	defer span.End()

	exercises, err := handler.repo.ListAll(ctx)
	if err != nil {
		log.Errorf("list exercises error: %s", err)
		http.Error(w, "failed to get exercises", http.StatusInternalServerError)
		return
	}

	handler.writeExercises(w, exercises)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.get")
	defer span.End()

	vars := mux.Vars(r)
	idStr := vars["id"]
	if idStr == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	exercise, err := handler.repo.Get(ctx, id)
	if errors.Is(err, ErrExerciseNotFound) {
		http.Error(w, "exercise not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to get exercise %d: %s", id, err)
		http.Error(w, "failed to get exercise", http.StatusInternalServerError)
		return
	}

	exercise.ImageURL = handler.images.URL(exercise.ImagePublicID)

	exerciseJson, err := json.Marshal(exercise)
	if err != nil {
		log.Errorf("failed to marshal exercise: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, exerciseJson, http.StatusOK)
}

func (handler *Handler) HandleByBodyPart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.bybodypart")
	defer span.End()

	name := mux.Vars(r)["name"]
	if name == "" {
		http.Error(w, "error, body part name empty", http.StatusBadRequest)
		return
	}

	exercises, err := handler.repo.ByBodyPart(ctx, name)
	if err != nil {
		log.Errorf("failed to get exercises for body part [%s]: %s", name, err)
		http.Error(w, "failed to get exercises", http.StatusInternalServerError)
		return
	}

	handler.writeExercises(w, exercises)
}

func (handler *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.search")
	defer span.End()

	query := strings.TrimSpace(r.URL.Query().Get("query"))
	if len(query) < minSearchQueryLen {
		handler.writeExercises(w, []Exercise{})
		return
	}

	exercises, err := handler.repo.Search(ctx, query)
	if err != nil {
		log.Errorf("failed to search exercises [%s]: %s", query, err)
		http.Error(w, "failed to search exercises", http.StatusInternalServerError)
		return
	}

	handler.writeExercises(w, exercises)
}

func (handler *Handler) HandleBodyParts(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.bodyparts")
	defer span.End()

	groups, err := handler.repo.BodyGroups(ctx)
	if err != nil {
		log.Errorf("failed to get body groups: %s", err)
		http.Error(w, "failed to get body parts", http.StatusInternalServerError)
		return
	}

	groupsJson, err := json.Marshal(groups)
	if err != nil {
		log.Errorf("failed to marshal body groups: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, groupsJson, http.StatusOK)
}

func (handler *Handler) HandleBodyPartStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.bodypartstats")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	idStr := mux.Vars(r)["id"]
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	totalSets, err := handler.repo.BodyGroupSetsCount(ctx, userID, id)
	if errors.Is(err, ErrBodyGroupNotFound) {
		http.Error(w, "body part not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to get body part %d stats: %s", id, err)
		http.Error(w, "failed to get body part stats", http.StatusInternalServerError)
		return
	}

	statsJson, err := json.Marshal(BodyPartStats{TotalSets: totalSets})
	if err != nil {
		log.Errorf("failed to marshal body part stats: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, statsJson, http.StatusOK)
}

func (handler *Handler) writeExercises(w http.ResponseWriter, exercises []Exercise) {
	for i := range exercises {
		exercises[i].ImageURL = handler.images.URL(exercises[i].ImagePublicID)
	}

	exercisesJson, err := json.Marshal(exercises)
	if err != nil {
		log.Errorf("failed to marshal exercises: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, exercisesJson, http.StatusOK)
}
