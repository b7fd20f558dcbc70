package analytics

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/HARSHA8881/FitTrack/internal/auth"
	"github.com/HARSHA8881/FitTrack/internal/telemetry/tracing"
	"github.com/HARSHA8881/FitTrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=analytics_test

const defaultTimeframeDays = 30

type analyticsRepo interface {
	WorkoutsSince(ctx context.Context, userID int, since time.Time, exerciseID int) ([]WorkoutRow, error)
	WorkoutsInYear(ctx context.Context, userID, year int) ([]WorkoutRow, error)
	Overview(ctx context.Context, userID int, now time.Time) (*Overview, error)
}

type Handler struct {
	repo analyticsRepo
	now  func() time.Time
}

func NewHandler(repo analyticsRepo) *Handler {
	return &Handler{
		repo: repo,
		now:  time.Now,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/analytics", handler.HandleOverview).Methods("GET", "OPTIONS").Name("analytics-overview")
	router.HandleFunc("/analytics/heatmap", handler.HandleHeatmap).Methods("GET", "OPTIONS").Name("analytics-heatmap")
	router.HandleFunc("/analytics/progress", handler.HandleProgress).Methods("GET", "OPTIONS").Name("analytics-progress")
	router.HandleFunc("/analytics/distribution/exercises", handler.HandleExerciseDistribution).
		Methods("GET", "OPTIONS").Name("analytics-distribution-exercises")
	router.HandleFunc("/analytics/distribution/muscles", handler.HandleMuscleGroupDistribution).
		Methods("GET", "OPTIONS").Name("analytics-distribution-muscles")
	router.HandleFunc("/analytics/volume", handler.HandleVolume).Methods("GET", "OPTIONS").Name("analytics-volume")
	router.HandleFunc("/analytics/consistency", handler.HandleConsistency).Methods("GET", "OPTIONS").Name("analytics-consistency")
}

// timeframeDays parses timeframe params like "30d", "7d" or "90",
// falling back to 30 days.
func timeframeDays(r *http.Request) int {
	timeframe := strings.TrimSuffix(r.URL.Query().Get("timeframe"), "d")
	if timeframe == "" {
		return defaultTimeframeDays
	}
	days, err := strconv.Atoi(timeframe)
	if err != nil || days <= 0 {
		return defaultTimeframeDays
	}
	return days
}

func (handler *Handler) writeJson(w http.ResponseWriter, payload any) {
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		log.Errorf("marshal analytics response: %s", err)
		http.Error(w, "analytics failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, payloadJson, http.StatusOK)
}

func (handler *Handler) HandleOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.overview")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	overview, err := handler.repo.Overview(ctx, userID, handler.now())
	if err != nil {
		log.Errorf("analytics overview for user %d: %s", userID, err)
		http.Error(w, "analytics failed", http.StatusInternalServerError)
		return
	}
	handler.writeJson(w, overview)
}

func (handler *Handler) HandleHeatmap(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.heatmap")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	year := handler.now().Year()
	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		parsedYear, err := strconv.Atoi(yearStr)
		if err != nil {
			http.Error(w, "error, year NaN", http.StatusBadRequest)
			return
		}
		year = parsedYear
	}
	span.SetAttributes(attribute.Int("year", year))

	rows, err := handler.repo.WorkoutsInYear(ctx, userID, year)
	if err != nil {
		log.Errorf("analytics heatmap for user %d: %s", userID, err)
		http.Error(w, "analytics failed", http.StatusInternalServerError)
		return
	}
	handler.writeJson(w, Heatmap(rows))
}

func (handler *Handler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.progress")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var exerciseID int
	if exIDStr := r.URL.Query().Get("exercise_id"); exIDStr != "" {
		exID, err := strconv.Atoi(exIDStr)
		if err != nil {
			http.Error(w, "error, exercise id NaN", http.StatusBadRequest)
			return
		}
		exerciseID = exID
	}

	days := timeframeDays(r)
	span.SetAttributes(attribute.Int("timeframe.days", days))

	rows, err := handler.repo.WorkoutsSince(ctx, userID, handler.now().AddDate(0, 0, -days), exerciseID)
	if err != nil {
		log.Errorf("analytics progress for user %d: %s", userID, err)
		http.Error(w, "analytics failed", http.StatusInternalServerError)
		return
	}
	handler.writeJson(w, Progress(rows))
}

func (handler *Handler) HandleExerciseDistribution(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.distribution.exercises")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	days := timeframeDays(r)
	rows, err := handler.repo.WorkoutsSince(ctx, userID, handler.now().AddDate(0, 0, -days), 0)
	if err != nil {
		log.Errorf("analytics exercise distribution for user %d: %s", userID, err)
		http.Error(w, "analytics failed", http.StatusInternalServerError)
		return
	}
	handler.writeJson(w, DistributionByCategory(rows))
}

func (handler *Handler) HandleMuscleGroupDistribution(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.distribution.muscles")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	days := timeframeDays(r)
	rows, err := handler.repo.WorkoutsSince(ctx, userID, handler.now().AddDate(0, 0, -days), 0)
	if err != nil {
		log.Errorf("analytics muscle group distribution for user %d: %s", userID, err)
		http.Error(w, "analytics failed", http.StatusInternalServerError)
		return
	}
	handler.writeJson(w, DistributionByMuscleGroup(rows))
}

func (handler *Handler) HandleVolume(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.volume")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	days := timeframeDays(r)
	rows, err := handler.repo.WorkoutsSince(ctx, userID, handler.now().AddDate(0, 0, -days), 0)
	if err != nil {
		log.Errorf("analytics volume for user %d: %s", userID, err)
		http.Error(w, "analytics failed", http.StatusInternalServerError)
		return
	}
	handler.writeJson(w, VolumeOverTime(rows))
}

func (handler *Handler) HandleConsistency(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.consistency")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	days := timeframeDays(r)
	rows, err := handler.repo.WorkoutsSince(ctx, userID, handler.now().AddDate(0, 0, -days), 0)
	if err != nil {
		log.Errorf("analytics consistency for user %d: %s", userID, err)
		http.Error(w, "analytics failed", http.StatusInternalServerError)
		return
	}
	handler.writeJson(w, Consistency(rows, days))
}
