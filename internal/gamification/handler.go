package gamification

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/HARSHA8881/FitTrack/internal/auth"
	"github.com/HARSHA8881/FitTrack/internal/telemetry/metrics"
	"github.com/HARSHA8881/FitTrack/internal/telemetry/tracing"
	"github.com/HARSHA8881/FitTrack/pkg"

	"github.com/coocood/freecache"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=gamification

const (
	defaultLeaderboardLimit = 10
	maxLeaderboardLimit     = 100

	leaderboardCacheSize = 512 * 1024
)

type gamificationService interface {
	Stats(ctx context.Context, userID int) (*Stats, error)
	AchievementsOverview(ctx context.Context, userID int) (*AchievementsOverview, error)
	Leaderboard(ctx context.Context, timeframe string, limit int) ([]LeaderboardEntry, error)
	PersonalRecords(ctx context.Context, userID int, exerciseID *int) ([]PersonalRecord, error)
}

type LeaderboardResponse struct {
	Entries   []LeaderboardEntry `json:"entries"`
	Timeframe string             `json:"timeframe"`
	Limit     int                `json:"limit"`
}

type Handler struct {
	service          gamificationService
	metrics          *metrics.Manager
	leaderboardCache *freecache.Cache
	cacheTTLSeconds  int
}

func NewHandler(
	service gamificationService,
	metricsManager *metrics.Manager,
	cacheTTLSeconds int,
) *Handler {
	return &Handler{
		service:          service,
		metrics:          metricsManager,
		leaderboardCache: freecache.NewCache(leaderboardCacheSize),
		cacheTTLSeconds:  cacheTTLSeconds,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/gamification/stats", handler.HandleStats).Methods("GET", "OPTIONS").Name("gamification-stats")
	router.HandleFunc("/gamification/achievements", handler.HandleAchievements).Methods("GET", "OPTIONS").Name("gamification-achievements")
	router.HandleFunc("/gamification/records", handler.HandleRecords).Methods("GET", "OPTIONS").Name("gamification-records")
	router.HandleFunc("/gamification/leaderboard", handler.HandleLeaderboard).Methods("GET", "OPTIONS").Name("gamification-leaderboard")
}

func (handler *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gamification.stats")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	stats, err := handler.service.Stats(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get stats for user %d: %s", userID, err)
		http.Error(w, "failed to get stats", http.StatusInternalServerError)
		return
	}

	statsJson, err := json.Marshal(stats)
	if err != nil {
		log.Errorf("failed to marshal stats: %s", err)
		http.Error(w, "failed to get stats", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, statsJson, http.StatusOK)
}

func (handler *Handler) HandleAchievements(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gamification.achievements")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	overview, err := handler.service.AchievementsOverview(ctx, userID)
	if err != nil {
		log.Errorf("failed to get achievements for user %d: %s", userID, err)
		http.Error(w, "failed to get achievements", http.StatusInternalServerError)
		return
	}

	overviewJson, err := json.Marshal(overview)
	if err != nil {
		log.Errorf("failed to marshal achievements: %s", err)
		http.Error(w, "failed to get achievements", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, overviewJson, http.StatusOK)
}

func (handler *Handler) HandleRecords(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gamification.records")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var exerciseID *int
	if exIDStr := r.URL.Query().Get("exercise_id"); exIDStr != "" {
		exID, err := strconv.Atoi(exIDStr)
		if err != nil {
			http.Error(w, "error, exercise id NaN", http.StatusBadRequest)
			return
		}
		exerciseID = &exID
	}

	records, err := handler.service.PersonalRecords(ctx, userID, exerciseID)
	if err != nil {
		log.Errorf("failed to get records for user %d: %s", userID, err)
		http.Error(w, "failed to get records", http.StatusInternalServerError)
		return
	}

	recordsJson, err := json.Marshal(records)
	if err != nil {
		log.Errorf("failed to marshal records: %s", err)
		http.Error(w, "failed to get records", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, recordsJson, http.StatusOK)
}

func (handler *Handler) HandleLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gamification.leaderboard")
	defer span.End()

	timeframe := r.URL.Query().Get("timeframe")
	if timeframe == "" {
		timeframe = "all"
	}

	limit := defaultLeaderboardLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsedLimit, err := strconv.Atoi(limitStr)
		if err != nil || parsedLimit <= 0 {
			http.Error(w, "error, invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsedLimit
	}
	if limit > maxLeaderboardLimit {
		limit = maxLeaderboardLimit
	}

	span.SetAttributes(
		attribute.String("timeframe", timeframe),
		attribute.Int("limit", limit),
	)

	cacheKey := []byte("leaderboard::" + timeframe + "::" + strconv.Itoa(limit))
	if cached, err := handler.leaderboardCache.Get(cacheKey); err == nil {
		handler.metrics.CounterLeaderboardCacheHits.Inc()
		span.SetAttributes(attribute.Bool("cache.hit", true))
		pkg.WriteResponseBytes(w, pkg.ContentType.JSON, cached, http.StatusOK)
		return
	}

	entries, err := handler.service.Leaderboard(ctx, timeframe, limit)
	if err != nil {
		log.Errorf("failed to get leaderboard: %s", err)
		http.Error(w, "failed to get leaderboard", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(LeaderboardResponse{
		Entries:   entries,
		Timeframe: timeframe,
		Limit:     limit,
	})
	if err != nil {
		log.Errorf("failed to marshal leaderboard: %s", err)
		http.Error(w, "failed to get leaderboard", http.StatusInternalServerError)
		return
	}

	if err := handler.leaderboardCache.Set(cacheKey, respJson, handler.cacheTTLSeconds); err != nil {
		log.Tracef("failed to cache leaderboard response: %s", err)
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
