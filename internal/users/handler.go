package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/HARSHA8881/FitTrack/internal/auth"
	"github.com/HARSHA8881/FitTrack/internal/telemetry/tracing"
	"github.com/HARSHA8881/FitTrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=users_test

type profileRepo interface {
	GetProfile(ctx context.Context, userID int) (*Profile, error)
	UpdateProfile(ctx context.Context, userID int, update ProfileUpdate) error
	ListGoals(ctx context.Context, userID int, status string) ([]Goal, error)
	GetGoal(ctx context.Context, id int) (*Goal, error)
	AddGoal(ctx context.Context, goal Goal) (*Goal, error)
	UpdateGoal(ctx context.Context, goal Goal) error
	DeleteGoal(ctx context.Context, id int) error
	ListBodyMetrics(ctx context.Context, userID int, params BodyMetricsParams) ([]BodyMetric, error)
	GetBodyMetric(ctx context.Context, id int) (*BodyMetric, error)
	AddBodyMetric(ctx context.Context, metric BodyMetric) (*BodyMetric, error)
	UpdateBodyMetric(ctx context.Context, metric BodyMetric) error
	DeleteBodyMetric(ctx context.Context, id int) error
}

type Handler struct {
	repo profileRepo
	now  func() time.Time
}

func NewHandler(repo profileRepo) *Handler {
	return &Handler{
		repo: repo,
		now:  time.Now,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/users/profile", handler.HandleGetProfile).Methods("GET", "OPTIONS").Name("users-profile")
	router.HandleFunc("/users/profile", handler.HandleUpdateProfile).Methods("PUT", "OPTIONS").Name("users-profile-update")
	router.HandleFunc("/users/goals", handler.HandleListGoals).Methods("GET", "OPTIONS").Name("users-goals-list")
	router.HandleFunc("/users/goals", handler.HandleAddGoal).Methods("POST", "OPTIONS").Name("users-goals-add")
	router.HandleFunc("/users/goals/{id}", handler.HandleUpdateGoal).Methods("PUT", "OPTIONS").Name("users-goals-update")
	router.HandleFunc("/users/goals/{id}", handler.HandleDeleteGoal).Methods("DELETE", "OPTIONS").Name("users-goals-delete")
	router.HandleFunc("/users/body-metrics", handler.HandleListBodyMetrics).Methods("GET", "OPTIONS").Name("users-body-metrics-list")
	router.HandleFunc("/users/body-metrics", handler.HandleAddBodyMetric).Methods("POST", "OPTIONS").Name("users-body-metrics-add")
	router.HandleFunc("/users/body-metrics/{id}", handler.HandleUpdateBodyMetric).Methods("PUT", "OPTIONS").Name("users-body-metrics-update")
	router.HandleFunc("/users/body-metrics/{id}", handler.HandleDeleteBodyMetric).Methods("DELETE", "OPTIONS").Name("users-body-metrics-delete")
}

func (handler *Handler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.profile")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	profile, err := handler.repo.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		log.Errorf("get profile for user %d: %s", userID, err)
		http.Error(w, "get profile failed", http.StatusInternalServerError)
		return
	}

	profileJson, err := json.Marshal(profile)
	if err != nil {
		log.Errorf("marshal profile: %s", err)
		http.Error(w, "get profile failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, profileJson, http.StatusOK)
}

func (handler *Handler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.profileUpdate")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var update ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Errorf("update profile, unmarshal json params: %s", err)
		http.Error(w, "update profile failed", http.StatusBadRequest)
		return
	}

	if update.ExperienceLevel != nil && !slices.Contains(ExperienceLevels, *update.ExperienceLevel) {
		http.Error(w, "error, invalid experience level", http.StatusBadRequest)
		return
	}
	if update.PreferredUnits != nil && !slices.Contains(UnitSystems, *update.PreferredUnits) {
		http.Error(w, "error, invalid unit system", http.StatusBadRequest)
		return
	}
	if update.WeeklyGoal != nil && (*update.WeeklyGoal < 1 || *update.WeeklyGoal > 7) {
		http.Error(w, "error, weekly goal must be between 1 and 7", http.StatusBadRequest)
		return
	}

	if err := handler.repo.UpdateProfile(ctx, userID, update); err != nil {
		log.Errorf("update profile for user %d: %s", userID, err)
		http.Error(w, "update profile failed", http.StatusInternalServerError)
		return
	}

	profile, err := handler.repo.GetProfile(ctx, userID)
	if err != nil {
		log.Errorf("get updated profile for user %d: %s", userID, err)
		http.Error(w, "update profile failed", http.StatusInternalServerError)
		return
	}

	profileJson, err := json.Marshal(profile)
	if err != nil {
		log.Errorf("marshal updated profile: %s", err)
		http.Error(w, "update profile failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, profileJson, http.StatusOK)
}

func (handler *Handler) HandleListGoals(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.goalsList")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	status := r.URL.Query().Get("status")
	if status != "" && !slices.Contains(GoalStatuses, status) {
		http.Error(w, "error, invalid goal status", http.StatusBadRequest)
		return
	}

	list, err := handler.repo.ListGoals(ctx, userID, status)
	if err != nil {
		log.Errorf("list goals for user %d: %s", userID, err)
		http.Error(w, "list goals failed", http.StatusInternalServerError)
		return
	}

	listJson, err := json.Marshal(list)
	if err != nil {
		log.Errorf("marshal goals: %s", err)
		http.Error(w, "list goals failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listJson, http.StatusOK)
}

func (handler *Handler) HandleAddGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.goalAdd")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var goal Goal
	if err := json.NewDecoder(r.Body).Decode(&goal); err != nil {
		log.Errorf("new goal, unmarshal json params: %s", err)
		http.Error(w, "add goal failed", http.StatusBadRequest)
		return
	}

	if goal.Title == "" || goal.GoalType == "" {
		http.Error(w, "error, goal title and type are required", http.StatusBadRequest)
		return
	}

	goal.UserID = userID
	goal.Status = "active"
	goal.CompletedAt = nil
	added, err := handler.repo.AddGoal(ctx, goal)
	if err != nil {
		log.Errorf("add goal for user %d: %s", userID, err)
		http.Error(w, "add goal failed", http.StatusInternalServerError)
		return
	}

	addedJson, err := json.Marshal(added)
	if err != nil {
		log.Errorf("marshal added goal: %s", err)
		http.Error(w, "add goal failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedJson, http.StatusCreated)
}

func (handler *Handler) HandleUpdateGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.goalUpdate")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	goal, ok := handler.ownedGoal(ctx, w, r, userID)
	if !ok {
		return
	}

	var update struct {
		Title        *string    `json:"title"`
		Description  *string    `json:"description"`
		GoalType     *string    `json:"goalType"`
		TargetValue  *float64   `json:"targetValue"`
		CurrentValue *float64   `json:"currentValue"`
		Unit         *string    `json:"unit"`
		Status       *string    `json:"status"`
		TargetDate   *time.Time `json:"targetDate"`
	}
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Errorf("update goal, unmarshal json params: %s", err)
		http.Error(w, "update goal failed", http.StatusBadRequest)
		return
	}

	if update.Title != nil {
		goal.Title = *update.Title
	}
	if update.Description != nil {
		goal.Description = update.Description
	}
	if update.GoalType != nil {
		goal.GoalType = *update.GoalType
	}
	if update.TargetValue != nil {
		goal.TargetValue = update.TargetValue
	}
	if update.CurrentValue != nil {
		goal.CurrentValue = *update.CurrentValue
	}
	if update.Unit != nil {
		goal.Unit = update.Unit
	}
	if update.TargetDate != nil {
		goal.TargetDate = update.TargetDate
	}
	if update.Status != nil {
		if !slices.Contains(GoalStatuses, *update.Status) {
			http.Error(w, "error, invalid goal status", http.StatusBadRequest)
			return
		}
		goal.Status = *update.Status
		// completion timestamp is set once, on the first transition
		if goal.Status == "completed" && goal.CompletedAt == nil {
			completedAt := handler.now()
			goal.CompletedAt = &completedAt
		}
	}

	if err := handler.repo.UpdateGoal(ctx, *goal); err != nil {
		log.Errorf("update goal %d: %s", goal.ID, err)
		http.Error(w, "update goal failed", http.StatusInternalServerError)
		return
	}

	updatedJson, err := json.Marshal(goal)
	if err != nil {
		log.Errorf("marshal updated goal: %s", err)
		http.Error(w, "update goal failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, updatedJson, http.StatusOK)
}

func (handler *Handler) HandleDeleteGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.goalDelete")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	goal, ok := handler.ownedGoal(ctx, w, r, userID)
	if !ok {
		return
	}

	if err := handler.repo.DeleteGoal(ctx, goal.ID); err != nil {
		log.Errorf("delete goal %d: %s", goal.ID, err)
		http.Error(w, "delete goal failed", http.StatusInternalServerError)
		return
	}

	log.Debugf("goal %d deleted by user %d", goal.ID, userID)
	pkg.WriteTextResponseOK(w, "deleted")
}

func (handler *Handler) HandleListBodyMetrics(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.bodyMetricsList")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	params := BodyMetricsParams{
		MetricType: r.URL.Query().Get("metric_type"),
	}
	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			http.Error(w, "error, invalid from timestamp", http.StatusBadRequest)
			return
		}
		params.From = &from
	}
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			http.Error(w, "error, invalid to timestamp", http.StatusBadRequest)
			return
		}
		params.To = &to
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			http.Error(w, "error, invalid limit", http.StatusBadRequest)
			return
		}
		params.Limit = limit
	}

	list, err := handler.repo.ListBodyMetrics(ctx, userID, params)
	if err != nil {
		log.Errorf("list body metrics for user %d: %s", userID, err)
		http.Error(w, "list body metrics failed", http.StatusInternalServerError)
		return
	}

	listJson, err := json.Marshal(list)
	if err != nil {
		log.Errorf("marshal body metrics: %s", err)
		http.Error(w, "list body metrics failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listJson, http.StatusOK)
}

func (handler *Handler) HandleAddBodyMetric(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.bodyMetricAdd")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var metric BodyMetric
	if err := json.NewDecoder(r.Body).Decode(&metric); err != nil {
		log.Errorf("new body metric, unmarshal json params: %s", err)
		http.Error(w, "add body metric failed", http.StatusBadRequest)
		return
	}

	if metric.MetricType == "" || metric.Unit == "" || metric.Value <= 0 {
		http.Error(w, "error, metric type, value and unit are required", http.StatusBadRequest)
		return
	}

	metric.UserID = userID
	added, err := handler.repo.AddBodyMetric(ctx, metric)
	if err != nil {
		log.Errorf("add body metric for user %d: %s", userID, err)
		http.Error(w, "add body metric failed", http.StatusInternalServerError)
		return
	}

	addedJson, err := json.Marshal(added)
	if err != nil {
		log.Errorf("marshal added body metric: %s", err)
		http.Error(w, "add body metric failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedJson, http.StatusCreated)
}

func (handler *Handler) HandleUpdateBodyMetric(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.bodyMetricUpdate")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	metric, ok := handler.ownedBodyMetric(ctx, w, r, userID)
	if !ok {
		return
	}

	var update struct {
		MetricType *string    `json:"metricType"`
		Value      *float64   `json:"value"`
		Unit       *string    `json:"unit"`
		Notes      *string    `json:"notes"`
		RecordedAt *time.Time `json:"recordedAt"`
	}
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Errorf("update body metric, unmarshal json params: %s", err)
		http.Error(w, "update body metric failed", http.StatusBadRequest)
		return
	}

	if update.MetricType != nil {
		metric.MetricType = *update.MetricType
	}
	if update.Value != nil {
		metric.Value = *update.Value
	}
	if update.Unit != nil {
		metric.Unit = *update.Unit
	}
	if update.Notes != nil {
		metric.Notes = update.Notes
	}
	if update.RecordedAt != nil {
		metric.RecordedAt = *update.RecordedAt
	}

	if err := handler.repo.UpdateBodyMetric(ctx, *metric); err != nil {
		log.Errorf("update body metric %d: %s", metric.ID, err)
		http.Error(w, "update body metric failed", http.StatusInternalServerError)
		return
	}

	updatedJson, err := json.Marshal(metric)
	if err != nil {
		log.Errorf("marshal updated body metric: %s", err)
		http.Error(w, "update body metric failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, updatedJson, http.StatusOK)
}

func (handler *Handler) HandleDeleteBodyMetric(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.bodyMetricDelete")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	metric, ok := handler.ownedBodyMetric(ctx, w, r, userID)
	if !ok {
		return
	}

	if err := handler.repo.DeleteBodyMetric(ctx, metric.ID); err != nil {
		log.Errorf("delete body metric %d: %s", metric.ID, err)
		http.Error(w, "delete body metric failed", http.StatusInternalServerError)
		return
	}

	log.Debugf("body metric %d deleted by user %d", metric.ID, userID)
	pkg.WriteTextResponseOK(w, "deleted")
}

// ownedGoal fetches the goal from the path id and verifies it belongs
// to the given user, writing the error response otherwise.
func (handler *Handler) ownedGoal(
	ctx context.Context,
	w http.ResponseWriter,
	r *http.Request,
	userID int,
) (*Goal, bool) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, goal id NaN", http.StatusBadRequest)
		return nil, false
	}

	goal, err := handler.repo.GetGoal(ctx, id)
	if err != nil {
		if errors.Is(err, ErrGoalNotFound) {
			http.Error(w, "goal not found", http.StatusNotFound)
			return nil, false
		}
		log.Errorf("get goal %d: %s", id, err)
		http.Error(w, "get goal failed", http.StatusInternalServerError)
		return nil, false
	}

	if goal.UserID != userID {
		http.Error(w, "not authorized", http.StatusForbidden)
		return nil, false
	}
	return goal, true
}

func (handler *Handler) ownedBodyMetric(
	ctx context.Context,
	w http.ResponseWriter,
	r *http.Request,
	userID int,
) (*BodyMetric, bool) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, metric id NaN", http.StatusBadRequest)
		return nil, false
	}

	metric, err := handler.repo.GetBodyMetric(ctx, id)
	if err != nil {
		if errors.Is(err, ErrBodyMetricNotFound) {
			http.Error(w, "body metric not found", http.StatusNotFound)
			return nil, false
		}
		log.Errorf("get body metric %d: %s", id, err)
		http.Error(w, "get body metric failed", http.StatusInternalServerError)
		return nil, false
	}

	if metric.UserID != userID {
		http.Error(w, "not authorized", http.StatusForbidden)
		return nil, false
	}
	return metric, true
}
