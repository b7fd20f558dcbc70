package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/HARSHA8881/FitTrack/internal/auth"
	"github.com/HARSHA8881/FitTrack/internal/gamification"
	"github.com/HARSHA8881/FitTrack/internal/telemetry/metrics"
	"github.com/HARSHA8881/FitTrack/internal/telemetry/tracing"
	"github.com/HARSHA8881/FitTrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	Add(ctx context.Context, workout Workout) (*Workout, error)
	Get(ctx context.Context, id int) (*Workout, error)
	List(ctx context.Context, params ListParams) ([]Workout, error)
	Update(ctx context.Context, workout Workout) error
	Delete(ctx context.Context, id int) error
}

type progressEngine interface {
	OnWorkoutLogged(ctx context.Context, userID int, workout gamification.Workout) (*gamification.WorkoutLoggedResult, error)
}

type Handler struct {
	repo    workoutsRepo
	engine  progressEngine
	metrics *metrics.Manager
}

func NewHandler(repo workoutsRepo, engine progressEngine, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:    repo,
		engine:  engine,
		metrics: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/workouts", handler.HandleList).Methods("GET", "OPTIONS").Name("workouts-list")
	router.HandleFunc("/workouts", handler.HandleAdd).Methods("POST", "OPTIONS").Name("workouts-add")
	router.HandleFunc("/workouts/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("workouts-get")
	router.HandleFunc("/workouts/{id}", handler.HandleUpdate).Methods("PUT", "OPTIONS").Name("workouts-update")
	router.HandleFunc("/workouts/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("workouts-delete")
}

// AddWorkoutResponse carries the stored workout plus everything the
// progress engine awarded for it.
type AddWorkoutResponse struct {
	Workout      *Workout                          `json:"workout"`
	Gamification *gamification.WorkoutLoggedResult `json:"gamification"`
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.add")
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

	var workout Workout
	if err := json.NewDecoder(r.Body).Decode(&workout); err != nil {
		log.Errorf("new workout, unmarshal json params: %s", err)
		http.Error(w, "add workout failed", http.StatusBadRequest)
		return
	}

	if workout.ExerciseID <= 0 {
		http.Error(w, "error, exercise id is required", http.StatusBadRequest)
		return
	}
	workout.Intensity = strings.ToLower(workout.Intensity)
	workout.UserID = userID
	if workout.WorkoutDate.IsZero() {
		workout.WorkoutDate = time.Now()
	}

	added, err := handler.repo.Add(ctx, workout)
	if err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			http.Error(w, "error, exercise not found", http.StatusBadRequest)
			return
		}
		log.Errorf("add workout for user %d: %s", userID, err)
		http.Error(w, "add workout failed", http.StatusInternalServerError)
		return
	}

	span.SetAttributes(attribute.Int("workout.id", added.ID))
	handler.metrics.CounterWorkoutsLogged.Inc()

	result, err := handler.engine.OnWorkoutLogged(ctx, added.UserID, toEngineWorkout(*added))
	if err != nil {
		// workout is stored, progress is not - surface the error
		log.Errorf("progress update for workout %d: %s", added.ID, err)
		http.Error(w, "workout stored, progress update failed", http.StatusInternalServerError)
		return
	}

	// the counter tracks the full XP delta of the event, achievement
	// rewards included, so it stays consistent with total points
	awardedXP := result.XPAwarded + result.StreakBonusXP
	for _, achievement := range result.NewAchievements {
		awardedXP += achievement.XPReward
	}
	handler.metrics.CounterXPAwarded.Add(float64(awardedXP))
	if len(result.NewRecords) > 0 {
		handler.metrics.CounterPersonalRecords.Add(float64(len(result.NewRecords)))
	}
	if len(result.NewAchievements) > 0 {
		handler.metrics.CounterAchievementsUnlocked.Add(float64(len(result.NewAchievements)))
	}

	respJson, err := json.Marshal(AddWorkoutResponse{
		Workout:      added,
		Gamification: result,
	})
	if err != nil {
		log.Errorf("marshal add workout response: %s", err)
		http.Error(w, "add workout failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	params := ListParams{UserID: userID}
	if exIDStr := r.URL.Query().Get("exercise_id"); exIDStr != "" {
		exID, err := strconv.Atoi(exIDStr)
		if err != nil {
			http.Error(w, "error, exercise id NaN", http.StatusBadRequest)
			return
		}
		params.ExerciseID = exID
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

	list, err := handler.repo.List(ctx, params)
	if err != nil {
		log.Errorf("list workouts for user %d: %s", userID, err)
		http.Error(w, "list workouts failed", http.StatusInternalServerError)
		return
	}

	listJson, err := json.Marshal(list)
	if err != nil {
		log.Errorf("marshal workouts: %s", err)
		http.Error(w, "list workouts failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listJson, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	workout, ok := handler.ownedWorkout(ctx, w, r, userID)
	if !ok {
		return
	}

	workoutJson, err := json.Marshal(workout)
	if err != nil {
		log.Errorf("marshal workout: %s", err)
		http.Error(w, "get workout failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, workoutJson, http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.update")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	workout, ok := handler.ownedWorkout(ctx, w, r, userID)
	if !ok {
		return
	}

	var update Workout
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Errorf("update workout, unmarshal json params: %s", err)
		http.Error(w, "update workout failed", http.StatusBadRequest)
		return
	}

	// only the provided fields change, everything else stays
	if update.Sets != nil {
		workout.Sets = update.Sets
	}
	if update.Reps != nil {
		workout.Reps = update.Reps
	}
	if update.Weight != nil {
		workout.Weight = update.Weight
	}
	if update.DurationMin != nil {
		workout.DurationMin = update.DurationMin
	}
	if update.DistanceKm != nil {
		workout.DistanceKm = update.DistanceKm
	}
	if update.Calories != nil {
		workout.Calories = update.Calories
	}
	if update.Intensity != "" {
		workout.Intensity = strings.ToLower(update.Intensity)
	}
	if update.Notes != nil {
		workout.Notes = update.Notes
	}
	if !update.WorkoutDate.IsZero() {
		workout.WorkoutDate = update.WorkoutDate
	}

	if err := handler.repo.Update(ctx, *workout); err != nil {
		log.Errorf("update workout %d: %s", workout.ID, err)
		http.Error(w, "update workout failed", http.StatusInternalServerError)
		return
	}

	updatedJson, err := json.Marshal(workout)
	if err != nil {
		log.Errorf("marshal updated workout: %s", err)
		http.Error(w, "update workout failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, updatedJson, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	workout, ok := handler.ownedWorkout(ctx, w, r, userID)
	if !ok {
		return
	}

	if err := handler.repo.Delete(ctx, workout.ID); err != nil {
		log.Errorf("delete workout %d: %s", workout.ID, err)
		http.Error(w, "delete workout failed", http.StatusInternalServerError)
		return
	}

	log.Debugf("workout %d deleted by user %d", workout.ID, userID)
	pkg.WriteTextResponseOK(w, "deleted")
}

// ownedWorkout fetches the workout from the path id and verifies it
// belongs to the given user, writing the error response otherwise.
func (handler *Handler) ownedWorkout(
	ctx context.Context,
	w http.ResponseWriter,
	r *http.Request,
	userID int,
) (*Workout, bool) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, workout id NaN", http.StatusBadRequest)
		return nil, false
	}

	workout, err := handler.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			http.Error(w, "workout not found", http.StatusNotFound)
			return nil, false
		}
		log.Errorf("get workout %d: %s", id, err)
		http.Error(w, "get workout failed", http.StatusInternalServerError)
		return nil, false
	}

	if workout.UserID != userID {
		http.Error(w, "not authorized", http.StatusForbidden)
		return nil, false
	}

	return workout, true
}

func toEngineWorkout(w Workout) gamification.Workout {
	return gamification.Workout{
		ID:          w.ID,
		UserID:      w.UserID,
		ExerciseID:  w.ExerciseID,
		Sets:        w.Sets,
		Reps:        w.Reps,
		Weight:      w.Weight,
		DurationMin: w.DurationMin,
		DistanceKm:  w.DistanceKm,
		Intensity:   w.Intensity,
		WorkoutDate: w.WorkoutDate,
	}
}
