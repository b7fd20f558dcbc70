package workouts_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/HARSHA8881/FitTrack/internal/auth"
	"github.com/HARSHA8881/FitTrack/internal/gamification"
	"github.com/HARSHA8881/FitTrack/internal/telemetry/metrics"
	"github.com/HARSHA8881/FitTrack/internal/workouts"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func intPtr(i int) *int { return &i }

func floatPtr(f float64) *float64 { return &f }

func TestHandler_HandleAdd(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockworkoutsRepo(ctrl)
	engineMock := NewMockprogressEngine(ctrl)
	h := workouts.NewHandler(repoMock, engineMock, metrics.NewTestManager())

	now := time.Now()
	newWorkout := workouts.Workout{
		ExerciseID:  3,
		Sets:        intPtr(5),
		Reps:        intPtr(5),
		Weight:      floatPtr(100),
		DurationMin: intPtr(30),
		Intensity:   "HIGH",
		WorkoutDate: now,
	}
	newWorkoutJson, err := json.Marshal(newWorkout)
	require.NoError(t, err)

	repoMock.EXPECT().
		Add(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, workout workouts.Workout) (*workouts.Workout, error) {
			assert.Equal(t, 42, workout.UserID)
			assert.Equal(t, 3, workout.ExerciseID)
			// intensity gets lowercased
			assert.Equal(t, workouts.Intensity.High, workout.Intensity)
			added := workout
			added.ID = 7
			return &added, nil
		}).Times(1)

	engineMock.EXPECT().
		OnWorkoutLogged(gomock.Any(), 42, gomock.Any()).
		DoAndReturn(func(ctx context.Context, userID int, w gamification.Workout) (*gamification.WorkoutLoggedResult, error) {
			assert.Equal(t, 7, w.ID)
			assert.Equal(t, 42, w.UserID)
			assert.Equal(t, workouts.Intensity.High, w.Intensity)
			return &gamification.WorkoutLoggedResult{
				XPAwarded:       36,
				TotalXP:         36,
				NewLevel:        1,
				NewStreak:       1,
				StreakContinued: false,
			}, nil
		}).Times(1)

	rec := httptest.NewRecorder()
	req, err := http.NewRequest("POST", "/workouts", bytes.NewReader(newWorkoutJson))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req = req.WithContext(auth.ContextWithUserID(req.Context(), 42))

	h.HandleAdd(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp workouts.AddWorkoutResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Workout)
	assert.Equal(t, 7, resp.Workout.ID)
	require.NotNil(t, resp.Gamification)
	assert.Equal(t, 36, resp.Gamification.XPAwarded)
	assert.Equal(t, 1, resp.Gamification.NewStreak)
}

func TestHandler_HandleAdd_xpCounterIncludesAchievementRewards(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockworkoutsRepo(ctrl)
	engineMock := NewMockprogressEngine(ctrl)
	metricsManager := metrics.NewTestManager()
	h := workouts.NewHandler(repoMock, engineMock, metricsManager)

	newWorkoutJson, err := json.Marshal(workouts.Workout{
		ExerciseID:  3,
		DurationMin: intPtr(30),
		Intensity:   "high",
		WorkoutDate: time.Now(),
	})
	require.NoError(t, err)

	repoMock.EXPECT().
		Add(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, workout workouts.Workout) (*workouts.Workout, error) {
			added := workout
			added.ID = 7
			return &added, nil
		})

	engineMock.EXPECT().
		OnWorkoutLogged(gomock.Any(), 42, gomock.Any()).
		Return(&gamification.WorkoutLoggedResult{
			XPAwarded:     36,
			StreakBonusXP: 10,
			NewAchievements: []gamification.Achievement{
				{ID: 1, Name: "First Steps", XPReward: 25},
				{ID: 2, Name: "Consistency", XPReward: 50},
			},
		}, nil)

	rec := httptest.NewRecorder()
	req, err := http.NewRequest("POST", "/workouts", bytes.NewReader(newWorkoutJson))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req = req.WithContext(auth.ContextWithUserID(req.Context(), 42))

	h.HandleAdd(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	// 36 workout + 10 streak bonus + 25 + 50 achievement rewards
	assert.Equal(t, float64(121), testutil.ToFloat64(metricsManager.CounterXPAwarded))
	assert.Equal(t, float64(2), testutil.ToFloat64(metricsManager.CounterAchievementsUnlocked))
}

func TestHandler_HandleAdd_missingExercise(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockworkoutsRepo(ctrl)
	engineMock := NewMockprogressEngine(ctrl)
	h := workouts.NewHandler(repoMock, engineMock, metrics.NewTestManager())

	newWorkoutJson, err := json.Marshal(workouts.Workout{Sets: intPtr(3)})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req, err := http.NewRequest("POST", "/workouts", bytes.NewReader(newWorkoutJson))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req = req.WithContext(auth.ContextWithUserID(req.Context(), 42))

	h.HandleAdd(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_HandleList(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockworkoutsRepo(ctrl)
	engineMock := NewMockprogressEngine(ctrl)
	h := workouts.NewHandler(repoMock, engineMock, metrics.NewTestManager())

	repoMock.EXPECT().
		List(gomock.Any(), workouts.ListParams{UserID: 42, ExerciseID: 3}).
		Return([]workouts.Workout{
			{ID: 1, UserID: 42, ExerciseID: 3},
			{ID: 2, UserID: 42, ExerciseID: 3},
		}, nil)

	rec := httptest.NewRecorder()
	req, err := http.NewRequest("GET", "/workouts?exercise_id=3", nil)
	require.NoError(t, err)
	req = req.WithContext(auth.ContextWithUserID(req.Context(), 42))

	h.HandleList(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var list []workouts.Workout
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 2)
}

func TestHandler_HandleGet_notOwned(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockworkoutsRepo(ctrl)
	engineMock := NewMockprogressEngine(ctrl)
	h := workouts.NewHandler(repoMock, engineMock, metrics.NewTestManager())

	repoMock.EXPECT().
		Get(gomock.Any(), 7).
		Return(&workouts.Workout{ID: 7, UserID: 99}, nil)

	router := mux.NewRouter()
	h.SetupRoutes(router)

	rec := httptest.NewRecorder()
	req, err := http.NewRequest("GET", "/workouts/7", nil)
	require.NoError(t, err)
	req = req.WithContext(auth.ContextWithUserID(req.Context(), 42))

	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHandler_HandleDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockworkoutsRepo(ctrl)
	engineMock := NewMockprogressEngine(ctrl)
	h := workouts.NewHandler(repoMock, engineMock, metrics.NewTestManager())

	repoMock.EXPECT().
		Get(gomock.Any(), 7).
		Return(&workouts.Workout{ID: 7, UserID: 42}, nil)
	repoMock.EXPECT().
		Delete(gomock.Any(), 7).
		Return(nil)

	router := mux.NewRouter()
	h.SetupRoutes(router)

	rec := httptest.NewRecorder()
	req, err := http.NewRequest("DELETE", "/workouts/7", nil)
	require.NoError(t, err)
	req = req.WithContext(auth.ContextWithUserID(req.Context(), 42))

	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "deleted", rec.Body.String())
}

func TestHandler_HandleDelete_notFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockworkoutsRepo(ctrl)
	engineMock := NewMockprogressEngine(ctrl)
	h := workouts.NewHandler(repoMock, engineMock, metrics.NewTestManager())

	repoMock.EXPECT().
		Get(gomock.Any(), 7).
		Return(nil, workouts.ErrWorkoutNotFound)

	router := mux.NewRouter()
	h.SetupRoutes(router)

	rec := httptest.NewRecorder()
	req, err := http.NewRequest("DELETE", "/workouts/7", nil)
	require.NoError(t, err)
	req = req.WithContext(auth.ContextWithUserID(req.Context(), 42))

	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
