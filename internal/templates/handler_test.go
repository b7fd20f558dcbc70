package templates_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/HARSHA8881/FitTrack/internal/auth"
	"github.com/HARSHA8881/FitTrack/internal/gamification"
	"github.com/HARSHA8881/FitTrack/internal/templates"
	"github.com/HARSHA8881/FitTrack/internal/workouts"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func intPtr(i int) *int { return &i }

func strPtr(s string) *string { return &s }

func newTestHandler(t *testing.T) (*templates.Handler, *MocktemplatesRepo, *MockworkoutsCreator, *MockprogressEngine) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repoMock := NewMocktemplatesRepo(ctrl)
	workoutsMock := NewMockworkoutsCreator(ctrl)
	engineMock := NewMockprogressEngine(ctrl)
	return templates.NewHandler(repoMock, workoutsMock, engineMock), repoMock, workoutsMock, engineMock
}

func TestHandler_HandleAdd(t *testing.T) {
	h, repoMock, _, _ := newTestHandler(t)

	newTemplate := templates.Template{
		Name:       "Push Day",
		Category:   strPtr("strength"),
		Difficulty: strPtr("intermediate"),
		Exercises: []templates.TemplateExercise{
			{ExerciseID: 1, Sets: intPtr(4), Reps: intPtr(8)},
			{ExerciseID: 3, Sets: intPtr(3), Reps: intPtr(12)},
		},
	}
	newTemplateJson, err := json.Marshal(newTemplate)
	require.NoError(t, err)

	repoMock.EXPECT().
		Add(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, template templates.Template) (*templates.Template, error) {
			assert.Equal(t, 42, template.UserID)
			assert.Equal(t, "Push Day", template.Name)
			require.Len(t, template.Exercises, 2)
			added := template
			added.ID = 5
			return &added, nil
		})

	rec := httptest.NewRecorder()
	req, err := http.NewRequest("POST", "/templates", bytes.NewReader(newTemplateJson))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req = req.WithContext(auth.ContextWithUserID(req.Context(), 42))

	h.HandleAdd(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var added templates.Template
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &added))
	assert.Equal(t, 5, added.ID)
}

func TestHandler_HandleAdd_noExercises(t *testing.T) {
	h, _, _, _ := newTestHandler(t)

	newTemplateJson, err := json.Marshal(templates.Template{Name: "Empty Plan"})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req, err := http.NewRequest("POST", "/templates", bytes.NewReader(newTemplateJson))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req = req.WithContext(auth.ContextWithUserID(req.Context(), 42))

	h.HandleAdd(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_HandleGet_privateNotOwned(t *testing.T) {
	h, repoMock, _, _ := newTestHandler(t)

	repoMock.EXPECT().
		Get(gomock.Any(), 5).
		Return(&templates.Template{ID: 5, UserID: 99, IsPublic: false}, nil)

	router := mux.NewRouter()
	h.SetupRoutes(router)

	rec := httptest.NewRecorder()
	req, err := http.NewRequest("GET", "/templates/5", nil)
	require.NoError(t, err)
	req = req.WithContext(auth.ContextWithUserID(req.Context(), 42))

	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHandler_HandleGet_publicNotOwned(t *testing.T) {
	h, repoMock, _, _ := newTestHandler(t)

	repoMock.EXPECT().
		Get(gomock.Any(), 5).
		Return(&templates.Template{ID: 5, UserID: 99, IsPublic: true, Name: "Leg Day"}, nil)

	router := mux.NewRouter()
	h.SetupRoutes(router)

	rec := httptest.NewRecorder()
	req, err := http.NewRequest("GET", "/templates/5", nil)
	require.NoError(t, err)
	req = req.WithContext(auth.ContextWithUserID(req.Context(), 42))

	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_HandleUpdate_publicButNotOwned(t *testing.T) {
	h, repoMock, _, _ := newTestHandler(t)

	// public templates of other users are usable but read-only
	repoMock.EXPECT().
		Get(gomock.Any(), 5).
		Return(&templates.Template{ID: 5, UserID: 99, IsPublic: true}, nil)

	router := mux.NewRouter()
	h.SetupRoutes(router)

	rec := httptest.NewRecorder()
	req, err := http.NewRequest("PUT", "/templates/5", bytes.NewReader([]byte(`{"name":"stolen"}`)))
	require.NoError(t, err)
	req = req.WithContext(auth.ContextWithUserID(req.Context(), 42))

	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHandler_HandleUse(t *testing.T) {
	h, repoMock, workoutsMock, engineMock := newTestHandler(t)

	repoMock.EXPECT().
		Get(gomock.Any(), 5).
		Return(&templates.Template{
			ID:       5,
			UserID:   42,
			Name:     "Push Day",
			IsPublic: false,
			Exercises: []templates.TemplateExercise{
				{ExerciseID: 1, Sets: intPtr(4), Reps: intPtr(8)},
				{ExerciseID: 3, Sets: intPtr(3), Reps: intPtr(12)},
			},
		}, nil)

	var workoutID int
	workoutsMock.EXPECT().
		Add(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, workout workouts.Workout) (*workouts.Workout, error) {
			assert.Equal(t, 42, workout.UserID)
			added := workout
			workoutID++
			added.ID = workoutID
			return &added, nil
		}).Times(2)

	repoMock.EXPECT().
		IncrementUsage(gomock.Any(), 5).
		Return(nil)

	engineMock.EXPECT().
		OnTemplateUsed(gomock.Any(), 42).
		Return(&gamification.AwardResult{Amount: 25, TotalXP: 125, Level: 2}, nil)

	router := mux.NewRouter()
	h.SetupRoutes(router)

	rec := httptest.NewRecorder()
	req, err := http.NewRequest("POST", "/templates/5/use", bytes.NewReader([]byte(`{}`)))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req = req.WithContext(auth.ContextWithUserID(req.Context(), 42))

	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp templates.UseTemplateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Workouts, 2)
	assert.Equal(t, 1, resp.Workouts[0].ExerciseID)
	assert.Equal(t, 3, resp.Workouts[1].ExerciseID)
	require.NotNil(t, resp.Gamification)
	assert.Equal(t, 25, resp.Gamification.Amount)
}

func TestHandler_HandleUse_notFound(t *testing.T) {
	h, repoMock, _, _ := newTestHandler(t)

	repoMock.EXPECT().
		Get(gomock.Any(), 5).
		Return(nil, templates.ErrTemplateNotFound)

	router := mux.NewRouter()
	h.SetupRoutes(router)

	rec := httptest.NewRecorder()
	req, err := http.NewRequest("POST", "/templates/5/use", nil)
	require.NoError(t, err)
	req = req.WithContext(auth.ContextWithUserID(req.Context(), 42))

	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_HandleList(t *testing.T) {
	h, repoMock, _, _ := newTestHandler(t)

	repoMock.EXPECT().
		List(gomock.Any(), 42).
		Return([]templates.Template{
			{ID: 1, UserID: 42, Name: "Push Day", UsageCount: 7},
			{ID: 2, UserID: 99, Name: "Community 5k", IsPublic: true, UsageCount: 3},
		}, nil)

	rec := httptest.NewRecorder()
	req, err := http.NewRequest("GET", "/templates", nil)
	require.NoError(t, err)
	req = req.WithContext(auth.ContextWithUserID(req.Context(), 42))

	h.HandleList(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var list []templates.Template
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, "Push Day", list[0].Name)
}

func TestHandler_HandleDelete_notOwned(t *testing.T) {
	h, repoMock, _, _ := newTestHandler(t)

	repoMock.EXPECT().
		Get(gomock.Any(), 5).
		Return(&templates.Template{ID: 5, UserID: 99, IsPublic: true}, nil)

	router := mux.NewRouter()
	h.SetupRoutes(router)

	rec := httptest.NewRecorder()
	req, err := http.NewRequest("DELETE", "/templates/5", nil)
	require.NoError(t, err)
	req = req.WithContext(auth.ContextWithUserID(req.Context(), 42))

	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusForbidden, rec.Code)
}
