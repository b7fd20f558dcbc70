package templates

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/HARSHA8881/FitTrack/internal/auth"
	"github.com/HARSHA8881/FitTrack/internal/gamification"
	"github.com/HARSHA8881/FitTrack/internal/telemetry/tracing"
	"github.com/HARSHA8881/FitTrack/internal/workouts"
	"github.com/HARSHA8881/FitTrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=templates_test

type templatesRepo interface {
	List(ctx context.Context, userID int) ([]Template, error)
	ListOwn(ctx context.Context, userID int) ([]Template, error)
	Get(ctx context.Context, id int) (*Template, error)
	Add(ctx context.Context, template Template) (*Template, error)
	Update(ctx context.Context, template Template) error
	Delete(ctx context.Context, id int) error
	IncrementUsage(ctx context.Context, id int) error
}

type workoutsCreator interface {
	Add(ctx context.Context, workout workouts.Workout) (*workouts.Workout, error)
}

type progressEngine interface {
	OnTemplateUsed(ctx context.Context, userID int) (*gamification.AwardResult, error)
}

type Handler struct {
	repo         templatesRepo
	workoutsRepo workoutsCreator
	engine       progressEngine
}

func NewHandler(repo templatesRepo, workoutsRepo workoutsCreator, engine progressEngine) *Handler {
	return &Handler{
		repo:         repo,
		workoutsRepo: workoutsRepo,
		engine:       engine,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/templates", handler.HandleList).Methods("GET", "OPTIONS").Name("templates-list")
	router.HandleFunc("/templates", handler.HandleAdd).Methods("POST", "OPTIONS").Name("templates-add")
	// "my" before the id route, mux matches in registration order
	router.HandleFunc("/templates/my", handler.HandleListOwn).Methods("GET", "OPTIONS").Name("templates-list-own")
	router.HandleFunc("/templates/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("templates-get")
	router.HandleFunc("/templates/{id}", handler.HandleUpdate).Methods("PUT", "OPTIONS").Name("templates-update")
	router.HandleFunc("/templates/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("templates-delete")
	router.HandleFunc("/templates/{id}/use", handler.HandleUse).Methods("POST", "OPTIONS").Name("templates-use")
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	list, err := handler.repo.List(ctx, userID)
	if err != nil {
		log.Errorf("list templates for user %d: %s", userID, err)
		http.Error(w, "list templates failed", http.StatusInternalServerError)
		return
	}
	writeTemplatesJson(w, list)
}

func (handler *Handler) HandleListOwn(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.listOwn")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	list, err := handler.repo.ListOwn(ctx, userID)
	if err != nil {
		log.Errorf("list own templates for user %d: %s", userID, err)
		http.Error(w, "list templates failed", http.StatusInternalServerError)
		return
	}
	writeTemplatesJson(w, list)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	template, ok := handler.accessibleTemplate(ctx, w, r, userID)
	if !ok {
		return
	}

	templateJson, err := json.Marshal(template)
	if err != nil {
		log.Errorf("marshal template: %s", err)
		http.Error(w, "get template failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, templateJson, http.StatusOK)
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.add")
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

	var template Template
	if err := json.NewDecoder(r.Body).Decode(&template); err != nil {
		log.Errorf("new template, unmarshal json params: %s", err)
		http.Error(w, "add template failed", http.StatusBadRequest)
		return
	}

	if template.Name == "" || len(template.Exercises) == 0 {
		http.Error(w, "error, template name and exercises are required", http.StatusBadRequest)
		return
	}
	for _, te := range template.Exercises {
		if te.ExerciseID <= 0 {
			http.Error(w, "error, exercise id is required", http.StatusBadRequest)
			return
		}
	}

	template.UserID = userID
	added, err := handler.repo.Add(ctx, template)
	if err != nil {
		log.Errorf("add template for user %d: %s", userID, err)
		http.Error(w, "add template failed", http.StatusInternalServerError)
		return
	}

	span.SetAttributes(attribute.Int("template.id", added.ID))
	log.Debugf("new template added: %s [id %d]", added.Name, added.ID)

	addedJson, err := json.Marshal(added)
	if err != nil {
		log.Errorf("marshal added template: %s", err)
		http.Error(w, "add template failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedJson, http.StatusCreated)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.update")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	template, ok := handler.ownedTemplate(ctx, w, r, userID)
	if !ok {
		return
	}

	var update struct {
		Name             string             `json:"name"`
		Description      *string            `json:"description"`
		Category         *string            `json:"category"`
		Difficulty       *string            `json:"difficulty"`
		EstimatedTimeMin *int               `json:"estimatedTime"`
		IsPublic         *bool              `json:"isPublic"`
		Exercises        []TemplateExercise `json:"exercises"`
	}
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Errorf("update template, unmarshal json params: %s", err)
		http.Error(w, "update template failed", http.StatusBadRequest)
		return
	}

	// only the provided fields change, everything else stays
	if update.Name != "" {
		template.Name = update.Name
	}
	if update.Description != nil {
		template.Description = update.Description
	}
	if update.Category != nil {
		template.Category = update.Category
	}
	if update.Difficulty != nil {
		template.Difficulty = update.Difficulty
	}
	if update.EstimatedTimeMin != nil {
		template.EstimatedTimeMin = update.EstimatedTimeMin
	}
	if update.IsPublic != nil {
		template.IsPublic = *update.IsPublic
	}
	if update.Exercises != nil {
		for _, te := range update.Exercises {
			if te.ExerciseID <= 0 {
				http.Error(w, "error, exercise id is required", http.StatusBadRequest)
				return
			}
		}
		template.Exercises = update.Exercises
	}

	if err := handler.repo.Update(ctx, *template); err != nil {
		log.Errorf("update template %d: %s", template.ID, err)
		http.Error(w, "update template failed", http.StatusInternalServerError)
		return
	}

	updated, err := handler.repo.Get(ctx, template.ID)
	if err != nil {
		log.Errorf("get updated template %d: %s", template.ID, err)
		http.Error(w, "update template failed", http.StatusInternalServerError)
		return
	}

	updatedJson, err := json.Marshal(updated)
	if err != nil {
		log.Errorf("marshal updated template: %s", err)
		http.Error(w, "update template failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, updatedJson, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.delete")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	template, ok := handler.ownedTemplate(ctx, w, r, userID)
	if !ok {
		return
	}

	if err := handler.repo.Delete(ctx, template.ID); err != nil {
		log.Errorf("delete template %d: %s", template.ID, err)
		http.Error(w, "delete template failed", http.StatusInternalServerError)
		return
	}

	log.Debugf("template %d deleted by user %d", template.ID, userID)
	pkg.WriteTextResponseOK(w, "deleted")
}

// UseTemplateResponse carries the workouts created from the template
// plus the flat XP awarded for using it.
type UseTemplateResponse struct {
	Workouts     []workouts.Workout        `json:"workouts"`
	Gamification *gamification.AwardResult `json:"gamification"`
}

func (handler *Handler) HandleUse(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.use")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	template, ok := handler.accessibleTemplate(ctx, w, r, userID)
	if !ok {
		return
	}

	workoutDate := time.Now()
	if r.Body != nil {
		var params struct {
			WorkoutDate *time.Time `json:"workoutDate"`
		}
		// the body is optional, decode errors on an empty body are fine
		if err := json.NewDecoder(r.Body).Decode(&params); err == nil && params.WorkoutDate != nil {
			workoutDate = *params.WorkoutDate
		}
	}

	created := make([]workouts.Workout, 0, len(template.Exercises))
	for _, te := range template.Exercises {
		added, err := handler.workoutsRepo.Add(ctx, workouts.Workout{
			UserID:      userID,
			ExerciseID:  te.ExerciseID,
			Sets:        te.Sets,
			Reps:        te.Reps,
			DurationMin: te.DurationMin,
			Notes:       te.Notes,
			WorkoutDate: workoutDate,
		})
		if err != nil {
			log.Errorf("use template %d, add workout for exercise %d: %s", template.ID, te.ExerciseID, err)
			http.Error(w, "use template failed", http.StatusInternalServerError)
			return
		}
		created = append(created, *added)
	}

	if err := handler.repo.IncrementUsage(ctx, template.ID); err != nil {
		// workouts are already created, count drift is acceptable
		log.Errorf("increment usage of template %d: %s", template.ID, err)
	}

	award, err := handler.engine.OnTemplateUsed(ctx, userID)
	if err != nil {
		log.Errorf("template award for user %d: %s", userID, err)
		http.Error(w, "workouts created, template award failed", http.StatusInternalServerError)
		return
	}

	span.SetAttributes(attribute.Int("template.id", template.ID))
	respJson, err := json.Marshal(UseTemplateResponse{
		Workouts:     created,
		Gamification: award,
	})
	if err != nil {
		log.Errorf("marshal use template response: %s", err)
		http.Error(w, "use template failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusCreated)
}

// accessibleTemplate fetches the template from the path id and verifies
// the user may view it (owner or public), writing the error response otherwise.
func (handler *Handler) accessibleTemplate(
	ctx context.Context,
	w http.ResponseWriter,
	r *http.Request,
	userID int,
) (*Template, bool) {
	template, ok := handler.templateFromPath(ctx, w, r)
	if !ok {
		return nil, false
	}
	if !template.AccessibleBy(userID) {
		http.Error(w, "not authorized", http.StatusForbidden)
		return nil, false
	}
	return template, true
}

// ownedTemplate is like accessibleTemplate but requires ownership,
// public templates of other users stay read-only.
func (handler *Handler) ownedTemplate(
	ctx context.Context,
	w http.ResponseWriter,
	r *http.Request,
	userID int,
) (*Template, bool) {
	template, ok := handler.templateFromPath(ctx, w, r)
	if !ok {
		return nil, false
	}
	if template.UserID != userID {
		http.Error(w, "not authorized", http.StatusForbidden)
		return nil, false
	}
	return template, true
}

func (handler *Handler) templateFromPath(
	ctx context.Context,
	w http.ResponseWriter,
	r *http.Request,
) (*Template, bool) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, template id NaN", http.StatusBadRequest)
		return nil, false
	}

	template, err := handler.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrTemplateNotFound) {
			http.Error(w, "template not found", http.StatusNotFound)
			return nil, false
		}
		log.Errorf("get template %d: %s", id, err)
		http.Error(w, "get template failed", http.StatusInternalServerError)
		return nil, false
	}
	return template, true
}

func writeTemplatesJson(w http.ResponseWriter, list []Template) {
	listJson, err := json.Marshal(list)
	if err != nil {
		log.Errorf("marshal templates: %s", err)
		http.Error(w, "list templates failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listJson, http.StatusOK)
}
