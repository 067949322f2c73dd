package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/ukydev/plant-maintenance/internal/db"
	"github.com/ukydev/plant-maintenance/internal/models"
)

type fakeAudits struct {
	createFn     func(ctx context.Context, audit models.Audit) (string, error)
	listFn       func(ctx context.Context) ([]models.Audit, error)
	getFn        func(ctx context.Context, id string) (*models.Audit, error)
	addFindingFn func(ctx context.Context, id string, finding models.Finding) error
	completeFn   func(ctx context.Context, id string, score float64, recommendation string) error
	updateFn     func(ctx context.Context, id string, update bson.M) error
}

func (f *fakeAudits) Create(ctx context.Context, audit models.Audit) (string, error) {
	return f.createFn(ctx, audit)
}

func (f *fakeAudits) List(ctx context.Context) ([]models.Audit, error) {
	return f.listFn(ctx)
}

func (f *fakeAudits) Get(ctx context.Context, id string) (*models.Audit, error) {
	return f.getFn(ctx, id)
}

func (f *fakeAudits) AddFinding(ctx context.Context, id string, finding models.Finding) error {
	return f.addFindingFn(ctx, id, finding)
}

func (f *fakeAudits) Complete(ctx context.Context, id string, score float64, recommendation string) error {
	return f.completeFn(ctx, id, score, recommendation)
}

func (f *fakeAudits) Update(ctx context.Context, id string, update bson.M) error {
	return f.updateFn(ctx, id, update)
}

func auditRouter(fake *fakeAudits) *gin.Engine {
	router := gin.New()
	RegisterRoutes(router, &Handlers{Audits: NewAuditHandler(fake)})
	return router
}

func TestAuditAddFinding(t *testing.T) {
	var gotFinding models.Finding
	fake := &fakeAudits{
		addFindingFn: func(ctx context.Context, id string, finding models.Finding) error {
			gotFinding = finding
			return nil
		},
	}
	w := perform(auditRouter(fake), http.MethodPost, "/api/audits/64b0c0ffee0000000000eeee/findings",
		`{"title":"Guard missing on conveyor","severity":"high","description":"side guard removed"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Finding added", decode(t, w).Message)
	assert.Equal(t, "Guard missing on conveyor", gotFinding.Title)
	assert.Equal(t, "high", gotFinding.Severity)
}

func TestAuditComplete(t *testing.T) {
	var gotScore float64
	var gotRecommendation string
	fake := &fakeAudits{
		completeFn: func(ctx context.Context, id string, score float64, recommendation string) error {
			gotScore = score
			gotRecommendation = recommendation
			return nil
		},
	}
	w := perform(auditRouter(fake), http.MethodPut, "/api/audits/64b0c0ffee0000000000eeee/complete",
		`{"score":87.5,"recommendation":"schedule guard refit"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Audit completed", decode(t, w).Message)
	assert.Equal(t, 87.5, gotScore)
	assert.Equal(t, "schedule guard refit", gotRecommendation)
}

func TestAuditCompleteNotFound(t *testing.T) {
	fake := &fakeAudits{
		completeFn: func(ctx context.Context, id string, score float64, recommendation string) error {
			return db.ErrNotFound
		},
	}
	w := perform(auditRouter(fake), http.MethodPut, "/api/audits/64b0c0ffee0000000000eeee/complete",
		`{"score":50}`)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Audit not found", decode(t, w).Error)
}
