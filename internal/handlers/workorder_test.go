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

type fakeWorkOrders struct {
	createFn       func(ctx context.Context, order models.WorkOrder) (string, error)
	listFn         func(ctx context.Context, filter db.WorkOrderFilter) ([]models.WorkOrder, error)
	getFn          func(ctx context.Context, id string) (*models.WorkOrder, error)
	updateFn       func(ctx context.Context, id string, update bson.M) error
	updateStatusFn func(ctx context.Context, id, status string) error
	addNoteFn      func(ctx context.Context, id, content, author string) error
	deleteFn       func(ctx context.Context, id string) error
}

func (f *fakeWorkOrders) Create(ctx context.Context, order models.WorkOrder) (string, error) {
	return f.createFn(ctx, order)
}

func (f *fakeWorkOrders) List(ctx context.Context, filter db.WorkOrderFilter) ([]models.WorkOrder, error) {
	return f.listFn(ctx, filter)
}

func (f *fakeWorkOrders) Get(ctx context.Context, id string) (*models.WorkOrder, error) {
	return f.getFn(ctx, id)
}

func (f *fakeWorkOrders) Update(ctx context.Context, id string, update bson.M) error {
	return f.updateFn(ctx, id, update)
}

func (f *fakeWorkOrders) UpdateStatus(ctx context.Context, id, status string) error {
	return f.updateStatusFn(ctx, id, status)
}

func (f *fakeWorkOrders) AddNote(ctx context.Context, id, content, author string) error {
	return f.addNoteFn(ctx, id, content, author)
}

func (f *fakeWorkOrders) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

func workOrderRouter(fake *fakeWorkOrders) *gin.Engine {
	router := gin.New()
	RegisterRoutes(router, &Handlers{WorkOrders: NewWorkOrderHandler(fake)})
	return router
}

func TestWorkOrderListForwardsFilters(t *testing.T) {
	var gotFilter db.WorkOrderFilter
	fake := &fakeWorkOrders{
		listFn: func(ctx context.Context, filter db.WorkOrderFilter) ([]models.WorkOrder, error) {
			gotFilter = filter
			return []models.WorkOrder{}, nil
		},
	}
	w := perform(workOrderRouter(fake), http.MethodGet,
		"/api/work-orders?status=open&priority=high&machine_id=64b0c0ffee0000000000cccc", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "open", gotFilter.Status)
	assert.Equal(t, "high", gotFilter.Priority)
	assert.Equal(t, "64b0c0ffee0000000000cccc", gotFilter.MachineID)
}

func TestWorkOrderCreate(t *testing.T) {
	fake := &fakeWorkOrders{
		createFn: func(ctx context.Context, order models.WorkOrder) (string, error) {
			return "64b0c0ffee0000000000dddd", nil
		},
	}
	w := perform(workOrderRouter(fake), http.MethodPost, "/api/work-orders",
		`{"title":"Replace spindle bearing","machine_id":"64b0c0ffee0000000000cccc","priority":"high"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	data, ok := decode(t, w).Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "64b0c0ffee0000000000dddd", data["work_order_id"])
}

func TestWorkOrderUpdateStatus(t *testing.T) {
	var gotStatus string
	fake := &fakeWorkOrders{
		updateStatusFn: func(ctx context.Context, id, status string) error {
			gotStatus = status
			return nil
		},
	}
	w := perform(workOrderRouter(fake), http.MethodPut, "/api/work-orders/64b0c0ffee0000000000dddd/status",
		`{"status":"in_progress"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Status updated", decode(t, w).Message)
	assert.Equal(t, "in_progress", gotStatus)
}

func TestWorkOrderAddNote(t *testing.T) {
	var gotNote, gotAuthor string
	fake := &fakeWorkOrders{
		addNoteFn: func(ctx context.Context, id, content, author string) error {
			gotNote = content
			gotAuthor = author
			return nil
		},
	}
	w := perform(workOrderRouter(fake), http.MethodPost, "/api/work-orders/64b0c0ffee0000000000dddd/notes",
		`{"note":"waiting on parts","author":"j.doe"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Note added", decode(t, w).Message)
	assert.Equal(t, "waiting on parts", gotNote)
	assert.Equal(t, "j.doe", gotAuthor)
}

func TestWorkOrderUpdateStatusNotFound(t *testing.T) {
	fake := &fakeWorkOrders{
		updateStatusFn: func(ctx context.Context, id, status string) error {
			return db.ErrNotFound
		},
	}
	w := perform(workOrderRouter(fake), http.MethodPut, "/api/work-orders/64b0c0ffee0000000000dddd/status",
		`{"status":"completed"}`)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Work order not found", decode(t, w).Error)
}
