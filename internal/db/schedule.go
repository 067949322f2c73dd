package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ukydev/plant-maintenance/internal/models"
)

// ScheduleStore wraps the maintenance_schedules collection.
type ScheduleStore struct {
	coll *mongo.Collection
}

// NewScheduleStore creates a schedule store backed by the given database.
func NewScheduleStore(database *mongo.Database) *ScheduleStore {
	return &ScheduleStore{coll: database.Collection(CollSchedules)}
}

// frequencyDays maps a schedule frequency to a fixed day count. The mapping
// is a deliberate approximation, not calendar-aware.
var frequencyDays = map[string]int{
	"daily":     1,
	"weekly":    7,
	"monthly":   30,
	"quarterly": 90,
	"yearly":    365,
}

// nextDue computes the next due date after a completion at the given time.
// Unknown frequencies fall back to 30 days.
func nextDue(frequency string, frequencyValue int, from time.Time) time.Time {
	days, ok := frequencyDays[frequency]
	if !ok {
		days = 30
	}
	if frequencyValue < 1 {
		frequencyValue = 1
	}
	return from.AddDate(0, 0, days*frequencyValue)
}

// Create inserts a new schedule and returns its id in hex form.
// next_scheduled is initialized to the scheduled date.
func (s *ScheduleStore) Create(ctx context.Context, schedule models.MaintenanceSchedule) (string, error) {
	now := time.Now().UTC()
	if schedule.FrequencyValue == 0 {
		schedule.FrequencyValue = 1
	}
	if schedule.Status == "" {
		schedule.Status = "scheduled"
	}
	if schedule.TaskList == nil {
		schedule.TaskList = []string{}
	}
	schedule.ID = primitive.NilObjectID
	schedule.LastCompleted = nil
	schedule.NextScheduled = schedule.ScheduledDate
	schedule.CreatedAt = now
	schedule.UpdatedAt = now

	res, err := s.coll.InsertOne(ctx, schedule)
	if err != nil {
		return "", err
	}
	oid, _ := res.InsertedID.(primitive.ObjectID)
	return oid.Hex(), nil
}

// List returns every schedule, soonest due first.
func (s *ScheduleStore) List(ctx context.Context) ([]models.MaintenanceSchedule, error) {
	cursor, err := s.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "next_scheduled", Value: 1}}))
	if err != nil {
		return nil, err
	}
	schedules := []models.MaintenanceSchedule{}
	if err := cursor.All(ctx, &schedules); err != nil {
		return nil, err
	}
	return schedules, nil
}

// Get returns one schedule by id, or ErrNotFound.
func (s *ScheduleStore) Get(ctx context.Context, id string) (*models.MaintenanceSchedule, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var schedule models.MaintenanceSchedule
	if err := s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&schedule); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &schedule, nil
}

// Upcoming returns schedules due within the given number of days that are
// still actionable, soonest first.
func (s *ScheduleStore) Upcoming(ctx context.Context, days int) ([]models.MaintenanceSchedule, error) {
	end := time.Now().UTC().AddDate(0, 0, days)
	cursor, err := s.coll.Find(ctx, bson.M{
		"next_scheduled": bson.M{"$lte": end},
		"status":         bson.M{"$in": bson.A{"scheduled", "overdue"}},
	}, options.Find().SetSort(bson.D{{Key: "next_scheduled", Value: 1}}))
	if err != nil {
		return nil, err
	}
	schedules := []models.MaintenanceSchedule{}
	if err := cursor.All(ctx, &schedules); err != nil {
		return nil, err
	}
	return schedules, nil
}

// completionUpdate builds the field updates for marking a schedule complete
// at the given time. A recurring schedule immediately rolls over:
// next_scheduled advances by the frequency interval and the status resets to
// scheduled, so recurring schedules never rest in completed state. A
// non-recurring schedule stays completed permanently and its next_scheduled
// is left untouched.
func completionUpdate(schedule *models.MaintenanceSchedule, now time.Time) bson.M {
	update := bson.M{
		"status":         "completed",
		"last_completed": now,
		"updated_at":     now,
	}
	if schedule.IsRecurring {
		update["next_scheduled"] = nextDue(schedule.Frequency, schedule.FrequencyValue, now)
		update["status"] = "scheduled"
	}
	return update
}

// MarkCompleted records a schedule completion.
func (s *ScheduleStore) MarkCompleted(ctx context.Context, id string) error {
	schedule, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	update := completionUpdate(schedule, time.Now().UTC())

	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": update})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Update merges the given partial document into the schedule.
func (s *ScheduleStore) Update(ctx context.Context, id string, update bson.M) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": sanitizeUpdate(update)})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
