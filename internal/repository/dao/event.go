package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrEventNotFound = errors.New("event not found")

type Event struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:200;not null"`
	Description string `gorm:"type:text;not null"`
	Date        string `gorm:"size:50;not null"`
	Rules       string `gorm:"type:text"`
	Eligibility string `gorm:"size:300"`
	ImageURL    string `gorm:"size:500"`
	CreatedAt   time.Time
}

// EventWithCount is an event row plus the number of participants
// referencing it.
type EventWithCount struct {
	Event
	ParticipantCount int64
}

const eventWithCountColumns = "events.*, " +
	"(SELECT COUNT(*) FROM participants WHERE participants.event_id = events.id) AS participant_count"

type EventDAO struct {
	db *gorm.DB
}

func NewEventDAO(db *gorm.DB) *EventDAO {
	return &EventDAO{
		db: db,
	}
}

func (d *EventDAO) Insert(ctx context.Context, event Event) (Event, error) {
	result := d.db.WithContext(ctx).Create(&event)
	if result.Error != nil {
		return Event{}, result.Error
	}

	return event, nil
}

// FindAll orders by the raw date string. Dates are free-form, so this is
// lexicographic rather than calendar order.
func (d *EventDAO) FindAll(ctx context.Context) ([]EventWithCount, error) {
	events := []EventWithCount{}

	result := d.db.WithContext(ctx).
		Table("events").
		Select(eventWithCountColumns).
		Order("events.date ASC").
		Order("events.id ASC").
		Scan(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

func (d *EventDAO) FindByID(ctx context.Context, id uint) (EventWithCount, error) {
	var events []EventWithCount

	result := d.db.WithContext(ctx).
		Table("events").
		Select(eventWithCountColumns).
		Where("events.id = ?", id).
		Limit(1).
		Scan(&events)
	if result.Error != nil {
		return EventWithCount{}, result.Error
	}
	if len(events) == 0 {
		return EventWithCount{}, ErrEventNotFound
	}

	return events[0], nil
}

func (d *EventDAO) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Event{}).Where("id = ?", id).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

func (d *EventDAO) Update(ctx context.Context, event Event) error {
	result := d.db.WithContext(ctx).
		Model(&Event{}).
		Where("id = ?", event.ID).
		Updates(map[string]interface{}{
			"name":        event.Name,
			"description": event.Description,
			"date":        event.Date,
			"rules":       event.Rules,
			"eligibility": event.Eligibility,
			"image_url":   event.ImageURL,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEventNotFound
	}

	return nil
}

// DeleteWithParticipants removes the event's participants and then the
// event. The two statements are not wrapped in a transaction: if the
// second one fails the participants stay deleted.
func (d *EventDAO) DeleteWithParticipants(ctx context.Context, id uint) error {
	db := d.db.WithContext(ctx)

	if err := db.Where("event_id = ?", id).Delete(&Participant{}).Error; err != nil {
		return err
	}

	result := db.Delete(&Event{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEventNotFound
	}

	return nil
}

func (d *EventDAO) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := d.db.WithContext(ctx).Model(&Event{}).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}
