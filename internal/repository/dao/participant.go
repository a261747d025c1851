package dao

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

var ErrParticipantNotFound = errors.New("participant not found")

type Participant struct {
	ID           uint      `gorm:"primaryKey"`
	Name         string    `gorm:"size:200;not null"`
	Email        string    `gorm:"size:200;not null;index:idx_participants_email_event"`
	Phone        string    `gorm:"size:20;not null"`
	College      string    `gorm:"size:300;not null"`
	EventID      uint      `gorm:"not null;index:idx_participants_email_event"`
	Event        *Event    `gorm:"foreignKey:EventID"`
	RegisteredAt time.Time `gorm:"not null;index"`
}

// ParticipantWithEvent is a participant row plus the name of its event,
// empty when the event row is gone.
type ParticipantWithEvent struct {
	Participant
	EventName string
}

const participantWithEventColumns = "participants.*, COALESCE(events.name, '') AS event_name"

type ParticipantDAO struct {
	db *gorm.DB
}

func NewParticipantDAO(db *gorm.DB) *ParticipantDAO {
	return &ParticipantDAO{
		db: db,
	}
}

func (d *ParticipantDAO) Insert(ctx context.Context, participant Participant) (Participant, error) {
	result := d.db.WithContext(ctx).Create(&participant)
	if result.Error != nil {
		if isForeignKeyViolation(result.Error) {
			return Participant{}, ErrEventNotFound
		}

		return Participant{}, result.Error
	}

	return participant, nil
}

func (d *ParticipantDAO) joined(ctx context.Context) *gorm.DB {
	return d.db.WithContext(ctx).
		Table("participants").
		Select(participantWithEventColumns).
		Joins("LEFT JOIN events ON events.id = participants.event_id")
}

func (d *ParticipantDAO) FindByID(ctx context.Context, id uint) (ParticipantWithEvent, error) {
	var participants []ParticipantWithEvent

	result := d.joined(ctx).Where("participants.id = ?", id).Limit(1).Scan(&participants)
	if result.Error != nil {
		return ParticipantWithEvent{}, result.Error
	}
	if len(participants) == 0 {
		return ParticipantWithEvent{}, ErrParticipantNotFound
	}

	return participants[0], nil
}

// FindAll returns participants newest first, restricted to one event when
// eventID is non-nil.
func (d *ParticipantDAO) FindAll(ctx context.Context, eventID *uint) ([]ParticipantWithEvent, error) {
	participants := []ParticipantWithEvent{}

	query := d.joined(ctx)
	if eventID != nil {
		query = query.Where("participants.event_id = ?", *eventID)
	}

	result := query.
		Order("participants.registered_at DESC").
		Order("participants.id DESC").
		Scan(&participants)
	if result.Error != nil {
		return nil, result.Error
	}

	return participants, nil
}

func (d *ParticipantDAO) ExistsForEvent(ctx context.Context, email string, eventID uint) (bool, error) {
	var count int64

	result := d.db.WithContext(ctx).
		Model(&Participant{}).
		Where("email = ? AND event_id = ?", email, eventID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

func (d *ParticipantDAO) Update(ctx context.Context, participant Participant) error {
	result := d.db.WithContext(ctx).
		Model(&Participant{}).
		Where("id = ?", participant.ID).
		Updates(map[string]interface{}{
			"name":     participant.Name,
			"email":    participant.Email,
			"phone":    participant.Phone,
			"college":  participant.College,
			"event_id": participant.EventID,
		})
	if result.Error != nil {
		if isForeignKeyViolation(result.Error) {
			return ErrEventNotFound
		}

		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrParticipantNotFound
	}

	return nil
}

func (d *ParticipantDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Participant{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrParticipantNotFound
	}

	return nil
}

func (d *ParticipantDAO) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := d.db.WithContext(ctx).Model(&Participant{}).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

// CountColleges counts distinct college strings, compared exactly.
func (d *ParticipantDAO) CountColleges(ctx context.Context) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).
		Model(&Participant{}).
		Distinct("college").
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

// isForeignKeyViolation recognises a missing parent event on both
// supported stores.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.ForeignKeyViolation
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
	}

	return false
}
