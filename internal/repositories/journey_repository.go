package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	dbm "vibego/internal/models/db_models"
)

type JourneyRepository interface {
	Insert(ctx context.Context, journey *dbm.Journey) error
	GetByID(ctx context.Context, journeyID string, accountID uuid.UUID) (*dbm.Journey, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID, page int, pageSize int) ([]dbm.Journey, error)
	UpdateCompletedItems(ctx context.Context, journeyID string, accountID uuid.UUID, items []string) error
	UpdateItinerary(ctx context.Context, journey *dbm.Journey) error
	Delete(ctx context.Context, journeyID string, accountID uuid.UUID) error
}

type journeyRepository struct {
	db *gorm.DB
}

func NewJourneyRepository(db *gorm.DB) JourneyRepository {
	return &journeyRepository{db: db}
}

func (r *journeyRepository) Insert(ctx context.Context, journey *dbm.Journey) error {
	return r.db.WithContext(ctx).Create(journey).Error
}

func (r *journeyRepository) GetByID(ctx context.Context, journeyID string, accountID uuid.UUID) (*dbm.Journey, error) {
	var journey dbm.Journey
	err := r.db.WithContext(ctx).
		Where("id = ? AND account_id = ?", journeyID, accountID).
		First(&journey).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &journey, nil
}

func (r *journeyRepository) ListByAccount(ctx context.Context, accountID uuid.UUID, page int, pageSize int) ([]dbm.Journey, error) {
	var journeys []dbm.Journey
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&journeys).Error
	if err != nil {
		return nil, err
	}
	return journeys, nil
}

// UpdateCompletedItems replaces the completion overlay without touching the
// itinerary content. Last write wins.
func (r *journeyRepository) UpdateCompletedItems(ctx context.Context, journeyID string, accountID uuid.UUID, items []string) error {
	result := r.db.WithContext(ctx).
		Model(&dbm.Journey{}).
		Where("id = ? AND account_id = ?", journeyID, accountID).
		Update("completed_items", pq.StringArray(items))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateItinerary stores regenerated content for an existing journey. The
// completion overlay column is deliberately left out of the update.
func (r *journeyRepository) UpdateItinerary(ctx context.Context, journey *dbm.Journey) error {
	result := r.db.WithContext(ctx).
		Model(&dbm.Journey{}).
		Where("id = ? AND account_id = ?", journey.ID, journey.AccountID).
		Updates(map[string]interface{}{
			"title":          journey.Title,
			"destination":    journey.Destination,
			"start_date":     journey.StartDate,
			"end_date":       journey.EndDate,
			"schema_version": journey.SchemaVersion,
			"itinerary":      journey.Itinerary,
			"soul_profile":   journey.SoulProfile,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *journeyRepository) Delete(ctx context.Context, journeyID string, accountID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND account_id = ?", journeyID, accountID).
		Delete(&dbm.Journey{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
