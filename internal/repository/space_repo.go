package repository

import (
	"context"

	"parking/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SpaceRepository defines data access for the parking space pool.
type SpaceRepository interface {
	// ClaimAvailable locks and returns one available space within the
	// surrounding transaction. SKIP LOCKED makes concurrent entries pick
	// distinct rows instead of queueing on the same one.
	ClaimAvailable(ctx context.Context) (*model.Space, error)
	// SetState reports the number of rows touched so callers can detect
	// an unknown space number.
	SetState(ctx context.Context, number, state string) (int64, error)
	List(ctx context.Context) ([]model.Space, error)
	CountByState(ctx context.Context, state string) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type spaceRepository struct {
	db *gorm.DB
}

func NewSpaceRepository(db *gorm.DB) SpaceRepository {
	return &spaceRepository{db: db}
}

func (r *spaceRepository) ClaimAvailable(ctx context.Context) (*model.Space, error) {
	var space model.Space
	if err := GetDB(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("state = ?", model.SpaceStateAvailable).
		Order("number ASC").
		First(&space).Error; err != nil {
		return nil, err
	}
	return &space, nil
}

func (r *spaceRepository) SetState(ctx context.Context, number, state string) (int64, error) {
	result := GetDB(ctx, r.db).
		Model(&model.Space{}).
		Where("number = ?", number).
		Update("state", state)
	return result.RowsAffected, result.Error
}

func (r *spaceRepository) List(ctx context.Context) ([]model.Space, error) {
	var spaces []model.Space
	if err := GetDB(ctx, r.db).Order("number ASC").Find(&spaces).Error; err != nil {
		return nil, err
	}
	return spaces, nil
}

func (r *spaceRepository) CountByState(ctx context.Context, state string) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).Model(&model.Space{}).Where("state = ?", state).Count(&count).Error
	return count, err
}

func (r *spaceRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).Model(&model.Space{}).Count(&count).Error
	return count, err
}
