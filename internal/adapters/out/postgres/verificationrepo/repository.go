package verificationrepo

import (
	"context"
	"errors"

	"senderplus/internal/core/domain/model/kernel"
	"senderplus/internal/core/domain/model/verification"
	"senderplus/internal/core/ports"
	"senderplus/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormVerificationCodeRepository implements VerificationCodeRepository using GORM.
type GormVerificationCodeRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormVerificationCodeRepository creates a new GORM verification code repository.
func NewGormVerificationCodeRepository(db *gorm.DB, tracker aggregateTracker) *GormVerificationCodeRepository {
	return &GormVerificationCodeRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a freshly issued code record to the database.
func (r *GormVerificationCodeRepository) Add(ctx context.Context, code *verification.Code) error {
	if err := code.Validate(); err != nil {
		return err
	}

	dto := fromDomain(code)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(code.ID().String(), code)
	return nil
}

// Update marks an existing code record as used. The guarded write makes the
// unused-to-used transition exactly-once: whichever concurrent verification
// loses the race affects zero rows and is rejected.
func (r *GormVerificationCodeRepository) Update(ctx context.Context, code *verification.Code) error {
	if err := code.Validate(); err != nil {
		return err
	}

	dto := fromDomain(code)
	result := r.db.WithContext(ctx).Model(&CodeDTO{}).
		Where("id = ? AND used = false", dto.ID).
		Update("used", dto.Used)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ports.ErrCodeAlreadyUsed
	}

	r.tracker.TrackAggregate(code.ID().String(), code)
	return nil
}

// GetLatestMatch retrieves, among all codes belonging to the account with
// the given value, the one created most recently. Earlier identical matches
// are left untouched.
func (r *GormVerificationCodeRepository) GetLatestMatch(
	ctx context.Context,
	accountID kernel.UUID,
	value string,
) (*verification.Code, error) {
	if err := accountID.Validate(); err != nil {
		return nil, err
	}

	var dto CodeDTO
	err := r.db.WithContext(ctx).
		Where("account_id = ? AND value = ?", accountID.Bytes(), value).
		Order("created_at DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("verification code", accountID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
