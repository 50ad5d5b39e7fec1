// Package verificationrepo provides data transfer objects and mapping
// functions for verification code persistence. Code records are append-only
// except for the unused-to-used transition; rows are never deleted.
package verificationrepo

import (
	"time"

	"senderplus/internal/core/domain/model/kernel"
	"senderplus/internal/core/domain/model/verification"

	"github.com/google/uuid"
)

// CodeDTO represents the database structure for persisting verification
// codes. The composite index supports the latest-match lookup performed
// during verification.
type CodeDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountID uuid.UUID `gorm:"type:uuid;index:idx_codes_account_value"`
	Value     string    `gorm:"type:varchar(6);index:idx_codes_account_value;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime:false"`
	ExpiresAt time.Time
	Used      bool `gorm:"not null;default:false"`
}

// TableName specifies the database table name for verification code entities.
func (CodeDTO) TableName() string {
	return "verification_codes"
}

// fromDomain converts a verification code entity to its database representation.
func fromDomain(code *verification.Code) CodeDTO {
	return CodeDTO{
		ID:        code.ID().Bytes(),
		AccountID: code.AccountID().Bytes(),
		Value:     code.Value(),
		CreatedAt: code.CreatedAt(),
		ExpiresAt: code.ExpiresAt(),
		Used:      code.IsUsed(),
	}
}

// toDomain converts a database DTO to a verification code entity.
func toDomain(dto CodeDTO) (*verification.Code, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	accountID, err := kernel.UUIDFromBytes(dto.AccountID[:])
	if err != nil {
		return nil, err
	}

	return verification.RestoreCode(
		id,
		accountID,
		dto.Value,
		dto.CreatedAt,
		dto.ExpiresAt,
		dto.Used,
	)
}
