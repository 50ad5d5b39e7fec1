package queries

import (
	"context"
	"database/sql"
	"time"

	"senderplus/internal/core/domain/model/parcel"
	"senderplus/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TrackParcelQueryResponse is the full public view of one parcel, including
// both the raw status key and its human-readable label. The password-free,
// aggregate-free shape is what the HTTP layer serializes verbatim.
type TrackParcelQueryResponse struct {
	TrackingID       string           `json:"tracking_id"`
	SenderName       string           `json:"sender_name"`
	SenderPhone      string           `json:"sender_phone"`
	SenderEmail      string           `json:"sender_email,omitempty"`
	SenderAddress    string           `json:"sender_address"`
	RecipientName    string           `json:"recipient_name"`
	RecipientPhone   string           `json:"recipient_phone"`
	RecipientEmail   string           `json:"recipient_email,omitempty"`
	RecipientAddress string           `json:"recipient_address"`
	PackageName      string           `json:"package_name"`
	PackageType      string           `json:"package_type"`
	Weight           decimal.Decimal  `json:"weight"`
	Value            *decimal.Decimal `json:"value,omitempty"`
	Description      string           `json:"description"`
	PhotoURL         string           `json:"photo_url,omitempty"`
	Status           string           `json:"status"`
	StatusDisplay    string           `json:"status_display"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// TrackParcelQueryHandler serves the public tracking lookup by reading the
// parcel projection directly from the database.
type TrackParcelQueryHandler struct {
	db *gorm.DB
}

// NewTrackParcelQueryHandler creates a handler for tracking lookups.
func NewTrackParcelQueryHandler(db *gorm.DB) TrackParcelQueryHandler {
	return TrackParcelQueryHandler{db: db}
}

// Handle executes the lookup. Returns an errs.ObjectNotFoundError when no
// parcel carries the requested tracking ID.
func (h TrackParcelQueryHandler) Handle(
	ctx context.Context,
	query TrackParcelQuery,
) (TrackParcelQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackParcelQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			tracking_id,
			sender_name,
			sender_phone,
			sender_email,
			sender_address,
			recipient_name,
			recipient_phone,
			recipient_email,
			recipient_address,
			package_name,
			package_type,
			weight,
			value,
			description,
			photo_url,
			status,
			created_at,
			updated_at
		FROM parcels
		WHERE tracking_id = ?
	`, query.TrackingID().String()).Rows()
	if err != nil {
		return TrackParcelQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		return TrackParcelQueryResponse{}, errs.NewObjectNotFoundError("trackingID", query.TrackingID().String())
	}

	var (
		resp                                      TrackParcelQueryResponse
		senderEmail, recipientEmail, descr, photo sql.NullString
		value                                     decimal.NullDecimal
	)

	if err = rows.Scan(
		&resp.TrackingID,
		&resp.SenderName,
		&resp.SenderPhone,
		&senderEmail,
		&resp.SenderAddress,
		&resp.RecipientName,
		&resp.RecipientPhone,
		&recipientEmail,
		&resp.RecipientAddress,
		&resp.PackageName,
		&resp.PackageType,
		&resp.Weight,
		&value,
		&descr,
		&photo,
		&resp.Status,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	); err != nil {
		return TrackParcelQueryResponse{}, err
	}

	resp.SenderEmail = senderEmail.String
	resp.RecipientEmail = recipientEmail.String
	resp.Description = descr.String
	resp.PhotoURL = photo.String
	if value.Valid {
		v := value.Decimal
		resp.Value = &v
	}
	resp.StatusDisplay = parcel.Status(resp.Status).DisplayName()

	return resp, nil
}
