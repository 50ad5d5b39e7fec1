package parcel_test

import (
	"testing"
	"time"

	"senderplus/internal/core/domain/model/parcel"
	"senderplus/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSender(t *testing.T) parcel.Contact {
	t.Helper()
	sender, err := parcel.NewContact("Ada Mensah", "+233201234567", "ada@campus.edu", "12 Harbor Rd, Tema")
	require.NoError(t, err)
	return sender
}

func testRecipient(t *testing.T) parcel.Contact {
	t.Helper()
	recipient, err := parcel.NewContact("Kofi Owusu", "+233209876543", "", "Hall 4, Legon Campus")
	require.NoError(t, err)
	return recipient
}

func testParcel(t *testing.T) *parcel.Parcel {
	t.Helper()
	p, err := parcel.NewParcel(
		parcel.NewTrackingID(),
		testSender(t),
		testRecipient(t),
		"Textbooks",
		"documents",
		decimal.RequireFromString("1.5"),
		nil,
		"",
		time.Now(),
	)
	require.NoError(t, err)
	return p
}

func TestNewContact(t *testing.T) {
	t.Run("should require name, phone, and address", func(t *testing.T) {
		cases := []struct {
			name    string
			phone   string
			address string
		}{
			{"", "+233201234567", "12 Harbor Rd"},
			{"Ada", "", "12 Harbor Rd"},
			{"Ada", "+233201234567", ""},
			{"   ", "+233201234567", "12 Harbor Rd"},
		}

		for _, tc := range cases {
			_, err := parcel.NewContact(tc.name, tc.phone, "", tc.address)
			require.ErrorIs(t, err, errs.ErrValueIsRequired)
		}
	})

	t.Run("email is optional", func(t *testing.T) {
		contact, err := parcel.NewContact("Ada", "+233201234567", "", "12 Harbor Rd")

		require.NoError(t, err)
		assert.Empty(t, contact.Email())
	})

	t.Run("should trim whitespace", func(t *testing.T) {
		contact, err := parcel.NewContact("  Ada  ", " +233201234567 ", " ada@campus.edu ", " 12 Harbor Rd ")

		require.NoError(t, err)
		assert.Equal(t, "Ada", contact.Name())
		assert.Equal(t, "+233201234567", contact.Phone())
		assert.Equal(t, "ada@campus.edu", contact.Email())
		assert.Equal(t, "12 Harbor Rd", contact.Address())
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var contact parcel.Contact

		require.ErrorIs(t, contact.Validate(), parcel.ErrContactIsNotConstructed)
	})
}

func TestNewParcel(t *testing.T) {
	t.Run("should start in the first lifecycle stage", func(t *testing.T) {
		now := time.Now()
		p, err := parcel.NewParcel(
			parcel.NewTrackingID(),
			testSender(t),
			testRecipient(t),
			"Textbooks",
			"documents",
			decimal.RequireFromString("1.5"),
			nil,
			"",
			now,
		)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, parcel.WaitingBus, p.Status())
		assert.Equal(t, now, p.CreatedAt())
		assert.Equal(t, now, p.UpdatedAt())
		assert.Nil(t, p.Value())
		assert.Empty(t, p.PhotoURL())
	})

	t.Run("should reject non-positive weight", func(t *testing.T) {
		for _, w := range []string{"0", "-1.5"} {
			_, err := parcel.NewParcel(
				parcel.NewTrackingID(),
				testSender(t),
				testRecipient(t),
				"Textbooks",
				"documents",
				decimal.RequireFromString(w),
				nil,
				"",
				time.Now(),
			)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("should reject negative declared value", func(t *testing.T) {
		v := decimal.RequireFromString("-10")
		_, err := parcel.NewParcel(
			parcel.NewTrackingID(),
			testSender(t),
			testRecipient(t),
			"Textbooks",
			"documents",
			decimal.RequireFromString("1.5"),
			&v,
			"",
			time.Now(),
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should require package name and type", func(t *testing.T) {
		_, err := parcel.NewParcel(
			parcel.NewTrackingID(),
			testSender(t),
			testRecipient(t),
			"  ",
			"",
			decimal.RequireFromString("1.5"),
			nil,
			"",
			time.Now(),
		)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject unconstructed contacts", func(t *testing.T) {
		_, err := parcel.NewParcel(
			parcel.NewTrackingID(),
			parcel.Contact{},
			testRecipient(t),
			"Textbooks",
			"documents",
			decimal.RequireFromString("1.5"),
			nil,
			"",
			time.Now(),
		)

		require.Error(t, err)
	})

	t.Run("directly instantiated parcel fails validation", func(t *testing.T) {
		p := &parcel.Parcel{}

		require.ErrorIs(t, p.Validate(), parcel.ErrParcelIsNotConstructed)
	})
}

func TestParcel_AdvanceStatus(t *testing.T) {
	t.Run("should walk the full lifecycle in order", func(t *testing.T) {
		p := testParcel(t)
		created := p.CreatedAt()

		expected := []parcel.Status{
			parcel.EnRouteCampus,
			parcel.AtCampusHub,
			parcel.Delivered,
		}

		for _, want := range expected {
			p.AdvanceStatus(time.Now())
			assert.Equal(t, want, p.Status())
			assert.False(t, p.UpdatedAt().Before(created))
		}
	})

	t.Run("advance on delivered parcel is a no-op", func(t *testing.T) {
		p := testParcel(t)
		for range 3 {
			p.AdvanceStatus(time.Now())
		}
		require.Equal(t, parcel.Delivered, p.Status())
		lastUpdate := p.UpdatedAt()

		p.AdvanceStatus(time.Now().Add(time.Hour))

		assert.Equal(t, parcel.Delivered, p.Status())
		assert.Equal(t, lastUpdate, p.UpdatedAt())
	})

	t.Run("should touch updatedAt on transition", func(t *testing.T) {
		p := testParcel(t)
		later := p.CreatedAt().Add(time.Hour)

		p.AdvanceStatus(later)

		assert.Equal(t, later, p.UpdatedAt())
	})
}

func TestParcel_AttachPhoto(t *testing.T) {
	t.Run("should record the photo URL", func(t *testing.T) {
		p := testParcel(t)

		p.AttachPhoto("/media/package_photos/1a2b3c4d.jpg")

		assert.Equal(t, "/media/package_photos/1a2b3c4d.jpg", p.PhotoURL())
	})
}

func TestRestoreParcel(t *testing.T) {
	t.Run("should rebuild a persisted parcel verbatim", func(t *testing.T) {
		created := time.Now().Add(-2 * time.Hour)
		updated := time.Now().Add(-1 * time.Hour)
		v := decimal.RequireFromString("120.00")
		id := parcel.NewTrackingID()

		p, err := parcel.RestoreParcel(
			id,
			testSender(t),
			testRecipient(t),
			"Laptop",
			"electronics",
			decimal.RequireFromString("2.2"),
			&v,
			"fragile",
			"/media/package_photos/x.jpg",
			parcel.AtCampusHub,
			created,
			updated,
		)

		require.NoError(t, err)
		assert.True(t, p.TrackingID().IsEqual(id))
		assert.Equal(t, parcel.AtCampusHub, p.Status())
		assert.Equal(t, created, p.CreatedAt())
		assert.Equal(t, updated, p.UpdatedAt())
		assert.Equal(t, "fragile", p.Description())
	})

	t.Run("unrecognized stored status is tolerated and terminal", func(t *testing.T) {
		p, err := parcel.RestoreParcel(
			parcel.NewTrackingID(),
			testSender(t),
			testRecipient(t),
			"Laptop",
			"electronics",
			decimal.RequireFromString("2.2"),
			nil,
			"",
			"",
			parcel.Status("lost_in_transit"),
			time.Now(),
			time.Now(),
		)

		require.NoError(t, err)
		before := p.Status()
		p.AdvanceStatus(time.Now())
		assert.Equal(t, before, p.Status())
	})
}
