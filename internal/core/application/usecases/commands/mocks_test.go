package commands_test

import (
	"context"
	"io"
	"log/slog"
	"mime/multipart"
	"time"

	"senderplus/internal/core/application/usecases/commands"
	"senderplus/internal/core/domain/model/account"
	"senderplus/internal/core/domain/model/kernel"
	"senderplus/internal/core/domain/model/parcel"
	"senderplus/internal/core/domain/model/verification"
	"senderplus/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// Shared mocks for the command handler tests.

type MockAccountRepository struct{ mock.Mock }

func (m *MockAccountRepository) Add(ctx context.Context, a *account.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id kernel.UUID) (*account.Account, error) {
	args := m.Called(ctx, id)
	if acc, ok := args.Get(0).(*account.Account); ok {
		return acc, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAccountRepository) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	args := m.Called(ctx, email)
	if acc, ok := args.Get(0).(*account.Account); ok {
		return acc, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockVerificationCodeRepository struct{ mock.Mock }

func (m *MockVerificationCodeRepository) Add(ctx context.Context, c *verification.Code) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockVerificationCodeRepository) Update(ctx context.Context, c *verification.Code) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockVerificationCodeRepository) GetLatestMatch(
	ctx context.Context,
	accountID kernel.UUID,
	value string,
) (*verification.Code, error) {
	args := m.Called(ctx, accountID, value)
	if code, ok := args.Get(0).(*verification.Code); ok {
		return code, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) Add(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Update(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) GetByTrackingID(ctx context.Context, id parcel.TrackingID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*parcel.Parcel); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockAuthUoW struct{ mock.Mock }

func (m *MockAuthUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAuthUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAuthUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAuthUoW) AccountRepository() ports.AccountRepository {
	args := m.Called()
	return args.Get(0).(ports.AccountRepository)
}

func (m *MockAuthUoW) VerificationCodeRepository() ports.VerificationCodeRepository {
	args := m.Called()
	return args.Get(0).(ports.VerificationCodeRepository)
}

type MockAuthUoWFactory struct{ mock.Mock }

func (m *MockAuthUoWFactory) Create() commands.AuthUoW {
	args := m.Called()
	return args.Get(0).(commands.AuthUoW)
}

type MockParcelUoW struct{ mock.Mock }

func (m *MockParcelUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockParcelUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockParcelUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockParcelUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}

type MockParcelUoWFactory struct{ mock.Mock }

func (m *MockParcelUoWFactory) Create() commands.ParcelUoW {
	args := m.Called()
	return args.Get(0).(commands.ParcelUoW)
}

type MockPasswordHasher struct{ mock.Mock }

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Compare(hash, password string) error {
	args := m.Called(hash, password)
	return args.Error(0)
}

type MockMailer struct{ mock.Mock }

func (m *MockMailer) Send(to, subject, body string) error {
	args := m.Called(to, subject, body)
	return args.Error(0)
}

type MockTokenSigner struct{ mock.Mock }

func (m *MockTokenSigner) Sign(accountID kernel.UUID) (string, error) {
	args := m.Called(accountID)
	return args.String(0), args.Error(1)
}

func (m *MockTokenSigner) Parse(token string) (kernel.UUID, error) {
	args := m.Called(token)
	return args.Get(0).(kernel.UUID), args.Error(1)
}

type MockPhotoStorage struct{ mock.Mock }

func (m *MockPhotoStorage) Store(file *multipart.FileHeader, path string) (string, error) {
	args := m.Called(file, path)
	return args.String(0), args.Error(1)
}

// stubActor implements commands.Actor with a fixed capability.
type stubActor struct{ allowed bool }

func (a stubActor) CanAdvanceParcelStatus() bool { return a.allowed }

func testTime() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func restoredAccount(email string) *account.Account {
	acc, err := account.RestoreAccount(kernel.NewUUID(), email, "$2a$10$hash", "Test", "User", false, testTime())
	if err != nil {
		panic(err)
	}
	return acc
}
