package cmd

import (
	"log/slog"

	"senderplus/internal/adapters/out/postgres"
	"senderplus/internal/core/application/usecases/commands"
	"senderplus/internal/core/application/usecases/queries"
	"senderplus/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	hasher     ports.PasswordHasher
	mailer     ports.Mailer
	signer     ports.TokenSigner
	photos     ports.PhotoStorage
	logger     *slog.Logger
}

func NewCompositionRoot(
	gormDB *gorm.DB,
	hasher ports.PasswordHasher,
	mailer ports.Mailer,
	signer ports.TokenSigner,
	photos ports.PhotoStorage,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		hasher:     hasher,
		mailer:     mailer,
		signer:     signer,
		photos:     photos,
		logger:     logger,
	}
}

func (c *CompositionRoot) UnitOfWorkFactory() ports.UnitOfWorkFactory {
	return &c.uowFactory
}

func (c *CompositionRoot) TokenSigner() ports.TokenSigner {
	return c.signer
}

func (c *CompositionRoot) CreateSignUpCommandHandler() commands.SignUpCommandHandler {
	return commands.NewSignUpCommandHandler(c.authUoWFactory(), c.hasher, c.mailer, c.logger)
}

func (c *CompositionRoot) CreateSignInCommandHandler() commands.SignInCommandHandler {
	return commands.NewSignInCommandHandler(c.authUoWFactory(), c.hasher, c.signer)
}

func (c *CompositionRoot) CreateSendCodeCommandHandler() commands.SendCodeCommandHandler {
	return commands.NewSendCodeCommandHandler(c.authUoWFactory(), c.mailer, c.logger)
}

func (c *CompositionRoot) CreateVerifyCodeCommandHandler() commands.VerifyCodeCommandHandler {
	return commands.NewVerifyCodeCommandHandler(c.authUoWFactory())
}

func (c *CompositionRoot) CreateSubmitParcelCommandHandler() commands.SubmitParcelCommandHandler {
	return commands.NewSubmitParcelCommandHandler(c.parcelUoWFactory(), c.photos)
}

func (c *CompositionRoot) CreateAdvanceParcelStatusCommandHandler() commands.AdvanceParcelStatusCommandHandler {
	return commands.NewAdvanceParcelStatusCommandHandler(c.parcelUoWFactory())
}

func (c *CompositionRoot) CreateTrackParcelQueryHandler() queries.TrackParcelQueryHandler {
	return queries.NewTrackParcelQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetParcelStatusCountsQueryHandler() queries.GetParcelStatusCountsQueryHandler {
	return queries.NewGetParcelStatusCountsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) authUoWFactory() commands.AuthUoWFactory {
	return FuncAuthUoWFactory(func() commands.AuthUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) parcelUoWFactory() commands.ParcelUoWFactory {
	return FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
}

type FuncAuthUoWFactory func() commands.AuthUoW

func (f FuncAuthUoWFactory) Create() commands.AuthUoW {
	return f()
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}
