package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"senderplus/cmd"
	httpin "senderplus/internal/adapters/in/http"
	"senderplus/internal/adapters/out/postgres/accountrepo"
	"senderplus/internal/adapters/out/postgres/parcelrepo"
	"senderplus/internal/adapters/out/postgres/verificationrepo"
	"senderplus/internal/adapters/out/security"
	"senderplus/internal/adapters/out/smtp"
	"senderplus/internal/adapters/out/storage"
	"senderplus/internal/adapters/out/token"
	"senderplus/internal/core/ports"
	"senderplus/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultTokenTTL = 24 * time.Hour

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	photos := mustCreatePhotoStorage(configs)
	signer := token.NewJWTSigner(configs.JWTSecret, tokenTTL(configs))
	mailer := smtp.NewMailer(
		configs.SMTPHost,
		mustAtoi("SMTP_PORT", configs.SMTPPort),
		configs.SMTPFrom,
		configs.SMTPUser,
		configs.SMTPPassword,
	)

	app := cmd.NewCompositionRoot(
		gormDB,
		security.NewBcryptHasher(),
		mailer,
		signer,
		photos,
		logger,
	)

	jobManager := jobs.NewJobManager(app.CreateGetParcelStatusCountsQueryHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:       goDotEnvVariable("HTTP_PORT"),
		DBHost:         goDotEnvVariable("DB_HOST"),
		DBPort:         goDotEnvVariable("DB_PORT"),
		DBUser:         goDotEnvVariable("DB_USER"),
		DBPassword:     goDotEnvVariable("DB_PASSWORD"),
		DBName:         goDotEnvVariable("DB_NAME"),
		DBSslMode:      goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:      goDotEnvVariable("JWT_SECRET"),
		JWTTTLHours:    goDotEnvVariable("JWT_TTL_HOURS"),
		SMTPHost:       goDotEnvVariable("SMTP_HOST"),
		SMTPPort:       goDotEnvVariable("SMTP_PORT"),
		SMTPFrom:       goDotEnvVariable("SMTP_FROM"),
		SMTPUser:       goDotEnvVariable("SMTP_USER"),
		SMTPPassword:   goDotEnvVariable("SMTP_PASSWORD"),
		StorageDriver:  goDotEnvVariable("STORAGE_DRIVER"),
		StoragePath:    goDotEnvVariable("STORAGE_PATH"),
		StorageBaseURL: goDotEnvVariable("STORAGE_BASE_URL"),
		S3Region:       goDotEnvVariable("S3_REGION"),
		S3Bucket:       goDotEnvVariable("S3_BUCKET"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	// TranslateError turns driver duplicate-key failures into
	// gorm.ErrDuplicatedKey, which the repositories rely on.
	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&accountrepo.AccountDTO{},
		&verificationrepo.CodeDTO{},
		&parcelrepo.ParcelDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func mustCreatePhotoStorage(configs cmd.Config) ports.PhotoStorage {
	switch configs.StorageDriver {
	case "s3":
		photos, err := storage.NewS3Storage(configs.S3Region, configs.S3Bucket)
		if err != nil {
			log.Fatalf("Failed to create S3 storage: %v", err)
		}
		return photos
	default:
		photos, err := storage.NewLocalStorage(configs.StoragePath, configs.StorageBaseURL)
		if err != nil {
			log.Fatalf("Failed to create local storage: %v", err)
		}
		return photos
	}
}

func tokenTTL(configs cmd.Config) time.Duration {
	if configs.JWTTTLHours == "" {
		return defaultTokenTTL
	}
	hours := mustAtoi("JWT_TTL_HOURS", configs.JWTTTLHours)
	return time.Duration(hours) * time.Hour
}

func mustAtoi(key, value string) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Fatalf("Invalid %s value %q", key, value)
	}
	return n
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpin.NewServer(
		app.CreateSignUpCommandHandler(),
		app.CreateSignInCommandHandler(),
		app.CreateSendCodeCommandHandler(),
		app.CreateVerifyCodeCommandHandler(),
		app.CreateSubmitParcelCommandHandler(),
		app.CreateAdvanceParcelStatusCommandHandler(),
		app.CreateTrackParcelQueryHandler(),
	)

	auth := httpin.AuthMiddleware(app.TokenSigner(), app.UnitOfWorkFactory())
	server.RegisterRoutes(e, auth)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
