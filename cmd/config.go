package cmd

type Config struct {
	HTTPPort       string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSslMode      string
	JWTSecret      string
	JWTTTLHours    string
	SMTPHost       string
	SMTPPort       string
	SMTPFrom       string
	SMTPUser       string
	SMTPPassword   string
	StorageDriver  string
	StoragePath    string
	StorageBaseURL string
	S3Region       string
	S3Bucket       string
}
