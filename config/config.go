package config

import (
	"KinderShelf/models"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/joho/godotenv"
	"google.golang.org/api/option"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB
var Firestore *firestore.Client
var Messaging *messaging.Client

type Config struct {
	Port string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBSSLMode  string

	FirebaseCredentialsPath string
	FirebaseProjectID       string

	JWTSecret string
	Timezone  string
}

// Load reads .env when present and then the environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	host := os.Getenv("DB_HOST")
	return Config{
		Port:                    getEnvOrDefault("PORT", "8000"),
		DBHost:                  host,
		DBUser:                  os.Getenv("DB_USER"),
		DBPassword:              os.Getenv("DB_PASSWORD"),
		DBName:                  os.Getenv("DB_NAME"),
		DBPort:                  getEnvOrDefault("DB_PORT", "5432"),
		DBSSLMode:               getEnvOrDefault("DB_SSLMODE", defaultSSLMode(host)),
		FirebaseCredentialsPath: os.Getenv("FIREBASE_CREDENTIALS_PATH"),
		FirebaseProjectID:       os.Getenv("FIREBASE_PROJECT_ID"),
		JWTSecret:               os.Getenv("JWT_SECRET"),
		Timezone:                getEnvOrDefault("TIMEZONE", "Asia/Almaty"),
	}
}

func getEnvOrDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

// Render's managed postgres only accepts TLS.
func defaultSSLMode(host string) string {
	if strings.Contains(host, "render.com") {
		return "require"
	}
	return "disable"
}

func (c Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode, c.Timezone)
}

// Location is the zone "today" and bedtime are computed in.
func (c Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

func (c Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.FirebaseCredentialsPath == "" {
		return fmt.Errorf("FIREBASE_CREDENTIALS_PATH is required")
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("TIMEZONE %q: %w", c.Timezone, err)
	}
	return nil
}

func InitDatabase(cfg Config) {
	log.Printf("Connecting to database: host=%s user=%s dbname=%s port=%s sslmode=%s",
		cfg.DBHost, cfg.DBUser, cfg.DBName, cfg.DBPort, cfg.DBSSLMode)

	var err error
	DB, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Println("Successfully connected to database!")

	if err := DB.AutoMigrate(&models.Parent{}, &models.Child{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func InitFirebase(ctx context.Context, cfg Config) {
	opt := option.WithCredentialsFile(cfg.FirebaseCredentialsPath)
	var fbConfig *firebase.Config
	if cfg.FirebaseProjectID != "" {
		fbConfig = &firebase.Config{ProjectID: cfg.FirebaseProjectID}
	}

	app, err := firebase.NewApp(ctx, fbConfig, opt)
	if err != nil {
		log.Fatalf("error initializing app: %v\n", err)
	}

	Firestore, err = app.Firestore(ctx)
	if err != nil {
		log.Fatalf("error getting Firestore client: %v\n", err)
	}

	Messaging, err = app.Messaging(ctx)
	if err != nil {
		log.Fatalf("error getting Messaging client: %v\n", err)
	}
}
