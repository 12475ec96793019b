package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all process-wide settings. It is assembled once at startup
// and passed by reference into the route layer and repository.
type Config struct {
	Port     string
	MongoURI string
	MongoDB  string

	// BaseURL is the public address uploads are served from.
	BaseURL   string
	UploadDir string

	// StorageDriver selects the upload backend: "local" or "cloudinary".
	StorageDriver       string
	CloudinaryName      string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
	CloudinaryFolder    string

	// RedisURL enables the read cache when set; empty disables it.
	RedisURL string

	CORSOrigin string
}

// Load reads configuration from the environment, falling back to defaults
// for the port and database settings.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		Port:                getEnv("PORT", "5000"),
		MongoURI:            getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:             getEnv("MONGO_DB", "politics-blog"),
		BaseURL:             getEnv("BASE_URL", "http://localhost:5000"),
		UploadDir:           getEnv("UPLOAD_DIR", "./uploads"),
		StorageDriver:       getEnv("STORAGE_DRIVER", "local"),
		CloudinaryName:      os.Getenv("CLOUDINARY_NAME"),
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: os.Getenv("CLOUDINARY_API_SECRET"),
		CloudinaryFolder:    getEnv("CLOUDINARY_FOLDER", "blog"),
		RedisURL:            os.Getenv("REDIS_URL"),
		CORSOrigin:          getEnv("CORS_ORIGIN", "https://political-blog-website.vercel.app"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
