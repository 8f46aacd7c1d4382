package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	Storage    StorageConfig
	Classifier ClassifierConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type StorageConfig struct {
	UploadPath  string
	MaxFileSize int64
}

type ClassifierConfig struct {
	VectorizerPath string
	ModelPath      string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Storage: StorageConfig{
			UploadPath:  getEnv("UPLOAD_PATH", "./uploads"),
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
		Classifier: ClassifierConfig{
			VectorizerPath: getEnv("CLASSIFIER_VECTORIZER_PATH", "./models/tfidf_vectorizer.gob"),
			ModelPath:      getEnv("CLASSIFIER_MODEL_PATH", "./models/category_classifier.gob"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}
