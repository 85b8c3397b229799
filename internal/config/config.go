package config

import "github.com/caarlos0/env/v11"

type Config struct {
	Port            string `env:"PORT" envDefault:"8080"`
	DatabaseURL     string `env:"DATABASE_URL,notEmpty"`
	RedisAddr       string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword   string `env:"REDIS_PASSWORD"`
	UploadDir       string `env:"UPLOAD_DIR" envDefault:"uploads"`
	ImportBatchSize int    `env:"IMPORT_BATCH_SIZE" envDefault:"1000"`
	ImportWorkers   int    `env:"IMPORT_WORKERS" envDefault:"4"`
}

func Load() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, err
	}
	return c, nil
}
