package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// S3Settings holds the off-site backup target, sourced from the
// environment so credentials never land in the descriptor file.
type S3Settings struct {
	Endpoint  string `env:"HOSTUP_S3_ENDPOINT"`
	Region    string `env:"HOSTUP_S3_REGION" envDefault:"us-east-1"`
	Bucket    string `env:"HOSTUP_S3_BUCKET"`
	AccessKey string `env:"HOSTUP_S3_ACCESS_KEY"`
	SecretKey string `env:"HOSTUP_S3_SECRET_KEY"`
}

// Enabled reports whether enough is configured to attempt an off-site
// upload.
func (s S3Settings) Enabled() bool {
	return s.Endpoint != "" && s.Bucket != ""
}

// LoadS3Settings reads the off-site backup settings from the
// environment.
func LoadS3Settings() (S3Settings, error) {
	var s S3Settings
	if err := env.Parse(&s); err != nil {
		return S3Settings{}, fmt.Errorf("failed to parse backup environment: %w", err)
	}
	return s, nil
}
