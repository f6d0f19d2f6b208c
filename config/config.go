// Package config contains code to set the default values and read
// config files to be used throughout the whole application
package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/spf13/pflag"
	v "github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	validLogLevels    = []string{"debug", "info", "warn", "error", "fatal"}
	validDBDrivers    = []string{"sqlite", "postgres"}
	validStorageTypes = []string{"local", "s3"}
)

func genSecret() string {
	b := make([]byte, 64)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// Setup prepares everything config-related so that the app can
// start working. Function will return an error if something
// is critically wrong and the application can't run because of
// that.
func Setup() error {
	pflag.Parse()
	v.BindPFlags(pflag.CommandLine)

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")

	v.AutomaticEnv()

	//
	// ENVS
	//
	v.BindEnv("app.log_level", "app_log_level")

	v.BindEnv("host.port", "host_port")
	v.BindEnv("host.cors", "host_cors")
	v.BindEnv("host.ssl_enabled", "host_ssl_enabled")

	v.BindEnv("db.driver", "db_driver")
	v.BindEnv("db.path", "db_path")
	v.BindEnv("db.dsn", "db_dsn")

	v.BindEnv("session.secret", "session_secret")
	v.BindEnv("session.max_age", "session_max_age")

	v.BindEnv("auth.initial_username", "initial_username")
	v.BindEnv("auth.initial_password", "initial_password")

	v.BindEnv("upload.max_size", "upload_max_size")
	v.BindEnv("upload.dir", "upload_dir")

	v.BindEnv("storage.type", "storage_type")

	v.BindEnv("aws.access_key_id", "aws_access_key_id")
	v.BindEnv("aws.secret_access_key", "aws_secret_access_key")
	v.BindEnv("aws.region", "aws_region")
	v.BindEnv("aws.bucket", "aws_bucket")
	v.BindEnv("aws.public_url", "aws_public_url")

	v.BindEnv("youtube.api_key", "youtube_api_key")

	//
	// Defaults
	//
	v.SetDefault("app.log_level", "info")

	v.SetDefault("host.port", 3000)
	v.SetDefault("host.cors", "http://localhost:3000")
	v.SetDefault("host.ssl_enabled", false)

	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.path", "videos.db")

	v.SetDefault("session.max_age", 86400)

	v.SetDefault("upload.max_size", 5)
	v.SetDefault("upload.dir", "public/uploads")

	v.SetDefault("storage.type", "local")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(v.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file, %w", err)
		}
	}

	if !slices.Contains(validLogLevels, v.GetString("app.log_level")) {
		return errors.New("invalid log level provided")
	}

	if v.GetInt("host.port") <= 0 {
		return errors.New("invalid port provided")
	}

	if !slices.Contains(validDBDrivers, v.GetString("db.driver")) {
		return errors.New("invalid db driver provided")
	}

	if v.GetString("db.driver") == "postgres" && v.GetString("db.dsn") == "" {
		return errors.New("db.dsn can't be empty when db.driver is postgres")
	}

	if v.GetString("session.secret") == "" {
		fmt.Println("WARNING: You haven't set a session secret, so one has been generated for you. Please set it as an environment variable or in the config.toml file.\nYour random session secret:\n\n" + genSecret() + "\n\nPaste it into your config.toml file.")
		os.Exit(0)
	}

	if len(v.GetString("session.secret")) < 32 {
		zap.L().Warn("session.secret is shorter than 32 characters, consider using a longer one")
	}

	if v.GetInt("session.max_age") <= 0 {
		return errors.New("session.max_age must be bigger than 0")
	}

	if v.GetInt("upload.max_size") <= 0 {
		return errors.New("upload.max_size must be bigger than 0")
	}

	if !slices.Contains(validStorageTypes, v.GetString("storage.type")) {
		return errors.New("invalid storage type provided")
	}

	if v.GetString("storage.type") == "s3" {
		if v.GetString("aws.access_key_id") == "" {
			return errors.New("access key id can't be empty")
		}
		if v.GetString("aws.secret_access_key") == "" {
			return errors.New("secret access key can't be empty")
		}
		if v.GetString("aws.bucket") == "" {
			return errors.New("bucket can't be empty")
		}
		if v.GetString("aws.public_url") == "" {
			return errors.New("aws.public_url can't be empty")
		}
	}

	if v.GetString("youtube.api_key") == "" {
		fmt.Println("[WARNING]: No YouTube API key configured. Fetching videos from the provider will be disabled")
	}

	v.Set("upload.max_size", v.GetInt64("upload.max_size")<<20)
	return nil
}
