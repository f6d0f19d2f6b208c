package db

import (
	"errors"
	"fmt"

	"channeldesk/channel-api/internal/model"
	"channeldesk/channel-api/pkg/security"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Bootstrap creates the administrative account on first boot. It refuses to
// invent credentials: when the users table is empty, auth.initial_password
// must be set and at least 8 characters long or startup fails.
func Bootstrap(db *gorm.DB, argon *security.ArgonHash) error {
	var count int64

	if err := db.Model(model.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count users, %w", err)
	}

	if count > 0 {
		return nil
	}

	username := viper.GetString("auth.initial_username")
	if username == "" {
		username = "admin"
	}

	password := viper.GetString("auth.initial_password")
	if len(password) < 8 {
		return errors.New("auth.initial_password must be set to at least 8 characters before first boot")
	}

	hash, err := argon.GenerateFromPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash initial password, %w", err)
	}

	if err := db.Create(&model.User{Username: username, PasswordHash: hash}).Error; err != nil {
		return fmt.Errorf("failed to create initial user, %w", err)
	}

	zap.L().Info("Initial user created", zap.String("username", username))
	return nil
}
