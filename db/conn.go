// Package db contains database setup and first-boot bootstrapping
package db

import (
	"fmt"
	"os"

	"channeldesk/channel-api/internal/model"
	"channeldesk/channel-api/pkg/util"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func New() (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch viper.GetString("db.driver") {
	case "postgres":
		dialector = postgres.Open(viper.GetString("db.dsn"))
	default:
		path := viper.GetString("db.path")

		// If running in a docker container don't allow the sqlite file to be
		// created. The host should instead mount it using volumes
		if util.IsRunningInDocker() {
			if _, err := os.Stat(path); err != nil {
				if os.IsNotExist(err) {
					return nil, fmt.Errorf("SQLite database file not mounted, please use docker volumes to mount it to %s", path)
				}
			}
		}

		dialector = sqlite.Open(path)
	}

	db, err := gorm.Open(dialector)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}

	err = db.AutoMigrate(
		model.User{},
		model.Session{},
		model.ChannelSettings{},
		model.VideoPlan{},
		model.PostedVideo{},
		model.Template{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to automigrate tables, %w", err)
	}

	return db, nil
}
