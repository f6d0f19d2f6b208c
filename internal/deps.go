package internal

import (
	"channeldesk/channel-api/internal/service"
	"channeldesk/channel-api/internal/storage"
	"channeldesk/channel-api/pkg/security"

	"gorm.io/gorm"
)

type Deps struct {
	DB      *gorm.DB
	Argon   *security.ArgonHash
	Store   storage.Store
	YouTube *service.YouTubeClient
}
