package plan

import (
	"time"

	"channeldesk/channel-api/internal/model"

	"gorm.io/gorm"
)

// insertPostedIfMissing mirrors a promoted plan into posted_videos unless a
// row with the same title and publish time is already there. The thumbnail
// and URL start empty and get filled in by hand or by provider ingestion
// later. Reports whether a row was actually added.
func insertPostedIfMissing(tx *gorm.DB, p *model.VideoPlan, postedAt *time.Time) (bool, error) {
	var exists bool

	err := tx.Model(model.PostedVideo{}).
		Select("count(*) > 0").
		Where("title = ? AND published_at = ?", p.Title, postedAt).
		Find(&exists).
		Error
	if err != nil {
		return false, err
	}

	if exists {
		return false, nil
	}

	var maxNo int

	err = tx.Model(model.PostedVideo{}).
		Select("COALESCE(MAX(no), 0)").
		Scan(&maxNo).
		Error
	if err != nil {
		return false, err
	}

	posted := model.PostedVideo{
		No:          maxNo + 1,
		Type:        p.Type,
		Title:       p.Title,
		PublishedAt: postedAt,
		IsPublic:    true,
		Tags:        p.Tags,
		Category:    p.Category,
	}

	if err := tx.Create(&posted).Error; err != nil {
		return false, err
	}

	return true, nil
}
