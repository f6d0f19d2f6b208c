// Package validators contains validators found throughout the application
// that have been abstracted away from the main code
package validators

import (
	"errors"
	"strings"
	"time"

	"channeldesk/channel-api/internal/model"
)

const (
	maxNo          = 999999
	maxTitleLen    = 500
	maxScriptLen   = 10000
	maxTagsLen     = 500
	maxCategoryLen = 100
	maxCountValue  = 999999999
)

// PlanInput is a partial video plan record as submitted by the client.
// Nil fields were absent from the request and are skipped by validation.
type PlanInput struct {
	No               *int       `json:"no"`
	Type             *string    `json:"type"`
	Title            *string    `json:"title"`
	IntroContent     *string    `json:"intro_content"`
	NarrationContent *string    `json:"narration_content"`
	Tags             *string    `json:"tags"`
	Category         *string    `json:"category"`
	ReminderDate     *time.Time `json:"reminder_date"`
	IsPosted         *bool      `json:"is_posted"`
}

// PlanValidator checks every field present in the input and returns all
// violations joined into a single error. A nil return means the input can
// be written as-is.
func PlanValidator(p *PlanInput) error {
	var errs []string

	if p.No != nil && (*p.No < 0 || *p.No > maxNo) {
		errs = append(errs, "no must be a number between 0 and 999999")
	}

	if p.Type != nil && *p.Type != "" && !validType(*p.Type) {
		errs = append(errs, "type must be either 動画 or ショート")
	}

	if p.Title != nil && len([]rune(*p.Title)) > maxTitleLen {
		errs = append(errs, "title must be at most 500 characters")
	}

	if p.IntroContent != nil && len([]rune(*p.IntroContent)) > maxScriptLen {
		errs = append(errs, "intro content must be at most 10000 characters")
	}

	if p.NarrationContent != nil && len([]rune(*p.NarrationContent)) > maxScriptLen {
		errs = append(errs, "narration content must be at most 10000 characters")
	}

	if p.Tags != nil && len([]rune(*p.Tags)) > maxTagsLen {
		errs = append(errs, "tags must be at most 500 characters")
	}

	if p.Category != nil && len([]rune(*p.Category)) > maxCategoryLen {
		errs = append(errs, "category must be at most 100 characters")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, ", "))
	}

	return nil
}

func validType(t string) bool {
	return t == model.TypeLongForm || t == model.TypeShortForm
}
