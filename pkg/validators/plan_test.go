package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestPlanValidatorAcceptsValidInput(t *testing.T) {
	err := PlanValidator(&PlanInput{
		No:    ptr(1),
		Type:  ptr("動画"),
		Title: ptr("海釣り入門"),
	})
	require.NoError(t, err)
}

func TestPlanValidatorAcceptsEmptyInput(t *testing.T) {
	require.NoError(t, PlanValidator(&PlanInput{}))
}

func TestPlanValidatorRejectsBadNo(t *testing.T) {
	err := PlanValidator(&PlanInput{No: ptr(-1)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no must be a number")

	err = PlanValidator(&PlanInput{No: ptr(1000000)})
	require.Error(t, err)
}

func TestPlanValidatorRejectsUnknownType(t *testing.T) {
	err := PlanValidator(&PlanInput{Type: ptr("vlog")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "type must be either")
}

func TestPlanValidatorCountsRunesNotBytes(t *testing.T) {
	// 500 multibyte characters are exactly at the limit
	title := strings.Repeat("あ", 500)
	require.NoError(t, PlanValidator(&PlanInput{Title: &title}))

	title += "あ"
	require.Error(t, PlanValidator(&PlanInput{Title: &title}))
}

func TestPlanValidatorJoinsAllViolations(t *testing.T) {
	long := strings.Repeat("x", 10001)

	err := PlanValidator(&PlanInput{
		No:               ptr(-5),
		Type:             ptr("podcast"),
		IntroContent:     &long,
		NarrationContent: &long,
	})
	require.Error(t, err)

	parts := strings.Split(err.Error(), ", ")
	assert.Len(t, parts, 4)
}

func TestPostedVideoValidatorRejectsBadCounts(t *testing.T) {
	err := PostedVideoValidator(&PostedVideoInput{ViewCount: ptr(int64(-1))})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "view count")

	err = PostedVideoValidator(&PostedVideoInput{LikeCount: ptr(int64(1000000000))})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "like count")
}

func TestPostedVideoValidatorAcceptsValidInput(t *testing.T) {
	require.NoError(t, PostedVideoValidator(&PostedVideoInput{
		Title:     ptr("釣行記"),
		Type:      ptr("ショート"),
		ViewCount: ptr(int64(999999999)),
	}))
}
