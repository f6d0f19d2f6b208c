package plan

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"channeldesk/channel-api/internal"
	"channeldesk/channel-api/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

func setupDeps(t *testing.T) *internal.Deps {
	t.Helper()

	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		model.VideoPlan{},
		model.PostedVideo{},
	))

	return &internal.Deps{DB: db}
}

func perform(d *internal.Deps, handler func(*gin.Context, *internal.Deps), method, target, body string, params gin.Params) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = params
	c.Set("requestID", "test")

	handler(c, d)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestCreateAssignsSequentialNumbers(t *testing.T) {
	d := setupDeps(t)

	w := perform(d, Create, http.MethodPost, "/api/video-plans", `{"title":"海釣り入門","type":"動画"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = perform(d, Create, http.MethodPost, "/api/video-plans", `{"title":"堤防ルアー","type":"ショート"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var plans []model.VideoPlan
	require.NoError(t, d.DB.Order("no ASC").Find(&plans).Error)
	require.Len(t, plans, 2)

	assert.Equal(t, 1, plans[0].No)
	assert.Equal(t, 2, plans[1].No)
}

func TestCreateKeepsExplicitNumber(t *testing.T) {
	d := setupDeps(t)

	w := perform(d, Create, http.MethodPost, "/api/video-plans", `{"no":10,"title":"特番"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = perform(d, Create, http.MethodPost, "/api/video-plans", `{"title":"続き"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var plans []model.VideoPlan
	require.NoError(t, d.DB.Order("no ASC").Find(&plans).Error)
	require.Len(t, plans, 2)

	assert.Equal(t, 10, plans[0].No)
	assert.Equal(t, 11, plans[1].No)
}

func TestCreateRejectsInvalidInput(t *testing.T) {
	d := setupDeps(t)

	w := perform(d, Create, http.MethodPost, "/api/video-plans", `{"no":-1}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = perform(d, Create, http.MethodPost, "/api/video-plans", `{"type":"podcast"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNextNoStartsAtOne(t *testing.T) {
	d := setupDeps(t)

	w := perform(d, NextNo, http.MethodGet, "/api/next-no", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.EqualValues(t, 1, decode(t, w)["nextNo"])
}

func TestUpdatePromotionMirrorsOnce(t *testing.T) {
	d := setupDeps(t)

	p := model.VideoPlan{No: 1, Type: model.TypeLongForm, Title: "初投稿"}
	require.NoError(t, d.DB.Create(&p).Error)

	w := perform(d, Update, http.MethodPut, "/api/video-plans/1", `{"is_posted":true}`, gin.Params{{Key: "id", Value: "1"}})
	require.Equal(t, http.StatusOK, w.Code)

	var updated model.VideoPlan
	require.NoError(t, d.DB.First(&updated, p.ID).Error)
	assert.True(t, updated.IsPosted)
	require.NotNil(t, updated.PostedAt)

	var posted []model.PostedVideo
	require.NoError(t, d.DB.Find(&posted).Error)
	require.Len(t, posted, 1)
	assert.Equal(t, "初投稿", posted[0].Title)
	assert.Equal(t, 1, posted[0].No)
	assert.True(t, posted[0].IsPublic)

	// Already posted, saving again must not add a second mirror row
	w = perform(d, Update, http.MethodPut, "/api/video-plans/1", `{"is_posted":true}`, gin.Params{{Key: "id", Value: "1"}})
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, d.DB.Model(model.PostedVideo{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUpdateClearsPostedState(t *testing.T) {
	d := setupDeps(t)

	p := model.VideoPlan{No: 1, Type: model.TypeLongForm, Title: "下げ戻し", IsPosted: true}
	require.NoError(t, d.DB.Create(&p).Error)

	w := perform(d, Update, http.MethodPut, "/api/video-plans/1", `{"is_posted":false}`, gin.Params{{Key: "id", Value: "1"}})
	require.Equal(t, http.StatusOK, w.Code)

	var updated model.VideoPlan
	require.NoError(t, d.DB.First(&updated, p.ID).Error)
	assert.False(t, updated.IsPosted)
	assert.Nil(t, updated.PostedAt)
}

func TestUpdateKeepsAbsentFields(t *testing.T) {
	d := setupDeps(t)

	p := model.VideoPlan{No: 3, Type: model.TypeShortForm, Title: "元タイトル", Tags: "釣り"}
	require.NoError(t, d.DB.Create(&p).Error)

	w := perform(d, Update, http.MethodPut, "/api/video-plans/1", `{"title":"新タイトル"}`, gin.Params{{Key: "id", Value: "1"}})
	require.Equal(t, http.StatusOK, w.Code)

	var updated model.VideoPlan
	require.NoError(t, d.DB.First(&updated, p.ID).Error)
	assert.Equal(t, "新タイトル", updated.Title)
	assert.Equal(t, 3, updated.No)
	assert.Equal(t, model.TypeShortForm, updated.Type)
	assert.Equal(t, "釣り", updated.Tags)
}

func TestUpdateMissingPlan(t *testing.T) {
	d := setupDeps(t)

	w := perform(d, Update, http.MethodPut, "/api/video-plans/99", `{}`, gin.Params{{Key: "id", Value: "99"}})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBulkPromote(t *testing.T) {
	d := setupDeps(t)

	require.NoError(t, d.DB.Create(&model.VideoPlan{No: 1, Type: model.TypeLongForm, Title: "一本目"}).Error)
	require.NoError(t, d.DB.Create(&model.VideoPlan{No: 2, Type: model.TypeShortForm, Title: "二本目"}).Error)

	w := perform(d, BulkPromote, http.MethodPost, "/api/video-plans/bulk-move-to-posted", `{"ids":[1,2]}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.EqualValues(t, 2, body["count"])
	assert.EqualValues(t, 2, body["addedCount"])

	var plans []model.VideoPlan
	require.NoError(t, d.DB.Find(&plans).Error)
	for _, p := range plans {
		assert.True(t, p.IsPosted)
		assert.NotNil(t, p.PostedAt)
	}

	var posted []model.PostedVideo
	require.NoError(t, d.DB.Order("no ASC").Find(&posted).Error)
	require.Len(t, posted, 2)
	assert.Equal(t, 1, posted[0].No)
	assert.Equal(t, 2, posted[1].No)
}

func TestBulkPromoteRequiresIDs(t *testing.T) {
	d := setupDeps(t)

	w := perform(d, BulkPromote, http.MethodPost, "/api/video-plans/bulk-move-to-posted", `{"ids":[]}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBulkDelete(t *testing.T) {
	d := setupDeps(t)

	require.NoError(t, d.DB.Create(&model.VideoPlan{No: 1, Type: model.TypeLongForm, Title: "消す"}).Error)
	require.NoError(t, d.DB.Create(&model.VideoPlan{No: 2, Type: model.TypeLongForm, Title: "残す"}).Error)

	w := perform(d, BulkDelete, http.MethodPost, "/api/video-plans/bulk-delete", `{"ids":[1]}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, d.DB.Model(model.VideoPlan{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestImportCSVCountsRows(t *testing.T) {
	d := setupDeps(t)

	body := `{"plans":[
		{"type":"ショート","title":"アジング講座","intro_content":"導入","narration_content":"本編"},
		{"type":"動画","title":"堤防釣り完全版"},
		{"type":"動画","title":""}
	]}`

	w := perform(d, ImportCSV, http.MethodPost, "/api/video-plans/import-csv", body, nil)
	require.Equal(t, http.StatusOK, w.Code)

	out := decode(t, w)
	assert.EqualValues(t, 2, out["successCount"])
	assert.EqualValues(t, 1, out["errorCount"])

	var plans []model.VideoPlan
	require.NoError(t, d.DB.Order("no ASC").Find(&plans).Error)
	require.Len(t, plans, 2)

	assert.Equal(t, 1, plans[0].No)
	assert.Equal(t, model.TypeShortForm, plans[0].Type)
	assert.Equal(t, 2, plans[1].No)
	assert.False(t, plans[0].IsPosted)
}

func TestImportCSVDefaultsUnknownType(t *testing.T) {
	d := setupDeps(t)

	w := perform(d, ImportCSV, http.MethodPost, "/api/video-plans/import-csv", `{"plans":[{"type":"vlog","title":"謎形式"}]}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var p model.VideoPlan
	require.NoError(t, d.DB.First(&p).Error)
	assert.Equal(t, model.TypeLongForm, p.Type)
}

func TestDraftRoundTrip(t *testing.T) {
	d := setupDeps(t)

	w := perform(d, DraftFetch, http.MethodGet, "/api/draft", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, decode(t, w)["draft_content"])

	w = perform(d, DraftSave, http.MethodPost, "/api/draft", `{"draft_content":"次回のネタ帳"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var p model.VideoPlan
	require.NoError(t, d.DB.First(&p).Error)
	assert.Equal(t, draftPlaceholderTitle, p.Title)
	assert.Equal(t, 0, p.No)

	w = perform(d, DraftFetch, http.MethodGet, "/api/draft", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "次回のネタ帳", decode(t, w)["draft_content"])

	// Saving again reuses the same row instead of stacking placeholders
	w = perform(d, DraftSave, http.MethodPost, "/api/draft", `{"draft_content":"書き直し"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, d.DB.Model(model.VideoPlan{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestListFiltersPosted(t *testing.T) {
	d := setupDeps(t)

	require.NoError(t, d.DB.Create(&model.VideoPlan{No: 1, Type: model.TypeLongForm, Title: "公開済み", IsPosted: true}).Error)
	require.NoError(t, d.DB.Create(&model.VideoPlan{No: 2, Type: model.TypeLongForm, Title: "企画中"}).Error)

	w := perform(d, List, http.MethodGet, "/api/video-plans?posted=true", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got []model.VideoPlan
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "公開済み", got[0].Title)
}

func TestListSearchesScripts(t *testing.T) {
	d := setupDeps(t)

	require.NoError(t, d.DB.Create(&model.VideoPlan{No: 1, Type: model.TypeLongForm, Title: "その一", NarrationContent: "サビキ釣りの話"}).Error)
	require.NoError(t, d.DB.Create(&model.VideoPlan{No: 2, Type: model.TypeLongForm, Title: "その二"}).Error)

	w := perform(d, List, http.MethodGet, "/api/video-plans?search=サビキ", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got []model.VideoPlan
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "その一", got[0].Title)
}
