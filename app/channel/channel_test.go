package channel

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
	require.NoError(t, db.AutoMigrate(model.ChannelSettings{}))

	return &internal.Deps{DB: db}
}

func perform(d *internal.Deps, handler func(*gin.Context, *internal.Deps), method, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, "/api/channel", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("requestID", "test")

	handler(c, d)
	return w
}

func TestFetchReturnsNullWhenUnset(t *testing.T) {
	d := setupDeps(t)

	w := perform(d, Fetch, http.MethodGet, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", strings.TrimSpace(w.Body.String()))
}

func TestSaveRequiresNameAndURL(t *testing.T) {
	d := setupDeps(t)

	w := perform(d, Save, http.MethodPost, `{"channel_name":"釣りラボ"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSaveInsertsThenUpdates(t *testing.T) {
	d := setupDeps(t)

	w := perform(d, Save, http.MethodPost, `{"channel_name":"釣りラボ","channel_url":"https://youtube.com/@tsurilabo"}`)
	require.Equal(t, http.StatusOK, w.Code)

	// Saving again must overwrite the single row, not add another
	w = perform(d, Save, http.MethodPost, `{"channel_name":"釣りラボ改","channel_url":"https://youtube.com/@tsurilabo","channel_image_url":"/uploads/channel-1.png"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, d.DB.Model(model.ChannelSettings{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	w = perform(d, Fetch, http.MethodGet, "")
	require.Equal(t, http.StatusOK, w.Code)

	var got model.ChannelSettings
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "釣りラボ改", got.ChannelName)
	assert.Equal(t, "/uploads/channel-1.png", got.ChannelImageURL)
}
