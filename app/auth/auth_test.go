package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"channeldesk/channel-api/internal"
	"channeldesk/channel-api/internal/model"
	"channeldesk/channel-api/pkg/security"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	viper.Set("session.secret", "0123456789abcdef0123456789abcdef")
	viper.Set("session.max_age", 3600)

	m.Run()
}

func setupDeps(t *testing.T) *internal.Deps {
	t.Helper()

	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(model.User{}, model.Session{}))

	return &internal.Deps{DB: db, Argon: security.New()}
}

func createUser(t *testing.T, d *internal.Deps, username, password string) model.User {
	t.Helper()

	hash, err := d.Argon.GenerateFromPassword(password)
	require.NoError(t, err)

	u := model.User{Username: username, PasswordHash: hash}
	require.NoError(t, d.DB.Create(&u).Error)
	return u
}

func perform(d *internal.Deps, handler func(*gin.Context, *internal.Deps), body string, values map[string]any) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("requestID", "test")

	for k, v := range values {
		c.Set(k, v)
	}

	handler(c, d)
	return w
}

func TestLoginSetsSessionCookie(t *testing.T) {
	d := setupDeps(t)
	createUser(t, d, "admin", "hunter22")

	w := perform(d, Login, `{"username":"admin","password":"hunter22"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "session_token" {
			cookie = c
		}
	}

	require.NotNil(t, cookie)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)

	var count int64
	require.NoError(t, d.DB.Model(model.Session{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	d := setupDeps(t)
	createUser(t, d, "admin", "hunter22")

	w := perform(d, Login, `{"username":"admin","password":"nope"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var count int64
	require.NoError(t, d.DB.Model(model.Session{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestLoginRejectsUnknownUser(t *testing.T) {
	d := setupDeps(t)

	w := perform(d, Login, `{"username":"ghost","password":"whatever"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginRequiresBothFields(t *testing.T) {
	d := setupDeps(t)

	w := perform(d, Login, `{"username":"admin"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogoutDeletesSession(t *testing.T) {
	d := setupDeps(t)
	u := createUser(t, d, "admin", "hunter22")

	s := model.Session{ID: "sess-1", UserID: u.ID}
	require.NoError(t, d.DB.Create(&s).Error)

	w := perform(d, Logout, "", map[string]any{"sessionID": s.ID})
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, d.DB.Model(model.Session{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestChangeUsernameRejectsTaken(t *testing.T) {
	d := setupDeps(t)
	u := createUser(t, d, "admin", "hunter22")
	createUser(t, d, "other", "hunter22")

	w := perform(d, ChangeUsername, `{"newUsername":"other"}`, map[string]any{"userID": u.ID})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChangeUsername(t *testing.T) {
	d := setupDeps(t)
	u := createUser(t, d, "admin", "hunter22")

	w := perform(d, ChangeUsername, `{"newUsername":"  captain  "}`, map[string]any{"userID": u.ID})
	require.Equal(t, http.StatusOK, w.Code)

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, "captain", out["username"])

	var updated model.User
	require.NoError(t, d.DB.First(&updated, u.ID).Error)
	assert.Equal(t, "captain", updated.Username)
}

func TestChangePassword(t *testing.T) {
	d := setupDeps(t)
	u := createUser(t, d, "admin", "hunter22")

	w := perform(d, ChangePassword, `{"currentPassword":"wrong","newPassword":"newpass1"}`, map[string]any{"userID": u.ID})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = perform(d, ChangePassword, `{"currentPassword":"hunter22","newPassword":"newpass1"}`, map[string]any{"userID": u.ID})
	require.Equal(t, http.StatusOK, w.Code)

	var updated model.User
	require.NoError(t, d.DB.First(&updated, u.ID).Error)

	ok, err := d.Argon.VerifyPasswd("newpass1", updated.PasswordHash)
	require.NoError(t, err)
	assert.True(t, ok)
}
