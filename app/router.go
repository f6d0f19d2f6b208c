// Package app wires the HTTP surface together
package app

import (
	"fmt"
	"strings"
	"time"

	"channeldesk/channel-api/app/auth"
	"channeldesk/channel-api/app/channel"
	"channeldesk/channel-api/app/plan"
	"channeldesk/channel-api/app/posted"
	"channeldesk/channel-api/app/root"
	"channeldesk/channel-api/app/stats"
	"channeldesk/channel-api/app/template"
	"channeldesk/channel-api/app/upload"
	"channeldesk/channel-api/db"
	"channeldesk/channel-api/internal"
	"channeldesk/channel-api/internal/service"
	"channeldesk/channel-api/internal/storage"
	"channeldesk/channel-api/pkg/middleware"
	"channeldesk/channel-api/pkg/security"

	cache "github.com/chenyahui/gin-cache"
	"github.com/chenyahui/gin-cache/persist"
	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

var store = persist.NewMemoryStore(time.Minute)

func NewRouter() (*gin.Engine, error) {
	makeLogger()

	d := &internal.Deps{
		Argon: security.New(),
	}

	database, err := db.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}
	d.DB = database

	if err := db.Bootstrap(database, d.Argon); err != nil {
		return nil, err
	}

	switch viper.GetString("storage.type") {
	case "s3":
		s3, err := storage.NewS3()
		if err != nil {
			return nil, fmt.Errorf("failed to initialize S3 client, %w", err)
		}

		d.Store = s3
	default:
		local, err := storage.NewLocal(viper.GetString("upload.dir"))
		if err != nil {
			return nil, err
		}

		d.Store = local
	}

	if key := viper.GetString("youtube.api_key"); key != "" {
		d.YouTube = service.NewYouTubeClient(key)
	}

	router := gin.New()

	origins := strings.Split(viper.GetString("host.cors"), ",")

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     origins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				return fields
			},
		}),
	)

	router.HandleMethodNotAllowed = true
	router.RedirectFixedPath = true
	router.MaxMultipartMemory = 5 << 20

	if _, ok := d.Store.(*storage.LocalStore); ok {
		router.Static("/uploads", viper.GetString("upload.dir"))
	}

	session := middleware.NewSessionMiddleware(database)
	maxUploadSize := viper.GetInt64("upload.max_size")

	m := router.Group("/api")
	{
		// HEAD /api/heartbeat 		-> Used to check if the server is alive
		m.HEAD("/heartbeat", root.Heartbeat)

		// POST /api/login 		-> Starts a session and sets the session cookie
		m.POST("/login", middleware.BodySizeLimiter(1<<20), func(c *gin.Context) { auth.Login(c, d) })

		// POST /api/logout		-> Kills the current session
		m.POST("/logout", session, func(c *gin.Context) { auth.Logout(c, d) })

		// GET /api/user-info		-> Returns the logged in user's name
		m.GET("/user-info", session, func(c *gin.Context) { auth.UserInfo(c, d) })

		// POST /api/change-username	-> Renames the account
		m.POST("/change-username", session, func(c *gin.Context) { auth.ChangeUsername(c, d) })

		// POST /api/change-password	-> Changes the account password
		m.POST("/change-password", session, func(c *gin.Context) { auth.ChangePassword(c, d) })
	}

	p := m.Group("/video-plans", session)
	{
		// GET /api/video-plans			-> Lists plans with optional posted/search filters
		p.GET("", func(c *gin.Context) { plan.List(c, d) })

		// GET /api/video-plans/next-no		-> Suggests the next free plan number
		p.GET("/next-no", cacheFor(5), func(c *gin.Context) { plan.NextNo(c, d) })

		// GET /api/video-plans/draft		-> Returns the shared scratch draft
		p.GET("/draft", func(c *gin.Context) { plan.DraftFetch(c, d) })

		// POST /api/video-plans/draft		-> Saves the shared scratch draft
		p.POST("/draft", func(c *gin.Context) { plan.DraftSave(c, d) })

		// GET /api/video-plans/:id		-> Returns a single plan
		p.GET("/:id", func(c *gin.Context) { plan.Fetch(c, d) })

		// POST /api/video-plans		-> Creates a plan, numbering it when no is absent
		p.POST("", func(c *gin.Context) { plan.Create(c, d) })

		// PUT /api/video-plans/:id		-> Updates a plan, promoting it when is_posted flips
		p.PUT("/:id", func(c *gin.Context) { plan.Update(c, d) })

		// DELETE /api/video-plans/:id		-> Deletes a plan
		p.DELETE("/:id", func(c *gin.Context) { plan.Delete(c, d) })

		// POST /api/video-plans/bulk-delete	-> Deletes several plans at once
		p.POST("/bulk-delete", func(c *gin.Context) { plan.BulkDelete(c, d) })

		// POST /api/video-plans/bulk-move-to-posted -> Marks several plans posted and mirrors them
		p.POST("/bulk-move-to-posted", func(c *gin.Context) { plan.BulkPromote(c, d) })

		// POST /api/video-plans/import-csv	-> Inserts rows parsed from a CSV upload
		p.POST("/import-csv", func(c *gin.Context) { plan.ImportCSV(c, d) })
	}

	v := m.Group("/posted-videos", session)
	{
		// GET /api/posted-videos	-> Lists posted videos with type/search filters
		v.GET("", func(c *gin.Context) { posted.List(c, d) })

		// POST /api/posted-videos	-> Records a posted video by hand
		v.POST("", func(c *gin.Context) { posted.Create(c, d) })

		// PUT /api/posted-videos/:id	-> Updates a posted video
		v.PUT("/:id", func(c *gin.Context) { posted.Update(c, d) })

		// DELETE /api/posted-videos/:id -> Deletes a posted video
		v.DELETE("/:id", func(c *gin.Context) { posted.Delete(c, d) })

		// POST /api/posted-videos/bulk-delete -> Deletes several posted videos at once
		v.POST("/bulk-delete", func(c *gin.Context) { posted.BulkDelete(c, d) })
	}

	t := m.Group("/templates", session)
	{
		// GET /api/templates		-> Lists templates, newest first
		t.GET("", func(c *gin.Context) { template.List(c, d) })

		// GET /api/templates/:id	-> Returns a single template
		t.GET("/:id", func(c *gin.Context) { template.Fetch(c, d) })

		// POST /api/templates		-> Creates a template
		t.POST("", func(c *gin.Context) { template.Create(c, d) })

		// PUT /api/templates/:id	-> Updates a template
		t.PUT("/:id", func(c *gin.Context) { template.Update(c, d) })

		// DELETE /api/templates/:id	-> Deletes a template
		t.DELETE("/:id", func(c *gin.Context) { template.Delete(c, d) })
	}

	s := m.Group("", session)
	{
		// GET /api/channel		-> Returns the channel settings or null
		s.GET("/channel", func(c *gin.Context) { channel.Fetch(c, d) })

		// POST /api/channel		-> Creates or updates the channel settings
		s.POST("/channel", func(c *gin.Context) { channel.Save(c, d) })

		// GET /api/statistics		-> Aggregated dashboard counters
		s.GET("/statistics", cacheFor(30), func(c *gin.Context) { stats.Statistics(c, d) })

		// POST /api/fetch-youtube-videos -> Pulls recent uploads from the channel
		s.POST("/fetch-youtube-videos", func(c *gin.Context) { posted.Ingest(c, d) })

		// POST /api/upload-image	-> Stores a channel image
		s.POST("/upload-image", middleware.BodySizeLimiter(maxUploadSize), func(c *gin.Context) { upload.ChannelImage(c, d) })

		// POST /api/upload-thumbnail	-> Stores a video thumbnail
		s.POST("/upload-thumbnail", middleware.BodySizeLimiter(maxUploadSize), func(c *gin.Context) { upload.Thumbnail(c, d) })
	}

	// Expired sessions pile up slowly, an hourly sweep is plenty
	service.SessionCleanup(time.Hour, database)

	return router, nil
}

func makeLogger() {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + reset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + reset)
	}

	cfg.DisableStacktrace = true

	if lvl, err := zapcore.ParseLevel(viper.GetString("app.log_level")); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}

func cacheFor(sec int) gin.HandlerFunc {
	return cache.CacheByRequestURI(store, time.Second*time.Duration(sec))
}
