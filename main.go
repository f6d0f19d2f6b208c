package main

import (
	"strconv"

	"channeldesk/channel-api/app"
	"channeldesk/channel-api/config"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	gin.SetMode(gin.ReleaseMode)

	err := config.Setup()
	if err != nil {
		panic(err)
	}

	router, err := app.NewRouter()
	if err != nil {
		panic(err)
	}

	port := viper.GetInt("host.port")

	zap.L().Info("Server starting", zap.Int("port", port))

	err = router.Run(":" + strconv.Itoa(port))
	if err != nil {
		panic(err)
	}
}
