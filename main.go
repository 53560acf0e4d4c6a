package main

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"tavola/configs"
	"tavola/routes"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := configs.LoadConfig()

	configs.ConnectionDB(cfg.DBSource)
	configs.SetupDatabase()
	if err := configs.SeedAdmin(cfg); err != nil {
		log.WithError(err).Fatal("seeding admin failed")
	}
	if err := configs.SeedMenu(); err != nil {
		log.WithError(err).Fatal("seeding menu failed")
	}

	r := gin.Default()
	routes.RegisterRoutes(r, cfg, log)

	log.WithField("port", cfg.Port).Info("tavola listening")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}
