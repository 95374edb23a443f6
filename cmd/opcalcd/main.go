// Command opcalcd serves the option calculator over HTTP.
//
// The listen address comes from -addr, the OPCALC_ADDR environment variable,
// or a local .env file, in that order of precedence; the default is :8080.
package main

import (
	"flag"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/mfg-nyu/opcalc/server"
)

func main() {
	if os.Getenv("OPCALC_ADDR") == "" {
		godotenv.Load()
	}

	addr := flag.String("addr", "", "listen address (overrides OPCALC_ADDR)")
	flag.Parse()

	listen := *addr
	if listen == "" {
		listen = os.Getenv("OPCALC_ADDR")
	}
	if listen == "" {
		listen = ":8080"
	}

	log := logrus.New()

	router := gin.Default()
	server.NewHandler(log).RegisterRoutes(router)

	log.WithField("addr", listen).Info("opcalcd listening")
	if err := router.Run(listen); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
