package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/airenas/go-app/pkg/goapp"
	"github.com/airenas/listen-mock/internal/api"
	"github.com/airenas/listen-mock/internal/service"
	"github.com/labstack/gommon/color"
)

func main() {
	goapp.StartWithDefault()

	printBanner()

	cfg := goapp.Config
	cfg.SetDefault("port", 8081)
	cfg.SetDefault("monitoring.port", 0)

	data := &service.Data{}
	data.Port = cfg.GetInt("port")
	data.MonitoringPort = cfg.GetInt("monitoring.port")
	data.ResponseFunc = api.NewResponse

	doneCh, err := service.StartWebServer(data)
	if err != nil {
		goapp.Log.Fatal().Err(err).Msg("can't start web server")
	}

	/////////////////////// Waiting for terminate
	waitCh := make(chan os.Signal, 2)
	signal.Notify(waitCh, os.Interrupt, syscall.SIGTERM)
	select {
	case <-waitCh:
		goapp.Log.Info().Msg("Got exit signal")
	case err := <-doneCh:
		if err != nil {
			goapp.Log.Fatal().Err(err).Msg("can't serve")
		}
		goapp.Log.Info().Msg("Service exit")
	}
	select {
	case <-doneCh:
		goapp.Log.Info().Msg("All code returned. Now exit. Bye")
	case <-time.After(time.Second * 15):
		goapp.Log.Warn().Msg("Timeout gracefull shutdown")
	}
}

var (
	version = "DEV"
)

func printBanner() {
	banner :=
		`
    LISTEN MOCK v: %s
	
%s
________________________________________________________

`
	cl := color.New()
	cl.Printf(banner, cl.Red(version), cl.Green("https://github.com/airenas/listen-mock"))
}
