package service

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/facebookgo/grace/gracehttp"
	"github.com/oklog/ulid/v2"

	"github.com/airenas/go-app/pkg/goapp"
	"github.com/airenas/listen-mock/internal/api"
	"github.com/airenas/listen-mock/internal/utils"

	"github.com/labstack/echo-contrib/prometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Data keeps data required for service work
type Data struct {
	Port int
	// MonitoringPort serves /live and /metrics, 0 - disabled
	MonitoringPort int
	ResponseFunc   func() *api.Response
}

// StartWebServer starts echo web service.
// Returned channel gets the serve error, if any, and is closed when all servers exit
func StartWebServer(data *Data) (<-chan error, error) {
	if err := validate(data); err != nil {
		return nil, err
	}
	goapp.Log.Info().Str("addr", "0.0.0.0").Int("port", data.Port).Msg("Starting listen mock service")

	servers := []*http.Server{newServer(initRoutes(data), data.Port)}
	if data.MonitoringPort > 0 {
		goapp.Log.Info().Int("port", data.MonitoringPort).Msg("Starting monitoring")
		servers = append(servers, newServer(initMonitoringRoutes(), data.MonitoringPort))
	}

	gracehttp.SetLogger(log.New(goapp.Log, "", 0))

	res := make(chan error, 1)
	go func() {
		defer close(res)
		if err := gracehttp.Serve(servers...); err != nil {
			goapp.Log.Error().Err(err).Msg("can't start web server")
			res <- fmt.Errorf("serve: %w", err)
		}
		goapp.Log.Info().Msg("exit http routine")
	}()
	return res, nil
}

func newServer(e *echo.Echo, port int) *http.Server {
	e.Server.Addr = ":" + strconv.Itoa(port)
	e.Server.ReadHeaderTimeout = 5 * time.Second
	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 10 * time.Second
	return e.Server
}

var promMdlw *prometheus.Prometheus

func init() {
	promMdlw = prometheus.NewPrometheus("listen_mock", nil)
}

func initRoutes(data *Data) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return ulid.Make().String() },
	}))
	e.Use(promMdlw.HandlerFunc)

	h := listen(data)
	for _, p := range []string{"/v1/listen", "/v1"} {
		e.Any(p, h)
		// Any covers a fixed method list only, other methods must not end in 405
		e.RouteNotFound(p, h)
	}

	logRoutes("Routes:", e)
	return e
}

func initMonitoringRoutes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.GET("/live", live)
	promMdlw.SetMetricsPath(e)

	logRoutes("Monitoring routes:", e)
	return e
}

func logRoutes(title string, e *echo.Echo) {
	goapp.Log.Info().Msg(title)
	for _, r := range e.Routes() {
		goapp.Log.Info().Msgf("  %s %s", r.Method, r.Path)
	}
}

// listen ignores the request and writes the fixed transcription result
func listen(data *Data) func(echo.Context) error {
	return func(c echo.Context) error {
		defer utils.MeasureTime("listen", time.Now())
		countResponse(c.Path())
		b, err := json.Marshal(data.ResponseFunc())
		if err != nil {
			return fmt.Errorf("marshal response: %w", err)
		}
		return c.JSONBlob(http.StatusOK, b)
	}
}

func live(c echo.Context) error {
	return c.JSONBlob(http.StatusOK, []byte(`{"service":"OK"}`))
}

func validate(data *Data) error {
	if data == nil {
		return fmt.Errorf("no data")
	}
	if data.ResponseFunc == nil {
		return fmt.Errorf("no ResponseFunc")
	}
	if err := validatePort(data.Port); err != nil {
		return fmt.Errorf("port: %w", err)
	}
	if err := validatePort(data.MonitoringPort); err != nil {
		return fmt.Errorf("monitoring port: %w", err)
	}
	if data.MonitoringPort > 0 && data.MonitoringPort == data.Port {
		return fmt.Errorf("monitoring port must differ from port %d", data.Port)
	}
	return nil
}

func validatePort(p int) error {
	if p < 0 || p > 65535 {
		return fmt.Errorf("wrong value %d", p)
	}
	return nil
}
