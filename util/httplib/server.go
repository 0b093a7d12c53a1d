package httplib

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/GDVFox/ladderlogic/util"
)

// HTTPConfig настройки для работы встроенного http сервера.
type HTTPConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	ShutdownTimeout util.Duration `yaml:"shutdown_timeout"`
}

// NewHTTPConfig создает HTTPConfig с настройками по-умолчанию.
func NewHTTPConfig() *HTTPConfig {
	return &HTTPConfig{
		Host:            "0.0.0.0",
		Port:            8080,
		ShutdownTimeout: util.Duration(10 * time.Second),
	}
}

// GetAddr возвращает адрес в виде host:port
func (c *HTTPConfig) GetAddr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

// StartServer запускает http сервер с обработчиком h
// и останавливает его при закрытии stopChannel.
func StartServer(h http.Handler, cfg *HTTPConfig, logger *util.Logger, stopChannel <-chan struct{}) {
	srv := &http.Server{
		Addr:    cfg.GetAddr(),
		Handler: h,
	}

	errChannel := make(chan error)
	go func() {
		defer close(errChannel)
		errChannel <- srv.ListenAndServe()
	}()

	logger.Infof("started server at %s", cfg.GetAddr())
	select {
	case <-stopChannel:
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeout))
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to gracefully shut down server: ", err)
		}
	case err := <-errChannel:
		logger.Error(err)
	}
	logger.Info("server was stopped")
}
