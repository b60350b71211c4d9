package handlers

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/funkybooboo/alle-sub000/internal/adapter/http/dto"
	"github.com/funkybooboo/alle-sub000/internal/adapter/http/middleware"
)

const (
	StatusOk             = "ok"
	StatusDown           = "down"
	healthStorageTimeout = 2 * time.Second
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type SubscriberCounter interface {
	Clients() int
}

type HealthHandler struct {
	storage     Pinger
	subscribers SubscriberCounter
}

func NewHealthHandler(storage Pinger, subscribers SubscriberCounter) *HealthHandler {
	return &HealthHandler{storage: storage, subscribers: subscribers}
}

func (h *HealthHandler) CheckHealth(c *gin.Context) {
	c.JSON(http.StatusOK, dto.Data[dto.HealthStatus]{Data: dto.HealthStatus{Status: StatusOk}})
}

func (h *HealthHandler) CheckHealthReport(c *gin.Context) {
	storageStatus := StatusDown
	if h.checkStorage(c.Request.Context()) {
		storageStatus = StatusOk
	}

	clients := 0
	if h.subscribers != nil {
		clients = h.subscribers.Clients()
	}

	c.JSON(http.StatusOK, dto.HealthReport{
		AppName:           os.Getenv("APP_NAME"),
		AppVersion:        getAppVersion(),
		CurrentSystemTime: time.Now().Format("2006-01-02 15:04:05"),
		Language:          middleware.GetLang(c),
		Status: dto.HealthServices{
			Storage:    storageStatus,
			Websockets: clients,
		},
	})
}

func (h *HealthHandler) checkStorage(ctx context.Context) bool {
	if h.storage == nil {
		return false
	}
	timeoutCtx, cancel := context.WithTimeout(ctx, healthStorageTimeout)
	defer cancel()
	return h.storage.Ping(timeoutCtx) == nil
}

func getAppVersion() string {
	version := os.Getenv("APP_VERSION")
	if version == "" {
		return "dev"
	}
	return version
}
