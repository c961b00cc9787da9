package http

import (
	"github.com/MKhiriev/go-shop-admin/internal/logger"
	"github.com/MKhiriev/go-shop-admin/internal/stubapi"
)

type Handler struct {
	services *stubapi.Services

	logger *logger.Logger
}

func NewHandler(services *stubapi.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}
