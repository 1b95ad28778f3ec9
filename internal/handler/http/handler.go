// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"

	"github.com/MKhiriev/go-ask-me/internal/config"
	"github.com/MKhiriev/go-ask-me/internal/logger"
	"github.com/MKhiriev/go-ask-me/internal/service"
	"github.com/MKhiriev/go-ask-me/internal/utils"
)

type Handler struct {
	services *service.Services
	gate     SessionGate
	pages    *pageRenderer

	traceIDs      *utils.UUIDGenerator
	secureCookies bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handler, error) {
	pages, err := newPageRenderer()
	if err != nil {
		return nil, fmt.Errorf("error parsing page templates: %w", err)
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		gate:          ContextSessionGate{},
		pages:         pages,
		traceIDs:      utils.NewUUIDGenerator(),
		secureCookies: cfg.SecureCookies,
		logger:        logger,
	}, nil
}
