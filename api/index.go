package handler

import (
	"net/http"

	"github.com/Fairanova/2026-room-booking-backend/config"
	"github.com/Fairanova/2026-room-booking-backend/di"
	"github.com/Fairanova/2026-room-booking-backend/shared/logger"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	handler := di.InitializeService()
	handler.ServeHTTP(w, r)
}
