package main

import (
	"github.com/Fairanova/2026-room-booking-backend/config"
	"github.com/Fairanova/2026-room-booking-backend/di"
	"github.com/Fairanova/2026-room-booking-backend/shared/logger"
)

// @title Room Booking API
// @version 1.0
// @description Shared room reservation service.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
