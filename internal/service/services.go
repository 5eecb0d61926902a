package service

import (
	"github.com/matchday/matchday-go/internal/clock"
	"github.com/matchday/matchday-go/internal/repository/memory"
	"github.com/matchday/matchday-go/internal/service/booking"
	"github.com/matchday/matchday-go/internal/service/catalog"
	"github.com/matchday/matchday-go/internal/service/payment"
)

type Services struct {
	Catalog *catalog.Service
	Booking *booking.Service
	Payment *payment.Service
}

type Config struct {
	Catalog catalog.Config
	Payment payment.Config
}

func NewServices(store *memory.Store, clk clock.Clock, cfg Config) *Services {
	return &Services{
		Catalog: catalog.New(store, clk, cfg.Catalog),
		Booking: booking.New(store),
		Payment: payment.New(cfg.Payment),
	}
}
