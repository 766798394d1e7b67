package health

import (
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/cart-service/internal/config"
	"github.com/hellofresh/health-go/v5"
	healthHTTP "github.com/hellofresh/health-go/v5/checks/http"
	"github.com/hellofresh/health-go/v5/checks/postgres"
)

func NewHealthHandler(cfg *config.Config) (*health.Health, error) {

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    "cart-service",
			Version: "1.0.0",
		}),
		health.WithSystemInfo(),
		health.WithChecks(
			health.Config{
				Name:      "database",
				Timeout:   3 * time.Second,
				SkipOnErr: false,
				Check: postgres.New(postgres.Config{
					DSN: cfg.Database.GetDSN(),
				}),
			},
			health.Config{
				Name:    "product-service",
				Timeout: cfg.ProductService.Timeout,
				// the cart still serves reads when the product service is down
				SkipOnErr: true,
				Check: healthHTTP.New(healthHTTP.Config{
					URL: cfg.ProductService.BaseURL,
				}),
			},
		),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}
