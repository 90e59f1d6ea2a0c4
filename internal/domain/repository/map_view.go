package repository

import (
	"time"

	"github.com/velib-client/internal/domain"
)

// MapView is the rendering capability the core drives. AnimateToRegion is
// fire-and-forget: callers never wait for the animation to complete.
type MapView interface {
	AnimateToRegion(region domain.GeoRegion, duration time.Duration)
}
