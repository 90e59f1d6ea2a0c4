package repository

import (
	"context"

	"github.com/velib-client/internal/domain"
)

// PermissionStatus is the state of the foreground-location permission.
type PermissionStatus string

const (
	PermissionGranted      PermissionStatus = "granted"
	PermissionDenied       PermissionStatus = "denied"
	PermissionUndetermined PermissionStatus = "undetermined"
)

// Accuracy selects the position-fix mode.
type Accuracy string

const (
	AccuracyHigh     Accuracy = "high"
	AccuracyBalanced Accuracy = "balanced"
)

// LocationProvider is the platform location service: permission handling
// plus position fixes. Implementations are platform bindings and out of
// scope here; tests use fakes.
type LocationProvider interface {
	Permission(ctx context.Context) (PermissionStatus, error)
	RequestPermission(ctx context.Context) (PermissionStatus, error)
	CurrentPosition(ctx context.Context, accuracy Accuracy) (domain.Coordinate, error)
}
