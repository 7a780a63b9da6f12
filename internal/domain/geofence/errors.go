package geofence

import "errors"

var (
	ErrConfigNotFound = errors.New("geofence config not found")
)
