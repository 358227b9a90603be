package domain

import "errors"

// ErrDistanceOutOfRange is returned when a distance is beyond the last tariff zone.
// The message is shown to the user as-is.
var ErrDistanceOutOfRange = errors.New("Distance exceeds Zone 5 (500 km) supported by this tariff.")
