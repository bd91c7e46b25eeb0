package postgresadapter

import "time"

// SystemClock implements ports.Clock for runtime wiring.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
