package timezone

import (
	"salon/config"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	appLocation = time.UTC

	// Studio zones are resolved on every availability request.
	locations sync.Map
)

func init() {
	name := config.Get().App.Timezone
	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")

		return
	}

	loc, err := load(name)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", name).
			Msg("Failed to load timezone, falling back to UTC. Use IANA names such as 'Asia/Jakarta' or 'America/New_York'")

		return
	}

	appLocation = loc

	log.Info().Str("timezone", loc.String()).Msg("Application timezone initialized")
}

func load(name string) (*time.Location, error) {
	if cached, ok := locations.Load(name); ok {
		return cached.(*time.Location), nil //nolint:forcetypeassert
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	locations.Store(name, loc)

	return loc, nil
}

// Now returns the current time in the application timezone.
func Now() time.Time {
	return time.Now().In(appLocation)
}

func ToAppTime(t time.Time) time.Time {
	return t.In(appLocation)
}

func GetLocation() *time.Location {
	return appLocation
}

// Parse reads value in the application timezone.
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, appLocation) //nolint:wrapcheck
}

func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

// IsValid reports whether tz names a loadable IANA location.
func IsValid(tz string) bool {
	if tz == "" {
		return false
	}

	_, err := load(tz)

	return err == nil
}

// Location resolves a studio timezone, falling back to the application timezone.
func Location(tz string) *time.Location {
	if tz == "" {
		return appLocation
	}

	loc, err := load(tz)
	if err != nil {
		log.Warn().Str("timezone", tz).Msg("Unknown studio timezone, using application timezone")

		return appLocation
	}

	return loc
}

// NowIn returns the current wall clock of the given studio timezone.
func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}
