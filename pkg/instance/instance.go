package instance

import "github.com/angelmondragon/applestore-backend/pkg/env"

// GetID returns the process instance identifier used in startup logs: the
// platform dyno name, then the container hostname, then "local".
func GetID() string {
	return env.FirstOf("local", "APPLESTORE_INSTANCE_ID", "DYNO", "HOSTNAME")
}
