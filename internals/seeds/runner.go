package seeds

import (
	"gorm.io/gorm"

	athletes "ttracker_backend/internals/seeds/athletes"
	parents "ttracker_backend/internals/seeds/parents"
	users "ttracker_backend/internals/seeds/users"
)

// RunAllSeeds loads the bootstrap fixtures. Parents go first so athlete
// rows can reference them.
func RunAllSeeds(db *gorm.DB) {
	users.SeedUsersFromJSON(db, "internals/seeds/users/data_users.json")
	parents.SeedParentsFromJSON(db, "internals/seeds/parents/data_parents.json")
	athletes.SeedAthletesFromJSON(db, "internals/seeds/athletes/data_athletes.json")
}
