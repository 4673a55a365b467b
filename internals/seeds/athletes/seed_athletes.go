package athletes

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"ttracker_backend/internals/features/athletes/model"
)

type athleteSeed struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Gender    string `json:"gender"`
	Birthdate string `json:"birthdate"`
	School    string `json:"school"`
}

// SeedAthletesFromJSON inserts bootstrap athlete records; an existing
// first/last name pair is skipped so reruns are safe.
func SeedAthletesFromJSON(db *gorm.DB, filePath string) {
	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("[ERROR] seed athletes: read %s: %v", filePath, err)
		return
	}

	var inputs []athleteSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Printf("[ERROR] seed athletes: decode %s: %v", filePath, err)
		return
	}

	for _, data := range inputs {
		var existing model.AthleteModel
		err := db.Where("first_name = ? AND last_name = ?", data.FirstName, data.LastName).
			First(&existing).Error
		if err == nil {
			log.Printf("[INFO] seed athletes: %s %s already exists, skipped", data.FirstName, data.LastName)
			continue
		}

		bd, err := time.Parse("2006-01-02", data.Birthdate)
		if err != nil {
			log.Printf("[ERROR] seed athletes: bad birthdate for %s %s: %v", data.FirstName, data.LastName, err)
			continue
		}

		a := model.AthleteModel{
			FirstName: data.FirstName,
			LastName:  data.LastName,
			Gender:    data.Gender,
			Birthdate: datatypes.Date(bd),
			Active:    true,
		}
		if data.School != "" {
			school := data.School
			a.School = &school
		}
		if err := db.Create(&a).Error; err != nil {
			log.Printf("[ERROR] seed athletes: insert %s %s: %v", data.FirstName, data.LastName, err)
		} else {
			log.Printf("[INFO] seed athletes: inserted %s %s", data.FirstName, data.LastName)
		}
	}
}
