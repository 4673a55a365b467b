package parents

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"ttracker_backend/internals/features/parents/model"
)

type parentSeed struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Mobile    string `json:"mobile"`
	Email     string `json:"email"`
}

// SeedParentsFromJSON inserts bootstrap parent records; existing emails
// are skipped so reruns are safe.
func SeedParentsFromJSON(db *gorm.DB, filePath string) {
	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("[ERROR] seed parents: read %s: %v", filePath, err)
		return
	}

	var inputs []parentSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Printf("[ERROR] seed parents: decode %s: %v", filePath, err)
		return
	}

	for _, data := range inputs {
		var existing model.ParentModel
		if err := db.Where("email = ?", data.Email).First(&existing).Error; err == nil {
			log.Printf("[INFO] seed parents: %q already exists, skipped", data.Email)
			continue
		}

		p := model.ParentModel{
			FirstName: data.FirstName,
			LastName:  data.LastName,
			Mobile:    data.Mobile,
			Email:     data.Email,
		}
		if err := db.Create(&p).Error; err != nil {
			log.Printf("[ERROR] seed parents: insert %q: %v", data.Email, err)
		} else {
			log.Printf("[INFO] seed parents: inserted %q", data.Email)
		}
	}
}
