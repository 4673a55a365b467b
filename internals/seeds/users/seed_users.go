package users

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	authService "ttracker_backend/internals/features/users/auth/service"
	"ttracker_backend/internals/features/users/user/model"
)

type userSeed struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Gender    string `json:"gender"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	Mobile    string `json:"mobile"`
	Role      string `json:"role"`
}

// SeedUsersFromJSON inserts bootstrap accounts; existing usernames are
// skipped so reruns are safe.
func SeedUsersFromJSON(db *gorm.DB, filePath string) {
	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("[ERROR] seed users: read %s: %v", filePath, err)
		return
	}

	var inputs []userSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Printf("[ERROR] seed users: decode %s: %v", filePath, err)
		return
	}

	for _, data := range inputs {
		var existing model.UserModel
		if err := db.Where("username = ?", data.Username).First(&existing).Error; err == nil {
			log.Printf("[INFO] seed users: %q already exists, skipped", data.Username)
			continue
		}

		hashed, err := authService.HashPassword(data.Password)
		if err != nil {
			log.Printf("[ERROR] seed users: hash password for %q: %v", data.Username, err)
			continue
		}

		u := model.UserModel{
			FirstName: data.FirstName,
			LastName:  data.LastName,
			Gender:    data.Gender,
			Username:  data.Username,
			Password:  hashed,
			Mobile:    data.Mobile,
			Role:      data.Role,
			Active:    true,
		}
		u.SetDefaultValues()

		if err := db.Create(&u).Error; err != nil {
			log.Printf("[ERROR] seed users: insert %q: %v", data.Username, err)
		} else {
			log.Printf("[INFO] seed users: inserted %q", data.Username)
		}
	}
}
