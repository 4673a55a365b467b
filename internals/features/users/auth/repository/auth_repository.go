package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "ttracker_backend/internals/features/users/user/model"
)

func FindUserByUsername(db *gorm.DB, username string) (*userModel.UserModel, error) {
	var u userModel.UserModel
	if err := db.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func FindUserByID(db *gorm.DB, id uuid.UUID) (*userModel.UserModel, error) {
	var u userModel.UserModel
	if err := db.First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
