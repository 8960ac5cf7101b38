package service

import (
	"attendix/database"
	"attendix/database/model"
	"attendix/util/common"
	"attendix/util/crypto"
)

// UserService maintains the bootstrap admin credentials from the CLI.
type UserService struct{}

func (s *UserService) GetFirstAdmin() (*model.Admin, error) {
	db := database.GetDB()

	admin := &model.Admin{}
	err := db.Model(model.Admin{}).
		First(admin).
		Error
	if err != nil {
		return nil, err
	}
	return admin, nil
}

// UpdateFirstAdmin resets the first admin's username and password,
// creating the account when none exists.
func (s *UserService) UpdateFirstAdmin(username string, password string) error {
	if username == "" {
		return common.NewError("username can not be empty")
	} else if password == "" {
		return common.NewError("password can not be empty")
	}
	hashedPassword, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		return err
	}

	db := database.GetDB()
	admin := &model.Admin{}
	err = db.Model(model.Admin{}).First(admin).Error
	if database.IsNotFound(err) {
		admin.Username = username
		admin.Password = hashedPassword
		return db.Model(model.Admin{}).Create(admin).Error
	} else if err != nil {
		return err
	}
	admin.Username = username
	admin.Password = hashedPassword
	return db.Save(admin).Error
}
