package service

import (
	"attendix/database"
	"attendix/database/model"
	"attendix/logger"
)

// AdminService covers the admin-only operations: reviewing and approving
// teacher accounts.
type AdminService struct{}

// PendingTeacher is the row shape returned to admins for teachers
// awaiting approval.
type PendingTeacher struct {
	Id    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (s *AdminService) GetPendingTeachers() ([]PendingTeacher, error) {
	db := database.GetDB()

	teachers := make([]PendingTeacher, 0)
	err := db.Model(model.Teacher{}).
		Select("id", "name", "email").
		Where("is_approved = ?", false).
		Find(&teachers).
		Error
	if err != nil {
		logger.Warning("get pending teachers err:", err)
		return nil, ErrStoreUnavailable
	}
	return teachers, nil
}

// ApproveTeacher marks a teacher account as approved. An unknown id is
// not an error: the update simply touches no rows.
func (s *AdminService) ApproveTeacher(teacherId int) error {
	db := database.GetDB()

	err := db.Model(model.Teacher{}).
		Where("id = ?", teacherId).
		Update("is_approved", true).
		Error
	if err != nil {
		logger.Warning("approve teacher err:", err)
		return ErrStoreUnavailable
	}
	return nil
}
