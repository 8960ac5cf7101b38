package service

import (
	"errors"

	"attendix/database"
	"attendix/database/model"
	"attendix/logger"
)

// ErrNoClassAssigned reports a teacher who has not been assigned a class
// yet and therefore has no student roster.
var ErrNoClassAssigned = errors.New("teacher not assigned to a class")

// TeacherService covers the teacher-only operations.
type TeacherService struct{}

// ClassStudent is the roster row shape returned to teachers.
type ClassStudent struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
}

// GetClassStudents lists the students of the teacher's class, ordered by
// name.
func (s *TeacherService) GetClassStudents(teacher *model.Teacher) ([]ClassStudent, error) {
	if teacher.ClassId == nil {
		return nil, ErrNoClassAssigned
	}

	db := database.GetDB()

	students := make([]ClassStudent, 0)
	err := db.Model(model.Student{}).
		Select("id", "name").
		Where("class_id = ?", *teacher.ClassId).
		Order("name").
		Find(&students).
		Error
	if err != nil {
		logger.Warning("get class students err:", err)
		return nil, ErrStoreUnavailable
	}
	return students, nil
}
