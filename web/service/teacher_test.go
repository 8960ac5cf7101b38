package service

import (
	"errors"
	"testing"
)

func TestGetClassStudentsNoClass(t *testing.T) {
	setupTestDB(t)
	teacher := createTeacher(t, "Pat Lee", "pat@example.com", "secret", true, nil)

	teacherService := TeacherService{}
	_, err := teacherService.GetClassStudents(teacher)
	if !errors.Is(err, ErrNoClassAssigned) {
		t.Fatalf("GetClassStudents() error = %v, expected ErrNoClassAssigned", err)
	}
}

func TestGetClassStudentsOrderedByName(t *testing.T) {
	setupTestDB(t)
	classId := 1 // seeded default class
	teacher := createTeacher(t, "Pat Lee", "pat@example.com", "secret", true, &classId)
	createStudent(t, "Zoe", "zoe", "secret", classId)
	createStudent(t, "Ana", "ana", "secret", classId)
	createStudent(t, "Other Class", "other", "secret", classId+1)

	teacherService := TeacherService{}
	students, err := teacherService.GetClassStudents(teacher)
	if err != nil {
		t.Fatalf("GetClassStudents() error: %v", err)
	}
	if len(students) != 2 {
		t.Fatalf("students = %d, expected 2", len(students))
	}
	if students[0].Name != "Ana" || students[1].Name != "Zoe" {
		t.Errorf("order = [%s, %s], expected [Ana, Zoe]", students[0].Name, students[1].Name)
	}
}
