package model

import "time"

// Role identifies which credential table a principal lives in. Adding a
// role means extending this enum and the switches that dispatch on it,
// not hunting for string comparisons in handlers.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// ParseRole validates a client-supplied role string.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleTeacher, RoleStudent:
		return Role(s), true
	}
	return "", false
}

// Attendance status categories. Anything else counts toward the total of
// marked days but is neither present nor absent.
const (
	StatusFullDay = "Full Day"
	StatusAbsent  = "Absent"
)

// Principal is an authenticated identity record: an Admin, Teacher or
// Student row resolved from a live session.
type Principal interface {
	PrincipalId() int
	PrincipalRole() Role
	DisplayName() string
}

type Admin struct {
	Id       int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"`
}

func (a *Admin) PrincipalId() int { return a.Id }
func (a *Admin) PrincipalRole() Role { return RoleAdmin }
func (a *Admin) DisplayName() string { return a.Username }

type Teacher struct {
	Id         int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name       string `json:"name" gorm:"not null"`
	Email      string `json:"email" gorm:"uniqueIndex;not null"`
	Password   string `json:"-" gorm:"not null"`
	IsApproved bool   `json:"isApproved" gorm:"not null;default:false"`
	ClassId    *int   `json:"classId"`
}

func (t *Teacher) PrincipalId() int { return t.Id }
func (t *Teacher) PrincipalRole() Role { return RoleTeacher }
func (t *Teacher) DisplayName() string { return t.Name }

type Student struct {
	Id       int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name     string `json:"name" gorm:"not null"`
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"`
	ClassId  int    `json:"classId" gorm:"not null"`
}

func (s *Student) PrincipalId() int { return s.Id }
func (s *Student) PrincipalRole() Role { return RoleStudent }
func (s *Student) DisplayName() string { return s.Name }

type Class struct {
	Id   int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"uniqueIndex;not null"`
}

type Attendance struct {
	Id        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	StudentId int       `json:"studentId" gorm:"index;not null"`
	Date      time.Time `json:"date" gorm:"type:date;not null"`
	Status    string    `json:"status" gorm:"not null"`
	Remarks   string    `json:"remarks"`
}
