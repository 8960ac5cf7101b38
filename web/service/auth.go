package service

import (
	"errors"

	"attendix/database"
	"attendix/database/model"
	"attendix/logger"
	"attendix/util/crypto"
	"attendix/web/session"
)

// Authentication and authorization failure kinds. Controllers translate
// these into HTTP statuses; raw store errors never leave the service layer.
var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrPrincipalNotFound  = errors.New("principal not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAccountNotApproved = errors.New("account not approved by admin")
	ErrStoreUnavailable   = errors.New("a database error occurred")
)

// AuthService implements login and the per-request authorization gate.
type AuthService struct{}

// Login authenticates an identifier/password pair against the credential
// table selected by role. Admins and students log in by username,
// teachers by email. A missing identifier and a wrong password are
// indistinguishable to the caller.
func (s *AuthService) Login(identifier string, password string, role model.Role) (model.Principal, error) {
	principal, hash, err := s.findForLogin(identifier, role)
	if err != nil {
		return nil, err
	}
	if !crypto.CheckPasswordHash(hash, password) {
		return nil, ErrInvalidCredentials
	}
	return principal, nil
}

// findForLogin resolves the login identifier in the role's credential
// table and returns the stored password hash alongside the principal.
// The approval gate for teachers runs here, before password verification.
func (s *AuthService) findForLogin(identifier string, role model.Role) (model.Principal, string, error) {
	db := database.GetDB()

	switch role {
	case model.RoleAdmin:
		admin := &model.Admin{}
		err := db.Model(model.Admin{}).
			Where("username = ?", identifier).
			First(admin).
			Error
		if err != nil {
			return nil, "", s.loginLookupError(err)
		}
		return admin, admin.Password, nil

	case model.RoleTeacher:
		teacher := &model.Teacher{}
		err := db.Model(model.Teacher{}).
			Where("email = ?", identifier).
			First(teacher).
			Error
		if err != nil {
			return nil, "", s.loginLookupError(err)
		}
		if !teacher.IsApproved {
			return nil, "", ErrAccountNotApproved
		}
		return teacher, teacher.Password, nil

	case model.RoleStudent:
		student := &model.Student{}
		err := db.Model(model.Student{}).
			Where("username = ?", identifier).
			First(student).
			Error
		if err != nil {
			return nil, "", s.loginLookupError(err)
		}
		return student, student.Password, nil
	}

	return nil, "", ErrInvalidCredentials
}

func (s *AuthService) loginLookupError(err error) error {
	if database.IsNotFound(err) {
		return ErrInvalidCredentials
	}
	logger.Warning("login lookup err:", err)
	return ErrStoreUnavailable
}

// Authorize gates a role-restricted operation. It fails with
// ErrUnauthorized when there is no session or the session's role is not
// exactly the required one; there is no escalation or degradation between
// roles. On success it returns the freshly loaded principal, so a session
// whose account was deleted is rejected rather than partially trusted.
func (s *AuthService) Authorize(sess *session.User, required model.Role) (model.Principal, error) {
	if sess == nil || sess.Role != required {
		return nil, ErrUnauthorized
	}

	principal, err := s.loadPrincipal(sess.Id, required)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, ErrPrincipalNotFound
		}
		logger.Warning("authorize principal load err:", err)
		return nil, ErrStoreUnavailable
	}
	return principal, nil
}

func (s *AuthService) loadPrincipal(id int, role model.Role) (model.Principal, error) {
	db := database.GetDB()

	switch role {
	case model.RoleAdmin:
		admin := &model.Admin{}
		if err := db.First(admin, id).Error; err != nil {
			return nil, err
		}
		return admin, nil
	case model.RoleTeacher:
		teacher := &model.Teacher{}
		if err := db.First(teacher, id).Error; err != nil {
			return nil, err
		}
		return teacher, nil
	case model.RoleStudent:
		student := &model.Student{}
		if err := db.First(student, id).Error; err != nil {
			return nil, err
		}
		return student, nil
	}

	return nil, ErrUnauthorized
}
