// Package controller provides the HTTP handlers of the attendix backend:
// session login plus the role-gated admin, teacher and student endpoints.
package controller

import (
	"errors"
	"net/http"

	"attendix/database/model"
	"attendix/web/service"
	"attendix/web/session"

	"github.com/gin-gonic/gin"
)

const principalKey = "PRINCIPAL"

// BaseController provides the authorization gate shared by all role-gated
// controllers.
type BaseController struct {
	authService service.AuthService
}

// requireRole returns a middleware that admits only sessions of exactly
// the given role and stores the resolved principal in the request
// context. It runs before any handler side effect. A stale session whose
// account no longer exists gets the same 401 as an anonymous caller.
func (a *BaseController) requireRole(role model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, err := a.authService.Authorize(session.GetLoginUser(c), role)
		if err != nil {
			if errors.Is(err, service.ErrStoreUnavailable) {
				pureJsonMsg(c, http.StatusInternalServerError, false, service.ErrStoreUnavailable.Error())
			} else {
				pureJsonMsg(c, http.StatusUnauthorized, false, "Unauthorized")
			}
			c.Abort()
			return
		}
		c.Set(principalKey, principal)
		c.Next()
	}
}

// loginPrincipal returns the principal resolved by requireRole. Only
// valid on routes behind the gate.
func loginPrincipal(c *gin.Context) model.Principal {
	return c.MustGet(principalKey).(model.Principal)
}
