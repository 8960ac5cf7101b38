package controller

import (
	"net/http"

	"attendix/config"
	"attendix/database/model"
	"attendix/logger"
	"attendix/web/entity"
	"attendix/web/service"
	"attendix/web/session"

	"github.com/gin-gonic/gin"
)

// LoginForm represents the login request structure.
type LoginForm struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
	Role     string `json:"role" form:"role"`
}

// IndexController handles the root route and the login/logout endpoints.
type IndexController struct {
	BaseController

	authService service.AuthService
}

// NewIndexController creates a new IndexController and initializes its routes.
func NewIndexController(g *gin.RouterGroup, api *gin.RouterGroup) *IndexController {
	a := &IndexController{}
	a.initRouter(g, api)
	return a
}

func (a *IndexController) initRouter(g *gin.RouterGroup, api *gin.RouterGroup) {
	g.GET("/", a.index)

	api.POST("/login", a.login)
	api.POST("/logout", a.logout)
}

func (a *IndexController) index(c *gin.Context) {
	c.String(http.StatusOK, "Backend is running!")
}

// login authenticates against the credential table selected by the
// claimed role and binds the session to the resolved principal. A bad
// identifier and a bad password produce the identical response.
func (a *IndexController) login(c *gin.Context) {
	var form LoginForm

	if err := c.ShouldBind(&form); err != nil {
		pureJsonMsg(c, http.StatusUnauthorized, false, service.ErrInvalidCredentials.Error())
		return
	}

	role, ok := model.ParseRole(form.Role)
	if !ok {
		logger.Warningf("login with unknown role %q, IP: %q", form.Role, getRemoteIp(c))
		pureJsonMsg(c, http.StatusUnauthorized, false, service.ErrInvalidCredentials.Error())
		return
	}

	principal, err := a.authService.Login(form.Username, form.Password, role)
	if err != nil {
		switch err {
		case service.ErrAccountNotApproved:
			logger.Warningf("login for unapproved teacher %q, IP: %q", form.Username, getRemoteIp(c))
			pureJsonMsg(c, http.StatusForbidden, false, service.ErrAccountNotApproved.Error())
		case service.ErrStoreUnavailable:
			pureJsonMsg(c, http.StatusInternalServerError, false, service.ErrStoreUnavailable.Error())
		default:
			logger.Warningf("wrong credentials for %s %q, IP: %q", role, form.Username, getRemoteIp(c))
			pureJsonMsg(c, http.StatusUnauthorized, false, service.ErrInvalidCredentials.Error())
		}
		return
	}

	if err := session.SetMaxAge(c, config.GetSessionMaxAge()*60); err != nil {
		logger.Warning("unable to set session max age:", err)
	}
	if err := session.SetLoginUser(c, session.User{Id: principal.PrincipalId(), Role: role}); err != nil {
		logger.Warning("unable to save session:", err)
		pureJsonMsg(c, http.StatusInternalServerError, false, service.ErrStoreUnavailable.Error())
		return
	}

	logger.Infof("%s %q logged in successfully, IP: %q", role, form.Username, getRemoteIp(c))
	jsonObj(c, entity.LoginResponse{
		Success: true,
		User: entity.LoginUser{
			Id:   principal.PrincipalId(),
			Name: principal.DisplayName(),
		},
	})
}

// logout destroys the session unconditionally. Logging out twice, or with
// no session at all, both succeed.
func (a *IndexController) logout(c *gin.Context) {
	if user := session.GetLoginUser(c); user != nil {
		logger.Infof("%s %d logged out successfully", user.Role, user.Id)
	}
	if err := session.ClearSession(c); err != nil {
		logger.Warning("unable to clear session:", err)
	}
	jsonObj(c, entity.Msg{Success: true, Message: "Logged out successfully."})
}
