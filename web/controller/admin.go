package controller

import (
	"net/http"

	"attendix/database/model"
	"attendix/web/entity"
	"attendix/web/service"

	"github.com/gin-gonic/gin"
)

// ApproveTeacherForm represents the approve_teacher request structure.
type ApproveTeacherForm struct {
	TeacherId int `json:"teacher_id" form:"teacher_id"`
}

// AdminController handles the admin-only endpoints for reviewing and
// approving teacher accounts.
type AdminController struct {
	BaseController

	adminService service.AdminService
}

// NewAdminController creates a new AdminController and initializes its routes.
func NewAdminController(g *gin.RouterGroup) *AdminController {
	a := &AdminController{}
	a.initRouter(g)
	return a
}

func (a *AdminController) initRouter(g *gin.RouterGroup) {
	g.Use(a.requireRole(model.RoleAdmin))

	g.GET("/pending_teachers", a.pendingTeachers)
	g.POST("/approve_teacher", a.approveTeacher)
}

func (a *AdminController) pendingTeachers(c *gin.Context) {
	teachers, err := a.adminService.GetPendingTeachers()
	if err != nil {
		pureJsonMsg(c, http.StatusInternalServerError, false, err.Error())
		return
	}
	jsonObj(c, gin.H{"teachers": teachers})
}

// approveTeacher flips a teacher's approval flag. An unknown teacher id
// is accepted and touches nothing, matching the plain UPDATE semantics.
func (a *AdminController) approveTeacher(c *gin.Context) {
	var form ApproveTeacherForm
	if err := c.ShouldBind(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid request")
		return
	}

	if err := a.adminService.ApproveTeacher(form.TeacherId); err != nil {
		pureJsonMsg(c, http.StatusInternalServerError, false, err.Error())
		return
	}
	jsonObj(c, entity.Msg{Success: true, Message: "Teacher approved."})
}
