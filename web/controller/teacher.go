package controller

import (
	"errors"
	"net/http"

	"attendix/database/model"
	"attendix/web/service"

	"github.com/gin-gonic/gin"
)

// TeacherController handles the teacher-only endpoints.
type TeacherController struct {
	BaseController

	teacherService service.TeacherService
}

// NewTeacherController creates a new TeacherController and initializes its routes.
func NewTeacherController(g *gin.RouterGroup) *TeacherController {
	a := &TeacherController{}
	a.initRouter(g)
	return a
}

func (a *TeacherController) initRouter(g *gin.RouterGroup) {
	g.Use(a.requireRole(model.RoleTeacher))

	g.GET("/students", a.students)
}

func (a *TeacherController) students(c *gin.Context) {
	teacher := loginPrincipal(c).(*model.Teacher)

	students, err := a.teacherService.GetClassStudents(teacher)
	if err != nil {
		if errors.Is(err, service.ErrNoClassAssigned) {
			pureJsonMsg(c, http.StatusNotFound, false, err.Error())
		} else {
			pureJsonMsg(c, http.StatusInternalServerError, false, err.Error())
		}
		return
	}
	jsonObj(c, gin.H{"students": students})
}
