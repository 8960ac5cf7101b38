package controller

import (
	"net/http"

	"attendix/database/model"
	"attendix/web/service"

	"github.com/gin-gonic/gin"
)

// StudentController handles the student-only endpoints.
type StudentController struct {
	BaseController

	studentService service.StudentService
}

// NewStudentController creates a new StudentController and initializes its routes.
func NewStudentController(g *gin.RouterGroup) *StudentController {
	a := &StudentController{}
	a.initRouter(g)
	return a
}

func (a *StudentController) initRouter(g *gin.RouterGroup) {
	g.Use(a.requireRole(model.RoleStudent))

	g.GET("/data", a.data)
}

func (a *StudentController) data(c *gin.Context) {
	student := loginPrincipal(c).(*model.Student)

	summary, err := a.studentService.GetAttendance(student.Id)
	if err != nil {
		pureJsonMsg(c, http.StatusInternalServerError, false, err.Error())
		return
	}
	jsonObj(c, summary)
}
