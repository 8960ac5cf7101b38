package controller

import (
	"net"
	"net/http"
	"strings"

	"attendix/web/entity"

	"github.com/gin-gonic/gin"
)

// getRemoteIp extracts the real IP address from the request headers or remote address.
func getRemoteIp(c *gin.Context) string {
	value := c.GetHeader("X-Real-IP")
	if value != "" {
		return value
	}
	value = c.GetHeader("X-Forwarded-For")
	if value != "" {
		ips := strings.Split(value, ",")
		return ips[0]
	}
	addr := c.Request.RemoteAddr
	ip, _, _ := net.SplitHostPort(addr)
	return ip
}

// jsonObj sends an endpoint-specific response object with status 200.
func jsonObj(c *gin.Context, obj any) {
	c.JSON(http.StatusOK, obj)
}

// pureJsonMsg sends a status-only message body with the given HTTP status.
func pureJsonMsg(c *gin.Context, statusCode int, success bool, msg string) {
	c.JSON(statusCode, entity.Msg{
		Success: success,
		Message: msg,
	})
}
