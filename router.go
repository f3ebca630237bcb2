package main

import (
	handler "essay-grader/biz/adaptor/controller"
	"essay-grader/biz/adaptor/controller/apigateway"

	"github.com/cloudwego/hertz/pkg/app/server"
)

// customizeRegister registers customize routers.
func customizedRegister(r *server.Hertz) {
	r.GET("/ping", handler.Ping)

	api := r.Group("/api")
	{
		api.POST("/grade", apigateway.Grade)
		api.POST("/grade/logs", apigateway.GetGradeLogs)
	}
}
