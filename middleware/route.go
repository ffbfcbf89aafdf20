package middleware

import (
	midsec "WProject/middleware/security"

	"github.com/gin-gonic/gin"
)

// RouteOpt 配置选项
type RouteOpt struct {
	IsAuth bool
	Token  string // shared secret checked when IsAuth is set; empty = open mode
}

// GET 封装 GET
func GET(r gin.IRoutes, path string, handler gin.HandlerFunc, opt RouteOpt) {
	if opt.IsAuth {
		r.GET(path,
			midsec.TokenGate(opt.Token),
			handler,
		)
	} else {
		r.GET(path, handler)
	}
}

// DELETE 封装 DELETE
func DELETE(r gin.IRoutes, path string, handler gin.HandlerFunc, opt RouteOpt) {
	if opt.IsAuth {
		r.DELETE(path,
			midsec.TokenGate(opt.Token),
			handler,
		)
	} else {
		r.DELETE(path, handler)
	}
}
