package middleware

import (
	pkgLog "github.com/prubiera85/sd-notifications/pkg/log"
)

type Middleware struct {
	l pkgLog.Logger
}

func New(l pkgLog.Logger) Middleware {
	return Middleware{
		l: l,
	}
}
