package middleware

import (
	pkgLog "retail-analytics/pkg/log"
)

type Middleware struct {
	l           pkgLog.Logger
	internalKey string
}

func New(l pkgLog.Logger, internalKey string) Middleware {
	return Middleware{
		l:           l,
		internalKey: internalKey,
	}
}
