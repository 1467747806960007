package webhook

import (
	"github.com/prubiera85/sd-notifications/internal/notification"
	pkgLog "github.com/prubiera85/sd-notifications/pkg/log"
)

type Handler struct {
	notificationUC notification.UseCase
	security       *SecurityValidator
	parser         *LinearWebhookParser
	l              pkgLog.Logger
}

func NewHandler(
	notificationUC notification.UseCase,
	securityConfig SecurityConfig,
	l pkgLog.Logger,
) *Handler {
	return &Handler{
		notificationUC: notificationUC,
		security:       NewSecurityValidator(securityConfig),
		parser:         NewLinearParser(),
		l:              l,
	}
}
