package admin

import "github.com/ItzArrav/nothingroms-admin/internal/service"

type Handler struct {
	service *service.AppService
}

func NewHandler(appService *service.AppService) *Handler {
	return &Handler{service: appService}
}
