package handler

import (
	"github.com/ItzArrav/nothingroms-admin/internal/common/httpx"

	"github.com/gin-gonic/gin"
)

func WriteServiceError(c *gin.Context, err error, fallbackMessage string) {
	httpx.WriteServiceError(c, err, fallbackMessage)
}
