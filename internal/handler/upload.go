package handler

import (
	"context"
	"fmt"

	"github.com/cloudwego/hertz/pkg/app"

	"BistroHub/internal/middleware"
	"BistroHub/internal/service"
	"BistroHub/pkg/response"
)

// UploadFile 上传证照/流水等文件，返回后续表单引用的 storage_key
// POST /v1/uploads
func UploadFile(ctx context.Context, c *app.RequestContext) {
	partnerID, ok := middleware.GetPartnerIDInt(ctx, c)
	if !ok {
		response.Error(ctx, c, fmt.Errorf("partner ID not found in context"))
		return
	}

	kind := c.PostForm("kind")
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.Upload().Store(ctx, partnerID, kind, fileHeader)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}
