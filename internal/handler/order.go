package handler

import (
	"context"
	"fmt"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"

	"BistroHub/internal/middleware"
	"BistroHub/internal/model/dto"
	"BistroHub/internal/service"
	pkgerrors "BistroHub/pkg/errors"
	"BistroHub/pkg/response"
)

// ListOrders 订单列表
// GET /v1/orders
func ListOrders(ctx context.Context, c *app.RequestContext) {
	partnerID, ok := middleware.GetPartnerIDInt(ctx, c)
	if !ok {
		response.Error(ctx, c, fmt.Errorf("partner ID not found in context"))
		return
	}

	var req dto.ListOrdersRequest
	if err := c.Bind(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.Order().List(ctx, partnerID, &req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// GetOrder 订单详情
// GET /v1/orders/:order_id
func GetOrder(ctx context.Context, c *app.RequestContext) {
	partnerID, ok := middleware.GetPartnerIDInt(ctx, c)
	if !ok {
		response.Error(ctx, c, fmt.Errorf("partner ID not found in context"))
		return
	}

	orderID, err := strconv.ParseInt(c.Param("order_id"), 10, 64)
	if err != nil {
		response.Error(ctx, c, pkgerrors.OrderNotFound)
		return
	}

	result, err := service.Order().Get(ctx, partnerID, orderID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// UpdateOrderStatus 订单状态流转
// PATCH /v1/orders/:order_id/status
func UpdateOrderStatus(ctx context.Context, c *app.RequestContext) {
	partnerID, ok := middleware.GetPartnerIDInt(ctx, c)
	if !ok {
		response.Error(ctx, c, fmt.Errorf("partner ID not found in context"))
		return
	}

	orderID, err := strconv.ParseInt(c.Param("order_id"), 10, 64)
	if err != nil {
		response.Error(ctx, c, pkgerrors.OrderNotFound)
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.Order().UpdateStatus(ctx, partnerID, orderID, req.Status)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}
