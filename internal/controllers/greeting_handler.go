// Package controllers 提供传输层 Handler，负责处理外部请求并调用业务层。
package controllers

import (
	"github.com/bionicotaku/lingo-services-greeter/internal/controllers/dto"
	"github.com/bionicotaku/lingo-services-greeter/internal/services"
	"github.com/bionicotaku/lingo-services-greeter/internal/views"

	kerrors "github.com/go-kratos/kratos/v2/errors"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
)

// GreetingHandler 是问候服务的 HTTP 传输层处理器。
// 负责将 JSON 请求转换为业务层调用，并将结果渲染为响应载荷。
type GreetingHandler struct {
	*BaseHandler

	uc *services.GreetingUsecase
}

// NewGreetingHandler 构造一个由 GreetingUsecase 支撑的 HTTP Handler。
func NewGreetingHandler(uc *services.GreetingUsecase, base *BaseHandler) *GreetingHandler {
	if base == nil {
		base = NewBaseHandler(HandlerTimeouts{})
	}
	return &GreetingHandler{BaseHandler: base, uc: uc}
}

// RegisterRoutes 将问候相关的路由挂载到 HTTP 服务器。
// 路由手工注册，不依赖任何代码生成产物。
func (h *GreetingHandler) RegisterRoutes(srv *khttp.Server) {
	r := srv.Route("/v1")
	r.POST("/greetings", h.CreateGreeting)
	r.GET("/greetings/{id}", h.GetGreeting)
	r.GET("/greetings", h.ListGreetings)
}

// CreateGreeting 处理 POST /v1/greetings：组装并持久化一条问候记录。
func (h *GreetingHandler) CreateGreeting(ctx khttp.Context) error {
	var req dto.CreateGreetingRequest
	if err := ctx.Bind(&req); err != nil {
		return kerrors.BadRequest("GREETING_BODY_INVALID", err.Error())
	}

	meta := h.ExtractMetadata(ctx)
	timeoutCtx, cancel := h.WithTimeout(ctx, HandlerTypeCommand)
	defer cancel()
	timeoutCtx = InjectHandlerMetadata(timeoutCtx, meta)

	greeting, err := h.uc.CreateGreeting(timeoutCtx, req.Suffix)
	if err != nil {
		return err
	}
	return ctx.Result(200, views.NewGreetingReply(greeting))
}

// GetGreeting 处理 GET /v1/greetings/{id}：按 ID 查询问候记录。
func (h *GreetingHandler) GetGreeting(ctx khttp.Context) error {
	greetingID, err := dto.ParseGreetingID(ctx.Vars().Get("id"))
	if err != nil {
		return kerrors.BadRequest("GREETING_ID_INVALID", err.Error())
	}

	timeoutCtx, cancel := h.WithTimeout(ctx, HandlerTypeQuery)
	defer cancel()

	greeting, err := h.uc.GetGreeting(timeoutCtx, greetingID)
	if err != nil {
		return err
	}
	return ctx.Result(200, views.NewGreetingReply(greeting))
}

// ListGreetings 处理 GET /v1/greetings：查询最近记录，可选按后缀过滤。
func (h *GreetingHandler) ListGreetings(ctx khttp.Context) error {
	input, err := dto.ToListGreetingsInput(ctx.Query())
	if err != nil {
		return kerrors.BadRequest("GREETING_QUERY_INVALID", err.Error())
	}

	timeoutCtx, cancel := h.WithTimeout(ctx, HandlerTypeQuery)
	defer cancel()

	greetings, err := h.uc.ListGreetings(timeoutCtx, input)
	if err != nil {
		return err
	}
	return ctx.Result(200, views.NewGreetingListReply(greetings))
}
