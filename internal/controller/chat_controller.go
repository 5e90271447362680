package controller

import (
	"bufio"
	"errors"
	"io"

	"github.com/LionGx2004/cannatracker/internal/dto"
	"github.com/LionGx2004/cannatracker/internal/pkg/logger"
	"github.com/LionGx2004/cannatracker/internal/pkg/serverutils"
	"github.com/LionGx2004/cannatracker/internal/service"
	"github.com/LionGx2004/cannatracker/pkg/llm"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler, rateLimit fiber.Handler)
	Chat(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
	log         logger.ILogger
}

func NewChatController(chatService service.IChatService, log logger.ILogger) IChatController {
	return &chatController{
		chatService: chatService,
		log:         log,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router, auth fiber.Handler, rateLimit fiber.Handler) {
	h := r.Group("/chat/v1")
	h.Use(auth)
	h.Post("", rateLimit, c.Chat)
}

func (c *chatController) Chat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ErrMalformedInput
	}

	if err := serverutils.Validator().Struct(req); err != nil {
		return serverutils.MapChatValidationError(err)
	}

	token := ctx.Locals(serverutils.LocalsAccessToken).(string)

	result, err := c.chatService.Chat(ctx.Context(), token, &req)
	if err != nil {
		return c.mapChatError(err)
	}

	ctx.Set(fiber.HeaderContentType, result.ContentType)
	// Relay the upstream body chunk by chunk. Flushing after every read keeps
	// tokens moving to the client as they arrive instead of buffering the
	// whole completion.
	ctx.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		defer result.Body.Close()

		buf := make([]byte, 4096)
		for {
			n, readErr := result.Body.Read(buf)
			if n > 0 {
				if _, writeErr := w.Write(buf[:n]); writeErr != nil {
					return
				}
				if flushErr := w.Flush(); flushErr != nil {
					return
				}
			}
			if readErr != nil {
				if readErr != io.EOF {
					c.log.Warn("chat", "upstream stream ended abnormally", map[string]interface{}{
						"error": readErr.Error(),
					})
				}
				return
			}
		}
	})
	return nil
}

func (c *chatController) mapChatError(err error) error {
	switch {
	case errors.Is(err, llm.ErrRateLimited):
		return serverutils.ErrRateLimited
	case errors.Is(err, llm.ErrQuotaExhausted):
		return serverutils.ErrQuotaExhausted
	}

	var upstreamErr *llm.UpstreamError
	if errors.As(err, &upstreamErr) {
		c.log.Error("chat", "upstream gateway error", map[string]interface{}{
			"status": upstreamErr.Status,
			"body":   upstreamErr.Body,
		})
		return serverutils.ErrUpstreamUnavailable
	}

	c.log.Error("chat", "failed to open completion stream", map[string]interface{}{
		"error": err.Error(),
	})
	return serverutils.ErrUpstreamUnavailable
}
