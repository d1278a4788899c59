package web

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sandevgo/advogado/internal/core"
	"github.com/sandevgo/advogado/internal/service/resolver"
	"github.com/sandevgo/advogado/pkg/conv"
	"github.com/sandevgo/advogado/pkg/log"
	"github.com/twilio/twilio-go/twiml"
)

type chatRequest struct {
	Question string `json:"question"`
}

type chatResponse struct {
	Answer        string `json:"answer"`
	AnswerHTML    string `json:"answer_html"`
	UsedAPI       bool   `json:"used_api"`
	WebSearchUsed bool   `json:"web_search_used"`
}

type whatsappMessage struct {
	From string `form:"From"`
	Body string `form:"Body"`
}

func (s *Server) index(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"service": core.BotName,
		"version": core.BotVersion,
		"endpoints": fiber.Map{
			"chat":     "POST /api/chat",
			"whatsapp": "GET|POST /api/whatsapp/webhook",
			"health":   "GET /health",
		},
	})
}

func (s *Server) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": core.BotName,
		"version": core.BotVersion,
	})
}

func (s *Server) chat(c *fiber.Ctx) error {
	var req chatRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "corpo da requisição inválido")
	}

	res := s.resolver.Resolve(c.UserContext(), resolver.Request{
		Question: req.Question,
		Identity: s.webIdentity(c),
		Platform: core.PlatformWeb,
	})

	return c.JSON(chatResponse{
		Answer:        res.Answer,
		AnswerHTML:    conv.MarkdownToWebHTML([]byte(res.Answer)),
		UsedAPI:       res.UsedAPI,
		WebSearchUsed: res.WebSearchUsed,
	})
}

// webIdentity binds the user id to the session cookie, minting web_<uuid>
// the first time the resolver asks for it.
func (s *Server) webIdentity(c *fiber.Ctx) core.Identity {
	var userID string
	return core.IdentityFunc(func(ctx context.Context) (string, error) {
		if userID != "" {
			return userID, nil
		}

		sess, err := s.sessions.Get(c)
		if err != nil {
			return "", err
		}
		// Saving an existing session rolls its expiry forward.
		if id, ok := sess.Get(sessionUserKey).(string); ok && id != "" {
			if err := sess.Save(); err != nil {
				return "", err
			}
			userID = id
			return userID, nil
		}

		id := "web_" + newUUID()
		sess.Set(sessionUserKey, id)
		if err := sess.Save(); err != nil {
			return "", err
		}

		log.FromCtx(ctx).Debug().Str("user_id", id).Msg("new web session")
		userID = id
		return userID, nil
	})
}

func (s *Server) verifyWhatsApp(c *fiber.Ctx) error {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if mode == "subscribe" && token == s.whatsapp.VerifyToken {
		return c.SendString(challenge)
	}

	return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
		"status":  "error",
		"message": "Verificação de webhook falhou",
	})
}

func (s *Server) whatsappMessage(c *fiber.Ctx) error {
	logger := log.FromCtx(c.UserContext())

	if !s.validTwilioSignature(c) {
		logger.Warn().Msg("rejected whatsapp webhook with invalid signature")
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"status":  "error",
			"message": "Assinatura inválida",
		})
	}

	var msg whatsappMessage
	if err := c.BodyParser(&msg); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "payload de webhook inválido")
	}

	from := strings.TrimPrefix(strings.TrimSpace(msg.From), "whatsapp:")
	if from == "" || strings.TrimSpace(msg.Body) == "" {
		// Status callbacks carry no message body
		return c.JSON(fiber.Map{"status": "success"})
	}

	res := s.resolver.Resolve(c.UserContext(), resolver.Request{
		Question: msg.Body,
		Identity: core.StaticIdentity("whatsapp_" + from),
		Platform: core.PlatformWhatsApp,
	})

	reply, err := twiml.Messages([]twiml.Element{&twiml.MessagingMessage{Body: res.Answer}})
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	return c.SendString(reply)
}

func (s *Server) validTwilioSignature(c *fiber.Ctx) bool {
	if s.validator == nil {
		return true
	}

	url := s.whatsapp.PublicURL
	if url == "" {
		url = c.BaseURL() + c.OriginalURL()
	}

	params := make(map[string]string)
	c.Request().PostArgs().VisitAll(func(key, value []byte) {
		params[string(key)] = string(value)
	})

	return s.validator.Validate(url, params, c.Get("X-Twilio-Signature"))
}
