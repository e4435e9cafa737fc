package web

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

const (
	sessionAccountKey = "account_id"
	flashKey          = "flash"
)

// sessionAccountID returns the authenticated account id, if any.
func (h *Handler) sessionAccountID(c *fiber.Ctx) (uint, bool) {
	sess, err := h.sessions.Get(c)
	if err != nil {
		return 0, false
	}

	id, ok := sess.Get(sessionAccountKey).(uint64)
	if !ok || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func (h *Handler) setSessionAccountID(c *fiber.Ctx, id uint) error {
	sess, err := h.sessions.Get(c)
	if err != nil {
		return err
	}

	sess.Set(sessionAccountKey, uint64(id))
	return sess.Save()
}

func (h *Handler) destroySession(c *fiber.Ctx) error {
	sess, err := h.sessions.Get(c)
	if err != nil {
		return err
	}
	return sess.Destroy()
}

// setFlash stores a one-shot message surfaced on the next render.
func (h *Handler) setFlash(c *fiber.Ctx, msg string) {
	sess, err := h.sessions.Get(c)
	if err != nil {
		slog.Error("flash set failed", "err", err)
		return
	}

	sess.Set(flashKey, msg)
	err = sess.Save()
	if err != nil {
		slog.Error("flash save failed", "err", err)
	}
}

// takeFlash reads and clears the pending flash message.
func (h *Handler) takeFlash(c *fiber.Ctx) string {
	sess, err := h.sessions.Get(c)
	if err != nil {
		return ""
	}

	msg, ok := sess.Get(flashKey).(string)
	if !ok || msg == "" {
		return ""
	}

	sess.Delete(flashKey)
	err = sess.Save()
	if err != nil {
		slog.Error("flash clear failed", "err", err)
	}
	return msg
}
