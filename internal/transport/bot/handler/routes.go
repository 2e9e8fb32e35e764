package handler

import (
	th "github.com/mymmrac/telego/telegohandler"

	"namevalue/internal/transport/bot/middleware"
)

func (h *Handler) RegisterRoutes(bh *th.BotHandler, privateOnly bool) {
	group := bh.Group(th.AnyMessage())
	if privateOnly {
		group.Use(middleware.PrivateOnly())
	}

	// Команды
	group.HandleMessage(h.OnStart, th.CommandEqual("start"))
	group.HandleMessage(h.OnStart, th.CommandEqual("help"))
	group.HandleMessage(h.OnGrades, th.CommandEqual("grades"))

	// Любой другой текст считаем именем
	group.HandleMessage(h.OnName, th.AnyMessageWithText())
}
