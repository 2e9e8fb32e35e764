package middleware

import (
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
)

// PrivateOnly пропускает только личные сообщения: в группах бот молчит.
func PrivateOnly() th.Handler {
	return func(ctx *th.Context, update telego.Update) error {
		if update.Message == nil || update.Message.Chat.Type != telego.ChatTypePrivate {
			return nil
		}

		return ctx.Next(update)
	}
}
