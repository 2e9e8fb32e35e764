package handler

import (
	"bytes"
	"fmt"
	"log/slog"

	"git.appkode.ru/pub/go/failure"
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"

	"namevalue/internal/domain/service/valuation"
	"namevalue/internal/transport/bot/view"
	"namevalue/pkg/logx"
)

func (h *Handler) OnStart(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, view.StartMessage)
}

func (h *Handler) OnGrades(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, view.GradesMessage())
}

// OnName оценка и карточка. Не удалась карточка: текст уже отправлен,
// пользователь получает короткое уведомление.
func (h *Handler) OnName(ctx *th.Context, msg telego.Message) error {
	chatID := msg.Chat.ID

	name, v, err := h.svc.Evaluate(ctx, msg.Text)
	if err != nil {
		if failure.IsInvalidArgumentError(err) {
			return h.sendText(ctx, chatID, view.InvalidNameMessage)
		}

		return fmt.Errorf("svc.Evaluate: %w", err)
	}

	if err := h.sendHTML(ctx, chatID, view.ValuationMessage(name, v)); err != nil {
		return err
	}

	png, err := h.svc.ExportCard(ctx, name)
	if err != nil {
		logger(ctx).Warn("card export for bot failed",
			slog.Int64(logx.FieldChatID, chatID),
			slog.Int(logx.FieldMessageID, msg.MessageID),
			logx.Error(err),
		)
		return h.sendText(ctx, chatID, view.ExportFailedMessage)
	}

	photo := tu.Photo(
		tu.ID(chatID),
		tu.File(tu.NameReader(bytes.NewReader(png), valuation.DownloadFilename(name.String()))),
	).WithCaption(view.CardCaption(name, v))

	if _, err := ctx.Bot().SendPhoto(ctx, photo); err != nil {
		return fmt.Errorf("bot.SendPhoto: %w", err)
	}

	return nil
}

func (h *Handler) sendHTML(ctx *th.Context, chatID int64, text string) error {
	_, err := ctx.Bot().SendMessage(ctx, tu.Message(tu.ID(chatID), text).WithParseMode(telego.ModeHTML))
	if err != nil {
		return fmt.Errorf("bot.SendMessage: %w", err)
	}

	return nil
}

func (h *Handler) sendText(ctx *th.Context, chatID int64, text string) error {
	if _, err := ctx.Bot().SendMessage(ctx, tu.Message(tu.ID(chatID), text)); err != nil {
		return fmt.Errorf("bot.SendMessage: %w", err)
	}

	return nil
}
