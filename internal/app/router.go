package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/arsLnD/reviu/internal/domain/enums"
	"github.com/arsLnD/reviu/internal/domain/model"
	"github.com/arsLnD/reviu/internal/infra/telegram"
	"github.com/arsLnD/reviu/internal/session"
	"github.com/arsLnD/reviu/internal/ui"
)

const (
	callbackPrefixReview     = "review"
	callbackPrefixReviews    = "reviews"
	callbackPrefixAdmin      = "admin"
	callbackPrefixModeration = "moderation"
	callbackPrefixWelcome    = "welcome"
)

func (a *App) routeUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.Message != nil {
		a.routeMessage(ctx, update.Message)
	}

	if update.CallbackQuery != nil {
		a.handleCallback(ctx, update.CallbackQuery)
	}
}

func (a *App) routeMessage(ctx context.Context, message *tgbotapi.Message) {
	if message == nil || message.From == nil {
		return
	}

	if message.IsCommand() && message.Command() == "start" {
		a.handleStart(ctx, message)
		return
	}

	// An active flow consumes every message from its user, commands
	// included: /skip is a valid answer at the media step.
	state, ok := a.sessions.Get(message.From.ID)
	if ok {
		switch state.Step {
		case session.StepAwaitingText:
			a.handleReviewText(ctx, message, state)
			return
		case session.StepAwaitingMedia:
			a.handleReviewMedia(ctx, message, state)
			return
		case session.StepAwaitingReply:
			a.handleAdminReply(ctx, message, state)
			return
		case session.StepAwaitingWelcome:
			a.handleWelcomeContent(ctx, message, state)
			return
		}
	}

	if message.IsCommand() {
		a.sendText(message.Chat.ID, ui.MsgUnknownCommand)
	}
}

func (a *App) handleStart(ctx context.Context, message *tgbotapi.Message) {
	from := message.From

	if err := a.accessService.TouchUser(ctx, model.BotUser{
		TgID:       from.ID,
		Username:   from.UserName,
		FullName:   displayName(from),
		LastSeenAt: time.Now().UTC(),
	}); err != nil {
		a.logger.Warn("touch bot user", "error", err, "tg_id", from.ID)
	}

	role := a.accessService.RoleFor(from.ID)
	a.sendWelcomePost(ctx, message.Chat.ID, role)
}

func (a *App) sendWelcomePost(ctx context.Context, chatID int64, role enums.Role) {
	post, err := a.welcomeService.Get(ctx)
	if err != nil {
		a.logger.Error("load welcome post", "error", err)
		a.sendText(chatID, ui.AlertActionFailed)
		return
	}

	markup := telegram.BuildInlineKeyboard(ui.StartMenu(role))

	switch {
	case post.MediaKind == enums.MediaKindPhoto && post.MediaFileID != "":
		photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileID(post.MediaFileID))
		photo.Caption = post.Text
		photo.ReplyMarkup = markup
		if err := a.tg.Send(photo); err != nil {
			a.logger.Error("send welcome photo", "error", err, "chat_id", chatID)
		}
	case post.MediaKind == enums.MediaKindVideo && post.MediaFileID != "":
		video := tgbotapi.NewVideo(chatID, tgbotapi.FileID(post.MediaFileID))
		video.Caption = post.Text
		video.ReplyMarkup = markup
		if err := a.tg.Send(video); err != nil {
			a.logger.Error("send welcome video", "error", err, "chat_id", chatID)
		}
	default:
		a.sendInline(chatID, post.Text, ui.StartMenu(role))
	}
}

func (a *App) handleCallback(ctx context.Context, query *tgbotapi.CallbackQuery) {
	if query == nil || query.From == nil {
		return
	}

	chatID, ok := callbackChatID(query)
	if !ok {
		a.answerCallback(query.ID, "", false)
		return
	}

	ackText := ""
	ackAlert := false
	defer func() {
		a.answerCallback(query.ID, ackText, ackAlert)
	}()

	parts := strings.Split(query.Data, ":")
	if len(parts) < 2 {
		ackText, ackAlert = ui.AlertBadValue, true
		return
	}

	switch parts[0] {
	case callbackPrefixReview:
		ackText, ackAlert = a.handleReviewCallback(ctx, chatID, query, parts)
	case callbackPrefixReviews:
		ackText, ackAlert = a.handleReviewsCallback(ctx, chatID, query, parts)
	case callbackPrefixAdmin:
		ackText, ackAlert = a.handleAdminCallback(ctx, chatID, query, parts)
	case callbackPrefixModeration:
		ackText, ackAlert = a.handleModerationCallback(ctx, chatID, query, parts)
	case callbackPrefixWelcome:
		ackText, ackAlert = a.handleWelcomeCallback(ctx, chatID, query, parts)
	}
}

func (a *App) sendText(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if err := a.tg.Send(msg); err != nil {
		a.logger.Error("send message", "error", fmt.Errorf("chat=%d: %w", chatID, err))
	}
}

func (a *App) sendInline(chatID int64, text string, rows [][]telegram.InlineButton) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = telegram.BuildInlineKeyboard(rows)
	if err := a.tg.Send(msg); err != nil {
		a.logger.Error("send inline message", "error", err, "chat_id", chatID)
	}
}

func (a *App) sendPhoto(chatID int64, fileID, caption string, rows [][]telegram.InlineButton) error {
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileID(fileID))
	photo.Caption = caption
	if len(rows) > 0 {
		photo.ReplyMarkup = telegram.BuildInlineKeyboard(rows)
	}
	return a.tg.Send(photo)
}

// editOrSend replaces the originating message in place. In-place edits cannot
// turn a media message into a text message, so any edit failure falls back to
// a fresh message. A zero messageID means there is nothing to edit and the
// text goes out as a new message right away.
func (a *App) editOrSend(chatID int64, messageID int, text string, rows [][]telegram.InlineButton) {
	if messageID <= 0 {
		if len(rows) > 0 {
			a.sendInline(chatID, text, rows)
			return
		}
		a.sendText(chatID, text)
		return
	}

	var edit tgbotapi.Chattable
	if len(rows) > 0 {
		edit = tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, telegram.BuildInlineKeyboard(rows))
	} else {
		edit = tgbotapi.NewEditMessageText(chatID, messageID, text)
	}

	if err := a.tg.Send(edit); err != nil {
		a.logger.Debug("edit message failed, sending new one", "error", err, "chat_id", chatID)
		if len(rows) > 0 {
			a.sendInline(chatID, text, rows)
			return
		}
		a.sendText(chatID, text)
	}
}

func (a *App) answerCallback(callbackID, text string, alert bool) {
	cfg := tgbotapi.NewCallback(callbackID, text)
	cfg.ShowAlert = alert
	if err := a.tg.Request(cfg); err != nil {
		a.logger.Warn("answer callback", "error", err)
	}
}

func callbackChatID(query *tgbotapi.CallbackQuery) (int64, bool) {
	if query == nil || query.Message == nil {
		return 0, false
	}
	return query.Message.Chat.ID, true
}

func parseID(raw string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
}

func parseInt(raw string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(raw))
}

func displayName(user *tgbotapi.User) string {
	return strings.TrimSpace(strings.TrimSpace(user.FirstName) + " " + strings.TrimSpace(user.LastName))
}
