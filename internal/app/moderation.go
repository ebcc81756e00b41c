package app

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	reviewssvc "github.com/arsLnD/reviu/internal/services/reviews"
	"github.com/arsLnD/reviu/internal/ui"
)

func (a *App) handleAdminCallback(ctx context.Context, chatID int64, query *tgbotapi.CallbackQuery, parts []string) (string, bool) {
	if parts[1] != "moderation" {
		return ui.AlertBadValue, true
	}
	if !a.accessService.IsAdmin(query.From.ID) {
		return ui.AlertNoAccess, true
	}

	a.renderModerationQueue(ctx, chatID, query.Message.MessageID)
	return "", false
}

func (a *App) handleModerationCallback(ctx context.Context, chatID int64, query *tgbotapi.CallbackQuery, parts []string) (string, bool) {
	if !a.accessService.IsAdmin(query.From.ID) {
		return ui.AlertNoAccess, true
	}
	if len(parts) != 3 {
		return ui.AlertBadValue, true
	}

	id, err := parseID(parts[2])
	if err != nil {
		return ui.AlertBadValue, true
	}

	switch parts[1] {
	case "approve":
		return a.approveReview(ctx, chatID, query.Message.MessageID, id)
	case "reject":
		return a.discardReview(ctx, chatID, query.Message.MessageID, id, ui.ToastRejected)
	case "delete":
		return a.discardReview(ctx, chatID, query.Message.MessageID, id, ui.ToastDeleted)
	}
	return ui.AlertBadValue, true
}

// renderModerationQueue shows the most recent pending review, or a single
// all-clear message when the queue is empty.
func (a *App) renderModerationQueue(ctx context.Context, chatID int64, messageID int) {
	pending, err := a.reviewsService.Pending(ctx)
	if err != nil {
		a.logger.Error("load moderation queue", "error", err)
		a.sendText(chatID, ui.AlertActionFailed)
		return
	}

	if len(pending) == 0 {
		a.editOrSend(chatID, messageID, ui.MsgQueueAllClear, nil)
		return
	}

	item := pending[0]
	text := ui.ModerationItemText(item, len(pending))
	keyboard := ui.ModerationKeyboard(item.ID)

	if item.HasPhoto() {
		// A text message cannot be edited into a photo, so the item goes
		// out as a new message.
		if err := a.sendPhoto(chatID, item.PhotoFileID, text, keyboard); err != nil {
			a.logger.Error("send moderation item photo", "error", err, "review_id", item.ID)
			a.sendInline(chatID, text, keyboard)
		}
		return
	}

	a.editOrSend(chatID, messageID, text, keyboard)
}

func (a *App) approveReview(ctx context.Context, chatID int64, messageID int, id int64) (string, bool) {
	review, err := a.reviewsService.Get(ctx, id)
	if err != nil {
		if errors.Is(err, reviewssvc.ErrReviewNotFound) {
			a.renderModerationQueue(ctx, chatID, messageID)
			return ui.AlertReviewNotFound, true
		}
		a.logger.Error("load review for approval", "error", err, "review_id", id)
		return ui.AlertActionFailed, true
	}

	if err := a.reviewsService.Approve(ctx, id); err != nil {
		if errors.Is(err, reviewssvc.ErrReviewNotFound) {
			a.renderModerationQueue(ctx, chatID, messageID)
			return ui.AlertReviewNotFound, true
		}
		a.logger.Error("approve review", "error", err, "review_id", id)
		return ui.AlertActionFailed, true
	}

	// Author notification is best-effort: a blocked bot must not block
	// moderation.
	notice := tgbotapi.NewMessage(review.UserID, ui.ApprovedNotice(review.ID))
	if err := a.tg.Send(notice); err != nil {
		a.logger.Warn("notify author about approval", "error", err, "user_id", review.UserID, "review_id", review.ID)
	}

	a.renderModerationQueue(ctx, chatID, messageID)
	return ui.ToastApproved, false
}

func (a *App) discardReview(ctx context.Context, chatID int64, messageID int, id int64, toast string) (string, bool) {
	if err := a.reviewsService.Delete(ctx, id); err != nil {
		if errors.Is(err, reviewssvc.ErrReviewNotFound) {
			a.renderModerationQueue(ctx, chatID, messageID)
			return ui.AlertReviewNotFound, true
		}
		a.logger.Error("discard review", "error", err, "review_id", id)
		return ui.AlertActionFailed, true
	}

	a.renderModerationQueue(ctx, chatID, messageID)
	return toast, false
}
