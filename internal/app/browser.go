package app

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/arsLnD/reviu/internal/domain/enums"
	reviewssvc "github.com/arsLnD/reviu/internal/services/reviews"
	"github.com/arsLnD/reviu/internal/session"
	"github.com/arsLnD/reviu/internal/ui"
)

func (a *App) handleReviewsCallback(ctx context.Context, chatID int64, query *tgbotapi.CallbackQuery, parts []string) (string, bool) {
	switch parts[1] {
	case "photo":
		// reviews:photo:<id>:<role>:<page>
		if len(parts) != 5 {
			return ui.AlertBadValue, true
		}
		return a.showReviewPhoto(ctx, chatID, query.From.ID, parts[2], parts[3])
	case "reply":
		// reviews:reply:<id>:<page>
		if len(parts) != 4 {
			return ui.AlertBadValue, true
		}
		return a.startReplyFlow(ctx, chatID, query.From, parts[2], parts[3])
	case "delete":
		// reviews:delete:<id>:<page>
		if len(parts) != 4 {
			return ui.AlertBadValue, true
		}
		return a.deleteFromBrowser(ctx, chatID, query, parts[2], parts[3])
	}

	// reviews:<role>:<page>
	if len(parts) != 3 {
		return ui.AlertBadValue, true
	}

	role, ok := enums.ParseRole(parts[1])
	if !ok {
		return ui.AlertBadValue, true
	}
	if role == enums.RoleAdmin && !a.accessService.IsAdmin(query.From.ID) {
		return ui.AlertNoAccess, true
	}

	page, err := parseInt(parts[2])
	if err != nil {
		return ui.AlertBadPage, true
	}

	a.renderReviewsPage(ctx, chatID, query.Message.MessageID, role, page)
	return "", false
}

func (a *App) renderReviewsPage(ctx context.Context, chatID int64, messageID int, role enums.Role, page int) {
	result, err := a.reviewsService.BrowsePage(ctx, role, page)
	if err != nil {
		a.logger.Error("load reviews page", "error", err, "page", page)
		a.sendText(chatID, ui.AlertActionFailed)
		return
	}

	if result.Total == 0 {
		a.editOrSend(chatID, messageID, ui.EmptyReviewsText(role), nil)
		return
	}

	text := ui.ReviewsPageText(role, result)
	keyboard := ui.ReviewsKeyboard(role, result.Number, result.TotalPages, result.Reviews)
	a.editOrSend(chatID, messageID, text, keyboard)
}

func (a *App) showReviewPhoto(ctx context.Context, chatID, userID int64, rawID, rawRole string) (string, bool) {
	role, ok := enums.ParseRole(rawRole)
	if !ok {
		return ui.AlertBadValue, true
	}
	if role == enums.RoleAdmin && !a.accessService.IsAdmin(userID) {
		return ui.AlertNoAccess, true
	}

	id, err := parseID(rawID)
	if err != nil {
		return ui.AlertBadValue, true
	}

	review, err := a.reviewsService.Get(ctx, id)
	if err != nil {
		if errors.Is(err, reviewssvc.ErrReviewNotFound) {
			return ui.AlertReviewNotFound, true
		}
		a.logger.Error("load review photo", "error", err, "review_id", id)
		return ui.AlertActionFailed, true
	}

	// Users see approved reviews only; a photo request must not leak an
	// unapproved one.
	if role != enums.RoleAdmin && !review.Approved {
		return ui.AlertReviewNotFound, true
	}
	if !review.HasPhoto() {
		return ui.AlertPhotoNotFound, true
	}

	if err := a.sendPhoto(chatID, review.PhotoFileID, ui.PhotoCaption(review.ID), nil); err != nil {
		a.logger.Error("send review photo", "error", err, "review_id", id)
		return ui.AlertActionFailed, true
	}
	return "", false
}

func (a *App) startReplyFlow(ctx context.Context, chatID int64, from *tgbotapi.User, rawID, rawPage string) (string, bool) {
	if !a.accessService.IsAdmin(from.ID) {
		return ui.AlertNoAccess, true
	}

	id, err := parseID(rawID)
	if err != nil {
		return ui.AlertBadValue, true
	}
	page, err := parseInt(rawPage)
	if err != nil {
		page = 1
	}

	review, err := a.reviewsService.Get(ctx, id)
	if err != nil {
		if errors.Is(err, reviewssvc.ErrReviewNotFound) {
			return ui.AlertReviewNotFound, true
		}
		a.logger.Error("load review for reply", "error", err, "review_id", id)
		return ui.AlertActionFailed, true
	}

	a.sessions.Set(from.ID, session.State{
		Step:       session.StepAwaitingReply,
		AuthorID:   from.ID,
		Username:   from.UserName,
		FullName:   displayName(from),
		ReviewID:   id,
		ReturnPage: page,
	})

	a.sendText(chatID, ui.ReplyPrompt(review))
	return "", false
}

func (a *App) deleteFromBrowser(ctx context.Context, chatID int64, query *tgbotapi.CallbackQuery, rawID, rawPage string) (string, bool) {
	if !a.accessService.IsAdmin(query.From.ID) {
		return ui.AlertNoAccess, true
	}

	id, err := parseID(rawID)
	if err != nil {
		return ui.AlertBadValue, true
	}
	page, err := parseInt(rawPage)
	if err != nil {
		page = 1
	}

	if err := a.reviewsService.Delete(ctx, id); err != nil {
		if errors.Is(err, reviewssvc.ErrReviewNotFound) {
			return ui.AlertReviewNotFound, true
		}
		a.logger.Error("delete review from browser", "error", err, "review_id", id)
		return ui.AlertActionFailed, true
	}

	a.renderReviewsPage(ctx, chatID, query.Message.MessageID, enums.RoleAdmin, page)
	return ui.ToastDeleted, false
}
