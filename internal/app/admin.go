package app

import (
	"context"
	"errors"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/arsLnD/reviu/internal/domain/enums"
	reviewssvc "github.com/arsLnD/reviu/internal/services/reviews"
	"github.com/arsLnD/reviu/internal/session"
	"github.com/arsLnD/reviu/internal/ui"
)

func (a *App) handleWelcomeCallback(ctx context.Context, chatID int64, query *tgbotapi.CallbackQuery, parts []string) (string, bool) {
	if parts[1] != "edit" {
		return ui.AlertBadValue, true
	}
	if !a.accessService.IsAdmin(query.From.ID) {
		return ui.AlertNoAccess, true
	}

	a.sessions.Set(query.From.ID, session.State{
		Step:     session.StepAwaitingWelcome,
		AuthorID: query.From.ID,
		Username: query.From.UserName,
		FullName: displayName(query.From),
	})

	a.sendText(chatID, ui.MsgWelcomePrompt)
	return "", false
}

// handleWelcomeContent stores the next message from the editing admin as the
// new welcome post: plain text, or a photo/video with the text in the caption.
func (a *App) handleWelcomeContent(ctx context.Context, message *tgbotapi.Message, state session.State) {
	if !a.accessService.IsAdmin(message.From.ID) {
		a.sessions.Clear(message.From.ID)
		return
	}

	text := message.Text
	kind := enums.MediaKindNone
	fileID := ""

	switch {
	case len(message.Photo) > 0:
		text = message.Caption
		kind = enums.MediaKindPhoto
		fileID = message.Photo[len(message.Photo)-1].FileID
	case message.Video != nil:
		text = message.Caption
		kind = enums.MediaKindVideo
		fileID = message.Video.FileID
	}

	if strings.TrimSpace(text) == "" {
		a.sendText(message.Chat.ID, ui.MsgWelcomeEmpty)
		return
	}

	if err := a.welcomeService.Update(ctx, text, kind, fileID, message.From.ID); err != nil {
		a.logger.Error("update welcome post", "error", err, "admin_id", message.From.ID)
		a.sendText(message.Chat.ID, ui.AlertActionFailed)
		return
	}

	a.sessions.Clear(message.From.ID)
	a.sendText(message.Chat.ID, ui.MsgWelcomeUpdated)
}

// handleAdminReply attaches the admin's message to the review picked in the
// browser and forwards it to the review's author. The reply is stored even
// when the author cannot be reached; the admin is told which of the two
// happened.
func (a *App) handleAdminReply(ctx context.Context, message *tgbotapi.Message, state session.State) {
	adminID := message.From.ID
	if !a.accessService.IsAdmin(adminID) {
		a.sessions.Clear(adminID)
		return
	}

	replyText := strings.TrimSpace(message.Text)
	if replyText == "" {
		a.sendText(message.Chat.ID, ui.MsgReplyEmpty)
		return
	}

	review, err := a.reviewsService.Get(ctx, state.ReviewID)
	if err != nil {
		if errors.Is(err, reviewssvc.ErrReviewNotFound) {
			a.sessions.Clear(adminID)
			a.sendText(message.Chat.ID, ui.MsgReplyLost)
			return
		}
		a.logger.Error("load review for reply", "error", err, "review_id", state.ReviewID)
		a.sendText(message.Chat.ID, ui.AlertActionFailed)
		return
	}

	if err := a.reviewsService.Reply(ctx, review.ID, adminID, message.From.UserName, replyText); err != nil {
		if errors.Is(err, reviewssvc.ErrReviewNotFound) {
			a.sessions.Clear(adminID)
			a.sendText(message.Chat.ID, ui.MsgReplyLost)
			return
		}
		a.logger.Error("store admin reply", "error", err, "review_id", review.ID)
		a.sendText(message.Chat.ID, ui.AlertActionFailed)
		return
	}

	a.sessions.Clear(adminID)

	notice := tgbotapi.NewMessage(review.UserID, ui.ReplyNotice(review.ID, replyText))
	if err := a.tg.Send(notice); err != nil {
		a.logger.Warn("deliver admin reply", "error", err, "user_id", review.UserID, "review_id", review.ID)
		a.sendText(message.Chat.ID, ui.MsgReplyStored)
	} else {
		a.sendText(message.Chat.ID, ui.MsgReplySent)
	}

	// Back to the browser page the reply button was pressed on.
	a.renderReviewsPage(ctx, message.Chat.ID, 0, enums.RoleAdmin, state.ReturnPage)
}
