package app

import (
	"context"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/arsLnD/reviu/internal/domain/model"
	"github.com/arsLnD/reviu/internal/session"
	"github.com/arsLnD/reviu/internal/ui"
)

func (a *App) handleReviewCallback(ctx context.Context, chatID int64, query *tgbotapi.CallbackQuery, parts []string) (string, bool) {
	switch parts[1] {
	case "new":
		return a.startReviewFlow(chatID, query.From)
	case "rating":
		if len(parts) != 3 {
			return ui.AlertBadValue, true
		}
		return a.handleRatingPick(chatID, query.From.ID, parts[2])
	case "skip_media":
		return a.handleSkipMedia(ctx, chatID, query.From.ID)
	}
	return ui.AlertBadValue, true
}

// startReviewFlow begins a fresh submission, discarding any flow the user
// already had in progress.
func (a *App) startReviewFlow(chatID int64, from *tgbotapi.User) (string, bool) {
	a.sessions.Set(from.ID, session.State{
		Step:     session.StepAwaitingRating,
		AuthorID: from.ID,
		Username: from.UserName,
		FullName: displayName(from),
	})

	a.sendInline(chatID, ui.MsgAskRating, ui.RatingKeyboard())
	return "", false
}

func (a *App) handleRatingPick(chatID, userID int64, raw string) (string, bool) {
	state, ok := a.sessions.Get(userID)
	if !ok || state.Step != session.StepAwaitingRating || state.AuthorID != userID {
		return ui.AlertNotForYou, true
	}

	rating, err := parseInt(raw)
	if err != nil || rating < 1 || rating > 5 {
		return ui.AlertBadValue, true
	}

	state.Rating = rating
	state.Step = session.StepAwaitingText
	a.sessions.Set(userID, state)

	a.sendText(chatID, ui.MsgAskText)
	return "", false
}

func (a *App) handleReviewText(ctx context.Context, message *tgbotapi.Message, state session.State) {
	if message.From.ID != state.AuthorID {
		return
	}

	text := strings.TrimSpace(message.Text)
	if text == "" {
		a.sendText(message.Chat.ID, ui.MsgTextReprompt)
		return
	}

	state.Text = text
	state.Step = session.StepAwaitingMedia
	a.sessions.Set(message.From.ID, state)

	a.sendInline(message.Chat.ID, ui.MsgAskMedia, ui.SkipMediaKeyboard())
}

func (a *App) handleReviewMedia(ctx context.Context, message *tgbotapi.Message, state session.State) {
	if message.From.ID != state.AuthorID {
		return
	}

	if len(message.Photo) > 0 {
		// Telegram sends several resolutions; the last one is the largest.
		state.PhotoFileID = message.Photo[len(message.Photo)-1].FileID
		a.finalizeReview(ctx, message.Chat.ID, state)
		return
	}

	if isSkipWord(message.Text) {
		a.finalizeReview(ctx, message.Chat.ID, state)
		return
	}

	a.sendText(message.Chat.ID, ui.MsgMediaReprompt)
}

func (a *App) handleSkipMedia(ctx context.Context, chatID, userID int64) (string, bool) {
	state, ok := a.sessions.Get(userID)
	if !ok || state.Step != session.StepAwaitingMedia || state.AuthorID != userID {
		return ui.AlertNotForYou, true
	}

	a.finalizeReview(ctx, chatID, state)
	return "", false
}

// finalizeReview persists the collected submission. On a storage error the
// session is kept so the user can retry the last step.
func (a *App) finalizeReview(ctx context.Context, chatID int64, state session.State) {
	if state.Rating == 0 || state.Text == "" {
		a.sessions.Clear(state.AuthorID)
		a.sendText(chatID, ui.MsgReviewAbandon)
		return
	}

	review := model.Review{
		UserID:      state.AuthorID,
		Username:    state.Username,
		FullName:    state.FullName,
		Rating:      state.Rating,
		Text:        state.Text,
		PhotoFileID: state.PhotoFileID,
		CreatedAt:   time.Now().UTC(),
	}

	id, err := a.reviewsService.Submit(ctx, review)
	if err != nil {
		a.logger.Error("save review", "error", err, "user_id", state.AuthorID)
		a.sendText(chatID, ui.MsgReviewAbandon)
		return
	}
	review.ID = id

	a.sessions.Clear(state.AuthorID)
	a.sendText(chatID, ui.MsgReviewSaved)

	go a.notifyAdmins(review)
}

// notifyAdmins fans the fresh submission out to every admin except the
// author. A failed delivery never affects the stored review.
func (a *App) notifyAdmins(review model.Review) {
	summary := ui.NewReviewSummary(review)

	for _, adminID := range a.accessService.Recipients(review.UserID) {
		var err error
		if review.HasPhoto() {
			err = a.sendPhoto(adminID, review.PhotoFileID, summary, nil)
		} else {
			msg := tgbotapi.NewMessage(adminID, summary)
			err = a.tg.Send(msg)
		}
		if err != nil {
			a.logger.Warn("notify admin about new review", "error", err, "admin_id", adminID, "review_id", review.ID)
		}
	}
}

func isSkipWord(text string) bool {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "пропустить", "/skip", "skip":
		return true
	}
	return false
}
