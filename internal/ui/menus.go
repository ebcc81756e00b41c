package ui

import (
	"fmt"

	"github.com/arsLnD/reviu/internal/domain/enums"
	"github.com/arsLnD/reviu/internal/domain/model"
	"github.com/arsLnD/reviu/internal/infra/telegram"
)

func StartMenu(role enums.Role) [][]telegram.InlineButton {
	if role == enums.RoleAdmin {
		return [][]telegram.InlineButton{
			{{Text: "✏️ Изменить привет", Data: "welcome:edit"}},
			{{Text: "📚 Посмотреть отзывы", Data: "reviews:admin:1"}},
			{{Text: "✅ Модерация отзывов", Data: "admin:moderation"}},
		}
	}
	return [][]telegram.InlineButton{
		{{Text: "📝 Оставить отзыв", Data: "review:new"}},
		{{Text: "📖 Посмотреть отзывы", Data: "reviews:user:1"}},
	}
}

func RatingKeyboard() [][]telegram.InlineButton {
	row := make([]telegram.InlineButton, 0, 5)
	for rate := 1; rate <= 5; rate++ {
		row = append(row, telegram.InlineButton{
			Text: fmt.Sprintf("%d⭐", rate),
			Data: fmt.Sprintf("review:rating:%d", rate),
		})
	}
	return [][]telegram.InlineButton{row}
}

func SkipMediaKeyboard() [][]telegram.InlineButton {
	return [][]telegram.InlineButton{
		{{Text: "Пропустить", Data: "review:skip_media"}},
	}
}

// ReviewsKeyboard builds the per-item action rows and the navigation row for
// one browser page. Admins get reply/delete per review; everyone gets a photo
// button when the review has one. Navigation buttons appear only when the
// corresponding side has pages.
func ReviewsKeyboard(role enums.Role, page, totalPages int, items []model.Review) [][]telegram.InlineButton {
	rows := make([][]telegram.InlineButton, 0, len(items)+1)

	for _, review := range items {
		if role == enums.RoleAdmin {
			row := []telegram.InlineButton{
				{Text: fmt.Sprintf("Ответить №%d", review.ID), Data: fmt.Sprintf("reviews:reply:%d:%d", review.ID, page)},
				{Text: fmt.Sprintf("🗑️ Удалить №%d", review.ID), Data: fmt.Sprintf("reviews:delete:%d:%d", review.ID, page)},
			}
			if review.HasPhoto() {
				row = append(row, telegram.InlineButton{
					Text: fmt.Sprintf("Фото №%d", review.ID),
					Data: fmt.Sprintf("reviews:photo:%d:%s:%d", review.ID, role, page),
				})
			}
			rows = append(rows, row)
			continue
		}

		if review.HasPhoto() {
			rows = append(rows, []telegram.InlineButton{{
				Text: fmt.Sprintf("Фото №%d", review.ID),
				Data: fmt.Sprintf("reviews:photo:%d:%s:%d", review.ID, role, page),
			}})
		}
	}

	nav := make([]telegram.InlineButton, 0, 2)
	if page > 1 {
		nav = append(nav, telegram.InlineButton{Text: "⬅️ Назад", Data: fmt.Sprintf("reviews:%s:%d", role, page-1)})
	}
	if page < totalPages {
		nav = append(nav, telegram.InlineButton{Text: "Вперед ➡️", Data: fmt.Sprintf("reviews:%s:%d", role, page+1)})
	}
	if len(nav) > 0 {
		rows = append(rows, nav)
	}

	return rows
}

func ModerationKeyboard(reviewID int64) [][]telegram.InlineButton {
	return [][]telegram.InlineButton{
		{{Text: "✅ Одобрить", Data: fmt.Sprintf("moderation:approve:%d", reviewID)}},
		{{Text: "❌ Отклонить", Data: fmt.Sprintf("moderation:reject:%d", reviewID)}},
		{{Text: "🗑️ Удалить", Data: fmt.Sprintf("moderation:delete:%d", reviewID)}},
	}
}
