package ui

import (
	"fmt"
	"strings"

	"github.com/arsLnD/reviu/internal/domain/enums"
	"github.com/arsLnD/reviu/internal/domain/model"
	"github.com/arsLnD/reviu/internal/services/reviews"
)

const blockSeparator = "───────────────────────────────────"

func FormatRating(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("⭐", rating) + strings.Repeat("☆", 5-rating)
}

// ReviewBlock renders a single review for the paginated list. Admins
// additionally see the author identity and the replying admin's handle.
func ReviewBlock(review model.Review, role enums.Role, last bool) string {
	lines := []string{
		blockSeparator,
		fmt.Sprintf("📝 Отзыв №%d", review.ID),
		fmt.Sprintf("⭐ Оценка: %s", FormatRating(review.Rating)),
		"",
		review.Text,
	}

	if review.HasPhoto() {
		lines = append(lines, "", "📷 Фото прикреплено")
	}

	if role == enums.RoleAdmin {
		author := review.FullName
		if author == "" {
			author = "Без имени"
		}
		info := fmt.Sprintf("👤 Автор: %s", author)
		if review.Username != "" {
			info += fmt.Sprintf(" (@%s)", review.Username)
		}
		info += fmt.Sprintf(" | ID: %d", review.UserID)
		lines = append(lines, "", info)
	}

	if review.HasReply() {
		lines = append(lines, "", "💬 Ответ администрации:")
		if role == enums.RoleAdmin && review.AdminUsername != "" {
			lines = append(lines, fmt.Sprintf("   от @%s", review.AdminUsername))
		}
		for _, replyLine := range strings.Split(review.AdminReply, "\n") {
			lines = append(lines, "   "+replyLine)
		}
	}

	if !last {
		lines = append(lines, "", blockSeparator, "")
	}

	return strings.Join(lines, "\n")
}

func ReviewsPageText(role enums.Role, page reviews.Page) string {
	header := "📚 Отзывы пользователей"
	if role == enums.RoleAdmin {
		header = "📚 Отзывы пользователей (админ-панель)"
	}

	body := "На этой странице нет отзывов."
	if len(page.Reviews) > 0 {
		blocks := make([]string, 0, len(page.Reviews))
		for idx, review := range page.Reviews {
			blocks = append(blocks, ReviewBlock(review, role, idx == len(page.Reviews)-1))
		}
		body = strings.Join(blocks, "\n")
	}

	pageInfo := fmt.Sprintf("📄 Страница %d из %d | Всего отзывов: %d", page.Number, page.TotalPages, page.Total)
	return fmt.Sprintf("%s\n%s\n\n%s", header, pageInfo, body)
}

func EmptyReviewsText(role enums.Role) string {
	separator := strings.Repeat("─", 30)
	if role == enums.RoleAdmin {
		return "📚 Отзывы пользователей (админ-панель)\n\n" +
			separator + "\n📭 Отзывов пока нет.\n" + separator
	}
	return "📚 Отзывы пользователей\n\n" +
		separator + "\n😔 Пока нет отзывов.\nБудьте первым, кто оставит отзыв!\n" + separator
}

// ModerationItemText renders the first pending review for the queue view.
func ModerationItemText(review model.Review, pendingTotal int) string {
	author := review.FullName
	if author == "" {
		author = "Без имени"
	}

	lines := []string{
		fmt.Sprintf("⏳ Отзыв на модерации (всего: %d)", pendingTotal),
		"",
		fmt.Sprintf("№%d · %s", review.ID, FormatRating(review.Rating)),
		fmt.Sprintf("👤 %s", author),
		fmt.Sprintf("ID: %d", review.UserID),
		"",
		review.Text,
	}
	if review.HasPhoto() {
		lines = append(lines, "", "📎 Фото прикреплено")
	}
	return strings.Join(lines, "\n")
}

func NewReviewSummary(review model.Review) string {
	photo := "нет"
	if review.HasPhoto() {
		photo = "есть"
	}
	return fmt.Sprintf("🆕 Новый отзыв\nОценка: %d\nТекст: %s\nФото: %s", review.Rating, review.Text, photo)
}

func ApprovedNotice(reviewID int64) string {
	return fmt.Sprintf("Ваш отзыв №%d был одобрен модератором и теперь виден другим пользователям! 🎉", reviewID)
}

func ReplyNotice(reviewID int64, replyText string) string {
	return fmt.Sprintf("Администрация ответила на ваш отзыв №%d:\n\n%s", reviewID, replyText)
}

func ReplyPrompt(review model.Review) string {
	author := review.FullName
	if author == "" {
		author = fmt.Sprintf("%d", review.UserID)
	}
	return fmt.Sprintf("Напишите ответ для пользователя %s по отзыву №%d.", author, review.ID)
}

func PhotoCaption(reviewID int64) string {
	return fmt.Sprintf("Фото отзыва №%d", reviewID)
}
