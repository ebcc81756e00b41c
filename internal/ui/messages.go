package ui

const (
	MsgUnknownCommand = "Неизвестная команда. Используйте /start"

	MsgAskRating      = "Оцените ваш опыт от 1 до 5 (где 5 — отлично):"
	MsgAskText        = "Напишите текст отзыва. Постарайтесь быть максимально конкретным."
	MsgTextReprompt   = "Пожалуйста, отправьте текстовое сообщение с отзывом."
	MsgAskMedia       = "Хотите прикрепить фото? Отправьте его одним сообщением или нажмите «Пропустить»."
	MsgMediaReprompt  = "Если хотите прикрепить фото — отправьте его. Либо напишите «Пропустить»."
	MsgReviewSaved    = "Спасибо! Ваш отзыв отправлен модераторам и появится в списке после проверки."
	MsgReviewAbandon  = "Не удалось сохранить отзыв. Попробуйте еще раз."
	MsgQueueAllClear  = "Нет отзывов на модерации. Все отзывы проверены! ✅"
	MsgWelcomePrompt  = "Отправьте новый приветственный пост.\nМожно приложить фото или видео, текст укажите в подписи.\nЧтобы оставить только текст — пришлите обычное сообщение."
	MsgWelcomeEmpty   = "Текст приветствия обязателен. Попробуйте снова."
	MsgWelcomeUpdated = "Приветственный пост обновлён ✅"
	MsgReplyEmpty     = "Ответ не может быть пустым."
	MsgReplyLost      = "Не удалось найти отзыв. Попробуйте заново открыть список отзывов."
	MsgReplySent      = "Ответ отправлен пользователю."
	MsgReplyStored    = "Ответ сохранён, но отправить сообщение пользователю не удалось."

	AlertNotForYou      = "Эта кнопка не для вас."
	AlertBadValue       = "Неверное значение."
	AlertBadPage        = "Неверная страница."
	AlertNoAccess       = "Недостаточно прав."
	AlertReviewNotFound = "Отзыв не найден."
	AlertPhotoNotFound  = "Фото не найдено"
	AlertActionFailed   = "Не удалось выполнить действие."

	ToastApproved = "Одобрено"
	ToastRejected = "Отклонено"
	ToastDeleted  = "Удалено"
)
