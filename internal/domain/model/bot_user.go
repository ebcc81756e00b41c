package model

import "time"

type BotUser struct {
	TgID        int64
	Username    string
	FullName    string
	FirstSeenAt time.Time
	LastSeenAt  time.Time
}
