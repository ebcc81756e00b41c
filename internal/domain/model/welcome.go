package model

import (
	"time"

	"github.com/arsLnD/reviu/internal/domain/enums"
)

type WelcomePost struct {
	Text        string
	MediaKind   enums.MediaKind
	MediaFileID string
	UpdatedAt   time.Time
	UpdatedBy   int64
}
