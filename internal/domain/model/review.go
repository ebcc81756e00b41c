package model

import "time"

type Review struct {
	ID            int64
	UserID        int64
	Username      string
	FullName      string
	Rating        int
	Text          string
	PhotoFileID   string
	CreatedAt     time.Time
	Approved      bool
	AdminReply    string
	AdminID       int64
	AdminUsername string
	AdminReplyAt  *time.Time
}

func (r Review) HasPhoto() bool {
	return r.PhotoFileID != ""
}

func (r Review) HasReply() bool {
	return r.AdminReply != ""
}
