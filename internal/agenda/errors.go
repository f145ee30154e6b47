package agenda

import "errors"

var (
	ErrEmptyTitle         = errors.New("title is empty")
	ErrInvalidMeetingType = errors.New("invalid meeting type")
	ErrInvalidPriority    = errors.New("invalid activity priority")
	ErrMeetingNotFound    = errors.New("meeting not found")
)
