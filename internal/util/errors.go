package util

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailRegistered    = errors.New("该邮箱已被注册")
	ErrTaskNotFound       = errors.New("task not found")
	ErrTaskCompleted      = errors.New("task already completed")
	ErrStreamNotFound     = errors.New("stream not found")
	ErrEntryNotFound      = errors.New("entry not found")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrReviewNotFound     = errors.New("review not found")
	ErrAlreadyReviewed    = errors.New("submission already reviewed")
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
	ErrInvalidScore       = errors.New("score must be between 0 and 10")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
