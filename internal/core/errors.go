package core

import "errors"

var (
	ErrNoWorkspace          = errors.New("not a SlideWriter workspace (or any of the parent directories): .sw")
	ErrPresentationNotFound = errors.New("presentation not found")
	ErrDeckNotFound         = errors.New("slide deck not found")
	ErrUnknownSetting       = errors.New("unknown setting")
	ErrInvalidSettingValue  = errors.New("invalid setting value")
	ErrInvalidPosition      = errors.New("invalid position")
)
