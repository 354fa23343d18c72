package clinic

import "errors"

var (
	ErrClinicNotFound     = errors.New("clinic not found")
	ErrGroupNotFound      = errors.New("clinic group not found")
	ErrRealClinicNotFound = errors.New("real clinic not found")
	ErrAlertNotFound      = errors.New("alert not found")
	ErrSlugTaken          = errors.New("clinic slug already in use")
	ErrClinicInactive     = errors.New("clinic is inactive")
)
