package patient

import "errors"

var (
	ErrProfileNotFound      = errors.New("patient profile not found")
	ErrProfileAlreadyExists = errors.New("user already has a patient profile")
	ErrSupervisorNotFound   = errors.New("supervisor link not found")
	ErrSupervisorExists     = errors.New("user already supervises this patient")
	ErrSelfSupervision      = errors.New("a patient cannot supervise themselves")
)
