package doctor

import "errors"

var (
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrDoctorAlreadyExists = errors.New("user already has a doctor record")
	ErrMedicalCodeTaken    = errors.New("medical code already registered")
	ErrRealDoctorNotFound  = errors.New("real doctor not found")
)
