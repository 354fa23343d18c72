package media

import "errors"

var (
	ErrMediaNotFound       = errors.New("media not found")
	ErrClinicMediaNotFound = errors.New("clinic media not found")
	ErrWrongClinic         = errors.New("media belongs to another clinic")
)
