package checkup

import "errors"

var (
	ErrTemplateNotFound       = errors.New("clinic checkup not found")
	ErrTemplateInactive       = errors.New("clinic checkup is not active")
	ErrCheckupNotFound        = errors.New("checkup not found")
	ErrClinicNotFound         = errors.New("clinic not found")
	ErrClinicRequired         = errors.New("a clinic or a clinic checkup is required")
	ErrAnalyzeNotFound        = errors.New("checkup analysis not found")
	ErrInterpretationNotFound = errors.New("interpretation not found")
	ErrStartingQuestion       = errors.New("starting question does not exist")
	ErrIdentityRequired       = errors.New("checkup requires an identity-approved account")
	ErrPatientNotFound        = errors.New("patient profile not found")
	ErrQuestionNotFound       = errors.New("question not found")
	ErrOptionNotFound         = errors.New("question option not found")
	ErrOptionMismatch         = errors.New("option does not belong to the answered question")
	ErrAlreadyCompleted       = errors.New("checkup is already completed")

	// ErrNotCheckupOwner is returned when the requester is neither the
	// patient nor one of the patient's supervisors. Handlers map it to 403.
	ErrNotCheckupOwner = errors.New("checkup belongs to another patient")
)
