package question

import "errors"

var (
	ErrQuestionNotFound  = errors.New("question not found")
	ErrOptionNotFound    = errors.New("question option not found")
	ErrEmptyPrompt       = errors.New("question prompt is required")
	ErrEquationRequired  = errors.New("equation questions require an equation expression")
	ErrInvalidEquation   = errors.New("equation expression does not compile")
	ErrConnectNotFound   = errors.New("connected question does not exist")
	ErrNotQuestionAuthor = errors.New("question belongs to another doctor")

	ErrOrganNotFound  = errors.New("organ not found")
	ErrOrganExists    = errors.New("organ name already exists")
	ErrEmptyOrganName = errors.New("organ name is required")
)
