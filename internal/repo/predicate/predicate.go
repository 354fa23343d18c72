// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Alert is the predicate function for alert builders.
type Alert func(*sql.Selector)

// Checkup is the predicate function for checkup builders.
type Checkup func(*sql.Selector)

// CheckupAnalyze is the predicate function for checkupanalyze builders.
type CheckupAnalyze func(*sql.Selector)

// Clinic is the predicate function for clinic builders.
type Clinic func(*sql.Selector)

// ClinicCheckup is the predicate function for cliniccheckup builders.
type ClinicCheckup func(*sql.Selector)

// ClinicGroup is the predicate function for clinicgroup builders.
type ClinicGroup func(*sql.Selector)

// ClinicMedia is the predicate function for clinicmedia builders.
type ClinicMedia func(*sql.Selector)

// Doctor is the predicate function for doctor builders.
type Doctor func(*sql.Selector)

// Interpretation is the predicate function for interpretation builders.
type Interpretation func(*sql.Selector)

// Media is the predicate function for media builders.
type Media func(*sql.Selector)

// Organ is the predicate function for organ builders.
type Organ func(*sql.Selector)

// PatientProfile is the predicate function for patientprofile builders.
type PatientProfile func(*sql.Selector)

// QuestionAnswer is the predicate function for questionanswer builders.
type QuestionAnswer func(*sql.Selector)

// QuestionOption is the predicate function for questionoption builders.
type QuestionOption func(*sql.Selector)

// QuestionOptionDate is the predicate function for questionoptiondate builders.
type QuestionOptionDate func(*sql.Selector)

// QuestionOptionEquation is the predicate function for questionoptionequation builders.
type QuestionOptionEquation func(*sql.Selector)

// QuestionOptionNumber is the predicate function for questionoptionnumber builders.
type QuestionOptionNumber func(*sql.Selector)

// QuestionShare is the predicate function for questionshare builders.
type QuestionShare func(*sql.Selector)

// RealClinic is the predicate function for realclinic builders.
type RealClinic func(*sql.Selector)

// RealDoctor is the predicate function for realdoctor builders.
type RealDoctor func(*sql.Selector)

// Suggestion is the predicate function for suggestion builders.
type Suggestion func(*sql.Selector)

// Supervisor is the predicate function for supervisor builders.
type Supervisor func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// UserSession is the predicate function for usersession builders.
type UserSession func(*sql.Selector)
