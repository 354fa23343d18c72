// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/google/uuid"
	"github.com/pezeshkyar/checkup_backend/internal/repo/alert"
	"github.com/pezeshkyar/checkup_backend/internal/repo/checkup"
	"github.com/pezeshkyar/checkup_backend/internal/repo/checkupanalyze"
	"github.com/pezeshkyar/checkup_backend/internal/repo/clinic"
	"github.com/pezeshkyar/checkup_backend/internal/repo/cliniccheckup"
	"github.com/pezeshkyar/checkup_backend/internal/repo/clinicgroup"
	"github.com/pezeshkyar/checkup_backend/internal/repo/clinicmedia"
	"github.com/pezeshkyar/checkup_backend/internal/repo/doctor"
	"github.com/pezeshkyar/checkup_backend/internal/repo/interpretation"
	"github.com/pezeshkyar/checkup_backend/internal/repo/media"
	"github.com/pezeshkyar/checkup_backend/internal/repo/organ"
	"github.com/pezeshkyar/checkup_backend/internal/repo/patientprofile"
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionanswer"
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionoption"
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionoptiondate"
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionoptionequation"
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionoptionnumber"
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionshare"
	"github.com/pezeshkyar/checkup_backend/internal/repo/realclinic"
	"github.com/pezeshkyar/checkup_backend/internal/repo/realdoctor"
	"github.com/pezeshkyar/checkup_backend/internal/repo/suggestion"
	"github.com/pezeshkyar/checkup_backend/internal/repo/supervisor"
	"github.com/pezeshkyar/checkup_backend/internal/repo/user"
	"github.com/pezeshkyar/checkup_backend/internal/repo/usersession"
	"github.com/pezeshkyar/checkup_backend/internal/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	alertMixin := schema.Alert{}.Mixin()
	alertMixinFields0 := alertMixin[0].Fields()
	_ = alertMixinFields0
	alertMixinFields1 := alertMixin[1].Fields()
	_ = alertMixinFields1
	alertFields := schema.Alert{}.Fields()
	_ = alertFields
	// alertDescCreatedAt is the schema descriptor for created_at field.
	alertDescCreatedAt := alertMixinFields1[0].Descriptor()
	// alert.DefaultCreatedAt holds the default value on creation for the created_at field.
	alert.DefaultCreatedAt = alertDescCreatedAt.Default.(func() time.Time)
	// alertDescUpdatedAt is the schema descriptor for updated_at field.
	alertDescUpdatedAt := alertMixinFields1[1].Descriptor()
	// alert.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	alert.DefaultUpdatedAt = alertDescUpdatedAt.Default.(func() time.Time)
	// alert.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	alert.UpdateDefaultUpdatedAt = alertDescUpdatedAt.UpdateDefault.(func() time.Time)
	// alertDescTitle is the schema descriptor for title field.
	alertDescTitle := alertFields[1].Descriptor()
	// alert.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	alert.TitleValidator = func() func(string) error {
		validators := alertDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// alertDescReminderCount is the schema descriptor for reminder_count field.
	alertDescReminderCount := alertFields[4].Descriptor()
	// alert.DefaultReminderCount holds the default value on creation for the reminder_count field.
	alert.DefaultReminderCount = alertDescReminderCount.Default.(int)
	// alert.ReminderCountValidator is a validator for the "reminder_count" field. It is called by the builders before save.
	alert.ReminderCountValidator = alertDescReminderCount.Validators[0].(func(int) error)
	// alertDescID is the schema descriptor for id field.
	alertDescID := alertMixinFields0[0].Descriptor()
	// alert.DefaultID holds the default value on creation for the id field.
	alert.DefaultID = alertDescID.Default.(func() uuid.UUID)
	checkupMixin := schema.Checkup{}.Mixin()
	checkupMixinFields0 := checkupMixin[0].Fields()
	_ = checkupMixinFields0
	checkupMixinFields1 := checkupMixin[1].Fields()
	_ = checkupMixinFields1
	checkupFields := schema.Checkup{}.Fields()
	_ = checkupFields
	// checkupDescCreatedAt is the schema descriptor for created_at field.
	checkupDescCreatedAt := checkupMixinFields1[0].Descriptor()
	// checkup.DefaultCreatedAt holds the default value on creation for the created_at field.
	checkup.DefaultCreatedAt = checkupDescCreatedAt.Default.(func() time.Time)
	// checkupDescUpdatedAt is the schema descriptor for updated_at field.
	checkupDescUpdatedAt := checkupMixinFields1[1].Descriptor()
	// checkup.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	checkup.DefaultUpdatedAt = checkupDescUpdatedAt.Default.(func() time.Time)
	// checkup.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	checkup.UpdateDefaultUpdatedAt = checkupDescUpdatedAt.UpdateDefault.(func() time.Time)
	// checkupDescTitle is the schema descriptor for title field.
	checkupDescTitle := checkupFields[3].Descriptor()
	// checkup.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	checkup.TitleValidator = func() func(string) error {
		validators := checkupDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// checkupDescExecutedAt is the schema descriptor for executed_at field.
	checkupDescExecutedAt := checkupFields[5].Descriptor()
	// checkup.DefaultExecutedAt holds the default value on creation for the executed_at field.
	checkup.DefaultExecutedAt = checkupDescExecutedAt.Default.(func() time.Time)
	// checkupDescIsCompleted is the schema descriptor for is_completed field.
	checkupDescIsCompleted := checkupFields[6].Descriptor()
	// checkup.DefaultIsCompleted holds the default value on creation for the is_completed field.
	checkup.DefaultIsCompleted = checkupDescIsCompleted.Default.(bool)
	// checkupDescID is the schema descriptor for id field.
	checkupDescID := checkupMixinFields0[0].Descriptor()
	// checkup.DefaultID holds the default value on creation for the id field.
	checkup.DefaultID = checkupDescID.Default.(func() uuid.UUID)
	checkupanalyzeMixin := schema.CheckupAnalyze{}.Mixin()
	checkupanalyzeMixinFields0 := checkupanalyzeMixin[0].Fields()
	_ = checkupanalyzeMixinFields0
	checkupanalyzeMixinFields1 := checkupanalyzeMixin[1].Fields()
	_ = checkupanalyzeMixinFields1
	checkupanalyzeFields := schema.CheckupAnalyze{}.Fields()
	_ = checkupanalyzeFields
	// checkupanalyzeDescCreatedAt is the schema descriptor for created_at field.
	checkupanalyzeDescCreatedAt := checkupanalyzeMixinFields1[0].Descriptor()
	// checkupanalyze.DefaultCreatedAt holds the default value on creation for the created_at field.
	checkupanalyze.DefaultCreatedAt = checkupanalyzeDescCreatedAt.Default.(func() time.Time)
	// checkupanalyzeDescUpdatedAt is the schema descriptor for updated_at field.
	checkupanalyzeDescUpdatedAt := checkupanalyzeMixinFields1[1].Descriptor()
	// checkupanalyze.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	checkupanalyze.DefaultUpdatedAt = checkupanalyzeDescUpdatedAt.Default.(func() time.Time)
	// checkupanalyze.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	checkupanalyze.UpdateDefaultUpdatedAt = checkupanalyzeDescUpdatedAt.UpdateDefault.(func() time.Time)
	// checkupanalyzeDescTitle is the schema descriptor for title field.
	checkupanalyzeDescTitle := checkupanalyzeFields[1].Descriptor()
	// checkupanalyze.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	checkupanalyze.TitleValidator = func() func(string) error {
		validators := checkupanalyzeDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// checkupanalyzeDescID is the schema descriptor for id field.
	checkupanalyzeDescID := checkupanalyzeMixinFields0[0].Descriptor()
	// checkupanalyze.DefaultID holds the default value on creation for the id field.
	checkupanalyze.DefaultID = checkupanalyzeDescID.Default.(func() uuid.UUID)
	clinicMixin := schema.Clinic{}.Mixin()
	clinicMixinFields0 := clinicMixin[0].Fields()
	_ = clinicMixinFields0
	clinicMixinFields1 := clinicMixin[1].Fields()
	_ = clinicMixinFields1
	clinicFields := schema.Clinic{}.Fields()
	_ = clinicFields
	// clinicDescCreatedAt is the schema descriptor for created_at field.
	clinicDescCreatedAt := clinicMixinFields1[0].Descriptor()
	// clinic.DefaultCreatedAt holds the default value on creation for the created_at field.
	clinic.DefaultCreatedAt = clinicDescCreatedAt.Default.(func() time.Time)
	// clinicDescUpdatedAt is the schema descriptor for updated_at field.
	clinicDescUpdatedAt := clinicMixinFields1[1].Descriptor()
	// clinic.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	clinic.DefaultUpdatedAt = clinicDescUpdatedAt.Default.(func() time.Time)
	// clinic.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	clinic.UpdateDefaultUpdatedAt = clinicDescUpdatedAt.UpdateDefault.(func() time.Time)
	// clinicDescTitle is the schema descriptor for title field.
	clinicDescTitle := clinicFields[1].Descriptor()
	// clinic.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	clinic.TitleValidator = func() func(string) error {
		validators := clinicDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// clinicDescSlug is the schema descriptor for slug field.
	clinicDescSlug := clinicFields[2].Descriptor()
	// clinic.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	clinic.SlugValidator = func() func(string) error {
		validators := clinicDescSlug.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(slug string) error {
			for _, fn := range fns {
				if err := fn(slug); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// clinicDescLogoKey is the schema descriptor for logo_key field.
	clinicDescLogoKey := clinicFields[4].Descriptor()
	// clinic.LogoKeyValidator is a validator for the "logo_key" field. It is called by the builders before save.
	clinic.LogoKeyValidator = clinicDescLogoKey.Validators[0].(func(string) error)
	// clinicDescPhone is the schema descriptor for phone field.
	clinicDescPhone := clinicFields[5].Descriptor()
	// clinic.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	clinic.PhoneValidator = clinicDescPhone.Validators[0].(func(string) error)
	// clinicDescCity is the schema descriptor for city field.
	clinicDescCity := clinicFields[7].Descriptor()
	// clinic.CityValidator is a validator for the "city" field. It is called by the builders before save.
	clinic.CityValidator = clinicDescCity.Validators[0].(func(string) error)
	// clinicDescProvince is the schema descriptor for province field.
	clinicDescProvince := clinicFields[8].Descriptor()
	// clinic.ProvinceValidator is a validator for the "province" field. It is called by the builders before save.
	clinic.ProvinceValidator = clinicDescProvince.Validators[0].(func(string) error)
	// clinicDescIsActive is the schema descriptor for is_active field.
	clinicDescIsActive := clinicFields[9].Descriptor()
	// clinic.DefaultIsActive holds the default value on creation for the is_active field.
	clinic.DefaultIsActive = clinicDescIsActive.Default.(bool)
	// clinicDescIsVerified is the schema descriptor for is_verified field.
	clinicDescIsVerified := clinicFields[10].Descriptor()
	// clinic.DefaultIsVerified holds the default value on creation for the is_verified field.
	clinic.DefaultIsVerified = clinicDescIsVerified.Default.(bool)
	// clinicDescID is the schema descriptor for id field.
	clinicDescID := clinicMixinFields0[0].Descriptor()
	// clinic.DefaultID holds the default value on creation for the id field.
	clinic.DefaultID = clinicDescID.Default.(func() uuid.UUID)
	cliniccheckupMixin := schema.ClinicCheckup{}.Mixin()
	cliniccheckupMixinFields0 := cliniccheckupMixin[0].Fields()
	_ = cliniccheckupMixinFields0
	cliniccheckupMixinFields1 := cliniccheckupMixin[1].Fields()
	_ = cliniccheckupMixinFields1
	cliniccheckupFields := schema.ClinicCheckup{}.Fields()
	_ = cliniccheckupFields
	// cliniccheckupDescCreatedAt is the schema descriptor for created_at field.
	cliniccheckupDescCreatedAt := cliniccheckupMixinFields1[0].Descriptor()
	// cliniccheckup.DefaultCreatedAt holds the default value on creation for the created_at field.
	cliniccheckup.DefaultCreatedAt = cliniccheckupDescCreatedAt.Default.(func() time.Time)
	// cliniccheckupDescUpdatedAt is the schema descriptor for updated_at field.
	cliniccheckupDescUpdatedAt := cliniccheckupMixinFields1[1].Descriptor()
	// cliniccheckup.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	cliniccheckup.DefaultUpdatedAt = cliniccheckupDescUpdatedAt.Default.(func() time.Time)
	// cliniccheckup.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	cliniccheckup.UpdateDefaultUpdatedAt = cliniccheckupDescUpdatedAt.UpdateDefault.(func() time.Time)
	// cliniccheckupDescTitle is the schema descriptor for title field.
	cliniccheckupDescTitle := cliniccheckupFields[1].Descriptor()
	// cliniccheckup.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	cliniccheckup.TitleValidator = func() func(string) error {
		validators := cliniccheckupDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// cliniccheckupDescRequiredTimeMinutes is the schema descriptor for required_time_minutes field.
	cliniccheckupDescRequiredTimeMinutes := cliniccheckupFields[3].Descriptor()
	// cliniccheckup.DefaultRequiredTimeMinutes holds the default value on creation for the required_time_minutes field.
	cliniccheckup.DefaultRequiredTimeMinutes = cliniccheckupDescRequiredTimeMinutes.Default.(int)
	// cliniccheckup.RequiredTimeMinutesValidator is a validator for the "required_time_minutes" field. It is called by the builders before save.
	cliniccheckup.RequiredTimeMinutesValidator = cliniccheckupDescRequiredTimeMinutes.Validators[0].(func(int) error)
	// cliniccheckupDescRequiredAuth is the schema descriptor for required_auth field.
	cliniccheckupDescRequiredAuth := cliniccheckupFields[4].Descriptor()
	// cliniccheckup.DefaultRequiredAuth holds the default value on creation for the required_auth field.
	cliniccheckup.DefaultRequiredAuth = cliniccheckupDescRequiredAuth.Default.(bool)
	// cliniccheckupDescQuestionCount is the schema descriptor for question_count field.
	cliniccheckupDescQuestionCount := cliniccheckupFields[5].Descriptor()
	// cliniccheckup.DefaultQuestionCount holds the default value on creation for the question_count field.
	cliniccheckup.DefaultQuestionCount = cliniccheckupDescQuestionCount.Default.(int)
	// cliniccheckup.QuestionCountValidator is a validator for the "question_count" field. It is called by the builders before save.
	cliniccheckup.QuestionCountValidator = cliniccheckupDescQuestionCount.Validators[0].(func(int) error)
	// cliniccheckupDescIsActive is the schema descriptor for is_active field.
	cliniccheckupDescIsActive := cliniccheckupFields[8].Descriptor()
	// cliniccheckup.DefaultIsActive holds the default value on creation for the is_active field.
	cliniccheckup.DefaultIsActive = cliniccheckupDescIsActive.Default.(bool)
	// cliniccheckupDescID is the schema descriptor for id field.
	cliniccheckupDescID := cliniccheckupMixinFields0[0].Descriptor()
	// cliniccheckup.DefaultID holds the default value on creation for the id field.
	cliniccheckup.DefaultID = cliniccheckupDescID.Default.(func() uuid.UUID)
	clinicgroupMixin := schema.ClinicGroup{}.Mixin()
	clinicgroupMixinFields0 := clinicgroupMixin[0].Fields()
	_ = clinicgroupMixinFields0
	clinicgroupMixinFields1 := clinicgroupMixin[1].Fields()
	_ = clinicgroupMixinFields1
	clinicgroupFields := schema.ClinicGroup{}.Fields()
	_ = clinicgroupFields
	// clinicgroupDescCreatedAt is the schema descriptor for created_at field.
	clinicgroupDescCreatedAt := clinicgroupMixinFields1[0].Descriptor()
	// clinicgroup.DefaultCreatedAt holds the default value on creation for the created_at field.
	clinicgroup.DefaultCreatedAt = clinicgroupDescCreatedAt.Default.(func() time.Time)
	// clinicgroupDescUpdatedAt is the schema descriptor for updated_at field.
	clinicgroupDescUpdatedAt := clinicgroupMixinFields1[1].Descriptor()
	// clinicgroup.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	clinicgroup.DefaultUpdatedAt = clinicgroupDescUpdatedAt.Default.(func() time.Time)
	// clinicgroup.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	clinicgroup.UpdateDefaultUpdatedAt = clinicgroupDescUpdatedAt.UpdateDefault.(func() time.Time)
	// clinicgroupDescTitle is the schema descriptor for title field.
	clinicgroupDescTitle := clinicgroupFields[0].Descriptor()
	// clinicgroup.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	clinicgroup.TitleValidator = func() func(string) error {
		validators := clinicgroupDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// clinicgroupDescID is the schema descriptor for id field.
	clinicgroupDescID := clinicgroupMixinFields0[0].Descriptor()
	// clinicgroup.DefaultID holds the default value on creation for the id field.
	clinicgroup.DefaultID = clinicgroupDescID.Default.(func() uuid.UUID)
	clinicmediaMixin := schema.ClinicMedia{}.Mixin()
	clinicmediaMixinFields0 := clinicmediaMixin[0].Fields()
	_ = clinicmediaMixinFields0
	clinicmediaMixinFields1 := clinicmediaMixin[1].Fields()
	_ = clinicmediaMixinFields1
	clinicmediaFields := schema.ClinicMedia{}.Fields()
	_ = clinicmediaFields
	// clinicmediaDescCreatedAt is the schema descriptor for created_at field.
	clinicmediaDescCreatedAt := clinicmediaMixinFields1[0].Descriptor()
	// clinicmedia.DefaultCreatedAt holds the default value on creation for the created_at field.
	clinicmedia.DefaultCreatedAt = clinicmediaDescCreatedAt.Default.(func() time.Time)
	// clinicmediaDescUpdatedAt is the schema descriptor for updated_at field.
	clinicmediaDescUpdatedAt := clinicmediaMixinFields1[1].Descriptor()
	// clinicmedia.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	clinicmedia.DefaultUpdatedAt = clinicmediaDescUpdatedAt.Default.(func() time.Time)
	// clinicmedia.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	clinicmedia.UpdateDefaultUpdatedAt = clinicmediaDescUpdatedAt.UpdateDefault.(func() time.Time)
	// clinicmediaDescTitle is the schema descriptor for title field.
	clinicmediaDescTitle := clinicmediaFields[2].Descriptor()
	// clinicmedia.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	clinicmedia.TitleValidator = func() func(string) error {
		validators := clinicmediaDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// clinicmediaDescID is the schema descriptor for id field.
	clinicmediaDescID := clinicmediaMixinFields0[0].Descriptor()
	// clinicmedia.DefaultID holds the default value on creation for the id field.
	clinicmedia.DefaultID = clinicmediaDescID.Default.(func() uuid.UUID)
	doctorMixin := schema.Doctor{}.Mixin()
	doctorMixinFields0 := doctorMixin[0].Fields()
	_ = doctorMixinFields0
	doctorMixinFields1 := doctorMixin[1].Fields()
	_ = doctorMixinFields1
	doctorFields := schema.Doctor{}.Fields()
	_ = doctorFields
	// doctorDescCreatedAt is the schema descriptor for created_at field.
	doctorDescCreatedAt := doctorMixinFields1[0].Descriptor()
	// doctor.DefaultCreatedAt holds the default value on creation for the created_at field.
	doctor.DefaultCreatedAt = doctorDescCreatedAt.Default.(func() time.Time)
	// doctorDescUpdatedAt is the schema descriptor for updated_at field.
	doctorDescUpdatedAt := doctorMixinFields1[1].Descriptor()
	// doctor.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	doctor.DefaultUpdatedAt = doctorDescUpdatedAt.Default.(func() time.Time)
	// doctor.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	doctor.UpdateDefaultUpdatedAt = doctorDescUpdatedAt.UpdateDefault.(func() time.Time)
	// doctorDescSpecialty is the schema descriptor for specialty field.
	doctorDescSpecialty := doctorFields[2].Descriptor()
	// doctor.SpecialtyValidator is a validator for the "specialty" field. It is called by the builders before save.
	doctor.SpecialtyValidator = doctorDescSpecialty.Validators[0].(func(string) error)
	// doctorDescMedicalCode is the schema descriptor for medical_code field.
	doctorDescMedicalCode := doctorFields[3].Descriptor()
	// doctor.MedicalCodeValidator is a validator for the "medical_code" field. It is called by the builders before save.
	doctor.MedicalCodeValidator = doctorDescMedicalCode.Validators[0].(func(string) error)
	// doctorDescIsVerified is the schema descriptor for is_verified field.
	doctorDescIsVerified := doctorFields[5].Descriptor()
	// doctor.DefaultIsVerified holds the default value on creation for the is_verified field.
	doctor.DefaultIsVerified = doctorDescIsVerified.Default.(bool)
	// doctorDescID is the schema descriptor for id field.
	doctorDescID := doctorMixinFields0[0].Descriptor()
	// doctor.DefaultID holds the default value on creation for the id field.
	doctor.DefaultID = doctorDescID.Default.(func() uuid.UUID)
	interpretationMixin := schema.Interpretation{}.Mixin()
	interpretationMixinFields0 := interpretationMixin[0].Fields()
	_ = interpretationMixinFields0
	interpretationMixinFields1 := interpretationMixin[1].Fields()
	_ = interpretationMixinFields1
	interpretationFields := schema.Interpretation{}.Fields()
	_ = interpretationFields
	// interpretationDescCreatedAt is the schema descriptor for created_at field.
	interpretationDescCreatedAt := interpretationMixinFields1[0].Descriptor()
	// interpretation.DefaultCreatedAt holds the default value on creation for the created_at field.
	interpretation.DefaultCreatedAt = interpretationDescCreatedAt.Default.(func() time.Time)
	// interpretationDescUpdatedAt is the schema descriptor for updated_at field.
	interpretationDescUpdatedAt := interpretationMixinFields1[1].Descriptor()
	// interpretation.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	interpretation.DefaultUpdatedAt = interpretationDescUpdatedAt.Default.(func() time.Time)
	// interpretation.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	interpretation.UpdateDefaultUpdatedAt = interpretationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// interpretationDescTitle is the schema descriptor for title field.
	interpretationDescTitle := interpretationFields[1].Descriptor()
	// interpretation.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	interpretation.TitleValidator = func() func(string) error {
		validators := interpretationDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// interpretationDescID is the schema descriptor for id field.
	interpretationDescID := interpretationMixinFields0[0].Descriptor()
	// interpretation.DefaultID holds the default value on creation for the id field.
	interpretation.DefaultID = interpretationDescID.Default.(func() uuid.UUID)
	mediaMixin := schema.Media{}.Mixin()
	mediaMixinFields0 := mediaMixin[0].Fields()
	_ = mediaMixinFields0
	mediaMixinFields1 := mediaMixin[1].Fields()
	_ = mediaMixinFields1
	mediaFields := schema.Media{}.Fields()
	_ = mediaFields
	// mediaDescCreatedAt is the schema descriptor for created_at field.
	mediaDescCreatedAt := mediaMixinFields1[0].Descriptor()
	// media.DefaultCreatedAt holds the default value on creation for the created_at field.
	media.DefaultCreatedAt = mediaDescCreatedAt.Default.(func() time.Time)
	// mediaDescUpdatedAt is the schema descriptor for updated_at field.
	mediaDescUpdatedAt := mediaMixinFields1[1].Descriptor()
	// media.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	media.DefaultUpdatedAt = mediaDescUpdatedAt.Default.(func() time.Time)
	// media.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	media.UpdateDefaultUpdatedAt = mediaDescUpdatedAt.UpdateDefault.(func() time.Time)
	// mediaDescFileKey is the schema descriptor for file_key field.
	mediaDescFileKey := mediaFields[1].Descriptor()
	// media.FileKeyValidator is a validator for the "file_key" field. It is called by the builders before save.
	media.FileKeyValidator = func() func(string) error {
		validators := mediaDescFileKey.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(file_key string) error {
			for _, fn := range fns {
				if err := fn(file_key); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// mediaDescFileName is the schema descriptor for file_name field.
	mediaDescFileName := mediaFields[2].Descriptor()
	// media.FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	media.FileNameValidator = func() func(string) error {
		validators := mediaDescFileName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(file_name string) error {
			for _, fn := range fns {
				if err := fn(file_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// mediaDescMimeType is the schema descriptor for mime_type field.
	mediaDescMimeType := mediaFields[3].Descriptor()
	// media.MimeTypeValidator is a validator for the "mime_type" field. It is called by the builders before save.
	media.MimeTypeValidator = mediaDescMimeType.Validators[0].(func(string) error)
	// mediaDescSizeBytes is the schema descriptor for size_bytes field.
	mediaDescSizeBytes := mediaFields[4].Descriptor()
	// media.DefaultSizeBytes holds the default value on creation for the size_bytes field.
	media.DefaultSizeBytes = mediaDescSizeBytes.Default.(int64)
	// mediaDescID is the schema descriptor for id field.
	mediaDescID := mediaMixinFields0[0].Descriptor()
	// media.DefaultID holds the default value on creation for the id field.
	media.DefaultID = mediaDescID.Default.(func() uuid.UUID)
	organMixin := schema.Organ{}.Mixin()
	organMixinFields0 := organMixin[0].Fields()
	_ = organMixinFields0
	organMixinFields1 := organMixin[1].Fields()
	_ = organMixinFields1
	organFields := schema.Organ{}.Fields()
	_ = organFields
	// organDescCreatedAt is the schema descriptor for created_at field.
	organDescCreatedAt := organMixinFields1[0].Descriptor()
	// organ.DefaultCreatedAt holds the default value on creation for the created_at field.
	organ.DefaultCreatedAt = organDescCreatedAt.Default.(func() time.Time)
	// organDescUpdatedAt is the schema descriptor for updated_at field.
	organDescUpdatedAt := organMixinFields1[1].Descriptor()
	// organ.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	organ.DefaultUpdatedAt = organDescUpdatedAt.Default.(func() time.Time)
	// organ.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	organ.UpdateDefaultUpdatedAt = organDescUpdatedAt.UpdateDefault.(func() time.Time)
	// organDescName is the schema descriptor for name field.
	organDescName := organFields[0].Descriptor()
	// organ.NameValidator is a validator for the "name" field. It is called by the builders before save.
	organ.NameValidator = func() func(string) error {
		validators := organDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// organDescID is the schema descriptor for id field.
	organDescID := organMixinFields0[0].Descriptor()
	// organ.DefaultID holds the default value on creation for the id field.
	organ.DefaultID = organDescID.Default.(func() uuid.UUID)
	patientprofileMixin := schema.PatientProfile{}.Mixin()
	patientprofileMixinFields0 := patientprofileMixin[0].Fields()
	_ = patientprofileMixinFields0
	patientprofileMixinFields1 := patientprofileMixin[1].Fields()
	_ = patientprofileMixinFields1
	patientprofileFields := schema.PatientProfile{}.Fields()
	_ = patientprofileFields
	// patientprofileDescCreatedAt is the schema descriptor for created_at field.
	patientprofileDescCreatedAt := patientprofileMixinFields1[0].Descriptor()
	// patientprofile.DefaultCreatedAt holds the default value on creation for the created_at field.
	patientprofile.DefaultCreatedAt = patientprofileDescCreatedAt.Default.(func() time.Time)
	// patientprofileDescUpdatedAt is the schema descriptor for updated_at field.
	patientprofileDescUpdatedAt := patientprofileMixinFields1[1].Descriptor()
	// patientprofile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	patientprofile.DefaultUpdatedAt = patientprofileDescUpdatedAt.Default.(func() time.Time)
	// patientprofile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	patientprofile.UpdateDefaultUpdatedAt = patientprofileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// patientprofileDescID is the schema descriptor for id field.
	patientprofileDescID := patientprofileMixinFields0[0].Descriptor()
	// patientprofile.DefaultID holds the default value on creation for the id field.
	patientprofile.DefaultID = patientprofileDescID.Default.(func() uuid.UUID)
	questionanswerMixin := schema.QuestionAnswer{}.Mixin()
	questionanswerMixinFields0 := questionanswerMixin[0].Fields()
	_ = questionanswerMixinFields0
	questionanswerMixinFields1 := questionanswerMixin[1].Fields()
	_ = questionanswerMixinFields1
	questionanswerFields := schema.QuestionAnswer{}.Fields()
	_ = questionanswerFields
	// questionanswerDescCreatedAt is the schema descriptor for created_at field.
	questionanswerDescCreatedAt := questionanswerMixinFields1[0].Descriptor()
	// questionanswer.DefaultCreatedAt holds the default value on creation for the created_at field.
	questionanswer.DefaultCreatedAt = questionanswerDescCreatedAt.Default.(func() time.Time)
	// questionanswerDescID is the schema descriptor for id field.
	questionanswerDescID := questionanswerMixinFields0[0].Descriptor()
	// questionanswer.DefaultID holds the default value on creation for the id field.
	questionanswer.DefaultID = questionanswerDescID.Default.(func() uuid.UUID)
	questionoptionMixin := schema.QuestionOption{}.Mixin()
	questionoptionMixinFields0 := questionoptionMixin[0].Fields()
	_ = questionoptionMixinFields0
	questionoptionMixinFields1 := questionoptionMixin[1].Fields()
	_ = questionoptionMixinFields1
	questionoptionFields := schema.QuestionOption{}.Fields()
	_ = questionoptionFields
	// questionoptionDescCreatedAt is the schema descriptor for created_at field.
	questionoptionDescCreatedAt := questionoptionMixinFields1[0].Descriptor()
	// questionoption.DefaultCreatedAt holds the default value on creation for the created_at field.
	questionoption.DefaultCreatedAt = questionoptionDescCreatedAt.Default.(func() time.Time)
	// questionoptionDescUpdatedAt is the schema descriptor for updated_at field.
	questionoptionDescUpdatedAt := questionoptionMixinFields1[1].Descriptor()
	// questionoption.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	questionoption.DefaultUpdatedAt = questionoptionDescUpdatedAt.Default.(func() time.Time)
	// questionoption.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	questionoption.UpdateDefaultUpdatedAt = questionoptionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// questionoptionDescTitle is the schema descriptor for title field.
	questionoptionDescTitle := questionoptionFields[1].Descriptor()
	// questionoption.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	questionoption.TitleValidator = func() func(string) error {
		validators := questionoptionDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// questionoptionDescWeight is the schema descriptor for weight field.
	questionoptionDescWeight := questionoptionFields[2].Descriptor()
	// questionoption.DefaultWeight holds the default value on creation for the weight field.
	questionoption.DefaultWeight = questionoptionDescWeight.Default.(int)
	// questionoptionDescIsBranch is the schema descriptor for is_branch field.
	questionoptionDescIsBranch := questionoptionFields[8].Descriptor()
	// questionoption.DefaultIsBranch holds the default value on creation for the is_branch field.
	questionoption.DefaultIsBranch = questionoptionDescIsBranch.Default.(bool)
	// questionoptionDescChartX is the schema descriptor for chart_x field.
	questionoptionDescChartX := questionoptionFields[9].Descriptor()
	// questionoption.DefaultChartX holds the default value on creation for the chart_x field.
	questionoption.DefaultChartX = questionoptionDescChartX.Default.(float64)
	// questionoptionDescChartY is the schema descriptor for chart_y field.
	questionoptionDescChartY := questionoptionFields[10].Descriptor()
	// questionoption.DefaultChartY holds the default value on creation for the chart_y field.
	questionoption.DefaultChartY = questionoptionDescChartY.Default.(float64)
	// questionoptionDescID is the schema descriptor for id field.
	questionoptionDescID := questionoptionMixinFields0[0].Descriptor()
	// questionoption.DefaultID holds the default value on creation for the id field.
	questionoption.DefaultID = questionoptionDescID.Default.(func() uuid.UUID)
	questionoptiondateMixin := schema.QuestionOptionDate{}.Mixin()
	questionoptiondateMixinFields0 := questionoptiondateMixin[0].Fields()
	_ = questionoptiondateMixinFields0
	questionoptiondateMixinFields1 := questionoptiondateMixin[1].Fields()
	_ = questionoptiondateMixinFields1
	questionoptiondateFields := schema.QuestionOptionDate{}.Fields()
	_ = questionoptiondateFields
	// questionoptiondateDescCreatedAt is the schema descriptor for created_at field.
	questionoptiondateDescCreatedAt := questionoptiondateMixinFields1[0].Descriptor()
	// questionoptiondate.DefaultCreatedAt holds the default value on creation for the created_at field.
	questionoptiondate.DefaultCreatedAt = questionoptiondateDescCreatedAt.Default.(func() time.Time)
	// questionoptiondateDescID is the schema descriptor for id field.
	questionoptiondateDescID := questionoptiondateMixinFields0[0].Descriptor()
	// questionoptiondate.DefaultID holds the default value on creation for the id field.
	questionoptiondate.DefaultID = questionoptiondateDescID.Default.(func() uuid.UUID)
	questionoptionequationMixin := schema.QuestionOptionEquation{}.Mixin()
	questionoptionequationMixinFields0 := questionoptionequationMixin[0].Fields()
	_ = questionoptionequationMixinFields0
	questionoptionequationMixinFields1 := questionoptionequationMixin[1].Fields()
	_ = questionoptionequationMixinFields1
	questionoptionequationFields := schema.QuestionOptionEquation{}.Fields()
	_ = questionoptionequationFields
	// questionoptionequationDescCreatedAt is the schema descriptor for created_at field.
	questionoptionequationDescCreatedAt := questionoptionequationMixinFields1[0].Descriptor()
	// questionoptionequation.DefaultCreatedAt holds the default value on creation for the created_at field.
	questionoptionequation.DefaultCreatedAt = questionoptionequationDescCreatedAt.Default.(func() time.Time)
	// questionoptionequationDescID is the schema descriptor for id field.
	questionoptionequationDescID := questionoptionequationMixinFields0[0].Descriptor()
	// questionoptionequation.DefaultID holds the default value on creation for the id field.
	questionoptionequation.DefaultID = questionoptionequationDescID.Default.(func() uuid.UUID)
	questionoptionnumberMixin := schema.QuestionOptionNumber{}.Mixin()
	questionoptionnumberMixinFields0 := questionoptionnumberMixin[0].Fields()
	_ = questionoptionnumberMixinFields0
	questionoptionnumberMixinFields1 := questionoptionnumberMixin[1].Fields()
	_ = questionoptionnumberMixinFields1
	questionoptionnumberFields := schema.QuestionOptionNumber{}.Fields()
	_ = questionoptionnumberFields
	// questionoptionnumberDescCreatedAt is the schema descriptor for created_at field.
	questionoptionnumberDescCreatedAt := questionoptionnumberMixinFields1[0].Descriptor()
	// questionoptionnumber.DefaultCreatedAt holds the default value on creation for the created_at field.
	questionoptionnumber.DefaultCreatedAt = questionoptionnumberDescCreatedAt.Default.(func() time.Time)
	// questionoptionnumberDescID is the schema descriptor for id field.
	questionoptionnumberDescID := questionoptionnumberMixinFields0[0].Descriptor()
	// questionoptionnumber.DefaultID holds the default value on creation for the id field.
	questionoptionnumber.DefaultID = questionoptionnumberDescID.Default.(func() uuid.UUID)
	questionshareMixin := schema.QuestionShare{}.Mixin()
	questionshareMixinFields0 := questionshareMixin[0].Fields()
	_ = questionshareMixinFields0
	questionshareMixinFields1 := questionshareMixin[1].Fields()
	_ = questionshareMixinFields1
	questionshareFields := schema.QuestionShare{}.Fields()
	_ = questionshareFields
	// questionshareDescCreatedAt is the schema descriptor for created_at field.
	questionshareDescCreatedAt := questionshareMixinFields1[0].Descriptor()
	// questionshare.DefaultCreatedAt holds the default value on creation for the created_at field.
	questionshare.DefaultCreatedAt = questionshareDescCreatedAt.Default.(func() time.Time)
	// questionshareDescUpdatedAt is the schema descriptor for updated_at field.
	questionshareDescUpdatedAt := questionshareMixinFields1[1].Descriptor()
	// questionshare.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	questionshare.DefaultUpdatedAt = questionshareDescUpdatedAt.Default.(func() time.Time)
	// questionshare.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	questionshare.UpdateDefaultUpdatedAt = questionshareDescUpdatedAt.UpdateDefault.(func() time.Time)
	// questionshareDescTitle is the schema descriptor for title field.
	questionshareDescTitle := questionshareFields[2].Descriptor()
	// questionshare.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	questionshare.TitleValidator = questionshareDescTitle.Validators[0].(func(string) error)
	// questionshareDescPrompt is the schema descriptor for prompt field.
	questionshareDescPrompt := questionshareFields[3].Descriptor()
	// questionshare.PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	questionshare.PromptValidator = questionshareDescPrompt.Validators[0].(func(string) error)
	// questionshareDescIsStarter is the schema descriptor for is_starter field.
	questionshareDescIsStarter := questionshareFields[8].Descriptor()
	// questionshare.DefaultIsStarter holds the default value on creation for the is_starter field.
	questionshare.DefaultIsStarter = questionshareDescIsStarter.Default.(bool)
	// questionshareDescIsEquation is the schema descriptor for is_equation field.
	questionshareDescIsEquation := questionshareFields[9].Descriptor()
	// questionshare.DefaultIsEquation holds the default value on creation for the is_equation field.
	questionshare.DefaultIsEquation = questionshareDescIsEquation.Default.(bool)
	// questionshareDescChartVisible is the schema descriptor for chart_visible field.
	questionshareDescChartVisible := questionshareFields[11].Descriptor()
	// questionshare.DefaultChartVisible holds the default value on creation for the chart_visible field.
	questionshare.DefaultChartVisible = questionshareDescChartVisible.Default.(bool)
	// questionshareDescChartSrcX is the schema descriptor for chart_src_x field.
	questionshareDescChartSrcX := questionshareFields[12].Descriptor()
	// questionshare.DefaultChartSrcX holds the default value on creation for the chart_src_x field.
	questionshare.DefaultChartSrcX = questionshareDescChartSrcX.Default.(float64)
	// questionshareDescChartSrcY is the schema descriptor for chart_src_y field.
	questionshareDescChartSrcY := questionshareFields[13].Descriptor()
	// questionshare.DefaultChartSrcY holds the default value on creation for the chart_src_y field.
	questionshare.DefaultChartSrcY = questionshareDescChartSrcY.Default.(float64)
	// questionshareDescChartDesX is the schema descriptor for chart_des_x field.
	questionshareDescChartDesX := questionshareFields[14].Descriptor()
	// questionshare.DefaultChartDesX holds the default value on creation for the chart_des_x field.
	questionshare.DefaultChartDesX = questionshareDescChartDesX.Default.(float64)
	// questionshareDescChartDesY is the schema descriptor for chart_des_y field.
	questionshareDescChartDesY := questionshareFields[15].Descriptor()
	// questionshare.DefaultChartDesY holds the default value on creation for the chart_des_y field.
	questionshare.DefaultChartDesY = questionshareDescChartDesY.Default.(float64)
	// questionshareDescChartBranchCount is the schema descriptor for chart_branch_count field.
	questionshareDescChartBranchCount := questionshareFields[16].Descriptor()
	// questionshare.DefaultChartBranchCount holds the default value on creation for the chart_branch_count field.
	questionshare.DefaultChartBranchCount = questionshareDescChartBranchCount.Default.(int)
	// questionshareDescID is the schema descriptor for id field.
	questionshareDescID := questionshareMixinFields0[0].Descriptor()
	// questionshare.DefaultID holds the default value on creation for the id field.
	questionshare.DefaultID = questionshareDescID.Default.(func() uuid.UUID)
	realclinicMixin := schema.RealClinic{}.Mixin()
	realclinicMixinFields0 := realclinicMixin[0].Fields()
	_ = realclinicMixinFields0
	realclinicMixinFields1 := realclinicMixin[1].Fields()
	_ = realclinicMixinFields1
	realclinicFields := schema.RealClinic{}.Fields()
	_ = realclinicFields
	// realclinicDescCreatedAt is the schema descriptor for created_at field.
	realclinicDescCreatedAt := realclinicMixinFields1[0].Descriptor()
	// realclinic.DefaultCreatedAt holds the default value on creation for the created_at field.
	realclinic.DefaultCreatedAt = realclinicDescCreatedAt.Default.(func() time.Time)
	// realclinicDescUpdatedAt is the schema descriptor for updated_at field.
	realclinicDescUpdatedAt := realclinicMixinFields1[1].Descriptor()
	// realclinic.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	realclinic.DefaultUpdatedAt = realclinicDescUpdatedAt.Default.(func() time.Time)
	// realclinic.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	realclinic.UpdateDefaultUpdatedAt = realclinicDescUpdatedAt.UpdateDefault.(func() time.Time)
	// realclinicDescTitle is the schema descriptor for title field.
	realclinicDescTitle := realclinicFields[0].Descriptor()
	// realclinic.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	realclinic.TitleValidator = func() func(string) error {
		validators := realclinicDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// realclinicDescPhone is the schema descriptor for phone field.
	realclinicDescPhone := realclinicFields[1].Descriptor()
	// realclinic.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	realclinic.PhoneValidator = realclinicDescPhone.Validators[0].(func(string) error)
	// realclinicDescCity is the schema descriptor for city field.
	realclinicDescCity := realclinicFields[3].Descriptor()
	// realclinic.CityValidator is a validator for the "city" field. It is called by the builders before save.
	realclinic.CityValidator = realclinicDescCity.Validators[0].(func(string) error)
	// realclinicDescID is the schema descriptor for id field.
	realclinicDescID := realclinicMixinFields0[0].Descriptor()
	// realclinic.DefaultID holds the default value on creation for the id field.
	realclinic.DefaultID = realclinicDescID.Default.(func() uuid.UUID)
	realdoctorMixin := schema.RealDoctor{}.Mixin()
	realdoctorMixinFields0 := realdoctorMixin[0].Fields()
	_ = realdoctorMixinFields0
	realdoctorMixinFields1 := realdoctorMixin[1].Fields()
	_ = realdoctorMixinFields1
	realdoctorFields := schema.RealDoctor{}.Fields()
	_ = realdoctorFields
	// realdoctorDescCreatedAt is the schema descriptor for created_at field.
	realdoctorDescCreatedAt := realdoctorMixinFields1[0].Descriptor()
	// realdoctor.DefaultCreatedAt holds the default value on creation for the created_at field.
	realdoctor.DefaultCreatedAt = realdoctorDescCreatedAt.Default.(func() time.Time)
	// realdoctorDescUpdatedAt is the schema descriptor for updated_at field.
	realdoctorDescUpdatedAt := realdoctorMixinFields1[1].Descriptor()
	// realdoctor.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	realdoctor.DefaultUpdatedAt = realdoctorDescUpdatedAt.Default.(func() time.Time)
	// realdoctor.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	realdoctor.UpdateDefaultUpdatedAt = realdoctorDescUpdatedAt.UpdateDefault.(func() time.Time)
	// realdoctorDescFullName is the schema descriptor for full_name field.
	realdoctorDescFullName := realdoctorFields[0].Descriptor()
	// realdoctor.FullNameValidator is a validator for the "full_name" field. It is called by the builders before save.
	realdoctor.FullNameValidator = func() func(string) error {
		validators := realdoctorDescFullName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(full_name string) error {
			for _, fn := range fns {
				if err := fn(full_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// realdoctorDescSpecialty is the schema descriptor for specialty field.
	realdoctorDescSpecialty := realdoctorFields[1].Descriptor()
	// realdoctor.SpecialtyValidator is a validator for the "specialty" field. It is called by the builders before save.
	realdoctor.SpecialtyValidator = realdoctorDescSpecialty.Validators[0].(func(string) error)
	// realdoctorDescPhone is the schema descriptor for phone field.
	realdoctorDescPhone := realdoctorFields[2].Descriptor()
	// realdoctor.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	realdoctor.PhoneValidator = realdoctorDescPhone.Validators[0].(func(string) error)
	// realdoctorDescCity is the schema descriptor for city field.
	realdoctorDescCity := realdoctorFields[4].Descriptor()
	// realdoctor.CityValidator is a validator for the "city" field. It is called by the builders before save.
	realdoctor.CityValidator = realdoctorDescCity.Validators[0].(func(string) error)
	// realdoctorDescID is the schema descriptor for id field.
	realdoctorDescID := realdoctorMixinFields0[0].Descriptor()
	// realdoctor.DefaultID holds the default value on creation for the id field.
	realdoctor.DefaultID = realdoctorDescID.Default.(func() uuid.UUID)
	suggestionMixin := schema.Suggestion{}.Mixin()
	suggestionMixinFields0 := suggestionMixin[0].Fields()
	_ = suggestionMixinFields0
	suggestionMixinFields1 := suggestionMixin[1].Fields()
	_ = suggestionMixinFields1
	suggestionFields := schema.Suggestion{}.Fields()
	_ = suggestionFields
	// suggestionDescCreatedAt is the schema descriptor for created_at field.
	suggestionDescCreatedAt := suggestionMixinFields1[0].Descriptor()
	// suggestion.DefaultCreatedAt holds the default value on creation for the created_at field.
	suggestion.DefaultCreatedAt = suggestionDescCreatedAt.Default.(func() time.Time)
	// suggestionDescUpdatedAt is the schema descriptor for updated_at field.
	suggestionDescUpdatedAt := suggestionMixinFields1[1].Descriptor()
	// suggestion.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	suggestion.DefaultUpdatedAt = suggestionDescUpdatedAt.Default.(func() time.Time)
	// suggestion.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	suggestion.UpdateDefaultUpdatedAt = suggestionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// suggestionDescID is the schema descriptor for id field.
	suggestionDescID := suggestionMixinFields0[0].Descriptor()
	// suggestion.DefaultID holds the default value on creation for the id field.
	suggestion.DefaultID = suggestionDescID.Default.(func() uuid.UUID)
	supervisorMixin := schema.Supervisor{}.Mixin()
	supervisorMixinFields0 := supervisorMixin[0].Fields()
	_ = supervisorMixinFields0
	supervisorMixinFields1 := supervisorMixin[1].Fields()
	_ = supervisorMixinFields1
	supervisorFields := schema.Supervisor{}.Fields()
	_ = supervisorFields
	// supervisorDescCreatedAt is the schema descriptor for created_at field.
	supervisorDescCreatedAt := supervisorMixinFields1[0].Descriptor()
	// supervisor.DefaultCreatedAt holds the default value on creation for the created_at field.
	supervisor.DefaultCreatedAt = supervisorDescCreatedAt.Default.(func() time.Time)
	// supervisorDescUpdatedAt is the schema descriptor for updated_at field.
	supervisorDescUpdatedAt := supervisorMixinFields1[1].Descriptor()
	// supervisor.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	supervisor.DefaultUpdatedAt = supervisorDescUpdatedAt.Default.(func() time.Time)
	// supervisor.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	supervisor.UpdateDefaultUpdatedAt = supervisorDescUpdatedAt.UpdateDefault.(func() time.Time)
	// supervisorDescID is the schema descriptor for id field.
	supervisorDescID := supervisorMixinFields0[0].Descriptor()
	// supervisor.DefaultID holds the default value on creation for the id field.
	supervisor.DefaultID = supervisorDescID.Default.(func() uuid.UUID)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userMixinFields1 := userMixin[1].Fields()
	_ = userMixinFields1
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields1[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields1[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescFirstName is the schema descriptor for first_name field.
	userDescFirstName := userFields[0].Descriptor()
	// user.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	user.FirstNameValidator = userDescFirstName.Validators[0].(func(string) error)
	// userDescLastName is the schema descriptor for last_name field.
	userDescLastName := userFields[1].Descriptor()
	// user.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	user.LastNameValidator = userDescLastName.Validators[0].(func(string) error)
	// userDescPhone is the schema descriptor for phone field.
	userDescPhone := userFields[2].Descriptor()
	// user.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	user.PhoneValidator = func() func(string) error {
		validators := userDescPhone.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(phone string) error {
			for _, fn := range fns {
				if err := fn(phone); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[3].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescNationalCodeHash is the schema descriptor for national_code_hash field.
	userDescNationalCodeHash := userFields[5].Descriptor()
	// user.NationalCodeHashValidator is a validator for the "national_code_hash" field. It is called by the builders before save.
	user.NationalCodeHashValidator = userDescNationalCodeHash.Validators[0].(func(string) error)
	// userDescIdentityApproved is the schema descriptor for identity_approved field.
	userDescIdentityApproved := userFields[6].Descriptor()
	// user.DefaultIdentityApproved holds the default value on creation for the identity_approved field.
	user.DefaultIdentityApproved = userDescIdentityApproved.Default.(bool)
	// userDescPhoneVerified is the schema descriptor for phone_verified field.
	userDescPhoneVerified := userFields[9].Descriptor()
	// user.DefaultPhoneVerified holds the default value on creation for the phone_verified field.
	user.DefaultPhoneVerified = userDescPhoneVerified.Default.(bool)
	// userDescMetadata is the schema descriptor for metadata field.
	userDescMetadata := userFields[11].Descriptor()
	// user.DefaultMetadata holds the default value on creation for the metadata field.
	user.DefaultMetadata = userDescMetadata.Default.(map[string]interface{})
	// userDescID is the schema descriptor for id field.
	userDescID := userMixinFields0[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
	usersessionMixin := schema.UserSession{}.Mixin()
	usersessionMixinFields0 := usersessionMixin[0].Fields()
	_ = usersessionMixinFields0
	usersessionMixinFields1 := usersessionMixin[1].Fields()
	_ = usersessionMixinFields1
	usersessionFields := schema.UserSession{}.Fields()
	_ = usersessionFields
	// usersessionDescCreatedAt is the schema descriptor for created_at field.
	usersessionDescCreatedAt := usersessionMixinFields1[0].Descriptor()
	// usersession.DefaultCreatedAt holds the default value on creation for the created_at field.
	usersession.DefaultCreatedAt = usersessionDescCreatedAt.Default.(func() time.Time)
	// usersessionDescUpdatedAt is the schema descriptor for updated_at field.
	usersessionDescUpdatedAt := usersessionMixinFields1[1].Descriptor()
	// usersession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	usersession.DefaultUpdatedAt = usersessionDescUpdatedAt.Default.(func() time.Time)
	// usersession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	usersession.UpdateDefaultUpdatedAt = usersessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// usersessionDescSessionID is the schema descriptor for session_id field.
	usersessionDescSessionID := usersessionFields[1].Descriptor()
	// usersession.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	usersession.SessionIDValidator = func() func(string) error {
		validators := usersessionDescSessionID.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(session_id string) error {
			for _, fn := range fns {
				if err := fn(session_id); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// usersessionDescRefreshTokenHash is the schema descriptor for refresh_token_hash field.
	usersessionDescRefreshTokenHash := usersessionFields[2].Descriptor()
	// usersession.RefreshTokenHashValidator is a validator for the "refresh_token_hash" field. It is called by the builders before save.
	usersession.RefreshTokenHashValidator = usersessionDescRefreshTokenHash.Validators[0].(func(string) error)
	// usersessionDescIPAddress is the schema descriptor for ip_address field.
	usersessionDescIPAddress := usersessionFields[4].Descriptor()
	// usersession.IPAddressValidator is a validator for the "ip_address" field. It is called by the builders before save.
	usersession.IPAddressValidator = usersessionDescIPAddress.Validators[0].(func(string) error)
	// usersessionDescID is the schema descriptor for id field.
	usersessionDescID := usersessionMixinFields0[0].Descriptor()
	// usersession.DefaultID holds the default value on creation for the id field.
	usersession.DefaultID = usersessionDescID.Default.(func() uuid.UUID)
}
