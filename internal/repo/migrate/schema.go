// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AlertsColumns holds the columns for the "alerts" table.
	AlertsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "severity", Type: field.TypeEnum, Enums: []string{"low", "medium", "high"}, Default: "low"},
		{Name: "reminder_count", Type: field.TypeInt, Default: 1},
		{Name: "reminder_unit", Type: field.TypeEnum, Enums: []string{"day", "week", "month", "year"}, Default: "day"},
		{Name: "channel", Type: field.TypeEnum, Enums: []string{"sms", "web", "call"}, Default: "web"},
		{Name: "clinic_id", Type: field.TypeUUID},
	}
	// AlertsTable holds the schema information for the "alerts" table.
	AlertsTable = &schema.Table{
		Name:       "alerts",
		Columns:    AlertsColumns,
		PrimaryKey: []*schema.Column{AlertsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "alerts_clinics_alerts",
				Columns:    []*schema.Column{AlertsColumns[10]},
				RefColumns: []*schema.Column{ClinicsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "alert_clinic_id",
				Unique:  false,
				Columns: []*schema.Column{AlertsColumns[10]},
			},
		},
	}
	// CheckupsColumns holds the columns for the "checkups" table.
	CheckupsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "title", Type: field.TypeString, Size: 500},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "executed_at", Type: field.TypeTime},
		{Name: "is_completed", Type: field.TypeBool, Default: false},
		{Name: "clinic_id", Type: field.TypeUUID, Nullable: true},
		{Name: "clinic_checkup_id", Type: field.TypeUUID, Nullable: true},
		{Name: "patient_profile_id", Type: field.TypeUUID},
	}
	// CheckupsTable holds the schema information for the "checkups" table.
	CheckupsTable = &schema.Table{
		Name:       "checkups",
		Columns:    CheckupsColumns,
		PrimaryKey: []*schema.Column{CheckupsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "checkups_clinics_clinic",
				Columns:    []*schema.Column{CheckupsColumns[8]},
				RefColumns: []*schema.Column{ClinicsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "checkups_clinic_checkups_sessions",
				Columns:    []*schema.Column{CheckupsColumns[9]},
				RefColumns: []*schema.Column{ClinicCheckupsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "checkups_patient_profiles_checkups",
				Columns:    []*schema.Column{CheckupsColumns[10]},
				RefColumns: []*schema.Column{PatientProfilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "checkup_patient_profile_id",
				Unique:  false,
				Columns: []*schema.Column{CheckupsColumns[10]},
			},
			{
				Name:    "checkup_clinic_checkup_id",
				Unique:  false,
				Columns: []*schema.Column{CheckupsColumns[9]},
			},
		},
	}
	// CheckupAnalyzesColumns holds the columns for the "checkup_analyzes" table.
	CheckupAnalyzesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "clinic_checkup_id", Type: field.TypeUUID},
	}
	// CheckupAnalyzesTable holds the schema information for the "checkup_analyzes" table.
	CheckupAnalyzesTable = &schema.Table{
		Name:       "checkup_analyzes",
		Columns:    CheckupAnalyzesColumns,
		PrimaryKey: []*schema.Column{CheckupAnalyzesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "checkup_analyzes_clinic_checkups_analyzes",
				Columns:    []*schema.Column{CheckupAnalyzesColumns[6]},
				RefColumns: []*schema.Column{ClinicCheckupsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "checkupanalyze_clinic_checkup_id",
				Unique:  false,
				Columns: []*schema.Column{CheckupAnalyzesColumns[6]},
			},
		},
	}
	// ClinicsColumns holds the columns for the "clinics" table.
	ClinicsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "slug", Type: field.TypeString, Unique: true, Size: 100},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "logo_key", Type: field.TypeString, Nullable: true, Size: 500},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "address", Type: field.TypeString, Nullable: true},
		{Name: "city", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "province", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "is_verified", Type: field.TypeBool, Default: false},
		{Name: "group_id", Type: field.TypeUUID, Nullable: true},
	}
	// ClinicsTable holds the schema information for the "clinics" table.
	ClinicsTable = &schema.Table{
		Name:       "clinics",
		Columns:    ClinicsColumns,
		PrimaryKey: []*schema.Column{ClinicsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "clinics_clinic_groups_clinics",
				Columns:    []*schema.Column{ClinicsColumns[14]},
				RefColumns: []*schema.Column{ClinicGroupsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "clinic_slug",
				Unique:  false,
				Columns: []*schema.Column{ClinicsColumns[5]},
			},
			{
				Name:    "clinic_group_id",
				Unique:  false,
				Columns: []*schema.Column{ClinicsColumns[14]},
			},
		},
	}
	// ClinicCheckupsColumns holds the columns for the "clinic_checkups" table.
	ClinicCheckupsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "required_time_minutes", Type: field.TypeInt, Default: 0},
		{Name: "required_auth", Type: field.TypeBool, Default: false},
		{Name: "question_count", Type: field.TypeInt, Default: 0},
		{Name: "approvers", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "clinic_id", Type: field.TypeUUID},
		{Name: "starting_question_id", Type: field.TypeUUID, Nullable: true},
	}
	// ClinicCheckupsTable holds the schema information for the "clinic_checkups" table.
	ClinicCheckupsTable = &schema.Table{
		Name:       "clinic_checkups",
		Columns:    ClinicCheckupsColumns,
		PrimaryKey: []*schema.Column{ClinicCheckupsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "clinic_checkups_clinics_checkup_templates",
				Columns:    []*schema.Column{ClinicCheckupsColumns[11]},
				RefColumns: []*schema.Column{ClinicsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "clinic_checkups_question_shares_starting_question",
				Columns:    []*schema.Column{ClinicCheckupsColumns[12]},
				RefColumns: []*schema.Column{QuestionSharesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "cliniccheckup_clinic_id",
				Unique:  false,
				Columns: []*schema.Column{ClinicCheckupsColumns[11]},
			},
		},
	}
	// ClinicGroupsColumns holds the columns for the "clinic_groups" table.
	ClinicGroupsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// ClinicGroupsTable holds the schema information for the "clinic_groups" table.
	ClinicGroupsTable = &schema.Table{
		Name:       "clinic_groups",
		Columns:    ClinicGroupsColumns,
		PrimaryKey: []*schema.Column{ClinicGroupsColumns[0]},
	}
	// ClinicMediaColumns holds the columns for the "clinic_media" table.
	ClinicMediaColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "clinic_id", Type: field.TypeUUID},
		{Name: "media_id", Type: field.TypeUUID},
	}
	// ClinicMediaTable holds the schema information for the "clinic_media" table.
	ClinicMediaTable = &schema.Table{
		Name:       "clinic_media",
		Columns:    ClinicMediaColumns,
		PrimaryKey: []*schema.Column{ClinicMediaColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "clinic_media_clinics_clinic",
				Columns:    []*schema.Column{ClinicMediaColumns[6]},
				RefColumns: []*schema.Column{ClinicsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "clinic_media_media_media",
				Columns:    []*schema.Column{ClinicMediaColumns[7]},
				RefColumns: []*schema.Column{MediaColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "clinicmedia_clinic_id",
				Unique:  false,
				Columns: []*schema.Column{ClinicMediaColumns[6]},
			},
		},
	}
	// DoctorsColumns holds the columns for the "doctors" table.
	DoctorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "specialty", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "medical_code", Type: field.TypeString, Unique: true, Nullable: true, Size: 20},
		{Name: "bio", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "is_verified", Type: field.TypeBool, Default: false},
		{Name: "clinic_id", Type: field.TypeUUID, Nullable: true},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// DoctorsTable holds the schema information for the "doctors" table.
	DoctorsTable = &schema.Table{
		Name:       "doctors",
		Columns:    DoctorsColumns,
		PrimaryKey: []*schema.Column{DoctorsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "doctors_clinics_doctors",
				Columns:    []*schema.Column{DoctorsColumns[8]},
				RefColumns: []*schema.Column{ClinicsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "doctors_users_user",
				Columns:    []*schema.Column{DoctorsColumns[9]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "doctor_clinic_id",
				Unique:  false,
				Columns: []*schema.Column{DoctorsColumns[8]},
			},
		},
	}
	// InterpretationsColumns holds the columns for the "interpretations" table.
	InterpretationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "content", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "analyze_id", Type: field.TypeUUID},
	}
	// InterpretationsTable holds the schema information for the "interpretations" table.
	InterpretationsTable = &schema.Table{
		Name:       "interpretations",
		Columns:    InterpretationsColumns,
		PrimaryKey: []*schema.Column{InterpretationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "interpretations_checkup_analyzes_interpretations",
				Columns:    []*schema.Column{InterpretationsColumns[6]},
				RefColumns: []*schema.Column{CheckupAnalyzesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// MediaColumns holds the columns for the "media" table.
	MediaColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "file_key", Type: field.TypeString, Size: 500},
		{Name: "file_name", Type: field.TypeString, Size: 255},
		{Name: "mime_type", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "size_bytes", Type: field.TypeInt64, Default: 0},
		{Name: "category", Type: field.TypeEnum, Enums: []string{"image", "video", "document", "audio"}, Default: "document"},
		{Name: "clinic_id", Type: field.TypeUUID},
	}
	// MediaTable holds the schema information for the "media" table.
	MediaTable = &schema.Table{
		Name:       "media",
		Columns:    MediaColumns,
		PrimaryKey: []*schema.Column{MediaColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "media_clinics_media",
				Columns:    []*schema.Column{MediaColumns[9]},
				RefColumns: []*schema.Column{ClinicsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "media_clinic_id",
				Unique:  false,
				Columns: []*schema.Column{MediaColumns[9]},
			},
		},
	}
	// OrgansColumns holds the columns for the "organs" table.
	OrgansColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Unique: true, Size: 300},
		{Name: "parent_id", Type: field.TypeUUID, Nullable: true},
	}
	// OrgansTable holds the schema information for the "organs" table.
	OrgansTable = &schema.Table{
		Name:       "organs",
		Columns:    OrgansColumns,
		PrimaryKey: []*schema.Column{OrgansColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "organs_organs_children",
				Columns:    []*schema.Column{OrgansColumns[4]},
				RefColumns: []*schema.Column{OrgansColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
	}
	// PatientProfilesColumns holds the columns for the "patient_profiles" table.
	PatientProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "gender", Type: field.TypeEnum, Nullable: true, Enums: []string{"male", "female"}},
		{Name: "birth_date", Type: field.TypeTime, Nullable: true},
		{Name: "height_cm", Type: field.TypeFloat64, Nullable: true},
		{Name: "weight_kg", Type: field.TypeFloat64, Nullable: true},
		{Name: "medical_history", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// PatientProfilesTable holds the schema information for the "patient_profiles" table.
	PatientProfilesTable = &schema.Table{
		Name:       "patient_profiles",
		Columns:    PatientProfilesColumns,
		PrimaryKey: []*schema.Column{PatientProfilesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "patient_profiles_users_user",
				Columns:    []*schema.Column{PatientProfilesColumns[9]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "patientprofile_user_id",
				Unique:  false,
				Columns: []*schema.Column{PatientProfilesColumns[9]},
			},
		},
	}
	// QuestionAnswersColumns holds the columns for the "question_answers" table.
	QuestionAnswersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "raw_value", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "checkup_id", Type: field.TypeUUID},
		{Name: "question_share_id", Type: field.TypeUUID},
		{Name: "question_option_id", Type: field.TypeUUID},
	}
	// QuestionAnswersTable holds the schema information for the "question_answers" table.
	QuestionAnswersTable = &schema.Table{
		Name:       "question_answers",
		Columns:    QuestionAnswersColumns,
		PrimaryKey: []*schema.Column{QuestionAnswersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "question_answers_checkups_answers",
				Columns:    []*schema.Column{QuestionAnswersColumns[3]},
				RefColumns: []*schema.Column{CheckupsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "question_answers_question_shares_question",
				Columns:    []*schema.Column{QuestionAnswersColumns[4]},
				RefColumns: []*schema.Column{QuestionSharesColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "question_answers_question_options_option",
				Columns:    []*schema.Column{QuestionAnswersColumns[5]},
				RefColumns: []*schema.Column{QuestionOptionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "questionanswer_checkup_id",
				Unique:  false,
				Columns: []*schema.Column{QuestionAnswersColumns[3]},
			},
		},
	}
	// QuestionOptionsColumns holds the columns for the "question_options" table.
	QuestionOptionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "title", Type: field.TypeString, Size: 500},
		{Name: "weight", Type: field.TypeInt, Default: 0},
		{Name: "interpretation", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "tutorial", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "is_branch", Type: field.TypeBool, Default: false},
		{Name: "chart_x", Type: field.TypeFloat64, Default: 0},
		{Name: "chart_y", Type: field.TypeFloat64, Default: 0},
		{Name: "alert_id", Type: field.TypeUUID, Nullable: true},
		{Name: "suggested_doctor_id", Type: field.TypeUUID, Nullable: true},
		{Name: "suggested_clinic_id", Type: field.TypeUUID, Nullable: true},
		{Name: "chart_connect_question_id", Type: field.TypeUUID, Nullable: true},
		{Name: "question_id", Type: field.TypeUUID},
	}
	// QuestionOptionsTable holds the schema information for the "question_options" table.
	QuestionOptionsTable = &schema.Table{
		Name:       "question_options",
		Columns:    QuestionOptionsColumns,
		PrimaryKey: []*schema.Column{QuestionOptionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "question_options_alerts_alert",
				Columns:    []*schema.Column{QuestionOptionsColumns[11]},
				RefColumns: []*schema.Column{AlertsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "question_options_doctors_suggested_doctor",
				Columns:    []*schema.Column{QuestionOptionsColumns[12]},
				RefColumns: []*schema.Column{DoctorsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "question_options_clinics_suggested_clinic",
				Columns:    []*schema.Column{QuestionOptionsColumns[13]},
				RefColumns: []*schema.Column{ClinicsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "question_options_question_shares_chart_connect",
				Columns:    []*schema.Column{QuestionOptionsColumns[14]},
				RefColumns: []*schema.Column{QuestionSharesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "question_options_question_shares_options",
				Columns:    []*schema.Column{QuestionOptionsColumns[15]},
				RefColumns: []*schema.Column{QuestionSharesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "questionoption_question_id",
				Unique:  false,
				Columns: []*schema.Column{QuestionOptionsColumns[15]},
			},
		},
	}
	// QuestionOptionDatesColumns holds the columns for the "question_option_dates" table.
	QuestionOptionDatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "lower_band", Type: field.TypeFloat64},
		{Name: "upper_band", Type: field.TypeFloat64},
		{Name: "option_id", Type: field.TypeUUID},
	}
	// QuestionOptionDatesTable holds the schema information for the "question_option_dates" table.
	QuestionOptionDatesTable = &schema.Table{
		Name:       "question_option_dates",
		Columns:    QuestionOptionDatesColumns,
		PrimaryKey: []*schema.Column{QuestionOptionDatesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "question_option_dates_question_options_date_ranges",
				Columns:    []*schema.Column{QuestionOptionDatesColumns[4]},
				RefColumns: []*schema.Column{QuestionOptionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// QuestionOptionEquationsColumns holds the columns for the "question_option_equations" table.
	QuestionOptionEquationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "lower_band", Type: field.TypeFloat64},
		{Name: "upper_band", Type: field.TypeFloat64},
		{Name: "option_id", Type: field.TypeUUID},
	}
	// QuestionOptionEquationsTable holds the schema information for the "question_option_equations" table.
	QuestionOptionEquationsTable = &schema.Table{
		Name:       "question_option_equations",
		Columns:    QuestionOptionEquationsColumns,
		PrimaryKey: []*schema.Column{QuestionOptionEquationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "question_option_equations_question_options_equation_ranges",
				Columns:    []*schema.Column{QuestionOptionEquationsColumns[4]},
				RefColumns: []*schema.Column{QuestionOptionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// QuestionOptionNumbersColumns holds the columns for the "question_option_numbers" table.
	QuestionOptionNumbersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "lower_band", Type: field.TypeFloat64},
		{Name: "upper_band", Type: field.TypeFloat64},
		{Name: "option_id", Type: field.TypeUUID},
	}
	// QuestionOptionNumbersTable holds the schema information for the "question_option_numbers" table.
	QuestionOptionNumbersTable = &schema.Table{
		Name:       "question_option_numbers",
		Columns:    QuestionOptionNumbersColumns,
		PrimaryKey: []*schema.Column{QuestionOptionNumbersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "question_option_numbers_question_options_number_ranges",
				Columns:    []*schema.Column{QuestionOptionNumbersColumns[4]},
				RefColumns: []*schema.Column{QuestionOptionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// QuestionSharesColumns holds the columns for the "question_shares" table.
	QuestionSharesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "title", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "prompt", Type: field.TypeString, Size: 2147483647},
		{Name: "question_type", Type: field.TypeEnum, Enums: []string{"multiple_choice", "multiple_date", "number", "date", "chart", "weight", "picture", "placeholder"}, Default: "multiple_choice"},
		{Name: "expert_level", Type: field.TypeEnum, Enums: []string{"public", "expert"}, Default: "public"},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"low", "normal", "high"}, Default: "normal"},
		{Name: "date_type", Type: field.TypeEnum, Enums: []string{"exact", "approximate"}, Default: "exact"},
		{Name: "is_starter", Type: field.TypeBool, Default: false},
		{Name: "is_equation", Type: field.TypeBool, Default: false},
		{Name: "equation", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "chart_visible", Type: field.TypeBool, Default: true},
		{Name: "chart_src_x", Type: field.TypeFloat64, Default: 0},
		{Name: "chart_src_y", Type: field.TypeFloat64, Default: 0},
		{Name: "chart_des_x", Type: field.TypeFloat64, Default: 0},
		{Name: "chart_des_y", Type: field.TypeFloat64, Default: 0},
		{Name: "chart_branch_count", Type: field.TypeInt, Default: 0},
		{Name: "doctor_id", Type: field.TypeUUID},
		{Name: "clinic_id", Type: field.TypeUUID, Nullable: true},
		{Name: "chart_connect_question_id", Type: field.TypeUUID, Unique: true, Nullable: true},
	}
	// QuestionSharesTable holds the schema information for the "question_shares" table.
	QuestionSharesTable = &schema.Table{
		Name:       "question_shares",
		Columns:    QuestionSharesColumns,
		PrimaryKey: []*schema.Column{QuestionSharesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "question_shares_doctors_questions",
				Columns:    []*schema.Column{QuestionSharesColumns[19]},
				RefColumns: []*schema.Column{DoctorsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "question_shares_clinics_clinic",
				Columns:    []*schema.Column{QuestionSharesColumns[20]},
				RefColumns: []*schema.Column{ClinicsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "question_shares_question_shares_chart_connect",
				Columns:    []*schema.Column{QuestionSharesColumns[21]},
				RefColumns: []*schema.Column{QuestionSharesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "questionshare_doctor_id",
				Unique:  false,
				Columns: []*schema.Column{QuestionSharesColumns[19]},
			},
			{
				Name:    "questionshare_clinic_id",
				Unique:  false,
				Columns: []*schema.Column{QuestionSharesColumns[20]},
			},
		},
	}
	// RealClinicsColumns holds the columns for the "real_clinics" table.
	RealClinicsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "address", Type: field.TypeString, Nullable: true},
		{Name: "city", Type: field.TypeString, Nullable: true, Size: 100},
	}
	// RealClinicsTable holds the schema information for the "real_clinics" table.
	RealClinicsTable = &schema.Table{
		Name:       "real_clinics",
		Columns:    RealClinicsColumns,
		PrimaryKey: []*schema.Column{RealClinicsColumns[0]},
	}
	// RealDoctorsColumns holds the columns for the "real_doctors" table.
	RealDoctorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "full_name", Type: field.TypeString, Size: 255},
		{Name: "specialty", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "address", Type: field.TypeString, Nullable: true},
		{Name: "city", Type: field.TypeString, Nullable: true, Size: 100},
	}
	// RealDoctorsTable holds the schema information for the "real_doctors" table.
	RealDoctorsTable = &schema.Table{
		Name:       "real_doctors",
		Columns:    RealDoctorsColumns,
		PrimaryKey: []*schema.Column{RealDoctorsColumns[0]},
	}
	// SuggestionsColumns holds the columns for the "suggestions" table.
	SuggestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "note", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "interpretation_id", Type: field.TypeUUID},
		{Name: "doctor_id", Type: field.TypeUUID, Nullable: true},
		{Name: "real_doctor_id", Type: field.TypeUUID, Nullable: true},
		{Name: "clinic_id", Type: field.TypeUUID, Nullable: true},
		{Name: "real_clinic_id", Type: field.TypeUUID, Nullable: true},
		{Name: "clinic_media_id", Type: field.TypeUUID, Nullable: true},
	}
	// SuggestionsTable holds the schema information for the "suggestions" table.
	SuggestionsTable = &schema.Table{
		Name:       "suggestions",
		Columns:    SuggestionsColumns,
		PrimaryKey: []*schema.Column{SuggestionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "suggestions_interpretations_suggestions",
				Columns:    []*schema.Column{SuggestionsColumns[5]},
				RefColumns: []*schema.Column{InterpretationsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "suggestions_doctors_doctor",
				Columns:    []*schema.Column{SuggestionsColumns[6]},
				RefColumns: []*schema.Column{DoctorsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "suggestions_real_doctors_real_doctor",
				Columns:    []*schema.Column{SuggestionsColumns[7]},
				RefColumns: []*schema.Column{RealDoctorsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "suggestions_clinics_clinic",
				Columns:    []*schema.Column{SuggestionsColumns[8]},
				RefColumns: []*schema.Column{ClinicsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "suggestions_real_clinics_real_clinic",
				Columns:    []*schema.Column{SuggestionsColumns[9]},
				RefColumns: []*schema.Column{RealClinicsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "suggestions_clinic_media_clinic_media",
				Columns:    []*schema.Column{SuggestionsColumns[10]},
				RefColumns: []*schema.Column{ClinicMediaColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
	}
	// SupervisorsColumns holds the columns for the "supervisors" table.
	SupervisorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "relative_type", Type: field.TypeEnum, Enums: []string{"parent", "child", "spouse", "sibling", "other"}, Default: "other"},
		{Name: "patient_profile_id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// SupervisorsTable holds the schema information for the "supervisors" table.
	SupervisorsTable = &schema.Table{
		Name:       "supervisors",
		Columns:    SupervisorsColumns,
		PrimaryKey: []*schema.Column{SupervisorsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "supervisors_patient_profiles_supervisors",
				Columns:    []*schema.Column{SupervisorsColumns[4]},
				RefColumns: []*schema.Column{PatientProfilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "supervisors_users_user",
				Columns:    []*schema.Column{SupervisorsColumns[5]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "supervisor_user_id_patient_profile_id",
				Unique:  true,
				Columns: []*schema.Column{SupervisorsColumns[5], SupervisorsColumns[4]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "first_name", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "last_name", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "phone", Type: field.TypeString, Unique: true, Size: 20},
		{Name: "email", Type: field.TypeString, Unique: true, Nullable: true, Size: 255},
		{Name: "national_code", Type: field.TypeString, Nullable: true},
		{Name: "national_code_hash", Type: field.TypeString, Nullable: true, Size: 64},
		{Name: "identity_approved", Type: field.TypeBool, Default: false},
		{Name: "identity_approved_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"ACTIVE", "SUSPENDED"}, Default: "ACTIVE"},
		{Name: "phone_verified", Type: field.TypeBool, Default: false},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "suspended_at", Type: field.TypeTime, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_national_code_hash",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[9]},
			},
		},
	}
	// UserSessionsColumns holds the columns for the "user_sessions" table.
	UserSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString, Unique: true, Size: 36},
		{Name: "refresh_token_hash", Type: field.TypeString, Nullable: true, Size: 64},
		{Name: "user_agent", Type: field.TypeString, Nullable: true},
		{Name: "ip_address", Type: field.TypeString, Nullable: true, Size: 45},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "last_used_at", Type: field.TypeTime, Nullable: true},
		{Name: "revoked_at", Type: field.TypeTime, Nullable: true},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// UserSessionsTable holds the schema information for the "user_sessions" table.
	UserSessionsTable = &schema.Table{
		Name:       "user_sessions",
		Columns:    UserSessionsColumns,
		PrimaryKey: []*schema.Column{UserSessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "user_sessions_users_user",
				Columns:    []*schema.Column{UserSessionsColumns[10]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "usersession_session_id",
				Unique:  false,
				Columns: []*schema.Column{UserSessionsColumns[3]},
			},
			{
				Name:    "usersession_user_id",
				Unique:  false,
				Columns: []*schema.Column{UserSessionsColumns[10]},
			},
		},
	}
	// QuestionShareOrgansColumns holds the columns for the "question_share_organs" table.
	QuestionShareOrgansColumns = []*schema.Column{
		{Name: "question_share_id", Type: field.TypeUUID},
		{Name: "organ_id", Type: field.TypeUUID},
	}
	// QuestionShareOrgansTable holds the schema information for the "question_share_organs" table.
	QuestionShareOrgansTable = &schema.Table{
		Name:       "question_share_organs",
		Columns:    QuestionShareOrgansColumns,
		PrimaryKey: []*schema.Column{QuestionShareOrgansColumns[0], QuestionShareOrgansColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "question_share_organs_question_share_id",
				Columns:    []*schema.Column{QuestionShareOrgansColumns[0]},
				RefColumns: []*schema.Column{QuestionSharesColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "question_share_organs_organ_id",
				Columns:    []*schema.Column{QuestionShareOrgansColumns[1]},
				RefColumns: []*schema.Column{OrgansColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AlertsTable,
		CheckupsTable,
		CheckupAnalyzesTable,
		ClinicsTable,
		ClinicCheckupsTable,
		ClinicGroupsTable,
		ClinicMediaTable,
		DoctorsTable,
		InterpretationsTable,
		MediaTable,
		OrgansTable,
		PatientProfilesTable,
		QuestionAnswersTable,
		QuestionOptionsTable,
		QuestionOptionDatesTable,
		QuestionOptionEquationsTable,
		QuestionOptionNumbersTable,
		QuestionSharesTable,
		RealClinicsTable,
		RealDoctorsTable,
		SuggestionsTable,
		SupervisorsTable,
		UsersTable,
		UserSessionsTable,
		QuestionShareOrgansTable,
	}
)

func init() {
	AlertsTable.ForeignKeys[0].RefTable = ClinicsTable
	CheckupsTable.ForeignKeys[0].RefTable = ClinicsTable
	CheckupsTable.ForeignKeys[1].RefTable = ClinicCheckupsTable
	CheckupsTable.ForeignKeys[2].RefTable = PatientProfilesTable
	CheckupAnalyzesTable.ForeignKeys[0].RefTable = ClinicCheckupsTable
	ClinicsTable.ForeignKeys[0].RefTable = ClinicGroupsTable
	ClinicCheckupsTable.ForeignKeys[0].RefTable = ClinicsTable
	ClinicCheckupsTable.ForeignKeys[1].RefTable = QuestionSharesTable
	ClinicMediaTable.ForeignKeys[0].RefTable = ClinicsTable
	ClinicMediaTable.ForeignKeys[1].RefTable = MediaTable
	DoctorsTable.ForeignKeys[0].RefTable = ClinicsTable
	DoctorsTable.ForeignKeys[1].RefTable = UsersTable
	InterpretationsTable.ForeignKeys[0].RefTable = CheckupAnalyzesTable
	MediaTable.ForeignKeys[0].RefTable = ClinicsTable
	OrgansTable.ForeignKeys[0].RefTable = OrgansTable
	PatientProfilesTable.ForeignKeys[0].RefTable = UsersTable
	QuestionAnswersTable.ForeignKeys[0].RefTable = CheckupsTable
	QuestionAnswersTable.ForeignKeys[1].RefTable = QuestionSharesTable
	QuestionAnswersTable.ForeignKeys[2].RefTable = QuestionOptionsTable
	QuestionOptionsTable.ForeignKeys[0].RefTable = AlertsTable
	QuestionOptionsTable.ForeignKeys[1].RefTable = DoctorsTable
	QuestionOptionsTable.ForeignKeys[2].RefTable = ClinicsTable
	QuestionOptionsTable.ForeignKeys[3].RefTable = QuestionSharesTable
	QuestionOptionsTable.ForeignKeys[4].RefTable = QuestionSharesTable
	QuestionOptionDatesTable.ForeignKeys[0].RefTable = QuestionOptionsTable
	QuestionOptionEquationsTable.ForeignKeys[0].RefTable = QuestionOptionsTable
	QuestionOptionNumbersTable.ForeignKeys[0].RefTable = QuestionOptionsTable
	QuestionSharesTable.ForeignKeys[0].RefTable = DoctorsTable
	QuestionSharesTable.ForeignKeys[1].RefTable = ClinicsTable
	QuestionSharesTable.ForeignKeys[2].RefTable = QuestionSharesTable
	SuggestionsTable.ForeignKeys[0].RefTable = InterpretationsTable
	SuggestionsTable.ForeignKeys[1].RefTable = DoctorsTable
	SuggestionsTable.ForeignKeys[2].RefTable = RealDoctorsTable
	SuggestionsTable.ForeignKeys[3].RefTable = ClinicsTable
	SuggestionsTable.ForeignKeys[4].RefTable = RealClinicsTable
	SuggestionsTable.ForeignKeys[5].RefTable = ClinicMediaTable
	SupervisorsTable.ForeignKeys[0].RefTable = PatientProfilesTable
	SupervisorsTable.ForeignKeys[1].RefTable = UsersTable
	UserSessionsTable.ForeignKeys[0].RefTable = UsersTable
	QuestionShareOrgansTable.ForeignKeys[0].RefTable = QuestionSharesTable
	QuestionShareOrgansTable.ForeignKeys[1].RefTable = OrgansTable
}
