// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AppointmentsColumns holds the columns for the "appointments" table.
	AppointmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "clinic_id", Type: field.TypeUUID},
		{Name: "doctor_id", Type: field.TypeUUID},
		{Name: "patient_name", Type: field.TypeString},
		{Name: "patient_phone", Type: field.TypeString},
		{Name: "patient_email", Type: field.TypeString, Nullable: true},
		{Name: "day", Type: field.TypeString},
		{Name: "slot_index", Type: field.TypeInt},
		{Name: "session_index", Type: field.TypeInt},
		{Name: "start_time", Type: field.TypeTime},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"walkin", "advance"}},
		{Name: "token_number", Type: field.TypeString},
		{Name: "numeric_token", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "confirmed", "skipped", "no_show", "completed", "cancelled"}, Default: "pending"},
		{Name: "cut_off_time", Type: field.TypeTime},
		{Name: "no_show_time", Type: field.TypeTime},
		{Name: "delay_minutes", Type: field.TypeInt, Default: 0},
		{Name: "force_booked", Type: field.TypeBool, Default: false},
		{Name: "rejoined", Type: field.TypeBool, Default: false},
		{Name: "confirmed_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "cancelled_at", Type: field.TypeTime, Nullable: true},
		{Name: "cancellation_reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// AppointmentsTable holds the schema information for the "appointments" table.
	AppointmentsTable = &schema.Table{
		Name:       "appointments",
		Columns:    AppointmentsColumns,
		PrimaryKey: []*schema.Column{AppointmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "appointment_doctor_id_day_slot_index",
				Unique:  true,
				Columns: []*schema.Column{AppointmentsColumns[4], AppointmentsColumns[8], AppointmentsColumns[9]},
				Annotation: &entsql.IndexAnnotation{
					Where: "status IN ('pending', 'confirmed')",
				},
			},
			{
				Name:    "appointment_doctor_id_day_status",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[4], AppointmentsColumns[8], AppointmentsColumns[15]},
			},
			{
				Name:    "appointment_clinic_id_day",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[3], AppointmentsColumns[8]},
			},
			{
				Name:    "appointment_patient_phone_day",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[6], AppointmentsColumns[8]},
			},
		},
	}
	// ClinicsColumns holds the columns for the "clinics" table.
	ClinicsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString},
		{Name: "slug", Type: field.TypeString},
		{Name: "timezone", Type: field.TypeString, Default: "Asia/Kolkata"},
		{Name: "classic_numbering", Type: field.TypeBool, Default: false},
		{Name: "rejoin_after", Type: field.TypeInt, Default: 2},
		{Name: "cut_off_minutes", Type: field.TypeInt, Default: 15},
		{Name: "no_show_minutes", Type: field.TypeInt, Default: 15},
		{Name: "contact_email", Type: field.TypeString, Nullable: true},
		{Name: "contact_phone", Type: field.TypeString, Nullable: true},
	}
	// ClinicsTable holds the schema information for the "clinics" table.
	ClinicsTable = &schema.Table{
		Name:       "clinics",
		Columns:    ClinicsColumns,
		PrimaryKey: []*schema.Column{ClinicsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "clinic_slug",
				Unique:  true,
				Columns: []*schema.Column{ClinicsColumns[4]},
			},
		},
	}
	// DayOverridesColumns holds the columns for the "day_overrides" table.
	DayOverridesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "doctor_id", Type: field.TypeUUID},
		{Name: "day", Type: field.TypeString},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"break", "leave", "extension"}},
		{Name: "break_start", Type: field.TypeTime, Nullable: true},
		{Name: "break_end", Type: field.TypeTime, Nullable: true},
		{Name: "session_index", Type: field.TypeInt, Nullable: true},
		{Name: "original_end", Type: field.TypeTime, Nullable: true},
		{Name: "new_end", Type: field.TypeTime, Nullable: true},
	}
	// DayOverridesTable holds the schema information for the "day_overrides" table.
	DayOverridesTable = &schema.Table{
		Name:       "day_overrides",
		Columns:    DayOverridesColumns,
		PrimaryKey: []*schema.Column{DayOverridesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "dayoverride_doctor_id_day",
				Unique:  false,
				Columns: []*schema.Column{DayOverridesColumns[3], DayOverridesColumns[4]},
			},
		},
	}
	// DoctorsColumns holds the columns for the "doctors" table.
	DoctorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "clinic_id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "specialty", Type: field.TypeString, Nullable: true},
		{Name: "token_prefix", Type: field.TypeString, Size: 3, Default: "A"},
		{Name: "consult_minutes", Type: field.TypeInt, Default: 15},
		{Name: "avg_consult_minutes", Type: field.TypeInt, Default: 15},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "in_consultation", Type: field.TypeBool, Default: false},
		{Name: "consultation_started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_count", Type: field.TypeInt, Default: 0},
		{Name: "completed_day", Type: field.TypeString, Nullable: true},
		{Name: "delay_minutes", Type: field.TypeInt, Default: 0},
	}
	// DoctorsTable holds the schema information for the "doctors" table.
	DoctorsTable = &schema.Table{
		Name:       "doctors",
		Columns:    DoctorsColumns,
		PrimaryKey: []*schema.Column{DoctorsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "doctor_clinic_id_active",
				Unique:  false,
				Columns: []*schema.Column{DoctorsColumns[3], DoctorsColumns[9]},
			},
		},
	}
	// ReservationsColumns holds the columns for the "reservations" table.
	ReservationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "doctor_id", Type: field.TypeUUID},
		{Name: "day", Type: field.TypeString},
		{Name: "slot_index", Type: field.TypeInt},
		{Name: "slot_time", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"held", "booked"}, Default: "held"},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "patient_name", Type: field.TypeString},
		{Name: "patient_phone", Type: field.TypeString},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"walkin", "advance"}, Default: "walkin"},
	}
	// ReservationsTable holds the schema information for the "reservations" table.
	ReservationsTable = &schema.Table{
		Name:       "reservations",
		Columns:    ReservationsColumns,
		PrimaryKey: []*schema.Column{ReservationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reservation_doctor_id_day_slot_index",
				Unique:  true,
				Columns: []*schema.Column{ReservationsColumns[3], ReservationsColumns[4], ReservationsColumns[5]},
				Annotation: &entsql.IndexAnnotation{
					Where: "status = 'held'",
				},
			},
			{
				Name:    "reservation_status_expires_at",
				Unique:  false,
				Columns: []*schema.Column{ReservationsColumns[7], ReservationsColumns[8]},
			},
		},
	}
	// ScheduleSessionsColumns holds the columns for the "schedule_sessions" table.
	ScheduleSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "doctor_id", Type: field.TypeUUID},
		{Name: "weekday", Type: field.TypeInt},
		{Name: "position", Type: field.TypeInt},
		{Name: "start_hour", Type: field.TypeInt},
		{Name: "start_minute", Type: field.TypeInt},
		{Name: "end_hour", Type: field.TypeInt},
		{Name: "end_minute", Type: field.TypeInt},
		{Name: "active", Type: field.TypeBool, Default: true},
	}
	// ScheduleSessionsTable holds the schema information for the "schedule_sessions" table.
	ScheduleSessionsTable = &schema.Table{
		Name:       "schedule_sessions",
		Columns:    ScheduleSessionsColumns,
		PrimaryKey: []*schema.Column{ScheduleSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "schedulesession_doctor_id_weekday_position",
				Unique:  true,
				Columns: []*schema.Column{ScheduleSessionsColumns[3], ScheduleSessionsColumns[4], ScheduleSessionsColumns[5]},
			},
		},
	}
	// TokenCountersColumns holds the columns for the "token_counters" table.
	TokenCountersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "clinic_id", Type: field.TypeUUID},
		{Name: "doctor_id", Type: field.TypeUUID},
		{Name: "day", Type: field.TypeString},
		{Name: "session_index", Type: field.TypeInt},
		{Name: "value", Type: field.TypeInt, Default: 0},
	}
	// TokenCountersTable holds the schema information for the "token_counters" table.
	TokenCountersTable = &schema.Table{
		Name:       "token_counters",
		Columns:    TokenCountersColumns,
		PrimaryKey: []*schema.Column{TokenCountersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tokencounter_doctor_id_day_session_index",
				Unique:  true,
				Columns: []*schema.Column{TokenCountersColumns[4], TokenCountersColumns[5], TokenCountersColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AppointmentsTable,
		ClinicsTable,
		DayOverridesTable,
		DoctorsTable,
		ReservationsTable,
		ScheduleSessionsTable,
		TokenCountersTable,
	}
)

func init() {
}
