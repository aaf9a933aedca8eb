// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nivaran/nivaran_backend/internal/repo/dayoverride"
)

// DayOverride is the model entity for the DayOverride schema.
type DayOverride struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → doctors.id
	DoctorID uuid.UUID `json:"doctor_id,omitempty"`
	// Clinic-local day, 2006-01-02
	Day string `json:"day,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind dayoverride.Kind `json:"kind,omitempty"`
	// BreakStart holds the value of the "break_start" field.
	BreakStart *time.Time `json:"break_start,omitempty"`
	// BreakEnd holds the value of the "break_end" field.
	BreakEnd *time.Time `json:"break_end,omitempty"`
	// Which session of the day is extended
	SessionIndex *int `json:"session_index,omitempty"`
	// End instant the extension was written against; stale value means the template changed and the override is ignored
	OriginalEnd *time.Time `json:"original_end,omitempty"`
	// NewEnd holds the value of the "new_end" field.
	NewEnd       *time.Time `json:"new_end,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DayOverride) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case dayoverride.FieldSessionIndex:
			values[i] = new(sql.NullInt64)
		case dayoverride.FieldDay, dayoverride.FieldKind:
			values[i] = new(sql.NullString)
		case dayoverride.FieldCreatedAt, dayoverride.FieldUpdatedAt, dayoverride.FieldBreakStart, dayoverride.FieldBreakEnd, dayoverride.FieldOriginalEnd, dayoverride.FieldNewEnd:
			values[i] = new(sql.NullTime)
		case dayoverride.FieldID, dayoverride.FieldDoctorID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DayOverride fields.
func (_m *DayOverride) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case dayoverride.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case dayoverride.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case dayoverride.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case dayoverride.FieldDoctorID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field doctor_id", values[i])
			} else if value != nil {
				_m.DoctorID = *value
			}
		case dayoverride.FieldDay:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field day", values[i])
			} else if value.Valid {
				_m.Day = value.String
			}
		case dayoverride.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = dayoverride.Kind(value.String)
			}
		case dayoverride.FieldBreakStart:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field break_start", values[i])
			} else if value.Valid {
				_m.BreakStart = new(time.Time)
				*_m.BreakStart = value.Time
			}
		case dayoverride.FieldBreakEnd:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field break_end", values[i])
			} else if value.Valid {
				_m.BreakEnd = new(time.Time)
				*_m.BreakEnd = value.Time
			}
		case dayoverride.FieldSessionIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field session_index", values[i])
			} else if value.Valid {
				_m.SessionIndex = new(int)
				*_m.SessionIndex = int(value.Int64)
			}
		case dayoverride.FieldOriginalEnd:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field original_end", values[i])
			} else if value.Valid {
				_m.OriginalEnd = new(time.Time)
				*_m.OriginalEnd = value.Time
			}
		case dayoverride.FieldNewEnd:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field new_end", values[i])
			} else if value.Valid {
				_m.NewEnd = new(time.Time)
				*_m.NewEnd = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DayOverride.
// This includes values selected through modifiers, order, etc.
func (_m *DayOverride) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DayOverride.
// Note that you need to call DayOverride.Unwrap() before calling this method if this DayOverride
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DayOverride) Update() *DayOverrideUpdateOne {
	return NewDayOverrideClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DayOverride entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DayOverride) Unwrap() *DayOverride {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: DayOverride is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DayOverride) String() string {
	var builder strings.Builder
	builder.WriteString("DayOverride(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("doctor_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DoctorID))
	builder.WriteString(", ")
	builder.WriteString("day=")
	builder.WriteString(_m.Day)
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.Kind))
	builder.WriteString(", ")
	if v := _m.BreakStart; v != nil {
		builder.WriteString("break_start=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.BreakEnd; v != nil {
		builder.WriteString("break_end=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.SessionIndex; v != nil {
		builder.WriteString("session_index=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.OriginalEnd; v != nil {
		builder.WriteString("original_end=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.NewEnd; v != nil {
		builder.WriteString("new_end=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// DayOverrides is a parsable slice of DayOverride.
type DayOverrides []*DayOverride
