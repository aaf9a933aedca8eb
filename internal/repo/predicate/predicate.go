// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Appointment is the predicate function for appointment builders.
type Appointment func(*sql.Selector)

// Clinic is the predicate function for clinic builders.
type Clinic func(*sql.Selector)

// DayOverride is the predicate function for dayoverride builders.
type DayOverride func(*sql.Selector)

// Doctor is the predicate function for doctor builders.
type Doctor func(*sql.Selector)

// Reservation is the predicate function for reservation builders.
type Reservation func(*sql.Selector)

// ScheduleSession is the predicate function for schedulesession builders.
type ScheduleSession func(*sql.Selector)

// TokenCounter is the predicate function for tokencounter builders.
type TokenCounter func(*sql.Selector)
