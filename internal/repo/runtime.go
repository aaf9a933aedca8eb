// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/google/uuid"
	"github.com/nivaran/nivaran_backend/internal/repo/appointment"
	"github.com/nivaran/nivaran_backend/internal/repo/clinic"
	"github.com/nivaran/nivaran_backend/internal/repo/dayoverride"
	"github.com/nivaran/nivaran_backend/internal/repo/doctor"
	"github.com/nivaran/nivaran_backend/internal/repo/reservation"
	"github.com/nivaran/nivaran_backend/internal/repo/schedulesession"
	"github.com/nivaran/nivaran_backend/internal/repo/tokencounter"
	"github.com/nivaran/nivaran_backend/internal/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	appointmentMixin := schema.Appointment{}.Mixin()
	appointmentMixinFields0 := appointmentMixin[0].Fields()
	_ = appointmentMixinFields0
	appointmentMixinFields1 := appointmentMixin[1].Fields()
	_ = appointmentMixinFields1
	appointmentFields := schema.Appointment{}.Fields()
	_ = appointmentFields
	// appointmentDescCreatedAt is the schema descriptor for created_at field.
	appointmentDescCreatedAt := appointmentMixinFields1[0].Descriptor()
	// appointment.DefaultCreatedAt holds the default value on creation for the created_at field.
	appointment.DefaultCreatedAt = appointmentDescCreatedAt.Default.(func() time.Time)
	// appointmentDescUpdatedAt is the schema descriptor for updated_at field.
	appointmentDescUpdatedAt := appointmentMixinFields1[1].Descriptor()
	// appointment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	appointment.DefaultUpdatedAt = appointmentDescUpdatedAt.Default.(func() time.Time)
	// appointment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	appointment.UpdateDefaultUpdatedAt = appointmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// appointmentDescPatientName is the schema descriptor for patient_name field.
	appointmentDescPatientName := appointmentFields[2].Descriptor()
	// appointment.PatientNameValidator is a validator for the "patient_name" field. It is called by the builders before save.
	appointment.PatientNameValidator = appointmentDescPatientName.Validators[0].(func(string) error)
	// appointmentDescPatientPhone is the schema descriptor for patient_phone field.
	appointmentDescPatientPhone := appointmentFields[3].Descriptor()
	// appointment.PatientPhoneValidator is a validator for the "patient_phone" field. It is called by the builders before save.
	appointment.PatientPhoneValidator = appointmentDescPatientPhone.Validators[0].(func(string) error)
	// appointmentDescDay is the schema descriptor for day field.
	appointmentDescDay := appointmentFields[5].Descriptor()
	// appointment.DayValidator is a validator for the "day" field. It is called by the builders before save.
	appointment.DayValidator = appointmentDescDay.Validators[0].(func(string) error)
	// appointmentDescSlotIndex is the schema descriptor for slot_index field.
	appointmentDescSlotIndex := appointmentFields[6].Descriptor()
	// appointment.SlotIndexValidator is a validator for the "slot_index" field. It is called by the builders before save.
	appointment.SlotIndexValidator = appointmentDescSlotIndex.Validators[0].(func(int) error)
	// appointmentDescSessionIndex is the schema descriptor for session_index field.
	appointmentDescSessionIndex := appointmentFields[7].Descriptor()
	// appointment.SessionIndexValidator is a validator for the "session_index" field. It is called by the builders before save.
	appointment.SessionIndexValidator = appointmentDescSessionIndex.Validators[0].(func(int) error)
	// appointmentDescTokenNumber is the schema descriptor for token_number field.
	appointmentDescTokenNumber := appointmentFields[10].Descriptor()
	// appointment.TokenNumberValidator is a validator for the "token_number" field. It is called by the builders before save.
	appointment.TokenNumberValidator = appointmentDescTokenNumber.Validators[0].(func(string) error)
	// appointmentDescNumericToken is the schema descriptor for numeric_token field.
	appointmentDescNumericToken := appointmentFields[11].Descriptor()
	// appointment.NumericTokenValidator is a validator for the "numeric_token" field. It is called by the builders before save.
	appointment.NumericTokenValidator = appointmentDescNumericToken.Validators[0].(func(int) error)
	// appointmentDescDelayMinutes is the schema descriptor for delay_minutes field.
	appointmentDescDelayMinutes := appointmentFields[15].Descriptor()
	// appointment.DefaultDelayMinutes holds the default value on creation for the delay_minutes field.
	appointment.DefaultDelayMinutes = appointmentDescDelayMinutes.Default.(int)
	// appointmentDescForceBooked is the schema descriptor for force_booked field.
	appointmentDescForceBooked := appointmentFields[16].Descriptor()
	// appointment.DefaultForceBooked holds the default value on creation for the force_booked field.
	appointment.DefaultForceBooked = appointmentDescForceBooked.Default.(bool)
	// appointmentDescRejoined is the schema descriptor for rejoined field.
	appointmentDescRejoined := appointmentFields[17].Descriptor()
	// appointment.DefaultRejoined holds the default value on creation for the rejoined field.
	appointment.DefaultRejoined = appointmentDescRejoined.Default.(bool)
	// appointmentDescID is the schema descriptor for id field.
	appointmentDescID := appointmentMixinFields0[0].Descriptor()
	// appointment.DefaultID holds the default value on creation for the id field.
	appointment.DefaultID = appointmentDescID.Default.(func() uuid.UUID)
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
	// clinicDescName is the schema descriptor for name field.
	clinicDescName := clinicFields[0].Descriptor()
	// clinic.NameValidator is a validator for the "name" field. It is called by the builders before save.
	clinic.NameValidator = clinicDescName.Validators[0].(func(string) error)
	// clinicDescSlug is the schema descriptor for slug field.
	clinicDescSlug := clinicFields[1].Descriptor()
	// clinic.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	clinic.SlugValidator = clinicDescSlug.Validators[0].(func(string) error)
	// clinicDescTimezone is the schema descriptor for timezone field.
	clinicDescTimezone := clinicFields[2].Descriptor()
	// clinic.DefaultTimezone holds the default value on creation for the timezone field.
	clinic.DefaultTimezone = clinicDescTimezone.Default.(string)
	// clinicDescClassicNumbering is the schema descriptor for classic_numbering field.
	clinicDescClassicNumbering := clinicFields[3].Descriptor()
	// clinic.DefaultClassicNumbering holds the default value on creation for the classic_numbering field.
	clinic.DefaultClassicNumbering = clinicDescClassicNumbering.Default.(bool)
	// clinicDescRejoinAfter is the schema descriptor for rejoin_after field.
	clinicDescRejoinAfter := clinicFields[4].Descriptor()
	// clinic.DefaultRejoinAfter holds the default value on creation for the rejoin_after field.
	clinic.DefaultRejoinAfter = clinicDescRejoinAfter.Default.(int)
	// clinicDescCutOffMinutes is the schema descriptor for cut_off_minutes field.
	clinicDescCutOffMinutes := clinicFields[5].Descriptor()
	// clinic.DefaultCutOffMinutes holds the default value on creation for the cut_off_minutes field.
	clinic.DefaultCutOffMinutes = clinicDescCutOffMinutes.Default.(int)
	// clinicDescNoShowMinutes is the schema descriptor for no_show_minutes field.
	clinicDescNoShowMinutes := clinicFields[6].Descriptor()
	// clinic.DefaultNoShowMinutes holds the default value on creation for the no_show_minutes field.
	clinic.DefaultNoShowMinutes = clinicDescNoShowMinutes.Default.(int)
	// clinicDescID is the schema descriptor for id field.
	clinicDescID := clinicMixinFields0[0].Descriptor()
	// clinic.DefaultID holds the default value on creation for the id field.
	clinic.DefaultID = clinicDescID.Default.(func() uuid.UUID)
	dayoverrideMixin := schema.DayOverride{}.Mixin()
	dayoverrideMixinFields0 := dayoverrideMixin[0].Fields()
	_ = dayoverrideMixinFields0
	dayoverrideMixinFields1 := dayoverrideMixin[1].Fields()
	_ = dayoverrideMixinFields1
	dayoverrideFields := schema.DayOverride{}.Fields()
	_ = dayoverrideFields
	// dayoverrideDescCreatedAt is the schema descriptor for created_at field.
	dayoverrideDescCreatedAt := dayoverrideMixinFields1[0].Descriptor()
	// dayoverride.DefaultCreatedAt holds the default value on creation for the created_at field.
	dayoverride.DefaultCreatedAt = dayoverrideDescCreatedAt.Default.(func() time.Time)
	// dayoverrideDescUpdatedAt is the schema descriptor for updated_at field.
	dayoverrideDescUpdatedAt := dayoverrideMixinFields1[1].Descriptor()
	// dayoverride.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	dayoverride.DefaultUpdatedAt = dayoverrideDescUpdatedAt.Default.(func() time.Time)
	// dayoverride.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	dayoverride.UpdateDefaultUpdatedAt = dayoverrideDescUpdatedAt.UpdateDefault.(func() time.Time)
	// dayoverrideDescDay is the schema descriptor for day field.
	dayoverrideDescDay := dayoverrideFields[1].Descriptor()
	// dayoverride.DayValidator is a validator for the "day" field. It is called by the builders before save.
	dayoverride.DayValidator = dayoverrideDescDay.Validators[0].(func(string) error)
	// dayoverrideDescID is the schema descriptor for id field.
	dayoverrideDescID := dayoverrideMixinFields0[0].Descriptor()
	// dayoverride.DefaultID holds the default value on creation for the id field.
	dayoverride.DefaultID = dayoverrideDescID.Default.(func() uuid.UUID)
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
	// doctorDescName is the schema descriptor for name field.
	doctorDescName := doctorFields[1].Descriptor()
	// doctor.NameValidator is a validator for the "name" field. It is called by the builders before save.
	doctor.NameValidator = doctorDescName.Validators[0].(func(string) error)
	// doctorDescTokenPrefix is the schema descriptor for token_prefix field.
	doctorDescTokenPrefix := doctorFields[3].Descriptor()
	// doctor.DefaultTokenPrefix holds the default value on creation for the token_prefix field.
	doctor.DefaultTokenPrefix = doctorDescTokenPrefix.Default.(string)
	// doctor.TokenPrefixValidator is a validator for the "token_prefix" field. It is called by the builders before save.
	doctor.TokenPrefixValidator = doctorDescTokenPrefix.Validators[0].(func(string) error)
	// doctorDescConsultMinutes is the schema descriptor for consult_minutes field.
	doctorDescConsultMinutes := doctorFields[4].Descriptor()
	// doctor.DefaultConsultMinutes holds the default value on creation for the consult_minutes field.
	doctor.DefaultConsultMinutes = doctorDescConsultMinutes.Default.(int)
	// doctorDescAvgConsultMinutes is the schema descriptor for avg_consult_minutes field.
	doctorDescAvgConsultMinutes := doctorFields[5].Descriptor()
	// doctor.DefaultAvgConsultMinutes holds the default value on creation for the avg_consult_minutes field.
	doctor.DefaultAvgConsultMinutes = doctorDescAvgConsultMinutes.Default.(int)
	// doctorDescActive is the schema descriptor for active field.
	doctorDescActive := doctorFields[6].Descriptor()
	// doctor.DefaultActive holds the default value on creation for the active field.
	doctor.DefaultActive = doctorDescActive.Default.(bool)
	// doctorDescInConsultation is the schema descriptor for in_consultation field.
	doctorDescInConsultation := doctorFields[7].Descriptor()
	// doctor.DefaultInConsultation holds the default value on creation for the in_consultation field.
	doctor.DefaultInConsultation = doctorDescInConsultation.Default.(bool)
	// doctorDescCompletedCount is the schema descriptor for completed_count field.
	doctorDescCompletedCount := doctorFields[9].Descriptor()
	// doctor.DefaultCompletedCount holds the default value on creation for the completed_count field.
	doctor.DefaultCompletedCount = doctorDescCompletedCount.Default.(int)
	// doctorDescDelayMinutes is the schema descriptor for delay_minutes field.
	doctorDescDelayMinutes := doctorFields[11].Descriptor()
	// doctor.DefaultDelayMinutes holds the default value on creation for the delay_minutes field.
	doctor.DefaultDelayMinutes = doctorDescDelayMinutes.Default.(int)
	// doctorDescID is the schema descriptor for id field.
	doctorDescID := doctorMixinFields0[0].Descriptor()
	// doctor.DefaultID holds the default value on creation for the id field.
	doctor.DefaultID = doctorDescID.Default.(func() uuid.UUID)
	reservationMixin := schema.Reservation{}.Mixin()
	reservationMixinFields0 := reservationMixin[0].Fields()
	_ = reservationMixinFields0
	reservationMixinFields1 := reservationMixin[1].Fields()
	_ = reservationMixinFields1
	reservationFields := schema.Reservation{}.Fields()
	_ = reservationFields
	// reservationDescCreatedAt is the schema descriptor for created_at field.
	reservationDescCreatedAt := reservationMixinFields1[0].Descriptor()
	// reservation.DefaultCreatedAt holds the default value on creation for the created_at field.
	reservation.DefaultCreatedAt = reservationDescCreatedAt.Default.(func() time.Time)
	// reservationDescUpdatedAt is the schema descriptor for updated_at field.
	reservationDescUpdatedAt := reservationMixinFields1[1].Descriptor()
	// reservation.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	reservation.DefaultUpdatedAt = reservationDescUpdatedAt.Default.(func() time.Time)
	// reservation.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	reservation.UpdateDefaultUpdatedAt = reservationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// reservationDescDay is the schema descriptor for day field.
	reservationDescDay := reservationFields[1].Descriptor()
	// reservation.DayValidator is a validator for the "day" field. It is called by the builders before save.
	reservation.DayValidator = reservationDescDay.Validators[0].(func(string) error)
	// reservationDescSlotIndex is the schema descriptor for slot_index field.
	reservationDescSlotIndex := reservationFields[2].Descriptor()
	// reservation.SlotIndexValidator is a validator for the "slot_index" field. It is called by the builders before save.
	reservation.SlotIndexValidator = reservationDescSlotIndex.Validators[0].(func(int) error)
	// reservationDescPatientName is the schema descriptor for patient_name field.
	reservationDescPatientName := reservationFields[6].Descriptor()
	// reservation.PatientNameValidator is a validator for the "patient_name" field. It is called by the builders before save.
	reservation.PatientNameValidator = reservationDescPatientName.Validators[0].(func(string) error)
	// reservationDescPatientPhone is the schema descriptor for patient_phone field.
	reservationDescPatientPhone := reservationFields[7].Descriptor()
	// reservation.PatientPhoneValidator is a validator for the "patient_phone" field. It is called by the builders before save.
	reservation.PatientPhoneValidator = reservationDescPatientPhone.Validators[0].(func(string) error)
	// reservationDescID is the schema descriptor for id field.
	reservationDescID := reservationMixinFields0[0].Descriptor()
	// reservation.DefaultID holds the default value on creation for the id field.
	reservation.DefaultID = reservationDescID.Default.(func() uuid.UUID)
	schedulesessionMixin := schema.ScheduleSession{}.Mixin()
	schedulesessionMixinFields0 := schedulesessionMixin[0].Fields()
	_ = schedulesessionMixinFields0
	schedulesessionMixinFields1 := schedulesessionMixin[1].Fields()
	_ = schedulesessionMixinFields1
	schedulesessionFields := schema.ScheduleSession{}.Fields()
	_ = schedulesessionFields
	// schedulesessionDescCreatedAt is the schema descriptor for created_at field.
	schedulesessionDescCreatedAt := schedulesessionMixinFields1[0].Descriptor()
	// schedulesession.DefaultCreatedAt holds the default value on creation for the created_at field.
	schedulesession.DefaultCreatedAt = schedulesessionDescCreatedAt.Default.(func() time.Time)
	// schedulesessionDescUpdatedAt is the schema descriptor for updated_at field.
	schedulesessionDescUpdatedAt := schedulesessionMixinFields1[1].Descriptor()
	// schedulesession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	schedulesession.DefaultUpdatedAt = schedulesessionDescUpdatedAt.Default.(func() time.Time)
	// schedulesession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	schedulesession.UpdateDefaultUpdatedAt = schedulesessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// schedulesessionDescWeekday is the schema descriptor for weekday field.
	schedulesessionDescWeekday := schedulesessionFields[1].Descriptor()
	// schedulesession.WeekdayValidator is a validator for the "weekday" field. It is called by the builders before save.
	schedulesession.WeekdayValidator = func() func(int) error {
		validators := schedulesessionDescWeekday.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(weekday int) error {
			for _, fn := range fns {
				if err := fn(weekday); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// schedulesessionDescPosition is the schema descriptor for position field.
	schedulesessionDescPosition := schedulesessionFields[2].Descriptor()
	// schedulesession.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	schedulesession.PositionValidator = schedulesessionDescPosition.Validators[0].(func(int) error)
	// schedulesessionDescStartHour is the schema descriptor for start_hour field.
	schedulesessionDescStartHour := schedulesessionFields[3].Descriptor()
	// schedulesession.StartHourValidator is a validator for the "start_hour" field. It is called by the builders before save.
	schedulesession.StartHourValidator = func() func(int) error {
		validators := schedulesessionDescStartHour.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(start_hour int) error {
			for _, fn := range fns {
				if err := fn(start_hour); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// schedulesessionDescStartMinute is the schema descriptor for start_minute field.
	schedulesessionDescStartMinute := schedulesessionFields[4].Descriptor()
	// schedulesession.StartMinuteValidator is a validator for the "start_minute" field. It is called by the builders before save.
	schedulesession.StartMinuteValidator = func() func(int) error {
		validators := schedulesessionDescStartMinute.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(start_minute int) error {
			for _, fn := range fns {
				if err := fn(start_minute); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// schedulesessionDescEndHour is the schema descriptor for end_hour field.
	schedulesessionDescEndHour := schedulesessionFields[5].Descriptor()
	// schedulesession.EndHourValidator is a validator for the "end_hour" field. It is called by the builders before save.
	schedulesession.EndHourValidator = func() func(int) error {
		validators := schedulesessionDescEndHour.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(end_hour int) error {
			for _, fn := range fns {
				if err := fn(end_hour); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// schedulesessionDescEndMinute is the schema descriptor for end_minute field.
	schedulesessionDescEndMinute := schedulesessionFields[6].Descriptor()
	// schedulesession.EndMinuteValidator is a validator for the "end_minute" field. It is called by the builders before save.
	schedulesession.EndMinuteValidator = func() func(int) error {
		validators := schedulesessionDescEndMinute.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(end_minute int) error {
			for _, fn := range fns {
				if err := fn(end_minute); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// schedulesessionDescActive is the schema descriptor for active field.
	schedulesessionDescActive := schedulesessionFields[7].Descriptor()
	// schedulesession.DefaultActive holds the default value on creation for the active field.
	schedulesession.DefaultActive = schedulesessionDescActive.Default.(bool)
	// schedulesessionDescID is the schema descriptor for id field.
	schedulesessionDescID := schedulesessionMixinFields0[0].Descriptor()
	// schedulesession.DefaultID holds the default value on creation for the id field.
	schedulesession.DefaultID = schedulesessionDescID.Default.(func() uuid.UUID)
	tokencounterMixin := schema.TokenCounter{}.Mixin()
	tokencounterMixinFields0 := tokencounterMixin[0].Fields()
	_ = tokencounterMixinFields0
	tokencounterMixinFields1 := tokencounterMixin[1].Fields()
	_ = tokencounterMixinFields1
	tokencounterFields := schema.TokenCounter{}.Fields()
	_ = tokencounterFields
	// tokencounterDescCreatedAt is the schema descriptor for created_at field.
	tokencounterDescCreatedAt := tokencounterMixinFields1[0].Descriptor()
	// tokencounter.DefaultCreatedAt holds the default value on creation for the created_at field.
	tokencounter.DefaultCreatedAt = tokencounterDescCreatedAt.Default.(func() time.Time)
	// tokencounterDescUpdatedAt is the schema descriptor for updated_at field.
	tokencounterDescUpdatedAt := tokencounterMixinFields1[1].Descriptor()
	// tokencounter.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	tokencounter.DefaultUpdatedAt = tokencounterDescUpdatedAt.Default.(func() time.Time)
	// tokencounter.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	tokencounter.UpdateDefaultUpdatedAt = tokencounterDescUpdatedAt.UpdateDefault.(func() time.Time)
	// tokencounterDescDay is the schema descriptor for day field.
	tokencounterDescDay := tokencounterFields[2].Descriptor()
	// tokencounter.DayValidator is a validator for the "day" field. It is called by the builders before save.
	tokencounter.DayValidator = tokencounterDescDay.Validators[0].(func(string) error)
	// tokencounterDescSessionIndex is the schema descriptor for session_index field.
	tokencounterDescSessionIndex := tokencounterFields[3].Descriptor()
	// tokencounter.SessionIndexValidator is a validator for the "session_index" field. It is called by the builders before save.
	tokencounter.SessionIndexValidator = tokencounterDescSessionIndex.Validators[0].(func(int) error)
	// tokencounterDescValue is the schema descriptor for value field.
	tokencounterDescValue := tokencounterFields[4].Descriptor()
	// tokencounter.DefaultValue holds the default value on creation for the value field.
	tokencounter.DefaultValue = tokencounterDescValue.Default.(int)
	// tokencounter.ValueValidator is a validator for the "value" field. It is called by the builders before save.
	tokencounter.ValueValidator = tokencounterDescValue.Validators[0].(func(int) error)
	// tokencounterDescID is the schema descriptor for id field.
	tokencounterDescID := tokencounterMixinFields0[0].Descriptor()
	// tokencounter.DefaultID holds the default value on creation for the id field.
	tokencounter.DefaultID = tokencounterDescID.Default.(func() uuid.UUID)
}
