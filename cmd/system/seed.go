package system

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nivaran/nivaran_backend/config"
	entclinic "github.com/nivaran/nivaran_backend/internal/repo/clinic"
	"github.com/nivaran/nivaran_backend/pkg/database"
)

// NewSeedCommand creates a demo clinic with one doctor and a weekday
// schedule, for local development against an empty database.
func NewSeedCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed a demo clinic, doctor, and weekly schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			client, err := database.NewEntClient(cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to create ent client: %w", err)
			}
			defer client.Close()

			ctx := context.Background()

			exists, err := client.Clinic.Query().
				Where(entclinic.Slug("demo")).
				Exist(ctx)
			if err != nil {
				return fmt.Errorf("failed to check existing seed: %w", err)
			}
			if exists {
				fmt.Println("Demo clinic already seeded, nothing to do.")
				return nil
			}

			clinic, err := client.Clinic.Create().
				SetName("Demo Family Clinic").
				SetSlug("demo").
				SetTimezone("Asia/Kolkata").
				Save(ctx)
			if err != nil {
				return fmt.Errorf("failed to create clinic: %w", err)
			}

			doctor, err := client.Doctor.Create().
				SetClinicID(clinic.ID).
				SetName("Dr. Mehra").
				SetSpecialty("General Medicine").
				SetTokenPrefix("A").
				SetConsultMinutes(15).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("failed to create doctor: %w", err)
			}

			// Morning and evening sessions, Monday through Saturday.
			for weekday := 1; weekday <= 6; weekday++ {
				_, err := client.ScheduleSession.Create().
					SetDoctorID(doctor.ID).
					SetWeekday(weekday).
					SetPosition(0).
					SetStartHour(9).
					SetStartMinute(0).
					SetEndHour(12).
					SetEndMinute(0).
					Save(ctx)
				if err != nil {
					return fmt.Errorf("failed to create morning session: %w", err)
				}
				_, err = client.ScheduleSession.Create().
					SetDoctorID(doctor.ID).
					SetWeekday(weekday).
					SetPosition(1).
					SetStartHour(17).
					SetStartMinute(0).
					SetEndHour(20).
					SetEndMinute(0).
					Save(ctx)
				if err != nil {
					return fmt.Errorf("failed to create evening session: %w", err)
				}
			}

			fmt.Printf("Seeded clinic %s with doctor %s.\n", clinic.ID, doctor.ID)
			return nil
		},
	}

	return cmd
}
