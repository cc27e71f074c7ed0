package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/medichart/medichart/internal/config"
	"github.com/medichart/medichart/internal/domain/chart"
	"github.com/medichart/medichart/internal/domain/clinical"
	"github.com/medichart/medichart/internal/domain/diagnostics"
	"github.com/medichart/medichart/internal/domain/documents"
	"github.com/medichart/medichart/internal/domain/familyhistory"
	"github.com/medichart/medichart/internal/domain/immunization"
	"github.com/medichart/medichart/internal/domain/patient"
	"github.com/medichart/medichart/internal/forms"
	"github.com/medichart/medichart/internal/platform/db"
	"github.com/medichart/medichart/internal/platform/ocr"
	"github.com/medichart/medichart/internal/views"
)

// app bundles everything a subcommand needs once the store connection is up.
type app struct {
	cfg    *config.Config
	log    zerolog.Logger
	pool   *pgxpool.Pool
	loader *chart.Loader

	patients      *patient.Service
	clinical      *clinical.Service
	diagnostics   *diagnostics.Service
	immunizations *immunization.Service
	familyHistory *familyhistory.Service
	documents     *documents.Service
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if cfg.IsDev() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		return nil, err
	}

	patientRepo := patient.NewRepoPG(pool)
	recordRepo := clinical.NewMedicalRecordRepoPG(pool)
	prescriptionRepo := clinical.NewPrescriptionRepoPG(pool)
	conditionRepo := clinical.NewChronicConditionRepoPG(pool)
	labRepo := diagnostics.NewLabResultRepoPG(pool)
	vitalsRepo := diagnostics.NewVitalSignsRepoPG(pool)
	immunizationRepo := immunization.NewRepoPG(pool)
	familyRepo := familyhistory.NewRepoPG(pool)
	documentRepo := documents.NewRepoPG(pool)

	return &app{
		cfg:  cfg,
		log:  logger,
		pool: pool,
		loader: chart.NewLoader(chart.Repositories{
			Patients:          patientRepo,
			MedicalRecords:    recordRepo,
			Prescriptions:     prescriptionRepo,
			ChronicConditions: conditionRepo,
			LabResults:        labRepo,
			VitalSigns:        vitalsRepo,
			Immunizations:     immunizationRepo,
			FamilyHistory:     familyRepo,
			Documents:         documentRepo,
		}, logger),
		patients:      patient.NewService(patientRepo),
		clinical:      clinical.NewService(recordRepo, prescriptionRepo, conditionRepo),
		diagnostics:   diagnostics.NewService(labRepo, vitalsRepo),
		immunizations: immunization.NewService(immunizationRepo),
		familyHistory: familyhistory.NewService(familyRepo),
		documents:     documents.NewService(documentRepo),
	}, nil
}

func (a *app) close() {
	if a.pool != nil {
		a.pool.Close()
	}
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "medichart",
		Short: "Patient records client for a hosted record store",
	}

	rootCmd.AddCommand(patientsCmd())
	rootCmd.AddCommand(chartCmd())
	rootCmd.AddCommand(addCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func withApp(run func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.close()

		return run(ctx, a, cmd, args)
	}
}

func patientsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patients",
		Short: "Work with the patient roster",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List patients, newest first",
		RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			search, _ := cmd.Flags().GetString("search")

			list := views.NewPatientList(a.patients)
			if err := list.Load(ctx); err != nil {
				return err
			}
			list.SetSearch(search)

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tDOB\tGENDER\tPHONE")
			for _, p := range list.Visible() {
				phone := ""
				if p.Phone != nil {
					phone = *p.Phone
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					p.ID, p.FullName(), p.DateOfBirth.Format("2006-01-02"), p.Gender, phone)
			}
			return w.Flush()
		}),
	}
	listCmd.Flags().String("search", "", "filter by name, email or phone")

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Register a new patient",
		RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			f := forms.NewPatientForm(a.patients, a.log)
			f.FirstName, _ = cmd.Flags().GetString("first-name")
			f.LastName, _ = cmd.Flags().GetString("last-name")
			f.DateOfBirth, _ = cmd.Flags().GetString("dob")
			f.Gender, _ = cmd.Flags().GetString("gender")
			f.Phone, _ = cmd.Flags().GetString("phone")
			f.Email, _ = cmd.Flags().GetString("email")
			f.Address, _ = cmd.Flags().GetString("address")
			f.BloodType, _ = cmd.Flags().GetString("blood-type")
			f.Allergies, _ = cmd.Flags().GetString("allergies")

			if err := f.Submit(ctx); err != nil {
				return err
			}
			fmt.Printf("created patient %s\n", f.Result().ID)
			return nil
		}),
	}
	addCmd.Flags().String("first-name", "", "first name (required)")
	addCmd.Flags().String("last-name", "", "last name (required)")
	addCmd.Flags().String("dob", "", "date of birth, YYYY-MM-DD (required)")
	addCmd.Flags().String("gender", "", "gender (required)")
	addCmd.Flags().String("phone", "", "phone number")
	addCmd.Flags().String("email", "", "email address")
	addCmd.Flags().String("address", "", "street address")
	addCmd.Flags().String("blood-type", "", "blood type")
	addCmd.Flags().String("allergies", "", "known allergies")

	editCmd := &cobra.Command{
		Use:   "edit <patient-id>",
		Short: "Update a patient's demographics",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid patient id: %w", err)
			}
			p, err := a.patients.GetPatient(ctx, id)
			if err != nil {
				return err
			}

			f := forms.EditPatientForm(a.patients, a.log, p)
			setIfChanged := func(flag string, dst *string) {
				if cmd.Flags().Changed(flag) {
					*dst, _ = cmd.Flags().GetString(flag)
				}
			}
			setIfChanged("first-name", &f.FirstName)
			setIfChanged("last-name", &f.LastName)
			setIfChanged("dob", &f.DateOfBirth)
			setIfChanged("gender", &f.Gender)
			setIfChanged("phone", &f.Phone)
			setIfChanged("email", &f.Email)
			setIfChanged("address", &f.Address)
			setIfChanged("blood-type", &f.BloodType)
			setIfChanged("allergies", &f.Allergies)

			if err := f.Submit(ctx); err != nil {
				return err
			}
			fmt.Printf("updated patient %s\n", f.Result().ID)
			return nil
		}),
	}
	editCmd.Flags().String("first-name", "", "first name")
	editCmd.Flags().String("last-name", "", "last name")
	editCmd.Flags().String("dob", "", "date of birth, YYYY-MM-DD")
	editCmd.Flags().String("gender", "", "gender")
	editCmd.Flags().String("phone", "", "phone number")
	editCmd.Flags().String("email", "", "email address")
	editCmd.Flags().String("address", "", "street address")
	editCmd.Flags().String("blood-type", "", "blood type")
	editCmd.Flags().String("allergies", "", "known allergies")

	cmd.AddCommand(listCmd)
	cmd.AddCommand(addCmd)
	cmd.AddCommand(editCmd)
	return cmd
}

func chartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "View a patient's full chart",
	}

	showCmd := &cobra.Command{
		Use:   "show <patient-id>",
		Short: "Show the aggregate chart for one patient",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid patient id: %w", err)
			}

			detail := views.NewPatientDetail(a.loader, id)
			if err := detail.Load(ctx); err != nil {
				return err
			}

			fmt.Println(detail.Header())
			c := detail.Chart()
			if bmi, ok := c.LatestBMI(); ok {
				fmt.Printf("latest bmi: %.2f\n", bmi)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			for _, tab := range views.Tabs {
				if tab == views.TabOverview {
					continue
				}
				fmt.Fprintf(w, "%s\t%d\n", strings.ReplaceAll(string(tab), "_", " "), detail.Count(tab))
			}
			return w.Flush()
		}),
	}

	cmd.AddCommand(showCmd)
	return cmd
}

func addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a clinical record to a patient's chart",
	}

	cmd.AddCommand(addRecordCmd())
	cmd.AddCommand(addPrescriptionCmd())
	cmd.AddCommand(addConditionCmd())
	cmd.AddCommand(addLabResultCmd())
	cmd.AddCommand(addVitalsCmd())
	cmd.AddCommand(addImmunizationCmd())
	cmd.AddCommand(addFamilyHistoryCmd())
	cmd.AddCommand(addDocumentCmd())
	return cmd
}

func patientIDArg(args []string) (uuid.UUID, error) {
	id, err := uuid.Parse(args[0])
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid patient id: %w", err)
	}
	return id, nil
}

func addRecordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record <patient-id>",
		Short: "Record a clinical visit",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			id, err := patientIDArg(args)
			if err != nil {
				return err
			}

			f := forms.NewMedicalRecordForm(a.clinical, a.log, id)
			f.DoctorName, _ = cmd.Flags().GetString("doctor")
			if cmd.Flags().Changed("date") {
				f.VisitDate, _ = cmd.Flags().GetString("date")
			}
			f.Diagnosis, _ = cmd.Flags().GetString("diagnosis")
			f.Symptoms, _ = cmd.Flags().GetString("symptoms")
			f.Treatment, _ = cmd.Flags().GetString("treatment")
			f.Notes, _ = cmd.Flags().GetString("notes")

			if err := f.Submit(ctx); err != nil {
				return err
			}
			fmt.Printf("created medical record %s\n", f.Result().ID)
			return nil
		}),
	}
	cmd.Flags().String("doctor", "", "attending doctor (required)")
	cmd.Flags().String("date", "", "visit date, YYYY-MM-DD (defaults to today)")
	cmd.Flags().String("diagnosis", "", "diagnosis")
	cmd.Flags().String("symptoms", "", "symptoms")
	cmd.Flags().String("treatment", "", "treatment")
	cmd.Flags().String("notes", "", "notes")
	return cmd
}

func addPrescriptionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prescription <patient-id>",
		Short: "Record a prescribed medication",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			id, err := patientIDArg(args)
			if err != nil {
				return err
			}

			f := forms.NewPrescriptionForm(a.clinical, a.log, id)
			f.MedicationName, _ = cmd.Flags().GetString("medication")
			f.Dosage, _ = cmd.Flags().GetString("dosage")
			f.Frequency, _ = cmd.Flags().GetString("frequency")
			f.Duration, _ = cmd.Flags().GetString("duration")
			if cmd.Flags().Changed("date") {
				f.PrescribedDate, _ = cmd.Flags().GetString("date")
			}

			if err := f.Submit(ctx); err != nil {
				return err
			}
			fmt.Printf("created prescription %s\n", f.Result().ID)
			return nil
		}),
	}
	cmd.Flags().String("medication", "", "medication name (required)")
	cmd.Flags().String("dosage", "", "dosage (required)")
	cmd.Flags().String("frequency", "", "frequency (required)")
	cmd.Flags().String("duration", "", "duration")
	cmd.Flags().String("date", "", "prescribed date, YYYY-MM-DD (defaults to today)")
	return cmd
}

func addConditionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "condition <patient-id>",
		Short: "Record a chronic condition",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			id, err := patientIDArg(args)
			if err != nil {
				return err
			}

			f := forms.NewChronicConditionForm(a.clinical, a.log, id)
			f.ConditionName, _ = cmd.Flags().GetString("condition")
			f.ICD10Code, _ = cmd.Flags().GetString("icd10")
			f.DiagnosedDate, _ = cmd.Flags().GetString("diagnosed")
			f.DiagnosedBy, _ = cmd.Flags().GetString("diagnosed-by")
			f.Severity, _ = cmd.Flags().GetString("severity")
			f.Status, _ = cmd.Flags().GetString("status")
			f.TreatmentPlan, _ = cmd.Flags().GetString("plan")
			f.Notes, _ = cmd.Flags().GetString("notes")

			if err := f.Submit(ctx); err != nil {
				return err
			}
			fmt.Printf("created chronic condition %s\n", f.Result().ID)
			return nil
		}),
	}
	cmd.Flags().String("condition", "", "condition name (required)")
	cmd.Flags().String("icd10", "", "ICD-10 code")
	cmd.Flags().String("diagnosed", "", "diagnosed date, YYYY-MM-DD")
	cmd.Flags().String("diagnosed-by", "", "diagnosing doctor")
	cmd.Flags().String("severity", "", "mild, moderate, severe or critical (defaults to mild)")
	cmd.Flags().String("status", "", "active, managed, resolved or inactive (defaults to active)")
	cmd.Flags().String("plan", "", "treatment plan")
	cmd.Flags().String("notes", "", "notes")
	return cmd
}

func addLabResultCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lab <patient-id>",
		Short: "Record a laboratory result",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			id, err := patientIDArg(args)
			if err != nil {
				return err
			}

			f := forms.NewLabResultForm(a.diagnostics, a.log, id)
			f.TestName, _ = cmd.Flags().GetString("test")
			f.TestCategory, _ = cmd.Flags().GetString("category")
			if cmd.Flags().Changed("date") {
				f.TestDate, _ = cmd.Flags().GetString("date")
			}
			f.OrderedBy, _ = cmd.Flags().GetString("ordered-by")
			f.ResultValue, _ = cmd.Flags().GetString("value")
			f.ResultUnit, _ = cmd.Flags().GetString("unit")
			f.ReferenceRange, _ = cmd.Flags().GetString("range")
			f.Status, _ = cmd.Flags().GetString("status")
			f.LabName, _ = cmd.Flags().GetString("lab")
			f.LabReferenceNumber, _ = cmd.Flags().GetString("reference")
			f.Notes, _ = cmd.Flags().GetString("notes")

			if err := f.Submit(ctx); err != nil {
				return err
			}
			fmt.Printf("created lab result %s\n", f.Result().ID)
			return nil
		}),
	}
	cmd.Flags().String("test", "", "test name (required)")
	cmd.Flags().String("category", "", "test category (defaults to general)")
	cmd.Flags().String("date", "", "test date, YYYY-MM-DD (defaults to today)")
	cmd.Flags().String("ordered-by", "", "ordering doctor (required)")
	cmd.Flags().String("value", "", "result value")
	cmd.Flags().String("unit", "", "result unit")
	cmd.Flags().String("range", "", "reference range")
	cmd.Flags().String("status", "", "result status (defaults to normal)")
	cmd.Flags().String("lab", "", "laboratory name")
	cmd.Flags().String("reference", "", "lab reference number")
	cmd.Flags().String("notes", "", "notes")
	return cmd
}

func addVitalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vitals <patient-id>",
		Short: "Record a set of vital signs",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			id, err := patientIDArg(args)
			if err != nil {
				return err
			}

			f := forms.NewVitalSignsForm(a.diagnostics, a.log, id)
			if cmd.Flags().Changed("date") {
				f.RecordedDate, _ = cmd.Flags().GetString("date")
			}
			f.RecordedBy, _ = cmd.Flags().GetString("recorded-by")
			f.SystolicBP, _ = cmd.Flags().GetString("systolic")
			f.DiastolicBP, _ = cmd.Flags().GetString("diastolic")
			f.HeartRate, _ = cmd.Flags().GetString("heart-rate")
			f.RespiratoryRate, _ = cmd.Flags().GetString("respiratory-rate")
			f.TemperatureCelsius, _ = cmd.Flags().GetString("temperature")
			f.OxygenSaturation, _ = cmd.Flags().GetString("spo2")
			f.BloodGlucose, _ = cmd.Flags().GetString("glucose")
			f.HeightCm, _ = cmd.Flags().GetString("height")
			f.WeightKg, _ = cmd.Flags().GetString("weight")
			f.Notes, _ = cmd.Flags().GetString("notes")

			if err := f.Submit(ctx); err != nil {
				return err
			}
			vs := f.Result()
			if vs.BMI != nil {
				fmt.Printf("created vital signs %s (bmi %.2f)\n", vs.ID, *vs.BMI)
			} else {
				fmt.Printf("created vital signs %s\n", vs.ID)
			}
			return nil
		}),
	}
	cmd.Flags().String("date", "", "recorded date, YYYY-MM-DD (defaults to today)")
	cmd.Flags().String("recorded-by", "", "who took the readings (required)")
	cmd.Flags().String("systolic", "", "systolic blood pressure, mmHg")
	cmd.Flags().String("diastolic", "", "diastolic blood pressure, mmHg")
	cmd.Flags().String("heart-rate", "", "heart rate, bpm")
	cmd.Flags().String("respiratory-rate", "", "respiratory rate, breaths/min")
	cmd.Flags().String("temperature", "", "temperature, celsius")
	cmd.Flags().String("spo2", "", "oxygen saturation, percent")
	cmd.Flags().String("glucose", "", "blood glucose, mg/dL")
	cmd.Flags().String("height", "", "height, cm")
	cmd.Flags().String("weight", "", "weight, kg")
	cmd.Flags().String("notes", "", "notes")
	return cmd
}

func addImmunizationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "immunization <patient-id>",
		Short: "Record an administered vaccine dose",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			id, err := patientIDArg(args)
			if err != nil {
				return err
			}

			f := forms.NewImmunizationForm(a.immunizations, a.log, id)
			f.VaccineName, _ = cmd.Flags().GetString("vaccine")
			f.VaccineType, _ = cmd.Flags().GetString("type")
			if cmd.Flags().Changed("date") {
				f.AdministrationDate, _ = cmd.Flags().GetString("date")
			}
			f.AdministeredBy, _ = cmd.Flags().GetString("administered-by")
			f.Manufacturer, _ = cmd.Flags().GetString("manufacturer")
			f.LotNumber, _ = cmd.Flags().GetString("lot")
			f.ExpirationDate, _ = cmd.Flags().GetString("expires")
			if cmd.Flags().Changed("dose") {
				f.DoseNumber, _ = cmd.Flags().GetString("dose")
			}
			f.AdministrationSite, _ = cmd.Flags().GetString("site")
			f.AdverseReactions, _ = cmd.Flags().GetString("reactions")
			f.NextDoseDue, _ = cmd.Flags().GetString("next-dose")
			f.Notes, _ = cmd.Flags().GetString("notes")

			if err := f.Submit(ctx); err != nil {
				return err
			}
			fmt.Printf("created immunization %s\n", f.Result().ID)
			return nil
		}),
	}
	cmd.Flags().String("vaccine", "", "vaccine name (required)")
	cmd.Flags().String("type", "", "vaccine type")
	cmd.Flags().String("date", "", "administration date, YYYY-MM-DD (defaults to today)")
	cmd.Flags().String("administered-by", "", "administering clinician (required)")
	cmd.Flags().String("manufacturer", "", "manufacturer")
	cmd.Flags().String("lot", "", "lot number")
	cmd.Flags().String("expires", "", "expiration date, YYYY-MM-DD")
	cmd.Flags().String("dose", "", "dose number (defaults to 1)")
	cmd.Flags().String("site", "", "administration site (defaults to left arm)")
	cmd.Flags().String("reactions", "", "adverse reactions")
	cmd.Flags().String("next-dose", "", "next dose due, YYYY-MM-DD")
	cmd.Flags().String("notes", "", "notes")
	return cmd
}

func addFamilyHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "family-history <patient-id>",
		Short: "Record a condition in the patient's family",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			id, err := patientIDArg(args)
			if err != nil {
				return err
			}

			f := forms.NewFamilyHistoryForm(a.familyHistory, a.log, id)
			f.Relationship, _ = cmd.Flags().GetString("relationship")
			f.ConditionName, _ = cmd.Flags().GetString("condition")
			f.AgeOfOnset, _ = cmd.Flags().GetString("onset-age")
			f.Status, _ = cmd.Flags().GetString("status")
			f.Notes, _ = cmd.Flags().GetString("notes")

			if err := f.Submit(ctx); err != nil {
				return err
			}
			fmt.Printf("created family history entry %s\n", f.Result().ID)
			return nil
		}),
	}
	cmd.Flags().String("relationship", "", "family relationship (required)")
	cmd.Flags().String("condition", "", "condition name (required)")
	cmd.Flags().String("onset-age", "", "age of onset")
	cmd.Flags().String("status", "", "status (defaults to unknown)")
	cmd.Flags().String("notes", "", "notes")
	return cmd
}

func addDocumentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "document <patient-id> <file>",
		Short: "Attach a file, extracting text from images",
		Args:  cobra.ExactArgs(2),
		RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			id, err := patientIDArg(args)
			if err != nil {
				return err
			}

			f := forms.NewDocumentForm(a.documents, ocr.Tesseract{}, a.cfg.OCRLanguage, a.log, id)
			f.DocumentName, _ = cmd.Flags().GetString("name")
			f.DocumentType, _ = cmd.Flags().GetString("type")

			if err := f.SelectFile(ctx, args[1]); err != nil {
				return err
			}
			if err := f.Submit(ctx); err != nil {
				return err
			}

			d := f.Result()
			if d.OCRText != nil {
				fmt.Printf("created document %s (extracted %d characters)\n", d.ID, len(*d.OCRText))
			} else {
				fmt.Printf("created document %s\n", d.ID)
			}
			return nil
		}),
	}
	cmd.Flags().String("name", "", "document name (defaults to the file name)")
	cmd.Flags().String("type", "", "document type (defaults to general)")
	return cmd
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the record store schema",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			m := db.NewMigrator(a.pool, a.cfg.MigrationsDir)
			applied, err := m.Up(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("applied %d migrations\n", applied)
			return nil
		}),
	}

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show applied and pending migrations",
		RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			m := db.NewMigrator(a.pool, a.cfg.MigrationsDir)
			statuses, err := m.Status(ctx)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "VERSION\tNAME\tSTATUS")
			for _, s := range statuses {
				status := "pending"
				if s.Applied {
					status = "applied"
				}
				fmt.Fprintf(w, "%d\t%s\t%s\n", s.Version, s.Name, status)
			}
			return w.Flush()
		}),
	}

	cmd.AddCommand(upCmd)
	cmd.AddCommand(statusCmd)
	return cmd
}
