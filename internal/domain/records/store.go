package records

import (
	"context"
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// ===============================
// Per-entity repositories
// ===============================

type UserRepository interface {
	GetUser(ctx context.Context, id uint) (*models.User, error)
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, u *models.User) error
	UpdateUser(ctx context.Context, u *models.User) error
	DeleteUser(ctx context.Context, id uint) error
}

type PatientRepository interface {
	GetPatient(ctx context.Context, id uint) (*models.Patient, error)
	// ListPatients returns every patient when ownerID is nil.
	ListPatients(ctx context.Context, ownerID *uint) ([]models.Patient, error)
	PatientNameTaken(ctx context.Context, name string, excludeID uint) (bool, error)
	CreatePatient(ctx context.Context, p *models.Patient) error
	UpdatePatient(ctx context.Context, p *models.Patient) error
	DeletePatient(ctx context.Context, id uint) error
}

type DoctorRepository interface {
	GetDoctor(ctx context.Context, id uint) (*models.Doctor, error)
	ListDoctors(ctx context.Context) ([]models.Doctor, error)
	DoctorNameTaken(ctx context.Context, name string, excludeID uint) (bool, error)
	CreateDoctor(ctx context.Context, d *models.Doctor) error
	UpdateDoctor(ctx context.Context, d *models.Doctor) error
	DeleteDoctor(ctx context.Context, id uint) error
}

type ClinicRepository interface {
	GetClinic(ctx context.Context, id uint) (*models.Clinic, error)
	ListClinics(ctx context.Context) ([]models.Clinic, error)
	ClinicNameTaken(ctx context.Context, name string, excludeID uint) (bool, error)
	CreateClinic(ctx context.Context, c *models.Clinic) error
	UpdateClinic(ctx context.Context, c *models.Clinic) error
	DeleteClinic(ctx context.Context, id uint) error
}

type ScheduleRepository interface {
	GetSchedule(ctx context.Context, id uint) (*models.DoctorSchedule, error)
	ListSchedules(ctx context.Context) ([]models.DoctorSchedule, error)
	ListSchedulesForDoctor(ctx context.Context, doctorID uint) ([]models.DoctorSchedule, error)
	// FirstScheduleForDoctor returns the doctor's row with the lowest id.
	FirstScheduleForDoctor(ctx context.Context, doctorID uint) (*models.DoctorSchedule, error)
	ScheduleForDoctorOnDate(ctx context.Context, doctorID uint, date string) (*models.DoctorSchedule, error)
	CreateSchedule(ctx context.Context, s *models.DoctorSchedule) error
	UpdateSchedule(ctx context.Context, s *models.DoctorSchedule) error
	DeleteSchedule(ctx context.Context, id uint) error
}

type AppointmentRepository interface {
	// GetAppointment preloads Patient, Doctor and Clinic.
	GetAppointment(ctx context.Context, id uint) (*models.Appointment, error)
	// ListAppointments returns every appointment when creatorID is nil.
	ListAppointments(ctx context.Context, creatorID *uint) ([]models.Appointment, error)
	// ListBookingConflicts returns the appointments that can influence the
	// double booking predicate: same doctor, or same (date, time).
	// excludeID removes one row from the result, 0 excludes nothing.
	ListBookingConflicts(ctx context.Context, doctorID uint, date, slot string, excludeID uint) ([]models.Appointment, error)
	CreateAppointment(ctx context.Context, ap *models.Appointment) error
	UpdateAppointment(ctx context.Context, ap *models.Appointment) error
	DeleteAppointment(ctx context.Context, id uint) error
}

type AuditFilter struct {
	Action string
	Entity string
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
}

type AuditRepository interface {
	CreateAuditLog(ctx context.Context, l *models.AuditLog) error
	ListAuditLogs(ctx context.Context, f AuditFilter) ([]models.AuditLog, error)
	// CountAuditLogs ignores Limit and Offset.
	CountAuditLogs(ctx context.Context, f AuditFilter) (int64, error)
}

// ===============================
// Store
// ===============================

// Store is the full record store. Transaction runs fn against a Store bound
// to one storage transaction; returning an error rolls every write back.
type Store interface {
	UserRepository
	PatientRepository
	DoctorRepository
	ClinicRepository
	ScheduleRepository
	AppointmentRepository
	AuditRepository

	Transaction(ctx context.Context, fn func(tx Store) error) error
}
