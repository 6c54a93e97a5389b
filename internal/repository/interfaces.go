package repository

import (
	"context"

	"github.com/jwalitptl/noill-admin/internal/model"
)

// All repository interfaces in one file. Every repository is read-only: the
// dashboard serves fixed sample records and never writes.
type (
	PatientRepository interface {
		List(ctx context.Context) ([]model.Patient, error)
		Get(ctx context.Context, id int) (*model.Patient, error)
	}

	AppointmentRepository interface {
		List(ctx context.Context) ([]model.Appointment, error)
		Get(ctx context.Context, id int) (*model.Appointment, error)
		Options(ctx context.Context) (*model.AppointmentOptions, error)
	}

	StaffRepository interface {
		List(ctx context.Context) ([]model.StaffMember, error)
		Get(ctx context.Context, id int) (*model.StaffMember, error)
		Schedule(ctx context.Context) ([]model.ShiftDay, error)
	}

	MedicalRecordRepository interface {
		List(ctx context.Context) ([]model.MedicalRecord, error)
		Get(ctx context.Context, id int) (*model.MedicalRecord, error)
		History(ctx context.Context, patientID string) ([]model.HistoryEntry, error)
	}

	BillingRepository interface {
		ListInvoices(ctx context.Context) ([]model.Invoice, error)
		GetInvoice(ctx context.Context, id string) (*model.Invoice, error)
		ListPayments(ctx context.Context) ([]model.PaymentRecord, error)
		Stats(ctx context.Context) (*model.BillingStats, error)
	}

	DashboardRepository interface {
		Stats(ctx context.Context) (*model.DashboardStats, error)
		RecentActivities(ctx context.Context) ([]model.Activity, error)
		UpcomingAppointments(ctx context.Context) ([]model.UpcomingAppointment, error)
	}
)
