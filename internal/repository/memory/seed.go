package memory

import "github.com/jwalitptl/noill-admin/internal/model"

// Dataset is the complete set of sample records the dashboard serves.
type Dataset struct {
	Patients     []model.Patient
	Appointments []model.Appointment
	Doctors      []string
	TimeSlots    []string
	VisitTypes   []model.AppointmentType
	Staff        []model.StaffMember
	Schedule     []model.ShiftDay
	Records      []model.MedicalRecord
	History      []model.HistoryEntry
	Invoices     []model.Invoice
	Payments     []model.PaymentRecord
	BillingStats model.BillingStats
	Stats        model.DashboardStats
	Activities   []model.Activity
	Upcoming     []model.UpcomingAppointment
}

// Seed returns a fresh copy of the sample dataset.
func Seed() *Dataset {
	return &Dataset{
		Patients: []model.Patient{
			{
				ID:               1,
				Name:             "John Smith",
				Age:              45,
				Gender:           "Male",
				Phone:            "+1 (555) 123-4567",
				Email:            "john.smith@email.com",
				Address:          "123 Main St, City, State 12345",
				BloodGroup:       "O+",
				LastVisit:        "2024-01-15",
				Status:           model.PatientStatusActive,
				EmergencyContact: "Jane Smith - +1 (555) 987-6543",
			},
			{
				ID:               2,
				Name:             "Sarah Johnson",
				Age:              32,
				Gender:           "Female",
				Phone:            "+1 (555) 234-5678",
				Email:            "sarah.johnson@email.com",
				Address:          "456 Oak Ave, City, State 12345",
				BloodGroup:       "A+",
				LastVisit:        "2024-01-20",
				Status:           model.PatientStatusActive,
				EmergencyContact: "Mike Johnson - +1 (555) 876-5432",
			},
			{
				ID:               3,
				Name:             "Michael Davis",
				Age:              28,
				Gender:           "Male",
				Phone:            "+1 (555) 345-6789",
				Email:            "michael.davis@email.com",
				Address:          "789 Pine St, City, State 12345",
				BloodGroup:       "B+",
				LastVisit:        "2024-01-10",
				Status:           model.PatientStatusInactive,
				EmergencyContact: "Lisa Davis - +1 (555) 765-4321",
			},
		},

		Appointments: []model.Appointment{
			{ID: 1, PatientName: "John Smith", DoctorName: "Dr. Sarah Wilson", Date: "2024-01-25", Time: "10:00 AM", Type: "Consultation", Status: model.AppointmentStatusScheduled, Notes: "Regular checkup"},
			{ID: 2, PatientName: "Emily Johnson", DoctorName: "Dr. Michael Brown", Date: "2024-01-25", Time: "11:30 AM", Type: "Follow-up", Status: model.AppointmentStatusConfirmed, Notes: "Post-surgery follow-up"},
			{ID: 3, PatientName: "Robert Davis", DoctorName: "Dr. Lisa Chen", Date: "2024-01-25", Time: "2:00 PM", Type: "Emergency", Status: model.AppointmentStatusCompleted, Notes: "Chest pain evaluation"},
			{ID: 4, PatientName: "Maria Garcia", DoctorName: "Dr. James Miller", Date: "2024-01-26", Time: "9:00 AM", Type: "Surgery", Status: model.AppointmentStatusScheduled, Notes: "Appendectomy"},
			{ID: 5, PatientName: "David Lee", DoctorName: "Dr. Sarah Wilson", Date: "2024-01-26", Time: "3:30 PM", Type: "Consultation", Status: model.AppointmentStatusCancelled, Notes: "Patient cancelled due to travel"},
		},
		Doctors: []string{
			"Dr. Sarah Wilson", "Dr. Michael Brown", "Dr. Lisa Chen",
			"Dr. James Miller", "Dr. Amanda Davis", "Dr. Robert Johnson",
		},
		TimeSlots: []string{
			"9:00 AM", "9:30 AM", "10:00 AM", "10:30 AM", "11:00 AM", "11:30 AM",
			"2:00 PM", "2:30 PM", "3:00 PM", "3:30 PM", "4:00 PM", "4:30 PM",
		},
		VisitTypes: []model.AppointmentType{
			{Value: "consultation", Label: "Consultation"},
			{Value: "follow-up", Label: "Follow-up"},
			{Value: "surgery", Label: "Surgery"},
			{Value: "emergency", Label: "Emergency"},
			{Value: "checkup", Label: "Checkup"},
		},

		Staff: []model.StaffMember{
			{ID: 1, Name: "Dr. Sarah Wilson", Role: model.StaffRoleDoctor, Department: "Cardiology", Phone: "+1 (555) 123-4567", Email: "sarah.wilson@hospital.com", Status: model.StaffStatusAvailable, Shift: "Morning", Experience: "8 years", Specialization: "Cardiac Surgery"},
			{ID: 2, Name: "Dr. Michael Brown", Role: model.StaffRoleDoctor, Department: "Orthopedics", Phone: "+1 (555) 234-5678", Email: "michael.brown@hospital.com", Status: model.StaffStatusInSurgery, Shift: "Full Day", Experience: "12 years", Specialization: "Joint Replacement"},
			{ID: 3, Name: "Nurse Jennifer Davis", Role: model.StaffRoleNurse, Department: "Emergency", Phone: "+1 (555) 345-6789", Email: "jennifer.davis@hospital.com", Status: model.StaffStatusAvailable, Shift: "Night", Experience: "5 years", Specialization: "Emergency Care"},
			{ID: 4, Name: "Dr. Lisa Chen", Role: model.StaffRoleDoctor, Department: "Pediatrics", Phone: "+1 (555) 456-7890", Email: "lisa.chen@hospital.com", Status: model.StaffStatusOffDuty, Shift: "Evening", Experience: "6 years", Specialization: "Child Healthcare"},
			{ID: 5, Name: "Nurse Robert Johnson", Role: model.StaffRoleNurse, Department: "ICU", Phone: "+1 (555) 567-8901", Email: "robert.johnson@hospital.com", Status: model.StaffStatusAvailable, Shift: "Morning", Experience: "10 years", Specialization: "Critical Care"},
		},
		Schedule: []model.ShiftDay{
			{Day: "Monday", Morning: "Dr. Wilson, Nurse Davis", Evening: "Dr. Chen, Nurse Johnson", Night: "Dr. Brown"},
			{Day: "Tuesday", Morning: "Dr. Brown, Nurse Johnson", Evening: "Dr. Wilson, Nurse Davis", Night: "Dr. Chen"},
			{Day: "Wednesday", Morning: "Dr. Chen, Nurse Davis", Evening: "Dr. Brown, Nurse Johnson", Night: "Dr. Wilson"},
			{Day: "Thursday", Morning: "Dr. Wilson, Nurse Johnson", Evening: "Dr. Chen, Nurse Davis", Night: "Dr. Brown"},
			{Day: "Friday", Morning: "Dr. Brown, Nurse Davis", Evening: "Dr. Wilson, Nurse Johnson", Night: "Dr. Chen"},
		},

		Records: []model.MedicalRecord{
			{ID: 1, PatientName: "John Smith", PatientID: "P001", RecordType: "Diagnosis", Date: "2024-01-20", Doctor: "Dr. Sarah Wilson", Description: "Hypertension follow-up", Status: model.RecordStatusActive, Files: []string{"blood_test_results.pdf", "ecg_report.pdf"}},
			{ID: 2, PatientName: "Emily Johnson", PatientID: "P002", RecordType: "Surgery", Date: "2024-01-18", Doctor: "Dr. Michael Brown", Description: "Knee replacement surgery", Status: model.RecordStatusCompleted, Files: []string{"surgery_notes.pdf", "post_op_xray.jpg"}},
			{ID: 3, PatientName: "Robert Davis", PatientID: "P003", RecordType: "Lab Report", Date: "2024-01-22", Doctor: "Dr. Lisa Chen", Description: "Comprehensive metabolic panel", Status: model.RecordStatusPendingReview, Files: []string{"lab_results.pdf"}},
			{ID: 4, PatientName: "Maria Garcia", PatientID: "P004", RecordType: "Prescription", Date: "2024-01-19", Doctor: "Dr. James Miller", Description: "Diabetes medication adjustment", Status: model.RecordStatusActive, Files: []string{"prescription.pdf"}},
		},
		History: []model.HistoryEntry{
			{
				ID:          1,
				PatientID:   "P001",
				Date:        "2024-01-20",
				Type:        "Visit",
				Description: "Regular checkup - Blood pressure monitoring",
				Doctor:      "Dr. Sarah Wilson",
				Vitals:      &model.Vitals{BloodPressure: "140/90", Pulse: "72", Temperature: "98.6°F", Weight: "180 lbs"},
			},
			{
				ID:          2,
				PatientID:   "P001",
				Date:        "2024-01-15",
				Type:        "Lab",
				Description: "Blood work - Lipid panel",
				Doctor:      "Dr. Sarah Wilson",
				Results:     "Cholesterol: 220 mg/dL (High), HDL: 45 mg/dL",
			},
			{
				ID:           3,
				PatientID:    "P001",
				Date:         "2024-01-10",
				Type:         "Prescription",
				Description:  "Lisinopril 10mg daily for hypertension",
				Doctor:       "Dr. Sarah Wilson",
				Instructions: "Take once daily in the morning",
			},
		},

		Invoices: []model.Invoice{
			{
				ID: "INV-001", PatientName: "John Smith", PatientID: "P001",
				Date: "2024-01-20", DueDate: "2024-02-20", Amount: 1250.00, Status: model.InvoiceStatusPaid,
				Services: []model.ServiceLine{
					{Description: "Consultation", Amount: 150.00},
					{Description: "Blood Test", Amount: 100.00},
					{Description: "ECG", Amount: 200.00},
					{Description: "Medication", Amount: 800.00},
				},
			},
			{
				ID: "INV-002", PatientName: "Emily Johnson", PatientID: "P002",
				Date: "2024-01-18", DueDate: "2024-02-18", Amount: 5500.00, Status: model.InvoiceStatusPending,
				Services: []model.ServiceLine{
					{Description: "Surgery - Knee Replacement", Amount: 5000.00},
					{Description: "Anesthesia", Amount: 300.00},
					{Description: "Post-op care", Amount: 200.00},
				},
			},
			{
				ID: "INV-003", PatientName: "Robert Davis", PatientID: "P003",
				Date: "2024-01-22", DueDate: "2024-02-22", Amount: 350.00, Status: model.InvoiceStatusOverdue,
				Services: []model.ServiceLine{
					{Description: "Emergency Visit", Amount: 200.00},
					{Description: "X-Ray", Amount: 150.00},
				},
			},
			{
				ID: "INV-004", PatientName: "Maria Garcia", PatientID: "P004",
				Date: "2024-01-19", DueDate: "2024-02-19", Amount: 750.00, Status: model.InvoiceStatusPartiallyPaid,
				Services: []model.ServiceLine{
					{Description: "Diabetes Management", Amount: 300.00},
					{Description: "Lab Tests", Amount: 250.00},
					{Description: "Medication", Amount: 200.00},
				},
			},
		},
		Payments: []model.PaymentRecord{
			{ID: 1, Date: "2024-01-21", Patient: "John Smith", Amount: 1250.00, Method: "Credit Card", Status: "Completed"},
			{ID: 2, Date: "2024-01-20", Patient: "Maria Garcia", Amount: 375.00, Method: "Insurance", Status: "Completed"},
			{ID: 3, Date: "2024-01-19", Patient: "Sarah Wilson", Amount: 450.00, Method: "Cash", Status: "Completed"},
			{ID: 4, Date: "2024-01-18", Patient: "Michael Brown", Amount: 800.00, Method: "Check", Status: "Pending"},
		},
		BillingStats: model.BillingStats{
			TotalRevenue:           125400,
			TotalRevenueCaption:    "+12% from last month",
			PendingPayments:        18750,
			PendingPaymentsCaption: "15 invoices pending",
			OverdueAmount:          5300,
			OverdueAmountCaption:   "3 overdue invoices",
			ThisMonth:              28600,
			ThisMonthCaption:       "+8% from last month",
		},

		Stats: model.DashboardStats{
			TotalPatients:            1247,
			TotalPatientsCaption:     "+12% from last month",
			TodayAppointments:        23,
			TodayAppointmentsCaption: "3 completed, 20 remaining",
			ActiveStaff:              45,
			ActiveStaffCaption:       "32 doctors, 13 nurses",
			MonthlyRevenue:           125400,
			MonthlyRevenueCaption:    "+8% from last month",
		},
		Activities: []model.Activity{
			{ID: 1, Type: "appointment", Patient: "John Smith", Time: "10:30 AM", Status: "completed"},
			{ID: 2, Type: "admission", Patient: "Sarah Johnson", Time: "09:15 AM", Status: "active"},
			{ID: 3, Type: "discharge", Patient: "Mike Wilson", Time: "08:45 AM", Status: "completed"},
			{ID: 4, Type: "appointment", Patient: "Emily Davis", Time: "11:00 AM", Status: "scheduled"},
			{ID: 5, Type: "emergency", Patient: "Robert Brown", Time: "07:30 AM", Status: "urgent"},
		},
		Upcoming: []model.UpcomingAppointment{
			{ID: 1, Patient: "Alice Cooper", Doctor: "Dr. Smith", Time: "2:00 PM", Type: "Consultation"},
			{ID: 2, Patient: "Bob Martin", Doctor: "Dr. Johnson", Time: "2:30 PM", Type: "Follow-up"},
			{ID: 3, Patient: "Carol Lee", Doctor: "Dr. Wilson", Time: "3:00 PM", Type: "Surgery"},
			{ID: 4, Patient: "David Kim", Doctor: "Dr. Davis", Time: "3:30 PM", Type: "Checkup"},
		},
	}
}
