package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/noill-admin/internal/config"
	"github.com/jwalitptl/noill-admin/internal/handler"
	"github.com/jwalitptl/noill-admin/internal/model"
	"github.com/jwalitptl/noill-admin/internal/repository/memory"
	"github.com/jwalitptl/noill-admin/internal/view"
	"github.com/jwalitptl/noill-admin/pkg/logger"
)

func TestPatientsAPI(t *testing.T) {
	r := newTestRouter(t, testConfig())

	t.Run("search is a case-insensitive substring", func(t *testing.T) {
		resp := MakeRequest(t, r, http.MethodGet, "/api/v1/patients?search=JOHN", nil)
		require.Equal(t, http.StatusOK, resp.Code)
		require.True(t, resp.IsSuccess())

		var res model.ListResult[model.Patient]
		resp.DataInto(t, &res)
		require.Equal(t, 2, res.Count)
		assert.Equal(t, "John Smith", res.Items[0].Name)
		assert.Equal(t, "Sarah Johnson", res.Items[1].Name)
	})

	t.Run("surname", func(t *testing.T) {
		resp := MakeRequest(t, r, http.MethodGet, "/api/v1/patients?search=smith", nil)
		var res model.ListResult[model.Patient]
		resp.DataInto(t, &res)
		assert.Equal(t, 1, res.Count)
	})

	t.Run("empty result is an empty list", func(t *testing.T) {
		resp := MakeRequest(t, r, http.MethodGet, "/api/v1/patients?search=zzz", nil)
		assert.JSONEq(t, `{"items":[],"count":0}`, string(resp.Data))
	})

	t.Run("get by id", func(t *testing.T) {
		resp := MakeRequest(t, r, http.MethodGet, "/api/v1/patients/3", nil)
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, "Michael Davis", resp.GetString(t, "name"))
		assert.Equal(t, "Inactive", resp.GetString(t, "status"))
	})

	t.Run("unknown id", func(t *testing.T) {
		resp := MakeRequest(t, r, http.MethodGet, "/api/v1/patients/99", nil)
		assert.Equal(t, http.StatusNotFound, resp.Code)
		assert.Equal(t, "error", resp.Status)
		assert.Equal(t, "patient not found", resp.Message)
	})

	t.Run("malformed id", func(t *testing.T) {
		resp := MakeRequest(t, r, http.MethodGet, "/api/v1/patients/abc", nil)
		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Equal(t, `invalid id "abc"`, resp.Message)
	})
}

func TestScreensAPI(t *testing.T) {
	r := newTestRouter(t, testConfig())

	t.Run("appointments by status", func(t *testing.T) {
		resp := MakeRequest(t, r, http.MethodGet, "/api/v1/appointments?status=scheduled", nil)
		var res model.ListResult[model.Appointment]
		resp.DataInto(t, &res)
		assert.Equal(t, 2, res.Count)
	})

	t.Run("appointment options", func(t *testing.T) {
		resp := MakeRequest(t, r, http.MethodGet, "/api/v1/appointments/options", nil)
		var opts model.AppointmentOptions
		resp.DataInto(t, &opts)
		assert.Len(t, opts.Doctors, 6)
		assert.Len(t, opts.TimeSlots, 12)
	})

	t.Run("staff by role", func(t *testing.T) {
		resp := MakeRequest(t, r, http.MethodGet, "/api/v1/staff?role=nurse", nil)
		var res model.ListResult[model.StaffMember]
		resp.DataInto(t, &res)
		assert.Equal(t, 2, res.Count)
	})

	t.Run("weekly schedule", func(t *testing.T) {
		resp := MakeRequest(t, r, http.MethodGet, "/api/v1/staff/schedule", nil)
		var days []model.ShiftDay
		resp.DataInto(t, &days)
		assert.Len(t, days, 5)
	})

	t.Run("records search", func(t *testing.T) {
		resp := MakeRequest(t, r, http.MethodGet, "/api/v1/records?search=p002", nil)
		var res model.ListResult[model.MedicalRecord]
		resp.DataInto(t, &res)
		require.Equal(t, 1, res.Count)
		assert.Equal(t, "Emily Johnson", res.Items[0].PatientName)
	})

	t.Run("history defaults to the first patient", func(t *testing.T) {
		resp := MakeRequest(t, r, http.MethodGet, "/api/v1/records/history", nil)
		var h model.PatientHistory
		resp.DataInto(t, &h)
		assert.Equal(t, "P001", h.Patient.ID)
		assert.Len(t, h.Entries, 3)
		assert.Len(t, h.Patients, 4)
	})

	t.Run("history of a patient without entries", func(t *testing.T) {
		resp := MakeRequest(t, r, http.MethodGet, "/api/v1/records/history?patient_id=P004", nil)
		require.Equal(t, http.StatusOK, resp.Code)
		var h model.PatientHistory
		resp.DataInto(t, &h)
		assert.Empty(t, h.Entries)
	})

	t.Run("history of an unknown patient", func(t *testing.T) {
		resp := MakeRequest(t, r, http.MethodGet, "/api/v1/records/history?patient_id=P999", nil)
		assert.Equal(t, http.StatusNotFound, resp.Code)
	})

	t.Run("invoice total", func(t *testing.T) {
		resp := MakeRequest(t, r, http.MethodGet, "/api/v1/invoices/INV-001", nil)
		var detail map[string]interface{}
		resp.DataInto(t, &detail)
		assert.Equal(t, 1250.0, detail["total"])
		assert.Equal(t, "INV-001", detail["id"])
	})

	t.Run("invoices by status", func(t *testing.T) {
		resp := MakeRequest(t, r, http.MethodGet, "/api/v1/invoices?status=Overdue", nil)
		var res model.ListResult[model.Invoice]
		resp.DataInto(t, &res)
		require.Equal(t, 1, res.Count)
		assert.Equal(t, "INV-003", res.Items[0].ID)
	})

	t.Run("billing stats and payments", func(t *testing.T) {
		resp := MakeRequest(t, r, http.MethodGet, "/api/v1/billing/stats", nil)
		var stats model.BillingStats
		resp.DataInto(t, &stats)
		assert.Equal(t, int64(125400), stats.TotalRevenue)

		resp = MakeRequest(t, r, http.MethodGet, "/api/v1/payments", nil)
		var payments model.ListResult[model.PaymentRecord]
		resp.DataInto(t, &payments)
		assert.Equal(t, 4, payments.Count)
	})

	t.Run("dashboard", func(t *testing.T) {
		resp := MakeRequest(t, r, http.MethodGet, "/api/v1/dashboard", nil)
		var d model.Dashboard
		resp.DataInto(t, &d)
		assert.Equal(t, 1247, d.Stats.TotalPatients)
		assert.Len(t, d.Activities, 5)
		assert.Len(t, d.Upcoming, 4)
	})
}

func TestFormSubmissionsAPI(t *testing.T) {
	r := newTestRouter(t, testConfig())

	t.Run("accepted draft is echoed", func(t *testing.T) {
		resp := MakeRequest(t, r, http.MethodPost, "/api/v1/patients", map[string]interface{}{
			"name":  "Jane Doe",
			"age":   41,
			"email": "jane@example.com",
		})
		require.Equal(t, http.StatusAccepted, resp.Code)

		var receipt model.FormReceipt[model.CreatePatientRequest]
		resp.DataInto(t, &receipt)
		assert.True(t, receipt.Accepted)
		assert.Equal(t, "add_patient", receipt.Form)
		assert.Equal(t, "Jane Doe", receipt.Draft.Name)
		require.NotNil(t, receipt.Draft.Age)
		assert.Equal(t, 41, *receipt.Draft.Age)
	})

	t.Run("blank draft is accepted", func(t *testing.T) {
		resp := MakeRequest(t, r, http.MethodPost, "/api/v1/staff", map[string]interface{}{})
		assert.Equal(t, http.StatusAccepted, resp.Code)
	})

	t.Run("submissions never change the lists", func(t *testing.T) {
		resp := MakeRequest(t, r, http.MethodGet, "/api/v1/patients?search=jane", nil)
		var res model.ListResult[model.Patient]
		resp.DataInto(t, &res)
		assert.Zero(t, res.Count)
	})

	t.Run("invalid fields", func(t *testing.T) {
		resp := MakeRequest(t, r, http.MethodPost, "/api/v1/patients", map[string]interface{}{
			"email": "not-an-email",
			"age":   -3,
		})
		require.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Equal(t, "invalid form fields", resp.Message)

		fields := map[string]string{}
		for _, e := range resp.Errors {
			fields[e.Field] = e.Message
		}
		assert.Equal(t, "must be a valid email address", fields["email"])
		assert.Equal(t, "must not be negative", fields["age"])
	})

	t.Run("invalid date", func(t *testing.T) {
		resp := MakeRequest(t, r, http.MethodPost, "/api/v1/invoices", map[string]interface{}{"due_date": "next week"})
		require.Equal(t, http.StatusBadRequest, resp.Code)
		require.Len(t, resp.Errors, 1)
		assert.Equal(t, "due_date", resp.Errors[0].Field)
	})

	t.Run("wrong type", func(t *testing.T) {
		resp := MakeRequest(t, r, http.MethodPost, "/api/v1/appointments", `{"duration":"half an hour"}`)
		require.Equal(t, http.StatusBadRequest, resp.Code)
		require.Len(t, resp.Errors, 1)
		assert.Equal(t, "duration", resp.Errors[0].Field)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		resp := MakeRequest(t, r, http.MethodPost, "/api/v1/records", `{"patient_id":`)
		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})
}

func TestPages(t *testing.T) {
	r := newTestRouter(t, testConfig())

	tests := []struct {
		name     string
		path     string
		code     int
		contains []string
	}{
		{"home defaults to dashboard", "/", http.StatusOK, []string{"<h2>Dashboard</h2>", "1,247"}},
		{"home with tab", "/?tab=staff", http.StatusOK, []string{"<h2>Staff</h2>", "Nurse Jennifer Davis"}},
		{"home with unknown tab", "/?tab=reports", http.StatusOK, []string{"<h2>Dashboard</h2>"}},
		{"patients", "/patients", http.StatusOK, []string{"Patients (3)", "John Smith"}},
		{"patients search", "/patients?search=john", http.StatusOK, []string{"Patients (2)", "Sarah Johnson"}},
		{"patients empty", "/patients?search=zzz", http.StatusOK, []string{"Patients (0)", "No patients found"}},
		{"patients dialog", "/patients?dialog=new", http.StatusOK, []string{"Add New Patient"}},
		{"patient detail", "/patients/2", http.StatusOK, []string{"Patient Details", "Sarah Johnson"}},
		{"appointments empty", "/appointments?status=rescheduled", http.StatusOK, []string{"No appointments found", "Try adjusting your search or filters"}},
		{"staff schedule", "/staff?view=schedule", http.StatusOK, []string{"Weekly Schedule", "Wednesday"}},
		{"records history", "/records?view=history", http.StatusOK, []string{"Patient History - John Smith", "BP: 140/90"}},
		{"records history empty", "/records?view=history&patient_id=P002", http.StatusOK, []string{"Patient History - Emily Johnson", "No history entries"}},
		{"record detail", "/records/1", http.StatusOK, []string{"blood_test_results.pdf"}},
		{"billing", "/billing", http.StatusOK, []string{"$125,400", "Invoices (4)"}},
		{"billing payments", "/billing?view=payments", http.StatusOK, []string{"Payment History", "$450.00"}},
		{"invoice detail", "/billing/invoices/INV-001", http.StatusOK, []string{"Invoice Details - INV-001", "$1250.00"}},
		{"unknown patient", "/patients/99", http.StatusNotFound, []string{"patient not found", "Back to Patients"}},
		{"malformed id", "/records/abc", http.StatusNotFound, []string{"The requested record does not exist"}},
		{"unknown invoice", "/billing/invoices/INV-404", http.StatusNotFound, []string{"invoice INV-404 not found"}},
		{"unknown history patient", "/records?view=history&patient_id=P999", http.StatusNotFound, []string{"patient P999 not found"}},
		{"unknown route", "/reports", http.StatusNotFound, []string{"page /reports not found"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := GetPage(r, tt.path)
			require.Equal(t, tt.code, w.Code, w.Body.String())
			assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
			for _, s := range tt.contains {
				assert.Contains(t, w.Body.String(), s)
			}
		})
	}
}

func TestPageHeaders(t *testing.T) {
	r := newTestRouter(t, testConfig())

	w := GetPage(r, "/patients")
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestFormSubmissionPages(t *testing.T) {
	r := newTestRouter(t, testConfig())

	t.Run("accepted draft closes the dialog", func(t *testing.T) {
		w := PostForm(r, "/patients", url.Values{"name": {"Jane Doe"}, "age": {"41"}})
		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/patients", w.Header().Get("Location"))

		w = GetPage(r, "/patients")
		assert.Contains(t, w.Body.String(), "Patients (3)")
		assert.NotContains(t, w.Body.String(), "Jane Doe")
	})

	t.Run("rejected draft reopens the dialog", func(t *testing.T) {
		w := PostForm(r, "/staff", url.Values{"name": {"Dr. New"}, "email": {"bad-email"}})
		require.Equal(t, http.StatusBadRequest, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "Add New Staff Member")
		assert.Contains(t, body, "must be a valid email address")
		assert.Contains(t, body, `value="bad-email"`)
		assert.Contains(t, body, `value="Dr. New"`)
	})

	t.Run("other dialogs redirect to their screen", func(t *testing.T) {
		cases := map[string]string{
			"/appointments":     "/appointments",
			"/records":          "/records",
			"/billing/invoices": "/billing",
		}
		for path, location := range cases {
			w := PostForm(r, path, url.Values{"date": {"2024-02-01"}})
			require.Equal(t, http.StatusSeeOther, w.Code, path)
			assert.Equal(t, location, w.Header().Get("Location"))
		}
	})

	t.Run("rejected invoice date", func(t *testing.T) {
		w := PostForm(r, "/billing/invoices", url.Values{"date": {"01/02/2024"}})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "must be a date in YYYY-MM-DD format")
	})
}

func TestNotFoundAPI(t *testing.T) {
	r := newTestRouter(t, testConfig())

	resp := MakeRequest(t, r, http.MethodGet, "/api/v1/reports", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Equal(t, "route not found", resp.Message)
}

func TestResponseCache(t *testing.T) {
	r := newTestRouter(t, testConfig())

	first := MakeRequest(t, r, http.MethodGet, "/api/v1/staff?search=chen", nil)
	assert.Equal(t, "MISS", first.Header.Get("X-Cache"))

	second := MakeRequest(t, r, http.MethodGet, "/api/v1/staff?search=chen", nil)
	assert.Equal(t, "HIT", second.Header.Get("X-Cache"))
	assert.JSONEq(t, string(first.Data), string(second.Data))

	cfg := testConfig()
	cfg.Cache.Enabled = false
	uncached := newTestRouter(t, cfg)
	resp := MakeRequest(t, uncached, http.MethodGet, "/api/v1/staff", nil)
	assert.Empty(t, resp.Header.Get("X-Cache"))
}

func TestRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit = config.RateLimitConfig{Enabled: true, RPS: 0.001, Burst: 2}
	r := newTestRouter(t, cfg)

	assert.Equal(t, http.StatusOK, GetPage(r, "/dashboard").Code)
	assert.Equal(t, http.StatusOK, GetPage(r, "/dashboard").Code)
	w := GetPage(r, "/dashboard")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))
}

func TestHealthAndMetrics(t *testing.T) {
	r := newTestRouter(t, testConfig())

	w := GetPage(r, "/api/v1/health/live")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"alive"`)

	w = GetPage(r, "/api/v1/health/ready")
	assert.Equal(t, http.StatusOK, w.Code)

	MakeRequest(t, r, http.MethodGet, "/api/v1/patients", nil)
	MakeRequest(t, r, http.MethodPost, "/api/v1/patients", map[string]interface{}{"email": "x"})

	w = GetPage(r, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `noill_requests_total{method="GET",path="/api/v1/patients",status="200"} 1`)
	assert.Contains(t, body, `noill_form_submissions_total{form="add_patient",outcome="invalid"} 1`)
	assert.Contains(t, body, `noill_screen_views_total{screen="patients"} 1`)
}

func TestMetricsDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Metrics.Enabled = false
	r := newTestRouter(t, cfg)

	w := GetPage(r, "/metrics")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExpiredRequestDeadline(t *testing.T) {
	r := newTestRouter(t, testConfig())

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()

	tests := []struct {
		name string
		path string
		body string
	}{
		{name: "api", path: "/api/v1/patients", body: `"message":"request timeout"`},
		{name: "page", path: "/patients", body: "Something went wrong"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil).WithContext(ctx)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusGatewayTimeout, w.Code)
			assert.Contains(t, w.Body.String(), tt.body)
		})
	}
}

func TestReadiness(t *testing.T) {
	renderer, err := view.New()
	require.NoError(t, err)

	assert.NoError(t, readiness(renderer, memory.Seed())())
	assert.Error(t, readiness(renderer, &memory.Dataset{})())
	assert.Error(t, readiness(renderer, nil)())
	assert.Error(t, readiness(&view.Renderer{}, memory.Seed())())

	gin.SetMode(gin.TestMode)
	engine := gin.New()
	handler.NewHandler(readiness(renderer, &memory.Dataset{}), nil).RegisterRoutes(engine.Group("/api/v1"))

	w := GetPage(engine, "/api/v1/health/ready")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"not_ready"`)
}

func TestRateLimitKeysOnRemoteAddr(t *testing.T) {
	send := func(h http.Handler, forwardedFor string) int {
		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		req.Header.Set("X-Forwarded-For", forwardedFor)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		return w.Code
	}

	cfg := testConfig()
	cfg.RateLimit = config.RateLimitConfig{Enabled: true, RPS: 0.001, Burst: 1}

	t.Run("untrusted peer", func(t *testing.T) {
		r := newTestRouter(t, cfg)
		assert.Equal(t, http.StatusOK, send(r, "198.51.100.1"))
		assert.Equal(t, http.StatusTooManyRequests, send(r, "198.51.100.2"))
	})

	t.Run("trusted proxy", func(t *testing.T) {
		trusted := *cfg
		trusted.Server.TrustedProxies = []string{"192.0.2.0/24"}
		r := newTestRouter(t, &trusted)
		assert.Equal(t, http.StatusOK, send(r, "198.51.100.1"))
		assert.Equal(t, http.StatusOK, send(r, "198.51.100.2"))
		assert.Equal(t, http.StatusTooManyRequests, send(r, "198.51.100.1"))
	})
}

func TestInvalidTrustedProxies(t *testing.T) {
	cfg := testConfig()
	cfg.Server.TrustedProxies = []string{"not-an-ip"}

	_, err := newRouter(cfg, logger.Nop(), prometheus.NewRegistry())
	assert.Error(t, err)
}
