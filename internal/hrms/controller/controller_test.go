package controller

import (
	"context"
	"sync"
	"testing"

	"github.com/gartstein/hrms/internal/hrms/db"
	"github.com/gartstein/hrms/internal/hrms/events"
	"github.com/gartstein/hrms/internal/hrms/models"
	"github.com/stretchr/testify/require"
)

// MockRepository implements the Repository interface for testing
type MockRepository struct {
	createEmployee       func(context.Context, *models.Employee) error
	listEmployees        func(context.Context) ([]models.Employee, error)
	getEmployee          func(context.Context, models.EmployeeCode) (*models.Employee, error)
	createAttendance     func(context.Context, *models.AttendanceRecord) error
	listAttendanceFor    func(context.Context, models.EmployeeKey, models.DateRange) ([]models.AttendanceRecord, error)
	listAttendanceOn     func(context.Context, models.Date) ([]models.AttendanceEntry, error)
	listRecentAttendance func(context.Context, int) ([]models.AttendanceEntry, error)
	countEmployees       func(context.Context) (int64, error)
	countAttendance      func(context.Context, models.AttendanceStatus) (int64, error)
	withTransaction      func(context.Context, func(*db.Repository) error) error
}

func (m *MockRepository) CreateEmployee(ctx context.Context, employee *models.Employee) error {
	return m.createEmployee(ctx, employee)
}

func (m *MockRepository) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	return m.listEmployees(ctx)
}

func (m *MockRepository) GetEmployee(ctx context.Context, code models.EmployeeCode) (*models.Employee, error) {
	return m.getEmployee(ctx, code)
}

func (m *MockRepository) CreateAttendance(ctx context.Context, record *models.AttendanceRecord) error {
	return m.createAttendance(ctx, record)
}

func (m *MockRepository) ListAttendanceFor(ctx context.Context, key models.EmployeeKey, span models.DateRange) ([]models.AttendanceRecord, error) {
	return m.listAttendanceFor(ctx, key, span)
}

func (m *MockRepository) ListAttendanceOn(ctx context.Context, on models.Date) ([]models.AttendanceEntry, error) {
	return m.listAttendanceOn(ctx, on)
}

func (m *MockRepository) ListRecentAttendance(ctx context.Context, limit int) ([]models.AttendanceEntry, error) {
	return m.listRecentAttendance(ctx, limit)
}

func (m *MockRepository) CountEmployees(ctx context.Context) (int64, error) {
	return m.countEmployees(ctx)
}

func (m *MockRepository) CountAttendance(ctx context.Context, status models.AttendanceStatus) (int64, error) {
	return m.countAttendance(ctx, status)
}

func (m *MockRepository) WithTransaction(ctx context.Context, fn func(*db.Repository) error) error {
	return m.withTransaction(ctx, fn)
}

// MockProducer is a test double for the Kafka producer.
type MockProducer struct {
	mu             sync.Mutex
	producedEvents []events.Event
}

func (m *MockProducer) Produce(event events.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.producedEvents = append(m.producedEvents, event)
}

func (m *MockProducer) Events() []events.Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]events.Event(nil), m.producedEvents...)
}

// newTestRepository opens a private in-memory SQLite store.
func newTestRepository(t *testing.T) *db.Repository {
	t.Helper()
	repo, err := db.NewRepository(&db.Config{Driver: db.DriverSQLite, Path: ":memory:"})
	require.NoError(t, err, "failed to open test database")
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}
