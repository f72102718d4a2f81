package db

import (
	"context"
	"errors"
	"testing"
	"time"

	e "github.com/gartstein/hrms/internal/hrms/errors"
	"github.com/gartstein/hrms/internal/hrms/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// SetupTestDB initializes a private in-memory SQLite database for testing.
func SetupTestDB(t *testing.T) *Repository {
	repo, err := NewRepository(&Config{Driver: DriverSQLite, Path: ":memory:"})
	require.NoError(t, err, "failed to open test database")
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func createEmployee(t *testing.T, repo *Repository, code, email string) *models.Employee {
	t.Helper()
	employee := &models.Employee{
		Code:       models.EmployeeCode(code),
		FullName:   "Employee " + code,
		Email:      email,
		Department: "Engineering",
	}
	require.NoError(t, repo.CreateEmployee(context.Background(), employee), "CreateEmployee should succeed")
	return employee
}

func mark(t *testing.T, repo *Repository, key models.EmployeeKey, date string, status models.AttendanceStatus) *models.AttendanceRecord {
	t.Helper()
	d, err := models.ParseDate(date)
	require.NoError(t, err)
	record := &models.AttendanceRecord{EmployeeKey: key, Date: d, Status: status}
	require.NoError(t, repo.CreateAttendance(context.Background(), record), "CreateAttendance should succeed")
	return record
}

func datePtr(t *testing.T, s string) *models.Date {
	t.Helper()
	d, err := models.ParseDate(s)
	require.NoError(t, err)
	return &d
}

// TestCreateEmployee tests the creation of an employee record.
func TestCreateEmployee(t *testing.T) {
	repo := SetupTestDB(t)
	ctx := context.Background()

	employee := createEmployee(t, repo, "E1", "e1@example.com")
	assert.NotZero(t, employee.Key, "surrogate key should be assigned")
	assert.False(t, employee.CreatedAt.IsZero(), "created_at should be set")

	retrieved, err := repo.GetEmployee(ctx, "E1")
	require.NoError(t, err, "GetEmployee should retrieve the created employee")
	assert.Equal(t, employee.Key, retrieved.Key)
	assert.Equal(t, "e1@example.com", retrieved.Email)
}

func TestCreateEmployeeDuplicates(t *testing.T) {
	repo := SetupTestDB(t)
	ctx := context.Background()
	createEmployee(t, repo, "E1", "e1@example.com")

	err := repo.CreateEmployee(ctx, &models.Employee{Code: "E1", FullName: "Other", Email: "other@example.com", Department: "Ops"})
	assert.ErrorIs(t, err, e.ErrConflict, "duplicate employee_id should conflict")

	err = repo.CreateEmployee(ctx, &models.Employee{Code: "E2", FullName: "Other", Email: "e1@example.com", Department: "Ops"})
	assert.ErrorIs(t, err, e.ErrConflict, "duplicate email should conflict")

	count, err := repo.CountEmployees(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "no duplicate should be stored")
}

func TestGetEmployeeNotFound(t *testing.T) {
	repo := SetupTestDB(t)

	_, err := repo.GetEmployee(context.Background(), "missing")
	assert.ErrorIs(t, err, e.ErrNotFound)
}

func TestListEmployeesNewestFirst(t *testing.T) {
	repo := SetupTestDB(t)
	createEmployee(t, repo, "E1", "e1@example.com")
	createEmployee(t, repo, "E2", "e2@example.com")
	createEmployee(t, repo, "E3", "e3@example.com")

	employees, err := repo.ListEmployees(context.Background())
	require.NoError(t, err)
	require.Len(t, employees, 3)
	assert.Equal(t, models.EmployeeCode("E3"), employees[0].Code)
	assert.Equal(t, models.EmployeeCode("E1"), employees[2].Code)
}

func TestCreateAttendanceRejectsDuplicateDate(t *testing.T) {
	repo := SetupTestDB(t)
	ctx := context.Background()
	employee := createEmployee(t, repo, "E1", "e1@example.com")

	record := mark(t, repo, employee.Key, "2024-01-01", models.Present)
	assert.NotZero(t, record.ID)
	assert.Equal(t, "2024-01-01", record.Date.String())

	d, _ := models.ParseDate("2024-01-01")
	err := repo.CreateAttendance(ctx, &models.AttendanceRecord{EmployeeKey: employee.Key, Date: d, Status: models.Absent})
	assert.ErrorIs(t, err, e.ErrConflict, "second mark for the same date should conflict")

	records, err := repo.ListAttendanceFor(ctx, employee.Key, models.DateRange{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, models.Present, records[0].Status, "first status should be kept")
}

func TestCreateAttendanceUnknownEmployee(t *testing.T) {
	repo := SetupTestDB(t)
	d, _ := models.ParseDate("2024-01-01")

	err := repo.CreateAttendance(context.Background(), &models.AttendanceRecord{EmployeeKey: 999, Date: d, Status: models.Present})
	assert.ErrorIs(t, err, e.ErrConstraint, "foreign key violation should be reported as a constraint error")
}

func TestDeleteEmployeeCascades(t *testing.T) {
	repo := SetupTestDB(t)
	ctx := context.Background()
	employee := createEmployee(t, repo, "E1", "e1@example.com")
	other := createEmployee(t, repo, "E2", "e2@example.com")
	mark(t, repo, employee.Key, "2024-01-01", models.Present)
	mark(t, repo, employee.Key, "2024-01-02", models.Absent)
	mark(t, repo, other.Key, "2024-01-01", models.Present)

	// The schema cascades even without the explicit attendance delete.
	require.NoError(t, repo.DeleteEmployee(ctx, employee.Key))

	total, err := repo.CountAttendance(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), total, "only the other employee's record should remain")

	_, err = repo.GetEmployee(ctx, "E1")
	assert.ErrorIs(t, err, e.ErrNotFound)
}

func TestDeleteEmployeeNotFound(t *testing.T) {
	repo := SetupTestDB(t)

	err := repo.DeleteEmployee(context.Background(), 42)
	assert.ErrorIs(t, err, e.ErrNotFound)
}

func TestDeleteAttendanceFor(t *testing.T) {
	repo := SetupTestDB(t)
	ctx := context.Background()
	employee := createEmployee(t, repo, "E1", "e1@example.com")
	mark(t, repo, employee.Key, "2024-01-01", models.Present)
	mark(t, repo, employee.Key, "2024-01-02", models.Present)

	deleted, err := repo.DeleteAttendanceFor(ctx, employee.Key)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
}

func TestListAttendanceForRange(t *testing.T) {
	repo := SetupTestDB(t)
	ctx := context.Background()
	employee := createEmployee(t, repo, "E1", "e1@example.com")
	for _, date := range []string{"2024-01-09", "2024-01-10", "2024-01-15", "2024-01-20", "2024-01-21"} {
		mark(t, repo, employee.Key, date, models.Present)
	}

	records, err := repo.ListAttendanceFor(ctx, employee.Key, models.DateRange{
		From: datePtr(t, "2024-01-10"),
		To:   datePtr(t, "2024-01-20"),
	})
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "2024-01-20", records[0].Date.String())
	assert.Equal(t, "2024-01-15", records[1].Date.String())
	assert.Equal(t, "2024-01-10", records[2].Date.String())

	records, err = repo.ListAttendanceFor(ctx, employee.Key, models.DateRange{From: datePtr(t, "2024-01-20")})
	require.NoError(t, err)
	assert.Len(t, records, 2, "open upper bound")

	records, err = repo.ListAttendanceFor(ctx, employee.Key, models.DateRange{To: datePtr(t, "2024-01-09")})
	require.NoError(t, err)
	assert.Len(t, records, 1, "open lower bound")
}

func TestListAttendanceOn(t *testing.T) {
	repo := SetupTestDB(t)
	ctx := context.Background()
	zed := createEmployee(t, repo, "Z9", "z9@example.com")
	alpha := createEmployee(t, repo, "A1", "a1@example.com")
	mark(t, repo, zed.Key, "2024-02-01", models.Absent)
	mark(t, repo, alpha.Key, "2024-02-01", models.Present)
	mark(t, repo, alpha.Key, "2024-02-02", models.Present)

	entries, err := repo.ListAttendanceOn(ctx, *datePtr(t, "2024-02-01"))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, models.EmployeeCode("A1"), entries[0].EmployeeCode)
	assert.Equal(t, "Employee A1", entries[0].EmployeeName)
	assert.Equal(t, models.EmployeeCode("Z9"), entries[1].EmployeeCode)
	assert.Equal(t, models.Absent, entries[1].Record.Status)
	assert.Equal(t, "2024-02-01", entries[1].Record.Date.String())
}

func TestListRecentAttendance(t *testing.T) {
	repo := SetupTestDB(t)
	ctx := context.Background()
	first := createEmployee(t, repo, "E1", "e1@example.com")
	second := createEmployee(t, repo, "E2", "e2@example.com")

	start := models.NewDate(2024, time.January, 1)
	for i := 0; i < 30; i++ {
		day := models.DateOf(start.Time().AddDate(0, 0, i))
		mark(t, repo, first.Key, day.String(), models.Present)
		mark(t, repo, second.Key, day.String(), models.Absent)
	}

	entries, err := repo.ListRecentAttendance(ctx, models.RecentAttendanceLimit)
	require.NoError(t, err)
	require.Len(t, entries, models.RecentAttendanceLimit)

	assert.Equal(t, "2024-01-30", entries[0].Record.Date.String())
	// Same date: the later insert comes first.
	assert.Equal(t, models.EmployeeCode("E2"), entries[0].EmployeeCode)
	assert.Equal(t, models.EmployeeCode("E1"), entries[1].EmployeeCode)
	for i := 1; i < len(entries); i++ {
		prev, cur := entries[i-1].Record, entries[i].Record
		if prev.Date == cur.Date {
			assert.Greater(t, prev.ID, cur.ID)
		} else {
			assert.True(t, cur.Date.Before(prev.Date))
		}
	}
}

func TestCounts(t *testing.T) {
	repo := SetupTestDB(t)
	ctx := context.Background()
	a := createEmployee(t, repo, "E1", "e1@example.com")
	b := createEmployee(t, repo, "E2", "e2@example.com")
	createEmployee(t, repo, "E3", "e3@example.com")
	mark(t, repo, a.Key, "2024-01-01", models.Present)
	mark(t, repo, a.Key, "2024-01-02", models.Present)
	mark(t, repo, a.Key, "2024-01-03", models.Absent)
	mark(t, repo, b.Key, "2024-01-01", models.Present)
	mark(t, repo, b.Key, "2024-01-02", models.Absent)

	employees, err := repo.CountEmployees(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), employees)

	total, err := repo.CountAttendance(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)

	present, err := repo.CountAttendance(ctx, models.Present)
	require.NoError(t, err)
	assert.Equal(t, int64(3), present)

	absent, err := repo.CountAttendance(ctx, models.Absent)
	require.NoError(t, err)
	assert.Equal(t, int64(2), absent)
}

// TestWithTransactionRollback ensures a failing step undoes earlier writes.
func TestWithTransactionRollback(t *testing.T) {
	repo := SetupTestDB(t)
	ctx := context.Background()
	employee := createEmployee(t, repo, "E1", "e1@example.com")
	mark(t, repo, employee.Key, "2024-01-01", models.Present)

	boom := errors.New("boom")
	err := repo.WithTransaction(ctx, func(tx *Repository) error {
		if _, err := tx.DeleteAttendanceFor(ctx, employee.Key); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	total, err := repo.CountAttendance(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), total, "attendance delete should be rolled back")
}

func TestWithTransactionCommit(t *testing.T) {
	repo := SetupTestDB(t)
	ctx := context.Background()

	err := repo.WithTransaction(ctx, func(tx *Repository) error {
		return tx.CreateEmployee(ctx, &models.Employee{Code: "T1", FullName: "Tx", Email: "tx@example.com", Department: "Ops"})
	})
	require.NoError(t, err)

	_, err = repo.GetEmployee(ctx, "T1")
	assert.NoError(t, err, "employee should exist after commit")
}

func TestPing(t *testing.T) {
	repo := SetupTestDB(t)
	assert.NoError(t, repo.Ping(context.Background()))
}

func TestConfigDSN(t *testing.T) {
	pg := &Config{Driver: DriverPostgres, Host: "localhost", Port: 5432, User: "u", Password: "p", DBName: "hrms", SSLMode: "disable"}
	assert.Equal(t, "host=localhost port=5432 user=u password=p dbname=hrms sslmode=disable", pg.DSN())

	pg.URL = "postgres://u:p@db:5432/hrms"
	assert.Equal(t, "postgres://u:p@db:5432/hrms", pg.DSN())

	assert.Equal(t, "file::memory:?_foreign_keys=on", (&Config{Driver: DriverSQLite}).DSN())
	assert.Equal(t, "file:hrms.db?_foreign_keys=on", (&Config{Driver: DriverSQLite, Path: "hrms.db"}).DSN())

	_, err := NewRepository(&Config{Driver: "oracle"})
	assert.Error(t, err)
}
