package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	feeModel "schoolku_backend/internals/features/finance/fees/model"
	assignmentModel "schoolku_backend/internals/features/school/assignments/model"
	attendanceModel "schoolku_backend/internals/features/school/attendance/model"
	classSectionModel "schoolku_backend/internals/features/school/class_sections/model"
	classModel "schoolku_backend/internals/features/school/classes/model"
	studentModel "schoolku_backend/internals/features/school/students/model"
	timetableModel "schoolku_backend/internals/features/school/timetable/model"
	teacherModel "schoolku_backend/internals/features/teachers/model"
	userModel "schoolku_backend/internals/features/users/user/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Connecting to PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=schoolku&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 plays well with PgBouncer transaction pooling
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate creates/updates all tables. Composite uniqueness for timetable
// slots and attendance (student, date) lives in the models' index tags so the
// store, not the handlers, is the authority on conflicts.
func Migrate() {
	if err := DB.AutoMigrate(
		&userModel.UserModel{},
		&classModel.ClassModel{},
		&classSectionModel.ClassSectionModel{},
		&studentModel.StudentModel{},
		&attendanceModel.AttendanceModel{},
		&assignmentModel.AssignmentModel{},
		&assignmentModel.SubmissionModel{},
		&feeModel.FeeModel{},
		&teacherModel.TeacherProfileModel{},
		&teacherModel.SalaryPaymentModel{},
		&timetableModel.TimetableEntryModel{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}
	log.Println("✅ Migration complete.")
}

func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
