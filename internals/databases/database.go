package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	attendanceModel "sekolahku_backend/internals/features/school/attendance/model"
	classModel "sekolahku_backend/internals/features/school/masters/classes/model"
	majorModel "sekolahku_backend/internals/features/school/masters/majors/model"
	roomModel "sekolahku_backend/internals/features/school/masters/rooms/model"
	schoolYearModel "sekolahku_backend/internals/features/school/masters/school_years/model"
	semesterModel "sekolahku_backend/internals/features/school/masters/semesters/model"
	subjectModel "sekolahku_backend/internals/features/school/masters/subjects/model"
	timeSlotModel "sekolahku_backend/internals/features/school/masters/time_slots/model"
	scheduleModel "sekolahku_backend/internals/features/school/schedules/model"
	settingModel "sekolahku_backend/internals/features/settings/model"
	deviceModel "sekolahku_backend/internals/features/users/devices/model"
	userModel "sekolahku_backend/internals/features/users/users/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "disable")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=sekolahku&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")

	if err := autoMigrate(db); err != nil {
		log.Fatalf("❌ Auto migrate gagal: %v", err)
	}
}

func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel.UserModel{},
		&userModel.StudentProfileModel{},
		&userModel.TeacherProfileModel{},
		&deviceModel.DeviceModel{},
		&majorModel.MajorModel{},
		&roomModel.RoomModel{},
		&subjectModel.SubjectModel{},
		&timeSlotModel.TimeSlotModel{},
		&schoolYearModel.SchoolYearModel{},
		&semesterModel.SemesterModel{},
		&classModel.ClassModel{},
		&scheduleModel.ClassScheduleModel{},
		&scheduleModel.DailyScheduleModel{},
		&scheduleModel.ScheduleItemModel{},
		&attendanceModel.AttendanceModel{},
		&settingModel.SettingModel{},
	)
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

func WarmUpQueries() {
	// ping ringan supaya pool terisi sebelum request pertama
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
