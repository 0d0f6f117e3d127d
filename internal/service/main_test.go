package service

import (
	"fmt"
	"strings"
	"testing"
	"walkalong_backend/internal/repository"
	"walkalong_backend/pkg/database"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB 为每个测试创建独立的内存数据库
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return db
}

func newTaskService(t *testing.T) (*TaskService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	return NewTaskService(repository.NewTaskRepository(db), repository.NewStreamRepository(db)), db
}

func newStreamService(t *testing.T) (*StreamService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	return NewStreamService(repository.NewStreamRepository(db)), db
}

func newWorkDoneService(t *testing.T) *WorkDoneService {
	t.Helper()
	return NewWorkDoneService(repository.NewWorkDoneRepository(setupTestDB(t)))
}

func newMoodService(t *testing.T) *MoodService {
	t.Helper()
	return NewMoodService(repository.NewMoodRepository(setupTestDB(t)))
}
