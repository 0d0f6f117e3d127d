package service

import (
	"fmt"
	"testing"
	"walkalong_backend/internal/model"
	"walkalong_backend/internal/repository"
	"walkalong_backend/internal/util"
)

func newDashboardService(t *testing.T) (*DashboardService, *TaskService) {
	t.Helper()
	db := setupTestDB(t)
	taskRepo := repository.NewTaskRepository(db)
	dashboard := NewDashboardService(taskRepo, repository.NewCalendarRepository(db))
	tasks := NewTaskService(taskRepo, repository.NewStreamRepository(db))
	return dashboard, tasks
}

func createRevisionTask(t *testing.T, tasks *TaskService, title string, daysFromNow int) *model.LearningTask {
	t.Helper()
	revisionDate := util.Today().AddDate(0, 0, daysFromNow)
	task := &model.LearningTask{Title: title, RevisionDate: &revisionDate}
	if err := tasks.CreateTask(testUserID, task); err != nil {
		t.Fatalf("create revision task %q: %v", title, err)
	}
	return task
}

func TestRevisionRemindersWindowAndOrder(t *testing.T) {
	dashboard, tasks := newDashboardService(t)

	createRevisionTask(t, tasks, "in five days", 5)
	createRevisionTask(t, tasks, "in two days", 2)
	createRevisionTask(t, tasks, "due today", 0)

	reminders, err := dashboard.GetRevisionReminders(testUserID)
	if err != nil {
		t.Fatalf("reminders: %v", err)
	}

	if len(reminders) != 2 {
		t.Fatalf("reminders = %d, want 2 (5 天后的不在窗口内)", len(reminders))
	}
	if reminders[0].Task.Title != "due today" || reminders[1].Task.Title != "in two days" {
		t.Errorf("order = [%s, %s], want nearest first", reminders[0].Task.Title, reminders[1].Task.Title)
	}
	if reminders[0].DaysUntil != 0 || reminders[1].DaysUntil != 2 {
		t.Errorf("daysUntil = [%d, %d], want [0, 2]", reminders[0].DaysUntil, reminders[1].DaysUntil)
	}
}

func TestRevisionRemindersIncludeOverdue(t *testing.T) {
	dashboard, tasks := newDashboardService(t)

	createRevisionTask(t, tasks, "overdue", -2)

	reminders, err := dashboard.GetRevisionReminders(testUserID)
	if err != nil {
		t.Fatalf("reminders: %v", err)
	}
	if len(reminders) != 1 {
		t.Fatalf("reminders = %d, want 1", len(reminders))
	}
	if reminders[0].DaysUntil >= 0 {
		t.Errorf("daysUntil = %d, want negative for overdue task", reminders[0].DaysUntil)
	}
}

func TestRevisionRemindersCappedAtFive(t *testing.T) {
	dashboard, tasks := newDashboardService(t)

	for i := 0; i < 8; i++ {
		createRevisionTask(t, tasks, fmt.Sprintf("revision %d", i), 1)
	}

	reminders, err := dashboard.GetRevisionReminders(testUserID)
	if err != nil {
		t.Fatalf("reminders: %v", err)
	}
	if len(reminders) != 5 {
		t.Errorf("reminders = %d, want capped at 5", len(reminders))
	}
}

func TestRevisionRemindersSkipTasksWithoutDate(t *testing.T) {
	dashboard, tasks := newDashboardService(t)

	if err := tasks.CreateTask(testUserID, &model.LearningTask{Title: "no revision"}); err != nil {
		t.Fatalf("create task: %v", err)
	}

	reminders, err := dashboard.GetRevisionReminders(testUserID)
	if err != nil {
		t.Fatalf("reminders: %v", err)
	}
	if len(reminders) != 0 {
		t.Errorf("reminders = %d, want 0", len(reminders))
	}
}

func TestGetTodayTasks(t *testing.T) {
	dashboard, tasks := newDashboardService(t)

	if err := tasks.CreateTask(testUserID, &model.LearningTask{Title: "today"}); err != nil {
		t.Fatalf("create task: %v", err)
	}
	tomorrow := util.Today().AddDate(0, 0, 1)
	if err := tasks.CreateTask(testUserID, &model.LearningTask{Title: "tomorrow", AssignedDate: tomorrow}); err != nil {
		t.Fatalf("create task: %v", err)
	}

	today, err := dashboard.GetTodayTasks(testUserID)
	if err != nil {
		t.Fatalf("today tasks: %v", err)
	}
	if len(today) != 1 || today[0].Title != "today" {
		t.Errorf("got %d tasks, want only today's", len(today))
	}
}
