package service

import (
	"testing"
	"time"
	"walkalong_backend/internal/model"
	"walkalong_backend/internal/repository"
	"walkalong_backend/internal/util"
)

func newViewPlanService(t *testing.T) (*ViewPlanService, *TaskService) {
	t.Helper()
	db := setupTestDB(t)
	taskRepo := repository.NewTaskRepository(db)
	return NewViewPlanService(taskRepo), NewTaskService(taskRepo, repository.NewStreamRepository(db))
}

func createTypedTask(t *testing.T, tasks *TaskService, title string, taskType model.TaskType, date time.Time) {
	t.Helper()
	task := &model.LearningTask{Title: title, Type: taskType, AssignedDate: date}
	if err := tasks.CreateTask(testUserID, task); err != nil {
		t.Fatalf("create %s task %q: %v", taskType, title, err)
	}
}

func TestDailyViewFiltersTypeAndDate(t *testing.T) {
	view, tasks := newViewPlanService(t)
	today := util.Today()

	createTypedTask(t, tasks, "daily today", model.TaskDaily, today)
	createTypedTask(t, tasks, "daily yesterday", model.TaskDaily, today.AddDate(0, 0, -1))
	createTypedTask(t, tasks, "weekly today", model.TaskWeekly, today)

	got, err := view.GetDailyTasks(testUserID, today)
	if err != nil {
		t.Fatalf("daily view: %v", err)
	}
	if len(got) != 1 || got[0].Title != "daily today" {
		t.Errorf("got %d tasks, want only today's DAILY task", len(got))
	}
}

func TestWeeklyViewCoversMondayWeek(t *testing.T) {
	view, tasks := newViewPlanService(t)
	monday := mondayOf(util.Today())

	createTypedTask(t, tasks, "this sunday", model.TaskWeekly, monday.AddDate(0, 0, 6))
	createTypedTask(t, tasks, "last week", model.TaskWeekly, monday.AddDate(0, 0, -1))

	got, err := view.GetWeeklyTasks(testUserID, monday.AddDate(0, 0, 3))
	if err != nil {
		t.Fatalf("weekly view: %v", err)
	}
	if len(got) != 1 || got[0].Title != "this sunday" {
		t.Errorf("got %d tasks, want only the task inside this Mon..Sun week", len(got))
	}
}

func TestMonthlyViewCoversNaturalMonth(t *testing.T) {
	view, tasks := newViewPlanService(t)
	today := util.Today()
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.Local)

	createTypedTask(t, tasks, "first of month", model.TaskMonthly, monthStart)
	createTypedTask(t, tasks, "previous month", model.TaskMonthly, monthStart.AddDate(0, 0, -1))

	got, err := view.GetMonthlyTasks(testUserID, today)
	if err != nil {
		t.Fatalf("monthly view: %v", err)
	}
	if len(got) != 1 || got[0].Title != "first of month" {
		t.Errorf("got %d tasks, want only this month's MONTHLY task", len(got))
	}
}
