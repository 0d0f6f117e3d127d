package service

import (
	"testing"
	"walkalong_backend/internal/model"
	"walkalong_backend/internal/repository"
)

func newAnalyticsService(t *testing.T) (*AnalyticsService, *TaskService, *WorkDoneService) {
	t.Helper()
	db := setupTestDB(t)
	taskRepo := repository.NewTaskRepository(db)
	workDoneRepo := repository.NewWorkDoneRepository(db)
	analytics := NewAnalyticsService(taskRepo, workDoneRepo,
		repository.NewAnswerRepository(db), repository.NewCalendarRepository(db))
	tasks := NewTaskService(taskRepo, repository.NewStreamRepository(db))
	workDone := NewWorkDoneService(workDoneRepo)
	return analytics, tasks, workDone
}

func TestOverviewEmptyUser(t *testing.T) {
	analytics, _, _ := newAnalyticsService(t)

	overview, err := analytics.GetOverview(testUserID)
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if overview.TotalTasks != 0 {
		t.Errorf("totalTasks = %d, want 0", overview.TotalTasks)
	}
	if overview.LearningRate != 0 {
		t.Errorf("learningRate = %v, want 0 with no tasks", overview.LearningRate)
	}
}

func TestOverviewAggregates(t *testing.T) {
	analytics, tasks, workDone := newAnalyticsService(t)

	for i := 0; i < 4; i++ {
		task := &model.LearningTask{Title: "task"}
		if err := tasks.CreateTask(testUserID, task); err != nil {
			t.Fatalf("create task: %v", err)
		}
		if i < 3 {
			if _, err := tasks.UpdateStatus(task.ID, model.TaskCompleted); err != nil {
				t.Fatalf("complete task: %v", err)
			}
		}
		if _, err := tasks.AddStopwatchTime(task.ID, 600); err != nil {
			t.Fatalf("stopwatch: %v", err)
		}
	}

	entry := &model.WorkDoneEntry{Items: []model.WorkDoneItem{{Description: "work", Points: 25}}}
	if err := workDone.CreateEntry(testUserID, entry); err != nil {
		t.Fatalf("create work entry: %v", err)
	}

	overview, err := analytics.GetOverview(testUserID)
	if err != nil {
		t.Fatalf("overview: %v", err)
	}

	if overview.TotalTasks != 4 || overview.CompletedTasks != 3 || overview.PendingTasks != 1 {
		t.Errorf("tasks = %d/%d/%d, want 4/3/1", overview.TotalTasks, overview.CompletedTasks, overview.PendingTasks)
	}
	if overview.LearningRate != 0.75 {
		t.Errorf("learningRate = %v, want 0.75", overview.LearningRate)
	}
	if overview.CompletedThisWeek != 3 {
		t.Errorf("completedThisWeek = %d, want 3", overview.CompletedThisWeek)
	}
	if overview.TotalPoints != 25 {
		t.Errorf("totalPoints = %d, want 25", overview.TotalPoints)
	}
	if overview.TotalStudySeconds != 2400 {
		t.Errorf("totalStudySeconds = %d, want 2400", overview.TotalStudySeconds)
	}
}
