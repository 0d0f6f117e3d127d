// 写入演示数据脚本
//
// 创建一个演示用户，并为其生成学习方向、任务、情绪记录和工作日志，
// 方便前端联调时不用从空库开始。
//
// 用法: go run scripts/seed_demo.go

package main

import (
	"log"
	"time"
	"walkalong_backend/internal/config"
	"walkalong_backend/internal/model"
	"walkalong_backend/pkg/database"
	"walkalong_backend/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}

	logger.InitLogger(cfg.Server.Mode)

	db, err := database.InitDB(&cfg.Database, true)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	var count int64
	db.Model(&model.User{}).Where("email = ?", "demo@walkalong.dev").Count(&count)
	if count > 0 {
		log.Println("演示数据已存在，跳过")
		return
	}

	hashed, _ := bcrypt.GenerateFromPassword([]byte("demo123456"), bcrypt.DefaultCost)
	user := &model.User{
		Name:     "Demo User",
		Email:    "demo@walkalong.dev",
		Password: string(hashed),
		Role:     model.Member,
	}
	if err := db.Create(user).Error; err != nil {
		log.Fatalf("创建演示用户失败: %v", err)
	}

	upsc := &model.Stream{Name: "UPSC Prep", UserID: user.ID}
	coding := &model.Stream{Name: "Coding Practice", UserID: user.ID}
	db.Create(upsc)
	db.Create(coding)

	today := time.Now().Truncate(24 * time.Hour)
	revision := today.AddDate(0, 0, 2)

	tasks := []model.LearningTask{
		{Title: "Read Polity Chapter 4", Type: model.TaskDaily, Status: model.TaskPending, UserID: user.ID, StreamID: &upsc.ID, AssignedDate: today, Points: 10, RevisionDate: &revision},
		{Title: "Answer writing practice", Type: model.TaskDaily, Status: model.TaskPending, UserID: user.ID, StreamID: &upsc.ID, AssignedDate: today, Points: 20},
		{Title: "Solve 5 DP problems", Type: model.TaskWeekly, Status: model.TaskPending, UserID: user.ID, StreamID: &coding.ID, AssignedDate: today, Points: 30},
		{Title: "Monthly revision sweep", Type: model.TaskMonthly, Status: model.TaskPending, UserID: user.ID, AssignedDate: today, Points: 50},
	}
	for i := range tasks {
		db.Create(&tasks[i])
	}

	mood := &model.MoodEntry{UserID: user.ID, Date: today, Mood: 4, Energy: 3, Motivation: 5, Notes: "开局不错"}
	db.Create(mood)

	entry := &model.WorkDoneEntry{
		UserID:            user.ID,
		Date:              today,
		DayOfWeek:         today.Weekday().String(),
		SatisfactionLevel: 4,
		Items: []model.WorkDoneItem{
			{Description: "Finished Polity notes", Points: 10, Category: "Study", Completed: true},
			{Description: "2 hours problem solving", Points: 15, Category: "Project", Completed: true},
		},
	}
	entry.CalculateTotalPoints()
	db.Create(entry)

	log.Println("演示数据写入完成！登录邮箱 demo@walkalong.dev / 密码 demo123456")
}
