package database

import (
	"fmt"
	"log"
	"walkalong_backend/internal/config"
	"walkalong_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB 建立 MySQL 连接，migrate 为 true 时执行表迁移与默认数据写入
func InitDB(cfg *config.DatabaseConfig, migrate bool) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if migrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
		log.Println("Database migration completed")

		SeedDefaults(db)
	}

	return db, nil
}

// Migrate 迁移所有业务表
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Stream{},
		&model.StreamNote{},
		&model.LearningTask{},
		&model.MoodEntry{},
		&model.WorkDoneEntry{},
		&model.WorkDoneItem{},
		&model.AnswerQuestion{},
		&model.AnswerSubmission{},
		&model.AnswerReview{},
		&model.CalendarEntry{},
		&model.Motivation{},
	)
}

// SeedDefaults 首次启动时写入默认激励短句与默认练习题
func SeedDefaults(db *gorm.DB) {
	var count int64
	db.Model(&model.Motivation{}).Count(&count)
	if count == 0 {
		defaultMotivations := []string{
			"坚持是所有成就的起点。今天也走一步吧！",
			"复习昨天，规划明天，专注今天。",
			"Small consistent steps beat occasional sprints.",
			"记录下来的一天，才算真正过完的一天。",
		}
		for i, content := range defaultMotivations {
			motivation := &model.Motivation{
				Content:         content,
				IsEnabled:       true,
				IsCurrentlyUsed: i == 0,
			}
			db.Create(motivation)
		}
	}

	var qCount int64
	db.Model(&model.AnswerQuestion{}).Count(&qCount)
	if qCount == 0 {
		defaultQuestions := []model.AnswerQuestion{
			{Text: "分析近年来城市化进程对区域水循环的影响，并提出治理思路。", Subject: "Geography", Topic: "Urbanisation", Source: "练习题库"},
			{Text: "评述技术进步对劳动力市场结构的双重作用。", Subject: "Economics", Topic: "Labour Market", Source: "练习题库"},
			{Text: "论述公共政策制定中证据与价值的关系。", Subject: "Polity", Topic: "Policy Making", Source: "练习题库"},
		}
		for _, q := range defaultQuestions {
			db.Create(&q)
		}
	}
}
