package main

import (
	"flag"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/user/watchlist/internal/config"
	"github.com/user/watchlist/internal/model"
	"github.com/user/watchlist/internal/repository"
)

// 管理命令：建表、设置管理员账号、填充演示数据
// 与请求处理完全解耦，作为独立的运维入口使用
func main() {
	initdb := flag.Bool("initdb", false, "初始化数据库表结构")
	drop := flag.Bool("drop", false, "建表前先删除旧表（配合 -initdb 使用）")
	admin := flag.Bool("admin", false, "创建或更新管理员账号")
	username := flag.String("username", "", "管理员登录名")
	password := flag.String("password", "", "管理员密码")
	forge := flag.Bool("forge", false, "写入演示数据")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		logrus.Info("未找到 .env 文件，使用系统环境变量")
	}

	cfg := config.Load()

	if *drop {
		// 先用原生连接删表，InitDB 会重新建表
		db, err := repository.InitDB(cfg.DatabasePath)
		if err != nil {
			logrus.Fatalf("数据库连接失败: %v", err)
		}
		if err := db.Migrator().DropTable(&model.User{}, &model.Movie{}); err != nil {
			logrus.Fatalf("删表失败: %v", err)
		}
		logrus.Info("已删除旧表")
	}

	// InitDB 内部执行 AutoMigrate，-initdb 只需要走一遍连接流程
	db, err := repository.InitDB(cfg.DatabasePath)
	if err != nil {
		logrus.Fatalf("数据库连接失败: %v", err)
	}
	repos := repository.NewRepositories(db)

	if *initdb {
		logrus.Info("Initialized database.")
	}

	if *admin {
		if *username == "" || *password == "" {
			logrus.Fatal("必须同时指定 -username 和 -password")
		}

		user, created, err := repos.User.Provision(*username, *password)
		if err != nil {
			logrus.Fatalf("管理员账号设置失败: %v", err)
		}
		if created {
			logrus.Infof("Creating user... id=%d", user.ID)
		} else {
			logrus.Infof("Updating user... id=%d", user.ID)
		}
		logrus.Info("Done.")
	}

	if *forge {
		if err := forgeData(repos); err != nil {
			logrus.Fatalf("演示数据写入失败: %v", err)
		}
		logrus.Info("Done.")
	}
}

// forgeData 一键加入演示数据
func forgeData(repos *repository.Repositories) error {
	movies := []model.Movie{
		{Title: "My Neighbor Totoro", Year: "1988"},
		{Title: "Dead Poets Society", Year: "1989"},
		{Title: "A Perfect World", Year: "1993"},
		{Title: "Leon", Year: "1994"},
		{Title: "Mahjong", Year: "1996"},
		{Title: "Swallowtail Butterfly", Year: "1996"},
		{Title: "King of Comedy", Year: "1999"},
		{Title: "Devils on the Doorstep", Year: "1999"},
		{Title: "WALL-E", Year: "2008"},
		{Title: "The Pork of Music", Year: "2012"},
	}

	user, err := repos.User.Get()
	if err != nil {
		return err
	}
	if user == nil {
		if _, err := repos.User.Create("Leon"); err != nil {
			return err
		}
	}

	for i := range movies {
		if _, err := repos.Movie.Create(movies[i].Title, movies[i].Year); err != nil {
			return err
		}
	}

	return nil
}
