package main

import (
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"gemrush.io/backend/api"
	"gemrush.io/backend/communications"
	"gemrush.io/backend/config"
	"gemrush.io/backend/db"
	"gemrush.io/backend/engine"
)

func main() {
	env := config.Env{}
	err := config.LoadEnv(&env)
	if err != nil {
		slog.Error("Error loading config", "err", err)
		return
	}
	router := gin.Default()

	DBUrl := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable password=%s", env.DBHost, env.DBPort, env.DBUser, env.DBName, env.DBUserPwd)
	DB, err := gorm.Open(postgres.Open(DBUrl), &gorm.Config{})
	if err != nil {
		slog.Error("Error connecting to db", "err", err)
		return
	}
	slog.Info("Connected to db")

	database := &db.DB{DB: DB}

	manager := communications.New()
	go manager.Run()

	eng := engine.New(decimal.NewFromInt(env.StartingCredits), nil, database)

	sCtrl := api.SharedController{
		Db:      database,
		Env:     &env,
		Manager: manager,
		Engine:  eng,
	}

	router.Use(api.CORSMiddleware())

	api.AuthEndpoints(&sCtrl, router)
	api.UserEndpoints(&sCtrl, router)
	api.GameEndpoints(&sCtrl, router)
	api.RoundsEndpoints(&sCtrl, router)
	router.Run(fmt.Sprintf("%s:%s", env.ServerHost, env.ServerPort))
}
