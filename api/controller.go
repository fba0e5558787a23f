package api

import (
	"gemrush.io/backend/communications"
	"gemrush.io/backend/config"
	"gemrush.io/backend/db"
	"gemrush.io/backend/engine"
)

type SharedController struct {
	Db      *db.DB
	Env     *config.Env
	Manager *communications.Manager
	Engine  *engine.Engine
}
