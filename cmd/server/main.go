package main

import (
	"fmt"
	"log"

	"links-backend/internal/config"
	"links-backend/internal/database"
	"links-backend/internal/routes"
	"links-backend/internal/store"
	"links-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// 加载环境变量
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// 初始化配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 初始化日志
	logger.Init(cfg.Log)

	// 设置 Gin 模式
	gin.SetMode(cfg.Server.Mode)

	// 初始化存储后端
	backend, err := openStore(cfg)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}

	// 加载数据快照
	container, err := store.NewContainer(backend)
	if err != nil {
		log.Fatalf("Failed to load data: %v", err)
	}

	// 初始化路由
	router := routes.Setup(container, cfg)

	// 启动服务器
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server starting on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func openStore(cfg *config.Config) (store.Store, error) {
	switch cfg.Storage.Driver {
	case "postgres":
		db, err := database.Connect(cfg)
		if err != nil {
			return nil, err
		}
		return database.NewBlobStore(db)
	default:
		return store.NewFileStore(cfg.Storage.Path)
	}
}
