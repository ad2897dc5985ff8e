package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jullianMozo/BlogPostAPI/app/config"
	"github.com/jullianMozo/BlogPostAPI/app/models"
	"github.com/jullianMozo/BlogPostAPI/app/repositories"
	"github.com/jullianMozo/BlogPostAPI/app/routes"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"
)

const cliVersion = "1.0.0"

func main() {
	cmd := "serve"
	if len(os.Args) > 1 {
		cmd = strings.ToLower(os.Args[1])
	}

	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("blogpostapi version %s\n", cliVersion)
	case "serve":
		serve()
	case "create-admin":
		createAdmin()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	helpText := `Usage: blogpostapi <command> [options]
Commands:
  help                             Display this help message.
  version                          Show version information.
  serve                            Run the blog API server (default).
  create-admin <username> <pass>   Create an admin user account.
`
	fmt.Println(helpText)
}

func serve() {
	cfg, log := mustSetup()
	defer log.Sync()

	db := mustOpenDB(cfg, log)
	defer db.Close()

	router := routes.SetupRoutes(db, cfg.JWTSecret, log)

	log.Info("starting blog API server", zap.String("addr", cfg.Addr()), zap.String("env", cfg.Env))
	if err := routes.StartServer(cfg.Addr(), router); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}

func createAdmin() {
	if len(os.Args) < 4 {
		fmt.Println("Error: username and password are required for create-admin")
		os.Exit(1)
	}
	username, password := os.Args[2], os.Args[3]

	cfg, log := mustSetup()
	defer log.Sync()

	db := mustOpenDB(cfg, log)
	defer db.Close()

	user := &models.User{
		Username: username,
		IsAdmin:  true,
	}
	if err := user.SetPassword(password); err != nil {
		log.Fatal("failed to set password", zap.Error(err))
	}
	user.BeforeCreate()

	userRepo := repositories.NewBadgerUserRepository(db)
	if err := userRepo.Create(user); err != nil {
		log.Fatal("failed to create admin user", zap.Error(err))
	}
	log.Info("admin user created", zap.String("username", username), zap.String("id", user.ID))
}

func mustSetup() (*config.Config, *zap.Logger) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	var log *zap.Logger
	if cfg.IsDev() {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger error: %v\n", err)
		os.Exit(1)
	}
	return cfg, log
}

func mustOpenDB(cfg *config.Config, log *zap.Logger) *badger.DB {
	opts := badger.DefaultOptions(cfg.DBPath).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		log.Fatal("failed to open Badger DB", zap.String("path", cfg.DBPath), zap.Error(err))
	}
	return db
}
