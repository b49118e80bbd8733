package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/op/go-logging"
	"github.com/spf13/cobra"

	"blog-api/config"
	"blog-api/database"
	"blog-api/database/model"
	"blog-api/logger"
	"blog-api/web"
	"blog-api/web/service"
)

func runWebServer() {
	log.Printf("%v %v", config.GetName(), config.GetVersion())

	switch config.GetLogLevel() {
	case config.Debug:
		logger.InitLogger(logging.DEBUG)
	case config.Info:
		logger.InitLogger(logging.INFO)
	case config.Warn:
		logger.InitLogger(logging.WARNING)
	case config.Error:
		logger.InitLogger(logging.ERROR)
	default:
		log.Fatal("unknown log level:", config.GetLogLevel())
	}

	err := database.InitDB(config.GetDBPath())
	if err != nil {
		log.Fatal(err)
	}

	server := web.NewServer()
	err = server.Start()
	if err != nil {
		log.Println(err)
		return
	}

	sigCh := make(chan os.Signal, 1)
	// Trap shutdown signals
	signal.Notify(sigCh, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGINT)
	for {
		sig := <-sigCh

		switch sig {
		case syscall.SIGHUP:
			err := server.Stop()
			if err != nil {
				logger.Warning("stop server err:", err)
			}
			server = web.NewServer()
			err = server.Start()
			if err != nil {
				log.Println(err)
				return
			}
		default:
			if err := server.Stop(); err != nil {
				logger.Warning("stop server err:", err)
			}
			if err := database.CloseDB(); err != nil {
				logger.Warning("close database err:", err)
			}
			logger.CloseLogger()
			return
		}
	}
}

// createUser provisions an account from the command line, mainly used to
// bootstrap the first admin without going through the register endpoint.
func createUser(username, password, role string) {
	logger.InitLogger(logging.INFO)

	if err := database.InitDB(config.GetDBPath()); err != nil {
		fmt.Println(err)
		return
	}

	authService := service.NewAuthService()
	_, user, err := authService.Register(username, password, model.Role(role))
	if err != nil {
		fmt.Println("create user failed:", err)
		return
	}
	fmt.Printf("created user %q with role %v\n", user.Username, user.Role)
}

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use: "blog-api",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the web server",
		Run: func(cmd *cobra.Command, args []string) {
			runWebServer()
		},
	}

	var (
		username string
		password string
		role     string
	)
	userCmd := &cobra.Command{
		Use:   "create-user",
		Short: "Create a user account",
		Run: func(cmd *cobra.Command, args []string) {
			createUser(username, password, role)
		},
	}
	userCmd.Flags().StringVarP(&username, "username", "u", "", "username of the new account")
	userCmd.Flags().StringVarP(&password, "password", "p", "", "password of the new account")
	userCmd.Flags().StringVarP(&role, "role", "r", string(model.RoleAdmin), "role of the new account (Admin or User)")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(config.GetVersion())
		},
	}

	rootCmd.AddCommand(runCmd, userCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
