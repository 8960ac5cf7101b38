package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"attendix/config"
	"attendix/database"
	"attendix/logger"
	"attendix/web"
	"attendix/web/service"

	"github.com/op/go-logging"
	"github.com/spf13/cobra"
)

// dbDSN returns the connection target for the configured driver: a file
// path for sqlite, a DSN for postgres.
func dbDSN(driver config.DBDriver) string {
	if driver == config.Postgres {
		return config.GetPostgresDSN()
	}
	return config.GetDBPath()
}

func initDB() error {
	driver := config.GetDBDriver()
	return database.InitDB(driver, dbDSN(driver))
}

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

	if err := initDB(); err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := database.CloseDB(); err != nil {
			logger.Warning("close database err:", err)
		}
		logger.CloseLogger()
	}()

	server := web.NewServer()
	if err := server.Start(); err != nil {
		log.Println(err)
		return
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGINT)
	for {
		sig := <-sigCh

		switch sig {
		case syscall.SIGHUP:
			if err := server.Stop(); err != nil {
				logger.Warning("stop server err:", err)
			}
			server = web.NewServer()
			if err := server.Start(); err != nil {
				log.Println(err)
				return
			}
		default:
			if err := server.Stop(); err != nil {
				logger.Warning("stop server err:", err)
			}
			return
		}
	}
}

func migrateDb() {
	if err := initDB(); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Migration done!")
}

func updateSetting(username string, password string) {
	if err := initDB(); err != nil {
		fmt.Println(err)
		return
	}

	if username != "" || password != "" {
		userService := service.UserService{}
		err := userService.UpdateFirstAdmin(username, password)
		if err != nil {
			fmt.Println("set username and password failed:", err)
		} else {
			fmt.Println("set username and password success")
		}
	}
}

func showSetting(show bool) {
	if !show {
		return
	}
	if err := initDB(); err != nil {
		fmt.Println(err)
		return
	}

	userService := service.UserService{}
	admin, err := userService.GetFirstAdmin()
	if err != nil {
		fmt.Println("get current admin failed, error info:", err)
		return
	}
	fmt.Println("current panel settings as follows:")
	fmt.Println("admin username:", admin.Username)
	fmt.Println("db driver:", config.GetDBDriver())
	fmt.Printf("listen: %s:%d\n", config.GetListen(), config.GetPort())
}

func main() {
	var rootCmd = &cobra.Command{
		Use: "attendix",
	}

	var runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run the web server",
		Run: func(cmd *cobra.Command, args []string) {
			runWebServer()
		},
	}

	var migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Migrate the database schema and seed bootstrap records",
		Run: func(cmd *cobra.Command, args []string) {
			migrateDb()
		},
	}

	var (
		showSettings bool
		username     string
		password     string
	)
	var settingCmd = &cobra.Command{
		Use:   "setting",
		Short: "Show or reset admin credentials",
		Run: func(cmd *cobra.Command, args []string) {
			if username != "" || password != "" {
				updateSetting(username, password)
			}
			showSetting(showSettings)
		},
	}
	settingCmd.Flags().BoolVar(&showSettings, "show", false, "Show current settings")
	settingCmd.Flags().StringVar(&username, "username", "", "Reset the first admin's username")
	settingCmd.Flags().StringVar(&password, "password", "", "Reset the first admin's password")

	rootCmd.AddCommand(runCmd, migrateCmd, settingCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
