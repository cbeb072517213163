package main

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tbessler/pocketchess/internal/config"
	"github.com/tbessler/pocketchess/internal/controller"
	"github.com/tbessler/pocketchess/internal/middleware"
	"github.com/tbessler/pocketchess/internal/service"
)

var (
	cfgPath string
	addr    string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "pocketchess-server",
	Short: "Chess backend with a built-in engine opponent",
	RunE:  run,
}

func main() {
	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "", "path to YAML config file")
	rootCmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Addr = addr
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, X-Player-ID",
		AllowMethods:     "GET, POST, OPTIONS",
		AllowCredentials: true,
	}))

	gameManager := service.NewGameManager(cfg)
	gameService := service.NewGameService(gameManager)

	gameController := controller.NewGameController(gameService, cfg.DefaultDifficulty)
	wsController := controller.NewWebSocketController(gameService)

	app.Use("/ws/*", middleware.EnsurePlayerID())
	app.Get("/ws/game/:gameId", middleware.WebSocketUpgrade(), websocket.New(func(c *websocket.Conn) {
		wsController.HandleConnection(c)
	}, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		Origins:         []string{cfg.AllowOrigins},
	}))

	api := app.Group("/api", middleware.EnsurePlayerID())

	gameRoutes := api.Group("/game")
	gameRoutes.Post("/create", gameController.CreateGame)
	gameRoutes.Get("/:gameId", gameController.GetGameState)
	gameRoutes.Get("/:gameId/moves", gameController.GetLegalMoves)
	gameRoutes.Get("/:gameId/eval", gameController.GetEvaluation)

	log.Info().Str("addr", cfg.Addr).Msg("starting server")
	return app.Listen(cfg.Addr)
}
