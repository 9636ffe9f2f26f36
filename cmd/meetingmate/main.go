package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hrygo/meetingmate/internal/profile"
	"github.com/hrygo/meetingmate/pkg/client"
	"github.com/hrygo/meetingmate/server"
	"github.com/hrygo/meetingmate/server/interpreter"
	"github.com/hrygo/meetingmate/store"
	"github.com/hrygo/meetingmate/store/db"
)

const (
	greetingBanner = `Hi! I'm your meeting assistant. I can help you schedule, cancel meetings, and add notes. Just tell me what you need in natural language!`
)

var (
	version = "0.1.0"

	rootCmd = &cobra.Command{
		Use:   "meetingmate",
		Short: "A chat-driven meeting scheduler",
		RunE: func(_ *cobra.Command, _ []string) error {
			instanceProfile := &profile.Profile{
				Mode:    viper.GetString("mode"),
				Addr:    viper.GetString("addr"),
				Port:    viper.GetInt("port"),
				Data:    viper.GetString("data"),
				Driver:  viper.GetString("driver"),
				DSN:     viper.GetString("dsn"),
				Version: version,
			}
			instanceProfile.FromEnv()
			if err := instanceProfile.Validate(); err != nil {
				return fmt.Errorf("failed to validate profile: %w", err)
			}

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
			slog.SetDefault(logger)

			dbDriver, err := db.NewDBDriver(instanceProfile)
			if err != nil {
				return fmt.Errorf("failed to create db driver: %w", err)
			}
			if err := dbDriver.Migrate(ctx); err != nil {
				return fmt.Errorf("failed to migrate db: %w", err)
			}

			storeInstance := store.New(dbDriver, instanceProfile)
			s, err := server.NewServer(ctx, instanceProfile, storeInstance, logger)
			if err != nil {
				return fmt.Errorf("failed to create server: %w", err)
			}

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			go func() {
				sig := <-sigChan
				logger.Info("received signal, shutting down", slog.String("signal", sig.String()))
				s.Shutdown(ctx)
				cancel()
			}()

			return s.Start(ctx)
		},
	}

	chatCmd = &cobra.Command{
		Use:   "chat",
		Short: "Interactive chat with a running meetingmate server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			serverURL, err := cmd.Flags().GetString("server-url")
			if err != nil {
				return err
			}

			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
			storeClient := client.NewClient(serverURL)
			interp := interpreter.New(logger)

			ctx := cmd.Context()
			snapshot, err := storeClient.ListMeetings(ctx)
			if err != nil {
				return fmt.Errorf("failed to reach server at %s: %w", serverURL, err)
			}

			fmt.Println(greetingBanner)
			scanner := bufio.NewScanner(os.Stdin)
			for {
				fmt.Print("> ")
				if !scanner.Scan() {
					break
				}
				utterance := strings.TrimSpace(scanner.Text())
				if utterance == "" {
					continue
				}
				if utterance == "exit" || utterance == "quit" {
					break
				}

				result := interp.Interpret(ctx, utterance, time.Now(), snapshot, storeClient)
				snapshot = result.Snapshot
				fmt.Println(result.Reply)
			}
			return scanner.Err()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().String("mode", "demo", `mode of server, can be "prod" or "dev" or "demo"`)
	rootCmd.PersistentFlags().String("addr", "", "address of server")
	rootCmd.PersistentFlags().Int("port", 8081, "port of server")
	rootCmd.PersistentFlags().String("data", "", "data directory")
	rootCmd.PersistentFlags().String("driver", "sqlite", "database driver")
	rootCmd.PersistentFlags().String("dsn", "", "database source name (aka. DSN)")

	if err := viper.BindPFlag("mode", rootCmd.PersistentFlags().Lookup("mode")); err != nil {
		panic(err)
	}
	if err := viper.BindPFlag("addr", rootCmd.PersistentFlags().Lookup("addr")); err != nil {
		panic(err)
	}
	if err := viper.BindPFlag("port", rootCmd.PersistentFlags().Lookup("port")); err != nil {
		panic(err)
	}
	if err := viper.BindPFlag("data", rootCmd.PersistentFlags().Lookup("data")); err != nil {
		panic(err)
	}
	if err := viper.BindPFlag("driver", rootCmd.PersistentFlags().Lookup("driver")); err != nil {
		panic(err)
	}
	if err := viper.BindPFlag("dsn", rootCmd.PersistentFlags().Lookup("dsn")); err != nil {
		panic(err)
	}

	viper.SetDefault("mode", "demo")
	viper.SetDefault("driver", "sqlite")
	viper.SetDefault("port", 8081)
	viper.SetEnvPrefix("meetingmate")
	viper.AutomaticEnv()

	chatCmd.Flags().String("server-url", "http://localhost:8081", "base URL of the meetingmate server")
	rootCmd.AddCommand(chatCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
