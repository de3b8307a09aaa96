package commands

import (
	"fmt"
	"log/slog"
	"os"

	env "github.com/Netflix/go-env"
	"github.com/spf13/cobra"

	"signalrest/client"
	"signalrest/domain"
)

var (
	serverURL string
	number    string
	logLevel  string

	cl *client.Client
)

// envConfig defines the environment variables flags fall back to.
type envConfig struct {
	ServerURL string `env:"SIGNAL_API_URL,default=http://localhost:8080"`
	Number    string `env:"SIGNAL_NUMBER"`
	LogLevel  string `env:"LOG_LEVEL,default=info"`
}

func Execute() error {
	root := &cobra.Command{
		Use:   "signalctl",
		Short: "Drive a signal-cli-rest-api relay from the command line",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var config envConfig
			if _, err := env.UnmarshalFromEnviron(&config); err != nil {
				return fmt.Errorf("config error: %w", err)
			}
			if serverURL == "" {
				serverURL = config.ServerURL
			}
			if number == "" {
				number = config.Number
			}
			if logLevel == "" {
				logLevel = config.LogLevel
			}

			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: parseLevel(logLevel),
			}))

			var err error
			cl, err = client.New(client.Config{
				ServerURL: serverURL,
				Number:    number,
				Logger:    logger,
			})
			return err
		},
	}

	root.PersistentFlags().StringVar(&serverURL, "server", "", "relay base URL (default $SIGNAL_API_URL)")
	root.PersistentFlags().StringVarP(&number, "number", "n", "", "account number in E.164 form (default $SIGNAL_NUMBER)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		sendCmd(),
		receiveCmd(),
		groupsCmd(),
		identitiesCmd(),
		contactsCmd(),
		attachmentsCmd(),
		profileCmd(),
		aboutCmd(),
	)
	return root.Execute()
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// report renders an operation result: success and partial failures go to
// stdout, an outright failure becomes the command's error.
func report[T any](res domain.Result[T]) error {
	switch res.Status {
	case domain.StatusSuccess:
		fmt.Println("ok")
		return nil
	case domain.StatusPartial:
		fmt.Println("partial:")
		for _, f := range res.Failures {
			fmt.Printf("  [%d] %s: %s\n", f.Index, f.Recipient, f.Reason.Message)
		}
		return nil
	default:
		return fmt.Errorf("%s: %s", res.Reason.Kind, res.Reason.Message)
	}
}
