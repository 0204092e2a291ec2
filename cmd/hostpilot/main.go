package main

import (
	"context"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Elzoidbergo/HostPilot/internal/version"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:     "hostpilot",
		Short:   "Manage Lodgify webhook subscriptions and bookings",
		Version: version.Get(),
	}

	rootCmd.AddCommand(webhooksCmd())
	rootCmd.AddCommand(bookingCmd())

	if err := fang.Execute(context.Background(), rootCmd, fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM)); err != nil {
		os.Exit(1)
	}
}
