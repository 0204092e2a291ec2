package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Elzoidbergo/HostPilot/internal/client/lodgify"
	"github.com/Elzoidbergo/HostPilot/internal/config"
)

const webhookPath = "/webhooks/lodgify"

func webhooksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "webhooks",
		Short: "Manage Lodgify webhook subscriptions",
	}

	cmd.AddCommand(webhooksSubscribeCmd())
	cmd.AddCommand(webhooksListCmd())
	cmd.AddCommand(webhooksUnsubscribeCmd())

	return cmd
}

func newLodgifyClient() (*lodgify.Client, config.CLIConfig, error) {
	cfg, err := config.ReadCLI()
	if err != nil {
		return nil, config.CLIConfig{}, fmt.Errorf("failed to read config: %w", err)
	}

	client := lodgify.New(cfg.Lodgify.APIKey, lodgify.WithBaseURL(cfg.Lodgify.BaseURL))
	return client, cfg, nil
}

func webhooksSubscribeCmd() *cobra.Command {
	var (
		event     string
		targetURL string
		all       bool
	)

	cmd := &cobra.Command{
		Use:   "subscribe",
		Short: "Subscribe to Lodgify webhook events",
		Long:  "Points a Lodgify webhook subscription at this service's ingestion endpoint.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			client, cfg, err := newLodgifyClient()
			if err != nil {
				return err
			}

			if targetURL == "" {
				if cfg.WebhookBaseURL == "" {
					return fmt.Errorf("no target URL: set --target-url or WEBHOOK_BASE_URL")
				}
				targetURL = strings.TrimRight(cfg.WebhookBaseURL, "/") + webhookPath
			}

			if all {
				g, ctx := errgroup.WithContext(ctx)
				for _, ev := range lodgify.EventTypes() {
					g.Go(func() error {
						sub, err := client.Webhook.Subscribe(ctx, lodgify.SubscribeParams{Event: ev, TargetURL: targetURL})
						if err != nil {
							return fmt.Errorf("subscribe %s: %w", ev, err)
						}
						fmt.Printf("Subscribed to %s (id=%s)\n", ev, sub.ID)
						return nil
					})
				}
				if err := g.Wait(); err != nil {
					return err
				}
				fmt.Printf("Target: %s\n", targetURL)
				return nil
			}

			if event == "" {
				return fmt.Errorf("either --event or --all is required")
			}

			ev, ok := lodgify.ParseEventType(event)
			if !ok {
				return fmt.Errorf("unknown event %q (valid: %s)", event, eventTypeList())
			}

			sub, err := client.Webhook.Subscribe(ctx, lodgify.SubscribeParams{Event: ev, TargetURL: targetURL})
			if err != nil {
				return fmt.Errorf("failed to subscribe: %w", err)
			}

			fmt.Printf("Subscribed to %s (id=%s)\n", ev, sub.ID)
			fmt.Printf("Target: %s\n", targetURL)
			return nil
		},
	}

	cmd.Flags().StringVar(&event, "event", "", "event to subscribe to, e.g. booking_change")
	cmd.Flags().StringVar(&targetURL, "target-url", "", "delivery URL (default: WEBHOOK_BASE_URL + "+webhookPath+")")
	cmd.Flags().BoolVar(&all, "all", false, "subscribe to every supported event")

	return cmd
}

func webhooksListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List active webhook subscriptions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			client, _, err := newLodgifyClient()
			if err != nil {
				return err
			}

			subs, err := client.Webhook.List(ctx)
			if err != nil {
				return fmt.Errorf("failed to list subscriptions: %w", err)
			}

			if len(subs) == 0 {
				fmt.Println("No active subscriptions")
				return nil
			}

			for _, sub := range subs {
				fmt.Printf("%-38s %-24s %s\n", sub.ID, sub.Event, sub.TargetURL)
			}
			return nil
		},
	}
}

func webhooksUnsubscribeCmd() *cobra.Command {
	var (
		id  string
		all bool
	)

	cmd := &cobra.Command{
		Use:   "unsubscribe",
		Short: "Remove webhook subscriptions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			client, _, err := newLodgifyClient()
			if err != nil {
				return err
			}

			if all {
				subs, err := client.Webhook.List(ctx)
				if err != nil {
					return fmt.Errorf("failed to list subscriptions: %w", err)
				}
				if len(subs) == 0 {
					fmt.Println("No active subscriptions")
					return nil
				}

				g, ctx := errgroup.WithContext(ctx)
				for _, sub := range subs {
					g.Go(func() error {
						if err := client.Webhook.Unsubscribe(ctx, sub.ID); err != nil {
							return fmt.Errorf("unsubscribe %s: %w", sub.ID, err)
						}
						fmt.Printf("Removed %s (%s)\n", sub.ID, sub.Event)
						return nil
					})
				}
				return g.Wait()
			}

			if id == "" {
				return fmt.Errorf("either --id or --all is required")
			}

			if err := client.Webhook.Unsubscribe(ctx, id); err != nil {
				return fmt.Errorf("failed to unsubscribe: %w", err)
			}

			fmt.Printf("Removed %s\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "subscription id to remove")
	cmd.Flags().BoolVar(&all, "all", false, "remove every active subscription")

	return cmd
}

func eventTypeList() string {
	types := lodgify.EventTypes()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
