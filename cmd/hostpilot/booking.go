package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func bookingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "booking <id>",
		Short: "Fetch a booking from Lodgify",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("booking id must be an integer, got %q", args[0])
			}

			client, _, err := newLodgifyClient()
			if err != nil {
				return err
			}

			booking, err := client.Booking.Get(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to fetch booking: %w", err)
			}

			fmt.Printf("Booking %d\n", booking.ID)
			fmt.Printf("  Status:   %s\n", booking.Status)
			fmt.Printf("  Property: %s (id=%d)\n", booking.PropertyName, booking.PropertyID)
			fmt.Printf("  Stay:     %s → %s\n", booking.Arrival, booking.Departure)
			if booking.Guest != nil {
				fmt.Printf("  Guest:    %s", booking.Guest.Name)
				if booking.Guest.Email != "" {
					fmt.Printf(" <%s>", booking.Guest.Email)
				}
				fmt.Println()
			}
			for _, room := range booking.Rooms {
				fmt.Printf("  Room:     %s (type=%d, people=%d)\n", room.Name, room.RoomTypeID, room.People)
			}
			if booking.CurrencyCode != "" {
				fmt.Printf("  Total:    %.2f %s (paid %.2f, due %.2f)\n",
					booking.TotalAmount, booking.CurrencyCode, booking.AmountPaid, booking.AmountDue)
			}

			return nil
		},
	}
}
