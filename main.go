package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/tournevent/transdirect/pkg/transdirect"
)

var version = "0.0.1"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "transdirect",
	Short:   "Typed client for the Transdirect freight-booking API",
	Version: version,
}

var memberCmd = &cobra.Command{
	Use:   "member",
	Short: "Verify credentials and print the member profile",
	RunE:  runMember,
}

var quoteCmd = &cobra.Command{
	Use:   "quote [request.json]",
	Short: "Submit a booking request and print the quoted booking",
	Long: `Submit a booking request read from the given file (or stdin) and print
the resulting booking record, including competing carrier quotes.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runQuote,
}

var bookingCmd = &cobra.Command{
	Use:   "booking <id>...",
	Short: "Fetch one or more bookings by id",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runBooking,
}

func init() {
	rootCmd.AddCommand(memberCmd)
	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(bookingCmd)
}

func runMember(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := initApp(ctx)
	if err != nil {
		return err
	}
	defer a.shutdown(ctx)

	start := time.Now()
	member, err := a.client.Member(ctx)
	a.record("member", err, time.Since(start))
	if err != nil {
		return err
	}

	return printJSON(cmd.OutOrStdout(), member)
}

func runQuote(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var in io.Reader = cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening booking request: %w", err)
		}
		defer f.Close()
		in = f
	}

	var req transdirect.BookingRequest[uint32, float64]
	if err := json.NewDecoder(in).Decode(&req); err != nil {
		return fmt.Errorf("reading booking request: %w", err)
	}

	a, err := initApp(ctx)
	if err != nil {
		return err
	}
	defer a.shutdown(ctx)

	start := time.Now()
	resp, err := transdirect.Quotes(ctx, a.client, &req)
	a.record("quotes", err, time.Since(start))
	if err != nil {
		return err
	}

	return printJSON(cmd.OutOrStdout(), resp)
}

func runBooking(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	ids, err := parseBookingIDs(args)
	if err != nil {
		return err
	}

	a, err := initApp(ctx)
	if err != nil {
		return err
	}
	defer a.shutdown(ctx)

	start := time.Now()
	bookings, errs := transdirect.GetBookings[uint32, float64](ctx, a.client, ids...)
	var firstErr error
	if len(errs) > 0 {
		firstErr = errs[0]
	}
	a.record("booking", firstErr, time.Since(start))

	for _, b := range bookings {
		if b == nil {
			continue
		}
		if err := printJSON(cmd.OutOrStdout(), b); err != nil {
			return err
		}
	}

	return firstErr
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
