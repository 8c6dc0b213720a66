package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/Lixing-Zhang/restaurant-console/internal/service"
)

var errInputClosed = errors.New("input closed")

// Options configures a Session
type Options struct {
	Policy      service.PricingPolicy
	Offer       service.TeaOffer
	InvoicePath string
	AdminPIN    string
}

// Session is one run of the interactive console.
// It owns the reader and writer; the catalog is shared through the services.
type Session struct {
	in          *bufio.Scanner
	out         io.Writer
	menu        *service.MenuService
	admin       *service.AdminService
	policy      service.PricingPolicy
	offer       service.TeaOffer
	invoicePath string
	adminPIN    string
	log         *slog.Logger
}

// NewSession creates a session reading commands from in and writing to out
func NewSession(in io.Reader, out io.Writer, menu *service.MenuService, admin *service.AdminService, opts Options, log *slog.Logger) *Session {
	return &Session{
		in:          bufio.NewScanner(in),
		out:         out,
		menu:        menu,
		admin:       admin,
		policy:      opts.Policy,
		offer:       opts.Offer,
		invoicePath: opts.InvoicePath,
		adminPIN:    opts.AdminPIN,
		log:         log,
	}
}

// Run drives the top-level menu until the user exits, a customer order is
// completed, or input runs out. Running out of input is not an error.
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		writeBanner(s.out, "WELCOME TO OUR RESTAURANT")
		fmt.Fprintln(s.out, "1. Customer")
		fmt.Fprintln(s.out, "2. Admin")
		fmt.Fprintln(s.out, "0. Exit")
		fmt.Fprintf(s.out, "%s\n\n", rule)
		fmt.Fprintln(s.out, "Please enter your choice (1 for Customer, 2 for Admin, 0 for Exit):")

		choice, err := s.readLine()
		if err != nil {
			return s.finish(err)
		}

		switch choice {
		case "0":
			writeBanner(s.out, "THANK YOU FOR VISITING OUR RESTAURANT")
			return nil
		case "1":
			completed, err := s.runCustomer(ctx)
			if err != nil {
				return s.finish(err)
			}
			if completed {
				return nil
			}
		case "2":
			if err := s.runAdmin(ctx); err != nil {
				return s.finish(err)
			}
		default:
			writeNotice(s.out, "Invalid choice. Please try again.")
		}
	}
}

func (s *Session) finish(err error) error {
	if errors.Is(err, errInputClosed) {
		s.log.Info("input closed, ending session")
		return nil
	}
	return err
}

func (s *Session) readLine() (string, error) {
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(s.in.Text()), nil
}

// confirm prints prompt and reports whether the answer was yes
func (s *Session) confirm(prompt string) (bool, error) {
	fmt.Fprintln(s.out, prompt)
	answer, err := s.readLine()
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "yes"), nil
}
