package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/amirasaad/fxconvert/infra/initializer"
	"github.com/amirasaad/fxconvert/internal/tui"
	"github.com/amirasaad/fxconvert/pkg/app"
	"github.com/amirasaad/fxconvert/pkg/config"
	"github.com/amirasaad/fxconvert/pkg/conversion"
	"github.com/amirasaad/fxconvert/pkg/money"
	convsvc "github.com/amirasaad/fxconvert/pkg/service/conversion"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// errReported marks failures already printed to the user.
var errReported = errors.New("reported")

type rootOptions struct {
	envFile string
	stdout  io.Writer
	stderr  io.Writer

	// newService builds the conversion service; log output goes to logOut.
	newService func(envFile string, logOut io.Writer) (*convsvc.Service, error)
	isTerminal func() bool
	runTUI     func(ctx context.Context, svc *convsvc.Service) error
}

func defaultOptions(stdout, stderr io.Writer) *rootOptions {
	return &rootOptions{
		stdout:     stdout,
		stderr:     stderr,
		newService: newService,
		isTerminal: func() bool { return term.IsTerminal(int(os.Stdout.Fd())) },
		runTUI:     runTUI,
	}
}

// NewRootCommand returns the fxconvert command tree.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	return newRootCommand(defaultOptions(stdout, stderr))
}

func newRootCommand(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "fxconvert",
		Short:         "fxconvert converts amounts between currencies using live exchange rates",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !o.isTerminal() {
				return cmd.Help()
			}
			return o.startTUI(cmd.Context())
		},
	}
	cmd.SetOut(o.stdout)
	cmd.SetErr(o.stderr)
	cmd.PersistentFlags().StringVar(&o.envFile, "env-file", ".env", "path of the .env file to load")

	cmd.AddCommand(newConvertCommand(o))
	cmd.AddCommand(newCurrenciesCommand(o))
	cmd.AddCommand(newTUICommand(o))
	return cmd
}

func newConvertCommand(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "convert BASE TARGET AMOUNT",
		Short:   "convert AMOUNT from BASE to TARGET",
		Example: "  fxconvert convert CAD USD 10",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := o.newService(o.envFile, o.stderr)
			if err != nil {
				return o.fail(err.Error())
			}
			draft := conversion.Draft{Base: args[0], Target: args[1], Amount: args[2]}
			req, res, err := svc.ConvertDraft(cmd.Context(), draft)
			if err != nil {
				return o.fail(conversion.AsFailure(err).Message)
			}
			green := color.New(color.FgGreen, color.Bold)
			green.Fprintln(o.stdout, conversion.ResultLine(draft.Amount, req, res)) //nolint:errcheck
			color.New(color.FgGreen).Fprintln(o.stdout, conversion.RateLine(req, res)) //nolint:errcheck
			return nil
		},
	}
	// AMOUNT may start with '-'; it must reach validation, not the flag parser.
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func newCurrenciesCommand(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "currencies",
		Short: "list the currencies offered by the pickers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, c := range money.Supported() {
				fmt.Fprintln(o.stdout, c.Label()) //nolint:errcheck
			}
			return nil
		},
	}
}

func newTUICommand(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "run the interactive converter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.startTUI(cmd.Context())
		},
	}
}

func (o *rootOptions) startTUI(ctx context.Context) error {
	svc, err := o.newService(o.envFile, io.Discard)
	if err != nil {
		return o.fail(err.Error())
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return o.runTUI(ctx, svc)
}

func (o *rootOptions) fail(msg string) error {
	color.New(color.FgRed).Fprintln(o.stderr, msg) //nolint:errcheck
	return errReported
}

func newService(envFile string, logOut io.Writer) (*convsvc.Service, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load application configuration: %w", err)
	}
	deps, err := initializer.InitializeDependenciesWithOutput(cfg, logOut)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	return app.New(deps, cfg).ConversionService, nil
}

func runTUI(ctx context.Context, svc *convsvc.Service) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	p := tea.NewProgram(tui.New(ctx, svc), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
