package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vietanh2810/eventpass-api/internal/config"
	"github.com/vietanh2810/eventpass-api/internal/i18n"
	"github.com/vietanh2810/eventpass-api/internal/scanner"
)

const resolveTimeout = 10 * time.Second

func scanCmd(configPath *string) *cobra.Command {
	var framesDir, text, apiURL, scannedBy string

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Run the door scanner against the API",
		Long: `Run the door scanner against the API.

With --frames the scanner replays the images of a directory as camera frames,
resolving every QR code it finds. With --text it resolves one decoded payload
and exits.

Examples:
  eventpass scan --frames ./captures
  eventpass scan --text '{"id":"6f1c..."}'
  eventpass scan --text https://example.org/qr-display/6f1c...`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if (framesDir == "") == (text == "") {
				return errors.New("exactly one of --frames or --text is required")
			}

			conf, err := setup(*configPath)
			if err != nil {
				return err
			}
			if apiURL == "" {
				apiURL = conf.Scanner.APIURL
			}

			resolver := scanner.NewAPIResolver(apiURL, conf.Scanner.Locale, scannedBy, conf.Scanner.DeviceInfo, resolveTimeout)
			out := cmd.OutOrStdout()

			if text != "" {
				res, err := resolver.Resolve(cmd.Context(), text)
				if err != nil {
					return fmt.Errorf("resolver.Resolve -> %w", err)
				}
				printResolution(out, res)
				return nil
			}

			return runScanner(cmd.Context(), *configPath, conf.Scanner, framesDir, resolver, out)
		},
	}

	cmd.Flags().StringVar(&framesDir, "frames", "", "directory of PNG/JPEG frames to replay")
	cmd.Flags().StringVar(&text, "text", "", "already decoded QR text to resolve once")
	cmd.Flags().StringVar(&apiURL, "api-url", "", "API base URL (defaults to scanner.api_url)")
	cmd.Flags().StringVar(&scannedBy, "scanned-by", "", "operator name recorded with each scan")

	return cmd
}

func runScanner(ctx context.Context, configPath string, conf *config.ScannerConfig, dir string, resolver scanner.Resolver, out io.Writer) error {
	camera, err := scanner.NewDirCamera(dir)
	if err != nil {
		return err
	}

	tr := i18n.NewTranslator(conf.Locale)

	flow := scanner.NewFlow(camera, scanner.QRDecoder, resolver, func(t scanner.Transition) {
		switch t.To {
		case scanner.Scanning:
			fmt.Fprintln(out, tr.T(conf.Locale, i18n.KeyScanScanning, nil))
		case scanner.Resolving:
			fmt.Fprintln(out, tr.T(conf.Locale, i18n.KeyScanResolving, nil))
		case scanner.Resolved:
			printResolution(out, *t.Resolution)
		case scanner.Rejected:
			fmt.Fprintln(out, tr.T(conf.Locale, i18n.KeyScanFailed, map[string]any{"Reason": t.Err.Error()}))
		}
		zap.L().Debug("scanner transition",
			zap.Stringer("from", t.From),
			zap.Stringer("to", t.To),
		)
	}, scanner.Options{
		FrameInterval: conf.FrameInterval,
		ResolvedDwell: conf.ResolvedDwell,
		RejectedDwell: conf.RejectedDwell,
	})

	config.Watch(configPath, func(next *config.AppConfig) {
		flow.SetDwell(next.Scanner.ResolvedDwell, next.Scanner.RejectedDwell)
		zap.L().Info("scanner dwell updated",
			zap.Duration("resolved", next.Scanner.ResolvedDwell),
			zap.Duration("rejected", next.Scanner.RejectedDwell),
		)
	})

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = flow.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func printResolution(out io.Writer, res scanner.Resolution) {
	fmt.Fprintf(out, "%-9s %s  paid %s / %s  pending %s  (%s)\n",
		res.StatusLabel,
		res.FullName,
		res.PaidAmount.StringFixed(2),
		res.TotalAmount.StringFixed(2),
		res.PendingAmount.StringFixed(2),
		res.ResolvedVia,
	)
	if res.Message != "" {
		fmt.Fprintln(out, res.Message)
	}
}
