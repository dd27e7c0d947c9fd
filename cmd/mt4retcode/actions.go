package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli"

	"github.com/Goden-Gun/mt4-retcode/pkg/bootstrap"
	"github.com/Goden-Gun/mt4-retcode/pkg/codes"
	"github.com/Goden-Gun/mt4-retcode/pkg/logger"
	"github.com/Goden-Gun/mt4-retcode/pkg/tracing"
)

func initLogger(cfg *Config) error {
	return bootstrap.InitLoggerWithOptions(cfg.Log, bootstrap.LoggerOptions{
		ServiceName:      "mt4retcode",
		AddContainerHook: cfg.App.NodeID != "",
		Resolver:         cfg.Retcode.Resolver(),
	})
}

func parseCode(s string) (int, error) {
	code, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid return code %q: %w", s, err)
	}
	return code, nil
}

func writeRow(w io.Writer, code int, msg string) {
	line := fmt.Sprintf("%d\t%s\t%s", code, codes.Code(code).String(), msg)
	if codes.IsReserved(code) {
		line += "\t(reserved)"
	}
	_, _ = fmt.Fprintln(w, line)
}

func lookupAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("lookup: at least one CODE is required")
	}
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	r := cfg.Retcode.Resolver()
	for _, arg := range c.Args() {
		code, err := parseCode(arg)
		if err != nil {
			return err
		}
		writeRow(c.App.Writer, code, r.Resolve(code))
	}
	return nil
}

func listAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	r := cfg.Retcode.Resolver()
	entries := r.Entries()
	if c.Bool("reserved") {
		entries = codes.ReservedEntries(r.Locale())
	}
	for _, e := range entries {
		writeRow(c.App.Writer, int(e.Numeric), e.Message)
	}
	return nil
}

func publishAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	if err := initLogger(cfg); err != nil {
		return err
	}
	log := logCmd("publish")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := bootstrap.InitRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer client.Close()

	store := bootstrap.InitCatalog(client, cfg.Catalog)
	configured := codes.ParseLocale(cfg.Retcode.Locale)
	for _, l := range cfg.Catalog.Locales {
		locale := codes.ParseLocale(l)
		// 覆盖文案只作用于配置的语言
		r := codes.NewResolver(locale)
		if locale == configured {
			r = cfg.Retcode.Resolver()
		}
		if err := store.Publish(ctx, r); err != nil {
			log.WithError(err).Error("publish catalog")
			return err
		}
	}
	return nil
}

func reportAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("report: exactly one CODE is required")
	}
	code, err := parseCode(c.Args().First())
	if err != nil {
		return err
	}
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	if err := initLogger(cfg); err != nil {
		return err
	}
	log := logCmd("report")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	shutdown, err := bootstrap.InitTracing(ctx, cfg.Tracing)
	if err != nil {
		log.WithError(err).Warn("tracing disabled")
	} else {
		defer func() { _ = shutdown(context.Background()) }()
	}

	r := cfg.Retcode.Resolver()
	manager, reporter, err := bootstrap.InitReporter(cfg.Kafka, r)
	if err != nil {
		return err
	}
	defer manager.Close()

	op := c.String("op")
	ctx, span := tracing.Start(ctx, op)
	defer span.End()
	tracing.RecordRetcode(span, r, code)

	sent, err := reporter.Report(ctx, op, c.Int("login"), code)
	if err != nil {
		log.WithError(err).Error("report failed")
		return err
	}
	logger.WithTrace(ctx).WithFields(logger.RetcodeFields(r, code)).WithField("sent", sent).Info("report done")
	if sent {
		_, _ = fmt.Fprintln(c.App.Writer, "sent")
	} else {
		_, _ = fmt.Fprintln(c.App.Writer, "skipped: success code")
	}
	return nil
}
