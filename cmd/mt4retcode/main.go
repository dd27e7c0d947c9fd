package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

var Version = "dev"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "mt4retcode"
	app.Usage = "Translate MT4 manager return codes into readable messages"
	app.Version = Version

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "config-dir",
			Value:  "./configs",
			Usage:  "directory holding retcode_<APP_ENV>.yaml",
			EnvVar: "MT4_CONFIG_DIR",
		},
		cli.StringFlag{
			Name:  "locale",
			Usage: "message locale: zh-CN | en (overrides config)",
		},
	}

	app.Commands = []cli.Command{
		lookupCMD,
		listCMD,
		publishCMD,
		reportCMD,
	}
	return app
}

var (
	lookupCMD = cli.Command{
		Name:        "lookup",
		Usage:       "resolve one or more return codes",
		Action:      lookupAction,
		ArgsUsage:   "CODE [CODE...]",
		Description: `Print code, symbol and message for every CODE. Unknown codes print the fallback message.`,
	}
	listCMD = cli.Command{
		Name:   "list",
		Usage:  "list the code table",
		Action: listAction,
		Flags: []cli.Flag{
			cli.BoolFlag{Name: "reserved", Usage: "list reserved (unmapped) codes instead"},
		},
	}
	publishCMD = cli.Command{
		Name:        "publish",
		Usage:       "publish the code table to the Redis catalog",
		Action:      publishAction,
		Description: `Write one hash per configured locale so display layers can read messages from Redis.`,
	}
	reportCMD = cli.Command{
		Name:      "report",
		Usage:     "publish a return code to the Kafka result feed",
		Action:    reportAction,
		ArgsUsage: "CODE",
		Flags: []cli.Flag{
			cli.StringFlag{Name: "op", Value: "manual", Usage: "MT4 operation that produced the code"},
			cli.IntFlag{Name: "login", Usage: "MT4 account login"},
		},
	}
)

func logCmd(name string) *logrus.Entry {
	return logrus.WithField("cmd", name)
}
