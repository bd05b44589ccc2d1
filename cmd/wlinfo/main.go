// Command wlinfo connects to a compositor and prints the advertised globals
// that this client recognizes and binds, keyed by Go handle name; globals of
// unrecognized interfaces are not listed.
package main

import (
	"fmt"
	"os"

	"github.com/op/go-logging"
	"github.com/urfave/cli"

	"github.com/bnema/gowl/client"
	"github.com/bnema/gowl/internal/gwlog"
)

type nullState struct{}

func main() {
	app := cli.NewApp()
	app.Name = "wlinfo"
	app.Usage = "dump the Wayland globals this client recognizes and binds"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "debug",
			Usage: "log at debug level instead of info",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	level := logging.INFO
	if c.Bool("debug") {
		level = logging.DEBUG
	}
	gwlog.Setup(level)

	wl, err := client.Connect(nullState{})
	if err != nil {
		return fmt.Errorf("wlinfo: %w", err)
	}
	defer wl.Close()

	for goName, id := range wl.Globals() {
		fmt.Printf("%-16s object=%d\n", goName, id)
	}
	return nil
}
