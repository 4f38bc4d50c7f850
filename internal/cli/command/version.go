package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/snaptree-go/internal/cli/output"
	"github.com/yndnr/snaptree-go/internal/infra/buildinfo"
)

// VersionCommand returns the version command.
func VersionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Show build information",
		Action: func(c *cli.Context) error {
			if _, ok := formatter(c).(*output.TableFormatter); ok {
				_, err := fmt.Fprintf(outWriter(c), "snaptree %s\n", buildinfo.String())
				return err
			}
			return formatter(c).Format(outWriter(c), buildinfo.Get())
		},
	}
}
