// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// rfpCommand handles RFP record operations
func rfpCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "rfp",
		Usage: "RFP record operations",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List all RFP records",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Output format: text, csv, or markdown",
						Value:   "text",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Write output to a file instead of stdout",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.RFPList,
			},
			{
				Name:  "get",
				Usage: "Fetch a single RFP record",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "id",
					},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.RFPGet,
			},
			{
				Name:  "add",
				Usage: "Create a new RFP record",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "carrier",
						Usage:    "Carrier name",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "employees",
						Usage: "Employee count",
					},
					&cli.StringFlag{
						Name:  "misc",
						Usage: "Free-form notes",
					},
					&cli.StringFlag{
						Name:  "date",
						Usage: "Submission date (YYYY-MM-DD), defaults to now",
					},
				},
				Action: r.RFPAdd,
			},
			{
				Name:  "edit",
				Usage: "Update an existing RFP record",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "id",
					},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "carrier",
						Usage: "Carrier name",
					},
					&cli.IntFlag{
						Name:  "employees",
						Usage: "Employee count",
					},
					&cli.StringFlag{
						Name:  "misc",
						Usage: "Free-form notes",
					},
					&cli.StringFlag{
						Name:  "date",
						Usage: "Submission date (YYYY-MM-DD)",
					},
				},
				Action: r.RFPEdit,
			},
			{
				Name:  "delete",
				Usage: "Delete an RFP record",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "id",
					},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "yes",
						Aliases: []string{"y"},
						Usage:   "Skip the confirmation prompt",
					},
				},
				Action: r.RFPDelete,
			},
		},
	}
}

// serveCommand runs the bundled reference server
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the reference /rfps server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
			&cli.StringFlag{
				Name:  "host",
				Usage: "Host to bind, overrides config",
			},
			&cli.IntFlag{
				Name:  "port",
				Usage: "Port to bind, overrides config",
			},
		},
		Action: r.Serve,
	}
}

// setupCommand initializes the config file and server database
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Initialize database and run migrations",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
		},
		Action: r.Setup,
	}
}

// tuiCommand launches the interactive terminal UI
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"ui"},
		Usage:   "Browse and edit RFP records interactively",
		Action:  r.TUI,
	}
}
