package main

import (
	"github.com/urfave/cli"
)

func commands() []cli.Command {
	idFlag := func(usage string) cli.Flag {
		return cli.Uint64Flag{
			Name:  "id, i",
			Value: 0,
			Usage: "*" + usage + " `ENTITY_ID`",
		}
	}
	limitFlags := func(limit int) []cli.Flag {
		return []cli.Flag{
			cli.IntFlag{
				Name:  "limit, l",
				Value: limit,
				Usage: " maximum records to output `COUNT`",
			},
			cli.IntFlag{
				Name:  "offset, o",
				Value: 0,
				Usage: " records to skip `COUNT`",
			},
		}
	}

	return []cli.Command{
		{
			Name:      "realm",
			Usage:     "display a realm",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{idFlag("realm")},
			Action:    runRealm,
		},
		{
			Name:      "explorer",
			Usage:     "display an explorer army",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{idFlag("explorer")},
			Action:    runExplorer,
		},
		{
			Name:  "map",
			Usage: "display everything within a square around a point",
			Flags: []cli.Flag{
				cli.Int64Flag{
					Name:  "x",
					Value: 0,
					Usage: " center column `X`",
				},
				cli.Int64Flag{
					Name:  "y",
					Value: 0,
					Usage: " center row `Y`",
				},
				cli.Int64Flag{
					Name:  "radius, r",
					Value: 5,
					Usage: " half-width of the square `TILES`",
				},
			},
			Action: runMapArea,
		},
		{
			Name:   "market",
			Usage:  "display recent swaps across all banks",
			Action: runMarket,
		},
		{
			Name:      "bank",
			Usage:     "display a bank",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{idFlag("bank")},
			Action:    runBank,
		},
		{
			Name:      "player",
			Usage:     "display what an address owns and its rank",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: " player `ADDRESS` default is the connected account",
				},
			},
			Action: runPlayer,
		},
		{
			Name:      "hyperstructure",
			Usage:     "display a hyperstructure",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{idFlag("hyperstructure")},
			Action:    runHyperstructure,
		},
		{
			Name:   "leaderboard",
			Usage:  "display one page of the leaderboard",
			Flags:  limitFlags(10),
			Action: runLeaderboard,
		},
		{
			Name:  "events",
			Usage: "display one page of the story event feed",
			Flags: append([]cli.Flag{
				cli.Uint64Flag{
					Name:  "entity, e",
					Value: 0,
					Usage: " only events involving `ENTITY_ID`",
				},
				cli.StringFlag{
					Name:  "owner",
					Value: "",
					Usage: " only events of `ADDRESS` (ignored with --entity)",
				},
				cli.Int64Flag{
					Name:  "since",
					Value: 0,
					Usage: " only events at or after unix `SECONDS`",
				},
			}, limitFlags(50)...),
			Action: runEvents,
		},
		{
			Name:  "bench",
			Usage: "read realm views concurrently and report cache counters",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "goroutines, g",
					Value: 50,
					Usage: " concurrent readers `COUNT`",
				},
				cli.IntFlag{
					Name:  "ops, n",
					Value: 200,
					Usage: " reads per reader `COUNT`",
				},
				cli.IntFlag{
					Name:  "entities, k",
					Value: 20,
					Usage: " distinct realm ids read `COUNT`",
				},
			},
			Action: runBench,
		},
		{
			Name:  "watch",
			Usage: "apply invalidations from the indexer update feed until interrupted",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "updates, u",
					Value: "",
					Usage: " websocket feed `URL` (overrides TORII_UPDATES_URL)",
				},
				cli.StringFlag{
					Name:  "metrics-addr, m",
					Value: "",
					Usage: " serve prometheus metrics on `HOST:PORT`",
				},
				cli.IntFlag{
					Name:  "queue, q",
					Value: 1024,
					Usage: " pending invalidations before dropping `COUNT`",
				},
			},
			Action: runWatch,
		},
		{
			Name:  "version",
			Usage: "display viewctl version",
			Action: func(c *cli.Context) error {
				c.App.Writer.Write([]byte(version + "\n"))
				return nil
			},
		},
	}
}
