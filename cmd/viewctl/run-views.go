package main

import (
	"context"
	"errors"

	"github.com/urfave/cli"

	"github.com/bibliothecadao/eternum-viewcache/views"
)

var (
	errMissingID      = errors.New("entity id is required")
	errMissingAddress = errors.New("player address is required")
)

func entityID(c *cli.Context) (uint64, error) {
	id := c.Uint64("id")
	if id == 0 {
		return 0, errMissingID
	}
	return id, nil
}

func runRealm(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	id, err := entityID(c)
	if err != nil {
		return err
	}
	return printJson(m.w, m.client.Realm(context.Background(), id))
}

func runExplorer(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	id, err := entityID(c)
	if err != nil {
		return err
	}
	return printJson(m.w, m.client.Explorer(context.Background(), id))
}

func runMapArea(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	q := views.MapAreaQuery{
		X:      c.Int64("x"),
		Y:      c.Int64("y"),
		Radius: c.Int64("radius"),
	}
	return printJson(m.w, m.client.MapArea(context.Background(), q))
}

func runMarket(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	return printJson(m.w, m.client.Market(context.Background()))
}

func runBank(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	id, err := entityID(c)
	if err != nil {
		return err
	}
	return printJson(m.w, m.client.Bank(context.Background(), id))
}

func runPlayer(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	address := c.String("address")
	if address == "" {
		address = m.cfg.Account
	}
	if address == "" {
		return errMissingAddress
	}
	return printJson(m.w, m.client.Player(context.Background(), address))
}

func runHyperstructure(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	id, err := entityID(c)
	if err != nil {
		return err
	}
	return printJson(m.w, m.client.Hyperstructure(context.Background(), id))
}

func runLeaderboard(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	q := views.LeaderboardQuery{
		Limit:  c.Int("limit"),
		Offset: c.Int("offset"),
	}
	return printJson(m.w, m.client.Leaderboard(context.Background(), q))
}

func runEvents(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	q := views.EventsQuery{
		EntityID: c.Uint64("entity"),
		Owner:    c.String("owner"),
		Since:    c.Int64("since"),
		Limit:    c.Int("limit"),
		Offset:   c.Int("offset"),
	}
	return printJson(m.w, m.client.Events(context.Background(), q))
}
