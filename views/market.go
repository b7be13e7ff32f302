package views

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/bibliothecadao/eternum-viewcache/indexer"
)

const (
	marketSwaps = 50
	bankSwaps   = 20
)

// Market returns the most recent bank swaps across all traders.
func (c *Client) Market(ctx context.Context) MarketView {
	return c.market(ctx).View
}

func (c *Client) market(ctx context.Context) outcome[MarketView] {
	return read(ctx, c, "market", MarketKey(), nil,
		func(ctx context.Context) (MarketView, error) {
			swaps, err := c.idx.FetchSwapEvents(ctx, nil)
			if err != nil {
				return MarketView{}, err
			}
			view := emptyMarket()
			view.RecentSwaps = recentSwaps(swaps, marketSwaps)
			return view, nil
		},
		emptyMarket,
	)
}

func emptyMarket() MarketView {
	return MarketView{
		Pools:             []Pool{},
		RecentSwaps:       []SwapEvent{},
		OpenOrders:        []MarketOrder{},
		PlayerLPPositions: []LiquidityPosition{},
	}
}

// Bank returns a bank's position and its recent swaps.
func (c *Client) Bank(ctx context.Context, bankEntityID uint64) BankView {
	return c.bank(ctx, bankEntityID).View
}

func (c *Client) bank(ctx context.Context, bankEntityID uint64) outcome[BankView] {
	return read(ctx, c, "bank", BankKey(bankEntityID),
		map[string]any{"bankEntityId": bankEntityID},
		func(ctx context.Context) (BankView, error) {
			var (
				structures []indexer.Structure
				swaps      []indexer.Swap
			)

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() (err error) {
				structures, err = c.idx.FetchAllStructures(gctx)
				return err
			})
			g.Go(func() (err error) {
				swaps, err = c.idx.FetchSwapEvents(gctx, nil)
				return err
			})
			if err := g.Wait(); err != nil {
				return BankView{}, err
			}

			view := emptyBank(bankEntityID)
			for _, s := range structures {
				if s.EntityID == bankEntityID {
					view.Position = structurePosition(s)
					break
				}
			}
			view.RecentSwaps = recentSwaps(swaps, bankSwaps)
			return view, nil
		},
		func() BankView { return emptyBank(bankEntityID) },
	)
}

func emptyBank(bankEntityID uint64) BankView {
	return BankView{
		EntityID:          bankEntityID,
		Pools:             []Pool{},
		RecentSwaps:       []SwapEvent{},
		PlayerLPPositions: []LiquidityPosition{},
	}
}
