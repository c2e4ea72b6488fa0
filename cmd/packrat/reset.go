package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/packrat-io/packrat/countstore"
	"github.com/packrat-io/packrat/util"
)

var cmdReset = &cli.Command{
	Name:      "reset",
	Usage:     "reset named counters, or flush the whole redis database",
	ArgsUsage: `[counter-name ...]`,
	Action:    runReset,
}

func runReset(cctx *cli.Context) error {
	ctx := context.Background()

	rdb, err := util.RedisClient(ctx, cctx.String("redis-url"))
	if err != nil {
		return err
	}

	// with counter names, drop just those; with no args, flush everything
	if cctx.Args().Len() > 0 {
		cs := countstore.NewRedisCountStore(rdb)
		for _, name := range cctx.Args().Slice() {
			if err := cs.Reset(ctx, name); err != nil {
				return fmt.Errorf("resetting counter %s: %w", name, err)
			}
		}
		fmt.Println("ok")
		return nil
	}

	if err := rdb.FlushDB(ctx).Err(); err != nil {
		return fmt.Errorf("flushing redis: %w", err)
	}
	fmt.Println("ok")
	return nil
}
