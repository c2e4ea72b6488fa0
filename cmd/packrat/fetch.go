package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/packrat-io/packrat/cachestore"
	"github.com/packrat-io/packrat/countstore"
	"github.com/packrat-io/packrat/util"
	"github.com/packrat-io/packrat/webcache"
)

var cmdFetch = &cli.Command{
	Name:      "fetch",
	Usage:     "fetch a web page through the expiring page cache",
	ArgsUsage: `<url>`,
	Flags: []cli.Flag{
		&cli.DurationFlag{
			Name:  "ttl",
			Usage: "how long fetched pages stay cached",
			Value: webcache.DefaultTTL,
		},
	},
	Action: runFetch,
}

func runFetch(cctx *cli.Context) error {
	ctx := context.Background()

	pageURL := cctx.Args().First()
	if pageURL == "" {
		return fmt.Errorf("expected a single url argument")
	}

	rdb, err := util.RedisClient(ctx, cctx.String("redis-url"))
	if err != nil {
		return err
	}
	cf := webcache.New(
		webcache.NewHTTPFetcher(nil),
		cachestore.NewRedisCacheStore(rdb, cctx.Duration("ttl")),
		countstore.NewRedisCountStore(rdb),
	)

	body, cached, err := cf.FetchWithCacheState(ctx, pageURL)
	if err != nil {
		return err
	}
	count, err := cf.AccessCount(ctx, pageURL)
	if err != nil {
		return err
	}

	// page body on stdout, accounting on stderr
	fmt.Fprintf(os.Stderr, "cached: %v, accesses: %d\n", cached, count)
	fmt.Print(body)
	return nil
}
