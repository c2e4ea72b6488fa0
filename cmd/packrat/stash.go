package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/packrat-io/packrat/countstore"
	"github.com/packrat-io/packrat/histstore"
	"github.com/packrat-io/packrat/recordstore"
	"github.com/packrat-io/packrat/stash"
	"github.com/packrat-io/packrat/util"
)

func newStash(ctx context.Context, cctx *cli.Context) (*stash.Stash, error) {
	rdb, err := util.RedisClient(ctx, cctx.String("redis-url"))
	if err != nil {
		return nil, err
	}
	return stash.New(
		recordstore.NewRedisRecordStore(rdb),
		countstore.NewRedisCountStore(rdb),
		histstore.NewRedisHistoryStore(rdb),
	), nil
}

func parseValue(kind, raw string) (stash.Value, error) {
	switch kind {
	case "text":
		return stash.Text(raw), nil
	case "bytes":
		return stash.Bytes([]byte(raw)), nil
	case "int":
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return stash.Value{}, fmt.Errorf("not a valid integer: %v", err)
		}
		return stash.Int(n), nil
	case "float":
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return stash.Value{}, fmt.Errorf("not a valid float: %v", err)
		}
		return stash.Float(f), nil
	default:
		return stash.Value{}, fmt.Errorf("unknown value kind: %q", kind)
	}
}

var cmdStore = &cli.Command{
	Name:      "store",
	Usage:     "store a value under a fresh random key",
	ArgsUsage: `<value>`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "as",
			Usage: "value kind: text, bytes, int, or float",
			Value: "text",
		},
	},
	Action: runStore,
}

func runStore(cctx *cli.Context) error {
	ctx := context.Background()

	if cctx.Args().Len() != 1 {
		return fmt.Errorf("expected a single value argument")
	}
	val, err := parseValue(cctx.String("as"), cctx.Args().First())
	if err != nil {
		return err
	}

	st, err := newStash(ctx, cctx)
	if err != nil {
		return err
	}
	key, err := st.Store(ctx, val)
	if err != nil {
		return err
	}
	fmt.Println(key)
	return nil
}

var cmdGet = &cli.Command{
	Name:      "get",
	Usage:     "retrieve the value stored under a key",
	ArgsUsage: `<key>`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "as",
			Usage: "interpret the stored bytes as: text, bytes, int, or float",
			Value: "text",
		},
	},
	Action: runGet,
}

func runGet(cctx *cli.Context) error {
	ctx := context.Background()

	key := cctx.Args().First()
	if key == "" {
		return fmt.Errorf("expected a single key argument")
	}

	st, err := newStash(ctx, cctx)
	if err != nil {
		return err
	}

	var found bool
	switch kind := cctx.String("as"); kind {
	case "text":
		var text string
		text, found, err = st.RetrieveText(ctx, key)
		if err == nil && found {
			fmt.Println(text)
		}
	case "bytes":
		var raw []byte
		raw, found, err = st.Retrieve(ctx, key)
		if err == nil && found {
			os.Stdout.Write(raw)
		}
	case "int":
		var n int64
		n, found, err = st.RetrieveInt(ctx, key)
		if err == nil && found {
			fmt.Println(n)
		}
	case "float":
		var f float64
		f, found, err = st.RetrieveFloat(ctx, key)
		if err == nil && found {
			fmt.Println(f)
		}
	default:
		return fmt.Errorf("unknown value kind: %q", kind)
	}
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("no record under key: %s", key)
	}
	return nil
}

var cmdCount = &cli.Command{
	Name:   "count",
	Usage:  "show how many times store has been called",
	Action: runCount,
}

func runCount(cctx *cli.Context) error {
	ctx := context.Background()

	st, err := newStash(ctx, cctx)
	if err != nil {
		return err
	}
	c, err := st.StoreCount(ctx)
	if err != nil {
		return err
	}
	fmt.Println(c)
	return nil
}

var cmdReplay = &cli.Command{
	Name:   "replay",
	Usage:  "print the recorded history of store calls",
	Action: runReplay,
}

func runReplay(cctx *cli.Context) error {
	ctx := context.Background()

	st, err := newStash(ctx, cctx)
	if err != nil {
		return err
	}
	return stash.Replay(ctx, os.Stdout, stash.OpStore, st.Counters, st.History)
}
