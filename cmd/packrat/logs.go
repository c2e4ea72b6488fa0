package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/packrat-io/packrat/docstore"
	"github.com/packrat-io/packrat/logstats"
)

var mongoFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "mongo-url",
		Usage:   "mongodb connection URL: mongodb://<hostname>:27017",
		Value:   "mongodb://localhost:27017",
		EnvVars: []string{"PACKRAT_MONGO_URL"},
	},
	&cli.StringFlag{
		Name:    "mongo-db",
		Usage:   "mongodb database holding log collections",
		Value:   "logs",
		EnvVars: []string{"PACKRAT_MONGO_DB"},
	},
}

var cmdInsert = &cli.Command{
	Name:      "insert",
	Usage:     "insert a document into a mongodb collection",
	ArgsUsage: `<collection> <field=value>...`,
	Flags:     mongoFlags,
	Action:    runInsert,
}

func runInsert(cctx *cli.Context) error {
	ctx := context.Background()

	args := cctx.Args().Slice()
	if len(args) < 2 {
		return fmt.Errorf("expected a collection name and at least one field=value pair")
	}
	collection := args[0]
	doc := make(map[string]any, len(args)-1)
	for _, pair := range args[1:] {
		field, value, ok := strings.Cut(pair, "=")
		if !ok || field == "" {
			return fmt.Errorf("not a field=value pair: %q", pair)
		}
		doc[field] = value
	}

	ds, err := docstore.DialMongoDocStore(ctx, cctx.String("mongo-url"), cctx.String("mongo-db"))
	if err != nil {
		return err
	}
	defer ds.Close(ctx)

	id, err := ds.InsertOne(ctx, collection, doc)
	if err != nil {
		return err
	}
	fmt.Println(id)
	return nil
}

var cmdLogStats = &cli.Command{
	Name:      "log-stats",
	Usage:     "print request statistics for an nginx log collection",
	ArgsUsage: `[collection]`,
	Flags:     mongoFlags,
	Action:    runLogStats,
}

func runLogStats(cctx *cli.Context) error {
	ctx := context.Background()

	collection := cctx.Args().First()
	if collection == "" {
		collection = "nginx"
	}

	ds, err := docstore.DialMongoDocStore(ctx, cctx.String("mongo-url"), cctx.String("mongo-db"))
	if err != nil {
		return err
	}
	defer ds.Close(ctx)

	stats, err := logstats.Collect(ctx, ds, collection)
	if err != nil {
		return err
	}
	stats.Render(os.Stdout)
	return nil
}
