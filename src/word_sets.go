package main

import (
	"context"
	"fmt"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"
)

// bigQueryWordSets reads named word sets from a BigQuery table with a
// `word_set` and a `word` column.
type bigQueryWordSets struct {
	project string
	table   string
}

type wordRow struct {
	Word string `bigquery:"word"`
}

func (b *bigQueryWordSets) Words(ctx context.Context, name string) ([]string, error) {
	client, err := bigquery.NewClient(ctx, b.project)
	if err != nil {
		return nil, fmt.Errorf("bigquery.NewClient: %w", err)
	}
	defer client.Close()

	q := client.Query(fmt.Sprintf("SELECT word FROM `%s` WHERE word_set = @wordSet", b.table))
	q.Parameters = []bigquery.QueryParameter{{Name: "wordSet", Value: name}}
	q.Location = "US"

	job, err := q.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.Run: %w", err)
	}
	status, err := job.Wait(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Wait: %w", err)
	}
	if err := status.Err(); err != nil {
		return nil, fmt.Errorf("status.Err: %w", err)
	}
	it, err := job.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Read: %w", err)
	}

	var words []string
	for {
		var row wordRow
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("it.Next: %w", err)
		}
		words = append(words, row.Word)
	}
	return words, nil
}
