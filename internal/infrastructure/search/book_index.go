package search

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/oksasatya/readlog/internal/application"
	"github.com/oksasatya/readlog/internal/domain/entity"
)

const requestTimeout = 3 * time.Second

// BookIndex mirrors books into an Elasticsearch index for admin search.
type BookIndex struct {
	es    *elasticsearch.Client
	index string
}

func NewBookIndex(es *elasticsearch.Client, index string) (*BookIndex, error) {
	if es == nil || index == "" {
		return nil, errors.New("elasticsearch client and index are required")
	}
	return &BookIndex{es: es, index: index}, nil
}

type bookDoc struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Author         string `json:"author"`
	OwnerID        string `json:"owner_id"`
	CoverImagePath string `json:"cover_image_path,omitempty"`
	CreatedAt      string `json:"created_at"`
}

// IndexBook upserts the book document keyed by its id.
func (x *BookIndex) IndexBook(ctx context.Context, b *entity.Book) error {
	doc := bookDoc{
		ID:             b.ID.String(),
		Title:          b.Title,
		Author:         b.Author,
		OwnerID:        b.OwnerID.String(),
		CoverImagePath: b.CoverImagePath,
		CreatedAt:      b.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	body, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	req := esapi.IndexRequest{Index: x.index, DocumentID: doc.ID, Body: bytes.NewReader(body), Refresh: "false"}

	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	res, err := req.Do(c, x.es)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return fmt.Errorf("es index: %s", res.Status())
	}
	return nil
}

// SearchBooks runs a multi_match query over title and author.
func (x *BookIndex) SearchBooks(ctx context.Context, q string, size int) ([]application.BookHit, error) {
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"title^2", "author"},
			},
		},
		"size": size,
	}
	body, err := json.Marshal(query)
	if err != nil {
		return nil, err
	}

	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	res, err := x.es.Search(
		x.es.Search.WithContext(c),
		x.es.Search.WithIndex(x.index),
		x.es.Search.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return nil, fmt.Errorf("es search: %s", res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source bookDoc `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]application.BookHit, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, application.BookHit{ID: h.Source.ID, Title: h.Source.Title, Author: h.Source.Author})
	}
	return out, nil
}

var _ application.BookIndexer = (*BookIndex)(nil)
