package elastic

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"user-access-management/go-backend/internal/domain/entity"
)

const requestTimeout = 3 * time.Second

// Indexer mirrors user documents into Elasticsearch and serves search
// queries. Write failures are the caller's to log; the index is a replica,
// never the source of truth.
type Indexer struct {
	Client    *elasticsearch.Client
	IndexName string
}

func NewIndexer(client *elasticsearch.Client, index string) *Indexer {
	return &Indexer{Client: client, IndexName: index}
}

// doc is the indexed projection; the password hash never reaches the index.
type doc struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Lastname  string  `json:"lastname"`
	Email     string  `json:"email"`
	Address   string  `json:"address"`
	IsActive  bool    `json:"is_active"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt *string `json:"updated_at,omitempty"`
}

func (ix *Indexer) Index(ctx context.Context, u *entity.User) error {
	d := doc{
		ID:        u.ID,
		Name:      u.Name,
		Lastname:  u.Lastname,
		Email:     u.Email.Value(),
		Address:   u.Address,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt.Format(time.RFC3339Nano),
	}
	if u.UpdatedAt != nil {
		s := u.UpdatedAt.Format(time.RFC3339Nano)
		d.UpdatedAt = &s
	}
	b, _ := json.Marshal(d)

	req := esapi.IndexRequest{
		Index:      ix.IndexName,
		DocumentID: u.ID,
		Body:       strings.NewReader(string(b)),
		Refresh:    "false",
	}
	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	res, err := req.Do(c, ix.Client)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return fmt.Errorf("index write failed: %s", res.Status())
	}
	return nil
}

func (ix *Indexer) Search(ctx context.Context, query string, size int) ([]map[string]any, error) {
	body := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  query,
				"fields": []string{"email^2", "name", "lastname"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(body)

	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	res, err := ix.Client.Search(
		ix.Client.Search.WithContext(c),
		ix.Client.Search.WithIndex(ix.IndexName),
		ix.Client.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return nil, fmt.Errorf("search failed: %s", res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}

func (ix *Indexer) Remove(ctx context.Context, id string) error {
	req := esapi.DeleteRequest{Index: ix.IndexName, DocumentID: id}
	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	res, err := req.Do(c, ix.Client)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	// 404 is fine: the user was never indexed.
	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("index delete failed: %s", res.Status())
	}
	return nil
}
