package application

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/rentwise/rentwise/internal/domain/entity"
)

// TenantIndexer mirrors tenant records into Elasticsearch for the admin
// search endpoint. Indexing is best-effort: a nil indexer or a failed call
// never affects the write that triggered it.
type TenantIndexer struct {
	ES        *elasticsearch.Client
	IndexName string
	Logger    *logrus.Logger
}

func NewTenantIndexer(es *elasticsearch.Client, index string, logger *logrus.Logger) *TenantIndexer {
	return &TenantIndexer{ES: es, IndexName: index, Logger: logger}
}

func (ix *TenantIndexer) IndexTenant(ctx context.Context, t *entity.Tenant) {
	if ix == nil || ix.ES == nil || ix.IndexName == "" {
		return
	}
	doc := map[string]any{
		"id":         t.ID,
		"first_name": t.FirstName,
		"last_name":  t.LastName,
		"email":      t.Email,
		"phone":      t.Phone,
		"user_id":    t.UserID,
	}
	if t.PropertyID != nil {
		doc["property_id"] = *t.PropertyID
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: ix.IndexName, DocumentID: strconv.FormatInt(t.ID, 10), Body: strings.NewReader(string(b)), Refresh: "false"}

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, ix.ES)
	if err != nil {
		if ix.Logger != nil {
			ix.Logger.WithError(err).WithField("tenant_id", t.ID).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && ix.Logger != nil {
		ix.Logger.WithField("status", res.Status()).WithField("tenant_id", t.ID).Warn("es index response error")
	}
}

// Search runs a multi_match query over name, email, and phone.
func (ix *TenantIndexer) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if ix == nil || ix.ES == nil || ix.IndexName == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"email^2", "first_name", "last_name", "phone"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := ix.ES.Search(
		ix.ES.Search.WithContext(c),
		ix.ES.Search.WithIndex(ix.IndexName),
		ix.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
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
