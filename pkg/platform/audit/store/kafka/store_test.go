package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"

	audit "promptserver/pkg/platform/audit"
)

type fakeProducer struct {
	records []*kgo.Record
	err     error
}

func (f *fakeProducer) ProduceSync(_ context.Context, rs ...*kgo.Record) kgo.ProduceResults {
	f.records = append(f.records, rs...)
	results := make(kgo.ProduceResults, 0, len(rs))
	for _, r := range rs {
		results = append(results, kgo.ProduceResult{Record: r, Err: f.err})
	}
	return results
}

func TestAppend(t *testing.T) {
	producer := &fakeProducer{}
	store := New(producer, "promptserver.audit")

	event := audit.Event{
		Action:    audit.ActionPromptCreated,
		UserID:    3,
		Subject:   "prompt:0b1c",
		Timestamp: time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC),
	}
	require.NoError(t, store.Append(context.Background(), event))

	require.Len(t, producer.records, 1)
	rec := producer.records[0]
	assert.Equal(t, "promptserver.audit", rec.Topic)
	assert.Equal(t, "prompt:0b1c", string(rec.Key))

	var decoded audit.Event
	require.NoError(t, json.Unmarshal(rec.Value, &decoded))
	assert.Equal(t, event.Action, decoded.Action)
	assert.Equal(t, event.UserID, decoded.UserID)
}

func TestAppendPropagatesProduceError(t *testing.T) {
	store := New(&fakeProducer{err: errors.New("broker down")}, "t")
	err := store.Append(context.Background(), audit.Event{Action: "x"})
	require.Error(t, err)
}
