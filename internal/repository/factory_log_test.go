package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"ecosync/internal/models"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs     []kafka.Message
	err      error
	closed   bool
	closeErr error
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return w.closeErr
}

func reportEntry(rawJSON string) models.HistoryEntry {
	return models.HistoryEntry{
		SensorReading: models.SensorReading{WorkerID: "W-8821", HeartRate: 120},
		ID:            "entry-1",
		Review:        models.ReviewPending,
		Report: &models.ShiftReport{
			SafetyStatus: models.SafetyRed,
			RawJSON:      rawJSON,
			GeneratedAt:  time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC),
		},
	}
}

func TestKafkaFactoryLog_Publish_ValidPayload(t *testing.T) {
	t.Parallel()

	w := &fakeWriter{}
	log := newKafkaFactoryLogWithWriter(w)

	err := log.Publish(context.Background(), reportEntry(`{"line":"A","status":"alert"}`))
	require.NoError(t, err)
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	require.Equal(t, "entry-1", string(msg.Key))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &rec))
	require.Equal(t, "entry-1", rec["id"])
	require.Equal(t, "W-8821", rec["workerId"])
	require.Equal(t, "Red", rec["safetyStatus"])
	require.Equal(t, map[string]any{"line": "A", "status": "alert"}, rec["payload"])
	require.NotContains(t, rec, "rawPayload")
}

func TestKafkaFactoryLog_Publish_InvalidPayloadKeptRaw(t *testing.T) {
	t.Parallel()

	w := &fakeWriter{}
	log := newKafkaFactoryLogWithWriter(w)

	require.NoError(t, log.Publish(context.Background(), reportEntry(`{not json`)))
	require.Len(t, w.msgs, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &rec))
	require.Equal(t, "{not json", rec["rawPayload"])
	require.NotContains(t, rec, "payload")
}

func TestKafkaFactoryLog_Publish_NoReport(t *testing.T) {
	t.Parallel()

	w := &fakeWriter{}
	log := newKafkaFactoryLogWithWriter(w)

	err := log.Publish(context.Background(), models.HistoryEntry{ID: "x"})
	require.ErrorIs(t, err, errNoReport)
	require.Empty(t, w.msgs)
}

func TestKafkaFactoryLog_Publish_WriterError(t *testing.T) {
	t.Parallel()

	down := errors.New("broker down")
	log := newKafkaFactoryLogWithWriter(&fakeWriter{err: down})

	err := log.Publish(context.Background(), reportEntry(`{}`))
	require.ErrorIs(t, err, down)
}

func TestKafkaFactoryLog_Close(t *testing.T) {
	t.Parallel()

	w := &fakeWriter{}
	require.NoError(t, newKafkaFactoryLogWithWriter(w).Close())
	require.True(t, w.closed)
}

func TestNewKafkaFactoryLog_Validation(t *testing.T) {
	t.Parallel()

	_, err := NewKafkaFactoryLog(nil, "factory-log")
	require.Error(t, err)

	_, err = NewKafkaFactoryLog([]string{"localhost:9092"}, "  ")
	require.Error(t, err)

	l, err := NewKafkaFactoryLog([]string{"localhost:9092"}, "factory-log")
	require.NoError(t, err)
	require.NotNil(t, l)
}

func TestNewRepository_DefaultsToNopFactoryLog(t *testing.T) {
	t.Parallel()

	repos := NewRepository(nil)
	require.IsType(t, NopFactoryLog{}, repos.FactoryLog)
	require.NoError(t, repos.FactoryLog.Publish(context.Background(), reportEntry(`{}`)))
	require.NotNil(t, repos.History)
}
