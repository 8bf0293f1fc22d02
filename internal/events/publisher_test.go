package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatermillPublisher_ChannelRoundTrip(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	publisher, pubSub := NewChannelPublisher("assessments", logger)
	defer publisher.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	messages, err := pubSub.Subscribe(ctx, "assessments")
	require.NoError(t, err)

	event := NewEvent(TypeAssessmentPublished, AssessmentPublishedEvent{
		AdminID:  "admin-1",
		ToolIDs:  []uint{5},
		RowCount: 3,
	})
	require.NoError(t, publisher.Publish(ctx, event))

	select {
	case msg := <-messages:
		msg.Ack()
		assert.Equal(t, event.ID, msg.UUID)
		assert.Equal(t, TypeAssessmentPublished, msg.Metadata.Get("type"))

		var got struct {
			Event
			Data AssessmentPublishedEvent `json:"data"`
		}
		require.NoError(t, json.Unmarshal(msg.Payload, &got))
		assert.Equal(t, EventSource, got.Source)
		assert.Equal(t, EventVersion, got.Version)
		assert.Equal(t, 3, got.Data.RowCount)
		assert.Equal(t, []uint{5}, got.Data.ToolIDs)
	case <-ctx.Done():
		t.Fatal("event was not delivered")
	}
}

func TestNewEvent(t *testing.T) {
	event := NewEvent(TypeAssessmentPublished, nil)
	assert.NotEmpty(t, event.ID)
	assert.False(t, event.Timestamp.IsZero())
	assert.Equal(t, TypeAssessmentPublished, event.Type)
}

func TestMockEventPublisher(t *testing.T) {
	mock := NewMockEventPublisher(slog.Default())
	require.NoError(t, mock.Publish(context.Background(), NewEvent("a", nil)))
	assert.Len(t, mock.GetPublishedEvents(), 1)

	mock.ClearEvents()
	assert.Empty(t, mock.GetPublishedEvents())

	mock.FailWith(assert.AnError)
	assert.ErrorIs(t, mock.Publish(context.Background(), NewEvent("b", nil)), assert.AnError)
}
