package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

// MockKafkaWriter implements KafkaWriter for testing
type MockKafkaWriter struct {
	mock.Mock
}

func (m *MockKafkaWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

func (m *MockKafkaWriter) Close() error {
	args := m.Called()
	return args.Error(0)
}

func testEvent(organisationID int64) OutboundEvent {
	return OutboundEvent{
		EventID:     uuid.New(),
		EventType:   "organisations-api.organisation.created",
		Version:     eventVersion,
		Description: "An organisation has been created",
		OccurredAt:  time.Now().UTC(),
		AdditionalInformation: AdditionalInformation{
			OrganisationID: organisationID,
			Identifier:     organisationID,
			Source:         SourceNOMIS,
		},
	}
}

func TestProducer_Publish(t *testing.T) {
	t.Run("successful publish", func(t *testing.T) {
		producer := &Producer{
			events: make(chan OutboundEvent, 10),
			logger: zaptest.NewLogger(t),
		}

		producer.Publish(testEvent(1001))

		assert.Equal(t, 1, len(producer.events))
	})

	t.Run("dropped event when queue full", func(t *testing.T) {
		core, recorded := observer.New(zap.WarnLevel)
		producer := &Producer{
			events: make(chan OutboundEvent, 1), // Small buffer for test
			logger: zap.New(core),
		}

		// Fill the channel
		producer.Publish(testEvent(1001))
		producer.Publish(testEvent(1001)) // This should be dropped

		// Check logs
		assert.Equal(t, 1, recorded.FilterMessage("Kafka producer queue full, dropping event").Len())
	})
}

func TestProducer_SendEvent(t *testing.T) {
	t.Run("successful send", func(t *testing.T) {
		mockWriter := new(MockKafkaWriter)
		mockWriter.On("WriteMessages", mock.Anything, mock.Anything).Return(nil)

		producer := &Producer{
			writer:  mockWriter,
			metrics: newTestMetrics(),
			logger:  zaptest.NewLogger(t),
		}

		event := testEvent(1001)
		producer.sendEvent(context.Background(), event)

		value, _ := jsonMarshal(event)
		mockWriter.AssertCalled(t, "WriteMessages", mock.Anything, []kafka.Message{
			{
				Key:   []byte("1001"),
				Value: value,
			},
		})
	})

	t.Run("serialization error", func(t *testing.T) {
		core, recorded := observer.New(zap.ErrorLevel)
		mockWriter := new(MockKafkaWriter)
		producer := &Producer{
			writer:  mockWriter,
			metrics: newTestMetrics(),
			logger:  zap.New(core),
		}

		// Mock JSON marshaling to force error
		oldMarshal := jsonMarshal
		jsonMarshal = func(interface{}) ([]byte, error) {
			return nil, errors.New("mock marshal error")
		}
		defer func() { jsonMarshal = oldMarshal }()

		producer.sendEvent(context.Background(), testEvent(1001))

		assert.Equal(t, 1, recorded.FilterMessage("Failed to serialize event").Len())
		mockWriter.AssertNotCalled(t, "WriteMessages", mock.Anything, mock.Anything)
	})

	t.Run("write error", func(t *testing.T) {
		core, recorded := observer.New(zap.ErrorLevel)
		mockWriter := new(MockKafkaWriter)
		mockWriter.On("WriteMessages", mock.Anything, mock.Anything).Return(errors.New("kafka error"))

		m := newTestMetrics()
		producer := &Producer{
			writer:  mockWriter,
			metrics: m,
			logger:  zap.New(core),
		}

		producer.sendEvent(context.Background(), testEvent(1001))

		assert.Equal(t, 1, recorded.FilterMessage("Failed to produce event").Len())
	})
}

func TestProducer_Close(t *testing.T) {
	mockWriter := new(MockKafkaWriter)
	mockWriter.On("Close").Return(nil)

	producer := &Producer{
		writer:    mockWriter,
		closeChan: make(chan struct{}),
		logger:    zaptest.NewLogger(t),
	}

	producer.Close()

	// Verify close channel is closed
	select {
	case <-producer.closeChan:
	default:
		t.Error("closeChan not closed")
	}

	mockWriter.AssertCalled(t, "Close")
}

func TestProducer_EventLoop(t *testing.T) {
	mockWriter := new(MockKafkaWriter)
	mockWriter.On("WriteMessages", mock.Anything, mock.Anything).Return(nil)

	producer := &Producer{
		writer:    mockWriter,
		events:    make(chan OutboundEvent, 1),
		metrics:   newTestMetrics(),
		logger:    zaptest.NewLogger(t),
		closeChan: make(chan struct{}),
	}

	go producer.eventLoop()
	defer close(producer.closeChan)

	producer.events <- testEvent(1001)

	// Give time for processing
	time.Sleep(100 * time.Millisecond)

	mockWriter.AssertCalled(t, "WriteMessages", mock.Anything, mock.Anything)
}
