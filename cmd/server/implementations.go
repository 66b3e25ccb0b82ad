package main

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/Ko-stant/outlook-map/internal/protocol"
	"github.com/Ko-stant/outlook-map/internal/ws"
)

// BroadcasterImpl implements Broadcaster using WebSocket hub
type BroadcasterImpl struct {
	hub      *ws.Hub
	sequence SequenceGenerator
	logger   Logger
}

func NewBroadcaster(hub *ws.Hub, sequence SequenceGenerator, logger Logger) *BroadcasterImpl {
	return &BroadcasterImpl{
		hub:      hub,
		sequence: sequence,
		logger:   logger,
	}
}

func (b *BroadcasterImpl) BroadcastEvent(eventType string, payload any) {
	data, err := encodePatch(b.sequence, eventType, payload)
	if err != nil {
		b.logger.Printf("failed to marshal %s: %v", eventType, err)
		return
	}
	b.hub.Broadcast(context.Background(), data)
}

func encodePatch(sequence SequenceGenerator, eventType string, payload any) ([]byte, error) {
	data, err := json.Marshal(protocol.PatchEnvelope{
		Sequence: sequence.Next(),
		EventID:  0,
		Type:     eventType,
		Payload:  payload,
	})
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", eventType, err)
	}
	return data, nil
}

// LoggerImpl implements Logger on top of a zap logger
type LoggerImpl struct {
	sugar *zap.SugaredLogger
}

func NewLogger(logger *zap.Logger) *LoggerImpl {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoggerImpl{sugar: logger.Sugar()}
}

func (l *LoggerImpl) Printf(format string, v ...any) {
	l.sugar.Infof(format, v...)
}

// SequenceGeneratorImpl implements SequenceGenerator using atomic counter
type SequenceGeneratorImpl struct {
	counter uint64
}

func NewSequenceGenerator() *SequenceGeneratorImpl {
	return &SequenceGeneratorImpl{}
}

func (sg *SequenceGeneratorImpl) Next() uint64 {
	return atomic.AddUint64(&sg.counter, 1)
}

func (sg *SequenceGeneratorImpl) Current() uint64 {
	return atomic.LoadUint64(&sg.counter)
}
