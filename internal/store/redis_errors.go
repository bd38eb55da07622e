// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"io"
	"net"

	"github.com/redis/go-redis/v9"
)

// RedisErrorClassifier implements [ErrorClassificator] for the Redis
// document store. Network failures and pool exhaustion are retryable;
// server replies (WRONGTYPE, NOSCRIPT and so on) are not. A call that ran
// out of time is never retried: the operation timeout is the budget for the
// whole call.
type RedisErrorClassifier struct{}

func NewRedisErrorClassifier() *RedisErrorClassifier {
	return &RedisErrorClassifier{}
}

func (c *RedisErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil || errors.Is(err, redis.Nil) || errors.Is(err, redis.ErrClosed) {
		return NonRetryable
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return NonRetryable
	}

	if errors.Is(err, redis.ErrPoolTimeout) || errors.Is(err, redis.ErrPoolExhausted) {
		return Retryable
	}

	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return Retryable
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return NonRetryable
		}
		return Retryable
	}

	return NonRetryable
}
