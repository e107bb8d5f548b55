package google

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/felixbraun/storeradar/internal/core/domain"
	"github.com/felixbraun/storeradar/internal/infrastructure/resilience"
)

// classifyPlacesError decides which failures count toward opening the
// circuit: provider faults and transport errors do, cancellations and
// client-side mistakes do not.
func classifyPlacesError(err error) resilience.ErrorClassification {
	if err == nil {
		return resilience.ErrorClassification{}
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return resilience.ErrorClassification{RecordFailure: false}
	}

	var statusErr *HTTPStatusError
	if errors.As(err, &statusErr) {
		recordable := statusErr.StatusCode >= http.StatusInternalServerError ||
			statusErr.StatusCode == http.StatusTooManyRequests
		return resilience.ErrorClassification{RecordFailure: recordable}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return resilience.ErrorClassification{RecordFailure: true}
	}

	return resilience.ErrorClassification{RecordFailure: true}
}

// wrapPlacesError tags provider failures with a domain error kind.
// Rejected requests are the caller's fault, everything else is a
// transient upstream condition.
func wrapPlacesError(operation string, err error) error {
	if err == nil {
		return nil
	}

	var statusErr *HTTPStatusError
	if errors.As(err, &statusErr) &&
		statusErr.StatusCode >= http.StatusBadRequest &&
		statusErr.StatusCode < http.StatusInternalServerError &&
		statusErr.StatusCode != http.StatusTooManyRequests {
		return domain.WrapError(domain.ErrInvalidInput, operation, err)
	}
	return domain.WrapError(domain.ErrTemporary, operation, err)
}
