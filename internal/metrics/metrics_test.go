package metrics

import (
	"errors"
	"fmt"
	"testing"

	"inventory-backend/internal/apperr"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestOutcome(t *testing.T) {
	assert.Equal(t, "ok", Outcome(nil))
	assert.Equal(t, "not_found", Outcome(apperr.NotFound("product", 1)))
	assert.Equal(t, "invalid", Outcome(fmt.Errorf("wrap: %w", apperr.Invalid("", "insufficient stock"))))
	assert.Equal(t, "conflict", Outcome(apperr.Conflict("exists")))
	assert.Equal(t, "error", Outcome(errors.New("boom")))
}

func TestObserveLedger(t *testing.T) {
	before := testutil.ToFloat64(ledgerOps.WithLabelValues("orders", "create", "invalid"))

	err := apperr.Invalid("", "insufficient stock")
	assert.Same(t, err, ObserveLedger("orders", "create", err))

	after := testutil.ToFloat64(ledgerOps.WithLabelValues("orders", "create", "invalid"))
	assert.Equal(t, before+1, after)
}
