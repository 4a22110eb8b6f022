package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/leadrank/internal/intake"
)

func TestRenderLeads(t *testing.T) {
	input := writeLeads(t, `[{"id":"L1","name":"Ana","is_decision_maker":true},{"id":"L2","interactions":"email; call"}]`)

	var buf bytes.Buffer
	require.NoError(t, renderLeads(&buf, input, intake.LoadOptions{}))

	out := buf.String()
	assert.Contains(t, out, "=== 1. L1 ===")
	assert.Contains(t, out, "Nome: Ana")
	assert.Contains(t, out, "Tomador de decisão: Sim")
	assert.Contains(t, out, "=== 2. L2 ===")
	assert.Contains(t, out, "Histórico de interações: email; call")
}

func TestRenderLeads_Errors(t *testing.T) {
	var buf bytes.Buffer

	err := renderLeads(&buf, writeLeads(t, `[]`), intake.LoadOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no leads found")

	err = renderLeads(&buf, writeLeads(t, `[null]`), intake.LoadOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lead 0 is null")

	err = renderLeads(&buf, writeLeads(t, `{`), intake.LoadOptions{})
	assert.Error(t, err)
}
