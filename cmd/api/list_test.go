package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/noill-admin/internal/model"
)

func TestRunListTable(t *testing.T) {
	var out bytes.Buffer
	err := runList(context.Background(), &out, "patients", model.ListFilter{Search: "john"}, false)
	require.NoError(t, err)

	body := out.String()
	assert.Contains(t, body, "NAME")
	assert.Contains(t, body, "John Smith")
	assert.Contains(t, body, "Sarah Johnson")
	assert.NotContains(t, body, "Michael Davis")
}

func TestRunListJSON(t *testing.T) {
	var out bytes.Buffer
	err := runList(context.Background(), &out, "invoices", model.ListFilter{Status: "pending"}, true)
	require.NoError(t, err)

	var res model.ListResult[model.Invoice]
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	require.Equal(t, 1, res.Count)
	assert.Equal(t, "INV-002", res.Items[0].ID)
}

func TestRunListEveryScreen(t *testing.T) {
	for _, screen := range screenNames() {
		t.Run(screen, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, runList(context.Background(), &out, screen, model.ListFilter{}, false))
			assert.NotEmpty(t, out.String())
		})
	}
}

func TestRunListUnknownScreen(t *testing.T) {
	err := runList(context.Background(), &bytes.Buffer{}, "reports", model.ListFilter{}, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown screen "reports"`)
}

func TestListCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"list", "staff", "--role", "nurse"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Nurse Robert Johnson")
	assert.NotContains(t, out.String(), "Dr. Sarah Wilson")
}

func TestListCommandRejectsUnknownScreen(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"list", "reports"})

	assert.Error(t, cmd.Execute())
}
