package seed_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoiceportal/internal/billing"
	"invoiceportal/internal/document"
	"invoiceportal/internal/seed"
)

func TestDemoDocumentDates(t *testing.T) {
	today := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	doc := seed.DemoDocument(today)

	require.Len(t, doc.Invoices, 2)
	assert.Equal(t, "2024-03-10", doc.Invoices[0].IssueDate)
	assert.Equal(t, "2024-04-09", doc.Invoices[0].DueDate)
	assert.Equal(t, "2024-02-04", doc.Invoices[1].IssueDate)
	assert.Equal(t, "2024-03-05", doc.Invoices[1].DueDate)
}

func TestYAMLRoundTrips(t *testing.T) {
	data, err := seed.YAML(time.Now())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "client:"))

	doc := document.Extract(document.Parse(data))
	assert.Equal(t, "Acme Corp", doc.Client.Name)
	require.Len(t, doc.Invoices, 2)
	require.Len(t, doc.Items, 3)
	require.Len(t, doc.Payments, 1)

	views, totalsByID := billing.BuildViews(doc)
	require.Len(t, views, 2)
	assert.InDelta(t, 3424.00, totalsByID["1"].Due, 1e-9)
	assert.InDelta(t, 0.00, totalsByID["2"].Due, 1e-9)
}
