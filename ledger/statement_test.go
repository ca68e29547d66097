package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var generated = time.Date(2025, 7, 15, 18, 30, 0, 0, time.UTC)

func TestBuildStatementEmpty(t *testing.T) {
	st := BuildStatement("Ramesh", nil, generated)

	assert.Equal(t, "SmartUdhar Ledger", st.Title)
	assert.Equal(t, "Ramesh", st.CustomerName)
	assert.Equal(t, "15/07/2025", st.GeneratedOn)
	assert.Empty(t, st.Lines)
	assert.True(t, st.Total.IsZero())
}

func TestBuildStatement(t *testing.T) {
	st := BuildStatement("Ramesh", sampleEntries(), generated)

	require.Len(t, st.Lines, 3)
	assert.Equal(t, "400", st.Total.String())

	assert.Equal(t, "Udhar", st.Lines[0].Label)
	assert.Equal(t, "500", st.Lines[0].Amount.String())
	assert.Equal(t, "500", st.Lines[0].Balance.String())

	assert.Equal(t, "Mila", st.Lines[1].Label)
	assert.Equal(t, "200", st.Lines[1].Amount.String())
	assert.Equal(t, "300", st.Lines[1].Balance.String())

	assert.Equal(t, "Udhar", st.Lines[2].Label)
	assert.Equal(t, "400", st.Lines[2].Balance.String())
}

func TestBuildStatementInputOrderIrrelevant(t *testing.T) {
	entries := sampleEntries()
	newestFirst := []Entry{entries[2], entries[1], entries[0]}

	asc := BuildStatement("Ramesh", entries, generated)
	desc := BuildStatement("Ramesh", newestFirst, generated)

	// Statement body is always oldest first with identical balances.
	assert.Equal(t, asc, desc)
	require.Len(t, desc.Lines, 3)
	assert.Equal(t, "500", desc.Lines[0].Balance.String())
	assert.Equal(t, "300", desc.Lines[1].Balance.String())
	assert.Equal(t, "400", desc.Lines[2].Balance.String())
}

func TestBuildStatementDates(t *testing.T) {
	entries := []Entry{entry(Credit, "50", time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC))}
	st := BuildStatement("Sita", entries, generated)

	require.Len(t, st.Lines, 1)
	assert.Equal(t, "02/01/2025", st.Lines[0].Date)
}

func TestBuildStatementTotalMatchesComputeBalance(t *testing.T) {
	entries := []Entry{
		entry(Debit, "150", base),
		entry(Credit, "90.10", base.Add(time.Hour)),
	}
	st := BuildStatement("Sita", entries, generated)

	assert.Equal(t, ComputeBalance(entries).String(), st.Total.String())
}
