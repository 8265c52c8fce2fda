package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFixtures(t *testing.T) {
	doc := `
companies:
  - name: Acme
    subscriptions:
      - start_date: 2026-01-01T00:00:00Z
        end_date: 2026-06-01T00:00:00Z
users:
  - email: a@acme.test
    full_name: A
    password: pw
    company: Acme
projects:
  - name: P
    author: a@acme.test
    users: [a@acme.test]
tasks:
  - project: P
    title: T
    status: done
`
	f, err := LoadFixtures(strings.NewReader(doc))
	require.NoError(t, err)

	require.Len(t, f.Companies, 1)
	assert.Len(t, f.Companies[0].Subscriptions, 1)
	require.Len(t, f.Users, 1)
	assert.Equal(t, "Acme", f.Users[0].Company)
	require.Len(t, f.Tasks, 1)
	assert.Equal(t, "done", f.Tasks[0].Status)
}

func TestLoadFixtures_UnknownField(t *testing.T) {
	_, err := LoadFixtures(strings.NewReader("bogus: true\n"))
	assert.Error(t, err)
}
