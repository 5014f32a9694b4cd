package cslmeta_test

import (
	"testing"

	"github.com/arthur-debert/pandocpath/pkg/cslmeta"
	"github.com/arthur-debert/pandocpath/pkg/errors"
	"github.com/arthur-debert/pandocpath/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ieeeStyle = `<?xml version="1.0" encoding="utf-8"?>
<style xmlns="http://purl.org/net/xbiblio/csl" class="in-text" version="1.0" default-locale="en-US">
  <info>
    <title>IEEE</title>
    <title-short>IEEE</title-short>
    <id>http://www.zotero.org/styles/ieee</id>
    <category citation-format="numeric"/>
    <category field="engineering"/>
    <category field="generic-base"/>
    <updated>2024-03-27T11:41:27+00:00</updated>
  </info>
  <citation><layout><text variable="citation-number"/></layout></citation>
</style>`

func TestParse(t *testing.T) {
	s, err := cslmeta.Parse([]byte(ieeeStyle))
	require.NoError(t, err)

	assert.Equal(t, cslmeta.Style{
		Title:          "IEEE",
		TitleShort:     "IEEE",
		ID:             "http://www.zotero.org/styles/ieee",
		Class:          "in-text",
		Version:        "1.0",
		DefaultLocale:  "en-US",
		CitationFormat: "numeric",
		Fields:         []string{"engineering", "generic-base"},
		Updated:        "2024-03-27T11:41:27+00:00",
	}, s)
}

func TestParseWithoutInfo(t *testing.T) {
	s, err := cslmeta.Parse([]byte(`<style class="note" version="1.0"/>`))
	require.NoError(t, err)

	assert.Equal(t, "note", s.Class)
	assert.Empty(t, s.Title)
	assert.Nil(t, s.Fields)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed xml", `<style class="in-text></style>`},
		{"wrong root", `<locale xml:lang="en-US"/>`},
		{"empty", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cslmeta.Parse([]byte(tt.data))
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrCSLParse))
		})
	}
}

func TestRead(t *testing.T) {
	fs := testutil.NewMemoryFS()
	testutil.WriteFile(t, fs, "/styles/ieee.csl", ieeeStyle)
	testutil.WriteFile(t, fs, "/styles/broken.csl", "<nope/>")

	s, err := cslmeta.Read(fs, "/styles/ieee.csl")
	require.NoError(t, err)
	assert.Equal(t, "/styles/ieee.csl", s.Path)
	assert.Equal(t, "IEEE", s.Title)

	_, err = cslmeta.Read(fs, "/styles/missing.csl")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))

	_, err = cslmeta.Read(fs, "/styles/broken.csl")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCSLParse))
	assert.Equal(t, "/styles/broken.csl", errors.GetErrorDetails(err)["path"])
}
