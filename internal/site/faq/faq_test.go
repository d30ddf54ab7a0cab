package faq_test

import (
	"strings"
	"testing"

	"github.com/RoGasore/CALMNESS2/internal/site/faq"
	"github.com/stretchr/testify/assert"
)

func TestSearch_CaseInsensitiveOnBothFields(t *testing.T) {
	results := faq.Search(faq.Entries(), "RISQUE")

	assert.Len(t, results, 2)
	for _, entry := range results {
		haystack := strings.ToLower(entry.Question + " " + entry.Answer)
		assert.Contains(t, haystack, "risque")
	}

	// No other entry mentions the term in either field.
	for _, entry := range faq.Entries() {
		haystack := strings.ToLower(entry.Question + " " + entry.Answer)
		if strings.Contains(haystack, "risque") {
			assert.Contains(t, results, entry)
		} else {
			assert.NotContains(t, results, entry)
		}
	}
}

func TestSearch_EmptyTermReturnsAll(t *testing.T) {
	results := faq.Search(faq.Entries(), "")

	assert.Equal(t, faq.Entries(), results)
}

func TestSearch_NoMatch(t *testing.T) {
	results := faq.Search(faq.Entries(), "blockchain quantique")

	assert.Empty(t, results)
}

func TestToggle_SingleOpenAccordion(t *testing.T) {
	open := faq.Toggle(nil, 0)
	assert.Equal(t, []int{0}, open)

	// Opening item 2 closes item 0.
	open = faq.Toggle(open, 2)
	assert.Equal(t, []int{2}, open)
	assert.False(t, faq.IsOpen(open, 0))
	assert.True(t, faq.IsOpen(open, 2))
}

func TestToggle_ReopeningClosesItem(t *testing.T) {
	open := faq.Toggle(nil, 3)
	open = faq.Toggle(open, 3)

	assert.Empty(t, open)
	assert.False(t, faq.IsOpen(open, 3))
}
