package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestMatchKind_Priority tests the deduplication priority ordering
func TestMatchKind_Priority(t *testing.T) {
	assert.Greater(t, MatchContent.Priority(), MatchDescription.Priority())
	assert.Greater(t, MatchDescription.Priority(), MatchTitle.Priority())
	assert.Equal(t, 0, MatchKind("bogus").Priority())
}

// TestMatchKind_Label tests display label derivation
func TestMatchKind_Label(t *testing.T) {
	assert.Equal(t, "Title", MatchTitle.Label())
	assert.Equal(t, "Content", MatchContent.Label())
	assert.Equal(t, "Description or content", MatchDescription.Label())
	assert.Equal(t, "Unknown", MatchKind("bogus").Label())
}

// TestMatchRecord_Grouping tests group bucket selection for nested records
func TestMatchRecord_Grouping(t *testing.T) {
	parent := 2
	top := MatchRecord{SectionNumber: 5, SectionName: "Week 5"}
	nested := MatchRecord{
		SectionNumber:       7,
		SectionName:         "Extras",
		ParentSectionNumber: &parent,
		ParentSectionName:   "Week 2",
	}

	assert.Equal(t, 5, top.GroupNumber())
	assert.Equal(t, "Week 5", top.GroupName())
	assert.Equal(t, 2, nested.GroupNumber())
	assert.Equal(t, "Week 2", nested.GroupName())
}

// TestMatchRecord_IsSection tests section record detection
func TestMatchRecord_IsSection(t *testing.T) {
	assert.True(t, MatchRecord{ModuleType: ModuleTypeSection}.IsSection())
	assert.False(t, MatchRecord{ModuleType: "page"}.IsSection())
}

// TestSection_DisplayName tests the bare-number fallback title
func TestSection_DisplayName(t *testing.T) {
	assert.Equal(t, "Intro", Section{Number: 1, Name: "Intro"}.DisplayName())
	assert.Equal(t, "Section 3", Section{Number: 3}.DisplayName())
}

// TestGroupedResult_HasContent tests group emission conditions
func TestGroupedResult_HasContent(t *testing.T) {
	assert.False(t, GroupedResult{}.HasContent())
	assert.True(t, GroupedResult{SectionMatched: true}.HasContent())
	assert.True(t, GroupedResult{Results: []MatchRecord{{}}}.HasContent())
	assert.True(t, GroupedResult{
		Subsections: []GroupedResult{{SectionMatched: true}},
	}.HasContent())
	assert.False(t, GroupedResult{
		Subsections: []GroupedResult{{}},
	}.HasContent())
}
