package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/vs-layout/internal/catalog"
)

const downloader17 = "https://aka.ms/vs/17/release/vs_enterprise.exe"

var testLanguages = []catalog.Language{
	{Title: "English", Key: "en-US"},
	{Title: "Chinese (Simplified)", Key: "zh-CN"},
	{Title: "German", Key: "de-DE"},
}

func testTree() []catalog.Component {
	return []catalog.Component{
		{Title: "A", ID: "A"},
		{Title: "Empty group"},
		{Title: "First group", Children: []catalog.Component{{Title: "G1", ID: "G1"}}},
		{Title: "C", ID: "C"},
		{Title: "Unaffiliated", Children: []catalog.Component{
			{Title: "B", ID: "B"},
			{Title: "D", ID: "D"},
		}},
		{Title: "Trailing empty group"},
	}
}

func TestVersionToken(t *testing.T) {
	got, ok := VersionToken("aka.ms/vs/17/release")
	require.True(t, ok)
	assert.Equal(t, "17", got)

	got, ok = VersionToken("https://aka.ms/vs/16/release/channel")
	require.True(t, ok)
	assert.Equal(t, "16", got)

	_, ok = VersionToken("https://aka.ms/vs/17/pre/channel")
	assert.False(t, ok)
	_, ok = VersionToken("")
	assert.False(t, ok)
}

func TestReconcile_NilDescriptorIsNoop(t *testing.T) {
	tree := testTree()
	result := Reconcile(tree, testLanguages, downloader17, nil)
	assert.Empty(t, result.Languages)
	assert.Empty(t, result.Warnings)
	assert.Empty(t, catalog.SelectedIDs(tree))
}

func TestReconcile_TopLevelAndLastGroup(t *testing.T) {
	tree := testTree()
	d := &Descriptor{
		ChannelURI: "https://aka.ms/vs/17/release/channel",
		Add:        []string{"A;1.0", "B;1.0"},
	}

	result := Reconcile(tree, testLanguages, downloader17, d)

	assert.Equal(t, []string{"A", "B"}, catalog.SelectedIDs(tree))
	assert.Equal(t, 2, result.Matched)
	assert.Empty(t, result.Warnings)
}

func TestReconcile_OnlyLastNonEmptyGroupIsSearched(t *testing.T) {
	tree := testTree()
	d := &Descriptor{
		ChannelURI: "https://aka.ms/vs/17/release/channel",
		Add:        []string{"G1;17.0", "D;17.0;extra"},
	}

	result := Reconcile(tree, testLanguages, downloader17, d)

	assert.Equal(t, []string{"D"}, catalog.SelectedIDs(tree))
	assert.Equal(t, 1, result.Matched)
}

func TestReconcile_UnknownComponentIgnored(t *testing.T) {
	tree := testTree()
	d := &Descriptor{ChannelURI: "https://aka.ms/vs/17/release/channel", Add: []string{"ZZZ;1.0", ";1.0", ""}}

	result := Reconcile(tree, testLanguages, downloader17, d)

	assert.Empty(t, catalog.SelectedIDs(tree))
	assert.Zero(t, result.Matched)
}

func TestReconcile_Languages(t *testing.T) {
	d := &Descriptor{
		ChannelURI:     "https://aka.ms/vs/17/release/channel",
		AddProductLang: []string{"ZH-cn", "xx-XX", "en-us", "zh-CN"},
	}

	result := Reconcile(testTree(), testLanguages, downloader17, d)

	assert.Equal(t, []string{"zh-CN", "en-US"}, catalog.LanguageKeys(result.Languages))
}

func TestReconcile_VersionMismatchIsAdvisory(t *testing.T) {
	tree := testTree()
	d := &Descriptor{
		ChannelURI: "https://aka.ms/vs/16/release/channel",
		Add:        []string{"C;16.0"},
	}

	result := Reconcile(tree, testLanguages, downloader17, d)

	require.Len(t, result.Warnings, 1)
	assert.Equal(t, WarningVersionMismatch, result.Warnings[0].Code)
	assert.Contains(t, result.Warnings[0].Message, "16")
	assert.Contains(t, result.Warnings[0].Message, "17")
	assert.Equal(t, []string{"C"}, catalog.SelectedIDs(tree))
}

func TestReconcile_Idempotent(t *testing.T) {
	d := &Descriptor{
		ChannelURI:     "https://aka.ms/vs/17/release/channel",
		Add:            []string{"A;1", "B;1", "ZZZ;1", "C;1"},
		AddProductLang: []string{"en-US", "de-DE"},
	}

	once := testTree()
	first := Reconcile(once, testLanguages, downloader17, d)

	twice := testTree()
	Reconcile(twice, testLanguages, downloader17, d)
	second := Reconcile(twice, testLanguages, downloader17, d)

	assert.Equal(t, once, twice)
	assert.Equal(t, first.Languages, second.Languages)
}
