package affix

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReduce_MovedHomeDirectory(t *testing.T) {
	r := Reduce("/home/alice/Videos/clip1.mp4", "/home/bob/Movies/clip1.mp4")

	assert.Equal(t, "/home/", r.Prefix)
	assert.Equal(t, "alice/Videos", r.OldCore)
	assert.Equal(t, "bob/Movies", r.NewCore)
	assert.Equal(t, "/clip1.mp4", r.Suffix)
}

func TestReduce_RoundTrip(t *testing.T) {
	pairs := [][2]string{
		{"/home/alice/Videos/clip1.mp4", "/home/bob/Movies/clip1.mp4"},
		{"/mnt/old", "/mnt/new"},
		{"a", "b"},
		{"", ""},
		{"", "/anything"},
		{"/data/projects", "/data"},
		{"same", "same"},
		{"aba", "ab"},
		{"aa", "aaaa"},
		{"/x/y/z", "/x/y/z/w"},
	}

	for _, pair := range pairs {
		r := Reduce(pair[0], pair[1])
		assert.Equal(t, pair[0], r.Prefix+r.OldCore+r.Suffix, "old round-trip for %q -> %q", pair[0], pair[1])
		assert.Equal(t, pair[1], r.Prefix+r.NewCore+r.Suffix, "new round-trip for %q -> %q", pair[0], pair[1])
	}
}

func TestReduce_EqualInputsAreEmpty(t *testing.T) {
	r := Reduce("/media/store/clip.mp4", "/media/store/clip.mp4")

	assert.True(t, r.Empty())
	assert.Empty(t, r.OldCore)
	assert.Empty(t, r.NewCore)
}

func TestReduce_PrefixAndSuffixNeverOverlap(t *testing.T) {
	// "aa" vs "aaaa": the whole shorter string is consumed by the prefix,
	// leaving nothing for the suffix to claim.
	r := Reduce("aa", "aaaa")

	assert.Equal(t, "aa", r.Prefix)
	assert.Equal(t, "", r.OldCore)
	assert.Equal(t, "aa", r.NewCore)
	assert.Equal(t, "", r.Suffix)
	assert.Equal(t, "aa", r.Prefix+r.OldCore+r.Suffix)
	assert.Equal(t, "aaaa", r.Prefix+r.NewCore+r.Suffix)
}

func TestReduce_NoCommonAffixes(t *testing.T) {
	r := Reduce("alpha", "zeta")

	assert.Equal(t, "", r.Prefix)
	assert.Equal(t, "", r.Suffix)
	assert.Equal(t, "alpha", r.OldCore)
	assert.Equal(t, "zeta", r.NewCore)
}

func TestReduce_OneSideEmpty(t *testing.T) {
	r := Reduce("", "/new/location")

	assert.True(t, r.Empty())
	assert.Equal(t, "/new/location", r.NewCore)
}
