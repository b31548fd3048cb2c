// Package affix reduces an (old, new) path pair to the minimal differing
// cores by stripping the longest common prefix and suffix. Only the cores are
// matched against project files, so callers may pass full paths even when
// only one directory segment changed.
package affix

// Reduction is the decomposition of an (old, new) path pair. The invariant is
// Prefix + OldCore + Suffix == old and Prefix + NewCore + Suffix == new.
type Reduction struct {
	Prefix  string
	OldCore string
	NewCore string
	Suffix  string
}

// Reduce strips the longest common prefix and the longest common suffix from
// the pair. The suffix is matched only against the characters remaining after
// the prefix, so the two regions never overlap even for short, highly similar
// inputs. Equal inputs reduce to empty cores.
func Reduce(oldPath, newPath string) Reduction {
	p := commonPrefixLen(oldPath, newPath)
	s := commonSuffixLen(oldPath[p:], newPath[p:])
	return Reduction{
		Prefix:  oldPath[:p],
		OldCore: oldPath[p : len(oldPath)-s],
		NewCore: newPath[p : len(newPath)-s],
		Suffix:  oldPath[len(oldPath)-s:],
	}
}

// Empty reports whether there is nothing to replace. An empty OldCore must be
// treated as a no-op downstream; replacing the empty string would match at
// every position of every attribute.
func (r Reduction) Empty() bool {
	return r.OldCore == ""
}

func commonPrefixLen(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

func commonSuffixLen(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[len(a)-1-i] != b[len(b)-1-i] {
			return i
		}
	}
	return n
}
