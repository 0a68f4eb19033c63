package findbugs

import (
	"iter"
	"slices"
	"sort"
)

// BugCollection buffers the results of one analysis run. Bugs are kept
// unique by their key and iterated in key order, which keeps the bugs of a
// class next to each other. Missing classes are kept as a set.
type BugCollection struct {
	keys    map[BugKey]struct{}
	bugs    []*BugInstance
	errors  []AnalysisError
	missing map[string]struct{}
}

// NewBugCollection creates an empty collection
func NewBugCollection() *BugCollection {
	return &BugCollection{
		keys:    make(map[BugKey]struct{}),
		missing: make(map[string]struct{}),
	}
}

// Add inserts the bug and reports whether it was not already present.
func (c *BugCollection) Add(bug *BugInstance) bool {
	key := bug.Key()
	if _, found := c.keys[key]; found {
		return false
	}
	c.keys[key] = struct{}{}
	i := sort.Search(len(c.bugs), func(i int) bool {
		return c.bugs[i].Key().Compare(key) > 0
	})
	c.bugs = slices.Insert(c.bugs, i, bug)
	return true
}

// AddError appends an analysis error. Duplicates are kept.
func (c *BugCollection) AddError(e AnalysisError) {
	c.errors = append(c.errors, e)
}

// AddMissingClass records a class the engine could not resolve and reports
// whether the class was seen for the first time.
func (c *BugCollection) AddMissingClass(name string) bool {
	name = DottedClassName(name)
	if _, found := c.missing[name]; found {
		return false
	}
	c.missing[name] = struct{}{}
	return true
}

// BugCount returns the number of distinct bugs
func (c *BugCollection) BugCount() int {
	return len(c.bugs)
}

// ErrorCount returns the number of analysis errors
func (c *BugCollection) ErrorCount() int {
	return len(c.errors)
}

// MissingClassCount returns the number of distinct missing classes
func (c *BugCollection) MissingClassCount() int {
	return len(c.missing)
}

// Bugs iterates the bugs in key order.
func (c *BugCollection) Bugs() iter.Seq[*BugInstance] {
	return func(yield func(*BugInstance) bool) {
		for _, bug := range c.bugs {
			if !yield(bug) {
				return
			}
		}
	}
}

// Errors iterates the analysis errors in the order they were recorded.
func (c *BugCollection) Errors() iter.Seq[AnalysisError] {
	return func(yield func(AnalysisError) bool) {
		for _, e := range c.errors {
			if !yield(e) {
				return
			}
		}
	}
}

// MissingClasses iterates the missing class names sorted by name.
func (c *BugCollection) MissingClasses() iter.Seq[string] {
	return func(yield func(string) bool) {
		names := make([]string, 0, len(c.missing))
		for name := range c.missing {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if !yield(name) {
				return
			}
		}
	}
}

// ByClass yields every class having at least one bug together with its
// number of bugs, in class name order.
func (c *BugCollection) ByClass() iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		var current string
		count := 0
		for _, bug := range c.bugs {
			if count > 0 && bug.ClassName != current {
				if !yield(current, count) {
					return
				}
				count = 0
			}
			current = bug.ClassName
			count++
		}
		if count > 0 {
			yield(current, count)
		}
	}
}
