// Package options defines the closed set of status-line options and the
// include/exclude resolution applied to a request before rendering.
package options

// ID identifies one line of status output.
type ID string

// Known option identifiers.
const (
	CwdPath         ID = "cwd-path"
	CwdPathAbsolute ID = "cwd-path-absolute"
	GitBranch       ID = "git-branch"
	GitDirty        ID = "git-dirty"
	GitAheadBehind  ID = "git-ahead-behind"
	Platform        ID = "platform"
	User            ID = "user"
	Time            ID = "time"
	Time24          ID = "time-24"
	Date            ID = "date"
	DateTime        ID = "date-time"
	DateTime24      ID = "date-time-24"
	NodeV           ID = "node-v"
	Uptime          ID = "uptime"
)

// Category groups options by the semantic color they render with.
type Category int

// Semantic categories.
const (
	CategoryPath Category = iota
	CategoryGit
	CategoryClock
	CategorySystem
)

// Spec describes one option: its identifier, help text, the two icon
// variants, and the color category used when rendering.
type Spec struct {
	ID          ID
	Description string
	Icon        string // plain-text glyph
	NerdIcon    string // Nerd Font glyph, used with --nerdfonts
	Category    Category
}

// registry lists every known option in its canonical display order.
// Resolution preserves the caller's requested order, not this one; this
// order is only used for --all and the --options listing.
var registry = []Spec{
	{CwdPath, "Current directory, with the home directory shown as ~", "»", "", CategoryPath},
	{CwdPathAbsolute, "Current directory as a full absolute path", "»", "", CategoryPath},
	{GitBranch, "Current git branch of the working directory", "⎇", "", CategoryGit},
	{GitDirty, "Whether the git working tree has uncommitted changes", "±", "", CategoryGit},
	{GitAheadBehind, "Commits ahead of and behind the origin tracking branch", "⇅", "", CategoryGit},
	{Platform, "Host operating system", "⌘", "", CategorySystem},
	{User, "Current user's login name", "☺", "", CategorySystem},
	{Time, "Current time, 12-hour clock", "◷", "", CategoryClock},
	{Time24, "Current time, 24-hour clock", "◷", "", CategoryClock},
	{Date, "Today's date, written out in full", "▦", "", CategoryClock},
	{DateTime, "Date and 12-hour time on one line", "▦", "", CategoryClock},
	{DateTime24, "Date and 24-hour time on one line", "▦", "", CategoryClock},
	{NodeV, "Version of the hosting runtime", "⬡", "", CategorySystem},
	{Uptime, "How long the host has been running", "↑", "", CategorySystem},
}

var byID = func() map[ID]Spec {
	m := make(map[ID]Spec, len(registry))
	for _, s := range registry {
		m[s.ID] = s
	}
	return m
}()

// All returns every known option identifier in canonical order.
func All() []ID {
	ids := make([]ID, 0, len(registry))
	for _, s := range registry {
		ids = append(ids, s.ID)
	}
	return ids
}

// Registry returns the full option specs in canonical order.
func Registry() []Spec {
	out := make([]Spec, len(registry))
	copy(out, registry)
	return out
}

// Lookup returns the spec for an identifier.
func Lookup(id ID) (Spec, bool) {
	s, ok := byID[id]
	return s, ok
}

// IsGit reports whether the option depends on the git status resolver.
func IsGit(id ID) bool {
	s, ok := byID[id]
	return ok && s.Category == CategoryGit
}
