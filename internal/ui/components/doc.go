// Package components renders the playground with lipgloss.
//
// Components follow a small model: a Theme holds colour roles, StyleFunc
// values turn a Theme into a lipgloss.Style, and every component renders to
// a string through View or ViewWithContext.
//
//	ctx := components.DefaultContext()
//	bar := components.NewStatusBar(components.AccentBadge("bottom"))
//	fmt.Println(bar.ViewWithContext(ctx))
//
// lipgloss composes blocks side by side or stacked but cannot overlap
// them, so positioned boxes (the anchor, the floating panel and its arrow)
// are painted onto a Canvas of terminal cells and rendered row by row.
package components
