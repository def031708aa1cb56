// Package components provides a theme-aware terminal component library built
// on the style resolver.
//
// Every component is a set of style props. Rendering resolves those props
// for the active theme and paints the result with lipgloss:
//
//	card := components.NewCard(
//		components.NewText("Build passed"),
//		components.SuccessBadge("ok"),
//	).WithTitle("CI")
//	fmt.Println(card.ViewWithContext(components.DefaultContext()))
//
// Box is the primitive; Text, Stack, Button, Badge, Alert, Card and Divider
// are Boxes (or plain styled strings) with preset props. Any preset can be
// overridden through WithProps, including nested props such as propsOnHover:
//
//	btn := components.NewButton("Save").WithProps(style.Props{
//		"propsOnHover": style.Props{"textDecoration": "underline"},
//	})
//
// Themes are immutable and passed explicitly through RenderContext; the same
// component renders differently under DefaultTheme and DarkTheme because
// colour aliases such as "primary" or "border" resolve per theme.
//
// Resolved styles can also be compiled to CSS with Class and a render.Sheet.
package components
