package showcase

import (
	"github.com/alexisbeaulieu97/stylebox/internal/style"
	"github.com/alexisbeaulieu97/stylebox/internal/ui/components"
)

// Demo is one entry in the showcase list.
type Demo struct {
	Name        string
	Description string
	Component   components.Styled
}

// Props returns the props the demo's component resolves.
func (d Demo) Props() style.Props {
	if d.Component == nil {
		return style.Props{}
	}
	return d.Component.Props()
}

// DefaultDemos returns the built-in component gallery.
func DefaultDemos() []Demo {
	return []Demo{
		{
			Name:        "Text",
			Description: "Body text coloured with the theme's text token",
			Component:   components.NewText("The quick brown fox"),
		},
		{
			Name:        "Title",
			Description: "Large bold heading with an implied line height",
			Component:   components.TitleText("Release notes"),
		},
		{
			Name:        "Primary button",
			Description: "Variant background with a darker hover state",
			Component:   components.PrimaryButton("Save changes"),
		},
		{
			Name:        "Disabled button",
			Description: "Half opacity and no hover block",
			Component:   components.NewButton("Unavailable").Disabled(true),
		},
		{
			Name:        "Badges",
			Description: "Tinted backgrounds built from colour opacity",
			Component: components.HStack(
				components.SuccessBadge("passing"),
				components.WarningBadge("flaky"),
				components.DangerBadge("failing"),
			).WithGap("tight"),
		},
		{
			Name:        "Alert",
			Description: "Thick left border in the variant colour",
			Component:   components.WarningAlert("Token overrides were not found").WithTitle("Heads up"),
		},
		{
			Name:        "Card",
			Description: "Surface background, loose radius and a footer divider",
			Component: components.NewCard(
				components.NewText("Cards group related content."),
			).WithTitle("Card").WithFooter(components.SubtitleText("updated just now")),
		},
		{
			Name:        "Dividers",
			Description: "Border styles mapped to box drawing glyphs",
			Component: components.VStack(
				components.NewDivider().WithWidth(24),
				components.DashedDivider().WithWidth(24),
				components.DoubleDivider().WithWidth(24),
				components.ThickDivider().WithWidth(24),
			),
		},
	}
}
