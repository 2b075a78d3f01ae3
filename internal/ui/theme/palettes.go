package theme

// TokyoNight is the default palette.
var TokyoNight = Palette{
	PrimaryColor:       c("#82aaff", "#2e7de9"),
	SecondaryColor:     c("#c099ff", "#9854f1"),
	AccentColor:        c("#ff966c", "#b15c00"),
	ErrorColor:         c("#ff757f", "#f52a65"),
	SuccessColor:       c("#c3e88d", "#587539"),
	TextColor:          c("#c8d3f5", "#3760bf"),
	TextMutedColor:     c("#636da6", "#848cb5"),
	HighlightColor:     c("#2f334d", "#c8c9ce"),
	BorderNormalColor:  c("#3b4261", "#a8aecb"),
	BorderFocusedColor: c("#82aaff", "#2e7de9"),
	BorderDimColor:     c("#292e42", "#c8c9ce"),
}

var Gruvbox = Palette{
	PrimaryColor:       c("#83a598", "#076678"),
	SecondaryColor:     c("#d3869b", "#8f3f71"),
	AccentColor:        c("#fabd2f", "#b57614"),
	ErrorColor:         c("#fb4934", "#9d0006"),
	SuccessColor:       c("#b8bb26", "#79740e"),
	TextColor:          c("#ebdbb2", "#3c3836"),
	TextMutedColor:     c("#a89984", "#7c6f64"),
	HighlightColor:     c("#504945", "#ebdbb2"),
	BorderNormalColor:  c("#504945", "#bdae93"),
	BorderFocusedColor: c("#83a598", "#076678"),
	BorderDimColor:     c("#3c3836", "#d5c4a1"),
}

var Nord = Palette{
	PrimaryColor:       c("#88c0d0", "#5e81ac"),
	SecondaryColor:     c("#81a1c1", "#5e81ac"),
	AccentColor:        c("#ebcb8b", "#d08770"),
	ErrorColor:         c("#bf616a", "#bf616a"),
	SuccessColor:       c("#a3be8c", "#a3be8c"),
	TextColor:          c("#eceff4", "#2e3440"),
	TextMutedColor:     c("#4c566a", "#4c566a"),
	HighlightColor:     c("#3b4252", "#d8dee9"),
	BorderNormalColor:  c("#4c566a", "#d8dee9"),
	BorderFocusedColor: c("#88c0d0", "#5e81ac"),
	BorderDimColor:     c("#3b4252", "#e5e9f0"),
}

func init() {
	RegisterTheme("tokyonight", TokyoNight)
	RegisterTheme("gruvbox", Gruvbox)
	RegisterTheme("nord", Nord)
}
